package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/asp-revenue-pipeline/internal/domain"
)

func TestSelectRevenueTablePicksDatedTable(t *testing.T) {
	tables := []domain.RawTable{
		{
			// Navigation table, no dates.
			Headers: []string{"メニュー", "リンク"},
			Rows: [][]string{
				{"レポート", "daily"},
				{"設定", "config"},
			},
		},
		{
			Headers: []string{"日付", "クリック数", "報酬額"},
			Rows: [][]string{
				{"2025/10/01", "120", "¥1,200"},
				{"2025/10/02", "98", "¥800"},
			},
		},
	}

	extraction, err := SelectRevenueTable(tables, revenueLexicon)
	require.NoError(t, err)

	require.Len(t, extraction.Rows, 2)
	assert.Equal(t, "2025/10/01", extraction.Rows[0].DateText)
	assert.Equal(t, "¥1,200", extraction.Rows[0].AmountText)
	assert.Equal(t, 0, extraction.Dropped)
}

func TestSelectRevenueTableLexiconColumnWins(t *testing.T) {
	tables := []domain.RawTable{
		{
			// The rightmost column is numeric too, but the lexicon header
			// must take priority over position.
			Headers: []string{"日付", "成果報酬", "クリック数"},
			Rows: [][]string{
				{"2025/10/01", "1500", "42"},
			},
		},
	}

	extraction, err := SelectRevenueTable(tables, revenueLexicon)
	require.NoError(t, err)

	require.Len(t, extraction.Rows, 1)
	assert.Equal(t, "1500", extraction.Rows[0].AmountText)
}

func TestSelectRevenueTableFallsBackToRightmostNumeric(t *testing.T) {
	tables := []domain.RawTable{
		{
			Headers: []string{"Date", "Merchant", "Total"},
			Rows: [][]string{
				{"2025-10-01", "shop-a", "3,400"},
				{"2025-10-02", "shop-b", "1,100"},
			},
		},
	}

	extraction, err := SelectRevenueTable(tables, revenueLexicon)
	require.NoError(t, err)

	require.Len(t, extraction.Rows, 2)
	assert.Equal(t, "3,400", extraction.Rows[0].AmountText)
}

func TestSelectRevenueTableCountsDroppedRows(t *testing.T) {
	tables := []domain.RawTable{
		{
			Headers: []string{"日付", "報酬額"},
			Rows: [][]string{
				{"2025/10/01", "1200"},
				{"合計", "2000"}, // footer row, no date
				{"2025/10/02", "800"},
			},
		},
	}

	extraction, err := SelectRevenueTable(tables, revenueLexicon)
	require.NoError(t, err)

	assert.Len(t, extraction.Rows, 2)
	assert.Equal(t, 1, extraction.Dropped)
}

func TestSelectRevenueTableNoCandidateIsLayoutDrift(t *testing.T) {
	tables := []domain.RawTable{
		{
			Headers: []string{"商品", "在庫"},
			Rows: [][]string{
				{"item-a", "12"},
			},
		},
	}

	_, err := SelectRevenueTable(tables, revenueLexicon)
	assert.ErrorIs(t, err, domain.ErrLayoutDrift)
}

func TestSelectRevenueTableEmptyPageIsLayoutDrift(t *testing.T) {
	_, err := SelectRevenueTable(nil, revenueLexicon)
	assert.ErrorIs(t, err, domain.ErrLayoutDrift)
}

func TestSelectRevenueTablePrefersLargerCandidate(t *testing.T) {
	tables := []domain.RawTable{
		{
			// Summary table with a single dated row.
			Headers: []string{"日付", "報酬額"},
			Rows:    [][]string{{"2025/10/01", "99999"}},
		},
		{
			Headers: []string{"日付", "報酬額"},
			Rows: [][]string{
				{"2025/10/01", "100"},
				{"2025/10/02", "200"},
				{"2025/10/03", "300"},
			},
		},
	}

	extraction, err := SelectRevenueTable(tables, revenueLexicon)
	require.NoError(t, err)

	assert.Len(t, extraction.Rows, 3)
}
