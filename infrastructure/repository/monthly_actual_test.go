package repository

import (
	"database/sql/driver"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/asp-revenue-pipeline/internal/domain"
)

func TestMonthlyActualSaveOrUpdateUpsertsOnNaturalKey(t *testing.T) {
	state := &stubState{}
	repo := NewMonthlyActualRepository(newStubConnection(t, state))

	record := &domain.RevenueRecord{
		Date:          time.Date(2025, time.October, 31, 0, 0, 0, 0, time.UTC),
		MediaID:       "media-1",
		AccountItemID: "item-1",
		AspID:         "asp-1",
		Amount:        45000,
	}

	require.NoError(t, repo.SaveOrUpdate(record))

	require.Len(t, state.execs, 1)
	executed := state.execs[0]
	assert.Contains(t, executed.sql, "INSERT INTO actuals")
	assert.Contains(t, executed.sql, "ON CONFLICT (date, media_id, account_item_id, asp_id) DO UPDATE SET")
	assert.Contains(t, executed.sql, "amount = EXCLUDED.amount")
	assert.Equal(t, []driver.Value{"2025-10-31", "media-1", "item-1", "asp-1", float64(45000)}, executed.args)
}

func TestMonthlyActualGetByPeriodScansDateColumn(t *testing.T) {
	monthEnd := time.Date(2025, time.October, 31, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, time.November, 1, 9, 0, 0, 0, time.UTC)

	state := &stubState{
		columns: revenueColumns,
		rows: [][]driver.Value{
			{monthEnd, "media-1", "item-1", "asp-1", 45000.0, now, now},
		},
	}
	repo := NewMonthlyActualRepository(newStubConnection(t, state))

	record, err := repo.GetByPeriod("asp-1", "media-1", "item-1", domain.Period{Year: 2025, Month: time.October})
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.True(t, record.Date.Equal(monthEnd))
	assert.Equal(t, 45000.0, record.Amount)

	require.Len(t, state.queries, 1)
	assert.Contains(t, state.queries[0].args, driver.Value("2025-10-31"))
}

func TestMonthlyActualGetByPeriodMissingRowReturnsNil(t *testing.T) {
	state := &stubState{columns: revenueColumns}
	repo := NewMonthlyActualRepository(newStubConnection(t, state))

	record, err := repo.GetByPeriod("asp-1", "media-1", "item-1", domain.Period{Year: 2025, Month: time.October})
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestMonthlyActualDeleteByPeriodScopesToPeriod(t *testing.T) {
	state := &stubState{}
	repo := NewMonthlyActualRepository(newStubConnection(t, state))

	deleted, err := repo.DeleteByPeriod("asp-1", "media-1", "item-1", domain.Period{Year: 2025, Month: time.October})
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	require.Len(t, state.execs, 1)
	executed := state.execs[0]
	assert.Contains(t, executed.sql, "DELETE FROM actuals")
	assert.Contains(t, executed.args, driver.Value("2025-10-01"))
	assert.Contains(t, executed.args, driver.Value("2025-10-31"))
}
