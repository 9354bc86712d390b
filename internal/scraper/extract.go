package scraper

import (
	"strings"

	"github.com/vfg2006/asp-revenue-pipeline/internal/domain"
	"github.com/vfg2006/asp-revenue-pipeline/internal/normalizer"
)

// dumpTablesJS serializes every table on the page into header/row text.
// Extraction runs over this dump in Go so the selection logic stays testable
// without a browser.
const dumpTablesJS = `
	(() => {
		const clean = (s) => (s || '').replace(/\s+/g, ' ').trim();
		return Array.from(document.querySelectorAll('table')).map((table) => {
			const headers = Array.from(table.querySelectorAll('thead th, thead td'))
				.map((cell) => clean(cell.innerText));
			const bodyRows = table.querySelectorAll('tbody tr').length > 0
				? table.querySelectorAll('tbody tr')
				: table.querySelectorAll('tr');
			const rows = [];
			for (const tr of bodyRows) {
				const cells = Array.from(tr.querySelectorAll('td, th'))
					.map((cell) => clean(cell.innerText));
				if (cells.length > 0) rows.push(cells);
			}
			if (headers.length === 0 && rows.length > 0 && rows[0].some((c) => c && !c.match(/\d/))) {
				return { headers: rows[0], rows: rows.slice(1) };
			}
			return { headers: headers, rows: rows };
		});
	})()
`

// SelectRevenueTable picks the revenue table out of a page dump and extracts
// its date/amount rows. Pure function.
//
// A table is a candidate when its first data row starts with a date-like
// cell. The amount column is the first header containing a lexicon word, or
// failing that the rightmost numeric-looking column. Rows the heuristic
// cannot read are counted as dropped, not raised as errors; a page with no
// candidate table at all means the site changed its layout.
func SelectRevenueTable(tables []domain.RawTable, lexicon []string) (domain.Extraction, error) {
	var best *domain.Extraction

	for _, table := range tables {
		extraction, ok := extractFromTable(table, lexicon)
		if !ok {
			continue
		}

		if best == nil || len(extraction.Rows) > len(best.Rows) {
			best = &extraction
		}
	}

	if best == nil {
		return domain.Extraction{}, domain.ErrLayoutDrift
	}

	return *best, nil
}

func extractFromTable(table domain.RawTable, lexicon []string) (domain.Extraction, bool) {
	if len(table.Rows) == 0 || len(table.Rows[0]) < 2 {
		return domain.Extraction{}, false
	}

	if !normalizer.LooksLikeDate(table.Rows[0][0]) {
		return domain.Extraction{}, false
	}

	amountIdx := amountColumn(table, lexicon)
	if amountIdx <= 0 {
		return domain.Extraction{}, false
	}

	var extraction domain.Extraction

	for _, cells := range table.Rows {
		if len(cells) <= amountIdx || !normalizer.LooksLikeDate(cells[0]) {
			extraction.Dropped++
			continue
		}

		if !normalizer.LooksLikeAmount(cells[amountIdx]) {
			extraction.Dropped++
			continue
		}

		extraction.Rows = append(extraction.Rows, domain.RawRow{
			DateText:   cells[0],
			AmountText: cells[amountIdx],
		})
	}

	return extraction, len(extraction.Rows) > 0
}

// amountColumn resolves which column carries the revenue figure. Lexicon
// match on headers wins; otherwise the rightmost column whose first data row
// cell reads as an amount.
func amountColumn(table domain.RawTable, lexicon []string) int {
	for idx, header := range table.Headers {
		for _, word := range lexicon {
			if word != "" && strings.Contains(header, word) {
				return idx
			}
		}
	}

	first := table.Rows[0]
	for idx := len(first) - 1; idx > 0; idx-- {
		if normalizer.LooksLikeAmount(first[idx]) {
			return idx
		}
	}

	return -1
}
