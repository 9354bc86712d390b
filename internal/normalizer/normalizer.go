// Package normalizer converts the heterogeneous date and currency text
// extracted from ASP report tables into canonical values. It is pure: no
// I/O, no clock, no locale state.
package normalizer

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/asp-revenue-pipeline/internal/domain"
)

// ParsedDate is a canonical calendar date. Monthly marks month-only input
// ("2025年10月"), whose Date is expanded to the last day of that month.
type ParsedDate struct {
	Date    time.Time
	Monthly bool
}

// dayLayouts are the full-date forms seen across ASP report tables. Go's
// numeric layout fields also accept unpadded values ("2025/1/2").
var dayLayouts = []string{
	"2006年01月02日",
	"2006/01/02",
	"2006-01-02",
	"2006.01.02",
}

// monthLayouts are month-only forms, used by monthly report tables.
var monthLayouts = []string{
	"2006年01月",
	"2006/01",
	"2006-01",
}

// ParseDate normalizes a raw date cell. All supported forms of the same
// calendar day yield the identical value. Month-only input yields the last
// calendar day of that month, never the first.
func ParseDate(text string) (ParsedDate, error) {
	cleaned := cleanDateText(text)
	if cleaned == "" {
		return ParsedDate{}, errors.Wrapf(domain.ErrUnparsableDate, "%q", text)
	}

	for _, layout := range dayLayouts {
		if d, err := time.Parse(layout, cleaned); err == nil {
			return ParsedDate{Date: d}, nil
		}
	}

	for _, layout := range monthLayouts {
		if d, err := time.Parse(layout, cleaned); err == nil {
			return ParsedDate{Date: MonthEnd(d.Year(), d.Month()), Monthly: true}, nil
		}
	}

	return ParsedDate{}, errors.Wrapf(domain.ErrUnparsableDate, "%q", text)
}

// ParseDateInPeriod is ParseDate plus year-less forms ("10/01", "1日")
// resolved against the run's target period. Sites that only render month/day
// columns rely on this.
func ParseDateInPeriod(text string, period domain.Period) (ParsedDate, error) {
	if parsed, err := ParseDate(text); err == nil {
		return parsed, nil
	}

	cleaned := cleanDateText(text)
	for _, layout := range []string{"01/02", "01-02", "01月02日"} {
		if d, err := time.Parse(layout, cleaned); err == nil {
			return ParsedDate{
				Date: time.Date(period.Year, d.Month(), d.Day(), 0, 0, 0, 0, time.UTC),
			}, nil
		}
	}
	if d, err := time.Parse("02日", cleaned); err == nil {
		return ParsedDate{
			Date: time.Date(period.Year, period.Month, d.Day(), 0, 0, 0, 0, time.UTC),
		}, nil
	}

	return ParsedDate{}, errors.Wrapf(domain.ErrUnparsableDate, "%q", text)
}

// MonthEnd returns midnight UTC on the last calendar day of the month.
// Monthly ledger rows are always dated with this value.
func MonthEnd(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1)
}

// ParseAmount normalizes a raw currency cell to a signed amount. Currency
// symbols, thousands separators and unit glyphs are stripped; full-width
// digits are folded to ASCII. When no digits remain the row is unparsable
// and the error must be counted by the caller, never coerced to zero.
func ParseAmount(text string) (float64, error) {
	folded := foldWidth(text)

	negative := false
	var b strings.Builder
	for _, r := range folded {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.':
			b.WriteRune(r)
		case r == '-' || r == '▲' || r == '△':
			// ▲ is the bookkeeping negative mark on several sites.
			if b.Len() == 0 {
				negative = true
			}
		}
	}

	digits := b.String()
	if strings.Trim(digits, ".") == "" {
		return 0, errors.Wrapf(domain.ErrUnparsableAmount, "%q", text)
	}

	amount, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return 0, errors.Wrapf(domain.ErrUnparsableAmount, "%q", text)
	}

	if negative {
		amount = -amount
	}
	return amount, nil
}

// LooksLikeDate reports whether a cell plausibly holds a date. The extractor
// uses it to identify the revenue table among all tables on a report page.
func LooksLikeDate(text string) bool {
	if _, err := ParseDate(text); err == nil {
		return true
	}

	cleaned := cleanDateText(text)
	for _, layout := range []string{"01/02", "01-02", "01月02日", "02日"} {
		if _, err := time.Parse(layout, cleaned); err == nil {
			return true
		}
	}
	return false
}

// LooksLikeAmount reports whether a cell plausibly holds a numeric amount.
func LooksLikeAmount(text string) bool {
	_, err := ParseAmount(text)
	return err == nil
}

// cleanDateText trims whitespace and drops weekday suffixes like "(水)".
func cleanDateText(text string) string {
	s := strings.TrimSpace(foldWidth(text))
	if i := strings.IndexAny(s, "("); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}
	return s
}

// foldWidth maps full-width digits and punctuation to their ASCII forms and
// drops the characters that never contribute to a value.
func foldWidth(text string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= '０' && r <= '９':
			return '0' + (r - '０')
		case r == '－' || r == '−':
			return '-'
		case r == '．':
			return '.'
		case r == '，' || r == ',':
			return -1
		case r == '（':
			return '('
		case r == '）':
			return ')'
		case r == '　': // ideographic space
			return ' '
		case r == '／':
			return '/'
		}
		return r
	}, text)
}
