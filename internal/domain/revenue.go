package domain

import (
	"fmt"
	"time"
)

// Period is a target year/month for one pipeline run.
type Period struct {
	Year  int
	Month time.Month
}

// CurrentPeriod returns the period containing now.
func CurrentPeriod(now time.Time) Period {
	return Period{Year: now.Year(), Month: now.Month()}
}

// FirstDay returns midnight UTC on the first day of the period.
func (p Period) FirstDay() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}

// LastDay returns midnight UTC on the last calendar day of the period.
// Monthly rows are always dated with this, never the first of the month.
func (p Period) LastDay() time.Time {
	return p.FirstDay().AddDate(0, 1, -1)
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// Contains reports whether t falls inside the period.
func (p Period) Contains(t time.Time) bool {
	return t.Year() == p.Year && t.Month() == p.Month
}

// RevenueRecord is one canonical revenue fact, daily or monthly granularity
// depending on which table it targets. The (Date, MediaID, AccountItemID,
// AspID) tuple is the natural uniqueness key in both tables.
type RevenueRecord struct {
	Date          time.Time `json:"date"`
	MediaID       string    `json:"media_id"`
	AccountItemID string    `json:"account_item_id"`
	AspID         string    `json:"asp_id"`
	Amount        float64   `json:"amount"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// RawRow is one extracted table row before normalization.
type RawRow struct {
	DateText   string
	AmountText string
}

// RawTable is the text dump of one HTML table found on a report page.
type RawTable struct {
	Headers []string
	Rows    [][]string
}

// Extraction is the output of a site adapter's extract step. Dropped counts
// rows discarded by the table heuristic (no recognizable date cell); they are
// reported for observability, not raised as errors.
type Extraction struct {
	Rows    []RawRow
	Dropped int
}
