package domain

import "time"

// ScrapeStatus is the outcome of the most recent scrape attempt for an ASP.
type ScrapeStatus string

const (
	ScrapeStatusNever   ScrapeStatus = "never"
	ScrapeStatusSuccess ScrapeStatus = "success"
	ScrapeStatusFailed  ScrapeStatus = "failed"
	ScrapeStatusSkipped ScrapeStatus = "skipped"
)

// MonthlySource declares where the monthly figure for an ASP comes from.
// Exactly one source per ASP: either the site's own monthly report or a sum
// over that ASP's daily rows. Mixing the two doubles reported revenue.
type MonthlySource string

const (
	MonthlySourceNative           MonthlySource = "native"
	MonthlySourceDerivedFromDaily MonthlySource = "derivedFromDaily"
)

// Asp is a partner site definition. Created and edited via the dashboard,
// consumed read-only by the pipeline except for the last-scrape columns.
type Asp struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	LoginURL         string       `json:"login_url"`
	OperationPrompt  string       `json:"operation_prompt"`
	IsActive         bool         `json:"is_active"`
	BotDetected      bool         `json:"bot_detected"`
	LastScrapeAt     *time.Time   `json:"last_scrape_at"`
	LastScrapeStatus ScrapeStatus `json:"last_scrape_status"`
}
