package domain

import "time"

// RunOutcome is the result of one ASP's session within a run.
type RunOutcome struct {
	AspID             string        `json:"asp_id"`
	AspName           string        `json:"asp_name"`
	Stage             Stage         `json:"stage,omitempty"`
	Message           string        `json:"message,omitempty"`
	Rows              int           `json:"rows"`
	Amount            float64       `json:"amount"`
	UnparsableDates   int           `json:"unparsable_dates"`
	UnparsableAmounts int           `json:"unparsable_amounts"`
	Duration          time.Duration `json:"duration"`
}

// RunReport summarizes one full roster execution. It is the single source of
// truth for operators: Skipped (missing credentials, onboarding triage) is
// reported distinctly from Failed (site/login/layout breakage). The report is
// a value; the coordinator accumulates outcomes and returns it, nothing
// mutates it afterwards.
type RunReport struct {
	RunID      string       `json:"run_id"`
	Period     Period       `json:"period"`
	StartedAt  time.Time    `json:"started_at"`
	FinishedAt time.Time    `json:"finished_at"`
	Succeeded  []RunOutcome `json:"succeeded"`
	Failed     []RunOutcome `json:"failed"`
	Skipped    []RunOutcome `json:"skipped"`
}

// HasFailures reports whether any ASP failed. The CLI exits non-zero on
// failures so cron/CI can alert, while still having attempted every ASP.
func (r RunReport) HasFailures() bool {
	return len(r.Failed) > 0
}

// TotalRows is the number of rows upserted across all succeeded ASPs.
func (r RunReport) TotalRows() int {
	total := 0
	for _, o := range r.Succeeded {
		total += o.Rows
	}
	return total
}
