package ingesting

import (
	"context"

	"github.com/vfg2006/asp-revenue-pipeline/internal/domain"
)

// IngestStats summarizes what one ASP extraction turned into. Parse failures
// are counted and surfaced, never silently dropped.
type IngestStats struct {
	RowsUpserted      int     `json:"rows_upserted"`
	UnparsableDates   int     `json:"unparsable_dates"`
	UnparsableAmounts int     `json:"unparsable_amounts"`
	FailedUpserts     int     `json:"failed_upserts"`
	DroppedByHeuristic int    `json:"dropped_by_heuristic"`
	TotalAmount       float64 `json:"total_amount"`
}

// Ingester persists canonical revenue records idempotently and reconciles
// monthly figures from exactly one source per ASP.
type Ingester interface {
	// IngestExtraction normalizes and upserts every raw row for one
	// (asp, media, period) session, then reconciles the monthly figure
	// according to the ASP's monthly source.
	IngestExtraction(
		ctx context.Context,
		asp *domain.Asp,
		media *domain.Media,
		source domain.MonthlySource,
		period domain.Period,
		extraction domain.Extraction,
	) (*IngestStats, error)

	UpsertDaily(ctx context.Context, record *domain.RevenueRecord) error
	UpsertMonthly(ctx context.Context, record *domain.RevenueRecord) error

	// DeriveMonthlyFromDaily sums the month's daily rows into one monthly
	// record dated the last day of the month. Only for ASPs whose monthly
	// source is derivedFromDaily; callers must never combine it with a
	// native monthly scrape for the same ASP in the same run.
	DeriveMonthlyFromDaily(ctx context.Context, aspID, mediaID, accountItemID string, period domain.Period) (*domain.RevenueRecord, error)

	// ResetPeriod deletes the month's daily and monthly rows for one
	// (asp, media) pair so a corrective re-scrape starts from a clean
	// ledger. Returns how many rows were removed.
	ResetPeriod(ctx context.Context, asp *domain.Asp, media *domain.Media, period domain.Period) (int64, error)
}
