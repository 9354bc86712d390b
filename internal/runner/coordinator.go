// Package runner executes a roster of ASPs sequentially and turns every
// outcome, good or bad, into one immutable run report. One ASP breaking
// never prevents the others from being scraped and persisted.
package runner

import (
	"context"
	"errors"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/vfg2006/asp-revenue-pipeline/infrastructure/repository"
	"github.com/vfg2006/asp-revenue-pipeline/internal/domain"
	"github.com/vfg2006/asp-revenue-pipeline/internal/scraper"
	"github.com/vfg2006/asp-revenue-pipeline/internal/usecases/ingesting"
	"github.com/vfg2006/asp-revenue-pipeline/internal/usecases/resolving"
	"github.com/vfg2006/asp-revenue-pipeline/pkg/log"
	"github.com/vfg2006/asp-revenue-pipeline/pkg/utils"
)

// Roster is the work list for one run: every active ASP scraped on behalf of
// one media.
type Roster struct {
	Media *domain.Media
	Asps  []*domain.Asp
}

type Coordinator interface {
	RunAll(ctx context.Context, roster Roster, period domain.Period) *domain.RunReport
}

type coordinator struct {
	resolver resolving.CredentialResolver
	adapters scraper.Factory
	ingester ingesting.Ingester
	aspRepo  repository.AspRepository
	delay    time.Duration
}

func NewCoordinator(
	resolver resolving.CredentialResolver,
	adapters scraper.Factory,
	ingester ingesting.Ingester,
	aspRepo repository.AspRepository,
	delayBetweenAsps time.Duration,
) Coordinator {
	return &coordinator{
		resolver: resolver,
		adapters: adapters,
		ingester: ingester,
		aspRepo:  aspRepo,
		delay:    delayBetweenAsps,
	}
}

// RunAll scrapes every ASP in the roster, strictly one at a time. Sequential
// execution keeps one browser alive at most and keeps request patterns slow
// enough not to trip rate limits.
func (c *coordinator) RunAll(ctx context.Context, roster Roster, period domain.Period) *domain.RunReport {
	runID, err := gonanoid.New()
	if err != nil {
		runID = time.Now().Format("20060102150405")
	}

	ctx, _ = log.WithCorrelationID(ctx)
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"run_id": runID,
		"period": period.String(),
	})

	report := &domain.RunReport{
		RunID:     runID,
		Period:    period,
		StartedAt: time.Now(),
	}

	logger.WithField("asps", len(roster.Asps)).Info("Scrape run started")

	for i, asp := range roster.Asps {
		if i > 0 && c.delay > 0 {
			select {
			case <-ctx.Done():
			case <-time.After(c.delay):
			}
		}

		if ctx.Err() != nil {
			// Run deadline hit; the remaining ASPs were never attempted.
			report.Skipped = append(report.Skipped, domain.RunOutcome{
				AspID:   asp.ID,
				AspName: asp.Name,
				Message: "run cancelled before this ASP was attempted",
			})
			c.recordStatus(asp.ID, domain.ScrapeStatusSkipped, logger)
			continue
		}

		outcome, status := c.runAsp(ctx, asp, roster.Media, period)

		switch status {
		case domain.ScrapeStatusSuccess:
			report.Succeeded = append(report.Succeeded, outcome)
		case domain.ScrapeStatusSkipped:
			report.Skipped = append(report.Skipped, outcome)
		default:
			report.Failed = append(report.Failed, outcome)
		}

		c.recordStatus(asp.ID, status, logger)
	}

	report.FinishedAt = time.Now()

	logger.WithFields(log.Fields{
		"succeeded": len(report.Succeeded),
		"failed":    len(report.Failed),
		"skipped":   len(report.Skipped),
		"rows":      report.TotalRows(),
		"duration":  report.FinishedAt.Sub(report.StartedAt).String(),
	}).Info("Scrape run finished")

	return report
}

// runAsp performs the full session for one ASP. Every error path returns an
// outcome instead of propagating, so a broken site never aborts the roster.
func (c *coordinator) runAsp(
	ctx context.Context,
	asp *domain.Asp,
	media *domain.Media,
	period domain.Period,
) (domain.RunOutcome, domain.ScrapeStatus) {
	started := time.Now()
	logger := log.ForContext(ctx).WithField("asp", asp.Name)

	outcome := domain.RunOutcome{AspID: asp.ID, AspName: asp.Name}

	cred, err := c.resolver.Resolve(ctx, asp.ID, media.ID)
	if err != nil {
		if errors.Is(err, domain.ErrCredentialMissing) {
			// Expected for ASPs onboarded before their credentials; the
			// adapter (and its browser) is never started.
			logger.Info("No credential, skipping")
			outcome.Message = err.Error()
			outcome.Duration = time.Since(started)
			return outcome, domain.ScrapeStatusSkipped
		}

		return c.failed(outcome, started, err, logger)
	}

	adapter, err := c.adapters.Adapter(asp)
	if err != nil {
		return c.failed(outcome, started, err, logger)
	}
	defer adapter.Close()

	if err := adapter.Login(ctx, cred); err != nil {
		return c.failed(outcome, started, err, logger)
	}

	if err := adapter.NavigateToReport(ctx, period); err != nil {
		return c.failed(outcome, started, err, logger)
	}

	extraction, err := adapter.ExtractRawRows(ctx)
	if err != nil {
		return c.failed(outcome, started, err, logger)
	}

	stats, err := c.ingester.IngestExtraction(ctx, asp, media, adapter.MonthlySource(), period, extraction)
	if err != nil {
		return c.failed(outcome, started, domain.NewAdapterError(asp.Name, domain.StageIngest, err), logger)
	}

	outcome.Rows = stats.RowsUpserted
	outcome.Amount = utils.RoundWithTwoDecimalPlace(stats.TotalAmount)
	outcome.UnparsableDates = stats.UnparsableDates
	outcome.UnparsableAmounts = stats.UnparsableAmounts
	outcome.Duration = time.Since(started)

	logger.WithFields(log.Fields{
		"rows":   outcome.Rows,
		"amount": outcome.Amount,
	}).Info("ASP scraped")

	return outcome, domain.ScrapeStatusSuccess
}

func (c *coordinator) failed(
	outcome domain.RunOutcome,
	started time.Time,
	err error,
	logger log.Logger,
) (domain.RunOutcome, domain.ScrapeStatus) {
	outcome.Stage = stageOf(err)
	outcome.Message = err.Error()
	outcome.Duration = time.Since(started)

	logger.WithError(err).WithField("stage", outcome.Stage).Error("ASP scrape failed")

	return outcome, domain.ScrapeStatusFailed
}

func stageOf(err error) domain.Stage {
	var adapterErr *domain.AdapterError
	if errors.As(err, &adapterErr) {
		return adapterErr.Stage
	}
	return ""
}

func (c *coordinator) recordStatus(aspID string, status domain.ScrapeStatus, logger log.Logger) {
	if err := c.aspRepo.UpdateScrapeStatus(aspID, status, time.Now()); err != nil {
		logger.WithError(err).WithField("asp_id", aspID).Warn("Could not record scrape status")
	}
}
