package ingesting

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/asp-revenue-pipeline/infrastructure/repository"
	"github.com/vfg2006/asp-revenue-pipeline/internal/domain"
	"github.com/vfg2006/asp-revenue-pipeline/internal/normalizer"
	"github.com/vfg2006/asp-revenue-pipeline/pkg/log"
)

type Service struct {
	itemRepo    repository.AccountItemRepository
	dailyRepo   repository.DailyActualRepository
	monthlyRepo repository.MonthlyActualRepository
}

func NewService(
	itemRepo repository.AccountItemRepository,
	dailyRepo repository.DailyActualRepository,
	monthlyRepo repository.MonthlyActualRepository,
) *Service {
	return &Service{
		itemRepo:    itemRepo,
		dailyRepo:   dailyRepo,
		monthlyRepo: monthlyRepo,
	}
}

func (s *Service) IngestExtraction(
	ctx context.Context,
	asp *domain.Asp,
	media *domain.Media,
	source domain.MonthlySource,
	period domain.Period,
	extraction domain.Extraction,
) (*IngestStats, error) {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"asp":    asp.Name,
		"media":  media.Slug,
		"period": period.String(),
	})

	item, err := s.itemRepo.GetAffiliateItem(media.ID, asp.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up affiliate account item")
	}
	if item == nil {
		return nil, errors.Wrapf(domain.ErrAccountItemMissing, "asp=%s media=%s", asp.ID, media.ID)
	}

	stats := &IngestStats{DroppedByHeuristic: extraction.Dropped}
	dailyRowsSeen := false

	for _, raw := range extraction.Rows {
		parsed, err := normalizer.ParseDateInPeriod(raw.DateText, period)
		if err != nil {
			stats.UnparsableDates++
			logger.WithField("date_text", raw.DateText).Warn("Skipping row with unparsable date")
			continue
		}

		amount, err := normalizer.ParseAmount(raw.AmountText)
		if err != nil {
			stats.UnparsableAmounts++
			logger.WithField("amount_text", raw.AmountText).Warn("Skipping row with unparsable amount")
			continue
		}

		record := &domain.RevenueRecord{
			Date:          parsed.Date,
			MediaID:       media.ID,
			AccountItemID: item.ID,
			AspID:         asp.ID,
			Amount:        amount,
		}

		if parsed.Monthly {
			// A month-granularity row may only land in the monthly ledger
			// when this ASP's monthly figure comes from the native report.
			// Writing it for a derived-source ASP would double the month
			// once the daily sum is reconciled on top.
			if source != domain.MonthlySourceNative {
				logger.WithField("date", parsed.Date.Format("2006-01-02")).
					Warn("Monthly row from a derived-source site, not persisting")
				continue
			}
			if err := s.UpsertMonthly(ctx, record); err != nil {
				stats.FailedUpserts++
				logger.WithError(err).Error("Failed to upsert monthly actual")
				continue
			}
		} else {
			dailyRowsSeen = true
			if err := s.UpsertDaily(ctx, record); err != nil {
				stats.FailedUpserts++
				logger.WithError(err).Error("Failed to upsert daily actual")
				continue
			}
		}

		stats.RowsUpserted++
		stats.TotalAmount += amount
	}

	if source == domain.MonthlySourceDerivedFromDaily && dailyRowsSeen {
		if _, err := s.DeriveMonthlyFromDaily(ctx, asp.ID, media.ID, item.ID, period); err != nil {
			return stats, errors.Wrap(err, "failed to derive monthly actual from daily rows")
		}
	}

	logger.WithFields(log.Fields{
		"rows_upserted":      stats.RowsUpserted,
		"unparsable_dates":   stats.UnparsableDates,
		"unparsable_amounts": stats.UnparsableAmounts,
		"failed_upserts":     stats.FailedUpserts,
		"dropped":            stats.DroppedByHeuristic,
		"total_amount":       stats.TotalAmount,
	}).Info("Extraction ingested")

	return stats, nil
}

func (s *Service) UpsertDaily(ctx context.Context, record *domain.RevenueRecord) error {
	return s.dailyRepo.SaveOrUpdate(record)
}

func (s *Service) UpsertMonthly(ctx context.Context, record *domain.RevenueRecord) error {
	return s.monthlyRepo.SaveOrUpdate(record)
}

func (s *Service) DeriveMonthlyFromDaily(ctx context.Context, aspID, mediaID, accountItemID string, period domain.Period) (*domain.RevenueRecord, error) {
	dailies, err := s.dailyRepo.GetByMonth(aspID, mediaID, accountItemID, period)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load daily actuals for month")
	}

	total := 0.0
	for _, d := range dailies {
		total += d.Amount
	}

	record := &domain.RevenueRecord{
		Date:          period.LastDay(),
		MediaID:       mediaID,
		AccountItemID: accountItemID,
		AspID:         aspID,
		Amount:        total,
	}

	if err := s.monthlyRepo.SaveOrUpdate(record); err != nil {
		return nil, errors.Wrap(err, "failed to upsert derived monthly actual")
	}

	return record, nil
}

// ResetPeriod is correction tooling. The regular pipeline never deletes, it
// upserts; this exists for re-running a month after bad rows landed.
func (s *Service) ResetPeriod(ctx context.Context, asp *domain.Asp, media *domain.Media, period domain.Period) (int64, error) {
	item, err := s.itemRepo.GetAffiliateItem(media.ID, asp.ID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to look up affiliate account item")
	}
	if item == nil {
		return 0, errors.Wrapf(domain.ErrAccountItemMissing, "asp=%s media=%s", asp.ID, media.ID)
	}

	dailyDeleted, err := s.dailyRepo.DeleteByMonth(asp.ID, media.ID, item.ID, period)
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete daily actuals for month")
	}

	monthlyDeleted, err := s.monthlyRepo.DeleteByPeriod(asp.ID, media.ID, item.ID, period)
	if err != nil {
		return dailyDeleted, errors.Wrap(err, "failed to delete monthly actual for month")
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"asp":             asp.Name,
		"media":           media.Slug,
		"period":          period.String(),
		"daily_deleted":   dailyDeleted,
		"monthly_deleted": monthlyDeleted,
	}).Info("Period reset for re-ingestion")

	return dailyDeleted + monthlyDeleted, nil
}
