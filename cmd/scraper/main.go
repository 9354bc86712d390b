// Command scraper runs one scrape-and-ingest pass from the terminal. Meant
// for targeted re-runs and for sites that need an operator present for the
// manual login fallback.
package main

import (
	"context"
	"flag"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/asp-revenue-pipeline/infrastructure/database/postgres"
	"github.com/vfg2006/asp-revenue-pipeline/infrastructure/repository"
	"github.com/vfg2006/asp-revenue-pipeline/infrastructure/secrets"
	"github.com/vfg2006/asp-revenue-pipeline/internal/browser"
	"github.com/vfg2006/asp-revenue-pipeline/internal/config"
	"github.com/vfg2006/asp-revenue-pipeline/internal/domain"
	"github.com/vfg2006/asp-revenue-pipeline/internal/runner"
	"github.com/vfg2006/asp-revenue-pipeline/internal/scraper"
	"github.com/vfg2006/asp-revenue-pipeline/internal/usecases/ingesting"
	"github.com/vfg2006/asp-revenue-pipeline/internal/usecases/resolving"
)

func main() {
	var (
		aspFlag   = flag.String("asp", "", "comma-separated ASP names to scrape (default: all active)")
		monthFlag = flag.Int("month", 0, "target month 1-12 (default: current)")
		yearFlag  = flag.Int("year", 0, "target year (default: current)")
		mediaFlag = flag.String("media", "", "media slug to scrape for (default: first configured media)")
		resetFlag = flag.Bool("reset", false, "delete the period's ingested rows before scraping, for corrective re-runs")
	)
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	period := resolvePeriod(*yearFlag, *monthFlag)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ScrapeSync.RunTimeout)
	defer cancel()

	pgConn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Could not connect to PostgreSQL")
	}
	defer pgConn.Close()

	aspRepo := repository.NewAspRepository(pgConn)
	mediaRepo := repository.NewMediaRepository(pgConn)
	accountItemRepo := repository.NewAccountItemRepository(pgConn)
	credentialRepo := repository.NewAspCredentialRepository(pgConn)
	dailyRepo := repository.NewDailyActualRepository(pgConn)
	monthlyRepo := repository.NewMonthlyActualRepository(pgConn)

	media := resolveMedia(mediaRepo, *mediaFlag)
	asps := resolveAsps(aspRepo, *aspFlag)

	resolver := resolving.NewService(credentialRepo, secrets.NewEnvStore("ASP_SECRET_"))
	ingester := ingesting.NewService(accountItemRepo, dailyRepo, monthlyRepo)

	engine := browser.NewEngine(cfg.Browser, cfg.Screenshot)
	factory := scraper.NewFactory(scraper.DefaultRegistry(), engine, browser.LogNotifier{}, cfg.Browser)

	coordinator := runner.NewCoordinator(
		resolver,
		factory,
		ingester,
		aspRepo,
		time.Duration(cfg.ScrapeSync.RequestDelaySeconds)*time.Second,
	)

	if *resetFlag {
		for _, asp := range asps {
			deleted, err := ingester.ResetPeriod(ctx, asp, media, period)
			if err != nil {
				logrus.WithError(err).WithField("asp", asp.Name).Fatal("Could not reset the period before re-scraping")
			}
			logrus.WithFields(logrus.Fields{
				"asp":          asp.Name,
				"period":       period.String(),
				"rows_deleted": deleted,
			}).Info("Period reset")
		}
	}

	report := coordinator.RunAll(ctx, runner.Roster{Media: media, Asps: asps}, period)

	printReport(report)

	if report.HasFailures() {
		os.Exit(1)
	}
}

func resolvePeriod(year, month int) domain.Period {
	period := domain.CurrentPeriod(time.Now())

	if year != 0 {
		period.Year = year
	}
	if month != 0 {
		if month < 1 || month > 12 {
			logrus.Fatalf("Invalid month %d, expected 1-12", month)
		}
		period.Month = time.Month(month)
	}

	return period
}

func resolveMedia(mediaRepo repository.MediaRepository, slug string) *domain.Media {
	if slug != "" {
		media, err := mediaRepo.GetBySlug(slug)
		if err != nil {
			logrus.WithError(err).Fatal("Could not look up media")
		}
		if media == nil {
			logrus.Fatalf("No media with slug %q", slug)
		}
		return media
	}

	mediaList, err := mediaRepo.List()
	if err != nil {
		logrus.WithError(err).Fatal("Could not list media")
	}
	if len(mediaList) == 0 {
		logrus.Fatal("No media configured, run the bootstrap script first")
	}

	return mediaList[0]
}

func resolveAsps(aspRepo repository.AspRepository, aspFlag string) []*domain.Asp {
	if aspFlag == "" {
		asps, err := aspRepo.ListActive()
		if err != nil {
			logrus.WithError(err).Fatal("Could not list active ASPs")
		}
		if len(asps) == 0 {
			logrus.Fatal("No active ASPs configured")
		}
		return asps
	}

	names := strings.Split(aspFlag, ",")
	for i := range names {
		names[i] = strings.TrimSpace(names[i])
	}

	asps, err := aspRepo.ListByNames(names)
	if err != nil {
		logrus.WithError(err).Fatal("Could not look up ASPs by name")
	}
	if len(asps) != len(names) {
		found := make(map[string]bool, len(asps))
		for _, asp := range asps {
			found[asp.Name] = true
		}
		for _, name := range names {
			if !found[name] {
				logrus.Fatalf("Unknown ASP %q", name)
			}
		}
	}

	return asps
}

func printReport(report *domain.RunReport) {
	logger := logrus.WithFields(logrus.Fields{
		"run_id": report.RunID,
		"period": report.Period.String(),
	})

	for _, o := range report.Succeeded {
		logger.WithFields(logrus.Fields{
			"rows":     o.Rows,
			"amount":   o.Amount,
			"duration": o.Duration.String(),
		}).Infof("OK      %s", o.AspName)
	}
	for _, o := range report.Skipped {
		logger.WithField("reason", o.Message).Infof("SKIPPED %s", o.AspName)
	}
	for _, o := range report.Failed {
		logger.WithFields(logrus.Fields{
			"stage": o.Stage,
			"error": o.Message,
		}).Errorf("FAILED  %s", o.AspName)
	}

	logger.WithFields(logrus.Fields{
		"succeeded": len(report.Succeeded),
		"failed":    len(report.Failed),
		"skipped":   len(report.Skipped),
		"rows":      report.TotalRows(),
	}).Info("Run complete")
}
