package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/asp-revenue-pipeline/infrastructure/database/postgres"
	"github.com/vfg2006/asp-revenue-pipeline/infrastructure/repository"
	"github.com/vfg2006/asp-revenue-pipeline/infrastructure/secrets"
	"github.com/vfg2006/asp-revenue-pipeline/internal/api"
	"github.com/vfg2006/asp-revenue-pipeline/internal/browser"
	"github.com/vfg2006/asp-revenue-pipeline/internal/config"
	"github.com/vfg2006/asp-revenue-pipeline/internal/runner"
	"github.com/vfg2006/asp-revenue-pipeline/internal/scheduler"
	"github.com/vfg2006/asp-revenue-pipeline/internal/scraper"
	"github.com/vfg2006/asp-revenue-pipeline/internal/usecases/ingesting"
	"github.com/vfg2006/asp-revenue-pipeline/internal/usecases/resolving"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Invalid log level %q, using info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	aspRepo := repository.NewAspRepository(pgConn)
	mediaRepo := repository.NewMediaRepository(pgConn)
	accountItemRepo := repository.NewAccountItemRepository(pgConn)
	credentialRepo := repository.NewAspCredentialRepository(pgConn)
	dailyRepo := repository.NewDailyActualRepository(pgConn)
	monthlyRepo := repository.NewMonthlyActualRepository(pgConn)

	secretStore := secrets.NewEnvStore("ASP_SECRET_")
	resolver := resolving.NewService(credentialRepo, secretStore)
	ingester := ingesting.NewService(accountItemRepo, dailyRepo, monthlyRepo)

	engine := browser.NewEngine(cfg.Browser, cfg.Screenshot)
	registry := scraper.DefaultRegistry()
	factory := scraper.NewFactory(registry, engine, browser.LogNotifier{}, cfg.Browser)

	coordinator := runner.NewCoordinator(
		resolver,
		factory,
		ingester,
		aspRepo,
		time.Duration(cfg.ScrapeSync.RequestDelaySeconds)*time.Second,
	)

	scrapeSyncService := scheduler.NewScrapeSyncService(coordinator, aspRepo, mediaRepo, cfg.ScrapeSync)

	if err := scrapeSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Could not start the scrape sync scheduler")
	} else {
		logrus.Info("Scrape sync scheduler started")
	}

	server, err := api.New(cfg, scrapeSyncService, aspRepo)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Could not connect to PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Could not ping PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
