package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/vfg2006/asp-revenue-pipeline/infrastructure/repository"
	"github.com/vfg2006/asp-revenue-pipeline/internal/config"
	"github.com/vfg2006/asp-revenue-pipeline/internal/domain"
	"github.com/vfg2006/asp-revenue-pipeline/internal/runner"
	"github.com/vfg2006/asp-revenue-pipeline/pkg/log"
)

// ScrapeSyncService schedules and executes full scrape runs. One run at a
// time; a trigger while a run is in flight is ignored, not queued, because
// upserts make the next scheduled run pick up whatever this one misses.
type ScrapeSyncService struct {
	scheduler   *gocron.Scheduler
	config      config.ScrapeSync
	coordinator runner.Coordinator
	aspRepo     repository.AspRepository
	mediaRepo   repository.MediaRepository

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastReports         []*domain.RunReport
}

func NewScrapeSyncService(
	coordinator runner.Coordinator,
	aspRepo repository.AspRepository,
	mediaRepo repository.MediaRepository,
	syncConfig config.ScrapeSync,
) *ScrapeSyncService {
	log.L.WithFields(log.Fields{
		"cron_schedule":   syncConfig.CronSchedule,
		"sync_enabled":    syncConfig.Enabled,
		"request_delay_s": syncConfig.RequestDelaySeconds,
		"run_timeout":     syncConfig.RunTimeout.String(),
	}).Info("Scrape sync scheduler configuration loaded")

	return &ScrapeSyncService{
		scheduler:   gocron.NewScheduler(time.Local),
		config:      syncConfig,
		coordinator: coordinator,
		aspRepo:     aspRepo,
		mediaRepo:   mediaRepo,
	}
}

// Start registers the cron job and runs the scheduler in the background
// until ctx is cancelled.
func (s *ScrapeSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		log.L.Info("Scheduled scraping disabled by configuration")
		return nil
	}

	log.L.WithField("cron", s.config.CronSchedule).Info("Starting scrape sync scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAll()
	})
	if err != nil {
		return fmt.Errorf("scheduling scrape sync: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("Stopping scrape sync scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAll scrapes every active ASP for every media, for the current period.
func (s *ScrapeSyncService) syncAll() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		log.L.Info("Scrape run already in progress, ignoring")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), s.config.RunTimeout)
	defer cancel()

	period := domain.CurrentPeriod(time.Now())

	asps, err := s.aspRepo.ListActive()
	if err != nil {
		log.L.WithError(err).Error("Could not list active ASPs for scheduled scrape")
		return
	}
	if len(asps) == 0 {
		log.L.Info("No active ASPs, nothing to scrape")
		return
	}

	mediaList, err := s.mediaRepo.List()
	if err != nil {
		log.L.WithError(err).Error("Could not list media for scheduled scrape")
		return
	}

	var reports []*domain.RunReport
	for _, media := range mediaList {
		report := s.coordinator.RunAll(ctx, runner.Roster{Media: media, Asps: asps}, period)
		reports = append(reports, report)
	}

	s.syncMutex.Lock()
	s.lastReports = reports
	s.syncMutex.Unlock()
}

// TriggerManualSync starts a run in the background unless one is already in
// flight. Returns whether the run was actually started.
func (s *ScrapeSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		log.L.Info("Scrape run already in progress, ignoring manual trigger")
		return false
	}

	log.L.Info("Starting manual scrape run")
	go s.syncAll()

	return true
}

// GetStatus returns the scheduler state for the status endpoint.
func (s *ScrapeSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"sync_run_timeout":       s.config.RunTimeout.String(),
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}

// LastReports returns the reports produced by the most recent completed run.
func (s *ScrapeSyncService) LastReports() []*domain.RunReport {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	reports := make([]*domain.RunReport, len(s.lastReports))
	copy(reports, s.lastReports)

	return reports
}
