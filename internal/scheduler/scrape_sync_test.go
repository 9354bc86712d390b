package scheduler

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	repomocks "github.com/vfg2006/asp-revenue-pipeline/infrastructure/repository/mocks"
	"github.com/vfg2006/asp-revenue-pipeline/internal/config"
	"github.com/vfg2006/asp-revenue-pipeline/internal/domain"
	"github.com/vfg2006/asp-revenue-pipeline/internal/runner"
	runnermocks "github.com/vfg2006/asp-revenue-pipeline/internal/runner/mocks"
	"github.com/vfg2006/asp-revenue-pipeline/pkg/log"
)

func testSyncConfig() config.ScrapeSync {
	return config.ScrapeSync{
		CronSchedule: "0 6 * * *",
		Enabled:      true,
		RunTimeout:   time.Minute,
	}
}

func TestTriggerManualSyncRunsEveryMedia(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)

	coordinator := runnermocks.NewMockCoordinator(ctrl)
	aspRepo := repomocks.NewMockAspRepository(ctrl)
	mediaRepo := repomocks.NewMockMediaRepository(ctrl)

	asps := []*domain.Asp{{ID: "asp-1", Name: "A8.net"}}
	media := []*domain.Media{
		{ID: "media-1", Slug: "site-a"},
		{ID: "media-2", Slug: "site-b"},
	}

	aspRepo.EXPECT().ListActive().Return(asps, nil)
	mediaRepo.EXPECT().List().Return(media, nil)

	done := make(chan struct{})
	var once sync.Once

	calls := 0
	coordinator.EXPECT().RunAll(gomock.Any(), gomock.Any(), gomock.Any()).Times(2).
		DoAndReturn(func(_ any, roster runner.Roster, _ domain.Period) *domain.RunReport {
			calls++
			if calls == 2 {
				once.Do(func() { close(done) })
			}
			return &domain.RunReport{RunID: roster.Media.Slug}
		})

	service := NewScrapeSyncService(coordinator, aspRepo, mediaRepo, testSyncConfig())

	require.True(t, service.TriggerManualSync())

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("scrape run did not complete")
	}

	// The reports become visible once the run goroutine finishes.
	assert.Eventually(t, func() bool {
		return len(service.LastReports()) == 2
	}, 5*time.Second, 10*time.Millisecond)
}

func TestTriggerManualSyncIgnoresOverlap(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)

	coordinator := runnermocks.NewMockCoordinator(ctrl)
	aspRepo := repomocks.NewMockAspRepository(ctrl)
	mediaRepo := repomocks.NewMockMediaRepository(ctrl)

	release := make(chan struct{})
	started := make(chan struct{})

	aspRepo.EXPECT().ListActive().DoAndReturn(func() ([]*domain.Asp, error) {
		close(started)
		<-release
		return nil, nil
	})

	service := NewScrapeSyncService(coordinator, aspRepo, mediaRepo, testSyncConfig())

	require.True(t, service.TriggerManualSync())
	<-started

	// A second trigger while the first run still holds the flag is a no-op.
	assert.False(t, service.TriggerManualSync())

	status := service.GetStatus()
	assert.Equal(t, true, status["sync_running"])

	close(release)

	assert.Eventually(t, func() bool {
		return service.GetStatus()["sync_running"] == false
	}, 5*time.Second, 10*time.Millisecond)
}
