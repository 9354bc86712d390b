package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/asp-revenue-pipeline/internal/scheduler"
	"github.com/vfg2006/asp-revenue-pipeline/pkg/apiErrors"
	"github.com/vfg2006/asp-revenue-pipeline/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// RunScrape triggers a full scrape run in the background. The run covers
// every active ASP for the current period; a run already in flight is not
// interrupted or queued.
func RunScrape(sync *scheduler.ScrapeSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - RunScrape")

		if !sync.TriggerManualSync() {
			apiErrors.WriteError(w, apiErrors.ErrRunAlreadyInProgress,
				"a scrape run is already in progress", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]any{
			"message": "scrape run started",
		})
	}
}

// GetScrapeStatus returns the scheduler state.
func GetScrapeStatus(sync *scheduler.ScrapeSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - GetScrapeStatus")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(sync.GetStatus())
	}
}

// GetScrapeReport returns the reports from the most recent completed run.
func GetScrapeReport(sync *scheduler.ScrapeSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - GetScrapeReport")

		reports := sync.LastReports()
		if len(reports) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrNoReportAvailable,
				"no scrape run has completed yet", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"reports": reports,
		})
	}
}
