package handler

import (
	"net/http"

	"github.com/vfg2006/asp-revenue-pipeline/infrastructure/repository"
	"github.com/vfg2006/asp-revenue-pipeline/pkg/apiErrors"
	"github.com/vfg2006/asp-revenue-pipeline/pkg/log"
	"github.com/vfg2006/asp-revenue-pipeline/pkg/utils"
)

// ListAsps returns the active ASP roster with each site's last-scrape
// status. An optional scraped_since=YYYY-MM-DD query filters to ASPs scraped
// on or after that date; operators use it to spot stale sites.
func ListAsps(aspRepo repository.AspRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - ListAsps")

		asps, err := aspRepo.ListActive()
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Could not list ASPs")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "could not list ASPs", nil)
			return
		}

		if sinceStr := r.URL.Query().Get("scraped_since"); sinceStr != "" {
			since, err := utils.ParseDate(sinceStr)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat,
					"scraped_since must be YYYY-MM-DD", nil)
				return
			}

			filtered := asps[:0]
			for _, asp := range asps {
				if asp.LastScrapeAt != nil && !asp.LastScrapeAt.Before(*since) {
					filtered = append(filtered, asp)
				}
			}
			asps = filtered
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"asps": asps,
		})
	}
}
