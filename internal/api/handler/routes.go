package handler

import (
	"net/http"

	"github.com/vfg2006/asp-revenue-pipeline/infrastructure/repository"
	"github.com/vfg2006/asp-revenue-pipeline/internal/api/handler/router"
	"github.com/vfg2006/asp-revenue-pipeline/internal/scheduler"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Scrape(sync *scheduler.ScrapeSyncService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/scrape/run",
			Method:  http.MethodPost,
			Handler: RunScrape(sync),
		},
		{
			Path:    "/v1/scrape/status",
			Method:  http.MethodGet,
			Handler: GetScrapeStatus(sync),
		},
		{
			Path:    "/v1/scrape/report",
			Method:  http.MethodGet,
			Handler: GetScrapeReport(sync),
		},
	}
}

func Asps(aspRepo repository.AspRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/asps",
			Method:  http.MethodGet,
			Handler: ListAsps(aspRepo),
		},
	}
}
