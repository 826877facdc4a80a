package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/etl-dashboard-api/infrastructure/integrator/instantly"
	"github.com/vfg2006/etl-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/etl-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/etl-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/etl-dashboard-api/internal/usecases/ranking"
	"github.com/vfg2006/etl-dashboard-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/health",
			Method:  http.MethodGet,
			Handler: Health(),
		},
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Metrics(service insighting.MetricsService, integrator instantly.Integrator, syncer SendsSyncer, validator middleware.SessionValidator) []router.Route {
	return []router.Route{
		{
			Path:    "/api/metrics",
			Method:  http.MethodGet,
			Handler: GetMetrics(service),
		},
		{
			Path:    "/api/metrics/date/:date",
			Method:  http.MethodGet,
			Handler: GetMetricsForDate(service),
		},
		{
			Path:    "/api/metrics/range",
			Method:  http.MethodGet,
			Handler: GetMetricsForRange(service),
		},
		{
			Path:    "/api/metrics/health",
			Method:  http.MethodGet,
			Handler: ProviderHealth(integrator),
		},
		{
			Path:    "/api/metrics/refresh",
			Method:  http.MethodPost,
			Handler: RefreshMetrics(syncer),
		},
		{
			Path:    "/api/metrics/sync-date",
			Method:  http.MethodPost,
			Handler: SyncDate(syncer),
		},
		{
			Path:        "/api/metrics/sync-status",
			Method:      http.MethodGet,
			Handler:     GetSyncStatus(syncer),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireAuth(validator)},
		},
	}
}

func Leads(service insighting.MetricsService, validator middleware.SessionValidator) []router.Route {
	return []router.Route{
		{
			Path:        "/api/leads",
			Method:      http.MethodPost,
			Handler:     SubmitLeads(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireAuth(validator)},
		},
		{
			Path:        "/api/leads/recent",
			Method:      http.MethodGet,
			Handler:     GetRecentLeads(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireAuth(validator)},
		},
	}
}

func Industries(service ranking.RankingService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/industries",
			Method:  http.MethodGet,
			Handler: ListIndustries(service),
		},
		{
			Path:    "/api/industries/:id",
			Method:  http.MethodGet,
			Handler: IndustryCollection(service),
		},
		{
			Path:    "/api/industries/leads",
			Method:  http.MethodPost,
			Handler: SubmitIndustryLeads(service),
		},
		{
			Path:    "/api/industries/:id/stats",
			Method:  http.MethodGet,
			Handler: GetIndustryStats(service),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/api/auth/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/api/auth/logout",
			Method:  http.MethodPost,
			Handler: Logout(service),
		},
		{
			Path:    "/api/auth/verify",
			Method:  http.MethodGet,
			Handler: Verify(service),
		},
	}
}
