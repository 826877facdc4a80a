package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/etl-dashboard-api/infrastructure/integrator/instantly"
	"github.com/vfg2006/etl-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/etl-dashboard-api/pkg/apiErrors"
)

// GetMetrics retorna as seis janelas do dashboard, a tendência e a última sincronização
func GetMetrics(service insighting.MetricsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metrics, err := service.GetMetricsForAllPeriods(r.Context())
		if err != nil {
			writeServiceError(w, err, "Failed to fetch metrics")
			return
		}

		writeJSON(w, http.StatusOK, metrics)
	}
}

func GetMetricsForDate(service insighting.MetricsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date := httprouter.ParamsFromContext(r.Context()).ByName("date")

		metrics, err := service.GetMetricsForDate(r.Context(), date)
		if err != nil {
			writeServiceError(w, err, "Failed to fetch date metrics")
			return
		}

		writeJSON(w, http.StatusOK, metrics)
	}
}

func GetMetricsForRange(service insighting.MetricsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := r.URL.Query().Get("start")
		end := r.URL.Query().Get("end")

		if start == "" || end == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Valid start and end dates (YYYY-MM-DD) are required", nil)
			return
		}

		metrics, err := service.GetMetricsForRange(r.Context(), start, end)
		if err != nil {
			writeServiceError(w, err, "Failed to fetch range metrics")
			return
		}

		writeJSON(w, http.StatusOK, metrics)
	}
}

// ProviderHealth verifica se a API do Instantly responde com a chave configurada
func ProviderHealth(integrator instantly.Integrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, integrator.HealthCheck(r.Context()))
	}
}
