package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/etl-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/etl-dashboard-api/pkg/apiErrors"
)

type SubmitLeadsRequest struct {
	Date      string  `json:"date"`
	LeadCount *int64  `json:"leadCount"`
	Notes     *string `json:"notes"`
}

// SubmitLeads grava a contagem de leads de um dia (hoje quando a data não é informada)
func SubmitLeads(service insighting.MetricsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SubmitLeadsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "leadCount must be a non-negative integer", nil)
			return
		}

		if req.LeadCount == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "leadCount is required", nil)
			return
		}

		result, err := service.UpdateLeadsForDate(r.Context(), req.Date, *req.LeadCount, req.Notes)
		if err != nil {
			writeServiceError(w, err, "Failed to update lead count")
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func GetRecentLeads(service insighting.MetricsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		days, _ := strconv.Atoi(r.URL.Query().Get("days"))

		entries, err := service.GetRecentEntries(r.Context(), days)
		if err != nil {
			writeServiceError(w, err, "Failed to fetch recent entries")
			return
		}

		writeJSON(w, http.StatusOK, entries)
	}
}
