package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/etl-dashboard-api/internal/domain"
	"github.com/vfg2006/etl-dashboard-api/internal/usecases/ranking"
	"github.com/vfg2006/etl-dashboard-api/pkg/apiErrors"
)

type SubmitIndustryLeadsResponse struct {
	Success bool                 `json:"success"`
	Entry   *domain.IndustryLead `json:"entry"`
}

func ListIndustries(service ranking.RankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		industries, err := service.ListIndustries(r.Context())
		if err != nil {
			writeServiceError(w, err, "Failed to fetch industries")
			return
		}

		writeJSON(w, http.StatusOK, industries)
	}
}

// IndustryCollection atende GET /api/industries/leads e /api/industries/leaderboard.
// O httprouter não permite rotas estáticas ao lado de /api/industries/:id/stats.
func IndustryCollection(service ranking.RankingService) http.HandlerFunc {
	leads := GetIndustryLeads(service)
	leaderboard := GetLeaderboard(service)

	return func(w http.ResponseWriter, r *http.Request) {
		switch httprouter.ParamsFromContext(r.Context()).ByName("id") {
		case "leads":
			leads(w, r)
		case "leaderboard":
			leaderboard(w, r)
		default:
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Not found", nil)
		}
	}
}

func GetIndustryLeads(service ranking.RankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		response, err := service.GetIndustryLeads(r.Context(), query.Get("startDate"), query.Get("endDate"), query.Get("source"))
		if err != nil {
			writeServiceError(w, err, "Failed to fetch industry leads")
			return
		}

		writeJSON(w, http.StatusOK, response)
	}
}

func GetLeaderboard(service ranking.RankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		limit, _ := strconv.Atoi(query.Get("limit"))

		response, err := service.GetLeaderboard(r.Context(), query.Get("startDate"), query.Get("endDate"), query.Get("source"), limit)
		if err != nil {
			writeServiceError(w, err, "Failed to fetch leaderboard")
			return
		}

		writeJSON(w, http.StatusOK, response)
	}
}

func SubmitIndustryLeads(service ranking.RankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var submission ranking.LeadSubmission
		if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		lead, err := service.SubmitIndustryLeads(r.Context(), submission)
		if err != nil {
			writeServiceError(w, err, "Failed to submit leads")
			return
		}

		writeJSON(w, http.StatusOK, SubmitIndustryLeadsResponse{
			Success: true,
			Entry:   lead,
		})
	}
}

func GetIndustryStats(service ranking.RankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(httprouter.ParamsFromContext(r.Context()).ByName("id"), 10, 64)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid industry id", nil)
			return
		}

		query := r.URL.Query()
		stats, err := service.GetIndustryStats(r.Context(), id, query.Get("startDate"), query.Get("endDate"))
		if err != nil {
			writeServiceError(w, err, "Failed to fetch industry stats")
			return
		}

		writeJSON(w, http.StatusOK, stats)
	}
}
