package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/etl-dashboard-api/internal/domain"
	"github.com/vfg2006/etl-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/etl-dashboard-api/pkg/utils"
)

// SendsSyncer expõe a sincronização de envios para execução manual
type SendsSyncer interface {
	IsEnabled() bool
	SyncToday(ctx context.Context) domain.SyncResult
	SyncSendsForDate(ctx context.Context, date time.Time, syncType domain.SyncType) domain.SyncResult
	GetStatus(ctx context.Context) map[string]any
}

type SyncDateRequest struct {
	Date string `json:"date"`
}

type RefreshResponse struct {
	Success         bool      `json:"success"`
	Date            string    `json:"date"`
	TotalSendsToday int64     `json:"totalSendsToday"`
	SyncedAt        time.Time `json:"syncedAt"`
}

type syncFailure struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// RefreshMetrics sincroniza imediatamente os envios do dia atual
func RefreshMetrics(syncer SendsSyncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RefreshMetrics")

		if !syncer.IsEnabled() {
			apiErrors.WriteError(w, apiErrors.ErrCommunication, "INSTANTLY_API_KEY not configured", nil)
			return
		}

		result := syncer.SyncToday(r.Context())
		if !result.Success {
			writeJSON(w, http.StatusInternalServerError, syncFailure{Success: false, Error: result.Error})
			return
		}

		writeJSON(w, http.StatusOK, RefreshResponse{
			Success:         true,
			Date:            result.Date,
			TotalSendsToday: result.Sends,
			SyncedAt:        time.Now().UTC(),
		})
	}
}

// SyncDate sobrescreve os envios de um dia específico com o valor atual do Instantly
func SyncDate(syncer SendsSyncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SyncDate")

		var req SyncDateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.Date == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Date is required", nil)
			return
		}

		if !utils.IsValidDate(req.Date) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid date format. Use YYYY-MM-DD", nil)
			return
		}

		if !syncer.IsEnabled() {
			apiErrors.WriteError(w, apiErrors.ErrCommunication, "INSTANTLY_API_KEY not configured", nil)
			return
		}

		date, err := utils.ParseDate(req.Date)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid date format. Use YYYY-MM-DD", nil)
			return
		}

		writeJSON(w, http.StatusOK, syncer.SyncSendsForDate(r.Context(), *date, domain.SyncTypeDate))
	}
}

// GetSyncStatus retorna o estado do agendador e as últimas execuções
func GetSyncStatus(syncer SendsSyncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, syncer.GetStatus(r.Context()))
	}
}
