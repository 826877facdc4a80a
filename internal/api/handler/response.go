package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/etl-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/etl-dashboard-api/internal/usecases/ranking"
	"github.com/vfg2006/etl-dashboard-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}

var validationErrors = []error{
	insighting.ErrInvalidDate,
	insighting.ErrInvalidRange,
	insighting.ErrInvalidLeadCount,
	ranking.ErrInvalidDate,
	ranking.ErrMissingLeadFields,
	ranking.ErrInvalidLeadsCount,
}

// writeServiceError traduz os erros dos casos de uso para a resposta padronizada
func writeServiceError(w http.ResponseWriter, err error, message string) {
	for _, validationErr := range validationErrors {
		if errors.Is(err, validationErr) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, validationErr.Error(), nil)
			return
		}
	}

	if errors.Is(err, ranking.ErrIndustryNotFound) {
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Industry not found", nil)
		return
	}

	logrus.WithError(err).Error(message)
	apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, message, nil)
}
