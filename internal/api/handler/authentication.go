package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/etl-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/etl-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/etl-dashboard-api/pkg/middleware"
)

type LoginRequest struct {
	Password string `json:"password"`
}

type successResponse struct {
	Success bool `json:"success"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		response, err := service.Login(r.Context(), req.Password)
		if err != nil {
			handleLoginError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, response)
	}
}

// handleLoginError trata os erros específicos de login
func handleLoginError(w http.ResponseWriter, err error) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		if authErr.Code == apiErrors.ErrInvalidCredentials {
			logrus.Warn("Tentativa de login com senha inválida")
		} else {
			logrus.WithError(err).Error("Erro no login administrativo")
		}

		apiErrors.WriteError(w, authErr.Code, authErr.Details, nil)
		return
	}

	logrus.WithError(err).Error("Erro inesperado no login")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
}

// Logout sempre responde sucesso; falhas ao remover a sessão são apenas registradas
func Logout(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.Logout(r.Context(), bearer(r)); err != nil {
			logrus.WithError(err).Error("Erro ao encerrar sessão")
		}

		writeJSON(w, http.StatusOK, successResponse{Success: true})
	}
}

func Verify(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.Verify(r.Context(), bearer(r)))
	}
}

func bearer(r *http.Request) string {
	if token := middleware.BearerFromContext(r.Context()); token != "" {
		return token
	}
	return middleware.BearerToken(r)
}
