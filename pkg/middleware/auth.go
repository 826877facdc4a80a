package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/etl-dashboard-api/internal/domain"
	"github.com/vfg2006/etl-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/etl-dashboard-api/pkg/apiErrors"
)

type contextKey string

const (
	ContextKeyBearer  contextKey = "bearer"
	ContextKeySession contextKey = "session"
)

// SessionValidator confere o token de uma sessão administrativa
type SessionValidator interface {
	ValidateToken(ctx context.Context, bearer string) (*domain.AdminSession, error)
}

// BearerToken extrai o token do cabeçalho Authorization
func BearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader {
		return ""
	}
	return strings.TrimSpace(token)
}

// AuthMiddleware guarda o bearer no contexto. A validação fica a cargo de RequireAuth.
func AuthMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := BearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyBearer, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BearerFromContext retorna o token guardado por AuthMiddleware
func BearerFromContext(ctx context.Context) string {
	token, _ := ctx.Value(ContextKeyBearer).(string)
	return token
}

// SessionFromContext retorna a sessão validada por RequireAuth
func SessionFromContext(ctx context.Context) (*domain.AdminSession, bool) {
	session, ok := ctx.Value(ContextKeySession).(*domain.AdminSession)
	return session, ok
}

// RequireAuth restringe a rota a sessões administrativas ativas
func RequireAuth(validator SessionValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := BearerFromContext(r.Context())
			if token == "" {
				token = BearerToken(r)
			}

			if token == "" {
				logrus.WithField("path", r.URL.Path).Warning("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrAuthRequired, "Authentication required", nil)
				return
			}

			session, err := validator.ValidateToken(r.Context(), token)
			if err != nil {
				if authenticating.IsSessionError(err) {
					apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Invalid or expired session", nil)
					return
				}

				logrus.WithError(err).Error("Erro ao verificar sessão")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Authentication check failed", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeySession, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
