package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/etl-dashboard-api/internal/domain"
	"github.com/vfg2006/etl-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/etl-dashboard-api/pkg/apiErrors"
)

type fakeValidator struct {
	session *domain.AdminSession
	err     error
	calls   int
}

func (f *fakeValidator) ValidateToken(_ context.Context, _ string) (*domain.AdminSession, error) {
	f.calls++
	return f.session, f.err
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := SessionFromContext(r.Context()); ok {
			w.Header().Set("X-Session", "1")
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header   string
		expected string
	}{
		{header: "", expected: ""},
		{header: "Token abc", expected: ""},
		{header: "Bearer abc", expected: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", tt.header)

			assert.Equal(t, tt.expected, BearerToken(req))
		})
	}
}

func TestRequireAuth(t *testing.T) {
	tests := []struct {
		name           string
		header         string
		validator      *fakeValidator
		expectedStatus int
		expectedCode   string
		expectedCalls  int
	}{
		{
			name:           "Sem token",
			validator:      &fakeValidator{},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   apiErrors.ErrAuthRequired,
		},
		{
			name:           "Sessão expirada",
			header:         "Bearer velho",
			validator:      &fakeValidator{err: authenticating.ErrInvalidToken},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   apiErrors.ErrInvalidToken,
			expectedCalls:  1,
		},
		{
			name:           "Falha ao consultar a sessão",
			header:         "Bearer valido",
			validator:      &fakeValidator{err: errors.New("banco indisponível")},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   apiErrors.ErrInternalServer,
			expectedCalls:  1,
		},
		{
			name:           "Sessão ativa",
			header:         "Bearer valido",
			validator:      &fakeValidator{session: &domain.AdminSession{ID: 1}},
			expectedStatus: http.StatusOK,
			expectedCalls:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := AuthMiddleware()(RequireAuth(tt.validator)(okHandler()))
			req := httptest.NewRequest(http.MethodGet, "/api/leads/recent", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedCalls, tt.validator.calls)
			if tt.expectedCode != "" {
				assert.Contains(t, rec.Body.String(), tt.expectedCode)
			} else {
				assert.Equal(t, "1", rec.Header().Get("X-Session"))
			}
		})
	}
}

func TestCors(t *testing.T) {
	tests := []struct {
		name          string
		production    bool
		origin        string
		expectAllowed bool
	}{
		{name: "Origem local em desenvolvimento", origin: "http://localhost:5173", expectAllowed: true},
		{name: "Origem externa em desenvolvimento", origin: "https://exemplo.com"},
		{name: "Origem refletida em produção", production: true, origin: "https://exemplo.com", expectAllowed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/metrics", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			Cors(tt.production)(okHandler()).ServeHTTP(rec, req)

			if tt.expectAllowed {
				assert.Equal(t, tt.origin, rec.Header().Get("Access-Control-Allow-Origin"))
			} else {
				assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}

	t.Run("Preflight responde sem chamar o handler", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/leads", nil)
		rec := httptest.NewRecorder()

		Cors(false)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler não deveria ser chamado")
		})).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestLogPanicMiddleware(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/metrics", nil)

	LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("falha inesperada")
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrInternalServer)
}

func TestLoggingMiddlewareCapturesStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/leads", nil)

	LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}
