package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func header(name, value string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("X-Order", name+value)
			next.ServeHTTP(w, r)
		})
	}
}

func TestRouter(t *testing.T) {
	rt := New(WithRoutes(Route{
		Path:   "/items/:id",
		Method: http.MethodGet,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}),
		Middlewares: []func(http.Handler) http.Handler{header("a", "1"), header("b", "2")},
	}))

	tests := []struct {
		name           string
		method         string
		target         string
		expectedStatus int
	}{
		{name: "Rota registrada", method: http.MethodGet, target: "/items/1", expectedStatus: http.StatusNoContent},
		{name: "Rota inexistente", method: http.MethodGet, target: "/nada", expectedStatus: http.StatusNotFound},
		{name: "Método não permitido", method: http.MethodDelete, target: "/items/1", expectedStatus: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus != http.StatusNoContent {
				assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			}
		})
	}

	t.Run("Middlewares da rota seguem a ordem da lista", func(t *testing.T) {
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/1", nil))

		assert.Equal(t, []string{"a1", "b2"}, rec.Header().Values("X-Order"))
	})
}
