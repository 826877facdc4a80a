package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		code           string
		expectedStatus int
	}{
		{code: ErrInvalidCredentials, expectedStatus: http.StatusUnauthorized},
		{code: ErrAuthRequired, expectedStatus: http.StatusUnauthorized},
		{code: ErrAdminNotConfigured, expectedStatus: http.StatusInternalServerError},
		{code: ErrInvalidFormat, expectedStatus: http.StatusBadRequest},
		{code: ErrNotFound, expectedStatus: http.StatusNotFound},
		{code: ErrExternalService, expectedStatus: http.StatusBadGateway},
		{code: "DESCONHECIDO", expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			rec := httptest.NewRecorder()

			WriteError(rec, tt.code, "mensagem", map[string]string{"campo": "date"})

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "mensagem", body.Message)
		})
	}
}
