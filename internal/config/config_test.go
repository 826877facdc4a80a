package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithSSLMode(t *testing.T) {
	tests := []struct {
		name     string
		dsn      string
		expected string
	}{
		{
			name:     "Sem parâmetros",
			dsn:      "postgres://u:p@db:5432/etl",
			expected: "postgres://u:p@db:5432/etl?sslmode=require",
		},
		{
			name:     "Com outros parâmetros",
			dsn:      "postgres://u:p@db:5432/etl?connect_timeout=5",
			expected: "postgres://u:p@db:5432/etl?connect_timeout=5&sslmode=require",
		},
		{
			name:     "sslmode já informado é mantido",
			dsn:      "postgres://u:p@db:5432/etl?sslmode=verify-full",
			expected: "postgres://u:p@db:5432/etl?sslmode=verify-full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, withSSLMode(tt.dsn, "require"))
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Run("Preenche os valores padrão", func(t *testing.T) {
		cfg, err := (&Config{
			App: App{Env: EnvDevelopment, Timezone: "America/Sao_Paulo"},
		}).normalize()
		require.NoError(t, err)

		assert.Equal(t, "America/Sao_Paulo", cfg.App.Location.String())
		assert.Equal(t, 15, cfg.SendsSync.IntervalMinutes)
		assert.Equal(t, 24*time.Hour, cfg.Auth.SessionTTL)
		assert.False(t, cfg.SendsSync.Enabled)
		assert.False(t, cfg.Database.SSLRequired)
	})

	t.Run("Fuso inválido usa UTC", func(t *testing.T) {
		cfg, err := (&Config{App: App{Timezone: "Marte/Olympus"}}).normalize()
		require.NoError(t, err)

		assert.Equal(t, time.UTC, cfg.App.Location)
	})

	t.Run("Chave do Instantly habilita a sincronização", func(t *testing.T) {
		cfg, err := (&Config{
			App:       App{Timezone: "UTC"},
			Instantly: Instantly{APIKey: "key"},
			SendsSync: SendsSync{IntervalMinutes: 5},
		}).normalize()
		require.NoError(t, err)

		assert.True(t, cfg.SendsSync.Enabled)
		assert.Equal(t, 5, cfg.SendsSync.IntervalMinutes)
	})

	t.Run("Produção exige SSL", func(t *testing.T) {
		cfg, err := (&Config{
			App:      App{Env: "PRODUCTION", Timezone: "UTC"},
			Database: Database{URL: "postgres://u:p@db:5432/etl"},
		}).normalize()
		require.NoError(t, err)

		assert.True(t, cfg.IsProduction())
		assert.True(t, cfg.Database.SSLRequired)
		assert.Equal(t, "postgres://u:p@db:5432/etl?sslmode=require", cfg.Database.URL)
	})
}
