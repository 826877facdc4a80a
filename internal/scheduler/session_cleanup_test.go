package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCleaner struct {
	removed int64
	err     error
	calls   int
}

func (f *fakeCleaner) CleanupExpiredSessions(_ context.Context) (int64, error) {
	f.calls++
	return f.removed, f.err
}

func TestSessionCleanup(t *testing.T) {
	tests := []struct {
		name    string
		cleaner *fakeCleaner
	}{
		{name: "Remove sessões expiradas", cleaner: &fakeCleaner{removed: 3}},
		{name: "Nenhuma sessão expirada", cleaner: &fakeCleaner{}},
		{name: "Erro no banco não interrompe", cleaner: &fakeCleaner{err: errors.New("conexão recusada")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewSessionCleanupService(tt.cleaner, "0 * * * *", nil)

			service.cleanup(context.Background())

			assert.Equal(t, 1, tt.cleaner.calls)
		})
	}
}

func TestSessionCleanupStart(t *testing.T) {
	t.Run("Cron inválido retorna erro", func(t *testing.T) {
		service := NewSessionCleanupService(&fakeCleaner{}, "isso não é cron", nil)

		err := service.Start(context.Background())

		require.Error(t, err)
	})

	t.Run("Para junto com o contexto", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		service := NewSessionCleanupService(&fakeCleaner{}, "0 * * * *", nil)

		require.NoError(t, service.Start(ctx))
		assert.True(t, service.scheduler.IsRunning())

		cancel()
		assert.Eventually(t, func() bool { return !service.scheduler.IsRunning() }, time.Second, 10*time.Millisecond)
	})
}
