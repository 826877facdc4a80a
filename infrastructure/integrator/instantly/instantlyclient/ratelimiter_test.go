package instantlyclient

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu    sync.Mutex
	now   time.Time
	slept []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.slept = append(f.slept, d)
	f.now = f.now.Add(d)
	return nil
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func (f *fakeClock) Slept() []time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]time.Duration(nil), f.slept...)
}

func newTestLimiter(clock *fakeClock) *RateLimiter {
	limiter := NewRateLimiter()
	limiter.now = clock.Now
	limiter.sleep = clock.Sleep
	return limiter
}

func TestRateLimiter_Wait(t *testing.T) {
	t.Run("95 requisições imediatas não esperam", func(t *testing.T) {
		clock := newFakeClock()
		limiter := newTestLimiter(clock)

		for i := 0; i < shortWindowLimit; i++ {
			require.NoError(t, limiter.Wait(context.Background()))
		}

		assert.Empty(t, clock.Slept())
	})

	t.Run("a 96ª requisição espera o mais antigo sair da janela de 10s", func(t *testing.T) {
		clock := newFakeClock()
		limiter := newTestLimiter(clock)

		for i := 0; i < shortWindowLimit; i++ {
			require.NoError(t, limiter.Wait(context.Background()))
		}
		require.NoError(t, limiter.Wait(context.Background()))

		assert.Equal(t, []time.Duration{shortWindowSize + slotMargin}, clock.Slept())
	})

	t.Run("a espera desconta o tempo já decorrido desde o mais antigo", func(t *testing.T) {
		clock := newFakeClock()
		limiter := newTestLimiter(clock)

		require.NoError(t, limiter.Wait(context.Background()))
		clock.Advance(4 * time.Second)
		for i := 1; i < shortWindowLimit; i++ {
			require.NoError(t, limiter.Wait(context.Background()))
		}
		require.NoError(t, limiter.Wait(context.Background()))

		assert.Equal(t, []time.Duration{6*time.Second + slotMargin}, clock.Slept())
	})

	t.Run("a janela de 60s limita a 580 requisições", func(t *testing.T) {
		clock := newFakeClock()
		limiter := newTestLimiter(clock)
		// isola a janela longa
		limiter.windows[0].limit = longWindowLimit * 2

		require.NoError(t, limiter.Wait(context.Background()))
		clock.Advance(30 * time.Second)
		for i := 1; i < longWindowLimit; i++ {
			require.NoError(t, limiter.Wait(context.Background()))
		}
		require.Empty(t, clock.Slept())

		require.NoError(t, limiter.Wait(context.Background()))

		assert.Equal(t, []time.Duration{30*time.Second + slotMargin}, clock.Slept())
	})

	t.Run("contexto cancelado interrompe a espera", func(t *testing.T) {
		clock := newFakeClock()
		limiter := newTestLimiter(clock)

		for i := 0; i < shortWindowLimit; i++ {
			require.NoError(t, limiter.Wait(context.Background()))
		}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.ErrorIs(t, limiter.Wait(ctx), context.Canceled)
	})

	t.Run("chamadas concorrentes não ultrapassam o limite", func(t *testing.T) {
		clock := newFakeClock()
		limiter := newTestLimiter(clock)
		limiter.sleep = func(ctx context.Context, d time.Duration) error {
			t.Errorf("não deveria esperar: %s", d)
			return nil
		}

		var wg sync.WaitGroup
		for i := 0; i < shortWindowLimit; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = limiter.Wait(context.Background())
			}()
		}
		wg.Wait()

		// a próxima reserva precisa esperar: todas as vagas foram ocupadas
		assert.Greater(t, limiter.reserve(), time.Duration(0))
	})
}
