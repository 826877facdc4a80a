package instantlyclient

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/etl-dashboard-api/pkg/telemetry"
)

// Limites publicados pela API do Instantly
const (
	shortWindowSize  = 10 * time.Second
	shortWindowLimit = 95
	longWindowSize   = 60 * time.Second
	longWindowLimit  = 580

	// margem somada à espera para o mais antigo sair de fato da janela
	slotMargin = 100 * time.Millisecond
)

type window struct {
	size     time.Duration
	limit    int
	requests []time.Time
}

// prune descarta os registros que já saíram da janela
func (w *window) prune(now time.Time) {
	keep := 0
	for keep < len(w.requests) && now.Sub(w.requests[keep]) >= w.size {
		keep++
	}
	w.requests = w.requests[keep:]
}

// wait retorna quanto falta para abrir uma vaga, ou 0 se já há vaga
func (w *window) wait(now time.Time) time.Duration {
	if len(w.requests) < w.limit {
		return 0
	}
	return w.size - now.Sub(w.requests[0]) + slotMargin
}

// RateLimiter controla as requisições em duas janelas deslizantes compartilhadas.
// A vaga é reservada sob o mutex, então o limite vale também para chamadas concorrentes.
type RateLimiter struct {
	mu      sync.Mutex
	windows []*window
	now     func() time.Time
	sleep   func(ctx context.Context, d time.Duration) error
}

func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		windows: []*window{
			{size: shortWindowSize, limit: shortWindowLimit},
			{size: longWindowSize, limit: longWindowLimit},
		},
		now:   time.Now,
		sleep: sleepContext,
	}
}

// Wait bloqueia até existir vaga nas duas janelas e registra a requisição
func (r *RateLimiter) Wait(ctx context.Context) error {
	for {
		delay := r.reserve()
		if delay <= 0 {
			return nil
		}

		logrus.WithField("wait", delay.String()).Debug("Limite de requisições do Instantly atingido, aguardando vaga")
		telemetry.RateLimiterWaitSeconds.Add(delay.Seconds())

		if err := r.sleep(ctx, delay); err != nil {
			return err
		}
	}
}

func (r *RateLimiter) reserve() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()

	var delay time.Duration
	for _, w := range r.windows {
		w.prune(now)
		if wait := w.wait(now); wait > delay {
			delay = wait
		}
	}

	if delay > 0 {
		return delay
	}

	for _, w := range r.windows {
		w.requests = append(w.requests, now)
	}

	return 0
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
