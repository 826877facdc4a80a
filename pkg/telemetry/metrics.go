// Package telemetry concentra os coletores Prometheus expostos em /metrics.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "etl_dashboard"

var (
	// ProviderRequests conta as requisições ao provedor de campanhas por resultado
	ProviderRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "instantly",
		Name:      "requests_total",
		Help:      "Requisições feitas à API do Instantly, por resultado.",
	}, []string{"outcome"})

	ProviderRetries = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "instantly",
		Name:      "retries_total",
		Help:      "Novas tentativas após falha (exceto 429).",
	})

	ProviderThrottled = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "instantly",
		Name:      "throttled_total",
		Help:      "Respostas 429 recebidas da API do Instantly.",
	})

	RateLimiterWaitSeconds = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "instantly",
		Name:      "rate_limiter_wait_seconds_total",
		Help:      "Tempo total de espera imposto pelo limitador local.",
	})

	SyncRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "sync",
		Name:      "runs_total",
		Help:      "Execuções de sincronização de envios, por tipo e status.",
	}, []string{"sync_type", "status"})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Requisições HTTP atendidas, por método e status.",
	}, []string{"method", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Duração das requisições HTTP.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})
)
