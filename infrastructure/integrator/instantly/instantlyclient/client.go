package instantlyclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	instantlydomain "github.com/vfg2006/etl-dashboard-api/infrastructure/integrator/instantly/domain"
	"github.com/vfg2006/etl-dashboard-api/internal/config"
	"github.com/vfg2006/etl-dashboard-api/pkg/telemetry"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	maxAttempts       = 5
	baseBackoff       = 2 * time.Second
	defaultRetryAfter = 2 * time.Second
	maxErrorBodySize  = 4 << 10
)

var ErrNotConfigured = errors.New("INSTANTLY_API_KEY não configurada")

// AnalyticsParams filtra as consultas de analytics por período (YYYY-MM-DD)
type AnalyticsParams struct {
	StartDate      string
	EndDate        string
	CampaignStatus *int
}

func (p AnalyticsParams) values() url.Values {
	query := url.Values{}
	if p.StartDate != "" {
		query.Set("start_date", p.StartDate)
	}
	if p.EndDate != "" {
		query.Set("end_date", p.EndDate)
	}
	if p.CampaignStatus != nil {
		query.Set("campaign_status", strconv.Itoa(*p.CampaignStatus))
	}
	return query
}

//go:generate mockgen -source=client.go -destination=../mocks/client_mock.go -package=mocks
type Client interface {
	GetDailyAnalytics(ctx context.Context, params AnalyticsParams) ([]instantlydomain.DailyAnalytics, error)
	GetCampaignAnalytics(ctx context.Context, params AnalyticsParams) ([]instantlydomain.CampaignAnalytics, error)
	ListCampaigns(ctx context.Context, limit int) error
	IsConfigured() bool
}

type InstantlyClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	limiter    *RateLimiter
	sleep      func(ctx context.Context, d time.Duration) error
}

func NewClient(cfg *config.Config) Client {
	return newClient(cfg.Instantly, NewRateLimiter())
}

func newClient(cfg config.Instantly, limiter *RateLimiter) *InstantlyClient {
	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &InstantlyClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		limiter: limiter,
		sleep:   sleepContext,
	}
}

func (c *InstantlyClient) IsConfigured() bool {
	return c.apiKey != ""
}

func (c *InstantlyClient) GetDailyAnalytics(ctx context.Context, params AnalyticsParams) ([]instantlydomain.DailyAnalytics, error) {
	var response []instantlydomain.DailyAnalytics
	if err := c.Request(ctx, http.MethodGet, "/campaigns/analytics/daily", params.values(), &response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *InstantlyClient) GetCampaignAnalytics(ctx context.Context, params AnalyticsParams) ([]instantlydomain.CampaignAnalytics, error) {
	var response []instantlydomain.CampaignAnalytics
	if err := c.Request(ctx, http.MethodGet, "/campaigns/analytics", params.values(), &response); err != nil {
		return nil, err
	}
	return response, nil
}

// ListCampaigns faz uma chamada autenticada leve, usada para verificar a integração
func (c *InstantlyClient) ListCampaigns(ctx context.Context, limit int) error {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	return c.Request(ctx, http.MethodGet, "/campaigns", query, nil)
}

// Request executa a chamada respeitando o limitador local.
// Falhas são repetidas até maxAttempts vezes com backoff exponencial.
// Respostas 429 aguardam o Retry-After e não consomem tentativas.
func (c *InstantlyClient) Request(ctx context.Context, method, path string, query url.Values, out interface{}) error {
	if !c.IsConfigured() {
		return ErrNotConfigured
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}

		retryAfter, err := c.do(ctx, method, endpoint, out)
		if retryAfter > 0 {
			telemetry.ProviderRequests.WithLabelValues("throttled").Inc()
			telemetry.ProviderThrottled.Inc()
			logrus.WithFields(logrus.Fields{
				"path":        path,
				"retry_after": retryAfter.String(),
			}).Warn("Instantly respondeu 429, aguardando para tentar novamente")

			if err := c.sleep(ctx, retryAfter); err != nil {
				return err
			}
			continue
		}

		if err == nil {
			telemetry.ProviderRequests.WithLabelValues("success").Inc()
			return nil
		}

		telemetry.ProviderRequests.WithLabelValues("error").Inc()
		lastErr = err

		if ctx.Err() != nil {
			return ctx.Err()
		}

		if attempt < maxAttempts {
			delay := baseBackoff * time.Duration(1<<(attempt-1))
			telemetry.ProviderRetries.Inc()
			logrus.WithFields(logrus.Fields{
				"path":    path,
				"attempt": attempt,
				"delay":   delay.String(),
			}).WithError(err).Warn("Falha na requisição ao Instantly, tentando novamente")

			if err := c.sleep(ctx, delay); err != nil {
				return err
			}
		}
		attempt++
	}

	return lastErr
}

// do executa uma única tentativa. Um retryAfter positivo indica resposta 429.
func (c *InstantlyClient) do(ctx context.Context, method, endpoint string, out interface{}) (time.Duration, error) {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, &ExternalServiceError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		_, _ = io.Copy(io.Discard, resp.Body)
		return parseRetryAfter(resp.Header.Get("Retry-After")), nil
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return 0, &ExternalServiceError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return 0, nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return 0, &ExternalServiceError{StatusCode: resp.StatusCode, Err: fmt.Errorf("erro ao decodificar a resposta: %w", err)}
	}

	return 0, nil
}

func parseRetryAfter(header string) time.Duration {
	seconds, err := strconv.Atoi(strings.TrimSpace(header))
	if err != nil || seconds <= 0 {
		return defaultRetryAfter
	}
	return time.Duration(seconds) * time.Second
}
