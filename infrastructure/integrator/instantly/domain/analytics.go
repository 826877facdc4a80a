package instantlydomain

import (
	"math"
	"strconv"
)

// DailyAnalytics é um dia de /campaigns/analytics/daily.
// Ponteiros nulos indicam campos ausentes na resposta.
type DailyAnalytics struct {
	Date      string `json:"date"`
	Sent      *int64 `json:"sent"`
	Contacted *int64 `json:"contacted"`
	Opened    *int64 `json:"opened"`
	Replies   *int64 `json:"replies"`
	Clicks    *int64 `json:"clicks"`
}

// CampaignAnalytics é um registro de /campaigns/analytics.
// O formato dos campos varia entre versões da API, por isso é mantido como mapa.
type CampaignAnalytics map[string]interface{}

type Metric string

const (
	MetricSent      Metric = "sent"
	MetricContacted Metric = "contacted"
	MetricReplied   Metric = "replied"
	MetricBounced   Metric = "bounced"
	MetricOpened    Metric = "opened"
	MetricClicked   Metric = "clicked"
)

// FieldSynonyms lista, por métrica, os nomes aceitos em ordem de preferência
var FieldSynonyms = map[Metric][]string{
	MetricSent:      {"emails_sent_count", "sent"},
	MetricContacted: {"contacted_count", "contacted"},
	MetricReplied:   {"reply_count", "replied"},
	MetricBounced:   {"bounced_count", "bounced"},
	MetricOpened:    {"opened_count", "opened"},
	MetricClicked:   {"clicked_count", "clicked"},
}

// AggregateTotals soma as métricas de todas as campanhas de um período
type AggregateTotals struct {
	Sent      int64 `json:"sent"`
	Contacted int64 `json:"contacted"`
	Replied   int64 `json:"replied"`
	Bounced   int64 `json:"bounced"`
	Opened    int64 `json:"opened"`
	Clicked   int64 `json:"clicked"`
}

func (t *AggregateTotals) field(metric Metric) *int64 {
	switch metric {
	case MetricSent:
		return &t.Sent
	case MetricContacted:
		return &t.Contacted
	case MetricReplied:
		return &t.Replied
	case MetricBounced:
		return &t.Bounced
	case MetricOpened:
		return &t.Opened
	case MetricClicked:
		return &t.Clicked
	}
	return nil
}

// Value retorna o valor da métrica: o primeiro sinônimo com valor diferente de zero
func (c CampaignAnalytics) Value(metric Metric) int64 {
	for _, key := range FieldSynonyms[metric] {
		if v := toInt64(c[key]); v != 0 {
			return v
		}
	}
	return 0
}

// SumCampaigns soma as métricas de uma lista de campanhas
func SumCampaigns(campaigns []CampaignAnalytics) AggregateTotals {
	totals := AggregateTotals{}
	for _, campaign := range campaigns {
		for metric := range FieldSynonyms {
			*totals.field(metric) += campaign.Value(metric)
		}
	}
	return totals
}

func toInt64(v interface{}) int64 {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0
		}
		return int64(n)
	case int64:
		return n
	case int:
		return int64(n)
	case string:
		i, _ := strconv.ParseInt(n, 10, 64)
		return i
	}
	return 0
}
