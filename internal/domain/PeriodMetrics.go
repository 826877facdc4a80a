package domain

import (
	"math"
	"time"
)

// Period identifica as janelas fixas do dashboard
type Period string

const (
	PeriodDay       Period = "day"
	PeriodYesterday Period = "yesterday"
	PeriodWeek      Period = "week"
	PeriodMonth     Period = "month"
	PeriodYear      Period = "year"
	PeriodAllTime   Period = "allTime"
)

// AllPeriods na ordem em que aparecem no dashboard
var AllPeriods = []Period{PeriodDay, PeriodYesterday, PeriodWeek, PeriodMonth, PeriodYear, PeriodAllTime}

// DateFilter limita consultas por data. Limites nulos ficam abertos.
type DateFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
}

func NewDateFilter(start, end *time.Time) DateFilter {
	return DateFilter{StartDate: start, EndDate: end}
}

// IsBounded indica que o filtro possui início e fim
func (f DateFilter) IsBounded() bool {
	return f.StartDate != nil && f.EndDate != nil
}

// MetricTotals é a soma de envios e leads de um conjunto de dias
type MetricTotals struct {
	Sends int64
	Leads int64
	Days  int64
}

type PeriodMetrics struct {
	Sends        int64   `json:"sends"`
	Leads        int64   `json:"leads"`
	ETLRatio     float64 `json:"etlRatio"`
	SendsPerLead int64   `json:"sendsPerLead"`
}

// NewPeriodMetrics calcula as razões de um período: 0 quando o divisor é 0
func NewPeriodMetrics(sends, leads int64) PeriodMetrics {
	metrics := PeriodMetrics{Sends: sends, Leads: leads}
	if sends > 0 {
		metrics.ETLRatio = float64(leads) / float64(sends)
	}
	if leads > 0 {
		metrics.SendsPerLead = int64(math.Round(float64(sends) / float64(leads)))
	}
	return metrics
}

type TrendPoint struct {
	Date     string  `json:"date"`
	Sends    int64   `json:"sends"`
	Leads    int64   `json:"leads"`
	ETLRatio float64 `json:"etlRatio"`
}

type TodayMetrics struct {
	Date string `json:"date"`
	PeriodMetrics
}

// DashboardMetrics é a resposta de GET /api/metrics
type DashboardMetrics struct {
	Periods      map[Period]PeriodMetrics `json:"periods"`
	Trend        []TrendPoint             `json:"trend"`
	LastSyncedAt *time.Time               `json:"lastSyncedAt"`
	Today        TodayMetrics             `json:"today"`
}

type RangeMetrics struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Days      int64  `json:"days"`
	PeriodMetrics
	Trend []TrendPoint `json:"trend"`
}

type DateMetrics struct {
	Date string `json:"date"`
	PeriodMetrics
	Notes  *string `json:"notes,omitempty"`
	Exists bool    `json:"exists"`
}

// LeadUpdateResult é a resposta de POST /api/leads
type LeadUpdateResult struct {
	Success           bool    `json:"success"`
	Date              string  `json:"date"`
	PreviousLeadCount int64   `json:"previousLeadCount"`
	NewLeadCount      int64   `json:"newLeadCount"`
	NewETLRatio       float64 `json:"newEtlRatio"`
}

type RecentEntry struct {
	Date      string     `json:"date"`
	Sends     int64      `json:"sends"`
	Leads     int64      `json:"leads"`
	ETLRatio  float64    `json:"etlRatio"`
	Notes     *string    `json:"notes"`
	UpdatedAt *time.Time `json:"updatedAt"`
}
