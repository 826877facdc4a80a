package domain

import (
	"math"
	"time"
)

// DailyMetric representa uma linha de daily_metrics: envios e leads de um dia do calendário
type DailyMetric struct {
	Date              time.Time  `json:"date"`
	EmailsSent        int64      `json:"emails_sent"`
	LeadsGenerated    int64      `json:"leads_generated"`
	ETLRatio          *float64   `json:"etl_ratio"`
	SendsPerLead      *float64   `json:"sends_per_lead"`
	SendsLastSyncedAt *time.Time `json:"sends_last_synced_at"`
	LeadsUpdatedAt    *time.Time `json:"leads_updated_at"`
	Notes             *string    `json:"notes"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// DeriveRatios recalcula etl_ratio e sends_per_lead a partir dos valores atuais.
// Os dois campos são sempre recalculados juntos.
func (m *DailyMetric) DeriveRatios() {
	m.ETLRatio = nil
	m.SendsPerLead = nil

	if m.EmailsSent > 0 {
		ratio := float64(m.LeadsGenerated) / float64(m.EmailsSent)
		m.ETLRatio = &ratio
	}

	if m.LeadsGenerated > 0 {
		perLead := math.Round(float64(m.EmailsSent) / float64(m.LeadsGenerated))
		m.SendsPerLead = &perLead
	}
}

// ApplyLiveSends sobrescreve os envios do dia, independentemente do valor anterior
func (m *DailyMetric) ApplyLiveSends(sent int64, syncedAt time.Time) {
	m.EmailsSent = sent
	m.SendsLastSyncedAt = &syncedAt
	m.DeriveRatios()
}

// ApplyBackfillSends só preenche os envios de dias que nunca foram sincronizados.
// Retorna true quando o valor buscado foi gravado.
func (m *DailyMetric) ApplyBackfillSends(sent int64, syncedAt time.Time) bool {
	if m.SendsLastSyncedAt != nil {
		m.DeriveRatios()
		return false
	}

	m.EmailsSent = sent
	m.SendsLastSyncedAt = &syncedAt
	m.DeriveRatios()
	return true
}

// ApplyLeads grava a contagem de leads do dia. Notas vazias preservam as anteriores.
func (m *DailyMetric) ApplyLeads(leads int64, notes *string, updatedAt time.Time) {
	m.LeadsGenerated = leads
	m.LeadsUpdatedAt = &updatedAt
	if notes != nil {
		m.Notes = notes
	}
	m.DeriveRatios()
}
