package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyMetric_DeriveRatios(t *testing.T) {
	tests := []struct {
		name             string
		sends            int64
		leads            int64
		wantETLRatio     *float64
		wantSendsPerLead *float64
	}{
		{
			name:             "Envios e leads presentes - calcula as duas razões",
			sends:            1000,
			leads:            3,
			wantETLRatio:     floatPtr(0.003),
			wantSendsPerLead: floatPtr(333),
		},
		{
			name:             "Sem envios - etl_ratio nulo e sends_per_lead zero",
			sends:            0,
			leads:            12,
			wantETLRatio:     nil,
			wantSendsPerLead: floatPtr(0),
		},
		{
			name:             "Sem leads - sends_per_lead nulo",
			sends:            500,
			leads:            0,
			wantETLRatio:     floatPtr(0),
			wantSendsPerLead: nil,
		},
		{
			name:             "Arredonda sends_per_lead para o inteiro mais próximo",
			sends:            1001,
			leads:            2,
			wantETLRatio:     floatPtr(2.0 / 1001.0),
			wantSendsPerLead: floatPtr(501),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &DailyMetric{EmailsSent: tt.sends, LeadsGenerated: tt.leads}
			m.DeriveRatios()

			assertFloatPtr(t, tt.wantETLRatio, m.ETLRatio)
			assertFloatPtr(t, tt.wantSendsPerLead, m.SendsPerLead)
		})
	}
}

func TestDailyMetric_ApplyBackfillSends(t *testing.T) {
	syncedAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	backfillAt := syncedAt.Add(time.Hour)

	t.Run("Dia já sincronizado preserva os envios existentes", func(t *testing.T) {
		m := &DailyMetric{EmailsSent: 100, LeadsGenerated: 5, SendsLastSyncedAt: &syncedAt}

		written := m.ApplyBackfillSends(50, backfillAt)

		assert.False(t, written)
		assert.Equal(t, int64(100), m.EmailsSent)
		assert.Equal(t, syncedAt, *m.SendsLastSyncedAt)
		assertFloatPtr(t, floatPtr(0.05), m.ETLRatio)
		assertFloatPtr(t, floatPtr(20), m.SendsPerLead)
	})

	t.Run("Dia nunca sincronizado recebe o valor buscado", func(t *testing.T) {
		m := &DailyMetric{LeadsGenerated: 4}

		written := m.ApplyBackfillSends(200, backfillAt)

		assert.True(t, written)
		assert.Equal(t, int64(200), m.EmailsSent)
		require.NotNil(t, m.SendsLastSyncedAt)
		assert.Equal(t, backfillAt, *m.SendsLastSyncedAt)
		assertFloatPtr(t, floatPtr(0.02), m.ETLRatio)
		assertFloatPtr(t, floatPtr(50), m.SendsPerLead)
	})
}

func TestDailyMetric_ApplyLiveSends(t *testing.T) {
	syncedAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	liveAt := syncedAt.Add(15 * time.Minute)

	m := &DailyMetric{EmailsSent: 100, LeadsGenerated: 10, SendsLastSyncedAt: &syncedAt}
	m.ApplyLiveSends(200, liveAt)

	assert.Equal(t, int64(200), m.EmailsSent)
	assert.Equal(t, liveAt, *m.SendsLastSyncedAt)
	assertFloatPtr(t, floatPtr(0.05), m.ETLRatio)
	assertFloatPtr(t, floatPtr(20), m.SendsPerLead)

	// Repetir com a mesma resposta não altera nada
	m.ApplyLiveSends(200, liveAt)
	assert.Equal(t, int64(200), m.EmailsSent)
	assertFloatPtr(t, floatPtr(0.05), m.ETLRatio)
}

func TestDailyMetric_ApplyLeads(t *testing.T) {
	updatedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	previousNotes := "campanha nova"

	m := &DailyMetric{EmailsSent: 0, Notes: &previousNotes}
	m.ApplyLeads(12, nil, updatedAt)

	assert.Equal(t, int64(12), m.LeadsGenerated)
	assert.Equal(t, &previousNotes, m.Notes)
	assert.Nil(t, m.ETLRatio)
	assertFloatPtr(t, floatPtr(0), m.SendsPerLead)

	notes := "ajuste manual"
	m.ApplyLeads(3, &notes, updatedAt)
	assert.Equal(t, "ajuste manual", *m.Notes)
}

func TestNewPeriodMetrics(t *testing.T) {
	assert.Equal(t, PeriodMetrics{}, NewPeriodMetrics(0, 0))
	assert.Equal(t, PeriodMetrics{Sends: 0, Leads: 12}, NewPeriodMetrics(0, 12))

	metrics := NewPeriodMetrics(1500, 4)
	assert.InDelta(t, 4.0/1500.0, metrics.ETLRatio, 1e-12)
	assert.Equal(t, int64(375), metrics.SendsPerLead)
}

func floatPtr(f float64) *float64 {
	return &f
}

func assertFloatPtr(t *testing.T, want, got *float64) {
	t.Helper()
	if want == nil {
		assert.Nil(t, got)
		return
	}
	require.NotNil(t, got)
	assert.InDelta(t, *want, *got, 1e-9)
}
