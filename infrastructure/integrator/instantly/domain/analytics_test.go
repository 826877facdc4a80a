package instantlydomain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSumCampaigns(t *testing.T) {
	tests := []struct {
		name      string
		campaigns []CampaignAnalytics
		expected  AggregateTotals
	}{
		{
			name:      "Lista vazia soma zero",
			campaigns: nil,
			expected:  AggregateTotals{},
		},
		{
			name: "Aceita os dois formatos de campo",
			campaigns: []CampaignAnalytics{
				{"emails_sent_count": float64(100), "reply_count": float64(3), "bounced_count": float64(1)},
				{"sent": float64(50), "replied": float64(2), "opened": float64(20), "clicked": float64(4), "contacted": float64(40)},
			},
			expected: AggregateTotals{Sent: 150, Contacted: 40, Replied: 5, Bounced: 1, Opened: 20, Clicked: 4},
		},
		{
			name: "Nome preferido zerado cai para o sinônimo",
			campaigns: []CampaignAnalytics{
				{"emails_sent_count": float64(0), "sent": float64(30)},
			},
			expected: AggregateTotals{Sent: 30},
		},
		{
			name: "Campos nulos são ignorados e texto numérico é aceito",
			campaigns: []CampaignAnalytics{
				{"campaign_name": "Q1", "emails_sent_count": nil, "sent": "12"},
			},
			expected: AggregateTotals{Sent: 12},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SumCampaigns(tt.campaigns))
		})
	}
}
