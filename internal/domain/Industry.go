package domain

import "time"

// LeadSource é o canal de origem dos leads
type LeadSource string

const (
	LeadSourceApollo           LeadSource = "apollo"
	LeadSourceGMaps            LeadSource = "gmaps"
	LeadSourceIndustrySpecific LeadSource = "industry_specific"
)

// NormalizeLeadSource aplica o padrão apollo para origens vazias
func NormalizeLeadSource(source string) LeadSource {
	if source == "" {
		return LeadSourceApollo
	}
	return LeadSource(source)
}

type Industry struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Source         string  `json:"source"`
	SendPercentage float64 `json:"send_percentage"`
	Keywords       string  `json:"keywords"`
}

type IndustryLead struct {
	ID         int64     `json:"id"`
	IndustryID int64     `json:"industry_id"`
	Date       time.Time `json:"date"`
	Source     string    `json:"source"`
	LeadsCount int64     `json:"leads_count"`
	Notes      *string   `json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// IndustryLeadFilter filtra industry_leads por período e origem
type IndustryLeadFilter struct {
	DateFilter
	Source string
}

// IndustryLeadAggregate é a soma de leads por (indústria, origem).
// Source é nulo para indústrias sem nenhum lead no filtro.
type IndustryLeadAggregate struct {
	IndustryID     int64
	Name           string
	SendPercentage float64
	Source         *string
	TotalLeads     int64
}

// IndustrySourceStats agrega os leads de uma indústria por origem
type IndustrySourceStats struct {
	Source        string
	TotalLeads    int64
	DaysWithLeads int64
}

type IndustryETL struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Source         string  `json:"source"`
	SendPercentage float64 `json:"sendPercentage"`
	Sends          int64   `json:"sends"`
	Leads          int64   `json:"leads"`
	ETLRatio       float64 `json:"etlRatio"`
	SendsPerLead   float64 `json:"sendsPerLead"`
}

type IndustryLeadsResponse struct {
	TotalSends int64          `json:"totalSends"`
	Industries []*IndustryETL `json:"industries"`
}

type LeaderboardResponse struct {
	TotalSends  int64          `json:"totalSends"`
	Leaderboard []*IndustryETL `json:"leaderboard"`
}

type IndustrySourceBreakdown struct {
	Source         string  `json:"source"`
	Sends          int64   `json:"sends"`
	Leads          int64   `json:"leads"`
	ETLRatio       int64   `json:"etlRatio"`
	DaysWithLeads  int64   `json:"daysWithLeads"`
	AvgLeadsPerDay float64 `json:"avgLeadsPerDay"`
}

type IndustryOverallStats struct {
	Sends          int64   `json:"sends"`
	Leads          int64   `json:"leads"`
	ETLRatio       int64   `json:"etlRatio"`
	DaysWithLeads  int64   `json:"daysWithLeads"`
	AvgLeadsPerDay float64 `json:"avgLeadsPerDay"`
}

type IndustryInfo struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Source         string  `json:"source"`
	SendPercentage float64 `json:"sendPercentage"`
	Keywords       string  `json:"keywords"`
}

type IndustryStatsResponse struct {
	Industry      IndustryInfo               `json:"industry"`
	Stats         IndustryOverallStats       `json:"stats"`
	StatsBySource []*IndustrySourceBreakdown `json:"statsBySource"`
}

// SeedResult conta as linhas inseridas e atualizadas por um upsert em lote
type SeedResult struct {
	Inserted int `json:"inserted"`
	Updated  int `json:"updated"`
}
