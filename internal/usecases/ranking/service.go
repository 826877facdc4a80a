package ranking

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/etl-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/etl-dashboard-api/internal/domain"
	"github.com/vfg2006/etl-dashboard-api/pkg/utils"
)

const (
	DefaultLeaderboardLimit = 20

	flatShare = 0.50
)

var (
	ErrIndustryNotFound  = errors.New("indústria não encontrada")
	ErrInvalidDate       = errors.New("data inválida, use o formato YYYY-MM-DD")
	ErrMissingLeadFields = errors.New("industryId, date e leadsCount são obrigatórios")
	ErrInvalidLeadsCount = errors.New("leadsCount deve ser um inteiro não negativo")
)

// LeadSubmission é o corpo de POST /api/industries/leads
type LeadSubmission struct {
	IndustryID int64   `json:"industryId"`
	Date       string  `json:"date"`
	LeadsCount *int64  `json:"leadsCount"`
	Source     string  `json:"source"`
	Notes      *string `json:"notes"`
}

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks
type RankingService interface {
	ListIndustries(ctx context.Context) ([]*domain.Industry, error)
	GetIndustryLeads(ctx context.Context, startDate, endDate, source string) (*domain.IndustryLeadsResponse, error)
	GetLeaderboard(ctx context.Context, startDate, endDate, source string, limit int) (*domain.LeaderboardResponse, error)
	SubmitIndustryLeads(ctx context.Context, submission LeadSubmission) (*domain.IndustryLead, error)
	GetIndustryStats(ctx context.Context, industryID int64, startDate, endDate string) (*domain.IndustryStatsResponse, error)
}

type IndustryRankingService struct {
	industryRepo     repository.IndustryRepository
	industryLeadRepo repository.IndustryLeadRepository
	metricRepo       repository.DailyMetricRepository
	now              func() time.Time
}

func NewIndustryRankingService(
	industryRepo repository.IndustryRepository,
	industryLeadRepo repository.IndustryLeadRepository,
	metricRepo repository.DailyMetricRepository,
) RankingService {
	return &IndustryRankingService{
		industryRepo:     industryRepo,
		industryLeadRepo: industryLeadRepo,
		metricRepo:       metricRepo,
		now:              time.Now,
	}
}

// CalculateIndustrySends distribui os envios do período para uma indústria conforme a origem dos leads.
// gmaps recebe metade fixa, industry_specific metade proporcional e as demais origens o percentual inteiro.
func CalculateIndustrySends(totalSends int64, source domain.LeadSource, industryPercentage float64) int64 {
	total := float64(totalSends)

	switch source {
	case domain.LeadSourceGMaps:
		return utils.RoundToInt(total * flatShare)
	case domain.LeadSourceIndustrySpecific:
		return utils.RoundToInt(total * flatShare * (industryPercentage / 100))
	default:
		return utils.RoundToInt(total * (industryPercentage / 100))
	}
}

func sendsPerLead(sends, leads int64) int64 {
	if leads <= 0 {
		return 0
	}
	return utils.RoundToInt(float64(sends) / float64(leads))
}

func (s *IndustryRankingService) ListIndustries(ctx context.Context) ([]*domain.Industry, error) {
	industries, err := s.industryRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar indústrias")
	}
	return industries, nil
}

func (s *IndustryRankingService) GetIndustryLeads(ctx context.Context, startDate, endDate, source string) (*domain.IndustryLeadsResponse, error) {
	totalSends, aggregates, err := s.aggregate(ctx, startDate, endDate, source)
	if err != nil {
		return nil, err
	}

	industries := make([]*domain.IndustryETL, 0, len(aggregates))
	for _, aggregate := range aggregates {
		entry := newIndustryETL(totalSends, aggregate)
		ratio := float64(sendsPerLead(entry.Sends, entry.Leads))
		entry.ETLRatio = ratio
		entry.SendsPerLead = ratio
		industries = append(industries, entry)
	}

	return &domain.IndustryLeadsResponse{
		TotalSends: totalSends,
		Industries: industries,
	}, nil
}

// GetLeaderboard ordena as combinações (indústria, origem) pelo menor número de envios por lead
func (s *IndustryRankingService) GetLeaderboard(ctx context.Context, startDate, endDate, source string, limit int) (*domain.LeaderboardResponse, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}

	totalSends, aggregates, err := s.aggregate(ctx, startDate, endDate, source)
	if err != nil {
		return nil, err
	}

	leaderboard := make([]*domain.IndustryETL, 0, len(aggregates))
	for _, aggregate := range aggregates {
		entry := newIndustryETL(totalSends, aggregate)

		ratio := math.Inf(1)
		if entry.Leads > 0 {
			ratio = float64(sendsPerLead(entry.Sends, entry.Leads))
		}
		entry.ETLRatio = ratio
		entry.SendsPerLead = ratio

		if entry.Leads == 0 || math.IsInf(ratio, 1) {
			continue
		}
		leaderboard = append(leaderboard, entry)
	}

	sort.SliceStable(leaderboard, func(i, j int) bool {
		return leaderboard[i].ETLRatio < leaderboard[j].ETLRatio
	})

	if len(leaderboard) > limit {
		leaderboard = leaderboard[:limit]
	}

	return &domain.LeaderboardResponse{
		TotalSends:  totalSends,
		Leaderboard: leaderboard,
	}, nil
}

func (s *IndustryRankingService) SubmitIndustryLeads(ctx context.Context, submission LeadSubmission) (*domain.IndustryLead, error) {
	if submission.IndustryID <= 0 || submission.Date == "" || submission.LeadsCount == nil {
		return nil, ErrMissingLeadFields
	}

	if *submission.LeadsCount < 0 {
		return nil, ErrInvalidLeadsCount
	}

	date, err := parseDate(submission.Date)
	if err != nil {
		return nil, err
	}

	industry, err := s.industryRepo.GetByID(ctx, submission.IndustryID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar indústria")
	}
	if industry == nil {
		return nil, ErrIndustryNotFound
	}

	lead := &domain.IndustryLead{
		IndustryID: submission.IndustryID,
		Date:       *date,
		Source:     string(domain.NormalizeLeadSource(submission.Source)),
		LeadsCount: *submission.LeadsCount,
		Notes:      submission.Notes,
	}

	saved, err := s.industryLeadRepo.Save(ctx, lead, s.now())
	if err != nil {
		if errors.Is(err, repository.ErrUnknownIndustry) {
			return nil, ErrIndustryNotFound
		}
		return nil, errors.Wrap(err, "erro ao gravar leads da indústria")
	}

	logrus.WithFields(logrus.Fields{
		"industry_id": saved.IndustryID,
		"date":        submission.Date,
		"source":      saved.Source,
		"leads":       saved.LeadsCount,
	}).Info("Leads da indústria registrados")

	return saved, nil
}

// GetIndustryStats detalha uma indústria por origem. O total geral usa a fórmula da origem apollo.
func (s *IndustryRankingService) GetIndustryStats(ctx context.Context, industryID int64, startDate, endDate string) (*domain.IndustryStatsResponse, error) {
	filter, err := newDateFilter(startDate, endDate)
	if err != nil {
		return nil, err
	}

	industry, err := s.industryRepo.GetByID(ctx, industryID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar indústria")
	}
	if industry == nil {
		return nil, ErrIndustryNotFound
	}

	totals, err := s.metricRepo.Totals(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao somar envios do período")
	}

	sourceStats, err := s.industryLeadRepo.StatsBySource(ctx, industryID, filter)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao agrupar leads por origem")
	}

	var (
		totalLeads    int64
		daysWithLeads int64
	)

	bySource := make([]*domain.IndustrySourceBreakdown, 0, len(sourceStats))
	for _, stat := range sourceStats {
		source := domain.NormalizeLeadSource(stat.Source)
		sends := CalculateIndustrySends(totals.Sends, source, industry.SendPercentage)

		bySource = append(bySource, &domain.IndustrySourceBreakdown{
			Source:         string(source),
			Sends:          sends,
			Leads:          stat.TotalLeads,
			ETLRatio:       sendsPerLead(sends, stat.TotalLeads),
			DaysWithLeads:  stat.DaysWithLeads,
			AvgLeadsPerDay: averagePerDay(stat.TotalLeads, stat.DaysWithLeads),
		})

		totalLeads += stat.TotalLeads
		if stat.DaysWithLeads > daysWithLeads {
			daysWithLeads = stat.DaysWithLeads
		}
	}

	overallSends := CalculateIndustrySends(totals.Sends, domain.LeadSourceApollo, industry.SendPercentage)

	return &domain.IndustryStatsResponse{
		Industry: domain.IndustryInfo{
			ID:             industry.ID,
			Name:           industry.Name,
			Source:         industry.Source,
			SendPercentage: industry.SendPercentage,
			Keywords:       industry.Keywords,
		},
		Stats: domain.IndustryOverallStats{
			Sends:          overallSends,
			Leads:          totalLeads,
			ETLRatio:       sendsPerLead(overallSends, totalLeads),
			DaysWithLeads:  daysWithLeads,
			AvgLeadsPerDay: averagePerDay(totalLeads, daysWithLeads),
		},
		StatsBySource: bySource,
	}, nil
}

// aggregate busca o total de envios do período e os leads agrupados por (indústria, origem)
func (s *IndustryRankingService) aggregate(
	ctx context.Context,
	startDate, endDate, source string,
) (int64, []*domain.IndustryLeadAggregate, error) {
	filter, err := newDateFilter(startDate, endDate)
	if err != nil {
		return 0, nil, err
	}

	totals, err := s.metricRepo.Totals(ctx, filter)
	if err != nil {
		return 0, nil, errors.Wrap(err, "erro ao somar envios do período")
	}

	aggregates, err := s.industryLeadRepo.SumByIndustryAndSource(ctx, domain.IndustryLeadFilter{
		DateFilter: filter,
		Source:     source,
	})
	if err != nil {
		return 0, nil, errors.Wrap(err, "erro ao agrupar leads por indústria")
	}

	return totals.Sends, aggregates, nil
}

func newIndustryETL(totalSends int64, aggregate *domain.IndustryLeadAggregate) *domain.IndustryETL {
	source := domain.LeadSourceApollo
	if aggregate.Source != nil {
		source = domain.NormalizeLeadSource(*aggregate.Source)
	}

	return &domain.IndustryETL{
		ID:             aggregate.IndustryID,
		Name:           aggregate.Name,
		Source:         string(source),
		SendPercentage: aggregate.SendPercentage,
		Sends:          CalculateIndustrySends(totalSends, source, aggregate.SendPercentage),
		Leads:          aggregate.TotalLeads,
	}
}

// newDateFilter só filtra quando as duas datas são informadas
func newDateFilter(startDate, endDate string) (domain.DateFilter, error) {
	if startDate == "" || endDate == "" {
		return domain.DateFilter{}, nil
	}

	start, err := parseDate(startDate)
	if err != nil {
		return domain.DateFilter{}, err
	}

	end, err := parseDate(endDate)
	if err != nil {
		return domain.DateFilter{}, err
	}

	return domain.NewDateFilter(start, end), nil
}

func parseDate(value string) (*time.Time, error) {
	if !utils.IsValidDate(value) {
		return nil, ErrInvalidDate
	}
	return utils.ParseDate(value)
}

func averagePerDay(leads, days int64) float64 {
	if days <= 0 {
		return 0
	}
	return utils.RoundWithOneDecimalPlace(float64(leads) / float64(days))
}
