package service

import (
	"context"
	"time"

	"github.com/wasimadildev/card-to-text-backend/internal/models"
	"github.com/wasimadildev/card-to-text-backend/internal/repository"
	"github.com/wasimadildev/card-to-text-backend/internal/scope"
)

// defaultTrendMonths is the trailing window for the monthly trend.
const defaultTrendMonths = 6

// defaultTopCompanies caps the company ranking.
const defaultTopCompanies = 10

// StatsService derives metrics from a scoped submission set. All
// methods are read-only and computed at request time; no caching.
type StatsService struct {
	subs repository.SubmissionRepository
	now  func() time.Time
}

func NewStatsService(subs repository.SubmissionRepository) *StatsService {
	return &StatsService{subs: subs, now: time.Now}
}

// UniqueCompanyCount counts distinct company names inside the scope.
func (s *StatsService) UniqueCompanyCount(ctx context.Context, sc scope.Scope) (int, error) {
	return s.subs.DistinctCompanyCount(ctx, sc)
}

// MonthlySubmissionCount counts submissions whose submittedAt falls
// within the given calendar month, bounds inclusive. Months are UTC
// calendar months.
func (s *StatsService) MonthlySubmissionCount(ctx context.Context, sc scope.Scope, year, month int) (int, error) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return s.subs.CountSubmittedBetween(ctx, sc, from, to)
}

// CurrentMonthCount counts this month's submissions in the scope,
// using the same UTC month bounds as MonthlySubmissionCount.
func (s *StatsService) CurrentMonthCount(ctx context.Context, sc scope.Scope) (int, error) {
	now := s.now().UTC()
	return s.MonthlySubmissionCount(ctx, sc, now.Year(), int(now.Month()))
}

// MonthlyTrend groups submissions of the trailing monthsBack window by
// (year, month), ascending. Months with no submissions are omitted.
func (s *StatsService) MonthlyTrend(ctx context.Context, sc scope.Scope, monthsBack int) ([]models.MonthBucket, error) {
	if monthsBack <= 0 {
		monthsBack = defaultTrendMonths
	}
	since := s.now().AddDate(0, -monthsBack, 0)
	return s.subs.MonthlyCounts(ctx, sc, since)
}

// TopCompanies ranks companies in the scope by submission count,
// descending, truncated to limit. Tie order is store-dependent.
func (s *StatsService) TopCompanies(ctx context.Context, sc scope.Scope, limit int) ([]models.CompanyCount, error) {
	if limit <= 0 {
		limit = defaultTopCompanies
	}
	return s.subs.TopCompanies(ctx, sc, limit)
}

// ActivityStats bundles the per-user numbers shown next to a
// submission listing. total is the pre-computed scoped count.
func (s *StatsService) ActivityStats(ctx context.Context, sc scope.Scope, total int) (models.UserStats, error) {
	unique, err := s.UniqueCompanyCount(ctx, sc)
	if err != nil {
		return models.UserStats{}, err
	}
	monthly, err := s.CurrentMonthCount(ctx, sc)
	if err != nil {
		return models.UserStats{}, err
	}
	return models.UserStats{
		TotalSubmissions:   total,
		UniqueCompanies:    unique,
		MonthlySubmissions: monthly,
	}, nil
}
