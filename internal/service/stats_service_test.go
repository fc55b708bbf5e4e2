package service

import (
	"context"
	"testing"
	"time"

	"github.com/wasimadildev/card-to-text-backend/internal/models"
	"github.com/wasimadildev/card-to-text-backend/internal/scope"
)

func seedAt(t *testing.T, svc *SubmissionService, ident scope.Identity, company string, at time.Time) {
	t.Helper()
	svc.now = func() time.Time { return at }
	in := validInput()
	in.CompanyName = company
	mustCreate(t, svc, ident, in)
}

func TestMonthlyTrendBuckets(t *testing.T) {
	svc, repo := newSubSvc(t)
	stats := NewStatsService(repo)

	seedAt(t, svc, userAlice, "Acme", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	seedAt(t, svc, userAlice, "Acme", time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC))
	// Outside the trailing window.
	seedAt(t, svc, userAlice, "Acme", time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC))

	stats.now = func() time.Time { return time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC) }

	trend, err := stats.MonthlyTrend(context.Background(), scope.ForUser("alice"), 6)
	if err != nil {
		t.Fatalf("MonthlyTrend: %v", err)
	}
	want := []models.MonthBucket{
		{Year: 2024, Month: 1, Count: 1},
		{Year: 2024, Month: 2, Count: 1},
	}
	if len(trend) != len(want) {
		t.Fatalf("trend = %+v, want %+v", trend, want)
	}
	for i := range want {
		if trend[i] != want[i] {
			t.Errorf("trend[%d] = %+v, want %+v", i, trend[i], want[i])
		}
	}
}

func TestTopCompaniesRanking(t *testing.T) {
	svc, repo := newSubSvc(t)
	stats := NewStatsService(repo)
	at := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 12; i++ {
		seedAt(t, svc, userAlice, "Acme", at)
	}
	for i := 0; i < 3; i++ {
		seedAt(t, svc, userBob, "Globex", at)
	}

	top, err := stats.TopCompanies(context.Background(), scope.All, 10)
	if err != nil {
		t.Fatalf("TopCompanies: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("top = %+v", top)
	}
	if top[0] != (models.CompanyCount{CompanyName: "Acme", Count: 12}) {
		t.Errorf("top[0] = %+v", top[0])
	}
	if top[1] != (models.CompanyCount{CompanyName: "Globex", Count: 3}) {
		t.Errorf("top[1] = %+v", top[1])
	}

	// Truncation.
	top, err = stats.TopCompanies(context.Background(), scope.All, 1)
	if err != nil || len(top) != 1 || top[0].CompanyName != "Acme" {
		t.Errorf("limit 1: %+v, %v", top, err)
	}
}

func TestMonthlySubmissionCountBounds(t *testing.T) {
	svc, repo := newSubSvc(t)
	stats := NewStatsService(repo)

	// Last instant of February and first instant of March.
	seedAt(t, svc, userAlice, "Acme", time.Date(2024, 2, 29, 23, 59, 59, 999999999, time.UTC))
	seedAt(t, svc, userAlice, "Acme", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))

	n, err := stats.MonthlySubmissionCount(context.Background(), scope.ForUser("alice"), 2024, 2)
	if err != nil {
		t.Fatalf("MonthlySubmissionCount: %v", err)
	}
	if n != 1 {
		t.Errorf("february count = %d, want 1", n)
	}
}

func TestCurrentMonthCountUsesUTCMonth(t *testing.T) {
	svc, repo := newSubSvc(t)
	stats := NewStatsService(repo)

	seedAt(t, svc, userAlice, "Acme", time.Date(2024, 2, 29, 23, 0, 0, 0, time.UTC))
	seedAt(t, svc, userAlice, "Acme", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))

	// The local calendar already says March; in UTC it is still
	// February, so only the February submission is "this month".
	loc := time.FixedZone("UTC+13", 13*3600)
	stats.now = func() time.Time { return time.Date(2024, 3, 1, 5, 0, 0, 0, loc) }

	n, err := stats.CurrentMonthCount(context.Background(), scope.ForUser("alice"))
	if err != nil {
		t.Fatalf("CurrentMonthCount: %v", err)
	}
	if n != 1 {
		t.Errorf("current month count = %d, want 1", n)
	}
}

func TestUniqueCompanyCountScoped(t *testing.T) {
	svc, repo := newSubSvc(t)
	stats := NewStatsService(repo)
	at := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	seedAt(t, svc, userAlice, "Acme", at)
	seedAt(t, svc, userAlice, "Acme", at)
	seedAt(t, svc, userAlice, "Globex", at)
	seedAt(t, svc, userBob, "Initech", at)

	n, err := stats.UniqueCompanyCount(context.Background(), scope.ForUser("alice"))
	if err != nil {
		t.Fatalf("UniqueCompanyCount: %v", err)
	}
	if n != 2 {
		t.Errorf("alice unique = %d, want 2", n)
	}
	n, _ = stats.UniqueCompanyCount(context.Background(), scope.All)
	if n != 3 {
		t.Errorf("global unique = %d, want 3", n)
	}
}
