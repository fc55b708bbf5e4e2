package service

import (
	"context"

	"github.com/wasimadildev/card-to-text-backend/internal/apperr"
	"github.com/wasimadildev/card-to-text-backend/internal/models"
	"github.com/wasimadildev/card-to-text-backend/internal/repository"
	"github.com/wasimadildev/card-to-text-backend/internal/scope"
)

// AdminService composes the query engine, statistics and lifecycle
// manager for administrator-only views and overrides.
type AdminService struct {
	users     repository.UserRepository
	subs      repository.SubmissionRepository
	stats     *StatsService
	lifecycle *SubmissionService
}

func NewAdminService(users repository.UserRepository, subs repository.SubmissionRepository, stats *StatsService, lifecycle *SubmissionService) *AdminService {
	return &AdminService{users: users, subs: subs, stats: stats, lifecycle: lifecycle}
}

// ListUsers pages through role=user accounts. Credential fields never
// reach this layer.
func (a *AdminService) ListUsers(ctx context.Context, page, limit int) ([]models.User, *models.Pagination, error) {
	page, limit = coercePage(page, limit)
	users, total, err := a.users.ListByRole(ctx, models.RoleUser, limit, (page-1)*limit)
	if err != nil {
		return nil, nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, &models.Pagination{
		CurrentPage: page,
		TotalPages:  totalPages(total, limit),
		TotalItems:  total,
	}, nil
}

// UserDetail is one user plus all their submissions and stats.
type UserDetail struct {
	User        *models.User        `json:"user"`
	Submissions []models.Submission `json:"submissions"`
	Stats       models.UserStats    `json:"stats"`
}

func (a *AdminService) UserDetail(ctx context.Context, userID string) (*UserDetail, error) {
	u, err := a.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.NotFound("User")
	}

	sc := scope.ForUser(userID)
	subs, err := a.subs.List(ctx, repository.SubmissionFilter{Scope: sc, Sort: repository.SortSubmittedAt})
	if err != nil {
		return nil, err
	}
	if subs == nil {
		subs = []models.Submission{}
	}

	stats, err := a.stats.ActivityStats(ctx, sc, len(subs))
	if err != nil {
		return nil, err
	}
	return &UserDetail{User: u, Submissions: subs, Stats: stats}, nil
}

// AdminListCriteria narrows the all-submissions view. UserID and
// Status match exactly; CompanyName is a case-insensitive substring.
type AdminListCriteria struct {
	Page        int
	Limit       int
	UserID      string
	Status      string
	CompanyName string
}

func (a *AdminService) ListSubmissions(ctx context.Context, c AdminListCriteria) ([]models.Submission, *models.Pagination, error) {
	page, limit := coercePage(c.Page, c.Limit)

	f := repository.SubmissionFilter{
		Scope:       scope.All,
		UserID:      c.UserID,
		Status:      c.Status,
		CompanyName: c.CompanyName,
		Sort:        repository.SortSubmittedAt,
		Limit:       limit,
		Offset:      (page - 1) * limit,
	}
	items, err := a.subs.List(ctx, f)
	if err != nil {
		return nil, nil, err
	}
	if items == nil {
		items = []models.Submission{}
	}

	total, err := a.subs.Count(ctx, repository.SubmissionFilter{
		Scope:       scope.All,
		UserID:      c.UserID,
		Status:      c.Status,
		CompanyName: c.CompanyName,
	})
	if err != nil {
		return nil, nil, err
	}

	return items, &models.Pagination{
		CurrentPage: page,
		TotalPages:  totalPages(total, limit),
		TotalItems:  total,
	}, nil
}

// UpdateStatus applies a review decision through the lifecycle manager.
func (a *AdminService) UpdateStatus(ctx context.Context, admin scope.Identity, id, status, notes string) (*models.Submission, error) {
	return a.lifecycle.TransitionStatus(ctx, admin, id, status, notes)
}

// DashboardStats is the admin landing view, computed at request time.
type DashboardStats struct {
	Overview     models.DashboardOverview `json:"overview"`
	MonthlyStats []models.MonthBucket     `json:"monthlyStats"`
	TopCompanies []models.CompanyCount    `json:"topCompanies"`
}

func (a *AdminService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	totalUsers, err := a.users.CountByRole(ctx, models.RoleUser)
	if err != nil {
		return nil, err
	}
	totalSubs, err := a.subs.Count(ctx, repository.SubmissionFilter{Scope: scope.All})
	if err != nil {
		return nil, err
	}
	pending, err := a.subs.Count(ctx, repository.SubmissionFilter{Scope: scope.All, Status: models.StatusPending})
	if err != nil {
		return nil, err
	}
	approved, err := a.subs.Count(ctx, repository.SubmissionFilter{Scope: scope.All, Status: models.StatusApproved})
	if err != nil {
		return nil, err
	}
	trend, err := a.stats.MonthlyTrend(ctx, scope.All, defaultTrendMonths)
	if err != nil {
		return nil, err
	}
	if trend == nil {
		trend = []models.MonthBucket{}
	}
	top, err := a.stats.TopCompanies(ctx, scope.All, defaultTopCompanies)
	if err != nil {
		return nil, err
	}
	if top == nil {
		top = []models.CompanyCount{}
	}

	return &DashboardStats{
		Overview: models.DashboardOverview{
			TotalUsers:          totalUsers,
			TotalSubmissions:    totalSubs,
			PendingSubmissions:  pending,
			ApprovedSubmissions: approved,
		},
		MonthlyStats: trend,
		TopCompanies: top,
	}, nil
}

// ToggleUserActive flips a user's active flag. Admin accounts cannot
// be toggled.
func (a *AdminService) ToggleUserActive(ctx context.Context, userID string) (*models.User, error) {
	u, err := a.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.NotFound("User")
	}
	if u.Role == models.RoleAdmin {
		return nil, apperr.Forbidden("cannot modify admin user status")
	}
	updated, err := a.users.SetActive(ctx, userID, !u.IsActive)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperr.NotFound("User")
	}
	return updated, nil
}
