package repository

import (
	"context"
	"time"

	"github.com/wasimadildev/card-to-text-backend/internal/models"
	"github.com/wasimadildev/card-to-text-backend/internal/scope"
)

// SubmissionRepository is the typed record-store adapter for lead
// submissions. Every read/mutate takes the caller's scope; aggregate
// helpers back the statistics service.
type SubmissionRepository interface {
	Create(ctx context.Context, s *models.Submission) error
	Get(ctx context.Context, id string, sc scope.Scope) (*models.Submission, error)
	Update(ctx context.Context, s *models.Submission) error
	Delete(ctx context.Context, id string, sc scope.Scope) (bool, error)
	SetReview(ctx context.Context, id, status, adminNotes, reviewedBy string, reviewedAt time.Time) (*models.Submission, error)

	List(ctx context.Context, f SubmissionFilter) ([]models.Submission, error)
	Count(ctx context.Context, f SubmissionFilter) (int, error)

	DistinctCompanyCount(ctx context.Context, sc scope.Scope) (int, error)
	CountSubmittedBetween(ctx context.Context, sc scope.Scope, from, to time.Time) (int, error)
	MonthlyCounts(ctx context.Context, sc scope.Scope, since time.Time) ([]models.MonthBucket, error)
	TopCompanies(ctx context.Context, sc scope.Scope, limit int) ([]models.CompanyCount, error)
}

type UserRepository interface {
	Create(ctx context.Context, email, name, role, passwordHash string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, string /*passwordHash*/, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	ListByRole(ctx context.Context, role string, limit, offset int) ([]models.User, int, error)
	CountByRole(ctx context.Context, role string) (int, error)
	SetActive(ctx context.Context, id string, active bool) (*models.User, error)
}
