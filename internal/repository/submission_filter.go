package repository

import "github.com/wasimadildev/card-to-text-backend/internal/scope"

// Sort columns accepted by SubmissionFilter.
const (
	SortSubmittedAt = "submitted_at"
	SortCreatedAt   = "created_at"
)

// SubmissionFilter describes one scoped listing/count query.
// Scope is always applied; the remaining filters narrow it further
// (admin listings only). CompanyName matches as a case-insensitive
// substring; UserID and Status match exactly.
type SubmissionFilter struct {
	Scope       scope.Scope
	UserID      string
	Status      string
	CompanyName string
	Sort        string // submitted_at | created_at (descending)
	Limit       int    // <=0 means no limit
	Offset      int
}
