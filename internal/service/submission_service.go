package service

import (
	"context"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/wasimadildev/card-to-text-backend/internal/apperr"
	"github.com/wasimadildev/card-to-text-backend/internal/models"
	"github.com/wasimadildev/card-to-text-backend/internal/repository"
	"github.com/wasimadildev/card-to-text-backend/internal/scope"

	"github.com/jackc/pgx/v5"
)

var emailRx = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

const maxAdminNotesLen = 500

// SubmissionService owns the submission lifecycle: creation with field
// validation, scoped read/update/delete, and the admin status
// transition. Every data access goes through the scope predicate.
type SubmissionService struct {
	subs  repository.SubmissionRepository
	stats *StatsService
	now   func() time.Time
}

func NewSubmissionService(subs repository.SubmissionRepository, stats *StatsService) *SubmissionService {
	return &SubmissionService{subs: subs, stats: stats, now: time.Now}
}

// SubmissionInput carries the client-supplied fields for a create.
// Ownership and review fields are never part of the input.
type SubmissionInput struct {
	Rep             string   `json:"rep"`
	Relevancy       string   `json:"relevancy"`
	CompanyName     string   `json:"companyName"`
	FirstName       string   `json:"firstName"`
	LastName        string   `json:"lastName"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	Whatsapp        string   `json:"whatsapp"`
	Tier            string   `json:"tier"`
	Volume          string   `json:"volume"`
	PartnerDetails  []string `json:"partnerDetails"`
	TargetRegions   []string `json:"targetRegions"`
	LOB             []string `json:"lob"`
	Grades          []string `json:"grades"`
	AddAssociates   string   `json:"addAssociates"`
	Notes           string   `json:"notes"`
	BusinessCardURL string   `json:"businessCardUrl"`
}

// SubmissionUpdate is a partial update: nil means "leave unchanged".
// A present-but-empty required field is rejected.
type SubmissionUpdate struct {
	Rep             *string  `json:"rep"`
	Relevancy       *string  `json:"relevancy"`
	CompanyName     *string  `json:"companyName"`
	FirstName       *string  `json:"firstName"`
	LastName        *string  `json:"lastName"`
	Email           *string  `json:"email"`
	Phone           *string  `json:"phone"`
	Whatsapp        *string  `json:"whatsapp"`
	Tier            *string  `json:"tier"`
	Volume          *string  `json:"volume"`
	PartnerDetails  []string `json:"partnerDetails"`
	TargetRegions   []string `json:"targetRegions"`
	LOB             []string `json:"lob"`
	Grades          []string `json:"grades"`
	AddAssociates   *string  `json:"addAssociates"`
	Notes           *string  `json:"notes"`
	BusinessCardURL *string  `json:"businessCardUrl"`
}

// Create validates the ten required fields in a fixed order, stamps
// ownership and submission time server-side, and stores the record
// with status pending.
func (s *SubmissionService) Create(ctx context.Context, ident scope.Identity, in SubmissionInput) (*models.Submission, error) {
	required := []struct {
		name  string
		value *string
	}{
		{"rep", &in.Rep},
		{"relevancy", &in.Relevancy},
		{"companyName", &in.CompanyName},
		{"firstName", &in.FirstName},
		{"lastName", &in.LastName},
		{"email", &in.Email},
		{"phone", &in.Phone},
		{"whatsapp", &in.Whatsapp},
		{"tier", &in.Tier},
		{"volume", &in.Volume},
	}
	for _, f := range required {
		*f.value = strings.TrimSpace(*f.value)
		if *f.value == "" {
			return nil, apperr.Required(f.name)
		}
	}
	if !models.ValidRelevancy(in.Relevancy) {
		return nil, &apperr.ValidationError{Field: "relevancy", Reason: "must be High, Medium, or Low"}
	}
	in.Email = strings.ToLower(in.Email)
	if !emailRx.MatchString(in.Email) {
		return nil, &apperr.ValidationError{Field: "email", Reason: "must be a valid email"}
	}

	sub := &models.Submission{
		UserID:          ident.UserID,
		Rep:             in.Rep,
		Relevancy:       in.Relevancy,
		CompanyName:     in.CompanyName,
		FirstName:       in.FirstName,
		LastName:        in.LastName,
		Email:           in.Email,
		Phone:           in.Phone,
		Whatsapp:        in.Whatsapp,
		Tier:            in.Tier,
		Volume:          in.Volume,
		PartnerDetails:  trimEach(in.PartnerDetails),
		TargetRegions:   trimEach(in.TargetRegions),
		LOB:             trimEach(in.LOB),
		Grades:          trimEach(in.Grades),
		AddAssociates:   strings.TrimSpace(in.AddAssociates),
		Notes:           strings.TrimSpace(in.Notes),
		BusinessCardURL: strings.TrimSpace(in.BusinessCardURL),
		Status:          models.StatusPending,
		SubmittedAt:     s.now(),
	}
	if err := s.subs.Create(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// Get fetches one submission under the caller's scope. Out-of-scope
// and nonexistent records are indistinguishable.
func (s *SubmissionService) Get(ctx context.Context, ident scope.Identity, id string) (*models.Submission, error) {
	sub, err := s.subs.Get(ctx, id, scope.Resolve(ident))
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, apperr.NotFound("Submission")
	}
	return sub, nil
}

// Update merges a partial update into a scope-checked fetch. The fetch
// comes first, so out-of-scope records read as not found no matter what
// the body contains. Required fields present in the input are
// re-validated; ownership and review fields cannot be set from this path.
func (s *SubmissionService) Update(ctx context.Context, ident scope.Identity, id string, in SubmissionUpdate) (*models.Submission, error) {
	sub, err := s.subs.Get(ctx, id, scope.Resolve(ident))
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, apperr.NotFound("Submission")
	}

	required := []struct {
		name  string
		value *string
	}{
		{"rep", in.Rep},
		{"relevancy", in.Relevancy},
		{"companyName", in.CompanyName},
		{"firstName", in.FirstName},
		{"lastName", in.LastName},
		{"email", in.Email},
		{"phone", in.Phone},
		{"whatsapp", in.Whatsapp},
		{"tier", in.Tier},
		{"volume", in.Volume},
	}
	for _, f := range required {
		if f.value == nil {
			continue
		}
		*f.value = strings.TrimSpace(*f.value)
		if *f.value == "" {
			return nil, apperr.Required(f.name)
		}
	}
	if in.Relevancy != nil && !models.ValidRelevancy(*in.Relevancy) {
		return nil, &apperr.ValidationError{Field: "relevancy", Reason: "must be High, Medium, or Low"}
	}
	if in.Email != nil {
		*in.Email = strings.ToLower(*in.Email)
		if !emailRx.MatchString(*in.Email) {
			return nil, &apperr.ValidationError{Field: "email", Reason: "must be a valid email"}
		}
	}

	applyString(&sub.Rep, in.Rep)
	applyString(&sub.Relevancy, in.Relevancy)
	applyString(&sub.CompanyName, in.CompanyName)
	applyString(&sub.FirstName, in.FirstName)
	applyString(&sub.LastName, in.LastName)
	applyString(&sub.Email, in.Email)
	applyString(&sub.Phone, in.Phone)
	applyString(&sub.Whatsapp, in.Whatsapp)
	applyString(&sub.Tier, in.Tier)
	applyString(&sub.Volume, in.Volume)
	applyString(&sub.AddAssociates, in.AddAssociates)
	applyString(&sub.Notes, in.Notes)
	applyString(&sub.BusinessCardURL, in.BusinessCardURL)
	if in.PartnerDetails != nil {
		sub.PartnerDetails = trimEach(in.PartnerDetails)
	}
	if in.TargetRegions != nil {
		sub.TargetRegions = trimEach(in.TargetRegions)
	}
	if in.LOB != nil {
		sub.LOB = trimEach(in.LOB)
	}
	if in.Grades != nil {
		sub.Grades = trimEach(in.Grades)
	}

	if err := s.subs.Update(ctx, sub); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperr.NotFound("Submission")
		}
		return nil, err
	}
	return sub, nil
}

// Delete permanently removes a scope-visible submission.
func (s *SubmissionService) Delete(ctx context.Context, ident scope.Identity, id string) error {
	ok, err := s.subs.Delete(ctx, id, scope.Resolve(ident))
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("Submission")
	}
	return nil
}

// TransitionStatus is the admin-only review path: any status may move
// to any other; reviewedBy/reviewedAt are refreshed on every call.
func (s *SubmissionService) TransitionStatus(ctx context.Context, admin scope.Identity, id, status, notes string) (*models.Submission, error) {
	if !admin.IsAdmin() {
		return nil, apperr.Forbidden("admin role required")
	}
	if !models.ValidStatus(status) {
		return nil, &apperr.ValidationError{Field: "status", Reason: "must be pending, approved, rejected, or in_review"}
	}
	if utf8.RuneCountInString(notes) > maxAdminNotesLen {
		return nil, &apperr.ValidationError{Field: "adminNotes", Reason: "cannot exceed 500 characters"}
	}
	sub, err := s.subs.SetReview(ctx, id, status, notes, admin.UserID, s.now())
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, apperr.NotFound("Submission")
	}
	return sub, nil
}

// ListCriteria are the caller-supplied listing knobs. Page and Limit
// are coerced to positive values, never rejected.
type ListCriteria struct {
	Page   int
	Limit  int
	Recent bool
}

// ListResult is the self-listing envelope: a page of submissions plus
// the caller's activity stats. Pagination is nil for recent queries.
type ListResult struct {
	Submissions []models.Submission `json:"submissions"`
	Stats       models.UserStats    `json:"stats"`
	Pagination  *models.Pagination  `json:"pagination"`
}

// recentLimit caps a recent=true listing.
const recentLimit = 3

// List returns the caller's submissions in creation-recency order.
// recent=true returns at most the 3 newest with no pagination
// metadata; otherwise skip/limit paging with a pre-pagination total.
func (s *SubmissionService) List(ctx context.Context, ident scope.Identity, c ListCriteria) (*ListResult, error) {
	sc := scope.Resolve(ident)
	page, limit := coercePage(c.Page, c.Limit)

	f := repository.SubmissionFilter{Scope: sc, Sort: repository.SortCreatedAt}
	if c.Recent {
		f.Limit = recentLimit
	} else {
		f.Limit = limit
		f.Offset = (page - 1) * limit
	}

	items, err := s.subs.List(ctx, f)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Submission{}
	}

	total, err := s.subs.Count(ctx, repository.SubmissionFilter{Scope: sc})
	if err != nil {
		return nil, err
	}

	stats, err := s.stats.ActivityStats(ctx, sc, total)
	if err != nil {
		return nil, err
	}

	res := &ListResult{Submissions: items, Stats: stats}
	if !c.Recent {
		res.Pagination = &models.Pagination{
			CurrentPage: page,
			TotalPages:  totalPages(total, limit),
			TotalItems:  total,
		}
	}
	return res, nil
}

// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}

// trimEach trims every element and never returns nil (the store's
// array columns are NOT NULL).
func trimEach(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		out = append(out, strings.TrimSpace(v))
	}
	return out
}

func coercePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return page, limit
}

func totalPages(total, limit int) int {
	return (total + limit - 1) / limit
}
