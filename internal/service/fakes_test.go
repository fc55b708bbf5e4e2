package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/wasimadildev/card-to-text-backend/internal/models"
	"github.com/wasimadildev/card-to-text-backend/internal/repository"
	"github.com/wasimadildev/card-to-text-backend/internal/scope"

	"github.com/jackc/pgx/v5"
)

// fakeSubmissionRepo is an in-memory stand-in for the Postgres adapter.
// It mirrors the store's observable behavior: scope filtering, DESC
// sorting, offset/limit paging, grouping aggregation.
type fakeSubmissionRepo struct {
	subs   []models.Submission
	nextID int
}

func (f *fakeSubmissionRepo) Create(_ context.Context, s *models.Submission) error {
	f.nextID++
	s.ID = fmt.Sprintf("sub-%d", f.nextID)
	s.CreatedAt = s.SubmittedAt
	s.UpdatedAt = s.SubmittedAt
	f.subs = append(f.subs, *s)
	return nil
}

func (f *fakeSubmissionRepo) Get(_ context.Context, id string, sc scope.Scope) (*models.Submission, error) {
	for i := range f.subs {
		if f.subs[i].ID == id && sc.Matches(f.subs[i].UserID) {
			cp := f.subs[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeSubmissionRepo) Update(_ context.Context, s *models.Submission) error {
	for i := range f.subs {
		if f.subs[i].ID == s.ID {
			s.UpdatedAt = time.Now()
			f.subs[i] = *s
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (f *fakeSubmissionRepo) Delete(_ context.Context, id string, sc scope.Scope) (bool, error) {
	for i := range f.subs {
		if f.subs[i].ID == id && sc.Matches(f.subs[i].UserID) {
			f.subs = append(f.subs[:i], f.subs[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeSubmissionRepo) SetReview(_ context.Context, id, status, adminNotes, reviewedBy string, reviewedAt time.Time) (*models.Submission, error) {
	for i := range f.subs {
		if f.subs[i].ID == id {
			f.subs[i].Status = status
			f.subs[i].AdminNotes = adminNotes
			f.subs[i].ReviewedBy = reviewedBy
			at := reviewedAt
			f.subs[i].ReviewedAt = &at
			f.subs[i].UpdatedAt = reviewedAt
			cp := f.subs[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeSubmissionRepo) matches(s models.Submission, flt repository.SubmissionFilter) bool {
	if !flt.Scope.Matches(s.UserID) {
		return false
	}
	if flt.UserID != "" && s.UserID != flt.UserID {
		return false
	}
	if flt.Status != "" && s.Status != flt.Status {
		return false
	}
	if flt.CompanyName != "" &&
		!strings.Contains(strings.ToLower(s.CompanyName), strings.ToLower(flt.CompanyName)) {
		return false
	}
	return true
}

func (f *fakeSubmissionRepo) List(_ context.Context, flt repository.SubmissionFilter) ([]models.Submission, error) {
	var out []models.Submission
	for _, s := range f.subs {
		if f.matches(s, flt) {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if flt.Sort == repository.SortCreatedAt {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].SubmittedAt.After(out[j].SubmittedAt)
	})
	if flt.Offset > 0 {
		if flt.Offset >= len(out) {
			return nil, nil
		}
		out = out[flt.Offset:]
	}
	if flt.Limit > 0 && len(out) > flt.Limit {
		out = out[:flt.Limit]
	}
	return out, nil
}

func (f *fakeSubmissionRepo) Count(_ context.Context, flt repository.SubmissionFilter) (int, error) {
	n := 0
	for _, s := range f.subs {
		if f.matches(s, flt) {
			n++
		}
	}
	return n, nil
}

func (f *fakeSubmissionRepo) DistinctCompanyCount(_ context.Context, sc scope.Scope) (int, error) {
	seen := map[string]struct{}{}
	for _, s := range f.subs {
		if sc.Matches(s.UserID) {
			seen[s.CompanyName] = struct{}{}
		}
	}
	return len(seen), nil
}

func (f *fakeSubmissionRepo) CountSubmittedBetween(_ context.Context, sc scope.Scope, from, to time.Time) (int, error) {
	n := 0
	for _, s := range f.subs {
		if sc.Matches(s.UserID) && !s.SubmittedAt.Before(from) && !s.SubmittedAt.After(to) {
			n++
		}
	}
	return n, nil
}

func (f *fakeSubmissionRepo) MonthlyCounts(_ context.Context, sc scope.Scope, since time.Time) ([]models.MonthBucket, error) {
	counts := map[[2]int]int{}
	for _, s := range f.subs {
		if sc.Matches(s.UserID) && !s.SubmittedAt.Before(since) {
			counts[[2]int{s.SubmittedAt.Year(), int(s.SubmittedAt.Month())}]++
		}
	}
	var out []models.MonthBucket
	for k, n := range counts {
		out = append(out, models.MonthBucket{Year: k[0], Month: k[1], Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Month < out[j].Month
	})
	return out, nil
}

func (f *fakeSubmissionRepo) TopCompanies(_ context.Context, sc scope.Scope, limit int) ([]models.CompanyCount, error) {
	counts := map[string]int{}
	var order []string
	for _, s := range f.subs {
		if !sc.Matches(s.UserID) {
			continue
		}
		if _, ok := counts[s.CompanyName]; !ok {
			order = append(order, s.CompanyName)
		}
		counts[s.CompanyName]++
	}
	out := make([]models.CompanyCount, 0, len(order))
	for _, name := range order {
		out = append(out, models.CompanyCount{CompanyName: name, Count: counts[name]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

var _ repository.SubmissionRepository = (*fakeSubmissionRepo)(nil)

// fakeUserRepo is the in-memory user store.
type fakeUserRepo struct {
	users  []models.User
	hashes map[string]string
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{hashes: map[string]string{}}
}

func (f *fakeUserRepo) Create(_ context.Context, email, name, role, passwordHash string) (*models.User, error) {
	f.nextID++
	u := models.User{
		ID:       fmt.Sprintf("user-%d", f.nextID),
		Email:    email,
		Name:     name,
		Role:     role,
		IsActive: true,
	}
	f.users = append(f.users, u)
	f.hashes[u.ID] = passwordHash
	return &u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, string, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			cp := f.users[i]
			return &cp, f.hashes[cp.ID], nil
		}
	}
	return nil, "", nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			cp := f.users[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) ListByRole(_ context.Context, role string, limit, offset int) ([]models.User, int, error) {
	var all []models.User
	for _, u := range f.users {
		if u.Role == role {
			all = append(all, u)
		}
	}
	total := len(all)
	if offset >= len(all) {
		return nil, total, nil
	}
	all = all[offset:]
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, total, nil
}

func (f *fakeUserRepo) CountByRole(_ context.Context, role string) (int, error) {
	n := 0
	for _, u := range f.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

func (f *fakeUserRepo) SetActive(_ context.Context, id string, active bool) (*models.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			f.users[i].IsActive = active
			cp := f.users[i]
			return &cp, nil
		}
	}
	return nil, nil
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)
