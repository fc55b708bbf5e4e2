package postgres

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/wasimadildev/card-to-text-backend/internal/models"
	"github.com/wasimadildev/card-to-text-backend/internal/repository"
	"github.com/wasimadildev/card-to-text-backend/internal/scope"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SubmissionRepo struct{ db *pgxpool.Pool }

func NewSubmissionRepo(db *pgxpool.Pool) repository.SubmissionRepository {
	return &SubmissionRepo{db: db}
}

const submissionCols = `
	id, user_id, rep, relevancy, company_name, first_name, last_name, email,
	phone, whatsapp, partner_details, target_regions, lob, tier, grades, volume,
	add_associates, notes, business_card_url, status, admin_notes,
	COALESCE(reviewed_by::text, ''), reviewed_at, submitted_at, created_at, updated_at`

func scanSubmission(row pgx.Row) (*models.Submission, error) {
	var s models.Submission
	err := row.Scan(
		&s.ID, &s.UserID, &s.Rep, &s.Relevancy, &s.CompanyName, &s.FirstName,
		&s.LastName, &s.Email, &s.Phone, &s.Whatsapp, &s.PartnerDetails,
		&s.TargetRegions, &s.LOB, &s.Tier, &s.Grades, &s.Volume,
		&s.AddAssociates, &s.Notes, &s.BusinessCardURL, &s.Status, &s.AdminNotes,
		&s.ReviewedBy, &s.ReviewedAt, &s.SubmittedAt, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// -----------------------------------------------------------------------------
// Create / single-record paths (all scope-checked except Create)
// -----------------------------------------------------------------------------

func (r *SubmissionRepo) Create(ctx context.Context, s *models.Submission) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO submissions (
			user_id, rep, relevancy, company_name, first_name, last_name, email,
			phone, whatsapp, partner_details, target_regions, lob, tier, grades,
			volume, add_associates, notes, business_card_url, status, submitted_at
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20)
		RETURNING id, created_at, updated_at
	`,
		s.UserID, s.Rep, s.Relevancy, s.CompanyName, s.FirstName, s.LastName,
		s.Email, s.Phone, s.Whatsapp, s.PartnerDetails, s.TargetRegions, s.LOB,
		s.Tier, s.Grades, s.Volume, s.AddAssociates, s.Notes, s.BusinessCardURL,
		s.Status, s.SubmittedAt,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

func (r *SubmissionRepo) Get(ctx context.Context, id string, sc scope.Scope) (*models.Submission, error) {
	args := []any{id}
	cond := "id = $1"
	if !sc.IsAll() {
		args = append(args, sc.UserID)
		cond += " AND user_id = $2"
	}
	s, err := scanSubmission(r.db.QueryRow(ctx,
		`SELECT `+submissionCols+` FROM submissions WHERE `+cond, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return s, nil
}

// Update writes the owner-mutable columns only. The review block
// (status, admin_notes, reviewed_by, reviewed_at) and user_id are
// untouched here; SetReview is the one path that changes them.
func (r *SubmissionRepo) Update(ctx context.Context, s *models.Submission) error {
	s.UpdatedAt = time.Now()
	ct, err := r.db.Exec(ctx, `
		UPDATE submissions SET
			rep=$1, relevancy=$2, company_name=$3, first_name=$4, last_name=$5,
			email=$6, phone=$7, whatsapp=$8, partner_details=$9, target_regions=$10,
			lob=$11, tier=$12, grades=$13, volume=$14, add_associates=$15,
			notes=$16, business_card_url=$17, updated_at=$18
		WHERE id=$19
	`,
		s.Rep, s.Relevancy, s.CompanyName, s.FirstName, s.LastName, s.Email,
		s.Phone, s.Whatsapp, s.PartnerDetails, s.TargetRegions, s.LOB, s.Tier,
		s.Grades, s.Volume, s.AddAssociates, s.Notes, s.BusinessCardURL,
		s.UpdatedAt, s.ID,
	)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *SubmissionRepo) Delete(ctx context.Context, id string, sc scope.Scope) (bool, error) {
	args := []any{id}
	cond := "id = $1"
	if !sc.IsAll() {
		args = append(args, sc.UserID)
		cond += " AND user_id = $2"
	}
	ct, err := r.db.Exec(ctx, `DELETE FROM submissions WHERE `+cond, args...)
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() > 0, nil
}

func (r *SubmissionRepo) SetReview(ctx context.Context, id, status, adminNotes, reviewedBy string, reviewedAt time.Time) (*models.Submission, error) {
	s, err := scanSubmission(r.db.QueryRow(ctx, `
		UPDATE submissions SET
			status=$1, admin_notes=$2, reviewed_by=$3, reviewed_at=$4, updated_at=now()
		WHERE id=$5
		RETURNING `+submissionCols,
		status, adminNotes, reviewedBy, reviewedAt, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return s, nil
}

// -----------------------------------------------------------------------------
// Scoped listing + count (pagination pair)
// -----------------------------------------------------------------------------

func (r *SubmissionRepo) List(ctx context.Context, f repository.SubmissionFilter) ([]models.Submission, error) {
	whereSQL, args := buildSubmissionWhere(f)

	sortCol := sanitizeSort(f.Sort, "submitted_at")
	sql := fmt.Sprintf(`SELECT %s FROM submissions %s ORDER BY %s DESC`,
		submissionCols, whereSQL, sortCol)

	if f.Limit > 0 {
		args = append(args, f.Limit, f.Offset)
		sql += " LIMIT $" + itoa(len(args)-1) + " OFFSET $" + itoa(len(args))
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Submission
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}

func (r *SubmissionRepo) Count(ctx context.Context, f repository.SubmissionFilter) (int, error) {
	whereSQL, args := buildSubmissionWhere(f)
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM submissions `+whereSQL, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// -----------------------------------------------------------------------------
// Aggregation helpers (used by the statistics service)
// -----------------------------------------------------------------------------

func (r *SubmissionRepo) DistinctCompanyCount(ctx context.Context, sc scope.Scope) (int, error) {
	whereSQL, args := buildSubmissionWhere(repository.SubmissionFilter{Scope: sc})
	var n int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(DISTINCT company_name) FROM submissions `+whereSQL, args...).Scan(&n)
	return n, err
}

// CountSubmittedBetween counts submissions with submitted_at in [from, to].
func (r *SubmissionRepo) CountSubmittedBetween(ctx context.Context, sc scope.Scope, from, to time.Time) (int, error) {
	whereSQL, args := buildSubmissionWhere(repository.SubmissionFilter{Scope: sc})
	args = append(args, from, to)
	sql := fmt.Sprintf(`SELECT COUNT(*) FROM submissions %s AND submitted_at >= $%d AND submitted_at <= $%d`,
		whereSQL, len(args)-1, len(args))
	var n int
	err := r.db.QueryRow(ctx, sql, args...).Scan(&n)
	return n, err
}

// MonthlyCounts groups submissions since the given instant by
// (year, month) of submitted_at, ascending. Empty months do not appear.
func (r *SubmissionRepo) MonthlyCounts(ctx context.Context, sc scope.Scope, since time.Time) ([]models.MonthBucket, error) {
	whereSQL, args := buildSubmissionWhere(repository.SubmissionFilter{Scope: sc})
	args = append(args, since)
	sql := fmt.Sprintf(`
		SELECT EXTRACT(YEAR FROM submitted_at)::int AS y,
		       EXTRACT(MONTH FROM submitted_at)::int AS m,
		       COUNT(*)::int
		FROM submissions
		%s AND submitted_at >= $%d
		GROUP BY y, m
		ORDER BY y ASC, m ASC
	`, whereSQL, len(args))

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.MonthBucket
	for rows.Next() {
		var b models.MonthBucket
		if err := rows.Scan(&b.Year, &b.Month, &b.Count); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// TopCompanies ranks companies by submission count, descending.
// Ties fall back to the store's grouping order.
func (r *SubmissionRepo) TopCompanies(ctx context.Context, sc scope.Scope, limit int) ([]models.CompanyCount, error) {
	if limit <= 0 {
		limit = 10
	}
	whereSQL, args := buildSubmissionWhere(repository.SubmissionFilter{Scope: sc})
	args = append(args, limit)
	sql := fmt.Sprintf(`
		SELECT company_name, COUNT(*)::int AS n
		FROM submissions
		%s
		GROUP BY company_name
		ORDER BY n DESC
		LIMIT $%d
	`, whereSQL, len(args))

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.CompanyCount
	for rows.Next() {
		var c models.CompanyCount
		if err := rows.Scan(&c.CompanyName, &c.Count); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

// buildSubmissionWhere composes the WHERE clause and args for a scoped,
// filtered submission query.
func buildSubmissionWhere(f repository.SubmissionFilter) (string, []any) {
	clauses := []string{"1=1"}
	args := []any{}

	if !f.Scope.IsAll() {
		args = append(args, f.Scope.UserID)
		clauses = append(clauses, "user_id = $"+itoa(len(args)))
	}
	if s := strings.TrimSpace(f.UserID); s != "" {
		args = append(args, s)
		clauses = append(clauses, "user_id = $"+itoa(len(args)))
	}
	if s := strings.TrimSpace(f.Status); s != "" {
		args = append(args, s)
		clauses = append(clauses, "status = $"+itoa(len(args)))
	}
	if s := strings.TrimSpace(f.CompanyName); s != "" {
		args = append(args, "%"+s+"%")
		clauses = append(clauses, "company_name ILIKE $"+itoa(len(args)))
	}

	return "WHERE " + strings.Join(clauses, " AND "), args
}

func sanitizeSort(s, def string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case repository.SortSubmittedAt, repository.SortCreatedAt:
		return s
	default:
		return def
	}
}

// small helper to avoid fmt for performance-sensitive path.
func itoa(i int) string { return strconv.Itoa(i) }
