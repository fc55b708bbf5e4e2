package postgres

import (
	"context"

	"github.com/wasimadildev/card-to-text-backend/internal/models"
	"github.com/wasimadildev/card-to-text-backend/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepo struct{ db *pgxpool.Pool }

func NewUserRepo(db *pgxpool.Pool) repository.UserRepository { return &UserRepo{db: db} }

// Create user (stores bcrypt hash in password_h)
func (r *UserRepo) Create(ctx context.Context, email, name, role, passwordHash string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRow(ctx, `
		INSERT INTO users (email, name, role, password_h)
		VALUES ($1,$2,$3,$4)
		RETURNING id, email, name, role, active, created_at, updated_at`,
		email, name, role, passwordHash).
		Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	return &u, err
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, string, error) {
	var u models.User
	var ph string
	err := r.db.QueryRow(ctx, `
		SELECT id, email, name, role, active, password_h, created_at, updated_at
		FROM users WHERE email=$1`, email).
		Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.IsActive, &ph, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, "", nil
		}
		return nil, "", err
	}
	return &u, ph, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRow(ctx, `
		SELECT id, email, name, role, active, created_at, updated_at
		FROM users WHERE id=$1`, id).
		Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// ListByRole returns a page of users with the given role plus the total
// count for that role. Credential columns never leave this layer.
func (r *UserRepo) ListByRole(ctx context.Context, role string, limit, offset int) ([]models.User, int, error) {
	if limit <= 0 || limit > 200 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	var total int
	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM users WHERE role=$1`, role).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, email, name, role, active, created_at, updated_at
		FROM users
		WHERE role=$1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, role, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, u)
	}
	return out, total, rows.Err()
}

func (r *UserRepo) CountByRole(ctx context.Context, role string) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE role=$1`, role).Scan(&n)
	return n, err
}

func (r *UserRepo) SetActive(ctx context.Context, id string, active bool) (*models.User, error) {
	var u models.User
	err := r.db.QueryRow(ctx, `
		UPDATE users
		SET active=$1, updated_at=now()
		WHERE id=$2
		RETURNING id, email, name, role, active, created_at, updated_at
	`, active, id).Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
