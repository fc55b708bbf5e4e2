package database

import (
	"context"

	"github.com/wasimadildev/card-to-text-backend/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

func Open(ctx context.Context, cfg config.Config) (*pgxpool.Pool, error) {
	pcfg, err := pgxpool.ParseConfig(cfg.DBURL)
	if err != nil {
		return nil, err
	}
	return pgxpool.NewWithConfig(ctx, pcfg)
}

// EnsureSchema creates the tables and indexes when they are missing.
// Idempotent; runs once at startup.
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	_, err := db.Exec(ctx, schema)
	return err
}

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id         uuid PRIMARY KEY DEFAULT gen_random_uuid(),
	email      text NOT NULL UNIQUE,
	name       text NOT NULL,
	role       text NOT NULL DEFAULT 'user',
	active     boolean NOT NULL DEFAULT true,
	password_h text NOT NULL,
	created_at timestamptz NOT NULL DEFAULT now(),
	updated_at timestamptz NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS submissions (
	id                uuid PRIMARY KEY DEFAULT gen_random_uuid(),
	user_id           uuid NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	rep               text NOT NULL,
	relevancy         text NOT NULL,
	company_name      text NOT NULL,
	first_name        text NOT NULL,
	last_name         text NOT NULL,
	email             text NOT NULL,
	phone             text NOT NULL,
	whatsapp          text NOT NULL,
	partner_details   text[] NOT NULL DEFAULT '{}',
	target_regions    text[] NOT NULL DEFAULT '{}',
	lob               text[] NOT NULL DEFAULT '{}',
	tier              text NOT NULL,
	grades            text[] NOT NULL DEFAULT '{}',
	volume            text NOT NULL,
	add_associates    text NOT NULL DEFAULT '',
	notes             text NOT NULL DEFAULT '',
	business_card_url text NOT NULL DEFAULT '',
	status            text NOT NULL DEFAULT 'pending',
	admin_notes       text NOT NULL DEFAULT '',
	reviewed_by       uuid,
	reviewed_at       timestamptz,
	submitted_at      timestamptz NOT NULL DEFAULT now(),
	created_at        timestamptz NOT NULL DEFAULT now(),
	updated_at        timestamptz NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_submissions_user_id      ON submissions (user_id);
CREATE INDEX IF NOT EXISTS idx_submissions_company_name ON submissions (company_name);
CREATE INDEX IF NOT EXISTS idx_submissions_submitted_at ON submissions (submitted_at DESC);
CREATE INDEX IF NOT EXISTS idx_submissions_user_submitted ON submissions (user_id, submitted_at DESC);
`
