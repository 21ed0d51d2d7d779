package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schemaSQL creates the record tables when missing. Column order matches
// domain.TableColumns. The p1_cms primary key backs the conflict-tolerant
// shortlist insert.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS p1_clients (
	client_id TEXT PRIMARY KEY,
	company   TEXT NOT NULL,
	city      TEXT,
	industry  TEXT,
	note      TEXT,
	ci_name   TEXT,
	ci_phone  TEXT,
	ci_email  TEXT
);

CREATE TABLE IF NOT EXISTS p1_projects (
	project_id       TEXT PRIMARY KEY,
	client           TEXT NOT NULL REFERENCES p1_clients(client_id),
	project_name     TEXT NOT NULL,
	job_position     TEXT,
	number_employees INTEGER,
	note             TEXT,
	compensation     TEXT
);

CREATE TABLE IF NOT EXISTS p1_candidates (
	candidate_id     TEXT PRIMARY KEY,
	name_surname     TEXT NOT NULL,
	gender           TEXT,
	birth_year       INTEGER,
	city             TEXT,
	phone            TEXT,
	mail             TEXT,
	linkedin         TEXT,
	note             TEXT,
	school           TEXT,
	major            TEXT,
	business_skills  TEXT,
	licences         TEXT,
	languages        TEXT,
	current_position TEXT,
	work_experience  TEXT,
	optimal_position TEXT,
	talent_score     TEXT,
	project_id       TEXT,
	blacklisted      TEXT NOT NULL DEFAULT 'False',
	kn1_description  TEXT,
	kn1_score        NUMERIC,
	kn2_description  TEXT,
	kn2_score        NUMERIC,
	competencies     TEXT,
	c_description    TEXT,
	pv_description   TEXT
);

CREATE TABLE IF NOT EXISTS p1_cms (
	project_id   TEXT NOT NULL,
	candidate_id TEXT NOT NULL,
	note         TEXT,
	rating       INTEGER,
	accepted     TEXT,
	reserve      TEXT,
	rejected     TEXT,
	PRIMARY KEY (project_id, candidate_id)
);
`

// EnsureSchema creates any missing record table
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	if _, err := db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
