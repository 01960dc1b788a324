package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// defaultEducationYear is seeded on first start so the dashboard always has a
// year to scope against.
const defaultEducationYear = "2025-2026"

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS education_years (
		id BIGSERIAL PRIMARY KEY,
		year TEXT UNIQUE NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT TRUE
	)`,
	`CREATE TABLE IF NOT EXISTS classes (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		education_year_id BIGINT REFERENCES education_years (id)
	)`,
	`CREATE TABLE IF NOT EXISTS students (
		id BIGSERIAL PRIMARY KEY,
		photo TEXT,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		student_number TEXT NOT NULL,
		birth_date TEXT NOT NULL DEFAULT '',
		class_id BIGINT REFERENCES classes (id),
		education_year_id BIGINT REFERENCES education_years (id),
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		health_info TEXT NOT NULL DEFAULT '',
		parents_together BOOLEAN NOT NULL DEFAULT FALSE,
		is_bilsem BOOLEAN NOT NULL DEFAULT FALSE,
		special_conditions TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS mother_info (
		id BIGSERIAL PRIMARY KEY,
		student_id BIGINT UNIQUE REFERENCES students (id),
		name TEXT NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		job TEXT NOT NULL DEFAULT '',
		work_address TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		is_guardian BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS father_info (
		id BIGSERIAL PRIMARY KEY,
		student_id BIGINT UNIQUE REFERENCES students (id),
		name TEXT NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		job TEXT NOT NULL DEFAULT '',
		work_address TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		is_guardian BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS guardian_info (
		id BIGSERIAL PRIMARY KEY,
		student_id BIGINT REFERENCES students (id),
		name TEXT NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		relationship TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS talents (
		id BIGSERIAL PRIMARY KEY,
		student_id BIGINT REFERENCES students (id),
		talent_name TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS development_notes (
		id BIGSERIAL PRIMARY KEY,
		student_id BIGINT REFERENCES students (id),
		note TEXT NOT NULL,
		date TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS evaluation_notes (
		id BIGSERIAL PRIMARY KEY,
		student_id BIGINT REFERENCES students (id),
		note TEXT NOT NULL,
		date TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS announcements (
		id BIGSERIAL PRIMARY KEY,
		class_id BIGINT NOT NULL REFERENCES classes (id),
		education_year_id BIGINT NOT NULL REFERENCES education_years (id),
		title TEXT NOT NULL,
		event_date TEXT,
		is_shared BOOLEAN NOT NULL DEFAULT FALSE,
		shared_date TEXT,
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS guidance_plans (
		id BIGSERIAL PRIMARY KEY,
		class_id BIGINT NOT NULL REFERENCES classes (id),
		education_year_id BIGINT NOT NULL REFERENCES education_years (id),
		date TEXT NOT NULL,
		topic TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS guidance_events (
		id BIGSERIAL PRIMARY KEY,
		plan_id BIGINT NOT NULL REFERENCES guidance_plans (id),
		date TEXT NOT NULL,
		event_name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		file_path TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// repairStatements remove parent rows that predate the unique constraint on
// student_id, keeping the lowest-numbered row per student.
var repairStatements = []string{
	`DELETE FROM mother_info WHERE id NOT IN (
		SELECT MIN(id) FROM mother_info GROUP BY student_id
	)`,
	`DELETE FROM father_info WHERE id NOT IN (
		SELECT MIN(id) FROM father_info GROUP BY student_id
	)`,
}

// InitSchema brings the store to a ready state. It is idempotent and any
// failure is returned so the caller can abort startup.
func InitSchema(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}

	const seed = `INSERT INTO education_years (year) VALUES ($1) ON CONFLICT (year) DO NOTHING`
	if _, err := db.ExecContext(ctx, seed, defaultEducationYear); err != nil {
		return fmt.Errorf("seed education year: %w", err)
	}

	for _, stmt := range repairStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("repair parent rows: %w", err)
		}
	}

	return nil
}
