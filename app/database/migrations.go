package database

import (
	"database/sql"
	"fmt"
	"log"
)

// RunMigrations creates the schema if it does not exist yet. Every
// statement is idempotent so this is safe to run on each startup.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto`,

		`CREATE TABLE IF NOT EXISTS admins (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			username VARCHAR(50) NOT NULL,
			password VARCHAR(100) NOT NULL,
			role VARCHAR(20) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (username, role)
		)`,

		`CREATE TABLE IF NOT EXISTS zones (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(100) NOT NULL UNIQUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS schools (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			code VARCHAR(50) NOT NULL UNIQUE,
			name VARCHAR(150) NOT NULL,
			zone_id UUID NOT NULL REFERENCES zones(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS students (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			first_name VARCHAR(50) NOT NULL,
			last_name VARCHAR(50) NOT NULL,
			gender VARCHAR(10) NOT NULL,
			home_town VARCHAR(50) NOT NULL DEFAULT '',
			lga VARCHAR(50) NOT NULL DEFAULT '',
			guardian_contact VARCHAR(20) NOT NULL DEFAULT '',
			photo VARCHAR(100) NOT NULL DEFAULT '',
			school_id UUID NOT NULL REFERENCES schools(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS exams (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			exam_type VARCHAR(10) NOT NULL,
			year INT NOT NULL,
			exam_date DATE,
			student_id UUID REFERENCES students(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS subjects (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(50) NOT NULL UNIQUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS results (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id),
			subject_id UUID NOT NULL REFERENCES subjects(id),
			ca_score DOUBLE PRECISION NOT NULL DEFAULT 0,
			exam_score DOUBLE PRECISION NOT NULL DEFAULT 0,
			total DOUBLE PRECISION NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (student_id, subject_id)
		)`,

		`CREATE INDEX IF NOT EXISTS idx_schools_zone_id ON schools(zone_id)`,
		`CREATE INDEX IF NOT EXISTS idx_students_school_id ON students(school_id)`,
		`CREATE INDEX IF NOT EXISTS idx_results_subject_id ON results(subject_id)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
