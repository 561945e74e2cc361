// Package schema carries the DDL the ingestion pipeline targets. The serving
// process applies it idempotently at startup so a fresh database is usable
// before the first ingestion run.
package schema

import (
	"context"

	"skill-compass/internal/database"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS occupations (
		uri         TEXT PRIMARY KEY,
		label       TEXT NOT NULL,
		description TEXT,
		isco_code   TEXT,
		embedding   REAL[]
	)`,
	`CREATE TABLE IF NOT EXISTS skills (
		uri         TEXT PRIMARY KEY,
		label       TEXT NOT NULL,
		description TEXT,
		skill_type  TEXT NOT NULL CHECK (skill_type IN ('knowledge', 'skill/competence')),
		embedding   REAL[]
	)`,
	`CREATE TABLE IF NOT EXISTS requirements (
		occupation_uri TEXT NOT NULL REFERENCES occupations (uri),
		skill_uri      TEXT NOT NULL REFERENCES skills (uri),
		relation       TEXT NOT NULL CHECK (relation IN ('essential', 'optional')),
		PRIMARY KEY (occupation_uri, skill_uri, relation)
	)`,
	`CREATE INDEX IF NOT EXISTS requirements_by_occupation
		ON requirements (occupation_uri, relation)`,
	`CREATE TABLE IF NOT EXISTS occupation_groups (
		uri   TEXT PRIMARY KEY,
		label TEXT NOT NULL,
		code  TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS occupation_group_members (
		occupation_uri TEXT NOT NULL REFERENCES occupations (uri),
		group_uri      TEXT NOT NULL REFERENCES occupation_groups (uri),
		PRIMARY KEY (occupation_uri, group_uri)
	)`,
	`CREATE TABLE IF NOT EXISTS skill_groups (
		uri   TEXT PRIMARY KEY,
		label TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS skill_group_members (
		skill_uri TEXT NOT NULL REFERENCES skills (uri),
		group_uri TEXT NOT NULL REFERENCES skill_groups (uri),
		PRIMARY KEY (skill_uri, group_uri)
	)`,
	`CREATE TABLE IF NOT EXISTS concept_schemes (
		uri   TEXT PRIMARY KEY,
		label TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS scheme_members (
		entity_uri TEXT NOT NULL,
		scheme_uri TEXT NOT NULL REFERENCES concept_schemes (uri),
		PRIMARY KEY (entity_uri, scheme_uri)
	)`,
	`CREATE TABLE IF NOT EXISTS notes (
		id             UUID PRIMARY KEY,
		occupation_uri TEXT NOT NULL REFERENCES occupations (uri),
		body           TEXT NOT NULL,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS notes_by_occupation ON notes (occupation_uri, updated_at DESC)`,
}

func Ensure(ctx context.Context, db database.DB) error {
	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
