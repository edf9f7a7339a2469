package db

import (
	"context"
	"fmt"
)

// schemaStatements create the tables used by the repositories. Each is
// idempotent so EnsureSchema can run on every start.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS crops (
		id              TEXT PRIMARY KEY,
		name            TEXT NOT NULL,
		variety         TEXT NOT NULL,
		planting_date   DATE NOT NULL,
		area_acres      DOUBLE PRECISION NOT NULL CHECK (area_acres > 0),
		location        TEXT NOT NULL,
		growth_stage    TEXT NOT NULL,
		health          TEXT NOT NULL,
		progress        INTEGER NOT NULL DEFAULT 0,
		issues          TEXT[] NOT NULL DEFAULT '{}',
		last_inspection DATE NOT NULL,
		next_inspection DATE,
		created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS crops_created_at_idx ON crops (created_at, id)`,
	`CREATE TABLE IF NOT EXISTS fields (
		name           TEXT PRIMARY KEY,
		soil_type      TEXT NOT NULL,
		ph             DOUBLE PRECISION NOT NULL DEFAULT 0,
		nitrogen       DOUBLE PRECISION NOT NULL DEFAULT 0,
		phosphorus     DOUBLE PRECISION NOT NULL DEFAULT 0,
		potassium      DOUBLE PRECISION NOT NULL DEFAULT 0,
		organic_matter DOUBLE PRECISION NOT NULL DEFAULT 0,
		moisture       DOUBLE PRECISION NOT NULL DEFAULT 0,
		last_tested    DATE NOT NULL,
		status         TEXT NOT NULL,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// EnsureSchema creates missing tables and indexes.
func EnsureSchema(ctx context.Context, db DBTX) error {
	for i, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("applying schema statement %d: %w", i+1, err)
		}
	}
	return nil
}
