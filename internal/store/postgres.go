package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/job-skill-mapper/internal/types"
)

// DB mirrors the file store into PostgreSQL so re-runs upsert instead of
// accumulating duplicates.
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// EnsureSchema creates the jobs and skill_trees tables when they do not
// exist yet.
func (db *DB) EnsureSchema(ctx context.Context) error {
	_, err := db.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS jobs (
			id BIGINT PRIMARY KEY,
			title TEXT NOT NULL,
			location TEXT NOT NULL DEFAULT '',
			department TEXT NOT NULL DEFAULT '',
			application_url TEXT NOT NULL DEFAULT '',
			snapshot JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE TABLE IF NOT EXISTS skill_trees (
			job_id BIGINT PRIMARY KEY REFERENCES jobs(id),
			run_id UUID NOT NULL,
			document JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// UpsertJob stores a job snapshot, replacing any previous row for the same
// job id.
func (db *DB) UpsertJob(ctx context.Context, job types.Job) error {
	snapshot, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job %d: %w", job.ID, err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO jobs (id, title, location, department, application_url, snapshot, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, NOW())
		 ON CONFLICT (id) DO UPDATE SET
		   title = $2, location = $3, department = $4, application_url = $5,
		   snapshot = $6, updated_at = NOW()`,
		job.ID, job.Title, job.Location, job.Department, job.ApplicationURL, snapshot,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert job %d: %w", job.ID, err)
	}
	return nil
}

// SaveSkillTree stores a serialized tree document for a job, tagged with the
// run that produced it.
func (db *DB) SaveSkillTree(ctx context.Context, jobID int64, runID uuid.UUID, document []byte) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO skill_trees (job_id, run_id, document, created_at)
		 VALUES ($1, $2, $3, NOW())
		 ON CONFLICT (job_id) DO UPDATE SET run_id = $2, document = $3, created_at = NOW()`,
		jobID, runID, document,
	)
	if err != nil {
		return fmt.Errorf("failed to save skill tree for job %d: %w", jobID, err)
	}
	return nil
}

// SkillTree retrieves the stored document for a job, or nil when none
// exists.
func (db *DB) SkillTree(ctx context.Context, jobID int64) ([]byte, error) {
	var document []byte
	err := db.pool.QueryRow(ctx,
		`SELECT document FROM skill_trees WHERE job_id = $1`, jobID,
	).Scan(&document)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load skill tree for job %d: %w", jobID, err)
	}
	return document, nil
}
