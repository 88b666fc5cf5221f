package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Run is one persisted apply run.
type Run struct {
	ID                 string    `json:"id"`
	DeclarationVersion int64     `json:"declaration_version"`
	Domain             string    `json:"domain"`
	Status             string    `json:"status"` // "applied" or "failed"
	Created            int       `json:"created"`
	Updated            int       `json:"updated"`
	Deleted            int       `json:"deleted"`
	Error              string    `json:"error,omitempty"`
	StartedAt          time.Time `json:"started_at"`
	FinishedAt         time.Time `json:"finished_at"`
}

// RunStatus values.
const (
	RunApplied = "applied"
	RunFailed  = "failed"
)

// RecordRun persists a completed apply run.
func (db *DB) RecordRun(run Run) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	_, err := db.conn.Exec(`
		INSERT INTO runs (id, declaration_version, domain, status,
			created_count, updated_count, deleted_count, error,
			started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.DeclarationVersion, run.Domain, run.Status,
		run.Created, run.Updated, run.Deleted, run.Error,
		run.StartedAt.UTC(), run.FinishedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to record run %s: %w", run.ID, err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (db *DB) ListRuns(limit int) ([]Run, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	if limit <= 0 {
		limit = 50
	}

	rows, err := db.conn.Query(`
		SELECT id, declaration_version, domain, status,
			created_count, updated_count, deleted_count, error,
			started_at, finished_at
		FROM runs
		ORDER BY started_at DESC, id
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating runs: %w", err)
	}
	return runs, nil
}

// GetRun fetches one run by ID. Returns ErrRunNotFound when missing.
func (db *DB) GetRun(id string) (Run, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	row := db.conn.QueryRow(`
		SELECT id, declaration_version, domain, status,
			created_count, updated_count, deleted_count, error,
			started_at, finished_at
		FROM runs
		WHERE id = ?`, id)

	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%s: %w", id, ErrRunNotFound)
	}
	return run, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (Run, error) {
	var run Run
	err := row.Scan(
		&run.ID, &run.DeclarationVersion, &run.Domain, &run.Status,
		&run.Created, &run.Updated, &run.Deleted, &run.Error,
		&run.StartedAt, &run.FinishedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, err
	}
	if err != nil {
		return Run{}, fmt.Errorf("failed to scan run: %w", err)
	}
	return run, nil
}
