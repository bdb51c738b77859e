package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrRunNotFound is returned by ReadRun when no run has the given id.
var ErrRunNotFound = errors.New("run not found")

// ReadRun fetches a single run by id.
func (s *Store) ReadRun(ctx context.Context, id string) (Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, config_hash, config_yaml, css, created_at
		FROM runs WHERE id = ?
	`, id)

	run, err := scanRun(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	if err != nil {
		return Run{}, fmt.Errorf("read run: %w", err)
	}
	return run, nil
}

// ListRuns returns up to limit runs, newest first. A limit of 0 or
// less returns everything.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	query := `
		SELECT id, config_hash, config_yaml, css, created_at
		FROM runs ORDER BY created_at DESC, id DESC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("list runs: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}

// LatestRunForHash returns the most recent run recorded for a given
// definition hash, or ErrRunNotFound.
func (s *Store) LatestRunForHash(ctx context.Context, configHash string) (Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, config_hash, config_yaml, css, created_at
		FROM runs WHERE config_hash = ?
		ORDER BY created_at DESC, id DESC LIMIT 1
	`, configHash)

	run, err := scanRun(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: hash %s", ErrRunNotFound, configHash)
	}
	if err != nil {
		return Run{}, fmt.Errorf("read run: %w", err)
	}
	return run, nil
}

func scanRun(scan func(...any) error) (Run, error) {
	var run Run
	var createdAt string
	if err := scan(&run.ID, &run.ConfigHash, &run.ConfigYAML, &run.CSS, &createdAt); err != nil {
		return Run{}, err
	}
	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return Run{}, fmt.Errorf("parsing created_at: %w", err)
	}
	run.CreatedAt = ts
	return run, nil
}
