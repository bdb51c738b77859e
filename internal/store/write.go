package store

import (
	"context"
	"fmt"
	"time"
)

// WriteRun inserts a run record. Uses ON CONFLICT(id) DO NOTHING for
// idempotency, so replaying a recording is harmless; other constraint
// violations still return errors. Timestamps are stored in RFC 3339
// UTC.
func (s *Store) WriteRun(ctx context.Context, run Run) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, config_hash, config_yaml, css, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		run.ID,
		run.ConfigHash,
		run.ConfigYAML,
		run.CSS,
		run.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("write run: %w", err)
	}
	return nil
}
