package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testRun(id string, created time.Time) Run {
	return Run{
		ID:         id,
		ConfigHash: "deadbeef",
		ConfigYAML: "space:\n  min_width: 320\n",
		CSS:        ":root {\n}\n",
		CreatedAt:  created,
	}
}

func TestNewRunIDIsUUIDv7(t *testing.T) {
	id := NewRunID()
	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestWriteAndReadRun(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	created := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	run := testRun("run-1", created)
	require.NoError(t, s.WriteRun(ctx, run))

	got, err := s.ReadRun(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, run.ID, got.ID)
	assert.Equal(t, run.ConfigHash, got.ConfigHash)
	assert.Equal(t, run.ConfigYAML, got.ConfigYAML)
	assert.Equal(t, run.CSS, got.CSS)
	assert.True(t, run.CreatedAt.Equal(got.CreatedAt), "created_at survives the round trip")
}

func TestReadRunNotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.ReadRun(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrRunNotFound)
}

func TestWriteRunIdempotent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	created := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	run := testRun("run-1", created)
	require.NoError(t, s.WriteRun(ctx, run))

	// Second write with the same id is silently ignored, even with
	// different content.
	dup := run
	dup.CSS = "changed"
	require.NoError(t, s.WriteRun(ctx, dup))

	got, err := s.ReadRun(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, run.CSS, got.CSS)
}

func TestListRunsNewestFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"run-a", "run-b", "run-c"} {
		require.NoError(t, s.WriteRun(ctx, testRun(id, base.Add(time.Duration(i)*time.Minute))))
	}

	runs, err := s.ListRuns(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, "run-c", runs[0].ID)
	assert.Equal(t, "run-a", runs[2].ID)

	limited, err := s.ListRuns(ctx, 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, "run-c", limited[0].ID)
}

func TestLatestRunForHash(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	old := testRun("run-old", base)
	newer := testRun("run-new", base.Add(time.Hour))
	require.NoError(t, s.WriteRun(ctx, old))
	require.NoError(t, s.WriteRun(ctx, newer))

	got, err := s.LatestRunForHash(ctx, "deadbeef")
	require.NoError(t, err)
	assert.Equal(t, "run-new", got.ID)

	_, err = s.LatestRunForHash(ctx, "0000")
	assert.ErrorIs(t, err, ErrRunNotFound)
}
