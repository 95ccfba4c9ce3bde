package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"audio-review/internal/app/model"
	"audio-review/internal/app/repository"
	"audio-review/internal/app/repository/pg"
	"audio-review/internal/app/repository/sqlite"
)

// SetupTestStore returns an initialized, empty store. It uses postgres when
// POSTGRES_TEST_URL is set and an in-memory SQLite database otherwise.
func SetupTestStore(t *testing.T, opts ...repository.Option) repository.MaintenanceDAO {
	t.Helper()
	ctx := context.Background()

	var store repository.MaintenanceDAO
	if pgURL := os.Getenv("POSTGRES_TEST_URL"); pgURL != "" {
		db, err := pg.NewPostgresDB(pgURL, pg.PoolConfig{MaxOpenConns: 4}, opts...)
		require.NoError(t, err, "connect to PostgreSQL test database")
		store = db
	} else {
		db, err := sqlite.NewSQLiteDB(sqlite.MemoryPath, opts...)
		require.NoError(t, err, "open SQLite test database")
		store = db
	}
	t.Cleanup(func() { store.Close() })

	require.NoError(t, store.Initialize(ctx))
	require.NoError(t, store.Reset(ctx))
	return store
}

// SeedTranscriptions inserts records in order and fails the test on error.
func SeedTranscriptions(t *testing.T, store repository.TranscriptionDAO, records ...model.NewTranscription) {
	t.Helper()
	for _, rec := range records {
		_, err := store.Insert(context.Background(), rec)
		require.NoError(t, err, "seed %s", rec.Filename)
	}
}

// Text returns a pointer to s, for model.NewTranscription literals.
func Text(s string) *string { return &s }

// BaseTime is the timestamp fixtures are built around.
var BaseTime = time.Date(2025, 4, 2, 15, 0, 0, 0, time.UTC)
