package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "audio-review/internal/app/errors"
	"audio-review/internal/app/model"
)

var fixedNow = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

func newMockCommonDB(t *testing.T, driver string) (*CommonDB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	c, err := NewCommonDB(db, driver, WithClock(func() time.Time { return fixedNow }))
	require.NoError(t, err)
	return c, mock
}

func strPtr(s string) *string { return &s }

// TestCommonDB_Interface verifies CommonDB implements the store interfaces
func TestCommonDB_Interface(t *testing.T) {
	var _ TranscriptionDAO = (*CommonDB)(nil)
	var _ MaintenanceDAO = (*CommonDB)(nil)
}

func TestNewCommonDB_UnknownDriver(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	_, err = NewCommonDB(db, "mysql")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestCommonDB_Placeholders(t *testing.T) {
	assert.Equal(t, "$3", PostgresDialect().Placeholders(3))
	assert.Equal(t, "?", SQLiteDialect().Placeholders(3))
}

func TestCommonDB_Initialize(t *testing.T) {
	tests := []struct {
		name        string
		mockSetup   func(mock sqlmock.Sqlmock)
		expectError bool
	}{
		{
			name: "fresh_database",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS transcriptions")).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectExec(regexp.QuoteMeta("ADD COLUMN IF NOT EXISTS author")).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectExec(regexp.QuoteMeta("ADD COLUMN IF NOT EXISTS rating")).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectExec(regexp.QuoteMeta("DELETE FROM transcriptions WHERE id NOT IN")).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectExec(regexp.QuoteMeta("CREATE UNIQUE INDEX IF NOT EXISTS")).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
		},
		{
			name: "lost_race_with_concurrent_initialize",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS transcriptions")).
					WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint \"pg_type_typname_nsp_index\""})
				mock.ExpectExec(regexp.QuoteMeta("ADD COLUMN IF NOT EXISTS author")).
					WillReturnError(&pq.Error{Code: "42701"})
				mock.ExpectExec(regexp.QuoteMeta("ADD COLUMN IF NOT EXISTS rating")).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectExec(regexp.QuoteMeta("DELETE FROM transcriptions WHERE id NOT IN")).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectExec(regexp.QuoteMeta("CREATE UNIQUE INDEX IF NOT EXISTS")).
					WillReturnError(&pq.Error{Code: "42P07"})
			},
		},
		{
			name: "connection_error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS transcriptions")).
					WillReturnError(errors.New("connection refused"))
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, mock := newMockCommonDB(t, DriverPostgres)
			tt.mockSetup(mock)

			err := c.Initialize(context.Background())
			if tt.expectError {
				require.Error(t, err)
				assert.True(t, apperrors.IsStorageUnavailable(err))
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCommonDB_Insert(t *testing.T) {
	insertSQL := regexp.QuoteMeta(`INSERT INTO transcriptions (filename, transcription, author, timestamp)`)
	explicit := time.Date(2024, 12, 1, 8, 0, 0, 0, time.FixedZone("EST", -5*3600))

	tests := []struct {
		name          string
		record        model.NewTranscription
		mockSetup     func(mock sqlmock.Sqlmock)
		expectInsert  bool
		expectErrKind error
	}{
		{
			name:   "new_record_with_defaults",
			record: model.NewTranscription{Filename: "a.wav", Transcription: strPtr("hello")},
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(insertSQL).
					WithArgs("a.wav", "hello", model.DefaultAuthor, fixedNow).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
			expectInsert: true,
		},
		{
			name: "explicit_author_and_timestamp_stored_in_utc",
			record: model.NewTranscription{
				Filename:      "b.mp3",
				Transcription: strPtr("bonjou"),
				Author:        "reviewer",
				Timestamp:     explicit,
			},
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(insertSQL).
					WithArgs("b.mp3", "bonjou", "reviewer", explicit.UTC()).
					WillReturnResult(sqlmock.NewResult(2, 1))
			},
			expectInsert: true,
		},
		{
			name:   "empty_transcription_is_accepted",
			record: model.NewTranscription{Filename: "a.wav", Transcription: strPtr("")},
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(insertSQL).
					WithArgs("a.wav", "", model.DefaultAuthor, fixedNow).
					WillReturnResult(sqlmock.NewResult(3, 1))
			},
			expectInsert: true,
		},
		{
			name:   "duplicate_is_ignored",
			record: model.NewTranscription{Filename: "a.wav", Transcription: strPtr("hello")},
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(insertSQL).
					WithArgs("a.wav", "hello", model.DefaultAuthor, fixedNow).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			expectInsert: false,
		},
		{
			name:          "missing_filename",
			record:        model.NewTranscription{Filename: "  ", Transcription: strPtr("hello")},
			mockSetup:     func(mock sqlmock.Sqlmock) {},
			expectErrKind: apperrors.ErrInvalidInput,
		},
		{
			name:          "missing_transcription",
			record:        model.NewTranscription{Filename: "a.wav"},
			mockSetup:     func(mock sqlmock.Sqlmock) {},
			expectErrKind: apperrors.ErrInvalidInput,
		},
		{
			name:   "database_error",
			record: model.NewTranscription{Filename: "a.wav", Transcription: strPtr("hello")},
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(insertSQL).WillReturnError(errors.New("database connection error"))
			},
			expectErrKind: apperrors.ErrStorageUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, mock := newMockCommonDB(t, DriverPostgres)
			tt.mockSetup(mock)

			inserted, err := c.Insert(context.Background(), tt.record)
			if tt.expectErrKind != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectErrKind)
				assert.False(t, inserted)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectInsert, inserted)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCommonDB_Insert_SQLitePlaceholders(t *testing.T) {
	c, mock := newMockCommonDB(t, DriverSQLite)

	mock.ExpectExec(regexp.QuoteMeta(`VALUES (?, ?, ?, ?)`)).
		WithArgs("a.wav", "hello", model.DefaultAuthor, fixedNow).
		WillReturnResult(sqlmock.NewResult(1, 1))

	inserted, err := c.Insert(context.Background(), model.NewTranscription{Filename: "a.wav", Transcription: strPtr("hello")})
	require.NoError(t, err)
	assert.True(t, inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommonDB_SetRating(t *testing.T) {
	updateSQL := regexp.QuoteMeta(`UPDATE transcriptions SET rating = $1, timestamp = $2 WHERE id = $3`)

	tests := []struct {
		name          string
		id            int
		rating        int
		mockSetup     func(mock sqlmock.Sqlmock)
		expectErrKind error
	}{
		{
			name:   "updates_rating_and_timestamp",
			id:     7,
			rating: 4,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(updateSQL).
					WithArgs(4, fixedNow, 7).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name:   "zero_is_a_valid_rating",
			id:     7,
			rating: 0,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(updateSQL).
					WithArgs(0, fixedNow, 7).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name:   "unknown_id",
			id:     999,
			rating: 3,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(updateSQL).
					WithArgs(3, fixedNow, 999).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			expectErrKind: apperrors.ErrNotFound,
		},
		{
			name:          "rating_above_range",
			id:            7,
			rating:        6,
			mockSetup:     func(mock sqlmock.Sqlmock) {},
			expectErrKind: apperrors.ErrInvalidInput,
		},
		{
			name:          "negative_rating",
			id:            7,
			rating:        -1,
			mockSetup:     func(mock sqlmock.Sqlmock) {},
			expectErrKind: apperrors.ErrInvalidInput,
		},
		{
			name:          "placeholder_id",
			id:            -2,
			rating:        3,
			mockSetup:     func(mock sqlmock.Sqlmock) {},
			expectErrKind: apperrors.ErrInvalidInput,
		},
		{
			name:   "database_error",
			id:     7,
			rating: 3,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(updateSQL).WillReturnError(errors.New("timeout"))
			},
			expectErrKind: apperrors.ErrStorageUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, mock := newMockCommonDB(t, DriverPostgres)
			tt.mockSetup(mock)

			err := c.SetRating(context.Background(), tt.id, tt.rating)
			if tt.expectErrKind != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectErrKind)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCommonDB_ListAll(t *testing.T) {
	c, mock := newMockCommonDB(t, DriverPostgres)

	t1 := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	rows := sqlmock.NewRows([]string{"id", "filename", "transcription", "author", "rating", "timestamp"}).
		AddRow(3, "a.wav", "old", "", 0, nil).
		AddRow(1, "a.wav", "hello", "whisper-large-v3", 0, t1).
		AddRow(2, "a.wav", "hello world", "reviewer", 4, t2)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY filename ASC")).WillReturnRows(rows)

	records, err := c.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.True(t, records[0].Timestamp.IsZero())
	assert.Equal(t, "hello", records[1].Transcription)
	assert.Equal(t, t1, records[1].Timestamp)
	assert.Equal(t, 2, records[2].ID)
	assert.Equal(t, "reviewer", records[2].Author)
	assert.Equal(t, 4, records[2].Rating)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommonDB_ListAll_Empty(t *testing.T) {
	c, mock := newMockCommonDB(t, DriverPostgres)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, filename")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "filename", "transcription", "author", "rating", "timestamp"}))

	records, err := c.ListAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestCommonDB_ListAll_QueryError(t *testing.T) {
	c, mock := newMockCommonDB(t, DriverPostgres)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, filename")).WillReturnError(errors.New("connection reset by peer"))

	_, err := c.ListAll(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsStorageUnavailable(err))
	assert.Contains(t, err.Error(), "connection reset by peer")
}

func TestCommonDB_Maintenance(t *testing.T) {
	t.Run("postgres_reset_truncates", func(t *testing.T) {
		c, mock := newMockCommonDB(t, DriverPostgres)
		mock.ExpectExec(regexp.QuoteMeta("TRUNCATE TABLE transcriptions RESTART IDENTITY")).
			WillReturnResult(sqlmock.NewResult(0, 0))

		require.NoError(t, c.Reset(context.Background()))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("sqlite_reset_clears_sequence", func(t *testing.T) {
		c, mock := newMockCommonDB(t, DriverSQLite)
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM transcriptions")).
			WillReturnResult(sqlmock.NewResult(0, 4))
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM sqlite_sequence")).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, c.Reset(context.Background()))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("delete_null_timestamps_reports_count", func(t *testing.T) {
		c, mock := newMockCommonDB(t, DriverPostgres)
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM transcriptions WHERE timestamp IS NULL")).
			WillReturnResult(sqlmock.NewResult(0, 3))

		n, err := c.DeleteNullTimestamps(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCommonDB_Close(t *testing.T) {
	c, mock := newMockCommonDB(t, DriverPostgres)
	mock.ExpectClose()

	assert.NoError(t, c.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}
