package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	apperrors "audio-review/internal/app/errors"
	"audio-review/internal/app/metrics"
	"audio-review/internal/app/model"
)

// DefaultQueryTimeout bounds every statement when no timeout is configured.
const DefaultQueryTimeout = 5 * time.Second

// CommonDB provides shared database functionality
type CommonDB struct {
	db           *sql.DB
	dialect      Dialect
	queryTimeout time.Duration
	metrics      *metrics.Metrics
	now          func() time.Time
}

// Option configures a CommonDB.
type Option func(*CommonDB)

// WithQueryTimeout bounds each statement by d.
func WithQueryTimeout(d time.Duration) Option {
	return func(c *CommonDB) {
		if d > 0 {
			c.queryTimeout = d
		}
	}
}

// WithMetrics records statement counts and latency.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *CommonDB) { c.metrics = m }
}

// WithClock replaces time.Now, used for default and refreshed timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *CommonDB) { c.now = now }
}

// NewCommonDB creates a new CommonDB instance
func NewCommonDB(db *sql.DB, driverName string, opts ...Option) (*CommonDB, error) {
	dialect, err := DialectFor(driverName)
	if err != nil {
		return nil, err
	}

	c := &CommonDB{
		db:           db,
		dialect:      dialect,
		queryTimeout: DefaultQueryTimeout,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *CommonDB) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.queryTimeout)
}

func (c *CommonDB) observe(op string, start time.Time, err error) {
	c.metrics.ObserveStore(op, err, time.Since(start))
}

// Initialize creates the table and applies schema upgrades.
func (c *CommonDB) Initialize(ctx context.Context) (err error) {
	defer func(start time.Time) { c.observe("initialize", start, err) }(time.Now())

	statements := append([]string{c.dialect.CreateTable}, c.dialect.Upgrades...)
	for _, stmt := range statements {
		qctx, cancel := c.withTimeout(ctx)
		_, execErr := c.db.ExecContext(qctx, stmt)
		cancel()
		if execErr != nil && !c.dialect.benign(execErr) {
			return apperrors.Unavailable(execErr, "initialize schema")
		}
	}
	return nil
}

// Insert appends a history entry, ignoring an identical (filename, transcription) pair.
func (c *CommonDB) Insert(ctx context.Context, rec model.NewTranscription) (inserted bool, err error) {
	if strings.TrimSpace(rec.Filename) == "" {
		return false, apperrors.RequiredField("filename")
	}
	if rec.Transcription == nil {
		return false, apperrors.RequiredField("transcription")
	}

	author := rec.Author
	if author == "" {
		author = model.DefaultAuthor
	}
	ts := rec.Timestamp
	if ts.IsZero() {
		ts = c.now()
	}

	defer func(start time.Time) { c.observe("insert", start, err) }(time.Now())

	p := c.dialect.Placeholders
	query := fmt.Sprintf(
		`INSERT INTO transcriptions (filename, transcription, author, timestamp)
		 VALUES (%s, %s, %s, %s)
		 ON CONFLICT (filename, transcription) DO NOTHING`,
		p(1), p(2), p(3), p(4),
	)

	qctx, cancel := c.withTimeout(ctx)
	defer cancel()

	res, err := c.db.ExecContext(qctx, query, rec.Filename, *rec.Transcription, author, ts.UTC())
	if err != nil {
		return false, apperrors.Unavailable(err, "insert transcription")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, apperrors.Unavailable(err, "insert transcription")
	}
	return n > 0, nil
}

// SetRating updates the rating of a record and refreshes its timestamp.
func (c *CommonDB) SetRating(ctx context.Context, id int, rating int) (err error) {
	if id <= 0 {
		return apperrors.InvalidField("id", "must be a positive integer")
	}
	if !model.ValidRating(rating) {
		return apperrors.OutOfRange("rating", model.MinRating, model.MaxRating)
	}

	defer func(start time.Time) { c.observe("set_rating", start, err) }(time.Now())

	p := c.dialect.Placeholders
	query := fmt.Sprintf(
		`UPDATE transcriptions SET rating = %s, timestamp = %s WHERE id = %s`,
		p(1), p(2), p(3),
	)

	qctx, cancel := c.withTimeout(ctx)
	defer cancel()

	res, err := c.db.ExecContext(qctx, query, rating, c.now().UTC(), id)
	if err != nil {
		return apperrors.Unavailable(err, "update rating")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return apperrors.Unavailable(err, "update rating")
	}
	if n == 0 {
		return apperrors.NotFound("transcription", id)
	}
	return nil
}

// ListAll returns every record ordered by filename, then timestamp. Rows
// without a timestamp sort first in their group on every backend.
func (c *CommonDB) ListAll(ctx context.Context) (records []model.Transcription, err error) {
	defer func(start time.Time) { c.observe("list_all", start, err) }(time.Now())

	query := `SELECT id, filename, transcription, COALESCE(author, ''), COALESCE(rating, 0), timestamp
		 FROM transcriptions
		 ORDER BY filename ASC, CASE WHEN timestamp IS NULL THEN 0 ELSE 1 END ASC, timestamp ASC, id ASC`

	qctx, cancel := c.withTimeout(ctx)
	defer cancel()

	rows, err := c.db.QueryContext(qctx, query)
	if err != nil {
		return nil, apperrors.Unavailable(err, "list transcriptions")
	}
	defer rows.Close()

	records = make([]model.Transcription, 0)
	for rows.Next() {
		var t model.Transcription
		var ts sql.NullTime
		if err := rows.Scan(&t.ID, &t.Filename, &t.Transcription, &t.Author, &t.Rating, &ts); err != nil {
			return nil, apperrors.Unavailable(err, "scan transcription")
		}
		if ts.Valid {
			t.Timestamp = ts.Time
		}
		records = append(records, t)
	}

	if err = rows.Err(); err != nil {
		return nil, apperrors.Unavailable(err, "list transcriptions")
	}

	return records, nil
}

// Reset deletes every record and restarts id assignment.
func (c *CommonDB) Reset(ctx context.Context) (err error) {
	defer func(start time.Time) { c.observe("reset", start, err) }(time.Now())

	for _, stmt := range c.dialect.Reset {
		qctx, cancel := c.withTimeout(ctx)
		_, err = c.db.ExecContext(qctx, stmt)
		cancel()
		if err != nil {
			return apperrors.Unavailable(err, "reset transcriptions")
		}
	}
	return nil
}

// DeleteNullTimestamps removes records that have no timestamp.
func (c *CommonDB) DeleteNullTimestamps(ctx context.Context) (n int64, err error) {
	defer func(start time.Time) { c.observe("delete_null_timestamps", start, err) }(time.Now())

	qctx, cancel := c.withTimeout(ctx)
	defer cancel()

	res, err := c.db.ExecContext(qctx, `DELETE FROM transcriptions WHERE timestamp IS NULL`)
	if err != nil {
		return 0, apperrors.Unavailable(err, "delete null timestamps")
	}
	n, err = res.RowsAffected()
	if err != nil {
		return 0, apperrors.Unavailable(err, "delete null timestamps")
	}
	return n, nil
}

// Ping checks that the database is reachable.
func (c *CommonDB) Ping(ctx context.Context) error {
	qctx, cancel := c.withTimeout(ctx)
	defer cancel()
	if err := c.db.PingContext(qctx); err != nil {
		return apperrors.Unavailable(err, "ping database")
	}
	return nil
}

// Close closes the database connection
func (c *CommonDB) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// DB returns the underlying database connection
func (c *CommonDB) DB() *sql.DB {
	return c.db
}

// Dialect returns the SQL dialect in use.
func (c *CommonDB) Dialect() Dialect {
	return c.dialect
}
