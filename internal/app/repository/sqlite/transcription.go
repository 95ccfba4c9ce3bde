package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"audio-review/internal/app/repository"

	_ "github.com/mattn/go-sqlite3"
)

const defaultBusyTimeout = 5 * time.Second

type SQLiteDB struct {
	*repository.CommonDB
}

// NewSQLiteDB opens (creating if needed) the database file at dbFilePath.
// SQLite serialises writers, so the pool is limited to one connection; this
// also keeps a ":memory:" database alive for the lifetime of the store.
func NewSQLiteDB(dbFilePath string, opts ...repository.Option) (*SQLiteDB, error) {
	if err := EnsureDir(dbFilePath); err != nil {
		return nil, err
	}

	db, err := sql.Open(repository.DriverSQLite, BuildDSN(dbFilePath, defaultBusyTimeout))
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dbFilePath, err)
	}
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)

	common, err := repository.NewCommonDB(db, repository.DriverSQLite, opts...)
	if err != nil {
		db.Close()
		return nil, err
	}
	return &SQLiteDB{CommonDB: common}, nil
}
