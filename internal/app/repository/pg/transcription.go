package pg

import (
	"database/sql"
	"fmt"
	"time"

	"audio-review/internal/app/repository"

	_ "github.com/lib/pq"
)

// PoolConfig bounds the connection pool.
type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type PostgresDB struct {
	*repository.CommonDB
}

func NewPostgresDB(connectionString string, pool PoolConfig, opts ...repository.Option) (*PostgresDB, error) {
	db, err := sql.Open(repository.DriverPostgres, connectionString)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return newPostgresDB(db, pool, opts...)
}

func newPostgresDB(db *sql.DB, pool PoolConfig, opts ...repository.Option) (*PostgresDB, error) {
	if pool.MaxOpenConns > 0 {
		db.SetMaxOpenConns(pool.MaxOpenConns)
	}
	if pool.MaxIdleConns > 0 {
		db.SetMaxIdleConns(pool.MaxIdleConns)
	}
	if pool.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(pool.ConnMaxLifetime)
	}

	common, err := repository.NewCommonDB(db, repository.DriverPostgres, opts...)
	if err != nil {
		db.Close()
		return nil, err
	}
	return &PostgresDB{CommonDB: common}, nil
}
