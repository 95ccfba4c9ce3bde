package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

// Driver names accepted by NewCommonDB.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

// Dialect captures the SQL differences between the supported databases.
type Dialect struct {
	Name         string
	Placeholders PlaceholderFunc

	// CreateTable creates the table with the complete schema.
	CreateTable string
	// Upgrades bring a table created by an older schema up to date.
	Upgrades []string
	// Reset removes all rows and restarts id assignment.
	Reset []string

	// benign reports DDL errors that mean another caller already applied the change.
	benign func(error) bool
}

// PlaceholderFunc generates parameter placeholders for different SQL dialects
type PlaceholderFunc func(n int) string

const postgresCreateTable = `CREATE TABLE IF NOT EXISTS transcriptions (
	id SERIAL PRIMARY KEY,
	filename TEXT NOT NULL,
	transcription TEXT NOT NULL,
	author TEXT DEFAULT 'whisper-large-v3',
	rating SMALLINT DEFAULT 0 CHECK (rating BETWEEN 0 AND 5),
	timestamp TIMESTAMPTZ DEFAULT NOW(),
	UNIQUE (filename, transcription)
)`

const sqliteCreateTable = `CREATE TABLE IF NOT EXISTS transcriptions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	filename TEXT NOT NULL,
	transcription TEXT NOT NULL,
	author TEXT DEFAULT 'whisper-large-v3',
	rating SMALLINT DEFAULT 0 CHECK (rating BETWEEN 0 AND 5),
	timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
	UNIQUE (filename, transcription)
)`

// dedupe keeps the earliest of identical (filename, transcription) rows, which
// a table created without the unique constraint may hold.
const dedupe = `DELETE FROM transcriptions WHERE id NOT IN (SELECT MIN(id) FROM transcriptions GROUP BY filename, transcription)`

const uniqueIndex = `CREATE UNIQUE INDEX IF NOT EXISTS transcriptions_filename_transcription_key ON transcriptions (filename, transcription)`

// PostgresDialect returns the dialect for github.com/lib/pq.
func PostgresDialect() Dialect {
	return Dialect{
		Name:         DriverPostgres,
		Placeholders: func(n int) string { return fmt.Sprintf("$%d", n) },
		CreateTable:  postgresCreateTable,
		Upgrades: []string{
			`ALTER TABLE transcriptions ADD COLUMN IF NOT EXISTS author TEXT DEFAULT 'whisper-large-v3'`,
			`ALTER TABLE transcriptions ADD COLUMN IF NOT EXISTS rating SMALLINT DEFAULT 0 CHECK (rating BETWEEN 0 AND 5)`,
			dedupe,
			uniqueIndex,
		},
		Reset:  []string{`TRUNCATE TABLE transcriptions RESTART IDENTITY`},
		benign: postgresBenign,
	}
}

// SQLiteDialect returns the dialect for github.com/mattn/go-sqlite3.
func SQLiteDialect() Dialect {
	return Dialect{
		Name:         DriverSQLite,
		Placeholders: func(n int) string { return "?" },
		CreateTable:  sqliteCreateTable,
		Upgrades: []string{
			`ALTER TABLE transcriptions ADD COLUMN author TEXT DEFAULT 'whisper-large-v3'`,
			`ALTER TABLE transcriptions ADD COLUMN rating SMALLINT DEFAULT 0 CHECK (rating BETWEEN 0 AND 5)`,
			dedupe,
			uniqueIndex,
		},
		Reset: []string{
			`DELETE FROM transcriptions`,
			`DELETE FROM sqlite_sequence WHERE name = 'transcriptions'`,
		},
		benign: sqliteBenign,
	}
}

// DialectFor returns the dialect registered for a driver name.
func DialectFor(driverName string) (Dialect, error) {
	switch driverName {
	case DriverPostgres:
		return PostgresDialect(), nil
	case DriverSQLite:
		return SQLiteDialect(), nil
	default:
		return Dialect{}, fmt.Errorf("unsupported database driver %q", driverName)
	}
}

// Concurrent CREATE TABLE IF NOT EXISTS calls can still race on the catalog
// in postgres; the loser sees one of these codes.
var postgresBenignCodes = map[pq.ErrorCode]bool{
	"42P07": true, // duplicate_table
	"42701": true, // duplicate_column
	"42710": true, // duplicate_object
	"23505": true, // unique_violation on pg_type
}

func postgresBenign(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return postgresBenignCodes[pqErr.Code]
	}
	return false
}

func sqliteBenign(err error) bool {
	return err != nil && strings.Contains(err.Error(), "duplicate column name")
}
