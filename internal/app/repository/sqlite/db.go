package sqlite

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// BuildDSN returns the go-sqlite3 connection string for path. busyTimeout
// bounds how long a statement waits on a locked database.
func BuildDSN(path string, busyTimeout time.Duration) string {
	ms := busyTimeout.Milliseconds()
	if path == MemoryPath {
		return fmt.Sprintf("file::memory:?_busy_timeout=%d", ms)
	}
	return fmt.Sprintf("file:%s?mode=rwc&_busy_timeout=%d", path, ms)
}

// EnsureDir creates the directory holding the database file.
func EnsureDir(path string) error {
	if path == MemoryPath {
		return nil
	}
	dir := filepath.Dir(path)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create database directory %s: %w", dir, err)
		}
	}
	return nil
}
