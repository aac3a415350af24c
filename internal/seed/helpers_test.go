package seed

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/nutrilog/devseed/internal/db"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nutrilog.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { sqldb.Close() })
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return sqldb
}

func testOptions() Options {
	opts := DefaultOptions()
	opts.MonthsOfHistory = 1
	opts.Seed = 42
	opts.SkipPhotos = true
	return opts
}

func countRows(t *testing.T, sqldb *sql.DB, table string) int {
	t.Helper()
	var n int
	if err := sqldb.QueryRow(`SELECT COUNT(*) FROM ` + table).Scan(&n); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}
