package db

import (
	"database/sql"
	"path/filepath"
	"testing"
)

func newMigratedDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nutrilog.db")
	sqldb, err := Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { sqldb.Close() })
	if err := ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return sqldb
}

func TestApplyMigrationsRecordsAllVersions(t *testing.T) {
	t.Parallel()
	sqldb := newMigratedDB(t)

	var applied int
	if err := sqldb.QueryRow(`SELECT COUNT(*) FROM schema_migrations`).Scan(&applied); err != nil {
		t.Fatalf("count applied migrations: %v", err)
	}
	if applied != len(migrations) {
		t.Fatalf("expected %d applied migrations, got %d", len(migrations), applied)
	}
}

func TestApplyMigrationsIdempotent(t *testing.T) {
	t.Parallel()
	sqldb := newMigratedDB(t)

	if err := ApplyMigrations(sqldb); err != nil {
		t.Fatalf("second apply: %v", err)
	}

	var applied int
	if err := sqldb.QueryRow(`SELECT COUNT(*) FROM schema_migrations`).Scan(&applied); err != nil {
		t.Fatalf("count applied migrations: %v", err)
	}
	if applied != len(migrations) {
		t.Fatalf("expected %d applied migrations after replay, got %d", len(migrations), applied)
	}
}

func TestBundledCatalogSeeded(t *testing.T) {
	t.Parallel()
	sqldb := newMigratedDB(t)

	var foods int
	if err := sqldb.QueryRow(`SELECT COUNT(*) FROM foods WHERE source = 'bundled'`).Scan(&foods); err != nil {
		t.Fatalf("count bundled foods: %v", err)
	}
	if foods != len(bundledFoods) {
		t.Fatalf("expected %d bundled foods, got %d", len(bundledFoods), foods)
	}

	var restaurants int
	if err := sqldb.QueryRow(`SELECT COUNT(*) FROM restaurants WHERE source = 'bundled'`).Scan(&restaurants); err != nil {
		t.Fatalf("count bundled restaurants: %v", err)
	}
	if restaurants != len(bundledRestaurants) {
		t.Fatalf("expected %d bundled restaurants, got %d", len(bundledRestaurants), restaurants)
	}

	wantItems := 0
	for _, r := range bundledRestaurants {
		wantItems += len(r.items)
	}
	var items int
	if err := sqldb.QueryRow(`SELECT COUNT(*) FROM restaurant_menu_items WHERE source = 'bundled'`).Scan(&items); err != nil {
		t.Fatalf("count bundled menu items: %v", err)
	}
	if items != wantItems {
		t.Fatalf("expected %d bundled menu items, got %d", wantItems, items)
	}
}

func TestBundledCatalogSurvivesReapply(t *testing.T) {
	t.Parallel()
	sqldb := newMigratedDB(t)

	// Bump a usage count, then re-apply; INSERT OR IGNORE must not undo it.
	if _, err := sqldb.Exec(`UPDATE foods SET usage_count = 5 WHERE id = 'food-oatmeal'`); err != nil {
		t.Fatalf("bump usage: %v", err)
	}
	if err := ApplyMigrations(sqldb); err != nil {
		t.Fatalf("re-apply: %v", err)
	}

	var usage int
	if err := sqldb.QueryRow(`SELECT usage_count FROM foods WHERE id = 'food-oatmeal'`).Scan(&usage); err != nil {
		t.Fatalf("read usage: %v", err)
	}
	if usage != 5 {
		t.Fatalf("re-apply reset bundled food row, usage=%d", usage)
	}
}

func TestUserProfileSingletonConstraint(t *testing.T) {
	t.Parallel()
	sqldb := newMigratedDB(t)

	if _, err := sqldb.Exec(`INSERT INTO user_profile(id, name) VALUES(1, 'Alex')`); err != nil {
		t.Fatalf("insert profile: %v", err)
	}
	if _, err := sqldb.Exec(`INSERT INTO user_profile(id, name) VALUES(2, 'Sam')`); err == nil {
		t.Fatalf("expected check constraint to reject id != 1")
	}
}
