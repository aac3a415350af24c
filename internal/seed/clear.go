package seed

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// clearStatements run most-dependent tables first so foreign keys never
// block a delete. Catalog tables (foods, restaurants, menu items) only lose
// user-created rows; bundled reference rows survive every clear.
var clearStatements = []string{
	`DELETE FROM nutrient_contributors`,
	`DELETE FROM daily_nutrient_intake`,
	`DELETE FROM food_item_nutrients`,
	`DELETE FROM nutrient_settings`,
	`DELETE FROM photo_comparisons`,
	`DELETE FROM progress_photos`,
	`DELETE FROM health_sync_log`,
	`DELETE FROM weekly_reflections`,
	`DELETE FROM planned_meals`,
	`DELETE FROM meal_plan_settings`,
	`DELETE FROM restaurant_log_entries`,
	`DELETE FROM restaurant_usage`,
	`DELETE FROM restaurant_menu_items WHERE source = 'user'`,
	`DELETE FROM restaurants WHERE source = 'user'`,
	`DELETE FROM macro_cycle_overrides`,
	`DELETE FROM macro_cycle_config`,
	`DELETE FROM fasting_sessions`,
	`DELETE FROM fasting_config`,
	`DELETE FROM favorite_foods`,
	`DELETE FROM water_entries`,
	`DELETE FROM quick_add_entries`,
	`DELETE FROM food_log_entries`,
	`DELETE FROM metabolism_entries`,
	`DELETE FROM weight_entries`,
	`DELETE FROM goals`,
	`DELETE FROM foods WHERE source = 'user'`,
	`UPDATE foods SET usage_count = 0, last_used_at = NULL`,
}

// Settings keys reset to their defaults rather than deleted wholesale.
var resetSettings = map[string]string{
	"theme":             "system",
	"water_goal_ml":     "2000",
	"week_starts_on":    "monday",
	"reminders_enabled": "false",
}

// Clear deletes all generated user data in reverse dependency order while
// preserving bundled reference data, then resets the profile and curated
// settings to defaults. A failure on one table (commonly "no such table"
// before a migration has run) is reported as a warning and the remaining
// statements still execute. Returns the collected warnings.
func Clear(db DBTX, photosDir string, obs Observer) []string {
	if obs == nil {
		obs = nopObserver{}
	}
	var warnings []string
	warn := func(msg string, err error) {
		warnings = append(warnings, fmt.Sprintf("%s: %v", msg, err))
		obs.OnWarning(msg, err)
	}

	// Physical photo files go first; a failure here must not stop the row
	// deletions below.
	if err := cleanupSeedPhotoFiles(photosDir); err != nil {
		warn("cleanup seed photo files", err)
	}

	for _, stmt := range clearStatements {
		if _, err := db.Exec(stmt); err != nil {
			warn(tableOfStatement(stmt), err)
		}
	}

	for key, value := range resetSettings {
		if _, err := db.Exec(`
INSERT INTO app_settings(key, value, updated_at) VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
`, key, value); err != nil {
			warn(fmt.Sprintf("reset setting %s", key), err)
		}
	}

	if _, err := db.Exec(`
UPDATE user_profile SET name = '', age = 0, sex = '', height_cm = 0,
  activity_level = 'moderate', unit_system = 'metric', onboarding_complete = 0,
  updated_at = CURRENT_TIMESTAMP
WHERE id = 1
`); err != nil {
		warn("reset user profile", err)
	}

	return warnings
}

// cleanupSeedPhotoFiles removes every file in the photos directory carrying
// the seed photo prefix. Missing directories and files are fine.
func cleanupSeedPhotoFiles(photosDir string) error {
	if photosDir == "" {
		return nil
	}
	entries, err := os.ReadDir(photosDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read photos directory: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), seedPhotoPrefix+"-") {
			continue
		}
		if err := os.Remove(filepath.Join(photosDir, entry.Name())); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove %s: %w", entry.Name(), err)
		}
	}
	return nil
}

// tableOfStatement extracts a short label for warning messages.
func tableOfStatement(stmt string) string {
	fields := strings.Fields(stmt)
	for i, f := range fields {
		if strings.EqualFold(f, "FROM") || strings.EqualFold(f, "UPDATE") {
			if i+1 < len(fields) {
				return "clear " + fields[i+1]
			}
		}
	}
	return "clear"
}
