package seed

import (
	"database/sql"
	"strings"
	"testing"
)

func TestRunEndToEnd(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	result := Run(sqldb, testOptions(), nil)
	if !result.Success {
		t.Fatalf("expected success, got errors: %v", result.Errors)
	}
	if result.Counts["User Profile"] != 1 {
		t.Fatalf("expected 1 profile row, got %d", result.Counts["User Profile"])
	}
	if result.Counts["Goals"] != 2 {
		t.Fatalf("expected 2 goals, got %d", result.Counts["Goals"])
	}
	if result.Counts["Weight Entries"] <= 0 {
		t.Fatalf("expected weight entries, got %d", result.Counts["Weight Entries"])
	}
	if result.RunID == "" {
		t.Fatalf("expected a run id")
	}

	// Exactly one goal may be active.
	var active int
	if err := sqldb.QueryRow(`SELECT COUNT(*) FROM goals WHERE is_active = 1`).Scan(&active); err != nil {
		t.Fatalf("count active goals: %v", err)
	}
	if active != 1 {
		t.Fatalf("expected exactly 1 active goal, got %d", active)
	}
}

func TestRunContinuesPastFailingStep(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	// Sabotage one mid-pipeline step; everything else must still run.
	if _, err := sqldb.Exec(`DROP TABLE water_entries`); err != nil {
		t.Fatalf("drop water_entries: %v", err)
	}

	result := Run(sqldb, testOptions(), nil)
	if result.Success {
		t.Fatalf("expected failure")
	}
	if len(result.Errors) == 0 {
		t.Fatalf("expected at least one error")
	}
	foundWater := false
	for _, e := range result.Errors {
		if strings.HasPrefix(e, "Water Entries:") {
			foundWater = true
		}
	}
	if !foundWater {
		t.Fatalf("expected a Water Entries error, got %v", result.Errors)
	}
	if result.Counts["User Profile"] != 1 {
		t.Fatalf("steps before the failure should have counts: %v", result.Counts)
	}
	if result.Counts["Health Sync Log"] != 11 {
		t.Fatalf("steps after the failure should have counts: %v", result.Counts)
	}
	if _, ok := result.Counts["Water Entries"]; ok {
		t.Fatalf("failed step must not report a count")
	}
}

func TestRunReproducibleWithSeed(t *testing.T) {
	t.Parallel()
	a := newTestDB(t)
	b := newTestDB(t)

	resA := Run(a, testOptions(), nil)
	resB := Run(b, testOptions(), nil)
	if !resA.Success || !resB.Success {
		t.Fatalf("expected both runs to succeed: %v %v", resA.Errors, resB.Errors)
	}

	for step, n := range resA.Counts {
		if resB.Counts[step] != n {
			t.Fatalf("step %s diverged: %d vs %d", step, n, resB.Counts[step])
		}
	}

	sumWeights := func(sqldb *sql.DB) float64 {
		var sum float64
		if err := sqldb.QueryRow(`SELECT SUM(weight_kg) FROM weight_entries`).Scan(&sum); err != nil {
			t.Fatalf("sum weights: %v", err)
		}
		return sum
	}
	if sumWeights(a) != sumWeights(b) {
		t.Fatalf("same seed produced different weight series")
	}
}

func TestFastingNullabilityInvariant(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	if result := Run(sqldb, testOptions(), nil); !result.Success {
		t.Fatalf("seed: %v", result.Errors)
	}

	rows, err := sqldb.Query(`SELECT status, end_time, actual_hours FROM fasting_sessions`)
	if err != nil {
		t.Fatalf("query fasting sessions: %v", err)
	}
	defer rows.Close()

	checked := 0
	for rows.Next() {
		var status string
		var endTime sql.NullString
		var actual sql.NullFloat64
		if err := rows.Scan(&status, &endTime, &actual); err != nil {
			t.Fatalf("scan session: %v", err)
		}
		switch status {
		case "cancelled":
			if endTime.Valid || actual.Valid {
				t.Fatalf("cancelled session must have null end_time and actual_hours")
			}
		case "completed":
			if !endTime.Valid || !actual.Valid {
				t.Fatalf("completed session must have end_time and actual_hours")
			}
			if actual.Float64 < 14 || actual.Float64 > 18 {
				t.Fatalf("actual hours %f outside [14,18]", actual.Float64)
			}
		default:
			t.Fatalf("unexpected status %q", status)
		}
		checked++
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("iterate sessions: %v", err)
	}
	if checked == 0 {
		t.Fatalf("expected fasting sessions to exist")
	}
}

func TestFoodLogNutritionDerivedFromCatalog(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	if result := Run(sqldb, testOptions(), nil); !result.Success {
		t.Fatalf("seed: %v", result.Errors)
	}

	rows, err := sqldb.Query(`
SELECT e.calories, e.protein_g, e.servings, f.calories, f.protein_g
FROM food_log_entries e
JOIN foods f ON f.id = e.food_id
`)
	if err != nil {
		t.Fatalf("query joined log: %v", err)
	}
	defer rows.Close()

	checked := 0
	for rows.Next() {
		var gotCal int
		var gotProtein, servings, baseProtein float64
		var baseCal int
		if err := rows.Scan(&gotCal, &gotProtein, &servings, &baseCal, &baseProtein); err != nil {
			t.Fatalf("scan joined log: %v", err)
		}
		if want := int(round(float64(baseCal)*servings, 0)); gotCal != want {
			t.Fatalf("calories %d != base %d x servings %f", gotCal, baseCal, servings)
		}
		if want := round(baseProtein*servings, 1); gotProtein != want {
			t.Fatalf("protein %f != base %f x servings %f", gotProtein, baseProtein, servings)
		}
		checked++
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("iterate joined log: %v", err)
	}
	if checked == 0 {
		t.Fatalf("expected food log entries to exist")
	}
}

func TestFoodUsageRecount(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	if result := Run(sqldb, testOptions(), nil); !result.Success {
		t.Fatalf("seed: %v", result.Errors)
	}

	rows, err := sqldb.Query(`
SELECT f.id, f.usage_count, (SELECT COUNT(*) FROM food_log_entries e WHERE e.food_id = f.id)
FROM foods f
`)
	if err != nil {
		t.Fatalf("query usage: %v", err)
	}
	defer rows.Close()
	for rows.Next() {
		var id string
		var usage, actual int
		if err := rows.Scan(&id, &usage, &actual); err != nil {
			t.Fatalf("scan usage: %v", err)
		}
		if usage != actual {
			t.Fatalf("food %s usage_count %d != logged count %d", id, usage, actual)
		}
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("iterate usage: %v", err)
	}
}

func TestNutrientContributorCeiling(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	if result := Run(sqldb, testOptions(), nil); !result.Success {
		t.Fatalf("seed: %v", result.Errors)
	}

	rows, err := sqldb.Query(`SELECT percent_of_daily FROM nutrient_contributors`)
	if err != nil {
		t.Fatalf("query contributors: %v", err)
	}
	defer rows.Close()

	checked := 0
	for rows.Next() {
		var pct float64
		if err := rows.Scan(&pct); err != nil {
			t.Fatalf("scan contributor: %v", err)
		}
		if pct < 1 || pct > 60 {
			t.Fatalf("percent_of_daily %f outside [1,60]", pct)
		}
		checked++
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("iterate contributors: %v", err)
	}
	if checked == 0 {
		t.Fatalf("expected contributor rows to exist")
	}
}

func TestHealthSyncFixedShape(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	if result := Run(sqldb, testOptions(), nil); !result.Success {
		t.Fatalf("seed: %v", result.Errors)
	}

	if got := countRows(t, sqldb, "health_sync_log"); got != 11 {
		t.Fatalf("expected exactly 11 sync records, got %d", got)
	}

	rows, err := sqldb.Query(`SELECT platform, status, error_message FROM health_sync_log ORDER BY id ASC`)
	if err != nil {
		t.Fatalf("query sync log: %v", err)
	}
	defer rows.Close()

	errorCount := 0
	i := 0
	for rows.Next() {
		var platform, status string
		var errMsg sql.NullString
		if err := rows.Scan(&platform, &status, &errMsg); err != nil {
			t.Fatalf("scan sync record: %v", err)
		}
		if want := healthSyncPlatforms[i%2]; platform != want {
			t.Fatalf("record %d platform %q, want alternation %q", i, platform, want)
		}
		if status == "error" {
			errorCount++
			if !errMsg.Valid || !strings.Contains(errMsg.String, "device unreachable") {
				t.Fatalf("error record missing diagnostic, got %v", errMsg)
			}
		}
		i++
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("iterate sync log: %v", err)
	}
	if errorCount != 1 {
		t.Fatalf("expected exactly one error record, got %d", errorCount)
	}
}

func TestWeeklyReflectionsReferenceActiveGoal(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	if result := Run(sqldb, testOptions(), nil); !result.Success {
		t.Fatalf("seed: %v", result.Errors)
	}

	var mismatched int
	if err := sqldb.QueryRow(`
SELECT COUNT(*) FROM weekly_reflections r
WHERE r.goal_id NOT IN (SELECT id FROM goals WHERE is_active = 1)
`).Scan(&mismatched); err != nil {
		t.Fatalf("check reflection goal ids: %v", err)
	}
	if mismatched != 0 {
		t.Fatalf("%d reflections reference a non-active goal", mismatched)
	}
	if got := countRows(t, sqldb, "weekly_reflections"); got == 0 {
		t.Fatalf("expected reflections to exist")
	}
}

func TestPlannedMealStatusByDate(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	if result := Run(sqldb, testOptions(), nil); !result.Success {
		t.Fatalf("seed: %v", result.Errors)
	}

	var badPast, badFuture int
	today := daysAgo(0)
	if err := sqldb.QueryRow(`SELECT COUNT(*) FROM planned_meals WHERE plan_date < ? AND status = 'planned'`, today).Scan(&badPast); err != nil {
		t.Fatalf("check past plans: %v", err)
	}
	if err := sqldb.QueryRow(`SELECT COUNT(*) FROM planned_meals WHERE plan_date >= ? AND status != 'planned'`, today).Scan(&badFuture); err != nil {
		t.Fatalf("check future plans: %v", err)
	}
	if badPast != 0 {
		t.Fatalf("%d past planned meals left unresolved", badPast)
	}
	if badFuture != 0 {
		t.Fatalf("%d future planned meals already resolved", badFuture)
	}

	// Planning never extends more than one week ahead.
	var tooFar int
	if err := sqldb.QueryRow(`SELECT COUNT(*) FROM planned_meals WHERE plan_date > ?`, daysAgo(-7)).Scan(&tooFar); err != nil {
		t.Fatalf("check planning horizon: %v", err)
	}
	if tooFar != 0 {
		t.Fatalf("%d planned meals more than a week out", tooFar)
	}
}

func TestEdgeCaseInjection(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	opts := testOptions()
	opts.IncludeEdgeCases = true
	if result := Run(sqldb, opts, nil); !result.Success {
		t.Fatalf("seed: %v", result.Errors)
	}

	var name string
	if err := sqldb.QueryRow(`SELECT name FROM user_profile WHERE id = 1`).Scan(&name); err != nil {
		t.Fatalf("read profile: %v", err)
	}
	if name != edgeCaseStrings.unicode[0] {
		t.Fatalf("expected unicode profile name, got %q", name)
	}

	for _, date := range edgeCaseDates {
		var n int
		if err := sqldb.QueryRow(`SELECT COUNT(*) FROM quick_add_entries WHERE entry_date = ?`, date).Scan(&n); err != nil {
			t.Fatalf("count boundary quick adds: %v", err)
		}
		if n == 0 {
			t.Fatalf("no quick add entry on boundary date %s", date)
		}
	}
}

func TestEdgeCasesStayBounded(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	opts := testOptions()
	opts.IncludeEdgeCases = true
	if result := Run(sqldb, opts, nil); !result.Success {
		t.Fatalf("seed: %v", result.Errors)
	}

	// Edge rows must remain a small slice of the log, never the bulk.
	total := countRows(t, sqldb, "food_log_entries")
	var edged int
	if err := sqldb.QueryRow(`SELECT COUNT(*) FROM food_log_entries WHERE notes != ''`).Scan(&edged); err != nil {
		t.Fatalf("count edged log rows: %v", err)
	}
	if total == 0 {
		t.Fatalf("expected food log entries")
	}
	if frac := float64(edged) / float64(total); frac > 0.15 {
		t.Fatalf("edge-case rows are %d of %d (%.0f%%), want a small fraction", edged, total, frac*100)
	}

	var quickTotal, longText int
	if err := sqldb.QueryRow(`SELECT COUNT(*) FROM quick_add_entries`).Scan(&quickTotal); err != nil {
		t.Fatalf("count quick adds: %v", err)
	}
	if err := sqldb.QueryRow(`SELECT COUNT(*) FROM quick_add_entries WHERE description = ?`, edgeCaseStrings.longText).Scan(&longText); err != nil {
		t.Fatalf("count long-text quick adds: %v", err)
	}
	if quickTotal > 0 && float64(longText)/float64(quickTotal) > 0.5 {
		t.Fatalf("long-text descriptions dominate quick adds: %d of %d", longText, quickTotal)
	}
}

func TestNoClearReseedKeepsSingleActiveGoal(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	if result := Run(sqldb, testOptions(), nil); !result.Success {
		t.Fatalf("first seed: %v", result.Errors)
	}

	opts := testOptions()
	opts.ClearExisting = false
	if result := Run(sqldb, opts, nil); !result.Success {
		t.Fatalf("reseed: %v", result.Errors)
	}

	var active int
	if err := sqldb.QueryRow(`SELECT COUNT(*) FROM goals WHERE is_active = 1`).Scan(&active); err != nil {
		t.Fatalf("count active goals: %v", err)
	}
	if active != 1 {
		t.Fatalf("expected exactly 1 active goal after no-clear reseed, got %d", active)
	}
}

func TestClearPhaseWarningsReachResult(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	if _, err := sqldb.Exec(`DROP TABLE health_sync_log`); err != nil {
		t.Fatalf("drop health_sync_log: %v", err)
	}

	result := Run(sqldb, testOptions(), nil)
	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "health_sync_log") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a clear-phase warning about the missing table, got %v", result.Warnings)
	}
}

func TestProgressPhotosAndComparisons(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	if result := Run(sqldb, testOptions(), nil); !result.Success {
		t.Fatalf("seed: %v", result.Errors)
	}

	photos := countRows(t, sqldb, "progress_photos")
	if photos != 12 {
		t.Fatalf("expected 12 photos, got %d", photos)
	}
	comparisons := countRows(t, sqldb, "photo_comparisons")
	if comparisons != 4 {
		t.Fatalf("expected 4 comparison pairs, got %d", comparisons)
	}

	// Pairs are ordered oldest before newest.
	var misordered int
	if err := sqldb.QueryRow(`
SELECT COUNT(*) FROM photo_comparisons c
JOIN progress_photos b ON b.id = c.before_photo_id
JOIN progress_photos a ON a.id = c.after_photo_id
WHERE b.taken_at >= a.taken_at
`).Scan(&misordered); err != nil {
		t.Fatalf("check comparison ordering: %v", err)
	}
	if misordered != 0 {
		t.Fatalf("%d comparisons ordered newest first", misordered)
	}
}
