package seed

import (
	"fmt"
	"time"
)

// Fixed illustrative notes attached to specific weeks of the reflection
// history.
var reflectionNotes = map[int]string{
	3: "Travel week. Trend held steady despite eating out more than planned.",
	7: "Best week so far. Meal prepping on Sundays is clearly paying off.",
}

// seedWeeklyReflections writes one row per calendar week since the active
// goal started: start/end trend weight, the week's change drawn from a
// small negative-mean Gaussian, and a weekly recomputed calorie/macro
// target that drifts down as the cut progresses.
func (s *Seeder) seedWeeklyReflections() (int, error) {
	if s.activeGoalID == "" {
		// Goals step failed or has not run; nothing to reference.
		return 0, nil
	}

	weeks := s.historyDays / 7
	trend := baselineWeightKg
	var rows [][]any
	for week := 0; week < weeks; week++ {
		startOffset := s.historyDays - week*7
		weekStart := daysAgo(startOffset)
		weekEnd := daysAgo(startOffset - 6)

		change := round(s.rng.Gaussian(-0.3, 0.2), 2)
		startTrend := round(trend, 2)
		trend += change
		endTrend := round(trend, 2)

		calories := 1950 - week*8
		protein := round(160-float64(week)*0.4, 0)
		carbs := round(float64(calories)*0.40/4, 0)
		fat := round(float64(calories)*0.27/9, 0)

		rows = append(rows, []any{
			dateID("reflect", weekStart),
			s.activeGoalID,
			weekStart,
			weekEnd,
			startTrend,
			endTrend,
			change,
			calories,
			protein,
			carbs,
			fat,
			reflectionNotes[week],
		})
	}

	written, err := batchInsert(s.db, "weekly_reflections",
		[]string{"id", "goal_id", "week_start", "week_end", "start_trend_weight_kg", "end_trend_weight_kg", "weight_change_kg", "target_calories", "protein_g", "carbs_g", "fat_g", "notes"},
		rows, 0)
	if err != nil {
		return written, fmt.Errorf("seed weekly reflections: %w", err)
	}
	return written, nil
}

const (
	healthSyncRecordCount = 11
	healthSyncErrorIndex  = 7
	healthSyncErrorMsg    = "sync timed out: device unreachable"
)

var healthSyncPlatforms = []string{"apple_health", "google_fit"}

// seedHealthSyncLog writes a fixed shape of 11 sync records alternating
// between the two platforms, with exactly one error at a fixed position.
// Tests assert on this exact cardinality and placement.
func (s *Seeder) seedHealthSyncLog() (int, error) {
	spacing := s.historyDays / healthSyncRecordCount
	if spacing < 1 {
		spacing = 1
	}

	rows := make([][]any, 0, healthSyncRecordCount)
	for i := 0; i < healthSyncRecordCount; i++ {
		syncedAt := datetimeAgo((healthSyncRecordCount - 1 - i) * spacing)
		status := "ok"
		var errMsg any
		records := s.rng.Int(5, 40)
		if i == healthSyncErrorIndex {
			status = "error"
			errMsg = healthSyncErrorMsg
			records = 0
		}
		rows = append(rows, []any{
			fmt.Sprintf("sync-%03d", i),
			healthSyncPlatforms[i%len(healthSyncPlatforms)],
			syncedAt.Format(time.RFC3339),
			records,
			status,
			errMsg,
		})
	}

	written, err := batchInsert(s.db, "health_sync_log",
		[]string{"id", "platform", "synced_at", "records_synced", "status", "error_message"}, rows, 0)
	if err != nil {
		return written, fmt.Errorf("seed health sync log: %w", err)
	}
	return written, nil
}
