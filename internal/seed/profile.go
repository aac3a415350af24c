package seed

import (
	"fmt"
)

// seedUserProfile writes the singleton profile row.
func (s *Seeder) seedUserProfile() (int, error) {
	name := "Dev Tester"
	if s.opts.IncludeEdgeCases {
		name = edgeCaseStrings.unicode[0]
	}
	_, err := s.db.Exec(`
INSERT OR REPLACE INTO user_profile(id, name, age, sex, height_cm, activity_level, unit_system, onboarding_complete, updated_at)
VALUES(1, ?, ?, ?, ?, ?, ?, 1, CURRENT_TIMESTAMP)
`, name, 34, "female", 168.0, "moderate", "metric")
	if err != nil {
		return 0, fmt.Errorf("seed user profile: %w", err)
	}
	return 1, nil
}

// Settings keys the clear engine also knows how to reset.
var defaultSettings = map[string]string{
	"theme":               "system",
	"water_goal_ml":       "2500",
	"week_starts_on":      "monday",
	"reminders_enabled":   "true",
	"reminder_time":       "20:00",
	"calorie_floor":       "1200",
	"macro_display_mode":  "grams",
	"show_net_carbs":      "false",
	"health_sync_enabled": "true",
	"streak_goal_days":    "30",
}

func (s *Seeder) seedAppSettings() (int, error) {
	rows := make([][]any, 0, len(defaultSettings))
	for key, value := range defaultSettings {
		rows = append(rows, []any{key, value})
	}
	n, err := batchInsert(s.db, "app_settings", []string{"key", "value"}, rows, 0)
	if err != nil {
		return n, fmt.Errorf("seed app settings: %w", err)
	}
	return n, nil
}

// seedGoals writes one completed historical goal and one active goal. The
// active goal id is threaded forward to the weekly reflections step.
// Existing goals are deactivated first so a reseed without a clear still
// leaves exactly one active goal.
func (s *Seeder) seedGoals() (int, error) {
	if _, err := s.db.Exec(`UPDATE goals SET is_active = 0`); err != nil {
		return 0, fmt.Errorf("deactivate existing goals: %w", err)
	}

	oldID := s.rng.generateID("goal")
	activeID := s.rng.generateID("goal")

	rows := [][]any{
		{oldID, "maintain", 80.0, 0.0, 2200, 150.0, 250.0, 75.0, daysAgo(s.historyDays + 120), 0},
		{activeID, "lose", 72.0, -0.5, 1900, 160.0, 190.0, 63.0, daysAgo(s.historyDays), 1},
	}
	n, err := batchInsert(s.db, "goals",
		[]string{"id", "goal_type", "target_weight_kg", "weekly_rate_kg", "target_calories", "protein_g", "carbs_g", "fat_g", "start_date", "is_active"},
		rows, 0)
	if err != nil {
		return n, fmt.Errorf("seed goals: %w", err)
	}
	s.activeGoalID = activeID
	return n, nil
}
