package seed

import "fmt"

// seedMacroCycleConfig writes the single weekly pattern: higher intake on
// training days (Mon/Tue/Thu/Fri), lower on rest days.
func (s *Seeder) seedMacroCycleConfig() (int, error) {
	_, err := s.db.Exec(`
INSERT OR REPLACE INTO macro_cycle_config(
  id, enabled, training_days,
  training_calories, training_protein_g, training_carbs_g, training_fat_g,
  rest_calories, rest_protein_g, rest_carbs_g, rest_fat_g)
VALUES(1, 1, 'mon,tue,thu,fri', 2200, 180, 240, 70, 1800, 165, 160, 62)
`)
	if err != nil {
		return 0, fmt.Errorf("seed macro cycle config: %w", err)
	}
	return 1, nil
}

var overrideReasons = []string{
	"race day carb load",
	"travel day",
	"feeling under the weather",
	"long hike planned",
	"refeed day",
}

// seedMacroCycleOverrides writes sparse manual daily overrides (~7% of
// days) with independently randomized macro targets.
func (s *Seeder) seedMacroCycleOverrides() (int, error) {
	var out [][]any
	for n := s.historyDays; n >= 0; n-- {
		if s.rng.ShouldSkip(0.93) {
			continue
		}
		date := daysAgo(n)
		out = append(out, []any{
			dateID("override", date),
			date,
			s.rng.Int(1500, 2800),
			round(s.rng.Between(120, 200), 0),
			round(s.rng.Between(120, 320), 0),
			round(s.rng.Between(40, 95), 0),
			overrideReasons[s.rng.PickIndex(len(overrideReasons))],
		})
	}

	written, err := batchInsert(s.db, "macro_cycle_overrides",
		[]string{"id", "entry_date", "calories", "protein_g", "carbs_g", "fat_g", "reason"}, out, 0)
	if err != nil {
		return written, fmt.Errorf("seed macro cycle overrides: %w", err)
	}
	return written, nil
}
