package seed

import (
	"fmt"
	"time"
)

// seedWaterEntries logs several glasses of water per day, skipping ~8% of
// days entirely.
func (s *Seeder) seedWaterEntries() (int, error) {
	var out [][]any
	for n := s.historyDays; n >= 0; n-- {
		if n != 0 && s.rng.ShouldSkip(0.08) {
			continue
		}
		date := daysAgo(n)
		glasses := s.rng.Int(3, 8)
		for i := 0; i < glasses; i++ {
			loggedAt, err := s.rng.mealTimeOfDay(date, "any")
			if err != nil {
				return 0, err
			}
			out = append(out, []any{
				s.rng.generateID("water"),
				date,
				s.rng.Int(200, 400),
				loggedAt.Format(time.RFC3339),
			})
		}
	}

	written, err := batchInsert(s.db, "water_entries",
		[]string{"id", "entry_date", "amount_ml", "logged_at"}, out, 0)
	if err != nil {
		return written, fmt.Errorf("seed water entries: %w", err)
	}
	return written, nil
}
