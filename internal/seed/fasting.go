package seed

import (
	"fmt"
	"time"
)

func (s *Seeder) seedFastingConfig() (int, error) {
	_, err := s.db.Exec(`
INSERT OR REPLACE INTO fasting_config(id, protocol, target_hours, start_hour, notifications_enabled)
VALUES(1, '16:8', 16, 20, 1)
`)
	if err != nil {
		return 0, fmt.Errorf("seed fasting config: %w", err)
	}
	return 1, nil
}

// seedFastingSessions generates overnight fasts for roughly 43% of days:
// start the evening before, end late morning the day itself. About one in
// ten sessions is cancelled; a cancelled session has null end time and null
// actual hours, a completed one always has both.
func (s *Seeder) seedFastingSessions() (int, error) {
	var out [][]any
	for n := s.historyDays; n >= 1; n-- {
		if s.rng.ShouldSkip(0.57) {
			continue
		}
		date := daysAgo(n)
		day, err := time.ParseInLocation(dateLayout, date, time.Local)
		if err != nil {
			return 0, fmt.Errorf("parse fasting date %q: %w", date, err)
		}

		startDay := day.AddDate(0, 0, -1)
		start := time.Date(startDay.Year(), startDay.Month(), startDay.Day(),
			s.rng.Int(19, 21), s.rng.Int(0, 59), 0, 0, time.Local)

		var endVal, actualVal any
		status := "completed"
		if s.rng.ShouldSkip(0.10) {
			// Cancelled: end time and actual duration stay null.
			status = "cancelled"
		} else {
			end := time.Date(day.Year(), day.Month(), day.Day(),
				s.rng.Int(11, 13), s.rng.Int(0, 59), 0, 0, time.Local)
			endVal = end.Format(time.RFC3339)
			actualVal = round(s.rng.Between(14, 18), 1)
		}

		out = append(out, []any{
			dateID("fast", date),
			start.Format(time.RFC3339),
			endVal,
			16.0,
			actualVal,
			status,
		})
	}

	written, err := batchInsert(s.db, "fasting_sessions",
		[]string{"id", "start_time", "end_time", "target_hours", "actual_hours", "status"}, out, 0)
	if err != nil {
		return written, fmt.Errorf("seed fasting sessions: %w", err)
	}
	return written, nil
}
