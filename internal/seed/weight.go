package seed

import (
	"fmt"
	"time"
)

const (
	baselineWeightKg = 82.0
	dailyDriftKg     = -0.045
	weighInNoiseKg   = 0.4
	minHumanWeightKg = 45
	maxHumanWeightKg = 200
)

// seedWeightEntries produces a daily (with gaps) weight series: linear
// drift from a fixed baseline plus Gaussian noise, clamped to a plausible
// human range. ~15% of days are skipped to simulate missed weigh-ins;
// today is never skipped.
func (s *Seeder) seedWeightEntries() (int, error) {
	rows := make([][]any, 0, s.historyDays)
	for n := s.historyDays; n >= 0; n-- {
		if n != 0 && s.rng.ShouldSkip(0.15) {
			continue
		}
		date := daysAgo(n)
		drift := float64(s.historyDays-n) * dailyDriftKg
		weight := clamp(baselineWeightKg+drift+s.rng.Gaussian(0, weighInNoiseKg), minHumanWeightKg, maxHumanWeightKg)
		loggedAt, err := s.rng.mealTimeOfDay(date, "breakfast")
		if err != nil {
			return 0, err
		}
		rows = append(rows, []any{dateID("weight", date), date, round(weight, 1), "", loggedAt.Format(time.RFC3339)})
	}

	// Edge-case weights are appended as clearly separate rows just before
	// the start of history, never blended into the statistical series.
	if s.opts.IncludeEdgeCases {
		for i, w := range edgeCaseWeightsKg {
			date := daysAgo(s.historyDays + 1 + i)
			rows = append(rows, []any{dateID("weight", date), date, w, "edge case", datetimeAgo(s.historyDays + 1 + i).Format(time.RFC3339)})
		}
	}

	n, err := batchInsert(s.db, "weight_entries",
		[]string{"id", "entry_date", "weight_kg", "notes", "logged_at"}, rows, 0)
	if err != nil {
		return n, fmt.Errorf("seed weight entries: %w", err)
	}
	return n, nil
}

// seedMetabolismEntries derives a daily BMR/TDEE estimate from the weight
// series, smoothing the raw weigh-ins into a trend first so the estimate
// tracks the drift rather than day-to-day noise.
func (s *Seeder) seedMetabolismEntries() (int, error) {
	rows, err := s.db.Query(`SELECT entry_date, weight_kg FROM weight_entries ORDER BY entry_date ASC`)
	if err != nil {
		return 0, fmt.Errorf("read weight entries: %w", err)
	}
	defer rows.Close()

	type weighIn struct {
		date   string
		weight float64
	}
	var series []weighIn
	for rows.Next() {
		var w weighIn
		if err := rows.Scan(&w.date, &w.weight); err != nil {
			return 0, fmt.Errorf("scan weight entry: %w", err)
		}
		series = append(series, w)
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate weight entries: %w", err)
	}
	if len(series) == 0 {
		return 0, nil
	}

	const trendAlpha = 0.1
	trend := series[0].weight
	out := make([][]any, 0, len(series))
	for _, w := range series {
		trend = trend + trendAlpha*(w.weight-trend)
		bmr := round(370+21.6*(trend*0.72), 0)
		tdee := round(bmr*1.55, 0)
		out = append(out, []any{dateID("meta", w.date), w.date, bmr, tdee, round(trend, 2)})
	}

	n, err := batchInsert(s.db, "metabolism_entries",
		[]string{"id", "entry_date", "bmr", "tdee", "trend_weight_kg"}, out, 0)
	if err != nil {
		return n, fmt.Errorf("seed metabolism entries: %w", err)
	}
	return n, nil
}
