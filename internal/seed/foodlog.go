package seed

import (
	"fmt"
	"time"

	"github.com/nutrilog/devseed/internal/model"
)

// loadFoods reads the full food catalog keyed by id.
func (s *Seeder) loadFoods() (map[string]model.Food, error) {
	rows, err := s.db.Query(`SELECT id, name, calories, protein_g, carbs_g, fat_g FROM foods`)
	if err != nil {
		return nil, fmt.Errorf("read foods: %w", err)
	}
	defer rows.Close()

	foods := map[string]model.Food{}
	for rows.Next() {
		var f model.Food
		if err := rows.Scan(&f.ID, &f.Name, &f.Calories, &f.ProteinG, &f.CarbsG, &f.FatG); err != nil {
			return nil, fmt.Errorf("scan food: %w", err)
		}
		foods[f.ID] = f
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate foods: %w", err)
	}
	return foods, nil
}

// seedFoodLogEntries generates breakfast, lunch, and dinner for every day in
// the window (plus 0-2 snacks), instantiating a randomly picked meal
// template per meal. Logged nutrition is always the referenced food's base
// nutrition times the serving multiplier, never independently randomized.
// ~10% of days are skipped entirely; today never is.
func (s *Seeder) seedFoodLogEntries() (int, error) {
	foods, err := s.loadFoods()
	if err != nil {
		return 0, err
	}
	if len(foods) == 0 {
		return 0, nil
	}

	var out [][]any
	for n := s.historyDays; n >= 0; n-- {
		if n != 0 && s.rng.ShouldSkip(0.10) {
			continue
		}
		date := daysAgo(n)

		meals := []string{"breakfast", "lunch", "dinner"}
		snackCount := s.rng.WeightedPick([]float64{0.35, 0.45, 0.20})
		for i := 0; i < snackCount; i++ {
			meals = append(meals, "snack")
		}

		for _, mealType := range meals {
			templates := mealTemplates[mealType]
			tpl := templates[s.rng.PickIndex(len(templates))]
			for _, item := range tpl.items {
				food, ok := foods[item.foodID]
				if !ok {
					s.warnf("meal template %q references unknown food %s", tpl.name, item.foodID)
					continue
				}
				servings := item.servings
				notes := ""
				// Edge rows stay a small bounded slice of the log; the
				// statistical bulk is untouched.
				if s.opts.IncludeEdgeCases && s.rng.ShouldSkip(0.03) {
					notes = edgeCaseStrings.emoji[s.rng.PickIndex(len(edgeCaseStrings.emoji))]
					servings = edgeCaseServings[s.rng.PickIndex(len(edgeCaseServings))]
				}
				loggedAt, err := s.rng.mealTimeOfDay(date, mealType)
				if err != nil {
					return 0, err
				}
				out = append(out, []any{
					s.rng.generateID("log"),
					food.ID,
					food.Name,
					mealType,
					date,
					loggedAt.Format(time.RFC3339),
					servings,
					int(round(float64(food.Calories)*servings, 0)),
					round(food.ProteinG*servings, 1),
					round(food.CarbsG*servings, 1),
					round(food.FatG*servings, 1),
					notes,
				})
			}
		}
	}

	written, err := batchInsert(s.db, "food_log_entries",
		[]string{"id", "food_id", "food_name", "meal_type", "entry_date", "logged_at", "servings", "calories", "protein_g", "carbs_g", "fat_g", "notes"},
		out, 0)
	if err != nil {
		return written, fmt.Errorf("seed food log entries: %w", err)
	}

	if err := s.recountFoodUsage(); err != nil {
		return written, err
	}
	return written, nil
}

// recountFoodUsage recomputes usage_count and last_used_at for every food
// from the generated log so the catalog's usage stats match reality.
func (s *Seeder) recountFoodUsage() error {
	_, err := s.db.Exec(`
UPDATE foods SET
  usage_count = (SELECT COUNT(*) FROM food_log_entries WHERE food_log_entries.food_id = foods.id),
  last_used_at = (SELECT MAX(logged_at) FROM food_log_entries WHERE food_log_entries.food_id = foods.id)
`)
	if err != nil {
		return fmt.Errorf("recount food usage: %w", err)
	}
	return nil
}

var quickAddDescriptions = []string{
	"late night snack",
	"office birthday cake",
	"handful of trail mix",
	"leftovers",
	"tasting while cooking",
	"free sample at the market",
}

// seedQuickAddEntries writes free-form logged nutrition not tied to the
// catalog, on roughly a fifth of days.
func (s *Seeder) seedQuickAddEntries() (int, error) {
	var out [][]any
	for n := s.historyDays; n >= 0; n-- {
		if s.rng.ShouldSkip(0.80) {
			continue
		}
		date := daysAgo(n)
		description := quickAddDescriptions[s.rng.PickIndex(len(quickAddDescriptions))]
		if s.opts.IncludeEdgeCases && s.rng.ShouldSkip(0.05) {
			description = edgeCaseStrings.longText
		}
		loggedAt, err := s.rng.mealTimeOfDay(date, "snack")
		if err != nil {
			return 0, err
		}
		calories := s.rng.Int(80, 450)
		out = append(out, []any{
			s.rng.generateID("quick"),
			date,
			"snack",
			description,
			calories,
			round(s.rng.Between(0, 15), 1),
			round(s.rng.Between(5, 50), 1),
			round(s.rng.Between(0, 20), 1),
			loggedAt.Format(time.RFC3339),
		})
	}

	// Boundary-date rows exercise year and leap-day handling; whitespace
	// descriptions exercise trimming in the UI layer.
	if s.opts.IncludeEdgeCases {
		for i, date := range edgeCaseDates {
			out = append(out, []any{
				dateID("quick-edge", date),
				date,
				"snack",
				edgeCaseStrings.whitespace[i%len(edgeCaseStrings.whitespace)],
				s.rng.Int(80, 450),
				round(s.rng.Between(0, 15), 1),
				round(s.rng.Between(5, 50), 1),
				round(s.rng.Between(0, 20), 1),
				date + "T12:00:00Z",
			})
		}
	}

	written, err := batchInsert(s.db, "quick_add_entries",
		[]string{"id", "entry_date", "meal_type", "description", "calories", "protein_g", "carbs_g", "fat_g", "logged_at"},
		out, 0)
	if err != nil {
		return written, fmt.Errorf("seed quick add entries: %w", err)
	}
	return written, nil
}
