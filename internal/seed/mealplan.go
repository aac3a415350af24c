package seed

import (
	"fmt"
	"time"
)

func (s *Seeder) seedMealPlanSettings() (int, error) {
	_, err := s.db.Exec(`
INSERT OR REPLACE INTO meal_plan_settings(id, planning_day, default_slots, auto_log_enabled)
VALUES(1, 'sunday', 'breakfast,lunch,dinner', 0)
`)
	if err != nil {
		return 0, fmt.Errorf("seed meal plan settings: %w", err)
	}
	return 1, nil
}

// seedPlannedMeals plans breakfast/lunch/dinner for 3-5 days in roughly
// half the weeks of the window, extending at most one week past today.
// Past-dated plans resolve to logged (70%) or skipped (30%); today and
// future stay planned.
func (s *Seeder) seedPlannedMeals() (int, error) {
	foods, err := s.loadFoods()
	if err != nil {
		return 0, err
	}
	if len(foods) == 0 {
		return 0, nil
	}

	today := time.Now().Format(dateLayout)
	var out [][]any

	// weekStart counts days back to the start of each planned week; -7
	// extends planning one week into the future.
	for weekStart := s.historyDays; weekStart >= -7; weekStart -= 7 {
		if s.rng.ShouldSkip(0.50) {
			continue
		}
		planDays := s.rng.Int(3, 5)
		offsets := s.rng.Perm(7)
		for i := 0; i < planDays; i++ {
			dayOffset := weekStart - offsets[i]
			if dayOffset < -7 {
				continue
			}
			date := daysAgo(dayOffset)
			for _, mealType := range []string{"breakfast", "lunch", "dinner"} {
				templates := mealTemplates[mealType]
				tpl := templates[s.rng.PickIndex(len(templates))]
				item := tpl.items[s.rng.PickIndex(len(tpl.items))]
				if _, ok := foods[item.foodID]; !ok {
					continue
				}

				status := "planned"
				if date < today {
					if s.rng.ShouldSkip(0.30) {
						status = "skipped"
					} else {
						status = "logged"
					}
				}
				out = append(out, []any{
					s.rng.generateID("plan"),
					date,
					mealType,
					item.foodID,
					item.servings,
					status,
				})
			}
		}
	}

	written, err := batchInsert(s.db, "planned_meals",
		[]string{"id", "plan_date", "meal_type", "food_id", "servings", "status"}, out, 0)
	if err != nil {
		return written, fmt.Errorf("seed planned meals: %w", err)
	}
	return written, nil
}
