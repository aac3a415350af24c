package seed

import "fmt"

// seedNutrientSettings writes one tracked-nutrient row per persona.
func (s *Seeder) seedNutrientSettings() (int, error) {
	rows := make([][]any, 0, len(nutrientPersonas))
	for _, p := range nutrientPersonas {
		rows = append(rows, []any{p.key, p.displayName, p.unit, p.target, 1})
	}
	n, err := batchInsert(s.db, "nutrient_settings",
		[]string{"nutrient_key", "display_name", "unit", "daily_target", "tracked"}, rows, 0)
	if err != nil {
		return n, fmt.Errorf("seed nutrient settings: %w", err)
	}
	return n, nil
}

// seedFoodItemNutrients materializes per-food nutrient amounts from the
// contribution profiles: a food's per-serving amount is its share of the
// nutrient target, scaled down so one serving never covers the full day.
func (s *Seeder) seedFoodItemNutrients() (int, error) {
	var rows [][]any
	for _, p := range nutrientPersonas {
		profile := foodNutrientProfiles[p.key]
		var totalWeight float64
		for _, w := range profile {
			totalWeight += w
		}
		if totalWeight == 0 {
			continue
		}
		for foodID, weight := range profile {
			amount := round(p.target*(weight/totalWeight)*0.9, 2)
			rows = append(rows, []any{
				fmt.Sprintf("fin-%s-%s", foodID, p.key),
				foodID,
				p.key,
				amount,
			})
		}
	}

	n, err := batchInsert(s.db, "food_item_nutrients",
		[]string{"id", "food_id", "nutrient_key", "amount_per_serving"}, rows, 0)
	if err != nil {
		return n, fmt.Errorf("seed food item nutrients: %w", err)
	}
	return n, nil
}

// seedDailyNutrientIntake simulates, for ~88% of days, a daily intake row
// per tracked nutrient: a clamped Gaussian around the persona's mean
// percent-of-target, classified by fixed thresholds.
func (s *Seeder) seedDailyNutrientIntake() (int, error) {
	var rows [][]any
	for n := s.historyDays; n >= 0; n-- {
		if s.rng.ShouldSkip(0.12) {
			continue
		}
		date := daysAgo(n)
		for _, p := range nutrientPersonas {
			percent := clamp(s.rng.Gaussian(p.meanPercent, p.stddevPercent), 10, 250)
			amount := round(p.target*percent/100, 2)
			rows = append(rows, []any{
				dateID("dni", date+"-"+p.key),
				date,
				p.key,
				amount,
				round(percent, 1),
				intakeStatus(percent),
			})
		}
	}

	written, err := batchInsert(s.db, "daily_nutrient_intake",
		[]string{"id", "entry_date", "nutrient_key", "amount", "percent_of_target", "status"}, rows, 0)
	if err != nil {
		return written, fmt.Errorf("seed daily nutrient intake: %w", err)
	}
	return written, nil
}

// seedNutrientContributors attributes each day's simulated intake to foods
// that were actually logged that day, using the per-food profiles. Any
// single food's share is clamped to 1-60% of the day's target so no one
// item implausibly dominates.
func (s *Seeder) seedNutrientContributors() (int, error) {
	loggedByDate, foodNames, err := s.loadLoggedFoodsByDate()
	if err != nil {
		return 0, err
	}
	if len(loggedByDate) == 0 {
		return 0, nil
	}

	intakeRows, err := s.db.Query(`SELECT entry_date, nutrient_key, amount FROM daily_nutrient_intake`)
	if err != nil {
		return 0, fmt.Errorf("read daily nutrient intake: %w", err)
	}
	defer intakeRows.Close()

	var rows [][]any
	for intakeRows.Next() {
		var date, key string
		var amount float64
		if err := intakeRows.Scan(&date, &key, &amount); err != nil {
			return 0, fmt.Errorf("scan daily nutrient intake: %w", err)
		}
		persona, ok := personaByKey(key)
		if !ok {
			continue
		}
		profile := foodNutrientProfiles[key]

		// Contributors must be foods both in the nutrient's profile and in
		// that day's log.
		var candidates []string
		var weights []float64
		for foodID, weight := range profile {
			if loggedByDate[date][foodID] {
				candidates = append(candidates, foodID)
				weights = append(weights, weight)
			}
		}
		if len(candidates) == 0 {
			continue
		}

		var totalWeight float64
		for _, w := range weights {
			totalWeight += w
		}
		for i, foodID := range candidates {
			share := amount * weights[i] / totalWeight
			percent := clamp(round(share/persona.target*100, 1), 1, 60)
			rows = append(rows, []any{
				dateID("contrib", date+"-"+key+"-"+foodID),
				date,
				key,
				foodID,
				foodNames[foodID],
				round(share, 2),
				percent,
			})
		}
	}
	if err := intakeRows.Err(); err != nil {
		return 0, fmt.Errorf("iterate daily nutrient intake: %w", err)
	}

	written, err := batchInsert(s.db, "nutrient_contributors",
		[]string{"id", "entry_date", "nutrient_key", "food_id", "food_name", "amount", "percent_of_daily"}, rows, 0)
	if err != nil {
		return written, fmt.Errorf("seed nutrient contributors: %w", err)
	}
	return written, nil
}

// loadLoggedFoodsByDate returns which foods were logged on each date, plus
// a food id to name lookup.
func (s *Seeder) loadLoggedFoodsByDate() (map[string]map[string]bool, map[string]string, error) {
	rows, err := s.db.Query(`SELECT DISTINCT entry_date, food_id, food_name FROM food_log_entries`)
	if err != nil {
		return nil, nil, fmt.Errorf("read logged foods: %w", err)
	}
	defer rows.Close()

	byDate := map[string]map[string]bool{}
	names := map[string]string{}
	for rows.Next() {
		var date, foodID, foodName string
		if err := rows.Scan(&date, &foodID, &foodName); err != nil {
			return nil, nil, fmt.Errorf("scan logged food: %w", err)
		}
		if byDate[date] == nil {
			byDate[date] = map[string]bool{}
		}
		byDate[date][foodID] = true
		names[foodID] = foodName
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterate logged foods: %w", err)
	}
	return byDate, names, nil
}
