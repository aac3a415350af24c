package seed

import (
	"fmt"
	"time"

	"github.com/nutrilog/devseed/internal/model"
)

func (s *Seeder) loadMenuItems() ([]model.MenuItem, error) {
	rows, err := s.db.Query(`SELECT id, restaurant_id, name, calories, protein_g, carbs_g, fat_g FROM restaurant_menu_items`)
	if err != nil {
		return nil, fmt.Errorf("read menu items: %w", err)
	}
	defer rows.Close()

	var items []model.MenuItem
	for rows.Next() {
		var m model.MenuItem
		if err := rows.Scan(&m.ID, &m.RestaurantID, &m.Name, &m.Calories, &m.ProteinG, &m.CarbsG, &m.FatG); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate menu items: %w", err)
	}
	return items, nil
}

// seedRestaurantLogs simulates eating out on ~12% of days, always lunch or
// dinner, with nutrition copied from the chosen menu item.
func (s *Seeder) seedRestaurantLogs() (int, error) {
	items, err := s.loadMenuItems()
	if err != nil {
		return 0, err
	}
	if len(items) == 0 {
		return 0, nil
	}

	var out [][]any
	for n := s.historyDays; n >= 0; n-- {
		if s.rng.ShouldSkip(0.88) {
			continue
		}
		date := daysAgo(n)
		item := items[s.rng.PickIndex(len(items))]
		mealType := "dinner"
		if s.rng.ShouldSkip(0.60) {
			mealType = "lunch"
		}
		loggedAt, err := s.rng.mealTimeOfDay(date, mealType)
		if err != nil {
			return 0, err
		}
		out = append(out, []any{
			s.rng.generateID("restlog"),
			item.RestaurantID,
			item.ID,
			date,
			mealType,
			1.0,
			item.Calories,
			item.ProteinG,
			item.CarbsG,
			item.FatG,
			loggedAt.Format(time.RFC3339),
		})
	}

	written, err := batchInsert(s.db, "restaurant_log_entries",
		[]string{"id", "restaurant_id", "menu_item_id", "entry_date", "meal_type", "servings", "calories", "protein_g", "carbs_g", "fat_g", "logged_at"},
		out, 0)
	if err != nil {
		return written, fmt.Errorf("seed restaurant logs: %w", err)
	}
	return written, nil
}

// seedRestaurantUsage recomputes per-restaurant visit counters from the
// generated logs.
func (s *Seeder) seedRestaurantUsage() (int, error) {
	rows, err := s.db.Query(`
SELECT restaurant_id, COUNT(*), MAX(logged_at)
FROM restaurant_log_entries
GROUP BY restaurant_id
`)
	if err != nil {
		return 0, fmt.Errorf("aggregate restaurant visits: %w", err)
	}
	defer rows.Close()

	var out [][]any
	for rows.Next() {
		var restaurantID, lastVisited string
		var visits int
		if err := rows.Scan(&restaurantID, &visits, &lastVisited); err != nil {
			return 0, fmt.Errorf("scan restaurant visits: %w", err)
		}
		out = append(out, []any{restaurantID, visits, lastVisited})
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate restaurant visits: %w", err)
	}

	written, err := batchInsert(s.db, "restaurant_usage",
		[]string{"restaurant_id", "visit_count", "last_visited_at"}, out, 0)
	if err != nil {
		return written, fmt.Errorf("seed restaurant usage: %w", err)
	}
	return written, nil
}
