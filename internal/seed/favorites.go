package seed

import (
	"fmt"
	"time"
)

// seedFavorites marks the curated favorites subset of the bundled catalog.
func (s *Seeder) seedFavorites() (int, error) {
	rows := make([][]any, 0, len(favoriteFoodIDs))
	for _, foodID := range favoriteFoodIDs {
		addedAt := datetimeAgo(s.rng.Int(0, s.historyDays)).Format(time.RFC3339)
		rows = append(rows, []any{foodID, addedAt})
	}
	n, err := batchInsert(s.db, "favorite_foods", []string{"food_id", "added_at"}, rows, 0)
	if err != nil {
		return n, fmt.Errorf("seed favorites: %w", err)
	}
	return n, nil
}
