package db

import (
	"database/sql"
	"fmt"
)

type migration struct {
	version int
	name    string
	sql     string
}

var migrations = []migration{
	{
		version: 1,
		name:    "profile_and_goals",
		sql: `
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS user_profile (
  id INTEGER PRIMARY KEY CHECK(id = 1),
  name TEXT NOT NULL DEFAULT '',
  age INTEGER NOT NULL DEFAULT 0,
  sex TEXT NOT NULL DEFAULT '',
  height_cm REAL NOT NULL DEFAULT 0,
  activity_level TEXT NOT NULL DEFAULT 'moderate',
  unit_system TEXT NOT NULL DEFAULT 'metric',
  onboarding_complete INTEGER NOT NULL DEFAULT 0,
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS app_settings (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS goals (
  id TEXT PRIMARY KEY,
  goal_type TEXT NOT NULL CHECK(goal_type IN ('lose', 'maintain', 'gain')),
  target_weight_kg REAL NOT NULL CHECK(target_weight_kg > 0),
  weekly_rate_kg REAL NOT NULL,
  target_calories INTEGER NOT NULL CHECK(target_calories >= 0),
  protein_g REAL NOT NULL CHECK(protein_g >= 0),
  carbs_g REAL NOT NULL CHECK(carbs_g >= 0),
  fat_g REAL NOT NULL CHECK(fat_g >= 0),
  start_date TEXT NOT NULL,
  is_active INTEGER NOT NULL DEFAULT 0,
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`,
	},
	{
		version: 2,
		name:    "food_catalog",
		sql: `
CREATE TABLE IF NOT EXISTS foods (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  brand TEXT NOT NULL DEFAULT '',
  serving_size REAL NOT NULL CHECK(serving_size > 0),
  serving_unit TEXT NOT NULL,
  calories INTEGER NOT NULL CHECK(calories >= 0),
  protein_g REAL NOT NULL CHECK(protein_g >= 0),
  carbs_g REAL NOT NULL CHECK(carbs_g >= 0),
  fat_g REAL NOT NULL CHECK(fat_g >= 0),
  fiber_g REAL NOT NULL DEFAULT 0,
  sugar_g REAL NOT NULL DEFAULT 0,
  sodium_mg REAL NOT NULL DEFAULT 0,
  source TEXT NOT NULL DEFAULT 'user' CHECK(source IN ('bundled', 'user')),
  usage_count INTEGER NOT NULL DEFAULT 0,
  last_used_at DATETIME,
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_foods_source ON foods(source);
`,
	},
	{
		version: 3,
		name:    "food_logging",
		sql: `
CREATE TABLE IF NOT EXISTS food_log_entries (
  id TEXT PRIMARY KEY,
  food_id TEXT NOT NULL,
  food_name TEXT NOT NULL,
  meal_type TEXT NOT NULL CHECK(meal_type IN ('breakfast', 'lunch', 'dinner', 'snack')),
  entry_date TEXT NOT NULL,
  logged_at DATETIME NOT NULL,
  servings REAL NOT NULL CHECK(servings > 0),
  calories INTEGER NOT NULL CHECK(calories >= 0),
  protein_g REAL NOT NULL CHECK(protein_g >= 0),
  carbs_g REAL NOT NULL CHECK(carbs_g >= 0),
  fat_g REAL NOT NULL CHECK(fat_g >= 0),
  notes TEXT NOT NULL DEFAULT '',
  FOREIGN KEY(food_id) REFERENCES foods(id)
);

CREATE INDEX IF NOT EXISTS idx_food_log_entries_date ON food_log_entries(entry_date);
CREATE INDEX IF NOT EXISTS idx_food_log_entries_food ON food_log_entries(food_id);

CREATE TABLE IF NOT EXISTS quick_add_entries (
  id TEXT PRIMARY KEY,
  entry_date TEXT NOT NULL,
  meal_type TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  calories INTEGER NOT NULL CHECK(calories >= 0),
  protein_g REAL NOT NULL DEFAULT 0,
  carbs_g REAL NOT NULL DEFAULT 0,
  fat_g REAL NOT NULL DEFAULT 0,
  logged_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS water_entries (
  id TEXT PRIMARY KEY,
  entry_date TEXT NOT NULL,
  amount_ml INTEGER NOT NULL CHECK(amount_ml > 0),
  logged_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_water_entries_date ON water_entries(entry_date);

CREATE TABLE IF NOT EXISTS favorite_foods (
  food_id TEXT PRIMARY KEY,
  added_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
  FOREIGN KEY(food_id) REFERENCES foods(id)
);
`,
	},
	{
		version: 4,
		name:    "body_tracking",
		sql: `
CREATE TABLE IF NOT EXISTS weight_entries (
  id TEXT PRIMARY KEY,
  entry_date TEXT NOT NULL UNIQUE,
  weight_kg REAL NOT NULL CHECK(weight_kg > 0),
  notes TEXT NOT NULL DEFAULT '',
  logged_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_weight_entries_date ON weight_entries(entry_date);

CREATE TABLE IF NOT EXISTS metabolism_entries (
  id TEXT PRIMARY KEY,
  entry_date TEXT NOT NULL UNIQUE,
  bmr REAL NOT NULL CHECK(bmr > 0),
  tdee REAL NOT NULL CHECK(tdee > 0),
  trend_weight_kg REAL NOT NULL CHECK(trend_weight_kg > 0)
);

CREATE TABLE IF NOT EXISTS weekly_reflections (
  id TEXT PRIMARY KEY,
  goal_id TEXT NOT NULL,
  week_start TEXT NOT NULL,
  week_end TEXT NOT NULL,
  start_trend_weight_kg REAL NOT NULL,
  end_trend_weight_kg REAL NOT NULL,
  weight_change_kg REAL NOT NULL,
  target_calories INTEGER NOT NULL,
  protein_g REAL NOT NULL,
  carbs_g REAL NOT NULL,
  fat_g REAL NOT NULL,
  notes TEXT NOT NULL DEFAULT '',
  FOREIGN KEY(goal_id) REFERENCES goals(id)
);
`,
	},
	{
		version: 5,
		name:    "fasting_and_macro_cycles",
		sql: `
CREATE TABLE IF NOT EXISTS fasting_config (
  id INTEGER PRIMARY KEY CHECK(id = 1),
  protocol TEXT NOT NULL DEFAULT '16:8',
  target_hours REAL NOT NULL DEFAULT 16,
  start_hour INTEGER NOT NULL DEFAULT 20,
  notifications_enabled INTEGER NOT NULL DEFAULT 1
);

CREATE TABLE IF NOT EXISTS fasting_sessions (
  id TEXT PRIMARY KEY,
  start_time DATETIME NOT NULL,
  end_time DATETIME,
  target_hours REAL NOT NULL CHECK(target_hours > 0),
  actual_hours REAL,
  status TEXT NOT NULL CHECK(status IN ('active', 'completed', 'cancelled'))
);

CREATE TABLE IF NOT EXISTS macro_cycle_config (
  id INTEGER PRIMARY KEY CHECK(id = 1),
  enabled INTEGER NOT NULL DEFAULT 0,
  training_days TEXT NOT NULL DEFAULT '',
  training_calories INTEGER NOT NULL DEFAULT 0,
  training_protein_g REAL NOT NULL DEFAULT 0,
  training_carbs_g REAL NOT NULL DEFAULT 0,
  training_fat_g REAL NOT NULL DEFAULT 0,
  rest_calories INTEGER NOT NULL DEFAULT 0,
  rest_protein_g REAL NOT NULL DEFAULT 0,
  rest_carbs_g REAL NOT NULL DEFAULT 0,
  rest_fat_g REAL NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS macro_cycle_overrides (
  id TEXT PRIMARY KEY,
  entry_date TEXT NOT NULL UNIQUE,
  calories INTEGER NOT NULL CHECK(calories >= 0),
  protein_g REAL NOT NULL CHECK(protein_g >= 0),
  carbs_g REAL NOT NULL CHECK(carbs_g >= 0),
  fat_g REAL NOT NULL CHECK(fat_g >= 0),
  reason TEXT NOT NULL DEFAULT ''
);
`,
	},
	{
		version: 6,
		name:    "meal_planning",
		sql: `
CREATE TABLE IF NOT EXISTS meal_plan_settings (
  id INTEGER PRIMARY KEY CHECK(id = 1),
  planning_day TEXT NOT NULL DEFAULT 'sunday',
  default_slots TEXT NOT NULL DEFAULT 'breakfast,lunch,dinner',
  auto_log_enabled INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS planned_meals (
  id TEXT PRIMARY KEY,
  plan_date TEXT NOT NULL,
  meal_type TEXT NOT NULL CHECK(meal_type IN ('breakfast', 'lunch', 'dinner', 'snack')),
  food_id TEXT NOT NULL,
  servings REAL NOT NULL CHECK(servings > 0),
  status TEXT NOT NULL CHECK(status IN ('planned', 'logged', 'skipped')),
  FOREIGN KEY(food_id) REFERENCES foods(id)
);

CREATE INDEX IF NOT EXISTS idx_planned_meals_date ON planned_meals(plan_date);
`,
	},
	{
		version: 7,
		name:    "restaurants",
		sql: `
CREATE TABLE IF NOT EXISTS restaurants (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  cuisine TEXT NOT NULL DEFAULT '',
  source TEXT NOT NULL DEFAULT 'user' CHECK(source IN ('bundled', 'user'))
);

CREATE TABLE IF NOT EXISTS restaurant_menu_items (
  id TEXT PRIMARY KEY,
  restaurant_id TEXT NOT NULL,
  name TEXT NOT NULL,
  calories INTEGER NOT NULL CHECK(calories >= 0),
  protein_g REAL NOT NULL CHECK(protein_g >= 0),
  carbs_g REAL NOT NULL CHECK(carbs_g >= 0),
  fat_g REAL NOT NULL CHECK(fat_g >= 0),
  source TEXT NOT NULL DEFAULT 'user' CHECK(source IN ('bundled', 'user')),
  FOREIGN KEY(restaurant_id) REFERENCES restaurants(id)
);

CREATE TABLE IF NOT EXISTS restaurant_log_entries (
  id TEXT PRIMARY KEY,
  restaurant_id TEXT NOT NULL,
  menu_item_id TEXT NOT NULL,
  entry_date TEXT NOT NULL,
  meal_type TEXT NOT NULL,
  servings REAL NOT NULL CHECK(servings > 0),
  calories INTEGER NOT NULL CHECK(calories >= 0),
  protein_g REAL NOT NULL,
  carbs_g REAL NOT NULL,
  fat_g REAL NOT NULL,
  logged_at DATETIME NOT NULL,
  FOREIGN KEY(restaurant_id) REFERENCES restaurants(id),
  FOREIGN KEY(menu_item_id) REFERENCES restaurant_menu_items(id)
);

CREATE TABLE IF NOT EXISTS restaurant_usage (
  restaurant_id TEXT PRIMARY KEY,
  visit_count INTEGER NOT NULL DEFAULT 0,
  last_visited_at DATETIME,
  FOREIGN KEY(restaurant_id) REFERENCES restaurants(id)
);
`,
	},
	{
		version: 8,
		name:    "micronutrients",
		sql: `
CREATE TABLE IF NOT EXISTS nutrient_settings (
  nutrient_key TEXT PRIMARY KEY,
  display_name TEXT NOT NULL,
  unit TEXT NOT NULL,
  daily_target REAL NOT NULL CHECK(daily_target > 0),
  tracked INTEGER NOT NULL DEFAULT 1
);

CREATE TABLE IF NOT EXISTS food_item_nutrients (
  id TEXT PRIMARY KEY,
  food_id TEXT NOT NULL,
  nutrient_key TEXT NOT NULL,
  amount_per_serving REAL NOT NULL CHECK(amount_per_serving >= 0),
  UNIQUE(food_id, nutrient_key),
  FOREIGN KEY(food_id) REFERENCES foods(id)
);

CREATE TABLE IF NOT EXISTS daily_nutrient_intake (
  id TEXT PRIMARY KEY,
  entry_date TEXT NOT NULL,
  nutrient_key TEXT NOT NULL,
  amount REAL NOT NULL CHECK(amount >= 0),
  percent_of_target REAL NOT NULL,
  status TEXT NOT NULL CHECK(status IN ('deficient', 'low', 'adequate', 'optimal', 'high', 'excessive')),
  UNIQUE(entry_date, nutrient_key)
);

CREATE TABLE IF NOT EXISTS nutrient_contributors (
  id TEXT PRIMARY KEY,
  entry_date TEXT NOT NULL,
  nutrient_key TEXT NOT NULL,
  food_id TEXT NOT NULL,
  food_name TEXT NOT NULL,
  amount REAL NOT NULL CHECK(amount >= 0),
  percent_of_daily REAL NOT NULL CHECK(percent_of_daily >= 0)
);

CREATE INDEX IF NOT EXISTS idx_nutrient_contributors_date ON nutrient_contributors(entry_date);
`,
	},
	{
		version: 9,
		name:    "photos_and_health_sync",
		sql: `
CREATE TABLE IF NOT EXISTS progress_photos (
  id TEXT PRIMARY KEY,
  taken_at DATETIME NOT NULL,
  category TEXT NOT NULL CHECK(category IN ('front', 'side', 'back')),
  weight_kg REAL NOT NULL CHECK(weight_kg > 0),
  file_path TEXT NOT NULL,
  thumbnail_path TEXT NOT NULL DEFAULT '',
  is_private INTEGER NOT NULL DEFAULT 1
);

CREATE TABLE IF NOT EXISTS photo_comparisons (
  id TEXT PRIMARY KEY,
  before_photo_id TEXT NOT NULL,
  after_photo_id TEXT NOT NULL,
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
  FOREIGN KEY(before_photo_id) REFERENCES progress_photos(id),
  FOREIGN KEY(after_photo_id) REFERENCES progress_photos(id)
);

CREATE TABLE IF NOT EXISTS health_sync_log (
  id TEXT PRIMARY KEY,
  platform TEXT NOT NULL,
  synced_at DATETIME NOT NULL,
  records_synced INTEGER NOT NULL DEFAULT 0,
  status TEXT NOT NULL CHECK(status IN ('ok', 'error')),
  error_message TEXT
);
`,
	},
}

type bundledFood struct {
	id          string
	name        string
	servingSize float64
	servingUnit string
	calories    int
	proteinG    float64
	carbsG      float64
	fatG        float64
	fiberG      float64
	sugarG      float64
	sodiumMg    float64
}

// The built-in food catalog. These rows are reference data: the clear engine
// preserves them and only resets their usage counters.
var bundledFoods = []bundledFood{
	{"food-oatmeal", "Rolled Oats", 40, "g", 150, 5.0, 27.0, 2.5, 4.0, 0.5, 0},
	{"food-eggs", "Large Egg", 1, "egg", 72, 6.3, 0.4, 4.8, 0, 0.2, 71},
	{"food-greek-yogurt", "Greek Yogurt, Plain", 170, "g", 100, 17.0, 6.0, 0.7, 0, 4.0, 61},
	{"food-banana", "Banana", 1, "medium", 105, 1.3, 27.0, 0.4, 3.1, 14.4, 1},
	{"food-blueberries", "Blueberries", 100, "g", 57, 0.7, 14.5, 0.3, 2.4, 10.0, 1},
	{"food-whole-wheat-bread", "Whole Wheat Bread", 1, "slice", 81, 4.0, 13.8, 1.1, 1.9, 1.4, 144},
	{"food-peanut-butter", "Peanut Butter", 32, "g", 188, 8.0, 6.3, 16.1, 1.9, 2.1, 136},
	{"food-chicken-breast", "Chicken Breast, Grilled", 120, "g", 198, 37.2, 0, 4.3, 0, 0, 89},
	{"food-salmon", "Atlantic Salmon", 150, "g", 311, 33.9, 0, 18.5, 0, 0, 88},
	{"food-brown-rice", "Brown Rice, Cooked", 195, "g", 216, 5.0, 44.8, 1.8, 3.5, 0.7, 10},
	{"food-quinoa", "Quinoa, Cooked", 185, "g", 222, 8.1, 39.4, 3.6, 5.2, 1.6, 13},
	{"food-sweet-potato", "Sweet Potato, Baked", 150, "g", 135, 3.0, 31.0, 0.2, 5.0, 9.7, 54},
	{"food-broccoli", "Broccoli, Steamed", 150, "g", 52, 3.6, 10.5, 0.6, 4.8, 2.1, 48},
	{"food-spinach", "Spinach, Raw", 85, "g", 20, 2.4, 3.1, 0.3, 1.9, 0.4, 67},
	{"food-mixed-salad", "Mixed Green Salad", 120, "g", 25, 1.6, 4.6, 0.3, 2.0, 1.8, 22},
	{"food-avocado", "Avocado", 0.5, "fruit", 160, 2.0, 8.5, 14.7, 6.7, 0.7, 7},
	{"food-olive-oil", "Olive Oil", 14, "g", 119, 0, 0, 13.5, 0, 0, 0},
	{"food-almonds", "Almonds", 28, "g", 164, 6.0, 6.1, 14.2, 3.5, 1.2, 0},
	{"food-cottage-cheese", "Cottage Cheese, 2%", 113, "g", 92, 12.0, 4.5, 2.5, 0, 4.1, 348},
	{"food-apple", "Apple", 1, "medium", 95, 0.5, 25.1, 0.3, 4.4, 18.9, 2},
	{"food-protein-shake", "Whey Protein Shake", 1, "scoop", 120, 24.0, 3.0, 1.5, 0, 2.0, 130},
	{"food-pasta", "Whole Wheat Pasta, Cooked", 140, "g", 174, 7.5, 37.2, 0.8, 6.3, 1.1, 4},
	{"food-tofu", "Firm Tofu", 126, "g", 181, 21.8, 3.5, 11.0, 2.9, 0.8, 18},
	{"food-dark-chocolate", "Dark Chocolate, 70%", 28, "g", 170, 2.2, 13.0, 12.0, 3.1, 6.8, 6},
}

type bundledRestaurant struct {
	id      string
	name    string
	cuisine string
	items   []bundledMenuItem
}

type bundledMenuItem struct {
	id       string
	name     string
	calories int
	proteinG float64
	carbsG   float64
	fatG     float64
}

var bundledRestaurants = []bundledRestaurant{
	{"rest-green-bowl", "Green Bowl", "salads", []bundledMenuItem{
		{"menu-green-bowl-harvest", "Harvest Bowl", 705, 29.0, 87.0, 28.0},
		{"menu-green-bowl-caesar", "Kale Caesar", 430, 21.0, 24.0, 29.0},
		{"menu-green-bowl-protein", "Protein Plate", 560, 42.0, 41.0, 24.0},
	}},
	{"rest-casa-taco", "Casa Taco", "mexican", []bundledMenuItem{
		{"menu-casa-taco-bowl", "Chicken Burrito Bowl", 790, 43.0, 81.0, 31.0},
		{"menu-casa-taco-trio", "Street Taco Trio", 540, 27.0, 51.0, 24.0},
	}},
	{"rest-noodle-house", "Noodle House", "asian", []bundledMenuItem{
		{"menu-noodle-house-ramen", "Shoyu Ramen", 820, 34.0, 98.0, 30.0},
		{"menu-noodle-house-stirfry", "Veggie Stir Fry", 470, 16.0, 62.0, 17.0},
	}},
	{"rest-brick-oven", "Brick Oven Pizza", "italian", []bundledMenuItem{
		{"menu-brick-oven-margherita", "Margherita Slice", 270, 11.0, 33.0, 10.0},
		{"menu-brick-oven-veggie", "Veggie Slice", 240, 10.0, 32.0, 8.0},
	}},
	{"rest-sunrise-diner", "Sunrise Diner", "american", []bundledMenuItem{
		{"menu-sunrise-diner-omelette", "Veggie Omelette", 510, 28.0, 9.0, 39.0},
		{"menu-sunrise-diner-pancakes", "Buttermilk Pancakes", 680, 14.0, 98.0, 24.0},
	}},
	{"rest-poke-bay", "Poke Bay", "hawaiian", []bundledMenuItem{
		{"menu-poke-bay-classic", "Classic Ahi Bowl", 620, 36.0, 72.0, 19.0},
		{"menu-poke-bay-salmon", "Spicy Salmon Bowl", 650, 33.0, 70.0, 24.0},
	}},
}

func ApplyMigrations(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`); err != nil {
		return fmt.Errorf("ensure schema_migrations table: %w", err)
	}

	for _, m := range migrations {
		var exists int
		err := db.QueryRow(`SELECT 1 FROM schema_migrations WHERE version = ?`, m.version).Scan(&exists)
		if err == nil {
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("check migration version %d: %w", m.version, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("begin migration tx: %w", err)
		}

		if _, err := tx.Exec(m.sql); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply migration version %d (%s): %w", m.version, m.name, err)
		}
		if _, err := tx.Exec(`INSERT INTO schema_migrations(version, name) VALUES(?, ?)`, m.version, m.name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration version %d: %w", m.version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration version %d: %w", m.version, err)
		}
	}

	return seedBundledCatalogs(db)
}

func seedBundledCatalogs(db *sql.DB) error {
	for _, f := range bundledFoods {
		if _, err := db.Exec(`
INSERT OR IGNORE INTO foods(id, name, serving_size, serving_unit, calories, protein_g, carbs_g, fat_g, fiber_g, sugar_g, sodium_mg, source)
VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 'bundled')
`, f.id, f.name, f.servingSize, f.servingUnit, f.calories, f.proteinG, f.carbsG, f.fatG, f.fiberG, f.sugarG, f.sodiumMg); err != nil {
			return fmt.Errorf("seed bundled food %s: %w", f.id, err)
		}
	}

	for _, r := range bundledRestaurants {
		if _, err := db.Exec(`
INSERT OR IGNORE INTO restaurants(id, name, cuisine, source) VALUES(?, ?, ?, 'bundled')
`, r.id, r.name, r.cuisine); err != nil {
			return fmt.Errorf("seed bundled restaurant %s: %w", r.id, err)
		}
		for _, item := range r.items {
			if _, err := db.Exec(`
INSERT OR IGNORE INTO restaurant_menu_items(id, restaurant_id, name, calories, protein_g, carbs_g, fat_g, source)
VALUES(?, ?, ?, ?, ?, ?, ?, 'bundled')
`, item.id, r.id, item.name, item.calories, item.proteinG, item.carbsG, item.fatG); err != nil {
				return fmt.Errorf("seed bundled menu item %s: %w", item.id, err)
			}
		}
	}

	return nil
}
