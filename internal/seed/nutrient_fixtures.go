package seed

// nutrientPersona drives the daily-intake simulation for one nutrient:
// amounts come from a clamped Gaussian around meanPercent of the target.
type nutrientPersona struct {
	key           string
	displayName   string
	unit          string
	target        float64
	meanPercent   float64
	stddevPercent float64
}

// The canonical nutrient fixture source. Both the daily-intake simulation
// and the contributor breakdown derive from this table.
var nutrientPersonas = []nutrientPersona{
	{"vitamin_c", "Vitamin C", "mg", 90, 110, 35},
	{"vitamin_d", "Vitamin D", "mcg", 20, 55, 25},
	{"vitamin_a", "Vitamin A", "mcg", 900, 85, 30},
	{"vitamin_b12", "Vitamin B12", "mcg", 2.4, 130, 40},
	{"folate", "Folate", "mcg", 400, 90, 25},
	{"iron", "Iron", "mg", 8, 95, 30},
	{"calcium", "Calcium", "mg", 1000, 80, 25},
	{"potassium", "Potassium", "mg", 3400, 70, 20},
	{"magnesium", "Magnesium", "mg", 420, 75, 25},
	{"zinc", "Zinc", "mg", 11, 100, 30},
	{"fiber", "Fiber", "g", 28, 65, 20},
	{"sodium", "Sodium", "mg", 2300, 125, 30},
}

// Per-food nutrient contribution profiles: which bundled foods plausibly
// supply which nutrients, as relative weights. Foods absent from a
// nutrient's profile never show up as contributors for it.
var foodNutrientProfiles = map[string]map[string]float64{
	"vitamin_c": {
		"food-broccoli":     3.0,
		"food-sweet-potato": 1.5,
		"food-blueberries":  1.2,
		"food-apple":        0.8,
		"food-spinach":      1.0,
	},
	"vitamin_d": {
		"food-salmon":        4.0,
		"food-eggs":          1.2,
		"food-protein-shake": 0.8,
	},
	"vitamin_a": {
		"food-sweet-potato": 4.0,
		"food-spinach":      2.5,
		"food-eggs":         1.0,
		"food-broccoli":     0.8,
	},
	"vitamin_b12": {
		"food-salmon":         3.0,
		"food-eggs":           1.5,
		"food-greek-yogurt":   1.5,
		"food-cottage-cheese": 1.2,
	},
	"folate": {
		"food-spinach":     3.0,
		"food-broccoli":    2.0,
		"food-quinoa":      1.2,
		"food-avocado":     1.2,
		"food-mixed-salad": 1.0,
	},
	"iron": {
		"food-spinach":        2.5,
		"food-oatmeal":        2.0,
		"food-tofu":           2.0,
		"food-quinoa":         1.5,
		"food-dark-chocolate": 1.2,
	},
	"calcium": {
		"food-greek-yogurt":   3.0,
		"food-cottage-cheese": 2.5,
		"food-tofu":           2.0,
		"food-almonds":        1.0,
		"food-spinach":        0.8,
	},
	"potassium": {
		"food-banana":       2.5,
		"food-sweet-potato": 2.0,
		"food-salmon":       1.5,
		"food-avocado":      1.5,
		"food-spinach":      1.2,
	},
	"magnesium": {
		"food-almonds":        2.5,
		"food-spinach":        2.0,
		"food-quinoa":         1.5,
		"food-dark-chocolate": 1.5,
		"food-brown-rice":     1.2,
	},
	"zinc": {
		"food-chicken-breast": 2.0,
		"food-oatmeal":        1.5,
		"food-tofu":           1.5,
		"food-almonds":        1.0,
	},
	"fiber": {
		"food-oatmeal":           2.5,
		"food-avocado":           2.0,
		"food-broccoli":          1.8,
		"food-pasta":             1.5,
		"food-sweet-potato":      1.5,
		"food-whole-wheat-bread": 1.0,
	},
	"sodium": {
		"food-cottage-cheese":    2.5,
		"food-whole-wheat-bread": 1.5,
		"food-protein-shake":     1.2,
		"food-peanut-butter":     1.2,
	},
}

func personaByKey(key string) (nutrientPersona, bool) {
	for _, p := range nutrientPersonas {
		if p.key == key {
			return p, true
		}
	}
	return nutrientPersona{}, false
}

// intakeStatus classifies a percent-of-target value with fixed thresholds.
func intakeStatus(percent float64) string {
	switch {
	case percent < 50:
		return "deficient"
	case percent < 75:
		return "low"
	case percent < 100:
		return "adequate"
	case percent <= 150:
		return "optimal"
	case percent <= 200:
		return "high"
	default:
		return "excessive"
	}
}
