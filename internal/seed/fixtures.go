package seed

import "strings"

type templateItem struct {
	foodID   string
	servings float64
}

type mealTemplate struct {
	name  string
	items []templateItem
}

// Meal templates are the building blocks every generated day's food log is
// assembled from. Food ids must exist in the bundled catalog.
var mealTemplates = map[string][]mealTemplate{
	"breakfast": {
		{"oatmeal and berries", []templateItem{
			{"food-oatmeal", 1.5},
			{"food-blueberries", 1},
			{"food-banana", 0.5},
		}},
		{"eggs on toast", []templateItem{
			{"food-eggs", 2},
			{"food-whole-wheat-bread", 2},
			{"food-avocado", 0.5},
		}},
		{"yogurt bowl", []templateItem{
			{"food-greek-yogurt", 1},
			{"food-blueberries", 0.75},
			{"food-almonds", 0.5},
		}},
		{"protein shake breakfast", []templateItem{
			{"food-protein-shake", 1},
			{"food-banana", 1},
			{"food-peanut-butter", 0.5},
		}},
	},
	"lunch": {
		{"chicken and rice", []templateItem{
			{"food-chicken-breast", 1},
			{"food-brown-rice", 1},
			{"food-broccoli", 1},
		}},
		{"big salad", []templateItem{
			{"food-mixed-salad", 1.5},
			{"food-chicken-breast", 0.75},
			{"food-olive-oil", 1},
		}},
		{"quinoa bowl", []templateItem{
			{"food-quinoa", 1},
			{"food-tofu", 1},
			{"food-spinach", 1},
		}},
		{"cottage cheese plate", []templateItem{
			{"food-cottage-cheese", 1.5},
			{"food-apple", 1},
			{"food-almonds", 0.5},
		}},
	},
	"dinner": {
		{"salmon dinner", []templateItem{
			{"food-salmon", 1},
			{"food-sweet-potato", 1},
			{"food-broccoli", 1},
		}},
		{"pasta night", []templateItem{
			{"food-pasta", 1.5},
			{"food-chicken-breast", 0.75},
			{"food-spinach", 1},
		}},
		{"tofu stir fry", []templateItem{
			{"food-tofu", 1},
			{"food-brown-rice", 1},
			{"food-broccoli", 1.5},
		}},
	},
	"snack": {
		{"fruit and nuts", []templateItem{
			{"food-apple", 1},
			{"food-almonds", 1},
		}},
		{"chocolate square", []templateItem{
			{"food-dark-chocolate", 1},
		}},
		{"yogurt snack", []templateItem{
			{"food-greek-yogurt", 0.5},
			{"food-banana", 0.5},
		}},
		{"protein shake", []templateItem{
			{"food-protein-shake", 1},
		}},
	},
}

// A plausible favorites subset; all ids exist in the bundled catalog.
var favoriteFoodIDs = []string{
	"food-oatmeal",
	"food-chicken-breast",
	"food-greek-yogurt",
	"food-banana",
	"food-salmon",
	"food-protein-shake",
	"food-avocado",
}

// Edge-case corpus, consumed only when the edge-case flag is on and injected
// into a small bounded subset of rows.
var edgeCaseStrings = struct {
	unicode    []string
	emoji      []string
	longText   string
	whitespace []string
}{
	unicode: []string{
		"Crème brûlée à la française",
		"蕎麦とわさび",
		"Smörgåsbord med köttbullar",
		"Żurek śląski",
	},
	emoji: []string{
		"🍕🍕🍕 pizza night 🎉",
		"post-workout 💪🥤",
		"🥗 trying to be good today 🙃",
	},
	longText: strings.Repeat("This note is intentionally very long to stress the UI layer. ", 10),
	whitespace: []string{
		"  leading spaces",
		"trailing spaces  ",
		"\ttab\tseparated\t",
	},
}

var edgeCaseServings = []float64{0.01, 0.33, 15, 99.9}

var edgeCaseWeightsKg = []float64{45.0, 199.9, 47.3, 185.5}

// Boundary dates: year boundary, leap day, month end.
var edgeCaseDates = []string{
	"2023-12-31",
	"2024-01-01",
	"2024-02-29",
	"2024-04-30",
}
