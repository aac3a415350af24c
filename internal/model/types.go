package model

import "time"

type Food struct {
	ID          string
	Name        string
	Brand       string
	ServingSize float64
	ServingUnit string
	Calories    int
	ProteinG    float64
	CarbsG      float64
	FatG        float64
	FiberG      float64
	SugarG      float64
	SodiumMg    float64
	Source      string
	UsageCount  int
	LastUsedAt  *time.Time
}

type Goal struct {
	ID             string
	GoalType       string
	TargetWeightKg float64
	WeeklyRateKg   float64
	TargetCalories int
	ProteinG       float64
	CarbsG         float64
	FatG           float64
	StartDate      string
	IsActive       bool
}

type FoodLogEntry struct {
	ID        string
	FoodID    string
	FoodName  string
	MealType  string
	EntryDate string
	LoggedAt  time.Time
	Servings  float64
	Calories  int
	ProteinG  float64
	CarbsG    float64
	FatG      float64
	Notes     string
}

type Restaurant struct {
	ID      string
	Name    string
	Cuisine string
	Source  string
}

type MenuItem struct {
	ID           string
	RestaurantID string
	Name         string
	Calories     int
	ProteinG     float64
	CarbsG       float64
	FatG         float64
	Source       string
}

type NutrientSetting struct {
	Key         string
	DisplayName string
	Unit        string
	DailyTarget float64
	Tracked     bool
}

type ProgressPhoto struct {
	ID            string
	TakenAt       time.Time
	Category      string
	WeightKg      float64
	FilePath      string
	ThumbnailPath string
	IsPrivate     bool
}
