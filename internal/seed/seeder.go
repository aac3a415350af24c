package seed

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Options controls a seed run. The zero value is not useful; start from
// DefaultOptions and override.
type Options struct {
	ClearExisting    bool
	IncludeEdgeCases bool
	MonthsOfHistory  int
	Seed             int64
	PhotosDir        string
	SkipPhotos       bool
	Fetcher          PhotoFetcher
}

func DefaultOptions() Options {
	return Options{
		ClearExisting:   true,
		MonthsOfHistory: 6,
	}
}

// Result aggregates a full run: per-step row counts for steps that
// succeeded, collected step errors, and warnings from the clear phase.
type Result struct {
	RunID    string
	Success  bool
	Duration time.Duration
	Counts   map[string]int
	Errors   []string
	Warnings []string
}

// Seeder threads the storage handle, RNG, options, and cross-step outputs
// (currently just the active goal id) through the pipeline.
type Seeder struct {
	db           DBTX
	rng          *RNG
	opts         Options
	obs          Observer
	historyDays  int
	activeGoalID string
	warnings     []string
}

type step struct {
	name     string
	estimate int
	run      func(*Seeder) (int, error)
}

// The pipeline order is load-bearing: weekly reflections need the active
// goal id from the goals step, and nutrient contributors need food log
// entries to exist. Steps run strictly sequentially.
var pipeline = []step{
	{"User Profile", 1, (*Seeder).seedUserProfile},
	{"App Settings", 10, (*Seeder).seedAppSettings},
	{"Goals", 2, (*Seeder).seedGoals},
	{"Weight Entries", 155, (*Seeder).seedWeightEntries},
	{"Metabolism Entries", 155, (*Seeder).seedMetabolismEntries},
	{"Weekly Reflections", 26, (*Seeder).seedWeeklyReflections},
	{"Food Log Entries", 600, (*Seeder).seedFoodLogEntries},
	{"Quick Add Entries", 40, (*Seeder).seedQuickAddEntries},
	{"Water Entries", 800, (*Seeder).seedWaterEntries},
	{"Favorites", 7, (*Seeder).seedFavorites},
	{"Fasting Config", 1, (*Seeder).seedFastingConfig},
	{"Fasting Sessions", 78, (*Seeder).seedFastingSessions},
	{"Macro Cycle Config", 1, (*Seeder).seedMacroCycleConfig},
	{"Macro Cycle Overrides", 13, (*Seeder).seedMacroCycleOverrides},
	{"Meal Plan Settings", 1, (*Seeder).seedMealPlanSettings},
	{"Planned Meals", 50, (*Seeder).seedPlannedMeals},
	{"Restaurant Logs", 22, (*Seeder).seedRestaurantLogs},
	{"Restaurant Usage", 6, (*Seeder).seedRestaurantUsage},
	{"Nutrient Settings", 12, (*Seeder).seedNutrientSettings},
	{"Food Item Nutrients", 55, (*Seeder).seedFoodItemNutrients},
	{"Daily Nutrient Intake", 1900, (*Seeder).seedDailyNutrientIntake},
	{"Nutrient Contributors", 3000, (*Seeder).seedNutrientContributors},
	{"Progress Photos", 12, (*Seeder).seedProgressPhotos},
	{"Photo Comparisons", 4, (*Seeder).seedPhotoComparisons},
	{"Health Sync Log", 11, (*Seeder).seedHealthSyncLog},
}

// Run executes the full seeding pipeline: an optional clear pass, then
// every generator step in order. A failing step is recorded and skipped
// over; the rest of the pipeline still runs.
func Run(db DBTX, opts Options, obs Observer) (result Result) {
	if obs == nil {
		obs = nopObserver{}
	}
	if opts.MonthsOfHistory <= 0 {
		opts.MonthsOfHistory = 6
	}
	if opts.MonthsOfHistory > 24 {
		opts.MonthsOfHistory = 24
	}

	started := time.Now()
	result = Result{
		RunID:  uuid.NewString(),
		Counts: map[string]int{},
	}

	defer func() {
		if r := recover(); r != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Fatal error: %v", r))
		}
		result.Success = len(result.Errors) == 0
		result.Duration = time.Since(started)
	}()

	s := &Seeder{
		db:          db,
		rng:         NewRNG(opts.Seed),
		opts:        opts,
		obs:         obs,
		historyDays: opts.MonthsOfHistory * 30,
	}

	if opts.ClearExisting {
		obs.OnProgress(Progress{Phase: PhaseClearing, Step: "Clearing", Total: len(pipeline), StartedAt: started})
		s.warnings = append(s.warnings, Clear(db, opts.PhotosDir, obs)...)
	}

	for i, st := range pipeline {
		obs.OnProgress(Progress{
			Step:      st.name,
			Index:     i + 1,
			Total:     len(pipeline),
			Phase:     PhaseSeeding,
			StartedAt: started,
		})
		rows, err := st.run(s)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", st.name, err))
			continue
		}
		result.Counts[st.name] = rows
		obs.OnStepDone(st.name, rows)
	}

	result.Warnings = append(result.Warnings, s.warnings...)
	obs.OnProgress(Progress{Phase: PhaseComplete, Step: "Complete", Index: len(pipeline), Total: len(pipeline), StartedAt: started})
	return result
}

// StepEstimates exposes the per-step size estimates for progress reporting.
func StepEstimates() map[string]int {
	out := make(map[string]int, len(pipeline))
	for _, st := range pipeline {
		out[st.name] = st.estimate
	}
	return out
}

func (s *Seeder) warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	s.warnings = append(s.warnings, msg)
	s.obs.OnWarning(msg, nil)
}
