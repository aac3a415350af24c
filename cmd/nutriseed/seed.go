package nutriseed

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/nutrilog/devseed/internal/app"
	"github.com/nutrilog/devseed/internal/seed"
	"github.com/spf13/cobra"
)

var (
	seedMonths     int
	seedEdgeCases  bool
	seedNoClear    bool
	seedVerbose    bool
	seedSeedValue  int64
	seedSkipPhotos bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the database with synthetic user history",
	RunE: func(cmd *cobra.Command, args []string) error {
		if seedMonths < 1 || seedMonths > 24 {
			return fmt.Errorf("--months must be between 1 and 24, got %d", seedMonths)
		}
		return withDB(func(path string, sqldb *sql.DB) error {
			obs, err := seed.NewLogObserver(seedVerbose)
			if err != nil {
				return fmt.Errorf("build logger: %w", err)
			}
			defer obs.Sync()

			opts := seed.DefaultOptions()
			opts.MonthsOfHistory = seedMonths
			opts.IncludeEdgeCases = seedEdgeCases
			opts.ClearExisting = !seedNoClear
			opts.Seed = seedSeedValue
			opts.SkipPhotos = seedSkipPhotos
			opts.PhotosDir = app.PhotosDir(path)

			result := seed.Run(sqldb, opts, obs)

			out := cmd.OutOrStdout()
			var total int
			for _, n := range result.Counts {
				total += n
			}
			fmt.Fprintf(out, "Seeded %d rows across %d steps in %s (run %s)\n",
				total, len(result.Counts), result.Duration.Round(time.Millisecond), result.RunID)
			for _, w := range result.Warnings {
				fmt.Fprintf(out, "warning: %s\n", w)
			}
			if !result.Success {
				for _, e := range result.Errors {
					fmt.Fprintf(out, "error: %s\n", e)
				}
				return fmt.Errorf("seeding finished with %d error(s)", len(result.Errors))
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().IntVar(&seedMonths, "months", 6, "Months of history to generate (1-24)")
	seedCmd.Flags().BoolVar(&seedEdgeCases, "edge-cases", false, "Inject edge-case strings, servings, and dates")
	seedCmd.Flags().BoolVar(&seedNoClear, "no-clear", false, "Skip clearing existing data before seeding")
	seedCmd.Flags().BoolVar(&seedVerbose, "verbose", false, "Verbose progress logging")
	seedCmd.Flags().Int64Var(&seedSeedValue, "seed", 0, "RNG seed for reproducible datasets (0 = random)")
	seedCmd.Flags().BoolVar(&seedSkipPhotos, "skip-photos", false, "Skip photo downloads; write placeholder paths")
}
