package nutriseed

import (
	"database/sql"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var statsTables = []string{
	"user_profile",
	"app_settings",
	"goals",
	"weight_entries",
	"metabolism_entries",
	"weekly_reflections",
	"foods",
	"food_log_entries",
	"quick_add_entries",
	"water_entries",
	"favorite_foods",
	"fasting_sessions",
	"macro_cycle_overrides",
	"planned_meals",
	"restaurants",
	"restaurant_menu_items",
	"restaurant_log_entries",
	"nutrient_settings",
	"food_item_nutrients",
	"daily_nutrient_intake",
	"nutrient_contributors",
	"progress_photos",
	"photo_comparisons",
	"health_sync_log",
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-table row counts for the local database",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(path string, sqldb *sql.DB) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TABLE\tROWS")
			for _, table := range statsTables {
				var count int
				if err := sqldb.QueryRow(`SELECT COUNT(*) FROM ` + table).Scan(&count); err != nil {
					fmt.Fprintf(w, "%s\t-\n", table)
					continue
				}
				fmt.Fprintf(w, "%s\t%d\n", table, count)
			}
			return w.Flush()
		})
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
