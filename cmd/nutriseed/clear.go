package nutriseed

import (
	"database/sql"
	"fmt"

	"github.com/nutrilog/devseed/internal/app"
	"github.com/nutrilog/devseed/internal/seed"
	"github.com/spf13/cobra"
)

var clearVerbose bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all generated user data, preserving bundled catalogs",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(path string, sqldb *sql.DB) error {
			obs, err := seed.NewLogObserver(clearVerbose)
			if err != nil {
				return fmt.Errorf("build logger: %w", err)
			}
			defer obs.Sync()

			warnings := seed.Clear(sqldb, app.PhotosDir(path), obs)
			out := cmd.OutOrStdout()
			for _, w := range warnings {
				fmt.Fprintf(out, "warning: %s\n", w)
			}
			fmt.Fprintln(out, "Cleared generated data")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)
	clearCmd.Flags().BoolVar(&clearVerbose, "verbose", false, "Verbose logging")
}
