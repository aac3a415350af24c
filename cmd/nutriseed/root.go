package nutriseed

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "nutriseed",
	Short: "nutriseed populates a nutrilog database with synthetic dev data",
	Long:  "nutriseed is the development tool that seeds and clears a local nutrilog SQLite database with internally consistent, statistically realistic fake user history.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
}
