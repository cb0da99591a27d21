package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Deactivate restaurants not refreshed within --days and their products",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		result := a.coordinator().Cleanup(cmd.Context(), a.cfg.Cleanup.DaysOld)
		return printJSON(cmd, result)
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show active catalog counts per category",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		stats, err := a.coordinator().Statistics(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(cmd, stats)
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the restaurants and products tables if they do not exist",
	RunE: func(cmd *cobra.Command, args []string) error {
		// newApp already applies the schema
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		fmt.Fprintf(cmd.OutOrStdout(), "schema is up to date (%s)\n", a.db.Dialect)
		if verbose, _ := cmd.Flags().GetBool("print"); verbose {
			for _, stmt := range a.db.Dialect.SchemaStatements() {
				fmt.Fprintln(cmd.OutOrStdout(), stmt+";")
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cleanupCmd, statsCmd, migrateCmd)

	cleanupCmd.Flags().Int("days", 30, "Deactivate restaurants last updated more than this many days ago")
	viper.BindPFlag("cleanup.days_old", cleanupCmd.Flags().Lookup("days"))

	migrateCmd.Flags().Bool("print", false, "Print the DDL statements for the configured dialect")
}
