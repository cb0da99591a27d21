package cmd

import (
	"fmt"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/chrisdamba/foodcatalogsim/internal/cloudwriter"
	"github.com/chrisdamba/foodcatalogsim/internal/export"
	"github.com/chrisdamba/foodcatalogsim/internal/repair"
	"github.com/chrisdamba/foodcatalogsim/internal/report"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the active catalog as a CSV or Parquet snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		factory, err := cloudwriter.New(a.cfg.Export)
		if err != nil {
			return err
		}
		exporter, err := export.NewExporter(factory, a.cfg.Export.Format, export.WithLogger(a.logger))
		if err != nil {
			return err
		}

		bar := progressbar.NewOptions(-1,
			progressbar.OptionSetDescription("loading catalog"),
			progressbar.OptionSetWriter(cmd.ErrOrStderr()),
			progressbar.OptionSpinnerType(14),
			progressbar.OptionClearOnFinish(),
		)
		restaurants := a.store.LoadActiveRestaurants(ctx)
		bar.Add(len(restaurants))
		products := a.store.LoadActiveProducts(ctx)
		bar.Add(len(products))
		bar.Describe("writing snapshot")

		summary, err := exporter.Export(ctx, restaurants, products)
		bar.Finish()
		if err != nil {
			return err
		}
		return printJSON(cmd, summary)
	},
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Analyze a CSV snapshot and print a report",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}
		r, err := report.Build(cfg.Export.Dir, time.Now())
		if err != nil {
			return err
		}
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return printJSON(cmd, r)
		}
		r.Print(cmd.OutOrStdout())
		return nil
	},
}

var repairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Replace promotional category labels in a CSV snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		stats, err := repair.New(cfg.Export.Dir, logger).Run()
		if err != nil {
			return err
		}
		for _, change := range stats.Changes {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %q -> %q\n", change.Restaurant, change.From, change.To)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "files processed: %d, categories fixed: %d, files removed: %d\n",
			stats.FilesProcessed, stats.CategoriesFixed, stats.FilesRemoved)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd, reportCmd, repairCmd)

	for _, c := range []*cobra.Command{exportCmd, reportCmd, repairCmd} {
		c.Flags().String("dir", "data", "Snapshot directory")
	}
	exportCmd.Flags().String("format", "csv", "Snapshot format (csv, parquet)")
	exportCmd.Flags().String("destination", "local", "Snapshot destination (local, s3)")
	reportCmd.Flags().Bool("json", false, "Print the report as JSON")

	exportCmd.PreRunE = bindSnapshotFlags
	reportCmd.PreRunE = bindSnapshotFlags
	repairCmd.PreRunE = bindSnapshotFlags
}

// bindSnapshotFlags binds the flags of the running snapshot command; the three
// commands share viper keys, so binding happens per invocation.
func bindSnapshotFlags(cmd *cobra.Command, args []string) error {
	if err := viper.BindPFlag("export.dir", cmd.Flags().Lookup("dir")); err != nil {
		return err
	}
	if f := cmd.Flags().Lookup("format"); f != nil {
		if err := viper.BindPFlag("export.format", f); err != nil {
			return err
		}
	}
	if f := cmd.Flags().Lookup("destination"); f != nil {
		return viper.BindPFlag("export.destination", f)
	}
	return nil
}
