package cmd

import (
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/chrisdamba/foodcatalogsim/internal/extractor"
	"github.com/chrisdamba/foodcatalogsim/internal/models"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Generate restaurants and products and upsert them into the store",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		categories := a.cfg.Categories
		if single, _ := cmd.Flags().GetString("category"); single != "" {
			categories = []string{single}
		}

		bar := progressbar.NewOptions(len(categories),
			progressbar.OptionSetDescription("extracting"),
			progressbar.OptionSetWriter(cmd.ErrOrStderr()),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
		c := a.coordinator(extractor.WithCategoryCallback(func(category models.Category) {
			bar.Describe(category.String())
			bar.Add(1)
		}))

		if restaurantsOnly, _ := cmd.Flags().GetBool("restaurants-only"); restaurantsOnly {
			result, err := c.ExtractRestaurants(ctx, categories, a.cfg.RestaurantsPerCategory)
			bar.Finish()
			if printErr := printJSON(cmd, result); printErr != nil {
				return printErr
			}
			return err
		}

		result, err := c.Run(ctx, categories, a.cfg.RestaurantsPerCategory, a.cfg.ProductsPerRestaurant)
		bar.Finish()
		if printErr := printJSON(cmd, result); printErr != nil {
			return printErr
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().Int64("seed", 0, "Random seed (0 seeds from the clock)")
	extractCmd.Flags().StringSlice("categories", nil, "Categories to extract (aliases accepted)")
	extractCmd.Flags().String("category", "", "Extract a single category, overriding --categories")
	extractCmd.Flags().Int("restaurants", 50, "Restaurants per category")
	extractCmd.Flags().Int("products", 10, "Products per restaurant")
	extractCmd.Flags().String("id-resolution", models.IDResolutionDirect, "How restaurant ids are obtained before product generation (direct, reload)")
	extractCmd.Flags().Bool("restaurants-only", false, "Skip product generation")
	extractCmd.Flags().String("events", "none", "Event destination (none, console, file, kafka)")

	viper.BindPFlag("seed", extractCmd.Flags().Lookup("seed"))
	viper.BindPFlag("categories", extractCmd.Flags().Lookup("categories"))
	viper.BindPFlag("restaurants_per_category", extractCmd.Flags().Lookup("restaurants"))
	viper.BindPFlag("products_per_restaurant", extractCmd.Flags().Lookup("products"))
	viper.BindPFlag("id_resolution", extractCmd.Flags().Lookup("id-resolution"))
	viper.BindPFlag("events.destination", extractCmd.Flags().Lookup("events"))
}
