package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chrisdamba/foodcatalogsim/internal/catalog"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Inspect the category tables",
}

var categoriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the supported categories",
	Run: func(cmd *cobra.Command, args []string) {
		c := catalog.Default()
		for _, category := range c.Supported() {
			price := c.PriceRange(category)
			fmt.Fprintf(cmd.OutOrStdout(), "%-12s R$ %.2f - %.2f  %d restaurant names, %d products\n",
				category, price.Min, price.Max, len(c.RestaurantNames(category)), len(c.Products(category)))
		}
	},
}

var categoriesNormalizeCmd = &cobra.Command{
	Use:   "normalize <name>...",
	Short: "Show the canonical category for each raw name",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := catalog.Default()
		for _, raw := range args {
			category := catalog.NormalizeCategory(raw)
			note := ""
			if !c.IsSupported(category) {
				note = " (unsupported, generic tables apply)"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s%s\n", raw, category, note)
		}
	},
}

var categoriesReclassifyCmd = &cobra.Command{
	Use:   "reclassify <category> <restaurant name>",
	Short: "Show how a promotional category label would be repaired",
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		name := strings.Join(args[1:], " ")
		fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", args[0], catalog.ReclassifyPromotionalTag(args[0], name))
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
	categoriesCmd.AddCommand(categoriesListCmd, categoriesNormalizeCmd, categoriesReclassifyCmd)
}
