// Package cmd - cities command
package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"albion-profit/core/types"
	"albion-profit/internal/config"
)

// citiesCmd lists the known cities with their tax rates and bonuses
var citiesCmd = &cobra.Command{
	Use:   "cities",
	Short: "List cities with their tax rates and production bonuses",
	RunE:  runCities,
}

func runCities(cmd *cobra.Command, args []string) error {
	refTables, err := loadTables()
	if err != nil {
		return err
	}
	allowed := config.Get().AllowedCities()

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CITY\tREFINING TAX\tCRAFTING TAX\tREFINING BONUS")
	for _, city := range allowed {
		bonus := "-"
		for _, resource := range types.AllResources {
			if b := refTables.ProductionBonusFor(city, resource); b > 0 {
				bonus = fmt.Sprintf("%s %.0f%%", resource, b*100)
				break
			}
		}
		fmt.Fprintf(tw, "%s\t%.1f%%\t%.1f%%\t%s\n",
			city,
			refTables.TaxRateFor(types.KindRefining, city)*100,
			refTables.TaxRateFor(types.KindCrafting, city)*100,
			bonus)
	}
	return tw.Flush()
}
