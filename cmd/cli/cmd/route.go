// Package cmd - route command
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"albion-profit/adapters/tables"
	"albion-profit/core/arbitrage"
	"albion-profit/core/output"
	"albion-profit/core/plan"
	"albion-profit/core/production"
	"albion-profit/core/types"
	"albion-profit/internal/config"
	"albion-profit/internal/errors"
)

var (
	routeTier     string
	routeResource string
	routeQuotes   string
	routeQuantity int
	routePlan     bool
)

// routeCmd represents the route command
var routeCmd = &cobra.Command{
	Use:   "route",
	Short: "Find cross-city arbitrage routes for a refined material",
	Long: `Analyze per-city market quotes and recommend where to buy inputs,
where to refine, and where to sell the output.

The quotes file is an HCL document with one quote block per city and
item leg:

  quote "Thetford" "raw" {
    sell_min = 100
    buy_max  = 95
  }

Examples:
  albion-profit route --tier T5 --resource ORE --quotes quotes.hcl
  albion-profit route --tier T5 --resource ORE --quotes quotes.hcl --plan --quantity 300`,
	RunE: runRoute,
}

func init() {
	routeCmd.Flags().StringVarP(&routeTier, "tier", "t", "", "output tier (T4-T8)")
	routeCmd.Flags().StringVarP(&routeResource, "resource", "r", "", "resource type (ORE, WOOD, HIDE, FIBER, STONE)")
	routeCmd.Flags().StringVar(&routeQuotes, "quotes", "", "HCL file with per-city market quotes")
	routeCmd.Flags().IntVarP(&routeQuantity, "quantity", "q", arbitrage.ReferenceQuantity, "raw quantity for the action plan")
	routeCmd.Flags().BoolVar(&routePlan, "plan", false, "synthesize a step-by-step action plan")

	routeCmd.MarkFlagRequired("tier")
	routeCmd.MarkFlagRequired("resource")
	routeCmd.MarkFlagRequired("quotes")
}

func runRoute(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(outputFormat)
	if err != nil {
		return err
	}

	tier, ok := types.ParseTier(routeTier)
	if !ok {
		return errors.Newf(errors.TypeInput, "invalid tier: %s", routeTier)
	}
	resource := types.NormalizeResourceType(routeResource)
	if !resource.IsValid() {
		return errors.Newf(errors.TypeInput, "invalid resource type: %s", routeResource)
	}

	quotes, err := tables.LoadQuotes(routeQuotes)
	if err != nil {
		return err
	}

	refTables, err := loadTables()
	if err != nil {
		return err
	}
	calc := production.NewCalculator(refTables)

	cfg := config.Get()
	profile := cfg.Profile(config.RefiningActivity(resource))

	analyzer := arbitrage.NewAnalyzer(calc, cfg.ExcludedCities())
	analysis := analyzer.Analyze(quotes, tier, resource, profile)

	if !routePlan {
		return output.RenderRouteAnalysis(os.Stdout, format, analysis)
	}

	// Re-evaluate the route at the requested quantity so the plan's
	// figures match what the player will actually move.
	result := calc.Refine(production.RefineInput{
		Tier:        tier,
		Resource:    resource,
		City:        analysis.ProductionCity,
		RawPrice:    analysis.Raw.BuyPrice,
		PrevPrice:   analysis.PrevIntermediate.BuyPrice,
		OutputPrice: analysis.Output.SellPrice,
		Quantity:    routeQuantity,
		Profile:     profile,
	})

	actionPlan := plan.NewSynthesizer().Synthesize(analysis, tier, resource, routeQuantity, result, analysis.ProductionCity)
	return output.RenderPlan(os.Stdout, format, actionPlan)
}
