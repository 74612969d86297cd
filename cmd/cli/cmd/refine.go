// Package cmd - refine command
package cmd

import (
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"albion-profit/adapters/tables"
	"albion-profit/core/economy"
	"albion-profit/core/output"
	"albion-profit/core/production"
	"albion-profit/core/ranking"
	"albion-profit/core/types"
	"albion-profit/internal/config"
	"albion-profit/internal/errors"
	"albion-profit/internal/logging"
)

var (
	refineTier        string
	refineResource    string
	refineCity        string
	refineRawPrice    float64
	refinePrevPrice   float64
	refineOutputPrice float64
	refineQuantity    int
	refineIsland      bool
	refineBreakEven   bool
)

// refineCmd represents the refine command
var refineCmd = &cobra.Command{
	Use:   "refine",
	Short: "Compute refining profitability",
	Long: `Compute the refining cost/revenue/profit breakdown for one city,
or rank every candidate city when no city is given.

Examples:
  albion-profit refine --tier T5 --resource ORE --raw-price 100 --prev-price 280 --output-price 350
  albion-profit refine --tier T5 --resource ORE --city Thetford --raw-price 100 --prev-price 280 --output-price 350`,
	RunE: runRefine,
}

func init() {
	refineCmd.Flags().StringVarP(&refineTier, "tier", "t", "", "output tier (T4-T8)")
	refineCmd.Flags().StringVarP(&refineResource, "resource", "r", "", "resource type (ORE, WOOD, HIDE, FIBER, STONE)")
	refineCmd.Flags().StringVarP(&refineCity, "city", "c", "", "refining city (omit to rank all cities)")
	refineCmd.Flags().Float64Var(&refineRawPrice, "raw-price", 0, "raw resource unit price")
	refineCmd.Flags().Float64Var(&refinePrevPrice, "prev-price", 0, "previous-tier refined unit price")
	refineCmd.Flags().Float64Var(&refineOutputPrice, "output-price", 0, "refined output unit price")
	refineCmd.Flags().IntVarP(&refineQuantity, "quantity", "q", 100, "raw resource quantity")
	refineCmd.Flags().BoolVar(&refineIsland, "island", false, "refine on a personal island (no city bonus)")
	refineCmd.Flags().BoolVar(&refineBreakEven, "break-even", false, "also report the break-even raw price")

	refineCmd.MarkFlagRequired("tier")
	refineCmd.MarkFlagRequired("resource")
	refineCmd.MarkFlagRequired("raw-price")
	refineCmd.MarkFlagRequired("output-price")
}

func runRefine(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(outputFormat)
	if err != nil {
		return err
	}

	tier, ok := types.ParseTier(refineTier)
	if !ok {
		return errors.Newf(errors.TypeInput, "invalid tier: %s", refineTier)
	}
	resource := types.NormalizeResourceType(refineResource)
	if !resource.IsValid() {
		return errors.Newf(errors.TypeInput, "invalid resource type: %s", refineResource)
	}

	refTables, err := loadTables()
	if err != nil {
		return err
	}
	calc := production.NewCalculator(refTables)

	cfg := config.Get()
	profile := cfg.Profile(config.RefiningActivity(resource))

	in := production.RefineInput{
		Tier:           tier,
		Resource:       resource,
		RawPrice:       decimal.NewFromFloat(refineRawPrice),
		PrevPrice:      decimal.NewFromFloat(refinePrevPrice),
		OutputPrice:    decimal.NewFromFloat(refineOutputPrice),
		Quantity:       refineQuantity,
		Profile:        profile,
		PersonalIsland: refineIsland,
	}

	if refineCity == "" {
		ranker := ranking.NewRanker(calc, cfg.ExcludedCities())
		entries := ranker.RankRefining(ranking.RefiningScenario{
			Tier:        tier,
			Resource:    resource,
			RawPrice:    in.RawPrice,
			PrevPrice:   in.PrevPrice,
			OutputPrice: in.OutputPrice,
			Quantity:    refineQuantity,
			Profile:     profile,
		})
		return output.RenderRanking(os.Stdout, format, entries)
	}

	city, ok := types.ParseCity(refineCity)
	if !ok {
		return errors.Newf(errors.TypeInput, "unknown city: %s", refineCity)
	}
	in.City = city

	result := calc.Refine(in)
	if err := output.RenderProduction(os.Stdout, format, result); err != nil {
		return err
	}

	if refineBreakEven && format == output.FormatText {
		breakEven := calc.BreakEvenRawPrice(in)
		cmd.Printf("Break-even raw price: %s\n", breakEven.StringFixed(2))
	}
	return nil
}

// loadTables returns the default reference tables, with the --tables
// override file applied when given.
func loadTables() (*economy.Tables, error) {
	defaults := economy.NewTables()
	if tablesFile == "" {
		return defaults, nil
	}

	logging.Info("loading table overrides")
	return tables.LoadOverrides(tablesFile, defaults)
}
