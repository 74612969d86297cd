// Package cmd - craft command
package cmd

import (
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"albion-profit/core/output"
	"albion-profit/core/production"
	"albion-profit/core/types"
	"albion-profit/internal/config"
	"albion-profit/internal/errors"
)

var (
	craftCity      string
	craftSellPrice float64
	craftPrices    []string
	craftQuantity  int
)

// craftCmd represents the craft command
var craftCmd = &cobra.Command{
	Use:   "craft RECIPE_ID",
	Short: "Compute crafting profitability for one recipe",
	Long: `Compute the crafting cost/revenue/profit breakdown for one recipe in
one city. Material prices are given per material item ID.

Examples:
  albion-profit craft T4_SWORD --city "Fort Sterling" --sell-price 2000 \
    --price T4_METAL=150 --price T3_METAL=75`,
	Args: cobra.ExactArgs(1),
	RunE: runCraft,
}

func init() {
	craftCmd.Flags().StringVarP(&craftCity, "city", "c", "", "crafting city")
	craftCmd.Flags().Float64Var(&craftSellPrice, "sell-price", 0, "crafted item unit sale price")
	craftCmd.Flags().StringArrayVarP(&craftPrices, "price", "p", nil, "material price as MATERIAL_ID=PRICE (repeatable)")
	craftCmd.Flags().IntVarP(&craftQuantity, "quantity", "q", 1, "number of crafts")

	craftCmd.MarkFlagRequired("city")
	craftCmd.MarkFlagRequired("sell-price")
}

func runCraft(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(outputFormat)
	if err != nil {
		return err
	}

	city, ok := types.ParseCity(craftCity)
	if !ok {
		return errors.Newf(errors.TypeInput, "unknown city: %s", craftCity)
	}

	materialPrices, err := parseMaterialPrices(craftPrices)
	if err != nil {
		return err
	}

	refTables, err := loadTables()
	if err != nil {
		return err
	}
	calc := production.NewCalculator(refTables)

	recipeID := strings.ToUpper(args[0])
	result, err := calc.Craft(production.CraftInput{
		RecipeID:       recipeID,
		City:           city,
		MaterialPrices: materialPrices,
		SellPrice:      decimal.NewFromFloat(craftSellPrice),
		Quantity:       craftQuantity,
		Profile:        config.Get().Profile(craftingActivity(calc, recipeID)),
	})
	if err != nil {
		return err
	}

	return output.RenderProduction(os.Stdout, format, result)
}

// craftingActivity maps a recipe's category to its specialization key.
func craftingActivity(calc *production.Calculator, recipeID string) string {
	recipe, ok := calc.Tables().RecipeFor(recipeID)
	if !ok {
		return "toolmaker"
	}
	switch recipe.Category {
	case "WEAPON":
		return "weapon_smith"
	case "ARMOR":
		return "armor_smith"
	default:
		return "toolmaker"
	}
}

func parseMaterialPrices(pairs []string) (map[string]decimal.Decimal, error) {
	prices := make(map[string]decimal.Decimal, len(pairs))
	for _, pair := range pairs {
		material, value, found := strings.Cut(pair, "=")
		if !found {
			return nil, errors.Newf(errors.TypeInput, "bad --price value (want MATERIAL_ID=PRICE): %s", pair)
		}
		price, err := strconv.ParseFloat(value, 64)
		if err != nil || price < 0 {
			return nil, errors.Newf(errors.TypeInput, "bad price for %s: %s", material, value)
		}
		prices[strings.ToUpper(strings.TrimSpace(material))] = decimal.NewFromFloat(price)
	}
	return prices, nil
}
