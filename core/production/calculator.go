// Package production turns recipes, prices and player modifiers into
// full cost/revenue/tax/profit breakdowns for one location.
//
// Both production kinds emit the same types.ProductionResult shape so
// downstream ranking and planning code is agnostic to which was used.
// All operations are pure, synchronous and side-effect-free.
package production

import (
	"sort"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"albion-profit/core/economy"
	"albion-profit/core/types"
	"albion-profit/core/yield"
	"albion-profit/internal/errors"
	"albion-profit/internal/logging"
)

// Break-even search bounds.
const (
	// BreakEvenTolerance is the currency tolerance of the break-even
	// binary search
	BreakEvenTolerance = 0.01

	// BreakEvenPriceFactor bounds the search interval at
	// factor x output price
	BreakEvenPriceFactor = 10
)

// Calculator computes production profitability against a fixed set of
// reference tables. Safe for concurrent use; it holds no mutable state.
type Calculator struct {
	tables *economy.Tables
	yields yield.Model
}

// NewCalculator creates a calculator over the given tables.
func NewCalculator(tables *economy.Tables) *Calculator {
	return &Calculator{
		tables: tables,
		yields: yield.NewModel(tables),
	}
}

// Tables exposes the reference tables the calculator was built with.
func (c *Calculator) Tables() *economy.Tables {
	return c.tables
}

// Yields exposes the yield model the calculator was built with.
func (c *Calculator) Yields() yield.Model {
	return c.yields
}

// RefineInput describes one refining run.
type RefineInput struct {
	// Tier is the output tier
	Tier types.Tier

	// Resource is the resource family, normalized before lookups
	Resource types.ResourceType

	// City is where refining happens
	City types.City

	// RawPrice is the unit price of the raw resource
	RawPrice decimal.Decimal

	// PrevPrice is the unit price of the previous-tier intermediate;
	// zero means the leg is costed at nothing
	PrevPrice decimal.Decimal

	// OutputPrice is the unit sale price of the refined output
	OutputPrice decimal.Decimal

	// Quantity is the raw resource quantity to process
	Quantity int

	// Profile carries the player modifiers
	Profile types.PlayerProfile

	// PersonalIsland disables the city production bonus
	PersonalIsland bool
}

// Refine computes the complete refining breakdown for one city.
//
// A quantity smaller than one production batch yields a zero-output
// result, not an error; the margin is zero whenever total cost is zero,
// never NaN or infinite.
func (c *Calculator) Refine(in RefineInput) types.ProductionResult {
	resource := types.NormalizeResourceType(string(in.Resource))

	result := types.ProductionResult{
		Kind:     types.KindRefining,
		Tier:     in.Tier,
		City:     in.City,
		Premium:  in.Profile.Premium,
		UseFocus: in.Profile.UseFocus,
	}

	req := c.tables.RequirementFor(in.Tier)
	outputQty := 0
	if req.Raw > 0 {
		outputQty = in.Quantity / req.Raw
	}
	if outputQty == 0 {
		logging.Debug("quantity below one production batch",
			zap.Int("quantity", in.Quantity),
			zap.Int("raw_per_output", req.Raw))
		return result
	}

	prevNeeded := outputQty * req.PrevIntermediate
	quantity := decimal.NewFromInt(int64(in.Quantity))

	rawCost := quantity.Mul(in.RawPrice)
	prevCost := decimal.NewFromInt(int64(prevNeeded)).Mul(in.PrevPrice)
	inputCost := rawCost.Add(prevCost)

	returnRate := c.yields.RefiningReturnRate(in.City, resource, in.Profile, in.PersonalIsland)
	focusCost := 0
	if in.Profile.UseFocus {
		focusCost = c.yields.RefiningFocusCost(in.Tier, outputQty, in.Profile)
	}

	// Tax is levied on the notional item value table scaled by the
	// nutrition multiplier, not on the transaction price.
	itemValue := decimal.NewFromInt(int64(c.tables.RefinedItemValueFor(in.Tier)))
	taxRate := decimal.NewFromFloat(c.tables.TaxRateFor(types.KindRefining, in.City))
	taxCost := decimal.NewFromInt(int64(outputQty)).
		Mul(itemValue).
		Mul(decimal.NewFromFloat(economy.NutritionMultiplier)).
		Mul(taxRate)

	totalCost := inputCost.Add(taxCost)

	// Returned materials are not re-sold; their value counts as saved
	// cost added back into revenue.
	rate := decimal.NewFromFloat(returnRate)
	returnedValue := quantity.Mul(rate).Mul(in.RawPrice).
		Add(decimal.NewFromInt(int64(prevNeeded)).Mul(rate).Mul(in.PrevPrice))

	totalRevenue := decimal.NewFromInt(int64(outputQty)).Mul(in.OutputPrice).Add(returnedValue)
	netProfit := totalRevenue.Sub(totalCost)

	result.InputCost = inputCost
	result.RawMaterialCost = rawCost
	result.PrevMaterialCost = prevCost
	result.TaxCost = taxCost
	result.FocusCost = focusCost
	result.TotalCost = totalCost
	result.ReturnRate = returnRate
	result.ResourcesReturned = int(float64(in.Quantity) * returnRate)
	result.ReturnedValue = returnedValue
	result.RawConsumed = in.Quantity
	result.PrevIntermediateNeeded = prevNeeded
	result.OutputQuantity = decimal.NewFromInt(int64(outputQty))
	result.TotalRevenue = totalRevenue
	result.NetProfit = netProfit
	result.ProfitMargin = marginPercent(netProfit, totalCost)
	return result
}

// CraftInput describes one crafting run.
type CraftInput struct {
	// RecipeID is the recipe to craft (e.g. "T4_SWORD")
	RecipeID string

	// City is where crafting happens
	City types.City

	// MaterialPrices maps material item IDs to unit prices. A missing
	// material price is costed at zero with a warning.
	MaterialPrices map[string]decimal.Decimal

	// SellPrice is the unit sale price of the crafted item
	SellPrice decimal.Decimal

	// Quantity is the number of crafts
	Quantity int

	// Profile carries the player modifiers
	Profile types.PlayerProfile
}

// Craft computes the complete crafting breakdown for one city.
//
// Crafting differs from refining in every numerically sensitive spot:
// the city bonus reduces required material quantities instead of
// changing the return rate, tax is levied on total revenue directly,
// and the return rate augments the fractional count of finished goods.
// The recipe is caller-chosen input, so an unknown recipe is an error
// rather than a table-default fallback.
func (c *Calculator) Craft(in CraftInput) (types.ProductionResult, error) {
	recipe, ok := c.tables.RecipeFor(in.RecipeID)
	if !ok {
		return types.ProductionResult{}, errors.NotFound("recipe", in.RecipeID)
	}

	identity, err := parseRecipeTier(in.RecipeID)
	if err != nil {
		return types.ProductionResult{}, err
	}

	result := types.ProductionResult{
		Kind:     types.KindCrafting,
		Tier:     identity,
		City:     in.City,
		Premium:  in.Profile.Premium,
		UseFocus: in.Profile.UseFocus,
	}
	if in.Quantity <= 0 {
		return result, nil
	}

	returnRate := c.yields.CraftingReturnRate(identity, in.Profile)
	focusCost := c.yields.CraftingFocusCost(identity, in.Profile) * in.Quantity
	cityBonus := c.tables.CraftingBonusFor(in.City, recipe.BonusCategory)

	quantity := decimal.NewFromInt(int64(in.Quantity))
	bonusFactor := decimal.NewFromFloat(1 - cityBonus)

	materialCosts := make(map[string]decimal.Decimal, len(recipe.Materials))
	totalMaterialCost := decimal.Zero
	for _, material := range sortedMaterials(recipe) {
		baseAmount := decimal.NewFromInt(int64(recipe.Materials[material]))
		actualAmount := baseAmount.Mul(bonusFactor).Mul(quantity)

		price, ok := in.MaterialPrices[material]
		if !ok || !price.IsPositive() {
			logging.Warn("no price data for material, costing at zero",
				zap.String("material", material))
			price = decimal.Zero
		}

		cost := actualAmount.Mul(price)
		materialCosts[material] = cost
		totalMaterialCost = totalMaterialCost.Add(cost)
	}

	// The crafting return rate yields extra finished goods, so the
	// produced count is fractional.
	itemsProduced := quantity.Mul(decimal.NewFromFloat(1 + returnRate))
	totalRevenue := itemsProduced.Mul(in.SellPrice)

	taxRate := decimal.NewFromFloat(c.tables.TaxRateFor(types.KindCrafting, in.City))
	taxCost := totalRevenue.Mul(taxRate)

	totalCost := totalMaterialCost.Add(taxCost)
	netProfit := totalRevenue.Sub(totalMaterialCost).Sub(taxCost)

	breakEven := decimal.Zero
	if itemsProduced.IsPositive() {
		breakEven = totalCost.Div(itemsProduced)
	}

	result.InputCost = totalMaterialCost
	result.MaterialCosts = materialCosts
	result.TaxCost = taxCost
	result.FocusCost = focusCost
	result.TotalCost = totalCost
	result.ReturnRate = returnRate
	result.OutputQuantity = itemsProduced
	result.TotalRevenue = totalRevenue
	result.NetProfit = netProfit
	result.ProfitMargin = marginPercent(netProfit, totalRevenue)
	result.BreakEvenPrice = breakEven
	return result, nil
}

// BreakEvenRawPrice finds the maximum raw price at which the refining
// run in question still breaks even, holding everything else fixed.
//
// Binary search over [1, BreakEvenPriceFactor x output price] down to
// BreakEvenTolerance currency units; the iteration count is bounded by
// the interval size and tolerance, so the search always terminates
// quickly.
func (c *Calculator) BreakEvenRawPrice(in RefineInput) decimal.Decimal {
	low := decimal.NewFromInt(1)
	high := in.OutputPrice.Mul(decimal.NewFromInt(BreakEvenPriceFactor))
	tolerance := decimal.NewFromFloat(BreakEvenTolerance)
	two := decimal.NewFromInt(2)

	if high.LessThanOrEqual(low) {
		return low
	}

	for high.Sub(low).GreaterThan(tolerance) {
		mid := low.Add(high).Div(two)

		probe := in
		probe.RawPrice = mid
		if c.Refine(probe).NetProfit.IsPositive() {
			low = mid
		} else {
			high = mid
		}
	}

	return low
}

// marginPercent relates profit to a cost or revenue base as a
// percentage, emitting 0 instead of NaN/Inf on a zero denominator.
func marginPercent(profit, base decimal.Decimal) float64 {
	if !base.IsPositive() {
		return 0
	}
	margin, _ := profit.Div(base).Float64()
	return margin * 100
}

// sortedMaterials returns the recipe's material IDs in a deterministic
// order so material cost maps and plans render stably.
func sortedMaterials(recipe economy.Recipe) []string {
	materials := make([]string, 0, len(recipe.Materials))
	for material := range recipe.Materials {
		materials = append(materials, material)
	}
	sort.Strings(materials)
	return materials
}

// parseRecipeTier extracts the tier prefix of a recipe ID. Recipe IDs
// are boundary input, so a malformed ID is an input error.
func parseRecipeTier(recipeID string) (types.Tier, error) {
	if len(recipeID) < 2 {
		return 0, errors.Input("recipe id too short: " + recipeID)
	}
	tier, ok := types.ParseTier(recipeID[:2])
	if !ok {
		return 0, errors.Newf(errors.TypeInput, "recipe id has no tier prefix: %s", recipeID)
	}
	return tier, nil
}
