// Package production_test - profitability calculation tests
package production_test

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"

	"albion-profit/core/economy"
	"albion-profit/core/production"
	"albion-profit/core/types"
	"albion-profit/internal/errors"
)

func newCalculator() *production.Calculator {
	return production.NewCalculator(economy.NewTables())
}

// The canonical profitable run: 300 T5 ore in Thetford with focus,
// premium and 50 specialization.
func t5OreInput() production.RefineInput {
	return production.RefineInput{
		Tier:        types.TierT5,
		Resource:    types.ResourceOre,
		City:        types.CityThetford,
		RawPrice:    decimal.NewFromInt(100),
		OutputPrice: decimal.NewFromInt(350),
		Quantity:    300,
		Profile: types.PlayerProfile{
			Specialization: 50,
			Premium:        true,
			UseFocus:       true,
		},
	}
}

func TestRefineT5OreThetford(t *testing.T) {
	calc := newCalculator()
	result := calc.Refine(t5OreInput())

	if !result.OutputQuantity.Equal(decimal.NewFromInt(100)) {
		t.Errorf("output = %s, want 100", result.OutputQuantity)
	}
	if result.PrevIntermediateNeeded != 100 {
		t.Errorf("prev needed = %d, want 100", result.PrevIntermediateNeeded)
	}

	// 0.18 base + 0.40 city + 0.45 focus -> 1 - 1/2.03
	wantRate := 1 - 1/2.03
	if math.Abs(result.ReturnRate-wantRate) > 1e-9 {
		t.Errorf("return rate = %v, want %v", result.ReturnRate, wantRate)
	}
	if result.ReturnRate <= 0.5 {
		t.Errorf("return rate = %v, expected above 50%% with focus and city bonus", result.ReturnRate)
	}

	// 20 base * 100 output * 0.75 spec reduction * 0.5 premium
	if result.FocusCost != 750 {
		t.Errorf("focus cost = %d, want 750", result.FocusCost)
	}

	// 100 output * 192 item value * 0.1125 * 0.045
	if !result.TaxCost.Equal(decimal.RequireFromString("97.2")) {
		t.Errorf("tax = %s, want 97.2", result.TaxCost)
	}

	if !result.Profitable() {
		t.Fatalf("expected profit, got %s", result.NetProfit)
	}
	profit, _ := result.NetProfit.Float64()
	if math.Abs(profit-20124.47) > 0.01 {
		t.Errorf("net profit = %v, want ~20124.47", profit)
	}
	if result.ProfitMargin < 66.8 || result.ProfitMargin > 66.9 {
		t.Errorf("margin = %v, want ~66.87", result.ProfitMargin)
	}
}

func TestRefineFocusBeatsNoFocus(t *testing.T) {
	calc := newCalculator()

	withFocus := calc.Refine(t5OreInput())

	in := t5OreInput()
	in.Profile.UseFocus = false
	withoutFocus := calc.Refine(in)

	if !withFocus.NetProfit.GreaterThan(withoutFocus.NetProfit) {
		t.Errorf("focus profit %s should exceed no-focus profit %s",
			withFocus.NetProfit, withoutFocus.NetProfit)
	}
	if withoutFocus.FocusCost != 0 {
		t.Errorf("no-focus run spent %d focus", withoutFocus.FocusCost)
	}
}

func TestRefineDegenerateQuantity(t *testing.T) {
	calc := newCalculator()

	in := t5OreInput()
	in.Quantity = 2 // below the 3-raw T5 batch size

	result := calc.Refine(in)
	if result.HasOutput() {
		t.Errorf("expected zero output, got %s", result.OutputQuantity)
	}
	if !result.NetProfit.IsZero() {
		t.Errorf("degenerate run profit = %s, want 0", result.NetProfit)
	}
	if result.ProfitMargin != 0 {
		t.Errorf("degenerate run margin = %v, want 0", result.ProfitMargin)
	}
}

func TestRefineMarginFiniteOnZeroCost(t *testing.T) {
	calc := newCalculator()

	result := calc.Refine(production.RefineInput{
		Tier:     types.Tier(12), // no item value, no tax; free materials
		Resource: types.ResourceOre,
		City:     types.CityThetford,
		Quantity: 10,
	})

	if math.IsNaN(result.ProfitMargin) || math.IsInf(result.ProfitMargin, 0) {
		t.Fatalf("margin must stay finite, got %v", result.ProfitMargin)
	}
	if result.ProfitMargin != 0 {
		t.Errorf("zero-cost margin = %v, want 0", result.ProfitMargin)
	}
}

func TestRefineStoneAliasesRock(t *testing.T) {
	calc := newCalculator()

	in := t5OreInput()
	in.Resource = types.ResourceType("STONE")
	in.City = types.CityBridgewatch

	asStone := calc.Refine(in)
	in.Resource = types.ResourceRock
	asRock := calc.Refine(in)

	if asStone.ReturnRate != asRock.ReturnRate {
		t.Errorf("STONE and ROCK must share the Bridgewatch bonus: %v vs %v",
			asStone.ReturnRate, asRock.ReturnRate)
	}
}

func TestBreakEvenRawPrice(t *testing.T) {
	calc := newCalculator()
	in := t5OreInput()

	breakEven := calc.BreakEvenRawPrice(in)

	if breakEven.LessThanOrEqual(decimal.NewFromInt(1)) {
		t.Fatalf("break-even price %s not above lower bound", breakEven)
	}
	if breakEven.GreaterThanOrEqual(in.OutputPrice.Mul(decimal.NewFromInt(10))) {
		t.Fatalf("break-even price %s not below upper bound", breakEven)
	}

	at := in
	at.RawPrice = breakEven
	if !calc.Refine(at).Profitable() {
		t.Error("run at break-even price should still be (marginally) profitable")
	}

	above := in
	above.RawPrice = breakEven.Add(decimal.NewFromInt(1))
	if calc.Refine(above).Profitable() {
		t.Error("run one unit above break-even price should lose money")
	}
}

func TestCraftT4SwordFortSterling(t *testing.T) {
	calc := newCalculator()

	result, err := calc.Craft(production.CraftInput{
		RecipeID: "T4_SWORD",
		City:     types.CityFortSterling,
		MaterialPrices: map[string]decimal.Decimal{
			"T4_METAL": decimal.NewFromInt(150),
			"T3_METAL": decimal.NewFromInt(75),
		},
		SellPrice: decimal.NewFromInt(2000),
		Quantity:  1,
		Profile: types.PlayerProfile{
			Specialization: 50,
			Premium:        true,
			UseFocus:       true,
		},
	})
	if err != nil {
		t.Fatalf("Craft: %v", err)
	}

	// Fort Sterling's 15% METAL bonus cuts 16+8 materials to 13.6+6.8.
	if !result.InputCost.Equal(decimal.RequireFromString("2550")) {
		t.Errorf("material cost = %s, want 2550", result.InputCost)
	}

	// 0.15 base + 0.15 spec + 0.35 focus
	if math.Abs(result.ReturnRate-0.65) > 1e-9 {
		t.Errorf("return rate = %v, want 0.65", result.ReturnRate)
	}
	if !result.OutputQuantity.Equal(decimal.RequireFromString("1.65")) {
		t.Errorf("items produced = %s, want 1.65", result.OutputQuantity)
	}
	if !result.OutputQuantity.GreaterThan(decimal.NewFromInt(1)) {
		t.Error("return rate should yield more than one finished item")
	}

	if !result.TaxCost.Equal(decimal.RequireFromString("148.5")) {
		t.Errorf("tax = %s, want 148.5 (4.5%% of 3300 revenue)", result.TaxCost)
	}
	if !result.NetProfit.Equal(decimal.RequireFromString("601.5")) {
		t.Errorf("net profit = %s, want 601.5", result.NetProfit)
	}
	if math.Abs(result.ProfitMargin-18.227) > 0.01 {
		t.Errorf("margin = %v, want ~18.23 (relative to revenue)", result.ProfitMargin)
	}
	if !result.BreakEvenPrice.IsPositive() {
		t.Error("break-even price missing")
	}
}

func TestCraftCityBonusReducesCost(t *testing.T) {
	calc := newCalculator()

	in := production.CraftInput{
		RecipeID: "T4_SWORD",
		City:     types.CityFortSterling,
		MaterialPrices: map[string]decimal.Decimal{
			"T4_METAL": decimal.NewFromInt(150),
			"T3_METAL": decimal.NewFromInt(75),
		},
		SellPrice: decimal.NewFromInt(2000),
		Quantity:  1,
	}

	bonusCity, err := calc.Craft(in)
	if err != nil {
		t.Fatalf("Craft: %v", err)
	}

	in.City = types.CityThetford // no METAL bonus
	plainCity, err := calc.Craft(in)
	if err != nil {
		t.Fatalf("Craft: %v", err)
	}

	if !bonusCity.InputCost.LessThan(plainCity.InputCost) {
		t.Errorf("bonus city cost %s should undercut plain city cost %s",
			bonusCity.InputCost, plainCity.InputCost)
	}
}

func TestCraftUnknownRecipe(t *testing.T) {
	calc := newCalculator()

	_, err := calc.Craft(production.CraftInput{
		RecipeID:  "T4_BANANA",
		City:      types.CityThetford,
		SellPrice: decimal.NewFromInt(100),
		Quantity:  1,
	})
	if err == nil {
		t.Fatal("expected error for unknown recipe")
	}
	if !errors.IsType(err, errors.TypeNotFound) {
		t.Errorf("error type = %v, want NOT_FOUND", err)
	}
}

func TestCraftMissingMaterialPriceCostsZero(t *testing.T) {
	calc := newCalculator()

	result, err := calc.Craft(production.CraftInput{
		RecipeID: "T4_SWORD",
		City:     types.CityThetford,
		MaterialPrices: map[string]decimal.Decimal{
			"T4_METAL": decimal.NewFromInt(150),
			// T3_METAL intentionally missing
		},
		SellPrice: decimal.NewFromInt(2000),
		Quantity:  1,
	})
	if err != nil {
		t.Fatalf("Craft: %v", err)
	}
	if !result.MaterialCosts["T3_METAL"].IsZero() {
		t.Errorf("missing material cost = %s, want 0", result.MaterialCosts["T3_METAL"])
	}
	if !result.InputCost.Equal(decimal.NewFromInt(16 * 150)) {
		t.Errorf("input cost = %s, want %d", result.InputCost, 16*150)
	}
}

func TestCraftZeroQuantity(t *testing.T) {
	calc := newCalculator()

	result, err := calc.Craft(production.CraftInput{
		RecipeID:  "T4_SWORD",
		City:      types.CityThetford,
		SellPrice: decimal.NewFromInt(2000),
		Quantity:  0,
	})
	if err != nil {
		t.Fatalf("Craft: %v", err)
	}
	if result.HasOutput() {
		t.Errorf("zero quantity produced %s items", result.OutputQuantity)
	}
}
