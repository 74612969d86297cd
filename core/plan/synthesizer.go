// Package plan turns an arbitrage analysis and a production breakdown
// into an ordered, human-checkable action plan.
package plan

import (
	"fmt"

	"github.com/shopspring/decimal"

	"albion-profit/core/identity"
	"albion-profit/core/types"
)

// LowMarginWarnPercent is the advisory threshold below which a
// profitable plan carries a low-margin warning. Fixed reference
// behavior; a configuration candidate rather than a settled rule.
const LowMarginWarnPercent = 10.0

// Synthesizer builds action plans. It is stateless; the zero value is
// ready to use.
type Synthesizer struct{}

// NewSynthesizer creates a plan synthesizer.
func NewSynthesizer() Synthesizer {
	return Synthesizer{}
}

// Synthesize converts an arbitrage analysis plus a production breakdown
// for the requested quantity into an action plan.
//
// Non-profitable results produce a verdict with a per-unit loss figure;
// missing market data produces an explicit insufficient-data plan.
// Profitable results produce the ordered six-step buy/transport/
// produce/sell sequence. Advisory warnings never change the verdict.
func (s Synthesizer) Synthesize(analysis types.RouteAnalysis, tier types.Tier, resource types.ResourceType, quantity int, result types.ProductionResult, producingCity types.City) types.ActionPlan {
	resource = types.NormalizeResourceType(string(resource))

	if analysis.Verdict == types.VerdictInsufficientData {
		return types.ActionPlan{
			Verdict: types.PlanInsufficientData,
			Summary: "insufficient data: missing prices prevent a profitability verdict",
			Warnings: []string{
				"check market price availability for every leg",
			},
		}
	}

	if !result.NetProfit.IsPositive() {
		return s.lossPlan(result)
	}

	return s.profitablePlan(analysis, tier, resource, quantity, result, producingCity)
}

func (s Synthesizer) lossPlan(result types.ProductionResult) types.ActionPlan {
	lossPerUnit := decimal.Zero
	if result.OutputQuantity.IsPositive() {
		lossPerUnit = result.NetProfit.Div(result.OutputQuantity)
	}

	return types.ActionPlan{
		Verdict:     types.PlanNotProfitable,
		Summary:     fmt.Sprintf("not profitable: %s lost per output unit", lossPerUnit.Abs().StringFixed(0)),
		LossPerUnit: lossPerUnit,
		Financial:   financialSummary(result),
		Warnings: []string{
			"this route loses money at current prices",
		},
		Recommendations: []string{
			"try a different tier or resource type",
		},
	}
}

func (s Synthesizer) profitablePlan(analysis types.RouteAnalysis, tier types.Tier, resource types.ResourceType, quantity int, result types.ProductionResult, producingCity types.City) types.ActionPlan {
	rawID := identity.RawItemID(tier, resource, 0)
	prevID := identity.RefinedItemID(tier.Prev(), resource, 0)
	outputID := identity.RefinedItemID(tier, resource, 0)

	rawQty := decimal.NewFromInt(int64(quantity))
	prevQty := decimal.NewFromInt(int64(result.PrevIntermediateNeeded))

	buyCity := analysis.Raw.BuyCity
	prevBuyCity := analysis.PrevIntermediate.BuyCity
	sellCity := analysis.Output.SellCity

	steps := []types.PlanStep{
		{
			Seq:       1,
			Action:    types.ActionBuy,
			Item:      rawID,
			Quantity:  rawQty,
			Location:  buyCity,
			UnitPrice: analysis.Raw.BuyPrice,
			Subtotal:  result.RawMaterialCost,
		},
		{
			Seq:       2,
			Action:    types.ActionBuy,
			Item:      prevID,
			Quantity:  prevQty,
			Location:  prevBuyCity,
			UnitPrice: analysis.PrevIntermediate.BuyPrice,
			Subtotal:  result.PrevMaterialCost,
		},
		{
			Seq:      3,
			Action:   types.ActionTransport,
			Item:     "all input materials",
			Quantity: rawQty.Add(prevQty),
			Location: producingCity,
			Note:     "cost depends on distance and load",
		},
		{
			Seq:      4,
			Action:   types.ActionProduce,
			Item:     fmt.Sprintf("%s + %s -> %s", rawID, prevID, outputID),
			Quantity: result.OutputQuantity,
			Location: producingCity,
			Subtotal: result.TaxCost,
			Note:     fmt.Sprintf("station fee plus %d focus", result.FocusCost),
		},
		{
			Seq:      5,
			Action:   types.ActionTransport,
			Item:     outputID,
			Quantity: result.OutputQuantity,
			Location: sellCity,
			Note:     "cost depends on distance and load",
		},
		{
			Seq:       6,
			Action:    types.ActionSell,
			Item:      outputID,
			Quantity:  result.OutputQuantity,
			Location:  sellCity,
			UnitPrice: analysis.Output.SellPrice,
			Subtotal:  result.OutputQuantity.Mul(analysis.Output.SellPrice),
		},
	}

	p := types.ActionPlan{
		Verdict:   types.PlanProfitable,
		Summary:   fmt.Sprintf("profitable: %s net profit (%.1f%% margin)", result.NetProfit.StringFixed(0), result.ProfitMargin),
		Steps:     steps,
		Financial: financialSummary(result),
		Recommendations: []string{
			fmt.Sprintf("route: %s -> %s -> %s", buyCity, producingCity, sellCity),
			"recalculate if market prices move more than 10%",
		},
	}

	if buyCity == sellCity {
		p.Warnings = append(p.Warnings, "buy and sell city are the same - no geographic arbitrage")
	}
	if result.ProfitMargin < LowMarginWarnPercent {
		p.Warnings = append(p.Warnings, fmt.Sprintf("margin below %.0f%% - transport costs may eat the profit", LowMarginWarnPercent))
	}
	if producingCity != buyCity && producingCity != sellCity {
		p.Warnings = append(p.Warnings, "production city differs from both buy and sell cities - two transport legs required")
	}

	return p
}

// QuickSummary renders a plan as a one-line route, or a terse verdict
// when there is nothing to do.
func QuickSummary(p types.ActionPlan) string {
	if !p.IsProfitable() {
		return "not profitable at current prices"
	}
	if len(p.Steps) < 6 {
		return "plan available"
	}
	return fmt.Sprintf("%s -> %s -> %s", p.Steps[0].Location, p.Steps[3].Location, p.Steps[5].Location)
}

func financialSummary(result types.ProductionResult) types.FinancialSummary {
	return types.FinancialSummary{
		Investment:             result.TotalCost,
		Revenue:                result.TotalRevenue,
		Profit:                 result.NetProfit,
		MarginPercent:          result.ProfitMargin,
		RawNeeded:              result.RawConsumed,
		PrevIntermediateNeeded: result.PrevIntermediateNeeded,
		OutputProduced:         result.OutputQuantity,
		Premium:                result.Premium,
		FocusUsed:              result.UseFocus,
	}
}
