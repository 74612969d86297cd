// Package plan_test - action plan synthesis tests
package plan_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"albion-profit/core/economy"
	"albion-profit/core/plan"
	"albion-profit/core/production"
	"albion-profit/core/types"
)

func refineResult(outputPrice int64) types.ProductionResult {
	calc := production.NewCalculator(economy.NewTables())
	return calc.Refine(production.RefineInput{
		Tier:        types.TierT5,
		Resource:    types.ResourceOre,
		City:        types.CityThetford,
		RawPrice:    decimal.NewFromInt(80),
		PrevPrice:   decimal.NewFromInt(280),
		OutputPrice: decimal.NewFromInt(outputPrice),
		Quantity:    300,
		Profile:     types.PlayerProfile{UseFocus: true},
	})
}

func routeAnalysis(outputPrice int64) types.RouteAnalysis {
	return types.RouteAnalysis{
		Tier:     types.TierT5,
		Resource: types.ResourceOre,
		Verdict:  types.VerdictOK,
		Raw: types.LegRecommendation{
			Leg: types.LegRaw, HasData: true,
			BuyCity: types.CityMartlock, BuyPrice: decimal.NewFromInt(80),
		},
		PrevIntermediate: types.LegRecommendation{
			Leg: types.LegPrevIntermediate, HasData: true,
			BuyCity: types.CityThetford, BuyPrice: decimal.NewFromInt(280),
		},
		Output: types.LegRecommendation{
			Leg: types.LegOutput, HasData: true,
			SellCity: types.CityLymhurst, SellPrice: decimal.NewFromInt(outputPrice),
		},
		ProductionCity: types.CityThetford,
	}
}

func TestSynthesizeProfitablePlan(t *testing.T) {
	result := refineResult(420)
	analysis := routeAnalysis(420)

	p := plan.NewSynthesizer().Synthesize(analysis, types.TierT5, types.ResourceOre, 300, result, types.CityThetford)

	if !p.IsProfitable() {
		t.Fatalf("verdict = %s, want profitable", p.Verdict)
	}
	if len(p.Steps) != 6 {
		t.Fatalf("got %d steps, want 6", len(p.Steps))
	}

	wantActions := []types.StepAction{
		types.ActionBuy, types.ActionBuy, types.ActionTransport,
		types.ActionProduce, types.ActionTransport, types.ActionSell,
	}
	for i, step := range p.Steps {
		if step.Seq != i+1 {
			t.Errorf("step %d seq = %d", i, step.Seq)
		}
		if step.Action != wantActions[i] {
			t.Errorf("step %d action = %s, want %s", i, step.Action, wantActions[i])
		}
	}

	if p.Steps[0].Location != types.CityMartlock {
		t.Errorf("raw buy at %s, want Martlock", p.Steps[0].Location)
	}
	if p.Steps[0].Item != "T5_ORE" {
		t.Errorf("raw item = %q, want T5_ORE", p.Steps[0].Item)
	}
	if p.Steps[1].Item != "T4_METALBAR" {
		t.Errorf("prev item = %q, want T4_METALBAR", p.Steps[1].Item)
	}
	if p.Steps[3].Location != types.CityThetford {
		t.Errorf("produce at %s, want Thetford", p.Steps[3].Location)
	}
	if p.Steps[5].Location != types.CityLymhurst {
		t.Errorf("sell at %s, want Lymhurst", p.Steps[5].Location)
	}

	if !p.Financial.Profit.Equal(result.NetProfit) {
		t.Errorf("financial profit = %s, want %s", p.Financial.Profit, result.NetProfit)
	}

	// Produce city differs from both buy and sell cities.
	if !hasWarningContaining(p, "production city differs") {
		t.Errorf("missing two-transport warning, got %v", p.Warnings)
	}
	// Healthy margin: no low-margin warning.
	if hasWarningContaining(p, "margin below") {
		t.Errorf("unexpected low-margin warning at %.1f%% margin", result.ProfitMargin)
	}
}

func TestSynthesizeAdvisoryWarnings(t *testing.T) {
	// Thin margin, and buying where we sell.
	result := refineResult(290)
	analysis := routeAnalysis(290)
	analysis.Raw.BuyCity = types.CityLymhurst

	p := plan.NewSynthesizer().Synthesize(analysis, types.TierT5, types.ResourceOre, 300, result, types.CityThetford)

	if !p.IsProfitable() {
		t.Fatalf("verdict = %s, want profitable (warnings are advisory)", p.Verdict)
	}
	if !hasWarningContaining(p, "margin below") {
		t.Errorf("missing low-margin warning at %.1f%% margin", result.ProfitMargin)
	}
	if !hasWarningContaining(p, "no geographic arbitrage") {
		t.Errorf("missing same-city warning, got %v", p.Warnings)
	}
}

func TestSynthesizeLossPlan(t *testing.T) {
	result := refineResult(100)
	analysis := routeAnalysis(100)

	p := plan.NewSynthesizer().Synthesize(analysis, types.TierT5, types.ResourceOre, 300, result, types.CityThetford)

	if p.Verdict != types.PlanNotProfitable {
		t.Fatalf("verdict = %s, want not_profitable", p.Verdict)
	}
	if len(p.Steps) != 0 {
		t.Errorf("loss plan carries %d steps, want none", len(p.Steps))
	}
	if !p.LossPerUnit.IsNegative() {
		t.Errorf("loss per unit = %s, want negative", p.LossPerUnit)
	}

	want := result.NetProfit.Div(result.OutputQuantity)
	if !p.LossPerUnit.Equal(want) {
		t.Errorf("loss per unit = %s, want %s", p.LossPerUnit, want)
	}
}

func TestSynthesizeInsufficientData(t *testing.T) {
	analysis := types.RouteAnalysis{Verdict: types.VerdictInsufficientData}

	p := plan.NewSynthesizer().Synthesize(analysis, types.TierT5, types.ResourceOre, 300, types.ProductionResult{}, types.CityThetford)

	if p.Verdict != types.PlanInsufficientData {
		t.Fatalf("verdict = %s, want insufficient_data", p.Verdict)
	}
	if len(p.Steps) != 0 {
		t.Error("insufficient-data plan must not carry steps")
	}
}

func TestQuickSummary(t *testing.T) {
	result := refineResult(420)
	p := plan.NewSynthesizer().Synthesize(routeAnalysis(420), types.TierT5, types.ResourceOre, 300, result, types.CityThetford)

	want := "Martlock -> Thetford -> Lymhurst"
	if got := plan.QuickSummary(p); got != want {
		t.Errorf("QuickSummary = %q, want %q", got, want)
	}

	loss := plan.NewSynthesizer().Synthesize(routeAnalysis(100), types.TierT5, types.ResourceOre, 300, refineResult(100), types.CityThetford)
	if got := plan.QuickSummary(loss); got != "not profitable at current prices" {
		t.Errorf("loss QuickSummary = %q", got)
	}
}

func hasWarningContaining(p types.ActionPlan, fragment string) bool {
	for _, w := range p.Warnings {
		if strings.Contains(w, fragment) {
			return true
		}
	}
	return false
}
