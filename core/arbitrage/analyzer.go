// Package arbitrage finds the best buy/produce/sell route for a refined
// good across the candidate cities.
//
// The analyzer is constructed explicitly with its tables, calculator and
// exclusions; there is no ambient or global instance.
package arbitrage

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"albion-profit/core/economy"
	"albion-profit/core/production"
	"albion-profit/core/types"
	"albion-profit/internal/logging"
)

const (
	// MinProfitableMarginPercent is the minimum margin for a per-leg
	// spread to count as profitable. Fixed reference behavior; a
	// configuration candidate rather than a settled business rule.
	MinProfitableMarginPercent = 5.0

	// ReferenceQuantity is the fixed raw quantity used to evaluate
	// composite routes for comparison. The caller applies the real
	// requested quantity afterwards.
	ReferenceQuantity = 100

	// MaxRouteOptions bounds the route listing
	MaxRouteOptions = 5
)

// CityQuotes holds the quotes for the three item legs in one city.
type CityQuotes struct {
	// Raw quotes the raw resource of the target tier
	Raw types.PriceQuote `json:"raw"`

	// PrevIntermediate quotes the refined good one tier below
	PrevIntermediate types.PriceQuote `json:"prev_intermediate"`

	// Output quotes the refined output of the target tier
	Output types.PriceQuote `json:"output"`
}

// Analyzer evaluates arbitrage routes. Construct with NewAnalyzer.
type Analyzer struct {
	tables   *economy.Tables
	calc     *production.Calculator
	excluded map[types.City]bool
}

// NewAnalyzer creates an analyzer. Excluded cities are removed from the
// candidate set before any price search.
func NewAnalyzer(calc *production.Calculator, excluded []types.City) *Analyzer {
	ex := make(map[types.City]bool, len(excluded))
	for _, city := range excluded {
		ex[city] = true
	}
	return &Analyzer{
		tables:   calc.Tables(),
		calc:     calc,
		excluded: ex,
	}
}

// Analyze determines, independently per leg, the best city to buy and
// to sell, then evaluates the composite route: buy at the best-buy
// cities, produce in the city with the highest production bonus for the
// resource (chosen for yield, not price), sell at the best-sell city.
//
// Missing previous-tier prices everywhere cost that leg at zero and the
// analysis continues; missing raw or output prices everywhere yield an
// explicit insufficient-data verdict instead of fabricated numbers.
func (a *Analyzer) Analyze(quotes map[types.City]CityQuotes, tier types.Tier, resource types.ResourceType, profile types.PlayerProfile) types.RouteAnalysis {
	resource = types.NormalizeResourceType(string(resource))

	// Exclusions filter the candidate set before any min/max search.
	candidates := make(map[types.City]CityQuotes, len(quotes))
	for city, q := range quotes {
		if !a.excluded[city] {
			candidates[city] = q
		}
	}

	analysis := types.RouteAnalysis{
		Tier:             tier,
		Resource:         resource,
		Raw:              a.bestBuySell(candidates, types.LegRaw),
		PrevIntermediate: a.bestBuySell(candidates, types.LegPrevIntermediate),
		Output:           a.bestBuySell(candidates, types.LegOutput),
	}

	if analysis.Raw.BuyCity == "" || analysis.Output.SellCity == "" {
		logging.Debug("insufficient market data for composite route",
			zap.String("tier", tier.String()),
			zap.String("resource", resource.String()))
		analysis.Verdict = types.VerdictInsufficientData
		return analysis
	}

	prevPrice := decimal.Zero
	if analysis.PrevIntermediate.BuyCity != "" {
		prevPrice = analysis.PrevIntermediate.BuyPrice
	}

	analysis.ProductionCity = a.tables.OptimalRefiningCity(resource)
	analysis.Composite = a.calc.Refine(production.RefineInput{
		Tier:        tier,
		Resource:    resource,
		City:        analysis.ProductionCity,
		RawPrice:    analysis.Raw.BuyPrice,
		PrevPrice:   prevPrice,
		OutputPrice: analysis.Output.SellPrice,
		Quantity:    ReferenceQuantity,
		Profile:     profile,
	})
	analysis.Routes = a.routeOptions(candidates, analysis, tier, resource, prevPrice, profile)
	analysis.Verdict = types.VerdictOK
	return analysis
}

// bestBuySell finds the lowest positive ask (best place to buy) and the
// highest positive bid (best place to sell) for one leg.
func (a *Analyzer) bestBuySell(candidates map[types.City]CityQuotes, leg types.ItemLeg) types.LegRecommendation {
	rec := types.LegRecommendation{Leg: leg}

	for _, city := range types.AllCities {
		quotes, ok := candidates[city]
		if !ok {
			continue
		}
		quote := legQuote(quotes, leg)

		if quote.HasSell() && (rec.BuyCity == "" || quote.SellMin.LessThan(rec.BuyPrice)) {
			rec.BuyCity = city
			rec.BuyPrice = quote.SellMin
		}
		if quote.HasBuy() && quote.BuyMax.GreaterThan(rec.SellPrice) {
			rec.SellCity = city
			rec.SellPrice = quote.BuyMax
		}
	}

	rec.HasData = rec.BuyCity != "" || rec.SellCity != ""
	if rec.BuyCity != "" && rec.SellCity != "" {
		rec.ProfitPerUnit = rec.SellPrice.Sub(rec.BuyPrice)
		if rec.BuyPrice.IsPositive() {
			margin, _ := rec.ProfitPerUnit.Div(rec.BuyPrice).Float64()
			rec.MarginPercent = margin * 100
		}
		rec.Profitable = rec.ProfitPerUnit.IsPositive() && rec.MarginPercent > MinProfitableMarginPercent
	}
	return rec
}

// routeOptions evaluates every candidate sell city for the output and
// keeps the profitable routes, best first.
func (a *Analyzer) routeOptions(candidates map[types.City]CityQuotes, analysis types.RouteAnalysis, tier types.Tier, resource types.ResourceType, prevPrice decimal.Decimal, profile types.PlayerProfile) []types.RouteOption {
	var options []types.RouteOption

	for _, sellCity := range types.AllCities {
		quotes, ok := candidates[sellCity]
		if !ok || !quotes.Output.HasBuy() {
			continue
		}

		result := a.calc.Refine(production.RefineInput{
			Tier:        tier,
			Resource:    resource,
			City:        analysis.ProductionCity,
			RawPrice:    analysis.Raw.BuyPrice,
			PrevPrice:   prevPrice,
			OutputPrice: quotes.Output.BuyMax,
			Quantity:    ReferenceQuantity,
			Profile:     profile,
		})
		if !result.Profitable() {
			continue
		}

		option := types.RouteOption{
			BuyCity:         analysis.Raw.BuyCity,
			ProduceCity:     analysis.ProductionCity,
			SellCity:        sellCity,
			EstimatedProfit: result.NetProfit,
			MarginPercent:   result.ProfitMargin,
		}
		if analysis.PrevIntermediate.BuyCity != "" {
			option.PrevBuyCity = analysis.PrevIntermediate.BuyCity
			option.Strategy = fmt.Sprintf("Buy raw in %s & %s intermediate in %s, refine in %s, sell in %s",
				option.BuyCity, tier.Prev(), option.PrevBuyCity, option.ProduceCity, sellCity)
		} else {
			option.Strategy = fmt.Sprintf("Buy raw in %s, refine in %s, sell in %s",
				option.BuyCity, option.ProduceCity, sellCity)
		}
		options = append(options, option)
	}

	// Insert-sorted by profit descending; the candidate set is tiny.
	for i := 1; i < len(options); i++ {
		for j := i; j > 0 && options[j].EstimatedProfit.GreaterThan(options[j-1].EstimatedProfit); j-- {
			options[j], options[j-1] = options[j-1], options[j]
		}
	}
	if len(options) > MaxRouteOptions {
		options = options[:MaxRouteOptions]
	}
	return options
}

func legQuote(quotes CityQuotes, leg types.ItemLeg) types.PriceQuote {
	switch leg {
	case types.LegRaw:
		return quotes.Raw
	case types.LegPrevIntermediate:
		return quotes.PrevIntermediate
	default:
		return quotes.Output
	}
}
