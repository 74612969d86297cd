// Package types - Arbitrage recommendation types
package types

import "github.com/shopspring/decimal"

// ItemLeg names one of the three item categories in a refining route.
type ItemLeg string

const (
	// LegRaw is the raw resource of the target tier
	LegRaw ItemLeg = "raw"

	// LegPrevIntermediate is the refined good one tier below
	LegPrevIntermediate ItemLeg = "prev_intermediate"

	// LegOutput is the refined output of the target tier
	LegOutput ItemLeg = "output"
)

// LegRecommendation is the independent buy/sell recommendation for one
// item leg across the candidate cities.
type LegRecommendation struct {
	// Leg identifies the item category
	Leg ItemLeg `json:"leg"`

	// HasData is false when no usable quote exists anywhere for the leg
	HasData bool `json:"has_data"`

	// BuyCity is the city with the lowest positive ask
	BuyCity City `json:"buy_city,omitempty"`

	// BuyPrice is the ask paid when buying there
	BuyPrice decimal.Decimal `json:"buy_price"`

	// SellCity is the city with the highest positive bid
	SellCity City `json:"sell_city,omitempty"`

	// SellPrice is the bid received when selling there
	SellPrice decimal.Decimal `json:"sell_price"`

	// ProfitPerUnit is SellPrice - BuyPrice
	ProfitPerUnit decimal.Decimal `json:"profit_per_unit"`

	// MarginPercent is ProfitPerUnit relative to BuyPrice
	MarginPercent float64 `json:"margin_percent"`

	// Profitable is true when the spread clears the minimum margin
	Profitable bool `json:"profitable"`
}

// RouteOption is one evaluated buy/produce/sell combination.
type RouteOption struct {
	// BuyCity is where the raw input is bought
	BuyCity City `json:"buy_city"`

	// PrevBuyCity is where the previous-tier input is bought, if any
	PrevBuyCity City `json:"prev_buy_city,omitempty"`

	// ProduceCity is where production happens
	ProduceCity City `json:"produce_city"`

	// SellCity is where the output is sold
	SellCity City `json:"sell_city"`

	// EstimatedProfit is the net profit at the reference quantity
	EstimatedProfit decimal.Decimal `json:"estimated_profit"`

	// MarginPercent is the profit margin of the evaluated run
	MarginPercent float64 `json:"margin_percent"`

	// Strategy is a plain-text description of the route
	Strategy string `json:"strategy"`
}

// AnalysisVerdict summarizes an arbitrage analysis outcome.
type AnalysisVerdict string

const (
	// VerdictOK means the composite route was fully evaluated
	VerdictOK AnalysisVerdict = "ok"

	// VerdictInsufficientData means a required leg had no usable price
	// anywhere; no numbers were fabricated
	VerdictInsufficientData AnalysisVerdict = "insufficient_data"
)

// RouteAnalysis is the complete output of the arbitrage analyzer: the
// three per-leg recommendations plus the composite route evaluation.
type RouteAnalysis struct {
	// Tier is the analyzed tier
	Tier Tier `json:"tier"`

	// Resource is the analyzed resource type
	Resource ResourceType `json:"resource"`

	// Verdict indicates whether the analysis had enough data
	Verdict AnalysisVerdict `json:"verdict"`

	// Raw is the raw-resource leg recommendation
	Raw LegRecommendation `json:"raw"`

	// PrevIntermediate is the previous-tier leg recommendation. When no
	// price exists anywhere the leg cost is treated as zero and the
	// analysis continues.
	PrevIntermediate LegRecommendation `json:"prev_intermediate"`

	// Output is the refined-output leg recommendation
	Output LegRecommendation `json:"output"`

	// ProductionCity is the bonus-optimal city where production occurs,
	// chosen for yield independently of where buying/selling happens
	ProductionCity City `json:"production_city"`

	// Composite is the full-route evaluation at the reference quantity
	Composite ProductionResult `json:"composite"`

	// Routes lists the best profitable sell-city options, profit-ordered
	Routes []RouteOption `json:"routes,omitempty"`
}
