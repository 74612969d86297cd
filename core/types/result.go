// Package types - Production result types
package types

import "github.com/shopspring/decimal"

// ProductionResult is the full cost/revenue/tax/profit breakdown for one
// production run in one city. Both production kinds emit the same shape
// so ranking and planning code is agnostic to which was used. Computed
// once per call; never mutated afterwards.
type ProductionResult struct {
	// Kind identifies which strategy produced this result
	Kind ProductionKind `json:"kind"`

	// Tier is the output tier
	Tier Tier `json:"tier"`

	// City is where production happens
	City City `json:"city"`

	// InputCost is the total spent on input materials
	InputCost decimal.Decimal `json:"input_cost"`

	// RawMaterialCost is the raw-leg share of InputCost (refining)
	RawMaterialCost decimal.Decimal `json:"raw_material_cost"`

	// PrevMaterialCost is the previous-tier share of InputCost (refining)
	PrevMaterialCost decimal.Decimal `json:"prev_material_cost"`

	// MaterialCosts breaks InputCost down per named material (crafting)
	MaterialCosts map[string]decimal.Decimal `json:"material_costs,omitempty"`

	// TaxCost is the station usage fee
	TaxCost decimal.Decimal `json:"tax_cost"`

	// FocusCost is the focus points spent on the batch
	FocusCost int `json:"focus_cost"`

	// TotalCost is InputCost + TaxCost
	TotalCost decimal.Decimal `json:"total_cost"`

	// ReturnRate is the applied resource return rate
	ReturnRate float64 `json:"return_rate"`

	// ResourcesReturned is the count of raw inputs refunded (refining)
	ResourcesReturned int `json:"resources_returned"`

	// ReturnedValue is the saved-cost value of refunded materials
	ReturnedValue decimal.Decimal `json:"returned_value"`

	// RawConsumed is the raw input quantity processed
	RawConsumed int `json:"raw_consumed"`

	// PrevIntermediateNeeded is the previous-tier input quantity
	PrevIntermediateNeeded int `json:"prev_intermediate_needed"`

	// OutputQuantity is the amount produced. Integral for refining;
	// fractional for crafting, where the return rate augments the count
	// of finished goods.
	OutputQuantity decimal.Decimal `json:"output_quantity"`

	// TotalRevenue is sale value plus ReturnedValue
	TotalRevenue decimal.Decimal `json:"total_revenue"`

	// NetProfit is TotalRevenue - TotalCost
	NetProfit decimal.Decimal `json:"net_profit"`

	// ProfitMargin is the percentage margin, always finite. Refining
	// relates profit to total cost, crafting to total revenue; both are
	// zero when the denominator is zero.
	ProfitMargin float64 `json:"profit_margin"`

	// BreakEvenPrice is cost per produced unit (crafting only)
	BreakEvenPrice decimal.Decimal `json:"break_even_price,omitempty"`

	// Premium records the premium flag used for the run
	Premium bool `json:"premium"`

	// UseFocus records the focus flag used for the run
	UseFocus bool `json:"use_focus"`
}

// HasOutput reports whether the run produced anything. A zero-output
// result signals a degenerate quantity, not an error.
func (r ProductionResult) HasOutput() bool {
	return r.OutputQuantity.IsPositive()
}

// Profitable reports whether the run nets a positive profit.
func (r ProductionResult) Profitable() bool {
	return r.NetProfit.IsPositive()
}
