// Package types - Action plan types
package types

import "github.com/shopspring/decimal"

// StepAction is the kind of action a plan step describes.
type StepAction string

const (
	ActionBuy       StepAction = "buy"
	ActionTransport StepAction = "transport"
	ActionProduce   StepAction = "produce"
	ActionSell      StepAction = "sell"
)

// PlanVerdict is the profitability verdict of an action plan.
type PlanVerdict string

const (
	// PlanProfitable means the route nets a positive profit
	PlanProfitable PlanVerdict = "profitable"

	// PlanNotProfitable means the route loses money; the plan carries a
	// per-unit loss figure instead of steps
	PlanNotProfitable PlanVerdict = "not_profitable"

	// PlanInsufficientData means required prices were missing
	PlanInsufficientData PlanVerdict = "insufficient_data"
)

// PlanStep is one ordered action in a plan.
type PlanStep struct {
	// Seq is the 1-based step order
	Seq int `json:"seq"`

	// Action is the step kind
	Action StepAction `json:"action"`

	// Item describes what is handled (item id and form)
	Item string `json:"item"`

	// Quantity is how much is handled
	Quantity decimal.Decimal `json:"quantity"`

	// Location is where the step happens
	Location City `json:"location"`

	// UnitPrice is the per-unit price when known, zero otherwise
	UnitPrice decimal.Decimal `json:"unit_price"`

	// Subtotal is the step's computed total, zero when unpriceable
	Subtotal decimal.Decimal `json:"subtotal"`

	// Note carries free-form context (e.g. "cost depends on distance")
	Note string `json:"note,omitempty"`
}

// FinancialSummary condenses the money flow of a plan.
type FinancialSummary struct {
	// Investment is the total cost committed up front
	Investment decimal.Decimal `json:"investment"`

	// Revenue is the expected total revenue
	Revenue decimal.Decimal `json:"revenue"`

	// Profit is Revenue - Investment
	Profit decimal.Decimal `json:"profit"`

	// MarginPercent is the profit margin
	MarginPercent float64 `json:"margin_percent"`

	// RawNeeded is the raw input quantity
	RawNeeded int `json:"raw_needed"`

	// PrevIntermediateNeeded is the previous-tier input quantity
	PrevIntermediateNeeded int `json:"prev_intermediate_needed"`

	// OutputProduced is the produced quantity
	OutputProduced decimal.Decimal `json:"output_produced"`

	// Premium records the premium flag used
	Premium bool `json:"premium"`

	// FocusUsed records the focus flag used
	FocusUsed bool `json:"focus_used"`
}

// ActionPlan is an ordered, human-checkable buy/transport/produce/sell
// sequence with a profitability verdict. Constructed fresh per request;
// never persisted.
type ActionPlan struct {
	// Verdict is the profitability outcome
	Verdict PlanVerdict `json:"verdict"`

	// Summary is a one-line statement of the outcome
	Summary string `json:"summary"`

	// Steps is the ordered action sequence (empty unless profitable)
	Steps []PlanStep `json:"steps,omitempty"`

	// Financial is the money-flow summary
	Financial FinancialSummary `json:"financial"`

	// LossPerUnit is the per-output-unit loss for non-profitable plans
	LossPerUnit decimal.Decimal `json:"loss_per_unit,omitempty"`

	// Warnings are advisory flags; they never change the verdict
	Warnings []string `json:"warnings,omitempty"`

	// Recommendations are advisory suggestions
	Recommendations []string `json:"recommendations,omitempty"`
}

// IsProfitable reports whether the plan's verdict is profitable.
func (p ActionPlan) IsProfitable() bool {
	return p.Verdict == PlanProfitable
}
