// Package types - Market quote and player profile types
package types

import "github.com/shopspring/decimal"

// PriceQuote holds the two sides of a market quote for one item in one
// city. Amounts are never negative; zero means "no data", never "free".
type PriceQuote struct {
	// SellMin is the lowest ask - what a buyer pays
	SellMin decimal.Decimal `json:"sell_min"`

	// BuyMax is the highest bid - what a seller receives
	BuyMax decimal.Decimal `json:"buy_max"`
}

// HasSell reports whether a usable ask price is present.
func (q PriceQuote) HasSell() bool {
	return q.SellMin.IsPositive()
}

// HasBuy reports whether a usable bid price is present.
func (q PriceQuote) HasBuy() bool {
	return q.BuyMax.IsPositive()
}

// PlayerProfile carries the player-side modifiers read once per
// calculation. All bonuses compose additively into the yield formulas;
// the focus reduction composes multiplicatively into focus cost.
type PlayerProfile struct {
	// Specialization is the activity specialization level (0-100)
	Specialization int `json:"specialization"`

	// Premium indicates premium account status
	Premium bool `json:"premium"`

	// UseFocus indicates whether focus points are spent on the batch
	UseFocus bool `json:"use_focus"`

	// EquipmentReturnBonus is the additive return-rate bonus from gear
	EquipmentReturnBonus float64 `json:"equipment_return_bonus"`

	// EquipmentFocusReduction is the fractional focus-cost reduction
	// from gear (0.2 = 20% cheaper)
	EquipmentFocusReduction float64 `json:"equipment_focus_reduction"`

	// FoodReturnBonus is the additive return-rate bonus from food buffs
	FoodReturnBonus float64 `json:"food_return_bonus"`
}

// ClampedSpecialization returns the specialization bounded to [0,100].
func (p PlayerProfile) ClampedSpecialization() int {
	if p.Specialization < 0 {
		return 0
	}
	if p.Specialization > 100 {
		return 100
	}
	return p.Specialization
}
