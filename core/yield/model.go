// Package yield computes resource return rates and focus-point costs.
//
// The two production kinds use deliberately incompatible return-rate
// models. Refining composes additive bonuses through a saturating
// transform (bonuses are complementary, with diminishing returns);
// crafting uses a plain additive rate with a hard cap. They are kept as
// two named operations and must not be unified.
package yield

import (
	"albion-profit/core/economy"
	"albion-profit/core/types"
)

// Refining constants.
const (
	// BaseRefiningBonus is the bonus present on every refining batch,
	// corresponding to a ~15.2% base return rate
	BaseRefiningBonus = 0.18

	// FocusRefiningBonus is the flat bonus added when focus is spent
	FocusRefiningBonus = 0.45

	// RefiningSpecFocusReduction is the focus-cost reduction at 100
	// specialization
	RefiningSpecFocusReduction = 0.50

	// RefiningPremiumFocusMultiplier halves focus cost for premium
	// accounts (premium affects focus efficiency, not the return rate)
	RefiningPremiumFocusMultiplier = 0.50
)

// Crafting constants.
const (
	// CraftingSpecReturnBonus is the return-rate bonus at 100
	// specialization
	CraftingSpecReturnBonus = 0.30

	// CraftingFocusReturnBonus is the flat return-rate bonus when focus
	// is spent
	CraftingFocusReturnBonus = 0.35

	// CraftingReturnCap bounds the crafting return rate
	CraftingReturnCap = 0.70

	// CraftingSpecFocusReduction is the focus-cost reduction at 100
	// specialization
	CraftingSpecFocusReduction = 0.50
)

// MinEquipmentFocusMultiplier bounds how far gear can cut focus cost.
const MinEquipmentFocusMultiplier = 0.10

// Model computes yields and focus costs from the reference tables.
type Model struct {
	tables *economy.Tables
}

// NewModel creates a yield model over the given tables.
func NewModel(tables *economy.Tables) Model {
	return Model{tables: tables}
}

// RefiningReturnRate computes the refining resource return rate.
//
// An additive total bonus is accumulated (base + local production bonus
// + focus + gear + food) and converted through the saturating transform
//
//	rate = 1 - 1/(1 + totalBonus)
//
// so the result always stays in [0, 1). The city bonus does not apply on
// a personal island. Specialization and premium do not appear here; for
// refining they affect focus cost only.
func (m Model) RefiningReturnRate(city types.City, resource types.ResourceType, profile types.PlayerProfile, personalIsland bool) float64 {
	totalBonus := BaseRefiningBonus

	if !personalIsland {
		totalBonus += m.tables.ProductionBonusFor(city, resource)
	}
	if profile.UseFocus {
		totalBonus += FocusRefiningBonus
	}
	totalBonus += profile.EquipmentReturnBonus + profile.FoodReturnBonus

	return 1 - 1/(1+totalBonus)
}

// CraftingReturnRate computes the crafting return rate: the tier's base
// rate plus specialization, focus, gear and food bonuses, capped at
// CraftingReturnCap. Unlike refining, this rate augments the count of
// finished goods, not material refunds.
func (m Model) CraftingReturnRate(tier types.Tier, profile types.PlayerProfile) float64 {
	rate := m.tables.CraftingBaseReturnFor(tier)
	rate += float64(profile.ClampedSpecialization()) / 100 * CraftingSpecReturnBonus
	if profile.UseFocus {
		rate += CraftingFocusReturnBonus
	}
	rate += profile.EquipmentReturnBonus + profile.FoodReturnBonus

	if rate > CraftingReturnCap {
		return CraftingReturnCap
	}
	if rate < 0 {
		return 0
	}
	return rate
}

// RefiningFocusCost computes the focus cost of refining a batch:
// base(tier) x quantity, reduced by specialization and premium, scaled
// by the gear focus multiplier, floored at 1 per batch.
func (m Model) RefiningFocusCost(tier types.Tier, quantity int, profile types.PlayerProfile) int {
	if quantity <= 0 {
		return 0
	}
	base := float64(m.tables.FocusCostFor(tier))
	specReduction := 1 - float64(profile.ClampedSpecialization())/100*RefiningSpecFocusReduction

	premiumMultiplier := 1.0
	if profile.Premium {
		premiumMultiplier = RefiningPremiumFocusMultiplier
	}

	cost := base * float64(quantity) * specReduction * premiumMultiplier * m.equipmentFocusMultiplier(profile)
	if cost < 1 {
		return 1
	}
	return int(cost)
}

// CraftingFocusCost computes the focus cost of one craft. Zero when
// focus is not used; otherwise base(tier) reduced by specialization and
// gear, floored at 1.
func (m Model) CraftingFocusCost(tier types.Tier, profile types.PlayerProfile) int {
	if !profile.UseFocus {
		return 0
	}
	base := float64(m.tables.FocusCostFor(tier))
	specReduction := 1 - float64(profile.ClampedSpecialization())/100*CraftingSpecFocusReduction

	cost := base * specReduction * m.equipmentFocusMultiplier(profile)
	if cost < 1 {
		return 1
	}
	return int(cost)
}

func (m Model) equipmentFocusMultiplier(profile types.PlayerProfile) float64 {
	multiplier := 1 - profile.EquipmentFocusReduction
	if multiplier < MinEquipmentFocusMultiplier {
		return MinEquipmentFocusMultiplier
	}
	return multiplier
}
