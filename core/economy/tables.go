// Package economy holds the static reference data of the production
// economy: per-city production bonuses and tax rates, per-tier focus and
// material requirements, item base values, and crafting recipes.
//
// Lookups never fail. An unknown tier, city or resource falls back to a
// documented default constant with a warn-level log; degraded-but-present
// output is preferred over failure for reference-table access.
package economy

import (
	"go.uber.org/zap"

	"albion-profit/core/types"
	"albion-profit/internal/logging"
)

// Fallback defaults for unknown reference-table keys.
const (
	// DefaultTaxRate applies to unknown cities
	DefaultTaxRate = 0.05

	// DefaultFocusCost applies to unknown tiers
	DefaultFocusCost = 10

	// DefaultCraftingBaseReturn applies to unknown tiers
	DefaultCraftingBaseReturn = 0.15

	// NutritionMultiplier converts item base value to the taxable
	// nutrition cost of a refining batch
	NutritionMultiplier = 0.1125
)

// DefaultRequirement applies to unknown tiers: 2 raw + 1 previous-tier
// intermediate per output unit.
var DefaultRequirement = Requirement{Raw: 2, PrevIntermediate: 1}

// Requirement is the per-output-unit input ratio of a tier.
type Requirement struct {
	// Raw is the raw units consumed per output unit
	Raw int `json:"raw"`

	// PrevIntermediate is the previous-tier refined units per output unit
	PrevIntermediate int `json:"prev_intermediate"`
}

// Recipe is a crafting recipe: named material quantities plus the city
// bonus category it benefits from.
type Recipe struct {
	// Materials maps material item IDs to required quantities
	Materials map[string]int `json:"materials"`

	// Category is the recipe category (WEAPON, ARMOR, ACCESSORY)
	Category string `json:"category"`

	// BonusCategory is the city crafting-bonus category that reduces
	// this recipe's material requirements
	BonusCategory string `json:"bonus_category"`
}

// Tables is the complete set of reference tables. Treat as read-only
// after construction; every accessor is a pure lookup.
type Tables struct {
	// ProductionBonus is the refining local production bonus per city
	// and resource type (at most one nonzero bonus per city)
	ProductionBonus map[types.City]map[types.ResourceType]float64

	// RefiningTax is the refining station fee rate per city
	RefiningTax map[types.City]float64

	// CraftingTax is the crafting station fee rate per city
	CraftingTax map[types.City]float64

	// BaseFocusCost is the focus cost per output unit per tier, shared
	// by both production kinds
	BaseFocusCost map[types.Tier]int

	// Requirements is the per-tier input ratio
	Requirements map[types.Tier]Requirement

	// RawItemValue is the notional base value of raw items per tier
	RawItemValue map[types.Tier]int

	// RefinedItemValue is the notional base value of refined items per
	// tier, used for refining tax (taxation is on this value table, not
	// on transaction prices)
	RefinedItemValue map[types.Tier]int

	// CraftingBaseReturn is the crafting base return rate per tier
	CraftingBaseReturn map[types.Tier]float64

	// CraftingBonus is the material-requirement reduction per city and
	// bonus category (a quantity reduction, not a return-rate change)
	CraftingBonus map[types.City]map[string]float64

	// Recipes maps recipe IDs to crafting recipes
	Recipes map[string]Recipe
}

// NewTables returns the default reference tables.
func NewTables() *Tables {
	return &Tables{
		ProductionBonus: map[types.City]map[types.ResourceType]float64{
			types.CityThetford:     {types.ResourceOre: 0.40},
			types.CityFortSterling: {types.ResourceWood: 0.40},
			types.CityLymhurst:     {types.ResourceFiber: 0.40},
			types.CityBridgewatch:  {types.ResourceRock: 0.40},
			types.CityMartlock:     {types.ResourceHide: 0.40},
			types.CityCaerleon:     {},
			types.CityBrecilien:    {},
		},
		RefiningTax: map[types.City]float64{
			types.CityThetford:     0.045,
			types.CityFortSterling: 0.045,
			types.CityLymhurst:     0.045,
			types.CityBridgewatch:  0.045,
			types.CityMartlock:     0.045,
			types.CityCaerleon:     0.035,
			types.CityBrecilien:    0.020,
		},
		CraftingTax: map[types.City]float64{
			types.CityThetford:     0.045,
			types.CityFortSterling: 0.045,
			types.CityLymhurst:     0.045,
			types.CityBridgewatch:  0.045,
			types.CityMartlock:     0.045,
			types.CityCaerleon:     0.035,
			types.CityBrecilien:    0.045,
		},
		BaseFocusCost: map[types.Tier]int{
			types.TierT4: 10,
			types.TierT5: 20,
			types.TierT6: 40,
			types.TierT7: 80,
			types.TierT8: 160,
		},
		Requirements: map[types.Tier]Requirement{
			types.TierT4: {Raw: 2, PrevIntermediate: 1},
			types.TierT5: {Raw: 3, PrevIntermediate: 1},
			types.TierT6: {Raw: 4, PrevIntermediate: 1},
			types.TierT7: {Raw: 5, PrevIntermediate: 1},
			types.TierT8: {Raw: 6, PrevIntermediate: 1},
		},
		RawItemValue: map[types.Tier]int{
			types.TierT3: 4,
			types.TierT4: 8,
			types.TierT5: 16,
			types.TierT6: 32,
			types.TierT7: 64,
			types.TierT8: 128,
		},
		RefinedItemValue: map[types.Tier]int{
			types.TierT3: 24,
			types.TierT4: 72,
			types.TierT5: 192,
			types.TierT6: 480,
			types.TierT7: 1152,
			types.TierT8: 2688,
		},
		CraftingBaseReturn: map[types.Tier]float64{
			types.TierT4: 0.15,
			types.TierT5: 0.20,
			types.TierT6: 0.22,
			types.TierT7: 0.24,
			types.TierT8: 0.26,
		},
		CraftingBonus: map[types.City]map[string]float64{
			types.CityThetford:     {"FIBER": 0.15, "CLOTH": 0.15},
			types.CityFortSterling: {"ORE": 0.15, "METAL": 0.15},
			types.CityLymhurst:     {"WOOD": 0.15},
			types.CityBridgewatch:  {"HIDE": 0.15, "LEATHER": 0.15},
			types.CityMartlock:     {"ROCK": 0.15, "STONE": 0.15},
			types.CityCaerleon:     {},
			types.CityBrecilien:    {},
		},
		Recipes: defaultRecipes(),
	}
}

func defaultRecipes() map[string]Recipe {
	recipes := map[string]Recipe{
		"T4_BAG": {
			Materials:     map[string]int{"T4_CLOTH": 8, "T4_LEATHER": 4},
			Category:      "ACCESSORY",
			BonusCategory: "CLOTH",
		},
		"T5_BAG": {
			Materials:     map[string]int{"T5_CLOTH": 8, "T5_LEATHER": 4},
			Category:      "ACCESSORY",
			BonusCategory: "CLOTH",
		},
		"T6_BAG": {
			Materials:     map[string]int{"T6_CLOTH": 8, "T6_LEATHER": 4},
			Category:      "ACCESSORY",
			BonusCategory: "CLOTH",
		},
	}

	// Swords T4-T8: 16 metal of own tier + 8 of the previous tier.
	for _, t := range types.AllTiers {
		recipes[t.String()+"_SWORD"] = Recipe{
			Materials: map[string]int{
				t.String() + "_METAL":        16,
				t.Prev().String() + "_METAL": 8,
			},
			Category:      "WEAPON",
			BonusCategory: "METAL",
		}
	}

	// Cloth robes T4-T6.
	for _, t := range []types.Tier{types.TierT4, types.TierT5, types.TierT6} {
		recipes[t.String()+"_ARMOR_CLOTH_ROBE"] = Recipe{
			Materials: map[string]int{
				t.String() + "_CLOTH":        16,
				t.Prev().String() + "_CLOTH": 8,
			},
			Category:      "ARMOR",
			BonusCategory: "CLOTH",
		}
	}

	return recipes
}

// ProductionBonusFor returns the refining local production bonus for a
// city and resource type. Unknown keys yield 0.
func (t *Tables) ProductionBonusFor(city types.City, resource types.ResourceType) float64 {
	if bonuses, ok := t.ProductionBonus[city]; ok {
		return bonuses[resource]
	}
	logging.Debug("no production bonus data for city", zap.String("city", city.String()))
	return 0
}

// TaxRateFor returns the station fee rate for a city and production
// kind. Unknown cities fall back to DefaultTaxRate.
func (t *Tables) TaxRateFor(kind types.ProductionKind, city types.City) float64 {
	table := t.RefiningTax
	if kind == types.KindCrafting {
		table = t.CraftingTax
	}
	if rate, ok := table[city]; ok {
		return rate
	}
	logging.Warn("unknown city for tax lookup, using default",
		zap.String("city", city.String()),
		zap.Float64("default", DefaultTaxRate))
	return DefaultTaxRate
}

// FocusCostFor returns the base focus cost per output unit for a tier.
// Unknown tiers fall back to DefaultFocusCost.
func (t *Tables) FocusCostFor(tier types.Tier) int {
	if cost, ok := t.BaseFocusCost[tier]; ok {
		return cost
	}
	logging.Warn("unknown tier for focus cost lookup, using default",
		zap.String("tier", tier.String()),
		zap.Int("default", DefaultFocusCost))
	return DefaultFocusCost
}

// RequirementFor returns the input ratio for a tier. Unknown tiers fall
// back to DefaultRequirement.
func (t *Tables) RequirementFor(tier types.Tier) Requirement {
	if req, ok := t.Requirements[tier]; ok {
		return req
	}
	logging.Warn("unknown tier for requirement lookup, using default",
		zap.String("tier", tier.String()))
	return DefaultRequirement
}

// RefinedItemValueFor returns the notional base value of the refined
// item of a tier. Unknown tiers yield 0, which makes the tax term vanish
// rather than failing the calculation.
func (t *Tables) RefinedItemValueFor(tier types.Tier) int {
	if v, ok := t.RefinedItemValue[tier]; ok {
		return v
	}
	logging.Warn("unknown tier for item value lookup", zap.String("tier", tier.String()))
	return 0
}

// CraftingBaseReturnFor returns the crafting base return rate for a
// tier. Unknown tiers fall back to DefaultCraftingBaseReturn.
func (t *Tables) CraftingBaseReturnFor(tier types.Tier) float64 {
	if rate, ok := t.CraftingBaseReturn[tier]; ok {
		return rate
	}
	return DefaultCraftingBaseReturn
}

// CraftingBonusFor returns the material-requirement reduction for a city
// and bonus category. Unknown keys yield 0.
func (t *Tables) CraftingBonusFor(city types.City, category string) float64 {
	if bonuses, ok := t.CraftingBonus[city]; ok {
		return bonuses[category]
	}
	return 0
}

// RecipeFor looks up a crafting recipe. Recipes are caller-chosen input,
// not reference-table fallback material, so a missing recipe is reported
// to the caller instead of defaulted.
func (t *Tables) RecipeFor(id string) (Recipe, bool) {
	recipe, ok := t.Recipes[id]
	return recipe, ok
}

// OptimalRefiningCity returns the city with the single highest
// production bonus for a resource type. Caerleon is the neutral fallback
// when no city has a bonus.
func (t *Tables) OptimalRefiningCity(resource types.ResourceType) types.City {
	best := types.CityCaerleon
	maxBonus := 0.0
	for _, city := range types.AllCities {
		if bonus := t.ProductionBonusFor(city, resource); bonus > maxBonus {
			maxBonus = bonus
			best = city
		}
	}
	return best
}

// Clone returns a deep copy, used by the table-override adapter so the
// defaults stay untouched.
func (t *Tables) Clone() *Tables {
	out := &Tables{
		ProductionBonus:    make(map[types.City]map[types.ResourceType]float64, len(t.ProductionBonus)),
		RefiningTax:        make(map[types.City]float64, len(t.RefiningTax)),
		CraftingTax:        make(map[types.City]float64, len(t.CraftingTax)),
		BaseFocusCost:      make(map[types.Tier]int, len(t.BaseFocusCost)),
		Requirements:       make(map[types.Tier]Requirement, len(t.Requirements)),
		RawItemValue:       make(map[types.Tier]int, len(t.RawItemValue)),
		RefinedItemValue:   make(map[types.Tier]int, len(t.RefinedItemValue)),
		CraftingBaseReturn: make(map[types.Tier]float64, len(t.CraftingBaseReturn)),
		CraftingBonus:      make(map[types.City]map[string]float64, len(t.CraftingBonus)),
		Recipes:            make(map[string]Recipe, len(t.Recipes)),
	}
	for city, bonuses := range t.ProductionBonus {
		inner := make(map[types.ResourceType]float64, len(bonuses))
		for k, v := range bonuses {
			inner[k] = v
		}
		out.ProductionBonus[city] = inner
	}
	for k, v := range t.RefiningTax {
		out.RefiningTax[k] = v
	}
	for k, v := range t.CraftingTax {
		out.CraftingTax[k] = v
	}
	for k, v := range t.BaseFocusCost {
		out.BaseFocusCost[k] = v
	}
	for k, v := range t.Requirements {
		out.Requirements[k] = v
	}
	for k, v := range t.RawItemValue {
		out.RawItemValue[k] = v
	}
	for k, v := range t.RefinedItemValue {
		out.RefinedItemValue[k] = v
	}
	for k, v := range t.CraftingBaseReturn {
		out.CraftingBaseReturn[k] = v
	}
	for city, bonuses := range t.CraftingBonus {
		inner := make(map[string]float64, len(bonuses))
		for k, v := range bonuses {
			inner[k] = v
		}
		out.CraftingBonus[city] = inner
	}
	for id, recipe := range t.Recipes {
		materials := make(map[string]int, len(recipe.Materials))
		for k, v := range recipe.Materials {
			materials[k] = v
		}
		out.Recipes[id] = Recipe{
			Materials:     materials,
			Category:      recipe.Category,
			BonusCategory: recipe.BonusCategory,
		}
	}
	return out
}
