// Package ranking orders candidate production cities by net profit for
// one price scenario.
package ranking

import (
	"sort"

	"github.com/shopspring/decimal"

	"albion-profit/core/production"
	"albion-profit/core/types"
)

// Entry is one city's evaluation within a ranking.
type Entry struct {
	// City is the evaluated production city
	City types.City `json:"city"`

	// NetProfit is the run's net profit
	NetProfit decimal.Decimal `json:"net_profit"`

	// MarginPercent is the run's profit margin
	MarginPercent float64 `json:"margin_percent"`

	// ReturnRate is the applied return rate
	ReturnRate float64 `json:"return_rate"`

	// TaxRate is the city's station fee rate
	TaxRate float64 `json:"tax_rate"`

	// ProductionBonus is the city's local production bonus
	ProductionBonus float64 `json:"production_bonus"`

	// Result is the full breakdown behind the entry
	Result types.ProductionResult `json:"result"`
}

// Ranker evaluates every known, non-excluded city for a scenario.
// Excluded cities never appear in its output.
type Ranker struct {
	calc     *production.Calculator
	excluded map[types.City]bool
}

// NewRanker creates a ranker. Cities listed in excluded are removed
// from consideration entirely.
func NewRanker(calc *production.Calculator, excluded []types.City) *Ranker {
	ex := make(map[types.City]bool, len(excluded))
	for _, city := range excluded {
		ex[city] = true
	}
	return &Ranker{calc: calc, excluded: ex}
}

// RefiningScenario applies one set of prices to every candidate city.
type RefiningScenario struct {
	// Tier is the output tier
	Tier types.Tier

	// Resource is the resource family
	Resource types.ResourceType

	// RawPrice is the raw unit price, applied in every city
	RawPrice decimal.Decimal

	// PrevPrice is the previous-tier unit price
	PrevPrice decimal.Decimal

	// OutputPrice is the refined unit sale price
	OutputPrice decimal.Decimal

	// Quantity is the raw quantity to process
	Quantity int

	// Profile carries the player modifiers
	Profile types.PlayerProfile
}

// RankRefining evaluates the refining scenario in every candidate city
// and returns a descending-by-net-profit ordering. The sort is stable:
// ties keep the fixed types.AllCities order.
func (r *Ranker) RankRefining(s RefiningScenario) []Entry {
	resource := types.NormalizeResourceType(string(s.Resource))
	entries := make([]Entry, 0, len(types.AllCities))

	for _, city := range types.AllCities {
		if r.excluded[city] {
			continue
		}

		result := r.calc.Refine(production.RefineInput{
			Tier:        s.Tier,
			Resource:    resource,
			City:        city,
			RawPrice:    s.RawPrice,
			PrevPrice:   s.PrevPrice,
			OutputPrice: s.OutputPrice,
			Quantity:    s.Quantity,
			Profile:     s.Profile,
		})

		entries = append(entries, Entry{
			City:            city,
			NetProfit:       result.NetProfit,
			MarginPercent:   result.ProfitMargin,
			ReturnRate:      result.ReturnRate,
			TaxRate:         r.calc.Tables().TaxRateFor(types.KindRefining, city),
			ProductionBonus: r.calc.Tables().ProductionBonusFor(city, resource),
			Result:          result,
		})
	}

	sortByProfit(entries)
	return entries
}

// CraftingScenario carries one price map per candidate city. Cities with
// no material prices or no sell price are skipped, not zero-filled.
type CraftingScenario struct {
	// RecipeID is the recipe to craft
	RecipeID string

	// MaterialPricesByCity maps city -> material -> unit price
	MaterialPricesByCity map[types.City]map[string]decimal.Decimal

	// SellPriceByCity maps city -> crafted item sale price
	SellPriceByCity map[types.City]decimal.Decimal

	// Quantity is the number of crafts
	Quantity int

	// Profile carries the player modifiers
	Profile types.PlayerProfile
}

// RankCrafting evaluates the crafting scenario in every candidate city
// with usable price data and returns a descending-by-net-profit,
// stable ordering.
func (r *Ranker) RankCrafting(s CraftingScenario) []Entry {
	entries := make([]Entry, 0, len(types.AllCities))

	for _, city := range types.AllCities {
		if r.excluded[city] {
			continue
		}

		materialPrices := s.MaterialPricesByCity[city]
		sellPrice, hasSell := s.SellPriceByCity[city]
		if len(materialPrices) == 0 || !hasSell || !sellPrice.IsPositive() {
			continue
		}

		result, err := r.calc.Craft(production.CraftInput{
			RecipeID:       s.RecipeID,
			City:           city,
			MaterialPrices: materialPrices,
			SellPrice:      sellPrice,
			Quantity:       s.Quantity,
			Profile:        s.Profile,
		})
		if err != nil {
			continue
		}

		entries = append(entries, Entry{
			City:          city,
			NetProfit:     result.NetProfit,
			MarginPercent: result.ProfitMargin,
			ReturnRate:    result.ReturnRate,
			TaxRate:       r.calc.Tables().TaxRateFor(types.KindCrafting, city),
			Result:        result,
		})
	}

	sortByProfit(entries)
	return entries
}

func sortByProfit(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].NetProfit.GreaterThan(entries[j].NetProfit)
	})
}
