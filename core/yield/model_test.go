// Package yield_test - return rate and focus cost tests
package yield_test

import (
	"math"
	"testing"

	"albion-profit/core/economy"
	"albion-profit/core/types"
	"albion-profit/core/yield"
)

func newModel() yield.Model {
	return yield.NewModel(economy.NewTables())
}

func TestRefiningReturnRate(t *testing.T) {
	model := newModel()

	tests := []struct {
		name    string
		city    types.City
		profile types.PlayerProfile
		island  bool
		want    float64
	}{
		{
			name: "base only",
			city: types.CityCaerleon,
			want: 1 - 1/1.18,
		},
		{
			name: "city bonus",
			city: types.CityThetford,
			want: 1 - 1/1.58,
		},
		{
			name:    "city bonus plus focus",
			city:    types.CityThetford,
			profile: types.PlayerProfile{UseFocus: true},
			want:    1 - 1/2.03,
		},
		{
			name:   "personal island drops city bonus",
			city:   types.CityThetford,
			island: true,
			want:   1 - 1/1.18,
		},
		{
			name:    "gear and food stack additively",
			city:    types.CityCaerleon,
			profile: types.PlayerProfile{EquipmentReturnBonus: 0.10, FoodReturnBonus: 0.05},
			want:    1 - 1/1.33,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := model.RefiningReturnRate(tt.city, types.ResourceOre, tt.profile, tt.island)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("RefiningReturnRate = %v, want %v", got, tt.want)
			}
			if got < 0 || got >= 1 {
				t.Errorf("RefiningReturnRate = %v, outside [0, 1)", got)
			}
		})
	}
}

func TestRefiningReturnRateIgnoresSpecialization(t *testing.T) {
	model := newModel()
	low := model.RefiningReturnRate(types.CityThetford, types.ResourceOre, types.PlayerProfile{Specialization: 0}, false)
	high := model.RefiningReturnRate(types.CityThetford, types.ResourceOre, types.PlayerProfile{Specialization: 100}, false)
	if low != high {
		t.Errorf("refining rate must not depend on specialization: %v vs %v", low, high)
	}
}

func TestCraftingReturnRate(t *testing.T) {
	model := newModel()

	tests := []struct {
		name    string
		tier    types.Tier
		profile types.PlayerProfile
		want    float64
	}{
		{
			name: "base T4",
			tier: types.TierT4,
			want: 0.15,
		},
		{
			name:    "spec and focus",
			tier:    types.TierT4,
			profile: types.PlayerProfile{Specialization: 50, UseFocus: true},
			want:    0.15 + 0.15 + 0.35,
		},
		{
			name:    "capped",
			tier:    types.TierT8,
			profile: types.PlayerProfile{Specialization: 100, UseFocus: true, EquipmentReturnBonus: 0.2, FoodReturnBonus: 0.2},
			want:    yield.CraftingReturnCap,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := model.CraftingReturnRate(tt.tier, tt.profile)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("CraftingReturnRate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCraftingReturnRateMonotonicInSpecialization(t *testing.T) {
	model := newModel()
	prev := -1.0
	for spec := 0; spec <= 100; spec += 20 {
		rate := model.CraftingReturnRate(types.TierT4, types.PlayerProfile{Specialization: spec})
		if rate < prev {
			t.Fatalf("rate decreased at spec %d: %v < %v", spec, rate, prev)
		}
		prev = rate
	}
}

func TestRefiningFocusCost(t *testing.T) {
	model := newModel()

	tests := []struct {
		name     string
		tier     types.Tier
		quantity int
		profile  types.PlayerProfile
		want     int
	}{
		{
			name:     "T5 batch with spec and premium",
			tier:     types.TierT5,
			quantity: 100,
			profile:  types.PlayerProfile{Specialization: 50, Premium: true},
			want:     750, // 20 * 100 * 0.75 * 0.5
		},
		{
			name:     "no modifiers",
			tier:     types.TierT4,
			quantity: 10,
			profile:  types.PlayerProfile{},
			want:     100,
		},
		{
			name:     "floored at one",
			tier:     types.TierT4,
			quantity: 1,
			profile:  types.PlayerProfile{Specialization: 100, Premium: true, EquipmentFocusReduction: 0.9},
			want:     1,
		},
		{
			name:     "zero quantity",
			tier:     types.TierT4,
			quantity: 0,
			profile:  types.PlayerProfile{},
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := model.RefiningFocusCost(tt.tier, tt.quantity, tt.profile); got != tt.want {
				t.Errorf("RefiningFocusCost = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCraftingFocusCost(t *testing.T) {
	model := newModel()

	if got := model.CraftingFocusCost(types.TierT4, types.PlayerProfile{}); got != 0 {
		t.Errorf("focus cost without focus = %d, want 0", got)
	}

	got := model.CraftingFocusCost(types.TierT4, types.PlayerProfile{UseFocus: true, Specialization: 50})
	if got != 7 { // 10 * 0.75 truncated
		t.Errorf("focus cost = %d, want 7", got)
	}

	floored := model.CraftingFocusCost(types.TierT4, types.PlayerProfile{UseFocus: true, Specialization: 100, EquipmentFocusReduction: 0.95})
	if floored != 1 {
		t.Errorf("focus cost = %d, want floor of 1", floored)
	}
}

func TestEquipmentFocusReductionIsBounded(t *testing.T) {
	model := newModel()
	// Even absurd gear reduction cannot push cost below the bounded
	// multiplier.
	extreme := model.RefiningFocusCost(types.TierT8, 1000, types.PlayerProfile{EquipmentFocusReduction: 5.0})
	expected := int(160 * 1000 * yield.MinEquipmentFocusMultiplier)
	if extreme != expected {
		t.Errorf("bounded focus cost = %d, want %d", extreme, expected)
	}
}
