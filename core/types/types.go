// Package types defines core domain types shared across all layers.
// This package contains NO business logic - only type definitions.
package types

import (
	"fmt"
	"strings"
)

// Tier is the ordinal item strength level. T4..T8 are refinable;
// T3 exists only as previous-tier context (it is never itself refined).
type Tier int

const (
	TierT3 Tier = iota + 3
	TierT4
	TierT5
	TierT6
	TierT7
	TierT8
)

// AllTiers lists the refinable tiers in ascending order.
var AllTiers = []Tier{TierT4, TierT5, TierT6, TierT7, TierT8}

// String returns the canonical "T5" form.
func (t Tier) String() string {
	return fmt.Sprintf("T%d", int(t))
}

// Prev returns the previous tier. The previous tier of a refinable tier
// may be T3, which is valid only as input context.
func (t Tier) Prev() Tier {
	return t - 1
}

// IsValid reports whether the tier is refinable (T4..T8).
func (t Tier) IsValid() bool {
	return t >= TierT4 && t <= TierT8
}

// ParseTier parses "T4".."T8" (case-insensitive).
func ParseTier(s string) (Tier, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for _, t := range AllTiers {
		if t.String() == s {
			return t, true
		}
	}
	return 0, false
}

// ResourceType is a refinable resource category. ROCK is the canonical
// form; STONE is accepted as input and normalized before any lookup.
type ResourceType string

const (
	ResourceOre   ResourceType = "ORE"
	ResourceWood  ResourceType = "WOOD"
	ResourceHide  ResourceType = "HIDE"
	ResourceFiber ResourceType = "FIBER"
	ResourceRock  ResourceType = "ROCK"
)

// AllResources lists the canonical resource types.
var AllResources = []ResourceType{ResourceOre, ResourceWood, ResourceHide, ResourceFiber, ResourceRock}

// NormalizeResourceType converts a resource name to its canonical form.
// STONE and ROCK are synonyms; the market API form (ROCK) wins.
// Unknown names pass through uppercased so table lookups can apply their
// own documented defaults.
func NormalizeResourceType(s string) ResourceType {
	upper := strings.ToUpper(strings.TrimSpace(s))
	if upper == "STONE" {
		return ResourceRock
	}
	return ResourceType(upper)
}

// String returns the string representation
func (r ResourceType) String() string {
	return string(r)
}

// IsValid checks if the resource type is a known canonical type
func (r ResourceType) IsValid() bool {
	switch r {
	case ResourceOre, ResourceWood, ResourceHide, ResourceFiber, ResourceRock:
		return true
	default:
		return false
	}
}

// RefinedMaterial returns the market item token for the refined form of
// this resource (ORE -> METALBAR, WOOD -> PLANKS, ...).
func (r ResourceType) RefinedMaterial() string {
	switch r {
	case ResourceOre:
		return "METALBAR"
	case ResourceWood:
		return "PLANKS"
	case ResourceHide:
		return "LEATHER"
	case ResourceFiber:
		return "CLOTH"
	case ResourceRock:
		return "STONEBLOCK"
	default:
		return "REFINED_" + string(r)
	}
}

// CraftCategory returns the crafting bonus category fed by this
// resource (ORE -> METAL, FIBER -> CLOTH, ...).
func (r ResourceType) CraftCategory() string {
	switch r {
	case ResourceOre:
		return "METAL"
	case ResourceWood:
		return "WOOD"
	case ResourceHide:
		return "LEATHER"
	case ResourceFiber:
		return "CLOTH"
	case ResourceRock:
		return "STONE"
	default:
		return string(r)
	}
}

// City is one of the fixed market cities.
type City string

const (
	CityThetford     City = "Thetford"
	CityFortSterling City = "Fort Sterling"
	CityLymhurst     City = "Lymhurst"
	CityBridgewatch  City = "Bridgewatch"
	CityMartlock     City = "Martlock"
	CityCaerleon     City = "Caerleon"
	CityBrecilien    City = "Brecilien"
)

// AllCities lists every known city. The order is fixed and doubles as
// the tie-break order for profit rankings.
var AllCities = []City{
	CityThetford,
	CityFortSterling,
	CityLymhurst,
	CityBridgewatch,
	CityMartlock,
	CityCaerleon,
	CityBrecilien,
}

// String returns the string representation
func (c City) String() string {
	return string(c)
}

// IsValid checks if the city is a known city
func (c City) IsValid() bool {
	for _, known := range AllCities {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCity matches a city name case-insensitively.
func ParseCity(s string) (City, bool) {
	for _, c := range AllCities {
		if strings.EqualFold(strings.TrimSpace(s), string(c)) {
			return c, true
		}
	}
	return "", false
}

// ProductionKind selects which yield/profit strategy applies. The two
// kinds use deliberately different return-rate formulas and must never
// be conflated.
type ProductionKind string

const (
	// KindRefining is raw + previous-tier intermediate -> intermediate
	KindRefining ProductionKind = "refining"

	// KindCrafting is named materials -> final good
	KindCrafting ProductionKind = "crafting"
)

// String returns the string representation
func (k ProductionKind) String() string {
	return string(k)
}
