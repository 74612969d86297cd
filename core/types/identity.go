// Package types - Item identity
package types

// ItemKind distinguishes the three item forms handled by the engine.
type ItemKind string

const (
	// ItemRaw is an unrefined resource (T5_ORE)
	ItemRaw ItemKind = "raw"

	// ItemRefined is a refined intermediate (T5_METALBAR)
	ItemRefined ItemKind = "refined"

	// ItemCrafted is a final crafted good (T4_SWORD)
	ItemCrafted ItemKind = "crafted"
)

// ItemIdentity is the typed identity recovered from a market item ID.
// The core never re-derives identity from strings; only the identity
// boundary package produces these.
type ItemIdentity struct {
	// Tier is the item tier
	Tier Tier `json:"tier"`

	// Resource is the resource family, set for raw and refined items
	Resource ResourceType `json:"resource,omitempty"`

	// Name is the item token for crafted goods (SWORD, BAG, ...)
	Name string `json:"name,omitempty"`

	// Enchantment is the enchantment level (0-3)
	Enchantment int `json:"enchantment"`

	// Kind is the item form
	Kind ItemKind `json:"kind"`
}
