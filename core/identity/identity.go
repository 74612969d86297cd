// Package identity parses and builds market item IDs.
//
// This is the only place item identity is derived from strings; the
// calculation core works exclusively with the typed form. IDs follow
// the market API shape: "T5_ORE", "T4_METALBAR", enchanted items carry
// a "_LEVEL2@2" suffix.
package identity

import (
	"fmt"
	"strconv"
	"strings"

	"albion-profit/core/types"
	"albion-profit/internal/errors"
)

// MaxEnchantment is the highest enchantment level items carry.
const MaxEnchantment = 3

// refinedTokens maps refined material tokens back to their resource
// family.
var refinedTokens = map[string]types.ResourceType{
	"METALBAR":   types.ResourceOre,
	"PLANKS":     types.ResourceWood,
	"LEATHER":    types.ResourceHide,
	"CLOTH":      types.ResourceFiber,
	"STONEBLOCK": types.ResourceRock,
}

// Parse recovers the typed identity from a market item ID.
func Parse(itemID string) (types.ItemIdentity, error) {
	id := strings.ToUpper(strings.TrimSpace(itemID))
	if id == "" {
		return types.ItemIdentity{}, errors.Input("empty item id")
	}

	base, enchantment, err := splitEnchantment(id)
	if err != nil {
		return types.ItemIdentity{}, err
	}

	tierToken, rest, found := strings.Cut(base, "_")
	if !found {
		return types.ItemIdentity{}, errors.Newf(errors.TypeParsing, "item id has no tier separator: %s", itemID)
	}
	tier, ok := parseTierToken(tierToken)
	if !ok {
		return types.ItemIdentity{}, errors.Newf(errors.TypeParsing, "item id has no tier prefix: %s", itemID)
	}

	out := types.ItemIdentity{
		Tier:        tier,
		Enchantment: enchantment,
	}

	if resource := types.NormalizeResourceType(rest); resource.IsValid() {
		out.Resource = resource
		out.Kind = types.ItemRaw
		return out, nil
	}
	if resource, ok := refinedTokens[rest]; ok {
		out.Resource = resource
		out.Kind = types.ItemRefined
		return out, nil
	}

	out.Name = rest
	out.Kind = types.ItemCrafted
	return out, nil
}

// RawItemID builds the market ID of a raw resource.
func RawItemID(tier types.Tier, resource types.ResourceType, enchantment int) string {
	resource = types.NormalizeResourceType(string(resource))
	return withEnchantment(fmt.Sprintf("%s_%s", tier, resource), enchantment)
}

// RefinedItemID builds the market ID of a refined material
// (T5 + ORE -> T5_METALBAR).
func RefinedItemID(tier types.Tier, resource types.ResourceType, enchantment int) string {
	resource = types.NormalizeResourceType(string(resource))
	return withEnchantment(fmt.Sprintf("%s_%s", tier, resource.RefinedMaterial()), enchantment)
}

// ItemID rebuilds the market ID from a typed identity.
func ItemID(id types.ItemIdentity) string {
	switch id.Kind {
	case types.ItemRaw:
		return RawItemID(id.Tier, id.Resource, id.Enchantment)
	case types.ItemRefined:
		return RefinedItemID(id.Tier, id.Resource, id.Enchantment)
	default:
		return withEnchantment(fmt.Sprintf("%s_%s", id.Tier, id.Name), id.Enchantment)
	}
}

func withEnchantment(base string, enchantment int) string {
	if enchantment <= 0 {
		return base
	}
	if enchantment > MaxEnchantment {
		enchantment = MaxEnchantment
	}
	return fmt.Sprintf("%s_LEVEL%d@%d", base, enchantment, enchantment)
}

// splitEnchantment strips a trailing "_LEVELn@n" marker.
func splitEnchantment(id string) (string, int, error) {
	base, suffix, found := strings.Cut(id, "@")
	if !found {
		return id, 0, nil
	}

	level, err := strconv.Atoi(suffix)
	if err != nil || level < 1 || level > MaxEnchantment {
		return "", 0, errors.Newf(errors.TypeParsing, "bad enchantment suffix: %s", id)
	}

	marker := fmt.Sprintf("_LEVEL%d", level)
	if !strings.HasSuffix(base, marker) {
		return "", 0, errors.Newf(errors.TypeParsing, "enchantment marker mismatch: %s", id)
	}
	return strings.TrimSuffix(base, marker), level, nil
}

func parseTierToken(token string) (types.Tier, bool) {
	if len(token) != 2 || token[0] != 'T' {
		return 0, false
	}
	n := int(token[1] - '0')
	if n < 3 || n > 8 {
		return 0, false
	}
	return types.Tier(n), true
}
