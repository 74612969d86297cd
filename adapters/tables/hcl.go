// Package tables loads reference-table overrides and price-quote
// fixtures from HCL documents.
//
// This is the narrow "reference tables source" boundary: the engine
// core only ever sees a finished economy.Tables. Unlike reference-table
// lookups, a malformed override file is a real error - it is external
// input, not a missing table key.
package tables

import (
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"albion-profit/core/arbitrage"
	"albion-profit/core/economy"
	"albion-profit/core/types"
	"albion-profit/internal/errors"
	"albion-profit/internal/logging"
)

type overridesFile struct {
	Cities []cityBlock `hcl:"city,block"`
}

type cityBlock struct {
	Name        string       `hcl:"name,label"`
	RefiningTax *float64     `hcl:"refining_tax,optional"`
	CraftingTax *float64     `hcl:"crafting_tax,optional"`
	Bonuses     []bonusBlock `hcl:"bonus,block"`
}

type bonusBlock struct {
	Resource string  `hcl:"resource,label"`
	Value    float64 `hcl:"value"`
}

// LoadOverrides parses an HCL override document and applies it to a
// copy of the given tables. The original tables are never mutated.
func LoadOverrides(path string, base *economy.Tables) (*economy.Tables, error) {
	body, err := parseFile(path)
	if err != nil {
		return nil, err
	}

	var doc overridesFile
	if diags := gohcl.DecodeBody(body, nil, &doc); diags.HasErrors() {
		return nil, errors.Config("decoding table overrides", diags)
	}

	out := base.Clone()
	for _, block := range doc.Cities {
		city, ok := types.ParseCity(block.Name)
		if !ok {
			return nil, errors.Newf(errors.TypeConfig, "unknown city in overrides: %s", block.Name)
		}

		if block.RefiningTax != nil {
			out.RefiningTax[city] = *block.RefiningTax
		}
		if block.CraftingTax != nil {
			out.CraftingTax[city] = *block.CraftingTax
		}
		for _, bonus := range block.Bonuses {
			resource := types.NormalizeResourceType(bonus.Resource)
			if !resource.IsValid() {
				return nil, errors.Newf(errors.TypeConfig, "unknown resource in overrides: %s", bonus.Resource)
			}
			if out.ProductionBonus[city] == nil {
				out.ProductionBonus[city] = make(map[types.ResourceType]float64)
			}
			out.ProductionBonus[city][resource] = bonus.Value
		}

		logging.Debug("applied city override", zap.String("city", city.String()))
	}
	return out, nil
}

type quotesFile struct {
	Quotes []quoteBlock `hcl:"quote,block"`
}

type quoteBlock struct {
	City    string  `hcl:"city,label"`
	Leg     string  `hcl:"leg,label"`
	SellMin float64 `hcl:"sell_min,optional"`
	BuyMax  float64 `hcl:"buy_max,optional"`
}

// LoadQuotes parses an HCL quotes document into the per-city quote map
// the arbitrage analyzer consumes. Zero or omitted amounts mean "no
// data".
func LoadQuotes(path string) (map[types.City]arbitrage.CityQuotes, error) {
	body, err := parseFile(path)
	if err != nil {
		return nil, err
	}

	var doc quotesFile
	if diags := gohcl.DecodeBody(body, nil, &doc); diags.HasErrors() {
		return nil, errors.Config("decoding quotes", diags)
	}

	quotes := make(map[types.City]arbitrage.CityQuotes)
	for _, block := range doc.Quotes {
		city, ok := types.ParseCity(block.City)
		if !ok {
			return nil, errors.Newf(errors.TypeConfig, "unknown city in quotes: %s", block.City)
		}
		if block.SellMin < 0 || block.BuyMax < 0 {
			return nil, errors.Newf(errors.TypeConfig, "negative price for %s/%s", block.City, block.Leg)
		}

		quote := types.PriceQuote{
			SellMin: decimal.NewFromFloat(block.SellMin),
			BuyMax:  decimal.NewFromFloat(block.BuyMax),
		}

		entry := quotes[city]
		switch types.ItemLeg(block.Leg) {
		case types.LegRaw:
			entry.Raw = quote
		case types.LegPrevIntermediate:
			entry.PrevIntermediate = quote
		case types.LegOutput:
			entry.Output = quote
		default:
			return nil, errors.Newf(errors.TypeConfig, "unknown quote leg: %s", block.Leg)
		}
		quotes[city] = entry
	}
	return quotes, nil
}

func parseFile(path string) (hcl.Body, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Config("reading "+path, err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, path)
	if diags.HasErrors() {
		return nil, errors.Config("parsing "+path, diags)
	}
	return file.Body, nil
}
