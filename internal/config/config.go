// Package config provides player and application configuration.
//
// The calculation core never reads this package directly; callers build
// a types.PlayerProfile from it once per request and pass the profile
// in. City exclusions configured here must be applied before any
// ranking or arbitrage search.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"albion-profit/core/types"
	"albion-profit/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Server is the market region (Europe, Americas, Asia)
	Server string `json:"server"`

	// Player contains player-side settings
	Player PlayerConfig `json:"player"`

	// Cities contains city filtering settings
	Cities CityConfig `json:"cities"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// PlayerConfig contains player-side settings
type PlayerConfig struct {
	// Premium indicates premium account status
	Premium bool `json:"premium"`

	// UseFocus spends focus points on production batches
	UseFocus bool `json:"use_focus"`

	// FocusPoints is the focus budget available to the player
	FocusPoints int `json:"focus_points"`

	// Specializations maps activity keys (ore_refining, weapon_smith,
	// ...) to levels 0-100
	Specializations map[string]int `json:"specializations"`

	// EquipmentReturnBonus is the additive return-rate bonus from gear
	EquipmentReturnBonus float64 `json:"equipment_return_bonus"`

	// EquipmentFocusReduction is the fractional focus-cost reduction
	// from gear
	EquipmentFocusReduction float64 `json:"equipment_focus_reduction"`

	// FoodReturnBonus is the additive return-rate bonus from food buffs
	FoodReturnBonus float64 `json:"food_return_bonus"`
}

// CityConfig contains city filtering settings
type CityConfig struct {
	// ExcludeBrecilien removes Brecilien from consideration entirely
	ExcludeBrecilien bool `json:"exclude_brecilien"`

	// ExcludeCaerleon removes Caerleon from consideration entirely
	ExcludeCaerleon bool `json:"exclude_caerleon"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Server:  "Europe",
		Player: PlayerConfig{
			Premium:         false,
			UseFocus:        true,
			FocusPoints:     10000,
			Specializations: defaultSpecializations(),
		},
		Logging: logging.DefaultConfig(),
	}
}

func defaultSpecializations() map[string]int {
	specs := make(map[string]int)
	for _, activity := range []string{
		"ore_refining", "hide_refining", "fiber_refining",
		"wood_refining", "stone_refining",
		"weapon_smith", "armor_smith", "toolmaker",
	} {
		specs[activity] = 0
	}
	return specs
}

// Load loads configuration from a file. A missing file yields the
// defaults, not an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}
	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// SpecializationFor returns the level for an activity key, 0 when
// unset.
func (c *Config) SpecializationFor(activity string) int {
	return c.Player.Specializations[activity]
}

// RefiningActivity derives the specialization key of a resource type
// (ORE -> ore_refining). STONE normalizes to the stone_refining key.
func RefiningActivity(resource types.ResourceType) string {
	name := strings.ToLower(string(resource))
	if resource == types.ResourceRock {
		name = "stone"
	}
	return name + "_refining"
}

// Profile builds the player profile for one activity.
func (c *Config) Profile(activity string) types.PlayerProfile {
	return types.PlayerProfile{
		Specialization:          c.SpecializationFor(activity),
		Premium:                 c.Player.Premium,
		UseFocus:                c.Player.UseFocus,
		EquipmentReturnBonus:    c.Player.EquipmentReturnBonus,
		EquipmentFocusReduction: c.Player.EquipmentFocusReduction,
		FoodReturnBonus:         c.Player.FoodReturnBonus,
	}
}

// ExcludedCities lists the cities removed from consideration.
func (c *Config) ExcludedCities() []types.City {
	var excluded []types.City
	if c.Cities.ExcludeBrecilien {
		excluded = append(excluded, types.CityBrecilien)
	}
	if c.Cities.ExcludeCaerleon {
		excluded = append(excluded, types.CityCaerleon)
	}
	return excluded
}

// AllowedCities lists the cities that remain after exclusions.
func (c *Config) AllowedCities() []types.City {
	allowed := make([]types.City, 0, len(types.AllCities))
	for _, city := range types.AllCities {
		if c.Cities.ExcludeBrecilien && city == types.CityBrecilien {
			continue
		}
		if c.Cities.ExcludeCaerleon && city == types.CityCaerleon {
			continue
		}
		allowed = append(allowed, city)
	}
	return allowed
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
