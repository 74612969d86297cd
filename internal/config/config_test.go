// Package config_test - configuration tests
package config_test

import (
	"path/filepath"
	"testing"

	"albion-profit/core/types"
	"albion-profit/internal/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()

	if !cfg.Player.UseFocus {
		t.Error("default config should use focus")
	}
	if cfg.Player.Premium {
		t.Error("default config should not assume premium")
	}
	if cfg.SpecializationFor("ore_refining") != 0 {
		t.Error("default specialization should be 0")
	}
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("missing file must not error: %v", err)
	}
	if cfg.Version != config.Default().Version {
		t.Errorf("version = %q, want default", cfg.Version)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := config.Default()
	cfg.Player.Premium = true
	cfg.Player.Specializations["ore_refining"] = 80
	cfg.Cities.ExcludeBrecilien = true

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !loaded.Player.Premium {
		t.Error("premium flag lost in round trip")
	}
	if loaded.SpecializationFor("ore_refining") != 80 {
		t.Errorf("specialization = %d, want 80", loaded.SpecializationFor("ore_refining"))
	}
	if !loaded.Cities.ExcludeBrecilien {
		t.Error("exclusion flag lost in round trip")
	}
}

func TestRefiningActivity(t *testing.T) {
	tests := []struct {
		resource types.ResourceType
		want     string
	}{
		{types.ResourceOre, "ore_refining"},
		{types.ResourceHide, "hide_refining"},
		{types.ResourceRock, "stone_refining"},
	}

	for _, tt := range tests {
		if got := config.RefiningActivity(tt.resource); got != tt.want {
			t.Errorf("RefiningActivity(%s) = %q, want %q", tt.resource, got, tt.want)
		}
	}
}

func TestProfile(t *testing.T) {
	cfg := config.Default()
	cfg.Player.Premium = true
	cfg.Player.Specializations["ore_refining"] = 50
	cfg.Player.EquipmentReturnBonus = 0.05

	profile := cfg.Profile("ore_refining")
	if !profile.Premium || !profile.UseFocus {
		t.Error("profile should carry premium and focus flags")
	}
	if profile.Specialization != 50 {
		t.Errorf("profile specialization = %d, want 50", profile.Specialization)
	}
	if profile.EquipmentReturnBonus != 0.05 {
		t.Errorf("profile gear bonus = %v, want 0.05", profile.EquipmentReturnBonus)
	}
}

func TestCityExclusions(t *testing.T) {
	cfg := config.Default()
	cfg.Cities.ExcludeBrecilien = true
	cfg.Cities.ExcludeCaerleon = true

	allowed := cfg.AllowedCities()
	if len(allowed) != 5 {
		t.Fatalf("allowed cities = %d, want 5", len(allowed))
	}
	for _, city := range allowed {
		if city == types.CityBrecilien || city == types.CityCaerleon {
			t.Errorf("excluded city %s in allowed list", city)
		}
	}

	excluded := cfg.ExcludedCities()
	if len(excluded) != 2 {
		t.Errorf("excluded cities = %d, want 2", len(excluded))
	}
}
