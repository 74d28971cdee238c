package pixelart

import (
	"errors"
	"testing"
)

func TestDefaultTiersTileSize(t *testing.T) {
	tiers := DefaultTiers()
	tests := []struct {
		amount int
		want   int
	}{
		{0, 0},
		{-5, 0},
		{1, 16},
		{3000, 16},
		{3001, 24},
		{6000, 24},
		{6001, 32},
		{15000, 32},
		{15001, 48},
		{30000, 48},
		{30001, 64},
		{50000, 64},
		{50001, 0},
	}
	for _, tt := range tests {
		if got := tiers.TileSize(tt.amount); got != tt.want {
			t.Errorf("TileSize(%d) = %d, want %d", tt.amount, got, tt.want)
		}
	}
}

func TestTiersLookup(t *testing.T) {
	tier, ok := DefaultTiers().Lookup(7000)
	if !ok || tier.Name != "rare" {
		t.Errorf("Lookup(7000) = %+v, %v; want rare", tier, ok)
	}
	if _, ok := DefaultTiers().Lookup(99999); ok {
		t.Error("Lookup(99999) should not match")
	}
}

func TestTiersValidate(t *testing.T) {
	if err := DefaultTiers().Validate(); err != nil {
		t.Fatalf("Default tiers invalid: %v", err)
	}

	tests := []struct {
		name  string
		tiers Tiers
	}{
		{"min above max", Tiers{{Name: "a", Min: 10, Max: 5, TileSize: 8}}},
		{"zero tile", Tiers{{Name: "a", Min: 1, Max: 5, TileSize: 0}}},
		{"overlap", Tiers{
			{Name: "a", Min: 1, Max: 100, TileSize: 8},
			{Name: "b", Min: 100, Max: 200, TileSize: 16},
		}},
		{"overlap out of order", Tiers{
			{Name: "b", Min: 50, Max: 200, TileSize: 16},
			{Name: "a", Min: 1, Max: 60, TileSize: 8},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.tiers.Validate(); !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("Validate() = %v, want ErrInvalidParameter", err)
			}
		})
	}
}
