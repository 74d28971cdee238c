package pixelart

import (
	"fmt"
	"sort"
)

// Tier maps an inclusive range of target amounts to a pixel-art tile
// count. Larger amounts get finer pixelation.
type Tier struct {
	Name     string `toml:"name"`
	Min      int    `toml:"min"`
	Max      int    `toml:"max"`
	TileSize int    `toml:"tile"`
}

// Contains reports whether amount falls within the tier's range.
func (t Tier) Contains(amount int) bool {
	return amount >= t.Min && amount <= t.Max
}

// Tiers is an ordered, non-overlapping set of tier ranges.
type Tiers []Tier

// DefaultTiers returns the amount bands used by the coloring screens.
func DefaultTiers() Tiers {
	return Tiers{
		{Name: "common", Min: 1, Max: 3000, TileSize: 16},
		{Name: "uncommon", Min: 3001, Max: 6000, TileSize: 24},
		{Name: "rare", Min: 6001, Max: 15000, TileSize: 32},
		{Name: "superrare", Min: 15001, Max: 30000, TileSize: 48},
		{Name: "ultrarare", Min: 30001, Max: 50000, TileSize: 64},
	}
}

// Lookup returns the tier containing amount.
func (ts Tiers) Lookup(amount int) (Tier, bool) {
	for _, t := range ts {
		if t.Contains(amount) {
			return t, true
		}
	}
	return Tier{}, false
}

// TileSize returns the tile count for amount, or 0 when no tier matches.
// A zero tile count makes the stylizer skip pixelation.
func (ts Tiers) TileSize(amount int) int {
	t, ok := ts.Lookup(amount)
	if !ok {
		return 0
	}
	return t.TileSize
}

// Validate checks that every range is well formed and that no two
// ranges overlap.
func (ts Tiers) Validate() error {
	sorted := make(Tiers, len(ts))
	copy(sorted, ts)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Min < sorted[j].Min })

	for i, t := range sorted {
		if t.Min > t.Max {
			return fmt.Errorf("%w: tier %q has min %d > max %d", ErrInvalidParameter, t.Name, t.Min, t.Max)
		}
		if t.TileSize < 1 {
			return fmt.Errorf("%w: tier %q has tile size %d", ErrInvalidParameter, t.Name, t.TileSize)
		}
		if i > 0 && t.Min <= sorted[i-1].Max {
			return fmt.Errorf("%w: tier %q overlaps %q", ErrInvalidParameter, t.Name, sorted[i-1].Name)
		}
	}
	return nil
}
