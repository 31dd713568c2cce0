package merge

import (
	"fmt"

	"github.com/vovakirdan/merge-balls/internal/config"
	"github.com/vovakirdan/merge-balls/internal/core"
)

// Tier is one step of the ball progression.
type Tier struct {
	Index int        // Position in the table; tier i + tier i merges into tier i+1
	Size  float64    // Diameter in world units, unique per tier
	Color core.Color // Rendering only
	Score int        // Awarded when two balls of this tier merge
}

// Radius returns half the tier's diameter.
func (t Tier) Radius() float64 {
	return t.Size / 2
}

// TierTable is the immutable, ordered catalog of tiers.
type TierTable struct {
	tiers  []Tier
	bySize map[float64]int
}

// NewTierTable validates the given tiers and builds a table from them.
// Indexes are assigned from slice order. Sizes must be positive and strictly
// increasing so that lookup by size is unambiguous.
func NewTierTable(tiers []Tier) (*TierTable, error) {
	if len(tiers) == 0 {
		return nil, config.ValidationError{Code: "NO_TIERS", Message: "tier table is empty"}
	}

	t := &TierTable{
		tiers:  make([]Tier, len(tiers)),
		bySize: make(map[float64]int, len(tiers)),
	}
	for i, tier := range tiers {
		if tier.Size <= 0 {
			return nil, config.ValidationError{
				Code:    "BAD_SIZE",
				Message: fmt.Sprintf("tier %d has non-positive size %v", i, tier.Size),
			}
		}
		if tier.Score < 0 {
			return nil, config.ValidationError{
				Code:    "BAD_SCORE",
				Message: fmt.Sprintf("tier %d has negative score %d", i, tier.Score),
			}
		}
		if prev, dup := t.bySize[tier.Size]; dup {
			return nil, config.ValidationError{
				Code:    "DUPLICATE_SIZE",
				Message: fmt.Sprintf("tiers %d and %d share size %v", prev, i, tier.Size),
			}
		}
		if i > 0 && tier.Size < tiers[i-1].Size {
			return nil, config.ValidationError{
				Code:    "SIZE_ORDER",
				Message: fmt.Sprintf("tier %d (size %v) is smaller than tier %d (size %v)", i, tier.Size, i-1, tiers[i-1].Size),
			}
		}
		tier.Index = i
		t.tiers[i] = tier
		t.bySize[tier.Size] = i
	}
	return t, nil
}

// TiersFromConfig builds a tier table from configuration entries.
func TiersFromConfig(entries []config.TierConfig) (*TierTable, error) {
	tiers := make([]Tier, 0, len(entries))
	for i, e := range entries {
		color, ok := core.ParseColor(e.Color)
		if !ok {
			return nil, config.ValidationError{
				Code:    "BAD_COLOR",
				Message: fmt.Sprintf("tier %d has unknown color %q", i, e.Color),
			}
		}
		tiers = append(tiers, Tier{Size: e.Size, Color: color, Score: e.Score})
	}
	return NewTierTable(tiers)
}

// Len returns the number of tiers.
func (t *TierTable) Len() int {
	return len(t.tiers)
}

// At returns the tier at index i. It panics if i is out of range.
func (t *TierTable) At(i int) Tier {
	return t.tiers[i]
}

// Valid reports whether i is a tier index.
func (t *TierTable) Valid(i int) bool {
	return i >= 0 && i < len(t.tiers)
}

// BySize looks a tier up by its diameter.
func (t *TierTable) BySize(size float64) (Tier, bool) {
	i, ok := t.bySize[size]
	if !ok {
		return Tier{}, false
	}
	return t.tiers[i], true
}

// IsTerminal reports whether i is the last tier, which has no successor.
func (t *TierTable) IsTerminal(i int) bool {
	return i == len(t.tiers)-1
}

// Next returns the tier a merge of tier i produces.
func (t *TierTable) Next(i int) (Tier, bool) {
	if !t.Valid(i) || t.IsTerminal(i) {
		return Tier{}, false
	}
	return t.tiers[i+1], true
}

// All returns a copy of the tiers in order.
func (t *TierTable) All() []Tier {
	out := make([]Tier, len(t.tiers))
	copy(out, t.tiers)
	return out
}
