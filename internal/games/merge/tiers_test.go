package merge

import (
	"errors"
	"testing"

	"github.com/vovakirdan/merge-balls/internal/config"
	"github.com/vovakirdan/merge-balls/internal/core"
)

func TestDefaultTierTable(t *testing.T) {
	table := defaultTable(t)

	if table.Len() != 7 {
		t.Fatalf("Len() = %d, want 7", table.Len())
	}

	want := []struct {
		size  float64
		score int
		color core.Color
	}{
		{50, 10, core.ColorOrange},
		{75, 20, core.ColorTeal},
		{100, 30, core.ColorPurple},
		{135, 50, core.ColorGreen},
		{170, 70, core.ColorYellow},
		{190, 100, core.ColorBlue},
		{230, 150, core.ColorRed},
	}
	for i, w := range want {
		got := table.At(i)
		if got.Index != i || got.Size != w.size || got.Score != w.score || got.Color != w.color {
			t.Errorf("At(%d) = %+v, want index %d size %v score %d color %v", i, got, i, w.size, w.score, w.color)
		}
	}
}

func TestTierLookup(t *testing.T) {
	table := defaultTable(t)

	tier, ok := table.BySize(100)
	if !ok || tier.Index != 2 {
		t.Errorf("BySize(100) = %+v, %v; want tier 2", tier, ok)
	}
	if _, ok := table.BySize(99); ok {
		t.Error("BySize(99) should not match")
	}

	if table.IsTerminal(5) {
		t.Error("tier 5 should not be terminal")
	}
	if !table.IsTerminal(6) {
		t.Error("tier 6 should be terminal")
	}

	next, ok := table.Next(0)
	if !ok || next.Index != 1 {
		t.Errorf("Next(0) = %+v, %v; want tier 1", next, ok)
	}
	if _, ok := table.Next(6); ok {
		t.Error("Next(terminal) should report false")
	}
	if _, ok := table.Next(-1); ok {
		t.Error("Next(-1) should report false")
	}

	if tier := table.At(0); tier.Radius() != 25 {
		t.Errorf("Radius() = %v, want 25", tier.Radius())
	}
}

func TestTierTableAllIsCopy(t *testing.T) {
	table := defaultTable(t)
	all := table.All()
	all[0].Score = 999
	if table.At(0).Score != 10 {
		t.Error("mutating All() result changed the table")
	}
}

func TestNewTierTableErrors(t *testing.T) {
	tests := []struct {
		name  string
		tiers []Tier
		code  string
	}{
		{"empty", nil, "NO_TIERS"},
		{"zero size", []Tier{{Size: 0, Score: 1}}, "BAD_SIZE"},
		{"negative score", []Tier{{Size: 10, Score: -1}}, "BAD_SCORE"},
		{"duplicate size", []Tier{{Size: 10}, {Size: 10}}, "DUPLICATE_SIZE"},
		{"shrinking", []Tier{{Size: 20}, {Size: 10}}, "SIZE_ORDER"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTierTable(tt.tiers)
			var verr config.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error = %v, want ValidationError", err)
			}
			if verr.Code != tt.code {
				t.Errorf("code = %s, want %s", verr.Code, tt.code)
			}
		})
	}
}

func TestTiersFromConfigBadColor(t *testing.T) {
	_, err := TiersFromConfig([]config.TierConfig{{Score: 1, Size: 10, Color: "mauve"}})
	var verr config.ValidationError
	if !errors.As(err, &verr) || verr.Code != "BAD_COLOR" {
		t.Errorf("error = %v, want BAD_COLOR", err)
	}
}
