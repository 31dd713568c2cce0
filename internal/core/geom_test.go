package core

import (
	"math"
	"testing"
)

func TestMidpoint(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec2
		expected Vec2
	}{
		{"same row", V(100, 100), V(120, 100), V(110, 100)},
		{"diagonal", V(0, 0), V(10, 20), V(5, 10)},
		{"negative", V(-4, 2), V(4, -2), V(0, 0)},
		{"identical", V(7, 7), V(7, 7), V(7, 7)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Midpoint(tc.a, tc.b); got != tc.expected {
				t.Errorf("Midpoint(%v, %v) = %v, expected %v", tc.a, tc.b, got, tc.expected)
			}
			if got := Midpoint(tc.b, tc.a); got != tc.expected {
				t.Errorf("Midpoint (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestVecOps(t *testing.T) {
	a := V(3, 4)
	b := V(1, 2)

	if got := a.Add(b); got != V(4, 6) {
		t.Errorf("Add() = %v", got)
	}
	if got := a.Sub(b); got != V(2, 2) {
		t.Errorf("Sub() = %v", got)
	}
	if got := a.Scale(2); got != V(6, 8) {
		t.Errorf("Scale() = %v", got)
	}
	if got := a.Dot(b); got != 11 {
		t.Errorf("Dot() = %v, expected 11", got)
	}
	if got := a.Len(); math.Abs(got-5) > 1e-9 {
		t.Errorf("Len() = %v, expected 5", got)
	}
	if got := a.LenSq(); got != 25 {
		t.Errorf("LenSq() = %v, expected 25", got)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}

	if got := ClampF(850, 25, 775); got != 775 {
		t.Errorf("ClampF(850, 25, 775) = %v, expected 775", got)
	}
}

func TestParseColor(t *testing.T) {
	for c, name := range colorNames {
		got, ok := ParseColor(name)
		if !ok || got != c {
			t.Errorf("ParseColor(%q) = %v, %v", name, got, ok)
		}
		if c.String() != name {
			t.Errorf("%d.String() = %q, expected %q", c, c.String(), name)
		}
	}

	if got, ok := ParseColor("  Orange "); !ok || got != ColorOrange {
		t.Errorf("ParseColor should trim and ignore case, got %v, %v", got, ok)
	}
	if _, ok := ParseColor("chartreuse"); ok {
		t.Error("unknown colors must not parse")
	}
}

func TestInputFrameClearKeepsPointer(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionActivate)
	f.MovePointer(12, 3)

	f.Clear()

	if f.Has(ActionActivate) {
		t.Error("Clear should drop actions")
	}
	if f.PointerMoved {
		t.Error("Clear should reset PointerMoved")
	}
	if !f.Pointer.Valid || f.Pointer.X != 12 {
		t.Errorf("Clear should keep the pointer, got %+v", f.Pointer)
	}
}
