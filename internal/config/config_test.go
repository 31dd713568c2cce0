package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(defaultMergeYAML)
	if err != nil {
		t.Fatalf("Parse(embedded) error: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultMergeConfig()) {
		t.Errorf("embedded defaults differ from DefaultMergeConfig():\n%+v\n%+v", cfg, DefaultMergeConfig())
	}
}

func TestDefaultsValidate(t *testing.T) {
	if err := Validate(DefaultMergeConfig()); err != nil {
		t.Errorf("Validate(DefaultMergeConfig()) = %v, want nil", err)
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("board:\n  gameover_line_y: 200\nspawn:\n  window: 2\n"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if cfg.Board.GameOverLineY != 200 {
		t.Errorf("GameOverLineY = %v, want 200", cfg.Board.GameOverLineY)
	}
	if cfg.Board.Width != 800 {
		t.Errorf("unset board fields should keep defaults, Width = %v", cfg.Board.Width)
	}
	if cfg.Spawn.Window != 2 {
		t.Errorf("Spawn.Window = %d, want 2", cfg.Spawn.Window)
	}
	if len(cfg.Tiers) != 7 {
		t.Errorf("omitted tiers should fall back to defaults, got %d tiers", len(cfg.Tiers))
	}
}

func TestParseTiersReplaceTable(t *testing.T) {
	data := []byte(`
tiers:
  - { score: 1, size: 10, color: red }
  - { score: 2, size: 20, color: blue }
spawn:
  window: 1
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(cfg.Tiers) != 2 {
		t.Fatalf("got %d tiers, want 2", len(cfg.Tiers))
	}
	if cfg.Tiers[1] != (TierConfig{Score: 2, Size: 20, Color: "blue"}) {
		t.Errorf("Tiers[1] = %+v", cfg.Tiers[1])
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("Validate = %v, want nil", err)
	}
}

func TestParseInvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("tiers: [oops")); err == nil {
		t.Error("Parse should fail on malformed YAML")
	}
}

func TestLoadMergeCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("input:\n  pointer_step: 40\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMerge(path)
	if err != nil {
		t.Fatalf("LoadMerge(%s) error: %v", path, err)
	}
	if cfg.Input.PointerStep != 40 {
		t.Errorf("PointerStep = %v, want 40", cfg.Input.PointerStep)
	}

	if _, err := LoadMerge(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadMerge should fail for a missing custom path")
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := DefaultMergeConfig()
	cfg.Tiers[0].Color = "chartreuse"
	cfg.Tiers[1].Size = 0
	cfg.Board.GameOverLineY = 700
	cfg.Spawn.Window = 9
	cfg.Physics.Bounce = 1.5

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Validate should fail")
	}

	for _, code := range []string{"BAD_COLOR", "BAD_SIZE", "BAD_LINE", "BAD_WINDOW", "BAD_BOUNCE"} {
		if !hasCode(err, code) {
			t.Errorf("Validate error missing %s: %v", code, err)
		}
	}
}

func TestValidateEdgeCases(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*MergeConfig)
		code   string
	}{
		{"no tiers", func(c *MergeConfig) { c.Tiers = nil; c.Spawn.Window = 0 }, "NO_TIERS"},
		{"negative score", func(c *MergeConfig) { c.Tiers[2].Score = -1 }, "BAD_SCORE"},
		{"zero board", func(c *MergeConfig) { c.Board.Width = 0 }, "BAD_BOARD"},
		{"drop outside", func(c *MergeConfig) { c.Board.DropX = 900 }, "BAD_DROP"},
		{"no gravity", func(c *MergeConfig) { c.Physics.GravityY = 0; c.Physics.WorldGravityY = 0 }, "NO_GRAVITY"},
		{"zero pointer step", func(c *MergeConfig) { c.Input.PointerStep = 0 }, "BAD_STEP"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultMergeConfig()
			tc.mutate(&cfg)
			err := Validate(cfg)
			if !hasCode(err, tc.code) {
				t.Errorf("Validate() = %v, want code %s", err, tc.code)
			}
		})
	}
}

func hasCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		for _, e := range joined.Unwrap() {
			if hasCode(e, code) {
				return true
			}
		}
		return false
	}
	var ve ValidationError
	return errors.As(err, &ve) && ve.Code == code
}
