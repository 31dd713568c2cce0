package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/merge-balls/internal/core"
)

// ValidationError contains details about a single configuration problem.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func invalid(code, format string, args ...any) error {
	return ValidationError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Validate checks the semantic constraints of a configuration.
// All problems are reported at once, joined with errors.Join.
// Tier sizes are checked again when the tier table is built.
func Validate(cfg MergeConfig) error {
	var errs []error

	if len(cfg.Tiers) == 0 {
		errs = append(errs, invalid("NO_TIERS", "tiers must list at least one tier"))
	}
	for i, t := range cfg.Tiers {
		if t.Size <= 0 {
			errs = append(errs, invalid("BAD_SIZE", "tiers[%d].size must be > 0, got %v", i, t.Size))
		}
		if t.Score < 0 {
			errs = append(errs, invalid("BAD_SCORE", "tiers[%d].score must be >= 0, got %d", i, t.Score))
		}
		if _, ok := core.ParseColor(t.Color); !ok {
			errs = append(errs, invalid("BAD_COLOR", "tiers[%d].color %q is not a known color", i, t.Color))
		}
	}

	b := cfg.Board
	if b.Width <= 0 || b.Height <= 0 {
		errs = append(errs, invalid("BAD_BOARD", "board must have positive width and height, got %vx%v", b.Width, b.Height))
	} else {
		if b.GameOverLineY <= 0 || b.GameOverLineY >= b.Height {
			errs = append(errs, invalid("BAD_LINE", "board.gameover_line_y must be inside (0, %v), got %v", b.Height, b.GameOverLineY))
		}
		if b.DropX < 0 || b.DropX > b.Width || b.DropY < 0 || b.DropY > b.Height {
			errs = append(errs, invalid("BAD_DROP", "board drop origin (%v, %v) is outside the board", b.DropX, b.DropY))
		}
	}

	if cfg.Spawn.Window < 1 || cfg.Spawn.Window > len(cfg.Tiers) {
		errs = append(errs, invalid("BAD_WINDOW", "spawn.window must be in [1, %d], got %d", len(cfg.Tiers), cfg.Spawn.Window))
	}

	if cfg.Physics.Bounce < 0 || cfg.Physics.Bounce > 1 {
		errs = append(errs, invalid("BAD_BOUNCE", "physics.bounce must be in [0, 1], got %v", cfg.Physics.Bounce))
	}
	if cfg.Physics.GravityY+cfg.Physics.WorldGravityY <= 0 {
		errs = append(errs, invalid("NO_GRAVITY", "physics.gravity_y + physics.world_gravity_y must be > 0"))
	}

	if cfg.Input.PointerStep <= 0 {
		errs = append(errs, invalid("BAD_STEP", "input.pointer_step must be > 0, got %v", cfg.Input.PointerStep))
	}

	return errors.Join(errs...)
}
