package merge

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/merge-balls/internal/config"
)

// BodyParams describes the physics body attached to a ball.
type BodyParams struct {
	CollideWorldBounds bool
	Bounce             float64
	GravityY           float64
	CircleRadius       float64
}

// BodyTemplate holds the parameters shared by every body; only the radius
// depends on the tier.
type BodyTemplate struct {
	Bounce   float64
	GravityY float64
}

// BodyTemplateFromConfig extracts the body parameters from configuration.
func BodyTemplateFromConfig(cfg config.PhysicsConfig) BodyTemplate {
	return BodyTemplate{Bounce: cfg.Bounce, GravityY: cfg.GravityY}
}

// For returns the body parameters for a ball of the given tier.
func (t BodyTemplate) For(tier Tier) BodyParams {
	return BodyParams{
		CollideWorldBounds: true,
		Bounce:             t.Bounce,
		GravityY:           t.GravityY,
		CircleRadius:       tier.Radius(),
	}
}

// PhysicsAdapter is the physics backend as seen by the game. The game only
// attaches and detaches bodies and consumes the events of each step; ball
// positions are written back by the adapter.
type PhysicsAdapter interface {
	// AttachBody gives b a body starting at b.Pos.
	AttachBody(b *Ball, params BodyParams)

	// RemoveBody detaches b's body. Unknown balls are ignored.
	RemoveBody(b *Ball)

	// Step advances the simulation by dt seconds and returns the events
	// of this step in the order they occurred.
	Step(dt float64) []Event

	// Reset removes every body.
	Reset()
}

// HUD receives score and game-over updates for display.
type HUD interface {
	ScoreChanged(score int)
	GameOver(score int)
	Reset()
}

// Rand is the random source used to pick spawn tiers.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

type nopHUD struct{}

func (nopHUD) ScoreChanged(int) {}
func (nopHUD) GameOver(int)     {}
func (nopHUD) Reset()           {}

func orDiscard(logger *log.Logger) *log.Logger {
	if logger == nil {
		return log.New(io.Discard)
	}
	return logger
}
