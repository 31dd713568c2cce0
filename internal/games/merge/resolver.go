package merge

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/merge-balls/internal/core"
)

// Outcome is what a single collision did to the game.
type Outcome int

const (
	OutcomeIgnored  Outcome = iota // Game over already, or a stale/foreign participant
	OutcomeGameOver                // Last dropped ball touched something above the line
	OutcomeMismatch                // Different tiers; nothing changes
	OutcomeMerged                  // Two balls replaced by one of the next tier
	OutcomeCleared                 // Two terminal-tier balls removed
)

// String returns the outcome name used in logs.
func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeGameOver:
		return "game_over"
	case OutcomeMismatch:
		return "mismatch"
	case OutcomeMerged:
		return "merged"
	case OutcomeCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// CollisionResolver holds all merge, scoring and game-over rules.
type CollisionResolver struct {
	tiers   *TierTable
	state   *GameState
	balls   *BallSet
	physics PhysicsAdapter
	body    BodyTemplate
	hud     HUD
	logger  *log.Logger

	lineY float64 // Game-over line; smaller y is above it
}

// NewCollisionResolver creates a resolver. A nil hud is allowed.
func NewCollisionResolver(tiers *TierTable, state *GameState, balls *BallSet, physics PhysicsAdapter, body BodyTemplate, lineY float64, hud HUD, logger *log.Logger) *CollisionResolver {
	if hud == nil {
		hud = nopHUD{}
	}
	return &CollisionResolver{
		tiers:   tiers,
		state:   state,
		balls:   balls,
		physics: physics,
		body:    body,
		hud:     hud,
		logger:  orDiscard(logger),
		lineY:   lineY,
	}
}

// Resolve applies one collision between a and b. The game-over check runs
// before the tier comparison, and both merged balls are destroyed before
// the product is spawned. The new ball is returned for OutcomeMerged.
func (r *CollisionResolver) Resolve(a, b *Ball) (Outcome, *Ball) {
	if r.state.GameOver {
		return OutcomeIgnored, nil
	}
	if a == b || !r.balls.Contains(a) || !r.balls.Contains(b) {
		return OutcomeIgnored, nil
	}

	last := r.state.LastDropped
	if (a == last || b == last) && last.Pos.Y < r.lineY {
		r.state.GameOver = true
		r.hud.GameOver(r.state.Score)
		r.logger.Info("game over", "score", r.state.Score, "ball", last.ID, "y", last.Pos.Y)
		return OutcomeGameOver, nil
	}

	// Touching another ball below the line is a landing.
	if a == last || b == last {
		r.state.Land(last)
	}

	if a.Tier != b.Tier {
		return OutcomeMismatch, nil
	}

	tier := r.tiers.At(a.Tier)
	r.state.Score += tier.Score
	r.state.Merges++
	r.hud.ScoreChanged(r.state.Score)

	r.destroy(a)
	r.destroy(b)

	next, ok := r.tiers.Next(tier.Index)
	if !ok {
		r.logger.Debug("terminal pair cleared", "tier", tier.Index, "score", r.state.Score)
		return OutcomeCleared, nil
	}

	merged := r.balls.NewBall(next.Index, core.Midpoint(a.Pos, b.Pos))
	r.physics.AttachBody(merged, r.body.For(next))
	merged.HasBody = true
	r.balls.Add(merged)

	r.logger.Debug("merge", "tier", next.Index, "ball", merged.ID, "x", merged.Pos.X, "y", merged.Pos.Y, "score", r.state.Score)
	return OutcomeMerged, merged
}

func (r *CollisionResolver) destroy(b *Ball) {
	r.balls.Remove(b)
	r.physics.RemoveBody(b)
}
