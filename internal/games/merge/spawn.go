package merge

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/merge-balls/internal/core"
)

// SpawnController owns the single pending ball: it picks its tier, moves
// it with the pointer and hands it to physics on drop.
type SpawnController struct {
	tiers   *TierTable
	state   *GameState
	balls   *BallSet
	physics PhysicsAdapter
	body    BodyTemplate
	rng     Rand
	logger  *log.Logger

	origin  core.Vec2 // Where each pending ball appears
	window  int       // Spawnable tiers are [0, window)
	pending *Ball
}

// SpawnOptions configures a SpawnController.
type SpawnOptions struct {
	Origin core.Vec2
	Window int
	Body   BodyTemplate
}

// NewSpawnController creates a controller. It does not arm a ball; call
// ArmNext once the session starts.
func NewSpawnController(tiers *TierTable, state *GameState, balls *BallSet, physics PhysicsAdapter, rng Rand, opts SpawnOptions, logger *log.Logger) *SpawnController {
	window := opts.Window
	if window < 1 {
		window = 1
	}
	if window > tiers.Len() {
		window = tiers.Len()
	}
	return &SpawnController{
		tiers:   tiers,
		state:   state,
		balls:   balls,
		physics: physics,
		body:    opts.Body,
		rng:     rng,
		logger:  orDiscard(logger),
		origin:  opts.Origin,
		window:  window,
	}
}

// Pending returns the ball waiting to be dropped, or nil.
func (s *SpawnController) Pending() *Ball {
	return s.pending
}

// ArmNext replaces the pending ball with a new one of a random low tier,
// placed at the drop origin without a body.
func (s *SpawnController) ArmNext() *Ball {
	tier := s.rng.Intn(s.window)
	s.pending = s.balls.NewBall(tier, s.origin)
	return s.pending
}

// FollowPointer moves the pending ball horizontally to x. The y coordinate
// never changes while the ball is pending.
func (s *SpawnController) FollowPointer(x float64) {
	if s.pending == nil || s.pending.HasBody {
		return
	}
	s.pending.Pos.X = x
}

// Drop releases the pending ball into the physics world. It is a no-op
// while the previous drop has not landed or after game over, and reports
// whether a ball was dropped.
func (s *SpawnController) Drop() bool {
	if !s.state.NextBallReady || s.state.GameOver || s.pending == nil {
		return false
	}

	ball := s.pending
	s.physics.AttachBody(ball, s.body.For(s.tiers.At(ball.Tier)))
	ball.HasBody = true
	s.balls.Add(ball)

	s.state.LastDropped = ball
	s.state.NextBallReady = false
	s.state.Drops++

	s.logger.Debug("drop", "ball", ball.ID, "tier", ball.Tier, "x", ball.Pos.X)

	s.ArmNext()
	return true
}

// Reset forgets the pending ball.
func (s *SpawnController) Reset() {
	s.pending = nil
}
