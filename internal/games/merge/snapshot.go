package merge

import "math"

// BallSnapshot is a settled ball with its position rounded to world units.
type BallSnapshot struct {
	ID   int
	Tier int
	X, Y int
}

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick        uint64
	Score       int
	Ready       bool
	GameOver    bool
	Paused      bool
	PendingTier int // -1 when no ball is pending
	PendingX    int
	Drops       int
	Arms        int
	Merges      int
	Balls       []BallSnapshot
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:        g.tick,
		Score:       g.state.Score,
		Ready:       g.state.NextBallReady,
		GameOver:    g.state.GameOver,
		Paused:      g.paused,
		PendingTier: -1,
		Drops:       g.state.Drops,
		Arms:        g.state.Arms,
		Merges:      g.state.Merges,
	}
	if p := g.spawner.Pending(); p != nil {
		s.PendingTier = p.Tier
		s.PendingX = int(math.Round(p.Pos.X))
	}
	for _, b := range g.balls.Balls() {
		s.Balls = append(s.Balls, BallSnapshot{
			ID:   b.ID,
			Tier: b.Tier,
			X:    int(math.Round(b.Pos.X)),
			Y:    int(math.Round(b.Pos.Y)),
		})
	}
	return s
}
