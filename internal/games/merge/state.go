package merge

// GameState is the mutable per-session record shared by the spawn
// controller and the collision resolver.
type GameState struct {
	Score int

	// NextBallReady gates Drop. It is cleared by a drop and set again by
	// the first landing of that ball.
	NextBallReady bool

	// GameOver is terminal until Reset.
	GameOver bool

	// LastDropped is a lookup-only reference used for the game-over check.
	// It may point to a ball that has already been merged away.
	LastDropped *Ball

	Drops  int // Number of successful drops
	Arms   int // Number of times a drop re-armed NextBallReady
	Merges int // Number of merges, terminal clears included
}

// NewGameState returns the state of a fresh session.
func NewGameState() GameState {
	return GameState{NextBallReady: true}
}

// Reset restores the fresh-session state in place.
func (s *GameState) Reset() {
	*s = NewGameState()
}

// Land records a landing of b: its first contact with the floor or with
// another settled ball. Only the last dropped ball can arm the next drop,
// and only once per drop cycle. It reports whether the drop was re-armed.
func (s *GameState) Land(b *Ball) bool {
	if b == nil || b != s.LastDropped || s.NextBallReady || s.GameOver {
		return false
	}
	s.NextBallReady = true
	s.Arms++
	return true
}
