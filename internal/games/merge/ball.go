package merge

import "github.com/vovakirdan/merge-balls/internal/core"

// Ball is a single ball on the board. A ball never changes tier: a merge
// destroys two balls and creates a new one.
type Ball struct {
	ID   int
	Tier int

	// Pos is authoritative while the ball is pending and follows the
	// pointer. Once the ball has a body the physics backend owns it.
	Pos core.Vec2

	// HasBody separates a pending ball (false) from a settled one (true).
	HasBody bool
}

// BallSet is the collection of settled balls. Membership is the liveness
// check: a ball removed by an earlier event in the same frame is no longer
// Contained and must not be processed again.
type BallSet struct {
	order   []*Ball
	members map[*Ball]struct{}
	nextID  int
}

// NewBallSet creates an empty set.
func NewBallSet() *BallSet {
	return &BallSet{members: make(map[*Ball]struct{})}
}

// NewBall allocates a ball with a fresh ID. It is not a member until Add.
func (s *BallSet) NewBall(tier int, pos core.Vec2) *Ball {
	s.nextID++
	return &Ball{ID: s.nextID, Tier: tier, Pos: pos}
}

// Add inserts a settled ball. Balls without a body and duplicates are ignored.
func (s *BallSet) Add(b *Ball) {
	if b == nil || !b.HasBody {
		return
	}
	if _, ok := s.members[b]; ok {
		return
	}
	s.members[b] = struct{}{}
	s.order = append(s.order, b)
}

// Remove deletes a ball. It reports whether the ball was a member.
func (s *BallSet) Remove(b *Ball) bool {
	if _, ok := s.members[b]; !ok {
		return false
	}
	delete(s.members, b)
	for i, o := range s.order {
		if o == b {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Contains reports whether b is a live settled ball.
func (s *BallSet) Contains(b *Ball) bool {
	if b == nil {
		return false
	}
	_, ok := s.members[b]
	return ok
}

// Len returns the number of settled balls.
func (s *BallSet) Len() int {
	return len(s.order)
}

// Balls returns the settled balls in insertion order.
// The slice must not be modified.
func (s *BallSet) Balls() []*Ball {
	return s.order
}

// Clear removes every ball and restarts ID allocation.
func (s *BallSet) Clear() {
	s.order = nil
	s.members = make(map[*Ball]struct{})
	s.nextID = 0
}
