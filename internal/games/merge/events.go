package merge

// Event is one notification produced by a physics step.
type Event interface {
	isEvent()
}

// CollisionEvent reports that two bodies touched.
type CollisionEvent struct {
	A, B *Ball
}

// WorldBoundsEvent reports that a body touched the edge of the board.
// Floor is set for contact with the bottom edge.
type WorldBoundsEvent struct {
	Ball  *Ball
	Floor bool
}

func (CollisionEvent) isEvent()   {}
func (WorldBoundsEvent) isEvent() {}

// Dispatcher feeds a frame's events to the game logic one at a time, in
// arrival order, each against the state left by the previous one.
type Dispatcher struct {
	resolver *CollisionResolver
	state    *GameState
	balls    *BallSet
}

// NewDispatcher creates a dispatcher over the given resolver.
func NewDispatcher(resolver *CollisionResolver, state *GameState, balls *BallSet) *Dispatcher {
	return &Dispatcher{resolver: resolver, state: state, balls: balls}
}

// Dispatch processes events in order and returns the outcome of each
// collision event (bounds events are not included).
func (d *Dispatcher) Dispatch(events []Event) []Outcome {
	var outcomes []Outcome
	for _, ev := range events {
		switch ev := ev.(type) {
		case CollisionEvent:
			out, _ := d.resolver.Resolve(ev.A, ev.B)
			outcomes = append(outcomes, out)
		case WorldBoundsEvent:
			d.handleBounds(ev)
		}
	}
	return outcomes
}

// handleBounds arms the next drop when the last dropped ball first reaches
// the floor. Side walls and the ceiling do not count as a landing.
func (d *Dispatcher) handleBounds(ev WorldBoundsEvent) {
	if !ev.Floor || !d.balls.Contains(ev.Ball) {
		return
	}
	d.state.Land(ev.Ball)
}
