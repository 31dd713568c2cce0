package merge

import "github.com/vovakirdan/merge-balls/internal/physics"

// worldAdapter implements PhysicsAdapter on top of a physics.World. It maps
// body IDs to balls and copies body positions back after every step.
type worldAdapter struct {
	world  *physics.World
	byBody map[physics.BodyID]*Ball
	byBall map[*Ball]physics.BodyID
}

// NewWorldAdapter wraps a physics world.
func NewWorldAdapter(world *physics.World) PhysicsAdapter {
	return &worldAdapter{
		world:  world,
		byBody: make(map[physics.BodyID]*Ball),
		byBall: make(map[*Ball]physics.BodyID),
	}
}

func (a *worldAdapter) AttachBody(b *Ball, params BodyParams) {
	if _, ok := a.byBall[b]; ok {
		return
	}
	id := a.world.Add(b.Pos, physics.BodyOptions{
		Radius:             params.CircleRadius,
		Bounce:             params.Bounce,
		GravityY:           params.GravityY,
		CollideWorldBounds: params.CollideWorldBounds,
	})
	a.byBody[id] = b
	a.byBall[b] = id

	// The world may have clamped the spawn position into the board.
	if body, ok := a.world.Body(id); ok {
		b.Pos = body.Pos
	}
}

func (a *worldAdapter) RemoveBody(b *Ball) {
	id, ok := a.byBall[b]
	if !ok {
		return
	}
	a.world.Remove(id)
	delete(a.byBall, b)
	delete(a.byBody, id)
}

func (a *worldAdapter) Step(dt float64) []Event {
	raw := a.world.Step(dt)

	for id, b := range a.byBody {
		if body, ok := a.world.Body(id); ok {
			b.Pos = body.Pos
		}
	}

	events := make([]Event, 0, len(raw))
	for _, ev := range raw {
		switch ev.Kind {
		case physics.EventCollision:
			events = append(events, CollisionEvent{A: a.byBody[ev.A], B: a.byBody[ev.B]})
		case physics.EventWorldBounds:
			events = append(events, WorldBoundsEvent{Ball: a.byBody[ev.A], Floor: ev.Down})
		}
	}
	return events
}

func (a *worldAdapter) Reset() {
	a.world.Reset()
	a.byBody = make(map[physics.BodyID]*Ball)
	a.byBall = make(map[*Ball]physics.BodyID)
}
