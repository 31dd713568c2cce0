// Package physics is a small circle-body simulation: gravity integration,
// bounce against the world bounds and circle/circle contact resolution.
// It knows nothing about game rules; it only reports contacts.
package physics

import (
	"math"

	"github.com/vovakirdan/merge-balls/internal/core"
)

// Solver tuning.
const (
	solverIterations = 4      // Position-correction passes per step
	maxSpeed         = 1500.0 // World units per second
	restSpeed        = 15.0   // Bounces slower than this stop dead
	floorFriction    = 0.92   // Horizontal velocity kept per floor contact
	airDamping       = 0.999  // Velocity kept per step
	contactSlop      = 0.01   // Overlap below this is not corrected
)

// BodyID identifies a body within a World.
type BodyID uint64

// BodyOptions are the per-body parameters.
type BodyOptions struct {
	Radius             float64
	Bounce             float64 // Restitution 0..1
	GravityY           float64 // Added to the world gravity
	CollideWorldBounds bool
}

// Body is a simulated circle.
type Body struct {
	ID  BodyID
	Pos core.Vec2
	Vel core.Vec2
	BodyOptions
}

func (b *Body) mass() float64 {
	return b.Radius * b.Radius
}

// EventKind distinguishes the events reported by Step.
type EventKind int

const (
	EventCollision   EventKind = iota // A and B overlap
	EventWorldBounds                  // A touched an edge; Down is set for the floor
)

// Event is a contact reported by Step.
type Event struct {
	Kind EventKind
	A, B BodyID
	Down bool
}

// World holds the bodies and the board bounds. Coordinates grow right and
// down; the board spans [0, Width] x [0, Height].
type World struct {
	Width, Height float64
	GravityY      float64

	bodies []*Body
	index  map[BodyID]*Body
	nextID BodyID
}

// NewWorld creates an empty world.
func NewWorld(width, height, gravityY float64) *World {
	return &World{
		Width:    width,
		Height:   height,
		GravityY: gravityY,
		index:    make(map[BodyID]*Body),
	}
}

// Add inserts a body at rest at pos and returns its ID.
func (w *World) Add(pos core.Vec2, opts BodyOptions) BodyID {
	w.nextID++
	b := &Body{ID: w.nextID, Pos: pos, BodyOptions: opts}
	if opts.CollideWorldBounds {
		w.clampToBounds(b)
	}
	w.bodies = append(w.bodies, b)
	w.index[b.ID] = b
	return b.ID
}

// Remove deletes a body. Unknown IDs are ignored.
func (w *World) Remove(id BodyID) {
	if _, ok := w.index[id]; !ok {
		return
	}
	delete(w.index, id)
	for i, b := range w.bodies {
		if b.ID == id {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			return
		}
	}
}

// Body returns the body with the given ID.
func (w *World) Body(id BodyID) (*Body, bool) {
	b, ok := w.index[id]
	return b, ok
}

// Len returns the number of bodies.
func (w *World) Len() int {
	return len(w.bodies)
}

// Reset removes all bodies.
func (w *World) Reset() {
	w.bodies = nil
	w.index = make(map[BodyID]*Body)
}

// Step advances the simulation by dt seconds. Events come out in a stable
// order: bounds contacts in body order, then collisions by body pair.
// A pair is reported at most once per step.
func (w *World) Step(dt float64) []Event {
	if dt <= 0 {
		return nil
	}

	var events []Event

	for _, b := range w.bodies {
		b.Vel.Y += (w.GravityY + b.GravityY) * dt
		b.Vel = b.Vel.Scale(airDamping)
		if speed := b.Vel.Len(); speed > maxSpeed {
			b.Vel = b.Vel.Scale(maxSpeed / speed)
		}
		b.Pos = b.Pos.Add(b.Vel.Scale(dt))

		if b.CollideWorldBounds {
			events = w.bounce(b, events)
		}
	}

	touched := make(map[[2]BodyID]bool)
	for range solverIterations {
		for i := 0; i < len(w.bodies); i++ {
			for j := i + 1; j < len(w.bodies); j++ {
				a, c := w.bodies[i], w.bodies[j]
				if !separate(a, c) {
					continue
				}
				key := [2]BodyID{a.ID, c.ID}
				if !touched[key] {
					touched[key] = true
					events = append(events, Event{Kind: EventCollision, A: a.ID, B: c.ID})
				}
			}
		}
		for _, b := range w.bodies {
			if b.CollideWorldBounds {
				w.clampToBounds(b)
			}
		}
	}

	return events
}

// bounce reflects b off any edge it crossed and reports the contacts.
func (w *World) bounce(b *Body, events []Event) []Event {
	r := b.Radius
	switch {
	case b.Pos.X-r < 0:
		b.Pos.X = r
		b.Vel.X = -b.Vel.X * b.Bounce
		events = append(events, Event{Kind: EventWorldBounds, A: b.ID})
	case b.Pos.X+r > w.Width:
		b.Pos.X = w.Width - r
		b.Vel.X = -b.Vel.X * b.Bounce
		events = append(events, Event{Kind: EventWorldBounds, A: b.ID})
	}

	switch {
	case b.Pos.Y-r < 0:
		b.Pos.Y = r
		b.Vel.Y = -b.Vel.Y * b.Bounce
		events = append(events, Event{Kind: EventWorldBounds, A: b.ID})
	case b.Pos.Y+r > w.Height:
		b.Pos.Y = w.Height - r
		b.Vel.Y = -b.Vel.Y * b.Bounce
		if math.Abs(b.Vel.Y) < restSpeed {
			b.Vel.Y = 0
		}
		b.Vel.X *= floorFriction
		events = append(events, Event{Kind: EventWorldBounds, A: b.ID, Down: true})
	}
	return events
}

// clampToBounds pushes b back inside the board without touching velocity.
func (w *World) clampToBounds(b *Body) {
	r := b.Radius
	b.Pos.X = core.ClampF(b.Pos.X, r, math.Max(r, w.Width-r))
	b.Pos.Y = core.ClampF(b.Pos.Y, r, math.Max(r, w.Height-r))
}

// separate resolves the overlap of two circles. It pushes them apart in
// proportion to their masses and applies a restitution impulse when they
// approach each other. It reports whether they were in contact.
func separate(a, b *Body) bool {
	delta := b.Pos.Sub(a.Pos)
	total := a.Radius + b.Radius
	distSq := delta.LenSq()
	if distSq >= total*total {
		return false
	}

	dist := math.Sqrt(distSq)
	normal := core.V(1, 0)
	if dist > 0 {
		normal = delta.Scale(1 / dist)
	}
	penetration := total - dist

	ma, mb := a.mass(), b.mass()
	inv := 1 / (ma + mb)
	if penetration > contactSlop {
		a.Pos = a.Pos.Sub(normal.Scale(penetration * mb * inv))
		b.Pos = b.Pos.Add(normal.Scale(penetration * ma * inv))
	}

	closing := b.Vel.Sub(a.Vel).Dot(normal)
	if closing < 0 {
		e := math.Min(a.Bounce, b.Bounce)
		j := -(1 + e) * closing / (1/ma + 1/mb)
		a.Vel = a.Vel.Sub(normal.Scale(j / ma))
		b.Vel = b.Vel.Add(normal.Scale(j / mb))
	}
	return true
}
