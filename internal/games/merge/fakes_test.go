package merge

import (
	"testing"

	"github.com/vovakirdan/merge-balls/internal/config"
	"github.com/vovakirdan/merge-balls/internal/core"
)

// fakePhysics records body traffic and replays queued events on Step.
type fakePhysics struct {
	attached []*Ball
	params   []BodyParams
	removed  []*Ball
	queued   []Event
	resets   int
}

func (p *fakePhysics) AttachBody(b *Ball, params BodyParams) {
	p.attached = append(p.attached, b)
	p.params = append(p.params, params)
}

func (p *fakePhysics) RemoveBody(b *Ball) {
	p.removed = append(p.removed, b)
}

func (p *fakePhysics) Step(float64) []Event {
	ev := p.queued
	p.queued = nil
	return ev
}

func (p *fakePhysics) Reset() {
	p.resets++
}

// fakeHUD records every notification.
type fakeHUD struct {
	scores []int
	over   []int
	resets int
}

func (h *fakeHUD) ScoreChanged(score int) { h.scores = append(h.scores, score) }
func (h *fakeHUD) GameOver(score int)     { h.over = append(h.over, score) }
func (h *fakeHUD) Reset()                 { h.resets++ }

// seqRand returns values from a fixed sequence, wrapped into [0, n).
type seqRand struct {
	vals  []int
	i     int
	calls []int // n of every call
}

func (r *seqRand) Intn(n int) int {
	r.calls = append(r.calls, n)
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}

// defaultTable builds the stock seven-tier table.
func defaultTable(t *testing.T) *TierTable {
	t.Helper()
	table, err := TiersFromConfig(config.DefaultMergeConfig().Tiers)
	if err != nil {
		t.Fatalf("default tiers: %v", err)
	}
	return table
}

const testLineY = 150

// rig wires a resolver, spawner and dispatcher over fakes.
type rig struct {
	tiers      *TierTable
	state      *GameState
	balls      *BallSet
	physics    *fakePhysics
	hud        *fakeHUD
	rng        *seqRand
	resolver   *CollisionResolver
	spawner    *SpawnController
	dispatcher *Dispatcher
}

func newRig(t *testing.T) *rig {
	t.Helper()
	st := NewGameState()
	r := &rig{
		tiers:   defaultTable(t),
		state:   &st,
		balls:   NewBallSet(),
		physics: &fakePhysics{},
		hud:     &fakeHUD{},
		rng:     &seqRand{},
	}
	body := BodyTemplate{Bounce: 0.5, GravityY: 300}
	r.resolver = NewCollisionResolver(r.tiers, r.state, r.balls, r.physics, body, testLineY, r.hud, nil)
	r.spawner = NewSpawnController(r.tiers, r.state, r.balls, r.physics, r.rng,
		SpawnOptions{Origin: core.V(400, 100), Window: 4, Body: body}, nil)
	r.dispatcher = NewDispatcher(r.resolver, r.state, r.balls)
	return r
}

// settle puts a settled ball straight into the set.
func (r *rig) settle(tier int, x, y float64) *Ball {
	b := r.balls.NewBall(tier, core.V(x, y))
	b.HasBody = true
	r.balls.Add(b)
	return b
}
