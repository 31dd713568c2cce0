// Package merge implements the merge-balls game: the player drops balls that
// fall under gravity, two touching balls of the same tier merge into the next
// tier and score points, and the game ends when the last dropped ball touches
// another ball while still above the game-over line.
package merge

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/merge-balls/internal/config"
	"github.com/vovakirdan/merge-balls/internal/core"
	"github.com/vovakirdan/merge-balls/internal/physics"
	"github.com/vovakirdan/merge-balls/internal/registry"
)

// GameID is the registry identifier of the game.
const GameID = "merge"

var (
	// configPath stores the custom config path set via CLI
	configPath string

	logger = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game drives one merge session: it owns the state, the settled balls and
// the physics backend, and wires input and physics events to the spawn
// controller and the collision resolver.
type Game struct {
	cfg     *config.MergeConfig
	tiers   *TierTable
	runtime core.RuntimeConfig
	rng     *rand.Rand
	logger  *log.Logger

	state      GameState
	balls      *BallSet
	physics    PhysicsAdapter
	spawner    *SpawnController
	resolver   *CollisionResolver
	dispatcher *Dispatcher
	hud        *labels

	pointerX float64 // World x the pending ball follows
	paused   bool
	tick     uint64
	restarts int
}

// New creates a game that loads its configuration on first Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game from an explicit configuration.
// The configuration is validated up front.
func NewWithConfig(cfg config.MergeConfig) (*Game, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("merge: invalid config: %w", err)
	}
	tiers, err := TiersFromConfig(cfg.Tiers)
	if err != nil {
		return nil, fmt.Errorf("merge: invalid tier table: %w", err)
	}
	return &Game{cfg: &cfg, tiers: tiers}, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Merge Balls"
}

// loadConfig resolves the configuration the first time it is needed.
// A broken config on the search path falls back to the defaults; the CLI
// validates custom files before the game starts.
func (g *Game) loadConfig() {
	if g.cfg != nil {
		return
	}

	cfg, err := config.LoadMerge(configPath)
	if err == nil {
		err = config.Validate(cfg)
	}
	var tiers *TierTable
	if err == nil {
		tiers, err = TiersFromConfig(cfg.Tiers)
	}
	if err != nil {
		logger.Warn("using default config", "error", err)
		cfg = config.DefaultMergeConfig()
		tiers, err = TiersFromConfig(cfg.Tiers)
		if err != nil {
			panic(fmt.Sprintf("merge: default tier table is invalid: %v", err))
		}
	}

	g.cfg = &cfg
	g.tiers = tiers
}

// Reset initializes or restarts the game: score, flags, settled balls and
// the physics world are cleared and a new pending ball is armed.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.loadConfig()
	cfg := g.cfg

	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.logger = logger.With("game", GameID)

	g.state.Reset()

	if g.balls == nil {
		g.balls = NewBallSet()
	} else {
		g.balls.Clear()
	}

	if g.physics == nil {
		world := physics.NewWorld(cfg.Board.Width, cfg.Board.Height, cfg.Physics.WorldGravityY)
		g.physics = NewWorldAdapter(world)
	} else {
		g.physics.Reset()
	}

	if g.hud == nil {
		g.hud = newLabels()
	}
	g.hud.Reset()

	body := BodyTemplateFromConfig(cfg.Physics)
	g.spawner = NewSpawnController(g.tiers, &g.state, g.balls, g.physics, g.rng, SpawnOptions{
		Origin: core.V(cfg.Board.DropX, cfg.Board.DropY),
		Window: cfg.Spawn.Window,
		Body:   body,
	}, g.logger)
	g.resolver = NewCollisionResolver(g.tiers, &g.state, g.balls, g.physics, body, cfg.Board.GameOverLineY, g.hud, g.logger)
	g.dispatcher = NewDispatcher(g.resolver, &g.state, g.balls)

	g.pointerX = cfg.Board.DropX
	g.paused = false
	g.tick = 0

	g.spawner.ArmNext()
}

// Resize adapts rendering to a new terminal size without touching the
// simulation.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.state.GameOver {
		if in.Has(core.ActionRestart) || g.retryActivated(in) {
			g.retry()
		}
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++

	g.updatePointer(in)
	g.spawner.FollowPointer(g.pointerX)

	if in.Has(core.ActionActivate) {
		g.spawner.Drop()
	}

	events := g.physics.Step(g.runtime.TickSeconds())
	g.dispatcher.Dispatch(events)

	return core.StepResult{State: g.State()}
}

// updatePointer converts mouse and keyboard input into the world x the
// pending ball follows, keeping the ball inside the board.
func (g *Game) updatePointer(in core.InputFrame) {
	if in.PointerMoved && in.Pointer.Valid {
		g.pointerX = g.layout().worldX(in.Pointer.X)
	}
	step := g.cfg.Input.PointerStep
	if in.Has(core.ActionLeft) {
		g.pointerX -= step
	}
	if in.Has(core.ActionRight) {
		g.pointerX += step
	}

	r := 0.0
	if p := g.spawner.Pending(); p != nil {
		r = g.tiers.At(p.Tier).Radius()
	}
	g.pointerX = core.ClampF(g.pointerX, r, g.cfg.Board.Width-r)
}

// retryActivated reports whether an activation hits the RETRY control.
// A click must land on the control; a key press (no pointer event in the
// frame) always does.
func (g *Game) retryActivated(in core.InputFrame) bool {
	if !in.Has(core.ActionActivate) {
		return false
	}
	if !in.PointerMoved {
		return true
	}
	p := in.Pointer
	return p.Valid && g.layout().retry.Contains(p.X, p.Y)
}

// retry starts a new session with a seed drawn from the current one.
func (g *Game) retry() {
	g.restarts++
	g.logger.Info("restart", "score", g.state.Score, "restarts", g.restarts)

	runtime := g.runtime
	runtime.Seed = g.rng.Int63()
	g.Reset(runtime)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		GameOver: g.state.GameOver,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
