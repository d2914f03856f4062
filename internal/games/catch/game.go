// Package catch implements a catching game.
// The player slides a basket along the bottom of the field to catch falling
// objects; every catch scores, every miss costs a life, and objects arrive
// faster the longer the session runs.
package catch

import (
	"math/rand"

	"github.com/vovakirdan/tui-catch/internal/config"
	"github.com/vovakirdan/tui-catch/internal/core"
	"github.com/vovakirdan/tui-catch/internal/registry"
)

// GameID is the registry identifier.
const GameID = "catch"

// gameConfig is the configuration used by New, set from the CLI.
var gameConfig = config.DefaultCatchConfig()

// Configure sets the configuration used by subsequently created games.
func Configure(cfg config.CatchConfig) {
	gameConfig = cfg
}

// Game implements the catch game logic and drives one tick at a time.
type Game struct {
	cfg    config.CatchConfig
	screen core.RuntimeConfig
	rng    *rand.Rand

	field   Field
	player  Player
	objects []FallingObject
	session Session
	spawner *Spawner
	control *Reducer
	physics PhysicsParams

	started   bool // A session has been started at least once
	paused    bool
	tickCount int
}

// New creates a catch game with the configured settings.
func New() *Game {
	return NewWithConfig(gameConfig)
}

// NewWithConfig creates a catch game with an explicit configuration.
func NewWithConfig(cfg config.CatchConfig) *Game {
	return &Game{
		cfg:     cfg,
		control: NewReducer(nil),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Catch"
}

// AttachExternal wires an external positional control source into the
// input reducer. The source is consulted only while it reports Active.
func (g *Game) AttachExternal(src core.ExternalControl) {
	g.control.SetExternal(src)
}

// Reset puts the game on its title screen: nothing running, no objects,
// spawn ramp at its start. The first ActionStart begins a session.
func (g *Game) Reset(screen core.RuntimeConfig) {
	g.screen = screen
	g.rng = rand.New(rand.NewSource(screen.Seed))
	g.physics = PhysicsParams{
		Gravity:    g.cfg.Objects.Gravity,
		Tolerance:  g.cfg.Gameplay.CatchTolerance,
		MissMargin: g.cfg.Gameplay.MissMargin,
	}

	g.field = fieldFor(screen)
	g.player = Player{
		W:     g.cfg.Player.Width,
		H:     g.cfg.Player.Height,
		Speed: g.cfg.Player.Step,
	}
	g.player.X = g.field.MaxPlayerX(g.player.W) / 2
	g.player.Y = g.field.H - g.player.H

	g.objects = g.objects[:0]
	g.session = Session{Lives: g.cfg.Gameplay.Lives}
	g.spawner = NewSpawner(g.cfg.Spawn, g.cfg.Objects)
	g.control.Reset(g.player.X)

	g.started = false
	g.paused = false
	g.tickCount = 0
}

// Start begins a new session from any state: score and lives are reset,
// the object collection is emptied and the game becomes active.
// The spawn ramp restarts unless difficulty.reset_on_restart is off.
func (g *Game) Start() {
	if g.spawner == nil {
		g.Reset(g.screen)
	}
	if !g.started || g.cfg.Difficulty.ResetOnRestart {
		g.spawner.Reset()
	}

	g.session.Start(g.cfg.Gameplay.Lives)
	clear(g.objects)
	g.objects = g.objects[:0]
	g.control.Reset(g.player.X)

	g.started = true
	g.paused = false
	g.tickCount = 0
}

// Resize adapts the field to new screen dimensions without ending the session.
func (g *Game) Resize(screenW, screenH int) {
	g.screen.ScreenW = screenW
	g.screen.ScreenH = screenH
	g.field = fieldFor(g.screen)
	g.player.Y = g.field.H - g.player.H
	g.player.X = min(max(g.player.X, 0), g.field.MaxPlayerX(g.player.W))
}

// fieldFor reserves the bottom screen row for the ground line.
func fieldFor(screen core.RuntimeConfig) Field {
	return Field{W: float64(screen.ScreenW), H: float64(max(screen.ScreenH-1, 1))}
}

// Step advances the game by one tick. Commands are handled in every state;
// input reduction, spawning and physics run only while the session is
// active and not paused.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var events []core.Event

	switch {
	case in.Has(core.ActionRestart):
		g.Start()
		events = append(events, core.Event{Type: core.EventStart})
	case in.Has(core.ActionStart) && !g.session.Running:
		g.Start()
		events = append(events, core.Event{Type: core.EventStart})
	case in.Has(core.ActionPause) && g.session.Running:
		g.paused = !g.paused
	}

	g.control.Update(in)

	if !g.session.Running || g.paused {
		return core.StepResult{State: g.State(), Events: events}
	}

	g.tickCount++

	target := g.control.TargetX(g.player, g.field)
	g.player.Follow(target, g.cfg.Player.Smoothing, g.field)

	if obj, ok := g.spawner.Tick(g.rng, g.field); ok {
		g.objects = append(g.objects, obj)
		events = append(events, core.Event{Type: core.EventSpawn})
	}

	g.objects = stepObjects(g.objects, g.player, g.field, g.physics, func(out Outcome) {
		if !g.session.Running {
			return
		}
		switch out {
		case OutcomeCaught:
			g.session.Catch(g.cfg.Gameplay.Reward)
			events = append(events, core.Event{Type: core.EventCatch, Value: g.cfg.Gameplay.Reward})
		case OutcomeMissed:
			over := g.session.Miss()
			events = append(events, core.Event{Type: core.EventMiss, Value: g.session.Lives})
			if over {
				events = append(events, core.Event{Type: core.EventGameOver, Value: g.session.Score})
			}
		}
	})

	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score,
		Lives:    g.session.Lives,
		Running:  g.session.Running,
		GameOver: g.started && !g.session.Running,
		Paused:   g.paused,
	}
}

// Session returns the score, lives and running flag.
func (g *Game) Session() Session {
	return g.session
}

// Player returns the player state.
func (g *Game) Player() Player {
	return g.player
}

// Objects returns a copy of the live falling objects in spawn order.
func (g *Game) Objects() []FallingObject {
	return append([]FallingObject(nil), g.objects...)
}

// Field returns the current play area.
func (g *Game) Field() Field {
	return g.field
}

// Spawner exposes the spawn state for display.
func (g *Game) Spawner() *Spawner {
	return g.spawner
}

// ControlSource returns which input steered the player on the last tick.
func (g *Game) ControlSource() ControlSource {
	return g.control.Source()
}

// Ticks returns the number of simulated ticks in the current session.
func (g *Game) Ticks() int {
	return g.tickCount
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
