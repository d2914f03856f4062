package catch

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-catch/internal/config"
	"github.com/vovakirdan/tui-catch/internal/core"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     42,
	}
}

func newStartedGame(t *testing.T, cfg config.CatchConfig) *Game {
	t.Helper()
	g := NewWithConfig(cfg)
	g.Reset(testRuntime())
	g.Start()
	return g
}

// missObject returns an object already past the miss line, far from the player.
func missObject(g *Game) FallingObject {
	return FallingObject{X: 2, Y: g.field.H + g.cfg.Gameplay.MissMargin + 1, Size: 1}
}

func TestTitleScreenDoesNotSimulate(t *testing.T) {
	g := NewWithConfig(config.DefaultCatchConfig())
	g.Reset(testRuntime())

	for i := 0; i < 200; i++ {
		in := core.NewInputFrame()
		in.Set(core.ActionRight)
		g.Step(in)
	}

	state := g.State()
	if state.Running || state.GameOver {
		t.Errorf("title screen should be neither running nor over: %+v", state)
	}
	if g.Ticks() != 0 || len(g.Objects()) != 0 {
		t.Errorf("title screen should not simulate: ticks=%d objects=%d", g.Ticks(), len(g.Objects()))
	}
	if g.Player().X != g.field.MaxPlayerX(g.player.W)/2 {
		t.Errorf("player should stay centered before start, X = %v", g.Player().X)
	}
}

func TestStartCommand(t *testing.T) {
	g := NewWithConfig(config.DefaultCatchConfig())
	g.Reset(testRuntime())

	start := core.NewInputFrame()
	start.Set(core.ActionStart)
	res := g.Step(start)

	if !res.Has(core.EventStart) {
		t.Error("start should emit a start event")
	}
	if !res.State.Running || res.State.Lives != 3 || res.State.Score != 0 {
		t.Errorf("unexpected state after start: %+v", res.State)
	}

	// Start while running does not reset the session
	g.session.Score = 50
	res = g.Step(start)
	if res.Has(core.EventStart) || res.State.Score != 50 {
		t.Errorf("start while running should be ignored: %+v", res)
	}
}

func TestCatchScenario(t *testing.T) {
	g := newStartedGame(t, config.DefaultCatchConfig())
	p := g.Player()
	g.objects = append(g.objects, FallingObject{X: p.X + p.W/2, Y: p.Y, VY: 0, Size: 1})

	res := g.Step(core.NewInputFrame())

	if res.State.Score != 10 {
		t.Errorf("score = %d, expected 10", res.State.Score)
	}
	if len(g.Objects()) != 0 {
		t.Errorf("caught object should be removed, have %d", len(g.Objects()))
	}
	if !res.Has(core.EventCatch) {
		t.Error("expected catch event")
	}
	if res.State.Lives != 3 {
		t.Errorf("catch should not cost lives, got %d", res.State.Lives)
	}
}

func TestMissScenario(t *testing.T) {
	g := newStartedGame(t, config.DefaultCatchConfig())
	g.objects = append(g.objects, missObject(g))

	res := g.Step(core.NewInputFrame())

	if res.State.Lives != 2 {
		t.Errorf("lives = %d, expected 2", res.State.Lives)
	}
	if len(g.Objects()) != 0 {
		t.Errorf("missed object should be removed, have %d", len(g.Objects()))
	}
	if !res.Has(core.EventMiss) || res.Has(core.EventGameOver) {
		t.Errorf("expected a miss without game over, events = %v", res.Events)
	}
	if !res.State.Running {
		t.Error("one miss should not end the game")
	}
}

func TestThreeMissesEndGame(t *testing.T) {
	g := newStartedGame(t, config.DefaultCatchConfig())

	var res core.StepResult
	for i := 0; i < 3; i++ {
		g.objects = append(g.objects, missObject(g))
		res = g.Step(core.NewInputFrame())
		if i < 2 && !res.State.Running {
			t.Fatalf("game ended early after miss %d", i+1)
		}
	}

	if res.State.Running || !res.State.GameOver {
		t.Fatalf("expected game over after third miss: %+v", res.State)
	}
	if res.State.Lives != 0 {
		t.Errorf("lives = %d, expected 0", res.State.Lives)
	}
	if !res.Has(core.EventGameOver) {
		t.Error("expected game over event on the third miss")
	}

	ticks := g.Ticks()
	for i := 0; i < 300; i++ {
		in := core.NewInputFrame()
		in.Set(core.ActionLeft)
		in.Set(core.ActionPause)
		res = g.Step(in)
		if res.State.Score != 0 || res.State.Lives != 0 || res.State.Running {
			t.Fatalf("state changed after game over: %+v", res.State)
		}
	}
	if g.Ticks() != ticks {
		t.Errorf("no ticks should run after game over: %d -> %d", ticks, g.Ticks())
	}
	if len(g.Objects()) != 0 {
		t.Errorf("no objects should spawn after game over, have %d", len(g.Objects()))
	}
	if res.State.Paused {
		t.Error("pause should be ignored after game over")
	}
}

func TestSimultaneousMissesStopAtZero(t *testing.T) {
	g := newStartedGame(t, config.DefaultCatchConfig())
	g.session.Lives = 1
	g.objects = append(g.objects, missObject(g), missObject(g))

	res := g.Step(core.NewInputFrame())

	if res.State.Lives != 0 {
		t.Errorf("lives = %d, expected 0", res.State.Lives)
	}
	misses := 0
	for _, e := range res.Events {
		if e.Type == core.EventMiss {
			misses++
		}
	}
	if misses != 1 {
		t.Errorf("expected one counted miss, got %d", misses)
	}
	if len(g.Objects()) != 0 {
		t.Errorf("both objects should be removed, have %d", len(g.Objects()))
	}
}

func TestResetFromAnyState(t *testing.T) {
	cfg := config.DefaultCatchConfig()

	states := map[string]func(g *Game){
		"mid-game": func(g *Game) {
			g.Start()
			g.session.Score = 120
			g.session.Lives = 1
			g.objects = append(g.objects, FallingObject{X: 10, Y: 5, Size: 1})
		},
		"paused": func(g *Game) {
			g.Start()
			in := core.NewInputFrame()
			in.Set(core.ActionPause)
			g.Step(in)
		},
		"game over": func(g *Game) {
			g.Start()
			g.session.Lives = 1
			g.objects = append(g.objects, missObject(g))
			g.Step(core.NewInputFrame())
		},
		"title": func(g *Game) {},
	}

	for name, setup := range states {
		t.Run(name, func(t *testing.T) {
			g := NewWithConfig(cfg)
			g.Reset(testRuntime())
			setup(g)

			g.Start()

			state := g.State()
			if state.Score != 0 || state.Lives != cfg.Gameplay.Lives || !state.Running {
				t.Errorf("unexpected state after reset: %+v", state)
			}
			if state.Paused || state.GameOver {
				t.Errorf("reset should clear pause and game over: %+v", state)
			}
			if len(g.Objects()) != 0 {
				t.Errorf("reset should clear objects, have %d", len(g.Objects()))
			}
		})
	}
}

func TestRestartActionResetsSession(t *testing.T) {
	g := newStartedGame(t, config.DefaultCatchConfig())
	g.session.Score = 70
	g.objects = append(g.objects, FallingObject{X: 10, Y: 5, Size: 1})

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	res := g.Step(in)

	if !res.Has(core.EventStart) {
		t.Error("restart should emit a start event")
	}
	if res.State.Score != 0 || len(g.Objects()) != 0 {
		t.Errorf("restart should reset score and objects: score=%d objects=%d", res.State.Score, len(g.Objects()))
	}
}

func TestSpawnRampResetOnRestart(t *testing.T) {
	tests := []struct {
		name           string
		resetOnRestart bool
	}{
		{"reset", true},
		{"carry over", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.DefaultCatchConfig()
			cfg.Gameplay.Lives = 100
			cfg.Difficulty.ResetOnRestart = tc.resetOnRestart
			g := newStartedGame(t, cfg)

			for i := 0; i < 300; i++ {
				g.Step(core.NewInputFrame())
			}
			ramped := g.Spawner().Interval()
			if ramped >= cfg.Spawn.Interval {
				t.Fatalf("interval should have ramped, got %v", ramped)
			}

			g.Start()

			got := g.Spawner().Interval()
			if tc.resetOnRestart && got != cfg.Spawn.Interval {
				t.Errorf("interval = %v, expected reset to %v", got, cfg.Spawn.Interval)
			}
			if !tc.resetOnRestart && got != ramped {
				t.Errorf("interval = %v, expected carry-over %v", got, ramped)
			}
		})
	}
}

func TestFirstSpawnAtInterval(t *testing.T) {
	g := newStartedGame(t, config.DefaultCatchConfig())

	for i := 1; i < 60; i++ {
		if res := g.Step(core.NewInputFrame()); res.Has(core.EventSpawn) {
			t.Fatalf("unexpected spawn at tick %d", i)
		}
	}
	res := g.Step(core.NewInputFrame())
	if !res.Has(core.EventSpawn) {
		t.Fatal("expected spawn at tick 60")
	}
	objs := g.Objects()
	if len(objs) != 1 {
		t.Fatalf("expected one object, have %d", len(objs))
	}
	if objs[0].Y >= 0 {
		t.Errorf("new object should start above the field, Y = %v", objs[0].Y)
	}
}

func TestHoldRightUntilClamped(t *testing.T) {
	g := newStartedGame(t, config.DefaultCatchConfig())
	maxX := g.Field().MaxPlayerX(g.Player().W)

	for i := 0; i < 200; i++ {
		prev := g.Player().X
		in := core.NewInputFrame()
		in.Set(core.ActionRight)
		g.Step(in)
		x := g.Player().X

		if x > maxX {
			t.Fatalf("tick %d: X = %v beyond clamp %v", i, x, maxX)
		}
		if prev < maxX && x <= prev {
			t.Fatalf("tick %d: X did not increase (%v -> %v)", i, prev, x)
		}
		if prev == maxX && x != maxX {
			t.Fatalf("tick %d: X left the clamp (%v)", i, x)
		}
	}

	if g.Player().X != maxX {
		t.Errorf("player should end clamped at %v, got %v", maxX, g.Player().X)
	}
}

func TestPointerSteersPlayer(t *testing.T) {
	g := newStartedGame(t, config.DefaultCatchConfig())

	for i := 0; i < 100; i++ {
		in := core.NewInputFrame()
		in.Set(core.ActionRight) // pointer wins over keyboard
		in.SetPointer(20)
		g.Step(in)
	}

	want := 20 - g.Player().W/2
	if g.Player().X != want {
		t.Errorf("player X = %v, expected %v under pointer", g.Player().X, want)
	}
	if g.ControlSource() != SourcePointer {
		t.Errorf("control source = %v, expected pointer", g.ControlSource())
	}
}

func TestExternalControlSteersPlayer(t *testing.T) {
	g := newStartedGame(t, config.DefaultCatchConfig())
	ext := &fakeExternal{active: true, x: 0, hasX: true}
	g.AttachExternal(ext)

	for i := 0; i < 100; i++ {
		in := core.NewInputFrame()
		in.SetPointer(70)
		g.Step(in)
	}
	if g.Player().X != 0 {
		t.Errorf("external x=0 should park player at left edge, got %v", g.Player().X)
	}

	// Disabling the source hands control back without a reset
	ext.active = false
	for i := 0; i < 100; i++ {
		in := core.NewInputFrame()
		in.SetPointer(70)
		g.Step(in)
	}
	if want := 70 - g.Player().W/2; g.Player().X != want {
		t.Errorf("after disabling external, X = %v, expected %v", g.Player().X, want)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newStartedGame(t, config.DefaultCatchConfig())
	g.objects = append(g.objects, FallingObject{X: 10, Y: 5, VY: 0.5, Size: 1})

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	res := g.Step(pause)
	if !res.State.Paused {
		t.Fatal("expected paused state")
	}

	for i := 0; i < 50; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.Ticks() != 0 {
		t.Errorf("paused game should not tick, ticks = %d", g.Ticks())
	}
	if y := g.Objects()[0].Y; y != 5 {
		t.Errorf("paused object moved to Y = %v", y)
	}

	res = g.Step(pause)
	if res.State.Paused || g.Ticks() != 1 {
		t.Errorf("unpause should resume on the same tick: paused=%v ticks=%d", res.State.Paused, g.Ticks())
	}
}

func TestPauseIgnoredBeforeStart(t *testing.T) {
	g := NewWithConfig(config.DefaultCatchConfig())
	g.Reset(testRuntime())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	if res := g.Step(pause); res.State.Paused {
		t.Error("pause should be ignored on the title screen")
	}
}

func TestScoreAndLivesMonotonic(t *testing.T) {
	cfg := config.DefaultCatchConfig()
	cfg.Spawn.Interval = 20
	cfg.Spawn.MinInterval = 5
	g := newStartedGame(t, cfg)
	rng := rand.New(rand.NewSource(99))

	prev := g.State()
	for i := 0; i < 5000; i++ {
		in := core.NewInputFrame()
		switch rng.Intn(3) {
		case 0:
			in.Set(core.ActionLeft)
		case 1:
			in.Set(core.ActionRight)
		}
		state := g.Step(in).State

		if state.Score < prev.Score {
			t.Fatalf("tick %d: score decreased %d -> %d", i, prev.Score, state.Score)
		}
		if state.Lives > prev.Lives {
			t.Fatalf("tick %d: lives increased %d -> %d", i, prev.Lives, state.Lives)
		}
		if state.Score%cfg.Gameplay.Reward != 0 {
			t.Fatalf("tick %d: score %d not a multiple of reward", i, state.Score)
		}
		if state.Lives < 0 {
			t.Fatalf("tick %d: negative lives %d", i, state.Lives)
		}
		if prev.Running && state.Lives <= 0 && state.Running {
			t.Fatalf("tick %d: still running with %d lives", i, state.Lives)
		}
		prev = state
	}

	if prev.Running {
		t.Error("expected fast spawning with random input to end the game within 5000 ticks")
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 1500)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i%90 < 30:
			inputs[i].Set(core.ActionLeft)
		case i%90 < 60:
			inputs[i].Set(core.ActionRight)
		}
	}

	run := func() *Game {
		g := newStartedGame(t, config.DefaultCatchConfig())
		for _, in := range inputs {
			g.Step(in)
		}
		return g
	}

	g1, g2 := run(), run()

	if g1.Session() != g2.Session() {
		t.Errorf("sessions differ: %+v vs %+v", g1.Session(), g2.Session())
	}
	if g1.Player() != g2.Player() {
		t.Errorf("players differ: %+v vs %+v", g1.Player(), g2.Player())
	}
	o1, o2 := g1.Objects(), g2.Objects()
	if len(o1) != len(o2) {
		t.Fatalf("object counts differ: %d vs %d", len(o1), len(o2))
	}
	for i := range o1 {
		if o1[i] != o2[i] {
			t.Errorf("object %d differs: %+v vs %+v", i, o1[i], o2[i])
		}
	}
}

func TestResizeKeepsSession(t *testing.T) {
	g := newStartedGame(t, config.DefaultCatchConfig())
	g.session.Score = 30
	g.player.X = 70

	g.Resize(40, 12)

	if g.Field() != (Field{W: 40, H: 11}) {
		t.Errorf("field = %+v, expected 40x11", g.Field())
	}
	p := g.Player()
	if p.X != 31 || p.Y != 10 {
		t.Errorf("player = (%v, %v), expected clamped to (31, 10)", p.X, p.Y)
	}
	if state := g.State(); !state.Running || state.Score != 30 {
		t.Errorf("resize should not reset the session: %+v", state)
	}
}

func TestRender(t *testing.T) {
	g := NewWithConfig(config.DefaultCatchConfig())
	g.Reset(testRuntime())
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if !strings.Contains(screen.String(), "C A T C H") {
		t.Error("title screen should show the game name")
	}

	g.Start()
	g.objects = append(g.objects, FallingObject{X: 10.4, Y: 5.7, Size: 1})
	g.Render(screen)
	out := screen.String()

	if !strings.Contains(out, "Score: 0") {
		t.Error("HUD should show the score")
	}
	if !strings.Contains(screen.Row(0), "♥♥♥") {
		t.Errorf("HUD should show three lives, row 0 = %q", screen.Row(0))
	}
	if screen.Get(10, 5) != SmallObjectChar {
		t.Errorf("object should be drawn at (10, 5), got %q", screen.Get(10, 5))
	}
	if !strings.ContainsRune(screen.Row(22), BasketLeft) {
		t.Errorf("basket should be drawn on row 22, got %q", screen.Row(22))
	}
	if !strings.ContainsRune(screen.Row(23), GroundChar) {
		t.Errorf("ground should be drawn on row 23, got %q", screen.Row(23))
	}

	g.session.Lives = 1
	g.objects = append(g.objects[:0], missObject(g))
	g.Step(core.NewInputFrame())
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over screen should be shown after the last life")
	}
	if !strings.Contains(screen.Row(0), "♡♡♡") {
		t.Errorf("HUD should show lost lives, row 0 = %q", screen.Row(0))
	}
}

func TestRegistered(t *testing.T) {
	g := New()
	if g.ID() != "catch" || g.Title() != "Catch" {
		t.Errorf("unexpected identity %q/%q", g.ID(), g.Title())
	}
}
