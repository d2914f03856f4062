package tui

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-catch/internal/core"
	"github.com/vovakirdan/tui-catch/internal/registry"
)

// footerRows is the number of terminal rows below the game screen.
const footerRows = 1

// Options configures a play session.
type Options struct {
	Runtime core.RuntimeConfig

	// External is an optional positional control source toggled with the
	// tracker key. It is attached to games that accept one.
	External core.ExternalControl

	// Logger receives session events. Nil discards them.
	Logger *log.Logger
}

// trackerMsg reports the result of an asynchronous tracker start.
type trackerMsg struct {
	err error
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     *KeyMapper
	help     help.Model
	logger   *log.Logger
	external core.ExternalControl

	inputFrame core.InputFrame
	held       map[core.Action]int // Remaining hold ticks per direction
	holdTicks  int
	pointerX   float64
	hasPointer bool

	gameState core.GameState
	status    string
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if opts.External != nil {
		if ec, ok := game.(registry.ExternallyControlled); ok {
			ec.AttachExternal(opts.External)
		}
	}

	gameCfg := cfg
	gameCfg.ScreenH = max(cfg.ScreenH-footerRows, 1)

	return Model{
		game:       game,
		screen:     core.NewScreen(gameCfg.ScreenW, gameCfg.ScreenH),
		config:     gameCfg,
		keys:       NewKeyMapper(),
		help:       help.New(),
		logger:     logger,
		external:   opts.External,
		inputFrame: core.NewInputFrame(),
		held:       make(map[core.Action]int),
		holdTicks:  holdTicks(cfg.TickRate),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("game ready", "game", m.game.ID(), "seed", m.config.Seed,
		"width", m.config.ScreenW, "height", m.config.ScreenH)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case trackerMsg:
		return m.handleTracker(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.IsTrackerToggle(msg) {
		return m.toggleTracker()
	}

	action := m.keys.MapKey(msg)
	switch {
	case action == core.ActionQuit:
		m.quitting = true
		m.stopTracker()
		return m, tea.Quit
	case IsMovement(action):
		// Keys take over from the mouse until it moves again
		m.hasPointer = false
		opposite := core.ActionLeft
		if action == core.ActionLeft {
			opposite = core.ActionRight
		}
		delete(m.held, opposite)
		m.held[action] = m.holdTicks
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleMouse tracks the pointer column. Any mouse event over the window
// counts as pointer presence.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.pointerX = float64(msg.X) + 0.5
	m.hasPointer = true
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.inputFrame.Set(core.ActionStart)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(msg.Height-footerRows, 1)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	if r, ok := m.game.(registry.Resizable); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
	} else if !m.gameState.Running {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	for a, n := range m.held {
		m.inputFrame.Set(a)
		if n <= 1 {
			delete(m.held, a)
		} else {
			m.held[a] = n - 1
		}
	}
	if m.hasPointer {
		m.inputFrame.SetPointer(m.pointerX)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.logEvents(result)

	// Drawing happens every tick, whether or not the session is running
	m.game.Render(m.screen)

	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// logEvents records session lifecycle events.
func (m Model) logEvents(result core.StepResult) {
	for _, e := range result.Events {
		switch e.Type {
		case core.EventStart:
			m.logger.Info("session started", "game", m.game.ID())
		case core.EventMiss:
			m.logger.Debug("object missed", "lives", e.Value)
		case core.EventGameOver:
			m.logger.Info("game over", "game", m.game.ID(), "score", e.Value)
		}
	}
}

// toggleTracker starts or stops the external control source.
// Starting may block on the feed, so it runs as a command.
func (m Model) toggleTracker() (tea.Model, tea.Cmd) {
	if m.external == nil {
		m.status = "no tracker configured (--tracker)"
		return m, nil
	}

	if m.external.Active() {
		m.stopTracker()
		m.status = "tracker off"
		return m, nil
	}

	m.status = "tracker starting…"
	ext := m.external
	return m, func() tea.Msg {
		return trackerMsg{err: ext.Start(context.Background())}
	}
}

func (m Model) stopTracker() {
	if m.external == nil || !m.external.Active() {
		return
	}
	if err := m.external.Stop(); err != nil {
		m.logger.Warn("stopping tracker", "error", err)
	}
}

// handleTracker reports the outcome of a tracker start. Failures are
// shown and logged; play continues on keyboard and mouse.
func (m Model) handleTracker(msg trackerMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.logger.Warn("tracker unavailable", "error", msg.err)
		m.status = "tracker unavailable: " + rootCause(msg.err).Error()
		return m, nil
	}
	m.status = "tracker on"
	return m, nil
}

func rootCause(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	footer := m.help.ShortHelpView(m.keys.Keys().ShortHelp())
	if m.status != "" {
		footer = statusStyle.Render(m.status) + "  " + footer
	}

	return RenderScreen(m.screen) + "\n" + footerStyle.Render(footer)
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	_, err := p.Run()
	return err
}
