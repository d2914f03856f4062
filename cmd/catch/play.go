package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-catch/internal/config"
	"github.com/vovakirdan/tui-catch/internal/core"
	"github.com/vovakirdan/tui-catch/internal/games/catch"
	"github.com/vovakirdan/tui-catch/internal/platform/tui"
	"github.com/vovakirdan/tui-catch/internal/registry"
	"github.com/vovakirdan/tui-catch/internal/tracker"
)

var (
	flagConfig     string
	flagDifficulty string
	flagTracker    string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. The game opens on its title screen.

Controls:
  ←/→, A/D, H/L  - Move the basket
  Mouse          - Basket follows the pointer
  Space/Enter    - Start
  P/Esc          - Pause
  R              - Restart
  T              - Toggle the hand tracker (needs --tracker)
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - More lives, a wider basket and a slower ramp
  normal - Config values as loaded
  hard   - Fewer lives, starts faster and ramps faster
  fixed  - No ramp, objects keep arriving at the initial interval

Hand tracker:
  --tracker names a file or FIFO with one normalized X per line
  (e.g. "0.42" or "x=0.42"; "none" when no hand is seen).

Examples:
  catch play
  catch play --difficulty easy
  catch play --config ./my-catch.yaml
  catch play --tracker /tmp/hand.fifo --log-file catch.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	for _, c := range []*cobra.Command{playCmd, configCmd} {
		c.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
		c.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	}
	playCmd.Flags().StringVar(&flagTracker, "tracker", "", "Hand tracker feed (file or FIFO)")
}

// loadGameConfig resolves the config file and applies the difficulty preset.
func loadGameConfig(path, difficulty string) (config.CatchConfig, string, error) {
	preset, ok := config.ParseDifficultyPreset(difficulty)
	if !ok {
		return config.CatchConfig{}, "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", difficulty)
	}

	cfg, source, err := config.LoadCatch(path)
	if err != nil {
		return config.CatchConfig{}, "", err
	}

	config.ApplyCatchPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.CatchConfig{}, "", fmt.Errorf("difficulty %s: %w", preset, err)
	}
	return cfg, source, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := catch.GameID
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'catch list' to see available games", gameID)
	}

	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, source, err := loadGameConfig(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}
	catch.Configure(cfg)
	preset, _ := config.ParseDifficultyPreset(flagDifficulty)
	logger.Info("config loaded", "source", source, "difficulty", preset, "ramp", !config.IsFixedPreset(preset))

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	opts := tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Logger: logger,
	}
	if flagTracker != "" {
		opts.External = tracker.New(tracker.Config{
			Path:   flagTracker,
			Logger: logger.WithPrefix("tracker"),
		})
	}

	if err := tui.Run(game, opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
