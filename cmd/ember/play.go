package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/term"

	"github.com/vovakirdan/ember-story/internal/audio"
	"github.com/vovakirdan/ember-story/internal/config"
	"github.com/vovakirdan/ember-story/internal/core"
	"github.com/vovakirdan/ember-story/internal/games/campfire"
	"github.com/vovakirdan/ember-story/internal/platform/tui"
	"github.com/vovakirdan/ember-story/internal/telemetry"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Sit by the campfire.

Controls:
  Mouse        - Click the fire to add wood; click the others to hear them
  Space/F      - Add wood
  Enter/Space  - Start, or leave an end screen
  Esc          - Back to the menu (quits from the menu)
  D            - Toggle the debug overlay
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - More wood per log, the fire starts higher
  normal - Drop-off speeds up as the story advances
  hard   - Less wood per log, the fire starts lower
  fixed  - No progression

Examples:
  ember play
  ember play --difficulty hard
  ember play --resources ~/games/ember --mute`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Do not open the audio device")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	ctx, span := telemetry.Tracer("cmd").Start(cmd.Context(), "play")
	defer span.End()

	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	bundle, err := loadBundle(ctx, cfg)
	if err != nil {
		return err
	}

	logger := log.Default()
	game, err := campfire.New(cfg, bundle, logger.WithPrefix("game"))
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	engine := audio.NewEngine(bundle, cfg.Audio, logger.WithPrefix("audio"))
	defer engine.Close()
	if !flagMute {
		if err := engine.Open(); err != nil {
			logger.Warn("audio unavailable, playing silently", "err", err)
		}
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.TickRate,
		Seed:     flagSeed,
	}

	opts := tui.Options{
		Audio:  engine,
		Logger: logger,
	}
	if dir := config.UserDir(); dir != "" {
		opts.ScreenshotDir = filepath.Join(dir, "screenshots")
	}
	if store := openStore(); store != nil {
		defer store.Close()
		opts.Runs = store
	}

	span.SetAttributes(
		attribute.Int("ember.tick_rate", cfg.TickRate),
		attribute.String("ember.difficulty", flagDifficulty),
		attribute.Bool("ember.audio", engine.Active()),
	)

	if err := tui.Run(game, rc, opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
