package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/penguin-flap/internal/audio"
	"github.com/vovakirdan/penguin-flap/internal/config"
	"github.com/vovakirdan/penguin-flap/internal/games/penguin"
	"github.com/vovakirdan/penguin-flap/internal/platform/tui"
	"github.com/vovakirdan/penguin-flap/internal/registry"
	"github.com/vovakirdan/penguin-flap/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagBackground string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing right away. The game defaults to penguin.

Controls:
  Space/Up/W  - Start, then flap
  P           - Pause
  R           - Restart (after game over)
  Esc/B       - Leave (when paused, idle or after game over)
  Ctrl+S      - Save a text screenshot
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Wide gaps that narrow slowly
  normal - The configured base gap
  hard   - Start close to the minimum gap
  fixed  - Gap never shrinks

Examples:
  penguin play
  penguin play --difficulty hard
  penguin play --background dusk --mute
  penguin play --config ./my-penguin.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
}

// addGameFlags binds the flags that shape game configuration.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().StringVar(&flagBackground, "background", "", "Background theme: ice, dusk, night")
}

// applyGameFlags hands the flags to the game package and checks that the
// resulting configuration is valid.
func applyGameFlags() (config.PenguinConfig, error) {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return config.PenguinConfig{}, fmt.Errorf("unknown difficulty %q", flagDifficulty)
	}
	if flagBackground != "" && !penguin.SetTheme(flagBackground) {
		return config.PenguinConfig{}, fmt.Errorf("unknown background %q", flagBackground)
	}
	penguin.SetConfigPath(flagConfig)
	penguin.SetDifficultyPreset(flagDifficulty)

	cfg, err := penguin.LoadConfig()
	if err != nil {
		return config.PenguinConfig{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// startAudio plays sound effects unless muted. Missing audio hardware is
// not fatal. The returned func stops playback.
func startAudio(logger *log.Logger, muted bool) func() {
	if muted {
		return func() {}
	}
	sm := audio.NewSoundManager(audio.DefaultConfig())
	if err := sm.Initialize(); err != nil {
		logger.Warn("audio unavailable, playing muted", "err", err)
		return func() {}
	}
	penguin.SetListener(sm)
	return sm.Cleanup
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := penguin.ID
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		fatal("unknown game %q\nRun 'penguin list' to see available games.", gameID)
	}

	if _, err := applyGameFlags(); err != nil {
		fatal("%v", err)
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fatal("%v", err)
	}
	defer closeLog()

	stopAudio := startAudio(logger, flagMute)
	defer stopAudio()

	game, err := registry.Create(gameID)
	if err != nil {
		fatal("cannot create game: %v", err)
	}

	store, err := storage.Open()
	if err != nil {
		logger.Warn("scoreboard disabled", "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, runtimeConfig(), logger); err != nil {
		fatal("running game: %v", err)
	}
}
