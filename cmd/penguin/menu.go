package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/penguin-flap/internal/platform/tui"
	"github.com/vovakirdan/penguin-flap/internal/storage"
)

var menuMute bool

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a game picker and session scoreboard",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, left/right to pick a theme and Enter to
play. After a run, Esc returns to the menu. Tab shows the scores of this
session; they are kept in memory and gone when you quit.

Controls:
  Up/Down/j/k     - Navigate menu
  Left/Right/h/l  - Change theme
  Enter/Space     - Play
  Tab             - Session scores
  Q               - Quit

Examples:
  penguin menu
  penguin menu --fps 30 --difficulty easy`,
	Run: runMenu,
}

func init() {
	addGameFlags(menuCmd)
	menuCmd.Flags().BoolVar(&menuMute, "mute", false, "Disable sound effects")
}

func runMenu(_ *cobra.Command, _ []string) {
	if _, err := applyGameFlags(); err != nil {
		fatal("%v", err)
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fatal("%v", err)
	}
	defer closeLog()

	stopAudio := startAudio(logger, menuMute)
	defer stopAudio()

	store, err := storage.Open()
	if err != nil {
		logger.Warn("scoreboard disabled", "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if err := tui.RunSession(store, runtimeConfig(), logger); err != nil {
		fatal("running menu: %v", err)
	}
}
