// penguin is an endless side-scroller: keep the penguin flying between
// obstacle pairs for as long as you can.
//
// Usage:
//
//	penguin play             - Play directly
//	penguin menu             - Game picker with theme choice and session scores
//	penguin serve            - Start SSH server for remote play
//	penguin config           - Print the effective configuration
//	penguin list             - List available games
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--debug             - Log at debug level
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/penguin-flap/internal/core"
	"github.com/vovakirdan/penguin-flap/internal/games/penguin"
)

var (
	flagFPS     int
	flagSeed    int64
	flagDebug   bool
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "penguin",
	Short: "Penguin Flap - an endless flapper for your terminal",
	Long: `Penguin Flap is an endless side-scroller played in the terminal.
Flap through the gaps between obstacle pairs; every pair passed scores a
point and the gaps slowly narrow.

Available commands:
  play     - Play right away
  menu     - Pick a theme and browse session scores
  serve    - Start SSH server for remote play
  config   - Print the effective configuration
  list     - Show all available games

Examples:
  penguin play
  penguin play --difficulty hard --background night
  penguin menu
  penguin serve --ssh :2222
  penguin config --difficulty easy`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger. Interactive commands pass
// io.Discard as fallback since the alternate screen owns the terminal.
// The returned close func releases the log file, if any.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	w, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closeFn = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "penguin",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	penguin.SetLogger(logger)
	return logger, closeFn, nil
}

// runtimeConfig sizes the runtime to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// fatal prints an error and exits.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
