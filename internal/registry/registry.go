// Package registry provides a global registry for game factories.
// Games register themselves in init() functions so the host and the CLI
// can create them by ID without importing them directly.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/penguin-flap/internal/core"
)

// Game is the host-facing interface of a game.
// Games own their simulation and drawing; the platform owns input mapping,
// frame timing, and terminal output.
type Game interface {
	// ID returns a unique identifier used by CLI commands and the scoreboard.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset builds a fresh game for the given screen, tick rate and seed.
	// In-game restarts go through Step; Reset is for a new host session.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick of host input.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current host-facing summary.
	State() core.GameState
}

// RunSummary describes a finished run.
type RunSummary struct {
	RunID    string
	Score    int
	Pairs    int
	Duration time.Duration
	Reason   string
}

// Reporter is implemented by games that can describe their last finished run.
type Reporter interface {
	// LastRun returns the summary of the run that just ended.
	// ok is false while a run is still going or none has started.
	LastRun() (summary RunSummary, ok bool)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory, usually from the game's init function.
// An empty ID, a nil factory or a duplicate ID is a programming error and
// panics.
func Register(id string, f Factory) {
	if id == "" || f == nil {
		panic("registry: Register needs an ID and a factory")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create builds a fresh game instance. Every call returns a new instance,
// so concurrent hosts never share game state.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// ThemeInfo describes a cosmetic theme.
type ThemeInfo struct {
	ID    string
	Title string
}

// Themer is implemented by games with selectable cosmetic themes.
type Themer interface {
	Themes() []ThemeInfo
	// CurrentTheme returns the ID of the theme in use.
	CurrentTheme() string
	// UseTheme switches the theme of this instance. It returns false for
	// unknown IDs.
	UseTheme(id string) bool
}
