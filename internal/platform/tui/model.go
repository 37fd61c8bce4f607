package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/penguin-flap/internal/core"
	"github.com/vovakirdan/penguin-flap/internal/registry"
	"github.com/vovakirdan/penguin-flap/internal/storage"
)

// helpRows is the number of terminal rows reserved below the playfield.
const helpRows = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// GameModel runs one game: it forwards keys as actions, steps the game on
// every tick and stores each finished run once.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	help       help.Model

	standalone bool
	quitting   bool
	backToMenu bool
	runSaved   bool
	lastSaved  string
}

// GameOption configures a GameModel.
type GameOption func(*GameModel)

// WithLogger sets the logger used for storage warnings.
func WithLogger(l *log.Logger) GameOption {
	return func(m *GameModel) {
		if l != nil {
			m.logger = l
		}
	}
}

// Standalone makes the back key quit the program instead of returning to
// a menu.
func Standalone() GameOption {
	return func(m *GameModel) {
		m.standalone = true
	}
}

// NewGameModel creates a model for the given game. store may be nil.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...GameOption) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		store:      store,
		logger:     log.New(io.Discard),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		help:       h,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// playfieldHeight is the number of rows left to the game.
func playfieldHeight(termH int) int {
	return max(termH-helpRows, 1)
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMapper.Keys().Screenshot) {
		if err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		}
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back leaves only when no run is in flight.
	if m.inputFrame.Has(core.ActionBack) && m.canLeave() {
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
	}
	return m, nil
}

// canLeave reports whether the back key may leave the game.
func (m GameModel) canLeave() bool {
	return m.gameState.GameOver || m.gameState.Paused || !m.gameState.Started
}

// handleResize changes the viewport only. World coordinates do not depend
// on the terminal size, so the run continues.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the game by one tick.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()
	m.gameState = result.State

	if !m.gameState.GameOver {
		m.runSaved = false
	} else if !m.runSaved {
		m.recordRun()
		m.runSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// recordRun stores the run that just ended.
func (m *GameModel) recordRun() {
	if m.store == nil {
		return
	}
	reporter, ok := m.game.(registry.Reporter)
	if !ok {
		return
	}
	summary, ok := reporter.LastRun()
	if !ok {
		return
	}

	_, err := m.store.SaveRun(storage.Run{
		RunID:     summary.RunID,
		GameID:    m.game.ID(),
		Score:     summary.Score,
		Pairs:     summary.Pairs,
		Duration:  summary.Duration,
		EndReason: summary.Reason,
	})
	switch {
	case errors.Is(err, storage.ErrDuplicateRun):
		m.logger.Debug("run already recorded", "run", summary.RunID)
	case err != nil:
		m.logger.Warn("could not record run", "run", summary.RunID, "err", err)
	default:
		m.lastSaved = summary.RunID
		m.logger.Debug("run recorded", "run", summary.RunID, "score", summary.Score)
	}
}

// saveScreenshot writes the current frame as plain text under
// ~/.penguin/screenshots.
func (m *GameModel) saveScreenshot() error {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".penguin", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return fmt.Errorf("cannot write screenshot: %w", err)
	}
	m.logger.Info("screenshot saved", "path", path)
	return nil
}

// View renders the playfield and the help footer.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// State returns the last host-facing game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// LastSaved returns the run ID most recently stored, if any.
func (m GameModel) LastSaved() string {
	return m.lastSaved
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in the terminal until the player quits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewGameModel(game, store, cfg, WithLogger(logger), Standalone())

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
