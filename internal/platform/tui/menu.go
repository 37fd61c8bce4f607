package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/penguin-flap/internal/core"
	"github.com/vovakirdan/penguin-flap/internal/registry"
)

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
)

// MenuItem represents a selectable game in the menu.
type MenuItem struct {
	GameID string
	Title  string
	Themes []registry.ThemeInfo
}

// MenuModel is the Bubble Tea model for the game picker.
// Left and right cycle the theme of the highlighted game.
type MenuModel struct {
	items     []MenuItem
	themeIdx  map[string]int
	cursor    int
	width     int
	height    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper

	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// NewMenuModel lists every registered game.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))

	themeIdx := make(map[string]int)

	for _, g := range games {
		item := MenuItem{GameID: g.ID, Title: g.Title}
		if game, err := registry.Create(g.ID); err == nil {
			if themer, ok := game.(registry.Themer); ok {
				item.Themes = themer.Themes()
				current := themer.CurrentTheme()
				for i, t := range item.Themes {
					if t.ID == current {
						themeIdx[g.ID] = i
					}
				}
			}
		}
		items = append(items, item)
	}

	return MenuModel{
		items:     items,
		themeIdx:  themeIdx,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		m.cycleTheme(-1)

	case MenuActionRight:
		m.cycleTheme(1)

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
	}

	return m, nil
}

// cycleTheme moves the theme choice of the highlighted game.
func (m *MenuModel) cycleTheme(delta int) {
	if len(m.items) == 0 {
		return
	}
	item := m.items[m.cursor]
	n := len(item.Themes)
	if n == 0 {
		return
	}
	m.themeIdx[item.GameID] = ((m.themeIdx[item.GameID]+delta)%n + n) % n
}

// clearChoice forgets the last selection so the menu can be shown again.
// The cursor and theme choices are kept.
func (m MenuModel) clearChoice() MenuModel {
	m.selected = nil
	m.openScoreboard = false
	return m
}

// ThemeFor returns the chosen theme ID for a game, or "" if it has none.
func (m MenuModel) ThemeFor(gameID string) string {
	for _, item := range m.items {
		if item.GameID == gameID && len(item.Themes) > 0 {
			return item.Themes[m.themeIdx[gameID]].ID
		}
	}
	return ""
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("P E N G U I N   F L A P"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a game", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Title
		if len(item.Themes) > 0 {
			theme := item.Themes[m.themeIdx[item.GameID]]
			line += fmt.Sprintf("   < %s >", theme.Title)
		}
		if i == m.cursor {
			b.WriteString(centerText(menuCursorStyle.Render("> "+line[2:]), m.width))
		} else {
			b.WriteString(centerText(line, m.width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Up/Down: Navigate  |  Left/Right: Theme  |  Enter: Play  |  Tab: Scores  |  Q: Quit", m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width. Styled text is measured
// without its escape sequences.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
