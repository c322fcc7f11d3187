package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkravets/chomp-arcade/internal/core"
	"github.com/mkravets/chomp-arcade/internal/registry"
	"github.com/mkravets/chomp-arcade/internal/storage"
)

// menuEntryKind distinguishes the three things a menu row can do.
type menuEntryKind uint8

const (
	menuEntryPlay menuEntryKind = iota
	menuEntryScores
	menuEntryQuit
)

// menuEntry is one selectable row of the main menu.
type menuEntry struct {
	kind   menuEntryKind
	gameID string
	label  string
}

// MenuModel is the Bubble Tea model for the main menu: one play entry per
// registered game (normally just chomp), the scoreboard, and quit.
type MenuModel struct {
	entries        []menuEntry
	cursor         int
	width          int
	height         int
	store          *storage.Store
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	bestScore      int
	quitting       bool
	selected       *menuEntry
	openScoreboard bool
}

// NewMenuModel creates the main menu. The best stored score is looked up
// once here, not per frame.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	var entries []menuEntry
	for _, g := range registry.List() {
		entries = append(entries, menuEntry{
			kind:   menuEntryPlay,
			gameID: g.ID,
			label:  "Play " + g.Title,
		})
	}
	entries = append(entries,
		menuEntry{kind: menuEntryScores, label: "High Scores"},
		menuEntry{kind: menuEntryQuit, label: "Quit"},
	)

	best := 0
	if store != nil && len(entries) > 0 && entries[0].kind == menuEntryPlay {
		if hs, err := store.HighScore(entries[0].gameID); err == nil {
			best = hs
		}
	}

	return MenuModel{
		entries:   entries,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		bestScore: best,
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
		return m, nil
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
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit

	case MenuActionSelect:
		entry := m.entries[m.cursor]
		switch entry.kind {
		case menuEntryPlay:
			m.selected = &entry
		case menuEntryScores:
			m.openScoreboard = true
		case menuEntryQuit:
			m.quitting = true
		}
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("  C H O M P  ", m.width))
	b.WriteString("\n")
	b.WriteString(centerText("a maze-chase arcade game", m.width))
	b.WriteString("\n\n")

	if m.bestScore > 0 {
		b.WriteString(centerText(fmt.Sprintf("best score: %d", m.bestScore), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, entry := range m.entries {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+entry.label, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// SelectedGameID returns the ID of the chosen game, or "" if none was
// selected.
func (m MenuModel) SelectedGameID() string {
	if m.selected == nil {
		return ""
	}
	return m.selected.gameID
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

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
	}

	if m.WantsScoreboard() {
		result.WantsScoreboard = true
		return result, nil
	}

	if m.IsQuitting() {
		result.Quit = true
		return result, nil
	}

	if id := m.SelectedGameID(); id != "" {
		result.GameID = id
	} else {
		result.Quit = true
	}

	return result, nil
}
