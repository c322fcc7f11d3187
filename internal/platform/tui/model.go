package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkravets/chomp-arcade/internal/core"
	"github.com/mkravets/chomp-arcade/internal/games/chomp"
	"github.com/mkravets/chomp-arcade/internal/registry"
	"github.com/mkravets/chomp-arcade/internal/storage"
)

// SoundSink consumes the sound events a game emits during Step.
// A nil sink is valid and means audio is disabled (e.g. SSH sessions).
type SoundSink interface {
	Handle(events []core.SoundEvent)
}

// Model is the Bubble Tea model for running arcade games.
//
// Frame messages arrive at roughly the configured tick rate, but terminal
// timers jitter; the scheduler converts the measured wall-clock deltas into
// an exact number of logic ticks so the simulation never drifts.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	sounds     SoundSink
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	sched      chomp.Scheduler
	lastFrame  time.Time
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, sounds SoundSink, cfg core.RuntimeConfig) Model {
	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		sounds:     sounds,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the model and starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return frameCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		if m.sounds != nil {
			m.sounds.Handle([]core.SoundEvent{core.ClearSounds()})
		}
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events. The playfield has a fixed
// logical size, so only the render buffer changes; the simulation keeps
// running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleFrame runs as many logic ticks as the elapsed wall-clock time owes.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) {
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		if m.sounds != nil {
			m.sounds.Handle([]core.SoundEvent{core.ClearSounds()})
		}
		m.lastFrame = now
		return m, frameCmd(m.config.TickRate)
	}

	elapsed := chomp.TickDuration
	if !m.lastFrame.IsZero() {
		elapsed = now.Sub(m.lastFrame)
	}
	m.lastFrame = now

	var events []core.SoundEvent
	ticks := m.sched.Advance(elapsed)
	for i := 0; i < ticks; i++ {
		result := m.game.Step(m.inputFrame)
		m.gameState = result.State
		events = append(events, result.Sounds...)
		m.inputFrame.Clear()
	}
	if m.sounds != nil && len(events) > 0 {
		m.sounds.Handle(events)
	}

	// Save score once per game over; the latch rearms when the game
	// returns to its attract screen.
	if m.gameState.GameOver && !m.scoreSaved && m.gameState.Score > 0 {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(m.game.ID(), m.gameState.Score, m.gameState.Round)
		}
		m.scoreSaved = true
	}
	if !m.gameState.GameOver {
		m.scoreSaved = false
	}

	return m, frameCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	// Create screenshots directory
	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	// Save screenshot
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	// Convert screen to string
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, sounds SoundSink, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, sounds, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
