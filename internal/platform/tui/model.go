package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ndemidov/brickwave/internal/core"
	"github.com/ndemidov/brickwave/internal/game"
	"github.com/ndemidov/brickwave/internal/storage"
)

// Model is the Bubble Tea model for a play session.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	store      *storage.Store
	keys       *KeyMapper
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	resetErr   error
	quitting   bool
	scoreSaved bool // Whether the run has been recorded for current game over
}

// NewModel creates a new Bubble Tea model for the given game. The game
// is reset immediately so configuration errors surface before the
// terminal is put into the alternate screen.
func NewModel(g *game.Game, store *storage.Store, cfg core.RuntimeConfig) (Model, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if err := g.Reset(cfg); err != nil {
		return Model{}, err
	}

	return Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		keys:       NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. Resizing mid-run resets
// the game since brick geometry depends on the screen dimensions.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if !m.gameState.GameOver {
		m.resetErr = m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.resetErr != nil {
		return m, tickCmd(m.config.TickRate)
	}

	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.resetErr = m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Record the run on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveRun()
		m.scoreSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveRun records the score and the run telemetry. Best-effort; the
// session continues regardless of storage errors.
func (m *Model) saveRun() {
	if m.store == nil {
		return
	}
	if m.gameState.Score > 0 {
		//nolint:errcheck // Best-effort save
		m.store.SaveScore(m.game.ID(), m.gameState.Score)
	}
	t := m.game.Telemetry()
	//nolint:errcheck // Best-effort save
	m.store.SaveRun(storage.RunRecord{
		GameID:            m.game.ID(),
		Score:             m.gameState.Score,
		LevelReached:      m.game.Level(),
		Won:               m.game.Won(),
		StuckCorrections:  t.StuckCorrections,
		TunnelCorrections: t.TunnelCorrections,
		DroppedContacts:   t.DroppedContacts,
		DurationTicks:     m.game.Duration(),
	})
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.resetErr != nil {
		return fmt.Sprintf("configuration error: %v\n\npress q to quit", m.resetErr)
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a local play session.
func Run(g *game.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model, err := NewModel(g, store, cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
