package tui

import (
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

	"github.com/vovakirdan/guacamole-runner/internal/config"
	"github.com/vovakirdan/guacamole-runner/internal/core"
	"github.com/vovakirdan/guacamole-runner/internal/registry"
	"github.com/vovakirdan/guacamole-runner/internal/storage"
)

// Ticks a steering key stays held after its last press.
const holdTicks = 12

// PointerMapper is implemented by games that accept mouse input. It maps
// a screen cell to the game's pointer coordinates.
type PointerMapper interface {
	PointerAt(col, row, screenW, screenH int) core.Vec2
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	log       *log.Logger
	config    core.RuntimeConfig
	keys      *KeyMapper
	help      help.Model
	held      *HeldKeys
	pending   core.InputFrame // One-shot actions for the next tick
	pointer   *core.Pointer
	gameState core.GameState
	quitting  bool
	runSaved  bool // Whether the current run has been stored

	embedded   bool // Quit keys return to the caller instead of ending the program
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
// The bottom row of the terminal is reserved for key help.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, playRows(cfg.ScreenH)),
		store:   store,
		log:     logger,
		config:  cfg,
		keys:    NewKeyMapper(),
		help:    h,
		held:    NewHeldKeys(holdTicks),
		pending: core.NewInputFrame(),
	}
}

func playRows(h int) int {
	if h > 1 {
		return h - 1
	}
	return h
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		if m.embedded && msg.String() != "ctrl+c" {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case IsSteering(action):
		m.held.Press(action)
	case action == core.ActionRestart:
		if m.gameState.GameOver {
			m.pending.Set(core.ActionRestart)
		}
	case action != core.ActionNone:
		m.pending.Set(action)
	}
	return m, nil
}

// handleMouse turns clicks and drags into a pointer sample for the next tick.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	pm, ok := m.game.(PointerMapper)
	if !ok {
		return m, nil
	}
	if msg.Action != tea.MouseActionPress && msg.Action != tea.MouseActionMotion {
		return m, nil
	}

	left := msg.Button == tea.MouseButtonLeft
	right := msg.Button == tea.MouseButtonRight
	if !left && !right {
		return m, nil
	}

	pos := pm.PointerAt(msg.X, msg.Y, m.screen.Width(), m.screen.Height())
	m.pointer = &core.Pointer{X: pos.X, Y: pos.Y, Left: left, Right: right}
	return m, nil
}

// handleResize processes window resize events. The session keeps running;
// only the projection changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playRows(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.pending.Has(core.ActionRestart) && m.gameState.GameOver {
		// Reset seed for new game
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.runSaved = false
		m.pending.Clear()
		m.held.Release()
		m.pointer = nil
		m.log.Info("restart", "game", m.game.ID(), "seed", m.config.Seed)
		return m, tickCmd(m.config.TickRate)
	}

	in := m.pending.Clone()
	m.held.Apply(&in)
	in.Pointer = m.pointer

	result := m.game.Step(in)
	m.gameState = result.State

	if m.gameState.GameOver && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}

	m.pending.Clear()
	m.pointer = nil

	return m, tickCmd(m.config.TickRate)
}

// saveRun stores the finished run. Failures are logged and otherwise ignored.
func (m Model) saveRun() {
	st := m.gameState
	m.log.Info("game over",
		"game", m.game.ID(),
		"points", st.Score,
		"distance", st.Distance,
		"ticks", st.Ticks,
	)
	if m.store == nil {
		return
	}

	id, err := m.store.SaveRun(storage.Run{
		GameID:   m.game.ID(),
		Points:   st.Score,
		Distance: st.Distance,
		Ticks:    st.Ticks,
		Seed:     st.Seed,
	})
	if err != nil {
		m.log.Error("could not save run", "err", err)
		return
	}
	m.log.Debug("run saved", "id", id)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.log.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, config.AppDir, "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys))
}

// IsQuitting returns true if the user ended the program.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if an embedded model was left with a quit key.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
