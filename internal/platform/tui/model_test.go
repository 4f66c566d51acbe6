package tui

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/guacamole-runner/internal/core"
	"github.com/vovakirdan/guacamole-runner/internal/registry"
	"github.com/vovakirdan/guacamole-runner/internal/storage"
)

const fakeID = "tui_fake"

// fakeGame records every input frame and ends after overAt steps.
type fakeGame struct {
	resets int
	steps  []core.InputFrame
	overAt int
	state  core.GameState
}

func (g *fakeGame) ID() string    { return fakeID }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.steps = nil
	g.state = core.GameState{Seed: 9}
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.steps = append(g.steps, in)
	g.state.Ticks++
	if g.overAt > 0 && g.state.Ticks >= g.overAt {
		g.state.GameOver = true
		g.state.Score = 42
		g.state.Distance = 3
	}
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "fake") }
func (g *fakeGame) State() core.GameState   { return g.state }

func (g *fakeGame) PointerAt(col, row, _, _ int) core.Vec2 {
	return core.V2(float64(col*10), float64(row*10))
}

func (g *fakeGame) last() core.InputFrame { return g.steps[len(g.steps)-1] }

func init() {
	registry.Register(fakeID, func() registry.Game { return &fakeGame{} })
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}
}

func newTestModel(g *fakeGame, store *storage.Store) Model {
	m := NewModel(g, store, testConfig(), nil)
	m.Init()
	return m
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func ticks(n int) []tea.Msg {
	msgs := make([]tea.Msg, n)
	for i := range msgs {
		msgs[i] = TickMsg{}
	}
	return msgs
}

func TestModelHoldsSteering(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, nil)

	m = send(m, runeKey('w'))
	m = send(m, ticks(holdTicks+1)...)

	for i, in := range g.steps {
		if got, want := in.Has(core.ActionUp), i < holdTicks; got != want {
			t.Errorf("step %d: up = %v, expected %v", i, got, want)
		}
	}
}

func TestModelOppositeKeyWins(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, nil)

	m = send(m, runeKey('w'), runeKey('s'), TickMsg{})
	in := g.last()
	if in.Has(core.ActionUp) || !in.Has(core.ActionDown) {
		t.Errorf("expected only down held, got %v", in.Actions)
	}
}

func TestModelPauseIsOneShot(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, nil)

	m = send(m, runeKey('p'), TickMsg{})
	if !g.last().Has(core.ActionPause) {
		t.Error("pause was not delivered")
	}
	m = send(m, TickMsg{})
	if g.last().Has(core.ActionPause) {
		t.Error("pause delivered twice")
	}
}

func TestModelRestartOnlyAfterGameOver(t *testing.T) {
	g := &fakeGame{overAt: 2}
	m := newTestModel(g, nil)

	m = send(m, runeKey('r'), TickMsg{})
	if g.resets != 1 {
		t.Fatalf("restart while flying reset the game (%d resets)", g.resets)
	}
	if g.last().Has(core.ActionRestart) {
		t.Error("restart leaked into a running game")
	}

	m = send(m, TickMsg{})
	if !m.gameState.GameOver {
		t.Fatal("expected game over")
	}

	m = send(m, runeKey('r'), TickMsg{})
	if g.resets != 2 {
		t.Errorf("resets = %d, expected 2", g.resets)
	}
	if m.gameState.GameOver {
		t.Error("state not refreshed after restart")
	}
}

func TestModelSavesRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &fakeGame{overAt: 2}
	m := newTestModel(g, store)
	send(m, ticks(5)...)

	runs, err := store.RecentRuns(fakeID, 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, expected 1", len(runs))
	}
	r := runs[0]
	if r.Points != 42 || r.Distance != 3 || r.Ticks != 2 || r.Seed != 9 {
		t.Errorf("saved run = %+v", r)
	}
}

func TestModelMousePointer(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, nil)

	m = send(m, tea.MouseMsg{X: 3, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, TickMsg{})
	p := g.last().Pointer
	if p == nil {
		t.Fatal("no pointer delivered")
	}
	if p.X != 30 || p.Y != 20 || !p.Right || p.Left {
		t.Errorf("pointer = %+v", *p)
	}

	m = send(m, TickMsg{})
	if g.last().Pointer != nil {
		t.Error("pointer should last one tick")
	}

	send(m, tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, TickMsg{})
	if g.last().Pointer != nil {
		t.Error("release should not produce a pointer")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(&fakeGame{}, nil)
	m = send(m, runeKey('q'))
	if !m.IsQuitting() {
		t.Error("q should quit a standalone game")
	}

	embedded := newTestModel(&fakeGame{}, nil)
	embedded.embedded = true
	embedded = send(embedded, runeKey('q'))
	if !embedded.BackToMenu() || embedded.IsQuitting() {
		t.Error("q should return an embedded game to the menu")
	}
	embedded = send(embedded, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !embedded.IsQuitting() {
		t.Error("ctrl+c should always quit")
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(&fakeGame{}, nil)
	view := m.View()

	if !strings.Contains(view, "fake") {
		t.Error("view is missing the game frame")
	}
	if !strings.Contains(view, "climb") {
		t.Error("view is missing the key help")
	}
	if m.screen.Height() != 9 {
		t.Errorf("play area height = %d, expected 9", m.screen.Height())
	}
}

func TestSessionModelFlow(t *testing.T) {
	s := NewSessionModel(nil, testConfig(), log.New(io.Discard))

	step := func(msg tea.Msg) {
		t.Helper()
		next, _ := s.Update(msg)
		s = next.(SessionModel)
	}

	step(tea.KeyMsg{Type: tea.KeyTab})
	if s.board == nil {
		t.Fatal("tab should open the scoreboard")
	}
	step(tea.KeyMsg{Type: tea.KeyEsc})
	if s.board != nil {
		t.Fatal("esc should close the scoreboard")
	}

	for s.menu.items[s.menu.cursor].GameID != fakeID {
		step(tea.KeyMsg{Type: tea.KeyDown})
	}
	step(tea.KeyMsg{Type: tea.KeyEnter})
	if s.game == nil {
		t.Fatal("enter should start a flight")
	}
	if s.game.game.ID() != fakeID {
		t.Errorf("started %q", s.game.game.ID())
	}

	step(runeKey('q'))
	if s.game != nil || s.quitting {
		t.Fatal("q should return to the menu")
	}

	step(runeKey('q'))
	if !s.quitting {
		t.Error("q in the menu should end the session")
	}
}
