package runner

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/guacamole-runner/internal/config"
	"github.com/vovakirdan/guacamole-runner/internal/core"
	"github.com/vovakirdan/guacamole-runner/internal/registry"
	"github.com/vovakirdan/guacamole-runner/internal/render"
)

// Registered mode IDs.
const (
	ModeRunner = "runner"
	ModeEditor = "runner_editor"
)

// Game adapts a Session to the platform's game interface.
type Game struct {
	id      string
	editor  bool
	session *Session
	buf     *render.Buffer
	paused  bool
	runtime core.RuntimeConfig
}

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	mapSeed          *int64
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names fall back
// to the config file's settings.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParsePreset(preset)
	if !ok {
		p = ""
	}
	difficultyPreset = p
}

// SetMapSeed overrides the terrain seed of every new session.
func SetMapSeed(seed int64) {
	mapSeed = &seed
}

// SetLogger routes session logs. A nil logger silences them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// New creates the plain runner mode.
func New() *Game {
	return &Game{id: ModeRunner}
}

// NewEditor creates the runner with the mouse tile editor and hex markers.
func NewEditor() *Game {
	return &Game{id: ModeEditor, editor: true}
}

// ID returns the unique identifier for this mode.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this mode.
func (g *Game) Title() string {
	if g.editor {
		return "Guacamole Runner (editor)"
	}
	return "Guacamole Runner"
}

// Reset loads the configuration and starts a new session.
// runtime.Seed drives plane spawns.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false

	cfg, err := config.LoadRunner(configPath)
	if err != nil {
		logger.Warn("using default config", "path", configPath, "err", err)
		cfg = config.DefaultRunnerConfig()
	}
	if difficultyPreset != "" {
		config.ApplyRunnerPreset(&cfg, difficultyPreset)
	}
	if mapSeed != nil {
		cfg.Map.Seed = *mapSeed
	}
	if g.editor {
		cfg.Editor.Enabled = true
		cfg.Editor.Markers = true
	}

	g.session = NewSession(cfg, runtime.Seed, logger.With("mode", g.id))
	if g.buf == nil {
		g.buf = render.NewBuffer()
	}
}

// Session exposes the running session.
func (g *Game) Session() *Session {
	return g.session
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil || g.session.Phase == PhaseDead {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.session.Tick(in)
	return core.StepResult{State: g.State()}
}

// Render draws the terrain, the entities and the HUD.
func (g *Game) Render(dst *core.Screen) {
	if g.session == nil {
		return
	}

	g.buf.Reset()
	g.session.Plan(g.buf)
	g.session.Projector(dst.Width(), dst.Height()).Draw(g.buf, dst)
	g.session.drawHUD(dst)

	switch {
	case g.session.Phase == PhaseDead:
		drawMessageBox(dst, g.session.DeathMessage(), "", "Press SPACE or R to restart")
	case g.paused:
		drawMessageBox(dst, "PAUSED", "", "Press P to resume")
	}
}

// PointerAt maps a screen cell to the canvas pixel at its centre.
func (g *Game) PointerAt(col, row, screenW, screenH int) core.Vec2 {
	if g.session == nil {
		return core.Vec2{}
	}
	return g.session.Projector(screenW, screenH).PixelOf(col, row)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{Paused: g.paused}
	}
	return core.GameState{
		Score:    g.session.Points,
		Distance: g.session.Distance(),
		Ticks:    g.session.Ticks,
		Seed:     g.session.cfg.Map.Seed,
		GameOver: g.session.Phase == PhaseDead,
		Paused:   g.paused,
	}
}

func init() {
	registry.Register(ModeRunner, func() registry.Game { return New() })
	registry.Register(ModeEditor, func() registry.Game { return NewEditor() })
}
