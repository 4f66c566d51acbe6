// Package registry maps game modes to factories. Modes register
// themselves in init(), so the platform can list and start them by ID.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/guacamole-runner/internal/core"
)

// Game is a playable mode. Implementations are pure simulation: the
// platform owns input mapping, timing and terminal output.
type Game interface {
	// ID returns a unique identifier (e.g. "runner"). Scores are stored
	// under it.
	ID() string

	// Title returns a human-readable name.
	Title() string

	// Reset starts a fresh session. It is called before the first Step and
	// again on every restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	// Input arrives as semantic actions plus an optional pointer sample.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State reports score, distance and whether the session ended.
	State() core.GameState
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a fresh game. Factories must be cheap: Register calls one
// to read the title.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu    sync.RWMutex
	modes = make(map[string]entry)
)

// Register adds a mode. It is meant for init functions and panics on a
// duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := modes[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	modes[id] = entry{info: GameInfo{ID: id, Title: f().Title()}, factory: f}
}

// List returns every registered mode sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(modes))
	for _, e := range modes {
		out = append(out, e.info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Info returns the description of a registered mode.
func Info(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := modes[id]
	return e.info, ok
}

// Create builds a new game for id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := modes[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	_, ok := Info(id)
	return ok
}
