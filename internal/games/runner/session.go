// Package runner implements Guacamole Runner: a glider drifts over a
// scrolling hex terrain, grows crops on tilled ground it passes over and
// bumps into planes to stay airborne.
package runner

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/guacamole-runner/internal/config"
	"github.com/vovakirdan/guacamole-runner/internal/core"
	"github.com/vovakirdan/guacamole-runner/internal/ecs"
	"github.com/vovakirdan/guacamole-runner/internal/hexmap"
)

// Session is one flight from take-off to landing. It owns the terrain,
// the entity world and every timer, and advances them one tick at a time.
type Session struct {
	cfg        config.RunnerConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	log        *log.Logger

	Map      *hexmap.Map
	World    *ecs.World
	Spawner  SpawnTimer
	Scroller Scroller

	Points int
	Ticks  int
	Phase  Phase

	touches int // Plane touches since take-off
	edits   int
}

// NewSession generates the terrain, places the glider and primes the
// timers. spawnSeed drives plane placement only; the terrain uses
// cfg.Map.Seed.
func NewSession(cfg config.RunnerConfig, spawnSeed int64, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		rng:        rand.New(rand.NewSource(spawnSeed)),
		log:        logger,
		World:      ecs.NewWorld(),
		Spawner:    NewCountdown(cfg.Planes.SpawnInterval),
		Scroller:   NewScroller(cfg.Map.ScrollRate, cfg.Map.ScrollInterval),
	}

	s.Map = hexmap.Generate(hexmap.GenConfig{
		Width:        cfg.Map.Width,
		Height:       cfg.Map.Height,
		Seed:         cfg.Map.Seed,
		CanvasHeight: cfg.Map.CanvasHeight,
		Geom:         Geometry(cfg.Tiles),
	})

	s.World.SpawnPlayer(
		core.V2(cfg.Player.StartX, cfg.Player.StartY),
		cfg.Player.Collider,
		cfg.Player.StartHeight,
	)

	s.log.Debug("session started",
		"map_seed", cfg.Map.Seed,
		"spawn_seed", spawnSeed,
		"tilled", s.Map.TilledCount(),
	)
	return s
}

// Geometry converts tile settings into terrain geometry.
func Geometry(t config.TilesConfig) hexmap.Geometry {
	g := hexmap.DefaultGeometry()
	g.Layout.FloorWidth = t.FloorWidth
	g.Layout.FloorVertStep = t.FloorVertStep
	g.Layout.HalfTile = t.HalfTile
	g.FloorDepthStep = t.FloorDepthStep
	g.WallVertOffset = t.WallVertOffset
	g.WallVertStep = t.WallVertStep
	g.MaxFloorHeight = t.MaxFloorHeight
	g.MaxBrickHeight = t.MaxBrickHeight
	return g
}

// Config returns the configuration the session runs with.
func (s *Session) Config() config.RunnerConfig {
	return s.cfg
}

// Tick advances the session by one simulation step. A landed session
// ignores further ticks.
func (s *Session) Tick(in core.InputFrame) {
	if s.Phase == PhaseDead {
		return
	}

	s.Ticks++
	progress := s.progress()

	s.Scroller.Step(s.Map)
	s.movePlayer(in)

	s.Spawner.Max = s.difficulty.SpawnInterval(s.cfg.Planes.SpawnInterval, progress)
	if s.Spawner.Step() {
		s.spawnPlane()
	}
	s.movePlanes()
	s.despawnPlanes()

	s.grow()
	s.updateAltitude(s.difficulty.FallSpeed(s.cfg.Player.FallSpeed, progress))

	if s.cfg.Editor.Enabled && in.Pointer != nil {
		s.edit(*in.Pointer)
	}

	if s.Phase == PhaseDead {
		s.log.Info("landed",
			"points", s.Points,
			"distance", s.Distance(),
			"ticks", s.Ticks,
			"plane_touches", s.touches,
		)
	}
}

// Distance is the number of whole tiles scrolled past.
func (s *Session) Distance() int {
	return int(s.Map.Distance())
}

// Altitude is the glider's current height, or zero once it is gone.
func (s *Session) Altitude() float64 {
	p, ok := s.World.Player()
	if !ok {
		return 0
	}
	return p.Height.Value
}

// PlaneTouches counts how often the glider was lifted by a plane.
func (s *Session) PlaneTouches() int {
	return s.touches
}

// Edits counts tiles changed with the pointer.
func (s *Session) Edits() int {
	return s.edits
}

func (s *Session) progress() config.Progress {
	return config.Progress{Score: s.Points, Ticks: s.Ticks, Distance: s.Distance()}
}
