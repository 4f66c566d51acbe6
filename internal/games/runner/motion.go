package runner

import (
	"github.com/vovakirdan/guacamole-runner/internal/config"
	"github.com/vovakirdan/guacamole-runner/internal/core"
	"github.com/vovakirdan/guacamole-runner/internal/ecs"
)

// PlayerStep returns the player's displacement for one tick.
//
// Climbing and diving move diagonally and take precedence over the
// horizontal keys. Left is a hard air brake, right a slow drift.
func PlayerStep(in core.InputFrame, cfg config.PlayerConfig) core.Vec2 {
	switch {
	case in.Has(core.ActionUp):
		return core.V2(-0.5, -2).Scale(cfg.Speed).Floor()
	case in.Has(core.ActionDown):
		return core.V2(0.5, 2).Scale(cfg.Speed).Floor()
	case in.Has(core.ActionLeft):
		return core.V2(-cfg.BrakeSpeed, 0)
	case in.Has(core.ActionRight):
		return core.V2(cfg.DriftSpeed, 0)
	}
	return core.Vec2{}
}

// ClampPlayer keeps the player sprite inside the screen.
func ClampPlayer(pos core.Vec2, cfg config.PlayerConfig, screen config.ScreenConfig) core.Vec2 {
	return core.V2(
		core.ClampF(pos.X, cfg.HalfWidth, screen.Width-cfg.HalfWidth),
		core.ClampF(pos.Y, cfg.HalfHeight, screen.Height-cfg.HalfHeight),
	)
}

// PlaneVelocity is the constant per-tick velocity of a plane.
func PlaneVelocity(dir ecs.Direction, planes config.PlanesConfig, scrollRate float64) core.Vec2 {
	vx := -planes.ScrollMultiple * scrollRate
	if dir == ecs.DirUp {
		return core.V2(vx, -planes.VerticalSpeed)
	}
	return core.V2(vx, planes.VerticalSpeed)
}

func (s *Session) movePlayer(in core.InputFrame) {
	p, ok := s.World.Player()
	if !ok {
		return
	}
	next := p.Transform.Pos.Add(PlayerStep(in, s.cfg.Player))
	p.Transform.Pos = ClampPlayer(next, s.cfg.Player, s.cfg.Screen)
}

func (s *Session) movePlanes() {
	s.World.EachPlane(func(_ ecs.Entity, t *ecs.Transform, _ *core.Collider, dir ecs.Direction) {
		t.Pos = t.Pos.Add(PlaneVelocity(dir, s.cfg.Planes, s.cfg.Map.ScrollRate))
	})
}
