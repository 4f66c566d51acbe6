package runner

import (
	"github.com/vovakirdan/guacamole-runner/internal/core"
	"github.com/vovakirdan/guacamole-runner/internal/ecs"
)

// spawnPlane adds one plane just off the top or bottom edge, picked by a
// coin flip, at a random x on the right side of the screen.
func (s *Session) spawnPlane() {
	pc := s.cfg.Planes
	x := float64(pc.MinX + s.rng.Intn(pc.XRange))

	dir := ecs.DirDown
	if s.rng.Intn(2) == 1 {
		dir = ecs.DirUp
	}

	var pos core.Vec2
	var col core.Collider
	if dir == ecs.DirDown {
		pos = core.V2(x, -pc.SpawnMargin)
		col = pc.ColliderDown
	} else {
		pos = core.V2(x, s.cfg.Screen.Height+pc.SpawnMargin)
		col = pc.ColliderUp
	}

	s.World.SpawnPlane(pos, col, dir)
	s.log.Debug("plane spawned", "x", pos.X, "dir", dir, "tick", s.Ticks)
}

// despawnPlanes removes planes that left the screen by more than the
// despawn margin.
func (s *Session) despawnPlanes() {
	m := s.cfg.Planes.DespawnMargin
	w, h := s.cfg.Screen.Width, s.cfg.Screen.Height

	n := s.World.RemovePlanes(func(t ecs.Transform) bool {
		return t.Pos.X < -m || t.Pos.X > w+m || t.Pos.Y < -m || t.Pos.Y > h+m
	})
	if n > 0 {
		s.log.Debug("planes despawned", "count", n, "tick", s.Ticks)
	}
}
