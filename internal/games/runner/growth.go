package runner

import (
	"github.com/vovakirdan/guacamole-runner/internal/core"
	"github.com/vovakirdan/guacamole-runner/internal/hex"
	"github.com/vovakirdan/guacamole-runner/internal/hexmap"
)

// GrowAt grows every tilled tile in the neighbourhood of the hex under a
// canvas pixel and returns the points earned. A tile pays out only the
// first time it grows.
func GrowAt(m *hexmap.Map, canvas core.Vec2, award int) int {
	q, r := m.HexAt(canvas)

	points := 0
	for _, n := range hex.Neighborhood {
		if m.Grow(q+n.Q, r+n.R) {
			points += award
		}
	}
	return points
}

func (s *Session) grow() {
	p, ok := s.World.Player()
	if !ok {
		return
	}
	canvas := p.Transform.Pos.Scale(1 / s.cfg.Map.CanvasScale)
	s.Points += GrowAt(s.Map, canvas, s.cfg.Scoring.PointsGrow)
}
