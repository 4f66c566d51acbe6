package runner

import (
	"github.com/vovakirdan/guacamole-runner/internal/core"
	"github.com/vovakirdan/guacamole-runner/internal/ecs"
)

// Phase is the altitude state of a session.
type Phase uint8

const (
	PhaseAlive Phase = iota
	PhaseDead
)

func (p Phase) String() string {
	if p == PhaseDead {
		return "dead"
	}
	return "alive"
}

// groundEpsilon absorbs the error of repeatedly subtracting a fall speed
// that has no exact binary representation.
const groundEpsilon = 1e-9

// NextAltitude applies one tick of altitude rules: the glider sinks by
// fall, touching a plane restores start, and reaching zero is fatal.
func NextAltitude(height, fall, start float64, hit bool) (float64, Phase) {
	height -= fall
	if hit {
		height = start
	}
	if height <= groundEpsilon {
		return height, PhaseDead
	}
	return height, PhaseAlive
}

func (s *Session) updateAltitude(fall float64) {
	p, ok := s.World.Player()
	if !ok {
		return
	}

	hit := false
	s.World.EachObstacle(func(_ ecs.Entity, t *ecs.Transform, c *core.Collider) {
		if !hit && p.Collider.Intersects(p.Transform.Pos, *c, t.Pos) {
			hit = true
		}
	})
	if hit {
		s.touches++
	}

	p.Height.Value, s.Phase = NextAltitude(p.Height.Value, fall, s.cfg.Player.StartHeight, hit)
}
