package runner

import (
	"github.com/vovakirdan/guacamole-runner/internal/core"
	"github.com/vovakirdan/guacamole-runner/internal/hexmap"
)

// EditAt applies one pointer sample to the terrain. The left button digs
// the picked tile down, the right button stacks a brick on it. It returns
// whether a tile was picked.
func EditAt(m *hexmap.Map, p core.Pointer) bool {
	if !p.Left && !p.Right {
		return false
	}
	x, y, ok := m.PixelToHex(core.V2(p.X, p.Y))
	if !ok {
		return false
	}
	if p.Left {
		m.Lower(x, y)
	}
	if p.Right {
		m.Raise(x, y)
	}
	return true
}

func (s *Session) edit(p core.Pointer) {
	if EditAt(s.Map, p) {
		s.edits++
		s.log.Debug("tile edited", "x", p.X, "y", p.Y, "left", p.Left, "right", p.Right)
	}
}
