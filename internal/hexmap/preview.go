package hexmap

import "strings"

// Preview glyphs.
const (
	glyphGrown  = '♣'
	glyphTilled = '░'
	glyphBrick  = '#'
)

// Preview draws the first cols columns of the map as text, one rune per
// tile and one line per row. Grown and tilled tiles show their state,
// bricked tiles a '#', anything else its ground height.
// cols <= 0 means the full width.
func (m *Map) Preview(cols int) string {
	if cols <= 0 || cols > m.Width {
		cols = m.Width
	}

	var b strings.Builder
	for y := 0; y < m.Height; y++ {
		for x := 0; x < cols; x++ {
			t := m.Tiles[m.Index(x, y)]
			switch {
			case t.Grown:
				b.WriteRune(glyphGrown)
			case t.Tilled:
				b.WriteRune(glyphTilled)
			case t.WallHeight > t.GroundHeight:
				b.WriteRune(glyphBrick)
			default:
				b.WriteByte('0' + t.GroundHeight%10)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
