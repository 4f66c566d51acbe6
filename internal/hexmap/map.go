// Package hexmap models the hexagonal terrain: tile generation, lookups,
// the tilled/grown growth flags, isometric picking and the tile editor.
//
// Tiles are stored row-major and addressed by axial coordinates, so tile
// (x, y) is hex (q=x, r=y).
package hexmap

import (
	"fmt"

	"github.com/vovakirdan/guacamole-runner/internal/core"
	"github.com/vovakirdan/guacamole-runner/internal/hex"
)

// Tile is a single hex column of terrain.
//
// GroundHeight is the natural surface; WallHeight is the top of any brick
// stacked on it by the editor. Grown implies Tilled and never reverts.
type Tile struct {
	GroundHeight uint8
	WallHeight   uint8
	Tilled       bool
	Grown        bool
}

// NewTile creates an untilled tile with ground and wall at height.
func NewTile(height uint8) Tile {
	return Tile{GroundHeight: height, WallHeight: height}
}

// Geometry holds the pixel constants of the terrain.
type Geometry struct {
	Layout         hex.Layout
	FloorDepthStep float64 // Pixels per height level
	WallVertOffset float64
	WallVertStep   float64
	MaxFloorHeight uint8
	MaxBrickHeight uint8
}

// DefaultGeometry returns the stock tile geometry.
func DefaultGeometry() Geometry {
	return Geometry{
		Layout: hex.Layout{
			FloorWidth:    36,
			FloorVertStep: 28,
			HalfTile:      18,
		},
		FloorDepthStep: 12,
		WallVertOffset: 12,
		WallVertStep:   12,
		MaxFloorHeight: 2,
		MaxBrickHeight: 4,
	}
}

// Map is the terrain grid plus its scroll position.
type Map struct {
	Tiles    []Tile
	Width    int
	Height   int
	Position core.Vec2 // Top-left of tile (0, 0) in canvas pixels
	Tallest  uint8     // Highest WallHeight on the map
	Geom     Geometry
}

// Index returns the offset of tile (x, y) in Tiles.
// Out-of-range coordinates are a programming error and panic.
func (m *Map) Index(x, y int) int {
	if !m.InBounds(x, y) {
		panic(fmt.Sprintf("hexmap: tile (%d, %d) outside %dx%d map", x, y, m.Width, m.Height))
	}
	return y*m.Width + x
}

// InBounds reports whether (x, y) is on the map.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// Tile returns the tile at (x, y), or false when it is off the map.
func (m *Map) Tile(x, y int) (*Tile, bool) {
	if !m.InBounds(x, y) {
		return nil, false
	}
	return &m.Tiles[y*m.Width+x], true
}

// Grow marks a tilled tile as grown. It reports whether the tile changed,
// which happens at most once per tile.
func (m *Map) Grow(x, y int) bool {
	t, ok := m.Tile(x, y)
	if !ok || !t.Tilled || t.Grown {
		return false
	}
	t.Grown = true
	return true
}

// Lower removes one level from the tile: brick first, then ground.
// It reports whether the tile exists.
func (m *Map) Lower(x, y int) bool {
	t, ok := m.Tile(x, y)
	if !ok {
		return false
	}
	switch {
	case t.GroundHeight > t.WallHeight && t.GroundHeight > 0:
		t.GroundHeight--
	case t.WallHeight > t.GroundHeight && t.WallHeight > 0:
		t.WallHeight--
	case t.WallHeight == t.GroundHeight && t.WallHeight > 0:
		t.WallHeight--
		t.GroundHeight--
	}
	m.noteHeight(t.WallHeight)
	return true
}

// Raise stacks one brick on the tile, up to MaxBrickHeight.
// It reports whether the tile exists.
func (m *Map) Raise(x, y int) bool {
	t, ok := m.Tile(x, y)
	if !ok {
		return false
	}
	switch {
	case t.GroundHeight > t.WallHeight:
		t.WallHeight = t.GroundHeight + 1
	case t.WallHeight < m.Geom.MaxBrickHeight:
		t.WallHeight++
	}
	m.noteHeight(t.WallHeight)
	return true
}

// Tallest is an upper bound. Lowering a tile does not shrink it.
func (m *Map) noteHeight(h uint8) {
	if h > m.Tallest {
		m.Tallest = h
	}
}

// PixelToHexRaw converts a canvas pixel to fractional axial coordinates
// for this map's scroll position.
func (m *Map) PixelToHexRaw(pixel core.Vec2, heightOffset float64) (q, r float64) {
	return hex.PixelToHexRaw(m.Geom.Layout, pixel, m.Position, heightOffset)
}

// AxialToPixel returns the canvas centre of tile (q, r).
func (m *Map) AxialToPixel(q, r int) (x, y float64) {
	return hex.AxialToPixel(m.Geom.Layout, q, r, m.Position)
}

// HexAt snaps a canvas pixel to the ground-level hex under it, without
// any height disambiguation. The result may be off the map.
func (m *Map) HexAt(pixel core.Vec2) (x, y int) {
	q, r := m.PixelToHexRaw(pixel, 0)
	return hex.AxialRound(q, r)
}

// PixelToHex picks the visible tile under a canvas pixel.
//
// Raised tiles are drawn higher on screen, so a pixel can fall on several
// stacked candidates. Every depth up to Tallest is probed; a candidate
// counts only if its WallHeight equals the probed depth, and the tallest
// such candidate wins.
func (m *Map) PixelToHex(pixel core.Vec2) (x, y int, ok bool) {
	best := -1
	for depth := 0; depth <= int(m.Tallest); depth++ {
		offset := float64(depth) * m.Geom.FloorDepthStep
		q, r := m.PixelToHexRaw(pixel, offset)
		cx, cy := hex.AxialRound(q, r)

		t, in := m.Tile(cx, cy)
		if !in || int(t.WallHeight) != depth {
			continue
		}
		if depth > best {
			best = depth
			x, y = cx, cy
		}
	}
	return x, y, best >= 0
}

// Distance is how many tile widths the map has scrolled left.
func (m *Map) Distance() float64 {
	return -m.Position.X / m.Geom.Layout.FloorWidth
}

// TilledCount returns the number of tilled tiles.
func (m *Map) TilledCount() int {
	n := 0
	for _, t := range m.Tiles {
		if t.Tilled {
			n++
		}
	}
	return n
}

// GrownCount returns the number of grown tiles.
func (m *Map) GrownCount() int {
	n := 0
	for _, t := range m.Tiles {
		if t.Grown {
			n++
		}
	}
	return n
}
