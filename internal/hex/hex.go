// Package hex provides coordinate math for the pointy-top hex grid the
// terrain is drawn on: pixel <-> axial conversion, cube rounding and
// odd-r offset conversion.
//
// Map tiles are addressed directly by axial (q, r): column x is q and
// row y is r, so row r is shifted right by half a tile per row.
package hex

import (
	"math"

	"github.com/vovakirdan/guacamole-runner/internal/core"
)

// Sqrt3 is used throughout the pointy-top basis.
var Sqrt3 = math.Sqrt(3.0)

// Layout describes the pixel geometry of a single tile.
type Layout struct {
	FloorWidth    float64 // Horizontal distance between tile centres on a row
	FloorVertStep float64 // Vertical distance between rows
	HalfTile      float64 // Offset from a tile's draw origin to its centre
}

// SizeX is the horizontal hex radius derived from the floor width.
func (l Layout) SizeX() float64 {
	return l.FloorWidth / Sqrt3
}

// SizeY is the vertical hex radius. Rows are FloorVertStep apart and a
// pointy-top row advances 1.5 radii, so size = FloorVertStep / 1.5.
func (l Layout) SizeY() float64 {
	return l.FloorVertStep / 1.5
}

// PixelToHexRaw converts a pixel into fractional axial coordinates.
// mapPos is the current scroll position of the map and heightOffset
// shifts the probe down to look at tiles raised by that many pixels.
func PixelToHexRaw(l Layout, pixel, mapPos core.Vec2, heightOffset float64) (q, r float64) {
	x := pixel.X - l.HalfTile - mapPos.X
	y := pixel.Y - l.HalfTile - mapPos.Y + heightOffset

	x /= l.SizeX()
	y /= l.SizeY()

	q = Sqrt3/3*x - 1.0/3*y
	r = 2.0 / 3 * y
	return q, r
}

// AxialToPixel returns the centre pixel of tile (q, r) for a map at mapPos.
func AxialToPixel(l Layout, q, r int, mapPos core.Vec2) (x, y float64) {
	fq, fr := float64(q), float64(r)
	x = l.SizeX() * (Sqrt3*fq + Sqrt3/2*fr)
	y = l.SizeY() * (3.0 / 2.0 * fr)
	return x + l.HalfTile + mapPos.X, y + l.HalfTile + mapPos.Y
}

// CubeRound rounds fractional cube coordinates to the nearest hex.
// The component with the largest rounding error is recomputed from the
// other two so the result keeps q+r+s == 0. Ties resolve q, then r, then s.
func CubeRound(q, r, s float64) (int, int, int) {
	qf := math.Round(q)
	rf := math.Round(r)
	sf := math.Round(s)

	qDiff := math.Abs(qf - q)
	rDiff := math.Abs(rf - r)
	sDiff := math.Abs(sf - s)

	if qDiff > rDiff && qDiff > sDiff {
		qf = -rf - sf
	} else if rDiff > sDiff {
		rf = -qf - sf
	} else {
		sf = -qf - rf
	}
	return int(qf), int(rf), int(sf)
}

// AxialRound snaps fractional axial coordinates to a hex.
func AxialRound(q, r float64) (int, int) {
	qi, ri, _ := CubeRound(q, r, -q-r)
	return qi, ri
}

// CubeToOffset converts cube (q, r) to odd-r offset (col, row).
func CubeToOffset(q, r int) (col, row int) {
	col = q + (r-(r&1))/2
	return col, r
}

// OffsetToCube converts odd-r offset (col, row) to cube (q, r, s).
func OffsetToCube(col, row int) (q, r, s int) {
	q = col - (row-(row&1))/2
	r = row
	return q, r, -q - r
}

// Axial is an axial hex offset or coordinate.
type Axial struct {
	Q, R int
}

// Neighborhood is a tile plus its six neighbours, centre first.
var Neighborhood = [7]Axial{
	{Q: 0, R: 0},
	{Q: 1, R: -1},
	{Q: 1, R: 0},
	{Q: 0, R: 1},
	{Q: -1, R: 1},
	{Q: -1, R: 0},
	{Q: 0, R: -1},
}
