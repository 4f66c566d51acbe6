package render

import (
	"math"

	"github.com/vovakirdan/guacamole-runner/internal/core"
)

// Sprite describes how a texture looks on a character screen.
type Sprite struct {
	Glyph  rune
	W, H   float64      // Unscaled sprite size in canvas pixels
	Shades []core.Color // Darkest first; picked by the command tint
}

// Shade maps a tint in [0, 1] onto one of the sprite's shades.
func (s Sprite) Shade(tint float64) core.Color {
	if len(s.Shades) == 0 {
		return core.ColorDefault
	}
	i := int(math.Floor(core.ClampF(tint, 0, 1) * float64(len(s.Shades))))
	if i >= len(s.Shades) {
		i = len(s.Shades) - 1
	}
	return s.Shades[i]
}

// Projector maps canvas pixels onto screen cells. Each cell covers
// CellW x CellH canvas pixels. Rotation is ignored.
type Projector struct {
	CellW, CellH float64
	Sprites      map[Texture]Sprite
}

// Draw paints every command of buf onto scr in draw order.
// Commands whose texture has no sprite are skipped.
func (p Projector) Draw(buf *Buffer, scr *core.Screen) {
	for _, cmd := range buf.Commands() {
		p.DrawCommand(cmd, scr)
	}
}

// DrawCommand paints a single command. Every cell whose centre lies inside
// the sprite footprint is filled; sprites smaller than a cell still mark
// the cell under their centre.
func (p Projector) DrawCommand(cmd DrawCommand, scr *core.Screen) {
	sprite, ok := p.Sprites[cmd.Texture]
	if !ok || p.CellW <= 0 || p.CellH <= 0 {
		return
	}

	w := sprite.W * cmd.Scale.X
	h := sprite.H * cmd.Scale.Y
	left := cmd.Pos.X - cmd.Origin.X*cmd.Scale.X
	top := cmd.Pos.Y - cmd.Pos.Z - cmd.Origin.Y*cmd.Scale.Y
	color := sprite.Shade(cmd.Tint)

	c0 := int(math.Ceil(left/p.CellW - 0.5))
	c1 := int(math.Ceil((left+w)/p.CellW - 0.5))
	r0 := int(math.Ceil(top/p.CellH - 0.5))
	r1 := int(math.Ceil((top+h)/p.CellH - 0.5))

	if c0 >= c1 || r0 >= r1 {
		cx := int(math.Floor((left + w/2) / p.CellW))
		cy := int(math.Floor((top + h/2) / p.CellH))
		scr.SetColored(cx, cy, sprite.Glyph, color)
		return
	}

	for y := r0; y < r1; y++ {
		for x := c0; x < c1; x++ {
			scr.SetColored(x, y, sprite.Glyph, color)
		}
	}
}

// CellOf returns the screen cell containing a canvas pixel.
func (p Projector) CellOf(pos core.Vec2) (int, int) {
	return int(math.Floor(pos.X / p.CellW)), int(math.Floor(pos.Y / p.CellH))
}

// PixelOf returns the canvas pixel at the centre of a screen cell.
func (p Projector) PixelOf(col, row int) core.Vec2 {
	return core.V2((float64(col)+0.5)*p.CellW, (float64(row)+0.5)*p.CellH)
}
