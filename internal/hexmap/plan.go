package hexmap

import (
	"github.com/vovakirdan/guacamole-runner/internal/core"
	"github.com/vovakirdan/guacamole-runner/internal/render"
)

// Visible window around the canvas origin, in tiles.
const (
	viewCols = 40
	viewRows = 20
)

// PlanOptions toggles optional overlays.
type PlanOptions struct {
	Markers bool // Dot at every hex centre
}

// Plan emits the draw commands for the visible part of the map.
//
// Layers are emitted bottom-up. Within a layer, walls come first, then
// brick walls, plain tops, brick tops, tilled tops and grown tops, all in
// one unsorted pool so later surfaces paint over earlier ones.
func (m *Map) Plan(buf *render.Buffer, opts PlanOptions) {
	if m.Width == 0 || m.Height == 0 {
		return
	}
	buf.Begin(false)
	defer buf.End()

	x0, x1, y0, y1 := m.visibleRange()

	var walls, bricks, tops, brickTops, tilled, grown []render.DrawCommand

	for height := uint8(0); height <= m.Geom.MaxBrickHeight; height++ {
		walls, bricks = walls[:0], bricks[:0]
		tops, brickTops = tops[:0], brickTops[:0]
		tilled, grown = tilled[:0], grown[:0]

		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				t := m.Tiles[m.Index(x, y)]
				if t.WallHeight < height {
					continue
				}
				pos := m.tileOrigin(x, y)

				if height <= t.GroundHeight && height != 0 {
					walls = append(walls, m.wallCommand(pos, height))
				} else if height > t.GroundHeight && height <= t.WallHeight {
					bricks = append(bricks, m.brickCommand(pos, height))
				}

				switch {
				case t.Grown && height == t.GroundHeight:
					grown = append(grown, m.topCommand(render.TextureFloorGrown, pos, t.GroundHeight))
				case t.Tilled && height == t.GroundHeight:
					tilled = append(tilled, m.topCommand(render.TextureFloorTilled, pos, t.GroundHeight))
				case height == t.GroundHeight && height == t.WallHeight:
					tops = append(tops, m.topCommand(render.TextureFloor, pos, t.GroundHeight))
				case height == t.WallHeight && height != t.GroundHeight:
					brickTops = append(brickTops, m.brickTopCommand(pos, t.WallHeight))
				}
			}
		}

		for _, group := range [][]render.DrawCommand{walls, bricks, tops, brickTops, tilled, grown} {
			for _, cmd := range group {
				buf.Push(cmd)
			}
		}
	}

	if opts.Markers {
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				t := m.Tiles[m.Index(x, y)]
				cx, cy := m.AxialToPixel(x, y)
				buf.Push(render.NewCommand(render.TextureMarker, core.Vec3{
					X: cx - 2,
					Y: cy - 2,
					Z: float64(t.WallHeight) * m.Geom.FloorDepthStep,
				}, render.LayerFloor))
			}
		}
	}
}

// visibleRange returns the inclusive tile window around the hex under the
// canvas origin, clamped to the map.
func (m *Map) visibleRange() (x0, x1, y0, y1 int) {
	q, r := m.PixelToHexRaw(core.Vec2{}, 0)
	clampTo := func(v float64, n int) int {
		return int(core.ClampF(v, 0, float64(n-1)))
	}
	return clampTo(q-viewCols, m.Width), clampTo(q+viewCols, m.Width),
		clampTo(r-viewRows, m.Height), clampTo(r+viewRows, m.Height)
}

// tileOrigin is the top-left draw position of tile (x, y).
func (m *Map) tileOrigin(x, y int) core.Vec2 {
	w := m.Geom.Layout.FloorWidth
	return core.V2(
		w*float64(x)+w/2*float64(y)+m.Position.X,
		float64(y)*m.Geom.Layout.FloorVertStep+m.Position.Y,
	)
}

func (m *Map) topCommand(tex render.Texture, pos core.Vec2, height uint8) render.DrawCommand {
	cmd := render.NewCommand(tex, core.Vec3{X: pos.X, Y: pos.Y, Z: float64(height) * m.Geom.FloorDepthStep}, render.LayerFloor)
	cmd.Tint = FloorTint(height)
	return cmd
}

func (m *Map) brickTopCommand(pos core.Vec2, height uint8) render.DrawCommand {
	cmd := render.NewCommand(render.TextureFloorBrick, core.Vec3{X: pos.X, Y: pos.Y, Z: float64(height) * m.Geom.FloorDepthStep}, render.LayerFloor)
	cmd.Tint = BrickTopTint(height)
	return cmd
}

func (m *Map) wallCommand(pos core.Vec2, height uint8) render.DrawCommand {
	z := float64(height)*m.Geom.FloorDepthStep - m.Geom.WallVertOffset
	cmd := render.NewCommand(render.TextureWall, core.Vec3{X: pos.X, Y: pos.Y, Z: z}, render.LayerWall)
	cmd.Tint = WallTint(height)
	return cmd
}

func (m *Map) brickCommand(pos core.Vec2, height uint8) render.DrawCommand {
	z := float64(height)*m.Geom.FloorDepthStep - m.Geom.WallVertStep
	cmd := render.NewCommand(render.TextureWallBrick, core.Vec3{X: pos.X, Y: pos.Y, Z: z}, render.LayerWall)
	cmd.Tint = BrickWallTint(height)
	return cmd
}

// FloorTint darkens low ground.
func FloorTint(height uint8) float64 {
	switch height {
	case 0:
		return 0.55
	case 1:
		return 0.8
	default:
		return 0.95
	}
}

// BrickTopTint shades the top of a brick stack.
func BrickTopTint(height uint8) float64 {
	switch height {
	case 1:
		return 0.65
	case 2:
		return 0.8
	case 3:
		return 0.9
	default:
		return 1
	}
}

// WallTint alternates between two shades so stacked dirt layers read
// as separate bands.
func WallTint(height uint8) float64 {
	if height%2 == 1 {
		return 0.5
	}
	return 0.7
}

// BrickWallTint shades brick walls by layer.
func BrickWallTint(height uint8) float64 {
	switch height {
	case 1:
		return 0.3
	case 2:
		return 0.55
	case 3:
		return 0.7
	default:
		return 0.8
	}
}

