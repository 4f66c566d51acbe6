package runner

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/guacamole-runner/internal/core"
	"github.com/vovakirdan/guacamole-runner/internal/ecs"
	"github.com/vovakirdan/guacamole-runner/internal/hexmap"
	"github.com/vovakirdan/guacamole-runner/internal/render"
)

// Sprite footprints in canvas pixels.
var sprites = map[render.Texture]render.Sprite{
	render.TextureFloor: {
		Glyph: '▒', W: 36, H: 28,
		Shades: []core.Color{core.ColorGrassDark, core.ColorGrass, core.ColorGrassLight},
	},
	render.TextureFloorBrick: {
		Glyph: '▓', W: 36, H: 28,
		Shades: []core.Color{core.ColorStoneDark, core.ColorStone, core.ColorStoneLight},
	},
	render.TextureFloorTilled: {Glyph: '░', W: 36, H: 28, Shades: []core.Color{core.ColorSoil}},
	render.TextureFloorGrown:  {Glyph: '♣', W: 36, H: 28, Shades: []core.Color{core.ColorCrop}},
	render.TextureWall: {
		Glyph: '█', W: 36, H: 40,
		Shades: []core.Color{core.ColorDirtDark, core.ColorDirt},
	},
	render.TextureWallBrick: {
		Glyph: '█', W: 36, H: 40,
		Shades: []core.Color{core.ColorStoneDark, core.ColorStone, core.ColorStoneLight},
	},
	render.TextureMarker: {Glyph: '·', W: 4, H: 4, Shades: []core.Color{core.ColorWhite}},
	render.TexturePlayer: {Glyph: '▲', W: 40, H: 36, Shades: []core.Color{core.ColorBrightYellow}},
	render.TexturePlane:  {Glyph: '═', W: 96, H: 48, Shades: []core.Color{core.ColorBrightWhite}},
}

// Pivot points inside the unscaled sprites.
var (
	playerOrigin = core.V2(20, 18)
	planeOrigin  = core.V2(48, 24)
)

// VisualScale is the sprite scale of the glider at a given altitude. The
// glider shrinks as it sinks, down to half size just before landing.
func VisualScale(height, start, scale float64) float64 {
	if start <= 0 {
		return scale
	}
	return scale * (1 + height/start) / 2
}

// Plan emits the draw commands of a frame: the terrain pool first, then
// one layer-sorted pool with the planes and the glider.
func (s *Session) Plan(buf *render.Buffer) {
	s.Map.Plan(buf, hexmap.PlanOptions{Markers: s.cfg.Editor.Markers})

	inv := 1 / s.cfg.Map.CanvasScale

	buf.Begin(true)
	defer buf.End()

	s.World.EachPlane(func(_ ecs.Entity, t *ecs.Transform, _ *core.Collider, _ ecs.Direction) {
		pos := t.Pos.Scale(inv)
		cmd := render.NewCommand(render.TexturePlane, core.Vec3{X: pos.X, Y: pos.Y}, render.LayerPlane)
		cmd.Origin = planeOrigin
		cmd.Scale = core.V2(inv, inv)
		buf.Push(cmd)
	})

	if p, ok := s.World.Player(); ok {
		pos := p.Transform.Pos.Scale(inv)
		scale := VisualScale(p.Height.Value, s.cfg.Player.StartHeight, s.cfg.Player.Scale) * inv
		cmd := render.NewCommand(render.TexturePlayer, core.Vec3{X: pos.X, Y: pos.Y}, render.LayerPlayer)
		cmd.Origin = playerOrigin
		cmd.Scale = core.V2(scale, scale)
		buf.Push(cmd)
	}
}

// Projector fits the map canvas onto a screen of w x h cells.
func (s *Session) Projector(w, h int) render.Projector {
	if w <= 0 || h <= 0 {
		return render.Projector{Sprites: sprites}
	}
	return render.Projector{
		CellW:   s.cfg.Map.CanvasWidth / float64(w),
		CellH:   s.cfg.Map.CanvasHeight / float64(h),
		Sprites: sprites,
	}
}

// DeathMessage is the text shown after landing.
func (s *Session) DeathMessage() string {
	return fmt.Sprintf("You landed with %d points with a distance of %d", s.Points, s.Distance())
}

// drawHUD prints points, distance and altitude on the top row.
func (s *Session) drawHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Points: %s  Distance: %s  Altitude: %.2f ",
		humanize.Comma(int64(s.Points)),
		humanize.Comma(int64(s.Distance())),
		s.Altitude(),
	)
	dst.DrawText(0, 0, hud)
}

// drawMessageBox draws a centred framed box with the given lines.
func drawMessageBox(dst *core.Screen, lines ...string) {
	width := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > width {
			width = n
		}
	}
	width += 4
	height := len(lines) + 2

	x := (dst.Width() - width) / 2
	y := (dst.Height() - height) / 2
	box := core.NewRect(x, y, width, height)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, l := range lines {
		dst.DrawTextCentered(y+1+i, l)
	}
}
