// Package render holds the draw commands produced by the simulation and
// projects them onto a character screen.
//
// The simulation never rasterizes anything itself. It emits commands in
// map canvas pixels (texture, position with depth, layer, scale, rotation,
// origin, tint) into a Buffer, and the platform decides how to show them.
package render

import (
	"sort"

	"github.com/vovakirdan/guacamole-runner/internal/core"
)

// Texture identifies a sprite.
type Texture uint8

const (
	TextureNone Texture = iota
	TextureFloor
	TextureFloorBrick
	TextureFloorTilled
	TextureFloorGrown
	TextureWall
	TextureWallBrick
	TextureMarker
	TexturePlayer
	TexturePlane
)

var textureNames = map[Texture]string{
	TextureNone:        "none",
	TextureFloor:       "hex-grass",
	TextureFloorBrick:  "hex-stone-floor",
	TextureFloorTilled: "tilled-floor",
	TextureFloorGrown:  "grown-floor",
	TextureWall:        "hex-dirt",
	TextureWallBrick:   "hex-stone",
	TextureMarker:      "marker",
	TexturePlayer:      "player",
	TexturePlane:       "aeroplane",
}

func (t Texture) String() string {
	if name, ok := textureNames[t]; ok {
		return name
	}
	return "unknown"
}

// Draw layers. Higher layers are drawn later inside a sorted pool.
const (
	LayerFloor  = 0.0
	LayerWall   = 1.0
	LayerPlane  = 5.0
	LayerPlayer = 10.0
)

// DrawCommand is one sprite draw. Pos.Z is the isometric height: the
// sprite is drawn Pos.Z pixels above Pos.Y.
type DrawCommand struct {
	Texture  Texture
	Pos      core.Vec3
	Layer    float64
	Scale    core.Vec2
	Rotation float64   // Radians
	Origin   core.Vec2 // Pivot inside the unscaled sprite
	Tint     float64   // Grey multiplier in [0, 1]
}

// NewCommand returns a command with unit scale and full brightness.
func NewCommand(tex Texture, pos core.Vec3, layer float64) DrawCommand {
	return DrawCommand{
		Texture: tex,
		Pos:     pos,
		Layer:   layer,
		Scale:   core.V2(1, 1),
		Tint:    1,
	}
}

// Pool is a group of commands. Sorted pools are ordered by layer before
// drawing; unsorted pools keep insertion order.
type Pool struct {
	Sorted   bool
	Commands []DrawCommand
}

// Buffer collects the commands for one frame.
type Buffer struct {
	pools []Pool
	open  bool
}

// NewBuffer creates an empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Reset drops all pools, keeping allocated capacity for the next frame.
func (b *Buffer) Reset() {
	for i := range b.pools {
		b.pools[i].Commands = b.pools[i].Commands[:0]
	}
	b.pools = b.pools[:0]
	b.open = false
}

// Begin opens a new pool. Commands pushed until End belong to it.
func (b *Buffer) Begin(sorted bool) {
	b.pools = append(b.pools, Pool{Sorted: sorted})
	b.open = true
}

// End closes the current pool.
func (b *Buffer) End() {
	b.open = false
}

// Push appends a command to the open pool, opening an unsorted one if needed.
func (b *Buffer) Push(cmd DrawCommand) {
	if !b.open {
		b.Begin(false)
	}
	p := &b.pools[len(b.pools)-1]
	p.Commands = append(p.Commands, cmd)
}

// Pools returns the pools in submission order.
func (b *Buffer) Pools() []Pool {
	return b.pools
}

// Len returns the total number of commands.
func (b *Buffer) Len() int {
	n := 0
	for _, p := range b.pools {
		n += len(p.Commands)
	}
	return n
}

// Commands returns every command in draw order.
func (b *Buffer) Commands() []DrawCommand {
	out := make([]DrawCommand, 0, b.Len())
	for _, p := range b.pools {
		start := len(out)
		out = append(out, p.Commands...)
		if p.Sorted {
			sub := out[start:]
			sort.SliceStable(sub, func(i, j int) bool {
				return sub[i].Layer < sub[j].Layer
			})
		}
	}
	return out
}

// Count returns how many commands use the given texture.
func (b *Buffer) Count(tex Texture) int {
	n := 0
	for _, p := range b.pools {
		for _, c := range p.Commands {
			if c.Texture == tex {
				n++
			}
		}
	}
	return n
}
