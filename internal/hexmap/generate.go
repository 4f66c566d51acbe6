package hexmap

import "github.com/vovakirdan/guacamole-runner/internal/core"

// Generation shape: tilled patches are laid in tillPasses passes over
// sectionWidth-column sections, each patch averaging patchDraws draws in
// [patchMin, patchMax].
const (
	tillPasses   = 5
	sectionWidth = 10
	patchDraws   = 5
	patchMin     = 3
	patchMax     = 7
)

// DefaultSeed is the terrain seed used when none is configured.
const DefaultSeed int64 = 100

// GenConfig controls terrain generation.
type GenConfig struct {
	Width        int
	Height       int
	Seed         int64
	CanvasHeight float64 // The map is anchored to the bottom of the canvas
	Geom         Geometry
}

// Generate builds a map deterministically from cfg.Seed.
//
// Every tile gets a uniform height in [0, MaxFloorHeight]. Then, for each
// pass and each section, a random row in [0, Height] is picked (Height
// itself lands off the map and tills nothing) and a patch of averaged
// length is tilled from the section's first column.
func Generate(cfg GenConfig) *Map {
	rng := NewRand(cfg.Seed)

	m := &Map{
		Tiles:  make([]Tile, 0, cfg.Width*cfg.Height),
		Width:  cfg.Width,
		Height: cfg.Height,
		Geom:   cfg.Geom,
	}

	for i := 0; i < cfg.Width*cfg.Height; i++ {
		h := uint8(rng.Intn(int(cfg.Geom.MaxFloorHeight) + 1))
		m.Tiles = append(m.Tiles, NewTile(h))
		m.noteHeight(h)
	}

	for pass := 0; pass < tillPasses; pass++ {
		for section := 0; section < cfg.Width/sectionWidth; section++ {
			row := rng.Intn(cfg.Height + 1)

			total := 0
			for i := 0; i < patchDraws; i++ {
				total += patchMin + rng.Intn(patchMax-patchMin+1)
			}
			total /= patchDraws

			for offset := 0; offset < total; offset++ {
				if t, ok := m.Tile(section*sectionWidth+offset, row); ok {
					t.Tilled = true
				}
			}
		}
	}

	m.Position = core.V2(0, cfg.CanvasHeight-float64(cfg.Height)*cfg.Geom.Layout.FloorVertStep)
	return m
}
