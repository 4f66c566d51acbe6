package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/guacamole-runner/internal/config"
	"github.com/vovakirdan/guacamole-runner/internal/games/runner"
	"github.com/vovakirdan/guacamole-runner/internal/hexmap"
)

var flagMapCols int

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Print the generated terrain",
	Long: `Generate the terrain for the configured seed and print it.

Legend:
  0-9  - ground height
  ░    - tilled soil
  ♣    - grown crop
  #    - brick

Examples:
  runner map
  runner map --seed 7 --cols 120
  runner map --config ./my-runner.yaml`,
	Run: runMap,
}

func init() {
	mapCmd.Flags().IntVar(&flagMapCols, "cols", 80, "Columns to print (0 = whole map)")
}

func runMap(_ *cobra.Command, _ []string) {
	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagSeed != 0 {
		cfg.Map.Seed = flagSeed
	}

	m := hexmap.Generate(hexmap.GenConfig{
		Width:        cfg.Map.Width,
		Height:       cfg.Map.Height,
		Seed:         cfg.Map.Seed,
		CanvasHeight: cfg.Map.CanvasHeight,
		Geom:         runner.Geometry(cfg.Tiles),
	})

	tiles := m.Width * m.Height
	fmt.Printf("Seed %d: %d x %d tiles (%s total)\n", cfg.Map.Seed, m.Width, m.Height, humanize.Comma(int64(tiles)))
	fmt.Printf("Tilled: %s (%.1f%%)\n", humanize.Comma(int64(m.TilledCount())), 100*float64(m.TilledCount())/float64(tiles))
	fmt.Printf("Crops available: %s points\n", humanize.Comma(int64(m.TilledCount()*cfg.Scoring.PointsGrow)))
	fmt.Println()
	fmt.Print(m.Preview(flagMapCols))
}
