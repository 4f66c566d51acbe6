package config

import (
	_ "embed"

	"github.com/vovakirdan/guacamole-runner/internal/core"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Screen: ScreenConfig{
			Width:  1280,
			Height: 720,
		},
		Tiles: TilesConfig{
			FloorWidth:     36,
			FloorVertStep:  28,
			FloorDepthStep: 12,
			WallVertOffset: 12,
			WallVertStep:   12,
			HalfTile:       18,
			MaxFloorHeight: 2,
			MaxBrickHeight: 4,
		},
		Map: MapConfig{
			Width:          1000,
			Height:         10,
			Seed:           100,
			CanvasWidth:    640,
			CanvasHeight:   360,
			CanvasScale:    2,
			ScrollRate:     4,
			ScrollInterval: 0,
		},
		Player: PlayerConfig{
			StartX:      200,
			StartY:      360,
			Speed:       5,
			BrakeSpeed:  5,
			DriftSpeed:  1,
			HalfWidth:   60,
			HalfHeight:  54,
			Collider:    core.NewCollider(-60, -24, 108, 48),
			StartHeight: 5,
			FallSpeed:   0.01,
			Scale:       3,
		},
		Planes: PlanesConfig{
			SpawnInterval:  70,
			MinX:           800,
			XRange:         480,
			SpawnMargin:    48,
			DespawnMargin:  200,
			VerticalSpeed:  4,
			ScrollMultiple: 2,
			ColliderDown:   core.NewCollider(-48, -24, 96, 24),
			ColliderUp:     core.NewCollider(-48, 0, 96, 24),
		},
		Scoring: ScoringConfig{
			PointsGrow: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "distance",
				MaxAt: 500,
			},
			Scaling: ScalingConfig{
				FallMultiplier: 1.0,
				SpawnReduction: 40,
			},
		},
	}
}
