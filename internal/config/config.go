// Package config provides YAML-based configuration loading and difficulty
// management for the runner.
package config

import "github.com/vovakirdan/guacamole-runner/internal/core"

// RunnerConfig contains all configuration for the runner game.
type RunnerConfig struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Tiles      TilesConfig      `yaml:"tiles"`
	Map        MapConfig        `yaml:"map"`
	Player     PlayerConfig     `yaml:"player"`
	Planes     PlanesConfig     `yaml:"planes"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Editor     EditorConfig     `yaml:"editor"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ScreenConfig is the world viewport the player and planes move in.
type ScreenConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// TilesConfig defines hex tile geometry in canvas pixels.
type TilesConfig struct {
	FloorWidth     float64 `yaml:"floor_width"`
	FloorVertStep  float64 `yaml:"floor_vert_step"`
	FloorDepthStep float64 `yaml:"floor_depth_step"`
	WallVertOffset float64 `yaml:"wall_vert_offset"`
	WallVertStep   float64 `yaml:"wall_vert_step"`
	HalfTile       float64 `yaml:"half_tile"`
	MaxFloorHeight uint8   `yaml:"max_floor_height"`
	MaxBrickHeight uint8   `yaml:"max_brick_height"`
}

// MapConfig defines the terrain grid and how it scrolls.
type MapConfig struct {
	Width          int     `yaml:"width"`
	Height         int     `yaml:"height"`
	Seed           int64   `yaml:"seed"`
	CanvasWidth    float64 `yaml:"canvas_width"`
	CanvasHeight   float64 `yaml:"canvas_height"`
	CanvasScale    float64 `yaml:"canvas_scale"`    // Screen pixels per canvas pixel
	ScrollRate     float64 `yaml:"scroll_rate"`     // Canvas pixels per scroll step
	ScrollInterval int     `yaml:"scroll_interval"` // Idle ticks between scroll steps, 0 = every tick
}

// PlayerConfig defines the glider.
type PlayerConfig struct {
	StartX      float64       `yaml:"start_x"`
	StartY      float64       `yaml:"start_y"`
	Speed       float64       `yaml:"speed"`       // Scales the diagonal climb/dive step
	BrakeSpeed  float64       `yaml:"brake_speed"` // Pixels per tick moving left
	DriftSpeed  float64       `yaml:"drift_speed"` // Pixels per tick moving right
	HalfWidth   float64       `yaml:"half_width"`
	HalfHeight  float64       `yaml:"half_height"`
	Collider    core.Collider `yaml:"collider"`
	StartHeight float64       `yaml:"start_height"`
	FallSpeed   float64       `yaml:"fall_speed"`
	Scale       float64       `yaml:"scale"` // Sprite scale at StartHeight
}

// PlanesConfig defines aircraft spawning and motion.
type PlanesConfig struct {
	SpawnInterval  int           `yaml:"spawn_interval"` // Countdown reset value; a plane spawns when it runs out
	MinX           int           `yaml:"min_x"`
	XRange         int           `yaml:"x_range"` // Spawn x is in [MinX, MinX+XRange)
	SpawnMargin    float64       `yaml:"spawn_margin"`
	DespawnMargin  float64       `yaml:"despawn_margin"`
	VerticalSpeed  float64       `yaml:"vertical_speed"`
	ColliderDown   core.Collider `yaml:"collider_down"`
	ColliderUp     core.Collider `yaml:"collider_up"`
	ScrollMultiple float64       `yaml:"scroll_multiple"` // Horizontal speed in scroll rates
}

// ScoringConfig defines point awards.
type ScoringConfig struct {
	PointsGrow int `yaml:"points_grow"`
}

// EditorConfig enables the mouse tile editor and debug overlays.
type EditorConfig struct {
	Enabled bool `yaml:"enabled"`
	Markers bool `yaml:"markers"` // Draw hex-centre markers
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", "distance" or "none"
	MaxAt int    `yaml:"max_at"` // Value at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	FallMultiplier float64 `yaml:"fall_multiplier"` // Added to fall speed factor at max difficulty
	SpawnReduction int     `yaml:"spawn_reduction"` // Spawn interval reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ParsePreset validates a preset name. An empty name is not a preset.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}
