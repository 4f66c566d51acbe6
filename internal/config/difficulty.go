package config

import "math"

// Minimum ticks between plane spawns at any difficulty.
const minSpawnInterval = 10

// Progress is what difficulty progression is measured against.
type Progress struct {
	Score    int
	Ticks    int
	Distance int
}

// DifficultyManager calculates dynamic game parameters based on progress.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0).
func (d *DifficultyManager) Level(p Progress) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(p.Score) / maxAt
	case "time":
		progress = float64(p.Ticks) / maxAt
	case "distance":
		progress = float64(p.Distance) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// FallSpeed returns the altitude lost per tick.
func (d *DifficultyManager) FallSpeed(base float64, p Progress) float64 {
	return base * (1.0 + d.Level(p)*d.cfg.Scaling.FallMultiplier)
}

// SpawnInterval returns the ticks between plane spawns.
func (d *DifficultyManager) SpawnInterval(base int, p Progress) int {
	reduction := int(d.Level(p) * float64(d.cfg.Scaling.SpawnReduction))
	result := base - reduction
	if result < minSpawnInterval && base >= minSpawnInterval {
		result = minSpawnInterval
	}
	return result
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
