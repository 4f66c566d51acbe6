package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppDir is the per-user directory for configs, logs and the score database.
const AppDir = ".guacamole"

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.guacamole/configs/runner.yaml -> ./configs/runner.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides
// the keys it names.
func LoadRunner(customPath string) (RunnerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decodeRunner(data)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("runner.yaml"), filepath.Join("configs", "runner.yaml")} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := decodeRunner(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg, err := decodeRunner(defaultRunnerYAML)
	if err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func decodeRunner(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunnerConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return RunnerConfig{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the simulation cannot run with.
func (c RunnerConfig) Validate() error {
	var errs []error
	if c.Map.Width <= 0 || c.Map.Height <= 0 {
		errs = append(errs, fmt.Errorf("map size %dx%d must be positive", c.Map.Width, c.Map.Height))
	}
	if c.Map.CanvasScale <= 0 {
		errs = append(errs, fmt.Errorf("canvas_scale %v must be positive", c.Map.CanvasScale))
	}
	if c.Map.ScrollInterval < 0 {
		errs = append(errs, fmt.Errorf("scroll_interval %d must not be negative", c.Map.ScrollInterval))
	}
	if c.Tiles.FloorWidth <= 0 || c.Tiles.FloorVertStep <= 0 {
		errs = append(errs, errors.New("tile floor_width and floor_vert_step must be positive"))
	}
	if c.Tiles.MaxBrickHeight < c.Tiles.MaxFloorHeight {
		errs = append(errs, fmt.Errorf("max_brick_height %d below max_floor_height %d",
			c.Tiles.MaxBrickHeight, c.Tiles.MaxFloorHeight))
	}
	if c.Player.FallSpeed < 0 {
		errs = append(errs, fmt.Errorf("fall_speed %v must not be negative", c.Player.FallSpeed))
	}
	if c.Planes.SpawnInterval < 0 {
		errs = append(errs, fmt.Errorf("spawn_interval %d must not be negative", c.Planes.SpawnInterval))
	}
	if c.Planes.XRange <= 0 {
		errs = append(errs, fmt.Errorf("x_range %d must be positive", c.Planes.XRange))
	}
	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, AppDir, "configs", filename)
}

// ApplyRunnerPreset modifies the config based on a difficulty preset.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust the glide based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Player.FallSpeed *= 0.75
		cfg.Planes.SpawnInterval += 20
	case DifficultyHard:
		cfg.Player.FallSpeed *= 1.5
		cfg.Planes.SpawnInterval -= 20
		if cfg.Planes.SpawnInterval < minSpawnInterval {
			cfg.Planes.SpawnInterval = minSpawnInterval
		}
	}
}
