package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppDir is the per-user directory under $HOME holding configs, scores and logs.
const AppDir = ".spinball"

// LoadSpinball loads the SpinBall configuration.
// Search order: customPath -> ~/.spinball/configs/spinball.yaml ->
// ./configs/spinball.yaml -> embedded default -> hard-coded default.
// Files only need to contain the keys they override.
func LoadSpinball(customPath string) (SpinballConfig, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return DefaultSpinballConfig(), err
		}
		return cfg, Validate(cfg)
	}

	for _, path := range []string{userConfigPath("spinball.yaml"), filepath.Join("configs", "spinball.yaml")} {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil && Validate(cfg) == nil {
			return cfg, nil
		}
	}

	cfg := DefaultSpinballConfig()
	if err := yaml.Unmarshal(defaultSpinballYAML, &cfg); err != nil {
		return DefaultSpinballConfig(), nil
	}
	return cfg, nil
}

// loadFile reads a YAML file over the hard-coded defaults.
func loadFile(path string) (SpinballConfig, error) {
	cfg := DefaultSpinballConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: cannot read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: cannot parse %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns ~/.spinball/configs/<filename>, or "" without a home directory.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, AppDir, "configs", filename)
}

// Validate rejects configurations the simulation cannot run with.
func Validate(cfg SpinballConfig) error {
	var errs []error
	if cfg.Field.Width <= 0 || cfg.Field.Height <= 0 {
		errs = append(errs, errors.New("field width and height must be positive"))
	}
	if cfg.Field.TopUI+cfg.Field.BottomUI >= cfg.Field.Height {
		errs = append(errs, errors.New("field UI bands leave no play area"))
	}
	if cfg.Ball.Speed <= 0 {
		errs = append(errs, fmt.Errorf("ball speed must be positive, got %v", cfg.Ball.Speed))
	}
	if cfg.Ball.Radius <= 0 {
		errs = append(errs, fmt.Errorf("ball radius must be positive, got %v", cfg.Ball.Radius))
	}
	if cfg.Ball.StartCount < 1 {
		errs = append(errs, errors.New("ball start_count must be at least 1"))
	}
	if cfg.Board.BlockSize <= 0 || cfg.Board.Columns < 1 {
		errs = append(errs, errors.New("board needs a positive block size and at least one column"))
	}
	if cfg.Launch.MinAngle >= cfg.Launch.MaxAngle {
		errs = append(errs, errors.New("launch min_angle must be below max_angle"))
	}
	if cfg.Combo.MinCount < 1 || cfg.Combo.WindowMs < 0 {
		errs = append(errs, errors.New("combo min_count must be at least 1 and window_ms non-negative"))
	}
	if sum := cfg.Blocks.BombChance + cfg.Blocks.ShieldChance + cfg.Blocks.GhostChance; sum > 1 {
		errs = append(errs, fmt.Errorf("special block chances sum to %v, must be at most 1", sum))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid spinball config: %w", errors.Join(errs...))
	}
	return nil
}

// ApplySpinballPreset adjusts ball speed and survival progression for a preset.
func ApplySpinballPreset(cfg *SpinballConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	cfg.Ball.Speed *= SpeedFactorForPreset(preset)
}

// ApplyBallSpeed overrides the base ball speed from player settings.
// Non-positive values are ignored.
func ApplyBallSpeed(cfg *SpinballConfig, speed float64) {
	if speed > 0 {
		cfg.Ball.Speed = speed
	}
}
