package config

import (
	_ "embed"
)

//go:embed defaults/spinball.yaml
var defaultSpinballYAML []byte

// DefaultSpinballConfig returns the built-in SpinBall configuration.
// It mirrors defaults/spinball.yaml and is used when that cannot be parsed.
func DefaultSpinballConfig() SpinballConfig {
	return SpinballConfig{
		Field: SpinballField{
			Width:    400,
			Height:   700,
			TopUI:    80,
			BottomUI: 120,
		},
		Ball: SpinballBall{
			Radius:      8,
			Speed:       11,
			StartCount:  1,
			TrailLength: 6,
		},
		Launch: SpinballLaunch{
			DelayMs:  80,
			MinAngle: 10,
			MaxAngle: 170,
			AimStep:  2,
			Margin:   20,
		},
		Board: SpinballBoard{
			Columns:     7,
			BlockSize:   56,
			BlockMargin: 1,
			SpawnY:      120,
			BlockChance: 0.6,
			BonusChance: 0.8,
			BonusRadius: 10,
		},
		Blocks: SpinballBlocks{
			BombChance:      0.08,
			ShieldChance:    0.07,
			GhostChance:     0.07,
			GhostPassChance: 0.3,
			ShieldHits:      3,
			BombSlack:       10,
		},
		Combo: SpinballCombo{
			WindowMs:       1500,
			MinCount:       3,
			BaseMultiplier: 1.5,
			Step:           0.5,
			MaxMultiplier:  4.0,
		},
		Shop: SpinballShop{
			DoubleDamage:    100,
			DoubleSpeed:     150,
			ClearOnLastBall: 200,
			ClearBoard:      300,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "round",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.6,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML, printed by `spinball settings config`.
func DefaultYAML() []byte {
	return defaultSpinballYAML
}
