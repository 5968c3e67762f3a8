// Package config provides YAML-based game configuration loading and
// difficulty management for SpinBall.
package config

// SpinballConfig contains all tuning for the SpinBall simulation.
// Distances are in field pixels, times in milliseconds.
type SpinballConfig struct {
	Field      SpinballField    `yaml:"field"`
	Ball       SpinballBall     `yaml:"ball"`
	Launch     SpinballLaunch   `yaml:"launch"`
	Board      SpinballBoard    `yaml:"board"`
	Blocks     SpinballBlocks   `yaml:"blocks"`
	Combo      SpinballCombo    `yaml:"combo"`
	Shop       SpinballShop     `yaml:"shop"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SpinballField defines the play field and its HUD bands.
type SpinballField struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	TopUI    float64 `yaml:"top_ui"`    // Ceiling band height
	BottomUI float64 `yaml:"bottom_ui"` // Floor band height
}

// SpinballBall defines ball parameters.
type SpinballBall struct {
	Radius      float64 `yaml:"radius"`
	Speed       float64 `yaml:"speed"` // Pixels per tick before multipliers
	StartCount  int     `yaml:"start_count"`
	TrailLength int     `yaml:"trail_length"`
}

// SpinballLaunch defines the launcher.
type SpinballLaunch struct {
	DelayMs  float64 `yaml:"delay_ms"` // Stagger between balls of one volley
	MinAngle float64 `yaml:"min_angle"`
	MaxAngle float64 `yaml:"max_angle"`
	AimStep  float64 `yaml:"aim_step"` // Degrees per keyboard press
	Margin   float64 `yaml:"margin"`   // Launch X is kept this far from the walls
}

// SpinballBoard defines row generation.
type SpinballBoard struct {
	Columns     int     `yaml:"columns"`
	BlockSize   float64 `yaml:"block_size"`
	BlockMargin float64 `yaml:"block_margin"`
	SpawnY      float64 `yaml:"spawn_y"`
	BlockChance float64 `yaml:"block_chance"`
	BonusChance float64 `yaml:"bonus_chance"`
	BonusRadius float64 `yaml:"bonus_radius"`
}

// SpinballBlocks defines special block behavior.
type SpinballBlocks struct {
	BombChance      float64 `yaml:"bomb_chance"`
	ShieldChance    float64 `yaml:"shield_chance"`
	GhostChance     float64 `yaml:"ghost_chance"`
	GhostPassChance float64 `yaml:"ghost_pass_chance"`
	ShieldHits      int     `yaml:"shield_hits"`
	BombSlack       float64 `yaml:"bomb_slack"` // Added to block size + margin for the blast radius
}

// SpinballCombo defines the combo multiplier curve.
type SpinballCombo struct {
	WindowMs       float64 `yaml:"window_ms"`
	MinCount       int     `yaml:"min_count"`
	BaseMultiplier float64 `yaml:"base_multiplier"`
	Step           float64 `yaml:"step"`
	MaxMultiplier  float64 `yaml:"max_multiplier"`
}

// SpinballShop holds item prices.
type SpinballShop struct {
	DoubleDamage    int `yaml:"double_damage"`
	DoubleSpeed     int `yaml:"double_speed"`
	ClearOnLastBall int `yaml:"clear_on_last_ball"`
	ClearBoard      int `yaml:"clear_board"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "round", "score" or "none"
	MaxAt int    `yaml:"max_at"` // Round/score at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to the speed scale at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a user-supplied label into a preset.
// Unknown labels yield the empty preset, which leaves the config untouched.
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// SpeedFactorForPreset returns the ball speed factor a preset applies.
func SpeedFactorForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.8
	case DifficultyHard:
		return 1.2
	default:
		return 1.0
	}
}
