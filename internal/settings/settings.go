// Package settings persists player preferences between runs.
//
// Settings are stored as YAML through gdata, which picks the per-user data
// directory of the platform. A Manager without gdata keeps settings in
// memory only.
package settings

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/spinball/internal/config"
	"github.com/vovakirdan/spinball/internal/locale"
)

// AppName is the gdata application name.
const AppName = "spinball"

// Storage location inside the gdata directory.
const (
	settingsObject   = "settings"
	settingsProperty = "player"
)

// Ball speed bounds in field pixels per tick.
const (
	MinBallSpeed     = 5.0
	MaxBallSpeed     = 20.0
	DefaultBallSpeed = 11.0
	BallSpeedStep    = 1.0
)

var (
	ErrUnknownKey    = errors.New("settings: unknown key")
	ErrInvalidValue  = errors.New("settings: invalid value")
	difficultyLabels = []string{
		string(config.DifficultyEasy),
		string(config.DifficultyNormal),
		string(config.DifficultyHard),
		string(config.DifficultyFixed),
	}
)

// Settings are the player preferences.
type Settings struct {
	BallSpeed    float64 `yaml:"ballSpeed"`
	Difficulty   string  `yaml:"difficulty"`
	Language     string  `yaml:"language"`
	SoundEnabled bool    `yaml:"soundEnabled"`
}

// Default returns the settings of a fresh install.
func Default() Settings {
	return Settings{
		BallSpeed:    DefaultBallSpeed,
		Difficulty:   string(config.DifficultyNormal),
		Language:     locale.Default,
		SoundEnabled: true,
	}
}

// normalize replaces out-of-range values with defaults.
func (s *Settings) normalize() {
	def := Default()
	if s.BallSpeed <= 0 || math.IsNaN(s.BallSpeed) {
		s.BallSpeed = def.BallSpeed
	}
	s.BallSpeed = clampSpeed(s.BallSpeed)
	if config.ParsePreset(s.Difficulty) == "" {
		s.Difficulty = def.Difficulty
	}
	if !locale.IsSupported(s.Language) {
		s.Language = def.Language
	}
}

// Keys lists the names accepted by Set, in display order.
func Keys() []string {
	return []string{"ball_speed", "difficulty", "language", "sound"}
}

// Difficulties lists the selectable difficulty labels.
func Difficulties() []string {
	return slices.Clone(difficultyLabels)
}

// Open opens the gdata storage for appName.
func Open(appName string) (*gdata.Manager, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("settings: cannot open data directory: %w", err)
	}
	return m, nil
}

// Manager loads, edits and saves Settings.
type Manager struct {
	data     *gdata.Manager // nil keeps settings in memory only
	settings Settings
	logger   *log.Logger
}

// NewManager creates a manager and loads saved settings.
// A load failure is logged and leaves the defaults in place.
func NewManager(data *gdata.Manager, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.Default()
	}
	m := &Manager{
		data:     data,
		settings: Default(),
		logger:   logger,
	}
	if err := m.Load(); err != nil {
		m.logger.Warn("using default settings", "err", err)
	}
	return m
}

// Persistent reports whether settings survive a restart.
func (m *Manager) Persistent() bool {
	return m.data != nil
}

// Load reads saved settings. Missing settings yield the defaults.
func (m *Manager) Load() error {
	m.settings = Default()
	if m.data == nil {
		return nil
	}
	if !m.data.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	raw, err := m.data.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("settings: cannot load: %w", err)
	}

	loaded := Default()
	if err := yaml.Unmarshal(raw, &loaded); err != nil {
		return fmt.Errorf("settings: cannot parse: %w", err)
	}
	loaded.normalize()
	m.settings = loaded
	return nil
}

// Save writes the current settings. Without gdata it does nothing.
func (m *Manager) Save() error {
	if m.data == nil {
		return nil
	}

	raw, err := yaml.Marshal(m.settings)
	if err != nil {
		return fmt.Errorf("settings: cannot encode: %w", err)
	}
	if err := m.data.SaveObjectProp(settingsObject, settingsProperty, raw); err != nil {
		return fmt.Errorf("settings: cannot save: %w", err)
	}

	m.logger.Debug("settings saved", "language", m.settings.Language, "difficulty", m.settings.Difficulty)
	return nil
}

// Settings returns a copy of the current settings.
func (m *Manager) Settings() Settings {
	return m.settings
}

// SetBallSpeed sets the ball speed, clamped to the allowed range.
func (m *Manager) SetBallSpeed(speed float64) {
	m.settings.BallSpeed = clampSpeed(speed)
}

// AdjustBallSpeed moves the ball speed by steps of BallSpeedStep.
func (m *Manager) AdjustBallSpeed(steps int) {
	m.SetBallSpeed(m.settings.BallSpeed + float64(steps)*BallSpeedStep)
}

// SetDifficulty sets the difficulty label.
func (m *Manager) SetDifficulty(label string) error {
	if config.ParsePreset(label) == "" {
		return fmt.Errorf("%w: difficulty %q", ErrInvalidValue, label)
	}
	m.settings.Difficulty = label
	return nil
}

// CycleDifficulty moves to the next (dir > 0) or previous difficulty.
func (m *Manager) CycleDifficulty(dir int) {
	m.settings.Difficulty = cycle(difficultyLabels, m.settings.Difficulty, dir)
}

// SetLanguage sets the UI language code.
func (m *Manager) SetLanguage(code string) error {
	if !locale.IsSupported(code) {
		return fmt.Errorf("%w: language %q", ErrInvalidValue, code)
	}
	m.settings.Language = code
	return nil
}

// CycleLanguage moves to the next (dir > 0) or previous language.
func (m *Manager) CycleLanguage(dir int) {
	m.settings.Language = cycle(locale.Supported(), m.settings.Language, dir)
}

// SetSound turns the sound flag on or off.
func (m *Manager) SetSound(enabled bool) {
	m.settings.SoundEnabled = enabled
}

// Set updates one setting from its text form, as given on the command line.
func (m *Manager) Set(key, value string) error {
	value = strings.TrimSpace(value)
	switch key {
	case "ball_speed":
		speed, err := strconv.ParseFloat(value, 64)
		if err != nil || speed <= 0 {
			return fmt.Errorf("%w: ball_speed %q", ErrInvalidValue, value)
		}
		m.SetBallSpeed(speed)
	case "difficulty":
		return m.SetDifficulty(strings.ToLower(value))
	case "language":
		return m.SetLanguage(strings.ToLower(value))
	case "sound":
		on, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: sound %q", ErrInvalidValue, value)
		}
		m.SetSound(on)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	return nil
}

// Get returns the text form of one setting.
func (m *Manager) Get(key string) (string, error) {
	switch key {
	case "ball_speed":
		return strconv.FormatFloat(m.settings.BallSpeed, 'f', -1, 64), nil
	case "difficulty":
		return m.settings.Difficulty, nil
	case "language":
		return m.settings.Language, nil
	case "sound":
		return strconv.FormatBool(m.settings.SoundEnabled), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
}

// Reset restores the defaults in memory.
func (m *Manager) Reset() {
	m.settings = Default()
}

func clampSpeed(v float64) float64 {
	return math.Max(MinBallSpeed, math.Min(MaxBallSpeed, v))
}

func cycle(options []string, current string, dir int) string {
	idx := slices.Index(options, current)
	if idx < 0 {
		return options[0]
	}
	n := len(options)
	return options[((idx+dir)%n+n)%n]
}
