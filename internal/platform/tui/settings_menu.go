package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/spinball/internal/core"
	"github.com/vovakirdan/spinball/internal/locale"
	"github.com/vovakirdan/spinball/internal/settings"
)

var (
	settingsBoxStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(1, 3)
	settingsValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

// SettingsModel edits player settings.
type SettingsModel struct {
	mgr       *settings.Manager
	logger    *log.Logger
	text      *locale.Catalog
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	message   string
	done      bool
	quitting  bool
}

// NewSettingsModel creates the settings screen for mgr.
func NewSettingsModel(mgr *settings.Manager, cfg core.RuntimeConfig, logger *log.Logger) SettingsModel {
	if logger == nil {
		logger = log.Default()
	}
	return SettingsModel{
		mgr:       mgr,
		logger:    logger,
		text:      locale.New(mgr.Settings().Language),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the settings model.
func (m SettingsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the settings screen.
func (m SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m SettingsModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := settings.Keys()

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionBack:
		m.save()
		m.done = true
		return m, tea.Quit
	case MenuActionUp:
		m.cursor = (m.cursor + len(keys) - 1) % len(keys)
	case MenuActionDown:
		m.cursor = (m.cursor + 1) % len(keys)
	case MenuActionLeft:
		m.change(keys[m.cursor], -1)
	case MenuActionRight:
		m.change(keys[m.cursor], 1)
	case MenuActionSelect:
		m.save()
	}
	return m, nil
}

// change steps the setting named key in direction dir.
func (m *SettingsModel) change(key string, dir int) {
	m.message = ""
	switch key {
	case "ball_speed":
		m.mgr.AdjustBallSpeed(dir)
	case "difficulty":
		m.mgr.CycleDifficulty(dir)
	case "language":
		m.mgr.CycleLanguage(dir)
		m.text = locale.New(m.mgr.Settings().Language)
	case "sound":
		m.mgr.SetSound(!m.mgr.Settings().SoundEnabled)
	}
}

func (m *SettingsModel) save() {
	if err := m.mgr.Save(); err != nil {
		m.logger.Error("settings not saved", "err", err)
		m.message = m.text.T("not_saved")
		return
	}
	if m.mgr.Persistent() {
		m.message = m.text.T("settings_saved")
	} else {
		m.message = m.text.T("settings_temp")
	}
}

// valueText returns the display form of one setting.
func (m SettingsModel) valueText(key string) string {
	s := m.mgr.Settings()
	switch key {
	case "ball_speed":
		return fmt.Sprintf("%g", s.BallSpeed)
	case "difficulty":
		return m.text.T(s.Difficulty)
	case "language":
		return m.text.LanguageName(s.Language)
	case "sound":
		if s.SoundEnabled {
			return m.text.T("sound_on")
		}
		return m.text.T("sound_off")
	}
	return ""
}

// View renders the settings screen.
func (m SettingsModel) View() string {
	if m.done || m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(menuSelectedStyle.Render(m.text.T("settings_title")))
	b.WriteString("\n\n")

	for i, key := range settings.Keys() {
		label := fmt.Sprintf("%-12s", m.text.T(key))
		value := settingsValueStyle.Render("< " + m.valueText(key) + " >")
		if i == m.cursor {
			b.WriteString(menuSelectedStyle.Render("> "+label) + " " + value)
		} else {
			b.WriteString(menuItemStyle.Render("  "+label) + " " + value)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.message != "" {
		b.WriteString(okStyle.Render(m.message))
	}
	b.WriteString("\n")
	b.WriteString(menuHintStyle.Render(m.text.T("settings_hint")))
	b.WriteString("\n")
	b.WriteString(menuHintStyle.Render(m.text.T("back_to_title")))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		settingsBoxStyle.Render(b.String()))
}

// Done reports whether the player left the settings screen.
func (m SettingsModel) Done() bool {
	return m.done
}

// IsQuitting returns true if user requested to quit entirely.
func (m SettingsModel) IsQuitting() bool {
	return m.quitting
}

// RunSettings runs the settings screen. Returns true to go back to the menu.
func RunSettings(mgr *settings.Manager, cfg core.RuntimeConfig, logger *log.Logger) (goBack bool, err error) {
	p := tea.NewProgram(NewSettingsModel(mgr, cfg, logger), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(SettingsModel)
	if !ok {
		return false, nil
	}
	return m.Done(), nil
}
