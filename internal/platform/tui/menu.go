package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/spinball/internal/core"
	"github.com/vovakirdan/spinball/internal/games/spinball"
	"github.com/vovakirdan/spinball/internal/locale"
)

// MenuChoice is what the player picked on the title menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceSettings
	ChoiceScoreboard
	ChoiceQuit
)

// menuEntries are the title menu rows, by locale key.
var menuEntries = []string{"menu_start", "menu_settings", "menu_ranking", "menu_quit"}

// modeIDs are the selectable game modes in display order.
var modeIDs = []string{spinball.IDClassic, spinball.IDSurvival}

var (
	menuTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14")).
			Padding(0, 2).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("13"))
	menuItemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuHintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the title menu.
type MenuModel struct {
	cursor    int
	mode      int // Index into modeIDs
	width     int
	height    int
	text      *locale.Catalog
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	choice    MenuChoice
}

// NewMenuModel creates a new menu model.
func NewMenuModel(cfg core.RuntimeConfig, language string) MenuModel {
	return MenuModel{
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		text:      locale.New(language),
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "tab" {
		m.choice = ChoiceScoreboard
		return m, tea.Quit
	}

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.choice = ChoiceQuit
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuEntries)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		if m.cursor == 0 {
			m.mode = (m.mode + len(modeIDs) - 1) % len(modeIDs)
		}

	case MenuActionRight:
		if m.cursor == 0 {
			m.mode = (m.mode + 1) % len(modeIDs)
		}

	case MenuActionSelect:
		m.choice = []MenuChoice{ChoicePlay, ChoiceSettings, ChoiceScoreboard, ChoiceQuit}[m.cursor]
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice != ChoiceNone {
		return ""
	}

	var b strings.Builder
	b.WriteString(menuTitleStyle.Render(m.text.T("game_title")))
	b.WriteString("\n\n")

	for i, key := range menuEntries {
		label := m.text.T(key)
		if i == 0 {
			label = fmt.Sprintf("%s  < %s >", label, m.modeLabel())
		}
		if i == m.cursor {
			b.WriteString(menuSelectedStyle.Render("> " + label))
		} else {
			b.WriteString(menuItemStyle.Render("  " + label))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(menuHintStyle.Render(m.text.T("menu_hint")))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

func (m MenuModel) modeLabel() string {
	if modeIDs[m.mode] == spinball.IDSurvival {
		return m.text.T("mode_survival")
	}
	return m.text.T("mode_classic")
}

// Choice returns what the player picked, or ChoiceNone.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// GameID returns the selected game mode's ID.
func (m MenuModel) GameID() string {
	return modeIDs[m.mode]
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice MenuChoice
	GameID string
	Config core.RuntimeConfig
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig, language string) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(cfg, language), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.Choice() == ChoiceNone {
		return MenuResult{Choice: ChoiceQuit, Config: cfg}, nil
	}

	return MenuResult{
		Choice: m.Choice(),
		GameID: m.GameID(),
		Config: m.Config(),
	}, nil
}
