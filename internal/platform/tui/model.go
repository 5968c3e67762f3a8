package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/spinball/internal/config"
	"github.com/vovakirdan/spinball/internal/core"
	"github.com/vovakirdan/spinball/internal/locale"
	"github.com/vovakirdan/spinball/internal/registry"
	"github.com/vovakirdan/spinball/internal/storage"
)

// ScoreRecorder stores finished runs.
type ScoreRecorder interface {
	RecordRun(gameID string, run storage.Run) (int64, error)
}

// saveStatus is the outcome of the game-over name entry.
type saveStatus int

const (
	saveNone saveStatus = iota
	saveNaming
	saveDone
	saveFailed
)

// Options configures a game Model.
type Options struct {
	Store      ScoreRecorder // nil disables score saving
	Logger     *log.Logger
	Language   string
	PlayerName string // Prefilled in the name entry
	// AllowBack lets Back leave a paused or finished game; the caller then
	// checks BackToMenu. Without it Back quits.
	AllowBack bool
	// ScreenshotDir overrides ~/.spinball/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model that runs one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	logger     *log.Logger
	text       *locale.Catalog
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState

	nameInput textinput.Model
	nameErr   string
	status    saveStatus

	scoreSaved bool // Whether the current run has been stored
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	if l, ok := game.(registry.Localized); ok {
		l.SetLanguage(opts.Language)
	}

	input := textinput.New()
	input.CharLimit = storage.MaxNameLength
	input.Width = storage.MaxNameLength + 1
	input.Prompt = "> "

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts,
		logger:     logger,
		text:       locale.New(opts.Language),
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		nameInput:  input,
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.status == saveNaming {
			return m.handleNameKey(msg)
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input during play.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		if !m.opts.AllowBack {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
		return m, tea.Quit
	}

	return m, nil
}

// handleNameKey feeds keys to the name entry shown at game over.
func (m Model) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		m.submitName()
		return m, nil
	case "esc":
		m.nameInput.Blur()
		m.status = saveNone
		m.scoreSaved = true
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	m.nameErr = ""
	return m, cmd
}

// submitName stores the finished run under the entered name.
func (m *Model) submitName() {
	name := storage.NormalizeName(m.nameInput.Value())
	if name == "" {
		m.nameErr = m.text.T("name_empty")
		return
	}

	run := storage.Run{
		PlayerName: name,
		Score:      m.gameState.Score,
		Round:      m.gameState.Round,
		Balls:      m.gameState.Balls,
	}
	m.nameInput.Blur()
	m.scoreSaved = true

	id, err := m.opts.Store.RecordRun(m.game.ID(), run)
	if err != nil {
		m.status = saveFailed
		m.logger.Error("score not saved", "game", m.game.ID(), "player", name, "err", err)
		return
	}
	m.status = saveDone
	m.logger.Info("score saved", "game", m.game.ID(), "player", name,
		"score", run.Score, "round", run.Round, "id", id)
}

// handleResize keeps the run when the game supports it.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizable); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	switch {
	case m.gameState.GameOver && !wasOver:
		m.beginNameEntry()
	case !m.gameState.GameOver && wasOver:
		// Restarted
		m.scoreSaved = false
		m.status = saveNone
		m.nameErr = ""
		m.nameInput.Blur()
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// beginNameEntry opens the name prompt once per finished run.
func (m *Model) beginNameEntry() {
	if m.scoreSaved || m.opts.Store == nil || m.gameState.Score <= 0 {
		return
	}
	m.status = saveNaming
	m.nameErr = ""
	m.nameInput.SetValue(m.opts.PlayerName)
	m.nameInput.CursorEnd()
	m.nameInput.Focus()
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: cannot find home directory: %w", err)
		}
		dir = filepath.Join(home, config.AppDir, "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	out := RenderScreen(m.screen)

	lines := m.statusLines()
	if len(lines) == 0 {
		return out
	}
	return overlayLines(out, m.screen.Height()-len(lines)-1, m.screen.Width(), lines)
}

var (
	promptStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("13")).
			Padding(0, 1)
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// statusLines returns the name prompt or save result drawn over the game.
func (m Model) statusLines() []string {
	switch m.status {
	case saveNaming:
		body := []string{m.text.T("enter_name"), m.nameInput.View()}
		if m.nameErr != "" {
			body = append(body, failStyle.Render(m.nameErr))
		}
		body = append(body, m.text.T("name_hint"))
		return strings.Split(promptStyle.Render(strings.Join(body, "\n")), "\n")
	case saveDone:
		return []string{okStyle.Render(m.text.T("score_saved"))}
	case saveFailed:
		return []string{failStyle.Render(m.text.T("not_saved"))}
	}
	return nil
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// NameEntryActive reports whether the game-over name prompt is open.
func (m Model) NameEntryActive() bool {
	return m.status == saveNaming
}

// Run starts the Bubble Tea program for one game.
// Returns true if the player asked to go back to the menu.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (goBack bool, err error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
