package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/spinball/internal/locale"
	"github.com/vovakirdan/spinball/internal/registry"
	"github.com/vovakirdan/spinball/internal/storage"
)

const (
	dateColumnMinWidth = 60 // narrower terminals drop the date column
	rankingLimit       = 100
)

var (
	rankingTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	rankingFrameStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	rankingEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4)
	rankingHelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// rankingKeys are the scoreboard bindings; they double as the help model.
type rankingKeys struct {
	Up, Down   key.Binding
	Next, Prev key.Binding
	Back, Quit key.Binding
}

func (k rankingKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Prev, k.Back}
}

func (k rankingKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Next, k.Prev}, {k.Back, k.Quit}}
}

func newRankingKeys() rankingKeys {
	bind := func(help, desc string, keys ...string) key.Binding {
		return key.NewBinding(key.WithKeys(keys...), key.WithHelp(help, desc))
	}
	return rankingKeys{
		Up:   bind("up/k", "scroll up", "up", "k"),
		Down: bind("down/j", "scroll down", "down", "j"),
		Next: bind("tab", "next mode", "tab", "right", "l"),
		Prev: bind("S-tab", "prev mode", "shift+tab", "left", "h"),
		Back: bind("esc/b", "back", "esc", "b"),
		Quit: bind("q", "quit", "q", "ctrl+c"),
	}
}

// ScoreboardModel is the Bubble Tea model for the ranking screen.
type ScoreboardModel struct {
	games      []registry.GameInfo
	gameCursor int
	store      *storage.Store // nil shows an empty board
	text       *locale.Catalog
	scores     []storage.ScoreEntry
	stats      *storage.GameStats
	table      table.Model
	help       help.Model
	keys       rankingKeys
	width      int
	height     int
	quitting   bool
	goingBack  bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int, language string) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		text:   locale.New(language),
		keys:   newRankingKeys(),
		help:   h,
		width:  width,
		height: height,
	}

	m.table = m.createTable()
	if len(m.games) > 0 {
		m.loadScores(m.games[0].ID)
	}

	return m
}

// columns returns the table columns for the current width.
func (m *ScoreboardModel) columns() []table.Column {
	cols := []table.Column{
		{Title: m.text.T("rank"), Width: 5},
		{Title: m.text.T("name"), Width: storage.MaxNameLength},
		{Title: m.text.T("score"), Width: 10},
		{Title: m.text.T("round"), Width: 7},
		{Title: m.text.T("balls"), Width: 5},
	}
	if m.width-4 >= dateColumnMinWidth {
		cols = append(cols, table.Column{Title: m.text.T("date"), Width: 16})
	}
	return cols
}

// createTable creates a new table with appropriate columns.
func (m *ScoreboardModel) createTable() table.Model {
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)), // Title, stats, help and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadScores loads scores and stats for the given game ID.
func (m *ScoreboardModel) loadScores(gameID string) {
	m.scores = nil
	m.stats = nil
	if m.store != nil {
		if scores, err := m.store.TopScores(gameID, rankingLimit); err == nil {
			m.scores = scores
		}
		if stats, err := m.store.Stats(gameID); err == nil {
			m.stats = stats
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current scores.
func (m *ScoreboardModel) updateTableRows() {
	withDate := len(m.columns()) == 6
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		row := table.Row{
			fmt.Sprintf("#%d", i+1),
			s.PlayerName,
			m.text.Number(s.Score),
			strconv.Itoa(s.Round),
			strconv.Itoa(s.Balls),
		}
		if withDate {
			row = append(row, s.CreatedAt.Format("2006-01-02 15:04"))
		}
		rows[i] = row
	}
	m.table.SetRows(rows)

	// Reset cursor to top
	m.table.GotoTop()
}

// cycleMode moves to the neighbouring mode and reloads its ranking.
func (m *ScoreboardModel) cycleMode(delta int) {
	n := len(m.games)
	if n == 0 {
		return
	}
	m.gameCursor = ((m.gameCursor+delta)%n + n) % n
	m.loadScores(m.games[m.gameCursor].ID)
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Next):
			m.cycleMode(1)
			return m, nil

		case key.Matches(msg, m.keys.Prev):
			m.cycleMode(-1)
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := m.text.T("ranking_title")
	if len(m.games) > 0 {
		title = fmt.Sprintf("%s - %s", title, m.games[m.gameCursor].Title)
	}

	body := m.table.View()
	if len(m.scores) == 0 {
		body = rankingEmptyStyle.Render(m.text.T("no_scores"))
	}

	parts := []string{
		centerText(rankingTitleStyle.Render(title), m.width),
		"",
		centerText(rankingFrameStyle.Render(body), m.width),
	}
	if line := m.statsLine(); line != "" {
		parts = append(parts, centerText(menuHintStyle.Render(line), m.width))
	}
	parts = append(parts, "", rankingHelpStyle.Render(m.help.View(m.keys)))

	return strings.Join(parts, "\n")
}

// statsLine summarizes the selected mode.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("%s: %s  %s: %.1f  %s: %d",
		m.text.T("games_played"), m.text.Number(m.stats.GamesCount),
		m.text.T("avg_score"), m.stats.AvgScore,
		m.text.T("best_round"), m.stats.HighestRound)
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int, language string) (goBack bool, err error) {
	model := NewScoreboardModel(store, width, height, language)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
