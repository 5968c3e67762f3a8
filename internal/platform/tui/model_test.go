package tui

import (
	"errors"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/spinball/internal/core"
	"github.com/vovakirdan/spinball/internal/storage"
)

// scriptedGame reports whatever state the test sets.
type scriptedGame struct {
	state  core.GameState
	resets int
	steps  []core.InputFrame
	lang   string
	width  int
}

func (g *scriptedGame) ID() string { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }
func (g *scriptedGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *scriptedGame) Render(dst *core.Screen) { dst.Clear() }
func (g *scriptedGame) State() core.GameState { return g.state }
func (g *scriptedGame) SetLanguage(code string) { g.lang = code }
func (g *scriptedGame) Resize(width, height int) { g.width = width }

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.steps = append(g.steps, in.Clone())
	return core.StepResult{State: g.state}
}

type fakeRecorder struct {
	runs []storage.Run
	err  error
}

func (r *fakeRecorder) RecordRun(gameID string, run storage.Run) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.runs = append(r.runs, run)
	return int64(len(r.runs)), nil
}

func testOptions(rec ScoreRecorder) Options {
	return Options{
		Store:      rec,
		Logger:     log.New(io.Discard),
		Language:   "en",
		PlayerName: "kim",
	}
}

func newTestModel(g *scriptedGame, opts Options) Model {
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, opts)
	m.Init()
	return m
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return out
}

func finish(g *scriptedGame, score int) {
	g.state = core.GameState{Score: score, Round: 3, Balls: 4, GameOver: true}
}

func TestModelSetsLanguage(t *testing.T) {
	g := &scriptedGame{}
	newTestModel(g, testOptions(nil))
	if g.lang != "en" {
		t.Errorf("language = %q, want en", g.lang)
	}
	if g.resets != 1 {
		t.Errorf("Init should reset once, got %d", g.resets)
	}
}

func TestModelPassesInput(t *testing.T) {
	g := &scriptedGame{}
	m := newTestModel(g, testOptions(nil))

	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = send(t, m, tea.MouseMsg{X: 4, Y: 9, Action: tea.MouseActionMotion})
	m = send(t, m, TickMsg{})

	if len(g.steps) != 1 {
		t.Fatalf("expected 1 step, got %d", len(g.steps))
	}
	in := g.steps[0]
	if !in.Has(core.ActionLaunch) || !in.Pointer.Valid || in.Pointer.X != 4 {
		t.Errorf("unexpected frame: %+v", in)
	}

	send(t, m, TickMsg{})
	if g.steps[1].Has(core.ActionLaunch) {
		t.Error("input should be cleared after a tick")
	}
}

func TestModelNameEntrySavesOnce(t *testing.T) {
	g := &scriptedGame{}
	rec := &fakeRecorder{}
	m := newTestModel(g, testOptions(rec))

	finish(g, 120)
	m = send(t, m, TickMsg{})
	if !m.NameEntryActive() {
		t.Fatal("name entry should open at game over")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("!")})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.NameEntryActive() {
		t.Error("name entry should close after saving")
	}
	if len(rec.runs) != 1 {
		t.Fatalf("expected 1 saved run, got %d", len(rec.runs))
	}
	want := storage.Run{PlayerName: "kim!", Score: 120, Round: 3, Balls: 4}
	if rec.runs[0] != want {
		t.Errorf("saved %+v, want %+v", rec.runs[0], want)
	}
	if !strings.Contains(m.View(), "Score saved") {
		t.Error("view should confirm the save")
	}

	// Still game over: no second prompt or save.
	m = send(t, m, TickMsg{})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.NameEntryActive() || len(rec.runs) != 1 {
		t.Error("a run must be saved at most once")
	}

	// Restart and finish again.
	g.state = core.GameState{Round: 1, Balls: 1}
	m = send(t, m, TickMsg{})
	finish(g, 30)
	m = send(t, m, TickMsg{})
	if !m.NameEntryActive() {
		t.Error("a new run should open the name entry again")
	}
}

func TestModelNameEntryRejectsEmptyName(t *testing.T) {
	g := &scriptedGame{}
	rec := &fakeRecorder{}
	opts := testOptions(rec)
	opts.PlayerName = "   "
	m := newTestModel(g, opts)

	finish(g, 50)
	m = send(t, m, TickMsg{})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if !m.NameEntryActive() {
		t.Error("empty name should keep the prompt open")
	}
	if len(rec.runs) != 0 {
		t.Error("empty name must not be saved")
	}
	if !strings.Contains(m.View(), "Name cannot be empty") {
		t.Error("view should explain the empty name")
	}
}

func TestModelNameEntrySkip(t *testing.T) {
	g := &scriptedGame{}
	rec := &fakeRecorder{}
	m := newTestModel(g, testOptions(rec))

	finish(g, 50)
	m = send(t, m, TickMsg{})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.NameEntryActive() || len(rec.runs) != 0 {
		t.Error("esc should skip saving")
	}
	m = send(t, m, TickMsg{})
	if m.NameEntryActive() {
		t.Error("skipped run should not prompt again")
	}
}

func TestModelSaveFailure(t *testing.T) {
	g := &scriptedGame{}
	rec := &fakeRecorder{err: errors.New("disk full")}
	m := newTestModel(g, testOptions(rec))

	finish(g, 70)
	m = send(t, m, TickMsg{})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.NameEntryActive() {
		t.Error("failed save should close the prompt")
	}
	if !strings.Contains(m.View(), "Not saved") {
		t.Error("view should report the failed save")
	}
}

func TestModelNoPromptWithoutStoreOrScore(t *testing.T) {
	g := &scriptedGame{}
	m := newTestModel(g, testOptions(nil))
	finish(g, 100)
	m = send(t, m, TickMsg{})
	if m.NameEntryActive() {
		t.Error("no store means no name entry")
	}

	g2 := &scriptedGame{}
	m2 := newTestModel(g2, testOptions(&fakeRecorder{}))
	finish(g2, 0)
	m2 = send(t, m2, TickMsg{})
	if m2.NameEntryActive() {
		t.Error("zero score means no name entry")
	}
}

func TestModelBack(t *testing.T) {
	g := &scriptedGame{state: core.GameState{Paused: true}}
	opts := testOptions(nil)
	opts.AllowBack = true
	m := newTestModel(g, opts)
	m = send(t, m, TickMsg{})

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() || m.IsQuitting() {
		t.Error("esc while paused should go back to the menu")
	}

	g2 := &scriptedGame{state: core.GameState{Paused: true}}
	m2 := newTestModel(g2, testOptions(nil))
	m2 = send(t, m2, TickMsg{})
	m2 = send(t, m2, tea.KeyMsg{Type: tea.KeyEsc})
	if !m2.IsQuitting() {
		t.Error("without a menu, back should quit")
	}

	g3 := &scriptedGame{}
	m3 := newTestModel(g3, opts)
	m3 = send(t, m3, tea.KeyMsg{Type: tea.KeyEsc})
	if m3.BackToMenu() || m3.IsQuitting() {
		t.Error("back during play should be ignored")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	g := &scriptedGame{}
	m := newTestModel(g, testOptions(nil))

	send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if g.width != 100 {
		t.Errorf("game width = %d, want 100", g.width)
	}
	if g.resets != 1 {
		t.Error("resizable games should not be reset")
	}
}

func TestModelScreenshot(t *testing.T) {
	g := &scriptedGame{}
	opts := testOptions(nil)
	opts.ScreenshotDir = t.TempDir()
	m := newTestModel(g, opts)

	path, err := m.saveScreenshot()
	if err != nil {
		t.Fatalf("saveScreenshot() failed: %v", err)
	}
	if !strings.HasPrefix(path, opts.ScreenshotDir) || !strings.HasSuffix(path, ".txt") {
		t.Errorf("unexpected screenshot path %q", path)
	}
}
