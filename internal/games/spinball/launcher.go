package spinball

// LauncherState tracks whether a volley is being fired.
type LauncherState int

const (
	LauncherIdle LauncherState = iota
	LauncherLaunching
)

// Launcher staggers the balls of one volley in time.
type Launcher struct {
	state   LauncherState
	startMs float64
	fired   int
	delayMs float64
}

// NewLauncher creates an idle launcher with the given delay between balls.
func NewLauncher(delayMs float64) *Launcher {
	return &Launcher{delayMs: delayMs}
}

// State returns the launcher state.
func (l *Launcher) State() LauncherState {
	return l.state
}

// Fired returns how many balls of the current volley have left the launcher.
func (l *Launcher) Fired() int {
	return l.fired
}

// Start begins a volley and fires the first ball immediately.
// Does nothing while a volley is already in progress.
func (l *Launcher) Start(nowMs float64, fire func()) bool {
	if l.state != LauncherIdle {
		return false
	}
	l.state = LauncherLaunching
	l.startMs = nowMs
	l.fired = 1
	fire()
	return true
}

// Update fires every ball whose slot has come due. Ball n (0-based) is
// due at startMs + n*delay.
func (l *Launcher) Update(nowMs float64, ballCount int, fire func()) {
	if l.state != LauncherLaunching {
		return
	}
	for l.fired < ballCount && nowMs-l.startMs >= float64(l.fired)*l.delayMs {
		fire()
		l.fired++
	}
}

// Finished reports whether the whole volley was fired and has landed.
// It returns the launcher to idle when it does.
func (l *Launcher) Finished(ballCount, active int) bool {
	if l.state != LauncherLaunching {
		return false
	}
	if l.fired < ballCount || active > 0 {
		return false
	}
	l.state = LauncherIdle
	l.fired = 0
	return true
}

// Reset drops any volley in progress.
func (l *Launcher) Reset() {
	l.state = LauncherIdle
	l.startMs = 0
	l.fired = 0
}
