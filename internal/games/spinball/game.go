// Package spinball implements SpinBall: aim a launcher, fire a volley of
// balls and break the numbered blocks before they reach the floor.
//
// The simulation runs on field pixels (400x700 by default) at a fixed tick
// and is scaled into terminal cells only when rendering.
package spinball

import (
	"math"
	"slices"

	"github.com/vovakirdan/spinball/internal/config"
	"github.com/vovakirdan/spinball/internal/core"
	"github.com/vovakirdan/spinball/internal/locale"
	"github.com/vovakirdan/spinball/internal/registry"
)

// Phase is the state machine position of a run.
type Phase int

const (
	PhaseTitle     Phase = iota // Waiting for the player to start
	PhaseAiming                 // Launcher idle, aim can change
	PhaseResolving              // Volley in flight
	PhaseShop                   // Round complete, shop open
	PhasePaused
	PhaseGameOver
)

// String returns the name of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseTitle:
		return "title"
	case PhaseAiming:
		return "aiming"
	case PhaseResolving:
		return "resolving"
	case PhaseShop:
		return "shop"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// GameMode represents the game mode.
type GameMode int

const (
	ModeClassic  GameMode = iota // Fixed ball speed
	ModeSurvival                 // Ball speed grows with the round
)

// Game IDs as registered.
const (
	IDClassic  = "spinball"
	IDSurvival = "spinball_survival"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// ballSpeed overrides the configured ball speed when positive
var ballSpeed float64

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetBallSpeed overrides the base ball speed; zero restores the configured one.
func SetBallSpeed(speed float64) {
	ballSpeed = speed
}

// Game implements the SpinBall round simulation.
type Game struct {
	mode GameMode

	// Entities
	balls   []*Ball
	blocks  []*Block
	bonuses []*BonusItem

	// Subsystems
	rng      *SimpleRNG
	gen      *Generator
	launcher *Launcher
	combo    *ComboTracker
	shop     *Shop
	powerups Powerups

	// Run state
	phase          Phase
	pausedFrom     Phase
	tick           int
	score          int
	highScore      int
	round          int
	ballCount      int
	bonusCollected int
	aimAngle       float64
	volleyAngle    float64
	launchX        float64
	lastDropX      float64
	speedScale     float64
	shopErr        error

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.SpinballConfig
	fixedCfg   *config.SpinballConfig
	field      Field
	difficulty *config.Ramp
	text       *locale.Catalog

	// Layout
	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a classic SpinBall game.
func New() *Game {
	return &Game{mode: ModeClassic, text: locale.New("")}
}

// NewSurvival creates a SpinBall game whose ball speed grows each round.
func NewSurvival() *Game {
	return &Game{mode: ModeSurvival, text: locale.New("")}
}

// NewWithConfig creates a game that uses cfg as is instead of loading
// configuration files on Reset.
func NewWithConfig(mode GameMode, cfg config.SpinballConfig) *Game {
	return &Game{mode: mode, fixedCfg: &cfg, text: locale.New("")}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeSurvival {
		return IDSurvival
	}
	return IDClassic
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeSurvival {
		return "SpinBall (Survival)"
	}
	return "SpinBall"
}

// SetLanguage switches the language used by Render.
func (g *Game) SetLanguage(code string) {
	g.text = locale.New(code)
}

// Resize adapts rendering to a new terminal size without touching the run.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.screenTooSmall = width < g.minScreenW || height < g.minScreenH
}

// Reset initializes the game and shows the title screen.
// The high score survives resets.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if g.runtime.TickRate <= 0 {
		g.runtime.TickRate = 60
	}

	g.cfg = g.loadConfig()
	g.field = Field{
		Width:    g.cfg.Field.Width,
		Height:   g.cfg.Field.Height,
		TopUI:    g.cfg.Field.TopUI,
		BottomUI: g.cfg.Field.BottomUI,
	}
	g.difficulty = config.NewRamp(g.cfg.Difficulty)

	g.minScreenW = 24
	g.minScreenH = 16
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	g.rng = NewSimpleRNG(runtime.Seed)
	g.gen = NewGenerator(g.cfg.Board, g.cfg.Blocks, g.rng)
	g.launcher = NewLauncher(g.cfg.Launch.DelayMs)
	g.combo = NewComboTracker(g.cfg.Combo)
	g.shop = NewShop(g.cfg.Shop)

	g.startRun()
	g.phase = PhaseTitle
}

func (g *Game) loadConfig() config.SpinballConfig {
	if g.fixedCfg != nil {
		return *g.fixedCfg
	}

	cfg, err := config.LoadSpinball(configPath)
	if err != nil {
		cfg = config.DefaultSpinballConfig()
	}
	config.ApplyBallSpeed(&cfg, ballSpeed)
	if difficultyPreset != "" {
		config.ApplySpinballPreset(&cfg, difficultyPreset)
	}
	return cfg
}

// startRun puts a fresh round 1 on the board.
func (g *Game) startRun() {
	g.balls = g.balls[:0]
	g.blocks = g.blocks[:0]
	g.bonuses = g.bonuses[:0]
	g.launcher.Reset()
	g.combo.Reset()
	g.shop.Reset()
	g.powerups = Powerups{}
	g.shopErr = nil

	g.tick = 0
	g.score = 0
	g.round = 1
	g.ballCount = g.cfg.Ball.StartCount
	g.bonusCollected = 0
	g.aimAngle = 90
	g.launchX = g.field.Width / 2
	g.lastDropX = g.launchX
	g.updateSpeedScale()

	g.spawnRow()
}

func (g *Game) spawnRow() {
	blocks, bonus := g.gen.GenerateRow(g.round)
	g.blocks = append(g.blocks, blocks...)
	if bonus != nil {
		g.bonuses = append(g.bonuses, bonus)
	}
}

func (g *Game) updateSpeedScale() {
	g.speedScale = 1
	if g.mode == ModeSurvival {
		g.speedScale = g.difficulty.SpeedScale(g.round, g.score)
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	switch g.phase {
	case PhaseTitle:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionLaunch) {
			g.phase = PhaseAiming
		}
		return core.StepResult{State: g.State()}

	case PhaseGameOver:
		if in.Has(core.ActionRestart) {
			g.startRun()
			g.phase = PhaseAiming
		}
		return core.StepResult{State: g.State()}

	case PhasePaused:
		if in.Has(core.ActionPause) {
			g.phase = g.pausedFrom
		}
		return core.StepResult{State: g.State()}

	case PhaseShop:
		g.updateShop(in)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.pausedFrom = g.phase
		g.phase = PhasePaused
		return core.StepResult{State: g.State()}
	}

	if g.phase == PhaseAiming {
		g.updateAim(in)
	}

	g.tick++
	nowMs := float64(g.tick) * 1000 / float64(g.runtime.TickRate)

	if g.phase == PhaseAiming && in.Has(core.ActionLaunch) {
		g.volleyAngle = g.aimAngle
		if g.launcher.Start(nowMs, g.fireBall) {
			g.phase = PhaseResolving
		}
	}

	g.simulate(nowMs)

	return core.StepResult{State: g.State()}
}

// simulate runs one tick of the round in a fixed order: shop effects,
// launcher, motion, blocks, bonuses, combo decay and the last-ball clear,
// compaction, round end, then the floor check.
func (g *Game) simulate(nowMs float64) {
	// Shop purchases land on the first tick after the shop closes.
	if g.shop.Apply(&g.powerups) {
		for _, b := range g.blocks {
			b.Destroy()
		}
	}

	g.launcher.Update(nowMs, g.ballCount, g.fireBall)

	mods := g.modifiers()
	for _, ball := range g.balls {
		if MoveBall(ball, g.field, mods) {
			g.lastDropX = ball.X
		}
	}

	g.resolveBlocks(mods, nowMs)

	for _, ball := range g.balls {
		for _, bonus := range g.bonuses {
			if ResolveBonusPickup(ball, bonus) && bonus.Collect() {
				g.bonusCollected++
			}
		}
	}

	g.combo.Decay(nowMs)
	if g.powerups.ClearOnLastBall && g.launcher.Fired() >= g.ballCount && g.activeBalls() == 1 {
		for _, b := range g.blocks {
			b.Destroy()
		}
		g.powerups.ClearOnLastBall = false
	}

	g.compact()

	if g.launcher.Finished(g.ballCount, g.activeBalls()) {
		g.advanceRound()
		g.shop.Open()
		g.shopErr = nil
		g.phase = PhaseShop
	}

	if g.reachedFloor() {
		g.phase = PhaseGameOver
		g.highScore = max(g.highScore, g.score)
	}
}

// resolveBlocks tests every ball against a snapshot of the block list so
// destructions during the pass do not shift the iteration.
func (g *Game) resolveBlocks(mods Modifiers, nowMs float64) {
	rules := HitRules{
		GhostPassChance: g.cfg.Blocks.GhostPassChance,
		ShieldHits:      g.cfg.Blocks.ShieldHits,
	}
	blocks := slices.Clone(g.blocks)

	for _, ball := range g.balls {
		for _, block := range blocks {
			if ResolveBlockCollision(ball, block, mods, g.rng, rules) != HitDestroyed {
				continue
			}
			g.credit(block, nowMs)
			if block.Type == BlockBomb {
				g.detonate(block, nowMs)
			}
		}
	}
}

// detonate destroys every active block around a bomb. Bombs caught in the
// blast do not detonate in turn.
func (g *Game) detonate(bomb *Block, nowMs float64) {
	radius := g.cfg.Board.BlockSize + g.cfg.Board.BlockMargin + g.cfg.Blocks.BombSlack
	for _, other := range g.blocks {
		if other == bomb || !other.Active {
			continue
		}
		if InBlastRadius(bomb, other, radius) && other.Destroy() {
			g.credit(other, nowMs)
		}
	}
}

func (g *Game) credit(b *Block, nowMs float64) {
	g.score += g.combo.Add(b.Points(), b.Tier(), nowMs)
}

func (g *Game) compact() {
	g.balls = slices.DeleteFunc(g.balls, func(b *Ball) bool { return !b.Active })
	g.blocks = slices.DeleteFunc(g.blocks, func(b *Block) bool { return !b.Active })
	g.bonuses = slices.DeleteFunc(g.bonuses, func(b *BonusItem) bool { return !b.Active })
}

// advanceRound shifts the board down one row and prepares the next volley.
func (g *Game) advanceRound() {
	pitch := g.gen.Pitch()
	for _, b := range g.blocks {
		b.MoveDown(pitch)
	}
	for _, b := range g.bonuses {
		b.MoveDown(pitch)
	}

	g.spawnRow()
	g.round++

	g.ballCount += g.bonusCollected
	g.bonusCollected = 0
	g.powerups = Powerups{}
	g.launchX = core.ClampF(g.lastDropX, g.cfg.Launch.Margin, g.field.Width-g.cfg.Launch.Margin)
	g.updateSpeedScale()
}

// reachedFloor reports whether any block or bonus touches the floor band.
func (g *Game) reachedFloor() bool {
	floor := g.field.Floor()
	for _, b := range g.blocks {
		if b.Active && b.Bottom() >= floor {
			return true
		}
	}
	for _, b := range g.bonuses {
		if b.Active && b.Bottom() >= floor {
			return true
		}
	}
	return false
}

func (g *Game) fireBall() {
	dx, dy := LaunchVelocity(g.volleyAngle, g.cfg.Ball.Speed)
	g.balls = append(g.balls, NewBall(g.launchX, g.launchY(), dx, dy, g.cfg.Ball.Radius, g.cfg.Ball.TrailLength))
}

func (g *Game) launchY() float64 {
	return g.field.Floor() - g.cfg.Ball.Radius - 2
}

func (g *Game) modifiers() Modifiers {
	return Modifiers{
		DoubleDamage: g.powerups.DoubleDamage,
		DoubleSpeed:  g.powerups.DoubleSpeed,
		SpeedScale:   g.speedScale,
	}
}

func (g *Game) activeBalls() int {
	n := 0
	for _, b := range g.balls {
		if b.Active {
			n++
		}
	}
	return n
}

// updateAim applies keyboard and pointer aiming.
func (g *Game) updateAim(in core.InputFrame) {
	if in.Has(core.ActionLeft) {
		g.aimAngle += g.cfg.Launch.AimStep
	}
	if in.Has(core.ActionRight) {
		g.aimAngle -= g.cfg.Launch.AimStep
	}
	if in.Pointer.Valid {
		if angle, ok := g.pointerAngle(in.Pointer); ok {
			g.aimAngle = angle
		}
	}
	g.aimAngle = core.ClampF(g.aimAngle, g.cfg.Launch.MinAngle, g.cfg.Launch.MaxAngle)
}

// pointerAngle converts a pointer cell into an aim angle from the launch point.
func (g *Game) pointerAngle(p core.Pointer) (float64, bool) {
	fx, fy, ok := g.layout().toField(p.X, p.Y)
	if !ok {
		return 0, false
	}
	dx := fx - g.launchX
	dy := g.launchY() - fy
	if dx == 0 && dy == 0 {
		return 0, false
	}
	angle := math.Atan2(dy, dx) * 180 / math.Pi
	// Below the launch line: snap to the side the pointer is on.
	if angle < 0 {
		if dx < 0 {
			angle = 180
		} else {
			angle = 0
		}
	}
	return angle, true
}

// updateShop handles purchases and closing the shop. No simulation runs.
func (g *Game) updateShop(in core.InputFrame) {
	for slot, action := range core.BuyActions {
		if !in.Has(action) {
			continue
		}
		item, ok := g.shop.ItemAt(slot)
		if !ok {
			continue
		}
		g.shopErr = g.shop.Buy(item.Effect, &g.score, g.powerups)
	}

	if in.Has(core.ActionConfirm) || in.Has(core.ActionLaunch) {
		g.shop.Close()
		g.shopErr = nil
		g.phase = PhaseAiming
	}
}

// Buy purchases an effect while the shop is open.
func (g *Game) Buy(effect PowerupEffect) error {
	return g.shop.Buy(effect, &g.score, g.powerups)
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Round:    g.round,
		Balls:    g.ballCount,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.phase == PhasePaused,
	}
}

// Register the games with the registry
func init() {
	registry.Register(IDClassic, func() registry.Game {
		return New()
	})
	registry.Register(IDSurvival, func() registry.Game {
		return NewSurvival()
	})
}
