package spinball

import (
	"math"
	"slices"
)

// Snapshot is a read-only copy of everything a renderer or a test needs.
// Mutating it never affects the game.
type Snapshot struct {
	Tick       uint64
	Phase      Phase
	Mode       GameMode
	Score      int
	HighScore  int
	Round      int
	BallCount  int
	Bonus      int // Bonus balls collected this round
	AimAngle   float64
	LaunchX    float64
	LaunchY    float64
	SpeedScale float64

	ComboCount      int
	ComboMultiplier float64

	Powerups  Powerups
	ShopItems []ShopItem
	Pending   []PowerupEffect
	ShopErr   error

	Field   Field
	Balls   []Ball
	Blocks  []Block
	Bonuses []BonusItem

	RNGState uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	balls := make([]Ball, 0, len(g.balls))
	for _, b := range g.balls {
		if !b.Active {
			continue
		}
		c := *b
		c.Trail = slices.Clone(b.Trail)
		balls = append(balls, c)
	}

	blocks := make([]Block, 0, len(g.blocks))
	for _, b := range g.blocks {
		if b.Active {
			blocks = append(blocks, *b)
		}
	}

	bonuses := make([]BonusItem, 0, len(g.bonuses))
	for _, b := range g.bonuses {
		if b.Active {
			bonuses = append(bonuses, *b)
		}
	}

	var pending []PowerupEffect
	for _, it := range g.shop.Items() {
		if g.shop.Pending(it.Effect) {
			pending = append(pending, it.Effect)
		}
	}

	return Snapshot{
		Tick:       uint64(g.tick), //#nosec G115 -- tick count is always positive
		Phase:      g.phase,
		Mode:       g.mode,
		Score:      g.score,
		HighScore:  g.highScore,
		Round:      g.round,
		BallCount:  g.ballCount,
		Bonus:      g.bonusCollected,
		AimAngle:   g.aimAngle,
		LaunchX:    g.launchX,
		LaunchY:    g.launchY(),
		SpeedScale: g.speedScale,

		ComboCount:      g.combo.Count,
		ComboMultiplier: g.combo.Multiplier,

		Powerups:  g.powerups,
		ShopItems: g.shop.Items(),
		Pending:   pending,
		ShopErr:   g.shopErr,

		Field:   g.field,
		Balls:   balls,
		Blocks:  blocks,
		Bonuses: bonuses,

		RNGState: g.rng.State(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Phase)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Round)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallCount) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Bonus)     //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.AimAngle)
	h = h*31 + math.Float64bits(snap.LaunchX)
	h = h*31 + uint64(snap.ComboCount) //#nosec G115 -- hash computation

	for _, b := range snap.Balls {
		h = h*31 + math.Float64bits(b.X)
		h = h*31 + math.Float64bits(b.Y)
		h = h*31 + math.Float64bits(b.DX)
		h = h*31 + math.Float64bits(b.DY)
	}

	for _, b := range snap.Blocks {
		h = h*31 + math.Float64bits(b.X)
		h = h*31 + math.Float64bits(b.Y)
		h = h*31 + uint64(b.Health)          //#nosec G115 -- hash computation
		h = h*31 + uint64(b.Type)            //#nosec G115 -- hash computation
		h = h*31 + uint64(b.ShieldHitsTaken) //#nosec G115 -- hash computation
	}

	for _, b := range snap.Bonuses {
		h = h*31 + math.Float64bits(b.X)
		h = h*31 + math.Float64bits(b.Y)
	}

	h = h*31 + snap.RNGState

	return h
}
