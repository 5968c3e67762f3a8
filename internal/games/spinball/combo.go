package spinball

import (
	"math"

	"github.com/vovakirdan/spinball/internal/config"
)

// ComboTracker chains destroyed blocks of the same tier into a score
// multiplier.
type ComboTracker struct {
	Count      int
	Multiplier float64
	LastTier   Tier
	HasLast    bool
	LastHitMs  float64

	cfg config.SpinballCombo
}

// NewComboTracker creates an empty tracker.
func NewComboTracker(cfg config.SpinballCombo) *ComboTracker {
	return &ComboTracker{Multiplier: 1, cfg: cfg}
}

// Add records a destroyed block and returns the points to credit.
//
// A block of the same tier inside the window extends the chain. Outside
// the window the chain restarts at 2, since the previous block of that
// tier still counts. A different tier starts a new chain at 1.
func (c *ComboTracker) Add(basePoints int, tier Tier, nowMs float64) int {
	switch {
	case c.HasLast && tier == c.LastTier && nowMs-c.LastHitMs <= c.cfg.WindowMs:
		c.Count++
	case c.HasLast && tier == c.LastTier:
		c.Count = 2
	default:
		c.Count = 1
	}

	c.Multiplier = 1
	if c.Count >= c.cfg.MinCount {
		c.Multiplier = math.Min(c.cfg.MaxMultiplier,
			c.cfg.BaseMultiplier+float64(c.Count-c.cfg.MinCount)*c.cfg.Step)
	}

	c.LastTier = tier
	c.HasLast = true
	c.LastHitMs = nowMs

	return int(math.Floor(float64(basePoints) * c.Multiplier))
}

// Decay drops the chain once the window has passed without a hit.
func (c *ComboTracker) Decay(nowMs float64) {
	if !c.HasLast {
		return
	}
	if nowMs-c.LastHitMs > c.cfg.WindowMs {
		c.Reset()
	}
}

// Active reports whether the multiplier is currently boosting points.
func (c *ComboTracker) Active() bool {
	return c.Multiplier > 1
}

// Reset clears the chain.
func (c *ComboTracker) Reset() {
	c.Count = 0
	c.Multiplier = 1
	c.HasLast = false
	c.LastHitMs = 0
}
