package spinball

import (
	"math"

	"github.com/vovakirdan/spinball/internal/core"
)

// BlockType selects a block's hit behavior.
type BlockType int

const (
	BlockNormal BlockType = iota
	BlockBomb             // Destroys its neighbours when it breaks
	BlockShield           // Absorbs the first hits without damage
	BlockGhost            // Lets some balls pass straight through
)

// String returns the name of the block type.
func (t BlockType) String() string {
	switch t {
	case BlockNormal:
		return "normal"
	case BlockBomb:
		return "bomb"
	case BlockShield:
		return "shield"
	case BlockGhost:
		return "ghost"
	default:
		return "unknown"
	}
}

// ScoreBonus is the factor applied to a block's base value.
func (t BlockType) ScoreBonus() int {
	switch t {
	case BlockBomb, BlockGhost:
		return 2
	case BlockShield:
		return 3
	default:
		return 1
	}
}

// Tier is the color band of a block, derived from its health.
// Combos chain on destroyed blocks of the same tier.
type Tier int

const (
	TierBlue Tier = iota
	TierGreen
	TierYellow
	TierOrange
	TierRed
)

// TierFor maps a health value to its color band.
func TierFor(health int) Tier {
	switch {
	case health >= 10:
		return TierRed
	case health >= 7:
		return TierOrange
	case health >= 4:
		return TierYellow
	case health >= 2:
		return TierGreen
	default:
		return TierBlue
	}
}

// Color returns the screen color for the tier.
func (t Tier) Color() core.Color {
	switch t {
	case TierRed:
		return core.ColorRed
	case TierOrange:
		return core.ColorOrange
	case TierYellow:
		return core.ColorYellow
	case TierGreen:
		return core.ColorGreen
	default:
		return core.ColorBlue
	}
}

// Point is a position in field pixels.
type Point struct {
	X, Y float64
}

// Ball is one projectile of a volley.
type Ball struct {
	X, Y   float64
	DX, DY float64
	Radius float64
	Active bool
	Trail  []Point // Recent positions, oldest first; rendering only
}

// NewBall creates an active ball. Non-finite coordinates are zeroed and a
// non-positive radius becomes 1 so the resolver never sees a malformed ball.
func NewBall(x, y, dx, dy, radius float64, trailLen int) *Ball {
	if radius <= 0 || !finite(radius) {
		radius = 1
	}
	return &Ball{
		X:      finiteOr(x, 0),
		Y:      finiteOr(y, 0),
		DX:     finiteOr(dx, 0),
		DY:     finiteOr(dy, 0),
		Radius: radius,
		Active: true,
		Trail:  make([]Point, 0, max(trailLen, 0)),
	}
}

// Move integrates one tick of motion scaled by mult and records the trail.
func (b *Ball) Move(mult float64) {
	b.pushTrail()
	b.X += b.DX * mult
	b.Y += b.DY * mult
}

func (b *Ball) pushTrail() {
	limit := cap(b.Trail)
	if limit == 0 {
		return
	}
	p := Point{X: b.X, Y: b.Y}
	if len(b.Trail) < limit {
		b.Trail = append(b.Trail, p)
		return
	}
	copy(b.Trail, b.Trail[1:])
	b.Trail[limit-1] = p
}

// Bounds returns the bounding box of the ball's circle.
func (b *Ball) Bounds() core.RectF {
	return core.RectF{
		X: b.X - b.Radius,
		Y: b.Y - b.Radius,
		W: b.Radius * 2,
		H: b.Radius * 2,
	}
}

// Block is a numbered target. Health never increases once created.
type Block struct {
	X, Y            float64 // Top-left corner
	Size            float64
	Health          int
	MaxHealth       int
	Type            BlockType
	Active          bool
	ShieldHitsTaken int
}

// NewBlock creates an active block; health below 1 is raised to 1.
func NewBlock(x, y, size float64, health int, t BlockType) *Block {
	health = max(health, 1)
	return &Block{
		X:         x,
		Y:         y,
		Size:      size,
		Health:    health,
		MaxHealth: health,
		Type:      t,
		Active:    true,
	}
}

// Rect returns the block's square.
func (b *Block) Rect() core.RectF {
	return core.RectF{X: b.X, Y: b.Y, W: b.Size, H: b.Size}
}

// Center returns the center of the block.
func (b *Block) Center() (float64, float64) {
	return b.Rect().Center()
}

// Bottom returns the y-coordinate of the block's lower edge.
func (b *Block) Bottom() float64 {
	return b.Y + b.Size
}

// Tier is the combo tier of the block, fixed at creation from MaxHealth.
func (b *Block) Tier() Tier {
	return TierFor(b.MaxHealth)
}

// Color is the display color, which cools down as the block loses health.
func (b *Block) Color() core.Color {
	return TierFor(b.Health).Color()
}

// Points is the base score for destroying the block, before combo.
func (b *Block) Points() int {
	return b.MaxHealth * 10 * b.Type.ScoreBonus()
}

// Destroy removes the block regardless of health or type.
// Reports false if the block was already gone.
func (b *Block) Destroy() bool {
	if !b.Active {
		return false
	}
	b.Health = 0
	b.Active = false
	return true
}

// MoveDown shifts the block by dist pixels.
func (b *Block) MoveDown(dist float64) {
	b.Y += dist
}

// BonusItem adds one ball to the next volley when touched.
type BonusItem struct {
	X, Y      float64 // Center
	Radius    float64
	Active    bool
	Collected bool
}

// NewBonus creates an active bonus item centered at (x, y).
func NewBonus(x, y, radius float64) *BonusItem {
	if radius <= 0 {
		radius = 1
	}
	return &BonusItem{X: x, Y: y, Radius: radius, Active: true}
}

// Collect marks the bonus as picked up. Reports false if it already was.
func (b *BonusItem) Collect() bool {
	if !b.Active {
		return false
	}
	b.Active = false
	b.Collected = true
	return true
}

// Bottom returns the y-coordinate of the bonus item's lower edge.
func (b *BonusItem) Bottom() float64 {
	return b.Y + b.Radius
}

// MoveDown shifts the bonus by dist pixels.
func (b *BonusItem) MoveDown(dist float64) {
	b.Y += dist
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func finiteOr(v, fallback float64) float64 {
	if finite(v) {
		return v
	}
	return fallback
}
