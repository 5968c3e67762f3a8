package spinball

import (
	"math"

	"github.com/vovakirdan/spinball/internal/core"
)

// Field is the play area in pixels. Balls live between TopUI and
// Height-BottomUI.
type Field struct {
	Width    float64
	Height   float64
	TopUI    float64
	BottomUI float64
}

// Floor returns the y-coordinate where balls leave play and blocks end the run.
func (f Field) Floor() float64 {
	return f.Height - f.BottomUI
}

// MoveBall advances a ball by one tick and applies boundary response.
// Side walls flip DX without moving the ball back inside, so a very fast
// ball may sit slightly past a wall for a tick. The ceiling always sends
// the ball down. Reports true when the ball crossed the floor this tick.
func MoveBall(b *Ball, f Field, mods Modifiers) bool {
	if !b.Active {
		return false
	}

	b.Move(mods.SpeedMultiplier())

	if b.X-b.Radius <= 0 || b.X+b.Radius >= f.Width {
		b.DX = -b.DX
	}
	if b.Y-b.Radius <= f.TopUI {
		b.DY = math.Abs(b.DY)
	}
	if b.Y+b.Radius >= f.Floor() {
		b.Active = false
		return true
	}
	return false
}

// ResolveBlockCollision checks one ball against one block and applies the
// response. On contact the ball reflects on the axis with the larger
// center offset and is pushed one pixel clear of that edge. Ghost blocks
// are rolled before any response; a pass-through leaves the ball as is.
func ResolveBlockCollision(ball *Ball, block *Block, mods Modifiers, rng Random, rules HitRules) HitOutcome {
	if !ball.Active || !block.Active {
		return HitNone
	}
	if !ball.Bounds().Intersects(block.Rect()) {
		return HitNone
	}

	if block.Type == BlockGhost {
		outcome := block.Hit(mods, rng, rules)
		if outcome == HitPassThrough {
			return outcome
		}
		reflectOffBlock(ball, block.Rect())
		return outcome
	}

	reflectOffBlock(ball, block.Rect())
	return block.Hit(mods, rng, rules)
}

func reflectOffBlock(ball *Ball, r core.RectF) {
	cx, cy := r.Center()
	dx := ball.X - cx
	dy := ball.Y - cy

	if math.Abs(dx) > math.Abs(dy) {
		ball.DX = -ball.DX
		if dx > 0 {
			ball.X = r.Right() + ball.Radius + 1
		} else {
			ball.X = r.X - ball.Radius - 1
		}
		return
	}

	ball.DY = -ball.DY
	if dy > 0 {
		ball.Y = r.Bottom() + ball.Radius + 1
	} else {
		ball.Y = r.Y - ball.Radius - 1
	}
}

// ResolveBonusPickup reports whether the ball touches the bonus item.
// The ball is not deflected.
func ResolveBonusPickup(ball *Ball, bonus *BonusItem) bool {
	if !ball.Active || !bonus.Active {
		return false
	}
	return core.Distance(ball.X, ball.Y, bonus.X, bonus.Y) <= ball.Radius+bonus.Radius
}

// InBlastRadius reports whether other's center is within radius of bomb's center.
func InBlastRadius(bomb, other *Block, radius float64) bool {
	bx, by := bomb.Center()
	ox, oy := other.Center()
	return core.Distance(bx, by, ox, oy) <= radius
}

// LaunchVelocity returns the initial velocity for an aim angle in degrees.
// 90 degrees fires straight up.
func LaunchVelocity(angleDeg, speed float64) (dx, dy float64) {
	rad := angleDeg * math.Pi / 180
	return speed * math.Cos(rad), -speed * math.Sin(rad)
}
