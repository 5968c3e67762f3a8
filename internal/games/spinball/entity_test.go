package spinball

import (
	"math"
	"testing"

	"github.com/vovakirdan/spinball/internal/core"
)

func TestNewBallSanitizes(t *testing.T) {
	b := NewBall(math.NaN(), math.Inf(1), 3, math.NaN(), -2, 4)
	if b.X != 0 || b.Y != 0 || b.DY != 0 || b.DX != 3 {
		t.Errorf("non-finite values not zeroed: %+v", b)
	}
	if b.Radius != 1 {
		t.Errorf("radius = %v, expected 1", b.Radius)
	}
	if !b.Active {
		t.Error("new ball should be active")
	}
}

func TestBallTrailIsBounded(t *testing.T) {
	b := NewBall(0, 0, 1, 2, 8, 3)
	for range 10 {
		b.Move(1)
	}
	if len(b.Trail) != 3 {
		t.Fatalf("trail length = %d, expected 3", len(b.Trail))
	}
	// Oldest first; the newest entry is the position before the last move.
	if last := b.Trail[2]; last.X != 9 || last.Y != 18 {
		t.Errorf("newest trail point = %+v, expected {9 18}", last)
	}
	if b.X != 10 || b.Y != 20 {
		t.Errorf("ball at (%v, %v), expected (10, 20)", b.X, b.Y)
	}
}

func TestBallMoveScalesVelocity(t *testing.T) {
	b := NewBall(100, 100, 3, -4, 8, 0)
	b.Move(2)
	if b.X != 106 || b.Y != 92 {
		t.Errorf("ball at (%v, %v), expected (106, 92)", b.X, b.Y)
	}
	if len(b.Trail) != 0 {
		t.Error("zero-length trail should stay empty")
	}
}

func TestNewBlockClampsHealth(t *testing.T) {
	b := NewBlock(1, 120, 56, -5, BlockNormal)
	if b.Health != 1 || b.MaxHealth != 1 {
		t.Errorf("health = %d/%d, expected 1/1", b.Health, b.MaxHealth)
	}
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		health int
		tier   Tier
		color  core.Color
	}{
		{1, TierBlue, core.ColorBlue},
		{2, TierGreen, core.ColorGreen},
		{3, TierGreen, core.ColorGreen},
		{4, TierYellow, core.ColorYellow},
		{7, TierOrange, core.ColorOrange},
		{9, TierOrange, core.ColorOrange},
		{10, TierRed, core.ColorRed},
		{42, TierRed, core.ColorRed},
	}
	for _, tc := range tests {
		if got := TierFor(tc.health); got != tc.tier {
			t.Errorf("TierFor(%d) = %d, expected %d", tc.health, got, tc.tier)
		}
		if got := TierFor(tc.health).Color(); got != tc.color {
			t.Errorf("TierFor(%d).Color() = %d, expected %d", tc.health, got, tc.color)
		}
	}
}

func TestBlockTierFixedColorCools(t *testing.T) {
	b := NewBlock(0, 0, 56, 10, BlockNormal)
	b.Health = 3
	if b.Tier() != TierRed {
		t.Errorf("tier should come from MaxHealth, got %d", b.Tier())
	}
	if b.Color() != core.ColorGreen {
		t.Errorf("color should come from Health, got %d", b.Color())
	}
}

func TestBlockPoints(t *testing.T) {
	tests := []struct {
		typ  BlockType
		want int
	}{
		{BlockNormal, 50},
		{BlockBomb, 100},
		{BlockShield, 150},
		{BlockGhost, 100},
	}
	for _, tc := range tests {
		t.Run(tc.typ.String(), func(t *testing.T) {
			if got := NewBlock(0, 0, 56, 5, tc.typ).Points(); got != tc.want {
				t.Errorf("Points() = %d, expected %d", got, tc.want)
			}
		})
	}
}

func TestBlockDestroyOnce(t *testing.T) {
	b := NewBlock(0, 0, 56, 4, BlockShield)
	if !b.Destroy() {
		t.Fatal("first Destroy should succeed")
	}
	if b.Active || b.Health != 0 {
		t.Errorf("destroyed block: active=%v health=%d", b.Active, b.Health)
	}
	if b.Destroy() {
		t.Error("second Destroy should report false")
	}
}

func TestBonusCollectOnce(t *testing.T) {
	b := NewBonus(200, 148, 10)
	if !b.Collect() || !b.Collected || b.Active {
		t.Fatalf("collect failed: %+v", b)
	}
	if b.Collect() {
		t.Error("second Collect should report false")
	}
	b.MoveDown(57)
	if b.Y != 205 || b.Bottom() != 215 {
		t.Errorf("bonus after move: y=%v bottom=%v", b.Y, b.Bottom())
	}
}
