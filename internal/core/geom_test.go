package core

import (
	"math"
	"testing"
)

func TestRectFIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     RectF
		expected bool
	}{
		{
			name:     "overlapping",
			a:        RectF{X: 0, Y: 0, W: 56, H: 56},
			b:        RectF{X: 50, Y: 50, W: 16, H: 16},
			expected: true,
		},
		{
			name:     "separate horizontally",
			a:        RectF{X: 0, Y: 0, W: 56, H: 56},
			b:        RectF{X: 60, Y: 0, W: 16, H: 16},
			expected: false,
		},
		{
			name:     "separate vertically",
			a:        RectF{X: 0, Y: 0, W: 56, H: 56},
			b:        RectF{X: 0, Y: 57, W: 16, H: 16},
			expected: false,
		},
		{
			name:     "sharing an edge",
			a:        RectF{X: 0, Y: 0, W: 56, H: 56},
			b:        RectF{X: 56, Y: 10, W: 16, H: 16},
			expected: false,
		},
		{
			name:     "contained",
			a:        RectF{X: 0, Y: 0, W: 56, H: 56},
			b:        RectF{X: 20, Y: 20, W: 4, H: 4},
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        RectF{X: 0, Y: 0, W: 10, H: 10},
			b:        RectF{X: 9.5, Y: 9.5, W: 10, H: 10},
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() reversed = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectFEdges(t *testing.T) {
	r := RectF{X: 1, Y: 120, W: 56, H: 56}

	if r.Right() != 57 || r.Bottom() != 176 {
		t.Errorf("edges = (%v, %v), expected (57, 176)", r.Right(), r.Bottom())
	}
	cx, cy := r.Center()
	if cx != 29 || cy != 148 {
		t.Errorf("Center() = (%v, %v), expected (29, 148)", cx, cy)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestDistance(t *testing.T) {
	if d := Distance(0, 0, 3, 4); d != 5 {
		t.Errorf("Distance = %v, expected 5", d)
	}
	if d := Distance(1, 1, 1, 1); d != 0 {
		t.Errorf("Distance to self = %v", d)
	}
}

func TestClampHelpers(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}
	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}

	if got := ClampF(5, 20, 380); got != 20 {
		t.Errorf("ClampF below range = %v", got)
	}
	if got := ClampF(math.Inf(1), 20, 380); got != 380 {
		t.Errorf("ClampF(+Inf) = %v", got)
	}
	if Min(3, 7) != 3 || Max(3, 7) != 7 {
		t.Error("Min/Max broken")
	}
}
