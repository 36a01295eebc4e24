package core

import "testing"

func TestRectFIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     RectF
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        RectF{X: 0, Y: 0, W: 1, H: 1},
			b:        RectF{X: 0.5, Y: 0.5, W: 1, H: 1},
			expected: true,
		},
		{
			name:     "separate on x",
			a:        RectF{X: 0, Y: 0, W: 1, H: 1},
			b:        RectF{X: 1.5, Y: 0, W: 1, H: 1},
			expected: false,
		},
		{
			name:     "separate on y",
			a:        RectF{X: 0, Y: 0, W: 1, H: 1},
			b:        RectF{X: 0, Y: 2, W: 1, H: 1},
			expected: false,
		},
		{
			name:     "touching edges",
			a:        RectF{X: 0, Y: 0, W: 1, H: 1},
			b:        RectF{X: 1, Y: 0, W: 1, H: 1},
			expected: false,
		},
		{
			name:     "contained",
			a:        RectF{X: 0, Y: 0, W: 4, H: 4},
			b:        RectF{X: 1, Y: 1, W: 0.5, H: 0.5},
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestCenteredRectF(t *testing.T) {
	r := CenteredRectF(3.5, 2.5, 0.75, 0.75)

	if r.X != 3.125 || r.Y != 2.125 {
		t.Errorf("corner = (%v, %v), expected (3.125, 2.125)", r.X, r.Y)
	}
	if r.MaxX() != 3.875 || r.MaxY() != 2.875 {
		t.Errorf("far corner = (%v, %v), expected (3.875, 2.875)", r.MaxX(), r.MaxY())
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}
