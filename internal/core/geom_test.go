package core

import "testing"

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
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestCenteredRect(t *testing.T) {
	r := CenteredRect(150, 0.5, 300, 1)
	if r.X != 0 || r.Y != 0 || r.W != 300 || r.H != 1 {
		t.Errorf("CenteredRect() = %+v, expected {0 0 300 1}", r)
	}

	cx, cy := r.Center()
	if cx != 150 || cy != 0.5 {
		t.Errorf("Center() = (%v, %v), expected (150, 0.5)", cx, cy)
	}
}

func TestFRectCells(t *testing.T) {
	tests := []struct {
		name     string
		r        FRect
		sx, sy   float64
		expected Rect
	}{
		{
			name:     "aligned block",
			r:        FRect{X: 15, Y: 15, W: 15, H: 15},
			sx:       1.0 / 15,
			sy:       1.0 / 15,
			expected: NewRect(1, 1, 1, 1),
		},
		{
			name:     "straddling cells",
			r:        FRect{X: 7.5, Y: 0, W: 15, H: 15},
			sx:       1.0 / 15,
			sy:       1.0 / 15,
			expected: NewRect(0, 0, 2, 1),
		},
		{
			name:     "thin wall keeps one cell",
			r:        FRect{X: 0, Y: 0, W: 1, H: 300},
			sx:       0.1,
			sy:       0.05,
			expected: NewRect(0, 0, 1, 15),
		},
		{
			name:     "zero width still visible",
			r:        FRect{X: 30, Y: 30, W: 0, H: 0},
			sx:       0.1,
			sy:       0.1,
			expected: NewRect(3, 3, 1, 1),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.r.Cells(tc.sx, tc.sy)
			if got != tc.expected {
				t.Errorf("Cells() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
