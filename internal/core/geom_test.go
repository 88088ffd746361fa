package core

import "testing"

func TestRectFIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     RectF
		expected bool
	}{
		{
			name:     "overlapping cars",
			a:        NewRectF(375, 430, 50, 100),
			b:        NewRectF(400, 500, 50, 100),
			expected: true,
		},
		{
			name:     "side by side lanes",
			a:        NewRectF(200, 0, 50, 100),
			b:        NewRectF(260, 0, 50, 100),
			expected: false,
		},
		{
			name:     "obstacle still above player",
			a:        NewRectF(300, 430, 50, 100),
			b:        NewRectF(300, 300, 50, 100),
			expected: false,
		},
		{
			name:     "touching edges (no overlap)",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "coin inside car",
			a:        NewRectF(0, 0, 50, 100),
			b:        NewRectF(10, 30, 30, 30),
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(9.5, 9.5, 10, 10),
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

func TestRectFCells(t *testing.T) {
	// 800x600 field onto an 80x24 terminal
	sx, sy := 80.0/800.0, 24.0/600.0

	tests := []struct {
		name     string
		r        RectF
		expected Rect
	}{
		{"player car", NewRectF(375, 430, 50, 100), NewRect(37, 17, 6, 5)},
		{"small coin keeps one cell", NewRectF(200, 10, 5, 5), NewRect(20, 0, 1, 1)},
		{"above the field", NewRectF(300, -100, 50, 100), NewRect(30, -4, 5, 4)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Cells(sx, sy); got != tc.expected {
				t.Errorf("Cells() = %+v, expected %+v", got, tc.expected)
			}
		})
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

	f := NewRectF(1.5, 2, 3, 4.5)
	if f.Right() != 4.5 {
		t.Errorf("Right() = %f, expected 4.5", f.Right())
	}
	if f.Bottom() != 6.5 {
		t.Errorf("Bottom() = %f, expected 6.5", f.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
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
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
}
