package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestBoundsContainsInclusive(t *testing.T) {
	b := Bounds{Left: 463, Top: 644, Right: 796, Bottom: 695}

	tests := []struct {
		name     string
		p        Point
		expected bool
	}{
		{"inside", Point{600, 670}, true},
		{"top-left corner", Point{463, 644}, true},
		{"bottom-right corner", Point{796, 695}, true},
		{"just left", Point{462.9, 670}, false},
		{"just below", Point{600, 695.1}, false},
		{"above", Point{600, 600}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.Contains(tc.p); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestBoundsValid(t *testing.T) {
	if !(Bounds{0, 0, 10, 10}).Valid() {
		t.Error("normal bounds should be valid")
	}
	if (Bounds{10, 0, 0, 10}).Valid() {
		t.Error("inverted horizontal bounds should be invalid")
	}
	if (Bounds{0, 10, 10, 0}).Valid() {
		t.Error("inverted vertical bounds should be invalid")
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(1.3, 0, 1); got != 1 {
		t.Errorf("ClampF(1.3, 0, 1) = %v, expected 1", got)
	}
	if got := ClampF(-0.1, 0, 1); got != 0 {
		t.Errorf("ClampF(-0.1, 0, 1) = %v, expected 0", got)
	}
	if got := ClampF(0.42, 0, 1); got != 0.42 {
		t.Errorf("ClampF(0.42, 0, 1) = %v, expected 0.42", got)
	}
}
