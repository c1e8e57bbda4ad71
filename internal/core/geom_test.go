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

func TestCentered(t *testing.T) {
	tests := []struct {
		name           string
		outerW, outerH int
		w, h           int
		want           Rect
	}{
		{"even", 80, 24, 62, 24, Rect{X: 9, Y: 0, W: 62, H: 24}},
		{"odd remainder", 81, 25, 10, 4, Rect{X: 35, Y: 10, W: 10, H: 4}},
		{"too big", 10, 10, 20, 4, Rect{X: -5, Y: 3, W: 20, H: 4}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Centered(tc.outerW, tc.outerH, tc.w, tc.h); got != tc.want {
				t.Errorf("Centered() = %+v, expected %+v", got, tc.want)
			}
		})
	}
}

func TestRectInset(t *testing.T) {
	r := NewRect(2, 3, 10, 6).Inset(1)
	if r != (Rect{X: 3, Y: 4, W: 8, H: 4}) {
		t.Errorf("Inset(1) = %+v", r)
	}
	if r := NewRect(0, 0, 1, 1).Inset(1); r.W != 0 || r.H != 0 {
		t.Errorf("Inset past zero = %+v, expected empty", r)
	}
}

func TestRectFits(t *testing.T) {
	r := NewRect(0, 0, 62, 24)
	if !r.Fits(62, 24) || !r.Fits(100, 30) {
		t.Error("board should fit a screen at least its size")
	}
	if r.Fits(61, 24) || r.Fits(62, 23) {
		t.Error("board should not fit a smaller screen")
	}
}
