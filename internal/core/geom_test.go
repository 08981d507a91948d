package core

import (
	"math"
	"testing"
)

func TestVec2Add(t *testing.T) {
	v := Vec2{X: 1, Y: 2}.Add(Vec2{X: 3, Y: -5})
	if v.X != 4 || v.Y != -3 {
		t.Errorf("Add returned %+v, want {4 -3}", v)
	}
}

func TestVec2Normalized(t *testing.T) {
	v := Vec2{X: 3, Y: 4}.Normalized()
	if math.Abs(v.Len()-1) > 1e-9 {
		t.Errorf("normalized length = %v, want 1", v.Len())
	}
	if math.Abs(v.X-0.6) > 1e-9 || math.Abs(v.Y-0.8) > 1e-9 {
		t.Errorf("Normalized returned %+v, want {0.6 0.8}", v)
	}

	// Zero vector must not produce NaN
	z := Vec2{}.Normalized()
	if z.X != 1 || z.Y != 0 {
		t.Errorf("zero vector normalized to %+v, want unit X", z)
	}
}

func TestRectAtRounding(t *testing.T) {
	r := RectAt(Vec2{X: 1.6, Y: -0.5}, 10, 20)
	if r.X != 2 {
		t.Errorf("X rounded to %d, want 2", r.X)
	}
	if r.W != 10 || r.H != 20 {
		t.Errorf("dimensions %dx%d, want 10x20", r.W, r.H)
	}
}

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"overlapping", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"contained", NewRect(0, 0, 20, 20), NewRect(5, 5, 2, 2), true},
		{"touching edges", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"separated x", NewRect(0, 0, 10, 10), NewRect(20, 0, 10, 10), false},
		{"separated y", NewRect(0, 0, 10, 10), NewRect(0, 20, 10, 10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("%+v.Intersects(%+v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			// Intersection is symmetric
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("%+v.Intersects(%+v) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestRectInflate(t *testing.T) {
	r := NewRect(10, 10, 20, 20).Inflate(0, 6)
	if r.Y != 7 || r.H != 26 {
		t.Errorf("Inflate(0, 6) = %+v, want Y=7 H=26", r)
	}
	if r.X != 10 || r.W != 20 {
		t.Errorf("Inflate(0, 6) changed horizontal extent: %+v", r)
	}
}

func TestRectOutside(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"inside", NewRect(10, 10, 10, 10), false},
		{"left of region", NewRect(-20, 10, 10, 10), true},
		{"right of region", NewRect(150, 10, 10, 10), true},
		{"above region", NewRect(10, -20, 10, 10), true},
		{"below region", NewRect(10, 150, 10, 10), true},
		{"straddling right edge", NewRect(95, 10, 10, 10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Outside(100, 100); got != tt.want {
				t.Errorf("%+v.Outside(100, 100) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5, 0, 10) = %d, want 5", got)
	}
	if got := Clamp(-3, 0, 10); got != 0 {
		t.Errorf("Clamp(-3, 0, 10) = %d, want 0", got)
	}
	if got := Clamp(42, 0, 10); got != 10 {
		t.Errorf("Clamp(42, 0, 10) = %d, want 10", got)
	}
	if got := ClampF(9.5, -8, 8); got != 8 {
		t.Errorf("ClampF(9.5, -8, 8) = %v, want 8", got)
	}
}
