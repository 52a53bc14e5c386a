package aureon_test

import (
	"testing"

	"github.com/spatialsurgical/aureon"
)

func TestVec2Arithmetic(t *testing.T) {
	a := aureon.Vec2{X: 3, Y: -2}
	b := aureon.Vec2{X: 1, Y: 5}

	if got := a.Add(b); got != (aureon.Vec2{X: 4, Y: 3}) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != (aureon.Vec2{X: 2, Y: -7}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Mul(2); got != (aureon.Vec2{X: 6, Y: -4}) {
		t.Errorf("Mul = %v", got)
	}
	if got := a.Div(2); got != (aureon.Vec2{X: 1.5, Y: -1}) {
		t.Errorf("Div = %v", got)
	}
}

func TestVec2AddSubInverse(t *testing.T) {
	vectors := []aureon.Vec2{
		{X: 0, Y: 0},
		{X: 1.5, Y: -2.25},
		{X: 1024, Y: 768},
	}

	for _, a := range vectors {
		for _, b := range vectors {
			if got := a.Add(b).Sub(b); got != a {
				t.Errorf("(%v + %v) - %v = %v", a, b, b, got)
			}
		}
	}
}

func TestVec2MulDivIdentity(t *testing.T) {
	v := aureon.Vec2{X: 3, Y: -7}

	// Powers of two keep the round trip exact.
	for _, k := range []float32{0.5, 1, 2, 8} {
		if got := v.Mul(k).Div(k); got != v {
			t.Errorf("Mul(%v) then Div(%v) = %v, want %v", k, k, got, v)
		}
	}
}

func TestVec2DivByZero(t *testing.T) {
	// Division follows IEEE-754: no panic, infinite components.
	v := aureon.Vec2{X: 1, Y: -1}
	got := v.Div(0)
	if !(got.X > 0 && got.X*2 == got.X) {
		t.Errorf("X = %v, want +Inf", got.X)
	}
	if !(got.Y < 0 && got.Y*2 == got.Y) {
		t.Errorf("Y = %v, want -Inf", got.Y)
	}
}

func TestRectContains(t *testing.T) {
	r := aureon.Rect{X: 10, Y: 10, W: 100, H: 50}

	tests := []struct {
		p    aureon.Vec2
		want bool
	}{
		{aureon.Vec2{X: 10, Y: 10}, true},
		{aureon.Vec2{X: 60, Y: 35}, true},
		{aureon.Vec2{X: 110, Y: 60}, false}, // right/bottom edges are exclusive
		{aureon.Vec2{X: 9, Y: 10}, false},
		{aureon.Vec2{X: 111, Y: 35}, false},
		{aureon.Vec2{X: 60, Y: 61}, false},
	}

	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestRectIntersects(t *testing.T) {
	r := aureon.Rect{X: 0, Y: 0, W: 10, H: 10}

	if !r.Intersects(aureon.Rect{X: 5, Y: 5, W: 10, H: 10}) {
		t.Error("overlapping rects should intersect")
	}
	if r.Intersects(aureon.Rect{X: 20, Y: 20, W: 5, H: 5}) {
		t.Error("disjoint rects should not intersect")
	}
}
