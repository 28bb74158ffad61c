package vmath

import (
	"math"
	"testing"
)

func TestVec2Arithmetic(t *testing.T) {
	a := Vec2{3, 4}
	b := Vec2{1, -2}

	tests := []struct {
		name string
		got  Vec2
		want Vec2
	}{
		{"Add", a.Add(b), Vec2{4, 2}},
		{"Sub", a.Sub(b), Vec2{2, 6}},
		{"Scale", a.Scale(2), Vec2{6, 8}},
		{"Mul", a.Mul(b), Vec2{3, -8}},
		{"Div", a.Div(2), Vec2{1.5, 2}},
		{"DivZero", a.Div(0), Vec2{}},
		{"Floor", Vec2{1.7, -1.2}.Floor(), Vec2{1, -2}},
		{"ReflectX", b.ReflectAxisX(), Vec2{-1, -2}},
		{"ReflectY", b.ReflectAxisY(), Vec2{1, 2}},
		{"Clamp", Vec2{-5, 50}.Clamp(Vec2{0, 0}, Vec2{10, 10}), Vec2{0, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Equal(tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, tt.got)
			}
		})
	}
}

func TestVec2Products(t *testing.T) {
	a := Vec2{3, 4}
	b := Vec2{1, -2}

	if got := a.Dot(b); got != -5 {
		t.Errorf("Expected dot -5, got %v", got)
	}
	if got := a.Cross(b); got != -10 {
		t.Errorf("Expected cross -10, got %v", got)
	}
	if got := a.Len(); got != 5 {
		t.Errorf("Expected length 5, got %v", got)
	}
	if got := a.LenSq(); got != 25 {
		t.Errorf("Expected squared length 25, got %v", got)
	}
	if got := a.Dist(Vec2{}); got != 5 {
		t.Errorf("Expected distance 5, got %v", got)
	}
}

func TestVec2Normalized(t *testing.T) {
	n := Vec2{3, 4}.Normalized()
	if math.Abs(n.Len()-1) > 1e-12 {
		t.Errorf("Expected unit length, got %v", n.Len())
	}
	if z := (Vec2{}).Normalized(); !z.Equal(Vec2{}) {
		t.Errorf("Expected zero vector to stay zero, got %v", z)
	}
}

func TestV2Ints(t *testing.T) {
	x, y := V2(80, 48).Ints()
	if x != 80 || y != 48 {
		t.Errorf("Expected (80,48), got (%d,%d)", x, y)
	}
}
