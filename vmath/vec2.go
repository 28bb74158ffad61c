package vmath

import "math"

// Vec2 is a 2D vector used for positions and sizes
// Resolutions are integral but carried as float64 so callers can do arithmetic directly
type Vec2 struct {
	X, Y float64
}

// V2 builds a Vec2 from any integer pair, the common case for pixel coordinates
func V2(x, y int) Vec2 {
	return Vec2{X: float64(x), Y: float64(y)}
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale multiplies both components by s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Mul multiplies componentwise
func (v Vec2) Mul(o Vec2) Vec2 {
	return Vec2{v.X * o.X, v.Y * o.Y}
}

// Div divides by a scalar, returns the zero vector for s == 0
func (v Vec2) Div(s float64) Vec2 {
	if s == 0 {
		return Vec2{}
	}
	return Vec2{v.X / s, v.Y / s}
}

// Dot returns x1*x2 + y1*y2
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the z component of the 3D cross product
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// LenSq returns squared length without sqrt
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Len returns Euclidean length
func (v Vec2) Len() float64 {
	return math.Sqrt(v.LenSq())
}

// Normalized returns the unit vector, zero-safe
func (v Vec2) Normalized() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Dist returns distance to o
func (v Vec2) Dist(o Vec2) float64 {
	return v.Sub(o).Len()
}

// Floor rounds both components toward negative infinity
func (v Vec2) Floor() Vec2 {
	return Vec2{math.Floor(v.X), math.Floor(v.Y)}
}

// Ints truncates to integer coordinates
func (v Vec2) Ints() (int, int) {
	return int(v.X), int(v.Y)
}

// Equal compares componentwise
func (v Vec2) Equal(o Vec2) bool {
	return v.X == o.X && v.Y == o.Y
}

// Clamp limits each component to [lo, hi] of the matching component
func (v Vec2) Clamp(lo, hi Vec2) Vec2 {
	return Vec2{
		X: math.Min(math.Max(v.X, lo.X), hi.X),
		Y: math.Min(math.Max(v.Y, lo.Y), hi.Y),
	}
}

// ReflectAxisX mirrors velocity off a vertical wall
func (v Vec2) ReflectAxisX() Vec2 {
	return Vec2{-v.X, v.Y}
}

// ReflectAxisY mirrors velocity off a horizontal wall
func (v Vec2) ReflectAxisY() Vec2 {
	return Vec2{v.X, -v.Y}
}
