// Package core provides the foundation types shared by the simulation and
// the terminal platform. It contains no external dependencies (especially
// no Bubble Tea) to keep game logic pure and testable.
//
// Simulation geometry lives in arena space: float64 coordinates, y axis
// pointing up, origin at the bottom-left corner. The Viewport translates
// arena space to terminal cells for display.
package core

// Vec2 is a point or direction in arena space.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// LenSq returns the squared length of v. Collision tests compare squared
// distances so they never need a square root.
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Rect is an axis-aligned box described by its center and half extents,
// the shape the circle-overlap test wants to work with.
type Rect struct {
	Center Vec2
	HalfW  float64
	HalfH  float64
}

// NewRect creates a rect from a center point and full width/height.
func NewRect(cx, cy, w, h float64) Rect {
	return Rect{Center: Vec2{X: cx, Y: cy}, HalfW: w / 2, HalfH: h / 2}
}

// Left returns the x-coordinate of the left face.
func (r Rect) Left() float64 { return r.Center.X - r.HalfW }

// Right returns the x-coordinate of the right face.
func (r Rect) Right() float64 { return r.Center.X + r.HalfW }

// Bottom returns the y-coordinate of the bottom face (arena space is y-up).
func (r Rect) Bottom() float64 { return r.Center.Y - r.HalfH }

// Top returns the y-coordinate of the top face.
func (r Rect) Top() float64 { return r.Center.Y + r.HalfH }

// ClosestPoint returns the point on or inside the rect nearest to p.
// For p inside the rect this is p itself.
func (r Rect) ClosestPoint(p Vec2) Vec2 {
	return Vec2{
		X: ClampF(p.X, r.Left(), r.Right()),
		Y: ClampF(p.Y, r.Bottom(), r.Top()),
	}
}

// OverlapsCircle reports whether a circle at c with radius rad touches the
// rect. A circle whose edge exactly reaches a face counts as overlapping.
func (r Rect) OverlapsCircle(c Vec2, rad float64) bool {
	d := c.Sub(r.ClosestPoint(c))
	return d.LenSq() <= rad*rad
}

// Clamp restricts an integer value to [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
