package gamemath

import "math"

// Point is a position in screen space.
type Point struct {
	X, Y float64
}

// Curve is a quadratic Bézier segment: two endpoints and one control point.
type Curve struct {
	Start   Point
	Control Point
	End     Point
}

// At evaluates the curve at t: (1-t)²·P0 + 2(1-t)t·P1 + t²·P2.
func (c Curve) At(t float64) Point {
	u := 1 - t
	a := u * u
	b := 2 * u * t
	d := t * t
	return Point{
		X: a*c.Start.X + b*c.Control.X + d*c.End.X,
		Y: a*c.Start.Y + b*c.Control.Y + d*c.End.Y,
	}
}

// Heading approximates the direction of travel at t by comparing the position
// at t with the position at t-eps (clamped to the start of the curve).
func (c Curve) Heading(t, eps float64) float64 {
	p := c.At(t)
	prev := c.At(math.Max(0, t-eps))
	return math.Atan2(p.Y-prev.Y, p.X-prev.X)
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}
