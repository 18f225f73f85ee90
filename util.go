package svgpath

import "math"

// Precision is the number of significant digits written when serializing
// coordinates.
var Precision = 8

const epsilon = 1e-10

// Equal returns true if a and b are equal within an absolute epsilon.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

////////////////////////////////////////////////////////////////

// Point is a coordinate in 2D space.
type Point struct {
	X, Y float64
}

func (p Point) Add(a Point) Point {
	return Point{p.X + a.X, p.Y + a.Y}
}

func (p Point) Sub(a Point) Point {
	return Point{p.X - a.X, p.Y - a.Y}
}

// Reflect returns the reflection of a about p, the implicit control point
// of a smooth curve following a curve with final control point a.
func (p Point) Reflect(a Point) Point {
	return Point{2.0*p.X - a.X, 2.0*p.Y - a.Y}
}

func (p Point) Equals(a Point) bool {
	return Equal(p.X, a.X) && Equal(p.Y, a.Y)
}
