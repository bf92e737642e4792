package hull

import (
	"fmt"
	"math"
)

// Orientation of a point relative to a directed line.
type Orientation int

const (
	Right Orientation = iota - 1
	Collinear
	Left
)

var orientationLabels = [3]string{"Right", "Collinear", "Left"}

func (o Orientation) String() string {
	if o < Right || o > Left {
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
	return orientationLabels[int(o+1)]
}

// A Line is the directed segment from its first point to its second. Everything
// derived from the endpoints is computed once in NewLine, and a Line is never
// modified afterwards.
//
// Left and Right are as seen on a screen whose y axis grows downward, looking
// from the first point toward the second. A line whose endpoints coincide has
// no direction, and orientation queries against it are meaningless.
type Line struct {
	first, second Point

	// General equation a*x + b*y = c, satisfied by both endpoints.
	a, b, c int64

	// Cross terms of the endpoints, shared by every determinant query.
	x1y2, x2y1 int64
}

func NewLine(first, second Point) Line {
	x1, y1 := int64(first.X), int64(first.Y)
	x2, y2 := int64(second.X), int64(second.Y)
	return Line{
		first:  first,
		second: second,
		a:      y2 - y1,
		b:      x1 - x2,
		c:      x1*y2 - y1*x2,
		x1y2:   x1 * y2,
		x2y1:   x2 * y1,
	}
}

func (l Line) First() Point {
	return l.first
}

func (l Line) Second() Point {
	return l.second
}

// Evaluate a*x + b*y - c at p. The sign matches Determinant: positive on the
// left, negative on the right, zero on the infinite line through the endpoints.
func (l Line) PlugInPoint(p Point) int64 {
	return l.a*int64(p.X) + l.b*int64(p.Y) - l.c
}

// Length of the segment between the endpoints. This is not a point-to-line
// distance.
func (l Line) Distance() float64 {
	return math.Sqrt(float64(l.DistanceSquared()))
}

func (l Line) DistanceSquared() int64 {
	return sqr(int64(l.first.X)-int64(l.second.X)) + sqr(int64(l.first.Y)-int64(l.second.Y))
}

// Twice the signed area of the triangle (first, second, p).
//
// The textbook determinant assumes y grows upward. It is negated here so that
// a positive result still means p is left of the line when y grows downward.
func (l Line) Determinant(p Point) int64 {
	x1, y1 := int64(l.first.X), int64(l.first.Y)
	x2, y2 := int64(l.second.X), int64(l.second.Y)
	x3, y3 := int64(p.X), int64(p.Y)

	x3y1 := x3 * y1
	x2y3 := x2 * y3
	x3y2 := x3 * y2
	x1y3 := x1 * y3

	return -(l.x1y2 + x3y1 + x2y3 - x3y2 - l.x2y1 - x1y3)
}

func (l Line) TriangleArea(p Point) float64 {
	return float64(abs(l.Determinant(p))) / 2
}

// The single predicate every hull procedure is built on.
func (l Line) Orientation(p Point) Orientation {
	determinant := l.Determinant(p)
	switch {
	case determinant > 0:
		return Left
	case determinant < 0:
		return Right
	default:
		return Collinear
	}
}

func (l Line) IsLeft(p Point) bool {
	return l.Determinant(p) > 0
}

func (l Line) IsRight(p Point) bool {
	return l.Determinant(p) < 0
}

// The same segment traversed the other way. Every point that was left of l is
// right of the result.
func (l Line) Reverse() Line {
	return NewLine(l.second, l.first)
}

func (l Line) String() string {
	return fmt.Sprintf("line between %s and %s", l.first, l.second)
}
