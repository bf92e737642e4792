package hull

import (
	"fmt"
	"strings"
)

func (poly Polygon) Len() int {
	return len(poly.Points)
}

// Each edge of the polygon as a directed line, starting with the edge leaving
// the first vertex.
func (poly Polygon) Edges() []Line {
	if len(poly.Points) < 2 {
		return nil
	}
	edges := make([]Line, 0, len(poly.Points))
	for i, vertex := range poly.Points {
		nextVertex := poly.Points[CircularIndex(i+1, len(poly.Points))]
		edges = append(edges, NewLine(vertex, nextVertex))
	}
	return edges
}

// Twice the shoelace area. Hulls produced by this package are never negative.
func (poly Polygon) SignedArea() int64 {
	var area int64
	for i, vertex := range poly.Points {
		nextVertex := poly.Points[CircularIndex(i+1, len(poly.Points))]
		area += int64(vertex.X)*int64(nextVertex.Y) - int64(nextVertex.X)*int64(vertex.Y)
	}
	return area
}

func (poly Polygon) IsCCW() bool {
	return poly.SignedArea() > 0
}

// Check that every vertex turns the same way, with no collinear vertices.
func (poly Polygon) IsStrictlyConvex() bool {
	n := len(poly.Points)
	if n < 3 {
		return true
	}
	for i, vertex := range poly.Points {
		next := poly.Points[CircularIndex(i+1, n)]
		afterNext := poly.Points[CircularIndex(i+2, n)]
		if NewLine(vertex, next).Orientation(afterNext) != Right {
			return false
		}
	}
	return true
}

// Weak containment test for a counterclockwise convex polygon: points on the
// boundary are contained. Degenerate polygons of one or two vertices contain
// only the vertex or the segment between them.
func (poly Polygon) ContainsPoint(p Point) bool {
	switch len(poly.Points) {
	case 0:
		return false
	case 1:
		return poly.Points[0] == p
	case 2:
		return onSegment(poly.Points[0], poly.Points[1], p)
	}
	for _, edge := range poly.Edges() {
		if edge.IsLeft(p) {
			return false
		}
	}
	return true
}

func onSegment(a, b, p Point) bool {
	if NewLine(a, b).Orientation(p) != Collinear {
		return false
	}
	return min(a.X, b.X) <= p.X && p.X <= max(a.X, b.X) &&
		min(a.Y, b.Y) <= p.Y && p.Y <= max(a.Y, b.Y)
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// Same vertices in the same order, starting at the same vertex.
func (poly Polygon) Equal(other Polygon) bool {
	if len(poly.Points) != len(other.Points) {
		return false
	}
	for i := range poly.Points {
		if poly.Points[i] != other.Points[i] {
			return false
		}
	}
	return true
}

// Same vertex set, regardless of order or starting vertex.
func (poly Polygon) SameVertices(other Polygon) bool {
	if len(poly.Points) != len(other.Points) {
		return false
	}
	seen := make(map[Point]struct{}, len(poly.Points))
	for _, p := range poly.Points {
		seen[p] = struct{}{}
	}
	for _, p := range other.Points {
		if _, ok := seen[p]; !ok {
			return false
		}
	}
	return true
}

func (poly Polygon) clone() Polygon {
	if poly.Points == nil {
		return Polygon{}
	}
	return Polygon{Points: append([]Point(nil), poly.Points...)}
}

func (poly Polygon) String() string {
	parts := make([]string, len(poly.Points))
	for i, p := range poly.Points {
		parts[i] = p.String()
	}
	return fmt.Sprintf("[%s]", strings.Join(parts, " "))
}
