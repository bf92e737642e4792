package hull

// This contains no actual tests. It is just a helper for testing hull
// validity.

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a polygon is the convex hull of a set of points. The rules are:
// 1. Every vertex is one of the input points, and no vertex repeats.
// 2. With three or more vertices, the polygon winds counterclockwise and is
//    strictly convex, so no vertex is collinear with its neighbours.
// 3. Every input point is a vertex or lies inside or on the polygon.
// 4. The vertex set matches an independent monotone chain hull.
func AssertValidHull(t *testing.T, points []Point, convexHull Polygon) {
	t.Helper()

	input := make(map[Point]struct{}, len(points))
	for _, p := range points {
		input[p] = struct{}{}
	}
	vertices := make(map[Point]struct{}, convexHull.Len())
	for _, v := range convexHull.Points {
		_, ok := input[v]
		require.True(t, ok, "hull vertex %s is not an input point", v)
		_, repeated := vertices[v]
		require.False(t, repeated, "hull vertex %s repeats", v)
		vertices[v] = struct{}{}
	}

	if convexHull.Len() >= 3 {
		require.True(t, convexHull.IsCCW(), "hull %s is not counterclockwise", convexHull)
		require.True(t, convexHull.IsStrictlyConvex(), "hull %s is not strictly convex", convexHull)
	}

	for _, p := range points {
		assert.True(t, convexHull.ContainsPoint(p), "point %s is outside hull %s", p, convexHull)
	}

	expected := monotoneChain(points)
	assert.True(t, expected.SameVertices(convexHull), "expected vertices %s, got %s", expected, convexHull)
}

// Check that two polygons are the same cycle of vertices, allowing a different
// starting vertex.
func AssertSameCycle(t *testing.T, expected, actual Polygon) {
	t.Helper()

	require.Equal(t, expected.Len(), actual.Len(), "expected %s, got %s", expected, actual)
	if expected.Len() == 0 {
		return
	}
	offset := -1
	for i, p := range actual.Points {
		if p == expected.Points[0] {
			offset = i
			break
		}
	}
	require.NotEqual(t, -1, offset, "expected %s, got %s", expected, actual)
	for i, p := range expected.Points {
		assert.Equal(t, p, actual.Points[CircularIndex(i+offset, actual.Len())], "expected %s, got %s", expected, actual)
	}
}

// Andrew's monotone chain, used as an independent reference. Collinear
// boundary points are excluded, as they are by both hull procedures.
func monotoneChain(points []Point) Polygon {
	sorted := append([]Point(nil), points...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })
	if len(sorted) <= 1 {
		return Polygon{Points: sorted}
	}

	cross := func(o, a, b Point) int64 {
		return (int64(a.X)-int64(o.X))*(int64(b.Y)-int64(o.Y)) - (int64(a.Y)-int64(o.Y))*(int64(b.X)-int64(o.X))
	}

	var lower []Point
	for _, p := range sorted {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}
	var upper []Point
	for i := len(sorted) - 1; i >= 0; i-- {
		p := sorted[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}
	return Polygon{Points: append(lower[:len(lower)-1], upper[:len(upper)-1]...)}
}
