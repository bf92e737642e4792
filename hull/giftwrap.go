package hull

// Gift wrapping starts at the rightmost point and repeatedly picks the next
// vertex by a single scan: any point left of the current edge, or collinear
// with it and farther away, replaces the candidate. Because the current point
// is always a hull vertex, the surviving candidate has every other point on its
// right, which makes it the next vertex counterclockwise. The walk closes when
// it reaches a vertex it has already emitted.

// Panics with a HullError wrapping ErrCoordinateOutOfRange when a point is out
// of range.
func GiftWrap(points []Point) Polygon {
	requireInRange(points)
	switch len(points) {
	case 0:
		return Polygon{}
	case 1:
		return Polygon{Points: []Point{points[0]}}
	}

	_, start := findLeftRight(points)
	emitted := map[Point]struct{}{start: {}}
	convexHull := []Point{start}

	current := start
	for steps := 1; ; steps++ {
		// A hull cannot have more vertices than the input has points.
		if steps > len(points) {
			fatalf("gift wrapping did not close after %d steps from %s", steps, start)
		}

		next := nextHullVertex(current, points)
		if _, ok := emitted[next]; ok {
			break
		}
		emitted[next] = struct{}{}
		convexHull = append(convexHull, next)
		current = next
	}
	return Polygon{Points: convexHull}
}

// Requires at least two distinct points.
func nextHullVertex(current Point, points []Point) Point {
	candidate := points[0]
	if candidate == current {
		candidate = points[1]
	}
	edge := NewLine(current, candidate)

	for _, p := range points {
		if p == current || p == candidate {
			continue
		}
		value := edge.PlugInPoint(p)
		if value > 0 || (value == 0 && extendsEdge(edge, p)) {
			candidate = p
			edge = NewLine(current, candidate)
		}
	}
	return candidate
}

// Whether a point collinear with the edge lies beyond its second endpoint, in
// the same direction from the first.
func extendsEdge(edge Line, p Point) bool {
	origin, end := edge.First(), edge.Second()
	dx, dy := int64(end.X)-int64(origin.X), int64(end.Y)-int64(origin.Y)
	px, py := int64(p.X)-int64(origin.X), int64(p.Y)-int64(origin.Y)
	if dx*px+dy*py <= 0 {
		return false
	}
	return px*px+py*py > edge.DistanceSquared()
}
