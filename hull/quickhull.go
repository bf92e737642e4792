package hull

// Divide and conquer hull. The extreme points by x split the set with a middle
// line; each side is then reduced recursively by the point farthest from the
// current line, dropping every point that falls inside the triangle it forms.
//
// Partitions are always fresh slices. Nothing is removed from a list that is
// being iterated, so each recursive call owns the candidates it was given.

// Panics with a HullError wrapping ErrCoordinateOutOfRange when a point is out
// of range.
func QuickHull(points []Point) Polygon {
	requireInRange(points)
	if len(points) == 0 {
		return Polygon{}
	}

	left, right := findLeftRight(points)
	if left == right {
		return Polygon{Points: []Point{left}}
	}

	middle := NewLine(left, right)
	var upper, lower []Point
	for _, p := range points {
		if p == left || p == right {
			continue
		}
		if middle.IsLeft(p) {
			upper = append(upper, p)
		} else {
			lower = append(lower, p)
		}
	}

	// Both chains exclude their endpoints, so the extreme points are added
	// here exactly once.
	convexHull := make([]Point, 0, 2+len(upper)+len(lower))
	convexHull = append(convexHull, left)
	convexHull = appendUpperHull(convexHull, middle, upper)
	convexHull = append(convexHull, right)
	convexHull = appendLowerHull(convexHull, middle, lower)
	return Polygon{Points: convexHull}
}

// Append the hull vertices strictly between the line's endpoints, in order
// from the first endpoint to the second. Every candidate must be left of the
// line.
func appendUpperHull(convexHull []Point, line Line, candidates []Point) []Point {
	if len(candidates) == 0 {
		// Nothing outside: the line itself is a hull edge.
		return convexHull
	}

	farthest := findFarthestPoint(line, candidates)
	firstLine := NewLine(line.First(), farthest)
	secondLine := NewLine(farthest, line.Second())

	convexHull = appendUpperHull(convexHull, firstLine, pointsLeftOf(firstLine, candidates))
	convexHull = append(convexHull, farthest)
	return appendUpperHull(convexHull, secondLine, pointsLeftOf(secondLine, candidates))
}

// The lower chain is the upper chain of the reversed line. Reversing swaps
// which side counts as left, so the same procedure continues the walk around
// the other side.
func appendLowerHull(convexHull []Point, line Line, candidates []Point) []Point {
	reversed := line.Reverse()
	return appendUpperHull(convexHull, reversed, pointsLeftOf(reversed, candidates))
}

// Points strictly left of the line. Collinear points and points on the right
// are interior to the hull built so far and are dropped.
func pointsLeftOf(line Line, candidates []Point) []Point {
	var result []Point
	for _, p := range candidates {
		if line.IsLeft(p) {
			result = append(result, p)
		}
	}
	return result
}

// The candidate with the largest triangle against the line. On ties, the first
// one encountered wins.
func findFarthestPoint(line Line, candidates []Point) Point {
	farthest := candidates[0]
	maxArea := line.Determinant(farthest)
	for _, p := range candidates[1:] {
		if area := line.Determinant(p); area > maxArea {
			maxArea = area
			farthest = p
		}
	}
	if maxArea <= 0 {
		fatalf("farthest point %s is not left of %s", farthest, line)
	}
	return farthest
}

// The leftmost and rightmost points. Ties on X go to the smaller Y for the
// leftmost point and the larger Y for the rightmost one, so the result does not
// depend on insertion order. The slice must not be empty.
func findLeftRight(points []Point) (left, right Point) {
	return findLeftRightInRange(points, 0, len(points)-1)
}

func findLeftRightInRange(points []Point, start, end int) (left, right Point) {
	switch {
	case start == end:
		return points[start], points[start]
	case start == end-1:
		if points[start].Less(points[end]) {
			return points[start], points[end]
		}
		return points[end], points[start]
	}

	mid := (start + end) / 2
	firstLeft, firstRight := findLeftRightInRange(points, start, mid)
	secondLeft, secondRight := findLeftRightInRange(points, mid+1, end)

	left = firstLeft
	if secondLeft.Less(firstLeft) {
		left = secondLeft
	}
	right = firstRight
	if firstRight.Less(secondRight) {
		right = secondRight
	}
	return left, right
}
