package hull

import "github.com/pkg/errors"

var (
	ErrIndexOutOfRange      = errors.New("point index out of range")
	ErrCoordinateOutOfRange = errors.New("coordinate out of range")
)

// A PointSet is an insertion-ordered collection of distinct points, together
// with its convex hull computed two ways: by quick hull and by gift wrapping.
//
// Both hulls are cached behind a single staleness flag. Any mutation marks them
// stale, and the next hull query recomputes both before returning. A PointSet
// is not safe for concurrent use.
type PointSet struct {
	points []Point
	index  map[Point]struct{}

	quickHull Polygon
	hull      Polygon
	stale     bool
}

func NewPointSet(points ...Point) (*PointSet, error) {
	ps := &PointSet{index: make(map[Point]struct{})}
	if _, err := ps.AddPoints(points...); err != nil {
		return nil, err
	}
	return ps, nil
}

// Add a point unless an equal one is already present. Reports whether the point
// was added. Adding a duplicate leaves the cached hulls untouched. A point with
// a coordinate beyond MaxCoordinate is rejected with ErrCoordinateOutOfRange.
func (ps *PointSet) AddPoint(p Point) (bool, error) {
	if !p.InRange() {
		return false, errors.Wrapf(ErrCoordinateOutOfRange, "point %s", p)
	}
	if ps.index == nil {
		ps.index = make(map[Point]struct{})
	}
	if _, ok := ps.index[p]; ok {
		return false, nil
	}
	ps.index[p] = struct{}{}
	ps.points = append(ps.points, p)
	ps.stale = true
	return true, nil
}

// Add points in order, skipping duplicates. Returns how many were added. Stops
// at the first out of range point; the points before it stay added.
func (ps *PointSet) AddPoints(points ...Point) (int, error) {
	added := 0
	for _, p := range points {
		ok, err := ps.AddPoint(p)
		if err != nil {
			return added, err
		}
		if ok {
			added++
		}
	}
	return added, nil
}

// Remove every point. The hull of an empty set is empty, so the cleared hulls
// are already current.
func (ps *PointSet) Clear() {
	ps.points = nil
	ps.index = make(map[Point]struct{})
	ps.quickHull = Polygon{}
	ps.hull = Polygon{}
	ps.stale = false
}

func (ps *PointSet) Len() int {
	return len(ps.points)
}

// The i-th point in insertion order.
func (ps *PointSet) Point(i int) (Point, error) {
	if i < 0 || i >= len(ps.points) {
		return Point{}, errors.Wrapf(ErrIndexOutOfRange, "index %d with %d points", i, len(ps.points))
	}
	return ps.points[i], nil
}

// A copy of the points in insertion order.
func (ps *PointSet) Points() []Point {
	return append([]Point(nil), ps.points...)
}

// The convex hull found by gift wrapping.
func (ps *PointSet) Hull() Polygon {
	ps.refresh()
	return ps.hull.clone()
}

// The convex hull found by quick hull.
func (ps *PointSet) QuickHull() Polygon {
	ps.refresh()
	return ps.quickHull.clone()
}

// Whether the next hull query will recompute.
func (ps *PointSet) Stale() bool {
	return ps.stale
}

// The closest pair of points, or nothing with fewer than two points.
func (ps *PointSet) ClosestPoints() []Point {
	a, b, ok := ClosestPair(ps.points)
	if !ok {
		return nil
	}
	return []Point{a, b}
}

// Both hulls are always recomputed together.
func (ps *PointSet) refresh() {
	if !ps.stale {
		return
	}
	ps.hull = GiftWrap(ps.points)
	ps.quickHull = QuickHull(ps.points)
	ps.stale = false
}
