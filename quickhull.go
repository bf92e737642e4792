// Convex hulls of planar point sets for Go.
//
// A PointSet collects distinct integer points and computes their convex hull
// two independent ways, by quick hull and by gift wrapping, caching both until
// the set changes. Both hulls wind counterclockwise and exclude points that lie
// on a hull edge between two vertices.
package quickhull

import "github.com/kbroten14/QuickHull/hull"

type Point = hull.Point
type Polygon = hull.Polygon
type PointSet = hull.PointSet
type Line = hull.Line
type Orientation = hull.Orientation

const (
	Left      = hull.Left
	Right     = hull.Right
	Collinear = hull.Collinear
)

var (
	ErrIndexOutOfRange      = hull.ErrIndexOutOfRange
	ErrCoordinateOutOfRange = hull.ErrCoordinateOutOfRange
)

// Coordinates beyond this magnitude are rejected with ErrCoordinateOutOfRange.
const MaxCoordinate = hull.MaxCoordinate

func NewPointSet(points ...Point) (*PointSet, error) {
	return hull.NewPointSet(points...)
}

func NewLine(first, second Point) Line {
	return hull.NewLine(first, second)
}

// The convex hull of the points by quick hull. Duplicate points are ignored.
func ConvexHull(points ...Point) (result Polygon, err error) {
	defer func() {
		recoveredErr := hull.HandleHullPanicRecover(recover())
		if recoveredErr != nil {
			result = Polygon{}
			err = recoveredErr
		}
	}()
	ps, err := hull.NewPointSet(points...)
	if err != nil {
		return Polygon{}, err
	}
	return ps.QuickHull(), nil
}

// The convex hull of the points by gift wrapping. Duplicate points are
// ignored.
func GiftWrap(points ...Point) (result Polygon, err error) {
	defer func() {
		recoveredErr := hull.HandleHullPanicRecover(recover())
		if recoveredErr != nil {
			result = Polygon{}
			err = recoveredErr
		}
	}()
	ps, err := hull.NewPointSet(points...)
	if err != nil {
		return Polygon{}, err
	}
	return ps.Hull(), nil
}
