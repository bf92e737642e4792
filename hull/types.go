package hull

import (
	"fmt"

	"github.com/pkg/errors"
)

// Coordinates are screen coordinates: X grows to the right and Y grows
// downward. Points are compared by value, so two points with the same
// coordinates are the same point.
type Point struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
}

// Every product taken by the predicates fits in an int64 as long as no
// coordinate exceeds this magnitude.
const MaxCoordinate = 1<<30 - 1

// Whether both coordinates are within MaxCoordinate, which keeps every
// predicate on the point exact.
func (p Point) InRange() bool {
	return -MaxCoordinate <= p.X && p.X <= MaxCoordinate &&
		-MaxCoordinate <= p.Y && p.Y <= MaxCoordinate
}

// Throw if any point is out of range. The hull procedures would otherwise
// overflow and return a wrong hull without noticing.
func requireInRange(points []Point) {
	for _, p := range points {
		if !p.InRange() {
			throw(errors.Wrapf(ErrCoordinateOutOfRange, "point %s", p))
		}
	}
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// An open vertex list. The closing edge from the last vertex back to the first
// is implied.
type Polygon struct {
	Points []Point
}
