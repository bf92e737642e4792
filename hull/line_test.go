package hull

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineEquation(t *testing.T) {
	line := NewLine(Point{4, 7}, Point{12, 10})
	// Both endpoints satisfy the general equation.
	assert.Equal(t, int64(0), line.PlugInPoint(Point{4, 7}))
	assert.Equal(t, int64(0), line.PlugInPoint(Point{12, 10}))
	// So does any other point on the infinite line.
	assert.Equal(t, int64(0), line.PlugInPoint(Point{20, 13}))
	assert.Equal(t, int64(0), line.PlugInPoint(Point{-4, 4}))
}

func TestLineDeterminant(t *testing.T) {
	t.Run("reference value", func(t *testing.T) {
		line := NewLine(Point{4, 7}, Point{12, 10})
		assert.Equal(t, int64(-21), line.Determinant(Point{5, 10}))
		assert.Equal(t, Right, line.Orientation(Point{5, 10}))
	})

	t.Run("agrees with the plugged in equation", func(t *testing.T) {
		for _, line := range []Line{
			NewLine(Point{4, 7}, Point{12, 10}),
			NewLine(Point{-3, 2}, Point{9, -8}),
			NewLine(Point{0, 0}, Point{0, 5}),
		} {
			for _, p := range RandomCloud(1, 50, 40) {
				p := Point{p.X - 20, p.Y - 20}
				assert.Equal(t, line.Determinant(p), line.PlugInPoint(p), "%s at %s", line, p)
			}
		}
	})

	t.Run("screen orientation", func(t *testing.T) {
		// Walking right along the x axis with y growing downward, smaller y is
		// on the left.
		line := NewLine(Point{0, 0}, Point{10, 0})
		assert.Equal(t, Left, line.Orientation(Point{5, -3}))
		assert.Equal(t, Right, line.Orientation(Point{5, 3}))
		assert.Equal(t, Collinear, line.Orientation(Point{-5, 0}))
		assert.True(t, line.IsLeft(Point{5, -3}))
		assert.False(t, line.IsRight(Point{5, -3}))
		assert.True(t, line.IsRight(Point{5, 3}))
		assert.False(t, line.IsLeft(Point{20, 0}))
		assert.False(t, line.IsRight(Point{20, 0}))
	})

	t.Run("large coordinates", func(t *testing.T) {
		line := NewLine(Point{-MaxCoordinate, -MaxCoordinate}, Point{MaxCoordinate, MaxCoordinate})
		assert.Equal(t, Collinear, line.Orientation(Point{0, 0}))
		assert.Equal(t, Left, line.Orientation(Point{MaxCoordinate, -MaxCoordinate}))
		assert.Equal(t, Right, line.Orientation(Point{-MaxCoordinate, MaxCoordinate}))
	})
}

func TestLineReverse(t *testing.T) {
	line := NewLine(Point{4, 7}, Point{12, 10})
	reversed := line.Reverse()
	assert.Equal(t, Point{12, 10}, reversed.First())
	assert.Equal(t, Point{4, 7}, reversed.Second())
	// The receiver is untouched
	assert.Equal(t, Point{4, 7}, line.First())

	for _, p := range []Point{{5, 10}, {0, 0}, {8, 1}, {20, 13}} {
		assert.Equal(t, -line.Determinant(p), reversed.Determinant(p))
		assert.Equal(t, -line.Orientation(p), reversed.Orientation(p))
	}
}

func TestLineMeasurements(t *testing.T) {
	line := NewLine(Point{1, 2}, Point{4, 6})
	assert.Equal(t, int64(25), line.DistanceSquared())
	assert.InDelta(t, 5, line.Distance(), 1e-12)

	// Triangle (0,0) (4,0) (0,3) has area 6 on either side.
	base := NewLine(Point{0, 0}, Point{4, 0})
	assert.InDelta(t, 6, base.TriangleArea(Point{0, 3}), 1e-12)
	assert.InDelta(t, 6, base.TriangleArea(Point{0, -3}), 1e-12)
	assert.Equal(t, 0.0, base.TriangleArea(Point{9, 0}))
	assert.False(t, math.IsNaN(NewLine(Point{2, 2}, Point{2, 2}).Distance()))
}

func TestOrientationString(t *testing.T) {
	assert.Equal(t, "Left", Left.String())
	assert.Equal(t, "Right", Right.String())
	assert.Equal(t, "Collinear", Collinear.String())
	assert.Equal(t, "Orientation(7)", Orientation(7).String())
	assert.Equal(t, "line between (1,2) and (3,4)", NewLine(Point{1, 2}, Point{3, 4}).String())
}
