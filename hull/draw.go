package hull

import (
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
)

// Padding around the points so that dots on the hull are not clipped
const drawPadding = 20

const dotRadius = 2

// Largest side of the canvas in pixels. Wider point sets are drawn at a reduced
// scale.
const maxCanvasSide = 4096

// Render the points, the quick hull, and the closest pair as a PNG. Screen
// coordinates are kept, so y grows downward in the image just as it does for
// the points.
func (ps *PointSet) DrawPNG(w io.Writer, scale float64) error {
	if !(scale > 0) {
		return errors.Errorf("scale must be positive, got %v", scale)
	}
	return ps.draw(scale).EncodePNG(w)
}

func (ps *PointSet) draw(scale float64) *gg.Context {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range ps.points {
		minX = math.Min(minX, float64(p.X))
		minY = math.Min(minY, float64(p.Y))
		maxX = math.Max(maxX, float64(p.X))
		maxY = math.Max(maxY, float64(p.Y))
	}
	if len(ps.points) == 0 {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	extent := math.Max(maxX-minX, maxY-minY)
	if limit := float64(maxCanvasSide - drawPadding*2); scale*extent > limit {
		scale = limit / extent
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(1, 1, 1)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	toCanvas := func(p Point) (float64, float64) {
		return drawPadding + scale*(float64(p.X)-minX), drawPadding + scale*(float64(p.Y)-minY)
	}

	quickHull := ps.QuickHull()
	if quickHull.Len() > 1 {
		c.SetLineWidth(2)
		c.MoveTo(toCanvas(quickHull.Points[0]))
		for _, p := range quickHull.Points[1:] {
			c.LineTo(toCanvas(p))
		}
		c.ClosePath()
		c.SetRGBA(0, 0.5, 0, 0.2)
		c.FillPreserve()
		c.SetRGB(0, 0.5, 0)
		c.Stroke()
	}

	if closest := ps.ClosestPoints(); len(closest) == 2 {
		c.SetLineWidth(1)
		c.MoveTo(toCanvas(closest[0]))
		c.LineTo(toCanvas(closest[1]))
		c.SetRGB(0.8, 0, 0)
		c.Stroke()
	}

	c.SetRGB(0, 0, 0)
	for _, p := range ps.points {
		x, y := toCanvas(p)
		c.DrawCircle(x, y, dotRadius)
		c.Fill()
	}
	return c
}
