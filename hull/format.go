package hull

import (
	"fmt"
	"strings"
)

// Human readable listings of the points and of the quick hull.

func (ps *PointSet) String() string {
	var b strings.Builder
	b.WriteString("Points:\n")
	for i, p := range ps.points {
		fmt.Fprintf(&b, " Point %d: (%d,%d)\n", i, p.X, p.Y)
	}
	return b.String()
}

func (ps *PointSet) HullString() string {
	return polygonListing("Convex Hull", ps.QuickHull())
}

func (ps *PointSet) BruteForceHullString() string {
	return polygonListing("Convex Hull (gift wrapping)", ps.Hull())
}

func polygonListing(title string, poly Polygon) string {
	var b strings.Builder
	b.WriteString(title)
	b.WriteString(":\n")
	for _, p := range poly.Points {
		fmt.Fprintf(&b, "\t(%d,%d)\n", p.X, p.Y)
	}
	return b.String()
}
