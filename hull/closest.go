package hull

import "sort"

type pointPair struct {
	a, b     Point
	distance int64 // squared
}

// The two points at minimum distance from each other, found by divide and
// conquer over the points sorted by X with a strip merge over the points sorted
// by Y. The points must be distinct. ok is false for fewer than two points.
func ClosestPair(points []Point) (a, b Point, ok bool) {
	if len(points) < 2 {
		return Point{}, Point{}, false
	}

	byX := append([]Point(nil), points...)
	sort.Slice(byX, func(i, j int) bool { return byX[i].Less(byX[j]) })
	byY := append([]Point(nil), byX...)
	sort.SliceStable(byY, func(i, j int) bool { return byY[i].Y < byY[j].Y })

	pair := closestInRange(byX, byY)
	return pair.a, pair.b, true
}

func newPointPair(a, b Point) pointPair {
	return pointPair{a, b, NewLine(a, b).DistanceSquared()}
}

// byX and byY hold the same points.
func closestInRange(byX, byY []Point) pointPair {
	if len(byX) <= 3 {
		best := newPointPair(byX[0], byX[1])
		for i := range byX {
			for j := i + 1; j < len(byX); j++ {
				if pair := newPointPair(byX[i], byX[j]); pair.distance < best.distance {
					best = pair
				}
			}
		}
		return best
	}

	mid := len(byX) / 2
	midPoint := byX[mid]

	// Split the Y order to match the X split. Points are distinct, so the
	// lexicographic order puts exactly mid of them before midPoint.
	leftY := make([]Point, 0, mid)
	rightY := make([]Point, 0, len(byY)-mid)
	for _, p := range byY {
		if p.Less(midPoint) {
			leftY = append(leftY, p)
		} else {
			rightY = append(rightY, p)
		}
	}

	best := closestInRange(byX[:mid], leftY)
	if pair := closestInRange(byX[mid:], rightY); pair.distance < best.distance {
		best = pair
	}

	// Only points closer to the dividing line than the best distance can form
	// a closer pair across it.
	var strip []Point
	for _, p := range byY {
		if sqr(int64(p.X)-int64(midPoint.X)) < best.distance {
			strip = append(strip, p)
		}
	}
	for i := range strip {
		for j := i + 1; j < len(strip) && sqr(int64(strip[j].Y)-int64(strip[i].Y)) < best.distance; j++ {
			if pair := newPointPair(strip[i], strip[j]); pair.distance < best.distance {
				best = pair
			}
		}
	}
	return best
}
