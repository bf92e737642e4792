package hull

import (
	"embed"
	"log"
	"math/rand"
	"strconv"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures into point clouds. Every <circle> element
// contributes its center as a point, in document order. This is not a full (or
// even correct) svg parser. If anything goes wrong, it bails out.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	circles := rootEl.FindAll("circle")
	if len(circles) == 0 {
		log.Fatalf("No circles found in fixture %q", name)
	}

	points := make([]Point, 0, len(circles))
	for _, circleEl := range circles {
		x, err := strconv.Atoi(circleEl.Attributes["cx"])
		if err != nil {
			log.Fatalf("Invalid cx value %q: %v", circleEl.Attributes["cx"], err)
		}
		y, err := strconv.Atoi(circleEl.Attributes["cy"])
		if err != nil {
			log.Fatalf("Invalid cy value %q: %v", circleEl.Attributes["cy"], err)
		}
		points = append(points, Point{x, y})
	}
	return points
}

// Some ad hoc generated fixtures

// Distinct pseudo-random points in [0, size) x [0, size).
func RandomCloud(seed int64, n int, size int) []Point {
	r := rand.New(rand.NewSource(seed))
	seen := make(map[Point]struct{}, n)
	points := make([]Point, 0, n)
	for len(points) < n {
		p := Point{r.Intn(size), r.Intn(size)}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		points = append(points, p)
	}
	return points
}

// Points on a horizontal, vertical, or diagonal line, in scrambled order.
func CollinearRun(n int, dx, dy int) []Point {
	points := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		j := (i * 7) % n
		points = append(points, Point{3 + j*dx, 5 + j*dy})
	}
	return points
}
