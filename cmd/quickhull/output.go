package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/kbroten14/QuickHull/dbg"
	"github.com/kbroten14/QuickHull/hull"
	"github.com/kr/pretty"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	geojson "github.com/paulmach/go.geojson"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

func selectHull(ps *hull.PointSet, algorithm string) hull.Polygon {
	if algorithm == "brute" {
		return ps.Hull()
	}
	return ps.QuickHull()
}

func writeHull(w io.Writer, ps *hull.PointSet, algorithm, output string) error {
	if output == "geojson" {
		return writeGeoJSON(w, ps, algorithm)
	}
	var listing string
	if algorithm == "brute" {
		listing = ps.BruteForceHullString()
	} else {
		listing = ps.HullString()
	}
	_, err := io.WriteString(w, listing)
	return err
}

// The hull as a feature (Polygon, or LineString/Point when degenerate) plus
// the input as a MultiPoint.
func writeGeoJSON(w io.Writer, ps *hull.PointSet, algorithm string) error {
	convexHull := selectHull(ps, algorithm)
	fc := geojson.NewFeatureCollection()

	var hullFeature *geojson.Feature
	switch convexHull.Len() {
	case 0:
	case 1:
		hullFeature = geojson.NewPointFeature(coordinate(convexHull.Points[0]))
	case 2:
		hullFeature = geojson.NewLineStringFeature([][]float64{
			coordinate(convexHull.Points[0]),
			coordinate(convexHull.Points[1]),
		})
	default:
		ring := make([][]float64, 0, convexHull.Len()+1)
		for _, p := range convexHull.Points {
			ring = append(ring, coordinate(p))
		}
		ring = append(ring, coordinate(convexHull.Points[0]))
		hullFeature = geojson.NewPolygonFeature([][][]float64{ring})
	}
	if hullFeature != nil {
		hullFeature.SetProperty("role", "hull")
		hullFeature.SetProperty("algorithm", algorithm)
		fc.AddFeature(hullFeature)
	}

	coordinates := make([][]float64, 0, ps.Len())
	for _, p := range ps.Points() {
		coordinates = append(coordinates, coordinate(p))
	}
	pointsFeature := geojson.NewMultiPointFeature(coordinates...)
	pointsFeature.SetProperty("role", "points")
	fc.AddFeature(pointsFeature)

	b, err := fc.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "could not encode geojson")
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}

func coordinate(p hull.Point) []float64 {
	return []float64{float64(p.X), float64(p.Y)}
}

func writeClosest(w io.Writer, ps *hull.PointSet) error {
	closest := ps.ClosestPoints()
	if len(closest) < 2 {
		_, err := fmt.Fprintln(w, "Closest points: none")
		return err
	}
	line := hull.NewLine(closest[0], closest[1])
	_, err := fmt.Fprintf(w, "Closest points: %s %s distance %.3f\n", closest[0], closest[1], line.Distance())
	return err
}

// Every point gets a readable name. Hull vertices are green, interior points
// red.
func writeDump(w io.Writer, ps *hull.PointSet, colors bool, verbose bool) error {
	au := aurora.NewAurora(colors)
	convexHull := ps.QuickHull()
	vertices := make(map[hull.Point]struct{}, convexHull.Len())
	for _, p := range convexHull.Points {
		vertices[p] = struct{}{}
	}

	fmt.Fprintf(w, "%d points, %d on the hull\n", ps.Len(), convexHull.Len())
	for _, p := range ps.Points() {
		name := dbg.Name(p)
		if _, ok := vertices[p]; ok {
			fmt.Fprintf(w, "  %s %s\n", au.Green(name), p)
		} else {
			fmt.Fprintf(w, "  %s %s\n", au.Red(name), p)
		}
	}

	names := make([]string, 0, convexHull.Len())
	for _, p := range convexHull.Points {
		names = append(names, dbg.Name(p))
	}
	fmt.Fprintf(w, "hull: %v\n", names)

	if verbose {
		summary := struct {
			Points        []hull.Point
			QuickHull     hull.Polygon
			GiftWrapping  hull.Polygon
			ClosestPoints []hull.Point
		}{ps.Points(), convexHull, ps.Hull(), ps.ClosestPoints()}
		fmt.Fprintf(w, "%# v\n", pretty.Formatter(summary))
	}
	return nil
}

func draw(w io.Writer, ps *hull.PointSet, out string, scale float64, log *logrus.Logger) error {
	inline := out == ""
	if inline {
		dir, err := os.MkdirTemp("", "quickhull")
		if err != nil {
			return errors.Wrap(err, "could not create temp dir")
		}
		defer os.RemoveAll(dir)
		out = filepath.Join(dir, "hull.png")
	}

	f, err := os.Create(out)
	if err != nil {
		return errors.Wrap(err, "could not create image")
	}
	if err := ps.DrawPNG(f, scale); err != nil {
		f.Close()
		return errors.Wrap(err, "could not draw")
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(err, "could not write image")
	}
	log.WithField("path", out).Debug("wrote image")

	if inline {
		return errors.Wrap(imgcat.CatFile(out, w), "could not print image")
	}
	return nil
}
