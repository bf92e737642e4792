package main

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/kbroten14/QuickHull/hull"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

func loadPointSet(opts *options, stdin io.Reader) (*hull.PointSet, error) {
	in := stdin
	if opts.input != "" {
		f, err := os.Open(opts.input)
		if err != nil {
			return nil, errors.Wrap(err, "could not open input")
		}
		defer f.Close()
		in = f
	}

	var points []hull.Point
	var err error
	switch opts.format {
	case "yaml":
		points, err = readYAMLPoints(in)
	default:
		points, err = readPoints(in)
	}
	if err != nil {
		return nil, err
	}
	return hull.NewPointSet(points...)
}

// One point per line as "x y" (a comma works as a separator too). Blank lines
// and lines starting with '#' are skipped.
func readPoints(in io.Reader) ([]hull.Point, error) {
	points := []hull.Point{}
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "could not read points")
	}
	return points, nil
}

func parsePoint(line string) (hull.Point, error) {
	parts := strings.Fields(strings.ReplaceAll(line, ",", " "))
	if len(parts) != 2 {
		return hull.Point{}, errors.Errorf("expected two coordinates, got %q", line)
	}
	x, err := parseCoordinate(parts[0])
	if err != nil {
		return hull.Point{}, err
	}
	y, err := parseCoordinate(parts[1])
	if err != nil {
		return hull.Point{}, err
	}
	return hull.Point{X: x, Y: y}, nil
}

func parseCoordinate(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Errorf("invalid coordinate %q", s)
	}
	if v > hull.MaxCoordinate || v < -hull.MaxCoordinate {
		return 0, errors.Errorf("coordinate %d out of range", v)
	}
	return v, nil
}

func readYAMLPoints(in io.Reader) ([]hull.Point, error) {
	var points []hull.Point
	if err := yaml.NewDecoder(in).Decode(&points); err != nil {
		if err == io.EOF {
			return []hull.Point{}, nil
		}
		return nil, errors.Wrap(err, "could not decode yaml points")
	}
	return points, nil
}
