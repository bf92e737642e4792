package main

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Headless front end for the hull engine. Points come from a file or stdin,
// either one "x y" pair per line or a YAML list of {x, y} maps. Every flag can
// also be set from the environment.
func main() {
	log := logrus.New()
	log.Out = os.Stderr
	if err := run(os.Args[1:], os.Stdin, os.Stdout, log); err != nil {
		log.WithError(err).Error("quickhull failed")
		os.Exit(1)
	}
}

type options struct {
	input    string
	format   string
	logLevel string
	color    bool

	algorithm string
	output    string
	verbose   bool
	out       string
	scale     float64
}

func newApp(opts *options) *kingpin.Application {
	app := kingpin.New("quickhull", "Convex hulls of planar point sets.")
	app.Flag("input", "Point file; stdin when empty.").Short('i').Envar("QUICKHULL_INPUT").StringVar(&opts.input)
	app.Flag("format", "Input format.").Default("text").Envar("QUICKHULL_FORMAT").EnumVar(&opts.format, "text", "yaml")
	app.Flag("log-level", "Log level.").Default("warning").Envar("QUICKHULL_LOG_LEVEL").StringVar(&opts.logLevel)
	app.Flag("color", "Colour hull vertices in dumps (--no-color to disable).").Default("true").Envar("QUICKHULL_COLOR").BoolVar(&opts.color)

	hullCmd := app.Command("hull", "Print the convex hull.").Default()
	hullCmd.Flag("algorithm", "quick (divide and conquer) or brute (gift wrapping).").Default("quick").Envar("QUICKHULL_ALGORITHM").EnumVar(&opts.algorithm, "quick", "brute")
	hullCmd.Flag("output", "Output format.").Default("text").Envar("QUICKHULL_OUTPUT").EnumVar(&opts.output, "text", "geojson")

	app.Command("closest", "Print the closest pair of points.")

	dumpCmd := app.Command("dump", "List every point, marking hull vertices.")
	dumpCmd.Flag("verbose", "Also dump the whole point set.").Short('v').BoolVar(&opts.verbose)

	drawCmd := app.Command("draw", "Render points, hull, and closest pair as PNG.")
	drawCmd.Flag("out", "PNG file; printed inline in the terminal when empty.").Short('o').Envar("QUICKHULL_OUT").StringVar(&opts.out)
	drawCmd.Flag("scale", "Pixels per coordinate unit.").Default("4").Envar("QUICKHULL_SCALE").Float64Var(&opts.scale)
	return app
}

func run(args []string, stdin io.Reader, stdout io.Writer, log *logrus.Logger) error {
	opts := &options{}
	app := newApp(opts)
	app.Writer(stdout)
	command, err := app.Parse(args)
	if err != nil {
		return err
	}

	level, err := logrus.ParseLevel(opts.logLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)

	ps, err := loadPointSet(opts, stdin)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"points":  ps.Len(),
		"command": command,
		"source":  sourceName(opts.input),
	}).Debug("read points")

	switch command {
	case "hull":
		return writeHull(stdout, ps, opts.algorithm, opts.output)
	case "closest":
		return writeClosest(stdout, ps)
	case "dump":
		return writeDump(stdout, ps, opts.color, opts.verbose)
	case "draw":
		return draw(stdout, ps, opts.out, opts.scale, log)
	}
	return nil
}

func sourceName(input string) string {
	if input == "" {
		return "stdin"
	}
	return input
}
