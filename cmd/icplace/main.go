// Command icplace writes the initial cell positions of a simulation.
//
// # Usage
//
// The icplace command takes one argument:
//
//	icplace config_file
//
// It is the path to a TOML config file describing the domain, the cell types
// and a list of placements. Each placement draws one shape and fills it with
// cells of one type; the cells of all placements are written to a single
// x,y,z,type CSV, which the simulator reads as its initial condition.
//
// # Config file
//
// A minimal config file looks like this:
//
//	output = "config/cells.csv"
//	seed = 1
//
//	[domain]
//	xmin = -500
//	xmax = 500
//	ymin = -500
//	ymax = 500
//	zmin = -10
//	zmax = 10
//	zdel = 20
//
//	[[cell_type]]
//	name = "tumor"
//	volume = 2494
//
//	[[placement]]
//	shape = "wedge"
//	cell_type = "tumor"
//	count = 200
//	x0 = 0
//	y0 = 0
//	r0 = 100
//	r1 = 300
//	theta1 = 0
//	theta2 = 90
//
// Shape parameters that are left out take their default values for the
// domain. A placement whose shape does not overlap the domain is an error.
package main

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/PhysiCell-Tools/icplace"
)

const usage = `Usage: icplace config_file

The argument is the path to a TOML config file describing the domain,
the cell types and the placements to write.
`

func main() {
	if len(os.Args) != 2 {
		Fatal(fmt.Errorf("%d arguments provided (1 required)\n\n%s", len(os.Args)-1, usage))
	}
	conf, err := ParseConfig(os.Args[1])
	if err != nil {
		Fatal(err)
	}
	logger, err := newLogger(conf.LogLevel)
	if err != nil {
		Fatal(err)
	}
	if err := run(conf, logger); err != nil {
		Fatal(err)
	}
}

// Fatal prints an error on the standard error and exits with a non-zero status.
func Fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	os.Exit(1)
}

func newLogger(level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("bad log level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})), nil
}

// run places every configured batch and writes the result.
func run(conf *Config, logger *slog.Logger) error {
	mode, err := icplace.ParseSaveMode(conf.Mode)
	if err != nil {
		return err
	}

	types := make(map[string]float64, len(conf.CellTypes))
	names := make([]string, 0, len(conf.CellTypes))
	for _, ct := range conf.CellTypes {
		types[ct.Name] = ct.Volume
		names = append(names, ct.Name)
	}
	var label icplace.TypeLabel
	switch conf.TypeColumn {
	case "", "name":
		label = icplace.TypeName
	case "index":
		label = icplace.TypeIndex(names)
	default:
		return fmt.Errorf("bad type column %q", conf.TypeColumn)
	}

	var rng *rand.Rand
	if conf.Seed != 0 {
		rng = rand.New(rand.NewPCG(conf.Seed, conf.Seed))
	}
	d := conf.Domain.Domain()
	sess, err := icplace.NewSession(d, types, rng)
	if err != nil {
		return err
	}
	sess.Logger = logger

	if conf.Spots != "" {
		f, err := os.Open(conf.Spots)
		if err != nil {
			return err
		}
		sess.Spots, err = icplace.ReadSpots(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("reading %s: %w", conf.Spots, err)
		}
	}

	for i, p := range conf.Placements {
		shape, err := p.BuildShape(d)
		if err != nil {
			return fmt.Errorf("placement %d: %w", i+1, err)
		}
		req, err := p.Request()
		if err != nil {
			return fmt.Errorf("placement %d: %w", i+1, err)
		}
		sess.SetShape(shape)
		sess.Commit()
		if _, err := sess.Plot(req); err != nil {
			return fmt.Errorf("placement %d (%v): %w", i+1, shape.Kind(), err)
		}
	}

	return sess.Save(conf.Output, mode, label)
}
