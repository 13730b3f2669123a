package main

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/PhysiCell-Tools/icplace"
)

// Config holds everything needed to place the initial cells of a simulation.
type Config struct {
	// Output is the path of the positions CSV.
	Output string
	// Mode is "overwrite" or "append".
	Mode string
	// Seed seeds the random sampler; 0 picks a random seed.
	Seed     uint64
	LogLevel string `toml:"log_level"`
	// TypeColumn is "name" or "index" (position in the cell_type list).
	TypeColumn string `toml:"type_column"`
	// Spots is an optional CSV of normalized spot coordinates for spatial placements.
	Spots string

	Domain     DomainConfig
	CellTypes  []CellTypeConfig  `toml:"cell_type"`
	Placements []PlacementConfig `toml:"placement"`
}

type DomainConfig struct {
	XMin float64 `toml:"xmin"`
	XMax float64 `toml:"xmax"`
	YMin float64 `toml:"ymin"`
	YMax float64 `toml:"ymax"`
	ZMin float64 `toml:"zmin"`
	ZMax float64 `toml:"zmax"`
	ZDel float64 `toml:"zdel"`
}

type CellTypeConfig struct {
	Name   string
	Volume float64 // unit: micron³
}

// PlacementConfig is one plot action. Shape parameters that are left out
// take the value of the default shape for the domain.
type PlacementConfig struct {
	Shape    string
	CellType string  `toml:"cell_type"`
	Count    int
	Method   string  // random or hex
	Spacing  float64 // hex pitch factor
	PerSpot  int     `toml:"n_per_spot"`

	X0     *float64 `toml:"x0"`
	Y0     *float64 `toml:"y0"`
	Z0     *float64 `toml:"z0"`
	Width  *float64
	Height *float64
	Depth  *float64
	R      *float64 `toml:"r"`
	R0     *float64 `toml:"r0"`
	R1     *float64 `toml:"r1"`
	Theta1 *float64 `toml:"theta1"`
	Theta2 *float64 `toml:"theta2"`
	RMod   *int     `toml:"rmod"`
}

// DefaultConf are the default parameters: PhysiCell's default 2D domain with
// a single cell type.
var DefaultConf = Config{
	Output:     "cells.csv",
	Mode:       "overwrite",
	LogLevel:   "info",
	TypeColumn: "name",
	Domain: DomainConfig{
		XMin: -500, XMax: 500,
		YMin: -500, YMax: 500,
		ZMin: -10, ZMax: 10,
		ZDel: 20,
	},
	CellTypes: []CellTypeConfig{{Name: "default", Volume: 2494}},
}

// ParseConfig parses the TOML config file whose path is provided.
func ParseConfig(path string) (*Config, error) {
	// config file overwrites default parameters
	conf := DefaultConf
	conf.CellTypes = nil
	if _, err := toml.DecodeFile(path, &conf); err != nil {
		return nil, err
	}
	if len(conf.CellTypes) == 0 {
		conf.CellTypes = DefaultConf.CellTypes
	}
	return &conf, nil
}

func (c DomainConfig) Domain() icplace.Domain {
	return icplace.Domain{
		XMin: c.XMin, XMax: c.XMax,
		YMin: c.YMin, YMax: c.YMax,
		ZMin: c.ZMin, ZMax: c.ZMax,
		ZDel: c.ZDel,
	}
}

// Kind returns the placement's shape kind.
func (p PlacementConfig) Kind() (icplace.Kind, error) {
	return icplace.ParseKind(p.Shape)
}

// BuildShape returns the placement's shape, filling unset parameters from
// the default shape of its kind.
func (p PlacementConfig) BuildShape(d icplace.Domain) (icplace.Shape, error) {
	k, err := p.Kind()
	if err != nil {
		return nil, err
	}
	set := func(dst *float64, v *float64) {
		if v != nil {
			*dst = *v
		}
	}
	switch s := icplace.DefaultShape(d, k, nil).(type) {
	case icplace.Everywhere:
		return s, nil
	case icplace.Rectangle:
		set(&s.X0, p.X0)
		set(&s.Y0, p.Y0)
		set(&s.Z0, p.Z0)
		set(&s.Width, p.Width)
		set(&s.Height, p.Height)
		set(&s.Depth, p.Depth)
		return s, nil
	case icplace.Disc:
		set(&s.X0, p.X0)
		set(&s.Y0, p.Y0)
		set(&s.R, p.R)
		return s, nil
	case icplace.Annulus:
		set(&s.X0, p.X0)
		set(&s.Y0, p.Y0)
		set(&s.R0, p.R0)
		set(&s.R1, p.R1)
		return s, nil
	case icplace.Wedge:
		set(&s.X0, p.X0)
		set(&s.Y0, p.Y0)
		set(&s.R0, p.R0)
		set(&s.R1, p.R1)
		set(&s.Theta1, p.Theta1)
		set(&s.Theta2, p.Theta2)
		return s, nil
	case icplace.Ring:
		set(&s.X0, p.X0)
		set(&s.Y0, p.Y0)
		set(&s.R, p.R)
		set(&s.Theta1, p.Theta1)
		set(&s.Theta2, p.Theta2)
		if p.RMod != nil {
			s.RMod = *p.RMod
		}
		return s, nil
	case icplace.Spatial:
		set(&s.X0, p.X0)
		set(&s.Y0, p.Y0)
		set(&s.Z0, p.Z0)
		set(&s.Width, p.Width)
		set(&s.Height, p.Height)
		set(&s.Depth, p.Depth)
		return s, nil
	default:
		return nil, fmt.Errorf("unsupported shape %q", p.Shape)
	}
}

// Request returns the plot request for the placement.
func (p PlacementConfig) Request() (icplace.PlotRequest, error) {
	m, err := icplace.ParseMethod(p.Method)
	if err != nil {
		return icplace.PlotRequest{}, err
	}
	return icplace.PlotRequest{
		CellType: p.CellType,
		Count:    p.Count,
		Method:   m,
		Spacing:  p.Spacing,
		PerSpot:  p.PerSpot,
	}, nil
}
