// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a steam-table (.yaml) file
package inp

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosteam/mdl/if97"
	"github.com/cpmech/gosteam/mdl/steam"
	"github.com/cpmech/gosteam/tab"
	"gopkg.in/yaml.v3"
)

// Input holds all data read from an input file
type Input struct {

	// input data
	Title   string       `yaml:"title"`   // title of steam tables
	Workers int          `yaml:"workers"` // maximum number of concurrent evaluations; 0 means number of CPUs
	Solver  dbf.Params   `yaml:"solver"`  // solver parameters; e.g. tol, maxit
	Sweeps  []*SweepData `yaml:"sweeps"`  // sweeps to be computed
	Output  OutputData   `yaml:"output"`  // output options

	// derived
	Key string // key of input file; e.g. "steamtable" for "steamtable.yaml"
}

// SweepData holds the definition of one sweep
type SweepData struct {

	// input data
	Name        string      `yaml:"name"`        // name of table
	Kind        string      `yaml:"kind"`        // "isotherm", "isobar" or "saturation"
	Temperature float64     `yaml:"temperature"` // temperature of isotherm [K]
	Pressure    float64     `yaml:"pressure"`    // pressure of isobar [MPa]
	Quantity    string      `yaml:"quantity"`    // quantity swept along isobar; default = entropy
	Ranges      []tab.Range `yaml:"ranges"`      // swept values; default depends on kind

	// derived
	Qty steam.Quantity // swept quantity
}

// OutputData holds output options
type OutputData struct {
	Dir     string `yaml:"dir"`     // directory for output; default = /tmp/gosteam/<key>
	Xlsx    bool   `yaml:"xlsx"`    // write spreadsheet
	Pdf     bool   `yaml:"pdf"`     // write printable tables
	Sqlite  bool   `yaml:"sqlite"`  // save run to database
	Metrics bool   `yaml:"metrics"` // write metrics in text format
	Plot    bool   `yaml:"plot"`    // plot T-s diagram
}

// ReadInput reads input file
func ReadInput(path string) (o *Input, err error) {
	b, err := os.ReadFile(os.ExpandEnv(path))
	if err != nil {
		return nil, chk.Err("cannot read input file %q:\n%v", path, err)
	}
	return ParseInput(b, io.FnKey(filepath.Base(path)))
}

// ParseInput parses the contents of an input file
func ParseInput(b []byte, key string) (o *Input, err error) {
	o = new(Input)
	if err = yaml.Unmarshal(b, o); err != nil {
		return nil, chk.Err("cannot unmarshal input file:\n%v", err)
	}
	o.Key = key
	if o.Key == "" {
		o.Key = "gosteam"
	}
	if err = o.PostProcess(); err != nil {
		return nil, err
	}
	return
}

// PostProcess sets default values and checks data
func (o *Input) PostProcess() (err error) {

	// global data
	if o.Title == "" {
		o.Title = "Steam tables"
	}
	if o.Workers < 0 {
		return chk.Err("number of workers must not be negative. workers = %d is incorrect\n", o.Workers)
	}
	if o.Output.Dir == "" {
		o.Output.Dir = "/tmp/gosteam/" + o.Key
	}
	if len(o.Sweeps) == 0 {
		return chk.Err("input file must have at least one sweep\n")
	}

	// solver parameters
	if _, err = o.NewSolver(); err != nil {
		return
	}

	// sweeps
	names := make(map[string]bool)
	for i, sw := range o.Sweeps {
		if sw == nil {
			return chk.Err("sweep # %d is empty\n", i)
		}
		if sw.Name == "" {
			sw.Name = io.Sf("sweep%d", i)
		}
		if names[sw.Name] {
			return chk.Err("sweep named %q is repeated\n", sw.Name)
		}
		names[sw.Name] = true
		if err = sw.PostProcess(); err != nil {
			return chk.Err("sweep %q: %v", sw.Name, err)
		}
	}
	return
}

// NewSolver returns a new property solver initialised with the solver parameters
func (o *Input) NewSolver() (*steam.Solver, error) {
	solver := steam.NewSolver()
	if err := solver.Init(o.Solver); err != nil {
		return nil, err
	}
	return solver, nil
}

// PostProcess sets default values and checks sweep data
func (o *SweepData) PostProcess() (err error) {
	o.Kind = strings.ToLower(o.Kind)
	switch o.Kind {
	case tab.KindIsotherm:
		if !(o.Temperature >= if97.Tmin) || o.Temperature > if97.Tmax {
			return chk.Err("isotherm temperature %g K is out of range [%g, %g]\n", o.Temperature, if97.Tmin, if97.Tmax)
		}
		o.Qty = steam.Pressure
		if len(o.Ranges) == 0 {
			o.Ranges = tab.PressureRanges()
		}
	case tab.KindIsobar:
		if !(o.Pressure > 0) || o.Pressure > if97.Pmax {
			return chk.Err("isobar pressure %g MPa is out of range (0, %g]\n", o.Pressure, if97.Pmax)
		}
		if o.Quantity == "" {
			o.Quantity = "entropy"
		}
		if o.Qty, err = steam.ParseQuantity(o.Quantity); err != nil {
			return
		}
		if o.Qty == steam.Pressure {
			return chk.Err("pressure cannot be swept along an isobar\n")
		}
		if len(o.Ranges) == 0 {
			if o.Qty != steam.Entropy {
				return chk.Err("isobar sweeping %v requires ranges\n", o.Qty)
			}
			o.Ranges = []tab.Range{tab.EntropyRange()}
		}
	case tab.KindSaturation:
		o.Qty = steam.Temperature
		if len(o.Ranges) == 0 {
			o.Ranges = []tab.Range{tab.SaturationRange()}
		}
	default:
		return chk.Err("kind of sweep %q is incorrect; options are isotherm, isobar and saturation\n", o.Kind)
	}
	for _, r := range o.Ranges {
		if err = r.Check(); err != nil {
			return
		}
	}
	return
}

// Values returns the swept values
func (o *SweepData) Values() []float64 {
	return tab.Values(o.Ranges)
}

// Sweep returns the definition of the sweep
func (o *SweepData) Sweep() tab.Sweep {
	s := tab.Sweep{Name: o.Name, Kind: o.Kind, Quantity: o.Qty, Values: o.Values()}
	switch o.Kind {
	case tab.KindIsotherm:
		s.Fixed = o.Temperature
	case tab.KindIsobar:
		s.Fixed = o.Pressure
	}
	return s
}

// AllSweeps returns the definitions of all sweeps
func (o *Input) AllSweeps() (res []tab.Sweep) {
	for _, s := range o.Sweeps {
		res = append(res, s.Sweep())
	}
	return
}
