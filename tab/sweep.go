// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tab

import (
	"context"
	"runtime"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosteam/mdl/steam"
	"golang.org/x/sync/errgroup"
)

// Sweeper evaluates sweeps of state points in parallel
//  Points failing with a physically invalid state or an out-of-range input are discarded;
//  any other error aborts the sweep
type Sweeper struct {
	Solver  *steam.Solver // property solver; nil means default parameters
	Workers int           // maximum number of concurrent evaluations; ≤ 0 means number of CPUs
	Metrics *Metrics      // optional metrics
}

// NewSweeper returns a new sweeper
func NewSweeper(solver *steam.Solver, workers int, metrics *Metrics) *Sweeper {
	if solver == nil {
		solver = steam.NewSolver()
	}
	return &Sweeper{Solver: solver, Workers: workers, Metrics: metrics}
}

// Isotherm computes states at temperature T [K] for each pressure [MPa]
func (o *Sweeper) Isotherm(ctx context.Context, name string, T float64, pressures []float64) (*Table, error) {
	states := make([]steam.State, len(pressures))
	keep, err := o.run(ctx, KindIsotherm, len(pressures), func(i int) (err error) {
		states[i], err = o.solver().Calculate(pressures[i], steam.Temperature, T)
		return
	})
	if err != nil {
		return nil, err
	}
	tbl := &Table{Name: name, Kind: KindIsotherm, Fixed: T, Quantity: steam.Pressure}
	for i, ok := range keep {
		if ok {
			tbl.States = append(tbl.States, states[i])
		} else {
			tbl.Discarded++
		}
	}
	io.Pf("tab: isotherm %q at T = %g K: %d states, %d discarded\n", name, T, len(tbl.States), tbl.Discarded)
	return tbl, nil
}

// Isobar computes states at pressure p [MPa] for each value of kind
func (o *Sweeper) Isobar(ctx context.Context, name string, p float64, kind steam.Quantity, values []float64) (*Table, error) {
	states := make([]steam.State, len(values))
	keep, err := o.run(ctx, KindIsobar, len(values), func(i int) (err error) {
		states[i], err = o.solver().Calculate(p, kind, values[i])
		return
	})
	if err != nil {
		return nil, err
	}
	tbl := &Table{Name: name, Kind: KindIsobar, Fixed: p, Quantity: kind}
	for i, ok := range keep {
		if ok {
			tbl.States = append(tbl.States, states[i])
		} else {
			tbl.Discarded++
		}
	}
	io.Pf("tab: isobar %q at p = %g MPa: %d states, %d discarded\n", name, p, len(tbl.States), tbl.Discarded)
	return tbl, nil
}

// Saturation computes saturated properties at each temperature [K]
func (o *Sweeper) Saturation(ctx context.Context, name string, temperatures []float64) (*SatTable, error) {
	points := make([]steam.Saturated, len(temperatures))
	keep, err := o.run(ctx, KindSaturation, len(temperatures), func(i int) (err error) {
		points[i], err = steam.SaturatedGivenTemperature(temperatures[i])
		return
	})
	if err != nil {
		return nil, err
	}
	tbl := &SatTable{Name: name}
	for i, ok := range keep {
		if ok {
			tbl.Points = append(tbl.Points, points[i])
		} else {
			tbl.Discarded++
		}
	}
	io.Pf("tab: saturation %q: %d points, %d discarded\n", name, len(tbl.Points), tbl.Discarded)
	return tbl, nil
}

// Sweep defines one sweep
type Sweep struct {
	Name     string         // name of table
	Kind     string         // KindIsotherm, KindIsobar or KindSaturation
	Fixed    float64        // temperature [K] of isotherms or pressure [MPa] of isobars; unused by saturation
	Quantity steam.Quantity // quantity swept along isobars
	Values   []float64      // swept values
}

// Run computes all sweeps in order
func (o *Sweeper) Run(ctx context.Context, sweeps []Sweep) (tables []*Table, sats []*SatTable, err error) {
	for _, s := range sweeps {
		switch s.Kind {
		case KindIsotherm:
			t, err := o.Isotherm(ctx, s.Name, s.Fixed, s.Values)
			if err != nil {
				return nil, nil, chk.Err("sweep %q failed:\n%v", s.Name, err)
			}
			tables = append(tables, t)
		case KindIsobar:
			t, err := o.Isobar(ctx, s.Name, s.Fixed, s.Quantity, s.Values)
			if err != nil {
				return nil, nil, chk.Err("sweep %q failed:\n%v", s.Name, err)
			}
			tables = append(tables, t)
		case KindSaturation:
			t, err := o.Saturation(ctx, s.Name, s.Values)
			if err != nil {
				return nil, nil, chk.Err("sweep %q failed:\n%v", s.Name, err)
			}
			sats = append(sats, t)
		default:
			return nil, nil, chk.Err("kind of sweep %q is incorrect\n", s.Kind)
		}
	}
	return
}

// run evaluates n points and returns which ones are kept
func (o *Sweeper) run(ctx context.Context, kind string, n int, eval func(i int) error) (keep []bool, err error) {
	defer o.Metrics.sweep(kind, time.Now())
	keep = make([]bool, n)
	workers := o.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			err := eval(i)
			switch {
			case err == nil:
				keep[i] = true
				o.Metrics.point(kind, OutcomeKept)
			case steam.IsPhysicallyInvalid(err):
				o.Metrics.point(kind, OutcomePhysicallyInvalid)
			case steam.IsOutOfRange(err):
				o.Metrics.point(kind, OutcomeOutOfRange)
			default:
				return err
			}
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}
	return
}

// solver returns the property solver
func (o *Sweeper) solver() *steam.Solver {
	if o.Solver == nil {
		return steam.NewSolver()
	}
	return o.Solver
}
