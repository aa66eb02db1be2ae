// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tab

import (
	"context"
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosteam/mdl/if97"
	"github.com/cpmech/gosteam/mdl/steam"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_ranges01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ranges01")

	r := Range{0.0005, 0.01, 0.0005}
	chk.Int(tst, "num", r.Num(), 20)
	v := r.Values()
	chk.Float64(tst, "first", 1e-17, v[0], 0.0005)
	chk.Float64(tst, "last", 1e-15, v[len(v)-1], 0.01)

	chk.Int(tst, "entropy values", len(EntropyRange().Values()), 101)
	chk.Array(tst, "single", 1e-17, Range{1, 1, 0.5}.Values(), []float64{1})
	chk.Array(tst, "partial", 1e-15, Range{1, 2.2, 0.5}.Values(), []float64{1, 1.5, 2})

	pressures := Values(PressureRanges())
	io.Pforan("number of pressures = %d\n", len(pressures))
	chk.Int(tst, "pressures", len(pressures), 168)
	for i := 1; i < len(pressures); i++ {
		if pressures[i] <= pressures[i-1] {
			tst.Errorf("pressures must increase: p[%d]=%g ≤ p[%d]=%g\n", i, pressures[i], i-1, pressures[i-1])
			return
		}
	}
	chk.Float64(tst, "last pressure", 1e-13, pressures[len(pressures)-1], 100)

	for _, bad := range []Range{{1, 0, 0.1}, {0, 1, 0}, {0, 1, -1}} {
		if err := bad.Check(); err == nil {
			tst.Errorf("range %+v should be rejected\n", bad)
			return
		}
	}
	if err := r.Check(); err != nil {
		tst.Errorf("Check failed: %v\n", err)
	}
}

func Test_sweep01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sweep01. isotherm")

	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	sweeper := NewSweeper(nil, 4, metrics)

	pressures := Values(PressureRanges())
	tbl, err := sweeper.Isotherm(context.Background(), "T=500", 500, pressures)
	if err != nil {
		tst.Errorf("Isotherm failed: %v\n", err)
		return
	}
	chk.Int(tst, "all points kept", len(tbl.States), len(pressures))
	chk.Int(tst, "discarded", tbl.Discarded, 0)
	chk.Array(tst, "order", 1e-17, tbl.Column(steam.Pressure), pressures)

	// vapour below psat(500) = 2.64 MPa; liquid above
	for _, s := range tbl.States {
		want := if97.Region2
		if s.Pressure > 2.638897756273222 {
			want = if97.Region1
		}
		if s.Region != want {
			tst.Errorf("p=%g: region should be %v. got %v\n", s.Pressure, want, s.Region)
			return
		}
	}
	chk.Float64(tst, "kept", 1e-17, testutil.ToFloat64(metrics.Points.WithLabelValues(KindIsotherm, OutcomeKept)), float64(len(pressures)))

	// near the triple point some states have negative entropy and are discarded
	tbl, err = sweeper.Isotherm(context.Background(), "T=273.15", 273.15, pressures)
	if err != nil {
		tst.Errorf("Isotherm failed: %v\n", err)
		return
	}
	io.Pforan("T=273.15: kept=%d discarded=%d\n", len(tbl.States), tbl.Discarded)
	if tbl.Discarded == 0 {
		tst.Errorf("some states should have been discarded\n")
		return
	}
	chk.Int(tst, "kept+discarded", len(tbl.States)+tbl.Discarded, len(pressures))
	chk.Float64(tst, "physically invalid", 1e-17, testutil.ToFloat64(metrics.Points.WithLabelValues(KindIsotherm, OutcomePhysicallyInvalid)), float64(tbl.Discarded))
	for _, s := range tbl.States {
		if s.SpecificEntropy < 0 || s.SpecificEnthalpy < 0 {
			tst.Errorf("invalid state kept: %+v\n", s)
			return
		}
	}
}

func Test_sweep02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sweep02. isobar")

	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	sweeper := NewSweeper(steam.NewSolver(), 3, metrics)

	entropies := EntropyRange().Values()
	tbl, err := sweeper.Isobar(context.Background(), "p=1", 1, steam.Entropy, entropies)
	if err != nil {
		tst.Errorf("Isobar failed: %v\n", err)
		return
	}
	io.Pforan("p=1: kept=%d discarded=%d\n", len(tbl.States), tbl.Discarded)
	chk.Int(tst, "kept+discarded", len(tbl.States)+tbl.Discarded, len(entropies))
	if tbl.Discarded == 0 {
		tst.Errorf("entropies above s(1 MPa, 1073.15 K) should be discarded\n")
		return
	}

	// temperature increases with entropy along the isobar
	T := tbl.Column(steam.Temperature)
	for i := 1; i < len(T); i++ {
		if T[i] < T[i-1] {
			tst.Errorf("temperature must not decrease along the isobar\n")
			return
		}
	}
	nout := testutil.ToFloat64(metrics.Points.WithLabelValues(KindIsobar, OutcomeOutOfRange))
	ninv := testutil.ToFloat64(metrics.Points.WithLabelValues(KindIsobar, OutcomePhysicallyInvalid))
	chk.Float64(tst, "discarded", 1e-17, nout+ninv, float64(tbl.Discarded))
	chk.Float64(tst, "kept", 1e-17, testutil.ToFloat64(metrics.Points.WithLabelValues(KindIsobar, OutcomeKept)), float64(len(tbl.States)))
	if nout < 15 {
		tst.Errorf("entropies above 8.6 should be out of range. got %g\n", nout)
		return
	}

	// two-phase points have the saturation temperature
	for _, s := range tbl.States {
		if s.Region == if97.Region4 {
			chk.Float64(tst, "Tsat", 1e-9, s.Temperature, 453.0356323914666)
		}
	}
}

func Test_sweep03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sweep03. saturation")

	sweeper := NewSweeper(nil, 0, nil)
	temperatures := Range{600, 660, 10}.Values()
	tbl, err := sweeper.Saturation(context.Background(), "sat", temperatures)
	if err != nil {
		tst.Errorf("Saturation failed: %v\n", err)
		return
	}
	chk.Int(tst, "points", len(tbl.Points), 5)
	chk.Int(tst, "discarded", tbl.Discarded, 2)
	chk.Float64(tst, "T[4]", 1e-17, tbl.Points[4].Temperature, 640)
	chk.Float64(tst, "psat(640)", 1e-11, tbl.Points[4].Pressure, 20.265942167297563)
}

func Test_sweep04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sweep04. cancellation and errors")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sweeper := NewSweeper(nil, 2, nil)
	_, err := sweeper.Isotherm(ctx, "cancelled", 500, Values(PressureRanges()))
	if !errors.Is(err, context.Canceled) {
		tst.Errorf("cancelled sweep should fail with context.Canceled. err = %v\n", err)
		return
	}

	// convergence failures abort the sweep
	sweeper = NewSweeper(&steam.Solver{Tol: 1e-8, MaxIt: 1}, 2, nil)
	_, err = sweeper.Isobar(context.Background(), "p=10", 10, steam.Entropy, []float64{6.0, 6.5, 7.0})
	var cerr *if97.ConvergenceError
	if !errors.As(err, &cerr) {
		tst.Errorf("sweep should fail with ConvergenceError. err = %v\n", err)
		return
	}
}

func Test_sweep05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sweep05. run")

	sweeper := NewSweeper(nil, 3, nil)
	sweeps := []Sweep{
		{Name: "T=400", Kind: KindIsotherm, Fixed: 400, Values: []float64{0.1, 1, 10}},
		{Name: "sat", Kind: KindSaturation, Values: []float64{300, 700}},
		{Name: "p=1", Kind: KindIsobar, Fixed: 1, Quantity: steam.Entropy, Values: []float64{6, 7}},
	}
	tables, sats, err := sweeper.Run(context.Background(), sweeps)
	if err != nil {
		tst.Errorf("Run failed: %v\n", err)
		return
	}
	chk.Int(tst, "tables", len(tables), 2)
	chk.Int(tst, "sats", len(sats), 1)
	chk.String(tst, tables[0].Name, "T=400")
	chk.String(tst, tables[1].Name, "p=1")
	chk.Int(tst, "isotherm states", len(tables[0].States), 3)
	chk.Int(tst, "isobar states", len(tables[1].States), 2)
	chk.Int(tst, "sat points", len(sats[0].Points), 1)
	chk.Int(tst, "sat discarded", sats[0].Discarded, 1)

	// errors
	_, _, err = sweeper.Run(context.Background(), []Sweep{{Name: "bad", Kind: "isochore"}})
	if err == nil {
		tst.Errorf("unknown kind of sweep should fail\n")
	}
}
