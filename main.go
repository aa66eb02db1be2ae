// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/gosteam/inp"
	"github.com/cpmech/gosteam/out"
	"github.com/cpmech/gosteam/tab"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
			os.Exit(1)
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "examples/steamtable", ".yaml", true)
	verbose := io.ArgToBool(1, true)
	doprof := io.ArgToInt(2, 0)
	io.Verbose = verbose

	// message
	if verbose {
		io.PfWhite("\nGosteam -- Go Steam Tables (IAPWS-IF97)\n")
		io.Pf("Copyright 2016 The Gofem Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"profiling: 0=none 1=CPU 2=MEM", "doprof", doprof,
		))
	}

	// profiling?
	defer startProfiling(doprof)()

	// input data
	in, err := inp.ReadInput(fnamepath)
	if err != nil {
		chk.Panic("cannot read input:\n%v", err)
	}
	solver, err := in.NewSolver()
	if err != nil {
		chk.Panic("cannot create solver:\n%v", err)
	}

	// interrupt stops sweeps
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// sweeps
	reg := prometheus.NewRegistry()
	sweeper := tab.NewSweeper(solver, in.Workers, tab.NewMetrics(reg))
	tables, sats, err := sweeper.Run(ctx, in.AllSweeps())
	if err != nil {
		chk.Panic("sweeps failed:\n%v", err)
	}

	// output
	opts := out.Options{
		Xlsx:    in.Output.Xlsx,
		Pdf:     in.Output.Pdf,
		Sqlite:  in.Output.Sqlite,
		Metrics: in.Output.Metrics,
		Plot:    in.Output.Plot,
	}
	sum, err := out.Write(ctx, in.Output.Dir, in.Key, in.Title, tables, sats, opts, reg)
	if err != nil {
		chk.Panic("cannot write output:\n%v", err)
	}
	if verbose {
		io.Pfgreen("\n%d tables and %d saturation tables written into %d files\n", len(tables), len(sats), len(sum.Files))
	}
}

// startProfiling starts CPU (doprof = 1) or memory (doprof = 2) profiling and returns the function that stops it
func startProfiling(doprof int) func() {
	if doprof < 1 {
		return func() {}
	}
	return utl.Prof(doprof == 2, false)
}
