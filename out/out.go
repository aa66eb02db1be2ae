// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements writers for generated steam tables
package out

import (
	"context"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosteam/tab"
	"github.com/prometheus/client_golang/prometheus"
)

// Options selects the outputs of Write
type Options struct {
	Xlsx    bool // write spreadsheet
	Pdf     bool // write pdf document
	Sqlite  bool // save run into database
	Metrics bool // write metrics in text exposition format
	Plot    bool // draw diagrams
}

// Summary holds the outcome of Write
type Summary struct {
	RunID string   // run identifier in database; empty if Sqlite is false
	Files []string // files written
}

// Write writes all selected outputs of tables into dirout
//  fnkey    -- file name key; e.g. "steamtable" => steamtable.xlsx, steamtable.pdf, steamtable.db
//  gatherer -- source of metrics; may be nil if Metrics is false
func Write(ctx context.Context, dirout, fnkey, title string, tables []*tab.Table, sats []*tab.SatTable, opts Options, gatherer prometheus.Gatherer) (sum Summary, err error) {
	if fnkey == "" {
		return sum, chk.Err("file name key is required\n")
	}
	if err = os.MkdirAll(dirout, 0777); err != nil {
		return sum, chk.Err("cannot create output directory %q:\n%v", dirout, err)
	}
	save := func(ext string, b []byte) error {
		fn := filepath.Join(dirout, fnkey+ext)
		if err := os.WriteFile(fn, b, 0644); err != nil {
			return chk.Err("cannot write file %q:\n%v", fn, err)
		}
		sum.Files = append(sum.Files, fn)
		io.Pf("file <%s> written\n", fn)
		return nil
	}

	// spreadsheet
	if opts.Xlsx {
		b, err := BuildXLSX(title, tables, sats)
		if err != nil {
			return sum, err
		}
		if err = save(".xlsx", b); err != nil {
			return sum, err
		}
	}

	// pdf
	if opts.Pdf {
		b, err := BuildPDF(title, tables, sats)
		if err != nil {
			return sum, err
		}
		if err = save(".pdf", b); err != nil {
			return sum, err
		}
	}

	// database
	if opts.Sqlite {
		fn := filepath.Join(dirout, fnkey+".db")
		store, err := Open(fn)
		if err != nil {
			return sum, err
		}
		defer store.Close()
		if sum.RunID, err = store.SaveRun(ctx, title, tables, sats); err != nil {
			return sum, err
		}
		sum.Files = append(sum.Files, fn)
		io.Pf("run <%s> saved into <%s>\n", sum.RunID, fn)
	}

	// metrics
	if opts.Metrics {
		fn := filepath.Join(dirout, fnkey+".prom")
		if err = WriteMetrics(fn, gatherer); err != nil {
			return sum, err
		}
		sum.Files = append(sum.Files, fn)
	}

	// diagrams
	if opts.Plot {
		SteamPlots(tables, sats).Draw(dirout, fnkey)
	}
	return
}

// WriteMetrics writes all metrics gathered by g into a file in text exposition format
func WriteMetrics(filename string, g prometheus.Gatherer) error {
	if g == nil {
		return chk.Err("metrics gatherer is required\n")
	}
	if err := prometheus.WriteToTextfile(filename, g); err != nil {
		return chk.Err("cannot write metrics file %q:\n%v", filename, err)
	}
	return nil
}
