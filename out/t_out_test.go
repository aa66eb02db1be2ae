// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosteam/mdl/steam"
	"github.com/cpmech/gosteam/tab"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/xuri/excelize/v2"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// sampleTables computes small tables used by the tests
func sampleTables(tst *testing.T, metrics *tab.Metrics) (tables []*tab.Table, sats []*tab.SatTable) {
	ctx := context.Background()
	sw := tab.NewSweeper(steam.NewSolver(), 2, metrics)
	iso, err := sw.Isotherm(ctx, "iso500", 500, []float64{0.1, 1, 10})
	if err != nil {
		tst.Fatalf("Isotherm failed:\n%v", err)
	}
	bar, err := sw.Isobar(ctx, "bar1", 1, steam.Entropy, []float64{6, 7})
	if err != nil {
		tst.Fatalf("Isobar failed:\n%v", err)
	}
	sat, err := sw.Saturation(ctx, "sat", []float64{300, 400, 700})
	if err != nil {
		tst.Fatalf("Saturation failed:\n%v", err)
	}
	return []*tab.Table{iso, bar}, []*tab.SatTable{sat}
}

func Test_sheetname01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sheetname01")

	used := map[string]bool{SummarySheet: true}
	chk.String(tst, sheetName("a/b:c", used), "a_b_c")
	chk.String(tst, sheetName("", used), "table")
	chk.String(tst, sheetName("Summary", used), "Summary~2")
	chk.String(tst, sheetName("iso", used), "iso")
	chk.String(tst, sheetName("ISO", used), "ISO~2")
	chk.String(tst, sheetName("iso", used), "iso~3")

	long := strings.Repeat("x", 40)
	chk.String(tst, sheetName(long, used), strings.Repeat("x", 31))
	chk.String(tst, sheetName(long, used), strings.Repeat("x", 29)+"~2")
}

func Test_labels01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("labels01")

	chk.String(tst, fmtNum(500), "500")
	chk.String(tst, fmtNum(0.0005), "0.0005")
	chk.String(tst, fmtNum(22.064), "22.064")
	chk.String(tst, fmtNum(1e6), "1e+06")
	chk.String(tst, TableLabel(&tab.Table{Kind: tab.KindIsotherm, Fixed: 623.15}), "T=623.15 K")
	chk.String(tst, TableLabel(&tab.Table{Kind: tab.KindIsobar, Fixed: 0.1}), "p=0.1 MPa")
}

func Test_xlsx01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("xlsx01")

	tables, sats := sampleTables(tst, nil)
	b, err := BuildXLSX("steam", tables, sats)
	if err != nil {
		tst.Errorf("BuildXLSX failed:\n%v", err)
		return
	}

	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		tst.Errorf("OpenReader failed:\n%v", err)
		return
	}
	defer f.Close()

	chk.Strings(tst, "sheets", f.GetSheetList(), []string{SummarySheet, "iso500", "bar1", "sat"})

	cell := func(sheet, axis string) string {
		v, err := f.GetCellValue(sheet, axis)
		if err != nil {
			tst.Errorf("GetCellValue(%s,%s) failed:\n%v", sheet, axis, err)
		}
		return v
	}
	chk.String(tst, cell(SummarySheet, "A1"), "steam")
	chk.String(tst, cell(SummarySheet, "A4"), "iso500")
	chk.String(tst, cell(SummarySheet, "B4"), tab.KindIsotherm)
	chk.String(tst, cell(SummarySheet, "E4"), "3")
	chk.String(tst, cell(SummarySheet, "B6"), tab.KindSaturation)
	chk.String(tst, cell(SummarySheet, "E6"), "2")
	chk.String(tst, cell(SummarySheet, "F6"), "1")
	chk.String(tst, cell("iso500", "A1"), Header()[0])
	chk.String(tst, cell("iso500", "H1"), "region")
	chk.String(tst, cell("sat", "I1"), SatHeader()[8])

	rows, err := f.GetRows("iso500")
	if err != nil {
		tst.Errorf("GetRows failed:\n%v", err)
		return
	}
	chk.Int(tst, "number of rows", len(rows), 4)
}

func Test_pdf01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pdf01")

	tables, sats := sampleTables(tst, nil)
	b, err := BuildPDF("steam", tables, sats)
	if err != nil {
		tst.Errorf("BuildPDF failed:\n%v", err)
		return
	}
	if !bytes.HasPrefix(b, []byte("%PDF")) {
		tst.Errorf("document must start with %%PDF\n")
	}
}

func Test_store01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("store01")

	tables, sats := sampleTables(tst, nil)
	ctx := context.Background()

	store, err := Open(filepath.Join(tst.TempDir(), "steam.db"))
	if err != nil {
		tst.Errorf("Open failed:\n%v", err)
		return
	}
	defer store.Close()

	id1, err := store.SaveRun(ctx, "first", tables, sats)
	if err != nil {
		tst.Errorf("SaveRun failed:\n%v", err)
		return
	}
	id2, err := store.SaveRun(ctx, "second", tables[:1], nil)
	if err != nil {
		tst.Errorf("SaveRun failed:\n%v", err)
		return
	}
	if id1 == id2 {
		tst.Errorf("run identifiers must be unique\n")
	}

	runs, err := store.Runs(ctx)
	if err != nil {
		tst.Errorf("Runs failed:\n%v", err)
		return
	}
	chk.Int(tst, "number of runs", len(runs), 2)

	// states
	for _, t := range tables {
		res, err := store.LoadTable(ctx, id1, t.Name)
		if err != nil {
			tst.Errorf("LoadTable failed:\n%v", err)
			return
		}
		chk.String(tst, res.Kind, t.Kind)
		chk.Float64(tst, "fixed", 1e-15, res.Fixed, t.Fixed)
		chk.Int(tst, "quantity", int(res.Quantity), int(t.Quantity))
		chk.Int(tst, "discarded", res.Discarded, t.Discarded)
		chk.Int(tst, "number of states", len(res.States), len(t.States))
		for i, s := range t.States {
			chk.Array(tst, io.Sf("%s: state %d", t.Name, i), 1e-15, Row(res.States[i]), Row(s))
		}
	}

	// saturation
	res, err := store.LoadSatTable(ctx, id1, "sat")
	if err != nil {
		tst.Errorf("LoadSatTable failed:\n%v", err)
		return
	}
	chk.Int(tst, "discarded", res.Discarded, sats[0].Discarded)
	chk.Int(tst, "number of points", len(res.Points), len(sats[0].Points))
	for i, p := range sats[0].Points {
		chk.Array(tst, io.Sf("sat: point %d", i), 1e-15, SatRow(res.Points[i]), SatRow(p))
	}

	// errors
	if _, err = store.LoadTable(ctx, id1, "sat"); err == nil {
		tst.Errorf("LoadTable of saturation table must fail\n")
	}
	if _, err = store.LoadSatTable(ctx, id1, "iso500"); err == nil {
		tst.Errorf("LoadSatTable of isotherm must fail\n")
	}
	if _, err = store.LoadTable(ctx, id2, "bar1"); err == nil {
		tst.Errorf("LoadTable of missing table must fail\n")
	}
	if _, err = Open(" "); err == nil {
		tst.Errorf("Open with empty path must fail\n")
	}
}

func Test_write01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("write01")

	reg := prometheus.NewRegistry()
	tables, sats := sampleTables(tst, tab.NewMetrics(reg))
	dirout := filepath.Join(tst.TempDir(), "results")
	opts := Options{Xlsx: true, Pdf: true, Sqlite: true, Metrics: true, Plot: chk.Verbose}

	sum, err := Write(context.Background(), dirout, "steam", "steam", tables, sats, opts, reg)
	if err != nil {
		tst.Errorf("Write failed:\n%v", err)
		return
	}
	if sum.RunID == "" {
		tst.Errorf("run identifier must be set\n")
	}
	chk.Int(tst, "number of files", len(sum.Files), 4)
	for _, ext := range []string{".xlsx", ".pdf", ".db", ".prom"} {
		if _, err := os.Stat(filepath.Join(dirout, "steam"+ext)); err != nil {
			tst.Errorf("file with extension %s must exist:\n%v", ext, err)
		}
	}

	b, err := os.ReadFile(filepath.Join(dirout, "steam.prom"))
	if err != nil {
		tst.Errorf("cannot read metrics:\n%v", err)
		return
	}
	if !strings.Contains(string(b), "gosteam_sweep_points_total") {
		tst.Errorf("metrics file must contain the points counter\n")
	}

	// errors
	if _, err = Write(context.Background(), dirout, "", "steam", tables, sats, opts, reg); err == nil {
		tst.Errorf("Write without file name key must fail\n")
	}
	if err = WriteMetrics(filepath.Join(dirout, "none.prom"), nil); err == nil {
		tst.Errorf("WriteMetrics without gatherer must fail\n")
	}
}

func Test_plot01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plot01")

	tables, sats := sampleTables(tst, nil)
	p := SteamPlots(tables, sats)
	chk.Int(tst, "number of subplots", len(p.Splots), 2)
	chk.Int(tst, "number of curves", len(p.Splots[0].Data), 4)
	chk.String(tst, p.Splots[0].Ylbl, GetTexLabel(steam.Temperature))
	chk.String(tst, p.Splots[1].Ylbl, GetTexLabel(steam.Enthalpy))

	d := p.Splots[1].Data[0]
	chk.Array(tst, "h liquid", 1e-15, d.Y, []float64{sats[0].Points[0].Liquid.H, sats[0].Points[1].Liquid.H})

	if chk.Verbose {
		p.Draw("/tmp/gosteam", "out_plot01")
	}
}
