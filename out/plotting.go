// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/gosteam/mdl/steam"
	"github.com/cpmech/gosteam/tab"
)

// PltEntity stores all data for a plot entity (X vs Y)
type PltEntity struct {
	Alias string    // alias
	X     []float64 // x-values
	Y     []float64 // y-values
	Style *plt.A    // style
}

// SplotDat stores all data for one subplot
type SplotDat struct {
	Id    string       // unique identifier
	Title string       // title of subplot
	Xlbl  string       // x-axis label (formatted; e.g. "$s$")
	Ylbl  string       // y-axis label (formatted; e.g. "$T$")
	Data  []*PltEntity // data and styles to be plotted
}

// Plotter collects subplots of steam tables
type Plotter struct {
	Splots []*SplotDat // all subplots
	Csplot *SplotDat   // current subplot
}

// Splot activates a new subplot window with axes x and y
func (o *Plotter) Splot(id, splotTitle string, x, y steam.Quantity) {
	s := &SplotDat{Id: id, Title: splotTitle, Xlbl: GetTexLabel(x), Ylbl: GetTexLabel(y)}
	o.Splots = append(o.Splots, s)
	o.Csplot = s
}

// Plot adds a curve to the current subplot
func (o *Plotter) Plot(x, y []float64, alias string, sty *plt.A) {
	if len(x) != len(y) {
		chk.Panic("lengths of x- and y-series are different. len(x)=%d, len(y)=%d", len(x), len(y))
	}
	if o.Csplot == nil {
		chk.Panic("Splot must be called before Plot\n")
	}
	o.Csplot.Data = append(o.Csplot.Data, &PltEntity{alias, x, y, sty})
}

// Draw draws all subplots and saves figure
//  dirout -- directory to save figure
//  fnkey  -- file name key; e.g. "steamtable"
func (o *Plotter) Draw(dirout, fnkey string) {
	plt.Reset(false, nil)
	nr, nc := utl.BestSquare(len(o.Splots))
	for k, spl := range o.Splots {
		plt.Subplot(nr, nc, k+1)
		if spl.Title != "" {
			plt.Title(spl.Title, nil)
		}
		for _, d := range spl.Data {
			sty := d.Style
			if sty == nil {
				sty = &plt.A{NoClip: true}
			}
			if sty.L == "" {
				sty.L = d.Alias
			}
			plt.Plot(d.X, d.Y, sty)
		}
		plt.Gll(spl.Xlbl, spl.Ylbl, nil)
	}
	plt.Save(dirout, fnkey)
}

// SteamPlots builds the temperature-entropy and enthalpy-entropy diagrams of tables,
// with the saturation dome taken from saturation tables
func SteamPlots(tables []*tab.Table, sats []*tab.SatTable) (o *Plotter) {
	o = new(Plotter)
	sty := GetDefaultStyles(tables)
	diagrams := []struct {
		id, title string
		y         steam.Quantity
	}{
		{"T-s", "temperature-entropy", steam.Temperature},
		{"h-s", "enthalpy-entropy", steam.Enthalpy},
	}
	for _, dg := range diagrams {
		o.Splot(dg.id, dg.title, steam.Entropy, dg.y)
		for _, sat := range sats {
			sl, sg, yl, yg := dome(sat, dg.y)
			o.Plot(sl, yl, sat.Name+" liquid", &plt.A{C: "k", Ls: "-", NoClip: true})
			o.Plot(sg, yg, sat.Name+" vapour", &plt.A{C: "k", Ls: "--", NoClip: true})
		}
		for i, t := range tables {
			if len(t.States) == 0 {
				continue
			}
			o.Plot(t.Column(steam.Entropy), t.Column(dg.y), TableLabel(t), sty[i])
		}
	}
	io.Pf("> %d subplots with %d tables and %d saturation tables\n", len(o.Splots), len(tables), len(sats))
	return
}

// auxiliary /////////////////////////////////////////////////////////////////////////////////////////

// dome returns the entropies and the y-quantity along both saturation lines
func dome(sat *tab.SatTable, y steam.Quantity) (sl, sg, yl, yg []float64) {
	n := len(sat.Points)
	sl, sg = make([]float64, n), make([]float64, n)
	yl, yg = make([]float64, n), make([]float64, n)
	for i, p := range sat.Points {
		sl[i], sg[i] = p.Liquid.S, p.Gas.S
		if y == steam.Enthalpy {
			yl[i], yg[i] = p.Liquid.H, p.Gas.H
		} else {
			yl[i], yg[i] = p.Temperature, p.Temperature
		}
	}
	return
}
