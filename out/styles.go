// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosteam/mdl/steam"
	"github.com/cpmech/gosteam/tab"
)

// colors cycled by table styles
var colors = []string{"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd", "#8c564b", "#e377c2", "#7f7f7f"}

// Styles holds one plot style per table
type Styles []*plt.A

// GetDefaultStyles returns styles for tables labelled by their fixed value
func GetDefaultStyles(tables []*tab.Table) Styles {
	sty := make([]*plt.A, len(tables))
	for i, t := range tables {
		sty[i] = &plt.A{C: colors[i%len(colors)], Ls: "-", NoClip: true, L: TableLabel(t)}
	}
	return sty
}

// TableLabel returns a legend label for a table; e.g. "T=500 K" or "p=1 MPa"
func TableLabel(t *tab.Table) string {
	if t.Kind == tab.KindIsotherm {
		return "T=" + fmtNum(t.Fixed) + " K"
	}
	return "p=" + fmtNum(t.Fixed) + " MPa"
}

// GetTexLabel returns the TeX label of a quantity, including its unit
func GetTexLabel(q steam.Quantity) string {
	switch q {
	case steam.Pressure:
		return `$p\;[MPa]$`
	case steam.Temperature:
		return `$T\;[K]$`
	case steam.Enthalpy:
		return `$h\;[kJ/kg]$`
	case steam.Entropy:
		return `$s\;[kJ/(kg\,K)]$`
	case steam.Quality:
		return `$x\;[-]$`
	}
	return "$" + q.String() + "$"
}

// Header returns the column headers of state tables in plain text
func Header() []string {
	return []string{"p [MPa]", "T [K]", "h [kJ/kg]", "s [kJ/(kg K)]", "v [m3/kg]", "rho [kg/m3]", "x [-]", "region"}
}

// SatHeader returns the column headers of saturation tables in plain text
func SatHeader() []string {
	return []string{"T [K]", "p [MPa]", "vf [m3/kg]", "vg [m3/kg]", "hf [kJ/kg]", "hfg [kJ/kg]", "hg [kJ/kg]", "sf [kJ/(kg K)]", "sg [kJ/(kg K)]"}
}

// Row returns the values of one state in the order of Header
func Row(s steam.State) []float64 {
	return []float64{s.Pressure, s.Temperature, s.SpecificEnthalpy, s.SpecificEntropy, s.SpecificVolume, s.Density(), s.Quality, float64(s.Region)}
}

// SatRow returns the values of one saturated point in the order of SatHeader
func SatRow(p steam.Saturated) []float64 {
	return []float64{p.Temperature, p.Pressure, p.Liquid.V, p.Gas.V, p.Liquid.H, p.Evaporation.H, p.Gas.H, p.Liquid.S, p.Gas.S}
}
