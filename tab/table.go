// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tab

import "github.com/cpmech/gosteam/mdl/steam"

// kinds of sweep
const (
	KindIsotherm   = "isotherm"
	KindIsobar     = "isobar"
	KindSaturation = "saturation"
)

// Table holds the states computed along an isotherm or an isobar
type Table struct {
	Name      string         // name of table
	Kind      string         // KindIsotherm or KindIsobar
	Fixed     float64        // temperature [K] of isotherms or pressure [MPa] of isobars
	Quantity  steam.Quantity // swept quantity
	States    []steam.State  // valid states in sweep order
	Discarded int            // number of discarded points
}

// SatTable holds saturated properties along the saturation curve
type SatTable struct {
	Name      string            // name of table
	Points    []steam.Saturated // valid points in sweep order
	Discarded int               // number of discarded points
}

// Column returns the values of one quantity of all states
func (o *Table) Column(kind steam.Quantity) (res []float64) {
	res = make([]float64, len(o.States))
	for i, s := range o.States {
		switch kind {
		case steam.Pressure:
			res[i] = s.Pressure
		case steam.Temperature:
			res[i] = s.Temperature
		case steam.Enthalpy:
			res[i] = s.SpecificEnthalpy
		case steam.Entropy:
			res[i] = s.SpecificEntropy
		case steam.Quality:
			res[i] = s.Quality
		}
	}
	return
}
