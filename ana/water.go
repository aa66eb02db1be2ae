// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements reference data for water and steam used to verify the property engine
package ana

// Water holds characteristic points of ordinary water
type Water struct {
	Ttriple float64 // triple-point temperature [K]
	Ptriple float64 // triple-point pressure [MPa]
	Tboil   float64 // normal boiling temperature [K]
	Patm    float64 // standard atmospheric pressure [MPa]
	Tc      float64 // critical temperature [K]
	Pc      float64 // critical pressure [MPa]
	RhoC    float64 // critical density [kg/m³]
}

// Init initialises data
func (o *Water) Init() {
	o.Ttriple = 273.16     // [K]
	o.Ptriple = 611.657e-6 // [MPa]
	o.Tboil = 373.124      // [K]      ITS-90
	o.Patm = 0.101325      // [MPa]
	o.Tc = 647.096         // [K]
	o.Pc = 22.064          // [MPa]
	o.RhoC = 322.0         // [kg/m³]
}
