// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package steam

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosteam/mdl/if97"
)

func Test_saturated01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("saturated01")

	// 1 MPa
	sat, err := SaturatedProperties(1, 453.0356323914666)
	if err != nil {
		tst.Errorf("SaturatedProperties failed: %v\n", err)
		return
	}
	io.Pforan("liquid = %+v\n", sat.Liquid)
	io.Pforan("gas    = %+v\n", sat.Gas)
	chk.Float64(tst, "p", 1e-17, sat.Pressure, 1)
	chk.Float64(tst, "vf", 1e-15, sat.Liquid.V, 0.0011272337454016697)
	chk.Float64(tst, "hf", 1e-8, sat.Liquid.H, 762.6828443354107)
	chk.Float64(tst, "sf", 1e-11, sat.Liquid.S, 2.138431350899127)
	chk.Float64(tst, "vg", 1e-12, sat.Gas.V, 0.1943488843273919)
	chk.Float64(tst, "hg", 1e-8, sat.Gas.H, 2777.119537684662)
	chk.Float64(tst, "sg", 1e-11, sat.Gas.S, 6.58497899635217)
	chk.Float64(tst, "hfg", 1e-13, sat.Evaporation.H, sat.Gas.H-sat.Liquid.H)
	chk.Float64(tst, "sfg", 1e-15, sat.Evaporation.S, sat.Gas.S-sat.Liquid.S)

	// atmospheric boiling
	sat, err = SaturatedGivenTemperature(373.15)
	if err != nil {
		tst.Errorf("SaturatedGivenTemperature failed: %v\n", err)
		return
	}
	chk.Float64(tst, "psat(373.15)", 0.005*0.101325, sat.Pressure, 0.101325)
	chk.Float64(tst, "hf(373.15)", 1e-8, sat.Liquid.H, 419.0991549977031)
	chk.Float64(tst, "hg(373.15)", 1e-8, sat.Gas.H, 2675.5720292208343)

	// near-critical
	sat, err = SaturatedGivenTemperature(640)
	if err != nil {
		tst.Errorf("SaturatedGivenTemperature failed: %v\n", err)
		return
	}
	chk.Float64(tst, "psat(640)", 1e-11, sat.Pressure, 20.265942167297563)
	chk.Float64(tst, "vf(640)", 1e-12, sat.Liquid.V, 0.0020763594811290553)
	chk.Float64(tst, "vg(640)", 1e-11, sat.Gas.V, 0.005636939090723)

	// given pressure
	sat, err = SaturatedGivenPressure(10)
	if err != nil {
		tst.Errorf("SaturatedGivenPressure failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Tsat(10)", 1e-9, sat.Temperature, 584.1494879985282)
}

func Test_saturated02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("saturated02. round trip and monotonicity")

	prev := 0.0
	for T := 300.0; T <= 640.0; T += 10 {
		pt, err := SaturationAtTemperature(T)
		if err != nil {
			tst.Errorf("SaturationAtTemperature failed: %v\n", err)
			return
		}
		if pt.Pressure <= prev {
			tst.Errorf("psat must increase with T\n")
			return
		}
		prev = pt.Pressure
		back, err := SaturationAtPressure(pt.Pressure)
		if err != nil {
			tst.Errorf("SaturationAtPressure failed: %v\n", err)
			return
		}
		chk.Float64(tst, io.Sf("T @ %g", T), 1e-4, back.Temperature, T)

		// liquid side is denser; vapour side has larger enthalpy and entropy
		sat, err := SaturatedProperties(pt.Pressure, pt.Temperature)
		if err != nil {
			tst.Errorf("SaturatedProperties failed: %v\n", err)
			return
		}
		if sat.Evaporation.V <= 0 || sat.Evaporation.H <= 0 || sat.Evaporation.S <= 0 {
			tst.Errorf("evaporation properties must be positive at T=%g: %+v\n", T, sat.Evaporation)
			return
		}
	}
}

func Test_saturated03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("saturated03. errors")

	for _, T := range []float64{200, 273, 650, 700} {
		if _, err := SaturationPressure(T); !IsOutOfRange(err) {
			tst.Errorf("SaturationPressure(%g) should fail with OutOfRangeError. err = %v\n", T, err)
			return
		}
	}
	for _, p := range []float64{-1, 0, 1e-4, 22.1, 50} {
		if _, err := SaturationTemperature(p); !IsOutOfRange(err) {
			tst.Errorf("SaturationTemperature(%g) should fail with OutOfRangeError. err = %v\n", p, err)
			return
		}
	}

	// not on the curve
	_, err := SaturatedProperties(1, 500)
	if !IsOutOfRange(err) {
		tst.Errorf("(1 MPa, 500 K) is not saturated. err = %v\n", err)
		return
	}
	io.Pforan("%v\n", err)

	// within tolerance
	T := 453.0356323914666
	ps := if97.SaturationPressure(T)
	sat, err := SaturatedProperties(ps*(1-0.5*SatTol), T)
	if err != nil {
		tst.Errorf("SaturatedProperties failed: %v\n", err)
		return
	}
	chk.Float64(tst, "hf", 1e-7, sat.Liquid.H, 762.6828443354107)
}

func Test_saturated04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("saturated04. region 3 on both sides above 623.15 K")

	for _, T := range []float64{630, 640, 645} {
		sat, err := SaturatedGivenTemperature(T)
		if err != nil {
			tst.Errorf("SaturatedGivenTemperature(%g) failed: %v\n", T, err)
			return
		}
		liq, err := if97.Helmholtz3(sat.Pressure, T, if97.Liquid)
		if err != nil {
			tst.Errorf("Helmholtz3 liquid failed: %v\n", err)
			return
		}
		gas, err := if97.Helmholtz3(sat.Pressure, T, if97.Vapor)
		if err != nil {
			tst.Errorf("Helmholtz3 vapour failed: %v\n", err)
			return
		}
		io.Pforan("T=%g psat=%g vf=%g vg=%g\n", T, sat.Pressure, sat.Liquid.V, sat.Gas.V)
		chk.Float64(tst, "vf", 1e-17, sat.Liquid.V, liq.V)
		chk.Float64(tst, "vg", 1e-17, sat.Gas.V, gas.V)
		chk.Float64(tst, "hg", 1e-17, sat.Gas.H, gas.H)
		chk.Float64(tst, "sg", 1e-17, sat.Gas.S, gas.S)
		chk.Int(tst, "state region", int(sat.State(0.5).Region), int(if97.Region4))
	}
}
