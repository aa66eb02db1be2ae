// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package steam

import (
	"math"

	"github.com/cpmech/gosteam/mdl/if97"
)

// SatTol is the relative tolerance accepted on the pressure of a (p,T) pair said to be saturated
const SatTol = 1e-5

// SaturationPoint holds a pressure-temperature pair on the saturation curve
type SaturationPoint struct {
	Pressure    float64 // [MPa]
	Temperature float64 // [K]
}

// SaturationAtTemperature returns the point of the saturation curve at T
func SaturationAtTemperature(T float64) (SaturationPoint, error) {
	p, err := SaturationPressure(T)
	if err != nil {
		return SaturationPoint{}, err
	}
	return SaturationPoint{p, T}, nil
}

// SaturationAtPressure returns the point of the saturation curve at p
func SaturationAtPressure(p float64) (SaturationPoint, error) {
	T, err := SaturationTemperature(p)
	if err != nil {
		return SaturationPoint{}, err
	}
	return SaturationPoint{p, T}, nil
}

// SaturationPressure computes the saturation pressure [MPa] at T [K]
//  Domain: Tmin ≤ T ≤ Tc
func SaturationPressure(T float64) (float64, error) {
	if !(T >= if97.Tmin) || T > if97.Tc {
		return 0, &if97.OutOfRangeError{Name: "saturation temperature", Value: T, Min: if97.Tmin, Max: if97.Tc}
	}
	return if97.SaturationPressure(T), nil
}

// SaturationTemperature computes the saturation temperature [K] at p [MPa]
//  Domain: PsatMin ≤ p ≤ Pc
func SaturationTemperature(p float64) (float64, error) {
	if !(p >= if97.PsatMin) || p > if97.Pc {
		return 0, &if97.OutOfRangeError{Name: "saturation pressure", Value: p, Min: if97.PsatMin, Max: if97.Pc}
	}
	return if97.SaturationTemperature(p), nil
}

// Saturated holds the properties of saturated liquid and saturated vapour at one point of the curve
type Saturated struct {
	Pressure    float64    // [MPa]
	Temperature float64    // [K]
	Liquid      if97.Props // saturated liquid
	Gas         if97.Props // saturated vapour
	Evaporation if97.Props // Gas - Liquid
}

// State returns the two-phase state with vapour mass fraction x
//  Note: (1-x)・Liquid + x・Gas reproduces the end points exactly for x = 0 and x = 1
func (o Saturated) State(x float64) State {
	mix := func(l, g float64) float64 { return (1.0-x)*l + x*g }
	return State{
		Pressure:         o.Pressure,
		Temperature:      o.Temperature,
		SpecificEnthalpy: mix(o.Liquid.H, o.Gas.H),
		SpecificEntropy:  mix(o.Liquid.S, o.Gas.S),
		SpecificVolume:   mix(o.Liquid.V, o.Gas.V),
		Quality:          x,
		Region:           if97.Region4,
	}
}

// SaturatedProperties computes the properties of saturated liquid and vapour at (p,T)
//  The pair must lie on the saturation curve: |psat(T) - p| ≤ SatTol・p
//  Properties are evaluated at (psat(T), T)
//  Above 623.15 K both sides come from region 3: the liquid from the dense root and the vapour
//  from the light root, instead of extrapolating region 2 beyond the B23 line
func SaturatedProperties(p, T float64) (Saturated, error) {
	ps, err := SaturationPressure(T)
	if err != nil {
		return Saturated{}, err
	}
	if !(p > 0) || math.Abs(ps-p) > SatTol*p {
		return Saturated{}, &if97.OutOfRangeError{Name: "saturation pressure", Value: p, Min: ps, Max: ps,
			Note: "pressure and temperature are not on the saturation curve"}
	}
	res, err := saturated(ps, T)
	if err != nil {
		return Saturated{}, err
	}
	res.Pressure = p
	return res, nil
}

// SaturatedGivenTemperature computes the saturated properties at temperature T
func SaturatedGivenTemperature(T float64) (Saturated, error) {
	pt, err := SaturationAtTemperature(T)
	if err != nil {
		return Saturated{}, err
	}
	return saturated(pt.Pressure, pt.Temperature)
}

// SaturatedGivenPressure computes the saturated properties at pressure p
func SaturatedGivenPressure(p float64) (Saturated, error) {
	pt, err := SaturationAtPressure(p)
	if err != nil {
		return Saturated{}, err
	}
	return saturated(pt.Pressure, pt.Temperature)
}

// saturated evaluates both branches at (p,T) without checking the pair
func saturated(p, T float64) (res Saturated, err error) {
	_, liq, err := if97.Evaluate(p, T, if97.Liquid)
	if err != nil {
		return
	}
	_, gas, err := if97.Evaluate(p, T, if97.Vapor)
	if err != nil {
		return
	}
	return Saturated{
		Pressure:    p,
		Temperature: T,
		Liquid:      liq,
		Gas:         gas,
		Evaporation: gas.Sub(liq),
	}, nil
}
