// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package if97

import "math"

// Region identifies a validity region of the formulation
type Region int

const (
	Region1 Region = iota + 1 // compressed liquid
	Region2                   // superheated vapour
	Region3                   // near-critical dense fluid
	Region4                   // saturation curve
)

func (o Region) String() string {
	switch o {
	case Region1:
		return "region 1 (compressed liquid)"
	case Region2:
		return "region 2 (superheated vapour)"
	case Region3:
		return "region 3 (near-critical)"
	case Region4:
		return "region 4 (saturation)"
	}
	return "unknown region"
}

// CheckEnvelope checks that (p,T) lies within the envelope of regions 1 to 3
func CheckEnvelope(p, T float64) error {
	if !(p > 0) || p > Pmax || math.IsInf(p, 0) {
		return &OutOfRangeError{Name: "pressure", Value: p, Min: 0, Max: Pmax}
	}
	if !(T >= Tmin) || T > Tmax {
		return &OutOfRangeError{Name: "temperature", Value: T, Min: Tmin, Max: Tmax}
	}
	return nil
}

// SelectRegion returns the region containing (p,T)
//  Note: region 4 is never returned. A point exactly on the saturation curve belongs to region 1.
func SelectRegion(p, T float64) (Region, error) {
	if err := CheckEnvelope(p, T); err != nil {
		return 0, err
	}
	if T <= T13 {
		if p >= SaturationPressure(T) {
			return Region1, nil
		}
		return Region2, nil
	}
	if T <= T23max && p > B23Pressure(T) {
		return Region3, nil
	}
	return Region2, nil
}

// Evaluate computes the properties at (p,T)
//  phase -- Auto selects the region with SelectRegion. Liquid and Vapor force the
//           corresponding branch, which is needed on the saturation curve
func Evaluate(p, T float64, phase Phase) (region Region, props Props, err error) {
	if err = CheckEnvelope(p, T); err != nil {
		return
	}
	switch phase {
	case Liquid:
		if T <= T13 {
			props, err = Gibbs1(p, T)
			return Region1, props, err
		}
		props, err = Helmholtz3(p, T, Liquid)
		return Region3, props, err
	case Vapor:
		if T <= T13 || T > T23max || p <= B23Pressure(T) {
			props, err = Gibbs2(p, T)
			return Region2, props, err
		}
		props, err = Helmholtz3(p, T, Vapor)
		return Region3, props, err
	}
	region, err = SelectRegion(p, T)
	if err != nil {
		return
	}
	switch region {
	case Region1:
		props, err = Gibbs1(p, T)
	case Region2:
		props, err = Gibbs2(p, T)
	default:
		props, err = Helmholtz3(p, T, Auto)
	}
	return
}

// LiquidLike tells whether (p,T) in region 3 lies on the liquid side of the saturation curve
func LiquidLike(p, T float64) bool {
	return T < Tc && p >= SaturationPressure(T)
}
