// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package steam

import (
	"math"

	"github.com/cpmech/gosteam/mdl/if97"
)

// State holds the thermodynamic state of water at one point
//  Quality: inside the two-phase dome it is the vapour mass fraction; otherwise it is 0 for
//  liquid-like states and 1 for vapour-like and supercritical states
type State struct {
	Pressure         float64     // [MPa]
	Temperature      float64     // [K]
	SpecificEnthalpy float64     // [kJ/kg]
	SpecificEntropy  float64     // [kJ/(kg・K)]
	SpecificVolume   float64     // [m³/kg]
	Quality          float64     // [-]
	Region           if97.Region // region of the formulation; Region4 inside the dome
}

// Density returns 1/v [kg/m³]
func (o State) Density() float64 {
	return 1.0 / o.SpecificVolume
}

// InternalEnergy returns u = h - p・v [kJ/kg]
func (o State) InternalEnergy() float64 {
	return o.SpecificEnthalpy - 1000.0*o.Pressure*o.SpecificVolume
}

// newState builds a single-phase state
func newState(p, T float64, region if97.Region, props if97.Props, x float64) State {
	return State{
		Pressure:         p,
		Temperature:      T,
		SpecificEnthalpy: props.H,
		SpecificEntropy:  props.S,
		SpecificVolume:   props.V,
		Quality:          x,
		Region:           region,
	}
}

// check returns an error if a property is negative or not finite
func (o State) check() error {
	for _, f := range []struct {
		name string
		val  float64
	}{
		{"pressure", o.Pressure},
		{"temperature", o.Temperature},
		{"specific enthalpy", o.SpecificEnthalpy},
		{"specific entropy", o.SpecificEntropy},
		{"specific volume", o.SpecificVolume},
	} {
		if math.IsNaN(f.val) || math.IsInf(f.val, 0) || f.val < 0 {
			return &PhysicallyInvalidStateError{Field: f.name, Value: f.val}
		}
	}
	return nil
}

// singlePhaseQuality returns the quality assigned to a state outside the dome
func singlePhaseQuality(p, T float64, region if97.Region, phase if97.Phase) float64 {
	switch phase {
	case if97.Liquid:
		return 0
	case if97.Vapor:
		return 1
	}
	switch region {
	case if97.Region1:
		return 0
	case if97.Region3:
		if if97.LiquidLike(p, T) {
			return 0
		}
	}
	return 1
}
