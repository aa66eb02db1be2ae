// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package if97 implements the IAPWS-IF97 equations of state for water and steam
//  Regions:
//   1 -- compressed liquid         Gibbs free energy γ(π,τ)
//   2 -- superheated vapour        Gibbs free energy γ⁰(π,τ) + γʳ(π,τ)
//   3 -- near-critical dense fluid Helmholtz free energy φ(δ,τ)
//   4 -- saturation curve          closed-form psat(T) and Tsat(p)
//  Units:
//   pressure [MPa], temperature [K], enthalpy [kJ/kg], entropy [kJ/(kg・K)], volume [m³/kg]
//  References:
//   [1] Wagner W et al. (2000) The IAPWS Industrial Formulation 1997 for the Thermodynamic Properties
//       of Water and Steam. J. Eng. Gas Turbines Power 122(1), 150-182, http://dx.doi.org/10.1115/1.483186
package if97

// constants
const (
	Rgas = 0.461526 // specific gas constant [kJ/(kg・K)]

	Tc   = 647.096 // critical temperature [K]
	Pc   = 22.064  // critical pressure [MPa]
	RhoC = 322.0   // critical density [kg/m³]

	Tmin    = 273.15     // lowest temperature of the formulation [K]
	Tmax    = 1073.15    // highest temperature of regions 1-3 [K]
	Pmax    = 100.0      // highest pressure [MPa]
	T13     = 623.15     // temperature of the boundary between regions 1 and 3 [K]
	T23max  = 863.15     // highest temperature of the boundary between regions 2 and 3 [K]
	PsatMin = 611.213e-6 // saturation pressure at Tmin [MPa]
)

// slack is the relative tolerance accepted on boundary pressures such that points computed
// on the saturation curve or on the B23 line are accepted by both neighbouring regions
const slack = 1e-6

// Props holds specific properties at one state point
type Props struct {
	V float64 // specific volume [m³/kg]
	H float64 // specific enthalpy [kJ/kg]
	S float64 // specific entropy [kJ/(kg・K)]
}

// Sub returns o - b
func (o Props) Sub(b Props) Props {
	return Props{V: o.V - b.V, H: o.H - b.H, S: o.S - b.S}
}

// Phase selects the branch of the equation of state when liquid and vapour may coexist
type Phase int

const (
	Auto   Phase = iota // select the region from (p,T)
	Liquid              // liquid branch: region 1 or dense root of region 3
	Vapor               // vapour branch: region 2 or light root of region 3
)

// term holds one (I, J, n) entry of a coefficient table
type term struct {
	i, j int
	n    float64
}

// powi computes x^n for integer n
func powi(x float64, n int) float64 {
	if n < 0 {
		return 1.0 / powi(x, -n)
	}
	res := 1.0
	for n > 0 {
		if n&1 == 1 {
			res *= x
		}
		x *= x
		n >>= 1
	}
	return res
}
