// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package if97

import "math"

// r4N holds the coefficients of the saturation-curve equation. See [1] Table 34
var r4N = [10]float64{
	0.11670521452767e4,
	-0.72421316703206e6,
	-0.17073846940092e2,
	0.12020824702470e5,
	-0.32325550322333e7,
	0.14915108613530e2,
	-0.48232657361591e4,
	0.40511340542057e6,
	-0.23855557567849,
	0.65017534844798e3,
}

// SaturationPressure computes the saturation pressure [MPa] at temperature T [K]
//  Valid for Tmin ≤ T ≤ Tc. No checks are performed
func SaturationPressure(T float64) float64 {
	n := &r4N
	θ := T + n[8]/(T-n[9])
	θ2 := θ * θ
	A := θ2 + n[0]*θ + n[1]
	B := n[2]*θ2 + n[3]*θ + n[4]
	C := n[5]*θ2 + n[6]*θ + n[7]
	return math.Pow(2.0*C/(-B+math.Sqrt(B*B-4.0*A*C)), 4)
}

// SaturationTemperature computes the saturation temperature [K] at pressure p [MPa]
//  Valid for PsatMin ≤ p ≤ Pc. No checks are performed
func SaturationTemperature(p float64) float64 {
	n := &r4N
	β := math.Pow(p, 0.25)
	β2 := β * β
	E := β2 + n[2]*β + n[5]
	F := n[0]*β2 + n[3]*β + n[6]
	G := n[1]*β2 + n[4]*β + n[7]
	D := 2.0 * G / (-F - math.Sqrt(F*F-4.0*E*G))
	return (n[9] + D - math.Sqrt((n[9]+D)*(n[9]+D)-4.0*(n[8]+n[9]*D))) / 2.0
}
