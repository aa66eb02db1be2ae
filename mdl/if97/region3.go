// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package if97

import "math"

// r3N1 is the coefficient of the logarithmic term of φ
const r3N1 = 0.10658070028513e1

// r3Terms holds the coefficients of φ = n1 ln δ + Σ n δ^I τ^J. See [1] Table 30
var r3Terms = [39]term{
	{0, 0, -0.15732845290239e2},
	{0, 1, 0.20944396974307e2},
	{0, 2, -0.76867707878716e1},
	{0, 7, 0.26185947787954e1},
	{0, 10, -0.28080781148620e1},
	{0, 12, 0.12053369696517e1},
	{0, 23, -0.84566812812502e-2},
	{1, 2, -0.12654315477714e1},
	{1, 6, -0.11524407806681e1},
	{1, 15, 0.88521043984318},
	{1, 17, -0.64207765181607},
	{2, 0, 0.38493460186671},
	{2, 2, -0.85214708824206},
	{2, 6, 0.48972281541877e1},
	{2, 7, -0.30502617256965e1},
	{2, 22, 0.39420536879154e-1},
	{2, 26, 0.12558408424308},
	{3, 0, -0.27999329698710},
	{3, 2, 0.13899799569460e1},
	{3, 4, -0.20189915023570e1},
	{3, 16, -0.82147637173963e-2},
	{3, 26, -0.47596035734923},
	{4, 0, 0.43984074473500e-1},
	{4, 2, -0.44476435428739},
	{4, 4, 0.90572070719733},
	{4, 26, 0.70522450087967},
	{5, 1, 0.10770512626332},
	{5, 3, -0.32913623258954},
	{5, 26, -0.50871062041158},
	{6, 0, -0.22175400873096e-1},
	{6, 2, 0.94260751665092e-1},
	{6, 26, 0.16436278447961},
	{7, 2, -0.13503372241348e-1},
	{8, 26, -0.14834345352472e-1},
	{9, 2, 0.57922953628084e-3},
	{9, 26, 0.32308904703711e-2},
	{10, 0, 0.80964802996215e-4},
	{10, 1, -0.16557679795037e-3},
	{11, 26, -0.44923899061815e-4},
}

// density search along an isotherm of region 3
const (
	r3RhoMin  = 1.0   // lowest density scanned [kg/m³]
	r3RhoMax  = 800.0 // highest density scanned [kg/m³]; p(800,T) > Pmax for all T in region 3
	r3RhoStep = 2.0   // scanning increment [kg/m³]
	r3MaxIt   = 200   // maximum number of bisections
	r3RhoTol  = 1e-12 // relative tolerance on density
)

// Region3Density computes pressure and properties of region 3 given density and temperature
func Region3Density(rho, T float64) (p float64, props Props) {
	δ := rho / RhoC
	τ := Tc / T
	φ := r3N1 * math.Log(δ)
	φδ := r3N1 / δ
	var φτ float64
	for _, t := range r3Terms {
		δi, τj := powi(δ, t.i), powi(τ, t.j)
		φ += t.n * δi * τj
		φδ += t.n * float64(t.i) * powi(δ, t.i-1) * τj
		φτ += t.n * δi * float64(t.j) * powi(τ, t.j-1)
	}
	p = rho * Rgas * T * δ * φδ / 1000.0
	props = Props{
		V: 1.0 / rho,
		H: Rgas * T * (τ*φτ + δ*φδ),
		S: Rgas * (τ*φτ - φ),
	}
	return
}

// Helmholtz3 computes the properties of the near-critical region (region 3) given pressure and temperature
//  Domain: T13 ≤ T ≤ T23max and pB23(T) ≤ p ≤ Pmax
//  phase -- Liquid selects the dense root and Vapor the light root of p(ρ,T) = p.
//           Auto uses the dense root if T ≥ Tc or p ≥ psat(T)
func Helmholtz3(p, T float64, phase Phase) (Props, error) {
	if !(T >= T13) || T > T23max || p > Pmax || !(p >= B23Pressure(T)*(1.0-slack)) {
		return Props{}, &DomainError{Region3, p, T}
	}
	if phase == Auto {
		phase = Vapor
		if T >= Tc || p >= SaturationPressure(T) {
			phase = Liquid
		}
	}
	rho, err := region3Density(p, T, phase == Liquid)
	if err != nil {
		return Props{}, err
	}
	_, props := Region3Density(rho, T)
	return props, nil
}

// region3Density solves p(ρ,T) = p for ρ
//  The isotherm is scanned from above for the dense root or from below for the light root;
//  the first sign change is then refined by bisection
func region3Density(p, T float64, dense bool) (rho float64, err error) {
	f := func(ρ float64) float64 {
		pp, _ := Region3Density(ρ, T)
		return pp - p
	}

	// bracket such that f(lo) < 0 < f(hi)
	var lo, hi float64
	found := false
	if dense {
		a := r3RhoMax
		for b := a - r3RhoStep; b >= r3RhoMin; b -= r3RhoStep {
			if f(b) <= 0 {
				lo, hi, found = b, a, true
				break
			}
			a = b
		}
	} else {
		a := r3RhoMin
		for b := a + r3RhoStep; b <= r3RhoMax; b += r3RhoStep {
			if f(b) >= 0 {
				lo, hi, found = a, b, true
				break
			}
			a = b
		}
	}
	if !found {
		return 0, &DomainError{Region3, p, T}
	}

	// bisection
	for it := 0; it < r3MaxIt; it++ {
		mid := 0.5 * (lo + hi)
		if f(mid) > 0 {
			hi = mid
		} else {
			lo = mid
		}
		if hi-lo <= r3RhoTol*hi {
			return 0.5 * (lo + hi), nil
		}
	}
	return 0, &ConvergenceError{Quantity: "region 3 pressure", Target: p, Iterations: r3MaxIt, Residual: f(0.5 * (lo + hi))}
}
