// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package if97

// reference constants of region 1
const (
	r1Pstar = 16.53  // [MPa]
	r1Tstar = 1386.0 // [K]
)

// r1Terms holds the coefficients of γ = Σ n (7.1 - π)^I (τ - 1.222)^J. See [1] Table 2
var r1Terms = [34]term{
	{0, -2, 0.14632971213167},
	{0, -1, -0.84548187169114},
	{0, 0, -0.37563603672040e1},
	{0, 1, 0.33855169168385e1},
	{0, 2, -0.95791963387872},
	{0, 3, 0.15772038513228},
	{0, 4, -0.16616417199501e-1},
	{0, 5, 0.81214629983568e-3},
	{1, -9, 0.28319080123804e-3},
	{1, -7, -0.60706301565874e-3},
	{1, -1, -0.18990068218419e-1},
	{1, 0, -0.32529748770505e-1},
	{1, 1, -0.21841717175414e-1},
	{1, 3, -0.52838357969930e-4},
	{2, -3, -0.47184321073267e-3},
	{2, 0, -0.30001780793026e-3},
	{2, 1, 0.47661393906987e-4},
	{2, 3, -0.44141845330846e-5},
	{2, 17, -0.72694996297594e-15},
	{3, -4, -0.31679644845054e-4},
	{3, 0, -0.28270797985312e-5},
	{3, 6, -0.85205128120103e-9},
	{4, -5, -0.22425281908000e-5},
	{4, -2, -0.65171222895601e-6},
	{4, 10, -0.14341729937924e-12},
	{5, -8, -0.40516996860117e-6},
	{8, -11, -0.12734301741641e-8},
	{8, -6, -0.17424871230634e-9},
	{21, -29, -0.68762131295531e-18},
	{23, -31, 0.14478307828521e-19},
	{29, -38, 0.26335781662795e-22},
	{30, -39, -0.11947622640071e-22},
	{31, -40, 0.18228094581404e-23},
	{32, -41, -0.93537087292458e-25},
}

// Gibbs1 computes the properties of compressed liquid (region 1)
//  Domain: Tmin ≤ T ≤ T13 and psat(T) ≤ p ≤ Pmax
func Gibbs1(p, T float64) (Props, error) {
	if !(T >= Tmin) || T > T13 || p > Pmax || !(p >= SaturationPressure(T)*(1.0-slack)) {
		return Props{}, &DomainError{Region1, p, T}
	}
	π := p / r1Pstar
	τ := r1Tstar / T
	a := 7.1 - π
	b := τ - 1.222
	var γ, γπ, γτ float64
	for _, t := range r1Terms {
		ai, bj := powi(a, t.i), powi(b, t.j)
		γ += t.n * ai * bj
		γπ -= t.n * float64(t.i) * powi(a, t.i-1) * bj
		γτ += t.n * ai * float64(t.j) * powi(b, t.j-1)
	}
	return Props{
		V: Rgas * T / (p * 1000.0) * π * γπ,
		H: Rgas * T * τ * γτ,
		S: Rgas * (τ*γτ - γ),
	}, nil
}
