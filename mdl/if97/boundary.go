// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package if97

import "math"

// b23N holds the coefficients of the boundary between regions 2 and 3. See [1] Table 1
var b23N = [5]float64{
	0.34805185628969e3,
	-0.11671859879975e1,
	0.10192970039326e-2,
	0.57254459862746e3,
	0.13918839778870e2,
}

// B23Pressure computes the pressure [MPa] on the boundary between regions 2 and 3
//  Valid for T13 ≤ T ≤ T23max
func B23Pressure(T float64) float64 {
	return b23N[0] + b23N[1]*T + b23N[2]*T*T
}

// B23Temperature computes the temperature [K] on the boundary between regions 2 and 3
//  Valid for pB23(T13) ≤ p ≤ Pmax
func B23Temperature(p float64) float64 {
	return b23N[3] + math.Sqrt((p-b23N[4])/b23N[2])
}
