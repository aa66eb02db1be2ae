// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

// Point holds one verification point of the industrial formulation
//  Values are published with nine significant digits
type Point struct {
	P   float64 // pressure [MPa]
	T   float64 // temperature [K]
	Rho float64 // density [kg/m³]; region 3 only
	V   float64 // specific volume [m³/kg]
	H   float64 // specific enthalpy [kJ/kg]
	U   float64 // specific internal energy [kJ/kg]
	S   float64 // specific entropy [kJ/(kg・K)]
}

// Region1Points holds the verification points of region 1. See Wagner et al. (2000) Table 5
var Region1Points = []Point{
	{P: 3, T: 300, V: 0.100215168e-2, H: 0.115331273e3, U: 0.112324818e3, S: 0.392294792},
	{P: 80, T: 300, V: 0.971180894e-3, H: 0.184142828e3, U: 0.106448356e3, S: 0.368563852},
	{P: 3, T: 500, V: 0.120241800e-2, H: 0.975542239e3, U: 0.971934985e3, S: 0.258041912e1},
}

// Region2Points holds the verification points of region 2. See Wagner et al. (2000) Table 15
var Region2Points = []Point{
	{P: 0.0035, T: 300, V: 0.394913866e2, H: 0.254991145e4, U: 0.241169160e4, S: 0.852238967e1},
	{P: 0.0035, T: 700, V: 0.923015898e2, H: 0.333568375e4, U: 0.301262819e4, S: 0.101749996e2},
	{P: 30, T: 700, V: 0.542946619e-2, H: 0.263149474e4, U: 0.246861076e4, S: 0.517540298e1},
}

// Region3Points holds the verification points of region 3. See Wagner et al. (2000) Table 33
var Region3Points = []Point{
	{Rho: 500, T: 650, P: 0.255837018e2, H: 0.186343019e4, U: 0.181226279e4, S: 0.405427273e1},
	{Rho: 200, T: 650, P: 0.222930643e2, H: 0.237512401e4, U: 0.226365868e4, S: 0.485438792e1},
	{Rho: 500, T: 750, P: 0.783095639e2, H: 0.225868845e4, U: 0.210206932e4, S: 0.446971906e1},
}

// SaturationPressurePoints holds verification points of psat(T). See Wagner et al. (2000) Table 35
var SaturationPressurePoints = []Point{
	{T: 300, P: 0.353658941e-2},
	{T: 500, P: 0.263889776e1},
	{T: 600, P: 0.123443146e2},
}

// SaturationTemperaturePoints holds verification points of Tsat(p). See Wagner et al. (2000) Table 36
var SaturationTemperaturePoints = []Point{
	{P: 0.1, T: 0.372755919e3},
	{P: 1, T: 0.453035632e3},
	{P: 10, T: 0.584149488e3},
}

// B23Point holds the verification point of the boundary between regions 2 and 3
var B23Point = Point{T: 0.62315e3, P: 0.165291643e2}
