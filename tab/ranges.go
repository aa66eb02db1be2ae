// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tab implements the generation of steam tables by sweeping the property solver
// along isotherms, isobars and the saturation curve
package tab

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Range defines equally spaced values from Start to End (inclusive)
type Range struct {
	Start float64 `yaml:"start"`
	End   float64 `yaml:"end"`
	Step  float64 `yaml:"step"`
}

// Check checks the range
func (o Range) Check() error {
	if math.IsNaN(o.Start) || math.IsNaN(o.End) || !(o.Step > 0) {
		return chk.Err("tab: range [%g, %g] with step %g is incorrect\n", o.Start, o.End, o.Step)
	}
	if o.End < o.Start {
		return chk.Err("tab: range end %g must not be smaller than start %g\n", o.End, o.Start)
	}
	return nil
}

// Num returns the number of values in the range
//  Note: End is included when (End-Start)/Step is an integer within 1e-9
func (o Range) Num() int {
	return int(math.Floor((o.End-o.Start)/o.Step+1e-9)) + 1
}

// Values returns the values in the range
func (o Range) Values() []float64 {
	n := o.Num()
	if n < 2 {
		return []float64{o.Start}
	}
	return utl.LinSpace(o.Start, o.Start+float64(n-1)*o.Step, n)
}

// Values returns the concatenated values of ranges
func Values(ranges []Range) (res []float64) {
	for _, r := range ranges {
		res = append(res, r.Values()...)
	}
	return
}

// PressureRanges returns the default graduated pressure steps [MPa] used by isotherms
func PressureRanges() []Range {
	return []Range{
		{0.0005, 0.01, 0.0005},
		{0.015, 0.1, 0.005},
		{0.11, 0.5, 0.01},
		{0.55, 1, 0.05},
		{1.1, 5, 0.1},
		{5.5, 10, 0.5},
		{11, 25, 1},
		{30, 100, 5},
	}
}

// EntropyRange returns the default entropy steps [kJ/(kg・K)] used by isobars
func EntropyRange() Range {
	return Range{0, 10, 0.1}
}

// SaturationRange returns the default temperature steps [K] used along the saturation curve
func SaturationRange() Range {
	return Range{275, 645, 5}
}
