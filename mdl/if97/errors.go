// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package if97

import "github.com/cpmech/gosl/io"

// OutOfRangeError reports an input outside the envelope of the formulation
type OutOfRangeError struct {
	Name  string  // name of quantity; e.g. "pressure"
	Value float64 // given value
	Min   float64 // lower limit
	Max   float64 // upper limit
	Note  string  // extra information
}

func (o *OutOfRangeError) Error() string {
	if o.Note != "" {
		return io.Sf("if97: %s = %g is out of range: %s", o.Name, o.Value, o.Note)
	}
	return io.Sf("if97: %s = %g is out of range [%g, %g]", o.Name, o.Value, o.Min, o.Max)
}

// DomainError reports a region evaluator called outside its coefficient table's domain
type DomainError struct {
	Region      Region
	Pressure    float64
	Temperature float64
}

func (o *DomainError) Error() string {
	return io.Sf("if97: (p=%g MPa, T=%g K) is outside the domain of %v", o.Pressure, o.Temperature, o.Region)
}

// ConvergenceError reports an iterative solution that did not meet its tolerance
type ConvergenceError struct {
	Quantity   string  // name of the quantity being matched
	Target     float64 // value to be matched
	Iterations int     // number of iterations performed
	Residual   float64 // last residual
}

func (o *ConvergenceError) Error() string {
	return io.Sf("if97: %s = %g not reached after %d iterations (residual = %g)", o.Quantity, o.Target, o.Iterations, o.Residual)
}
