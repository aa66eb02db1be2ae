// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package steam

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosteam/mdl/if97"
)

// default solver parameters
const (
	DefaultTol   = 1e-8 // relative tolerance on the matched quantity
	DefaultMaxIt = 100  // maximum number of iterations
	SmallTarget  = 1e-3 // targets below this magnitude use the absolute tolerance Tol・SmallTarget
)

// Solver computes thermodynamic states from pressure and one more quantity
//  A Solver holds only parameters; it is safe for concurrent use
type Solver struct {
	Tol   float64 // relative tolerance: |f| ≤ Tol・max(|target|, SmallTarget)
	MaxIt int     // maximum number of iterations
}

// NewSolver returns a solver with default parameters
func NewSolver() *Solver {
	return &Solver{Tol: DefaultTol, MaxIt: DefaultMaxIt}
}

// Init initialises the solver parameters
func (o *Solver) Init(prms dbf.Params) (err error) {
	if o.Tol == 0 {
		o.Tol = DefaultTol
	}
	if o.MaxIt == 0 {
		o.MaxIt = DefaultMaxIt
	}
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "tol":
			o.Tol = p.V
		case "maxit":
			o.MaxIt = int(p.V)
		default:
			return chk.Err("steam: parameter named %q is incorrect\n", p.N)
		}
	}
	if !(o.Tol > 0) || o.Tol >= 1 {
		return chk.Err("steam: tolerance must be in (0, 1). tol = %g is incorrect\n", o.Tol)
	}
	if o.MaxIt < 1 {
		return chk.Err("steam: maximum number of iterations must be positive. maxit = %d is incorrect\n", o.MaxIt)
	}
	return
}

// GetPrms gets (an example of) parameters
func (o Solver) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "tol", V: DefaultTol},
			&dbf.P{N: "maxit", V: DefaultMaxIt},
		}
	}
	return dbf.Params{
		&dbf.P{N: "tol", V: o.Tol},
		&dbf.P{N: "maxit", V: float64(o.MaxIt)},
	}
}

// Calculate computes the state at pressure p [MPa] given one more quantity
//  kind  -- Temperature, Enthalpy, Entropy or Quality
//  value -- value of kind in the units of State
func Calculate(p float64, kind Quantity, value float64) (State, error) {
	return NewSolver().Calculate(p, kind, value)
}

// Calculate computes the state at pressure p [MPa] given one more quantity
func (o *Solver) Calculate(p float64, kind Quantity, value float64) (res State, err error) {
	if !(p > 0) || p > if97.Pmax || math.IsInf(p, 0) {
		return res, &if97.OutOfRangeError{Name: "pressure", Value: p, Min: 0, Max: if97.Pmax}
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return res, &if97.OutOfRangeError{Name: kind.String(), Value: value, Note: "value must be finite"}
	}
	switch kind {
	case Temperature:
		res, err = o.givenTemperature(p, value)
	case Enthalpy, Entropy:
		res, err = o.givenProperty(p, kind, value)
	case Quality:
		res, err = o.givenQuality(p, value)
	default:
		return res, &if97.OutOfRangeError{Name: "quantity", Value: float64(kind),
			Note: io.Sf("%v cannot be used with pressure", kind)}
	}
	if err != nil {
		return State{}, err
	}
	if err = res.check(); err != nil {
		return State{}, err
	}
	return
}

// givenTemperature evaluates the region containing (p,T)
func (o *Solver) givenTemperature(p, T float64) (State, error) {
	region, props, err := if97.Evaluate(p, T, if97.Auto)
	if err != nil {
		return State{}, err
	}
	return newState(p, T, region, props, singlePhaseQuality(p, T, region, if97.Auto)), nil
}

// givenQuality interpolates between saturated liquid and vapour
func (o *Solver) givenQuality(p, x float64) (State, error) {
	if !(x >= 0) || x > 1 {
		return State{}, &if97.OutOfRangeError{Name: "quality", Value: x, Min: 0, Max: 1}
	}
	if !(p >= if97.PsatMin) || p >= if97.Pc {
		return State{}, &if97.OutOfRangeError{Name: "pressure", Value: p, Min: if97.PsatMin, Max: if97.Pc,
			Note: "quality requires a pressure below the critical pressure"}
	}
	sat, err := saturated(p, if97.SaturationTemperature(p))
	if err != nil {
		return State{}, err
	}
	return sat.State(x), nil
}

// givenProperty finds the state whose enthalpy or entropy equals target
func (o *Solver) givenProperty(p float64, kind Quantity, target float64) (State, error) {

	// supercritical or below the triple-point pressure: no dome
	if p >= if97.Pc || p < if97.PsatMin {
		return o.solve(p, kind, target, if97.Tmin, if97.Tmax, if97.Auto)
	}

	// compare with saturated values
	Tsat := if97.SaturationTemperature(p)
	sat, err := saturated(p, Tsat)
	if err != nil {
		return State{}, err
	}
	lo, hi := pick(sat.Liquid, kind), pick(sat.Gas, kind)
	switch {
	case target < lo:
		return o.solve(p, kind, target, if97.Tmin, Tsat, if97.Liquid)
	case target > hi:
		return o.solve(p, kind, target, Tsat, if97.Tmax, if97.Vapor)
	}
	return sat.State((target - lo) / (hi - lo)), nil
}

// solve finds T in [Ta, Tb] such that kind(p,T) = target along one branch
//  Illinois variant of the regula falsi method
func (o *Solver) solve(p float64, kind Quantity, target, Ta, Tb float64, phase if97.Phase) (State, error) {
	tol := o.Tol * math.Max(math.Abs(target), SmallTarget)
	eval := func(T float64) (State, float64, error) {
		region, props, err := if97.Evaluate(p, T, phase)
		if err != nil {
			return State{}, 0, err
		}
		return newState(p, T, region, props, singlePhaseQuality(p, T, region, phase)), pick(props, kind) - target, nil
	}

	// bracket
	sa, fa, err := eval(Ta)
	if err != nil {
		return State{}, err
	}
	sb, fb, err := eval(Tb)
	if err != nil {
		return State{}, err
	}
	if math.Abs(fa) <= tol {
		return sa, nil
	}
	if math.Abs(fb) <= tol {
		return sb, nil
	}
	if fa > 0 || fb < 0 {
		return State{}, &if97.OutOfRangeError{Name: kind.String(), Value: target, Min: fa + target, Max: fb + target}
	}

	// iterations
	a, b := Ta, Tb
	side := 0
	var fc float64
	for it := 0; it < o.MaxIt; it++ {
		c := (a*fb - b*fa) / (fb - fa)
		var sc State
		sc, fc, err = eval(c)
		if err != nil {
			return State{}, err
		}
		if math.Abs(fc) <= tol {
			return sc, nil
		}
		if fc*fb > 0 {
			b, fb = c, fc
			if side == -1 {
				fa /= 2
			}
			side = -1
		} else {
			a, fa = c, fc
			if side == +1 {
				fb /= 2
			}
			side = +1
		}
	}
	return State{}, &if97.ConvergenceError{Quantity: kind.String(), Target: target, Iterations: o.MaxIt, Residual: fc}
}

// pick returns the property of props corresponding to kind
func pick(props if97.Props, kind Quantity) float64 {
	if kind == Entropy {
		return props.S
	}
	return props.H
}
