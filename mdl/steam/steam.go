// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package steam implements the steam property solver: given pressure and one more quantity
// (temperature, specific enthalpy, specific entropy or quality) it returns the full
// thermodynamic state of water using the IAPWS-IF97 regions implemented in package if97
package steam

import (
	"strings"

	"github.com/cpmech/gosl/chk"
)

// Quantity defines which thermodynamic quantity accompanies the pressure in a query
type Quantity int

const (
	Pressure    Quantity = iota + 1 // pressure [MPa]
	Temperature                     // temperature [K]
	Enthalpy                        // specific enthalpy [kJ/kg]
	Entropy                         // specific entropy [kJ/(kg・K)]
	Quality                         // vapour mass fraction [-]
)

func (o Quantity) String() string {
	switch o {
	case Pressure:
		return "pressure"
	case Temperature:
		return "temperature"
	case Enthalpy:
		return "enthalpy"
	case Entropy:
		return "entropy"
	case Quality:
		return "quality"
	}
	return "unknown quantity"
}

// ParseQuantity returns the quantity corresponding to name; e.g. "enthalpy" or "h"
func ParseQuantity(name string) (Quantity, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "pressure", "p":
		return Pressure, nil
	case "temperature", "t":
		return Temperature, nil
	case "enthalpy", "h":
		return Enthalpy, nil
	case "entropy", "s":
		return Entropy, nil
	case "quality", "x":
		return Quality, nil
	}
	return 0, chk.Err("steam: quantity named %q is incorrect\n", name)
}
