// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package steam

import (
	"errors"

	"github.com/cpmech/gosteam/mdl/if97"
	"github.com/cpmech/gosl/io"
)

// PhysicallyInvalidStateError reports a computed state with a negative or non-finite property
type PhysicallyInvalidStateError struct {
	Field string  // name of property
	Value float64 // computed value
}

func (o *PhysicallyInvalidStateError) Error() string {
	return io.Sf("steam: physically invalid state: %s = %g", o.Field, o.Value)
}

// IsOutOfRange tells whether err is (or wraps) an *if97.OutOfRangeError
func IsOutOfRange(err error) bool {
	var e *if97.OutOfRangeError
	return errors.As(err, &e)
}

// IsPhysicallyInvalid tells whether err is (or wraps) a *PhysicallyInvalidStateError
func IsPhysicallyInvalid(err error) bool {
	var e *PhysicallyInvalidStateError
	return errors.As(err, &e)
}
