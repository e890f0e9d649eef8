package core

import "errors"

// Error kinds shared by all synthesis packages.
//
// Package-level sentinel errors elsewhere wrap one of these kinds, so callers
// can match either the specific condition or its class with errors.Is.
var (
	// ErrValidation marks a rejected input parameter.
	ErrValidation = errors.New("core: invalid parameter")
	// ErrDomain marks a value outside the mathematical domain of an operation.
	ErrDomain = errors.New("core: value outside domain")
	// ErrComputation marks an internal invariant violation: a computed
	// component value that is non-positive despite validated input.
	ErrComputation = errors.New("core: computation produced invalid value")
)
