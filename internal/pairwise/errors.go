package pairwise

import "errors"

// Construction errors for scheme parameters.
var (
	// ErrCutoff indicates a cutoff that is not strictly positive and finite.
	ErrCutoff = errors.New("pairwise: cutoff must be positive and finite")

	// ErrDamping indicates a negative or non-finite damping parameter.
	ErrDamping = errors.New("pairwise: damping parameter must be non-negative and finite")

	// ErrExponents indicates an invalid exponent pair for a polynomial scheme.
	ErrExponents = errors.New("pairwise: invalid exponent pair")

	// ErrOrder indicates a non-positive expansion order.
	ErrOrder = errors.New("pairwise: order must be at least 1")

	// ErrDielectric indicates a non-positive dielectric constant parameter.
	ErrDielectric = errors.New("pairwise: dielectric constants must be positive")

	// ErrScreening indicates a non-positive screening length.
	ErrScreening = errors.New("pairwise: screening length must be positive")

	// ErrBjerrum indicates a non-positive Bjerrum length scaling.
	ErrBjerrum = errors.New("pairwise: bjerrum length must be positive and finite")
)
