// Package pairwise defines the contract every short-range truncation
// scheme implements, and the numerical machinery shared between them.
//
// A scheme is a pure value type describing how the bare 1/r Coulomb
// kernel is damped inside a spherical cutoff. Its shape is the scalar
// function f0 of the reduced distance q = r/cutoff, with q in [0, 1]:
//
//   - [ShortRange]: f0, cutoff and name, the mandatory surface
//   - [FirstDerivative], [SecondDerivative], [ThirdDerivative]:
//     optional analytic derivatives with respect to q
//   - [SelfEnergy]: optional per-particle correction prefactors
//   - [Screened]: optional inverse Debye-length metadata
//   - [Continuity]: declared smoothness order at the cutoff
//
// Schemes that implement only f0 get f1..f3 from the finite-difference
// fallback via [F1], [F2] and [F3]; analytic overrides are an
// optimization, never a semantic change, and must agree with the
// fallback (see the derivative-agreement tests in internal/schemes).
//
// Callers are responsible for the hard truncation: for q > 1 every
// energy, force and field is exactly zero and the kernel is never
// consulted. Evaluation assumes q pre-clamped to [0, 1].
//
// # Thread safety
//
// Schemes are immutable after construction and safe for concurrent use.
package pairwise
