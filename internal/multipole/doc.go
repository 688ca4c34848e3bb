// Package multipole evaluates pairwise electrostatic interactions
// between point charges and point dipoles under a short-range
// truncation scheme.
//
// An [Evaluator] couples one scheme with a Bjerrum length, so that all
// returned energies are in units of kT, forces in kT per length, and
// fields in kT per length per unit charge. Separation vectors point
// from particle A to particle B; forces are reported on B, with the
// reaction on A being the negation. Every quantity is exactly zero at
// and beyond the scheme's cutoff.
//
// For schemes that expose an inverse Debye length the evaluator folds
// the exp(-kappa*r) screening factor into the kernel derivatives, so
// forces remain exact gradients of the energies.
package multipole
