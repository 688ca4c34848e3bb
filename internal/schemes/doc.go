// Package schemes provides the catalogue of short-range truncation
// schemes implementing the [pairwise.ShortRange] contract:
//
//   - [Plain]: undamped 1/r, hard truncation only; the reference
//     kernel for validating the pair evaluator
//   - [Wolf]: erfc damping with a linear energy shift and the Wolf
//     self-energy correction
//   - [RealSpaceEwald]: real-space Ewald damping, optionally with
//     Debye screening folded into the kernel
//   - [Poisson]: the (n, m) polynomial family generalizing many
//     published schemes; derivatives vanish through order m at the
//     cutoff
//   - [ReactionField]: dielectric-continuum boundary matching at the
//     cutoff
//   - [QPotential]: the q-potential product kernel; implements only
//     f0 and relies on the finite-difference fallback
//
// Each scheme documents its continuity order at q=1, which determines
// whether forces and fields are discontinuous at the cutoff.
package schemes
