package pairwise

import (
	"fmt"
	"math"
)

// ShortRange is the kernel of a truncation scheme: the energy-scaling
// function f0(q) applied to the bare 1/r Coulomb interaction, with
// q = r/cutoff in [0, 1]. Normalized schemes satisfy f0(0) = 1.
type ShortRange interface {
	// F0 returns the energy scaling at reduced distance q in [0, 1].
	F0(q float64) float64
	// Cutoff returns the cutoff distance (same length unit as r).
	Cutoff() float64
	// Name returns the scheme identifier used by config and CLI.
	Name() string
}

// FirstDerivative is implemented by schemes with a closed-form df0/dq.
type FirstDerivative interface {
	F1(q float64) float64
}

// SecondDerivative is implemented by schemes with a closed-form d2f0/dq2.
type SecondDerivative interface {
	F2(q float64) float64
}

// ThirdDerivative is implemented by schemes with a closed-form d3f0/dq3.
type ThirdDerivative interface {
	F3(q float64) float64
}

// Continuity is implemented by schemes declaring how many derivative
// orders vanish at the cutoff: order k means f_j(1) == 0 for all
// j <= k. Schemes without a declared order (or with f0(1) != 0)
// report -1 via ContinuityOrder.
type Continuity interface {
	ContinuityOrder() int
}

// Screened is implemented by schemes that fold an inverse Debye
// length into the kernel.
type Screened interface {
	// Kappa returns the inverse screening length (1/length unit).
	Kappa() float64
}

// Prefactors are the per-particle self-energy coefficients of a
// scheme. The self-energy of a particle with charge z and dipole
// moment mu is Monopole*z^2/rc + Dipole*mu^2/rc^3; schemes without a
// correction use the zero value.
type Prefactors struct {
	Monopole float64
	Dipole   float64
}

// SelfEnergy is implemented by schemes requiring a per-particle
// correction for a thermodynamically consistent total energy.
type SelfEnergy interface {
	SelfEnergyPrefactors() Prefactors
}

// F1 returns df0/dq, using the scheme's analytic derivative when
// available and the finite-difference fallback otherwise.
func F1(s ShortRange, q float64) float64 {
	if d, ok := s.(FirstDerivative); ok {
		return d.F1(q)
	}
	return Derivative(s.F0, 1, q)
}

// F2 returns d2f0/dq2, analytically or numerically.
func F2(s ShortRange, q float64) float64 {
	if d, ok := s.(SecondDerivative); ok {
		return d.F2(q)
	}
	return Derivative(s.F0, 2, q)
}

// F3 returns d3f0/dq3, analytically or numerically.
func F3(s ShortRange, q float64) float64 {
	if d, ok := s.(ThirdDerivative); ok {
		return d.F3(q)
	}
	return Derivative(s.F0, 3, q)
}

// ContinuityOrder reports the scheme's declared smoothness at q=1,
// or -1 when the scheme declares none.
func ContinuityOrder(s ShortRange) int {
	if c, ok := s.(Continuity); ok {
		return c.ContinuityOrder()
	}
	return -1
}

// Kappa reports the scheme's inverse screening length, if any.
func Kappa(s ShortRange) (float64, bool) {
	if sc, ok := s.(Screened); ok {
		return sc.Kappa(), true
	}
	return 0, false
}

// SelfEnergyPrefactors returns the scheme's per-particle correction
// coefficients, zero for schemes without one.
func SelfEnergyPrefactors(s ShortRange) Prefactors {
	if se, ok := s.(SelfEnergy); ok {
		return se.SelfEnergyPrefactors()
	}
	return Prefactors{}
}

// ParticleSelfEnergy returns the self-energy contribution of a single
// particle with the given charge and dipole moment magnitude, in units
// of 1/length (multiply by the Bjerrum length for kT).
func ParticleSelfEnergy(s ShortRange, charge, dipole float64) float64 {
	p := SelfEnergyPrefactors(s)
	if p == (Prefactors{}) {
		return 0
	}
	rc := s.Cutoff()
	return p.Monopole*charge*charge/rc + p.Dipole*dipole*dipole/(rc*rc*rc)
}

// TotalSelfEnergy sums ParticleSelfEnergy over a set of particles.
// The correction is added exactly once per particle, never per pair.
// charges and dipoles must have equal length.
func TotalSelfEnergy(s ShortRange, charges, dipoles []float64) float64 {
	var sum float64
	for i, z := range charges {
		var mu float64
		if i < len(dipoles) {
			mu = dipoles[i]
		}
		sum += ParticleSelfEnergy(s, z, mu)
	}
	return sum
}

// ValidateCutoff rejects cutoffs that are not strictly positive and
// finite. Shared by every scheme constructor.
func ValidateCutoff(cutoff float64) error {
	if cutoff <= 0 || math.IsNaN(cutoff) || math.IsInf(cutoff, 0) {
		return fmt.Errorf("%w: got %v", ErrCutoff, cutoff)
	}
	return nil
}
