package schemes

import (
	"fmt"
	"math"

	"github.com/san-kum/coulomb/internal/pairwise"
)

const sqrtPi = 1.7724538509055159

// Wolf is the damped, energy-shifted kernel of Wolf et al.
// (https://doi.org/10.1063/1.478738):
//
//	f0(q) = erfc(eta*q) - q*erfc(eta),   eta = kappa*cutoff
//
// The linear shift forces f0(1) = 0 (C0 at the cutoff); the first
// derivative does not vanish there, so forces are discontinuous.
// Summation over many pairs is only consistent with the per-particle
// self-energy correction applied once per particle.
type Wolf struct {
	cutoff float64
	kappa  float64
	eta    float64
}

// NewWolf builds a Wolf scheme with the given cutoff and damping
// parameter kappa (inverse length, >= 0). kappa = 0 reduces to the
// undamped energy-shifted kernel f0(q) = 1 - q.
func NewWolf(cutoff, kappa float64) (*Wolf, error) {
	if err := pairwise.ValidateCutoff(cutoff); err != nil {
		return nil, err
	}
	if kappa < 0 || math.IsNaN(kappa) || math.IsInf(kappa, 0) {
		return nil, fmt.Errorf("%w: got %v", pairwise.ErrDamping, kappa)
	}
	return &Wolf{cutoff: cutoff, kappa: kappa, eta: kappa * cutoff}, nil
}

func (w *Wolf) F0(q float64) float64 {
	return math.Erfc(w.eta*q) - q*math.Erfc(w.eta)
}

func (w *Wolf) F1(q float64) float64 {
	return -2*w.eta/sqrtPi*math.Exp(-w.eta*w.eta*q*q) - math.Erfc(w.eta)
}

func (w *Wolf) F2(q float64) float64 {
	eta := w.eta
	return 4 * eta * eta * eta * q / sqrtPi * math.Exp(-eta*eta*q*q)
}

func (w *Wolf) F3(q float64) float64 {
	eta := w.eta
	return 4 * eta * eta * eta / sqrtPi * (1 - 2*eta*eta*q*q) * math.Exp(-eta*eta*q*q)
}

func (w *Wolf) Cutoff() float64 { return w.cutoff }
func (w *Wolf) Name() string    { return "wolf" }

// Damping returns the erfc damping parameter (inverse length). It is
// not a screening length: the damping acts entirely inside f0, so no
// exponential prefactor applies to Wolf energies.
func (w *Wolf) Damping() float64 { return w.kappa }

// ContinuityOrder is 0: the shift zeroes f0 at the cutoff, but not f1.
func (w *Wolf) ContinuityOrder() int { return 0 }

// SelfEnergyPrefactors returns the Wolf corrections. The monopole term
// carries the shift's -1/2 in the kappa -> 0 limit; the linear shift
// leaves dipole-dipole interactions untouched, so the dipole term is
// -f3(0)/6 = -2*eta^3/(3*sqrt(pi)) and vanishes with the damping.
func (w *Wolf) SelfEnergyPrefactors() pairwise.Prefactors {
	eta := w.eta
	return pairwise.Prefactors{
		Monopole: -(math.Erfc(eta)/2 + eta/sqrtPi),
		Dipole:   -2 * eta * eta * eta / (3 * sqrtPi),
	}
}
