package schemes

import (
	"fmt"
	"math"

	"github.com/san-kum/coulomb/internal/pairwise"
)

// RealSpaceEwald is the real-space part of the Ewald decomposition
// (P.P. Ewald, Ann. Phys. 1921):
//
//	f0(q) = erfc(eta*q),   eta = alpha*cutoff
//
// With a finite Debye length the splitting generalizes to
//
//	f0(q) = (erfc(eta*q + zeta/(2*eta))*exp(2*zeta*q)
//	       + erfc(eta*q - zeta/(2*eta))) / 2,   zeta = cutoff/debyeLength
//
// where the pair evaluator supplies the overall exp(-zeta*q) screening
// factor. The reciprocal-space and surface terms are out of scope here;
// the self-energy prefactors below cover only the real-space part.
type RealSpaceEwald struct {
	cutoff float64
	alpha  float64
	eta    float64
	zeta   float64 // 0 means salt-free
}

// NewRealSpaceEwald builds a salt-free real-space Ewald scheme with
// inverse-length damping parameter alpha > 0.
func NewRealSpaceEwald(cutoff, alpha float64) (*RealSpaceEwald, error) {
	if err := pairwise.ValidateCutoff(cutoff); err != nil {
		return nil, err
	}
	if alpha <= 0 || math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return nil, fmt.Errorf("%w: alpha %v", pairwise.ErrDamping, alpha)
	}
	return &RealSpaceEwald{cutoff: cutoff, alpha: alpha, eta: alpha * cutoff}, nil
}

// NewScreenedEwald builds a real-space Ewald scheme with Debye
// screening folded into the splitting function. The Debye length must
// be positive and in the same unit as the cutoff.
func NewScreenedEwald(cutoff, alpha, debyeLength float64) (*RealSpaceEwald, error) {
	s, err := NewRealSpaceEwald(cutoff, alpha)
	if err != nil {
		return nil, err
	}
	if debyeLength <= 0 || math.IsNaN(debyeLength) {
		return nil, fmt.Errorf("%w: debye length %v", pairwise.ErrScreening, debyeLength)
	}
	if !math.IsInf(debyeLength, 1) {
		s.zeta = cutoff / debyeLength
	}
	return s, nil
}

func (e *RealSpaceEwald) F0(q float64) float64 {
	if e.zeta == 0 {
		return math.Erfc(e.eta * q)
	}
	return 0.5 * (math.Erfc(e.eta*q+e.zeta/(2*e.eta))*math.Exp(2*e.zeta*q) +
		math.Erfc(e.eta*q-e.zeta/(2*e.eta)))
}

func (e *RealSpaceEwald) F1(q float64) float64 {
	eta, zeta := e.eta, e.zeta
	if zeta == 0 {
		return -2 * eta / sqrtPi * math.Exp(-eta*eta*q*q)
	}
	b := eta*q - zeta/(2*eta)
	return -2*eta/sqrtPi*math.Exp(-b*b) +
		zeta*math.Erfc(eta*q+zeta/(2*eta))*math.Exp(2*zeta*q)
}

func (e *RealSpaceEwald) F2(q float64) float64 {
	eta, zeta := e.eta, e.zeta
	if zeta == 0 {
		return 4 * eta * eta * eta * q / sqrtPi * math.Exp(-eta*eta*q*q)
	}
	b := eta*q - zeta/(2*eta)
	return 4*eta*eta/sqrtPi*(eta*q-zeta/eta)*math.Exp(-b*b) +
		2*zeta*zeta*math.Erfc(eta*q+zeta/(2*eta))*math.Exp(2*zeta*q)
}

func (e *RealSpaceEwald) F3(q float64) float64 {
	eta, zeta := e.eta, e.zeta
	if zeta == 0 {
		return 4 * eta * eta * eta / sqrtPi * (1 - 2*eta*eta*q*q) * math.Exp(-eta*eta*q*q)
	}
	b := eta*q - zeta/(2*eta)
	return 4*eta*eta*eta/sqrtPi*
		(1-2*(eta*q-zeta/eta)*b-zeta*zeta/(eta*eta))*math.Exp(-b*b) +
		4*zeta*zeta*zeta*math.Erfc(eta*q+zeta/(2*eta))*math.Exp(2*zeta*q)
}

func (e *RealSpaceEwald) Cutoff() float64 { return e.cutoff }
func (e *RealSpaceEwald) Name() string    { return "ewald" }

// Alpha returns the damping parameter (inverse length).
func (e *RealSpaceEwald) Alpha() float64 { return e.alpha }

// Kappa returns the inverse Debye length, zero when salt-free.
func (e *RealSpaceEwald) Kappa() float64 { return e.zeta / e.cutoff }

// ContinuityOrder is -1: erfc decays fast but never reaches zero, so
// nothing vanishes identically at the cutoff.
func (e *RealSpaceEwald) ContinuityOrder() int { return -1 }

func (e *RealSpaceEwald) SelfEnergyPrefactors() pairwise.Prefactors {
	eta, zeta := e.eta, e.zeta
	x := zeta / (2 * eta)
	return pairwise.Prefactors{
		Monopole: -eta / sqrtPi * (math.Exp(-x*x) - sqrtPi*x*math.Erfc(x)),
		Dipole: -2 * eta * eta * eta / (3 * sqrtPi) *
			(sqrtPi*zeta*zeta*zeta/(4*eta*eta*eta)*math.Erfc(x) +
				(1-zeta*zeta/(2*eta*eta))*math.Exp(-x*x)),
	}
}
