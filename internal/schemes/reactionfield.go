package schemes

import (
	"fmt"
	"math"

	"github.com/san-kum/coulomb/internal/pairwise"
)

// ReactionField embeds the cutoff sphere in a dielectric continuum of
// permittivity epsOut, while the interior has permittivity epsIn
// (https://doi.org/10.1080/00268978000100361):
//
//	f0(q) = 1 + k*q^3 - shift*(1+k)*q,   k = (epsOut-epsIn)/(2*epsOut+epsIn)
//
// The optional linear shift zeroes f0 at the cutoff.
type ReactionField struct {
	cutoff  float64
	epsOut  float64
	epsIn   float64
	k       float64
	shifted bool
}

// NewReactionField builds a reaction-field scheme. epsOut is the
// surrounding (continuum) relative permittivity and may be +Inf for a
// conducting boundary; epsIn is the interior permittivity.
func NewReactionField(cutoff, epsOut, epsIn float64, shifted bool) (*ReactionField, error) {
	if err := pairwise.ValidateCutoff(cutoff); err != nil {
		return nil, err
	}
	if !(epsOut > 0) || !(epsIn > 0) || math.IsInf(epsIn, 1) {
		return nil, fmt.Errorf("%w: epsOut=%v, epsIn=%v", pairwise.ErrDielectric, epsOut, epsIn)
	}
	k := 0.5 // conducting boundary limit
	if !math.IsInf(epsOut, 1) {
		k = (epsOut - epsIn) / (2*epsOut + epsIn)
	}
	return &ReactionField{cutoff: cutoff, epsOut: epsOut, epsIn: epsIn, k: k, shifted: shifted}, nil
}

func (r *ReactionField) F0(q float64) float64 {
	f := 1 + r.k*q*q*q
	if r.shifted {
		f -= (1 + r.k) * q
	}
	return f
}

func (r *ReactionField) F1(q float64) float64 {
	f := 3 * r.k * q * q
	if r.shifted {
		f -= 1 + r.k
	}
	return f
}

func (r *ReactionField) F2(q float64) float64 { return 6 * r.k * q }
func (r *ReactionField) F3(q float64) float64 { return 6 * r.k }

func (r *ReactionField) Cutoff() float64 { return r.cutoff }
func (r *ReactionField) Name() string    { return "reactionfield" }

// DielectricFactor returns k, the boundary-matching coefficient.
func (r *ReactionField) DielectricFactor() float64 { return r.k }

// ContinuityOrder is 0 when shifted (f0(1) = 0), otherwise -1.
func (r *ReactionField) ContinuityOrder() int {
	if r.shifted {
		return 0
	}
	return -1
}

func (r *ReactionField) SelfEnergyPrefactors() pairwise.Prefactors {
	p := pairwise.Prefactors{Dipole: -r.k}
	if r.shifted {
		p.Monopole = -(1 + r.k) / 2
	}
	return p
}
