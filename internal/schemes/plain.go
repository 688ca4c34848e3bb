package schemes

import "github.com/san-kum/coulomb/internal/pairwise"

// Plain is the bare Coulomb kernel: f0(q) = 1 everywhere inside the
// cutoff, hard truncation beyond it. Energy and force are
// discontinuous at the cutoff; there is no self-energy correction.
type Plain struct {
	cutoff float64
}

// NewPlain builds a plain truncated-Coulomb scheme.
func NewPlain(cutoff float64) (*Plain, error) {
	if err := pairwise.ValidateCutoff(cutoff); err != nil {
		return nil, err
	}
	return &Plain{cutoff: cutoff}, nil
}

func (p *Plain) F0(q float64) float64 { return 1 }
func (p *Plain) F1(q float64) float64 { return 0 }
func (p *Plain) F2(q float64) float64 { return 0 }
func (p *Plain) F3(q float64) float64 { return 0 }

func (p *Plain) Cutoff() float64 { return p.cutoff }
func (p *Plain) Name() string    { return "plain" }

// ContinuityOrder is -1: f0(1) = 1, nothing vanishes at the cutoff.
func (p *Plain) ContinuityOrder() int { return -1 }
