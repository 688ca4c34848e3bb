package schemes

import (
	"fmt"

	"github.com/san-kum/coulomb/internal/pairwise"
)

// QPotential is the product kernel
//
//	f0(q) = prod_{k=1}^{order} (1 - q^k)
//
// (https://doi.org/10.1039/c9cp03875b). The kernel and its first
// order-1 derivatives vanish at the cutoff. Only f0 is implemented;
// derivatives come from the finite-difference fallback, which makes
// this scheme a production exerciser of that path.
type QPotential struct {
	cutoff float64
	order  int
}

// NewQPotential builds a q-potential kernel of the given order >= 1.
func NewQPotential(cutoff float64, order int) (*QPotential, error) {
	if err := pairwise.ValidateCutoff(cutoff); err != nil {
		return nil, err
	}
	if order < 1 {
		return nil, fmt.Errorf("%w: order %d (need >= 1)", pairwise.ErrOrder, order)
	}
	return &QPotential{cutoff: cutoff, order: order}, nil
}

func (p *QPotential) F0(q float64) float64 {
	prod := 1.0
	qk := 1.0
	for k := 1; k <= p.order; k++ {
		qk *= q
		prod *= 1 - qk
	}
	return prod
}

func (p *QPotential) Cutoff() float64 { return p.cutoff }
func (p *QPotential) Name() string    { return fmt.Sprintf("qpotential(%d)", p.order) }

// Order returns the number of product factors.
func (p *QPotential) Order() int { return p.order }

func (p *QPotential) ContinuityOrder() int { return p.order - 1 }
