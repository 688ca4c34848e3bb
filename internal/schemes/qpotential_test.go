package schemes

import (
	"math"
	"testing"

	"github.com/san-kum/coulomb/internal/pairwise"
)

func TestQPotentialKernel(t *testing.T) {
	qp, err := NewQPotential(29, 3)
	if err != nil {
		t.Fatal(err)
	}

	// (1-0.5)(1-0.25)(1-0.125)
	if got := qp.F0(0.5); math.Abs(got-0.328125) > 1e-12 {
		t.Errorf("f0(0.5): expected 0.328125, got %v", got)
	}
	if got := qp.F0(0); got != 1 {
		t.Errorf("f0(0): expected 1, got %v", got)
	}
	if got := qp.F0(1); got != 0 {
		t.Errorf("f0(1): expected 0, got %v", got)
	}
	if got := qp.ContinuityOrder(); got != 2 {
		t.Errorf("continuity: expected 2, got %d", got)
	}
}

func TestQPotentialFallbackDerivatives(t *testing.T) {
	// The scheme deliberately omits analytic derivatives; the dispatch
	// layer must produce accurate stencil estimates of the product rule
	// result d/dq [(1-q)(1-q^2)] = -1 - 2q + 3q^2.
	qp, err := NewQPotential(29, 2)
	if err != nil {
		t.Fatal(err)
	}

	for _, q := range []float64{0.2, 0.5, 0.8} {
		want := -1 - 2*q + 3*q*q
		if got := pairwise.F1(qp, q); math.Abs(got-want) > 1e-7 {
			t.Errorf("f1(%v): expected %v, got %v", q, want, got)
		}
	}
}

func TestQPotentialOrderOne(t *testing.T) {
	qp, err := NewQPotential(29, 1)
	if err != nil {
		t.Fatal(err)
	}
	for _, q := range []float64{0, 0.5, 1} {
		if got := qp.F0(q); math.Abs(got-(1-q)) > 1e-15 {
			t.Errorf("f0(%v): expected %v, got %v", q, 1-q, got)
		}
	}
}
