package schemes

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/coulomb/internal/pairwise"
)

// catalogue instantiates one of every scheme for the shared property
// tests below.
func catalogue(t *testing.T) []pairwise.ShortRange {
	t.Helper()

	plain, err := NewPlain(29)
	if err != nil {
		t.Fatal(err)
	}
	wolf, err := NewWolf(12, 0.2)
	if err != nil {
		t.Fatal(err)
	}
	ewald, err := NewRealSpaceEwald(29, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	screened, err := NewScreenedEwald(29, 0.1, 23)
	if err != nil {
		t.Fatal(err)
	}
	p21, err := NewPoisson(29, 2, 1)
	if err != nil {
		t.Fatal(err)
	}
	p33, err := NewPoisson(29, 3, 3)
	if err != nil {
		t.Fatal(err)
	}
	p43, err := NewPoisson(29, 4, 3)
	if err != nil {
		t.Fatal(err)
	}
	rf, err := NewReactionField(29, 78.5, 1, true)
	if err != nil {
		t.Fatal(err)
	}
	qp, err := NewQPotential(29, 3)
	if err != nil {
		t.Fatal(err)
	}
	return []pairwise.ShortRange{plain, wolf, ewald, screened, p21, p33, p43, rf, qp}
}

func TestKernelUnityAtOrigin(t *testing.T) {
	for _, s := range catalogue(t) {
		if got := s.F0(0); math.Abs(got-1) > 1e-12 {
			t.Errorf("%s: f0(0) = %v, expected 1", s.Name(), got)
		}
	}
}

func TestContinuityAtCutoff(t *testing.T) {
	// Every derivative order up to the declared continuity order must
	// vanish at q = 1.
	deriv := func(s pairwise.ShortRange, j int, q float64) float64 {
		switch j {
		case 0:
			return s.F0(q)
		case 1:
			return pairwise.F1(s, q)
		case 2:
			return pairwise.F2(s, q)
		default:
			return pairwise.F3(s, q)
		}
	}
	tol := []float64{1e-12, 1e-7, 1e-4, 1e-2}

	for _, s := range catalogue(t) {
		k := pairwise.ContinuityOrder(s)
		if k > 3 {
			k = 3
		}
		for j := 0; j <= k; j++ {
			if got := deriv(s, j, 1); math.Abs(got) > tol[j] {
				t.Errorf("%s: f%d(1) = %v, expected 0", s.Name(), j, got)
			}
		}
	}
}

func TestAnalyticDerivativesMatchStencils(t *testing.T) {
	// Schemes with closed-form derivatives must agree with the
	// finite-difference estimate of their own f0.
	for _, s := range catalogue(t) {
		for _, q := range []float64{0.1, 0.3, 0.5, 0.7, 0.9} {
			checkDeriv(t, s.Name(), "f1", pairwise.F1(s, q), pairwise.Derivative(s.F0, 1, q), 1e-6)
			checkDeriv(t, s.Name(), "f2", pairwise.F2(s, q), pairwise.Derivative(s.F0, 2, q), 1e-4)
			checkDeriv(t, s.Name(), "f3", pairwise.F3(s, q), pairwise.Derivative(s.F0, 3, q), 1e-3)
		}
	}
}

func checkDeriv(t *testing.T, name, order string, analytic, numeric, tol float64) {
	t.Helper()
	scale := math.Max(math.Abs(analytic), 1)
	if math.Abs(analytic-numeric)/scale > tol {
		t.Errorf("%s %s: analytic %v vs numeric %v", name, order, analytic, numeric)
	}
}

func TestConstructorValidation(t *testing.T) {
	if _, err := NewPlain(-1); !errors.Is(err, pairwise.ErrCutoff) {
		t.Errorf("expected ErrCutoff, got %v", err)
	}
	if _, err := NewWolf(12, -0.1); !errors.Is(err, pairwise.ErrDamping) {
		t.Errorf("expected ErrDamping, got %v", err)
	}
	if _, err := NewRealSpaceEwald(29, 0); !errors.Is(err, pairwise.ErrDamping) {
		t.Errorf("expected ErrDamping, got %v", err)
	}
	if _, err := NewScreenedEwald(29, 0.1, -5); !errors.Is(err, pairwise.ErrScreening) {
		t.Errorf("expected ErrScreening, got %v", err)
	}
	if _, err := NewPoisson(29, 0, 1); !errors.Is(err, pairwise.ErrExponents) {
		t.Errorf("expected ErrExponents, got %v", err)
	}
	if _, err := NewPoisson(29, 2, -2); !errors.Is(err, pairwise.ErrExponents) {
		t.Errorf("expected ErrExponents, got %v", err)
	}
	if _, err := NewReactionField(29, -1, 1, false); !errors.Is(err, pairwise.ErrDielectric) {
		t.Errorf("expected ErrDielectric, got %v", err)
	}
	if _, err := NewQPotential(29, 0); !errors.Is(err, pairwise.ErrOrder) {
		t.Errorf("expected ErrOrder, got %v", err)
	}
}
