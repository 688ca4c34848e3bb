package schemes

import (
	"math"
	"testing"
)

func TestPoissonReferenceValues(t *testing.T) {
	tests := []struct {
		n, m           int
		f0, f1, f2, f3 float64
	}{
		{2, 1, 0.3125, -1.125, 1.5, 3},
		{3, 3, 0.15625, -1.0, 3.75, 0},
		{4, 3, 0.19921875, -1.1484375, 3.28125, 6.5625},
	}

	for _, tt := range tests {
		p, err := NewPoisson(29, tt.n, tt.m)
		if err != nil {
			t.Fatal(err)
		}
		got := []float64{p.F0(0.5), p.F1(0.5), p.F2(0.5), p.F3(0.5)}
		want := []float64{tt.f0, tt.f1, tt.f2, tt.f3}
		for j := range got {
			if math.Abs(got[j]-want[j]) > 1e-12 {
				t.Errorf("poisson(%d,%d) f%d(0.5): expected %v, got %v",
					tt.n, tt.m, j, want[j], got[j])
			}
		}
	}
}

func TestPoissonSpecialCases(t *testing.T) {
	// (1,-1) is the plain kernel, (1,0) the linear energy shift.
	plainLike, err := NewPoisson(29, 1, -1)
	if err != nil {
		t.Fatal(err)
	}
	shifted, err := NewPoisson(29, 1, 0)
	if err != nil {
		t.Fatal(err)
	}

	for _, q := range []float64{0, 0.3, 0.7, 1} {
		if got := plainLike.F0(q); math.Abs(got-1) > 1e-12 {
			t.Errorf("poisson(1,-1) f0(%v): expected 1, got %v", q, got)
		}
		if got := shifted.F0(q); math.Abs(got-(1-q)) > 1e-12 {
			t.Errorf("poisson(1,0) f0(%v): expected %v, got %v", q, 1-q, got)
		}
	}

	if got := plainLike.ContinuityOrder(); got != -1 {
		t.Errorf("poisson(1,-1) continuity: expected -1, got %d", got)
	}
	if got := shifted.ContinuityOrder(); got != 0 {
		t.Errorf("poisson(1,0) continuity: expected 0, got %d", got)
	}
}

func TestPoissonSelfEnergyPrefactors(t *testing.T) {
	for _, tt := range []struct{ n, m int }{{1, 0}, {2, 1}, {3, 3}, {4, 3}} {
		p, err := NewPoisson(29, tt.n, tt.m)
		if err != nil {
			t.Fatal(err)
		}
		want := -float64(tt.n+tt.m) / float64(2*tt.n)
		if got := p.SelfEnergyPrefactors().Monopole; math.Abs(got-want) > 1e-12 {
			t.Errorf("poisson(%d,%d) monopole prefactor: expected %v, got %v",
				tt.n, tt.m, want, got)
		}
	}
}

func TestPoissonDerivativesVanishThroughOrderM(t *testing.T) {
	p, err := NewPoisson(29, 4, 3)
	if err != nil {
		t.Fatal(err)
	}
	for j, f := range []func(float64) float64{p.F0, p.F1, p.F2, p.F3} {
		if got := f(1); math.Abs(got) > 1e-12 {
			t.Errorf("poisson(4,3) f%d(1): expected 0, got %v", j, got)
		}
	}
}
