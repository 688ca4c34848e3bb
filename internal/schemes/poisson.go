package schemes

import (
	"fmt"

	"github.com/san-kum/coulomb/internal/pairwise"
)

// Poisson is the two-parameter polynomial kernel family
// (https://doi.org/10.1088/1367-2630/ab1ec1):
//
//	f0(q) = (1-q)^(m+1) * sum_{c=0}^{n-1} binom(m-1+c, c) * (n-c)/n * q^c
//
// The kernel and its first m derivatives vanish at the cutoff, which
// subsumes several published schemes as special cases: (1,-1) is the
// plain kernel, (1,0) the linear energy shift, (2,1) a shifted-force
// kernel, (3,3) and (4,3) higher-order smooth truncations.
//
// The polynomial is expanded into monomial coefficients at
// construction; f0 through f3 are exact Horner evaluations.
type Poisson struct {
	cutoff float64
	n, m   int
	coeffs []float64
}

// NewPoisson builds a Poisson(n, m) kernel. Requires n >= 1 and
// m >= -1; m = -1 disables the cutoff zeroing entirely.
func NewPoisson(cutoff float64, n, m int) (*Poisson, error) {
	if err := pairwise.ValidateCutoff(cutoff); err != nil {
		return nil, err
	}
	if n < 1 || m < -1 {
		return nil, fmt.Errorf("%w: n=%d, m=%d (need n >= 1, m >= -1)", pairwise.ErrExponents, n, m)
	}
	return &Poisson{cutoff: cutoff, n: n, m: m, coeffs: poissonCoeffs(n, m)}, nil
}

// poissonCoeffs expands (1-q)^(m+1) * sum_c binom(m-1+c,c)*(n-c)/n*q^c
// into monomial coefficients of degree n+m.
func poissonCoeffs(n, m int) []float64 {
	// (1-q)^(m+1) by repeated multiplication.
	shell := []float64{1}
	for i := 0; i < m+1; i++ {
		next := make([]float64, len(shell)+1)
		for j, c := range shell {
			next[j] += c
			next[j+1] -= c
		}
		shell = next
	}

	// The generalized binomial handles m-1+c < 0 (m = -1 or 0).
	series := make([]float64, n)
	for c := 0; c < n; c++ {
		b := 1.0
		for i := 0; i < c; i++ {
			b *= float64(m-1+c-i) / float64(c-i)
		}
		series[c] = b * float64(n-c) / float64(n)
	}

	out := make([]float64, len(shell)+len(series)-1)
	for i, a := range shell {
		for j, b := range series {
			out[i+j] += a * b
		}
	}
	return out
}

// horner evaluates the d-th derivative of the coefficient polynomial.
func (p *Poisson) horner(q float64, d int) float64 {
	var sum float64
	for k := len(p.coeffs) - 1; k >= d; k-- {
		factor := 1.0
		for i := 0; i < d; i++ {
			factor *= float64(k - i)
		}
		sum = sum*q + p.coeffs[k]*factor
	}
	return sum
}

func (p *Poisson) F0(q float64) float64 { return p.horner(q, 0) }
func (p *Poisson) F1(q float64) float64 { return p.horner(q, 1) }
func (p *Poisson) F2(q float64) float64 { return p.horner(q, 2) }
func (p *Poisson) F3(q float64) float64 { return p.horner(q, 3) }

func (p *Poisson) Cutoff() float64 { return p.cutoff }
func (p *Poisson) Name() string    { return fmt.Sprintf("poisson(%d,%d)", p.n, p.m) }

// Exponents returns the (n, m) pair.
func (p *Poisson) Exponents() (n, m int) { return p.n, p.m }

// ContinuityOrder is m: derivatives through order m vanish at q = 1.
func (p *Poisson) ContinuityOrder() int { return p.m }

// SelfEnergyPrefactors for the polynomial family. The monopole term is
// f1(0)/2 = -(n+m)/(2n); the dipole term is the q -> 0 limit of the
// truncated-minus-bare dipolar energy, -f3(0)/6. Both vanish for the
// plain special case (1, -1).
func (p *Poisson) SelfEnergyPrefactors() pairwise.Prefactors {
	return pairwise.Prefactors{
		Monopole: p.horner(0, 1) / 2,
		Dipole:   -p.horner(0, 3) / 6,
	}
}
