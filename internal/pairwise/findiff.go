package pairwise

import "gonum.org/v1/gonum/diff/fd"

// Finite-difference steps per derivative order, balancing truncation
// error against floating-point cancellation. Higher orders divide by
// higher powers of h, so the step grows with the order.
const (
	StepF1 = 1e-5
	StepF2 = 1e-4
	StepF3 = 1e-3
)

// One-sided second-order formulas for the q=0 and q=1 boundaries,
// where a centered stencil would sample outside [0, 1]. Boundary
// estimates are less accurate than interior ones; schemes needing
// boundary precision supply analytic derivatives instead.
var (
	forward1st = fd.Formula{
		Stencil:    []fd.Point{{Loc: 0, Coeff: -1.5}, {Loc: 1, Coeff: 2}, {Loc: 2, Coeff: -0.5}},
		Derivative: 1,
		Step:       StepF1,
	}
	backward1st = fd.Formula{
		Stencil:    []fd.Point{{Loc: 0, Coeff: 1.5}, {Loc: -1, Coeff: -2}, {Loc: -2, Coeff: 0.5}},
		Derivative: 1,
		Step:       StepF1,
	}
	forward2nd = fd.Formula{
		Stencil:    []fd.Point{{Loc: 0, Coeff: 2}, {Loc: 1, Coeff: -5}, {Loc: 2, Coeff: 4}, {Loc: 3, Coeff: -1}},
		Derivative: 2,
		Step:       StepF2,
	}
	backward2nd = fd.Formula{
		Stencil:    []fd.Point{{Loc: 0, Coeff: 2}, {Loc: -1, Coeff: -5}, {Loc: -2, Coeff: 4}, {Loc: -3, Coeff: -1}},
		Derivative: 2,
		Step:       StepF2,
	}
	// diff/fd ships no third-derivative formulas, so all three
	// stencils are spelled out here.
	central3rd = fd.Formula{
		Stencil:    []fd.Point{{Loc: -2, Coeff: -0.5}, {Loc: -1, Coeff: 1}, {Loc: 1, Coeff: -1}, {Loc: 2, Coeff: 0.5}},
		Derivative: 3,
		Step:       StepF3,
	}
	forward3rd = fd.Formula{
		Stencil:    []fd.Point{{Loc: 0, Coeff: -2.5}, {Loc: 1, Coeff: 9}, {Loc: 2, Coeff: -12}, {Loc: 3, Coeff: 7}, {Loc: 4, Coeff: -1.5}},
		Derivative: 3,
		Step:       StepF3,
	}
	backward3rd = fd.Formula{
		Stencil:    []fd.Point{{Loc: 0, Coeff: 2.5}, {Loc: -1, Coeff: -9}, {Loc: -2, Coeff: 12}, {Loc: -3, Coeff: -7}, {Loc: -4, Coeff: 1.5}},
		Derivative: 3,
		Step:       StepF3,
	}
)

// Derivative estimates the order-th derivative (1..3) of f at q by
// finite differences on [0, 1]. Interior points use a centered
// stencil; points too close to q=0 or q=1 fall back to forward or
// backward stencils so that f is never sampled outside its domain.
// It never fails: for a degenerate f the estimate loses accuracy,
// not validity.
func Derivative(f func(float64) float64, order int, q float64) float64 {
	var h float64
	var central, forward, backward fd.Formula
	switch order {
	case 1:
		h, central, forward, backward = StepF1, fd.Central, forward1st, backward1st
	case 2:
		h, central, forward, backward = StepF2, fd.Central2nd, forward2nd, backward2nd
	case 3:
		h, central, forward, backward = StepF3, central3rd, forward3rd, backward3rd
	default:
		panic("pairwise: derivative order must be 1, 2 or 3")
	}

	formula := central
	if span := stencilSpan(central); q-span*h < 0 {
		formula = forward
	} else if q+span*h > 1 {
		formula = backward
	}
	return fd.Derivative(f, q, &fd.Settings{Formula: formula, Step: h})
}

func stencilSpan(formula fd.Formula) float64 {
	var span float64
	for _, p := range formula.Stencil {
		if l := p.Loc; l > span {
			span = l
		} else if -l > span {
			span = -l
		}
	}
	return span
}
