package multipole

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/coulomb/internal/pairwise"
)

// Multipole is a point particle carrying a charge and a dipole moment.
type Multipole struct {
	Pos    r3.Vec
	Charge float64
	Dipole r3.Vec
}

// Interaction aggregates every interaction order between two
// multipoles: total energy, force on B, and field plus field gradient
// at B's position.
type Interaction struct {
	Energy        float64
	Force         r3.Vec
	Field         r3.Vec
	FieldGradient *mat.SymDense
}

// Evaluator computes pair quantities for one scheme, scaled by the
// Bjerrum length of the surrounding medium. It is stateless after
// construction and safe for concurrent use.
type Evaluator struct {
	scheme  pairwise.ShortRange
	bjerrum float64
	zeta    float64 // kappa*cutoff, 0 when unscreened
}

// NewEvaluator couples a scheme with a Bjerrum length (same unit as
// the scheme's cutoff).
func NewEvaluator(scheme pairwise.ShortRange, bjerrum float64) (*Evaluator, error) {
	if bjerrum <= 0 || math.IsNaN(bjerrum) || math.IsInf(bjerrum, 0) {
		return nil, fmt.Errorf("%w: got %v", pairwise.ErrBjerrum, bjerrum)
	}
	e := &Evaluator{scheme: scheme, bjerrum: bjerrum}
	if kappa, ok := pairwise.Kappa(scheme); ok {
		e.zeta = kappa * scheme.Cutoff()
	}
	return e, nil
}

func (e *Evaluator) Scheme() pairwise.ShortRange { return e.scheme }
func (e *Evaluator) Bjerrum() float64            { return e.bjerrum }

// kernel returns the scheme's splitting function and its derivatives
// through the requested order, with the exp(-zeta*q) screening factor
// folded in so the chain rule stays uniform downstream.
func (e *Evaluator) kernel(q float64, order int) (s [4]float64) {
	s[0] = e.scheme.F0(q)
	if order >= 1 {
		s[1] = pairwise.F1(e.scheme, q)
	}
	if order >= 2 {
		s[2] = pairwise.F2(e.scheme, q)
	}
	if order >= 3 {
		s[3] = pairwise.F3(e.scheme, q)
	}
	if e.zeta == 0 {
		return s
	}
	z := e.zeta
	damp := math.Exp(-z * q)
	g0 := s[0] * damp
	g1 := (s[1] - z*s[0]) * damp
	g2 := (s[2] - 2*z*s[1] + z*z*s[0]) * damp
	g3 := (s[3] - 3*z*s[2] + 3*z*z*s[1] - z*z*z*s[0]) * damp
	return [4]float64{g0, g1, g2, g3}
}

// inside reports the reduced distance, returning ok=false at or
// beyond the cutoff.
func (e *Evaluator) inside(r float64) (q float64, ok bool) {
	q = r / e.scheme.Cutoff()
	return q, q < 1
}

// IonPotential is the electrostatic potential a charge generates at
// distance |r|.
func (e *Evaluator) IonPotential(z float64, r r3.Vec) float64 {
	d := r3.Norm(r)
	q, ok := e.inside(d)
	if !ok {
		return 0
	}
	s := e.kernel(q, 0)
	return e.bjerrum * z * s[0] / d
}

// DipolePotential is the potential a dipole at the origin generates at
// displacement r.
func (e *Evaluator) DipolePotential(mu, r r3.Vec) float64 {
	d := r3.Norm(r)
	q, ok := e.inside(d)
	if !ok {
		return 0
	}
	s := e.kernel(q, 1)
	return e.bjerrum * r3.Dot(mu, r) * (s[0] - q*s[1]) / (d * d * d)
}

// IonIonEnergy is the interaction energy of two charges separated by r.
func (e *Evaluator) IonIonEnergy(za, zb float64, r r3.Vec) float64 {
	d := r3.Norm(r)
	q, ok := e.inside(d)
	if !ok {
		return 0
	}
	s := e.kernel(q, 0)
	return e.bjerrum * za * zb * s[0] / d
}

// IonDipoleEnergy is the energy of dipole mub in the field of charge
// za, with r pointing from the charge to the dipole.
func (e *Evaluator) IonDipoleEnergy(za float64, mub, r r3.Vec) float64 {
	d := r3.Norm(r)
	q, ok := e.inside(d)
	if !ok {
		return 0
	}
	s := e.kernel(q, 1)
	return -e.bjerrum * za * r3.Dot(mub, r) * (s[0] - q*s[1]) / (d * d * d)
}

// DipoleDipoleEnergy is the interaction energy of two dipoles
// separated by r (A to B).
func (e *Evaluator) DipoleDipoleEnergy(mua, mub, r r3.Vec) float64 {
	d := r3.Norm(r)
	q, ok := e.inside(d)
	if !ok {
		return 0
	}
	s := e.kernel(q, 2)
	rh := r3.Unit(r)
	a, b := r3.Dot(mua, rh), r3.Dot(mub, rh)
	p := s[0] - q*s[1]
	return e.bjerrum * ((r3.Dot(mua, mub)-3*a*b)*p - a*b*q*q*s[2]) / (d * d * d)
}

// IonField is the field of charge z at displacement r.
func (e *Evaluator) IonField(z float64, r r3.Vec) r3.Vec {
	d := r3.Norm(r)
	q, ok := e.inside(d)
	if !ok {
		return r3.Vec{}
	}
	s := e.kernel(q, 1)
	return r3.Scale(e.bjerrum*z*(s[0]-q*s[1])/(d*d), r3.Unit(r))
}

// DipoleField is the field of dipole mu at displacement r.
func (e *Evaluator) DipoleField(mu, r r3.Vec) r3.Vec {
	d := r3.Norm(r)
	q, ok := e.inside(d)
	if !ok {
		return r3.Vec{}
	}
	s := e.kernel(q, 2)
	rh := r3.Unit(r)
	p := s[0] - q*s[1]
	radial := r3.Scale(r3.Dot(mu, rh)*(3*p+q*q*s[2]), rh)
	return r3.Scale(e.bjerrum/(d*d*d), r3.Sub(radial, r3.Scale(p, mu)))
}

// IonIonForce is the force on charge zb from charge za, r pointing
// from A to B.
func (e *Evaluator) IonIonForce(za, zb float64, r r3.Vec) r3.Vec {
	return r3.Scale(zb, e.IonField(za, r))
}

// IonDipoleForce is the force on dipole mub from charge za. By
// Newton's third law it is the negated force the dipole's field
// exerts on the charge.
func (e *Evaluator) IonDipoleForce(za float64, mub, r r3.Vec) r3.Vec {
	return r3.Scale(-za, e.DipoleField(mub, r))
}

// DipoleDipoleForce is the force on dipole mub from dipole mua.
func (e *Evaluator) DipoleDipoleForce(mua, mub, r r3.Vec) r3.Vec {
	d := r3.Norm(r)
	q, ok := e.inside(d)
	if !ok {
		return r3.Vec{}
	}
	s := e.kernel(q, 3)
	rh := r3.Unit(r)
	a, b := r3.Dot(mua, rh), r3.Dot(mub, rh)
	dot := r3.Dot(mua, mub)
	p := s[0] - q*s[1]
	rr := 3*p + q*q*s[2]

	f := r3.Scale(dot*rr, rh)
	f = r3.Add(f, r3.Scale(a*rr, mub))
	f = r3.Add(f, r3.Scale(b*rr, mua))
	f = r3.Add(f, r3.Scale(a*b*(q*q*q*s[3]-6*q*q*s[2]-15*p), rh))
	return r3.Scale(e.bjerrum/(d*d*d*d), f)
}

// IonFieldGradient is the gradient of the ion field at displacement r.
// The tensor is symmetric; its trace vanishes in the plain-Coulomb
// limit.
func (e *Evaluator) IonFieldGradient(z float64, r r3.Vec) *mat.SymDense {
	g := mat.NewSymDense(3, nil)
	d := r3.Norm(r)
	q, ok := e.inside(d)
	if !ok {
		return g
	}
	s := e.kernel(q, 2)
	rh := r3.Unit(r)
	p := s[0] - q*s[1]
	pre := e.bjerrum * z / (d * d * d)

	u := [3]float64{rh.X, rh.Y, rh.Z}
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			v := -u[i] * u[j] * (3*p + q*q*s[2])
			if i == j {
				v += p
			}
			g.SetSym(i, j, pre*v)
		}
	}
	return g
}

// DipoleFieldGradient is the gradient of the dipole field at
// displacement r.
func (e *Evaluator) DipoleFieldGradient(mu, r r3.Vec) *mat.SymDense {
	g := mat.NewSymDense(3, nil)
	d := r3.Norm(r)
	q, ok := e.inside(d)
	if !ok {
		return g
	}
	s := e.kernel(q, 3)
	rh := r3.Unit(r)
	a := r3.Dot(mu, rh)
	p := s[0] - q*s[1]
	rr := 3*p + q*q*s[2]
	pre := e.bjerrum / (d * d * d * d)

	u := [3]float64{rh.X, rh.Y, rh.Z}
	m := [3]float64{mu.X, mu.Y, mu.Z}
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			v := rr * (m[i]*u[j] + u[i]*m[j])
			v += a * u[i] * u[j] * (q*q*q*s[3] - 6*q*q*s[2] - 15*p)
			if i == j {
				v += a * rr
			}
			g.SetSym(i, j, pre*v)
		}
	}
	return g
}

// Interact combines all interaction orders between two multipoles.
// Force, field, and field gradient are evaluated at B.
func (e *Evaluator) Interact(a, b Multipole) Interaction {
	r := r3.Sub(b.Pos, a.Pos)
	rn := r3.Scale(-1, r)

	energy := e.IonIonEnergy(a.Charge, b.Charge, r) +
		e.IonDipoleEnergy(a.Charge, b.Dipole, r) +
		e.IonDipoleEnergy(b.Charge, a.Dipole, rn) +
		e.DipoleDipoleEnergy(a.Dipole, b.Dipole, r)

	force := e.IonIonForce(a.Charge, b.Charge, r)
	force = r3.Add(force, e.IonDipoleForce(a.Charge, b.Dipole, r))
	force = r3.Add(force, r3.Scale(-1, e.IonDipoleForce(b.Charge, a.Dipole, rn)))
	force = r3.Add(force, e.DipoleDipoleForce(a.Dipole, b.Dipole, r))

	field := r3.Add(e.IonField(a.Charge, r), e.DipoleField(a.Dipole, r))

	grad := e.IonFieldGradient(a.Charge, r)
	dg := e.DipoleFieldGradient(a.Dipole, r)
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			grad.SetSym(i, j, grad.At(i, j)+dg.At(i, j))
		}
	}

	return Interaction{Energy: energy, Force: force, Field: field, FieldGradient: grad}
}

// SelfEnergy sums the scheme's per-particle correction over a set of
// multipoles, in kT. Each particle contributes exactly once.
func (e *Evaluator) SelfEnergy(particles []Multipole) float64 {
	var sum float64
	for _, p := range particles {
		sum += pairwise.ParticleSelfEnergy(e.scheme, p.Charge, r3.Norm(p.Dipole))
	}
	return e.bjerrum * sum
}
