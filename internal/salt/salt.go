// Package salt resolves salt stoichiometry from ion valencies and
// derives the ionic strength of a solution.
package salt

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrStoichiometry indicates the valency pair cannot form a neutral
	// salt; both a positive and a negative valency are required.
	ErrStoichiometry = errors.New("salt: cannot resolve stoichiometry; provide one positive and one negative valency")

	// ErrMolality indicates a negative or non-finite molality.
	ErrMolality = errors.New("salt: molality must be non-negative and finite")
)

// Salt is an immutable valency pair, e.g. {1, -1} for NaCl or
// {2, -1} for CaCl2. Construct with New; the zero value is not valid.
type Salt struct {
	cation int
	anion  int
	nu     [2]int // formula-unit counts, cation then anion
}

// Common salts.
var (
	SodiumChloride   = Salt{1, -1, [2]int{1, 1}}
	CalciumChloride  = Salt{2, -1, [2]int{1, 2}}
	MagnesiumSulfate = Salt{2, -2, [2]int{1, 1}}
)

// New builds a salt from a cation and an anion valency. It fails with
// ErrStoichiometry when either valency is zero or the two have the
// same sign.
func New(cation, anion int) (Salt, error) {
	nuC, nuA, err := Stoichiometry(cation, anion)
	if err != nil {
		return Salt{}, err
	}
	return Salt{cation: cation, anion: anion, nu: [2]int{nuC, nuA}}, nil
}

// Stoichiometry returns the smallest integer pair (cations, anions)
// that makes one formula unit charge neutral.
func Stoichiometry(cation, anion int) (int, int, error) {
	if cation <= 0 || anion >= 0 {
		return 0, 0, ErrStoichiometry
	}
	g := gcd(cation, -anion)
	return -anion / g, cation / g, nil
}

// Valencies returns the cation and anion valency.
func (s Salt) Valencies() (int, int) {
	return s.cation, s.anion
}

// Stoichiometry returns the formula-unit ion counts (cations, anions).
func (s Salt) Stoichiometry() (int, int) {
	return s.nu[0], s.nu[1]
}

// IonicStrength returns I = 1/2 sum_i nu_i z_i^2 * molality for one
// formula unit of the salt dissolved at the given molality (mol/kg).
// A negative or non-finite molality is a domain error.
func (s Salt) IonicStrength(molality float64) (float64, error) {
	if molality < 0 || math.IsNaN(molality) || math.IsInf(molality, 0) {
		return 0, fmt.Errorf("%w: got %v", ErrMolality, molality)
	}
	zc, za := float64(s.cation), float64(s.anion)
	return 0.5 * molality * (float64(s.nu[0])*zc*zc + float64(s.nu[1])*za*za), nil
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
