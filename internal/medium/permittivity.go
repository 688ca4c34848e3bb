// Package medium models the dielectric environment of a pair
// interaction: relative permittivity as a function of temperature,
// plus the derived Bjerrum and Debye lengths.
package medium

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrTemperatureRange indicates a temperature outside the validity
	// interval of an empirical permittivity model.
	ErrTemperatureRange = errors.New("medium: temperature out of range for permittivity model")

	// ErrTemperature indicates a non-positive or non-finite temperature.
	ErrTemperature = errors.New("medium: temperature must be positive and finite")

	// ErrPermittivity indicates a non-positive relative permittivity.
	ErrPermittivity = errors.New("medium: relative permittivity must be positive")

	// ErrMissingSalt indicates a salt-dependent quantity was requested
	// from a salt-free medium.
	ErrMissingSalt = errors.New("medium: no salt present")
)

// RelativePermittivity is a temperature-dependent dielectric model.
type RelativePermittivity interface {
	// Permittivity returns the relative permittivity at the given
	// temperature in kelvin, or an error when the temperature is
	// outside the model's validity range.
	Permittivity(temperature float64) (float64, error)
}

// Fixed is a temperature-independent relative permittivity.
type Fixed float64

func (f Fixed) Permittivity(temperature float64) (float64, error) {
	if f <= 0 {
		return 0, fmt.Errorf("%w: got %v", ErrPermittivity, float64(f))
	}
	return float64(f), nil
}

func (f Fixed) String() string {
	if math.IsInf(float64(f), 1) {
		return "epsr = inf"
	}
	return fmt.Sprintf("epsr = %.2f", float64(f))
}

// Preset dielectric constants.
var (
	// Vacuum is free space, epsr = 1.
	Vacuum = Fixed(1.0)
	// Metal is a perfect conductor, epsr = inf.
	Metal = Fixed(math.Inf(1))
	// Water25 is water at 25 C, epsr = 78.4.
	Water25 = Fixed(78.4)
)

// Empirical is the five-coefficient Neau-Raspo form for the
// temperature-dependent relative permittivity of a solvent,
//
//	epsr(T) = c0 + c1*T + c2*T^2 + c3/T + c4*ln(T)
//
// valid on a closed temperature interval. See
// https://doi.org/10.1016/j.fluid.2019.112371.
type Empirical struct {
	coeffs     [5]float64
	tmin, tmax float64
}

// NewEmpirical builds an empirical model from coefficients and a
// validity interval in kelvin.
func NewEmpirical(coeffs [5]float64, tmin, tmax float64) Empirical {
	return Empirical{coeffs: coeffs, tmin: tmin, tmax: tmax}
}

func (e Empirical) Permittivity(temperature float64) (float64, error) {
	if temperature < e.tmin || temperature > e.tmax || math.IsNaN(temperature) {
		return 0, fmt.Errorf("%w: T=%v outside [%v, %v]", ErrTemperatureRange, temperature, e.tmin, e.tmax)
	}
	c := e.coeffs
	return c[0] + c[1]*temperature + c[2]*temperature*temperature +
		c[3]/temperature + c[4]*math.Log(temperature), nil
}

func (e Empirical) String() string {
	c := e.coeffs
	return fmt.Sprintf("epsr(T) = %.2e + %.2eT + %.2eT^2 + %.2e/T + %.2eln(T); T = [%.1f, %.1f]",
		c[0], c[1], c[2], c[3], c[4], e.tmin, e.tmax)
}

// Empirical solvent models with coefficients from Neau and Raspo.
var (
	Water = NewEmpirical(
		[5]float64{-1664.4988, -0.884533, 0.0003635, 64839.1736, 308.3394},
		273.0, 403.0)
	Methanol = NewEmpirical(
		[5]float64{-1750.3069, -0.99026, 0.0004666, 51360.2652, 327.3124},
		176.0, 318.0)
	Ethanol = NewEmpirical(
		[5]float64{-1522.2782, -1.00508, 0.0005211, 38733.9481, 293.1133},
		288.0, 328.0)
)

// ByName looks up a named permittivity model. Known names: water,
// methanol, ethanol, water25, vacuum, metal.
func ByName(name string) (RelativePermittivity, bool) {
	switch name {
	case "water":
		return Water, true
	case "methanol":
		return Methanol, true
	case "ethanol":
		return Ethanol, true
	case "water25":
		return Water25, true
	case "vacuum":
		return Vacuum, true
	case "metal":
		return Metal, true
	}
	return nil, false
}
