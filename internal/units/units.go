// Package units holds the physical constants and boundary conversions
// for the electrostatics core. Everything inside the core works on
// dimension-stripped float64 values: lengths in angstrom, temperatures
// in kelvin, concentrations in mol/kg, energies in units of kT.
// Conversions into and out of those conventions live here.
package units

import "math"

// CODATA 2018 values, SI.
const (
	ElementaryCharge   = 1.602176634e-19  // C
	VacuumPermittivity = 8.8541878128e-12 // F/m
	Boltzmann          = 1.380649e-23     // J/K
	Avogadro           = 6.02214076e23    // 1/mol
)

const (
	AngstromPerMeter = 1e10
	// mol/L to mol/m^3
	MolarToSI = 1e3
)

// BjerrumLength returns the distance, in angstrom, at which two unit
// charges in a medium of relative permittivity epsr at temperature T
// (kelvin) interact with thermal energy kT. Inputs are assumed
// pre-validated (epsr > 0, T > 0); medium.Medium is the fallible
// entry point.
func BjerrumLength(epsr, temperature float64) float64 {
	meters := ElementaryCharge * ElementaryCharge /
		(4.0 * math.Pi * VacuumPermittivity * epsr * Boltzmann * temperature)
	return meters * AngstromPerMeter
}

// DebyeLength returns the electrostatic screening length, in angstrom,
// for a medium of relative permittivity epsr at temperature T with the
// given ionic strength in mol/L. Callers passing molal ionic strengths
// (mol/kg) rely on the dilute-aqueous approximation molality ≈
// molarity. An ionic strength of zero yields +Inf (no screening).
func DebyeLength(epsr, temperature, ionicStrength float64) float64 {
	if ionicStrength == 0 {
		return math.Inf(1)
	}
	number := ionicStrength * MolarToSI * Avogadro // ions per m^3
	kappaSq := 2.0 * number * ElementaryCharge * ElementaryCharge /
		(VacuumPermittivity * epsr * Boltzmann * temperature)
	return AngstromPerMeter / math.Sqrt(kappaSq)
}

// KT returns the thermal energy kT in joule.
func KT(temperature float64) float64 {
	return Boltzmann * temperature
}

// ToKT converts an energy in kJ/mol to units of kT at temperature T.
func ToKT(kjPerMol, temperature float64) float64 {
	return kjPerMol * 1e3 / (Avogadro * Boltzmann * temperature)
}

// FromKT converts an energy in units of kT at temperature T to kJ/mol.
func FromKT(kt, temperature float64) float64 {
	return kt * Avogadro * Boltzmann * temperature / 1e3
}
