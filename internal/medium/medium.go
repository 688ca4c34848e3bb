package medium

import (
	"fmt"
	"math"

	"github.com/san-kum/coulomb/internal/salt"
	"github.com/san-kum/coulomb/internal/units"
)

// Medium is an immutable dielectric environment: a permittivity model
// at a fixed temperature, optionally with dissolved salt. Construct
// once, share freely; all methods are read-only.
type Medium struct {
	model       RelativePermittivity
	temperature float64
	salt        *salt.Salt
	molality    float64
}

// New builds a salt-free medium. The temperature must be positive,
// finite, and inside the model's validity range.
func New(model RelativePermittivity, temperature float64) (*Medium, error) {
	return build(model, temperature, nil, 0)
}

// NewWithSalt builds a medium containing the given salt at the given
// molality (mol/kg).
func NewWithSalt(model RelativePermittivity, temperature float64, s salt.Salt, molality float64) (*Medium, error) {
	return build(model, temperature, &s, molality)
}

func build(model RelativePermittivity, temperature float64, s *salt.Salt, molality float64) (*Medium, error) {
	if temperature <= 0 || math.IsNaN(temperature) || math.IsInf(temperature, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrTemperature, temperature)
	}
	epsr, err := model.Permittivity(temperature)
	if err != nil {
		return nil, err
	}
	if epsr <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrPermittivity, epsr)
	}
	m := &Medium{model: model, temperature: temperature, salt: s, molality: molality}
	if s != nil {
		if _, err := s.IonicStrength(molality); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Temperature returns the medium temperature in kelvin.
func (m *Medium) Temperature() float64 { return m.temperature }

// Permittivity returns the relative permittivity at the medium
// temperature.
func (m *Medium) Permittivity() (float64, error) {
	return m.model.Permittivity(m.temperature)
}

// BjerrumLength returns the Bjerrum length in angstrom.
func (m *Medium) BjerrumLength() (float64, error) {
	epsr, err := m.Permittivity()
	if err != nil {
		return 0, err
	}
	return units.BjerrumLength(epsr, m.temperature), nil
}

// IonicStrength returns the ionic strength in mol/kg, or ErrMissingSalt
// for a salt-free medium.
func (m *Medium) IonicStrength() (float64, error) {
	if m.salt == nil {
		return 0, ErrMissingSalt
	}
	return m.salt.IonicStrength(m.molality)
}

// DebyeLength returns the screening length in angstrom. It is +Inf for
// a salt-free medium or zero ionic strength, mirroring the absence of
// screening rather than treating it as an error.
func (m *Medium) DebyeLength() (float64, error) {
	epsr, err := m.Permittivity()
	if err != nil {
		return 0, err
	}
	if m.salt == nil {
		return math.Inf(1), nil
	}
	ionic, err := m.salt.IonicStrength(m.molality)
	if err != nil {
		return 0, err
	}
	return units.DebyeLength(epsr, m.temperature, ionic), nil
}

func (m *Medium) String() string {
	s := fmt.Sprintf("%v at %.2f K", m.model, m.temperature)
	if m.salt != nil {
		zc, za := m.salt.Valencies()
		s += fmt.Sprintf(", %.3g mol/kg salt (%+d,%+d)", m.molality, zc, za)
	}
	return s
}
