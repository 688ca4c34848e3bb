package medium

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/coulomb/internal/salt"
)

func TestEmpiricalPermittivity(t *testing.T) {
	tests := []struct {
		name  string
		model Empirical
		temp  float64
		want  float64
	}{
		{"water 298.15K", Water, 298.15, 78.35565171480516},
		{"methanol 298.15K", Methanol, 298.15, 33.081980713895064},
		{"ethanol 298.15K", Ethanol, 298.15, 24.33523434183735},
	}

	for _, tt := range tests {
		got, err := tt.model.Permittivity(tt.temp)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.name, err)
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestEmpiricalTemperatureRange(t *testing.T) {
	for _, temp := range []float64{100.0, 500.0, math.NaN()} {
		if _, err := Water.Permittivity(temp); !errors.Is(err, ErrTemperatureRange) {
			t.Errorf("T=%v: expected ErrTemperatureRange, got %v", temp, err)
		}
	}
}

func TestFixedPermittivity(t *testing.T) {
	got, err := Water25.Permittivity(1e6) // temperature independent
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 78.4 {
		t.Errorf("expected 78.4, got %v", got)
	}

	if _, err := Fixed(-2.0).Permittivity(298.15); !errors.Is(err, ErrPermittivity) {
		t.Errorf("expected ErrPermittivity for negative value, got %v", err)
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{"water", "methanol", "ethanol", "water25", "vacuum", "metal"} {
		if _, ok := ByName(name); !ok {
			t.Errorf("expected model for %q", name)
		}
	}
	if _, ok := ByName("benzene"); ok {
		t.Error("expected no model for benzene")
	}
}

func TestBjerrumLength(t *testing.T) {
	m, err := New(Water25, 298.15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lb, err := m.BjerrumLength()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Two unit charges in water at room temperature: ~7.15 angstrom.
	if math.Abs(lb-7.148715843718549) > 1e-9 {
		t.Errorf("expected 7.1487 A, got %v", lb)
	}
}

func TestDebyeLength(t *testing.T) {
	m, err := NewWithSalt(Water25, 298.15, salt.SodiumChloride, 0.1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ld, err := m.DebyeLength()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 0.1 M monovalent salt: ~9.6 angstrom.
	if math.Abs(ld-9.61370079831734) > 1e-6 {
		t.Errorf("expected 9.6137 A, got %v", ld)
	}

	saltFree, err := New(Water25, 298.15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ld, err = saltFree.DebyeLength()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsInf(ld, 1) {
		t.Errorf("expected +Inf screening length without salt, got %v", ld)
	}
}

func TestIonicStrengthMissingSalt(t *testing.T) {
	m, err := New(Water25, 298.15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := m.IonicStrength(); !errors.Is(err, ErrMissingSalt) {
		t.Errorf("expected ErrMissingSalt, got %v", err)
	}
}

func TestConstructionErrors(t *testing.T) {
	if _, err := New(Water25, -10); !errors.Is(err, ErrTemperature) {
		t.Errorf("expected ErrTemperature, got %v", err)
	}
	if _, err := New(Water, 500); !errors.Is(err, ErrTemperatureRange) {
		t.Errorf("expected ErrTemperatureRange, got %v", err)
	}
	if _, err := NewWithSalt(Water25, 298.15, salt.SodiumChloride, -1); !errors.Is(err, salt.ErrMolality) {
		t.Errorf("expected salt.ErrMolality, got %v", err)
	}
}
