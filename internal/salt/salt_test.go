package salt

import (
	"errors"
	"math"
	"testing"
)

func TestStoichiometry(t *testing.T) {
	tests := []struct {
		cation, anion int
		wantC, wantA  int
	}{
		{1, -1, 1, 1},
		{2, -1, 1, 2},
		{1, -2, 2, 1},
		{2, -2, 1, 1},
		{3, -1, 1, 3},
		{3, -2, 2, 3},
	}

	for _, tt := range tests {
		nuC, nuA, err := Stoichiometry(tt.cation, tt.anion)
		if err != nil {
			t.Fatalf("(%d,%d): unexpected error: %v", tt.cation, tt.anion, err)
		}
		if nuC != tt.wantC || nuA != tt.wantA {
			t.Errorf("(%d,%d): expected (%d,%d), got (%d,%d)",
				tt.cation, tt.anion, tt.wantC, tt.wantA, nuC, nuA)
		}
	}
}

func TestStoichiometryInvalid(t *testing.T) {
	invalid := [][2]int{{0, -1}, {1, 0}, {0, 0}, {1, 2}, {-1, -2}, {-1, 1}}

	for _, v := range invalid {
		if _, _, err := Stoichiometry(v[0], v[1]); !errors.Is(err, ErrStoichiometry) {
			t.Errorf("(%d,%d): expected ErrStoichiometry, got %v", v[0], v[1], err)
		}
		if _, err := New(v[0], v[1]); !errors.Is(err, ErrStoichiometry) {
			t.Errorf("New(%d,%d): expected ErrStoichiometry, got %v", v[0], v[1], err)
		}
	}
}

func TestIonicStrength(t *testing.T) {
	tests := []struct {
		name     string
		salt     Salt
		molality float64
		want     float64
	}{
		{"NaCl 1m", SodiumChloride, 1.0, 1.0},
		{"NaCl 0.1m", SodiumChloride, 0.1, 0.1},
		{"CaCl2 1m", CalciumChloride, 1.0, 3.0},
		{"MgSO4 1m", MagnesiumSulfate, 1.0, 4.0},
		{"zero molality", SodiumChloride, 0.0, 0.0},
	}

	for _, tt := range tests {
		got, err := tt.salt.IonicStrength(tt.molality)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.name, err)
		}
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestIonicStrengthDomain(t *testing.T) {
	for _, m := range []float64{-0.1, math.NaN(), math.Inf(1)} {
		if _, err := SodiumChloride.IonicStrength(m); !errors.Is(err, ErrMolality) {
			t.Errorf("molality %v: expected ErrMolality, got %v", m, err)
		}
	}
}

func TestPresetsMatchNew(t *testing.T) {
	for _, tt := range []struct {
		preset        Salt
		cation, anion int
	}{
		{SodiumChloride, 1, -1},
		{CalciumChloride, 2, -1},
		{MagnesiumSulfate, 2, -2},
	} {
		built, err := New(tt.cation, tt.anion)
		if err != nil {
			t.Fatalf("New(%d,%d): %v", tt.cation, tt.anion, err)
		}
		if built != tt.preset {
			t.Errorf("preset mismatch for (%d,%d): %+v vs %+v", tt.cation, tt.anion, tt.preset, built)
		}
	}
}
