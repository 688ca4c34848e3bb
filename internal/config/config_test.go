package config

import (
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/san-kum/coulomb/internal/pairwise"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Scheme.Name != "wolf" {
		t.Errorf("expected scheme wolf, got %s", cfg.Scheme.Name)
	}
	if cfg.Scheme.Cutoff <= 0 {
		t.Error("cutoff should be positive")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pair.yaml")

	cfg := GetPreset("saline-ewald")
	if cfg == nil {
		t.Fatal("expected preset")
	}
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if got.Scheme.Name != "ewald" || got.Scheme.Alpha != 0.1 {
		t.Errorf("scheme not preserved: %+v", got.Scheme)
	}
	if got.Medium.Salt == nil || got.Medium.Salt.Molality != 0.1 {
		t.Errorf("salt not preserved: %+v", got.Medium.Salt)
	}
}

func TestBuildSchemeUnknownName(t *testing.T) {
	_, err := BuildScheme(SchemeConfig{Name: "madelung", Cutoff: 10})
	var ce *ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
	if ce.Field != "scheme.name" {
		t.Errorf("expected field scheme.name, got %s", ce.Field)
	}
}

func TestBuildSchemeWrapsSentinels(t *testing.T) {
	_, err := BuildScheme(SchemeConfig{Name: "wolf", Cutoff: -1})
	if !errors.Is(err, pairwise.ErrCutoff) {
		t.Errorf("expected wrapped ErrCutoff, got %v", err)
	}

	_, err = BuildScheme(SchemeConfig{Name: "poisson", Cutoff: 12, N: 0})
	if !errors.Is(err, pairwise.ErrExponents) {
		t.Errorf("expected wrapped ErrExponents, got %v", err)
	}
}

func TestBuildMedium(t *testing.T) {
	m, err := BuildMedium(MediumConfig{Model: "water", Temperature: 298.15})
	if err != nil {
		t.Fatal(err)
	}
	epsr, err := m.Permittivity()
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(epsr-78.35565171480516) > 1e-9 {
		t.Errorf("water permittivity: got %v", epsr)
	}

	if _, err := BuildMedium(MediumConfig{Model: "mercury", Temperature: 298.15}); err == nil {
		t.Error("expected error for unknown medium")
	}

	_, err = BuildMedium(MediumConfig{Model: "fixed", Permittivity: -2, Temperature: 300})
	var ce *ConfigError
	if !errors.As(err, &ce) {
		t.Errorf("expected ConfigError for negative permittivity, got %v", err)
	}
}

func TestBuildEvaluatorWiresMediumDebyeLength(t *testing.T) {
	cfg := GetPreset("saline-ewald")
	ev, med, err := BuildEvaluator(cfg)
	if err != nil {
		t.Fatal(err)
	}

	debye, err := med.DebyeLength()
	if err != nil {
		t.Fatal(err)
	}
	kappa, ok := pairwise.Kappa(ev.Scheme())
	if !ok {
		t.Fatal("expected screened scheme")
	}
	if math.Abs(kappa-1/debye) > 1e-12 {
		t.Errorf("scheme kappa %v does not match medium debye length %v", kappa, debye)
	}

	bl, err := med.BjerrumLength()
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(ev.Bjerrum()-bl) > 1e-12 {
		t.Errorf("evaluator bjerrum %v, medium %v", ev.Bjerrum(), bl)
	}
}

func TestValidateRejectsBadPair(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Pair.Separation = 0

	err := cfg.Validate()
	var ce *ConfigError
	if !errors.As(err, &ce) || ce.Field != "pair.separation" {
		t.Errorf("expected pair.separation ConfigError, got %v", err)
	}
}

func TestPresetsAllValid(t *testing.T) {
	for _, name := range ListPresets() {
		cfg := GetPreset(name)
		if cfg == nil {
			t.Fatalf("preset %s missing", name)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
		if _, _, err := BuildEvaluator(cfg); err != nil {
			t.Errorf("preset %s does not build: %v", name, err)
		}
	}
}

func TestGetPresetNotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestGetPresetReturnsIndependentCopy(t *testing.T) {
	cfg := GetPreset("saline-ewald")
	if cfg == nil {
		t.Fatal("expected preset")
	}
	cfg.Scheme.Cutoff = -1
	cfg.Medium.Salt.Molality = 99

	fresh := GetPreset("saline-ewald")
	if fresh.Scheme.Cutoff != 29 {
		t.Errorf("cutoff mutated through to the catalogue: %v", fresh.Scheme.Cutoff)
	}
	if fresh.Medium.Salt.Molality != 0.1 {
		t.Errorf("salt molality mutated through to the catalogue: %v", fresh.Medium.Salt.Molality)
	}
}
