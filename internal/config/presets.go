package config

import "sort"

// Presets are ready-made scheme/medium combinations for the CLI.
var Presets = map[string]*Config{
	"vacuum-plain": {
		Scheme: SchemeConfig{Name: "plain", Cutoff: 100},
		Medium: MediumConfig{Model: "vacuum", Temperature: 298.15},
		Pair:   PairConfig{ChargeA: 1, ChargeB: -1, Separation: 7},
	},
	"water-wolf": {
		Scheme: SchemeConfig{Name: "wolf", Cutoff: 12, Kappa: 0.2},
		Medium: MediumConfig{Model: "water", Temperature: 298.15},
		Pair:   PairConfig{ChargeA: 1, ChargeB: -1, Separation: 7},
	},
	"saline-ewald": {
		Scheme: SchemeConfig{Name: "ewald", Cutoff: 29, Alpha: 0.1},
		Medium: MediumConfig{
			Model:       "water",
			Temperature: 298.15,
			Salt:        &SaltConfig{Cation: 1, Anion: -1, Molality: 0.1},
		},
		Pair: PairConfig{ChargeA: 1, ChargeB: -1, Separation: 7},
	},
	"water-reactionfield": {
		Scheme: SchemeConfig{Name: "reactionfield", Cutoff: 14, EpsOut: 78.5, EpsIn: 1, Shifted: true},
		Medium: MediumConfig{Model: "water", Temperature: 298.15},
		Pair:   PairConfig{ChargeA: 1, ChargeB: -1, Separation: 7},
	},
	"water-poisson": {
		Scheme: SchemeConfig{Name: "poisson", Cutoff: 12, N: 4, M: 3},
		Medium: MediumConfig{Model: "water", Temperature: 298.15},
		Pair:   PairConfig{ChargeA: 1, ChargeB: -1, Separation: 7},
	},
}

// GetPreset returns a copy of the named preset, or nil when unknown.
// Callers may mutate the result (flag overrides) without corrupting
// the shared catalogue.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	out := *cfg
	if cfg.Medium.Salt != nil {
		s := *cfg.Medium.Salt
		out.Medium.Salt = &s
	}
	return &out
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
