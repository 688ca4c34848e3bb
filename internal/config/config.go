package config

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/coulomb/internal/medium"
	"github.com/san-kum/coulomb/internal/multipole"
	"github.com/san-kum/coulomb/internal/pairwise"
	"github.com/san-kum/coulomb/internal/salt"
	"github.com/san-kum/coulomb/internal/schemes"
)

const (
	DefaultCutoff      = 12.0
	DefaultKappa       = 0.2
	DefaultTemperature = 298.15
	DefaultSeparation  = 7.0
)

type Config struct {
	Scheme SchemeConfig `yaml:"scheme"`
	Medium MediumConfig `yaml:"medium"`
	Pair   PairConfig   `yaml:"pair"`
}

type SchemeConfig struct {
	Name        string  `yaml:"name"`
	Cutoff      float64 `yaml:"cutoff"`
	Kappa       float64 `yaml:"kappa"`        // wolf damping
	Alpha       float64 `yaml:"alpha"`        // ewald damping
	DebyeLength float64 `yaml:"debye_length"` // ewald screening; 0 takes the medium's
	N           int     `yaml:"n"`            // poisson exponents
	M           int     `yaml:"m"`
	Order       int     `yaml:"order"` // qpotential factors
	EpsOut      float64 `yaml:"eps_out"`
	EpsIn       float64 `yaml:"eps_in"`
	Shifted     bool    `yaml:"shifted"`
}

type MediumConfig struct {
	Model        string      `yaml:"model"` // water, methanol, ethanol, vacuum, metal, water25, fixed
	Permittivity float64     `yaml:"permittivity"`
	Temperature  float64     `yaml:"temperature"`
	Salt         *SaltConfig `yaml:"salt,omitempty"`
}

type SaltConfig struct {
	Cation   int     `yaml:"cation"`
	Anion    int     `yaml:"anion"`
	Molality float64 `yaml:"molality"`
}

type PairConfig struct {
	ChargeA    float64    `yaml:"charge_a"`
	ChargeB    float64    `yaml:"charge_b"`
	DipoleA    [3]float64 `yaml:"dipole_a"`
	DipoleB    [3]float64 `yaml:"dipole_b"`
	Separation float64    `yaml:"separation"`
}

// ConfigError tags a validation or construction failure with the
// config field it came from, wrapping the underlying sentinel.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string { return fmt.Sprintf("config %s: %v", e.Field, e.Err) }
func (e *ConfigError) Unwrap() error { return e.Err }

func DefaultConfig() *Config {
	return &Config{
		Scheme: SchemeConfig{
			Name:   "wolf",
			Cutoff: DefaultCutoff,
			Kappa:  DefaultKappa,
		},
		Medium: MediumConfig{
			Model:       "water",
			Temperature: DefaultTemperature,
		},
		Pair: PairConfig{
			ChargeA:    1,
			ChargeB:    -1,
			Separation: DefaultSeparation,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// schemeBuilders maps a scheme name to its constructor. The ewald
// entry builds the salt-free variant; BuildEvaluator upgrades it to
// the screened one when a Debye length is available.
var schemeBuilders = map[string]func(SchemeConfig) (pairwise.ShortRange, error){
	"plain": func(c SchemeConfig) (pairwise.ShortRange, error) {
		return schemes.NewPlain(c.Cutoff)
	},
	"wolf": func(c SchemeConfig) (pairwise.ShortRange, error) {
		return schemes.NewWolf(c.Cutoff, c.Kappa)
	},
	"ewald": func(c SchemeConfig) (pairwise.ShortRange, error) {
		if c.DebyeLength > 0 {
			return schemes.NewScreenedEwald(c.Cutoff, c.Alpha, c.DebyeLength)
		}
		return schemes.NewRealSpaceEwald(c.Cutoff, c.Alpha)
	},
	"poisson": func(c SchemeConfig) (pairwise.ShortRange, error) {
		return schemes.NewPoisson(c.Cutoff, c.N, c.M)
	},
	"reactionfield": func(c SchemeConfig) (pairwise.ShortRange, error) {
		return schemes.NewReactionField(c.Cutoff, c.EpsOut, c.EpsIn, c.Shifted)
	},
	"qpotential": func(c SchemeConfig) (pairwise.ShortRange, error) {
		return schemes.NewQPotential(c.Cutoff, c.Order)
	},
}

// ListSchemes returns the registered scheme names, sorted.
func ListSchemes() []string {
	names := make([]string, 0, len(schemeBuilders))
	for name := range schemeBuilders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BuildScheme constructs the configured short-range scheme.
func BuildScheme(c SchemeConfig) (pairwise.ShortRange, error) {
	build, ok := schemeBuilders[c.Name]
	if !ok {
		return nil, &ConfigError{Field: "scheme.name", Err: fmt.Errorf("unknown scheme %q", c.Name)}
	}
	s, err := build(c)
	if err != nil {
		return nil, &ConfigError{Field: "scheme", Err: err}
	}
	return s, nil
}

// BuildMedium constructs the configured dielectric medium.
func BuildMedium(c MediumConfig) (*medium.Medium, error) {
	var model medium.RelativePermittivity
	if c.Model == "fixed" {
		model = medium.Fixed(c.Permittivity)
	} else {
		m, ok := medium.ByName(c.Model)
		if !ok {
			return nil, &ConfigError{Field: "medium.model", Err: fmt.Errorf("unknown medium %q", c.Model)}
		}
		model = m
	}

	if c.Salt == nil {
		m, err := medium.New(model, c.Temperature)
		if err != nil {
			return nil, &ConfigError{Field: "medium", Err: err}
		}
		return m, nil
	}

	sl, err := salt.New(c.Salt.Cation, c.Salt.Anion)
	if err != nil {
		return nil, &ConfigError{Field: "medium.salt", Err: err}
	}
	m, err := medium.NewWithSalt(model, c.Temperature, sl, c.Salt.Molality)
	if err != nil {
		return nil, &ConfigError{Field: "medium", Err: err}
	}
	return m, nil
}

// BuildEvaluator assembles the full stack: medium, scheme, and the
// pair evaluator scaled by the medium's Bjerrum length. An ewald
// scheme without an explicit Debye length picks up the medium's when
// salt is present.
func BuildEvaluator(cfg *Config) (*multipole.Evaluator, *medium.Medium, error) {
	med, err := BuildMedium(cfg.Medium)
	if err != nil {
		return nil, nil, err
	}

	sc := cfg.Scheme
	if sc.Name == "ewald" && sc.DebyeLength == 0 && cfg.Medium.Salt != nil {
		debye, err := med.DebyeLength()
		if err != nil {
			return nil, nil, &ConfigError{Field: "medium.salt", Err: err}
		}
		sc.DebyeLength = debye
	}

	scheme, err := BuildScheme(sc)
	if err != nil {
		return nil, nil, err
	}

	bjerrum, err := med.BjerrumLength()
	if err != nil {
		return nil, nil, &ConfigError{Field: "medium", Err: err}
	}
	ev, err := multipole.NewEvaluator(scheme, bjerrum)
	if err != nil {
		return nil, nil, &ConfigError{Field: "medium", Err: err}
	}
	return ev, med, nil
}

// Validate checks the config without building anything, returning the
// first field-tagged failure.
func (c *Config) Validate() error {
	if _, err := BuildScheme(c.Scheme); err != nil {
		return err
	}
	if _, err := BuildMedium(c.Medium); err != nil {
		return err
	}
	if c.Pair.Separation <= 0 {
		return &ConfigError{Field: "pair.separation", Err: fmt.Errorf("must be positive, got %v", c.Pair.Separation)}
	}
	return nil
}
