package main

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/coulomb/internal/config"
	"github.com/san-kum/coulomb/internal/multipole"
	"github.com/san-kum/coulomb/internal/pairwise"
	"github.com/san-kum/coulomb/internal/tui"
	"github.com/san-kum/coulomb/internal/viz"
)

var (
	// scheme parameters
	cutoff      float64
	kappa       float64
	alpha       float64
	debyeLength float64
	nExp        int
	mExp        int
	order       int
	epsOut      float64
	epsIn       float64
	shifted     bool
	// medium parameters
	mediumModel  string
	temperature  float64
	permittivity float64
	saltCation   int
	saltAnion    int
	molality     float64
	// pair parameters
	chargeA    float64
	chargeB    float64
	dipoleA    []float64
	dipoleB    []float64
	separation float64
	// sweep parameters
	rMin    float64
	rMax    float64
	rSteps  int
	csvPath string
	// config file and preset
	schemeName string
	configFile string
	preset     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "coulomb",
		Short: "pairwise electrostatics with interchangeable truncation schemes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.RunExplorer()
		},
	}

	schemesCmd := &cobra.Command{
		Use:   "schemes",
		Short: "list available truncation schemes",
		RunE:  listSchemes,
	}

	scanCmd := &cobra.Command{
		Use:   "scan [scheme]",
		Short: "plot the splitting function and its derivatives",
		Args:  cobra.ExactArgs(1),
		RunE:  scanScheme,
	}
	addSchemeFlags(scanCmd)

	checkCmd := &cobra.Command{
		Use:   "check [scheme]",
		Short: "compare analytic derivatives against finite differences",
		Args:  cobra.ExactArgs(1),
		RunE:  checkScheme,
	}
	addSchemeFlags(checkCmd)

	pairCmd := &cobra.Command{
		Use:   "pair",
		Short: "evaluate one multipole pair",
		RunE:  evalPair,
	}
	pairCmd.Flags().StringVar(&schemeName, "scheme", "wolf", "truncation scheme")
	addSchemeFlags(pairCmd)
	addMediumFlags(pairCmd)
	addPairFlags(pairCmd)
	pairCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	pairCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "energy and force versus separation",
		RunE:  sweepPair,
	}
	sweepCmd.Flags().StringVar(&schemeName, "scheme", "wolf", "truncation scheme")
	addSchemeFlags(sweepCmd)
	addMediumFlags(sweepCmd)
	addPairFlags(sweepCmd)
	sweepCmd.Flags().Float64Var(&rMin, "r-min", 1.0, "smallest separation")
	sweepCmd.Flags().Float64Var(&rMax, "r-max", 0, "largest separation (default: cutoff)")
	sweepCmd.Flags().IntVar(&rSteps, "steps", 20, "number of separations")
	sweepCmd.Flags().StringVar(&csvPath, "csv", "", "write the table to a csv file")
	sweepCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	sweepCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	mediumCmd := &cobra.Command{
		Use:   "medium",
		Short: "permittivity, bjerrum and debye lengths of a medium",
		RunE:  describeMedium,
	}
	addMediumFlags(mediumCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset configurations",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				fmt.Printf("  %-22s %s in %s\n", name, cfg.Scheme.Name, cfg.Medium.Model)
			}
			return nil
		},
	}

	exploreCmd := &cobra.Command{
		Use:   "explore",
		Short: "interactive kernel explorer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.RunExplorer()
		},
	}

	rootCmd.AddCommand(schemesCmd, scanCmd, checkCmd, pairCmd, sweepCmd, mediumCmd, presetsCmd, exploreCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSchemeFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&cutoff, "cutoff", 12.0, "cutoff distance (angstrom)")
	cmd.Flags().Float64Var(&kappa, "kappa", 0.2, "wolf damping (1/angstrom)")
	cmd.Flags().Float64Var(&alpha, "alpha", 0.1, "ewald damping (1/angstrom)")
	cmd.Flags().Float64Var(&debyeLength, "debye", 0, "ewald debye length, 0 for salt-free")
	cmd.Flags().IntVar(&nExp, "n", 4, "poisson exponent n")
	cmd.Flags().IntVar(&mExp, "m", 3, "poisson exponent m")
	cmd.Flags().IntVar(&order, "order", 3, "qpotential order")
	cmd.Flags().Float64Var(&epsOut, "eps-out", 78.5, "reaction-field outer permittivity")
	cmd.Flags().Float64Var(&epsIn, "eps-in", 1.0, "reaction-field inner permittivity")
	cmd.Flags().BoolVar(&shifted, "shifted", true, "shift the reaction field to zero at the cutoff")
}

func addMediumFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&mediumModel, "medium", "water", "medium model (water, methanol, ethanol, vacuum, metal, water25, fixed)")
	cmd.Flags().Float64Var(&temperature, "temperature", 298.15, "temperature (kelvin)")
	cmd.Flags().Float64Var(&permittivity, "epsr", 78.4, "relative permittivity for --medium fixed")
	cmd.Flags().IntVar(&saltCation, "cation", 0, "salt cation valency, 0 for salt-free")
	cmd.Flags().IntVar(&saltAnion, "anion", 0, "salt anion valency")
	cmd.Flags().Float64Var(&molality, "molality", 0, "salt molality (mol/kg)")
}

func addPairFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&chargeA, "za", 1.0, "charge of particle A")
	cmd.Flags().Float64Var(&chargeB, "zb", -1.0, "charge of particle B")
	cmd.Flags().Float64SliceVar(&dipoleA, "mua", nil, "dipole of A as x,y,z")
	cmd.Flags().Float64SliceVar(&dipoleB, "mub", nil, "dipole of B as x,y,z")
	cmd.Flags().Float64Var(&separation, "r", 7.0, "separation along x (angstrom)")
}

func schemeConfigFromFlags(name string) config.SchemeConfig {
	return config.SchemeConfig{
		Name:        name,
		Cutoff:      cutoff,
		Kappa:       kappa,
		Alpha:       alpha,
		DebyeLength: debyeLength,
		N:           nExp,
		M:           mExp,
		Order:       order,
		EpsOut:      epsOut,
		EpsIn:       epsIn,
		Shifted:     shifted,
	}
}

func mediumConfigFromFlags() config.MediumConfig {
	mc := config.MediumConfig{
		Model:        mediumModel,
		Permittivity: permittivity,
		Temperature:  temperature,
	}
	if saltCation != 0 || saltAnion != 0 {
		mc.Salt = &config.SaltConfig{Cation: saltCation, Anion: saltAnion, Molality: molality}
	}
	return mc
}

func vecFromSlice(s []float64) r3.Vec {
	var v r3.Vec
	if len(s) > 0 {
		v.X = s[0]
	}
	if len(s) > 1 {
		v.Y = s[1]
	}
	if len(s) > 2 {
		v.Z = s[2]
	}
	return v
}

// resolveConfig merges the configuration sources: an explicit file
// wins, then a named preset, then flags.
func resolveConfig() (*config.Config, error) {
	if configFile != "" {
		return config.Load(configFile)
	}
	if preset != "" {
		cfg := config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		return cfg, nil
	}
	cfg := &config.Config{
		Scheme: schemeConfigFromFlags(schemeName),
		Medium: mediumConfigFromFlags(),
		Pair: config.PairConfig{
			ChargeA:    chargeA,
			ChargeB:    chargeB,
			Separation: separation,
		},
	}
	copy(cfg.Pair.DipoleA[:], dipoleA)
	copy(cfg.Pair.DipoleB[:], dipoleB)
	return cfg, nil
}

func listSchemes(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPARAMETERS\tCONTINUITY\tSELF-ENERGY")

	params := map[string]string{
		"plain":         "cutoff",
		"wolf":          "cutoff, kappa",
		"ewald":         "cutoff, alpha, debye",
		"poisson":       "cutoff, n, m",
		"reactionfield": "cutoff, eps-out, eps-in, shifted",
		"qpotential":    "cutoff, order",
	}

	for _, name := range config.ListSchemes() {
		s, err := config.BuildScheme(schemeConfigFromFlags(name))
		if err != nil {
			return err
		}
		continuity := "none"
		if k := pairwise.ContinuityOrder(s); k >= 0 {
			continuity = fmt.Sprintf("f0..f%d", k)
		}
		self := "no"
		if _, ok := s.(pairwise.SelfEnergy); ok {
			self = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, params[name], continuity, self)
	}
	return w.Flush()
}

func scanScheme(cmd *cobra.Command, args []string) error {
	s, err := config.BuildScheme(schemeConfigFromFlags(args[0]))
	if err != nil {
		return err
	}

	fmt.Printf("%s, cutoff %.4g\n\n", s.Name(), s.Cutoff())
	for order := 0; order <= 2; order++ {
		caption := fmt.Sprintf("f%d over q ∈ [0,1]", order)
		fmt.Println(viz.PlotKernel(s, order, 80, 10, caption))
		fmt.Println()
	}
	return nil
}

func checkScheme(cmd *cobra.Command, args []string) error {
	s, err := config.BuildScheme(schemeConfigFromFlags(args[0]))
	if err != nil {
		return err
	}

	fmt.Printf("%s: analytic derivatives vs finite differences\n\n", s.Name())
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ORDER\tMAX REL DEVIATION\tAT q\t")

	const grid = 99
	for order := 1; order <= 3; order++ {
		var worst, worstQ float64
		for i := 1; i <= grid; i++ {
			q := float64(i) / (grid + 1)
			var analytic float64
			switch order {
			case 1:
				analytic = pairwise.F1(s, q)
			case 2:
				analytic = pairwise.F2(s, q)
			default:
				analytic = pairwise.F3(s, q)
			}
			numeric := pairwise.Derivative(s.F0, order, q)
			dev := math.Abs(analytic-numeric) / math.Max(math.Abs(analytic), 1)
			if dev > worst {
				worst, worstQ = dev, q
			}
		}
		verdict := viz.Good.Render("ok")
		if worst > 1e-3 {
			verdict = viz.Warn.Render("loose")
		}
		fmt.Fprintf(w, "f%d\t%.3e\t%.2f\t%s\n", order, worst, worstQ, verdict)
	}
	return w.Flush()
}

func evalPair(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ev, med, err := config.BuildEvaluator(cfg)
	if err != nil {
		return err
	}

	a := multipole.Multipole{Charge: cfg.Pair.ChargeA, Dipole: vecFromSlice(cfg.Pair.DipoleA[:])}
	b := multipole.Multipole{
		Pos:    r3.Vec{X: cfg.Pair.Separation},
		Charge: cfg.Pair.ChargeB,
		Dipole: vecFromSlice(cfg.Pair.DipoleB[:]),
	}
	res := ev.Interact(a, b)
	self := ev.SelfEnergy([]multipole.Multipole{a, b})

	bl, err := med.BjerrumLength()
	if err != nil {
		return err
	}

	fmt.Println(viz.Title.Render(ev.Scheme().Name()) + viz.Label.Render(fmt.Sprintf("  %v", med)))
	fmt.Println(viz.Separator(48))
	fmt.Printf("%s %s\n", viz.Label.Render("bjerrum length "), viz.Value.Render(fmt.Sprintf("%.4f Å", bl)))
	fmt.Printf("%s %s\n", viz.Label.Render("pair energy    "), viz.Value.Render(fmt.Sprintf("%.6g kT", res.Energy)))
	fmt.Printf("%s %s\n", viz.Label.Render("self energy    "), viz.Value.Render(fmt.Sprintf("%.6g kT", self)))
	fmt.Printf("%s %s\n", viz.Label.Render("force on B     "),
		viz.Value.Render(fmt.Sprintf("(%.6g, %.6g, %.6g) kT/Å", res.Force.X, res.Force.Y, res.Force.Z)))
	fmt.Printf("%s %s\n", viz.Label.Render("field at B     "),
		viz.Value.Render(fmt.Sprintf("(%.6g, %.6g, %.6g)", res.Field.X, res.Field.Y, res.Field.Z)))

	fmt.Println(viz.Label.Render("field gradient at B"))
	for i := 0; i < 3; i++ {
		fmt.Printf("    %12.5g %12.5g %12.5g\n",
			res.FieldGradient.At(i, 0), res.FieldGradient.At(i, 1), res.FieldGradient.At(i, 2))
	}
	return nil
}

func sweepPair(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ev, _, err := config.BuildEvaluator(cfg)
	if err != nil {
		return err
	}

	hi := rMax
	if hi <= 0 {
		hi = ev.Scheme().Cutoff()
	}
	if rSteps < 2 {
		rSteps = 2
	}

	a := multipole.Multipole{Charge: cfg.Pair.ChargeA, Dipole: vecFromSlice(cfg.Pair.DipoleA[:])}
	b := multipole.Multipole{Charge: cfg.Pair.ChargeB, Dipole: vecFromSlice(cfg.Pair.DipoleB[:])}

	type row struct{ r, energy, force float64 }
	rows := make([]row, 0, rSteps)
	energies := make([]float64, 0, rSteps)
	forces := make([]float64, 0, rSteps)
	for i := 0; i < rSteps; i++ {
		r := rMin + (hi-rMin)*float64(i)/float64(rSteps-1)
		b.Pos = r3.Vec{X: r}
		res := ev.Interact(a, b)
		rows = append(rows, row{r, res.Energy, res.Force.X})
		energies = append(energies, res.Energy)
		forces = append(forces, res.Force.X)
	}

	if csvPath != "" {
		f, err := os.Create(csvPath)
		if err != nil {
			return err
		}
		defer f.Close()
		cw := csv.NewWriter(f)
		if err := cw.Write([]string{"r", "energy_kT", "force_x"}); err != nil {
			return err
		}
		for _, r := range rows {
			rec := []string{
				strconv.FormatFloat(r.r, 'g', -1, 64),
				strconv.FormatFloat(r.energy, 'g', -1, 64),
				strconv.FormatFloat(r.force, 'g', -1, 64),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		cw.Flush()
		if err := cw.Error(); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", csvPath)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "R\tENERGY (kT)\tFORCE X (kT/Å)")
	for _, r := range rows {
		fmt.Fprintf(w, "%.4g\t%.6g\t%.6g\n", r.r, r.energy, r.force)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	graph := asciigraph.Plot(energies,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("pair energy vs separation"),
	)
	fmt.Println(graph)
	fmt.Println()
	fmt.Println(viz.Label.Render("force x  ") + viz.Sparkline(forces, 60))
	return nil
}

func describeMedium(cmd *cobra.Command, args []string) error {
	med, err := config.BuildMedium(mediumConfigFromFlags())
	if err != nil {
		return err
	}

	epsr, err := med.Permittivity()
	if err != nil {
		return err
	}
	bl, err := med.BjerrumLength()
	if err != nil {
		return err
	}
	debye, err := med.DebyeLength()
	if err != nil {
		return err
	}

	fmt.Println(viz.Title.Render(med.String()))
	fmt.Println(viz.Separator(48))
	fmt.Printf("%s %s\n", viz.Label.Render("permittivity   "), viz.Value.Render(fmt.Sprintf("%.6g", epsr)))
	fmt.Printf("%s %s\n", viz.Label.Render("bjerrum length "), viz.Value.Render(fmt.Sprintf("%.4f Å", bl)))
	if math.IsInf(debye, 1) {
		fmt.Printf("%s %s\n", viz.Label.Render("debye length   "), viz.Value.Render("∞ (salt-free)"))
	} else {
		fmt.Printf("%s %s\n", viz.Label.Render("debye length   "), viz.Value.Render(fmt.Sprintf("%.4f Å", debye)))
	}
	return nil
}
