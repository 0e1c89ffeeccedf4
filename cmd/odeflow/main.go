package main

import (
	"fmt"
	"math/cmplx"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/odeflow/internal/concurrent"
	"github.com/san-kum/odeflow/internal/config"
	"github.com/san-kum/odeflow/internal/facade"
	"github.com/san-kum/odeflow/internal/integrators"
	"github.com/san-kum/odeflow/internal/plot"
	"github.com/san-kum/odeflow/internal/registry"
	"github.com/san-kum/odeflow/internal/stepctrl"
	"github.com/san-kum/odeflow/internal/storage"
	"github.com/san-kum/odeflow/internal/tui"
	"github.com/san-kum/odeflow/internal/vecalg"
)

var (
	dataDir    string
	integrator string
	atol       float64
	rtol       float64
	t0         float64
	t1         float64
	samples    int
	a, m, z, r float64
	configFile string
	preset     string
	component  int
	format     string
	live       bool
)

// main is the entry point for the odeflow CLI; it registers commands
// and flags and executes the root command. It exits the process with
// status 1 if command execution returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "odeflow",
		Short: "special-function query streams driven by adaptive ODE integration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.RunInteractive()
		},
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".odeflow", "run data directory")

	evalCmd := &cobra.Command{
		Use:   "eval [function] [t]",
		Short: "evaluate a catalogue function at one point",
		Args:  cobra.ExactArgs(2),
		RunE:  runEval,
	}
	addQueryFlags(evalCmd)

	sampleCmd := &cobra.Command{
		Use:   "sample [function]",
		Short: "sample a catalogue function over [t0, t1] and save the run",
		Args:  cobra.ExactArgs(1),
		RunE:  runSample,
	}
	addQueryFlags(sampleCmd)
	sampleCmd.Flags().BoolVar(&live, "live", false, "stream samples to a redrawing terminal graph as they are computed")

	integrateCmd := &cobra.Command{
		Use:   "integrate [function] [a] [b]",
		Short: "definite-integrate a catalogue function from a to b",
		Args:  cobra.ExactArgs(3),
		RunE:  runIntegrate,
	}
	addQueryFlags(integrateCmd)

	residueCmd := &cobra.Command{
		Use:   "residue [function] [z0-real] [z0-imag] [radius]",
		Short: "residue-loop integral of a catalogue function around z0",
		Args:  cobra.ExactArgs(4),
		RunE:  runResidue,
	}

	compareCmd := &cobra.Command{
		Use:   "compare [function] [t]",
		Short: "run a re-solvable recipe through euler, rk4, and dopri5",
		Args:  cobra.ExactArgs(2),
		RunE:  runCompare,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run-id]",
		Short: "power spectrum of a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  runAnalyze,
	}
	analyzeCmd.Flags().IntVar(&component, "component", 0, "sample component to analyze")

	plotCmd := &cobra.Command{
		Use:   "plot [run-id]",
		Short: "plot a saved run's trace",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlot,
	}
	plotCmd.Flags().IntVar(&component, "component", 0, "sample component to plot")
	plotCmd.Flags().StringVar(&format, "format", "graph", "output format: graph or table")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  runList,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [function]",
		Short: "list available presets for a function",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets(args[0])
			if len(names) == 0 {
				fmt.Printf("no presets for function: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, n := range names {
				fmt.Printf("  %s\n", n)
			}
			return nil
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive stream explorer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.RunInteractive()
		},
	}

	rootCmd.AddCommand(evalCmd, sampleCmd, integrateCmd, residueCmd, compareCmd, analyzeCmd, plotCmd, listCmd, presetsCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addQueryFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&integrator, "integrator", "dopri5", "integrator")
	cmd.Flags().Float64Var(&atol, "atol", config.DefaultAtol, "absolute tolerance")
	cmd.Flags().Float64Var(&rtol, "rtol", config.DefaultRtol, "relative tolerance")
	cmd.Flags().Float64Var(&t0, "t0", config.DefaultT0, "range start")
	cmd.Flags().Float64Var(&t1, "t1", config.DefaultT1, "range end")
	cmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "sample count")
	cmd.Flags().Float64Var(&a, "a", 0, "order parameter (bessel, polygamma)")
	cmd.Flags().Float64Var(&m, "m", 0, "elliptic parameter")
	cmd.Flags().Float64Var(&z, "z", 0, "fixed evaluation point (polygamma)")
	cmd.Flags().Float64Var(&r, "r", 1, "loop radius (residue)")
	cmd.Flags().StringVar(&configFile, "config", "", "query config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use a named preset")
}

// loadQuery layers preset < config file < CLI flags, each level
// overriding the last.
func loadQuery(cmd *cobra.Command, function string) *config.Config {
	cfg := config.DefaultConfig()
	cfg.Function = function

	if preset != "" {
		if p := config.GetPreset(function, preset); p != nil {
			*cfg = *p
		}
	}
	if configFile != "" {
		if loaded, err := config.Load(configFile); err == nil {
			cfg = loaded
			cfg.Function = function
		}
	}

	if cmd.Flags().Changed("integrator") {
		cfg.Integrator = integrator
	}
	if cmd.Flags().Changed("atol") {
		cfg.Atol = atol
	}
	if cmd.Flags().Changed("rtol") {
		cfg.Rtol = rtol
	}
	if cmd.Flags().Changed("t0") {
		cfg.T0 = t0
	}
	if cmd.Flags().Changed("t1") {
		cfg.T1 = t1
	}
	if cmd.Flags().Changed("samples") {
		cfg.Samples = samples
	}
	if cmd.Flags().Changed("a") {
		cfg.Params.A = a
	}
	if cmd.Flags().Changed("m") {
		cfg.Params.M = m
	}
	if cmd.Flags().Changed("z") {
		cfg.Params.Z = z
	}
	if cmd.Flags().Changed("r") {
		cfg.Params.R = r
	}
	return cfg
}

func catalogueParams(cfg *config.Config) registry.Params {
	return registry.Params{A: cfg.Params.A, M: cfg.Params.M, Z: cfg.Params.Z, R: cfg.Params.R}
}

func runEval(cmd *cobra.Command, args []string) error {
	name := args[0]
	t, err := parseFloatArg(args[1])
	if err != nil {
		return err
	}

	cfg := loadQuery(cmd, name)
	fn, err := registry.New().Function(name, catalogueParams(cfg))
	if err != nil {
		return err
	}

	fmt.Printf("%s(%g) = %.15g\n", name, t, fn(t))
	return nil
}

func runSample(cmd *cobra.Command, args []string) error {
	name := args[0]
	cfg := loadQuery(cmd, name)

	fn, err := registry.New().Function(name, catalogueParams(cfg))
	if err != nil {
		return err
	}

	ts := linspace(cfg.T0, cfg.T1, cfg.Samples)
	ys := make([]vecalg.Vector, len(ts))

	if live {
		renderer := tui.NewLiveRenderer(name, 30)
		renderer.Start()
		defer renderer.Stop()
		for i, t := range ts {
			y := fn(t)
			ys[i] = vecalg.Real(y)
			renderer.OnSample(t, y)
			time.Sleep(10 * time.Millisecond)
		}
	} else {
		for i, t := range ts {
			ys[i] = vecalg.Real(fn(t))
		}
		fmt.Println(plot.Trace(fmt.Sprintf("%s(t)", name), ts, ys, 0))
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(name, cfg.Integrator, cfg.Atol, cfg.Rtol, cfg.T0, cfg.T1, ts, ys)
	if err != nil {
		return err
	}
	fmt.Printf("saved run: %s\n", runID)
	return nil
}

func runIntegrate(cmd *cobra.Command, args []string) error {
	name := args[0]
	lo, err := parseFloatArg(args[1])
	if err != nil {
		return err
	}
	hi, err := parseFloatArg(args[2])
	if err != nil {
		return err
	}

	cfg := loadQuery(cmd, name)
	fn, err := registry.New().Function(name, catalogueParams(cfg))
	if err != nil {
		return err
	}

	value := facade.IntegratePrime(fn, lo, hi)
	fmt.Printf("integral of %s from %g to %g = %.15g\n", name, lo, hi, value)
	return nil
}

func runResidue(cmd *cobra.Command, args []string) error {
	name := args[0]
	zr, err := parseFloatArg(args[1])
	if err != nil {
		return err
	}
	zi, err := parseFloatArg(args[2])
	if err != nil {
		return err
	}
	radius, err := parseFloatArg(args[3])
	if err != nil {
		return err
	}

	fn, err := registry.New().Function(name, registry.Params{})
	if err != nil {
		return err
	}
	// Wrap the real-valued catalogue entry as a complex integrand by
	// treating it as a magnitude modulated by the loop's own phase, so
	// every catalogue entry has a residue loop to compute even though
	// none of them are natively complex-valued.
	g := func(u complex128) complex128 { return complex(fn(real(u)), 0) * cmplx.Exp(complex(0, imag(u))) }

	value := facade.Residue(g, complex(zr, zi), radius)
	fmt.Printf("residue loop of %s around (%g%+gi), r=%g = %.15g%+.15gi\n", name, zr, zi, radius, real(value), imag(value))
	return nil
}

func runCompare(cmd *cobra.Command, args []string) error {
	name := args[0]
	t, err := parseFloatArg(args[1])
	if err != nil {
		return err
	}

	reg := registry.New()
	recipe, err := reg.GetRecipe(name)
	if err != nil {
		return fmt.Errorf("%w (available: %v)", err, reg.ListRecipes())
	}

	ctrl := stepctrl.Default()
	names := []string{"euler", "rk4", "dopri5"}
	build := func(n string) (integrators.Integrator, error) { return reg.Integrator(n, ctrl) }

	runs := concurrent.CompareSimple(recipe.RHS, recipe.T0, recipe.Y0, []float64{t}, names, build)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INTEGRATOR\tVALUE\tSTEPS\tREJECTED")
	for _, run := range runs {
		if run.Err != nil {
			fmt.Fprintf(w, "%s\terror: %v\t\t\n", run.Name, run.Err)
			continue
		}
		value := 0.0
		if len(run.Values) > 0 {
			value = real(run.Values[0][0])
		}
		fmt.Fprintf(w, "%s\t%.15g\t%d\t%d\n", run.Name, value, run.Stats.StepCount, run.Stats.RejectedCount)
	}
	return w.Flush()
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	runID := args[0]
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	_, ys, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}
	if len(ys) == 0 {
		return fmt.Errorf("no data in run %s", runID)
	}

	data := make([]float64, len(ys))
	for i, y := range ys {
		if component < y.Dim() {
			data[i] = real(y[component])
		}
	}

	graph, maxIdx := plot.Spectrum(fmt.Sprintf("power spectrum: %s", meta.Function), data)
	fmt.Println(graph)

	span := meta.T1 - meta.T0
	if span != 0 {
		freq := maxIdx / span
		fmt.Printf("dominant frequency: %.4f\n", freq)
	}
	return nil
}

func runPlot(cmd *cobra.Command, args []string) error {
	runID := args[0]
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	ts, ys, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}
	if len(ys) == 0 {
		return fmt.Errorf("no data in run %s", runID)
	}

	fmt.Printf("run: %s  function: %s  integrator: %s  samples: %d\n\n", meta.ID, meta.Function, meta.Integrator, meta.Samples)
	if format == "table" {
		fmt.Print(plot.Report(ts, ys))
		return nil
	}
	fmt.Println(plot.Trace(fmt.Sprintf("%s(t)", meta.Function), ts, ys, component))
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFUNCTION\tINTEGRATOR\tTIME\tRANGE\tSAMPLES")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t[%.3g,%.3g]\t%d\n",
			run.ID, run.Function, run.Integrator,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.T0, run.T1, run.Samples)
	}
	return w.Flush()
}

func linspace(a, b float64, n int) []float64 {
	if n <= 1 {
		return []float64{a}
	}
	ts := make([]float64, n)
	step := (b - a) / float64(n-1)
	for i := range ts {
		ts[i] = a + step*float64(i)
	}
	return ts
}

func parseFloatArg(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return f, nil
}
