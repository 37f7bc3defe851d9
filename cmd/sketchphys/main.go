package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/sketchphys/internal/analysis"
	"github.com/san-kum/sketchphys/internal/config"
	"github.com/san-kum/sketchphys/internal/gui"
	"github.com/san-kum/sketchphys/internal/optim"
	"github.com/san-kum/sketchphys/internal/physics"
	"github.com/san-kum/sketchphys/internal/render"
	"github.com/san-kum/sketchphys/internal/scene"
	"github.com/san-kum/sketchphys/internal/storage"
	"github.com/san-kum/sketchphys/internal/vec"
	"github.com/san-kum/sketchphys/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	frames     int
	gravity    float64
	charge     float64
	seed       int64
	// run
	noSave bool
	// plot, analyze, phase
	particle int
	xAxis    string
	yAxis    string
	// sweep
	sweepParam  string
	sweepValues []float64
	// tune
	tuneMetric string
	tuneTarget float64
	gravities  []float64
	charges    []float64
	// export-svg
	output string
	every  int
)

var titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))

func main() {
	rootCmd := &cobra.Command{
		Use:          "sketchphys",
		Short:        "particle physics sketches: gravity, lorentz force, semi-implicit euler",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".sketchphys", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a scene and store its trajectory",
		RunE:  runScene,
	}
	addSceneFlags(runCmd)
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "print metrics without storing the run")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "play a scene in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return viz.Run(cfg)
		},
	}
	addSceneFlags(liveCmd)

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "play a scene in a raylib window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return gui.Run(cfg)
		},
	}
	addSceneFlags(guiCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a particle's height and speed",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&particle, "particle", 0, "particle index")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "frequency analysis against the cyclotron frequency",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}
	analyzeCmd.Flags().IntVar(&particle, "particle", 0, "particle index")

	phaseCmd := &cobra.Command{
		Use:   "phase [run_id]",
		Short: "phase space plot",
		Args:  cobra.ExactArgs(1),
		RunE:  phasePlot,
	}
	phaseCmd.Flags().IntVar(&particle, "particle", 0, "particle index")
	phaseCmd.Flags().StringVar(&xAxis, "x-axis", "x", "x axis ("+strings.Join(analysis.Axes, ", ")+")")
	phaseCmd.Flags().StringVar(&yAxis, "y-axis", "vx", "y axis")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "run a scene once per parameter value, in parallel",
		RunE:  sweepScene,
	}
	addSceneFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&sweepParam, "param", "gravity", "parameter to sweep (gravity, charge)")
	sweepCmd.Flags().Float64SliceVar(&sweepValues, "values", []float64{0.1, 0.2, 0.4}, "parameter values")

	tuneCmd := &cobra.Command{
		Use:   "tune",
		Short: "grid search gravity and charge to minimise a metric",
		RunE:  tuneScene,
	}
	addSceneFlags(tuneCmd)
	tuneCmd.Flags().StringVar(&tuneMetric, "metric", "energy_drift", "metric to minimise")
	tuneCmd.Flags().Float64Var(&tuneTarget, "target", 0, "minimise |metric - target| instead")
	tuneCmd.Flags().Float64SliceVar(&gravities, "gravities", nil, "gravity values to try")
	tuneCmd.Flags().Float64SliceVar(&charges, "charges", nil, "charge values to try")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg",
		Short: "draw a scene's particles every n frames into an SVG",
		RunE:  exportSVG,
	}
	addSceneFlags(exportSVGCmd)
	exportSVGCmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	exportSVGCmd.Flags().IntVar(&every, "every", 5, "draw every n-th frame")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset scenes",
		RunE:  listPresets,
	}

	rootCmd.AddCommand(runCmd, liveCmd, guiCmd, listCmd, plotCmd, analyzeCmd, phaseCmd,
		sweepCmd, tuneCmd, exportJSONCmd, exportSVGCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSceneFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset scene")
	cmd.Flags().IntVar(&frames, "frames", config.DefaultFrames, "frames to run")
	cmd.Flags().Float64Var(&gravity, "gravity", 0, "gravity magnitude")
	cmd.Flags().Float64Var(&charge, "charge", 0, "particle charge")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed recorded with the run")
}

// loadConfig picks the preset or the default scene. A --config file replaces
// it outright, since Load starts from DefaultConfig. Flags the user set
// explicitly are applied last.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("frames") {
		cfg.Frames = frames
	}
	if flags.Changed("gravity") {
		if err := cfg.Physics.SetParam("gravity", gravity); err != nil {
			return nil, err
		}
	}
	if flags.Changed("charge") {
		if err := cfg.Physics.SetParam("charge", charge); err != nil {
			return nil, err
		}
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runScene(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	s, err := scene.FromConfig(cfg)
	if err != nil {
		return err
	}
	for _, m := range scene.DefaultMetrics(cfg) {
		s.AddMetric(m)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := s.Run(ctx, scene.Config{Frames: cfg.Frames, ValidateState: cfg.ValidateState})
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(cfg.Name))
	fmt.Printf("frames: %d  particles: %d\n", result.FramesRun, len(result.Trajectories))
	for _, e := range result.Errors {
		fmt.Printf("stopped: %v\n", e)
	}
	fmt.Println()
	if err := printMetrics(result.Metrics); err != nil {
		return err
	}

	if noSave {
		return nil
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(cfg, result)
	if err != nil {
		return err
	}
	fmt.Printf("\nsaved: %s\n", runID)
	return nil
}

func printMetrics(metrics map[string]float64) error {
	names := make([]string, 0, len(metrics))
	for name := range metrics {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tVALUE")
	for _, name := range names {
		fmt.Fprintf(w, "%s\t%.6g\n", name, metrics[name])
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENE\tTIME\tFRAMES\tPARTICLES\tGRAVITY\tCHARGE")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%.3f\t%.3f\n",
			run.ID,
			run.Scene,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Frames,
			run.Particles,
			run.Gravity,
			run.Charge,
		)
	}

	return w.Flush()
}

func loadRun(runID string) (*storage.RunMetadata, *scene.Result, error) {
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	result, err := st.LoadResult(runID)
	if err != nil {
		return nil, nil, err
	}
	if particle < 0 || particle >= len(result.Trajectories) {
		return nil, nil, fmt.Errorf("particle %d out of range (run has %d)", particle, len(result.Trajectories))
	}
	if len(result.Trajectories[particle]) == 0 {
		return nil, nil, fmt.Errorf("no data to plot")
	}
	return meta, result, nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	meta, result, err := loadRun(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("scene: %s\n", meta.Scene)
	fmt.Printf("samples: %d\n\n", len(result.Trajectories[particle]))

	ys := result.Column(particle, 1)
	fmt.Println(asciigraph.Plot(ys, asciigraph.Height(10), asciigraph.Width(80), asciigraph.Caption("y (screen, down is positive)")))
	fmt.Println()

	speeds := make([]float64, len(result.Trajectories[particle]))
	for i, st := range result.Trajectories[particle] {
		speeds[i] = st.Velocity.Len()
	}
	fmt.Println(asciigraph.Plot(speeds, asciigraph.Height(10), asciigraph.Width(80), asciigraph.Caption("speed")))
	fmt.Println()

	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	meta, result, err := loadRun(args[0])
	if err != nil {
		return err
	}

	xs := result.Column(particle, 0)
	if len(xs) < 4 {
		return fmt.Errorf("not enough samples: %d", len(xs))
	}

	fmt.Printf("frequency analysis: %s\n", meta.ID)
	fmt.Printf("scene: %s\n\n", meta.Scene)

	ps := analysis.PowerSpectrum(xs)
	if n := len(ps) / 4; n > 1 {
		fmt.Println(asciigraph.Plot(ps[1:n], asciigraph.Height(15), asciigraph.Width(80), asciigraph.Caption("power spectrum (x)")))
		fmt.Println()
	}

	freq := analysis.DominantFrequency(xs)
	fmt.Printf("dominant frequency: %.5f cycles/frame\n", freq)
	if freq > 0 {
		fmt.Printf("period: %.1f frames\n", 1.0/freq)
	}

	if len(meta.Field) > 0 {
		b, err := vec.FromSlice(meta.Field)
		if err != nil {
			return err
		}
		expected := analysis.CyclotronFrequency(meta.Charge, b.Len())
		fmt.Printf("cyclotron frequency: %.5f cycles/frame\n", expected)
		if expected > 0 && freq > 0 {
			fmt.Printf("ratio: %.3f\n", freq/expected)
		}
	}

	return nil
}

func phasePlot(cmd *cobra.Command, args []string) error {
	meta, result, err := loadRun(args[0])
	if err != nil {
		return err
	}

	xi, yi := analysis.AxisIndex(xAxis), analysis.AxisIndex(yAxis)
	if xi < 0 || yi < 0 {
		return fmt.Errorf("unknown axis (available: %s)", strings.Join(analysis.Axes, ", "))
	}

	portrait := analysis.NewPortrait(result, particle, xi, yi)
	if portrait == nil {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("phase space plot: %s\n", meta.ID)
	fmt.Printf("scene: %s\n", meta.Scene)
	fmt.Printf("x-axis: %s, y-axis: %s\n\n", xAxis, yAxis)
	fmt.Println(portrait.ToASCII(80, 24))
	return nil
}

func sweepScene(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if len(sweepValues) == 0 {
		return fmt.Errorf("no sweep values")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := scene.NewSweep(cfg, sweepParam, sweepValues, scene.DefaultMetrics).Run(ctx)
	if err != nil {
		return err
	}

	names := make([]string, 0)
	for name := range results[0].Metrics {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println(titleStyle.Render(fmt.Sprintf("%s: sweep %s", cfg.Name, sweepParam)))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tFRAMES\t%s\n", strings.ToUpper(sweepParam), strings.ToUpper(strings.Join(names, "\t")))
	for i, r := range results {
		fmt.Fprintf(w, "%.4g\t%d", sweepValues[i], r.FramesRun)
		for _, name := range names {
			fmt.Fprintf(w, "\t%.4g", r.Metrics[name])
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}

func tuneScene(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	var names []string
	var ranges [][]float64
	if len(gravities) > 0 {
		names, ranges = append(names, "gravity"), append(ranges, gravities)
	}
	if len(charges) > 0 {
		names, ranges = append(names, "charge"), append(ranges, charges)
	}
	if len(names) == 0 {
		return fmt.Errorf("nothing to tune: pass --gravities and/or --charges")
	}

	objective := optim.MetricObjective(tuneMetric)
	if cmd.Flags().Changed("target") {
		objective = optim.TargetObjective(tuneMetric, tuneTarget)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	best, score, err := optim.NewGridSearch(names, ranges).Search(ctx, cfg, objective)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("%s: tune %s", cfg.Name, tuneMetric)))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, name := range names {
		fmt.Fprintf(w, "%s\t%.6g\n", name, best[name])
	}
	fmt.Fprintf(w, "score\t%.6g\n", score)
	return w.Flush()
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	result, err := st.LoadResult(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, meta, result)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if every <= 0 {
		return fmt.Errorf("--every must be positive")
	}

	s, err := scene.FromConfig(cfg)
	if err != nil {
		return err
	}

	svg := render.NewSVG(int(cfg.World.Width), int(cfg.World.Height))
	s.DrawOn(svg)
	err = s.RunWithCallback(cmd.Context(), scene.Config{Frames: cfg.Frames, ValidateState: cfg.ValidateState},
		func(frame int, _ []*physics.Particle) bool {
			if frame%every == 0 {
				s.DrawOn(svg)
			}
			return true
		})
	if err != nil {
		return err
	}

	if output == "" {
		_, err = fmt.Fprintln(os.Stdout, svg.String())
		return err
	}
	if err := os.WriteFile(output, []byte(svg.String()), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %d circles to %s\n", svg.Len(), output)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tFRAMES\tPARTICLES\tGRAVITY\tCHARGE\tFIELD")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		field := "-"
		if len(p.Field) > 0 {
			field = fmt.Sprint(p.Field)
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%.3f\t%.3f\t%s\n", name, p.Frames, len(p.Particles), p.Physics.Gravity, p.Physics.Charge, field)
	}
	return w.Flush()
}
