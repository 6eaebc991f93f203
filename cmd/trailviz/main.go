package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/trailviz/internal/analysis"
	"github.com/san-kum/trailviz/internal/app"
	"github.com/san-kum/trailviz/internal/automation"
	"github.com/san-kum/trailviz/internal/config"
	"github.com/san-kum/trailviz/internal/export"
	"github.com/san-kum/trailviz/internal/gui"
	"github.com/san-kum/trailviz/internal/integrators"
	"github.com/san-kum/trailviz/internal/physics"
	"github.com/san-kum/trailviz/internal/sim"
	"github.com/san-kum/trailviz/internal/storage"
	"github.com/san-kum/trailviz/internal/tui"
	"github.com/san-kum/trailviz/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	integrator string
	step       float64
	// window and trail overrides, zero means keep the config value
	width     int
	height    int
	maxPoints int
	pointSize float64
	title     string
	palette   string
	// headless runs
	frames    int
	frameRate int
	exportDir string
	svgPath   string
	asJSON    bool
	// terminal viewer
	termRate int
	// analyze
	duration   float64
	sweepParam string
	sweepFrom  float64
	sweepTo    float64
	sweepSteps int
)

var (
	heading = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	faint   = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "trailviz [model]",
		Short:        "3D strange attractor viewer",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         runView,
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".trailviz", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset parameters")
	rootCmd.PersistentFlags().StringVar(&integrator, "integrator", "rk4", "integrator")
	rootCmd.PersistentFlags().Float64Var(&step, "step", config.DefaultStep, "integration step")
	rootCmd.PersistentFlags().IntVar(&maxPoints, "max-points", 0, "trail length")
	rootCmd.PersistentFlags().Float64Var(&pointSize, "point-size", 0, "point size in pixels")
	rootCmd.PersistentFlags().StringVar(&palette, "palette", "", "color palette")
	addWindowFlags(rootCmd)

	viewCmd := &cobra.Command{
		Use:   "view [model]",
		Short: "open the attractor window",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runView,
	}
	addWindowFlags(viewCmd)

	termCmd := &cobra.Command{
		Use:   "term [model]",
		Short: "view the attractor in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTerm,
	}
	termCmd.Flags().IntVar(&termRate, "fps", 30, "frame rate")

	exportCmd := &cobra.Command{
		Use:   "export [model]",
		Short: "run headless and save the trail",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportTrail,
	}
	addHeadlessFlags(exportCmd)
	exportCmd.Flags().StringVar(&exportDir, "out", "", "output directory (default: data directory)")
	exportCmd.Flags().BoolVar(&asJSON, "json", false, "write a JSON document to stdout instead")

	svgCmd := &cobra.Command{
		Use:   "svg [model]",
		Short: "render an SVG snapshot",
		Args:  cobra.MaximumNArgs(1),
		RunE:  renderSVG,
	}
	addHeadlessFlags(svgCmd)
	addWindowFlags(svgCmd)
	svgCmd.Flags().StringVar(&svgPath, "out", "trail.svg", "output file, - for stdout")

	plotCmd := &cobra.Command{
		Use:   "plot [model]",
		Short: "plot x/y/z of a headless run",
		Args:  cobra.MaximumNArgs(1),
		RunE:  plotTrail,
	}
	addHeadlessFlags(plotCmd)

	analyzeCmd := &cobra.Command{
		Use:   "analyze [model]",
		Short: "lyapunov exponent, spectrum and bifurcation sweep",
		Args:  cobra.MaximumNArgs(1),
		RunE:  analyzeModel,
	}
	analyzeCmd.Flags().Float64Var(&duration, "time", 50, "simulated time")
	analyzeCmd.Flags().StringVar(&sweepParam, "sweep", "", "parameter to sweep for a bifurcation diagram")
	analyzeCmd.Flags().Float64Var(&sweepFrom, "from", 0, "sweep start")
	analyzeCmd.Flags().Float64Var(&sweepTo, "to", 1, "sweep end")
	analyzeCmd.Flags().IntVar(&sweepSteps, "steps", 120, "sweep samples")

	batchCmd := &cobra.Command{
		Use:   "batch [scenario]",
		Short: "run a yaml scenario of headless exports",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved trails",
		RunE:  listRuns,
	}

	modelsCmd := &cobra.Command{
		Use:   "models",
		Short: "list models, presets and integrators",
		RunE:  listModels,
	}

	rootCmd.AddCommand(viewCmd, termCmd, exportCmd, svgCmd, plotCmd, analyzeCmd, batchCmd, listCmd, modelsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addWindowFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&width, "width", 0, "window width")
	cmd.Flags().IntVar(&height, "height", 0, "window height")
	cmd.Flags().StringVar(&title, "title", "", "window title")
}

func addHeadlessFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&frames, "frames", automation.DefaultFrames, "frames to simulate")
	cmd.Flags().IntVar(&frameRate, "fps", automation.DefaultFPS, "simulated frame rate")
}

// setup builds the framework for the model named in args (or the config),
// layering config file, preset and flags in that order.
func setup(cmd *cobra.Command, args []string) (*app.Framework, *sim.Stepper, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if len(args) > 0 {
		cfg.Model = args[0]
	}
	if cmd.Flags().Changed("integrator") || cfg.Integrator == "" {
		cfg.Integrator = integrator
	}
	if cmd.Flags().Changed("step") {
		cfg.Sim.Step = step
	}
	if preset != "" {
		if err := cfg.ApplyPreset(preset); err != nil {
			return nil, nil, fmt.Errorf("%w (available: %v)", err, config.ListPresets(cfg.Model))
		}
	}

	cfg.Clamp()
	src, err := automation.Build(cfg)
	if err != nil {
		return nil, nil, err
	}

	fw := app.New(cfg, src)
	fw.Configure(app.Options{
		Width:     width,
		Height:    height,
		Title:     title,
		MaxPoints: maxPoints,
		PointSize: pointSize,
		Palette:   palette,
	})
	return fw, src, nil
}

func runView(cmd *cobra.Command, args []string) error {
	fw, _, err := setup(cmd, args)
	if err != nil {
		return err
	}
	gui.Run(fw)
	return nil
}

func runTerm(cmd *cobra.Command, args []string) error {
	fw, _, err := setup(cmd, args)
	if err != nil {
		return err
	}
	return tui.Run(fw, termRate)
}

func headless(cmd *cobra.Command, fw *app.Framework) (float64, error) {
	return automation.Headless(cmd.Context(), fw, frames, frameRate)
}

func exportTrail(cmd *cobra.Command, args []string) error {
	fw, src, err := setup(cmd, args)
	if err != nil {
		return err
	}
	frameDt, err := headless(cmd, fw)
	if err != nil {
		return err
	}

	cfg := fw.Config()
	meta := storage.RunMetadata{
		Model:      cfg.Model,
		Integrator: cfg.Integrator,
		Preset:     preset,
		Step:       cfg.Sim.Step,
		Frames:     frames,
		FrameDt:    frameDt,
		SimTime:    src.Time(),
		Params:     cfg.Params,
	}
	points := fw.Trail().Points()

	if asJSON {
		return storage.ExportJSON(cmd.OutOrStdout(), meta, points)
	}

	dir := exportDir
	if dir == "" {
		dir = dataDir
	}
	st := storage.New(dir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(meta, points)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "run id: %s\n", runID)
	fmt.Fprintf(cmd.OutOrStdout(), "points: %d\n", len(points))
	fmt.Fprintf(cmd.OutOrStdout(), "sim time: %.3f\n", src.Time())
	return nil
}

func renderSVG(cmd *cobra.Command, args []string) error {
	fw, _, err := setup(cmd, args)
	if err != nil {
		return err
	}
	if _, err := headless(cmd, fw); err != nil {
		return err
	}

	cfg := fw.Config()
	s := export.NewSVG(viz.Viewport{W: float64(cfg.Window.Width), H: float64(cfg.Window.Height)})
	fw.Render(s, s.Viewport())

	if svgPath == "-" {
		_, err := s.WriteTo(cmd.OutOrStdout())
		return err
	}
	f, err := os.Create(svgPath)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := s.WriteTo(f); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d elements)\n", svgPath, s.Elems)
	return nil
}

func plotTrail(cmd *cobra.Command, args []string) error {
	fw, src, err := setup(cmd, args)
	if err != nil {
		return err
	}
	if _, err := headless(cmd, fw); err != nil {
		return err
	}

	points := fw.Trail().Points()
	if len(points) == 0 {
		return fmt.Errorf("no data to plot")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "model: %s\n", fw.Config().Model)
	fmt.Fprintf(out, "samples: %d, t=%.2f\n\n", len(points), src.Time())

	series := [3][]float64{}
	for _, p := range points {
		series[0] = append(series[0], p.X)
		series[1] = append(series[1], p.Y)
		series[2] = append(series[2], p.Z)
	}
	for i, name := range []string{"x", "y (up)", "z"} {
		graph := asciigraph.Plot(series[i],
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(name),
		)
		fmt.Fprintln(out, graph)
		fmt.Fprintln(out)
	}
	return nil
}

func analyzeModel(cmd *cobra.Command, args []string) error {
	fw, src, err := setup(cmd, args)
	if err != nil {
		return err
	}
	cfg := fw.Config()
	model, err := physics.Lookup(cfg.Model)
	if err != nil {
		return err
	}
	integ, err := integrators.New(cfg.Integrator)
	if err != nil {
		return err
	}
	x0 := cfg.InitialState(model.Initial())
	h := src.H()
	out := cmd.OutOrStdout()

	lambda := analysis.LyapunovExponent(model.Build(cfg.Params), integ, x0, h, duration, 1e-8)
	verdict := "regular"
	if lambda > 0.01 {
		verdict = "chaotic"
	}
	fmt.Fprintln(out, heading.Render(cfg.Model))
	fmt.Fprintf(out, "  largest lyapunov exponent: %.4f (%s)\n", lambda, verdict)

	sys := model.Build(cfg.Params)
	var xs []float64
	x := x0
	for t := 0.0; t < duration; t += h {
		x = integ.Step(sys, x, h)
		xs = append(xs, x.X)
	}
	ps := analysis.PowerSpectrum(xs)
	if len(ps) > 0 {
		fmt.Fprintf(out, "  dominant frequency (x): %.4f\n\n", analysis.DominantFrequency(ps, h))
		fmt.Fprintln(out, asciigraph.Plot(ps[:min(len(ps), 400)],
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("power spectrum (x)"),
		))
	}

	if sweepParam == "" {
		return nil
	}
	data := analysis.BifurcationDiagram(model.Build(cfg.Params), integ, x0, analysis.Sweep{
		Param:     sweepParam,
		Min:       sweepFrom,
		Max:       sweepTo,
		Steps:     sweepSteps,
		Axis:      analysis.AxisX,
		H:         h,
		Transient: duration / 2,
		Record:    duration / 2,
	})
	canvas := viz.NewCanvas(80, 20)
	analysis.DrawBifurcation(data, canvas, viz.RGBA(viz.GetPalette(cfg.Render.Palette).Head))
	fmt.Fprintln(out)
	fmt.Fprintln(out, faint.Render(fmt.Sprintf("x maxima vs %s in [%g, %g]", sweepParam, sweepFrom, sweepTo)))
	fmt.Fprint(out, canvas.String())
	return nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}
	base := config.DefaultConfig()
	if configFile != "" {
		if base, err = config.Load(configFile); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if sc.Name != "" {
		fmt.Fprintln(out, heading.Render(sc.Name))
	}
	runs, err := automation.RunScenario(cmd.Context(), sc, base, st, out)
	for _, run := range runs {
		fmt.Fprintf(out, "  %s  %d points\n", run.ID, run.Points)
	}
	return err
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no runs found")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMODEL\tTIME\tPOINTS\tSIM T\tSTEP\tINTEG")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.2f\t%.4f\t%s\n",
			run.ID,
			run.Model,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Points,
			run.SimTime,
			run.Step,
			run.Integrator,
		)
	}
	return w.Flush()
}

func listModels(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, heading.Render("models"))
	for _, name := range physics.Names() {
		presets := config.ListPresets(name)
		line := "  " + name
		if len(presets) > 0 {
			line += "  " + faint.Render(strings.Join(presets, ", "))
		}
		fmt.Fprintln(out, line)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, heading.Render("integrators"))
	fmt.Fprintln(out, "  "+strings.Join(integrators.Names(), ", "))
	fmt.Fprintln(out)
	fmt.Fprintln(out, heading.Render("palettes"))
	fmt.Fprintln(out, "  "+strings.Join(viz.PaletteNames(), ", "))
	return nil
}
