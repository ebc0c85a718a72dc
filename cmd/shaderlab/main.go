package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/shaderlab/internal/analysis"
	"github.com/san-kum/shaderlab/internal/automation"
	"github.com/san-kum/shaderlab/internal/config"
	"github.com/san-kum/shaderlab/internal/effect"
	"github.com/san-kum/shaderlab/internal/export"
	"github.com/san-kum/shaderlab/internal/gui"
	"github.com/san-kum/shaderlab/internal/logging"
	"github.com/san-kum/shaderlab/internal/storage"
	"github.com/san-kum/shaderlab/internal/surface"
	"github.com/san-kum/shaderlab/internal/viz"
	"github.com/san-kum/shaderlab/internal/web"
	"github.com/spf13/cobra"
)

var (
	dataDir string
	// Config file
	configFile string
	// Preset name
	preset  string
	verbose bool

	renderTime float64
	outPath    string
	// export
	exportDuration float64
	fps            int
	scale          float64
	// bench
	benchFrames int
	// probe
	probeX, probeY int
	channel        string
	start          float64
	probeDuration  float64
	rate           float64
	// run
	randomSteps     int
	seed            int64
	sessionDuration float64
	// run and probe reports
	save bool
	// config init
	force bool
)

// main registers the commands and executes the root command, which opens
// the terminal gallery when no subcommand is given.
func main() {
	rootCmd := &cobra.Command{
		Use:   "shaderlab",
		Short: "procedural shader gallery",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
			}
		},
		RunE:          runTUI,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".shaderlab", "report directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "terminal gallery",
		RunE:  runTUI,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list effects",
		RunE:  listEffects,
	}

	renderCmd := &cobra.Command{
		Use:   "render [effect]",
		Short: "render one frame to png",
		Args:  cobra.MaximumNArgs(1),
		RunE:  renderFrame,
	}
	renderCmd.Flags().Float64Var(&renderTime, "time", 0, "elapsed seconds")
	renderCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default <effect>.png)")

	exportCmd := &cobra.Command{
		Use:   "export [effect]",
		Short: "export an animated gif",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportGIF,
	}
	exportCmd.Flags().Float64Var(&exportDuration, "duration", config.DefaultExportSeconds, "seconds of animation")
	exportCmd.Flags().IntVar(&fps, "fps", config.DefaultExportFPS, "frame rate")
	exportCmd.Flags().Float64Var(&scale, "scale", 1, "resize factor")
	exportCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default <effect>.gif)")

	benchCmd := &cobra.Command{
		Use:   "bench [effect...]",
		Short: "benchmark effects",
		RunE:  benchEffects,
	}
	benchCmd.Flags().IntVar(&benchFrames, "frames", 30, "frames per effect")

	probeCmd := &cobra.Command{
		Use:   "probe [effect]",
		Short: "plot a pixel over time",
		Args:  cobra.MaximumNArgs(1),
		RunE:  probePixel,
	}
	probeCmd.Flags().IntVar(&probeX, "x", -1, "pixel x (default center)")
	probeCmd.Flags().IntVar(&probeY, "y", -1, "pixel y (default center)")
	probeCmd.Flags().StringVar(&channel, "channel", "l", "r, g, b or l")
	probeCmd.Flags().Float64Var(&start, "start", 0, "first sample time")
	probeCmd.Flags().Float64Var(&probeDuration, "duration", 4, "seconds to sample")
	probeCmd.Flags().Float64Var(&rate, "rate", 30, "samples per second")
	probeCmd.Flags().BoolVar(&save, "save", false, "store the samples as a report")

	runCmd := &cobra.Command{
		Use:   "run [scenario.yaml]",
		Short: "replay a scripted session",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScenario,
	}
	runCmd.Flags().IntVar(&randomSteps, "random", 0, "generate a random session with n steps")
	runCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 uses the clock)")
	runCmd.Flags().Float64Var(&sessionDuration, "duration", 10, "random session length in seconds")
	runCmd.Flags().BoolVar(&save, "save", false, "store the result as a report")

	reportsCmd := &cobra.Command{
		Use:   "reports",
		Short: "list stored reports",
		RunE:  listReports,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [report_id]",
		Short: "plot a stored probe",
		Args:  cobra.ExactArgs(1),
		RunE:  plotReport,
	}

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "desktop gallery (raylib)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return gui.Run(cfg, effect.Default())
		},
	}

	webCmd := &cobra.Command{
		Use:   "web",
		Short: "ebiten gallery (also builds for wasm)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return web.Run(cfg, effect.Default())
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets",
		RunE:  listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage config files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a config file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	configInitCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(tuiCmd, listCmd, renderCmd, exportCmd, benchCmd, probeCmd, runCmd, reportsCmd, plotCmd, guiCmd, webCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadConfig starts from the preset; a config file overrides it entirely.
func loadConfig() (*config.Config, error) {
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
	return cfg, cfg.Validate()
}

// resolveEffect returns the effect named by args[0], or the first one.
func resolveEffect(reg *effect.Registry, args []string) (effect.Effect, error) {
	if len(args) == 0 {
		e, ok := reg.First()
		if !ok {
			return effect.Effect{}, effect.ErrUnknownEffect
		}
		return e, nil
	}
	return reg.ByName(args[0])
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return viz.Run(cfg, effect.Default())
}

func listEffects(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSLUG")
	for _, e := range effect.Default().All() {
		fmt.Fprintf(w, "%d\t%s\t%s\n", e.ID, e.Name, e.Slug)
	}
	return w.Flush()
}

func renderFrame(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	e, err := resolveEffect(effect.Default(), args)
	if err != nil {
		return err
	}
	path := outPath
	if path == "" {
		path = filepath.Join(cfg.Export.Dir, e.Slug+".png")
	}
	if err := export.PNG(e, cfg.Width, cfg.Height, renderTime, path); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%s at t=%.2fs)\n", path, e.Name, renderTime)
	return nil
}

func exportGIF(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	e, err := resolveEffect(effect.Default(), args)
	if err != nil {
		return err
	}

	opts := export.Options{
		Width:    cfg.Width,
		Height:   cfg.Height,
		Duration: cfg.Export.Duration,
		FPS:      cfg.Export.FPS,
		Scale:    scale,
	}
	if cmd.Flags().Changed("duration") {
		opts.Duration = exportDuration
	}
	if cmd.Flags().Changed("fps") {
		opts.FPS = fps
	}
	path := outPath
	if path == "" {
		path = filepath.Join(cfg.Export.Dir, e.Slug+".gif")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	began := time.Now()
	if err := export.GIFFile(ctx, e, opts, path); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d frames in %v)\n", path, opts.FrameCount(), time.Since(began).Round(time.Millisecond))
	return nil
}

func benchEffects(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if benchFrames <= 0 {
		return fmt.Errorf("frames must be positive")
	}

	reg := effect.Default()
	effects := reg.All()
	if len(args) > 0 {
		effects = nil
		for _, name := range args {
			e, err := reg.ByName(name)
			if err != nil {
				return err
			}
			effects = append(effects, e)
		}
	}

	fmt.Printf("benchmarking %dx%d, %d frames each\n\n", cfg.Width, cfg.Height, benchFrames)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "EFFECT\tFRAMES\tTIME\tMS/FRAME\tFRAMES/SEC\tMEAN L\tCHECKSUM")

	for _, e := range effects {
		pix := surface.New(cfg.Width, cfg.Height)
		began := time.Now()
		for i := 0; i < benchFrames; i++ {
			e.Render(pix, float64(i)*cfg.FrameMillis()/1000)
		}
		elapsed := time.Since(began)
		stats := analysis.Measure(pix)

		perFrame := float64(elapsed.Microseconds()) / 1000 / float64(benchFrames)
		fmt.Fprintf(w, "%s\t%d\t%v\t%.2f\t%.0f\t%.3f\t%016x\n",
			e.Name, benchFrames, elapsed.Round(time.Microsecond), perFrame,
			float64(benchFrames)/elapsed.Seconds(), stats.MeanLightness, stats.Checksum)
	}
	return w.Flush()
}

func probePixel(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	e, err := resolveEffect(effect.Default(), args)
	if err != nil {
		return err
	}
	ch, err := analysis.ParseChannel(channel)
	if err != nil {
		return err
	}

	x, y := probeX, probeY
	if x < 0 {
		x = cfg.Width / 2
	}
	if y < 0 {
		y = cfg.Height / 2
	}

	spec := analysis.ProbeSpec{
		X: x, Y: y, Start: start, Duration: probeDuration, Rate: rate, Channel: ch,
	}
	data := analysis.Probe(e, cfg.Width, cfg.Height, spec)
	if len(data) < 2 {
		return fmt.Errorf("not enough samples: duration*rate must be at least 2")
	}

	fmt.Printf("probe: %s at (%d,%d), channel %s\n\n", e.Name, x, y, ch)
	graph := asciigraph.Plot(data,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%s over %.1fs", ch, probeDuration)),
	)
	fmt.Println(graph)
	fmt.Println()
	fmt.Printf("dominant frequency: %.3f Hz\n", analysis.DominantFrequency(data, rate))

	if save {
		id, err := storage.New(dataDir).SaveProbe(e, spec, data)
		if err != nil {
			return fmt.Errorf("failed to save report: %w", err)
		}
		fmt.Printf("saved report %s\n", id)
	}
	return nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	reg := effect.Default()

	var sc *automation.Scenario
	switch {
	case len(args) == 1:
		sc, err = automation.LoadScenario(args[0])
		if err != nil {
			return fmt.Errorf("failed to load scenario: %w", err)
		}
	case randomSteps > 0:
		sc = automation.RandomScenario(reg, seed, randomSteps, sessionDuration)
	default:
		return errors.New("need a scenario file or --random")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := automation.RunScenario(ctx, sc, reg, cfg.Width, cfg.Height)
	if err != nil {
		return err
	}

	fmt.Printf("scenario: %s (%d steps, %d frames)\n", sc.Name, len(sc.Steps), res.Frames)
	if sc.Description != "" {
		fmt.Println(sc.Description)
	}
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "AT\tACTION\tEFFECT\tSELECTED")
	for _, ev := range res.Events {
		fmt.Fprintf(w, "%.2f\t%s\t%d\t%d\n", ev.At, ev.Action, ev.Effect, ev.Selected)
	}
	w.Flush()
	fmt.Println()

	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tEFFECT\tELAPSED")
	for _, e := range reg.All() {
		fmt.Fprintf(w, "%d\t%s\t%.3fs\n", e.ID, e.Name, res.Elapsed[e.ID])
	}
	w.Flush()

	fmt.Printf("\nselected %d, held %v, violations %d\n", res.Selected, res.Held, res.Violations)

	if save {
		id, err := storage.New(dataDir).SaveSession(sc, res)
		if err != nil {
			return fmt.Errorf("failed to save report: %w", err)
		}
		fmt.Printf("saved report %s\n", id)
	}
	if res.Violations > 0 {
		return fmt.Errorf("%d frames advanced an unselected effect", res.Violations)
	}
	return nil
}

func listReports(cmd *cobra.Command, args []string) error {
	runs, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no reports")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKIND\tNAME\tTIMESTAMP")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.ID, r.Kind, r.Name, r.Timestamp.Format(time.DateTime))
	}
	return w.Flush()
}

func plotReport(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	if meta.Kind != storage.KindProbe {
		return fmt.Errorf("%s is a %s report, only probes can be plotted", meta.ID, meta.Kind)
	}

	_, values, err := st.LoadSamples(meta.ID)
	if err != nil {
		return err
	}
	if len(values) == 0 {
		return fmt.Errorf("no data")
	}

	fmt.Printf("report: %s\n\n", meta.ID)
	fmt.Println(asciigraph.Plot(values,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(meta.Name),
	))
	fmt.Printf("\ndominant frequency: %.3f Hz\n", meta.Metrics["dominant_hz"])
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSIZE\tFPS\tTHEME\tEXPORT")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%dx%d\t%d\t%s\t%.0fs@%d\n", name, p.Width, p.Height, p.FPS, p.Theme, p.Export.Duration, p.Export.FPS)
	}
	return w.Flush()
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "shaderlab.yaml"
	if len(args) == 1 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s exists (use --force to overwrite)", path)
	}

	cfg := config.DefaultConfig()
	if preset != "" {
		if cfg = config.GetPreset(preset); cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
