package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/waveviz/internal/analysis"
	"github.com/san-kum/waveviz/internal/audio"
	"github.com/san-kum/waveviz/internal/config"
	"github.com/san-kum/waveviz/internal/export"
	"github.com/san-kum/waveviz/internal/gui"
	"github.com/san-kum/waveviz/internal/storage"
	"github.com/san-kum/waveviz/internal/viz"
	"github.com/san-kum/waveviz/internal/wave"
)

var (
	configFile string
	dataDir    string
	logLevel   string
	wavelength float64
	amplitude  float64
	phase      float64
	preset     string
	withAudio  bool
	note       string
	plotWidth  int
	plotHeight int
	sweepParam string
	sweepSteps int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "waveviz",
		Short: "interactive two-wave interference explorer",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(logLevel)
		},
		RunE: runGUI,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level")
	addParamFlags(rootCmd)
	rootCmd.Flags().BoolVar(&withAudio, "audio", false, "play the interference as a tone")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the plot window",
		RunE:  runGUI,
	}
	addParamFlags(guiCmd)
	guiCmd.Flags().BoolVar(&withAudio, "audio", false, "play the interference as a tone")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "terminal explorer",
		RunE:  runTUI,
	}
	addParamFlags(tuiCmd)
	tuiCmd.Flags().BoolVar(&withAudio, "audio", false, "play the interference as a tone")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "print both panels as ascii graphs",
		RunE:  plotWaves,
	}
	addParamFlags(plotCmd)
	plotCmd.Flags().IntVar(&plotWidth, "width", 80, "graph width")
	plotCmd.Flags().IntVar(&plotHeight, "height", 12, "graph height")

	exportCmd := &cobra.Command{
		Use:   "export [file]",
		Short: "write curves to .svg, .csv or .html",
		Args:  cobra.ExactArgs(1),
		RunE:  exportWaves,
	}
	addParamFlags(exportCmd)

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "sweep one parameter and summarise the interference",
		RunE:  runSweep,
	}
	addParamFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&sweepParam, "param", "phase", "parameter to sweep (wavelength, amplitude, phase)")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 32, "number of sweep points")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list parameter presets",
		RunE:  listPresets,
	}

	snapshotsCmd := &cobra.Command{
		Use:   "snapshots",
		Short: "manage saved snapshots",
	}
	snapListCmd := &cobra.Command{
		Use:   "list",
		Short: "list snapshots",
		RunE:  listSnapshots,
	}
	snapShowCmd := &cobra.Command{
		Use:   "show [id]",
		Short: "show a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE:  showSnapshot,
	}
	snapSaveCmd := &cobra.Command{
		Use:   "save",
		Short: "compute and save a snapshot",
		RunE:  saveSnapshot,
	}
	addParamFlags(snapSaveCmd)
	snapSaveCmd.Flags().StringVar(&note, "note", "", "free-form note")
	snapshotsCmd.AddCommand(snapListCmd, snapShowCmd, snapSaveCmd)

	rootCmd.AddCommand(guiCmd, tuiCmd, plotCmd, exportCmd, sweepCmd, presetsCmd, snapshotsCmd)

	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("command failed")
		os.Exit(1)
	}
}

func addParamFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&wavelength, "wavelength", wave.WavelengthRange.Init, "initial wavelength")
	cmd.Flags().Float64Var(&amplitude, "amplitude", wave.AmplitudeRange.Init, "initial amplitude")
	cmd.Flags().Float64Var(&phase, "phase", wave.PhaseRange.Init, "initial phase difference")
	cmd.Flags().StringVar(&preset, "preset", "", "start from a named preset")
}

func setupLogging(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	log.SetOutput(os.Stderr)
	log.SetLevel(lvl)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	return nil
}

// loadConfig layers the config file, a preset and explicit flags, in that
// order. Parameters end up clamped to the slider bounds.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("data") || cfg.DataDir == "" {
		cfg.DataDir = dataDir
	}

	if preset != "" {
		p, ok := config.GetPreset(preset)
		if !ok {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg.Initial = p
	}

	flags := cmd.Flags()
	if flags.Changed("wavelength") {
		cfg.Initial.Wavelength = wavelength
	}
	if flags.Changed("amplitude") {
		cfg.Initial.Amplitude = amplitude
	}
	if flags.Changed("phase") {
		cfg.Initial.Phase = phase
	}
	cfg.Initial = cfg.Initial.Clamp()
	if withAudio {
		cfg.Audio.Enabled = true
	}

	log.WithFields(log.Fields{
		"params": cfg.Initial.String(),
		"data":   cfg.DataDir,
	}).Debug("config loaded")
	return cfg, nil
}

// startAudio returns nil when audio is off or unavailable; the caller runs
// silently in that case.
func startAudio(cfg *config.Config) *audio.Player {
	if !cfg.Audio.Enabled {
		return nil
	}
	player := audio.NewPlayer(audio.NewSynth(cfg.Audio.BaseFreq, cfg.Audio.Volume))
	if err := player.Start(); err != nil {
		log.WithError(err).Warn("audio unavailable, continuing silently")
		return nil
	}
	return player
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	player := startAudio(cfg)
	if player == nil {
		return gui.Run(cfg, nil)
	}
	defer player.Stop()
	return gui.Run(cfg, player.Synth)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	st := storage.New(cfg.DataDir)
	if err := st.Init(); err != nil {
		return err
	}

	opt := viz.Options{Config: cfg, Store: st}
	if player := startAudio(cfg); player != nil {
		defer player.Stop()
		opt.Sink = player.Synth
	}
	return viz.Run(opt)
}

func computeFromConfig(cfg *config.Config) (wave.Grid, wave.Curves, error) {
	grid, err := cfg.BuildGrid()
	if err != nil {
		return nil, wave.Curves{}, err
	}
	return grid, wave.Compute(grid, cfg.Initial), nil
}

func plotWaves(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	grid, c, err := computeFromConfig(cfg)
	if err != nil {
		return err
	}

	bounds := []asciigraph.Option{
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.LowerBound(cfg.Plot.YMin),
		asciigraph.UpperBound(cfg.Plot.YMax),
	}

	fmt.Printf("%s\n\n", cfg.Initial)
	fmt.Println(asciigraph.PlotMany([][]float64{c.Wave1, c.Wave2},
		append(bounds,
			asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Red),
			asciigraph.Caption("Waves"))...))
	fmt.Println()
	fmt.Println(asciigraph.Plot(c.Interference,
		append(bounds,
			asciigraph.SeriesColors(asciigraph.Green),
			asciigraph.Caption("Interference"))...))
	fmt.Println()

	st := analysis.Describe(c.Interference)
	fmt.Printf("envelope: %.4f  peak-to-peak: %.4f  rms: %.4f\n",
		wave.Envelope(cfg.Initial), st.PeakToPeak(), st.RMS)
	if spec, err := analysis.NewSpectrum(c.Wave1, grid.Spacing()); err == nil {
		fmt.Printf("spectral peak: %.4f cycles/unit (wavelength ≈ %.3f)\n", spec.Peak().Freq, spec.Wavelength())
	}
	return nil
}

func exportWaves(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	grid, c, err := computeFromConfig(cfg)
	if err != nil {
		return err
	}
	if err := export.WriteFile(args[0], grid, c, cfg.Initial, cfg.Plot.YMin, cfg.Plot.YMax); err != nil {
		return err
	}
	log.WithFields(log.Fields{"path": args[0], "samples": len(grid)}).Info("exported")
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	r, err := analysis.RangeFor(sweepParam)
	if err != nil {
		return err
	}
	grid, err := cfg.BuildGrid()
	if err != nil {
		return err
	}

	points, err := analysis.Sweep(context.Background(), grid, cfg.Initial, sweepParam, analysis.Steps(r, sweepSteps))
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tENVELOPE\tPEAK-TO-PEAK\tRMS\n", sweepParam)
	rms := make([]float64, len(points))
	for i, p := range points {
		rms[i] = p.Stats.RMS
		fmt.Fprintf(w, "%.4f\t%.4f\t%.4f\t%.4f\n", p.Value, p.Envelope, p.Stats.PeakToPeak(), p.Stats.RMS)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	lo, hi := analysis.Extremes(points)
	fmt.Println()
	fmt.Println(asciigraph.Plot(rms,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("rms vs %s", sweepParam)),
	))
	fmt.Printf("\nquietest at %s=%.4f (rms %.4f), loudest at %s=%.4f (rms %.4f)\n",
		sweepParam, lo.Value, lo.Stats.RMS, sweepParam, hi.Value, hi.Stats.RMS)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tWAVELENGTH\tAMPLITUDE\tPHASE")
	for _, name := range config.ListPresets() {
		p, _ := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%.4f\t%.4f\t%.4f\n", name, p.Wavelength, p.Amplitude, p.Phase)
	}
	return w.Flush()
}

func saveSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	grid, c, err := computeFromConfig(cfg)
	if err != nil {
		return err
	}
	st := storage.New(cfg.DataDir)
	if err := st.Init(); err != nil {
		return err
	}
	id, err := st.Save(cfg.Initial, grid, c, note)
	if err != nil {
		return err
	}
	fmt.Println(id)
	return nil
}

func listSnapshots(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	st := storage.New(cfg.DataDir)
	snaps, err := st.List()
	if err != nil {
		return err
	}
	if len(snaps) == 0 {
		fmt.Println("no snapshots found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tWAVELENGTH\tAMPLITUDE\tPHASE\tSAMPLES\tNOTE")
	for _, s := range snaps {
		fmt.Fprintf(w, "%s\t%s\t%.3f\t%.3f\t%.3f\t%d\t%s\n",
			s.ID,
			s.Timestamp.Format("2006-01-02 15:04:05"),
			s.Params.Wavelength,
			s.Params.Amplitude,
			s.Params.Phase,
			s.Samples,
			s.Note,
		)
	}
	return w.Flush()
}

func showSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	st := storage.New(cfg.DataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	_, c, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("snapshot: %s\n", meta.ID)
	fmt.Printf("time:     %s\n", meta.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Printf("params:   %s\n", meta.Params)
	fmt.Printf("grid:     %d samples on [%g, %g]\n", meta.Samples, meta.Start, meta.Stop)
	if meta.Note != "" {
		fmt.Printf("note:     %s\n", meta.Note)
	}
	fmt.Println()
	fmt.Println(asciigraph.Plot(c.Interference,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("interference"),
	))
	return nil
}
