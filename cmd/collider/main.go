package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/collider/internal/config"
	"github.com/san-kum/collider/internal/engine"
	"github.com/san-kum/collider/internal/metrics"
	"github.com/san-kum/collider/internal/particle"
	"github.com/san-kum/collider/internal/storage"
	"github.com/san-kum/collider/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	seed       int64
	duration   float64
	fps        int
	count      int
	width      float64
	height     float64
	gravityOn  bool
	frictionOn bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "collider",
		Short: "2d particle collision arena",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the live view when no command is given.
			return runLive(cmd, args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".collider", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")

	addArenaFlags := func(cmd *cobra.Command) {
		cmd.Flags().IntVar(&count, "count", config.DefaultCount, "initial particle count")
		cmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate (fixes dt = 1/fps)")
		cmd.Flags().Float64Var(&width, "width", config.DefaultWidth, "arena width")
		cmd.Flags().Float64Var(&height, "height", config.DefaultHeight, "arena height")
		cmd.Flags().BoolVar(&gravityOn, "gravity", false, "start with gravity enabled")
		cmd.Flags().BoolVar(&frictionOn, "friction", false, "start with friction enabled")
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a headless simulation and save the results",
		RunE:  runHeadless,
	}
	runCmd.Flags().Float64Var(&duration, "time", 10.0, "duration in seconds")
	addArenaFlags(runCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run with live terminal visualization",
		RunE:  runLive,
	}
	addArenaFlags(liveCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a run's kinetic energy history",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export per-frame data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark frame throughput",
		RunE:  benchArena,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets()
			sort.Strings(names)
			for _, name := range names {
				fmt.Println(name)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, plotCmd, exportCmd, exportCSVCmd, benchCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves preset, config file, and CLI flags in ascending
// precedence, matching flag-changed semantics.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("count") {
		cfg.Count = count
	}
	if cmd.Flags().Changed("fps") {
		cfg.FPS = fps
	}
	if cmd.Flags().Changed("width") {
		cfg.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Height = height
	}
	if cmd.Flags().Changed("gravity") {
		cfg.GravityOn = gravityOn
	}
	if cmd.Flags().Changed("friction") {
		cfg.FrictionOn = frictionOn
	}
	if cfg.Seed == 0 || cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newWorld(cfg *config.Config) (*engine.World, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	world, err := engine.New(cfg.EngineConfig(), rng)
	if err != nil {
		return nil, err
	}
	world.SetGravityEnabled(cfg.GravityOn)
	world.SetFrictionEnabled(cfg.FrictionOn)
	// Default collision feedback: both particles get a fresh hue.
	world.OnCollision(func(a, b *particle.Particle) {
		world.Recolor(a)
		world.Recolor(b)
	})
	if err := world.Reset(); err != nil {
		return nil, err
	}
	return world, nil
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	world, err := newWorld(cfg)
	if err != nil {
		return err
	}

	runner := engine.NewRunner(world)
	runner.AddMetric(metrics.NewKineticEnergy())
	runner.AddMetric(metrics.NewMomentum())
	runner.AddMetric(metrics.NewMeanSpeed())
	runner.AddMetric(metrics.NewMaxPenetration())

	frames := int(duration * float64(cfg.FPS))

	fmt.Printf("running %d particles for %d frames...\n", world.Count(), frames)
	start := time.Now()

	result, err := runner.Run(context.Background(), frames)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(cfg.Seed, cfg.Dt(), world.GravityEnabled(), world.FrictionEnabled(), result, world.Particles())
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("frames: %d\n", result.Frames)
	fmt.Printf("collisions: %d\n", result.Collisions)
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	world, err := newWorld(cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(viz.NewModel(world, cfg.FPS))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
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

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tFRAMES\tPARTICLES\tCOLLISIONS\tGRAVITY\tFRICTION")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%v\t%v\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Frames,
			run.Particles,
			run.Collisions,
			run.GravityOn,
			run.FrictionOn,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	_, energy, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}

	if len(energy) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("frames: %d, particles: %d\n\n", meta.Frames, meta.Particles)

	graph := asciigraph.Plot(energy,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("total kinetic energy vs time"),
	)
	fmt.Println(graph)

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	times, energy, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}

	if len(times) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"time", "kinetic_energy"}); err != nil {
		return err
	}
	for i := range times {
		row := []string{
			strconv.FormatFloat(times[i], 'f', 6, 64),
			strconv.FormatFloat(energy[i], 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func benchArena(cmd *cobra.Command, args []string) error {
	counts := []int{25, 75, 150, 300}
	durations := []float64{1.0, 5.0}

	fmt.Println("benchmarking arena")
	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PARTICLES\tDURATION\tFRAMES\tTIME\tFRAMES/SEC")

	for _, n := range counts {
		for _, dur := range durations {
			cfg := config.DefaultConfig()
			cfg.Count = n
			cfg.Seed = 42

			world, err := newWorld(cfg)
			if err != nil {
				return err
			}

			runner := engine.NewRunner(world)
			frames := int(dur * float64(cfg.FPS))

			start := time.Now()
			result, err := runner.Run(context.Background(), frames)
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			framesPerSec := float64(result.Frames) / elapsed.Seconds()
			fmt.Fprintf(w, "%d\t%.1fs\t%d\t%v\t%.0f\n",
				n, dur, result.Frames, elapsed, framesPerSec)
		}
	}

	return w.Flush()
}
