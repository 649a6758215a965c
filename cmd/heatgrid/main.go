package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/heatgrid/internal/analysis"
	"github.com/san-kum/heatgrid/internal/config"
	"github.com/san-kum/heatgrid/internal/experiment"
	"github.com/san-kum/heatgrid/internal/sim"
	"github.com/san-kum/heatgrid/internal/storage"
	"github.com/san-kum/heatgrid/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir  string
	dt       float64
	duration float64
	seed     int64
	workers  int
	jitter   float64
	hot      float64
	cold     float64
	ambient  float64
	matA     string
	matB     string
	barLen   int
	plateW   int
	plateH   int
	// Config file and preset
	configFile string
	preset     string
	// Analysis tolerance
	tolerance float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "heatgrid",
		Short: "bounded pairwise heat-exchange simulation lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".heatgrid", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [scenario]",
		Short: "run simulation",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}
	addScenarioFlags(runCmd)
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run temperatures",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	relaxCmd := &cobra.Command{
		Use:   "relax [run_id]",
		Short: "relaxation analysis",
		Args:  cobra.ExactArgs(1),
		RunE:  relaxRun,
	}
	relaxCmd.Flags().Float64Var(&tolerance, "tol", 0.5, "equilibration tolerance (K)")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	benchCmd := &cobra.Command{
		Use:   "bench [scenario]",
		Short: "benchmark scenario",
		Args:  cobra.ExactArgs(1),
		RunE:  benchScenario,
	}

	compareCmd := &cobra.Command{
		Use:   "compare [scenario] [dt1] [dt2] ...",
		Short: "compare timestep sizes on the same scenario",
		Args:  cobra.MinimumNArgs(2),
		RunE:  compareTimesteps,
	}
	compareCmd.Flags().Float64Var(&duration, "time", 60.0, "duration")

	liveCmd := &cobra.Command{
		Use:   "live [scenario]",
		Short: "run simulation with live visualization",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addScenarioFlags(liveCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets [scenario]",
		Short: "list available presets for a scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for scenario: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, relaxCmd, exportCmd, exportCSVCmd, exportJSONCmd, benchCmd, compareCmd, liveCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addScenarioFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel staging workers (0 = serial)")
	cmd.Flags().Float64Var(&jitter, "jitter", 0, "initial temperature jitter (K)")
	cmd.Flags().Float64Var(&hot, "hot", config.DefaultHot, "hot temperature (K)")
	cmd.Flags().Float64Var(&cold, "cold", config.DefaultCold, "cold temperature (K)")
	cmd.Flags().Float64Var(&ambient, "ambient", config.DefaultAmbient, "ambient temperature (K)")
	cmd.Flags().StringVar(&matA, "mat-a", "copper", "primary material")
	cmd.Flags().StringVar(&matB, "mat-b", "steel", "secondary material (junction)")
	cmd.Flags().IntVar(&barLen, "bar-len", config.DefaultBarLen, "bar segments")
	cmd.Flags().IntVar(&plateW, "plate-w", config.DefaultPlateW, "plate width")
	cmd.Flags().IntVar(&plateH, "plate-h", config.DefaultPlateH, "plate height")
}

// buildConfig resolves preset < config file < CLI flag precedence.
func buildConfig(cmd *cobra.Command, scenario string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.Scenario = scenario

	if preset != "" {
		p := config.GetPreset(scenario, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(scenario))
		}
		*cfg = *p
		cfg.Scenario = scenario
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		loaded.Scenario = scenario
		cfg = loaded
	}

	if cmd.Flags().Changed("dt") || cfg.Dt == 0 {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") || cfg.Duration == 0 {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = workers
	}
	if cmd.Flags().Changed("jitter") {
		cfg.Jitter = jitter
	}
	if cmd.Flags().Changed("seed") || cfg.Seed == 0 {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("hot") || cfg.Mesh.Hot == 0 {
		cfg.Mesh.Hot = hot
	}
	if cmd.Flags().Changed("cold") || cfg.Mesh.Cold == 0 {
		cfg.Mesh.Cold = cold
	}
	if cmd.Flags().Changed("ambient") || cfg.Mesh.Ambient == 0 {
		cfg.Mesh.Ambient = ambient
	}
	if cmd.Flags().Changed("mat-a") || cfg.Materials.A == "" {
		cfg.Materials.A = matA
	}
	if cmd.Flags().Changed("mat-b") || cfg.Materials.B == "" {
		cfg.Materials.B = matB
	}
	if cmd.Flags().Changed("bar-len") || cfg.Mesh.BarLen == 0 {
		cfg.Mesh.BarLen = barLen
	}
	if cmd.Flags().Changed("plate-w") || cfg.Mesh.PlateW == 0 {
		cfg.Mesh.PlateW = plateW
	}
	if cmd.Flags().Changed("plate-h") || cfg.Mesh.PlateH == 0 {
		cfg.Mesh.PlateH = plateH
	}

	return cfg, nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	registry := experiment.NewRegistry()
	m, err := registry.GetScenario(cfg)
	if err != nil {
		return err
	}

	exp := experiment.New(cfg)
	if err := exp.Setup(m, registry.DefaultMetrics(m)); err != nil {
		return err
	}

	fmt.Printf("running %s scenario (%d bodies, %d pairs)...\n", cfg.Scenario, len(m.Bodies), len(m.Pairs))
	start := time.Now()

	result, err := exp.Run(context.Background())
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(cfg.Scenario, cfg.Dt, cfg.Duration, cfg.Seed, cfg.Workers, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", result.StepsTaken)
	for _, e := range result.Errors {
		fmt.Printf("warning: %v\n", e)
	}
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
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
	fmt.Fprintln(w, "ID\tSCENARIO\tTIME\tDURATION\tDT\tBODIES\tWORKERS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2fs\t%.4fs\t%d\t%d\n",
			run.ID,
			run.Scenario,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
			run.Bodies,
			run.Workers,
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

	frames, _, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}

	if len(frames) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("scenario: %s\n", meta.Scenario)
	fmt.Printf("samples: %d\n\n", len(frames))

	numBodies := len(frames[0])
	maxPlots := 4
	if numBodies > maxPlots {
		numBodies = maxPlots
	}

	for idx := 0; idx < numBodies; idx++ {
		data := make([]float64, len(frames))
		for i := range frames {
			if idx < len(frames[i]) {
				data[i] = frames[i][idx]
			}
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("body %d temperature (K)", idx)),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	spread := analysis.SpreadHistory(frames)
	graph := asciigraph.Plot(spread,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("temperature spread (K)"),
	)
	fmt.Println(graph)

	return nil
}

func relaxRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	frames, _, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}

	if len(frames) < 2 {
		return fmt.Errorf("not enough data to analyze")
	}

	spread := analysis.SpreadHistory(frames)
	rate := analysis.RelaxationRate(spread, meta.Dt)
	eqTime := analysis.EquilibrationTime(spread, meta.Dt, tolerance)

	fmt.Printf("relaxation analysis: %s\n", meta.ID)
	fmt.Printf("scenario: %s\n\n", meta.Scenario)
	fmt.Printf("initial spread: %.3f K\n", spread[0])
	fmt.Printf("final spread: %.3f K\n", spread[len(spread)-1])
	fmt.Printf("relaxation rate: %.6f /s\n", rate)
	if rate > 0 {
		fmt.Printf("spread half-life: %.3f s\n", 0.6931471805599453/rate)
	}
	if eqTime >= 0 {
		fmt.Printf("equilibrated (tol %.2f K) at: %.3f s\n", tolerance, eqTime)
	} else {
		fmt.Printf("never equilibrated to tol %.2f K\n", tolerance)
	}

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
	frames, times, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}

	if len(frames) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := []string{"time"}
	for i := range frames[0] {
		header = append(header, fmt.Sprintf("t%d", i))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i := range frames {
		row := []string{strconv.FormatFloat(times[i], 'f', 6, 64)}
		for _, val := range frames[i] {
			row = append(row, strconv.FormatFloat(val, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	frames, times, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}

	return storage.ExportJSONStdout(meta, frames, times)
}

func benchScenario(cmd *cobra.Command, args []string) error {
	scenario := args[0]

	registry := experiment.NewRegistry()

	durations := []float64{10.0, 60.0, 300.0}
	dts := []float64{0.01, 0.1, 1.0}

	fmt.Printf("benchmarking %s\n\n", scenario)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DURATION\tDT\tSTEPS\tTIME\tSTEPS/SEC")

	for _, dur := range durations {
		for _, stepSize := range dts {
			cfg := config.DefaultConfig()
			cfg.Scenario = scenario
			cfg.Dt = stepSize
			cfg.Duration = dur
			cfg.Seed = 42

			m, err := registry.GetScenario(cfg)
			if err != nil {
				return err
			}

			exp := experiment.New(cfg)
			if err := exp.Setup(m, nil); err != nil {
				return err
			}

			start := time.Now()
			result, err := exp.Run(context.Background())
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			stepsPerSec := float64(result.StepsTaken) / elapsed.Seconds()

			fmt.Fprintf(w, "%.1fs\t%.4fs\t%d\t%v\t%.0f\n",
				dur, stepSize, result.StepsTaken, elapsed, stepsPerSec)
		}
	}

	return w.Flush()
}

func compareTimesteps(cmd *cobra.Command, args []string) error {
	scenario := args[0]

	registry := experiment.NewRegistry()

	fmt.Printf("comparing timesteps for %s (duration=%.1fs)\n\n", scenario, duration)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DT\tSTEPS\tFINAL_SPREAD\tENERGY_DRIFT\tTIME_MS")

	for _, arg := range args[1:] {
		stepSize, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("invalid dt: %s", arg)
		}

		cfg := config.DefaultConfig()
		cfg.Scenario = scenario
		cfg.Dt = stepSize
		cfg.Duration = duration
		cfg.Seed = 42

		m, err := registry.GetScenario(cfg)
		if err != nil {
			return err
		}

		exp := experiment.New(cfg)
		if err := exp.Setup(m, registry.DefaultMetrics(m)); err != nil {
			return err
		}

		start := time.Now()
		result, err := exp.Run(context.Background())
		if err != nil {
			return err
		}
		elapsed := time.Since(start)

		fmt.Fprintf(w, "%.4f\t%d\t%.4f\t%.2e\t%.2f\n",
			stepSize,
			result.StepsTaken,
			result.Metrics["spread"],
			result.Metrics["energy_drift"],
			float64(elapsed.Microseconds())/1000,
		)
	}

	return w.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}

	registry := experiment.NewRegistry()
	m, err := registry.GetScenario(cfg)
	if err != nil {
		return err
	}

	exp := experiment.New(cfg)
	if err := exp.Setup(m, nil); err != nil {
		return err
	}

	sched := exp.Scheduler()
	sched.SetWorkers(cfg.Workers)
	if err := checkMesh(sched, cfg); err != nil {
		return err
	}

	model := viz.NewModel(sched, cfg.Dt, cfg.Scenario)
	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

// checkMesh runs the scheduler's own validation before handing it to the
// interactive loop, which has no error channel of its own.
func checkMesh(sched *sim.Scheduler, cfg *config.Config) error {
	probe := sim.Config{Dt: cfg.Dt, Duration: cfg.Dt, Workers: cfg.Workers, ValidateState: true}
	return sched.RunWithCallback(context.Background(), probe, func([]float64, float64) bool {
		return false
	})
}
