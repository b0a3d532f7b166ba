package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/Parth04Dalvi/3D-N-Body-Gravity-Simulator/internal/config"
	"github.com/Parth04Dalvi/3D-N-Body-Gravity-Simulator/internal/metrics"
	"github.com/Parth04Dalvi/3D-N-Body-Gravity-Simulator/internal/scenario"
	"github.com/Parth04Dalvi/3D-N-Body-Gravity-Simulator/internal/sim"
	"github.com/Parth04Dalvi/3D-N-Body-Gravity-Simulator/internal/store"
	"github.com/Parth04Dalvi/3D-N-Body-Gravity-Simulator/internal/viz"
)

var (
	dataDir    string
	dt         float64
	duration   float64
	sample     int
	softening  float64
	preset     string
	configFile string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "nbody",
		Short: "3D gravitational n-body simulator",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".nbody", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [scenario]",
		Short: "run a simulation and store the result",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSimulation,
	}
	runCmd.Flags().Float64Var(&dt, "dt", 0, "timestep (seconds)")
	runCmd.Flags().Float64Var(&duration, "time", 0, "duration (seconds)")
	runCmd.Flags().IntVar(&sample, "sample", 0, "record every Nth tick")
	runCmd.Flags().Float64Var(&softening, "softening", 0, "softening length")
	runCmd.Flags().StringVar(&preset, "preset", "", "use a preset configuration")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")

	liveCmd := &cobra.Command{
		Use:   "live [scenario]",
		Short: "run with live terminal visualization",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().Float64Var(&dt, "dt", 0, "timestep")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run's trajectory columns",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets and scenarios",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("presets:")
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
			fmt.Println("scenarios:")
			for _, s := range scenario.Names() {
				fmt.Printf("  %s\n", s)
			}
		},
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "write a stored run's trajectory to stdout as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "write a stored run to stdout as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, plotCmd, presetsCmd, exportCSVCmd, exportJSONCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig layers preset, config file, scenario argument, and CLI
// flags, in increasing priority.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if len(args) > 0 {
		cfg.Scenario = args[0]
		cfg.Bodies = nil
	}

	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("sample") {
		cfg.Sample = sample
	}
	if cmd.Flags().Changed("softening") {
		cfg.Softening = softening
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	eng, err := cfg.BuildEngine()
	if err != nil {
		return err
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	runner := sim.NewRunner(eng)
	runner.AddMetric(metrics.NewEnergyDrift())
	runner.AddMetric(metrics.NewMomentumDrift())

	fmt.Printf("running %s...\n", cfg.Scenario)
	start := time.Now()

	simCfg := sim.Config{Dt: cfg.Dt, Duration: cfg.Duration, Sample: cfg.Sample}
	result, err := runner.Run(context.Background(), simCfg)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(cfg.Scenario, simCfg, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", result.StepsTaken)
	fmt.Printf("energy drift: %.3e\n", result.EnergyDrift)
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6g\n", name, val)
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	name := "demo"
	if len(args) > 0 {
		name = args[0]
	}

	cfg := config.GetPreset(name)
	if cfg == nil {
		cfg = config.DefaultConfig()
		cfg.Scenario = name
	}
	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}

	eng, err := cfg.BuildEngine()
	if err != nil {
		return err
	}

	m := viz.NewModel(eng, cfg.Scenario, cfg.Dt)
	p := tea.NewProgram(m)
	_, err = p.Run()
	return err
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENARIO\tTIME\tDURATION\tDT\tBODIES\tSTEPS")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.3gs\t%.3gs\t%d\t%d\n",
			run.ID,
			run.Scenario,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
			len(run.Bodies),
			run.Steps,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	cols, _, rows, err := st.LoadStates(args[0])
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("scenario: %s\n", meta.Scenario)
	fmt.Printf("samples: %d\n\n", len(rows))

	// Position columns only; six plots keeps the output readable.
	plotted := 0
	for c, name := range cols {
		if plotted >= 6 {
			break
		}
		if len(name) < 2 || name[len(name)-2] == 'v' {
			continue
		}
		data := make([]float64, len(rows))
		for i := range rows {
			if c < len(rows[i]) {
				data[i] = rows[i][c]
			}
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(8),
			asciigraph.Width(80),
			asciigraph.Caption(name+" vs time"),
		)
		fmt.Println(graph)
		fmt.Println()
		plotted++
	}

	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	cols, times, rows, err := st.LoadStates(args[0])
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write(append([]string{"time"}, cols...)); err != nil {
		return err
	}
	for i := range rows {
		row := []string{strconv.FormatFloat(times[i], 'g', -1, 64)}
		for _, v := range rows[i] {
			row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	cols, times, rows, err := st.LoadStates(args[0])
	if err != nil {
		return err
	}
	return store.ExportJSON(os.Stdout, meta, cols, times, rows)
}
