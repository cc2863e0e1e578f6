package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/sherine-k/schedsim/pkg/chart"
	"github.com/sherine-k/schedsim/pkg/config"
	"github.com/sherine-k/schedsim/pkg/simulation"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	configFile       string
	csvFile          string
	algorithmName    string
	quantum          int
	showTimeline     bool
	showEventSummary bool
	showQueue        bool
	waitThreshold    int
	outputFormat     string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Simulate one scheduling policy",
	Long: `Simulate one scheduling policy over the workload and print the Gantt chart,
the per-process metrics table and their averages.`,
	Example: `  schedsim run -c workload.yaml -a srt
  schedsim run --csv processes.csv -a rr -q 4 -t`,
	RunE: runSimulation,
}

func init() {
	runCmd.Flags().StringVarP(&configFile, "config", "c", "workload.yaml", "Path to workload file")
	runCmd.Flags().StringVar(&csvFile, "csv", "", "Read processes from a CSV file (arrival,burst[,priority]) instead of the workload file")
	runCmd.Flags().StringVarP(&algorithmName, "algorithm", "a", "", "Scheduling algorithm (sjn, npp, rr, srt)")
	runCmd.Flags().IntVarP(&quantum, "quantum", "q", 0, "Round robin time quantum")
	runCmd.Flags().BoolVarP(&showTimeline, "timeline", "t", false, "Show detailed timeline of events")
	runCmd.Flags().IntP("timeline-limit", "l", 50, "Limit number of timeline events to display")
	runCmd.Flags().BoolVarP(&showEventSummary, "summary", "s", true, "Show event summary")
	runCmd.Flags().BoolVar(&showQueue, "queue", false, "Show ready queue chart")
	runCmd.Flags().IntVar(&waitThreshold, "wait-threshold", 0, "Warn about processes waiting longer than this (0 keeps the workload value)")
	runCmd.Flags().StringVarP(&outputFormat, "output", "o", "text", "Output format (text, json, yaml)")
}

// runOutput is the machine-readable form of a run.
type runOutput struct {
	Result   *simulation.Result `json:"result" yaml:"result"`
	Events   []simulation.Event `json:"events" yaml:"events"`
	Warnings []simulation.Event `json:"warnings" yaml:"warnings"`
}

func runSimulation(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := loadWorkload(configFile, csvFile)
	if err != nil {
		return err
	}

	if algorithmName != "" {
		alg, err := config.ParseAlgorithm(algorithmName)
		if err != nil {
			return err
		}
		cfg.Algorithm = alg
	}
	if cfg.Algorithm == "" {
		return fmt.Errorf("no algorithm selected: use --algorithm or set algorithm in the workload file")
	}
	cfg.Quantum = resolveQuantum(cmd, quantum, cfg)
	if waitThreshold > 0 {
		cfg.WaitWarningThreshold = waitThreshold
	}

	// Create and run simulator
	sim := simulation.NewSimulator(cfg, logger)
	if err := sim.Run(); err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	out := cmd.OutOrStdout()
	switch outputFormat {
	case "json", "yaml":
		return writeStructured(out, outputFormat, runOutput{
			Result:   sim.GetResult(),
			Events:   sim.GetEvents(),
			Warnings: sim.GetWarnings(),
		})
	case "text":
	default:
		return fmt.Errorf("unknown output format %q", outputFormat)
	}

	// Generate and display charts
	chartGen := chart.NewGenerator()
	result := sim.GetResult()

	fmt.Fprintf(out, "%s: %d processes\n", cfg.Algorithm.Title(), len(result.Processes))

	fmt.Fprintln(out, chartGen.GenerateGantt(result))
	fmt.Fprintln(out, chartGen.GenerateMetricsTable(result))

	if showQueue {
		fmt.Fprintln(out, chartGen.GenerateQueueChart(sim.GetTimePoints()))
	}

	// Display event summary
	if showEventSummary {
		fmt.Fprintln(out, chartGen.GenerateEventSummary(sim.GetEvents()))
	}

	// Display warnings
	if cfg.WaitWarningThreshold > 0 {
		fmt.Fprintln(out, chartGen.GenerateWarnings(sim.GetWarnings()))
	}

	// Display detailed timeline if requested
	if showTimeline {
		fmt.Fprintln(out, chartGen.GenerateDetailedTimeline(sim.GetEvents(), settings.TimelineLimit))
	}

	return nil
}

func writeStructured(w io.Writer, format string, v interface{}) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
