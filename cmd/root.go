package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/sherine-k/schedsim/pkg/chart"
	"github.com/sherine-k/schedsim/pkg/config"
	"github.com/sherine-k/schedsim/pkg/log"
	"github.com/spf13/cobra"
)

var (
	settingsFile string
	logLevel     string
	noColor      bool

	settings *config.Settings
	logger   *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "schedsim",
	Short: "CPU Scheduling Simulator",
	Long: `A CLI tool that simulates CPU scheduling policies over a known set of processes.

This tool reads a workload file containing processes with their arrival and
burst times, simulates Shortest Job Next, Non-Preemptive Priority, Round Robin
or Shortest Remaining Time scheduling, and prints the resulting Gantt chart
along with per-process turnaround, waiting and response times.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&settingsFile, "settings", "", "Path to settings file (yaml, json or toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(serveCmd)
}

func loadSettings(cmd *cobra.Command, args []string) error {
	s, err := config.NewSettings(cmd.Flags(), settingsFile)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	settings = s
	logger = log.BuildLogger(s.LogLevel)
	if s.NoColor {
		chart.SetNoColor(true)
	}
	return nil
}

// loadWorkload reads processes from the CSV file when one is given, otherwise
// from the workload file.
func loadWorkload(workloadFile, csvFile string) (*config.Config, error) {
	if csvFile == "" {
		cfg, err := config.LoadConfig(workloadFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		return cfg, nil
	}

	f, err := os.Open(csvFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open processes file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	specs, err := config.LoadProcessesCSV(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load processes from %s: %w", csvFile, err)
	}
	return &config.Config{Processes: specs}, nil
}

// resolveQuantum applies flag > workload file > settings precedence.
func resolveQuantum(cmd *cobra.Command, flagValue int, cfg *config.Config) int {
	if cmd.Flags().Changed("quantum") {
		return flagValue
	}
	if cfg.Quantum > 0 {
		return cfg.Quantum
	}
	return settings.Quantum
}
