package cmd

import (
	"fmt"

	"github.com/sherine-k/schedsim/pkg/chart"
	"github.com/sherine-k/schedsim/pkg/log"
	"github.com/sherine-k/schedsim/pkg/simulation"
	"github.com/spf13/cobra"
)

var (
	compareConfigFile string
	compareCSVFile    string
	compareQuantum    int
	compareGantt      bool
	compareOutput     string
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run every scheduling policy on the same workload",
	RunE:  runComparison,
}

func init() {
	compareCmd.Flags().StringVarP(&compareConfigFile, "config", "c", "workload.yaml", "Path to workload file")
	compareCmd.Flags().StringVar(&compareCSVFile, "csv", "", "Read processes from a CSV file instead of the workload file")
	compareCmd.Flags().IntVarP(&compareQuantum, "quantum", "q", 0, "Round robin time quantum")
	compareCmd.Flags().BoolVarP(&compareGantt, "gantt", "g", false, "Also print the Gantt chart of every policy")
	compareCmd.Flags().StringVarP(&compareOutput, "output", "o", "text", "Output format (text, json, yaml)")
}

func runComparison(cmd *cobra.Command, args []string) error {
	cfg, err := loadWorkload(compareConfigFile, compareCSVFile)
	if err != nil {
		return err
	}

	q := resolveQuantum(cmd, compareQuantum, cfg)
	processes := simulation.NewProcesses(cfg.Workload())
	logger.Info("comparing policies",
		log.IntAttr("processes", len(processes)),
		log.IntAttr("quantum", q),
	)

	results, err := simulation.Compare(q, processes)
	if err != nil {
		return fmt.Errorf("comparison failed: %w", err)
	}

	out := cmd.OutOrStdout()
	switch compareOutput {
	case "json", "yaml":
		return writeStructured(out, compareOutput, results)
	case "text":
	default:
		return fmt.Errorf("unknown output format %q", compareOutput)
	}

	chartGen := chart.NewGenerator()
	if compareGantt {
		for _, result := range results {
			fmt.Fprintln(out, chartGen.GenerateGantt(result))
		}
	}
	fmt.Fprintln(out, chartGen.GenerateComparison(results))

	return nil
}
