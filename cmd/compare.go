package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/schedsim/schedsim/sim"
	"github.com/schedsim/schedsim/sim/report"
)

var (
	compareProcessesPath string
	compareQuantum       int64
	compareOutput        string
)

// runComparison replays procs under every algorithm and writes one summary.
func runComparison(w io.Writer, procs []sim.Process, quantum int64, format string) error {
	metrics, err := compareAlgorithms(procs, quantum)
	if err != nil {
		return err
	}
	switch format {
	case outputJSON:
		return writeJSON(w, metrics)
	case outputTable:
		report.Title(w, "Algorithm comparison")
		report.Comparison(w, metrics)
		return nil
	default:
		return fmt.Errorf("unknown output format %q; valid: %s, %s", format, outputTable, outputJSON)
	}
}

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Replay one process set under every algorithm and compare averages",
	Run: func(cmd *cobra.Command, args []string) {
		procs, spec, err := loadProcessSet(compareProcessesPath)
		if err != nil {
			logrus.Fatalf("unable to load process set: %v", err)
		}
		q := compareQuantum
		if spec != nil && spec.Quantum > 0 && !cmd.Flags().Changed("quantum") {
			q = spec.Quantum
		}
		if err := runComparison(os.Stdout, procs, q, compareOutput); err != nil {
			logrus.Fatalf("comparison failed: %v", err)
		}
	},
}

func init() {
	compareCmd.Flags().StringVar(&compareProcessesPath, "processes", "", "Process set file (.yaml, .yml, .csv); defaults to the built-in four-process set")
	compareCmd.Flags().Int64Var(&compareQuantum, "quantum", 3, "Round Robin time quantum (positive)")
	compareCmd.Flags().StringVar(&compareOutput, "output", outputTable, "Output format (table, json)")
	rootCmd.AddCommand(compareCmd)
}
