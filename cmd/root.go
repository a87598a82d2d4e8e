package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/schedsim/schedsim/sim"
	"github.com/schedsim/schedsim/sim/trace"
	"github.com/schedsim/schedsim/sim/workload"
)

var (
	// CLI flags shared by run and compare
	logLevel      string // Log verbosity level
	processesPath string // Process set file (.yaml, .yml, .csv); empty = built-in reference set
	algorithmName string // Scheduling policy
	quantum       int64  // Round Robin time quantum
	outputFormat  string // table or json
	traceLevel    string // none or decisions
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "schedsim",
	Short: "Deterministic single-CPU process scheduling simulator",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// runOptions carries everything a single run needs, resolved from flags and file defaults.
type runOptions struct {
	Algorithm string
	Quantum   int64
	Output    string
	Trace     trace.TraceLevel
}

// loadProcessSet returns the processes at path, or the reference set when path is empty.
func loadProcessSet(path string) ([]sim.Process, *workload.ProcessSetSpec, error) {
	if path == "" {
		spec := workload.Classic()
		return spec.ToProcesses(), spec, nil
	}
	return workload.LoadProcesses(path)
}

// resolveRunOptions applies file defaults for algorithm and quantum unless the
// corresponding flag was given explicitly.
func resolveRunOptions(cmd *cobra.Command, spec *workload.ProcessSetSpec) runOptions {
	opts := runOptions{
		Algorithm: algorithmName,
		Quantum:   quantum,
		Output:    outputFormat,
		Trace:     trace.TraceLevel(traceLevel),
	}
	if spec != nil {
		if spec.Algorithm != "" && !cmd.Flags().Changed("algorithm") {
			opts.Algorithm = spec.Algorithm
		}
		if spec.Quantum > 0 && !cmd.Flags().Changed("quantum") {
			opts.Quantum = spec.Quantum
		}
	}
	return opts
}

// runSimulation validates opts, replays procs and writes the result to w.
func runSimulation(w io.Writer, procs []sim.Process, opts runOptions) error {
	if !validOutputFormats[opts.Output] {
		return fmt.Errorf("unknown output format %q; valid: %s, %s", opts.Output, outputTable, outputJSON)
	}
	if !trace.IsValidTraceLevel(string(opts.Trace)) {
		return fmt.Errorf("unknown trace level %q; valid: none, decisions", opts.Trace)
	}
	alg, err := sim.NewAlgorithm(opts.Algorithm, opts.Quantum)
	if err != nil {
		return err
	}

	logrus.Infof("Starting %s simulation over %d processes", alg.Name(), len(procs))
	res, err := simulate(alg, procs, opts.Trace)
	if err != nil {
		return err
	}
	return writeResult(w, opts.Output, res)
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Replay a process set under one scheduling algorithm",
	Run: func(cmd *cobra.Command, args []string) {
		procs, spec, err := loadProcessSet(processesPath)
		if err != nil {
			logrus.Fatalf("unable to load process set: %v", err)
		}
		if err := runSimulation(os.Stdout, procs, resolveRunOptions(cmd, spec)); err != nil {
			logrus.Fatalf("simulation failed: %v", err)
		}
		logrus.Info("Simulation complete.")
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")

	runCmd.Flags().StringVar(&processesPath, "processes", "", "Process set file (.yaml, .yml, .csv); defaults to the built-in four-process set")
	runCmd.Flags().StringVar(&algorithmName, "algorithm", sim.AlgorithmFCFS,
		fmt.Sprintf("Scheduling algorithm (%s)", strings.Join(sim.ValidAlgorithmNames(), ", ")))
	runCmd.Flags().Int64Var(&quantum, "quantum", 3, "Round Robin time quantum (positive)")
	runCmd.Flags().StringVar(&outputFormat, "output", outputTable, "Output format (table, json)")
	runCmd.Flags().StringVar(&traceLevel, "trace", string(trace.TraceLevelNone), "Decision trace level (none, decisions)")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
