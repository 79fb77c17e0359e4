package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/eagle-os/eagle-sim/sim"
	"github.com/eagle-os/eagle-sim/sim/scenario"
	"github.com/eagle-os/eagle-sim/sim/trace"
)

var (
	// CLI flags shared by every subcommand
	logLevel string // Log verbosity level
	logFile  string // Action log path; empty disables the action log

	// CLI flags for run
	scenarioPath string // Scenario YAML file
	seed         int64  // Overrides the scenario seed when set
	quiet        bool   // Skip queue rendering after each step
	metricsPath  string // Optional JSON metrics output
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "eagle-sim",
	Short: "Instructional simulator for kernel scheduling and paging",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// runOptions carries everything a scenario run needs, so the run can be
// driven without global flags.
type runOptions struct {
	ScenarioPath string
	LogFile      string
	Seed         *int64
	Quiet        bool
	MetricsPath  string
}

// runCmd executes a scenario file step by step
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a scenario of process, scheduling and memory operations",
	Run: func(cmd *cobra.Command, args []string) {
		if scenarioPath == "" {
			logrus.Fatalf("Scenario file not provided. Use --scenario.")
		}
		opts := runOptions{
			ScenarioPath: scenarioPath,
			LogFile:      logFile,
			Quiet:        quiet,
			MetricsPath:  metricsPath,
		}
		if cmd.Flags().Changed("seed") {
			opts.Seed = &seed
		}
		if err := runScenario(opts, cmd.OutOrStdout()); err != nil {
			logrus.Fatalf("%v", err)
		}
	},
}

// runScenario loads, validates and executes a scenario. Step failures are
// reported and the run continues; load, validation and I/O failures abort.
func runScenario(opts runOptions, out io.Writer) error {
	spec, err := scenario.Load(opts.ScenarioPath)
	if err != nil {
		return err
	}
	if opts.Seed != nil {
		spec.Seed = opts.Seed
	}
	if err := spec.Validate(); err != nil {
		return fmt.Errorf("invalid scenario %s: %w", opts.ScenarioPath, err)
	}

	session := uuid.NewString()
	log := logrus.WithField("session", session)
	cfg := spec.KernelConfig()
	log.Infof("Starting scenario %s: %d steps, quantum=%d, frame size=%d, seed=%d",
		opts.ScenarioPath, len(spec.Steps), cfg.TimeQuantum, cfg.FrameSize, cfg.Seed)

	actions, closeLog, err := openActionLog(opts.LogFile, session)
	if err != nil {
		return err
	}
	defer closeLog()

	k := sim.NewKernel(cfg, actions)
	for i, c := range spec.Commands() {
		fmt.Fprintf(out, "--- step %d: %s\n", i+1, c.Name())
		if err := c.Execute(k, out); err != nil {
			log.Warnf("step %d (%s): %v", i+1, c.Name(), err)
			fmt.Fprintf(out, "Error: %v\n", err)
		}
		if !opts.Quiet {
			k.RenderQueues(out)
		}
	}

	k.Metrics.Print(out)
	if opts.MetricsPath != "" {
		if err := k.Metrics.SaveResults(opts.MetricsPath); err != nil {
			return err
		}
		log.Infof("Metrics written to %s", opts.MetricsPath)
	}
	log.Info("Scenario complete.")
	return nil
}

// openActionLog opens the append-only action log, or a discarding log when
// path is empty. The returned func closes it.
func openActionLog(path, session string) (sim.ActionLog, func(), error) {
	if path == "" {
		return nil, func() {}, nil
	}
	fl, err := trace.OpenFileLog(path, session)
	if err != nil {
		return nil, nil, err
	}
	return fl, func() {
		if err := fl.Close(); err != nil {
			logrus.Warnf("closing action log: %v", err)
		}
	}, nil
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
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", trace.DefaultLogFile, "Append-only action log file (empty disables)")

	runCmd.Flags().StringVar(&scenarioPath, "scenario", "", "Path to scenario YAML file")
	runCmd.Flags().Int64Var(&seed, "seed", sim.DefaultSeed, "Seed for random process creation (overrides the scenario)")
	runCmd.Flags().BoolVar(&quiet, "quiet", false, "Do not render the queues after each step")
	runCmd.Flags().StringVar(&metricsPath, "metrics-path", "", "Write kernel metrics as JSON to this file")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(lruCmd)
}
