package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/schedsim/sim"
	"github.com/inference-sim/schedsim/sim/workload"
)

var (
	logLevel string // Log verbosity level

	runOpts     runOptions // Flags of the run command
	compareOpts runOptions // Flags of the compare command
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "schedsim",
	Short: "Discrete-event simulator for single-CPU scheduling algorithms",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// runCmd simulates one algorithm over a workload file
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one scheduling algorithm over a workload",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := resolveConfig(cmd, &runOpts)
		if err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}
		specs, err := workload.LoadWorkload(runOpts.workloadPath)
		if err != nil {
			logrus.Fatalf("Failed to load workload: %v", err)
		}
		if err := runSimulation(cmd.OutOrStdout(), specs, cfg, &runOpts); err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
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

	registerRunFlags(runCmd, &runOpts)
	runCmd.Flags().StringVar(&runOpts.csvPath, "csv", "", "Write the results table as CSV to this file")
	runCmd.Flags().StringVar(&runOpts.jsonPath, "json", "", "Write the full run report as JSON to this file")
	runCmd.Flags().BoolVar(&runOpts.showAging, "show-aging", false, "Print every aging event")
	runCmd.Flags().StringVar(&runOpts.explainPID, "explain", "", "Print the result and aging history of one process")

	rootCmd.AddCommand(runCmd)
}

// logRunConfig reports the effective configuration at info level.
func logRunConfig(cfg *sim.SimConfig, processes int) {
	logrus.Infof("Simulating %s over %d processes (quantum=%d, threshold=%d, aging=%v interval=%d step=%d)",
		cfg.Algorithm, processes, cfg.TimeQuantum, cfg.StarvationThreshold,
		cfg.Aging.Enabled, cfg.Aging.Interval, cfg.Aging.Step)
}
