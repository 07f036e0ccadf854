package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/inference-sim/schedsim/sim"
	"github.com/inference-sim/schedsim/sim/report"
)

// runOptions holds the flags shared by run and compare.
type runOptions struct {
	workloadPath  string
	configPath    string
	algorithm     string
	quantum       int64
	threshold     int64
	aging         bool
	agingInterval int64
	agingStep     int64
	csvPath       string
	jsonPath      string
	showAging     bool
	explainPID    string
}

// registerRunFlags defines the workload and configuration flags on cmd.
// Flag defaults mirror sim.DefaultSimConfig.
func registerRunFlags(cmd *cobra.Command, o *runOptions) {
	def := sim.DefaultSimConfig()
	cmd.Flags().StringVarP(&o.workloadPath, "workload", "w", "", "Workload file (.yaml, .json or .csv)")
	cmd.Flags().StringVar(&o.configPath, "config", "", "Simulation config YAML; flags override its values")
	cmd.Flags().StringVarP(&o.algorithm, "algorithm", "a", def.Algorithm, fmt.Sprintf("Scheduling algorithm %v", sim.AlgorithmNames()))
	cmd.Flags().Int64VarP(&o.quantum, "quantum", "q", def.TimeQuantum, "Round-robin time quantum (ticks)")
	cmd.Flags().Int64Var(&o.threshold, "threshold", def.StarvationThreshold, "Starvation threshold (ticks of waiting)")
	cmd.Flags().BoolVar(&o.aging, "aging", def.Aging.Enabled, "Enable aging")
	cmd.Flags().Int64Var(&o.agingInterval, "aging-interval", def.Aging.Interval, "Ticks of waiting per aging step")
	cmd.Flags().Int64Var(&o.agingStep, "aging-step", def.Aging.Step, "Effective value change per aging step")
	_ = cmd.MarkFlagRequired("workload")
}

// resolveConfig loads the config file (or defaults), applies only the flags
// the user set explicitly, and validates the result.
func resolveConfig(cmd *cobra.Command, o *runOptions) (*sim.SimConfig, error) {
	cfg := sim.DefaultSimConfig()
	if o.configPath != "" {
		loaded, err := sim.LoadSimConfig(o.configPath)
		if err != nil {
			return nil, err
		}
		cfg = *loaded
	}

	flags := cmd.Flags()
	if flags.Changed("algorithm") {
		cfg.Algorithm = o.algorithm
	}
	if flags.Changed("quantum") {
		cfg.TimeQuantum = o.quantum
	}
	if flags.Changed("threshold") {
		cfg.StarvationThreshold = o.threshold
	}
	if flags.Changed("aging") {
		cfg.Aging.Enabled = o.aging
	}
	if flags.Changed("aging-interval") {
		cfg.Aging.Interval = o.agingInterval
	}
	if flags.Changed("aging-step") {
		cfg.Aging.Step = o.agingStep
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.Algorithm = sim.CanonicalAlgorithm(cfg.Algorithm)
	return &cfg, nil
}

// runSimulation runs the configured algorithm and prints every section of
// the run to w, then writes the optional CSV and JSON exports.
func runSimulation(w io.Writer, specs []sim.ProcessSpec, cfg *sim.SimConfig, o *runOptions) error {
	logRunConfig(cfg, len(specs))
	alg := cfg.NewAlgorithm()
	s := sim.NewScheduler(specs)
	s.Run(alg)

	report.WriteTitle(w, sim.DisplayName(cfg.Algorithm))
	report.WriteExecutionLog(w, s.Log)
	report.WriteResultsTable(w, s.Results())
	report.WriteStarvationTable(w, s.DetectStarvation(cfg.StarvationThreshold))
	if o.showAging && s.AgingEnabled {
		report.WriteAgingTable(w, s.Trace.Records)
	}
	report.WriteSummary(w, s.Summary())
	if o.explainPID != "" {
		p := s.Process(o.explainPID)
		if p == nil {
			return fmt.Errorf("no process %q in workload", o.explainPID)
		}
		_, _ = fmt.Fprintln(w)
		report.WriteProcessDetail(w, sim.ResultOf(p), s.Trace.ForPID(p.PID))
	}

	if o.csvPath != "" {
		results := s.Results()
		if err := report.WriteFile(o.csvPath, func(f io.Writer) error {
			return report.WriteResultsCSV(f, results)
		}); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(w, "Results written to %s\n", o.csvPath)
	}
	if o.jsonPath != "" {
		doc := report.NewRunReport(s, alg, cfg.StarvationThreshold)
		if err := report.WriteFile(o.jsonPath, func(f io.Writer) error {
			return report.WriteJSON(f, doc)
		}); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(w, "Run report written to %s\n", o.jsonPath)
	}
	return nil
}
