package cmd

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/schedsim/sim"
	"github.com/inference-sim/schedsim/sim/report"
	"github.com/inference-sim/schedsim/sim/workload"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare an algorithm with and without aging",
	Long: "Run the selected algorithm twice over the same workload, once without aging and " +
		"once with the configured aging interval and step, and report per-process waiting times.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := resolveConfig(cmd, &compareOpts)
		if err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}
		specs, err := workload.LoadWorkload(compareOpts.workloadPath)
		if err != nil {
			logrus.Fatalf("Failed to load workload: %v", err)
		}
		if err := runComparison(cmd.OutOrStdout(), specs, cfg, &compareOpts); err != nil {
			logrus.Fatalf("Comparison failed: %v", err)
		}
	},
}

// runComparison runs the baseline and aging variants of cfg.Algorithm and
// prints the comparison. The aging parameters apply even if cfg leaves
// aging disabled.
func runComparison(w io.Writer, specs []sim.ProcessSpec, cfg *sim.SimConfig, o *runOptions) error {
	if !sim.SupportsAging(cfg.Algorithm) {
		return fmt.Errorf("algorithm %q has no aging variant to compare", cfg.Algorithm)
	}
	params := cfg.Parameters()
	if err := params.Validate(); err != nil {
		return err
	}
	logRunConfig(cfg, len(specs))
	base := sim.NewAlgorithm(cfg.Algorithm, cfg.TimeQuantum, nil)
	c := sim.CompareAging(specs, base, params)

	report.WriteTitle(w, "Aging comparison")
	report.WriteComparisonTable(w, c)
	_, _ = fmt.Fprintln(w)
	report.WriteStarvationTable(w, c.Aged.DetectStarvation(cfg.StarvationThreshold))

	if o.jsonPath != "" {
		doc := report.NewComparisonReport(c, base, sim.WithAging(base, params), cfg.StarvationThreshold)
		if err := report.WriteFile(o.jsonPath, func(f io.Writer) error {
			return report.WriteJSON(f, doc)
		}); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(w, "Comparison report written to %s\n", o.jsonPath)
	}
	return nil
}

func init() {
	registerRunFlags(compareCmd, &compareOpts)
	compareCmd.Flags().StringVar(&compareOpts.jsonPath, "json", "", "Write the comparison report as JSON to this file")

	rootCmd.AddCommand(compareCmd)
}
