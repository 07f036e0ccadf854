package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/schedsim/sim/workload"
)

var (
	sampleProcRoot string
	sampleLimit    int
	sampleSeed     int64

	generateCfg  = workload.DefaultGeneratorConfig()
	generateSeed int64
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Write a workload sampled from the live process table",
	Long: "Read up to --limit processes from the proc filesystem, map their nice values to priorities " +
		"and draw burst and arrival times at random. Output is written to stdout as workload YAML.",
	Run: func(cmd *cobra.Command, args []string) {
		specs, err := workload.SampleProcFSSeeded(sampleProcRoot, sampleLimit, sampleSeed)
		if err != nil {
			logrus.Fatalf("Failed to sample processes: %v", err)
		}
		if len(specs) == 0 {
			logrus.Warnf("No readable processes under %s", sampleProcRoot)
		}
		if err := workload.WriteWorkload(cmd.OutOrStdout(), specs); err != nil {
			logrus.Fatalf("Failed to write workload: %v", err)
		}
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write a random synthetic workload",
	Long:  "Generate --count processes with uniform burst, arrival and priority draws. Output is written to stdout as workload YAML.",
	Run: func(cmd *cobra.Command, args []string) {
		specs, err := workload.GenerateSeeded(generateCfg, generateSeed)
		if err != nil {
			logrus.Fatalf("Failed to generate workload: %v", err)
		}
		if err := workload.WriteWorkload(cmd.OutOrStdout(), specs); err != nil {
			logrus.Fatalf("Failed to write workload: %v", err)
		}
	},
}

func init() {
	sampleCmd.Flags().StringVar(&sampleProcRoot, "proc", workload.DefaultProcRoot, "Mount point of the proc filesystem")
	sampleCmd.Flags().IntVar(&sampleLimit, "limit", 10, "Maximum number of processes to sample (0 = all)")
	sampleCmd.Flags().Int64Var(&sampleSeed, "seed", 42, "Seed for burst and arrival draws")

	generateCmd.Flags().IntVarP(&generateCfg.Count, "count", "n", generateCfg.Count, "Number of processes")
	generateCmd.Flags().Int64Var(&generateSeed, "seed", 42, "Seed for random draws")
	generateCmd.Flags().Int64Var(&generateCfg.Burst.Min, "burst-min", generateCfg.Burst.Min, "Minimum burst time")
	generateCmd.Flags().Int64Var(&generateCfg.Burst.Max, "burst-max", generateCfg.Burst.Max, "Maximum burst time")
	generateCmd.Flags().Int64Var(&generateCfg.Arrival.Min, "arrival-min", generateCfg.Arrival.Min, "Minimum arrival time")
	generateCmd.Flags().Int64Var(&generateCfg.Arrival.Max, "arrival-max", generateCfg.Arrival.Max, "Maximum arrival time")
	generateCmd.Flags().Int64Var(&generateCfg.Priority.Min, "priority-min", generateCfg.Priority.Min, "Minimum priority")
	generateCmd.Flags().Int64Var(&generateCfg.Priority.Max, "priority-max", generateCfg.Priority.Max, "Maximum priority")

	rootCmd.AddCommand(sampleCmd, generateCmd)
}
