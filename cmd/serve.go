package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/schedsim/server"
)

var (
	serveAddr         string
	serveMaxProcesses int
	serveMaxTicks     int64
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the simulator over HTTP",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv := server.New(logrus.StandardLogger(),
			server.WithMaxProcesses(serveMaxProcesses),
			server.WithMaxTicks(serveMaxTicks))
		if err := srv.ListenAndServe(ctx, serveAddr); err != nil {
			logrus.Fatalf("Server failed: %v", err)
		}
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Listen address")
	serveCmd.Flags().IntVar(&serveMaxProcesses, "max-processes", server.DefaultMaxProcesses, "Maximum processes per request")
	serveCmd.Flags().Int64Var(&serveMaxTicks, "max-ticks", server.DefaultMaxTicks, "Maximum simulated horizon per request (latest arrival + total burst)")

	rootCmd.AddCommand(serveCmd)
}
