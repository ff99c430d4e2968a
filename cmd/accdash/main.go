// Package main is the entry point for the accdash CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	registerQuitHandler()
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "accdash <server-address>",
		Short: "ACCDash, a terminal dashboard for racing simulator telemetry",
		Long: `ACCDash connects to a telemetry bridge over UDP, requests the data feed
and draws live gauges in the terminal. The server address is host or
host:port; network.peer_port is used when the port is omitted.`,
		Version:      version,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := runOptionsFromFlags(cmd, args[0])
			if err != nil {
				return err
			}
			return executeDashboard(opts)
		},
	}

	root.PersistentFlags().String("config", "", "config file (default: search accdash.toml upward, else built-in defaults)")
	root.Flags().String("listen", "", "override network.listen (host:port)")
	root.Flags().Bool("plain", false, "redraw frames to stdout instead of the full-screen TUI")

	root.AddCommand(
		initCmd(),
		configCmd(),
	)

	return root
}

// signalContext returns a context that is cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigs:
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigs)
	}()
	return ctx, cancel
}
