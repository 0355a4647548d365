package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lmittmann/tint"
	"github.com/san-kum/entropic/internal/config"
	"github.com/spf13/cobra"
)

var (
	logLevel string
	logFile  string
	logOut   io.Writer = os.Stderr
)

// main registers the commands and runs the root command. With no subcommand
// the interactive window opens with the configured backend.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		slog.Error("command failed", "err", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	run := &runOptions{}
	rootCmd := &cobra.Command{
		Use:           "entropic",
		Short:         "strange attractor particle visualizer",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := openLog(); err != nil {
				return err
			}
			return setupLogging(logLevel, "")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run.execute(cmd, args)
		},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")
	run.register(rootCmd)

	rootCmd.AddCommand(
		newRunCmd(),
		newTraceCmd(),
		newLyapunovCmd(),
		newBifurcationCmd(),
		newSnapshotCmd(),
		newPresetsCmd(),
		newConfigCmd(),
	)
	return rootCmd
}

// openLog opens --log-file, if given, for the lifetime of the command.
func openLog() error {
	logOut = os.Stderr
	if logFile == "" {
		return nil
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	cobra.OnFinalize(func() { f.Close() })
	logOut = f
	return nil
}

// setupLogging installs a tint handler as the default logger. The terminal
// backend owns stderr, so without --log-file it logs nowhere.
func setupLogging(level, backend string) error {
	lvl, err := config.ParseLevel(level)
	if err != nil {
		return err
	}
	w := logOut
	if logFile == "" && backend == config.BackendTUI {
		w = io.Discard
	}
	slog.SetDefault(slog.New(tint.NewHandler(w, &tint.Options{
		Level:      lvl,
		TimeFormat: "15:04:05",
		NoColor:    logFile != "",
	})))
	return nil
}
