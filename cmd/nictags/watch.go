package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/fugo-app/nictags/internal/report"
	"github.com/fugo-app/nictags/internal/watch"
	"github.com/fugo-app/nictags/pkg/debounce"
)

var watchDelay time.Duration

func newWatchCmd() *cobra.Command {
	watchCmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Print the NIC tags and print them again whenever the file changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runWatch(ctx, cmd, args[0])
		},
	}

	watchCmd.Flags().DurationVar(&watchDelay, "delay", 500*time.Millisecond, "Quiet period after a change before the file is read again")

	return watchCmd
}

func runWatch(ctx context.Context, cmd *cobra.Command, fname string) error {
	if err := report.CheckFormat(outputFormat); err != nil {
		return err
	}

	table, err := report.Load(fname)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := report.Write(out, table, outputFormat); err != nil {
		return err
	}

	reload := func() {
		table, err := report.Load(fname)
		if err != nil {
			slog.Error("failed to reload tags", "file", fname, "error", err)
			return
		}

		if err := report.Write(out, table, outputFormat); err != nil {
			slog.Error("failed to write tags", "file", fname, "error", err)
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	d := debounce.NewDebounce(reload, watchDelay)
	done := make(chan struct{})
	go func() {
		defer close(done)
		d.Run(ctx)
	}()

	err = watch.NewFileWatcher(fname, d.Emit).Run(ctx)

	// Let a running reload finish its report before returning
	cancel()
	<-done

	return err
}
