package main

import (
	"errors"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/fugo-app/nictags/internal/parser"
	"github.com/fugo-app/nictags/internal/report"
)

var Version = "0.0.0"

var outputFormat string

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "nictags <file>",
		Short:         "Print the NIC tags defined in a tag cache or usb config file",
		Version:       Version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := report.CheckFormat(outputFormat); err != nil {
				return err
			}

			table, err := report.Load(args[0])
			if err != nil {
				return err
			}

			return report.Write(cmd.OutOrStdout(), table, outputFormat)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", report.FormatTable, "Output format: table or yaml")
	rootCmd.AddCommand(newWatchCmd())

	return rootCmd
}

// logError prints err and the hint of an invalid line, if any.
func logError(logger *log.Logger, err error) {
	logger.Println("error:", err)

	var lineErr *parser.InvalidLineError
	if errors.As(err, &lineErr) && lineErr.Hint != "" {
		logger.Println(lineErr.Hint)
	}
}

func main() {
	log.SetFlags(0)

	if err := newRootCmd().Execute(); err != nil {
		logError(log.Default(), err)
		os.Exit(1)
	}
}
