package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"csvtable/internal/dataset"
)

// newShowCommand prints a dataset row by row.
func newShowCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Print a dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, closeStore, err := opts.openStore()
			if err != nil {
				return err
			}
			defer closeStore()

			d, err := dataset.Load(cmd.Context(), st, args[0])
			if err != nil {
				return err
			}

			// Print header, then each row.
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(d.Columns(), " | "))
			for _, row := range d.Rows() {
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(row, " | "))
			}
			return nil
		},
	}
}

// newCheckCommand loads a dataset and reports its dimensions; a shape or
// access problem comes back as the command error.
func newCheckCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check NAME",
		Short: "Validate a dataset and report its size",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, closeStore, err := opts.openStore()
			if err != nil {
				return err
			}
			defer closeStore()

			d, err := dataset.Load(cmd.Context(), st, args[0])
			if err != nil {
				return err
			}

			opts.logger.Info("dataset ok",
				zap.String("name", args[0]),
				zap.Int("columns", d.Width()),
				zap.Int("rows", d.Len()))
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d columns, %d rows\n", args[0], d.Width(), d.Len())
			return nil
		},
	}
}

// newCopyCommand reads SRC, re-serializes it through the codec, and writes
// DST, normalizing quoting along the way.
func newCopyCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "copy SRC DST",
		Short: "Copy a dataset, normalizing its encoding",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, closeStore, err := opts.openStore()
			if err != nil {
				return err
			}
			defer closeStore()

			d, err := dataset.Load(cmd.Context(), st, args[0])
			if err != nil {
				return err
			}
			if err := d.Save(cmd.Context(), st, args[1]); err != nil {
				return err
			}

			opts.logger.Info("dataset copied",
				zap.String("src", args[0]),
				zap.String("dst", args[1]),
				zap.Int("rows", d.Len()))
			return nil
		},
	}
}
