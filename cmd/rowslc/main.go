// Command rowslc emits the rows of a text stream selected by index
// filters, e.g.
//
//	docker images | rowslc -f 1 -f 3:5
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jaceys/slices/filter"
	"github.com/jaceys/slices/internal/slicer"
)

const version = "1.0.0"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var exprs []string

	cmd := &cobra.Command{
		Use:     "rowslc [filepath]",
		Short:   "Select rows of a text stream by line number",
		Long:    "rowslc reads lines from a file or stdin and emits, unmodified, those\nwhose 1-based line number matches a filter. Without filters every line\nis emitted.",
		Version: version,
		Args:    cobra.MaximumNArgs(1),

		SilenceUsage:  true,
		SilenceErrors: true,

		RunE: func(cmd *cobra.Command, args []string) error {
			filters, err := filter.ParseSet(exprs...)
			if err != nil {
				return err
			}

			input, closeInput, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer closeInput()

			if err := slicer.NewRowSlicer(filters).Slice(cmd.OutOrStdout(), input); err != nil {
				return fmt.Errorf("slice operation failed: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&exprs, "filters", "f", nil, "filters to be applied (N, N:M, N:, :M or :)")

	return cmd
}

// openInput resolves the optional filepath argument; "-" or no
// argument means stdin.
func openInput(cmd *cobra.Command, args []string) (io.Reader, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open file %s: %w", args[0], err)
	}
	return f, func() { f.Close() }, nil
}
