// Command colslc emits the whitespace-delimited columns of a text
// stream selected by index filters, e.g.
//
//	docker images | colslc -f 1:2
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
		Use:     "colslc [filepath]",
		Short:   "Select columns of a text stream by field number",
		Long:    "colslc splits each line of a file or stdin on whitespace and emits\nthe fields whose 1-based index matches a filter, space-joined. Without\nfilters every line passes through unmodified.",
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

			if err := slicer.NewColSlicer(filters).Slice(cmd.OutOrStdout(), input); err != nil {
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
