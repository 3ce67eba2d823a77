// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Element types accepted by --type.
const (
	TypeInt   = "int"
	TypeFloat = "float"
)

// ValidTypes defines the allowed element types.
var ValidTypes = []string{TypeInt, TypeFloat}

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Dim     int    // vector length or matrix dimension
	Type    string // "int" | "float"
}

// NewRootCommand creates the root command for the tmatrix CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "tmatrix",
		Short: "tmatrix - dense vector and square matrix arithmetic",
		Long: `Read vectors and square matrices as whitespace-separated text and
apply arithmetic to them. Operands are file paths or "-" for stdin;
several "-" operands are read one after another from the same stream.
Input left over after the last operand is an error.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidType(opts.Type) {
				return WrapExitError(ExitCommandError,
					fmt.Sprintf("invalid type %q: must be one of %v", opts.Type, ValidTypes), nil)
			}
			if opts.Dim < 0 {
				return WrapExitError(ExitCommandError,
					fmt.Sprintf("invalid dim %d: must not be negative", opts.Dim), nil)
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output on stderr")
	cmd.PersistentFlags().IntVarP(&opts.Dim, "dim", "n", 0, "vector length / matrix dimension (required)")
	cmd.PersistentFlags().StringVarP(&opts.Type, "type", "t", TypeInt, "element type (int|float)")
	_ = cmd.MarkPersistentFlagRequired("dim")

	// Add subcommands
	cmd.AddCommand(NewVectorCommand(opts))
	cmd.AddCommand(NewMatrixCommand(opts))

	return cmd
}

// isValidType checks if the element type is one of the allowed values.
func isValidType(t string) bool {
	for _, v := range ValidTypes {
		if v == t {
			return true
		}
	}
	return false
}

// checkDim rejects a --dim above the bound of the command group
// (vector.MaxLen for vectors, matrix.MaxDim for matrices).
func checkDim(dim, bound int) error {
	if dim > bound {
		return WrapExitError(ExitCommandError,
			fmt.Sprintf("invalid dim %d: must be in [0, %d]", dim, bound), nil)
	}
	return nil
}

// newFormatter builds the formatter for a command invocation.
func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}
