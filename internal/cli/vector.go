// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/dynmat/vector"
)

// Operation names shared by the vector and matrix command trees.
const (
	opAdd   = "add"
	opSub   = "sub"
	opDot   = "dot"
	opMul   = "mul"
	opApply = "apply"
	opScale = "scale"
)

// NewVectorCommand creates the vector command and its operations.
func NewVectorCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vector",
		Short: "Vector arithmetic on --dim long operands",
	}

	cmd.AddCommand(newVectorOpCommand(rootOpts, opAdd, "Elementwise sum A + B"))
	cmd.AddCommand(newVectorOpCommand(rootOpts, opSub, "Elementwise difference A - B"))
	cmd.AddCommand(newVectorOpCommand(rootOpts, opDot, "Dot product A · B"))
	cmd.AddCommand(newVectorScaleCommand(rootOpts))

	return cmd
}

func newVectorOpCommand(rootOpts *RootOptions, op, short string) *cobra.Command {
	return &cobra.Command{
		Use:   op + " <A> <B>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return dispatchVector(rootOpts, cmd, op, args, "")
		},
	}
}

func newVectorScaleCommand(rootOpts *RootOptions) *cobra.Command {
	var by string
	cmd := &cobra.Command{
		Use:   opScale + " <A>",
		Short: "Multiply every element of A by --by",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return dispatchVector(rootOpts, cmd, opScale, args, by)
		},
	}
	cmd.Flags().StringVar(&by, "by", "1", "scalar multiplier")

	return cmd
}

func dispatchVector(opts *RootOptions, cmd *cobra.Command, op string, args []string, by string) error {
	if err := checkDim(opts.Dim, vector.MaxLen); err != nil {
		return err
	}
	if opts.Type == TypeFloat {
		return runVectorOp[float64](opts, cmd, op, args, by)
	}
	return runVectorOp[int64](opts, cmd, op, args, by)
}

func runVectorOp[T vector.Number](opts *RootOptions, cmd *cobra.Command, op string, args []string, by string) error {
	f := newFormatter(opts, cmd)
	src := newOperandSource(cmd.InOrStdin())
	defer src.Close()

	a, err := readVector[T](src, f, args[0], opts.Dim)
	if err != nil {
		return err
	}

	if op == opScale {
		k, err := parseScalar[T](by)
		if err != nil {
			return err
		}
		if err := src.finish(); err != nil {
			return err
		}
		f.VerboseLog("vector %s by %v", op, k)
		return f.Result(a.MulScalar(k), true)
	}

	b, err := readVector[T](src, f, args[1], opts.Dim)
	if err != nil {
		return err
	}
	if err := src.finish(); err != nil {
		return err
	}
	f.VerboseLog("vector %s", op)

	switch op {
	case opDot:
		d, err := a.Dot(b)
		if err != nil {
			return WrapExitError(ExitFailure, "vector "+op, err)
		}
		return f.Scalar(d)
	case opSub:
		r, err := a.Sub(b)
		if err != nil {
			return WrapExitError(ExitFailure, "vector "+op, err)
		}
		return f.Result(r, true)
	default:
		r, err := a.Add(b)
		if err != nil {
			return WrapExitError(ExitFailure, "vector "+op, err)
		}
		return f.Result(r, true)
	}
}
