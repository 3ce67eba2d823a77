// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/dynmat/matrix"
	"github.com/katalvlaran/dynmat/vector"
)

// NewMatrixCommand creates the matrix command and its operations.
func NewMatrixCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Square matrix arithmetic on --dim x --dim operands",
	}

	cmd.AddCommand(newMatrixOpCommand(rootOpts, opAdd, "<A> <B>", "Elementwise sum A + B"))
	cmd.AddCommand(newMatrixOpCommand(rootOpts, opSub, "<A> <B>", "Elementwise difference A - B"))
	cmd.AddCommand(newMatrixOpCommand(rootOpts, opMul, "<A> <B>", "Matrix product A × B"))
	cmd.AddCommand(newMatrixOpCommand(rootOpts, opApply, "<A> <V>", "Matrix-vector product A · V"))
	cmd.AddCommand(newMatrixScaleCommand(rootOpts))

	return cmd
}

func newMatrixOpCommand(rootOpts *RootOptions, op, operands, short string) *cobra.Command {
	return &cobra.Command{
		Use:   op + " " + operands,
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return dispatchMatrix(rootOpts, cmd, op, args, "")
		},
	}
}

func newMatrixScaleCommand(rootOpts *RootOptions) *cobra.Command {
	var by string
	cmd := &cobra.Command{
		Use:   opScale + " <A>",
		Short: "Multiply every cell of A by --by",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return dispatchMatrix(rootOpts, cmd, opScale, args, by)
		},
	}
	cmd.Flags().StringVar(&by, "by", "1", "scalar multiplier")

	return cmd
}

func dispatchMatrix(opts *RootOptions, cmd *cobra.Command, op string, args []string, by string) error {
	if err := checkDim(opts.Dim, matrix.MaxDim); err != nil {
		return err
	}
	if opts.Type == TypeFloat {
		return runMatrixOp[float64](opts, cmd, op, args, by)
	}
	return runMatrixOp[int64](opts, cmd, op, args, by)
}

func runMatrixOp[T vector.Number](opts *RootOptions, cmd *cobra.Command, op string, args []string, by string) error {
	f := newFormatter(opts, cmd)
	src := newOperandSource(cmd.InOrStdin())
	defer src.Close()

	a, err := readMatrix[T](src, f, args[0], opts.Dim)
	if err != nil {
		return err
	}

	switch op {
	case opScale:
		k, err := parseScalar[T](by)
		if err != nil {
			return err
		}
		if err := src.finish(); err != nil {
			return err
		}
		f.VerboseLog("matrix %s by %v", op, k)
		return f.Result(a.MulScalar(k), false)

	case opApply:
		v, err := readVector[T](src, f, args[1], opts.Dim)
		if err != nil {
			return err
		}
		if err := src.finish(); err != nil {
			return err
		}
		f.VerboseLog("matrix %s", op)
		y, err := a.MulVec(v)
		if err != nil {
			return WrapExitError(ExitFailure, "matrix "+op, err)
		}
		return f.Result(y, true)
	}

	b, err := readMatrix[T](src, f, args[1], opts.Dim)
	if err != nil {
		return err
	}
	if err := src.finish(); err != nil {
		return err
	}
	f.VerboseLog("matrix %s", op)

	var binary func(*matrix.Matrix[T]) (*matrix.Matrix[T], error)
	switch op {
	case opSub:
		binary = a.Sub
	case opMul:
		binary = a.Mul
	default:
		binary = a.Add
	}
	r, err := binary(b)
	if err != nil {
		return WrapExitError(ExitFailure, "matrix "+op, err)
	}
	return f.Result(r, false)
}
