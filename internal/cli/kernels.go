package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/san-kum/benchlab/internal/compute"
	"github.com/san-kum/benchlab/internal/config"
	"github.com/san-kum/benchlab/internal/contract"
)

func NewFibonacciCommand(w config.FibonacciWorkload) *cobra.Command {
	return newProgram("fibonacci", "naive recursive fibonacci", func(cmd *cobra.Command) error {
		slog.Debug("fibonacci", "n", w.N)
		fmt.Fprintf(cmd.OutOrStdout(), "fibonacci(%d) = %d\n", w.N, compute.Fibonacci(w.N))
		return nil
	})
}

func NewBinaryTreesCommand(w config.BinaryTreesWorkload) *cobra.Command {
	return newProgram("binarytrees", "allocate and check perfect binary trees", func(cmd *cobra.Command) error {
		out := cmd.OutOrStdout()

		arena := compute.NewArena(int(compute.TreeNodes(w.MaxDepth + 1)))
		res := compute.BinaryTrees(arena, w.MinDepth, w.MaxDepth)
		slog.Debug("binary trees done", "min_depth", w.MinDepth, "max_depth", w.MaxDepth, "live", arena.Live())

		fmt.Fprintf(out, "stretch tree check: %d\n", res.StretchCheck)
		for _, band := range res.Bands {
			fmt.Fprintf(out, "%d trees of depth %d check: %d\n", band.Iterations, band.Depth, band.Check)
		}
		fmt.Fprintf(out, "long lived tree check: %d\n", res.LongLivedCheck)
		return nil
	})
}

func NewBoundsCheckCommand(w config.BoundsCheckWorkload) *cobra.Command {
	return newProgram("boundscheck", "repeated bounds-checked array sums", func(cmd *cobra.Command) error {
		slog.Debug("bounds check", "size", w.Size, "iterations", w.Iterations)
		fmt.Fprintf(cmd.OutOrStdout(), "Sum: %d\n", contract.BoundsCheck(w.Size, w.Iterations))
		return nil
	})
}

func NewSpectralNormCommand(w config.SpectralNormWorkload) *cobra.Command {
	return newProgram("spectralnorm", "spectral norm by power iteration", func(cmd *cobra.Command) error {
		slog.Debug("spectral norm", "n", w.N, "iterations", w.Iterations)
		fmt.Fprintf(cmd.OutOrStdout(), "%.9f\n", compute.SpectralNorm(w.N, w.Iterations))
		return nil
	})
}

func NewMandelbrotCommand(w config.MandelbrotWorkload) *cobra.Command {
	return newProgram("mandelbrot", "count grid points inside the Mandelbrot set", func(cmd *cobra.Command) error {
		slog.Debug("mandelbrot", "size", w.Size, "max_iter", w.MaxIter)
		fmt.Fprintf(cmd.OutOrStdout(), "%d\n", compute.Mandelbrot(w.Size, w.MaxIter))
		return nil
	})
}

func NewFannkuchCommand(w config.FannkuchWorkload) *cobra.Command {
	return newProgram("fannkuch", "fannkuch-redux permutation flips", func(cmd *cobra.Command) error {
		checksum, maxFlips := compute.Fannkuch(w.N)
		fmt.Fprintf(cmd.OutOrStdout(), "%d\nPfannkuchen(%d) = %d\n", checksum, w.N, maxFlips)
		return nil
	})
}

func NewNullCheckCommand(w config.NullCheckWorkload) *cobra.Command {
	return newProgram("nullcheck", "optional-valued chain division", func(cmd *cobra.Command) error {
		slog.Debug("null check", "iterations", w.Iterations)
		fmt.Fprintf(cmd.OutOrStdout(), "%d\n", contract.NullCheck(w.Iterations))
		return nil
	})
}
