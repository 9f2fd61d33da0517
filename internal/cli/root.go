package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// rootOptions holds global flags shared by every program.
type rootOptions struct {
	Verbose bool
}

// newProgram builds an argument-free root command. Results go to
// cmd.OutOrStdout(); logs go to cmd.ErrOrStderr().
func newProgram(use, short string, run func(cmd *cobra.Command) error) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          use,
		Short:        short,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			slog.SetDefault(newLogger(cmd.ErrOrStderr(), opts.Verbose))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	return cmd
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
