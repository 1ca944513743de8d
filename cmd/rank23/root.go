// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

// app holds the state shared by every subcommand.
type app struct {
	level  levelValue
	format *choiceValue
	logger *slog.Logger
}

// newRootCmd builds the command tree. Subcommands log through a.logger,
// which PersistentPreRunE sets up from the --log-* flags.
func newRootCmd() *cobra.Command {
	a := &app{
		level:  levelValue{level: slog.LevelWarn},
		format: newChoice(formatText, "format", formatText, formatJSON),
	}

	root := &cobra.Command{
		Use:   "rank23",
		Short: "3×3 matrix multiplication with 23 multiplications",
		Long: `rank23 multiplies 3×3 matrices with a rank-23 bilinear scheme
(23 multiplications and 60 additions or subtractions) and checks the
scheme against the naive 27-multiplication product.

Matrices are written row by row: "1,2,3;4,5,6;7,8,9".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a.logger = newLogger(cmd.ErrOrStderr(), a.format.String(), a.level.level)
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.Var(&a.level, "log-level", "minimum log level (debug|info|warn|error)")
	pf.Var(a.format, "log-format", "log encoding (text|json)")

	root.AddCommand(
		newMulCmd(a),
		newVerifyCmd(a),
		newCountCmd(a),
		newEnvCmd(a),
	)

	return root
}

func newLogger(w io.Writer, format string, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == formatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := newRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(root.ErrOrStderr(), "rank23:", err)
		os.Exit(1)
	}
}
