// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/rank23/rank23"
	"github.com/katalvlaran/rank23/ring"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// maxDepth keeps 27^depth within int64.
const maxDepth = 13

func newCountCmd(a *app) *cobra.Command {
	var depth int

	cmd := &cobra.Command{
		Use:   "count",
		Short: "Print the measured operation counts of both schemes",
		Long: `count runs one product through a counting ring and prints the
multiplications and additions used by the rank-23 scheme and by the naive
product. With --depth > 1 it also prints the scalar multiplications of
an n×n product with n = 3^depth, split recursively down to 1×1 leaves.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if depth < 1 || depth > maxDepth {
				return fmt.Errorf("--depth must be in [1, %d]", maxDepth)
			}
			a.logger.Debug("counting", "depth", depth)
			return writeCounts(cmd.OutOrStdout(), rank23.Count(), rank23.CountNaive(), depth)
		},
	}
	cmd.Flags().IntVar(&depth, "depth", 1, "recursion depth for the scalar multiplication estimate")

	return cmd
}

func writeCounts(w io.Writer, fast, naive ring.OpCounts, depth int) error {
	p := message.NewPrinter(language.English)
	p.Fprintf(w, "%-6s %4s %4s %4s %4s %6s\n", "scheme", "mul", "add", "sub", "neg", "total")
	for _, row := range []struct {
		name string
		c    ring.OpCounts
	}{{"rank23", fast}, {"naive", naive}} {
		p.Fprintf(w, "%-6s %4d %4d %4d %4d %6d\n", row.name, row.c.Muls, row.c.Adds, row.c.Subs, row.c.Negs, row.c.Total())
	}

	n, fastMuls, naiveMuls := int64(1), int64(1), int64(1)
	for i := 0; i < depth; i++ {
		n *= 3
		fastMuls *= fast.Muls
		naiveMuls *= naive.Muls
	}
	if depth > 1 {
		p.Fprintf(w, "n=%d: %d vs %d scalar multiplications\n", n, fastMuls, naiveMuls)
	}

	return nil
}
