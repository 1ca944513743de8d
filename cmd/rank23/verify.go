// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"errors"
	"io"
	"time"

	"github.com/katalvlaran/rank23/verify"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// errVerifyFailed is returned when the report holds at least one failed check.
var errVerifyFailed = errors.New("verification failed")

func newVerifyCmd(a *app) *cobra.Command {
	cfg := verify.DefaultConfig()
	format := newChoice(formatText, "format", formatText, formatJSON, formatYAML)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check the scheme against the naive product on random inputs",
		Long: `verify runs the fixed scenarios, randomized trials over int64, Z/mZ,
float64 and Z[x], a purity check and an operation count, then prints a
report. The exit status is non-zero when any check fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rep, err := verify.Run(cmd.Context(), cfg, a.logger)
			if err != nil {
				return err
			}
			if err := writeReport(cmd.OutOrStdout(), format.String(), rep); err != nil {
				return err
			}
			if !rep.Passed {
				return errVerifyFailed
			}
			return nil
		},
	}

	fl := cmd.Flags()
	fl.IntVarP(&cfg.Trials, "trials", "n", cfg.Trials, "randomized trials per check")
	fl.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "base seed")
	fl.Int64Var(&cfg.Min, "min", cfg.Min, "smallest sampled entry")
	fl.Int64Var(&cfg.Max, "max", cfg.Max, "largest sampled entry")
	fl.Uint64Var(&cfg.Modulus, "modulus", cfg.Modulus, "modulus of the residue-ring check")
	fl.Float64Var(&cfg.FloatTolerance, "tolerance", cfg.FloatTolerance, "relative and absolute float64 tolerance")
	fl.IntVarP(&cfg.Workers, "workers", "w", cfg.Workers, "goroutines running trials")
	fl.VarP(format, "format", "o", "report format (text|json|yaml)")

	return cmd
}

func writeReport(w io.Writer, format string, rep verify.Report) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return err
		}
		return enc.Close()
	default:
		return writeText(w, rep)
	}
}

func writeText(w io.Writer, rep verify.Report) error {
	p := message.NewPrinter(language.English)
	title := cases.Title(language.English)

	if _, err := p.Fprintf(w, "run %s (seed %d, range [%d, %d], mod %d)\n",
		rep.RunID, rep.Config.Seed, rep.Config.Min, rep.Config.Max, rep.Config.Modulus); err != nil {
		return err
	}
	for _, c := range rep.Checks {
		status := "ok"
		if !c.Passed() {
			status = "FAIL"
		}
		p.Fprintf(w, "  %-8s %-4s %8d trials %6d failures\n", title.String(c.Name), status, c.Trials, c.Failures)
		if f := c.FirstFailure; f != nil {
			p.Fprintf(w, "    trial %d: %s\n    A:\n%s    B:\n%s    got:\n%s    want:\n%s",
				f.Trial, f.Note, f.A, f.B, f.Got, f.Want)
		}
	}
	p.Fprintf(w, "counts: %s\n", rep.Counts)

	verdict := "PASS"
	if !rep.Passed {
		verdict = "FAIL"
	}
	_, err := p.Fprintf(w, "%s: %d trials in %v\n", verdict, rep.TotalTrials(), rep.Elapsed.Round(time.Millisecond))
	return err
}
