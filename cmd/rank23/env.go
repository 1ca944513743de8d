// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"runtime"

	"github.com/katalvlaran/rank23/rank23"
	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"
)

// feature is one CPU capability reported by golang.org/x/sys/cpu.
type feature struct {
	name string
	has  bool
}

func newEnvCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Print the runtime and CPU features the benchmarks ran on",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.logger.Debug("reporting environment", "goarch", runtime.GOARCH)
			return writeEnv(cmd.OutOrStdout())
		},
	}
}

func writeEnv(w io.Writer) error {
	fmt.Fprintf(w, "GOOS:       %s\n", runtime.GOOS)
	fmt.Fprintf(w, "GOARCH:     %s\n", runtime.GOARCH)
	fmt.Fprintf(w, "NumCPU:     %d\n", runtime.NumCPU())
	fmt.Fprintf(w, "GOMAXPROCS: %d\n", runtime.GOMAXPROCS(0))
	fmt.Fprintf(w, "Go:         %s\n", runtime.Version())

	opts := rank23.NewOptions()
	fmt.Fprintf(w, "batch:      workers=%d chunk=%d leaf=%d\n", opts.Workers(), opts.ChunkSize(), opts.LeafSize())

	feats := cpuFeatures(runtime.GOARCH)
	if len(feats) == 0 {
		return nil
	}
	fmt.Fprintf(w, "\n=== golang.org/x/sys/cpu (%s) ===\n", runtime.GOARCH)
	for _, f := range feats {
		if _, err := fmt.Fprintf(w, "  %-10s %v\n", f.name, f.has); err != nil {
			return err
		}
	}

	return nil
}

// cpuFeatures lists the SIMD features relevant to arithmetic kernels.
// Architectures without a table return nil.
func cpuFeatures(goarch string) []feature {
	switch goarch {
	case "amd64", "386":
		return []feature{
			{"SSE2", cpu.X86.HasSSE2},
			{"SSE41", cpu.X86.HasSSE41},
			{"SSE42", cpu.X86.HasSSE42},
			{"AVX", cpu.X86.HasAVX},
			{"AVX2", cpu.X86.HasAVX2},
			{"FMA", cpu.X86.HasFMA},
			{"AVX512F", cpu.X86.HasAVX512F},
			{"BMI2", cpu.X86.HasBMI2},
		}
	case "arm64":
		return []feature{
			{"ASIMD", cpu.ARM64.HasASIMD},
			{"FP", cpu.ARM64.HasFP},
			{"ASIMDHP", cpu.ARM64.HasASIMDHP},
			{"SVE", cpu.ARM64.HasSVE},
			{"SVE2", cpu.ARM64.HasSVE2},
			{"ATOMICS", cpu.ARM64.HasATOMICS},
		}
	}

	return nil
}
