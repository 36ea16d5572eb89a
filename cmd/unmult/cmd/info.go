package cmd

import (
	"context"
	"fmt"
	"runtime"

	"github.com/ajroetker/go-unmult/hwy"
	"github.com/ajroetker/go-unmult/hwy/contrib/unmult"
	"github.com/spf13/cobra"
)

// NewInfoCmd reports the capability probe result and the bound kernel.
func NewInfoCmd(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the detected CPU level and the kernel in use",
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "cpu:        %s\n", hwy.CurrentName())
			fmt.Fprintf(w, "vector:     %t\n", hwy.HasVector())
			fmt.Fprintf(w, "no-simd:    %t\n", hwy.NoSimdEnv())
			fmt.Fprintf(w, "kernel:     %s\n", unmult.Default().KernelName())
			fmt.Fprintf(w, "gomaxprocs: %d\n", runtime.GOMAXPROCS(0))
			fmt.Fprintf(w, "export:     %s\n", unmult.Name)
		},
	}
}
