package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/ajroetker/go-unmult/hwy/contrib/unmult"
	"github.com/ajroetker/go-unmult/internal/logging"
	"github.com/spf13/cobra"
)

// NewRoot builds the unmult command tree.
func NewRoot(ctx context.Context, gitsha string) *cobra.Command {
	var logCloser io.Closer
	cmd := &cobra.Command{
		Use:          "unmult",
		Short:        "recover straight-alpha pixels from premultiplied images",
		Long:         "unmult un-premultiplies BGRA8 pixels and reconstructs alpha, using a vectorized kernel when the CPU supports it.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			pf := cmd.Flags()
			levelName, _ := pf.GetString("log-level")
			asJSON, _ := pf.GetBool("log-json")
			logFile, _ := pf.GetString("log-file")
			maxSize, _ := pf.GetInt("log-max-size")

			level, levelErr := logging.ParseLevel(levelName)

			var w io.Writer = cmd.ErrOrStderr()
			if logFile != "" {
				fw := logging.FileWriter(logFile, maxSize, 3)
				w, logCloser = fw, fw
			}
			logger := logging.Logger(w, asJSON, level)
			slog.SetDefault(logger)
			unmult.SetLogger(logger)

			if levelErr != nil {
				slog.WarnContext(ctx, "Invalid log level, defaulting to INFO", "level", levelName, "error", levelErr)
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if logCloser != nil {
				return logCloser.Close()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(
		NewVersionCmd(ctx, gitsha),
		NewInfoCmd(ctx),
		NewApplyCmd(ctx),
	)
	pf := cmd.PersistentFlags()
	pf.String("log-level", "INFO", "Log level (DEBUG, INFO, WARN, ERROR)")
	pf.Bool("log-json", false, "Emit logs as JSON")
	pf.String("log-file", "", "Write logs to this file (rotated) instead of stderr")
	pf.Int("log-max-size", 10, "Rotate the log file after this many megabytes")
	return cmd
}

// NewVersionCmd prints the build's git sha.
func NewVersionCmd(ctx context.Context, gitsha string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "git sha for this build",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), gitsha)
		},
	}
}
