package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ajroetker/go-unmult/hwy/contrib/unmult"
	"github.com/ajroetker/go-unmult/hwy/contrib/workerpool"
	"github.com/ajroetker/go-unmult/internal/imageio"
	"github.com/spf13/cobra"
)

type applyOptions struct {
	in, out  string
	kernel   string
	schedule string
	workers  int
	batch    int
}

// NewApplyCmd creates the apply command.
func NewApplyCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply [in] [out]",
		Short: "Un-premultiply an image",
		Long: "Reads a premultiplied image (png, bmp, tiff, webp, .bgra or .bgra.zst), " +
			"reconstructs straight colour and alpha for every pixel and writes the result " +
			"(png, bmp, tiff, .bgra or .bgra.zst).",
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := cmd.Flags()
			var opts applyOptions
			opts.in, _ = f.GetString("in")
			opts.out, _ = f.GetString("out")
			opts.kernel, _ = f.GetString("kernel")
			opts.schedule, _ = f.GetString("schedule")
			opts.workers, _ = f.GetInt("workers")
			opts.batch, _ = f.GetInt("batch")

			if opts.in == "" && len(args) > 0 {
				opts.in = args[0]
			}
			if opts.out == "" && len(args) > 1 {
				opts.out = args[1]
			}
			if opts.in == "" || opts.out == "" {
				return fmt.Errorf("input and output paths are required. Use --in/--out or provide them as arguments")
			}
			return runApply(cmd.Context(), opts)
		},
	}

	pf := cmd.Flags()
	pf.StringP("in", "i", "", "Premultiplied input file")
	pf.StringP("out", "o", "", "Straight-alpha output file")
	pf.String("kernel", "auto", "Kernel to use (auto|scalar|vector)")
	pf.String("schedule", "static", "Work distribution across workers (static|batched)")
	pf.Int("workers", 0, "Worker goroutines (0 = GOMAXPROCS)")
	pf.Int("batch", unmult.DefaultBatchPixels, "Pixels per batch for --schedule batched")
	return cmd
}

func selectKernel(name string) (unmult.Kernel, string, error) {
	if name == "" || name == "auto" {
		d := unmult.Default()
		return d.Resolve(), d.KernelName(), nil
	}
	k, err := unmult.KernelByName(name)
	if err != nil {
		return nil, "", err
	}
	return k, name, nil
}

func runApply(ctx context.Context, opts applyOptions) error {
	kernel, kernelName, err := selectKernel(opts.kernel)
	if err != nil {
		return err
	}
	if opts.schedule != "static" && opts.schedule != "batched" {
		return fmt.Errorf("unknown schedule %q (want static or batched)", opts.schedule)
	}

	frame, err := imageio.ReadFile(opts.in)
	if err != nil {
		return fmt.Errorf("read %s: %w", opts.in, err)
	}

	pool := workerpool.New(opts.workers)
	defer pool.Close()

	px := unmult.AsPixels(frame.Pix)
	start := time.Now()
	switch opts.schedule {
	case "batched":
		unmult.ApplyBatched(pool, kernel, px, frame.Width, frame.Height, opts.batch)
	default:
		unmult.Apply(pool, kernel, px, frame.Width, frame.Height)
	}
	elapsed := time.Since(start)

	if err := imageio.WriteFile(opts.out, frame); err != nil {
		return fmt.Errorf("write %s: %w", opts.out, err)
	}

	slog.InfoContext(ctx, "unmult applied",
		slog.String("in", opts.in),
		slog.String("out", opts.out),
		slog.Int("width", frame.Width),
		slog.Int("height", frame.Height),
		slog.String("kernel", kernelName),
		slog.String("schedule", opts.schedule),
		slog.Int("workers", pool.NumWorkers()),
		slog.Duration("elapsed", elapsed))
	return nil
}
