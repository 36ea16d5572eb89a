// Command unmult recovers straight-alpha pixels from premultiplied images.
//
// Usage:
//
//	unmult apply -i premultiplied.png -o straight.png
//	unmult apply -i frame.bgra.zst -o frame.bgra --kernel scalar
//	unmult info
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ajroetker/go-unmult/cmd/unmult/cmd"
	"github.com/ajroetker/go-unmult/internal/logging"
)

var (
	GitSHA string = "NA"
)

func main() {
	ctx, cnc := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cnc()

	slog.SetDefault(logging.Logger(os.Stderr, false, slog.LevelInfo))
	ctx = logging.AppendCtx(ctx,
		slog.Group("unmult",
			slog.String("git", GitSHA),
		))
	if err := cmd.NewRoot(ctx, GitSHA).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
