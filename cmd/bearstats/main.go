package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/zarlcorp/bearstats/internal/cli"
	"github.com/zarlcorp/core/pkg/zapp"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	app := zapp.New(zapp.WithName("bearstats"))

	ctx, cancel := zapp.SignalContext(context.Background())

	code := run(ctx, os.Args[1:])
	cancel()

	if err := app.Close(); err != nil {
		slog.Error("shutdown", "err", err)
		if code == cli.ExitOK {
			code = cli.ExitIO
		}
	}
	os.Exit(code)
}

func run(ctx context.Context, args []string) int {
	if len(args) > 0 {
		switch args[0] {
		case "version":
			fmt.Printf("bearstats %s\n", version)
			return cli.ExitOK
		case "preview":
			return cli.RunPreview(ctx, args[1:], os.Stderr)
		}
	}
	return cli.Run(ctx, args, os.Stdout, os.Stderr)
}
