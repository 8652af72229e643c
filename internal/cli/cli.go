// Package cli implements bearstats' command-line entry points.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/zarlcorp/bearstats/internal/config"
	"github.com/zarlcorp/bearstats/internal/preview"
	"github.com/zarlcorp/bearstats/internal/record"
	"github.com/zarlcorp/bearstats/internal/sink"
	"github.com/zarlcorp/core/pkg/zstyle"
	"golang.org/x/term"
)

const name = "bearstats"

// process exit codes
const (
	ExitOK    = 0
	ExitIO    = 1
	ExitUsage = 2
)

// isTerminal reports whether stdout is an interactive terminal.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Run parses args, generates the requested rows and writes them to stdout or
// the configured file. It returns the process exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := config.Parse(name, args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return ExitOK
	}
	if err != nil {
		return fail(stderr, err)
	}

	logger := NewLogger(stderr, opts.Verbose)
	seed := seedFor(opts.Seed)
	dst := sink.ForPath(opts.Outfile, stdout)

	logger.Debug("generate", "rows", opts.Rows, "seed", seed, "dest", dst.String())

	if err := Generate(ctx, record.New(seed), opts.Rows, dst); err != nil {
		logger.Debug("generate failed", "err", err)
		return fail(stderr, err)
	}

	if dst.IsFile() {
		msg := fmt.Sprintf("wrote %d rows to %s", opts.Rows, dst)
		fmt.Fprintln(stderr, zstyle.StatusOK.Render(msg))
	}
	return ExitOK
}

// Generate draws count records from gen and emits them with the header.
func Generate(ctx context.Context, gen *record.Generator, count int, dst *sink.Sink) error {
	rows, err := gen.Generate(count)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	return dst.Emit(record.Header(), rows)
}

// RunPreview opens the interactive browser over a generated batch.
func RunPreview(_ context.Context, args []string, stderr io.Writer) int {
	opts, err := config.Parse(name+" preview", args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return ExitOK
	}
	if err != nil {
		return fail(stderr, err)
	}

	if !isTerminal() {
		return fail(stderr, errors.New("preview needs an interactive terminal"))
	}

	if err := preview.Run(record.New(seedFor(opts.Seed)), opts.Rows); err != nil {
		return fail(stderr, err)
	}
	return ExitOK
}

// NewLogger returns a text logger on w at warn level, or debug when verbose.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// ExitCode maps an error to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, config.ErrInvalidArgument), errors.Is(err, record.ErrInvalidArgument):
		return ExitUsage
	default:
		return ExitIO
	}
}

// seedFor returns seed, or a fresh non-zero seed when seed is zero so the
// run can be logged and reproduced.
func seedFor(seed int64) int64 {
	for seed == 0 {
		seed = rand.Int64()
	}
	return seed
}

func fail(stderr io.Writer, err error) int {
	fmt.Fprintf(stderr, "%s: %v\n", name, err)
	return ExitCode(err)
}
