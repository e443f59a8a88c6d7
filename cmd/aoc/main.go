// Command aoc runs the puzzle solvers against input files.
//
// Usage:
//
//	aoc [-day N] [-input FILE] [-data-dir DIR] [-repeat N] [-log-level LEVEL] [-log-format text|json]
//
// Answers are printed to stdout, one line per day. Logs go to stderr.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := realMain(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// realMain wires flags, logging and the registry, returning the exit code.
func realMain(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := ParseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	log, err := newLogger(cfg, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	reg, err := newRegistry()
	if err != nil {
		log.WithError(err).Error("registry setup failed")
		return 1
	}

	r := &runner{cfg: cfg, reg: reg, log: log, out: stdout}
	if err := r.run(ctx); err != nil {
		log.WithError(err).Error("run failed")
		return 1
	}
	return 0
}
