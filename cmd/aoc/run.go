package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridlab/solver"
)

// runner executes selected days and prints one result line per day.
type runner struct {
	cfg Config
	reg *solver.Registry
	log *logrus.Logger
	out io.Writer
}

// run solves the configured day, or every registered day when cfg.Day is 0.
// In all-days mode a missing input file is logged and skipped.
func (r *runner) run(ctx context.Context) error {
	days := r.reg.Days()
	if r.cfg.Day != 0 {
		days = []int{r.cfg.Day}
	}
	for _, day := range days {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := r.runDay(ctx, day)
		if r.cfg.Day == 0 && errors.Is(err, fs.ErrNotExist) {
			r.log.WithField("day", day).WithError(err).Warn("input missing, skipped")
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// runDay solves one day cfg.Repeat times and reports the fastest run.
func (r *runner) runDay(ctx context.Context, day int) error {
	s, err := r.reg.Lookup(day)
	if err != nil {
		return err
	}
	path := r.cfg.InputPath(day)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("day %02d: %w", day, err)
	}
	input := string(data)

	var best solver.Result
	for i := 0; i < r.cfg.Repeat; i++ {
		res, err := solver.Run(ctx, s, input)
		if err != nil {
			return err
		}
		r.log.WithFields(logrus.Fields{
			"day":     day,
			"run":     i + 1,
			"part1":   res.Part1.Value,
			"part2":   res.Part2.Value,
			"elapsed": res.Elapsed,
		}).Debug("run finished")
		if i == 0 || res.Elapsed < best.Elapsed {
			best = res
		}
	}

	r.log.WithFields(logrus.Fields{
		"day":     day,
		"name":    best.Name,
		"input":   path,
		"repeat":  r.cfg.Repeat,
		"part1":   best.Part1.Elapsed,
		"part2":   best.Part2.Elapsed,
		"elapsed": best.Elapsed,
	}).Info("solved")
	_, err = fmt.Fprintf(r.out, "Day %02d %s: part1=%s part2=%s\n", best.Day, best.Name, best.Part1, best.Part2)
	return err
}
