// Command katas reads puzzle instances, one per line, solves them in
// parallel and prints one answer per instance in input order.
//
//	katas -file puzzles.txt -workers 4
//	echo "bridge 1 2 5 10" | katas
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/katalvlaran/katas/batch"
)

func main() {
	file := flag.String("file", "", "The file to read puzzles from (default stdin)")
	workers := flag.Int("workers", 0, "Puzzles solved concurrently (0 = number of CPUs)")
	timeout := flag.Duration("timeout", time.Minute, "Deadline for the whole run")
	verbose := flag.Bool("v", false, "Log per-puzzle timing")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(*file, *workers, *timeout, os.Stdout, logger); err != nil {
		logger.Error("run failed", "err", err)
		os.Exit(1)
	}
}

func run(file string, workers int, timeout time.Duration, w io.Writer, logger *slog.Logger) error {
	in := io.Reader(os.Stdin)
	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	problems, err := batch.ParseAll(in)
	if err != nil {
		return err
	}
	logger.Debug("parsed puzzles", "count", len(problems), "workers", workers)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	began := time.Now()
	outcomes, err := batch.Run(ctx, problems, workers)
	if err != nil {
		return err
	}

	failed := 0
	for i, o := range outcomes {
		logger.Debug("solved", "index", i, "kind", o.Problem.Kind(), "elapsed", o.Elapsed)
		if o.Err != nil {
			failed++
			fmt.Fprintf(w, "%s\terror: %v\n", o.Problem.Kind(), o.Err)
			continue
		}
		fmt.Fprintf(w, "%s\t%d\n", o.Problem.Kind(), o.Answer)
	}
	logger.Info("done", "puzzles", len(outcomes), "failed", failed, "elapsed", time.Since(began))
	if failed > 0 {
		return fmt.Errorf("%d of %d puzzles failed", failed, len(outcomes))
	}

	return nil
}
