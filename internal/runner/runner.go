// Package runner solves registered days against their sample and real inputs.
package runner

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/ilyalavrinov/justforfun/adventofcode2024/internal/config"
	"github.com/ilyalavrinov/justforfun/adventofcode2024/internal/inputs"
	"github.com/ilyalavrinov/justforfun/adventofcode2024/internal/puzzle"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Runner struct {
	cfg      config.Config
	registry *puzzle.Registry
	store    inputs.Store
	logger   *zap.Logger
}

func New(cfg config.Config, registry *puzzle.Registry, store inputs.Store, logger *zap.Logger) *Runner {
	return &Runner{
		cfg:      cfg,
		registry: registry,
		store:    store,
		logger:   logger,
	}
}

// Solve computes both parts of a day on the sample and on the real input.
func (r *Runner) Solve(ctx context.Context, day int) (puzzle.Answers, error) {
	solver, err := r.registry.Lookup(day)
	if err != nil {
		return puzzle.Answers{}, err
	}
	input, err := r.store.Load(ctx, day)
	if err != nil {
		return puzzle.Answers{}, err
	}
	if err := ctx.Err(); err != nil {
		return puzzle.Answers{}, err
	}

	started := time.Now()
	var answers puzzle.Answers
	steps := []struct {
		name  string
		part  func(string) (int, error)
		input string
		dest  *int
	}{
		{"part 1 (sample)", solver.Part1, solver.Sample(), &answers.Part1Sample},
		{"part 2 (sample)", solver.Part2, solver.Sample(), &answers.Part2Sample},
		{"part 1", solver.Part1, input, &answers.Part1},
		{"part 2", solver.Part2, input, &answers.Part2},
	}
	for _, step := range steps {
		val, err := step.part(step.input)
		if err != nil {
			return puzzle.Answers{}, fmt.Errorf("day %02d %s: %w", day, step.name, err)
		}
		*step.dest = val
	}
	r.logger.Debug("day solved", zap.Int("day", day), zap.Duration("took", time.Since(started)))
	return answers, nil
}

// Run solves one day and prints its answers if printing is enabled.
func (r *Runner) Run(ctx context.Context, day int, w io.Writer) error {
	answers, err := r.Solve(ctx, day)
	if err != nil {
		return err
	}
	return r.print(w, answers)
}

// RunAll solves the given days, all registered days if none given. Days are solved
// concurrently but printed in the order given.
func (r *Runner) RunAll(ctx context.Context, w io.Writer, days ...int) error {
	if len(days) == 0 {
		days = r.registry.Days()
	}
	results := make([]puzzle.Answers, len(days))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Parallelism)
	for i, day := range days {
		i, day := i, day
		g.Go(func() error {
			answers, err := r.Solve(gctx, day)
			if err != nil {
				return err
			}
			results[i] = answers
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, day := range days {
		if i > 0 && r.cfg.PrintResult {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if r.cfg.PrintResult {
			if _, err := fmt.Fprintf(w, "Day %02d\n", day); err != nil {
				return err
			}
		}
		if err := r.print(w, results[i]); err != nil {
			return err
		}
	}
	r.logger.Info("all days solved", zap.Ints("days", days))
	return nil
}

func (r *Runner) print(w io.Writer, answers puzzle.Answers) error {
	if !r.cfg.PrintResult {
		return nil
	}
	_, err := answers.WriteTo(w)
	return err
}
