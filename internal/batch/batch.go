// Package batch walks many maps at once.
package batch

import (
	"context"
	"runtime"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vinser/asciipath/internal/loader"
	"github.com/vinser/asciipath/internal/progress"
	"github.com/vinser/asciipath/internal/result"
	"github.com/vinser/asciipath/internal/walk"
)

// Runner walks maps concurrently. Results keep the order of the input.
type Runner struct {
	workers int
	bar     *progress.Bar
	opts    []walk.Option
}

// Option configures a Runner.
type Option func(*Runner)

// WithWorkers limits how many maps are walked at the same time.
// Zero or less uses GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(r *Runner) {
		r.workers = n
	}
}

// WithProgress reports every finished map to bar.
func WithProgress(bar *progress.Bar) Option {
	return func(r *Runner) {
		r.bar = bar
	}
}

// WithWalkOptions passes options to every walk.
func WithWalkOptions(opts ...walk.Option) Option {
	return func(r *Runner) {
		r.opts = append(r.opts, opts...)
	}
}

// New returns a Runner.
func New(opts ...Option) *Runner {
	r := &Runner{}
	for _, opt := range opts {
		opt(r)
	}
	if r.workers <= 0 {
		r.workers = runtime.GOMAXPROCS(0)
	}
	return r
}

// Run walks every map. A map that fails to walk does not stop the others;
// only a cancelled ctx does, in which case ctx's error is returned.
func (r *Runner) Run(ctx context.Context, maps []loader.Map) ([]*result.Result, error) {
	results := make([]*result.Result, len(maps))

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(r.workers)
	for i, m := range maps {
		i, m := i, m
		if gctx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res := walk.Walk(m.Name, m.Text, r.opts...)
			if res.HasErrors() {
				logrus.WithField("map", m.Name).Warnf("walk failed: %v", res.Errors())
			}
			results[i] = res
			r.bar.Increment()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.bar.Finish()
	return results, nil
}
