package cli

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vinser/asciipath/internal/batch"
	"github.com/vinser/asciipath/internal/config"
	"github.com/vinser/asciipath/internal/embeddata"
	"github.com/vinser/asciipath/internal/loader"
	"github.com/vinser/asciipath/internal/progress"
	"github.com/vinser/asciipath/internal/report"
	"github.com/vinser/asciipath/internal/result"
	"github.com/vinser/asciipath/internal/state"
	"github.com/vinser/asciipath/internal/tally"
	"github.com/vinser/asciipath/internal/walk"
)

type walkOpts struct {
	samples bool
}

// ErrFailedMaps is returned by a strict walk when any map failed.
var ErrFailedMaps = errors.New("maps failed")

func (e *env) walkCmd() *cobra.Command {
	var opts walkOpts
	cmd := &cobra.Command{
		Use:   "walk [paths...]",
		Short: "Walk maps and report path and letters",
		Long: `Walk every map file given, every regular file in every directory given,
and stdin for "-". Without paths the maps from the config file are walked.`,
		Example: `asciipath walk maps/
asciipath walk --samples --format table
cat map.txt | asciipath walk -`,
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := e.walkMaps(cmd, args, opts.samples)
			if err != nil {
				return err
			}
			if err := report.Write(cmd.OutOrStdout(), e.cfg.Format, results); err != nil {
				return err
			}
			e.record(results)
			t := tally.Of(results)
			if e.cfg.Strict && t.Failed() > 0 {
				return errors.Wrapf(ErrFailedMaps, "%d of %d", t.Failed(), t.Total())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&opts.samples, "samples", false, "walk the built-in sample maps")
	cmd.Flags().StringP(config.KeyFormat, "f", string(report.FormatText), "report format: text, json, yaml or table")
	cmd.Flags().IntP(config.KeyWorkers, "w", 0, "maps walked at the same time (default GOMAXPROCS)")
	cmd.Flags().Bool(config.KeyProgress, false, "show a progress bar on stderr")
	cmd.Flags().Bool(config.KeyStrict, false, "exit non-zero when any map fails")
	walkFlags(cmd)
	return cmd
}

// walkFlags adds the flags shared by every command that walks maps.
func walkFlags(cmd *cobra.Command) {
	cmd.Flags().Int(config.KeyMaxSteps, 0, "step limit per map (default from the map size)")
	cmd.Flags().Bool(config.KeyHistory, true, "remember the walks in the history")
}

// loadMaps resolves the maps to walk: the samples, the given paths, or the
// maps from the config.
func (e *env) loadMaps(ctx context.Context, args []string, samples bool) ([]loader.Map, error) {
	if samples {
		return loader.FromFS(ctx, embeddata.Samples(), ".")
	}
	paths := args
	if len(paths) == 0 {
		paths = e.cfg.Maps
	}
	if len(paths) == 0 {
		return nil, errors.New("no maps given, pass paths, - for stdin or --samples")
	}
	return loader.New(e.stdin).Load(ctx, paths...)
}

func (e *env) walkMaps(cmd *cobra.Command, args []string, samples bool) ([]*result.Result, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	maps, err := e.loadMaps(ctx, args, samples)
	if err != nil {
		return nil, err
	}

	runOpts := []batch.Option{
		batch.WithWorkers(e.cfg.Workers),
		batch.WithWalkOptions(walk.WithMaxSteps(e.cfg.MaxSteps)),
	}
	if e.cfg.Progress {
		bar := progress.New(cmd.ErrOrStderr(), len(maps), "walking maps")
		runOpts = append(runOpts, batch.WithProgress(bar))
	}
	return batch.New(runOpts...).Run(ctx, maps)
}

// record appends results to the history unless disabled. A history that
// cannot be saved is not fatal.
func (e *env) record(results []*result.Result) {
	if !e.cfg.History || len(results) == 0 {
		return
	}
	if err := state.Load(e.history...).RecordAndSave(results...); err != nil {
		logrus.WithError(err).Warn("failed to save history")
	}
}
