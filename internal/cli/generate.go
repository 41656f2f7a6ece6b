package cli

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vinser/asciipath/internal/generate"
)

type generateOpts struct {
	seed    int64
	width   int
	height  int
	letters int
	output  string
}

func (e *env) generateCmd() *cobra.Command {
	var opts generateOpts
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Draw a random walkable map",
		Long: `Draw a random map from the solution of a generated maze. The map is walked
before it is printed, so it always reaches its end marker.`,
		Example: `asciipath generate --seed 42 --letters 6
asciipath generate -o map.txt && asciipath walk map.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := generate.New(generate.Options{
				Seed:    opts.seed,
				Width:   opts.width,
				Height:  opts.height,
				Letters: opts.letters,
			})
			if err != nil {
				return err
			}
			logrus.WithFields(logrus.Fields{
				"seed":    m.Seed,
				"letters": m.Letters,
			}).Info("map generated")

			if opts.output != "" {
				return writeMapFile(opts.output, m.Text)
			}
			if _, err := io.WriteString(cmd.OutOrStdout(), m.Text); err != nil {
				return errors.Wrap(err, "failed to write map")
			}
			return nil
		},
	}
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "random seed (default from the clock)")
	cmd.Flags().IntVar(&opts.width, "width", generate.DefaultWidth, "maze width, rounded up to odd")
	cmd.Flags().IntVar(&opts.height, "height", generate.DefaultHeight, "maze height, rounded up to odd")
	cmd.Flags().IntVar(&opts.letters, "letters", generate.DefaultLetters, "letters placed on the path")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the map to this file instead of stdout")
	return cmd
}

// writeMapFile writes text to path. A failed close is reported, since it
// may be the write that failed.
func writeMapFile(path, text string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	if _, err := io.WriteString(f, text); err != nil {
		f.Close()
		return errors.Wrapf(err, "failed to write %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "failed to close %s", path)
	}
	return nil
}
