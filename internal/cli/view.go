package cli

import (
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/vinser/asciipath/internal/app"
	"github.com/vinser/asciipath/internal/result"
	"github.com/vinser/asciipath/internal/state"
)

const viewCmdName = "view"

type viewFunc func(results []*result.Result, h *state.History, in io.Reader, out io.Writer) error

func runViewer(results []*result.Result, h *state.History, in io.Reader, out io.Writer) error {
	return app.Run(results, h, tea.WithInput(in), tea.WithOutput(out))
}

// viewerLogFile returns the log file used while the viewer owns the
// terminal, or "" to keep logging to stderr.
func viewerLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "asciipath", "viewer.log")
}

func (e *env) viewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   viewCmdName + " [paths...]",
		Short: "Browse walked maps in the terminal",
		Long: `Walk the maps like the walk command and browse the results with the walked
path highlighted on each board. Without paths the sample maps are shown.`,
		Example: `asciipath view
asciipath view maps/`,
		RunE: func(cmd *cobra.Command, args []string) error {
			samples := len(args) == 0 && len(e.cfg.Maps) == 0
			results, err := e.walkMaps(cmd, args, samples)
			if err != nil {
				return err
			}
			e.record(results)
			return e.view(results, state.Load(e.history...), e.stdin, cmd.OutOrStdout())
		},
	}
	walkFlags(cmd)
	return cmd
}
