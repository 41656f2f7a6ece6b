package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/vinser/asciipath/internal/state"
)

const timeFormat = "2006-01-02 15:04:05"

func (e *env) historyCmd() *cobra.Command {
	var wipe bool
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the maps walked before",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h := state.Load(e.history...)
			if wipe {
				h.Clear()
				if err := h.Save(); err != nil {
					return err
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "history cleared")
				return err
			}
			if len(h.Entries) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "no maps walked yet")
				return err
			}
			writeHistory(cmd.OutOrStdout(), h.Entries)
			return nil
		},
	}
	cmd.Flags().BoolVar(&wipe, "clear", false, "forget all walks")
	return cmd
}

func writeHistory(w io.Writer, entries []state.Entry) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"time", "map", "status", "letters", "errors"})
	table.SetAutoWrapText(false)
	for _, en := range entries {
		status := "ok"
		if !en.OK {
			status = "failed"
		}
		table.Append([]string{en.At.Format(timeFormat), en.Name, status, en.Letters, strings.Join(en.Errors, "; ")})
	}
	table.Render()
}
