// Package report renders walk results for people and machines.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/vinser/asciipath/internal/result"
	"github.com/vinser/asciipath/internal/tally"
)

// Format selects how results are written.
type Format string

const (
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTable Format = "table"
)

// Formats lists the supported formats.
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatTable}

// ParseFormat normalizes s into a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("invalid format %q, use one of %v", s, Formats)
}

// Record is the serialized form of a result.
type Record struct {
	Name      string   `json:"name" yaml:"name"`
	Letters   string   `json:"letters" yaml:"letters"`
	Path      string   `json:"path" yaml:"path"`
	HasErrors bool     `json:"hasErrors" yaml:"hasErrors"`
	Errors    []string `json:"errors" yaml:"errors"`
}

// NewRecord converts r.
func NewRecord(r *result.Result) Record {
	return Record{
		Name:      r.Name(),
		Letters:   r.Letters(),
		Path:      r.Path(),
		HasErrors: r.HasErrors(),
		Errors:    r.Errors(),
	}
}

// Write renders results to w in format f.
func Write(w io.Writer, f Format, results []*result.Result) error {
	switch f {
	case FormatText:
		return writeText(w, results)
	case FormatJSON:
		return writeJSON(w, results)
	case FormatYAML:
		return writeYAML(w, results)
	case FormatTable:
		return writeTable(w, results)
	}
	return fmt.Errorf("invalid format %q", f)
}

func records(results []*result.Result) []Record {
	recs := make([]Record, 0, len(results))
	for _, r := range results {
		recs = append(recs, NewRecord(r))
	}
	return recs
}

func writeText(w io.Writer, results []*result.Result) error {
	for i, r := range results {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return errors.Wrap(err, "failed to write report")
			}
		}
		if _, err := io.WriteString(w, r.String()); err != nil {
			return errors.Wrap(err, "failed to write report")
		}
	}
	return nil
}

func writeJSON(w io.Writer, results []*result.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(records(results)), "failed to encode json report")
}

func writeYAML(w io.Writer, results []*result.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records(results)); err != nil {
		return errors.Wrap(err, "failed to encode yaml report")
	}
	return errors.Wrap(enc.Close(), "failed to encode yaml report")
}

func writeTable(w io.Writer, results []*result.Result) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"map", "letters", "path", "errors"})
	table.SetAutoWrapText(false)
	for _, r := range results {
		table.Append([]string{r.Name(), r.Letters(), r.Path(), strings.Join(r.Errors(), "; ")})
	}
	t := tally.Of(results)
	table.SetFooter([]string{
		"total " + strconv.Itoa(t.Total()),
		"letters " + strconv.Itoa(t.Letters()),
		"steps " + strconv.Itoa(t.Steps()),
		"passed " + strconv.Itoa(t.Passed()) + ", failed " + strconv.Itoa(t.Failed()),
	})
	table.Render()
	return nil
}
