// Package loader reads map text from files, directories, embedded samples
// and stdin.
package loader

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Stdin is the path argument that reads a map from standard input.
const Stdin = "-"

// Map is one named map text.
type Map struct {
	Name string
	Text string
}

// Loader resolves path arguments into maps.
type Loader struct {
	stdin io.Reader
}

// New returns a Loader reading "-" from r.
func New(r io.Reader) *Loader {
	return &Loader{stdin: r}
}

// Load reads every path in order. A directory contributes its regular files
// sorted by name; subdirectories are skipped.
func (l *Loader) Load(ctx context.Context, paths ...string) ([]Map, error) {
	var maps []Map
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if p == Stdin {
			m, err := l.readStdin()
			if err != nil {
				return nil, err
			}
			maps = append(maps, m)
			continue
		}

		info, err := os.Stat(p)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to stat %s", p)
		}
		if info.IsDir() {
			dirMaps, err := FromFS(ctx, os.DirFS(p), ".")
			if err != nil {
				return nil, errors.Wrapf(err, "failed to load directory %s", p)
			}
			maps = append(maps, dirMaps...)
			continue
		}

		data, err := os.ReadFile(p)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", p)
		}
		maps = append(maps, Map{Name: Name(filepath.Base(p)), Text: string(data)})
	}
	logrus.Debugf("loaded %d maps from %d paths", len(maps), len(paths))
	return maps, nil
}

func (l *Loader) readStdin() (Map, error) {
	if l.stdin == nil {
		return Map{}, errors.New("no standard input")
	}
	data, err := io.ReadAll(l.stdin)
	if err != nil {
		return Map{}, errors.Wrap(err, "failed to read standard input")
	}
	return Map{Name: "stdin", Text: string(data)}, nil
}

// FromFS reads the regular files of dir in fsys, sorted by name.
func FromFS(ctx context.Context, fsys fs.FS, dir string) ([]Map, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s", dir)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	maps := make([]Map, 0, len(entries))
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !e.Type().IsRegular() {
			continue
		}
		data, err := fs.ReadFile(fsys, path.Join(dir, e.Name()))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", e.Name())
		}
		maps = append(maps, Map{Name: Name(e.Name()), Text: string(data)})
	}
	return maps, nil
}

// Name derives a map identifier from a file name by dropping its extension.
func Name(file string) string {
	if ext := path.Ext(file); ext != "" && ext != file {
		return strings.TrimSuffix(file, ext)
	}
	return file
}
