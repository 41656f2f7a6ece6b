package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinser/asciipath/internal/report"
	"github.com/vinser/asciipath/internal/result"
	"github.com/vinser/asciipath/internal/state"
)

type harness struct {
	env     *env
	out     bytes.Buffer
	errOut  bytes.Buffer
	histDir string
	viewed  []*result.Result
}

func newHarness(t *testing.T, stdin string) *harness {
	t.Helper()
	homedir.DisableCache = true
	t.Setenv("HOME", t.TempDir())
	t.Cleanup(func() { logrus.SetOutput(os.Stderr) })

	h := &harness{histDir: t.TempDir()}
	h.env = &env{
		v:       viper.New(),
		stdin:   strings.NewReader(stdin),
		history: []state.Option{state.WithDir(h.histDir)},
		view: func(results []*result.Result, _ *state.History, _ io.Reader, _ io.Writer) error {
			h.viewed = results
			return nil
		},
	}
	return h
}

func (h *harness) run(args ...string) error {
	cmd := h.env.rootCmd("test")
	cmd.SetOut(&h.out)
	cmd.SetErr(&h.errOut)
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestVersion(t *testing.T) {
	h := newHarness(t, "")
	require.NoError(t, h.run("version"))
	assert.Equal(t, "asciipath test\n", h.out.String())
}

func TestWalkStdin(t *testing.T) {
	h := newHarness(t, "@-A-+\n    |\nx-B-+\n")
	require.NoError(t, h.run("walk", "-"))
	assert.Equal(t, "fileName: stdin\nletters: AB\npath: @-A-+|+-B-x\nerrors: []\n", h.out.String())
}

func TestWalkFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("@-A-x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("@-B"), 0644))

	h := newHarness(t, "")
	require.NoError(t, h.run("walk", "--format", "json", dir))

	var got []report.Record
	require.NoError(t, json.Unmarshal(h.out.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Name)
	assert.Equal(t, "A", got[0].Letters)
	assert.False(t, got[0].HasErrors)
	assert.Equal(t, "b", got[1].Name)
	assert.True(t, got[1].HasErrors)
	assert.Equal(t, []string{`invalid map "b": no end position x`}, got[1].Errors)
}

func TestWalkSamplesTable(t *testing.T) {
	h := newHarness(t, "")
	require.NoError(t, h.run("walk", "--samples", "-f", "table", "-w", "2"))
	out := strings.ToLower(h.out.String())
	assert.Contains(t, out, "basic")
	assert.Contains(t, out, "@---a---+|c|+---+|+-b-x")
	assert.Contains(t, out, "passed 5")
	assert.Contains(t, out, "failed 5")
}

func TestWalkStrict(t *testing.T) {
	h := newHarness(t, "@--A")
	err := h.run("walk", "--strict", "-")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFailedMaps))
	assert.Contains(t, h.out.String(), "fileName: stdin")
}

func TestExecuteLogsError(t *testing.T) {
	h := newHarness(t, "")
	cmd := h.env.rootCmd("test")
	cmd.SetOut(&h.out)
	cmd.SetErr(&h.errOut)
	cmd.SetArgs([]string{"walk"})

	var logged bytes.Buffer
	assert.Equal(t, 1, execute(cmd, &logged))
	assert.Contains(t, logged.String(), "level=error")
	assert.Contains(t, logged.String(), "no maps given")

	cmd = h.env.rootCmd("test")
	cmd.SetOut(&h.out)
	cmd.SetArgs([]string{"version"})
	assert.Equal(t, 0, execute(cmd, &logged))
}

func TestWalkNoMaps(t *testing.T) {
	h := newHarness(t, "")
	err := h.run("walk")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no maps given")
}

func TestWalkConfigFile(t *testing.T) {
	dir := t.TempDir()
	mapFile := filepath.Join(dir, "loop.txt")
	require.NoError(t, os.WriteFile(mapFile, []byte("@---x"), 0644))
	cfgFile := filepath.Join(dir, "asciipath.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("format: yaml\nmaps:\n  - "+mapFile+"\n"), 0644))

	h := newHarness(t, "")
	require.NoError(t, h.run("walk", "--config", cfgFile))
	assert.Contains(t, h.out.String(), "name: loop")
	assert.Contains(t, h.out.String(), "path: '@---x'")
}

func TestWalkMaxSteps(t *testing.T) {
	h := newHarness(t, "@-----x")
	require.NoError(t, h.run("walk", "--max-steps", "3", "-"))
	assert.Contains(t, h.out.String(), "path: @---\n")
	assert.Contains(t, h.out.String(), "step limit exceeded")
}

func TestHistory(t *testing.T) {
	h := newHarness(t, "@-A-x")
	require.NoError(t, h.run("walk", "-"))
	saved := state.Load(state.WithDir(h.histDir))
	require.Len(t, saved.Entries, 1)
	assert.Equal(t, "stdin", saved.Entries[0].Name)

	h.out.Reset()
	require.NoError(t, h.run("history"))
	assert.Contains(t, h.out.String(), "stdin")
	assert.Contains(t, h.out.String(), "ok")

	h.out.Reset()
	require.NoError(t, h.run("history", "--clear"))
	assert.Empty(t, state.Load(state.WithDir(h.histDir)).Entries)

	h.out.Reset()
	require.NoError(t, h.run("history"))
	assert.Equal(t, "no maps walked yet\n", h.out.String())
}

func TestWalkNoHistory(t *testing.T) {
	h := newHarness(t, "@-A-x")
	require.NoError(t, h.run("walk", "--history=false", "-"))
	assert.Empty(t, state.Load(state.WithDir(h.histDir)).Entries)
}

func TestGenerate(t *testing.T) {
	h := newHarness(t, "")
	require.NoError(t, h.run("generate", "--seed", "42", "--letters", "3"))
	text := h.out.String()
	assert.Equal(t, 1, strings.Count(text, "@"))
	assert.Equal(t, 1, strings.Count(text, "x"))

	walked := newHarness(t, text)
	require.NoError(t, walked.run("walk", "-"))
	assert.Contains(t, walked.out.String(), "letters: ABC\n")
	assert.Contains(t, walked.out.String(), "errors: []")
}

func TestGenerateOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.txt")
	h := newHarness(t, "")
	require.NoError(t, h.run("generate", "--seed", "7", "-o", path))
	assert.Empty(t, h.out.String())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "@")
}

func TestWriteMapFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "map.txt")
	require.NoError(t, writeMapFile(path, "@-x\n"))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "@-x\n", string(data))

	err = writeMapFile(filepath.Join(dir, "missing", "map.txt"), "@-x\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create")
}

func TestGenerateOutputFileError(t *testing.T) {
	h := newHarness(t, "")
	err := h.run("generate", "--seed", "7", "-o", filepath.Join(t.TempDir(), "missing", "map.txt"))
	require.Error(t, err)
	assert.Empty(t, h.out.String())
}

func TestView(t *testing.T) {
	h := newHarness(t, "")
	require.NoError(t, h.run("view", "--log-file", filepath.Join(t.TempDir(), "view.log")))
	assert.Len(t, h.viewed, 10)
}

func TestInvalidFormat(t *testing.T) {
	h := newHarness(t, "@-x")
	err := h.run("walk", "--format", "xml", "-")
	require.Error(t, err)
}
