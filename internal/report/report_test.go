package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vinser/asciipath/internal/result"
	"github.com/vinser/asciipath/internal/walk"
)

func sampleResults() []*result.Result {
	return []*result.Result{
		walk.Walk("ok", "@-A-+\n    |\n    x"),
		walk.Walk("bad", "@@"),
	}
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"text", "JSON", " yaml ", "Table"} {
		_, err := ParseFormat(s)
		assert.NoError(t, err, s)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatText, sampleResults()))

	want := "fileName: ok\nletters: A\npath: @-A-+|x\nerrors: []\n" +
		"\n" +
		"fileName: bad\nletters: \npath: \n" +
		`errors: [invalid map "bad": double start @ invalid map "bad": no end position x]` + "\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, sampleResults()))

	var got []Record
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, Record{Name: "ok", Letters: "A", Path: "@-A-+|x", Errors: []string{}}, got[0])
	assert.True(t, got[1].HasErrors)
	assert.Len(t, got[1].Errors, 2)
	assert.Contains(t, buf.String(), `"hasErrors": false`)
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatYAML, sampleResults()))

	var got []Record
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "@-A-+|x", got[0].Path)
	assert.True(t, got[1].HasErrors)
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatTable, sampleResults()))

	out := strings.ToLower(buf.String())
	assert.Contains(t, out, "@-a-+|x")
	assert.Contains(t, out, "double start")
	assert.Contains(t, out, "total 2")
	assert.Contains(t, out, "failed 1")
	assert.Contains(t, out, "letters 1")
	assert.Contains(t, out, "steps 6")
}

func TestWriteUnknown(t *testing.T) {
	assert.Error(t, Write(&bytes.Buffer{}, Format("xml"), nil))
}
