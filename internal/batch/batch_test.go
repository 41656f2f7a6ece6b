package batch

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinser/asciipath/internal/loader"
	"github.com/vinser/asciipath/internal/progress"
	"github.com/vinser/asciipath/internal/walk"
)

func TestRunKeepsOrder(t *testing.T) {
	var maps []loader.Map
	for i := 0; i < 50; i++ {
		text := "@-A-x"
		if i%7 == 0 {
			text = "@@x"
		}
		maps = append(maps, loader.Map{Name: fmt.Sprintf("map%02d", i), Text: text})
	}

	var buf bytes.Buffer
	results, err := New(
		WithWorkers(4),
		WithProgress(progress.New(&buf, len(maps), "walking")),
	).Run(context.Background(), maps)
	require.NoError(t, err)
	require.Len(t, results, len(maps))

	for i, r := range results {
		require.NotNil(t, r)
		assert.Equal(t, maps[i].Name, r.Name())
		if i%7 == 0 {
			assert.True(t, r.HasErrors())
		} else {
			assert.Equal(t, "A", r.Letters())
			assert.Equal(t, "@-A-x", r.Path())
		}
	}
}

func TestRunWalkOptions(t *testing.T) {
	maps := []loader.Map{{Name: "long", Text: "@-----x"}}
	results, err := New(WithWalkOptions(walk.WithMaxSteps(2))).Run(context.Background(), maps)
	require.NoError(t, err)
	assert.True(t, results[0].HasErrors())
	assert.Equal(t, "@--", results[0].Path())
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New().Run(ctx, []loader.Map{{Name: "a", Text: "@x"}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunEmpty(t *testing.T) {
	results, err := New().Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}
