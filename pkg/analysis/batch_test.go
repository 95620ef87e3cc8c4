package analysis

import (
	"context"
	"fmt"
	"testing"

	"github.com/nikogura/namescore/pkg/numerology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeBatchKeepsOrder(t *testing.T) {
	a := newTestAnalyzer(t, nil, 0)
	names := []string{"Marie Anne Curie", "", "AI", "Ada Lovelace"}

	entries, err := a.AnalyzeBatch(context.Background(), names, "")
	require.NoError(t, err)
	require.Len(t, entries, len(names))

	for i, name := range names {
		assert.Equal(t, name, entries[i].Name)
	}

	assert.Equal(t, 64, entries[0].Result.Score)
	assert.Equal(t, numerology.Label(64), entries[0].Label)
	assert.NotEmpty(t, entries[1].Error)
	assert.Equal(t, 59, entries[2].Result.Score)
	assert.Empty(t, entries[3].Error)
}

func TestAnalyzeBatchMatchesSequentialScoring(t *testing.T) {
	a := newTestAnalyzer(t, nil, 0)

	names := make([]string, 0, 200)
	for i := range 200 {
		names = append(names, fmt.Sprintf("Name %s", string(rune('A'+i%26))+string(rune('a'+i%7))))
	}

	entries, err := a.AnalyzeBatch(context.Background(), names, "1989-02-09")
	require.NoError(t, err)

	for i, name := range names {
		expected, calcErr := numerology.Calculate(name, "1989-02-09")
		require.NoError(t, calcErr)
		assert.Equal(t, expected, entries[i].Result, name)
	}
}

func TestAnalyzeBatchCancelled(t *testing.T) {
	a := newTestAnalyzer(t, nil, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.AnalyzeBatch(ctx, []string{"Marie Anne Curie"}, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSortByScore(t *testing.T) {
	entries := []BatchEntry{
		{Name: "low", Result: numerology.Result{Score: 50}},
		{Name: "bad", Error: "invalid argument"},
		{Name: "high", Result: numerology.Result{Score: 90}},
		{Name: "mid", Result: numerology.Result{Score: 70}},
	}

	SortByScore(entries)

	got := make([]string, 0, len(entries))
	for _, e := range entries {
		got = append(got, e.Name)
	}
	assert.Equal(t, []string{"high", "mid", "low", "bad"}, got)
}
