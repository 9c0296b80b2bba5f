package testutil

import (
	"os"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRNG_Deterministic(t *testing.T) {
	a := NewRNG(42).Headlines(20, 100)
	b := NewRNG(42).Headlines(20, 100)
	assert.Equal(t, a, b)

	for _, row := range a {
		require.Len(t, row, 2)
		v, err := strconv.Atoi(row[1])
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, 0)
		assert.LessOrEqual(t, v, 100)
	}
}

func TestRNG_Reset(t *testing.T) {
	rng := NewRNG(7)
	first := rng.Headline()
	rng.Reset()
	assert.Equal(t, first, rng.Headline())
	assert.Equal(t, int64(7), rng.Seed())
}

func TestCSVAndWriteFile(t *testing.T) {
	data := CSV([]string{"title", "up_votes"}, []string{"Oil, gas", "5"})
	assert.Equal(t, "title,up_votes\n\"Oil, gas\",5\n", string(data))

	path := WriteFile(t, "news.csv", data)
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}
