package dataset

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func tenRowDataset(t *testing.T) *Dataset {
	t.Helper()
	ids := make([]int64, 10)
	scores := make([]float64, 10)
	targets := make([]int64, 10)
	for i := range ids {
		ids[i] = int64(i)
		scores[i] = float64(i) / 10.0
		targets[i] = int64(i % 2)
	}
	table, err := NewTable(
		NewIntSeries("row", ids),
		NewFloatSeries("score", scores),
		NewIntSeries("target", targets),
	)
	require.NoError(t, err)
	return New(table)
}

func TestNewAssignsIdentity(t *testing.T) {
	ds := tenRowDataset(t)
	other := tenRowDataset(t)

	require.NotEqual(t, uuid.Nil, ds.ID())
	require.NotEqual(t, ds.ID(), other.ID())
	require.False(t, ds.CreatedAt().IsZero())
}

func TestShuffleSeededIsDeterministic(t *testing.T) {
	ds := tenRowDataset(t)

	first, err := ds.ShuffleSeeded(42).Table().Column("row")
	require.NoError(t, err)
	second, err := ds.ShuffleSeeded(42).Table().Column("row")
	require.NoError(t, err)

	require.Equal(t, first.Ints(), second.Ints())

	other, err := ds.ShuffleSeeded(43).Table().Column("row")
	require.NoError(t, err)
	require.NotEqual(t, first.Ints(), other.Ints())
}

func TestShuffleLeavesSourceUntouched(t *testing.T) {
	ds := tenRowDataset(t)

	shuffled := ds.Shuffle()
	require.NotEqual(t, ds.ID(), shuffled.ID())
	require.Equal(t, ds.Height(), shuffled.Height())

	col, err := ds.Table().Column("row")
	require.NoError(t, err)
	require.Equal(t, []int64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, col.Ints())
}

func TestShuffleIsAPermutation(t *testing.T) {
	ds := tenRowDataset(t)

	col, err := ds.Shuffle().Table().Column("row")
	require.NoError(t, err)

	seen := make(map[int64]bool)
	for _, v := range col.Ints() {
		seen[v] = true
	}
	require.Len(t, seen, 10)
}

func TestShuffleUsesInjectedEntropy(t *testing.T) {
	old := entropy
	defer func() { entropy = old }()

	ds := tenRowDataset(t)

	entropy = rand.New(rand.NewSource(7))
	first, err := ds.Shuffle().Table().Column("row")
	require.NoError(t, err)

	entropy = rand.New(rand.NewSource(7))
	second, err := ds.Shuffle().Table().Column("row")
	require.NoError(t, err)

	require.Equal(t, first.Ints(), second.Ints())
}

func TestSplitFeatureTarget(t *testing.T) {
	ds := tenRowDataset(t)

	features, target, err := ds.SplitFeatureTarget("target")
	require.NoError(t, err)
	require.Equal(t, 10, features.Height())
	require.Equal(t, 2, features.Width())
	require.Equal(t, 10, target.Len())
	require.Equal(t, "target", target.Name())

	_, _, err = ds.SplitFeatureTarget("missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestShuffleThenDropPreservesRows(t *testing.T) {
	ds := tenRowDataset(t)

	dropped, err := ds.Shuffle().Table().Drop("target")
	require.NoError(t, err)
	require.Equal(t, 10, dropped.Height())
	require.Equal(t, 2, dropped.Width())
}
