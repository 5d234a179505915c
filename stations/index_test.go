package stations_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tubenet/stations"
)

func TestNewIndex_SortedDenseIDs(t *testing.T) {
	idx := stations.NewIndex([]string{"Victoria", "Bank", "  Angel ", "Bank", ""})

	require.Equal(t, 3, idx.Len())
	assert.Equal(t, []string{"Angel", "Bank", "Victoria"}, idx.Names())

	for want, name := range []string{"Angel", "Bank", "Victoria"} {
		got, err := idx.ID(name)
		require.NoError(t, err)
		assert.Equal(t, want, got, "id of %s", name)
	}
}

func TestNewIndex_Deterministic(t *testing.T) {
	a := stations.NewIndex([]string{"C", "A", "B"})
	b := stations.NewIndex([]string{"B", "C", "A", "A"})
	assert.Equal(t, a.Names(), b.Names())
}

func TestIntern(t *testing.T) {
	idx := stations.NewIndex([]string{"B", "A"})

	id, err := idx.Intern("A")
	require.NoError(t, err)
	assert.Equal(t, 0, id, "existing name keeps its id")

	id, err = idx.Intern("Aardvark")
	require.NoError(t, err)
	assert.Equal(t, 2, id, "new names are appended, not re-sorted")

	name, err := idx.NameOf(2)
	require.NoError(t, err)
	assert.Equal(t, "Aardvark", name)

	_, err = idx.Intern("   ")
	assert.ErrorIs(t, err, stations.ErrUnknownStation)
}

func TestUnknownStation(t *testing.T) {
	idx := stations.NewIndex([]string{"A"})

	_, err := idx.ID("Z")
	assert.ErrorIs(t, err, stations.ErrUnknownStation)
	assert.False(t, idx.Has("Z"))

	_, err = idx.NameOf(1)
	assert.ErrorIs(t, err, stations.ErrUnknownStation)
	_, err = idx.NameOf(-1)
	assert.ErrorIs(t, err, stations.ErrUnknownStation)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "King's Cross St. Pancras", stations.Normalize("  King's   Cross\tSt. Pancras "))
	assert.Equal(t, "", stations.Normalize(" \t "))

	idx := stations.NewIndex([]string{"Baker Street"})
	id, err := idx.ID(" Baker  Street")
	require.NoError(t, err)
	assert.Equal(t, 0, id)
}
