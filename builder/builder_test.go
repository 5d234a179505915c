// SPDX-License-Identifier: MIT
package builder_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tubenet/builder"
	"github.com/katalvlaran/tubenet/ingest"
	"github.com/katalvlaran/tubenet/network"
)

func TestFixedTopologies(t *testing.T) {
	cases := []struct {
		name     string
		cons     builder.Constructor
		stations int
		conns    int
	}{
		{"path", builder.Path(5), 5, 4},
		{"cycle", builder.Cycle(4), 4, 4},
		{"star", builder.Star(6), 6, 5},
		{"complete", builder.Complete(5), 5, 10},
		{"complete single", builder.Complete(1), 1, 0},
		{"grid", builder.Grid(3, 4), 12, 17},
		{"grid row", builder.Grid(1, 3), 3, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := builder.BuildNetwork(nil, tc.cons)
			require.NoError(t, err)
			assert.Equal(t, tc.stations, d.StationCount())
			assert.Equal(t, tc.conns, d.ConnectionCount())
			for _, r := range d.Records() {
				assert.Equal(t, builder.DefaultEdgeWeight, r.Weight)
			}
		})
	}
}

func TestTooFewVertices(t *testing.T) {
	for name, c := range map[string]builder.Constructor{
		"path":     builder.Path(1),
		"cycle":    builder.Cycle(2),
		"star":     builder.Star(1),
		"complete": builder.Complete(0),
		"grid":     builder.Grid(0, 3),
		"random":   builder.RandomSparse(0, 0.5),
		"lines":    builder.Lines(0, 10),
	} {
		_, err := builder.BuildNetwork([]builder.BuilderOption{builder.WithSeed(1)}, c)
		assert.ErrorIs(t, err, builder.ErrTooFewVertices, name)
	}
}

func TestBuildNetwork_NilConstructor(t *testing.T) {
	_, err := builder.BuildNetwork(nil, builder.Path(3), nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestCompositionSharesNames(t *testing.T) {
	// A path and a star over the same names: the star hub reuses Station_0.
	d, err := builder.BuildNetwork(nil, builder.Path(3), builder.Star(3))
	require.NoError(t, err)
	require.Equal(t, 3, d.StationCount())
	// Path gives 0-1, 1-2; star adds 0-2 (0-1 already present).
	require.Equal(t, 3, d.ConnectionCount())
}

func TestOptionsApplied(t *testing.T) {
	d, err := builder.BuildNetwork([]builder.BuilderOption{
		builder.WithSymbNumb("S"),
		builder.WithWeightFn(builder.ConstantWeightFn(7)),
		builder.WithLine("Circle"),
	}, builder.Cycle(3))
	require.NoError(t, err)
	require.Equal(t, []string{"S0", "S1", "S2"}, d.Stations())
	for _, r := range d.Records() {
		require.Equal(t, "Circle", r.Line)
		require.Equal(t, 7.0, r.Weight)
	}
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
	assert.Panics(t, func() { builder.UniformIntWeightFn(5, 2) })
	assert.Panics(t, func() { builder.UniformWeightFn(-1, 2) })
	assert.Panics(t, func() { builder.ExcelColumnIDFn(-1) })
	assert.NotPanics(t, func() { builder.WithRand(rand.New(rand.NewSource(1))) })
}

func TestRandomSparse_Validation(t *testing.T) {
	_, err := builder.BuildNetwork(nil, builder.RandomSparse(5, 1.5))
	require.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.BuildNetwork(nil, builder.RandomSparse(5, 0.5))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)

	// The extremes need no randomness.
	d, err := builder.BuildNetwork(nil, builder.RandomSparse(5, 1))
	require.NoError(t, err)
	require.Equal(t, 10, d.ConnectionCount())

	d, err = builder.BuildNetwork(nil, builder.RandomSparse(5, 0))
	require.NoError(t, err)
	require.Equal(t, 4, d.ConnectionCount(), "p=0 falls back to the chain")
}

func TestRandomSparse_AlwaysConnected(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		p := []float64{0.02, 0.06, 0.15}[seed%3]
		d, err := builder.BuildNetwork([]builder.BuilderOption{
			builder.WithSeed(seed),
			builder.WithWeightFn(builder.UniformIntWeightFn(1, 20)),
		}, builder.RandomSparse(30, p))
		require.NoError(t, err)
		require.Equal(t, 30, d.StationCount())

		net, err := network.FromRecords(d.Records(), d.Isolated())
		require.NoError(t, err)
		require.Equal(t, 1, mustBackbone(t, net).Components, "seed %d", seed)

		for _, r := range d.Records() {
			require.GreaterOrEqual(t, r.Weight, 1.0)
			require.LessOrEqual(t, r.Weight, 20.0)
		}
	}
}

func TestRandomSparse_Deterministic(t *testing.T) {
	build := func() []ingest.Record {
		d, err := builder.BuildNetwork([]builder.BuilderOption{
			builder.WithSeed(99),
			builder.WithWeightFn(builder.UniformIntWeightFn(1, 20)),
		}, builder.RandomSparse(40, 0.15))
		require.NoError(t, err)
		return d.Records()
	}
	require.Equal(t, build(), build())
}

func TestLines(t *testing.T) {
	d, err := builder.BuildNetwork([]builder.BuilderOption{builder.WithSeed(7)}, builder.Lines(3, 11))
	require.NoError(t, err)
	require.Equal(t, 11, d.StationCount())

	// 4+4+3 stations ⇒ 3+3+2 intra-line links; up to 3 inter-line links.
	perLine := map[string]int{}
	intra, inter := 0, 0
	for _, r := range d.Records() {
		if strings.Contains(r.Line, "-") {
			inter++
			assert.GreaterOrEqual(t, r.Weight, float64(builder.InterMinMinutes))
			assert.LessOrEqual(t, r.Weight, float64(builder.InterMaxMinutes))
			continue
		}
		intra++
		perLine[r.Line]++
		assert.GreaterOrEqual(t, r.Weight, float64(builder.IntraMinMinutes))
		assert.LessOrEqual(t, r.Weight, float64(builder.IntraMaxMinutes))
		assert.True(t, strings.HasPrefix(r.From, r.Line+"_Station"))
		assert.True(t, strings.HasPrefix(r.To, r.Line+"_Station"))
	}
	require.Equal(t, map[string]int{"Line1": 3, "Line2": 3, "Line3": 2}, perLine)
	require.Equal(t, 8, intra)
	require.GreaterOrEqual(t, inter, 2)
	require.LessOrEqual(t, inter, 3)

	require.Equal(t, "Line1_Station1", d.Stations()[0])
	require.Equal(t, "Line3_Station11", d.Stations()[10])
}

func TestLines_Validation(t *testing.T) {
	_, err := builder.BuildNetwork(nil, builder.Lines(2, 10))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildNetwork([]builder.BuilderOption{builder.WithSeed(1)}, builder.Lines(5, 3))
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestLines_SingleStationLines(t *testing.T) {
	// One station per line: no intra links, so only inter-line links remain.
	d, err := builder.BuildNetwork([]builder.BuilderOption{builder.WithSeed(3)}, builder.Lines(4, 4))
	require.NoError(t, err)
	require.Equal(t, 4, d.StationCount())
	for _, r := range d.Records() {
		require.Contains(t, r.Line, "-")
	}
}

func TestDraft(t *testing.T) {
	d := builder.NewDraft()
	require.True(t, d.Connect("L", "a", "b", 3))
	require.False(t, d.Connect("L", "b", "a", 1), "reverse duplicate")
	require.False(t, d.Connect("L", "c", "c", 1), "self-loop")
	d.AddStation("z")
	d.AddStation("a")

	require.Equal(t, []string{"a", "b", "z"}, d.Stations())
	require.Equal(t, []string{"z"}, d.Isolated())
	require.True(t, d.Connected("b", "a"))
	require.Equal(t, []ingest.Record{{Line: "L", From: "a", To: "b", Weight: 3}}, d.Records())
}

func mustBackbone(t *testing.T, n *network.Network) *network.Backbone {
	t.Helper()
	b, err := n.Backbone()
	require.NoError(t, err)

	return b
}
