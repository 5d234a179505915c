package network_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"math/rand"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/tubenet/core"
	"github.com/katalvlaran/tubenet/ingest"
	"github.com/katalvlaran/tubenet/network"
	"github.com/katalvlaran/tubenet/stations"
)

// triangle: A-B:4, B-C:3, A-C:10.
var triangle = []ingest.Record{
	{Line: "Red", From: "A", To: "B", Weight: 4},
	{Line: "Red", From: "B", To: "C", Weight: 3},
	{Line: "Blue", From: "A", To: "C", Weight: 10},
}

// square: A-B:1, B-C:1, C-D:1, A-D:2. A-D is closable but on the fastest A→D route.
var square = []ingest.Record{
	{From: "A", To: "B", Weight: 1},
	{From: "B", To: "C", Weight: 1},
	{From: "C", To: "D", Weight: 1},
	{Line: "Shortcut", From: "A", To: "D", Weight: 2},
}

type NetworkSuite struct {
	suite.Suite
	tri *network.Network
}

func (s *NetworkSuite) SetupTest() {
	n, err := network.FromRecords(triangle, nil)
	s.Require().NoError(err)
	s.tri = n
}

func (s *NetworkSuite) TestShortestRouteTakesDetour() {
	j, err := s.tri.ShortestRoute("A", "C")
	s.Require().NoError(err)
	s.Require().True(j.Reachable)
	s.Require().Equal([]string{"A", "B", "C"}, j.Path)
	s.Require().Equal(7.0, j.TotalMinutes)
	s.Require().Equal(2, j.TotalStops)
	s.Require().Equal([]network.Leg{
		{From: "A", To: "B", Line: "Red", Minutes: 4},
		{From: "B", To: "C", Line: "Red", Minutes: 3},
	}, j.Legs)
}

func (s *NetworkSuite) TestFewestStopsTakesDirectLink() {
	j, err := s.tri.FewestStops("A", "C")
	s.Require().NoError(err)
	s.Require().Equal([]string{"A", "C"}, j.Path)
	s.Require().Equal(1, j.TotalStops)
	s.Require().Equal(10.0, j.TotalMinutes)
}

func (s *NetworkSuite) TestSameStation() {
	j, err := s.tri.ShortestRoute("B", "B")
	s.Require().NoError(err)
	s.Require().True(j.Reachable)
	s.Require().Equal([]string{"B"}, j.Path)
	s.Require().Zero(j.TotalMinutes)
	s.Require().Zero(j.TotalStops)
}

func (s *NetworkSuite) TestUnknownStation() {
	_, err := s.tri.ShortestRoute("A", "Z")
	s.Require().ErrorIs(err, stations.ErrUnknownStation)
	_, err = s.tri.FewestStops("Z", "A")
	s.Require().ErrorIs(err, stations.ErrUnknownStation)
	_, err = s.tri.Impact("Z", "A")
	s.Require().ErrorIs(err, stations.ErrUnknownStation)
}

func (s *NetworkSuite) TestNamesAreNormalizedOnLookup() {
	j, err := s.tri.ShortestRoute("  A ", "C")
	s.Require().NoError(err)
	s.Require().Equal("A", j.Source)
}

func (s *NetworkSuite) TestBackbone() {
	bb, err := s.tri.Backbone()
	s.Require().NoError(err)
	s.Require().Equal([]network.Connection{
		{A: "A", B: "B", Weight: 4, Line: "Red"},
		{A: "B", B: "C", Weight: 3, Line: "Red"},
	}, bb.Essential)
	s.Require().Equal([]network.Connection{{A: "A", B: "C", Weight: 10, Line: "Blue"}}, bb.Closable)
	s.Require().Equal(7.0, bb.TotalWeight)
	s.Require().Equal(10.0, bb.ClosableWeight)
	s.Require().Equal(1, bb.Components)
	s.Require().Empty(bb.Critical, "a triangle survives any single closure")
}

func (s *NetworkSuite) TestImpactWithoutClosableOnRoute() {
	im, err := s.tri.Impact("A", "C")
	s.Require().NoError(err)
	s.Require().False(im.UsesClosable())
	s.Require().Zero(im.ExtraMinutes)
	s.Require().Equal(im.Full.Path, im.Backbone.Path)
}

func TestNetworkSuite(t *testing.T) {
	suite.Run(t, new(NetworkSuite))
}

func TestImpactSquare(t *testing.T) {
	n, err := network.FromRecords(square, nil)
	require.NoError(t, err)

	im, err := n.Impact("A", "D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "D"}, im.Full.Path)
	assert.Equal(t, []string{"A", "B", "C", "D"}, im.Backbone.Path)
	assert.Equal(t, 1.0, im.ExtraMinutes)
	assert.Equal(t, 50.0, im.ExtraPercent)
	assert.True(t, im.UsesClosable())
	assert.Equal(t, []network.Connection{{A: "A", B: "D", Weight: 2, Line: "Shortcut"}}, im.ClosedOnRoute)
}

func TestBackboneListsLightestClosableFirst(t *testing.T) {
	n, err := network.FromRecords([]ingest.Record{
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "C", Weight: 1},
		{From: "C", To: "D", Weight: 1},
		{From: "A", To: "C", Weight: 9},
		{From: "B", To: "D", Weight: 5},
		{From: "A", To: "D", Weight: 5},
	}, nil)
	require.NoError(t, err)

	bb, err := n.Backbone()
	require.NoError(t, err)
	assert.Equal(t, []network.Connection{
		{A: "A", B: "D", Weight: 5},
		{A: "B", B: "D", Weight: 5},
		{A: "A", B: "C", Weight: 9},
	}, bb.Closable)
	assert.Equal(t, []network.Connection{
		{A: "A", B: "B", Weight: 1},
		{A: "B", B: "C", Weight: 1},
		{A: "C", B: "D", Weight: 1},
	}, bb.Essential)
	assert.Equal(t, 19.0, bb.ClosableWeight)
}

func TestAffectedJourneys(t *testing.T) {
	n, err := network.FromRecords(square, nil)
	require.NoError(t, err)

	got, err := n.AffectedJourneys(rand.New(rand.NewSource(1)), 500, 2)
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.LessOrEqual(t, len(got), 2)
	for _, im := range got {
		assert.True(t, im.UsesClosable())
		assert.Greater(t, im.ExtraMinutes, 0.0)
	}

	none, err := n.AffectedJourneys(rand.New(rand.NewSource(1)), 0, 5)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestDisconnected(t *testing.T) {
	n, err := network.FromRecords([]ingest.Record{{From: "A", To: "B", Weight: 1}}, []string{"C"})
	require.NoError(t, err)

	for _, query := range []func(string, string) (*network.Journey, error){n.ShortestRoute, n.FewestStops} {
		j, err := query("A", "C")
		require.NoError(t, err)
		assert.False(t, j.Reachable)
		assert.Empty(t, j.Path)
		assert.Zero(t, j.TotalMinutes)
	}

	bb, err := n.Backbone()
	require.NoError(t, err)
	assert.Equal(t, 2, bb.Components)
	assert.Equal(t, 1.0, bb.TotalWeight)
	assert.Equal(t, []network.Connection{{A: "A", B: "B", Weight: 1}}, bb.Critical)

	ov, err := n.Overview()
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "B"}, {"C"}}, ov.Islands)
	assert.Equal(t, 1, ov.Stats.IsolatedCount)

	im, err := n.Impact("A", "C")
	require.NoError(t, err)
	assert.False(t, im.Full.Reachable)
	assert.False(t, im.Backbone.Reachable)
}

func TestOverviewOrdersIslandsBySize(t *testing.T) {
	n, err := network.FromRecords([]ingest.Record{
		{From: "A", To: "B", Weight: 1},
		{From: "C", To: "D", Weight: 1},
		{From: "D", To: "E", Weight: 1},
	}, []string{"F"})
	require.NoError(t, err)

	ov, err := n.Overview()
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"C", "D", "E"}, {"A", "B"}, {"F"}}, ov.Islands)
	assert.Equal(t, 6, ov.Stats.VertexCount)
	assert.Equal(t, 3, ov.Stats.EdgeCount)
}

func TestNewValidation(t *testing.T) {
	_, err := network.New(nil, nil)
	require.ErrorIs(t, err, network.ErrNilGraph)

	g, err := core.NewGraph(2)
	require.NoError(t, err)
	_, err = network.New(g, stations.NewIndex([]string{"A"}))
	require.ErrorIs(t, err, network.ErrIndexMismatch)

	_, err = network.FromRecords([]ingest.Record{{From: "A", To: "B", Weight: -1}}, nil)
	require.ErrorIs(t, err, ingest.ErrBadWeight)
}

func TestLoggerReceivesDebugTraces(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	n, err := network.FromRecords(triangle, nil, network.WithLogger(logger))
	require.NoError(t, err)
	_, err = n.ShortestRoute("A", "C")
	require.NoError(t, err)

	var msgs []string
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		msgs = append(msgs, entry["msg"].(string))
	}
	assert.Equal(t, []string{"network built", "shortest route"}, msgs)
}

func TestConcurrentQueries(t *testing.T) {
	n, err := network.FromRecords(square, nil)
	require.NoError(t, err)
	want, err := n.ShortestRoute("A", "C")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := n.ShortestRoute("A", "C")
			if assert.NoError(t, err) {
				assert.Equal(t, want, got)
			}
		}()
	}
	wg.Wait()
}
