package ingest_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tubenet/ingest"
)

const timetable = `Line,Station1,Station2,Time
Bakerloo, Oxford Circus , Piccadilly Circus, 2
Bakerloo,Piccadilly Circus,Charing Cross,1.5
Central,Bank,,
Central,Bank,Liverpool Street,abc
Central,Bank,St Paul's,-3
short,row
Circle,,Aldgate,4
`

func TestReadCSV(t *testing.T) {
	recs, st, err := ingest.ReadCSV(strings.NewReader(timetable))
	require.NoError(t, err)

	assert.Equal(t, []ingest.Record{
		{Line: "Bakerloo", From: "Oxford Circus", To: "Piccadilly Circus", Weight: 2},
		{Line: "Bakerloo", From: "Piccadilly Circus", To: "Charing Cross", Weight: 1.5},
	}, recs)
	assert.Equal(t, 8, st.Rows)
	assert.Equal(t, 2, st.Accepted)
	assert.Equal(t, 5, st.Skipped)
	assert.Equal(t, []string{
		"Aldgate", "Bank", "Charing Cross", "Liverpool Street",
		"Oxford Circus", "Piccadilly Circus", "St Paul's",
	}, st.Stations)
}

func TestReadCSV_SyntaxError(t *testing.T) {
	_, _, err := ingest.ReadCSV(strings.NewReader("a,\"b,c,1\n"))
	require.Error(t, err)
}

func TestWriteCSV_RoundTrip(t *testing.T) {
	in := []ingest.Record{
		{Line: "L1", From: "A", To: "B", Weight: 3},
		{Line: "L1", From: "B", To: "C", Weight: 2.25},
	}
	var buf bytes.Buffer
	require.NoError(t, ingest.WriteCSV(&buf, in, "Lonely"))

	out, st, err := ingest.ReadCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, in, out)
	assert.Equal(t, 1, st.Skipped, "the bare station row")
	assert.Equal(t, []string{"A", "B", "C", "Lonely"}, st.Stations)

	g, idx, err := ingest.BuildGraph(out, ingest.WithStations(st.Stations...))
	require.NoError(t, err)
	assert.Equal(t, 4, g.VertexCount())
	assert.True(t, idx.Has("Lonely"))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "net.csv")
	require.NoError(t, os.WriteFile(p, []byte(timetable), 0o600))

	recs, _, err := ingest.LoadFile(p)
	require.NoError(t, err)
	assert.Len(t, recs, 2)

	_, _, err = ingest.LoadFile(filepath.Join(dir, "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
