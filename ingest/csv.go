// File: csv.go
// Role: "Line, Station1, Station2, Time" row codec.
// Policy:
//   - Malformed rows are skipped and counted, never fatal.
//   - Only I/O and CSV syntax errors are returned.

package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/katalvlaran/tubenet/stations"
)

// Column layout of a timetable row.
const (
	colLine = iota
	colFrom
	colTo
	colTime
	columns
)

// Header is the first row WriteCSV emits.
var Header = []string{"Line", "Station1", "Station2", "Time"}

// Stats counts what ReadCSV saw.
type Stats struct {
	Rows     int      // rows read, header included
	Accepted int      // rows turned into records
	Skipped  int      // malformed rows
	Stations []string // every station named anywhere, sorted and distinct
}

// ReadCSV parses timetable rows from r.
//
// A row is accepted when it has at least four columns, two non-empty
// stations and a finite non-negative numeric time. Anything else is skipped.
// Station names on skipped rows still land in Stats.Stations, so stations
// listed on their own (empty partner and time) become isolated vertices when
// passed to BuildGraph via WithStations.
func ReadCSV(r io.Reader) ([]Record, Stats, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var (
		st      Stats
		records []Record
		seen    = make(map[string]struct{})
	)
	note := func(name string) {
		if name != "" {
			seen[name] = struct{}{}
		}
	}

	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, st, fmt.Errorf("ingest: read row %d: %w", st.Rows+1, err)
		}
		st.Rows++

		if len(row) < columns {
			st.Skipped++
			continue
		}
		rec := Record{
			Line: stations.Normalize(row[colLine]),
			From: stations.Normalize(row[colFrom]),
			To:   stations.Normalize(row[colTo]),
		}
		if st.Rows == 1 && isHeader(row) {
			continue
		}
		note(rec.From)
		note(rec.To)

		w, err := strconv.ParseFloat(stations.Normalize(row[colTime]), 64)
		if err != nil || w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			st.Skipped++
			continue
		}
		if rec.From == "" || rec.To == "" {
			st.Skipped++
			continue
		}
		rec.Weight = w
		records = append(records, rec)
		st.Accepted++
	}

	st.Stations = stations.NewIndex(keys(seen)).Names()

	return records, st, nil
}

// isHeader reports whether row looks like the Header row.
func isHeader(row []string) bool {
	for i, h := range Header {
		if stations.Normalize(row[i]) != h {
			return false
		}
	}

	return true
}

// keys returns the members of a string set.
func keys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}

	return out
}

// LoadFile opens path and parses it with ReadCSV.
func LoadFile(path string) ([]Record, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("ingest: %w", err)
	}
	defer f.Close()

	return ReadCSV(f)
}

// WriteCSV writes Header followed by one row per record, then one bare row
// ("Line, Station, , ") per name in isolated.
func WriteCSV(w io.Writer, records []Record, isolated ...string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("ingest: write header: %w", err)
	}
	for _, r := range records {
		row := []string{r.Line, r.From, r.To, strconv.FormatFloat(r.Weight, 'f', -1, 64)}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("ingest: write %s-%s: %w", r.From, r.To, err)
		}
	}
	for _, name := range isolated {
		if err := cw.Write([]string{"", name, "", ""}); err != nil {
			return fmt.Errorf("ingest: write %s: %w", name, err)
		}
	}
	cw.Flush()

	return cw.Error()
}
