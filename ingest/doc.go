// Package ingest turns raw timetable rows into a frozen core.Graph plus the
// stations.Index that names its vertices.
//
// Two layers:
//
//   - ReadCSV / LoadFile parse the "Line, Station1, Station2, Time" row format
//     and filter malformed rows (short rows, empty station, non-numeric or
//     negative time). Filtering is counted in Stats, never an error.
//   - BuildGraph deduplicates records by unordered station pair, keeping the
//     minimum time, drops self-loops, assigns ids in sorted name order, and
//     inserts edges in canonical (u, v) order.
//
// Because ids come from sorted names and edges are inserted in sorted pair
// order, the same records always produce the same graph, adjacency order
// included. Record order only matters for which line label survives a tie.
//
// WriteCSV emits the same row format, so generated networks round-trip.
package ingest
