// Package builder generates synthetic transit networks as ingest records.
//
// Every generator is a Constructor: a closure validated up front that
// appends named stations and timed connections to a Draft. BuildNetwork
// resolves the functional options once and runs the constructors in order,
// so one call can compose several topologies over a shared name space
// (constructors that produce the same station name refer to the same station).
//
// Constructors:
//
//   - Lines(nLines, totalStations): a tube-like network. Stations are spread
//     evenly over the lines (the first total%nLines lines get one extra),
//     consecutive stations on a line are joined with 2..10 minutes, and every
//     line gets one link to a random station on another line with 3..12 minutes.
//   - RandomSparse(n, p): every pair joined independently with probability p,
//     then consecutive stations i, i+1 still in different components are
//     joined, so the network is always connected.
//   - Path, Cycle, Star, Complete, Grid: fixed topologies for fixtures.
//
// Options:
//
//   - WithSeed / WithRand:  RNG for stochastic constructors (required by Lines and RandomSparse).
//   - WithIDScheme:         index → station name (default "Station_<i>").
//   - WithWeightFn:         minutes per connection (default constant 1).
//   - WithLine:             line label stamped on every connection.
//
// Option constructors panic on meaningless input; constructors never panic and
// return sentinel errors (ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource).
//
// Determinism: same options, seed and constructor order ⇒ identical records.
package builder
