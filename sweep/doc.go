// Package sweep times minimum spanning forest construction on random
// networks of growing size.
//
// For every size in the sweep, Trials random connected networks are generated
// with builder.RandomSparse (pair probability p, whole minutes 1..MaxWeight),
// frozen with builder.Draft.Graph and handed to prim_kruskal.Compute. Only the
// spanning-forest call is timed; generation and ingestion are not.
//
// Trials run on an errgroup bounded by Workers. Timings of concurrent trials
// share the CPU, so Workers = 1 (the default) gives the cleanest numbers.
//
// Every trial derives its own seed from (Seed, size, trial), so a sweep is
// reproducible in everything except the measured durations.
//
// Example:
//
//	rep, err := sweep.Run(ctx, sweep.WithSizes(100, 200, 400), sweep.WithTrials(5))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, p := range rep.Points {
//	    fmt.Println(p.Size, p.MeanEdges, p.Mean)
//	}
package sweep
