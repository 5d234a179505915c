// File: sweep.go
// Role: Run, the timing loop over sizes and trials.

package sweep

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tubenet/builder"
	"github.com/katalvlaran/tubenet/prim_kruskal"
)

// Trial is one timed spanning-forest run.
type Trial struct {
	Size     int           `json:"size" yaml:"size"`
	Seed     int64         `json:"seed" yaml:"seed"`
	Edges    int           `json:"edges" yaml:"edges"`
	Weight   float64       `json:"forest_weight" yaml:"forest_weight"`
	Duration time.Duration `json:"duration_ns" yaml:"duration_ns"`
}

// Point aggregates the trials of one size.
type Point struct {
	Size      int           `json:"size" yaml:"size"`
	Trials    int           `json:"trials" yaml:"trials"`
	MeanEdges float64       `json:"mean_edges" yaml:"mean_edges"`
	Mean      time.Duration `json:"mean_ns" yaml:"mean_ns"`
	Min       time.Duration `json:"min_ns" yaml:"min_ns"`
	Max       time.Duration `json:"max_ns" yaml:"max_ns"`
}

// Report is the outcome of a sweep. Points follow the order of Options.Sizes.
type Report struct {
	Method      string        `json:"method" yaml:"method"`
	Probability float64       `json:"probability" yaml:"probability"`
	MaxWeight   int           `json:"max_weight" yaml:"max_weight"`
	Points      []Point       `json:"points" yaml:"points"`
	Trials      []Trial       `json:"-" yaml:"-"`
	Elapsed     time.Duration `json:"elapsed_ns" yaml:"elapsed_ns"`
}

// Run executes the sweep. It stops at the first failing trial or when ctx is
// done, returning that error.
func Run(ctx context.Context, opts ...Option) (*Report, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	trials := make([]Trial, len(cfg.Sizes)*cfg.Trials)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i, size := range cfg.Sizes {
		for k := 0; k < cfg.Trials; k++ {
			slot := i*cfg.Trials + k
			size, seed := size, trialSeed(cfg.Seed, size, k)
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				tr, err := runTrial(cfg, size, seed)
				if err != nil {
					return err
				}
				trials[slot] = tr
				cfg.Logger.Debug("trial",
					"size", tr.Size, "seed", tr.Seed, "edges", tr.Edges,
					"duration", tr.Duration,
				)

				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rep := &Report{
		Method:      cfg.Method,
		Probability: cfg.Probability,
		MaxWeight:   cfg.MaxWeight,
		Points:      make([]Point, 0, len(cfg.Sizes)),
		Trials:      trials,
		Elapsed:     time.Since(start),
	}
	for i, size := range cfg.Sizes {
		rep.Points = append(rep.Points, aggregate(size, trials[i*cfg.Trials:(i+1)*cfg.Trials]))
	}

	return rep, nil
}

func (o Options) validate() error {
	if len(o.Sizes) == 0 {
		return ErrNoSizes
	}
	for _, s := range o.Sizes {
		if s < 1 {
			return fmt.Errorf("%w: %d", ErrBadSize, s)
		}
	}
	if o.Trials < 1 {
		return fmt.Errorf("%w: %d", ErrBadTrials, o.Trials)
	}
	if o.Method != prim_kruskal.MethodKruskal && o.Method != prim_kruskal.MethodPrim {
		return fmt.Errorf("sweep: %w: %q", prim_kruskal.ErrUnknownMethod, o.Method)
	}

	return nil
}

// trialSeed spreads (base, size, trial) over distinct seeds.
func trialSeed(base int64, size, trial int) int64 {
	return base*1_000_003 + int64(size)*101 + int64(trial)
}

// runTrial generates, ingests and times one network.
func runTrial(cfg Options, size int, seed int64) (Trial, error) {
	d, err := builder.BuildNetwork([]builder.BuilderOption{
		builder.WithSeed(seed),
		builder.WithWeightFn(builder.UniformIntWeightFn(1, cfg.MaxWeight)),
	}, builder.RandomSparse(size, cfg.Probability))
	if err != nil {
		return Trial{}, fmt.Errorf("sweep: size %d: %w", size, err)
	}
	graph, _, err := d.Graph()
	if err != nil {
		return Trial{}, fmt.Errorf("sweep: size %d: %w", size, err)
	}

	t0 := time.Now()
	forest, err := prim_kruskal.Compute(graph, prim_kruskal.WithMethod(cfg.Method))
	elapsed := time.Since(t0)
	if err != nil {
		return Trial{}, fmt.Errorf("sweep: size %d: %w", size, err)
	}

	return Trial{
		Size:     size,
		Seed:     seed,
		Edges:    graph.EdgeCount(),
		Weight:   forest.TotalWeight,
		Duration: elapsed,
	}, nil
}

func aggregate(size int, trials []Trial) Point {
	p := Point{Size: size, Trials: len(trials)}
	var sum time.Duration
	edges := 0
	for i, t := range trials {
		sum += t.Duration
		edges += t.Edges
		if i == 0 || t.Duration < p.Min {
			p.Min = t.Duration
		}
		if t.Duration > p.Max {
			p.Max = t.Duration
		}
	}
	if len(trials) > 0 {
		p.Mean = sum / time.Duration(len(trials))
		p.MeanEdges = float64(edges) / float64(len(trials))
	}

	return p
}
