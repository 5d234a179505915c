// File: options.go
// Role: sweep configuration, defaults and functional options.

package sweep

import (
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/tubenet/prim_kruskal"
)

// Default sweep parameters.
const (
	DefaultFrom        = 100
	DefaultTo          = 1000
	DefaultStep        = 100
	DefaultTrials      = 3
	DefaultProbability = 0.15
	DefaultMaxWeight   = 20
	DefaultSeed        = 1
)

var (
	// ErrNoSizes indicates an empty size list.
	ErrNoSizes = errors.New("sweep: no sizes")

	// ErrBadSize indicates a size below 1.
	ErrBadSize = errors.New("sweep: size must be positive")

	// ErrBadTrials indicates a trial count below 1.
	ErrBadTrials = errors.New("sweep: trials must be positive")
)

// Options configures Run.
type Options struct {
	Sizes       []int
	Trials      int
	Probability float64
	MaxWeight   int
	Seed        int64
	Workers     int
	Method      string
	Logger      *slog.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns sizes 100..1000 step 100, 3 trials, p = 0.15,
// weights 1..20, one worker and Kruskal.
func DefaultOptions() Options {
	return Options{
		Sizes:       Range(DefaultFrom, DefaultTo, DefaultStep),
		Trials:      DefaultTrials,
		Probability: DefaultProbability,
		MaxWeight:   DefaultMaxWeight,
		Seed:        DefaultSeed,
		Workers:     1,
		Method:      prim_kruskal.MethodKruskal,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Range returns from, from+step, ... up to and including to.
// A non-positive step yields just from.
func Range(from, to, step int) []int {
	if step <= 0 {
		return []int{from}
	}
	var out []int
	for s := from; s <= to; s += step {
		out = append(out, s)
	}

	return out
}

// WithSizes replaces the sizes to sweep.
func WithSizes(sizes ...int) Option {
	return func(o *Options) {
		o.Sizes = append([]int(nil), sizes...)
	}
}

// WithTrials sets how many networks are timed per size.
func WithTrials(n int) Option {
	return func(o *Options) {
		o.Trials = n
	}
}

// WithProbability sets the pair probability passed to builder.RandomSparse.
func WithProbability(p float64) Option {
	return func(o *Options) {
		o.Probability = p
	}
}

// WithMaxWeight sets the largest connection time. Panics if w < 1.
func WithMaxWeight(w int) Option {
	if w < 1 {
		panic("sweep: WithMaxWeight requires w >= 1")
	}
	return func(o *Options) {
		o.MaxWeight = w
	}
}

// WithSeed sets the base seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithWorkers bounds concurrent trials. Values below 1 mean 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			n = 1
		}
		o.Workers = n
	}
}

// WithMethod selects prim_kruskal.MethodKruskal or prim_kruskal.MethodPrim.
func WithMethod(m string) Option {
	return func(o *Options) {
		o.Method = m
	}
}

// WithLogger receives one debug line per trial. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}
