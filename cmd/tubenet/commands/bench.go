package commands

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/tubenet/prim_kruskal"
	"github.com/katalvlaran/tubenet/sweep"
)

// benchFlags mirrors sweep.Options for the command line.
type benchFlags struct {
	from, to, step int
	trials         int
	prob           float64
	maxWeight      int
	seed           int64
	workers        int
	method         string
}

func (f *benchFlags) register(fs *pflag.FlagSet) {
	fs.IntVar(&f.from, "from", sweep.DefaultFrom, "smallest network size")
	fs.IntVar(&f.to, "to", sweep.DefaultTo, "largest network size")
	fs.IntVar(&f.step, "step", sweep.DefaultStep, "size increment")
	fs.IntVar(&f.trials, "trials", sweep.DefaultTrials, "networks timed per size")
	fs.Float64Var(&f.prob, "p", sweep.DefaultProbability, "pair probability")
	fs.IntVar(&f.maxWeight, "max-weight", sweep.DefaultMaxWeight, "largest connection time in minutes")
	fs.Int64Var(&f.seed, "seed", sweep.DefaultSeed, "base seed")
	fs.IntVar(&f.workers, "workers", 1, "concurrent trials")
	fs.StringVar(&f.method, "method", prim_kruskal.MethodKruskal, "kruskal or prim")
}

func (f *benchFlags) options() ([]sweep.Option, error) {
	if f.maxWeight < 1 {
		return nil, fmt.Errorf("bench: --max-weight must be at least 1, got %d", f.maxWeight)
	}

	return []sweep.Option{
		sweep.WithSizes(sweep.Range(f.from, f.to, f.step)...),
		sweep.WithTrials(f.trials),
		sweep.WithProbability(f.prob),
		sweep.WithMaxWeight(f.maxWeight),
		sweep.WithSeed(f.seed),
		sweep.WithWorkers(f.workers),
		sweep.WithMethod(f.method),
	}, nil
}

func (a *app) benchCmd() *cobra.Command {
	var flags benchFlags
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time spanning-forest construction on random networks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := flags.options()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			rep, err := sweep.Run(ctx, append(opts, sweep.WithLogger(a.logger))...)
			if err != nil {
				return err
			}

			return a.printer.Sweep(rep)
		},
	}
	flags.register(cmd.Flags())

	return cmd
}
