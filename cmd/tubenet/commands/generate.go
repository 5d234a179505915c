package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/tubenet/builder"
	"github.com/katalvlaran/tubenet/ingest"
)

// Generator kinds accepted by generate --kind.
const (
	kindLines    = "lines"
	kindRandom   = "random"
	kindPath     = "path"
	kindCycle    = "cycle"
	kindStar     = "star"
	kindComplete = "complete"
	kindGrid     = "grid"
)

var generatorKinds = []string{kindLines, kindRandom, kindPath, kindCycle, kindStar, kindComplete, kindGrid}

// Station naming schemes accepted by generate --ids.
const (
	idsStation = "station"
	idsNumber  = "number"
	idsLetters = "letters"
	idsPrefix  = "prefix"
)

// generateFlags mirrors the builder options for the command line.
type generateFlags struct {
	kind      string
	lines     int
	total     int
	rows      int
	prob      float64
	minWeight int
	maxWeight int
	real      bool
	line      string
	ids       string
	prefix    string
	seed      int64
	out       string
}

func (f *generateFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.kind, "kind", kindLines, "generator: "+strings.Join(generatorKinds, ", "))
	fs.IntVar(&f.lines, "lines", 5, "number of lines (kind=lines)")
	fs.IntVar(&f.total, "stations", 50, "number of stations")
	fs.IntVar(&f.rows, "rows", 5, "grid rows; columns are stations/rows (kind=grid)")
	fs.Float64Var(&f.prob, "p", 0.15, "pair probability (kind=random)")
	fs.IntVar(&f.minWeight, "min-weight", 1, "smallest connection time in minutes")
	fs.IntVar(&f.maxWeight, "max-weight", 20, "largest connection time in minutes")
	fs.BoolVar(&f.real, "real", false, "draw fractional minutes instead of whole ones")
	fs.StringVar(&f.line, "line", "", "line name stamped on generated connections (not kind=lines)")
	fs.StringVar(&f.ids, "ids", idsStation, "station names: station, number, letters or prefix")
	fs.StringVar(&f.prefix, "prefix", "S", "name prefix for --ids prefix")
	fs.Int64Var(&f.seed, "seed", 1, "random seed")
	fs.StringVarP(&f.out, "out", "f", "-", "output file, - for stdout")
}

// weightFn picks the minutes distribution for --min-weight..--max-weight.
func (f *generateFlags) weightFn() (builder.WeightFn, error) {
	if f.maxWeight < 1 {
		return nil, fmt.Errorf("generate: --max-weight must be at least 1, got %d", f.maxWeight)
	}
	if f.minWeight < 0 || f.minWeight > f.maxWeight {
		return nil, fmt.Errorf("generate: --min-weight must be in [0, %d], got %d", f.maxWeight, f.minWeight)
	}
	switch {
	case f.minWeight == f.maxWeight:
		return builder.ConstantWeightFn(float64(f.minWeight)), nil
	case f.real:
		return builder.UniformWeightFn(float64(f.minWeight), float64(f.maxWeight)), nil
	default:
		return builder.UniformIntWeightFn(f.minWeight, f.maxWeight), nil
	}
}

func (f *generateFlags) idScheme() (builder.BuilderOption, error) {
	switch f.ids {
	case idsStation:
		return builder.WithIDScheme(builder.StationIDFn), nil
	case idsNumber:
		return builder.WithIDScheme(builder.DefaultIDFn), nil
	case idsLetters:
		return builder.WithExcelColumnIDs(), nil
	case idsPrefix:
		if f.prefix == "" {
			return nil, errors.New("generate: --ids prefix needs a non-empty --prefix")
		}
		return builder.WithSymbNumb(f.prefix), nil
	default:
		return nil, fmt.Errorf("generate: unknown id scheme %q", f.ids)
	}
}

func (f *generateFlags) constructor() (builder.Constructor, error) {
	switch f.kind {
	case kindLines:
		return builder.Lines(f.lines, f.total), nil
	case kindRandom:
		return builder.RandomSparse(f.total, f.prob), nil
	case kindPath:
		return builder.Path(f.total), nil
	case kindCycle:
		return builder.Cycle(f.total), nil
	case kindStar:
		return builder.Star(f.total), nil
	case kindComplete:
		return builder.Complete(f.total), nil
	case kindGrid:
		if f.rows < 1 {
			return nil, fmt.Errorf("generate: --rows must be at least 1, got %d", f.rows)
		}
		return builder.Grid(f.rows, f.total/f.rows), nil
	default:
		return nil, fmt.Errorf("generate: unknown kind %q (want one of %s)", f.kind, strings.Join(generatorKinds, ", "))
	}
}

// options resolves the flags into builder options and one constructor.
func (f *generateFlags) options() ([]builder.BuilderOption, builder.Constructor, error) {
	cons, err := f.constructor()
	if err != nil {
		return nil, nil, err
	}
	weights, err := f.weightFn()
	if err != nil {
		return nil, nil, err
	}
	ids, err := f.idScheme()
	if err != nil {
		return nil, nil, err
	}

	return []builder.BuilderOption{
		builder.WithSeed(f.seed),
		builder.WithWeightFn(weights),
		builder.WithLine(f.line),
		ids,
	}, cons, nil
}

func (a *app) generateCmd() *cobra.Command {
	var flags generateFlags
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic timetable CSV",
		Long: `Generate a timetable and write it as CSV.

  --kind lines     tube-like network: --lines lines over --stations stations
  --kind random    random connected network of --stations stations, pair probability --p
  --kind path      one line through --stations stations
  --kind cycle     a circle line of --stations stations
  --kind star      a hub joined to every other station
  --kind complete  every pair of stations joined
  --kind grid      --rows by stations/rows street grid

Connection times are drawn from --min-weight..--max-weight (lines uses its own ranges).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, cons, err := flags.options()
			if err != nil {
				return err
			}
			d, err := builder.BuildNetwork(opts, cons)
			if err != nil {
				return err
			}
			if err := writeDraft(cmd.OutOrStdout(), flags.out, d); err != nil {
				return err
			}
			a.logger.Info("timetable generated",
				"kind", flags.kind, "stations", d.StationCount(), "connections", d.ConnectionCount(), "out", flags.out)

			return nil
		},
	}
	flags.register(cmd.Flags())

	return cmd
}

// writeDraft writes d as CSV to stdout, or to path unless it is empty or "-".
func writeDraft(stdout io.Writer, path string, d *builder.Draft) error {
	if path == "" || path == "-" {
		return ingest.WriteCSV(stdout, d.Records(), d.Isolated()...)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := ingest.WriteCSV(f, d.Records(), d.Isolated()...); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("generate: closing %s: %w", path, err)
	}

	return nil
}
