package render

import (
	"fmt"
	"time"

	"github.com/katalvlaran/tubenet/sweep"
)

// Sweep prints a timing table, one row per size.
func (p *Printer) Sweep(rep *sweep.Report) error {
	if ok, err := p.encode(rep); ok {
		return err
	}

	lines := []string{
		titleStyle.Render(fmt.Sprintf("%s timing (p=%g, minutes 1..%d)", rep.Method, rep.Probability, rep.MaxWeight)),
		labelStyle.Render(fmt.Sprintf("%8s %8s %12s %12s %12s", "size", "edges", "mean", "min", "max")),
	}
	for _, pt := range rep.Points {
		lines = append(lines, fmt.Sprintf("%8d %8.1f %12s %12s %12s",
			pt.Size, pt.MeanEdges, round(pt.Mean), round(pt.Min), round(pt.Max)))
	}
	lines = append(lines, field("elapsed", round(rep.Elapsed)))

	return p.println(lines...)
}

func round(d time.Duration) time.Duration {
	if d > time.Millisecond {
		return d.Round(time.Microsecond)
	}

	return d
}
