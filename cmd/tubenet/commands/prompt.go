package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/tubenet/stations"
)

// errNoInput indicates the prompt reached end of input before a valid answer.
var errNoInput = errors.New("no station given")

// prompter asks for station names until the index knows them.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
	idx *stations.Index
}

func newPrompter(in io.Reader, out io.Writer, idx *stations.Index) *prompter {
	return &prompter{in: bufio.NewScanner(in), out: out, idx: idx}
}

// station prompts with label and re-asks on unknown names.
func (p *prompter) station(label string) (string, error) {
	for {
		fmt.Fprintf(p.out, "%s: ", label)
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return "", err
			}
			return "", fmt.Errorf("%s: %w", strings.ToLower(label), errNoInput)
		}
		name := stations.Normalize(p.in.Text())
		if p.idx.Has(name) {
			return name, nil
		}
		fmt.Fprintf(p.out, "unknown station %q, try again\n", name)
	}
}

// pair returns the two stations named in args, prompting for any missing one.
// Names given as arguments must exist; they are not re-asked.
func (p *prompter) pair(args []string) (string, string, error) {
	names := make([]string, 2)
	labels := []string{"From", "To"}
	for i := range names {
		if i < len(args) {
			names[i] = args[i]
			continue
		}
		name, err := p.station(labels[i])
		if err != nil {
			return "", "", err
		}
		names[i] = name
	}

	return names[0], names[1], nil
}
