package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tubenet/network"
)

func (a *app) routeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "route [FROM] [TO]",
		Short: "Fastest journey between two stations",
		Long: `Find the journey with the least total minutes (Dijkstra).
Missing stations are asked for interactively.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.journeyQuery(cmd, args, "Fastest route", (*network.Network).ShortestRoute)
		},
	}
}

func (a *app) stopsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stops [FROM] [TO]",
		Short: "Journey with the fewest stops between two stations",
		Long: `Find the journey with the fewest connections (breadth-first search).
Its minutes may exceed the fastest route. Missing stations are asked for interactively.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.journeyQuery(cmd, args, "Fewest stops", (*network.Network).FewestStops)
		},
	}
}

// journeyQuery loads the network, resolves the two stations and prints query's answer.
func (a *app) journeyQuery(cmd *cobra.Command, args []string, title string,
	query func(*network.Network, string, string) (*network.Journey, error)) error {
	n, err := a.loadNetwork()
	if err != nil {
		return err
	}
	from, to, err := newPrompter(cmd.InOrStdin(), cmd.ErrOrStderr(), n.Index()).pair(args)
	if err != nil {
		return err
	}
	j, err := query(n, from, to)
	if err != nil {
		return err
	}

	return a.printer.Journey(title, j)
}
