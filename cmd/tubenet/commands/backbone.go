package commands

import (
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tubenet/network"
)

func (a *app) backboneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backbone",
		Short: "Minimum spanning backbone and closable connections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := a.loadNetwork()
			if err != nil {
				return err
			}
			bb, err := n.Backbone()
			if err != nil {
				return err
			}

			return a.printer.Backbone(bb)
		},
	}
}

func (a *app) impactCmd() *cobra.Command {
	var (
		tries int
		limit int
		seed  int64
	)
	cmd := &cobra.Command{
		Use:   "impact [FROM TO]",
		Short: "Compare journeys on the full network and on the backbone alone",
		Long: `With two stations, compare that journey on the full network and on the
backbone alone. Without arguments, sample random station pairs and report
those whose fastest route relies on a closable connection.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return cobra.ExactArgs(2)(cmd, args)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.loadNetwork()
			if err != nil {
				return err
			}
			if len(args) == 2 {
				im, err := n.Impact(args[0], args[1])
				if err != nil {
					return err
				}
				return a.printer.Impacts([]*network.Impact{im})
			}

			impacts, err := n.AffectedJourneys(rand.New(rand.NewSource(seed)), tries, limit)
			if err != nil {
				return err
			}
			a.logger.Info("impact sample", "tries", tries, "found", len(impacts))

			return a.printer.Impacts(impacts)
		},
	}
	cmd.Flags().IntVar(&tries, "tries", 50, "random station pairs to test")
	cmd.Flags().IntVar(&limit, "limit", 3, "affected journeys to report")
	cmd.Flags().Int64Var(&seed, "seed", 1, "sampling seed")

	return cmd
}

func (a *app) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Station and connection counts and the network's islands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := a.loadNetwork()
			if err != nil {
				return err
			}
			ov, err := n.Overview()
			if err != nil {
				return err
			}

			return a.printer.Overview(ov)
		},
	}
}
