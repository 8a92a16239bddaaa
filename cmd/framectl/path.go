package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPathCmd(a *app) *cobra.Command {
	var from, to, epochText string

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Show the cheapest route between two frames",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.graph()
			if err != nil {
				return err
			}
			e, err := epochFlag(epochText)
			if err != nil {
				return err
			}

			p, err := routeOf(g, from, to, e)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s  (cost %g, %d hops)\n", p, p.Cost, p.Len())
			for _, edge := range p.Edges {
				fmt.Fprintf(out, "  %s → %s  %s\n", edge.From, edge.To, formatCost(edge.Factory.Cost(e)))
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "source frame")
	cmd.Flags().StringVar(&to, "to", "", "target frame")
	cmd.Flags().StringVar(&epochText, "epoch", "", "query epoch (default J2000)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
