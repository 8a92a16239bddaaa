package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/refframe/frame"
	"github.com/katalvlaran/refframe/transform"
)

func newFramesCmd(a *app) *cobra.Command {
	var (
		edges           bool
		epochText, from string
	)

	cmd := &cobra.Command{
		Use:   "frames",
		Short: "List registered frames",
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

			frames := g.Frames()
			if from != "" {
				src, err := frame.Parse(from)
				if err != nil {
					return err
				}
				if frames, err = g.Reachable(src, e); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			for _, f := range frames {
				fmt.Fprintln(out, f)
				if !edges {
					continue
				}
				for _, edge := range g.Edges(f) {
					fmt.Fprintf(out, "  → %-12s cost %s\n", edge.To, formatCost(edge.Factory.Cost(e)))
				}
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&edges, "edges", false, "list outgoing edges with their cost")
	cmd.Flags().StringVar(&epochText, "epoch", "", "epoch for edge costs and reachability (default J2000)")
	cmd.Flags().StringVar(&from, "from", "", "only frames reachable from this frame, nearest first")

	return cmd
}

func formatCost(c float64) string {
	if c == transform.Impassable {
		return "impassable"
	}

	return fmt.Sprintf("%g", c)
}
