package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/refframe/epoch"
	"github.com/katalvlaran/refframe/frame"
	"github.com/katalvlaran/refframe/framegraph"
)

func newGraphCmd(a *app) *cobra.Command {
	var from, to, epochText string

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Export the frame graph as a Mermaid diagram",
		Long: `Prints a Mermaid flowchart (graph LR) of every frame and edge. With --epoch,
edges are labelled with their cost at that epoch. With --from and --to, the
cheapest route at that epoch is highlighted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.graph()
			if err != nil {
				return err
			}
			if (from == "") != (to == "") {
				return errors.New("--from and --to go together")
			}

			var overlay *framegraph.MermaidOverlay
			if epochText != "" || from != "" {
				e, err := epochFlag(epochText)
				if err != nil {
					return err
				}
				overlay = &framegraph.MermaidOverlay{Epoch: &e}
				if from != "" {
					p, err := routeOf(g, from, to, e)
					if err != nil {
						return err
					}
					overlay.Path = &p
				}
			}

			fmt.Fprint(cmd.OutOrStdout(), g.Mermaid(overlay))

			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "highlight the route from this frame")
	cmd.Flags().StringVar(&to, "to", "", "highlight the route to this frame")
	cmd.Flags().StringVar(&epochText, "epoch", "", "label edges with their cost at this epoch")

	return cmd
}

// routeOf parses both frame names and resolves the route between them.
func routeOf(g *framegraph.Graph, from, to string, e epoch.Epoch) (framegraph.Path, error) {
	src, err := frame.Parse(from)
	if err != nil {
		return framegraph.Path{}, err
	}
	dst, err := frame.Parse(to)
	if err != nil {
		return framegraph.Path{}, err
	}

	return g.Path(src, dst, e)
}
