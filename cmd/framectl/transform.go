package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/refframe/frame"
	"github.com/katalvlaran/refframe/state"
)

func newTransformCmd(a *app) *cobra.Command {
	var (
		from, to, epochText string
		pos, vel, acc       []float64
	)

	cmd := &cobra.Command{
		Use:   "transform",
		Short: "Transform a position, velocity and acceleration between frames",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.graph()
			if err != nil {
				return err
			}
			src, err := frame.Parse(from)
			if err != nil {
				return err
			}
			dst, err := frame.Parse(to)
			if err != nil {
				return err
			}
			e, err := epochFlag(epochText)
			if err != nil {
				return err
			}

			var s state.State
			if s.Position, err = vecFlag("pos", pos); err != nil {
				return err
			}
			if s.Velocity, err = vecFlag("vel", vel); err != nil {
				return err
			}
			if s.Acceleration, err = vecFlag("acc", acc); err != nil {
				return err
			}

			t, err := g.Transform(src, dst, e)
			if err != nil {
				return err
			}
			r := t.State(s)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s→%s at %s\n", t.From(), t.To(), e)
			fmt.Fprintf(out, "position     %v\n", r.Position)
			fmt.Fprintf(out, "velocity     %v\n", r.Velocity)
			fmt.Fprintf(out, "acceleration %v\n", r.Acceleration)

			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "source frame")
	cmd.Flags().StringVar(&to, "to", "", "target frame")
	cmd.Flags().StringVar(&epochText, "epoch", "", "query epoch (default J2000)")
	cmd.Flags().Float64SliceVar(&pos, "pos", nil, "position x,y,z (m)")
	cmd.Flags().Float64SliceVar(&vel, "vel", nil, "velocity x,y,z (m/s)")
	cmd.Flags().Float64SliceVar(&acc, "acc", nil, "acceleration x,y,z (m/s²)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
