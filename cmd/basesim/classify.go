package main

import (
	"fmt"
	"strconv"

	"github.com/automoto/balloons-static/shared/gamemath"
	"github.com/automoto/balloons-static/shared/playarea"
	"github.com/automoto/balloons-static/sim"
	"github.com/spf13/cobra"
)

func newClassifyCmd(a *app) *cobra.Command {
	var wall bool

	cmd := &cobra.Command{
		Use:   "classify X Y",
		Short: "Print the play area regions a balloon center at (X, Y) is in",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("x: %w", err)
			}
			y, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("y: %w", err)
			}
			if !cmd.Flags().Changed("wall") {
				wall = a.cfg.Flags.WallVisible
			}

			scene, err := sim.LoadScene(a.cfg.Scene)
			if err != nil {
				return err
			}
			c, err := playarea.New(scene).Classify(gamemath.V(x, y), wall)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "column:   %s\n", c.Column)
			fmt.Fprintf(out, "row:      %s\n", c.Row)
			fmt.Fprintf(out, "landmark: %s\n", c.Landmark)
			fmt.Fprintf(out, "location: %s\n", c.Location)
			return nil
		},
	}
	cmd.Flags().BoolVar(&wall, "wall", true, "classify with the wall visible")
	return cmd
}
