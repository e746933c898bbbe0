package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pipeloop/render"
)

func renderCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Draw the classified grid, then print the results",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := a.solve(cmd, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if err := render.Render(out, rep.Mutual, rep.Classes, render.WithColor(!color.NoColor)); err != nil {
				return err
			}
			printResult(out, rep)
			return nil
		},
	}
	return cmd
}
