package commands

import (
	"github.com/spf13/cobra"
)

func solveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Print the farthest loop distance and the enclosed cell count",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := a.solve(cmd, args)
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), rep)
			return nil
		},
	}
	return cmd
}
