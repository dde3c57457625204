package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInfoCmd(a *app) *cobra.Command {
	var in inputFlags
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print node, edge and component counts and one cycle, if any",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := a.newSession()
			if err := in.load(sess); err != nil {
				return err
			}
			comps := sess.Components()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "nodes:      %d\n", sess.NodeCount())
			fmt.Fprintf(out, "edges:      %d\n", sess.EdgeCount())
			fmt.Fprintf(out, "components: %d\n", len(comps))
			for i, c := range comps {
				fmt.Fprintf(out, "  %d: %s\n", i+1, joinIDs(c))
			}
			if ok, cycle := sess.FindCycle(); ok {
				fmt.Fprintf(out, "cycle:      %s\n", joinIDs(cycle))
			} else {
				fmt.Fprintln(out, "cycle:      none (forest)")
			}

			return nil
		},
	}
	in.register(cmd, true)

	return cmd
}
