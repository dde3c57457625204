package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphptol/internal/session"
)

func newConvertCmd(a *app) *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "convert IN OUT",
		Short: "Convert between adjacency matrix and adjacency list files",
		Example: `  graphptol convert --from matrix --to list graph.txt graph.adj
  graphptol convert --from list --to matrix graph.adj graph.txt`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			inFormat, err := session.ParseFileFormat(from)
			if err != nil {
				return err
			}
			outFormat, err := session.ParseFileFormat(to)
			if err != nil {
				return err
			}

			sess := a.newSession()
			if err := sess.LoadFile(args[0], inFormat); err != nil {
				return err
			}
			if err := sess.SaveFile(args[1], outFormat); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d nodes, %d edges)\n",
				args[1], sess.NodeCount(), sess.EdgeCount())

			return err
		},
	}
	cmd.Flags().StringVar(&from, "from", string(session.FormatMatrix), "input format: matrix or list")
	cmd.Flags().StringVar(&to, "to", string(session.FormatList), "output format: matrix or list")

	return cmd
}
