package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphptol/core"
)

func newPathCmd(a *app) *cobra.Command {
	var in inputFlags
	cmd := &cobra.Command{
		Use:   "path FROM TO",
		Short: "Print a shortest path between two nodes",
		Long: `Print a minimum-hop path from FROM to TO, endpoints included, separated by
spaces. Among equally short paths the one through smaller node IDs wins.
Exits non-zero when there is no path.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := parsePair(args[0], args[1])
			if err != nil {
				return err
			}
			sess := a.newSession()
			if err := in.load(sess); err != nil {
				return err
			}
			path, err := sess.FindPath(from, to)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), joinIDs(path))

			return err
		},
	}
	in.register(cmd, true)

	return cmd
}

func parsePair(a, b string) (core.NodeID, core.NodeID, error) {
	from, err := core.ParseNodeID(a)
	if err != nil {
		return 0, 0, fmt.Errorf("bad node id %q: %w", a, err)
	}
	to, err := core.ParseNodeID(b)
	if err != nil {
		return 0, 0, fmt.Errorf("bad node id %q: %w", b, err)
	}

	return from, to, nil
}

func joinIDs(ids []core.NodeID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.String()
	}

	return strings.Join(parts, " ")
}
