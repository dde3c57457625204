package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphptol/internal/tui"
	"github.com/katalvlaran/graphptol/internal/watch"
)

func newTUICmd(a *app) *cobra.Command {
	var (
		in       inputFlags
		watching bool
	)
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive graph editor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := a.newSession()
			if err := in.load(sess); err != nil {
				return err
			}

			var cfg tui.Config
			if watching && in.path() != "" {
				w, err := watch.New(in.path(), watch.WithLogger(a.logger))
				if err != nil {
					return err
				}
				defer w.Close()
				cfg.Watcher, cfg.WatchFormat = w, in.format()
			}

			p := tea.NewProgram(tui.New(sess, cfg), tea.WithAltScreen(),
				tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout()))
			_, err := p.Run()

			return err
		},
	}
	in.register(cmd, false)
	cmd.Flags().BoolVar(&watching, "watch", false, "reload the file when it changes on disk")

	return cmd
}
