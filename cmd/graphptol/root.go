package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphptol/internal/config"
	"github.com/katalvlaran/graphptol/internal/logging"
	"github.com/katalvlaran/graphptol/internal/session"
)

// app is the state shared by every subcommand, filled in PersistentPreRunE.
type app struct {
	configPath string
	logLevel   string

	cfg      *config.Config
	logger   *slog.Logger
	closeLog func() error
}

func newRootCmd() *cobra.Command {
	a := &app{closeLog: func() error { return nil }}

	root := &cobra.Command{
		Use:   "graphptol",
		Short: "Build undirected graphs and find shortest paths",
		Long: `graphptol builds small undirected, unweighted graphs, finds minimum-hop
paths between nodes, and reads and writes adjacency matrix and adjacency
list files. Run "graphptol tui" for the interactive editor.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.closeLog()
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default $"+config.EnvConfigPath+", ./graphptol.yaml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override log level: debug, info, warn, error")

	root.AddCommand(
		newTUICmd(a),
		newPathCmd(a),
		newConvertCmd(a),
		newRenderCmd(a),
		newInfoCmd(a),
		newGenerateCmd(a),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, path, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}

	lc := logging.Config{Level: cfg.LogLevel, File: cfg.LogFile, Output: cmd.ErrOrStderr()}
	// the interactive screen owns the terminal
	if cmd.Name() == "tui" && cfg.LogFile == "" {
		lc.Discard = true
	}
	logger, closeLog, err := logging.New(lc)
	if err != nil {
		return err
	}

	a.cfg, a.logger, a.closeLog = cfg, logger, closeLog
	a.logger.Debug("config loaded", "path", path, "command", cmd.Name())

	return nil
}

func (a *app) newSession() *session.Session {
	return session.New(a.cfg, a.logger)
}

// inputFlags are the mutually exclusive --matrix and --list file flags.
type inputFlags struct {
	matrix string
	list   string
}

func (f *inputFlags) register(cmd *cobra.Command, required bool) {
	cmd.Flags().StringVar(&f.matrix, "matrix", "", "adjacency matrix file")
	cmd.Flags().StringVar(&f.list, "list", "", "adjacency list file")
	cmd.MarkFlagsMutuallyExclusive("matrix", "list")
	if required {
		cmd.MarkFlagsOneRequired("matrix", "list")
	}
}

// load reads the selected file into s. It is a no-op when neither flag is set.
func (f *inputFlags) load(s *session.Session) error {
	switch {
	case f.matrix != "":
		return s.LoadMatrixFile(f.matrix)
	case f.list != "":
		return s.LoadListFile(f.list)
	}

	return nil
}

func (f *inputFlags) path() string {
	if f.matrix != "" {
		return f.matrix
	}

	return f.list
}

// format reports how path() is parsed.
func (f *inputFlags) format() session.FileFormat {
	if f.matrix != "" {
		return session.FormatMatrix
	}

	return session.FormatList
}
