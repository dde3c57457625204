// Package session adapts a model.Model to an interactive front end: it owns
// the graph, the highlighted path, the cached layout and the file the graph
// came from, and decides which actions are currently available.
package session

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/katalvlaran/graphptol/bfs"
	"github.com/katalvlaran/graphptol/core"
	"github.com/katalvlaran/graphptol/internal/config"
	"github.com/katalvlaran/graphptol/layout"
	"github.com/katalvlaran/graphptol/model"
	"github.com/katalvlaran/graphptol/render"
)

// MsgNoPath is shown when two selected nodes are not connected.
const MsgNoPath = "No path between the nodes !"

// ErrNoSource is returned by Reload before any file has been loaded.
var ErrNoSource = errors.New("session: nothing loaded yet")

// FileFormat names one of the two on-disk graph formats.
type FileFormat string

const (
	FormatMatrix FileFormat = "matrix"
	FormatList   FileFormat = "list"
)

// ParseFileFormat accepts "matrix" or "list".
func ParseFileFormat(s string) (FileFormat, error) {
	switch FileFormat(s) {
	case FormatMatrix, FormatList:
		return FileFormat(s), nil
	}

	return "", fmt.Errorf("session: unknown file format %q (want matrix or list)", s)
}

// Controls reports which actions are enabled.
type Controls struct {
	AddNode    bool
	AddEdge    bool
	FindPath   bool
	LoadMatrix bool
	LoadList   bool
	SaveMatrix bool
	SaveList   bool
}

// Session is not safe for concurrent use; front ends serialize calls.
type Session struct {
	id     uuid.UUID
	cfg    *config.Config
	model  *model.Model
	engine layout.Algorithm
	logger *slog.Logger

	source       string
	sourceFormat FileFormat

	path      []core.NodeID
	positions layout.Positions // nil when stale
}

// New creates a session with an empty graph. A nil cfg means defaults;
// a nil logger discards.
func New(cfg *config.Config, logger *slog.Logger) *Session {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	id := uuid.New()

	return &Session{
		id:  id,
		cfg: cfg,
		model: model.New(
			model.WithFirstAutoID(core.NodeID(cfg.FirstAutoID)),
			model.WithAutoCreateEndpoints(cfg.AutoCreateEndpoints),
			model.WithCompactLists(cfg.List.Compact),
		),
		engine: layout.NewForceDirected(layoutOptions(cfg.Layout)),
		logger: logger.With("component", "session", "session_id", id.String()),
	}
}

func layoutOptions(c config.LayoutConfig) layout.Options {
	return layout.Options{
		Width:         c.Width,
		Height:        c.Height,
		MaxIterations: c.MaxIterations,
		Seed:          c.Seed,
		Threshold:     c.Threshold,
	}
}

func renderOptions(cfg *config.Config) render.Options {
	opts := render.DefaultOptions()
	opts.Width = cfg.Layout.Width
	opts.Height = cfg.Layout.Height
	opts.NodeColor = cfg.Render.NodeColor
	opts.PathColor = cfg.Render.PathColor
	opts.EdgeColor = cfg.Render.EdgeColor
	opts.Background = cfg.Render.Background
	opts.NodeRadius = cfg.Render.NodeRadius
	opts.ASCIIWidth = cfg.Render.ASCIIWidth
	opts.ASCIIHeight = cfg.Render.ASCIIHeight

	return opts
}

// ID returns the session identifier used in log lines.
func (s *Session) ID() string { return s.id.String() }

// Source returns the last loaded file and its format; empty if none.
func (s *Session) Source() (string, FileFormat) { return s.source, s.sourceFormat }

// Nodes returns node IDs in ascending order.
func (s *Session) Nodes() []core.NodeID { return s.model.Nodes() }

// NodeCount returns the number of nodes.
func (s *Session) NodeCount() int { return s.model.NodeCount() }

// EdgeCount returns the number of edges.
func (s *Session) EdgeCount() int { return s.model.EdgeCount() }

// Components returns the connected components of the current graph.
func (s *Session) Components() [][]core.NodeID { return s.model.Components() }

// FindCycle returns one cycle of the graph, or ok=false if it is a forest.
func (s *Session) FindCycle() (ok bool, cycle []core.NodeID) { return s.model.FindCycle() }

// Path returns the highlighted path, or nil.
func (s *Session) Path() []core.NodeID { return append([]core.NodeID(nil), s.path...) }

// Selectors returns the choices offered by node pickers, in Nodes order.
func (s *Session) Selectors() []string {
	ids := s.model.Nodes()
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}

	return out
}

// Controls enables the edge, path and save actions once there are two nodes.
func (s *Session) Controls() Controls {
	enough := s.model.NodeCount() >= 2

	return Controls{
		AddNode:    true,
		LoadMatrix: true,
		LoadList:   true,
		AddEdge:    enough,
		FindPath:   enough,
		SaveMatrix: enough,
		SaveList:   enough,
	}
}

// changed drops everything derived from the graph.
func (s *Session) changed() {
	s.path = nil
	s.positions = nil
}

// AddNode adds a node with the next automatic ID.
func (s *Session) AddNode() core.NodeID {
	id := s.model.AddNode()
	s.changed()
	s.logger.Debug("node added", "node", id, "nodes", s.model.NodeCount())

	return id
}

// AddEdge connects a and b.
func (s *Session) AddEdge(a, b core.NodeID) error {
	if err := s.model.AddEdge(a, b); err != nil {
		s.logger.Warn("add edge failed", "from", a, "to", b, "error", err)
		return err
	}
	s.changed()
	s.logger.Debug("edge added", "from", a, "to", b, "edges", s.model.EdgeCount())

	return nil
}

// FindPath computes and highlights the shortest path from a to b.
// On failure the previous highlight is cleared.
func (s *Session) FindPath(a, b core.NodeID) ([]core.NodeID, error) {
	explored := 0
	path, err := s.model.ShortestPath(a, b, bfs.WithOnVisit(func(core.NodeID, int) error {
		explored++
		return nil
	}))
	if err != nil {
		s.path = nil
		s.logger.Info("no path", "from", a, "to", b, "explored", explored, "error", err)
		return nil, err
	}
	s.path = path
	s.logger.Debug("path found", "from", a, "to", b, "hops", len(path)-1, "explored", explored)

	return append([]core.NodeID(nil), path...), nil
}

// LoadMatrixFile replaces the graph with an adjacency matrix file.
func (s *Session) LoadMatrixFile(path string) error { return s.LoadFile(path, FormatMatrix) }

// LoadListFile replaces the graph with an adjacency list file.
func (s *Session) LoadListFile(path string) error { return s.LoadFile(path, FormatList) }

// LoadFile replaces the graph with the contents of path. The graph is
// untouched if the file cannot be read or parsed.
func (s *Session) LoadFile(path string, format FileFormat) error {
	f, err := os.Open(path)
	if err != nil {
		s.logger.Error("open failed", "file", path, "error", err)
		return fmt.Errorf("session: open %s: %w", path, err)
	}
	defer f.Close()

	switch format {
	case FormatMatrix:
		err = s.model.LoadMatrix(f)
	case FormatList:
		err = s.model.LoadAdjacencyList(f)
	default:
		err = fmt.Errorf("session: unknown file format %q", format)
	}
	if err != nil {
		s.logger.Error("load failed", "file", path, "format", format, "error", err)
		return fmt.Errorf("%s: %w", path, err)
	}

	s.source, s.sourceFormat = path, format
	s.changed()
	s.logger.Info("graph loaded", "file", path, "format", format,
		"nodes", s.model.NodeCount(), "edges", s.model.EdgeCount())

	return nil
}

// Reload reads the last loaded file again.
func (s *Session) Reload() error {
	if s.source == "" {
		return ErrNoSource
	}

	return s.LoadFile(s.source, s.sourceFormat)
}

// SaveMatrixFile writes the adjacency matrix to path.
func (s *Session) SaveMatrixFile(path string) error { return s.SaveFile(path, FormatMatrix) }

// SaveListFile writes the adjacency list to path.
func (s *Session) SaveListFile(path string) error { return s.SaveFile(path, FormatList) }

// SaveFile writes the graph to path via a temporary file in the same
// directory, so a failed write never truncates an existing file. An existing
// file keeps its permission bits; a new one is created 0644.
func (s *Session) SaveFile(path string, format FileFormat) error {
	mode := os.FileMode(0o644)
	if fi, err := os.Stat(path); err == nil {
		mode = fi.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".graphptol-*")
	if err != nil {
		return fmt.Errorf("session: save %s: %w", path, err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	err = s.Write(tmp, format)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Chmod(tmp.Name(), mode)
	}
	if err == nil {
		err = os.Rename(tmp.Name(), path)
	}
	if err != nil {
		s.logger.Error("save failed", "file", path, "format", format, "error", err)
		return fmt.Errorf("session: save %s: %w", path, err)
	}
	s.logger.Info("graph saved", "file", path, "format", format)

	return nil
}

// Write encodes the graph in the given file format.
func (s *Session) Write(w io.Writer, format FileFormat) error {
	switch format {
	case FormatMatrix:
		return s.model.WriteMatrix(w)
	case FormatList:
		return s.model.WriteAdjacencyList(w)
	}

	return fmt.Errorf("session: unknown file format %q", format)
}

// UseGraph replaces the graph with a copy of g and forgets the source file.
func (s *Session) UseGraph(g *core.Graph) {
	s.model.SetGraph(g)
	s.source, s.sourceFormat = "", ""
	s.changed()
	s.logger.Info("graph replaced", "nodes", s.model.NodeCount(), "edges", s.model.EdgeCount())
}

// Layout returns node positions, recomputing them only after a change.
func (s *Session) Layout() layout.Positions {
	if s.positions == nil {
		s.positions = s.engine.Layout(s.model.Graph())
		s.logger.Debug("layout computed", "algorithm", s.engine.Name(), "nodes", len(s.positions))
	}

	return s.positions
}

// Render draws the graph and the highlighted path in the given format.
func (s *Session) Render(w io.Writer, format string) error {
	r, err := render.Get(format)
	if err != nil {
		return err
	}
	scene := render.Scene{Graph: s.model.Graph(), Positions: s.Layout(), Path: s.path}

	return r.Render(w, scene, renderOptions(s.cfg))
}

// Describe turns an action error into a status line for the user.
func Describe(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, model.ErrNoPathExists):
		return MsgNoPath
	case errors.Is(err, model.ErrUnknownNode):
		return "Unknown node: " + detail(err, model.ErrUnknownNode)
	case errors.Is(err, model.ErrSelfLoop):
		return "A node cannot be linked to itself"
	case errors.Is(err, model.ErrInvalidFormat):
		return "Invalid file: " + detail(err, model.ErrInvalidFormat)
	default:
		return err.Error()
	}
}

// detail drops the sentinel's own text from err's message, keeping the
// wrapped context around it.
func detail(err, sentinel error) string {
	msg := err.Error()
	for _, cut := range []string{sentinel.Error() + ": ", ": " + sentinel.Error(), sentinel.Error()} {
		if i := strings.Index(msg, cut); i >= 0 {
			msg = msg[:i] + msg[i+len(cut):]
			break
		}
	}

	return msg
}
