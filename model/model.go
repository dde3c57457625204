package model

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/graphptol/adjlist"
	"github.com/katalvlaran/graphptol/bfs"
	"github.com/katalvlaran/graphptol/core"
	"github.com/katalvlaran/graphptol/dfs"
	"github.com/katalvlaran/graphptol/matrix"
)

// DefaultFirstAutoID is the first ID handed out by AddNode.
const DefaultFirstAutoID core.NodeID = 100

// Option configures a Model at construction.
type Option func(*Model)

// WithFirstAutoID sets the first ID AddNode hands out.
func WithFirstAutoID(id core.NodeID) Option {
	return func(m *Model) { m.nextID = id }
}

// WithAutoCreateEndpoints makes AddEdge create missing endpoints instead of
// failing with ErrUnknownNode.
func WithAutoCreateEndpoints(enabled bool) Option {
	return func(m *Model) { m.autoCreate = enabled }
}

// WithCompactLists makes list exports write each edge once.
func WithCompactLists(enabled bool) Option {
	return func(m *Model) { m.compactLists = enabled }
}

// Model owns the current graph and the auto-ID counter.
type Model struct {
	graph        *core.Graph
	nextID       core.NodeID
	autoCreate   bool
	compactLists bool
}

// New returns a model holding an empty graph.
func New(opts ...Option) *Model {
	m := &Model{
		graph:  core.NewGraph(),
		nextID: DefaultFirstAutoID,
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// LoadMatrix replaces the graph with the adjacency matrix read from r.
// On error the current graph is kept.
func (m *Model) LoadMatrix(r io.Reader) error {
	rows, err := matrix.Read(r)
	if err != nil {
		return invalidFormat(err)
	}

	return m.FromMatrix(rows)
}

// FromMatrix replaces the graph with the one described by a square matrix
// over nodes 0..n-1. On error the current graph is kept.
func (m *Model) FromMatrix(rows [][]float64) error {
	g, err := matrix.FromRows(rows)
	if err != nil {
		return invalidFormat(err)
	}
	m.graph = g

	return nil
}

// LoadAdjacencyList replaces the graph with the adjacency list read from r.
// On error the current graph is kept.
func (m *Model) LoadAdjacencyList(r io.Reader) error {
	g, err := adjlist.Load(r)
	if err != nil {
		return invalidFormat(err)
	}
	m.graph = g

	return nil
}

// SetGraph replaces the graph with a copy of g. The auto-ID counter is kept.
func (m *Model) SetGraph(g *core.Graph) {
	if g == nil {
		g = core.NewGraph()
	}
	m.graph = g.Clone()
}

// AddNode inserts an isolated node with the next free auto ID and returns it.
func (m *Model) AddNode() core.NodeID {
	id := m.nextID
	for m.graph.HasNode(id) {
		id++
	}
	_ = m.graph.AddNode(id)
	m.nextID = id + 1

	return id
}

// NextAutoID reports the value the counter currently holds.
func (m *Model) NextAutoID() core.NodeID { return m.nextID }

// AddEdge inserts {a,b}. Adding an existing edge is a no-op.
//
// Errors: ErrSelfLoop; ErrUnknownNode when an endpoint is missing and
// auto-creation is off. Nothing changes on error.
func (m *Model) AddEdge(a, b core.NodeID) error {
	if a == b {
		return fmt.Errorf("%w: %s", ErrSelfLoop, a)
	}
	if !m.autoCreate {
		for _, id := range [...]core.NodeID{a, b} {
			if !m.graph.HasNode(id) {
				return fmt.Errorf("%w: %s", ErrUnknownNode, id)
			}
		}
	} else {
		_ = m.graph.AddNode(a)
		_ = m.graph.AddNode(b)
	}
	if _, err := m.graph.AddEdge(a, b); err != nil {
		return fmt.Errorf("model: add edge %s-%s: %w", a, b, err)
	}

	return nil
}

// ShortestPath returns a minimum-hop path from a to b, endpoints included.
// a == b (present) yields [a]. Ties resolve toward smaller IDs.
//
// opts are passed to the underlying BFS, e.g. bfs.WithOnVisit.
//
// Errors: ErrNoPathExists if either node is absent or b is unreachable.
func (m *Model) ShortestPath(a, b core.NodeID, opts ...bfs.Option) ([]core.NodeID, error) {
	if !m.graph.HasNode(a) || !m.graph.HasNode(b) {
		return nil, fmt.Errorf("%w: %s to %s (unknown node)", ErrNoPathExists, a, b)
	}
	path, err := bfs.ShortestPath(m.graph, a, b, opts...)
	if errors.Is(err, bfs.ErrNoPath) {
		return nil, fmt.Errorf("%w: %s to %s", ErrNoPathExists, a, b)
	}
	if err != nil {
		return nil, fmt.Errorf("model: shortest path: %w", err)
	}

	return path, nil
}

// Nodes lists node IDs in ascending order.
func (m *Model) Nodes() []core.NodeID { return m.graph.Nodes() }

// HasNode reports whether id is in the graph.
func (m *Model) HasNode(id core.NodeID) bool { return m.graph.HasNode(id) }

// NodeCount returns |V|.
func (m *Model) NodeCount() int { return m.graph.NodeCount() }

// EdgeCount returns |E|.
func (m *Model) EdgeCount() int { return m.graph.EdgeCount() }

// Graph returns a snapshot of the current graph that the caller may keep.
func (m *Model) Graph() *core.Graph { return m.graph.Clone() }

// ExportMatrix returns the 0/1 adjacency matrix with rows in Nodes() order.
func (m *Model) ExportMatrix() *matrix.AdjacencyMatrix {
	am, _ := matrix.NewAdjacencyMatrix(m.graph) // graph is never nil

	return am
}

// ExportAdjacencyList returns one line per node: ID then neighbors.
func (m *Model) ExportAdjacencyList() []string {
	lines, _ := adjlist.Lines(m.graph, adjlist.WithCompact(m.compactLists))

	return lines
}

// WriteMatrix writes ExportMatrix in text form.
func (m *Model) WriteMatrix(w io.Writer) error {
	return m.ExportMatrix().Encode(w)
}

// WriteAdjacencyList writes the adjacency list, preceded by header comments.
func (m *Model) WriteAdjacencyList(w io.Writer, header ...string) error {
	return adjlist.Write(w, m.graph,
		adjlist.WithCompact(m.compactLists),
		adjlist.WithHeader(header...),
	)
}

// Components returns the connected components, each sorted ascending,
// ordered by their smallest member.
func (m *Model) Components() [][]core.NodeID {
	comps, _ := dfs.Components(m.graph) // graph is never nil

	return comps
}

// FindCycle returns one cycle as a closed walk, or ok=false for a forest.
func (m *Model) FindCycle() (ok bool, cycle []core.NodeID) {
	ok, cycle, _ = dfs.FindCycle(m.graph)

	return ok, cycle
}

func invalidFormat(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidFormat, err)
}
