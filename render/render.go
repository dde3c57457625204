// Package render draws a laid-out graph, with an optional highlighted path,
// as SVG or as ASCII art.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/graphptol/core"
	"github.com/katalvlaran/graphptol/layout"
)

// ErrUnknownFormat is returned by Get for an unsupported format name.
var ErrUnknownFormat = errors.New("render: unknown format")

// ErrMissingPosition indicates that a node of the scene has no layout position.
var ErrMissingPosition = errors.New("render: node has no position")

// Options controls colors and sizes.
type Options struct {
	Width       float64
	Height      float64
	Background  string
	NodeColor   string // nodes off the path
	PathColor   string // nodes on the path
	EdgeColor   string
	NodeRadius  float64
	FontSize    float64
	ShowLabels  bool
	ASCIIWidth  int
	ASCIIHeight int
}

// DefaultOptions matches the interactive tool: red nodes, blue path.
func DefaultOptions() Options {
	return Options{
		Width:       800,
		Height:      600,
		Background:  "#ffffff",
		NodeColor:   "red",
		PathColor:   "blue",
		EdgeColor:   "#444444",
		NodeRadius:  12,
		FontSize:    10,
		ShowLabels:  true,
		ASCIIWidth:  72,
		ASCIIHeight: 24,
	}
}

// Scene is everything a renderer needs.
type Scene struct {
	Graph     *core.Graph
	Positions layout.Positions
	// Path is the highlighted shortest path, possibly empty.
	Path []core.NodeID
}

// onPath returns the set of path nodes and the set of consecutive path edges.
func (s Scene) onPath() (map[core.NodeID]bool, map[core.Edge]bool) {
	nodes := make(map[core.NodeID]bool, len(s.Path))
	edges := make(map[core.Edge]bool, len(s.Path))
	for i, id := range s.Path {
		nodes[id] = true
		if i > 0 {
			u, v := s.Path[i-1], id
			if v < u {
				u, v = v, u
			}
			edges[core.Edge{U: u, V: v}] = true
		}
	}

	return nodes, edges
}

func (s Scene) validate() error {
	if s.Graph == nil {
		return errors.New("render: nil graph")
	}
	for _, id := range s.Graph.Nodes() {
		if _, ok := s.Positions[id]; !ok {
			return fmt.Errorf("%w: %d", ErrMissingPosition, id)
		}
	}

	return nil
}

// Renderer is a drawing backend.
type Renderer interface {
	// Render writes the scene to w.
	Render(w io.Writer, s Scene, opts Options) error
	// Name returns the format name.
	Name() string
}

// Get returns the renderer for a format name (svg or ascii, case-insensitive).
func Get(format string) (Renderer, error) {
	switch strings.ToLower(format) {
	case "svg":
		return &SVGRenderer{}, nil
	case "ascii", "text":
		return &ASCIIRenderer{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Formats lists the supported format names.
func Formats() []string { return []string{"svg", "ascii"} }
