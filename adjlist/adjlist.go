package adjlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/graphptol/core"
)

// Sentinel errors.
var (
	// ErrBadToken is returned for a token that is not a decimal integer.
	ErrBadToken = errors.New("adjlist: token is not an integer")

	// ErrGraphNil is returned when a nil graph is passed to a writer.
	ErrGraphNil = errors.New("adjlist: graph is nil")
)

const (
	commentPrefix = "#"
	maxLineBytes  = 16 << 20
)

// Load parses an adjacency list into a new graph.
//
// A neighbor equal to its line's head ("4 4") is dropped without error since
// core.Graph has no self-loops; the head itself is still added as a node.
//
// Errors: ErrBadToken (wrapped with line and token), or any error from r.
func Load(r io.Reader) (*core.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	g := core.NewGraph()
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.Index(text, commentPrefix); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}

		ids := make([]core.NodeID, len(fields))
		for i, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("line %d token %q: %w", line, f, ErrBadToken)
			}
			ids[i] = core.NodeID(n)
		}

		head := ids[0]
		_ = g.AddNode(head)
		for _, nbr := range ids[1:] {
			_ = g.AddNode(nbr)
			if nbr == head {
				continue
			}
			if _, err := g.AddEdge(head, nbr); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("adjlist: read: %w", err)
	}

	return g, nil
}

// Option configures Lines and Write.
type Option func(*options)

type options struct {
	compact bool
	header  []string
}

// WithCompact writes each edge once instead of on both endpoint lines.
func WithCompact(compact bool) Option {
	return func(o *options) { o.compact = compact }
}

// WithHeader prepends "# <line>" comment lines, which Load skips.
func WithHeader(lines ...string) Option {
	return func(o *options) { o.header = append(o.header, lines...) }
}

// Lines renders g as adjacency-list lines, without trailing newlines.
// Header comments are not included.
func Lines(g *core.Graph, opts ...Option) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := gather(opts)

	nodes := g.Nodes()
	out := make([]string, 0, len(nodes))
	seen := make(map[core.NodeID]bool, len(nodes))
	var sb strings.Builder
	for _, id := range nodes {
		nbrs, err := g.Neighbors(id)
		if err != nil {
			return nil, fmt.Errorf("adjlist: %w", err)
		}
		sb.Reset()
		sb.WriteString(id.String())
		for _, nbr := range nbrs {
			if o.compact && seen[nbr] {
				continue
			}
			sb.WriteByte(' ')
			sb.WriteString(nbr.String())
		}
		seen[id] = true
		out = append(out, sb.String())
	}

	return out, nil
}

// Write emits the header (if any) and Lines(g), one per line.
func Write(w io.Writer, g *core.Graph, opts ...Option) error {
	lines, err := Lines(g, opts...)
	if err != nil {
		return err
	}
	o := gather(opts)

	bw := bufio.NewWriter(w)
	for _, h := range o.header {
		if _, err := fmt.Fprintf(bw, "%s %s\n", commentPrefix, h); err != nil {
			return fmt.Errorf("adjlist: write: %w", err)
		}
	}
	for _, l := range lines {
		if _, err := bw.WriteString(l + "\n"); err != nil {
			return fmt.Errorf("adjlist: write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("adjlist: write: %w", err)
	}

	return nil
}

func gather(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
