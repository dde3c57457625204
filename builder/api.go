// SPDX-License-Identifier: MIT
// Package: graphptol/builder
//
// api.go - the BuildGraph orchestrator and the Constructor type.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Determinism: same inputs, options and seed give identical graphs.
//   - Never panic; constructors return sentinel errors wrapped with context.

package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/graphptol/core"
)

// Constructor adds a topology to g. Vertex indexes are mapped to IDs via the
// resolved config, so several constructors can share or offset IDs.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates an empty graph and applies all constructors in order.
// Any constructor error is wrapped as "BuildGraph: %w".
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// factories maps CLI topology names to constructors taking a single size.
var factories = map[string]func(n int) Constructor{
	"path":     Path,
	"cycle":    Cycle,
	"star":     Star,
	"wheel":    Wheel,
	"complete": Complete,
}

// ByName returns the single-size constructor for name.
func ByName(name string, n int) (Constructor, error) {
	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTopology, name)
	}

	return f(n), nil
}

// Names lists the topologies ByName accepts, sorted.
func Names() []string {
	out := make([]string, 0, len(factories))
	for name := range factories {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// addVertices inserts indexes 0..n-1.
func addVertices(g *core.Graph, cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		if err := g.AddNode(cfg.id(i)); err != nil {
			return fmt.Errorf("%s: AddNode(%s): %w", method, cfg.id(i), err)
		}
	}

	return nil
}

// link adds {i,j} by vertex index.
func link(g *core.Graph, cfg builderConfig, method string, i, j int) error {
	u, v := cfg.id(i), cfg.id(j)
	if _, err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%s-%s): %w: %w", method, u, v, ErrConstructFailed, err)
	}

	return nil
}
