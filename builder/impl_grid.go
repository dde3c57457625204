// SPDX-License-Identifier: MIT
// Package: graphptol/builder
//
// impl_grid.go - Grid(rows, cols) and CompleteBipartite(n1, n2).

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphptol/core"
)

const (
	methodGrid      = "Grid"
	methodBipartite = "CompleteBipartite"
)

// Grid builds a rows×cols 4-neighborhood lattice. Vertex index is r*cols+c
// (row-major); edges go right then down from each cell.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < 1 || cols < 1 {
			return fmt.Errorf("%s: rows=%d cols=%d: %w", methodGrid, rows, cols, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodGrid, rows*cols); err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				i := r*cols + c
				if c+1 < cols {
					if err := link(g, cfg, methodGrid, i, i+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(g, cfg, methodGrid, i, i+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// CompleteBipartite builds K_{n1,n2}: indexes 0..n1-1 on the left,
// n1..n1+n2-1 on the right, every left vertex joined to every right one.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < 1 || n2 < 1 {
			return fmt.Errorf("%s: n1=%d n2=%d: %w", methodBipartite, n1, n2, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodBipartite, n1+n2); err != nil {
			return err
		}
		for i := 0; i < n1; i++ {
			for j := n1; j < n1+n2; j++ {
				if err := link(g, cfg, methodBipartite, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
