// SPDX-License-Identifier: MIT
// Package: graphptol/builder
//
// impl_random_sparse.go - RandomSparse(n, p), an Erdős–Rényi G(n,p) sample.
//
// Determinism:
//   - Trials run over unordered pairs {i,j}, i asc then j asc (j > i).
//   - Same seed, same graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphptol/core"
)

const methodRandomSparse = "RandomSparse"

// RandomSparse includes each of the n(n-1)/2 possible edges with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return tooFew(methodRandomSparse, n, 1)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if err := addVertices(g, cfg, methodRandomSparse, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				// one draw per pair keeps the sequence stable for p in {0,1}
				if cfg.rng.Float64() < p || p == 1 {
					if err := link(g, cfg, methodRandomSparse, i, j); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
