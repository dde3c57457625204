// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Neighbors/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges sorted by (U, V) ascending, with U < V.
//   - Neighbors() returns IDs sorted ascending.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import "sort"

// AddEdge inserts the undirected edge {u,v}.
//
// Steps:
//  1. Reject u == v (ErrLoopNotAllowed).
//  2. Lock, verify both endpoints exist (ErrNodeNotFound).
//  3. If the pair is already linked, return (false, nil).
//  4. Link adjacency[u][v] and the mirror adjacency[v][u]; bump edgeCount.
//
// Endpoints are never created implicitly; callers that want auto-creation
// call AddNode first.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v NodeID) (bool, error) {
	if u == v {
		return false, ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[u]; !ok {
		return false, ErrNodeNotFound
	}
	if _, ok := g.nodes[v]; !ok {
		return false, ErrNodeNotFound
	}
	if _, exists := g.adjacency[u][v]; exists {
		return false, nil
	}

	g.adjacency[u][v] = struct{}{}
	g.adjacency[v][u] = struct{}{}
	g.edgeCount++

	return true, nil
}

// HasEdge reports whether {u,v} is an edge. Order of arguments is irrelevant.
//
// Complexity: O(1).
func (g *Graph) HasEdge(u, v NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[u][v]

	return ok
}

// Neighbors returns the IDs adjacent to id, sorted ascending.
//
// Errors:
//   - ErrNodeNotFound if id is absent.
//
// Complexity: O(d log d).
func (g *Graph) Neighbors(id NodeID) ([]NodeID, error) {
	g.mu.RLock()
	if _, ok := g.nodes[id]; !ok {
		g.mu.RUnlock()
		return nil, ErrNodeNotFound
	}
	out := make([]NodeID, 0, len(g.adjacency[id]))
	for nbr := range g.adjacency[id] {
		out = append(out, nbr)
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out, nil
}

// Edges returns every edge once, normalized to U < V and sorted by (U, V).
//
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	out := make([]Edge, 0, g.edgeCount)
	for u, nbrs := range g.adjacency {
		for v := range nbrs {
			if u < v {
				out = append(out, normalizeEdge(u, v))
			}
		}
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}
		return out[i].V < out[j].V
	})

	return out
}

// EdgeCount returns |E| (unordered pairs).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
