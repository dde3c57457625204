// Package model is the graph model behind graphptol: it owns the current
// graph and the counter for auto-generated node IDs, and exposes every
// mutation and query the interactive front ends need.
//
// Lifecycle:
//
//	m := model.New()                    // empty graph, next auto ID = 100
//	_ = m.LoadMatrix(r)                 // replace the graph wholesale
//	id := m.AddNode()                   // 100, 101, ...
//	_ = m.AddEdge(0, id)                // strict: both endpoints must exist
//	path, err := m.ShortestPath(0, id)  // errors.Is(err, model.ErrNoPathExists)
//	_ = m.WriteAdjacencyList(w)
//
// Auto IDs start at 100 so they stay clear of the small indices produced by
// matrix files. The counter is monotonic and survives loads; if an ID it
// would hand out is already taken by loaded data, it skips forward.
//
// Failure never leaves a partial mutation: loads parse into a fresh graph and
// swap it in only on success, and AddEdge validates before touching anything.
//
// A Model is meant to be driven by one goroutine at a time (one user action
// fully processed before the next); it does no locking of its own.
package model
