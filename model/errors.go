package model

import "errors"

// Errors reported at the UI boundary. Wrapped errors carry detail; match with errors.Is.
var (
	// ErrInvalidFormat means an input file could not be parsed.
	ErrInvalidFormat = errors.New("model: invalid format")

	// ErrUnknownNode means an operation referenced a node that does not exist.
	ErrUnknownNode = errors.New("model: unknown node")

	// ErrNoPathExists means the endpoints are absent or lie in different components.
	ErrNoPathExists = errors.New("model: no path exists")

	// ErrSelfLoop means AddEdge was asked to connect a node to itself.
	ErrSelfLoop = errors.New("model: self-loop not allowed")
)
