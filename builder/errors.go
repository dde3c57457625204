// SPDX-License-Identifier: MIT
// Package: graphptol/builder
//
// errors.go - sentinel errors returned by constructors.

package builder

import "errors"

var (
	// ErrTooFewVertices indicates a size parameter below the topology's minimum.
	ErrTooFewVertices = errors.New("builder: too few vertices")

	// ErrInvalidProbability indicates an edge probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability must be in [0,1]")

	// ErrConstructFailed indicates a nil constructor or a failed graph mutation.
	ErrConstructFailed = errors.New("builder: construction failed")

	// ErrUnknownTopology is returned by ByName for an unsupported name.
	ErrUnknownTopology = errors.New("builder: unknown topology")
)
