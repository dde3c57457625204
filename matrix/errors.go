// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..." so it can be grepped in logs.
// Sentinels are wrapped with position context (fmt.Errorf("...: %w", ErrX));
// callers match them with errors.Is.

package matrix

import "errors"

var (
	// ErrNonSquare is returned when the row count differs from the column count.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrBadShape is returned when rows have different lengths.
	ErrBadShape = errors.New("matrix: rows have different lengths")

	// ErrNonNumeric is returned when a cell cannot be parsed as a number.
	ErrNonNumeric = errors.New("matrix: non-numeric entry")

	// ErrNaNInf is returned when a cell parses to NaN or ±Inf.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrGraphNil is returned when a nil graph is passed to a builder.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrNilMatrix is returned for a nil receiver.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
