// SPDX-License-Identifier: MIT

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// maxLineBytes bounds a single row; wide matrices produce long lines.
const maxLineBytes = 16 << 20

// commentPrefix starts a comment that runs to end of line.
const commentPrefix = "#"

// Read parses a whitespace-separated numeric matrix.
//
// Blank and comment-only lines are skipped. The result is validated to be
// rectangular and square; an input with no rows yields an empty matrix.
// Cells are returned as written, diagonal included; it is FromRows that
// drops the diagonal when building a graph.
//
// Errors (wrapped with line/column context):
//   - ErrNonNumeric, ErrNaNInf for bad cells.
//   - ErrBadShape for ragged rows, ErrNonSquare for n×m with n != m.
//   - Any error from r.
func Read(r io.Reader) ([][]float64, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var rows [][]float64
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

		row := make([]float64, len(fields))
		for col, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d col %d %q: %w", line, col+1, f, ErrNonNumeric)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("line %d col %d %q: %w", line, col+1, f, ErrNaNInf)
			}
			row[col] = v
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("line %d has %d cells, want %d: %w", line, len(row), len(rows[0]), ErrBadShape)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("matrix: read: %w", err)
	}
	if err := validateSquare(rows); err != nil {
		return nil, err
	}

	return rows, nil
}

// Write emits data one row per line, cells separated by a single space.
func Write(w io.Writer, data [][]int) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 64)
	for _, row := range data {
		buf = buf[:0]
		for j, v := range row {
			if j > 0 {
				buf = append(buf, ' ')
			}
			buf = strconv.AppendInt(buf, int64(v), 10)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("matrix: write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("matrix: write: %w", err)
	}

	return nil
}

// validateSquare checks that every row has exactly len(rows) cells.
func validateSquare(rows [][]float64) error {
	n := len(rows)
	for i, row := range rows {
		if len(row) != n {
			return fmt.Errorf("row %d has %d cells for %d rows: %w", i, len(row), n, ErrNonSquare)
		}
	}

	return nil
}
