// SPDX-License-Identifier: MIT

// Package matrix: Dense is a row-major matrix of scalar.Float values,
// storing elements in a flat slice for performance and cache friendliness.
package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/vector"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense[T scalar.Float] struct {
	r, c int // number of rows and columns
	data []T // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func NewDense[T scalar.Float](rows, cols int) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// NewDenseFromRows copies equally long row vectors into a new matrix.
// Returns ErrInvalidDimensions for no rows, ErrDimensionMismatch for ragged rows.
// Complexity: O(r*c).
func NewDenseFromRows[T scalar.Float](rows []vector.Vector[T]) (*Dense[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	cols := len(rows[0])
	m := &Dense[T]{r: len(rows), c: cols, data: make([]T, len(rows)*cols)}
	for i, row := range rows {
		if len(row) != cols {
			return nil, denseErrorf("FromRows", i, len(row), ErrDimensionMismatch)
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// mustDense builds a matrix whose shape was validated by the caller.
func mustDense[T scalar.Float](rows, cols int) *Dense[T] {
	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}
}

// NewIdentity returns the n×n identity matrix.
// Complexity: O(n²).
func NewIdentity[T scalar.Float](n int) (*Dense[T], error) {
	m, err := NewDense[T](n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// NewDiagonal returns the square matrix with d on its main diagonal.
func NewDiagonal[T scalar.Float](d vector.Vector[T]) (*Dense[T], error) {
	m, err := NewDense[T](len(d), len(d))
	if err != nil {
		return nil, err
	}
	for i, v := range d {
		m.data[i*m.c+i] = v
	}

	return m, nil
}

// NewFilled returns an r×c matrix with every element set to v.
func NewFilled[T scalar.Float](rows, cols int, v T) (*Dense[T], error) {
	m, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range m.data {
		m.data[i] = v
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense[T]) Rows() int {
	return m.r
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense[T]) Cols() int {
	return m.c
}

// IsSquare reports whether Rows == Cols.
func (m *Dense[T]) IsSquare() bool {
	return m.r == m.c
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): read from data slice.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns a copy of row r.
// Complexity: O(c).
func (m *Dense[T]) Row(r int) (vector.Vector[T], error) {
	if r < 0 || r >= m.r {
		return nil, denseErrorf("Row", r, 0, ErrOutOfRange)
	}
	res := make(vector.Vector[T], m.c)
	copy(res, m.data[r*m.c:(r+1)*m.c])

	return res, nil
}

// Column returns a copy of column c.
// Complexity: O(r).
func (m *Dense[T]) Column(c int) (vector.Vector[T], error) {
	if c < 0 || c >= m.c {
		return nil, denseErrorf("Column", 0, c, ErrOutOfRange)
	}
	res := make(vector.Vector[T], m.r)
	for i := range res {
		res[i] = m.data[i*m.c+c]
	}

	return res, nil
}

// SetRow overwrites row r with v (len(v) must equal Cols).
func (m *Dense[T]) SetRow(r int, v vector.Vector[T]) error {
	if r < 0 || r >= m.r {
		return denseErrorf("SetRow", r, 0, ErrOutOfRange)
	}
	if len(v) != m.c {
		return denseErrorf("SetRow", r, len(v), ErrDimensionMismatch)
	}
	copy(m.data[r*m.c:(r+1)*m.c], v)

	return nil
}

// RowVectors returns every row as an independent vector.
// Complexity: O(r*c).
func (m *Dense[T]) RowVectors() []vector.Vector[T] {
	res := make([]vector.Vector[T], m.r)
	for i := range res {
		row := make(vector.Vector[T], m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		res[i] = row
	}

	return res
}

// row returns a view of row i (no copy); internal use only.
func (m *Dense[T]) row(i int) []T {
	return m.data[i*m.c : (i+1)*m.c]
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense[T]) Clone() *Dense[T] {
	copyData := make([]T, len(m.data))
	copy(copyData, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: copyData}
}

// Equal reports exact element-wise equality of shape and values.
func (m *Dense[T]) Equal(o *Dense[T]) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// IsFinite reports whether every element is neither NaN nor ±Inf.
func (m *Dense[T]) IsFinite() bool {
	for _, v := range m.data {
		if !scalar.IsFinite(v) {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense[T]) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
			if j < m.c-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
