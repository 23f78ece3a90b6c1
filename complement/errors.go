// SPDX-License-Identifier: MIT

package complement

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch: the input is not N-1 vectors of dimension N (N ≥ 2).
	ErrDimensionMismatch = errors.New("complement: dimension mismatch")

	// ErrNotUnitVector: OfUnitVector received a vector whose length is not 1.
	ErrNotUnitVector = errors.New("complement: not a unit vector")

	// ErrIndexOutOfRange: a point index passed to OfPoints is invalid.
	ErrIndexOutOfRange = errors.New("complement: point index out of range")
)

func complementErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
