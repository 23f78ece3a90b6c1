// SPDX-License-Identifier: MIT
// Package boundingbox: sentinel errors.

package boundingbox

import (
	"errors"
	"fmt"
)

var (
	// ErrNoPoints is returned by FromPoints for an empty point set.
	ErrNoPoints = errors.New("boundingbox: no points")

	// ErrDimensionMismatch is returned when points or boxes of different
	// dimensions are combined, or when an sdfx box of fixed dimension is
	// requested from a box of another dimension.
	ErrDimensionMismatch = errors.New("boundingbox: dimension mismatch")
)

func boxErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
