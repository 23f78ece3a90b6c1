// SPDX-License-Identifier: MIT

package simplex

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySystem: no constraints or no variables.
	ErrEmptySystem = errors.New("simplex: empty constraint system")

	// ErrDimensionMismatch: b, the rows of a and c disagree in size.
	ErrDimensionMismatch = errors.New("simplex: dimension mismatch")
)

func simplexErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
