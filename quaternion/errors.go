// SPDX-License-Identifier: MIT

package quaternion

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch: an axis, vector or matrix is not 3-dimensional.
	ErrDimensionMismatch = errors.New("quaternion: dimension mismatch")

	// ErrZeroAxis: FromAxisAngle received a zero-length axis.
	ErrZeroAxis = errors.New("quaternion: zero rotation axis")

	// ErrNotRotation: FromRotationMatrix received a matrix that is not a
	// proper rotation.
	ErrNotRotation = errors.New("quaternion: not a rotation matrix")
)

func quaternionErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
