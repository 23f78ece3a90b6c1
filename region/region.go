// SPDX-License-Identifier: MIT

// Package region provides Region, an integer box on a grid given by an
// offset and an extent: the half-open cells [offset, offset+extent) per
// axis. It is the discrete counterpart of boundingbox.BoundingBox, used for
// image and grid windows.
package region

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// ErrDimensionMismatch: offset, extent or a point differ in dimension.
var ErrDimensionMismatch = errors.New("region: dimension mismatch")

// Region is [offset, offset+extent) over integer coordinates.
type Region[T constraints.Integer] struct {
	offset []T
	extent []T
}

// New copies offset and extent into a region.
//
// Errors: ErrDimensionMismatch when the lengths differ or are zero.
func New[T constraints.Integer](offset, extent []T) (Region[T], error) {
	if len(offset) == 0 || len(offset) != len(extent) {
		return Region[T]{}, fmt.Errorf("New: %w", ErrDimensionMismatch)
	}
	return Region[T]{
		offset: append([]T(nil), offset...),
		extent: append([]T(nil), extent...),
	}, nil
}

// FromTo returns the region [from, to).
func FromTo[T constraints.Integer](from, to []T) (Region[T], error) {
	if len(from) != len(to) {
		return Region[T]{}, fmt.Errorf("FromTo: %w", ErrDimensionMismatch)
	}
	extent := make([]T, len(from))
	for i := range from {
		extent[i] = to[i] - from[i]
	}
	return New(from, extent)
}

// Dim returns the number of axes.
func (r Region[T]) Dim() int { return len(r.offset) }

// Offset returns a copy of the offset.
func (r Region[T]) Offset() []T { return append([]T(nil), r.offset...) }

// Extent returns a copy of the extent.
func (r Region[T]) Extent() []T { return append([]T(nil), r.extent...) }

// From returns the first cell, equal to Offset.
func (r Region[T]) From() []T { return r.Offset() }

// To returns offset+extent, one past the last cell on every axis.
func (r Region[T]) To() []T {
	res := make([]T, len(r.offset))
	for i := range res {
		res[i] = r.offset[i] + r.extent[i]
	}
	return res
}

// IsPositive reports whether every extent is > 0, i.e. the region holds at
// least one cell.
func (r Region[T]) IsPositive() bool {
	for _, e := range r.extent {
		if e <= 0 {
			return false
		}
	}
	return true
}

// Cells returns the number of cells, the product of the extents; 0 when
// the region is not positive.
func (r Region[T]) Cells() T {
	if !r.IsPositive() {
		return 0
	}
	res := T(1)
	for _, e := range r.extent {
		res *= e
	}
	return res
}

// Contains reports whether offset ≤ p < offset+extent on every axis.
// Points of another dimension are never contained.
func (r Region[T]) Contains(p []T) bool {
	if len(p) != len(r.offset) {
		return false
	}
	for i, x := range p {
		if x < r.offset[i] || x-r.offset[i] >= r.extent[i] {
			return false
		}
	}
	return true
}

// IsInside reports whether r lies within other: r.From ≥ other.From and
// r.To ≤ other.To on every axis. Regions of another dimension never are.
func (r Region[T]) IsInside(other Region[T]) bool {
	if len(r.offset) != len(other.offset) {
		return false
	}
	to, otherTo := r.To(), other.To()
	for i := range r.offset {
		if r.offset[i] < other.offset[i] || to[i] > otherTo[i] {
			return false
		}
	}
	return true
}

// Intersection returns the common cells of r and other; ok is false when
// they share none or differ in dimension.
func (r Region[T]) Intersection(other Region[T]) (Region[T], bool) {
	if len(r.offset) != len(other.offset) {
		return Region[T]{}, false
	}
	to, otherTo := r.To(), other.To()
	res := Region[T]{offset: make([]T, len(to)), extent: make([]T, len(to))}
	for i := range to {
		from := max(r.offset[i], other.offset[i])
		end := min(to[i], otherTo[i])
		if end <= from {
			return Region[T]{}, false
		}
		res.offset[i] = from
		res.extent[i] = end - from
	}
	return res, true
}

// String formats r as "offset (o0, o1), extent (e0, e1)".
func (r Region[T]) String() string {
	return "offset " + tuple(r.offset) + ", extent " + tuple(r.extent)
}

func tuple[T constraints.Integer](v []T) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = fmt.Sprint(x)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
