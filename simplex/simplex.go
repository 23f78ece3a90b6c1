// SPDX-License-Identifier: MIT

// Package simplex implements the two-phase dense simplex method for systems
// of linear constraints
//
//	b_i + Σ_j a_ij·x_j ≥ 0,  i = 0..M-1
//	x_j ≥ 0,                 j = 0..N-1
//
// SolveConstraints runs phase 1 only and answers whether the system has a
// solution; Maximize continues with phase 2 and maximizes c·x over it.
// Outcomes (Infeasible, Feasible, Unbound, Cycling) are values of Solution,
// never errors: errors are reserved for malformed input.
//
// Both phases stop with Cycling when the pivot count reaches the number of
// distinct bases, C(N+M, M) for a tableau of N non-basic and M basic
// variables, which no non-cycling run can exceed.
//
// Reference: Cormen, Leiserson, Rivest, Stein. Introduction to Algorithms,
// 3rd ed., chapter 29.
package simplex

import (
	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/vector"
)

const (
	opSolveConstraints = "SolveConstraints"
	opMaximize         = "Maximize"
)

// validate checks that a has len(b) > 0 rows of equal length N > 0 and
// returns N.
func validate[T scalar.Float](a []vector.Vector[T], b []T) (int, error) {
	if len(b) == 0 || len(a) == 0 || len(a[0]) == 0 {
		return 0, ErrEmptySystem
	}
	if len(a) != len(b) {
		return 0, ErrDimensionMismatch
	}
	n := len(a[0])
	for _, row := range a[1:] {
		if len(row) != n {
			return 0, ErrDimensionMismatch
		}
	}
	return n, nil
}

// auxiliary builds the phase-1 tableau. Column 0 is the auxiliary variable
// x0 added to every row, the objective is -x0. Each row is scaled by the
// reciprocal of its largest |a_ij| so the coefficients are comparable.
// Variable numbers: x0 = 0, x_j = j+1, the slack of row i = N+1+i.
func auxiliary[T scalar.Float](a []vector.Vector[T], b []T) *tableau[T] {
	n := len(a[0]) + 1
	m := len(b)
	t := &tableau[T]{
		b:    make([]T, m),
		a:    make([][]T, m),
		c:    make([]T, n),
		mapN: make([]int, n),
		mapM: make([]int, m),
	}
	for i, row := range a {
		k := row.NormInfinity()
		if k == 0 {
			k = 1
		}
		r := 1 / k
		t.b[i] = b[i] * r
		t.a[i] = make([]T, n)
		t.a[i][0] = 1
		for j, x := range row {
			t.a[i][j+1] = x * r
		}
	}
	t.c[0] = -1
	for j := range t.mapN {
		t.mapN[j] = j
	}
	for i := range t.mapM {
		t.mapM[i] = n + i
	}
	return t
}

// phase1 decides feasibility. It returns the final auxiliary tableau, or
// nil when b ≥ 0 makes the initial basic solution feasible outright.
//
// Implementation:
//   - Stage 1: b ≥ 0 ⇒ Feasible with no pivots.
//   - Stage 2: build the auxiliary tableau, pivot x0 into the row with the
//     most negative scaled b (first on ties).
//   - Stage 3: iterate towards max -x0.
//   - Stage 4: feasible iff x0 is non-basic, or basic with b ≤ 0 (rounding
//     can leave it slightly negative).
func phase1[T scalar.Float](a []vector.Vector[T], b []T, o Options) (Solution, *tableau[T], int) {
	if minIndex(b) < 0 {
		return Feasible, nil, 0
	}

	t := auxiliary(a, b)
	t.dump(o, "preprocessed")

	k := minIndex(t.b)
	if k < 0 {
		return Feasible, nil, 0
	}

	t.pivot(k, 0)
	t.dump(o, "first pivot")

	limit := o.pivotLimit(len(t.mapN)+len(t.mapM), len(t.mapM))
	sol, pivots := t.iterate(o, "phase 1", 1, limit)
	if sol != Feasible {
		return sol, t, pivots
	}
	if row := t.basicRow(0); row < 0 || t.b[row] <= 0 {
		return Feasible, t, pivots
	}
	return Infeasible, t, pivots
}

// minIndex returns the first index of the smallest negative entry, or -1
// when every entry is non-negative.
func minIndex[T scalar.Float](b []T) int {
	k := 0
	for i := 1; i < len(b); i++ {
		if b[i] < b[k] {
			k = i
		}
	}
	if b[k] >= 0 {
		return -1
	}
	return k
}

// SolveConstraints reports whether x ≥ 0 with b + a·x ≥ 0 exists.
//
// Errors:
//   - ErrEmptySystem for no rows or no columns.
//   - ErrDimensionMismatch when len(a) != len(b) or rows differ in length.
//
// Complexity: O(N·M) per pivot, at most C(N+1+M, M) pivots.
func SolveConstraints[T scalar.Float](a []vector.Vector[T], b []T, opts ...Option) (Result, error) {
	if _, err := validate(a, b); err != nil {
		return Result{}, simplexErrorf(opSolveConstraints, err)
	}
	o := gatherOptions(opts...)

	sol, _, pivots := phase1(a, b, o)
	return Result{Solution: sol, Iterations: pivots}, nil
}

// Maximize finds x ≥ 0 with b + a·x ≥ 0 maximizing c·x.
//
// Implementation:
//   - Stage 1: phase 1; anything but Feasible is returned as is.
//   - Stage 2: from the phase-1 tableau, pivot x0 out of the basis if it is
//     still there, drop its column, and rewrite c·x over the non-basic
//     variables. With b ≥ 0 the slack tableau of the input is used instead.
//   - Stage 3: iterate on c; no leaving row means Unbound.
//   - Stage 4: read x from the basic rows.
//
// Errors: as SolveConstraints, plus ErrDimensionMismatch when len(c) != N.
func Maximize[T scalar.Float](a []vector.Vector[T], b []T, c vector.Vector[T], opts ...Option) (Optimum[T], error) {
	n, err := validate(a, b)
	if err != nil {
		return Optimum[T]{}, simplexErrorf(opMaximize, err)
	}
	if len(c) != n {
		return Optimum[T]{}, simplexErrorf(opMaximize, ErrDimensionMismatch)
	}
	o := gatherOptions(opts...)

	sol, aux, pivots := phase1(a, b, o)
	if sol != Feasible {
		return Optimum[T]{Solution: sol, Iterations: pivots}, nil
	}

	var t *tableau[T]
	if aux == nil {
		t = slackForm(a, b, c)
	} else {
		pivots += aux.dropAuxiliary()
		t = aux
		t.setObjective(c)
	}
	t.dump(o, "phase 2 start")

	limit := o.pivotLimit(len(t.mapN)+len(t.mapM), len(t.mapM))
	sol, done := t.iterate(o, "phase 2", 0, limit)
	res := Optimum[T]{Solution: sol, Iterations: pivots + done}
	if sol != Feasible {
		return res, nil
	}

	res.Value = t.v
	res.X = vector.New[T](n)
	for i, v := range t.mapM {
		if v < n {
			res.X[v] = scalar.Max(0, t.b[i])
		}
	}
	return res, nil
}

// slackForm builds the tableau of the input with every x non-basic.
// Variable numbers: x_j = j, the slack of row i = N+i.
func slackForm[T scalar.Float](a []vector.Vector[T], b []T, c vector.Vector[T]) *tableau[T] {
	n, m := len(c), len(b)
	t := &tableau[T]{
		b:    append([]T(nil), b...),
		a:    make([][]T, m),
		c:    append([]T(nil), c...),
		mapN: make([]int, n),
		mapM: make([]int, m),
	}
	for i, row := range a {
		t.a[i] = append([]T(nil), row...)
		t.mapM[i] = n + i
	}
	for j := range t.mapN {
		t.mapN[j] = j
	}
	return t
}

// dropAuxiliary removes x0 from a feasible phase-1 tableau and renumbers
// the variables as slackForm does. A basic x0 sits at value 0 and is pivoted
// out on its largest coefficient; a row with no coefficient at all is a
// redundant constraint and is dropped. It returns the pivots performed.
func (t *tableau[T]) dropAuxiliary() int {
	pivots := 0
	if l := t.basicRow(0); l >= 0 {
		e := 0
		for j, x := range t.a[l] {
			if scalar.Abs(x) > scalar.Abs(t.a[l][e]) {
				e = j
			}
		}
		if t.a[l][e] != 0 {
			t.pivot(l, e)
			pivots++
		} else {
			t.b = append(t.b[:l], t.b[l+1:]...)
			t.a = append(t.a[:l], t.a[l+1:]...)
			t.mapM = append(t.mapM[:l], t.mapM[l+1:]...)
		}
	}

	if k := t.nonBasicColumn(0); k >= 0 {
		for i, ai := range t.a {
			t.a[i] = append(ai[:k], ai[k+1:]...)
		}
		t.c = append(t.c[:k], t.c[k+1:]...)
		t.mapN = append(t.mapN[:k], t.mapN[k+1:]...)
	}
	for j := range t.mapN {
		t.mapN[j]--
	}
	for i := range t.mapM {
		t.mapM[i]--
	}
	return pivots
}

// nonBasicColumn returns the column of variable v, or -1 if v is basic.
func (t *tableau[T]) nonBasicColumn(v int) int {
	for j, x := range t.mapN {
		if x == v {
			return j
		}
	}
	return -1
}

// setObjective replaces the objective by c·x, x_j = variable j, expressed
// over the current non-basic variables.
func (t *tableau[T]) setObjective(c vector.Vector[T]) {
	t.v = 0
	for j := range t.c {
		t.c[j] = 0
	}
	for v, cv := range c {
		if k := t.nonBasicColumn(v); k >= 0 {
			t.c[k] += cv
			continue
		}
		i := t.basicRow(v)
		t.v += cv * t.b[i]
		for k, x := range t.a[i] {
			t.c[k] += cv * x
		}
	}
}
