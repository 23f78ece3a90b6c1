// SPDX-License-Identifier: MIT

package simplex

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvgeom/scalar"
)

// tableau is a slack-form system: every basic variable equals
// b[i] + Σ_j a[i][j]·x_j over the non-basic variables, and the objective is
// z = v + Σ_j c[j]·x_j. mapN and mapM hold the variable numbers of the
// non-basic columns and the basic rows.
type tableau[T scalar.Float] struct {
	b    []T
	a    [][]T
	v    T
	c    []T
	mapN []int
	mapM []int
}

// pivot exchanges the basic variable of row l with the non-basic variable
// of column e. Unlike the textbook form, the new values are written in
// place: row l now expresses the entering variable and column e holds the
// leaving one.
//
// Complexity: O(N·M).
func (t *tableau[T]) pivot(l, e int) {
	al := t.a[l]
	ale := al[e]

	t.b[l] = -t.b[l] / ale
	for j := range al {
		if j != e {
			al[j] = -al[j] / ale
		}
	}
	al[e] = 1 / ale

	for i, ai := range t.a {
		if i == l {
			continue
		}
		aie := ai[e]
		t.b[i] += aie * t.b[l]
		for j := range ai {
			if j != e {
				ai[j] += aie * al[j]
			}
		}
		ai[e] = aie * al[e]
	}

	ce := t.c[e]
	t.v += ce * t.b[l]
	for j := range t.c {
		if j != e {
			t.c[j] += ce * al[j]
		}
	}
	t.c[e] = ce * al[e]

	t.mapM[l], t.mapN[e] = t.mapN[e], t.mapM[l]
}

// entering returns the first column whose objective coefficient exceeds
// scale·ε·max|c|.
func (t *tableau[T]) entering(scale T) (int, bool) {
	maxAbs := scalar.Abs(t.c[0])
	for _, x := range t.c[1:] {
		maxAbs = scalar.Max(maxAbs, scalar.Abs(x))
	}
	eps := maxAbs * scale * scalar.Epsilon[T]()
	for j, x := range t.c {
		if x > eps {
			return j, true
		}
	}
	return 0, false
}

// leaving runs the ratio test on column e: among rows with a negative
// coefficient it picks the largest b[i]/a[i][e], the first one found on
// ties. b is clamped at 0 on the way, since rounding may push it below.
func (t *tableau[T]) leaving(e int) (int, bool) {
	l := -1
	var maxDelta T
	for i, ai := range t.a {
		t.b[i] = scalar.Max(0, t.b[i])
		if ai[e] < 0 {
			delta := t.b[i] / ai[e]
			if l < 0 || delta > maxDelta {
				maxDelta = delta
				l = i
			}
		}
	}
	return l, l >= 0
}

// iterate pivots until no column can enter. done counts the pivots already
// spent against limit; the run stops with Cycling once done+1 reaches it.
// It returns Feasible at an optimum of the current objective.
func (t *tableau[T]) iterate(o Options, stage string, done, limit int) (Solution, int) {
	scale := T(o.epsilonScale)
	for {
		e, ok := t.entering(scale)
		if !ok {
			return Feasible, done
		}
		if done+1 >= limit {
			return Cycling, done
		}
		l, ok := t.leaving(e)
		if !ok {
			return Unbound, done
		}
		t.pivot(l, e)
		done++
		t.dump(o, stage+" iteration "+strconv.Itoa(done+1))
	}
}

// basicRow returns the row holding variable v, or -1 if v is non-basic.
func (t *tableau[T]) basicRow(v int) int {
	for i, m := range t.mapM {
		if m == v {
			return i
		}
	}
	return -1
}

// dump logs the tableau when verbose mode is on.
func (t *tableau[T]) dump(o Options, title string) {
	if !o.verbose {
		return
	}
	o.logger.Debug("simplex tableau", "stage", title, "tableau", "\n"+t.String())
}

// String renders the tableau as a table: a header of non-basic variable
// numbers, the objective row, then one row per basic variable.
func (t *tableau[T]) String() string {
	intW := len(strconv.Itoa(len(t.mapN) + len(t.mapM) - 1))
	const floatW = 26

	var sb strings.Builder
	fmt.Fprintf(&sb, "%*s", floatW+4+intW, "b(v)")
	for _, n := range t.mapN {
		fmt.Fprintf(&sb, "%*s[%*d]", floatW-intW-2, "", intW, n)
	}
	fmt.Fprintf(&sb, "\nz = %*s%*g", intW, "", floatW, t.v)
	for _, x := range t.c {
		fmt.Fprintf(&sb, "%*g", floatW, x)
	}
	sb.WriteString("\n---")
	for i, m := range t.mapM {
		fmt.Fprintf(&sb, "\n[%*d]: %*g", intW, m, floatW, t.b[i])
		for _, x := range t.a[i] {
			fmt.Fprintf(&sb, "%*g", floatW, x)
		}
	}
	return sb.String()
}
