// SPDX-License-Identifier: MIT

package simplex

import (
	"math"

	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/vector"
)

// Solution classifies the outcome of a run. Every value is an ordinary
// result, not an error.
type Solution int

const (
	Infeasible Solution = iota // no x ≥ 0 satisfies the constraints
	Feasible                   // a feasible x exists (or, for Maximize, an optimum was found)
	Unbound                    // the objective grows without limit
	Cycling                    // the iteration bound was reached
)

// String implements fmt.Stringer.
func (s Solution) String() string {
	switch s {
	case Infeasible:
		return "Infeasible"
	case Feasible:
		return "Feasible"
	case Unbound:
		return "Unbound"
	case Cycling:
		return "Cycling"
	default:
		return "Solution(?)"
	}
}

// Result is the outcome of SolveConstraints.
type Result struct {
	Solution   Solution
	Iterations int // pivots performed
}

// Optimum is the outcome of Maximize. Value and X are set only when
// Solution is Feasible.
type Optimum[T scalar.Float] struct {
	Solution   Solution
	Value      T
	X          vector.Vector[T]
	Iterations int // pivots performed, both phases
}

// Binomial returns C(n, k), saturating at math.MaxInt.
// k outside [0, n] yields 0.
//
// Complexity: O(min(k, n-k)).
func Binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	res := 1
	for i := 0; i < k; i++ {
		// res·(n-i) is divisible by i+1 since res = C(n, i)
		m := n - i
		if res > math.MaxInt/m {
			return math.MaxInt
		}
		res = res * m / (i + 1)
	}
	return res
}
