package simplex_test

import (
	"fmt"

	"github.com/katalvlaran/lvgeom/simplex"
	"github.com/katalvlaran/lvgeom/vector"
)

// Maximize 3x + y + 2z subject to
//
//	x + y + 3z ≤ 30
//	2x + 2y + 5z ≤ 24
//	4x + y + 2z ≤ 36
func ExampleMaximize() {
	a := []vector.Vector[float64]{
		vector.Of(-1.0, -1, -3),
		vector.Of(-2.0, -2, -5),
		vector.Of(-4.0, -1, -2),
	}
	opt, err := simplex.Maximize(a, []float64{30, 24, 36}, vector.Of(3.0, 1, 2))
	if err != nil {
		panic(err)
	}
	fmt.Println(opt.Solution, opt.Value, opt.X)
	// Output: Feasible 28 (8, 4, 0)
}

func ExampleSolveConstraints() {
	// x ≥ 1 and x ≤ 0.5
	a := []vector.Vector[float64]{vector.Of(1.0), vector.Of(-1.0)}
	res, _ := simplex.SolveConstraints(a, []float64{-1, 0.5})
	fmt.Println(res.Solution)
	// Output: Infeasible
}
