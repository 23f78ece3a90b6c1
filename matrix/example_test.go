package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvgeom/matrix"
	"github.com/katalvlaran/lvgeom/vector"
)

// ExampleLinearSolve solves a 2×2 system by Cramer's rule.
func ExampleLinearSolve() {
	a, _ := matrix.NewDenseFromRows([]vector.Vector[float64]{
		vector.Of(2.0, 1),
		vector.Of(1.0, 3),
	})
	x, err := matrix.LinearSolve(a, vector.Of(3.0, 5))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.1f %.1f\n", x[0], x[1])
	// Output:
	// 0.8 1.4
}

// ExampleDense_Determinant computes an exact determinant by cofactor expansion.
func ExampleDense_Determinant() {
	m, _ := matrix.NewDenseFromRows([]vector.Vector[float64]{
		vector.Of(2.0, 2, 3, 4),
		vector.Of(5.0, 12, 7, 8),
		vector.Of(9.0, 10, 22, 12),
		vector.Of(13.0, 14, 15, 32),
	})
	det, _ := m.Determinant()
	fmt.Println(det)
	// Output:
	// 400
}

// ExampleTranslateMatrix builds a homogeneous translation.
func ExampleTranslateMatrix() {
	m, _ := matrix.TranslateMatrix(vector.Of(1.0, 2))
	fmt.Print(m)
	// Output:
	// [1, 0, 1]
	// [0, 1, 2]
	// [0, 0, 1]
}
