package ecostat_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/ecodiv/ecostat"
)

// ExampleBetaDiversity demonstrates a pairwise Bray-Curtis matrix over
// three samples.
func ExampleBetaDiversity() {
	values := mat.NewDense(3, 2, []float64{
		6, 2,
		2, 2,
		0, 4,
	})

	dm, err := ecostat.BetaDiversity(ecostat.MetricBrayCurtis, values, []string{"A", "B", "C"})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	d, _ := dm.AtID("A", "B")
	fmt.Printf("d(A,B)=%.4f\n", d)
	d, _ = dm.AtID("A", "C")
	fmt.Printf("d(A,C)=%.4f\n", d)
	// Output:
	// d(A,B)=0.3333
	// d(A,C)=0.6667
}

// ExampleSymmetrizeUpper demonstrates repairing rounding asymmetry by
// canonicalizing from the upper triangle.
func ExampleSymmetrizeUpper() {
	in := mat.NewDense(2, 2, []float64{
		0, 0.30000000000000004,
		0.3, 0,
	})

	out, err := ecostat.SymmetrizeUpper(in)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println("symmetric:", out.At(0, 1) == out.At(1, 0))
	// Output:
	// symmetric: true
}
