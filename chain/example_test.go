package chain_test

import (
	"fmt"

	"github.com/katalvlaran/homology/chain"
	"github.com/katalvlaran/homology/matrix"
	"github.com/katalvlaran/homology/ring"
)

// ExampleComplex_Homology computes the Betti numbers of a circle built from
// three vertices and three edges.
func ExampleComplex_Homology() {
	d0, _ := matrix.New[int](ring.Int[int]{}, 3, 0)
	d1, _ := matrix.FromInts([][]int{{-1, 1, 0}, {-1, 0, 1}, {0, -1, 1}})
	d2, _ := matrix.New[int](ring.Int[int]{}, 0, 3)

	cx, _ := chain.New(d0, d1, d2)
	ok, _ := cx.CheckHomology()
	cx.Reduce()
	h0, _ := cx.Homology(0)
	h1, _ := cx.Homology(1)

	fmt.Println("chain condition:", ok)
	fmt.Println("b0 =", h0, "b1 =", h1)
	// Output:
	// chain condition: true
	// b0 = 1 b1 = 1
}
