package irrep_test

import (
	"fmt"

	"github.com/katalvlaran/su3/irrep"
)

// ExampleNew demonstrates validated construction and the derived
// quantities of the fundamental triplet.
func ExampleNew() {
	quark, err := irrep.New(1, 0)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	p, q := quark.HighestWeight()
	fmt.Println("label:", quark)
	fmt.Println("dim:", quark.Dim())
	fmt.Println("boxes:", quark.NBoxes())
	fmt.Printf("weight: (%d,%d)\n", p, q)

	// Output:
	// label: (1,0)
	// dim: 3
	// boxes: 1
	// weight: (1,0)
}

// ExampleNew_invalid shows the single failure mode: rows that do not form
// a Young tableau are rejected at construction.
func ExampleNew_invalid() {
	_, err := irrep.New(1, 3)
	fmt.Println(err)

	// Output:
	// irrep: invalid Young tableau: rows (1,3)
}

// ExampleIrrep_Dual conjugates the triplet and the self-dual adjoint.
func ExampleIrrep_Dual() {
	fmt.Println(irrep.MustNew(1, 0).Dual()) // antiquark
	fmt.Println(irrep.MustNew(2, 1).Dual()) // adjoint is a fixed point

	// Output:
	// (1,1)
	// (2,1)
}
