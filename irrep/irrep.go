package irrep

import "fmt"

// NBoxes returns the total number of boxes in the tableau, Row1 + Row2.
// Complexity: O(1).
func (ir Irrep) NBoxes() int {
	return ir.Row1 + ir.Row2
}

// HighestWeight returns the Dynkin labels (Row1-Row2, Row2), the standard
// alternative name for the same irrep.
// Complexity: O(1).
func (ir Irrep) HighestWeight() (int, int) {
	return ir.Row1 - ir.Row2, ir.Row2
}

// Dim returns the dimension of the representation via the SU(3) closed form
//
//	dim = (Row1 - Row2 + 1) · (Row2 + 1) · (Row1 + 2) / 2,
//
// an exact specialization of the hook-length formula to two-row tableaux.
// The product is always even, so the division is exact.
// Dim((0,0)) = 1, Dim((1,0)) = 3, Dim((2,1)) = 8.
// Complexity: O(1).
func (ir Irrep) Dim() int {
	return (ir.Row1 - ir.Row2 + 1) * (ir.Row2 + 1) * (ir.Row1 + 2) / 2
}

// Dual returns the conjugate representation (Row1, Row1-Row2): the irrep
// obtained by swapping quark- and antiquark-type boxes. Dual always yields
// a valid Irrep and is an involution; the singlet (0,0) and the adjoint
// (2,1) are fixed points.
// Complexity: O(1).
func (ir Irrep) Dual() Irrep {
	return Irrep{Row1: ir.Row1, Row2: ir.Row1 - ir.Row2}
}

// String renders the tableau label as "(Row1,Row2)".
func (ir Irrep) String() string {
	return fmt.Sprintf("(%d,%d)", ir.Row1, ir.Row2)
}
