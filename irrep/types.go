// Package irrep declares the Irrep type, its sentinel errors,
// and the validated constructor.
//
// Errors:
//
//	ErrInvalidTableau - the row pair violates Row1 ≥ Row2 ≥ 0.
package irrep

import (
	"errors"
	"fmt"
)

// Sentinel errors for irrep construction.
var (
	// ErrInvalidTableau indicates the requested rows do not form a valid
	// two-row Young tableau (Row1 ≥ Row2 ≥ 0 is required).
	ErrInvalidTableau = errors.New("irrep: invalid Young tableau")
)

// Irrep labels one irreducible representation of SU(3) by the row lengths
// of its two-row Young tableau. It is an immutable value: construct it via
// New (or MustNew for known-good literals), compare it with ==, copy it
// freely. The zero value is the singlet (0,0) and is valid.
type Irrep struct {
	// Row1 is the length of the first (longer) row.
	Row1 int
	// Row2 is the length of the second row, 0 ≤ Row2 ≤ Row1.
	Row2 int
}

// New constructs an Irrep from row lengths, validating Row1 ≥ Row2 ≥ 0.
// Returns ErrInvalidTableau otherwise; no Irrep is produced on failure.
// This is the single validation checkpoint: every method on Irrep assumes
// the invariant and is total.
func New(row1, row2 int) (Irrep, error) {
	if row2 < 0 || row1 < row2 {
		return Irrep{}, fmt.Errorf("%w: rows (%d,%d)", ErrInvalidTableau, row1, row2)
	}

	return Irrep{Row1: row1, Row2: row2}, nil
}

// MustNew is like New but panics on invalid rows.
// Intended for literals in tests, examples, and tables.
func MustNew(row1, row2 int) Irrep {
	ir, err := New(row1, row2)
	if err != nil {
		panic(err)
	}

	return ir
}
