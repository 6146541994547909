package fusion

import (
	"sort"

	"github.com/katalvlaran/su3/irrep"
)

// Fuse — SU(3) tensor product decomposition (Littlewood–Richardson rule)
//
// Description:
//
//	Fuse expresses left ⊗ right as a direct sum of irreps with
//	multiplicities. Each multiplicity counts the admissible ways of
//	growing the larger tableau by the boxes of the smaller one under
//	the lattice-word (Yamanouchi) condition, specialized to the at most
//	three effective rows that occur for SU(3).
//
// Algorithm Outline:
//  1. If right carries more boxes than left, swap operands; the content
//     of the result is symmetric, and extending the larger tableau keeps
//     the enumeration small.
//  2. If the smaller operand is the singlet, return [(1, left)].
//  3. Let (l1,l2) = left, (r1,r2) = right. Distribute right's first-row
//     boxes: a23 of them land on rows 2–3 of the result,
//     a23 ∈ 0..min(2·l1, r1).
//  4. Of those, a3 land on row 3. Admissibility (rows stay weakly
//     decreasing, no two added boxes of one source row share a column)
//     bounds a3 by
//     max(0, l2+2·a23-l1-r1, l2-l1+a23) ≤ a3 ≤ min(l2, a23, r1-r2).
//     The intermediate shape is row1a = l1+r1-a23, row2a = l2+a23-a3.
//  5. Distribute right's second-row boxes: b3 of them land on row 3
//     (none may land on row 1 — the lattice word forbids it), with
//     max(0, row2a+r2-row1a, r2-r1+a23) ≤ b3
//     ≤ min(r2, ⌊(row2a+r2-a3)/2⌋, row2a-a3).
//  6. Each admissible (a23, a3, b3) contributes one candidate
//     (row1a-row3ab, row2ab-row3ab), where row2ab = row2a+r2-b3 and
//     row3ab = a3+b3; full columns of height 3 are removed, which is the
//     SU(3) reduction.
//  7. Aggregate candidates into distinct terms with multiplicities,
//     sorted ascending by (dimension, box count, Row2).
//
// Complexity:
//
//	Time   = O(r1²·r2) candidate triples plus the final sort
//	Memory = O(#candidates)
//
// Fuse is total: every pair of valid irreps decomposes, and
// Fuse(a,b).Dim() == a.Dim()*b.Dim() always holds.
func Fuse(left, right irrep.Irrep) Decomposition {
	// Content is symmetric; always extend the tableau with more boxes.
	if right.NBoxes() > left.NBoxes() {
		left, right = right, left
	}

	// Singlet base case: X ⊗ 1 = X.
	if right.Row1 == 0 {
		return Decomposition{{Mult: 1, Irr: left}}
	}

	l1, l2 := left.Row1, left.Row2
	r1, r2 := right.Row1, right.Row2

	var raw []irrep.Irrep
	for a23 := 0; a23 <= min(2*l1, r1); a23++ {
		a3lo := max(0, l2+2*a23-l1-r1, l2-l1+a23)
		a3hi := min(l2, a23, r1-r2)
		for a3 := a3lo; a3 <= a3hi; a3++ {
			row1a := l1 + r1 - a23
			row2a := l2 + a23 - a3

			b3lo := max(0, row2a+r2-row1a, r2-r1+a23)
			b3hi := min(r2, (row2a+r2-a3)/2, row2a-a3)
			for b3 := b3lo; b3 <= b3hi; b3++ {
				row2ab := row2a + r2 - b3
				row3ab := a3 + b3
				raw = append(raw, irrep.Irrep{
					Row1: row1a - row3ab,
					Row2: row2ab - row3ab,
				})
			}
		}
	}

	return aggregate(raw)
}

// aggregate groups equal candidates into (multiplicity, irrep) terms and
// sorts them into the canonical order. Two passes: a count map keyed by
// the irrep value, then an explicit sort — enumeration order never leaks
// into the output.
func aggregate(raw []irrep.Irrep) Decomposition {
	counts := make(map[irrep.Irrep]int, len(raw))
	for _, ir := range raw {
		counts[ir]++
	}

	dec := make(Decomposition, 0, len(counts))
	for ir, mult := range counts {
		dec = append(dec, Term{Mult: mult, Irr: ir})
	}
	sort.Slice(dec, func(i, j int) bool {
		a, b := dec[i].Irr, dec[j].Irr
		if da, db := a.Dim(), b.Dim(); da != db {
			return da < db
		}
		if na, nb := a.NBoxes(), b.NBoxes(); na != nb {
			return na < nb
		}

		// (NBoxes, Row2) already determines the irrep, so the key is total.
		return a.Row2 < b.Row2
	})

	return dec
}
