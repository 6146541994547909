// Package su3 is your in-memory toolkit for SU(3) representation theory:
// irreducible representations as two-row Young tableaux, their dimensions
// and conjugates, and tensor-product (fusion) decompositions.
//
// 🚀 What is su3?
//
//	A small, pure-Go library that brings together:
//		• Irrep values: validated two-row Young-tableau labels (row1 ≥ row2 ≥ 0)
//		• Invariants: box count, highest weight, closed-form dimension
//		• Duality: the conjugate representation, an involution
//		• Fusion: Littlewood–Richardson decomposition of A ⊗ B into
//		  a sorted list of (multiplicity, irrep) terms
//		• Rendering: Unicode box-drawing of tableaux, plain or colored
//
// ✨ Why choose su3?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – validation at construction, total functions after
//   - Pure values – immutable, comparable, freely copyable, no shared state
//   - Deterministic – fusion output order is canonical and diff-friendly
//
// Under the hood, everything is organized under three subpackages:
//
//	irrep/  — the Irrep value type, validation, dimension, dual
//	fusion/ — the tensor-product decomposition engine and aggregation
//	young/  — tableau rendering (box-drawing text, optional styling)
//
// Quick ASCII example — the adjoint (2,1), an eight-dimensional irrep:
//
//	┌─┬─┐
//	│ │ │
//	├─┼─┘
//	│ │
//	└─┘
//
// The classic check: fusing two adjoints gives
// 1 ⊕ 8 ⊕ 8 ⊕ 10 ⊕ 10bar ⊕ 27, and 1+8+8+10+10+27 = 64 = 8·8.
//
// A demo binary lives in cmd/su3 with info, fuse, and table commands.
//
//	go get github.com/katalvlaran/su3
package su3
