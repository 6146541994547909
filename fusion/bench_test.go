package fusion_test

import (
	"testing"

	"github.com/katalvlaran/su3/fusion"
	"github.com/katalvlaran/su3/irrep"
)

// benchmarkFuse runs Fuse on a fixed operand pair b.N times.
func benchmarkFuse(b *testing.B, left, right irrep.Irrep) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if d := fusion.Fuse(left, right); len(d) == 0 {
			b.Fatal("empty decomposition") // cannot happen for valid irreps
		}
	}
}

// BenchmarkFuse_Adjoint measures the classic 8 ⊗ 8 decomposition.
func BenchmarkFuse_Adjoint(b *testing.B) {
	adj := irrep.MustNew(2, 1)
	benchmarkFuse(b, adj, adj)
}

// BenchmarkFuse_Medium measures a mid-size product with tens of terms.
func BenchmarkFuse_Medium(b *testing.B) {
	benchmarkFuse(b, irrep.MustNew(6, 3), irrep.MustNew(5, 2))
}

// BenchmarkFuse_Large measures the upper end of the practical range.
func BenchmarkFuse_Large(b *testing.B) {
	benchmarkFuse(b, irrep.MustNew(12, 6), irrep.MustNew(10, 5))
}
