// SPDX-License-Identifier: MIT
// Package matrix_test provides benchmarks for the reduction and solving
// kernels, using deterministic random fill shaped like conservation matrices.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/chembal/matrix"
)

// benchShapes are (rows, cols) pairs typical of large reaction systems.
var benchShapes = [][2]int{{4, 6}, {8, 10}, {12, 16}}

// sinks to defeat dead-code elimination
var (
	sinkRank int
	sinkSol  matrix.Solution
)

func BenchmarkRowReduce(b *testing.B) {
	b.ReportAllocs()
	for _, sh := range benchShapes {
		b.Run(fmt.Sprintf("%dx%d", sh[0], sh[1]), func(b *testing.B) {
			src := MustDense(b, randomRows(rand.New(rand.NewSource(1337)), sh[0], sh[1], 6))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m := src.CloneDense()
				r, err := matrix.RowReduce(m)
				if err != nil {
					b.Fatal(err)
				}
				sinkRank = r
			}
		})
	}
}

func BenchmarkSolve(b *testing.B) {
	b.ReportAllocs()
	for _, sh := range benchShapes {
		b.Run(fmt.Sprintf("%dx%d", sh[0], sh[1]), func(b *testing.B) {
			src := MustDense(b, randomRows(rand.New(rand.NewSource(4242)), sh[0], sh[1], 6))
			rank, err := matrix.RowReduce(src)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				s, err := matrix.Solve(src.CloneDense(), rank)
				if err != nil {
					b.Fatal(err)
				}
				sinkSol = s
			}
		})
	}
}

func BenchmarkRowReduce_PivotStrategies(b *testing.B) {
	src := MustDense(b, randomRows(rand.New(rand.NewSource(7)), 8, 10, 6))
	for _, p := range []matrix.PivotStrategy{matrix.PivotLeastAbs, matrix.PivotFirstNonZero} {
		b.Run(p.String(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				r, err := matrix.RowReduce(src.CloneDense(), matrix.WithPivot(p))
				if err != nil {
					b.Fatal(err)
				}
				sinkRank = r
			}
		})
	}
}
