package kdgo

import (
	"fmt"
	"math/rand"
	"testing"
)

func BenchmarkNew(b *testing.B) {
	sizes := []int{100, 1000, 10000}

	for _, n := range sizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			src := generateRandomPoints(n, 3, 1)
			buf := make([]float64, len(src))

			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				copy(buf, src)
				if _, err := New(buf, 3); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkNearest(b *testing.B) {
	sizes := []int{1000, 10000, 100000}

	for _, n := range sizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			buf := generateRandomPoints(n, 3, 1)
			tree, err := New(buf, 3)
			if err != nil {
				b.Fatal(err)
			}

			r := rand.New(rand.NewSource(2))

			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				q := []float64{r.Float64() * 100, r.Float64() * 100, r.Float64() * 100}
				if _, err := tree.Nearest(q, 10); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
