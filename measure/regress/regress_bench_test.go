package regress

import (
	"strconv"
	"testing"
)

var benchSizes = []int{64, 256, 1024, 4096, 16384, 65536}

func BenchmarkSNR(b *testing.B) {
	for _, n := range benchSizes {
		ref, test := noisePair(1, n)
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 8))

			for range b.N {
				SNR(ref, test)
			}
		})
	}
}

func BenchmarkRSquare(b *testing.B) {
	for _, n := range benchSizes {
		ref, test := noisePair(1, n)
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 8))

			for range b.N {
				RSquare(ref, test)
			}
		})
	}
}

func BenchmarkS16ToF32(b *testing.B) {
	for _, n := range benchSizes {
		src := make([]int16, n)
		for i := range src {
			src[i] = int16(i * 31)
		}
		dst := make([]float32, n)

		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 2))

			for range b.N {
				S16ToF32(dst, src)
			}
		})
	}
}

func BenchmarkCompare(b *testing.B) {
	for _, n := range benchSizes {
		ref32, test32 := noisePair(1, n)
		ref := make([]float64, n)
		test := make([]float64, n)
		for i := range ref {
			ref[i] = float64(ref32[i])
			test[i] = float64(test32[i])
		}

		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 16))

			for range b.N {
				_, _ = Compare(ref, test)
			}
		})
	}
}
