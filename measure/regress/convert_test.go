package regress

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-metrics/internal/testutil"
)

func TestS16ToF32_FullRange(t *testing.T) {
	src := make([]int16, 0, math.MaxUint16+1)
	for v := math.MinInt16; v <= math.MaxInt16; v++ {
		src = append(src, int16(v))
	}

	dst := make([]float32, len(src))
	S16ToF32(dst, src)

	for i, v := range src {
		if dst[i] != float32(v) {
			t.Fatalf("dst[%d] = %v, want %v", i, dst[i], float32(v))
		}

		if int16(dst[i]) != v {
			t.Fatalf("dst[%d] = %v does not round-trip to %d", i, dst[i], v)
		}
	}
}

func TestS16ToF32_NoScaling(t *testing.T) {
	dst := make([]float32, 3)
	S16ToF32(dst, []int16{math.MinInt16, 0, math.MaxInt16})

	want := []float32{-32768, 0, 32767}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestS16ToF32_LeavesTailUntouched(t *testing.T) {
	dst := []float32{-1, -1, -1, -1}
	S16ToF32(dst, []int16{7, 8})

	want := []float32{7, 8, -1, -1}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestS16ToF32_Empty(t *testing.T) {
	S16ToF32(nil, nil)
	S16ToF32([]float32{1}, []int16{})
}

func TestS16ToF32_ShortDestinationPanics(t *testing.T) {
	testutil.RequirePanic(t, "S16ToF32", func() {
		S16ToF32(make([]float32, 1), []int16{1, 2})
	})
}
