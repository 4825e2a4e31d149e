package regress

import (
	"fmt"
	"math"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// Report holds every comparison metric of a test buffer against a reference,
// computed in float64 precision.
type Report struct {
	Length   int
	SNR      float64 // dB, 10*log10(Σ ref² / Σ (ref-test)²)
	PSNR     float64 // dB, 10*log10(peak(ref)² / MSE)
	MSE      float64
	RMSE     float64
	MAE      float64
	RSquare  float64
	MaxError float64 // max |ref-test|
}

// diffBuf holds pooled scratch memory for the ref-test difference.
type diffBuf struct {
	data []float64
}

var diffPool = sync.Pool{
	New: func() any { return &diffBuf{} },
}

func getDiff(n int) *diffBuf {
	buf := diffPool.Get().(*diffBuf)
	if cap(buf.data) < n {
		buf.data = make([]float64, n)
	} else {
		buf.data = buf.data[:n]
	}

	return buf
}

// Compare computes all metrics of test against ref in one call.
//
// Unlike the float32 functions it uses ordinary IEEE semantics: NaN input
// propagates into every error field, MaxError included, and no sentinel is
// recognized.
// Division by zero (identical buffers, constant reference) yields Inf or NaN
// in the corresponding field.
func Compare(ref, test []float64) (Report, error) {
	if len(ref) != len(test) {
		return Report{}, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(ref), len(test))
	}

	n := len(ref)
	if n == 0 {
		return Report{}, ErrEmpty
	}

	buf := getDiff(n)
	defer diffPool.Put(buf)

	diff := buf.data
	vecmath.ScaleBlock(diff, test, -1)
	vecmath.AddBlockInPlace(diff, ref)

	nf := float64(n)
	signal := vecmath.DotProduct(ref, ref)
	noise := vecmath.DotProduct(diff, diff)
	mu := vecmath.Sum(ref) / nf
	peak := vecmath.MaxAbs(ref)

	var absSum, tss, maxErr float64
	for i, d := range diff {
		a := math.Abs(d)
		absSum += a
		if a > maxErr || math.IsNaN(a) {
			maxErr = a
		}

		c := ref[i] - mu
		tss += c * c
	}

	mse := noise / nf

	return Report{
		Length:   n,
		SNR:      ratioTodB(signal / noise),
		PSNR:     ratioTodB(peak * peak / mse),
		MSE:      mse,
		RMSE:     math.Sqrt(mse),
		MAE:      absSum / nf,
		RSquare:  1 - noise/tss,
		MaxError: maxErr,
	}, nil
}

// ratioTodB converts a linear power ratio to decibels: 10 * log10(ratio).
func ratioTodB(ratio float64) float64 {
	return 10 * math.Log10(ratio)
}
