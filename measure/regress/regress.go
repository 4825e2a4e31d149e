package regress

import "math"

func mustMatch(ref, test []float32) {
	if len(ref) != len(test) {
		panic("regress: ref and test length mismatch")
	}
}

// SNR returns the signal-to-noise ratio of test against ref in decibels:
// 10 * log10(Σ ref² / Σ (ref-test)²).
//
// Identical buffers yield +Inf. Returns 0 if a sample or the error energy
// carries the sentinel NaN encoding. Panics if the lengths differ.
func SNR(ref, test []float32) float32 {
	mustMatch(ref, test)

	signal, noise, bad, _ := energies(ref, test, IsSentinelNaN)
	if bad >= 0 || IsSentinelNaN(noise) {
		return 0
	}

	return powerTodB(signal / noise)
}

// MSE returns the mean squared error Σ (ref-test)² / n.
//
// An empty buffer yields NaN. Returns 0 if a sample or the accumulated error
// carries the sentinel NaN encoding. Panics if the lengths differ.
func MSE(ref, test []float32) float32 {
	mustMatch(ref, test)

	_, noise, bad, _ := energies(ref, test, IsSentinelNaN)
	if bad >= 0 || IsSentinelNaN(noise) {
		return 0
	}

	return noise / float32(len(ref))
}

// RMSE returns the root mean squared error, sqrt([MSE]).
func RMSE(ref, test []float32) float32 {
	mse := MSE(ref, test)
	if IsSentinelNaN(mse) {
		return 0
	}

	return float32(math.Sqrt(float64(mse)))
}

// MAE returns the mean absolute error Σ |ref-test| / n.
//
// An empty buffer yields NaN. Returns 0 if a sample or the accumulated error
// carries the sentinel NaN encoding. Panics if the lengths differ.
func MAE(ref, test []float32) float32 {
	mustMatch(ref, test)

	sum, bad, _ := absErrors(ref, test, IsSentinelNaN)
	if bad >= 0 || IsSentinelNaN(sum) {
		return 0
	}

	return sum / float32(len(ref))
}

// RSquare returns the coefficient of determination 1 - RSS/TSS, where RSS is
// the residual sum of squares of test against ref and TSS the total sum of
// squares of ref around its mean.
//
// The mean pass does not inspect samples for NaN. A constant reference
// (TSS == 0) is not guarded and yields an IEEE special value. Returns 0 if a
// sample, RSS or TSS carries the sentinel NaN encoding. Panics if the lengths
// differ.
func RSquare(ref, test []float32) float32 {
	mustMatch(ref, test)

	mu := mean(ref)

	rss, tss, bad, _ := residuals(ref, test, mu, IsSentinelNaN)
	if bad >= 0 || IsSentinelNaN(rss) || IsSentinelNaN(tss) {
		return 0
	}

	return 1 - rss/tss
}

// powerTodB converts a single-precision power ratio to decibels.
func powerTodB(ratio float32) float32 {
	return float32(10 * math.Log10(float64(ratio)))
}
