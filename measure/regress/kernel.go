package regress

import "math"

// nanFunc classifies a sample or accumulator as NaN.
type nanFunc func(float32) bool

// Products are converted to float32 explicitly so the compiler cannot fuse
// them into the following addition. Every step rounds to single precision.

// energies returns Σ ref² and Σ (ref-test)². bad is the index of the first
// sample rejected by isNaN, or -1. inTest reports which buffer held it.
func energies(ref, test []float32, isNaN nanFunc) (signal, noise float32, bad int, inTest bool) {
	for i := range ref {
		if isNaN(ref[i]) {
			return 0, 0, i, false
		}

		if isNaN(test[i]) {
			return 0, 0, i, true
		}

		d := ref[i] - test[i]
		signal += float32(ref[i] * ref[i])
		noise += float32(d * d)
	}

	return signal, noise, -1, false
}

// absErrors returns Σ |ref-test| with the same rejection rules as energies.
func absErrors(ref, test []float32, isNaN nanFunc) (sum float32, bad int, inTest bool) {
	for i := range ref {
		if isNaN(ref[i]) {
			return 0, i, false
		}

		if isNaN(test[i]) {
			return 0, i, true
		}

		sum += float32(math.Abs(float64(ref[i] - test[i])))
	}

	return sum, -1, false
}

// mean returns Σ ref / len(ref). No NaN checks are applied.
func mean(ref []float32) float32 {
	var sum float32
	for _, x := range ref {
		sum += x
	}

	return sum / float32(len(ref))
}

// residuals returns the residual sum of squares Σ (ref-test)² and the total
// sum of squares Σ (ref-mu)².
func residuals(ref, test []float32, mu float32, isNaN nanFunc) (rss, tss float32, bad int, inTest bool) {
	for i := range ref {
		if isNaN(ref[i]) {
			return 0, 0, i, false
		}

		if isNaN(test[i]) {
			return 0, 0, i, true
		}

		d := ref[i] - test[i]
		c := ref[i] - mu
		rss += float32(d * d)
		tss += float32(c * c)
	}

	return rss, tss, -1, false
}
