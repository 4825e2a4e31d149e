package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Float32s rounds every element of x to single precision.
func Float32s(x []float64) []float32 {
	out := make([]float32, len(x))
	for i, v := range x {
		out[i] = float32(v)
	}
	return out
}

// Perturb returns a copy of signal with seeded white noise of the given
// amplitude added, mimicking a lossy round trip.
func Perturb(signal []float32, seed int64, amplitude float64) []float32 {
	noise := DeterministicNoise(seed, amplitude, len(signal))
	out := make([]float32, len(signal))
	for i := range out {
		out[i] = signal[i] + float32(noise[i])
	}
	return out
}

// ReplaceAt returns a copy of buf with buf[i] set to v.
func ReplaceAt(buf []float32, i int, v float32) []float32 {
	out := append([]float32(nil), buf...)
	out[i] = v
	return out
}
