// Package spectral compares a test signal against a reference in the
// frequency domain.
package spectral

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-metrics/internal/window"
	algofft "github.com/cwbudde/algo-fft"
)

// Errors returned by [Compare].
var (
	ErrLengthMismatch = errors.New("spectral: ref and test length mismatch")
	ErrEmpty          = errors.New("spectral: buffers are empty")
	ErrInvalidFFTSize = errors.New("spectral: FFT size must be a power of two not shorter than the signal")
	ErrInvalidRange   = errors.New("spectral: frequency range selects no bins")
)

// powerFloor keeps log-ratios finite for bins without energy.
const powerFloor = 1e-30

// Config holds spectral comparison parameters. Zero values select defaults:
// FFTSize is the next power of two of the signal length, SampleRate equals
// FFTSize (frequencies in bins), and the range spans DC to Nyquist. Negative
// range bounds are rejected with ErrInvalidRange.
type Config struct {
	FFTSize        int
	SampleRate     float64
	RangeLowerFreq float64
	RangeUpperFreq float64
}

// Result holds spectral comparison results.
type Result struct {
	LogSpectralDistance float64 // dB, RMS of per-bin power ratios
	SpectralSNR         float64 // dB, reference power over difference power
	Bins                int
	FFTSize             int
}

// Compare applies a periodic Hann window to ref and test, transforms both,
// and compares their power spectra over the configured frequency range.
//
// Identical buffers yield a distance of 0 and a spectral SNR of +Inf.
func Compare(ref, test []float64, cfg Config) (Result, error) {
	if len(ref) != len(test) {
		return Result{}, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(ref), len(test))
	}

	if len(ref) == 0 {
		return Result{}, ErrEmpty
	}

	fftSize := cfg.FFTSize
	if fftSize <= 0 {
		fftSize = nextPowerOf2(len(ref))
	}

	if fftSize < len(ref) || !isPowerOf2(fftSize) {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidFFTSize, fftSize)
	}

	sampleRate := cfg.SampleRate
	if sampleRate <= 0 {
		sampleRate = float64(fftSize)
	}

	lower, upper, err := binRange(cfg, sampleRate, fftSize)
	if err != nil {
		return Result{}, err
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Result{}, fmt.Errorf("spectral: FFT plan: %w", err)
	}

	refSpec, err := transform(plan, ref, fftSize)
	if err != nil {
		return Result{}, err
	}

	testSpec, err := transform(plan, test, fftSize)
	if err != nil {
		return Result{}, err
	}

	var (
		sumLogSq   float64
		refPower   float64
		errorPower float64
	)

	for k := lower; k <= upper; k++ {
		pr := powerOf(refSpec[k])
		pt := powerOf(testSpec[k])
		l := 10 * math.Log10((pr+powerFloor)/(pt+powerFloor))
		sumLogSq += l * l

		refPower += pr
		errorPower += powerOf(refSpec[k] - testSpec[k])
	}

	bins := upper - lower + 1

	return Result{
		LogSpectralDistance: math.Sqrt(sumLogSq / float64(bins)),
		SpectralSNR:         10 * math.Log10(refPower/errorPower),
		Bins:                bins,
		FFTSize:             fftSize,
	}, nil
}

func transform(plan *algofft.Plan[complex128], signal []float64, fftSize int) ([]complex128, error) {
	coeffs := window.Generate(window.TypeHann, len(signal), window.WithPeriodic())

	windowed, err := window.ApplyCoefficients(signal, coeffs)
	if err != nil {
		return nil, fmt.Errorf("spectral: window: %w", err)
	}

	in := make([]complex128, fftSize)
	for i, x := range windowed {
		in[i] = complex(x, 0)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("spectral: forward FFT: %w", err)
	}

	return out, nil
}

// binRange maps the configured frequency range onto inclusive bin indices in
// [0, fftSize/2].
func binRange(cfg Config, sampleRate float64, fftSize int) (lower, upper int, err error) {
	if cfg.RangeLowerFreq < 0 || cfg.RangeUpperFreq < 0 {
		return 0, 0, fmt.Errorf("%w: negative bound [%g, %g] Hz", ErrInvalidRange, cfg.RangeLowerFreq, cfg.RangeUpperFreq)
	}

	maxBin := fftSize / 2
	binHz := sampleRate / float64(fftSize)

	lower = 0
	if cfg.RangeLowerFreq > 0 {
		lower = int(math.Round(cfg.RangeLowerFreq / binHz))
	}

	upper = maxBin
	if cfg.RangeUpperFreq > 0 {
		upper = int(math.Round(cfg.RangeUpperFreq / binHz))
	}

	upper = min(upper, maxBin)
	if lower > upper {
		return 0, 0, fmt.Errorf("%w: [%g, %g] Hz", ErrInvalidRange, cfg.RangeLowerFreq, cfg.RangeUpperFreq)
	}

	return lower, upper, nil
}

func powerOf(c complex128) float64 {
	return real(c)*real(c) + imag(c)*imag(c)
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p *= 2
	}

	return p
}

func isPowerOf2(n int) bool {
	return n > 0 && (n&(n-1)) == 0
}
