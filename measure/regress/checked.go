package regress

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Errors returned by [Evaluate] and [Compare].
var (
	ErrLengthMismatch = errors.New("regress: ref and test length mismatch")
	ErrEmpty          = errors.New("regress: buffers are empty")
	ErrNaN            = errors.New("regress: NaN detected")
	ErrZeroVariance   = errors.New("regress: reference has zero variance")
	ErrZeroEnergy     = errors.New("regress: reference and error energy are both zero")
	ErrUnknownMetric  = errors.New("regress: unknown metric")
)

// Metric selects the quantity computed by [Evaluate].
type Metric int

// Supported metrics.
const (
	MetricSNR Metric = iota
	MetricMSE
	MetricRMSE
	MetricMAE
	MetricRSquare
)

var metricNames = [...]string{
	MetricSNR:     "snr",
	MetricMSE:     "mse",
	MetricRMSE:    "rmse",
	MetricMAE:     "mae",
	MetricRSquare: "rsquare",
}

// Metrics lists every supported metric in declaration order.
func Metrics() []Metric {
	return []Metric{MetricSNR, MetricMSE, MetricRMSE, MetricMAE, MetricRSquare}
}

// String returns the lower-case metric name.
func (m Metric) String() string {
	if m < 0 || int(m) >= len(metricNames) {
		return fmt.Sprintf("Metric(%d)", int(m))
	}

	return metricNames[m]
}

// ParseMetric returns the metric with the given case-insensitive name.
// "r2" is accepted as an alias for "rsquare".
func ParseMetric(name string) (Metric, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "r2" {
		return MetricRSquare, nil
	}

	for i, n := range metricNames {
		if n == name {
			return Metric(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMetric, name)
}

// NaNPolicy selects how [Evaluate] classifies NaN samples.
type NaNPolicy int

const (
	// NaNAny rejects every IEEE-754 NaN encoding.
	NaNAny NaNPolicy = iota
	// NaNSentinel rejects only the 0x7FC00000 encoding, matching the
	// detection of the float32 metric functions.
	NaNSentinel
)

type config struct {
	nanPolicy NaNPolicy
}

// Option configures [Evaluate].
type Option func(*config)

// WithNaNPolicy sets the NaN classification. Unknown values are ignored.
func WithNaNPolicy(p NaNPolicy) Option {
	return func(cfg *config) {
		if p == NaNAny || p == NaNSentinel {
			cfg.nanPolicy = p
		}
	}
}

func applyOptions(opts []Option) config {
	cfg := config{nanPolicy: NaNAny}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

func (cfg config) isNaN() nanFunc {
	if cfg.nanPolicy == NaNSentinel {
		return IsSentinelNaN
	}

	return IsNaN
}

// Evaluate computes metric m like the corresponding float32 function but
// reports failures as errors instead of returning the sentinel zero:
//
//   - ErrLengthMismatch if len(ref) != len(test)
//   - ErrEmpty if the buffers hold no samples
//   - ErrNaN, wrapped with the offending buffer and index or accumulator,
//     if a NaN is found under the configured [NaNPolicy]
//   - ErrZeroVariance for [MetricRSquare] with a constant reference
//   - ErrZeroEnergy for [MetricSNR] when both buffers are silent (0/0)
//
// The SNR of identical buffers is +Inf with a nil error. Because it never
// returns the ambiguous zero, Evaluate does not reproduce the float32
// functions bit-for-bit on NaN input.
func Evaluate(m Metric, ref, test []float32, opts ...Option) (float32, error) {
	if len(ref) != len(test) {
		return 0, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(ref), len(test))
	}

	if len(ref) == 0 {
		return 0, ErrEmpty
	}

	isNaN := applyOptions(opts).isNaN()
	n := float32(len(ref))

	switch m {
	case MetricSNR:
		signal, noise, bad, inTest := energies(ref, test, isNaN)
		if err := checkSample(bad, inTest); err != nil {
			return 0, err
		}

		if isNaN(noise) {
			return 0, accumulatorNaN("error energy")
		}

		if signal == 0 && noise == 0 {
			return 0, ErrZeroEnergy
		}

		return powerTodB(signal / noise), nil

	case MetricMSE, MetricRMSE:
		_, noise, bad, inTest := energies(ref, test, isNaN)
		if err := checkSample(bad, inTest); err != nil {
			return 0, err
		}

		if isNaN(noise) {
			return 0, accumulatorNaN("error energy")
		}

		mse := noise / n
		if m == MetricMSE {
			return mse, nil
		}

		return float32(math.Sqrt(float64(mse))), nil

	case MetricMAE:
		sum, bad, inTest := absErrors(ref, test, isNaN)
		if err := checkSample(bad, inTest); err != nil {
			return 0, err
		}

		if isNaN(sum) {
			return 0, accumulatorNaN("absolute error")
		}

		return sum / n, nil

	case MetricRSquare:
		rss, tss, bad, inTest := residuals(ref, test, mean(ref), isNaN)
		if err := checkSample(bad, inTest); err != nil {
			return 0, err
		}

		if isNaN(rss) {
			return 0, accumulatorNaN("residual sum of squares")
		}

		if isNaN(tss) {
			return 0, accumulatorNaN("total sum of squares")
		}

		if tss == 0 {
			return 0, ErrZeroVariance
		}

		return 1 - rss/tss, nil
	}

	return 0, fmt.Errorf("%w: %v", ErrUnknownMetric, m)
}

func checkSample(bad int, inTest bool) error {
	if bad < 0 {
		return nil
	}

	buf := "ref"
	if inTest {
		buf = "test"
	}

	return fmt.Errorf("%w: %s[%d]", ErrNaN, buf, bad)
}

func accumulatorNaN(name string) error {
	return fmt.Errorf("%w: %s", ErrNaN, name)
}
