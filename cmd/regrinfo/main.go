// Command regrinfo prints comparison metrics between a synthetic sine and its
// quantized copy at several bit depths.
//
// Usage:
//
//	regrinfo [flags] [bits ...]
//
// Without arguments it prints metrics for 16, 12, 8 and 4 bits.
//
// Examples:
//
//	regrinfo
//	regrinfo -amp 0.25 16 8
//	regrinfo -metrics snr,r2 -spectral 12
//	regrinfo -checked -len 1 8
package main

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-metrics/measure/regress"
	"github.com/cwbudde/algo-metrics/measure/spectral"
)

var defaultBits = []int{16, 12, 8, 4}

type options struct {
	freq       float64
	sampleRate float64
	length     int
	amplitude  float64
	metrics    []regress.Metric
	checked    bool
	spectral   bool
}

func main() {
	freq := flag.Float64("freq", 997, "sine frequency in Hz")
	rate := flag.Float64("rate", 48000, "sample rate in Hz")
	length := flag.Int("len", 4096, "signal length in samples")
	amp := flag.Float64("amp", 0.5, "sine amplitude relative to full scale (0, 1]")
	metricList := flag.String("metrics", "snr,mse,rmse,mae,rsquare", "comma-separated metrics to print")
	checked := flag.Bool("checked", false, "report NaN and degenerate inputs as errors instead of 0")
	withSpectral := flag.Bool("spectral", false, "add the log-spectral distance column")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: regrinfo [flags] [bits ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints metrics of a quantized sine against the unquantized reference.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints bit depths %v.\n\n", defaultBits)
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  regrinfo 16 8\n")
		fmt.Fprintf(os.Stderr, "  regrinfo -metrics snr,r2 -spectral 12\n")
	}
	flag.Parse()

	depths, err := parseBits(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	metrics, err := parseMetrics(*metricList)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	if *length <= 0 || *rate <= 0 || *amp <= 0 || *amp > 1 {
		fmt.Fprintf(os.Stderr, "error: -len, -rate and -amp must be positive and -amp at most 1\n")
		os.Exit(2)
	}

	opts := options{
		freq:       *freq,
		sampleRate: *rate,
		length:     *length,
		amplitude:  *amp,
		metrics:    metrics,
		checked:    *checked,
		spectral:   *withSpectral,
	}

	printTable(depths, opts)
}

func parseBits(args []string) ([]int, error) {
	if len(args) == 0 {
		return defaultBits, nil
	}

	out := make([]int, 0, len(args))
	for _, a := range args {
		b, err := strconv.Atoi(strings.TrimSpace(a))
		if err != nil || b < 1 || b > 16 {
			return nil, fmt.Errorf("invalid bit depth %q (want 1..16)", a)
		}

		out = append(out, b)
	}

	return out, nil
}

func parseMetrics(list string) ([]regress.Metric, error) {
	var out []regress.Metric
	for _, name := range strings.Split(list, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}

		m, err := regress.ParseMetric(name)
		if err != nil {
			return nil, err
		}

		out = append(out, m)
	}

	if len(out) == 0 {
		return nil, errors.New("no metrics selected")
	}

	return out, nil
}

// sine returns a float32 sine of the given amplitude.
func sine(freq, sampleRate, amplitude float64, length int) []float32 {
	out := make([]float32, length)
	step := 2 * math.Pi * freq / sampleRate
	for i := range out {
		out[i] = float32(amplitude * math.Sin(step*float64(i)))
	}

	return out
}

// quantize rounds ref to the given bit depth inside a 16-bit container and
// converts it back to full-scale float32 through [regress.S16ToF32].
func quantize(ref []float32, bits int) []float32 {
	levels := float64(int(1) << (bits - 1))
	shift := 16 - bits

	pcm := make([]int16, len(ref))
	for i, x := range ref {
		q := math.Round(float64(x) * levels)
		q = math.Max(-levels, math.Min(levels-1, q))
		pcm[i] = int16(int(q) << shift)
	}

	out := make([]float32, len(ref))
	regress.S16ToF32(out, pcm)

	for i := range out {
		out[i] /= 32768
	}

	return out
}

// theoreticalSNR is the SNR of an ideal uniform quantizer for a sine of the
// given relative amplitude.
func theoreticalSNR(bits int, amplitude float64) float64 {
	return 6.02*float64(bits) + 1.76 + 20*math.Log10(amplitude)
}

func widen(x []float32) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = float64(v)
	}

	return out
}

// row holds the printed cells for one bit depth.
type row struct {
	bits   int
	theory float64
	cells  []string
}

func buildRow(ref []float32, bits int, opts options) row {
	test := quantize(ref, bits)
	r := row{bits: bits, theory: theoreticalSNR(bits, opts.amplitude)}

	for _, m := range opts.metrics {
		var (
			v   float32
			err error
		)

		if opts.checked {
			v, err = regress.Evaluate(m, ref, test)
		} else {
			v = literal(m, ref, test)
		}

		if err != nil {
			r.cells = append(r.cells, "error")
			fmt.Fprintf(os.Stderr, "warning: %d bits %s: %v\n", bits, m, err)
			continue
		}

		r.cells = append(r.cells, formatValue(v))
	}

	if opts.spectral {
		res, err := spectral.Compare(widen(ref), widen(test), spectral.Config{SampleRate: opts.sampleRate})
		if err != nil {
			r.cells = append(r.cells, "error")
			fmt.Fprintf(os.Stderr, "warning: %d bits lsd: %v\n", bits, err)
		} else {
			r.cells = append(r.cells, fmt.Sprintf("%.4f", res.LogSpectralDistance))
		}
	}

	return r
}

func literal(m regress.Metric, ref, test []float32) float32 {
	switch m {
	case regress.MetricSNR:
		return regress.SNR(ref, test)
	case regress.MetricMSE:
		return regress.MSE(ref, test)
	case regress.MetricRMSE:
		return regress.RMSE(ref, test)
	case regress.MetricMAE:
		return regress.MAE(ref, test)
	default:
		return regress.RSquare(ref, test)
	}
}

func formatValue(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', 6, 32)
}

func header(opts options) []string {
	cols := []string{"Bits", "Theory [dB]"}
	for _, m := range opts.metrics {
		name := strings.ToUpper(m.String())
		if m == regress.MetricSNR {
			name += " [dB]"
		}

		cols = append(cols, name)
	}

	if opts.spectral {
		cols = append(cols, "LSD [dB]")
	}

	return cols
}

func printTable(depths []int, opts options) {
	ref := sine(opts.freq, opts.sampleRate, opts.amplitude, opts.length)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	cols := header(opts)
	rule := make([]string, len(cols))
	for i, c := range cols {
		rule[i] = strings.Repeat("-", len(c))
	}

	if _, err := fmt.Fprintf(tw, "%s\n%s\n", strings.Join(cols, "\t"), strings.Join(rule, "\t")); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for _, bits := range depths {
		r := buildRow(ref, bits, opts)
		if _, err := fmt.Fprintf(tw, "%d\t%.2f\t%s\n", r.bits, r.theory, strings.Join(r.cells, "\t")); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}

	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
