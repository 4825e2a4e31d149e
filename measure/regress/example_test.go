package regress_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-metrics/measure/regress"
)

func ExampleSNR() {
	ref := []float32{1, 1, 1, 1}
	test := []float32{1, 1, 1, 0}
	fmt.Printf("snr=%.4f dB\n", regress.SNR(ref, test))

	// Output:
	// snr=6.0206 dB
}

func ExampleS16ToF32() {
	src := []int16{-32768, -1, 0, 32767}
	dst := make([]float32, len(src))
	regress.S16ToF32(dst, src)
	fmt.Println(dst)

	// Output:
	// [-32768 -1 0 32767]
}

func ExampleEvaluate() {
	ref := []float32{1, 2, 3, 4}
	test := []float32{1, 2, math.Float32frombits(regress.SentinelNaNBits), 4}

	fmt.Println(regress.MSE(ref, test))

	_, err := regress.Evaluate(regress.MetricMSE, ref, test)
	fmt.Println(err)

	// Output:
	// 0
	// regress: NaN detected: test[2]
}

func ExampleCompare() {
	r, err := regress.Compare([]float64{1, 2, 3, 4}, []float64{1, 2, 3, 5})
	if err != nil {
		panic(err)
	}

	fmt.Printf("mse=%.2f mae=%.2f r2=%.2f max=%.0f\n", r.MSE, r.MAE, r.RSquare, r.MaxError)

	// Output:
	// mse=0.25 mae=0.25 r2=0.80 max=1
}
