// Package regress computes signal-comparison metrics between a reference
// buffer and a test buffer: SNR, MSE, RMSE, MAE and R² (coefficient of
// determination). It also converts signed 16-bit samples to float32.
//
// The float32 functions ([SNR], [MSE], [RMSE], [MAE], [RSquare]) follow the
// single-precision regression-error routines used by embedded DSP
// validation harnesses. They allocate nothing and never return an error:
//
//   - ref and test must have equal length. Mismatched lengths panic.
//   - Division by zero is not guarded. An empty buffer, identical signals
//     (SNR) or a constant reference (R²) produce IEEE Inf or NaN.
//   - Any inspected sample, or accumulated energy, whose raw bit pattern is
//     exactly 0x7FC00000 ([SentinelNaNBits]) makes the metric return 0.
//     Other NaN encodings are not detected and propagate through the
//     arithmetic.
//
// The sentinel zero cannot be told apart from a legitimately computed zero.
// Callers that need to distinguish them should use [Evaluate], which reports
// NaN input, empty buffers, mismatched lengths and zero reference variance as
// errors and by default classifies NaN with [IsNaN] instead of the single
// sentinel encoding. Its results therefore differ from the float32 functions
// whenever those would have returned the sentinel zero.
//
// [Compare] evaluates every metric at once in float64 precision using
// SIMD-dispatched vector kernels.
package regress
