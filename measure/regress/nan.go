package regress

import "math"

// SentinelNaNBits is the single-precision quiet NaN encoding recognized by the
// float32 metrics. It is one of many valid NaN bit patterns.
const SentinelNaNBits uint32 = 0x7FC00000

// IsSentinelNaN reports whether the raw bits of v equal [SentinelNaNBits].
// Negative NaNs and NaNs carrying a payload are not matched.
func IsSentinelNaN(v float32) bool {
	return math.Float32bits(v) == SentinelNaNBits
}

// IsNaN reports whether v is any IEEE-754 NaN.
func IsNaN(v float32) bool {
	return math.IsNaN(float64(v))
}
