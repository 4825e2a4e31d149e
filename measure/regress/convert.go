package regress

// S16ToF32 converts signed 16-bit samples to float32 without scaling:
// dst[i] = float32(src[i]) for every index of src.
//
// dst must hold at least len(src) elements. Elements beyond len(src) are
// left untouched. Panics if dst is too short.
func S16ToF32(dst []float32, src []int16) {
	if len(dst) < len(src) {
		panic("regress: destination shorter than source")
	}

	dst = dst[:len(src)]
	for i, s := range src {
		dst[i] = float32(s)
	}
}
