package utils

import "math"

// pcm16Scale maps int16 onto [-1, 1). Dividing by 32768 rather than 32767
// keeps the mapping symmetric and exact in float32.
const pcm16Scale = 32768.0

func Int16ToFloat32(s int16) float32 {
	return float32(s) / pcm16Scale
}

// Float32ToInt16 is the inverse of Int16ToFloat32: it rounds to the nearest
// integer and clamps to the int16 range.
func Float32ToInt16(x float32) int16 {
	v := math.Round(float64(x) * pcm16Scale)

	if v > math.MaxInt16 {
		return math.MaxInt16
	} else if v < math.MinInt16 {
		return math.MinInt16
	}

	return int16(v)
}
