package numeric

import "math"

// Round3 truncates toward zero at three decimals. It does not round to nearest:
// 0.9199999 becomes 0.919. A negative zero result is returned as 0.
func Round3(x float64) float64 {
	v := math.Trunc(x*1000) / 1000
	if v == 0 {
		return 0
	}
	return v
}
