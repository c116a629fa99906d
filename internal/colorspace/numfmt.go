package colorspace

import "strconv"

// trimTrailingZeros formats a float64 using the minimal number of decimal
// digits (up to 4) without trailing zeros, e.g. 62.3000 -> "62.3",
// 0.0000 -> "0".
func trimTrailingZeros(v float64) string {
	s := strconv.FormatFloat(v, 'f', 4, 64)
	end := len(s)
	for end > 0 && s[end-1] == '0' {
		end--
	}
	if end > 0 && s[end-1] == '.' {
		end--
	}
	if end == 0 {
		return "0"
	}
	return s[:end]
}
