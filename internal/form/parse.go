package form

import (
	"math"
	"strconv"
	"strings"
)

// ParseNumber reads a number typed into a form field.
// Anything that is not a plain decimal number yields 0: empty text, letters,
// locale-formatted numbers such as "12,5", NaN and infinities. The error is
// never reported; the tip simply shows as zero.
func ParseNumber(text string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
