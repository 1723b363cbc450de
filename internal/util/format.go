package util

import (
	"fmt"
	"math"
	"strconv"
)

// FormatSeconds formats a time span in seconds with centisecond precision,
// e.g. "0.42s".
func FormatSeconds(s float64) string {
	if s < 0 {
		s = 0
	}
	return fmt.Sprintf("%.2fs", s)
}

// FormatNumber renders a float without trailing zeros, rounded to two
// decimals, e.g. 1.08 -> "1.08", 1.0 -> "1".
func FormatNumber(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
