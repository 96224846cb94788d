package brickfall

import (
	"fmt"
	"strconv"
)

// FormatShort formats a number using shorthand notation (1k, 23m, 4b, ...).
// Values below 1000 are printed verbatim.
func FormatShort(n int) string {
	switch {
	case n < 1_000:
		return strconv.Itoa(n)
	case n < 1_000_000:
		return fmt.Sprintf("%.0fk", float64(n)/1_000)
	case n < 1_000_000_000:
		return fmt.Sprintf("%.0fm", float64(n)/1_000_000)
	case n < 1_000_000_000_000:
		return fmt.Sprintf("%.0fb", float64(n)/1_000_000_000)
	case n < 1_000_000_000_000_000:
		return fmt.Sprintf("%.0ft", float64(n)/1_000_000_000_000)
	default:
		return strconv.Itoa(n)
	}
}
