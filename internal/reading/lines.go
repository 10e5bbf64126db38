package reading

import (
	"strconv"
	"strings"
)

func lines(raw string) []string {
	return strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
}

// round rounds v to places decimals the way the value prints, so 2.675
// becomes 2.67 because its binary form sits just below the midpoint.
func round(v float64, places int) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', places, 64), 64)
	if err != nil {
		return v
	}
	return r
}
