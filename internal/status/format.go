package status

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// decimal renders a float in its shortest form but always with a
// fractional part: 5 -> "5.0", 12.30 -> "12.3".
func decimal(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".") {
		s += ".0"
	}
	return s
}

// round rounds v to places decimals using the exact binary value.
func round(v float64, places int) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', places, 64), 64)
	if err != nil {
		return v
	}
	return r
}

// floorMod is a modulo whose result takes the sign of m.
func floorMod(v, m float64) float64 {
	return v - m*math.Floor(v/m)
}

// Clock splits a duration in fractional hours. Minutes and seconds are each
// taken from the whole value, not from what the larger unit left over.
func Clock(hours float64) (h, m, s int) {
	return int(hours), int(floorMod(hours*60, 60)), int(floorMod(hours*3600, 60))
}

// ClockText renders hours as HH:MM:SS.
func ClockText(hours float64) string {
	h, m, s := Clock(hours)
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
