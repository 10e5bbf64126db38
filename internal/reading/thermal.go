package reading

import (
	"regexp"
	"strconv"
	"strings"
)

// Thermal is the package temperature reported by lm-sensors, in whole
// degrees Celsius, plus the first fan speed found.
type Thermal struct {
	Current int
	High    int
	Crit    int
	Fan     string // e.g. "2400 RPM", empty when no fan is reported
}

const thermalMarker = "Physical"

var (
	thermalRe = regexp.MustCompile(
		`^\s*Physical[^:]*:\s+\+?(\d+(?:\.\d+)?).*\(high\s*=\s*\+?(\d+(?:\.\d+)?).*,\s*crit\s*=\s*\+?(\d+(?:\.\d+)?)`)
	fanRe = regexp.MustCompile(`^fan\d+:\s+(\d+\s+RPM)`)
)

// ParseThermal parses `sensors` output. The reading is unavailable when no
// "Physical" line carries current, high and crit values.
func ParseThermal(raw string) Opt[Thermal] {
	var (
		t     Thermal
		found bool
	)

	for _, line := range lines(raw) {
		switch {
		case strings.Contains(line, thermalMarker):
			m := thermalRe.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			cur, okCur := celsius(m[1])
			high, okHigh := celsius(m[2])
			crit, okCrit := celsius(m[3])
			if !okCur || !okHigh || !okCrit {
				continue
			}
			t.Current, t.High, t.Crit = cur, high, crit
			found = true
		case strings.Contains(line, "fan"):
			if m := fanRe.FindStringSubmatch(line); m != nil {
				t.Fan = m[1]
			}
		}
	}

	if !found {
		return None[Thermal]()
	}
	return Some(t)
}

func celsius(s string) (int, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return int(v), true
}
