package reading

import (
	"regexp"
	"strconv"
	"strings"
)

// LEDs holds the keyboard indicator state.
type LEDs struct {
	Caps bool
	Num  bool
}

const (
	capsBit = 1 << 0
	numBit  = 1 << 1
)

var ledMaskRe = regexp.MustCompile(`([0-9]{8})\s*$`)

// ParseLEDs reads the 8-digit binary mask at the end of the "LED mask"
// line of `xset q`. A missing line or a literal that is not binary makes
// the reading unavailable.
func ParseLEDs(raw string) Opt[LEDs] {
	for _, line := range lines(raw) {
		if !strings.Contains(line, "LED") {
			continue
		}
		m := ledMaskRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		mask, err := strconv.ParseUint(m[1], 2, 8)
		if err != nil {
			return None[LEDs]()
		}

		return Some(LEDs{
			Caps: mask&capsBit != 0,
			Num:  mask&numBit != 0,
		})
	}

	return None[LEDs]()
}
