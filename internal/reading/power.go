package reading

import (
	"strconv"
	"strings"
)

type PowerState int

const (
	PowerOther PowerState = iota
	PowerCharging
	PowerDischarging
)

func (s PowerState) String() string {
	switch s {
	case PowerCharging:
		return "charging"
	case PowerDischarging:
		return "discharging"
	default:
		return "other"
	}
}

// Power is the battery state reported by `upower -i <device>`.
type Power struct {
	State      PowerState
	Capacity   Opt[float64] // percent
	Energy     Opt[float64] // Wh
	EnergyFull Opt[float64] // Wh
	EnergyRate Opt[float64] // W
}

// ParsePower parses upower's "key: value" dump. Keys that are missing or
// carry an unparsable number stay unavailable. The reading itself is
// unavailable only when no known key is present.
func ParsePower(raw string) Opt[Power] {
	var (
		p     Power
		found bool
	)

	for _, line := range lines(raw) {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)

		switch strings.TrimSpace(key) {
		case "state":
			p.State = powerState(value)
		case "capacity":
			p.Capacity = unitValue(value, "%")
		case "energy":
			p.Energy = unitValue(value, "Wh")
		case "energy-full":
			p.EnergyFull = unitValue(value, "Wh")
		case "energy-rate":
			p.EnergyRate = unitValue(value, "W")
		default:
			continue
		}
		found = true
	}

	if !found {
		return None[Power]()
	}
	return Some(p)
}

func powerState(s string) PowerState {
	switch {
	case strings.Contains(s, "discharging"):
		return PowerDischarging
	case strings.Contains(s, "charging"):
		return PowerCharging
	default:
		return PowerOther
	}
}

func unitValue(s, unit string) Opt[float64] {
	s = strings.TrimSpace(strings.TrimSuffix(s, unit))
	// upower may print a decimal comma depending on locale
	v, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil {
		return None[float64]()
	}
	return Some(v)
}
