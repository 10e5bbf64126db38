package status

import (
	"fmt"

	"codeberg.org/mutker/statusfeed/internal/reading"
)

const (
	batteryWarnHours   = 1.0
	batteryDangerHours = 0.5
)

// BatteryPercent scales the stored energy ratio by the capacity the device
// reports, matching what the bar has always shown. The second result is
// false when the inputs are missing or energy-full is zero.
func BatteryPercent(p reading.Power) (float64, bool) {
	energy, ok1 := p.Energy.Get()
	full, ok2 := p.EnergyFull.Get()
	capacity, ok3 := p.Capacity.Get()
	if !ok1 || !ok2 || !ok3 || full == 0 {
		return 0, false
	}
	return energy / full * capacity, true
}

// BatteryHours is the time to empty while discharging and the time to full
// otherwise. A zero or missing rate yields 0.
func BatteryHours(p reading.Power) float64 {
	rate := p.EnergyRate.Or(0)
	if rate == 0 {
		return 0
	}

	energy := p.Energy.Or(0)
	if p.State == reading.PowerDischarging {
		return energy / rate
	}
	return (p.EnergyFull.Or(0) - energy) / rate
}

// BatterySeverity grades the time left on battery. Charging is always
// Normal, as is an unknown rate.
func BatterySeverity(p reading.Power) Severity {
	if p.State != reading.PowerDischarging || p.EnergyRate.Or(0) == 0 {
		return Normal
	}

	hours := BatteryHours(p)
	switch {
	case hours < batteryDangerHours:
		return Danger
	case hours < batteryWarnHours:
		return Warn
	default:
		return Normal
	}
}

// Battery renders " BAT 90.00% 01:30:00 " while discharging and "CHR"
// otherwise.
func Battery(p *Palette, r reading.Opt[reading.Power]) Block {
	power, ok := r.Get()
	if !ok {
		return batteryError(p)
	}
	percent, ok := BatteryPercent(power)
	if !ok {
		return batteryError(p)
	}

	status := "CHR"
	if power.State == reading.PowerDischarging {
		status = "BAT"
	}

	hours := BatteryHours(power)
	h, m, _ := Clock(hours)
	sev := BatterySeverity(power)

	return newBlock(NameBattery,
		fmt.Sprintf(" %s %0.2f%% %s ", status, round(percent, 2), ClockText(hours)),
		fmt.Sprintf(" %s %d%% %02d:%02d ", status[:1], int(percent), h, m),
		p.For(sev), sev)
}

func batteryError(p *Palette) Block {
	return errorBlock(p, NameBattery, " BAT ERR ", " B ERR ")
}
