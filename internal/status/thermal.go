package status

import (
	"fmt"

	"codeberg.org/mutker/statusfeed/internal/reading"
)

// ThermalSeverity escalates once the temperature exceeds a limit; reaching
// it exactly is still fine.
func ThermalSeverity(t reading.Thermal) Severity {
	sev := Normal
	if t.Current > t.High {
		sev = Warn
	}
	if t.Current > t.Crit {
		sev = Danger
	}
	return sev
}

// Thermal renders the CPU temperature and fan speed.
func Thermal(p *Palette, r reading.Opt[reading.Thermal]) Block {
	t, ok := r.Get()
	if !ok {
		return errorBlock(p, NameThermal, " ERR[C] ", " ERR[C] ")
	}

	sev := ThermalSeverity(t)
	return newBlock(NameThermal,
		fmt.Sprintf(" %d[C] %s ", t.Current, t.Fan),
		fmt.Sprintf(" %d[C] ", t.Current),
		p.For(sev), sev)
}
