// Package bar turns one cycle of raw source text into the ordered list of
// status blocks and writes it out.
package bar

import (
	"time"

	"codeberg.org/mutker/statusfeed/internal/reading"
	"codeberg.org/mutker/statusfeed/internal/source"
	"codeberg.org/mutker/statusfeed/internal/status"
)

// Snapshot is the raw text of one cycle and the time it was taken.
type Snapshot struct {
	Time time.Time
	source.Results
}

// Readings is one cycle parsed. Every field is unavailable when its
// source failed or its text did not parse.
type Readings struct {
	LEDs     reading.Opt[reading.LEDs]
	Wifi     reading.Opt[reading.Interface]
	Ethernet reading.Opt[reading.Interface]
	Disks    reading.Opt[reading.DiskTable]
	Memory   reading.Opt[reading.MemoryTable]
	Thermal  reading.Opt[reading.Thermal]
	Battery  reading.Opt[reading.Power]
}

// Layout names the devices the network blocks report on.
type Layout struct {
	WifiDevice     string
	EthernetDevice string
}

// Parse runs each parser on its source text.
func Parse(s Snapshot) Readings {
	return Readings{
		LEDs:     parse(s.LEDs, reading.ParseLEDs),
		Wifi:     parse(s.Wifi, reading.ParseInterface),
		Ethernet: parse(s.Ethernet, reading.ParseInterface),
		Disks:    parse(s.Disks, reading.ParseDiskTable),
		Memory:   parse(s.Memory, reading.ParseMemoryTable),
		Thermal:  parse(s.Sensors, reading.ParseThermal),
		Battery:  parse(s.Battery, reading.ParsePower),
	}
}

func parse[T any](r source.Result, fn func(string) reading.Opt[T]) reading.Opt[T] {
	if r.Err != nil {
		return reading.None[T]()
	}
	return fn(r.Text)
}

// Assemble builds the blocks in bar order: caps, num, wifi, ethernet,
// home, root, memory, cpu_temp, battery, date, hour.
func Assemble(p *status.Palette, layout Layout, r Readings, now time.Time) []status.Block {
	return []status.Block{
		status.Caps(p, r.LEDs),
		status.Num(p, r.LEDs),
		status.Interface(p, status.Wifi, layout.WifiDevice, r.Wifi),
		status.Interface(p, status.Ethernet, layout.EthernetDevice, r.Ethernet),
		status.Disk(p, reading.DiskHome, r.Disks),
		status.Disk(p, reading.DiskRoot, r.Disks),
		status.Memory(p, r.Memory),
		status.Thermal(p, r.Thermal),
		status.Battery(p, r.Battery),
		status.Date(p, now),
		status.Hour(p, now),
	}
}

// Count returns how many blocks carry each severity.
func Count(blocks []status.Block) map[status.Severity]int {
	n := make(map[status.Severity]int, 3)
	for _, b := range blocks {
		n[b.Severity]++
	}
	return n
}
