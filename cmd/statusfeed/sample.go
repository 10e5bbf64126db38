package main

import (
	"time"

	"codeberg.org/mutker/statusfeed/internal/bar"
	"codeberg.org/mutker/statusfeed/internal/metrics"
	"codeberg.org/mutker/statusfeed/internal/reading"
	"codeberg.org/mutker/statusfeed/internal/status"
)

// newSample condenses one cycle into a metrics sample. Unavailable
// readings stay nil.
func newSample(now time.Time, r bar.Readings, blocks []status.Block) *metrics.Sample {
	counts := bar.Count(blocks)
	s := &metrics.Sample{
		Timestamp:    now,
		WarnBlocks:   counts[status.Warn],
		DangerBlocks: counts[status.Danger],
	}

	if t, ok := r.Thermal.Get(); ok {
		s.CPUTemp = &t.Current
	}

	if m, ok := r.Memory.Get(); ok {
		s.MemoryFreePercent = &m.Main.FreePercent
		if swap, ok := m.Swap.Get(); ok {
			s.SwapFreePercent = &swap.FreePercent
		}
	}

	if disks, ok := r.Disks.Get(); ok {
		s.HomeAvailableGB = availableGB(disks, reading.DiskHome)
		s.RootAvailableGB = availableGB(disks, reading.DiskRoot)
	}

	if p, ok := r.Battery.Get(); ok {
		if pct, ok := status.BatteryPercent(p); ok {
			hours := status.BatteryHours(p)
			s.BatteryPercent = &pct
			s.BatteryHours = &hours
		}
	}

	if w, ok := r.Wifi.Get(); ok {
		s.WifiUp = &w.Up
		if rx, ok := w.RX.Get(); ok {
			s.WifiRXBytes = &rx.Bytes
		}
		if tx, ok := w.TX.Get(); ok {
			s.WifiTXBytes = &tx.Bytes
		}
	}

	if e, ok := r.Ethernet.Get(); ok {
		s.EthernetUp = &e.Up
	}

	return s
}

func availableGB(disks reading.DiskTable, key string) *float64 {
	d, ok := disks[key]
	if !ok {
		return nil
	}
	gb := d.AvailableGB()
	return &gb
}
