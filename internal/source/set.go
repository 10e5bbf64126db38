package source

import (
	"context"
	"time"

	"codeberg.org/mutker/statusfeed/internal/config"
)

// Source names, used in logs and as map keys.
const (
	NameLEDs     = "leds"
	NameWifi     = "wifi"
	NameEthernet = "ethernet"
	NameDisks    = "disks"
	NameMemory   = "memory"
	NameSensors  = "sensors"
	NameBattery  = "battery"
)

// Set holds one fetcher per data source.
type Set struct {
	LEDs     Fetcher
	Wifi     Fetcher
	Ethernet Fetcher
	Disks    Fetcher
	Memory   Fetcher
	Sensors  Fetcher
	Battery  Fetcher
}

// Results is the raw text of one cycle, one Result per source.
type Results struct {
	LEDs     Result
	Wifi     Result
	Ethernet Result
	Disks    Result
	Memory   Result
	Sensors  Result
	Battery  Result
}

// New builds the fetchers for cfg. The native backend swaps `free` and `df`
// for kernel reads; the rest always run as commands.
func New(cfg *config.Config) *Set {
	timeout := time.Duration(cfg.CommandTimeout) * time.Second

	s := &Set{
		LEDs:     NewCommand(timeout, "xset", "q"),
		Wifi:     NewCommand(timeout, "ifconfig", cfg.WifiDevice),
		Ethernet: NewCommand(timeout, "ifconfig", cfg.EthernetDevice),
		Disks:    NewCommand(timeout, "df"),
		Memory:   NewCommand(timeout, "free"),
		Sensors:  NewCommand(timeout, "sensors"),
		Battery:  NewCommand(timeout, "upower", "-i", cfg.BatteryDevice),
	}

	if cfg.Backend == config.BackendNative {
		s.Disks = NativeDisks{}
		s.Memory = NativeMemory{}
	}

	return s
}

// FetchAll runs every fetcher in turn. The disk table is fetched once and
// shared by both disk blocks.
func (s *Set) FetchAll(ctx context.Context) Results {
	return Results{
		LEDs:     Fetch(ctx, NameLEDs, s.LEDs),
		Wifi:     Fetch(ctx, NameWifi, s.Wifi),
		Ethernet: Fetch(ctx, NameEthernet, s.Ethernet),
		Disks:    Fetch(ctx, NameDisks, s.Disks),
		Memory:   Fetch(ctx, NameMemory, s.Memory),
		Sensors:  Fetch(ctx, NameSensors, s.Sensors),
		Battery:  Fetch(ctx, NameBattery, s.Battery),
	}
}
