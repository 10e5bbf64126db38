package metrics

import (
	"context"
	"time"
)

// Collector records one sample per status cycle.
type Collector interface {
	Record(ctx context.Context, sample *Sample) error
	Session() string
	Close() error
}

// Repository stores samples.
type Repository interface {
	Record(sample *Sample) error
	Close() error
}

// Sample is one status cycle. Nil fields were unavailable in that cycle
// and are stored as NULL.
type Sample struct {
	Timestamp         time.Time
	Session           string
	CPUTemp           *int
	MemoryFreePercent *float64
	SwapFreePercent   *float64
	HomeAvailableGB   *float64
	RootAvailableGB   *float64
	BatteryPercent    *float64
	BatteryHours      *float64
	WifiUp            *bool
	EthernetUp        *bool
	WifiRXBytes       *uint64
	WifiTXBytes       *uint64
	WarnBlocks        int
	DangerBlocks      int
}
