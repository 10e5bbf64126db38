package reading

import (
	"regexp"
	"strconv"
	"strings"
)

// Disk is one `df` row in 1K blocks.
type Disk struct {
	TotalBlocks     int64
	UsedBlocks      int64
	AvailableBlocks int64
	UsePercent      int
}

const (
	DiskRoot = "root"
	DiskHome = "home"

	blocksPerGB = 1024 * 1024
)

// DiskTable maps a mount key (DiskRoot, DiskHome) to its usage.
type DiskTable map[string]Disk

var dfRowRe = regexp.MustCompile(`^/dev/\S*\s+(\d+)\s+(\d+)\s+(\d+)\s+(\d+)%\s+(/\S*)\s*$`)

// TotalGB returns the size in gigabytes, rounded to 2 decimals.
func (d Disk) TotalGB() float64 {
	return blocksToGB(d.TotalBlocks)
}

// UsedGB returns the used space in gigabytes, rounded to 2 decimals.
func (d Disk) UsedGB() float64 {
	return blocksToGB(d.UsedBlocks)
}

// AvailableGB returns the available space in gigabytes, rounded to 2 decimals.
func (d Disk) AvailableGB() float64 {
	return blocksToGB(d.AvailableBlocks)
}

func blocksToGB(blocks int64) float64 {
	return round(float64(blocks)/blocksPerGB, 2)
}

// ParseDiskTable parses `df` output. Only block devices mounted at "/" or
// at a path containing "home" are kept. Later rows win.
func ParseDiskTable(raw string) Opt[DiskTable] {
	table := DiskTable{}

	for _, line := range lines(raw) {
		if !strings.Contains(line, "/dev/") {
			continue
		}
		m := dfRowRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		key := mountKey(m[5])
		if key == "" {
			continue
		}

		total, err1 := strconv.ParseInt(m[1], 10, 64)
		used, err2 := strconv.ParseInt(m[2], 10, 64)
		avail, err3 := strconv.ParseInt(m[3], 10, 64)
		pct, err4 := strconv.Atoi(m[4])
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
			continue
		}

		table[key] = Disk{
			TotalBlocks:     total,
			UsedBlocks:      used,
			AvailableBlocks: avail,
			UsePercent:      pct,
		}
	}

	if len(table) == 0 {
		return None[DiskTable]()
	}
	return Some(table)
}

func mountKey(mount string) string {
	switch {
	case mount == "/":
		return DiskRoot
	case strings.Contains(mount, "home"):
		return DiskHome
	default:
		return ""
	}
}
