package status

import (
	"fmt"

	"codeberg.org/mutker/statusfeed/internal/reading"
)

const (
	diskWarnGB        = 5.0
	diskDangerGB      = 3.0
	diskWarnPercent   = 30.0
	diskDangerPercent = 10.0
)

// DiskName is the block name for a mount key, e.g. "home_hdd".
func DiskName(key string) string {
	return key + "_hdd"
}

// DiskSeverity grades available space. Either limit is enough to escalate,
// and the danger limits are checked last so they win.
func DiskSeverity(availableGB, freePercent float64) Severity {
	sev := Normal
	if availableGB < diskWarnGB || freePercent < diskWarnPercent {
		sev = Warn
	}
	if availableGB < diskDangerGB || freePercent < diskDangerPercent {
		sev = Danger
	}
	return sev
}

// Disk renders the mount stored under key in the shared disk table. A
// missing key or an empty disk yields the error block.
func Disk(p *Palette, key string, r reading.Opt[reading.DiskTable]) Block {
	name := DiskName(key)

	table, ok := r.Get()
	if !ok {
		return diskError(p, key)
	}
	disk, ok := table[key]
	if !ok {
		return diskError(p, key)
	}

	total := disk.TotalGB()
	if total == 0 {
		return diskError(p, key)
	}
	available := disk.AvailableGB()
	freePercent := round(available/total*100, 0)

	sev := DiskSeverity(available, freePercent)

	return newBlock(name,
		fmt.Sprintf(" /%s %sGb %s%% ", key, decimal(available), decimal(freePercent)),
		fmt.Sprintf("/%s %sGb ", key, decimal(available)),
		p.For(sev), sev)
}

func diskError(p *Palette, key string) Block {
	return errorBlock(p, DiskName(key),
		fmt.Sprintf(" /%s ERR ", key),
		fmt.Sprintf("/%s ERR ", key))
}
