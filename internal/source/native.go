package source

import (
	"context"
	"fmt"
	"strings"

	"codeberg.org/mutker/statusfeed/internal/errors"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
)

const kilobyte = 1024

// NativeMemory reads memory usage from the kernel and renders it as the
// `free` table.
type NativeMemory struct{}

func (NativeMemory) Fetch(ctx context.Context) (string, error) {
	errFactory := errors.New()

	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return "", errFactory.Wrap(errors.ErrSourceFetch, err).WithData("memory")
	}

	// Swap is optional in the table.
	swap, err := mem.SwapMemoryWithContext(ctx)
	if err != nil {
		swap = nil
	}

	return renderFree(vm, swap), nil
}

func renderFree(vm *mem.VirtualMemoryStat, swap *mem.SwapMemoryStat) string {
	var b strings.Builder
	b.WriteString("               total        used        free      shared  buff/cache   available\n")
	fmt.Fprintf(&b, "Mem:    %12d%12d%12d%12d%12d%12d\n",
		vm.Total/kilobyte, vm.Used/kilobyte, vm.Free/kilobyte,
		vm.Shared/kilobyte, (vm.Buffers+vm.Cached)/kilobyte, vm.Available/kilobyte)
	if swap != nil {
		fmt.Fprintf(&b, "Swap:   %12d%12d%12d\n",
			swap.Total/kilobyte, swap.Used/kilobyte, swap.Free/kilobyte)
	}
	return b.String()
}

// NativeDisks reads mounted block devices and renders them as `df` rows.
type NativeDisks struct{}

func (NativeDisks) Fetch(ctx context.Context) (string, error) {
	errFactory := errors.New()

	partitions, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return "", errFactory.Wrap(errors.ErrSourceFetch, err).WithData("disks")
	}

	usage := make([]diskRow, 0, len(partitions))
	for _, p := range partitions {
		if !strings.HasPrefix(p.Device, "/dev/") {
			continue
		}
		u, err := disk.UsageWithContext(ctx, p.Mountpoint)
		if err != nil || u.Total == 0 {
			continue
		}
		usage = append(usage, diskRow{device: p.Device, mount: p.Mountpoint, usage: u})
	}

	return renderDF(usage), nil
}

type diskRow struct {
	device string
	mount  string
	usage  *disk.UsageStat
}

func renderDF(rows []diskRow) string {
	var b strings.Builder
	b.WriteString("Filesystem     1K-blocks      Used Available Use% Mounted on\n")
	for _, r := range rows {
		u := r.usage
		fmt.Fprintf(&b, "%-14s %10d %9d %9d %3d%% %s\n",
			r.device, u.Total/kilobyte, u.Used/kilobyte, u.Free/kilobyte,
			int(u.UsedPercent+0.5), r.mount)
	}
	return b.String()
}
