package status

import (
	"fmt"

	"codeberg.org/mutker/statusfeed/internal/reading"
)

const kbPerGB = 1024.0 * 1024.0

// Memory renders free main memory, followed by free swap while swap is
// in use. Memory never escalates severity.
func Memory(p *Palette, r reading.Opt[reading.MemoryTable]) Block {
	table, ok := r.Get()
	if !ok {
		return errorBlock(p, NameMemory, "MM ERR", "MM ERR")
	}

	text := "MM " + pool(table.Main)
	if swap, ok := table.Swap.Get(); ok && swap.UsedKB > 0 {
		text += " SW " + pool(swap)
	}

	return newBlock(NameMemory, text, text, p.Normal, Normal)
}

func pool(m reading.Memory) string {
	return fmt.Sprintf("%sGb %s%%", decimal(round(float64(m.FreeKB)/kbPerGB, 2)), decimal(m.FreePercent))
}
