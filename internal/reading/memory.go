package reading

import (
	"regexp"
	"strconv"
)

// Memory is one pool of the `free` table, in kilobytes.
type Memory struct {
	TotalKB     int64
	UsedKB      int64
	FreeKB      int64
	FreePercent float64 // one decimal
}

// MemoryTable holds the main pool and, when present, swap.
type MemoryTable struct {
	Main Memory
	Swap Opt[Memory]
}

const (
	PoolMain = "Mem"
	PoolSwap = "Swap"
)

var poolRe = map[string]*regexp.Regexp{
	PoolMain: memoryRowRe(PoolMain),
	PoolSwap: memoryRowRe(PoolSwap),
}

func memoryRowRe(pool string) *regexp.Regexp {
	return regexp.MustCompile(`^\s*` + regexp.QuoteMeta(pool) + `:\s+(\d+)\s+(\d+)\s+(\d+)`)
}

// ParseMemory extracts the row labelled pool. A zero total makes the
// pool unavailable.
func ParseMemory(raw, pool string) Opt[Memory] {
	re, ok := poolRe[pool]
	if !ok {
		re = memoryRowRe(pool)
	}

	for _, line := range lines(raw) {
		m := re.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		total, err1 := strconv.ParseInt(m[1], 10, 64)
		used, err2 := strconv.ParseInt(m[2], 10, 64)
		free, err3 := strconv.ParseInt(m[3], 10, 64)
		if err1 != nil || err2 != nil || err3 != nil || total == 0 {
			return None[Memory]()
		}

		return Some(Memory{
			TotalKB:     total,
			UsedKB:      used,
			FreeKB:      free,
			FreePercent: round(float64(free)/float64(total)*100, 1),
		})
	}

	return None[Memory]()
}

// ParseMemoryTable parses both pools. The table is unavailable when the
// main pool is.
func ParseMemoryTable(raw string) Opt[MemoryTable] {
	main, ok := ParseMemory(raw, PoolMain).Get()
	if !ok {
		return None[MemoryTable]()
	}

	return Some(MemoryTable{
		Main: main,
		Swap: ParseMemory(raw, PoolSwap),
	})
}
