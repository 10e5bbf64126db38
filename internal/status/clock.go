package status

import (
	"fmt"
	"time"
)

// Date renders " Oct 17, 2026 " and " 17/10/26 ".
func Date(p *Palette, now time.Time) Block {
	return newBlock(NameDate,
		fmt.Sprintf(" %s %d, %d ", now.Format("Jan"), now.Day(), now.Year()),
		fmt.Sprintf(" %d/%d/%s ", now.Day(), int(now.Month()), now.Format("06")),
		p.Normal, Normal)
}

// Hour renders " 03:04:05 PM " and " 15:04 ".
func Hour(p *Palette, now time.Time) Block {
	return newBlock(NameHour,
		now.Format(" 03:04:05 PM "),
		now.Format(" 15:04 "),
		p.Normal, Normal)
}
