// Package status classifies readings into colored status blocks.
package status

// Block is one segment of the status bar.
type Block struct {
	Name       string   `json:"name"`
	FullText   string   `json:"full_text"`
	ShortText  string   `json:"short_text"`
	Color      string   `json:"color"`
	Background string   `json:"background"`
	Separator  bool     `json:"separator"`
	Severity   Severity `json:"-"`
}

func newBlock(name, full, short string, c Colors, sev Severity) Block {
	return Block{
		Name:       name,
		FullText:   full,
		ShortText:  short,
		Color:      c.Foreground,
		Background: c.Background,
		Separator:  true,
		Severity:   sev,
	}
}

// errorBlock flags a metric whose reading is unavailable.
func errorBlock(p *Palette, name, full, short string) Block {
	return newBlock(name, full, short, p.For(Danger), Danger)
}

// Block names
const (
	NameCaps    = "caps"
	NameNum     = "num"
	NameMemory  = "memory"
	NameThermal = "cpu_temp"
	NameBattery = "battery"
	NameDate    = "date"
	NameHour    = "hour"
)
