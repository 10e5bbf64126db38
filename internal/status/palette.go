package status

type Severity int

const (
	Normal Severity = iota
	Warn
	Danger
)

func (s Severity) String() string {
	switch s {
	case Warn:
		return "warn"
	case Danger:
		return "danger"
	default:
		return "normal"
	}
}

// Colors is a foreground/background pair of "#RRGGBB" strings.
type Colors struct {
	Foreground string
	Background string
}

// Palette binds each severity to its colors. Set marks an active
// indicator and is not a severity.
type Palette struct {
	Normal Colors
	Warn   Colors
	Danger Colors
	Set    Colors
}

func DefaultPalette() *Palette {
	return &Palette{
		Normal: Colors{Foreground: "#FFFFFF", Background: "#121212"},
		Warn:   Colors{Foreground: "#000000", Background: "#FF6F00"},
		Danger: Colors{Foreground: "#FAFAFA", Background: "#B00020"},
		Set:    Colors{Foreground: "#000000", Background: "#FFDE03"},
	}
}

// For returns the colors of a severity.
func (p *Palette) For(s Severity) Colors {
	switch s {
	case Warn:
		return p.Warn
	case Danger:
		return p.Danger
	default:
		return p.Normal
	}
}
