package status

import "codeberg.org/mutker/statusfeed/internal/reading"

// Caps renders the caps lock indicator.
func Caps(p *Palette, r reading.Opt[reading.LEDs]) Block {
	leds, ok := r.Get()
	if !ok {
		return errorBlock(p, NameCaps, " CAPS_E ", "CAPS_E")
	}
	return indicator(p, NameCaps, " CAPS ", leds.Caps)
}

// Num renders the num lock indicator.
func Num(p *Palette, r reading.Opt[reading.LEDs]) Block {
	leds, ok := r.Get()
	if !ok {
		return errorBlock(p, NameNum, " NUM_E ", "NUM_E")
	}
	return indicator(p, NameNum, " NUM ", leds.Num)
}

func indicator(p *Palette, name, text string, on bool) Block {
	if on {
		return newBlock(name, text, text, p.Set, Normal)
	}
	return newBlock(name, text, text, p.Normal, Normal)
}
