package status

import (
	"fmt"
	"strings"

	"codeberg.org/mutker/statusfeed/internal/reading"
)

// InterfaceClass is the kind of network link a block reports on.
type InterfaceClass string

const (
	Wifi     InterfaceClass = "wifi"
	Ethernet InterfaceClass = "ethernet"
)

// Letter is the upper-cased first letter of the class, e.g. "W".
func (c InterfaceClass) Letter() string {
	if c == "" {
		return "?"
	}
	return strings.ToUpper(string(c)[:1])
}

// InterfaceName is the block name for a device, e.g. "wlp3s0_iface".
func InterfaceName(device string) string {
	return device + "_iface"
}

// Interface renders "W: (192.168.1.5)" for a running interface and
// "W: OFF" otherwise. Link state never escalates severity.
func Interface(p *Palette, class InterfaceClass, device string, r reading.Opt[reading.Interface]) Block {
	letter := class.Letter()
	name := InterfaceName(device)

	iface, ok := r.Get()
	if !ok {
		text := letter + ": ERR"
		return errorBlock(p, name, text, text)
	}

	var text string
	if iface.Up {
		text = fmt.Sprintf("%s: (%s)", letter, iface.IP.Or("no ip"))
	} else {
		text = letter + ": OFF"
	}

	return newBlock(name, text, text, p.Normal, Normal)
}
