package reading

import (
	"regexp"
	"strconv"
	"strings"
)

// Interface is the state of one network interface as shown by ifconfig.
// IP and traffic counters are only read while the interface is running.
type Interface struct {
	Up bool
	IP Opt[string]
	RX Opt[Traffic]
	TX Opt[Traffic]
}

// Traffic holds cumulative counters for one direction.
type Traffic struct {
	Packets uint64
	Bytes   uint64
}

var (
	flagsRe   = regexp.MustCompile(`^\S*:\s+flags=\d+<([^>]*)>`)
	inetRe    = regexp.MustCompile(`^\s+inet\s+(\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3})\b`)
	trafficRe = regexp.MustCompile(`^\s+([RT]X)\s+packets\s+(\d+)\s+bytes\s+(\d+)`)
)

// ParseInterface parses `ifconfig <device>` output. An interface without
// the RUNNING flag is down, and any address it still lists is ignored.
// Blank output is unavailable.
func ParseInterface(raw string) Opt[Interface] {
	if strings.TrimSpace(raw) == "" {
		return None[Interface]()
	}

	all := lines(raw)

	var iface Interface
	for _, line := range all {
		if m := flagsRe.FindStringSubmatch(line); m != nil {
			iface.Up = hasFlag(m[1], "RUNNING")
			break
		}
	}

	if !iface.Up {
		return Some(iface)
	}

	for _, line := range all {
		if m := inetRe.FindStringSubmatch(line); m != nil && !iface.IP.Valid() {
			iface.IP = Some(m[1])
			continue
		}

		m := trafficRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		packets, err1 := strconv.ParseUint(m[2], 10, 64)
		bytes, err2 := strconv.ParseUint(m[3], 10, 64)
		if err1 != nil || err2 != nil {
			continue
		}
		t := Some(Traffic{Packets: packets, Bytes: bytes})
		if m[1] == "RX" {
			iface.RX = t
		} else {
			iface.TX = t
		}
	}

	return Some(iface)
}

func hasFlag(flags, flag string) bool {
	for _, f := range strings.Split(flags, ",") {
		if f == flag {
			return true
		}
	}
	return false
}
