package bar

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"codeberg.org/mutker/statusfeed/internal/errors"
	"codeberg.org/mutker/statusfeed/internal/reading"
	"codeberg.org/mutker/statusfeed/internal/source"
	"codeberg.org/mutker/statusfeed/internal/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var layout = Layout{WifiDevice: "wlp3s0", EthernetDevice: "enp0s25"}

var now = time.Date(2026, time.October, 17, 9, 5, 0, 0, time.UTC)

const sensorsText = `coretemp-isa-0000
Adapter: ISA adapter
Physical id 0:  +52.0°C  (high = +87.0°C, crit = +105.0°C)
fan1:        2431 RPM
`

const wifiText = `wlp3s0: flags=4163<UP,BROADCAST,RUNNING,MULTICAST>  mtu 1500
        inet 192.168.1.5  netmask 255.255.255.0  broadcast 192.168.1.255
        RX packets 10 bytes 2048 (2.0 KiB)
        TX packets 5 bytes 1024 (1.0 KiB)
`

const ethernetText = `enp0s25: flags=4099<UP,BROADCAST,MULTICAST>  mtu 1500
`

const dfText = `Filesystem     1K-blocks      Used Available Use% Mounted on
/dev/sda2       50254368  30119428  17555556  64% /
/dev/sda3      410050696 301234588  87946532  78% /home
`

const freeText = `              total        used        free      shared  buff/cache   available
Mem:       16303832     5310048     6873816      645020     4119968    10029260
Swap:       2097148           0     2097148
`

const upowerText = `  native-path:          BAT0
    state:               discharging
    energy:              30 Wh
    energy-full:         40 Wh
    energy-rate:         20 W
    capacity:            100%
`

const xsetText = `Keyboard Control:
  auto repeat:  on    key click percent:  0    LED mask:  00000001
`

func snapshot() Snapshot {
	ok := func(s string) source.Result { return source.Result{Text: s} }
	return Snapshot{
		Time: now,
		Results: source.Results{
			LEDs:     ok(xsetText),
			Wifi:     ok(wifiText),
			Ethernet: ok(ethernetText),
			Disks:    ok(dfText),
			Memory:   ok(freeText),
			Sensors:  ok(sensorsText),
			Battery:  ok(upowerText),
		},
	}
}

func names(blocks []status.Block) []string {
	out := make([]string, len(blocks))
	for i, b := range blocks {
		out[i] = b.Name
	}
	return out
}

func TestAssembleOrder(t *testing.T) {
	blocks := Assemble(status.DefaultPalette(), layout, Parse(snapshot()), now)

	assert.Equal(t, []string{
		"caps", "num", "wlp3s0_iface", "enp0s25_iface", "home_hdd", "root_hdd",
		"memory", "cpu_temp", "battery", "date", "hour",
	}, names(blocks))

	text := make([]string, len(blocks))
	for i, b := range blocks {
		text[i] = b.FullText
	}
	assert.Equal(t, []string{
		" CAPS ", " NUM ", "W: (192.168.1.5)", "E: OFF",
		" /home 83.87Gb 21.0% ", " /root 16.74Gb 35.0% ",
		"MM 6.56Gb 42.2%", " 52[C] 2431 RPM ", " BAT 75.00% 01:30:00 ",
		" Oct 17, 2026 ", " 09:05:00 AM ",
	}, text)

	p := status.DefaultPalette()
	assert.Equal(t, p.Set.Background, blocks[0].Background, "Expected caps lock on")
	assert.Equal(t, p.Normal.Background, blocks[1].Background, "Expected num lock off")
	assert.Equal(t, p.Warn.Background, blocks[4].Background, "Expected /home to warn")
}

func TestAssembleIsIdempotent(t *testing.T) {
	p := status.DefaultPalette()
	r := Parse(snapshot())

	assert.Equal(t, Assemble(p, layout, r, now), Assemble(p, layout, r, now))
}

func TestParseFailedSources(t *testing.T) {
	s := snapshot()
	s.Disks = source.Failed(fmt.Errorf("df missing"))
	s.LEDs = source.Failed(fmt.Errorf("no display"))

	r := Parse(s)
	assert.False(t, r.Disks.Valid())
	assert.False(t, r.LEDs.Valid())
	assert.True(t, r.Memory.Valid())

	blocks := Assemble(status.DefaultPalette(), layout, r, now)
	require.Len(t, blocks, 11)
	assert.Equal(t, " CAPS_E ", blocks[0].FullText)
	assert.Equal(t, " NUM_E ", blocks[1].FullText)
	assert.Equal(t, " /home ERR ", blocks[4].FullText)
	assert.Equal(t, " /root ERR ", blocks[5].FullText)
	assert.Equal(t, "MM 6.56Gb 42.2%", blocks[6].FullText)

	counts := Count(blocks)
	assert.Equal(t, 4, counts[status.Danger])
	assert.Equal(t, 0, counts[status.Warn])
}

func TestI3BarProtocol(t *testing.T) {
	var buf bytes.Buffer
	e := NewI3Bar(&buf)

	require.NoError(t, e.Start())
	assert.Equal(t, "{\"version\":1}\n[\n[]\n", buf.String())

	p := status.DefaultPalette()
	blocks := []status.Block{
		status.Caps(p, reading.Some(reading.LEDs{Caps: true})),
		status.Interface(p, status.Wifi, "wlp3s0", reading.Some(reading.Interface{Up: true, IP: reading.Some("10.0.0.2")})),
	}
	require.NoError(t, e.Emit(blocks))
	require.NoError(t, e.Emit(nil))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t,
		`,[{"name":"caps","full_text":" CAPS ","short_text":" CAPS ","color":"#000000","background":"#FFDE03","separator":true},`+
			`{"name":"wlp3s0_iface","full_text":"W: (10.0.0.2)","short_text":"W: (10.0.0.2)","color":"#FFFFFF","background":"#121212","separator":true}]`,
		lines[3])
	assert.Equal(t, ",[]", lines[4])
}

func TestI3BarDoesNotEscapeHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewI3Bar(&buf).Emit([]status.Block{{Name: "x", FullText: "<&>"}}))
	assert.Contains(t, buf.String(), `"full_text":"<&>"`)
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, fmt.Errorf("broken pipe")
}

func TestEmitWriteFailure(t *testing.T) {
	err := NewI3Bar(brokenWriter{}).Start()
	require.Error(t, err)
	assert.Equal(t, errors.ErrWriteOutput, errors.CodeOf(err))

	err = NewPreview(brokenWriter{}).Emit([]status.Block{{FullText: "x"}})
	assert.Equal(t, errors.ErrWriteOutput, errors.CodeOf(err))
}

func TestPreview(t *testing.T) {
	var buf bytes.Buffer
	e := NewPreview(&buf)
	require.NoError(t, e.Start())

	blocks := Assemble(status.DefaultPalette(), layout, Parse(snapshot()), now)
	require.NoError(t, e.Emit(blocks))

	out := buf.String()
	assert.True(t, strings.HasSuffix(out, "\n"))
	assert.Equal(t, 1, strings.Count(out, "\n"))
	assert.Contains(t, out, "W: (192.168.1.5)")
	assert.Contains(t, out, " BAT 75.00% 01:30:00 ")
}
