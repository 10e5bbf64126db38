package reading

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sensorsOutput = `coretemp-isa-0000
Adapter: ISA adapter
Physical id 0:  +52.0°C  (high = +87.0°C, crit = +105.0°C)
Core 0:         +50.0°C  (high = +87.0°C, crit = +105.0°C)
Core 1:         +52.0°C  (high = +87.0°C, crit = +105.0°C)

thinkpad-isa-0000
Adapter: ISA adapter
fan1:        2431 RPM
`

const ifconfigUp = `wlp3s0: flags=4163<UP,BROADCAST,RUNNING,MULTICAST>  mtu 1500
        inet 192.168.1.5  netmask 255.255.255.0  broadcast 192.168.1.255
        inet6 fe80::1c2b:3aff:fe4d:5e6f  prefixlen 64  scopeid 0x20<link>
        ether 00:11:22:33:44:55  txqueuelen 1000  (Ethernet)
        RX packets 123456  bytes 98765432 (94.1 MiB)
        RX errors 0  dropped 0  overruns 0  frame 0
        TX packets 65432  bytes 12345678 (11.7 MiB)
        TX errors 0  dropped 0 overruns 0  carrier 0  collisions 0
`

const ifconfigDown = `enp0s25: flags=4099<UP,BROADCAST,MULTICAST>  mtu 1500
        inet 10.0.0.7  netmask 255.255.255.0  broadcast 10.0.0.255
        ether 00:11:22:33:44:66  txqueuelen 1000  (Ethernet)
        RX packets 0  bytes 0 (0.0 B)
        TX packets 0  bytes 0 (0.0 B)
`

const freeOutput = `              total        used        free      shared  buff/cache   available
Mem:       16303832     5310048     6873816      645020     4119968    10029260
Swap:       2097148      524288     1572860
`

const dfOutput = `Filesystem     1K-blocks      Used Available Use% Mounted on
udev             8126452         0   8126452   0% /dev
tmpfs            1630384      2028   1628356   1% /run
/dev/sda2       50254368  30119428  17555556  64% /
tmpfs            8151916    262144   7889772   4% /dev/shm
/dev/sda1         523248      5356    517892   2% /boot/efi
/dev/sda3      410050696 301234588  87946532  78% /home
`

const upowerDischarging = `  native-path:          BAT0
  vendor:               SANYO
  power supply:         yes
  updated:              Sat 17 Oct 2026 10:12:01 AM (3 seconds ago)
  battery
    present:             yes
    state:               discharging
    warning-level:       none
    energy:              40.5 Wh
    energy-empty:        0 Wh
    energy-full:         45 Wh
    energy-full-design:  56.2 Wh
    energy-rate:         13.5 W
    voltage:             12.1 V
    percentage:          90%
    capacity:            80.0721%
`

const xsetOutput = `Keyboard Control:
  auto repeat:  on    key click percent:  0    LED mask:  00000010
  XKB indicators:
    00: Caps Lock:   off    01: Num Lock:    on     02: Scroll Lock: off
`

func TestParseThermal(t *testing.T) {
	th, ok := ParseThermal(sensorsOutput).Get()
	require.True(t, ok)
	assert.Equal(t, Thermal{Current: 52, High: 87, Crit: 105, Fan: "2431 RPM"}, th)
}

func TestParseThermalTruncatesAndDefaultsFan(t *testing.T) {
	raw := "Physical id 0:  +49.9°C  (high = +80.7°C, crit = +99.9°C)\n"

	th, ok := ParseThermal(raw).Get()
	require.True(t, ok)
	assert.Equal(t, 49, th.Current)
	assert.Equal(t, 80, th.High)
	assert.Equal(t, 99, th.Crit)
	assert.Empty(t, th.Fan)
}

func TestParseThermalUnavailable(t *testing.T) {
	for name, raw := range map[string]string{
		"empty":            "",
		"no marker":        "Package id 0:  +45.0°C  (high = +80.0°C, crit = +100.0°C)\nfan1: 2000 RPM\n",
		"marker no values": "Physical id 0:  N/A\n",
	} {
		t.Run(name, func(t *testing.T) {
			assert.False(t, ParseThermal(raw).Valid())
		})
	}
}

func TestParseMemoryTable(t *testing.T) {
	table, ok := ParseMemoryTable(freeOutput).Get()
	require.True(t, ok)

	assert.Equal(t, int64(16303832), table.Main.TotalKB)
	assert.Equal(t, int64(5310048), table.Main.UsedKB)
	assert.Equal(t, int64(6873816), table.Main.FreeKB)
	assert.Equal(t, 42.2, table.Main.FreePercent)

	swap, ok := table.Swap.Get()
	require.True(t, ok)
	assert.Equal(t, int64(524288), swap.UsedKB)
	assert.Equal(t, 75.0, swap.FreePercent)
}

func TestParseMemoryZeroTotal(t *testing.T) {
	raw := "Mem:  0 0 0\nSwap:  0 0 0\n"

	assert.False(t, ParseMemory(raw, PoolMain).Valid())
	assert.False(t, ParseMemory(raw, PoolSwap).Valid())
	assert.False(t, ParseMemoryTable(raw).Valid())
}

func TestParseMemoryWithoutSwap(t *testing.T) {
	table, ok := ParseMemoryTable("Mem:   1000   500   500\nSwap:     0     0     0\n").Get()
	require.True(t, ok)
	assert.Equal(t, 50.0, table.Main.FreePercent)
	assert.False(t, table.Swap.Valid())
}

func TestParseInterface(t *testing.T) {
	iface, ok := ParseInterface(ifconfigUp).Get()
	require.True(t, ok)
	assert.True(t, iface.Up)
	assert.Equal(t, "192.168.1.5", iface.IP.Or(""))
	assert.Equal(t, Traffic{Packets: 123456, Bytes: 98765432}, iface.RX.Or(Traffic{}))
	assert.Equal(t, Traffic{Packets: 65432, Bytes: 12345678}, iface.TX.Or(Traffic{}))
}

func TestParseInterfaceDownSuppressesStaleIP(t *testing.T) {
	iface, ok := ParseInterface(ifconfigDown).Get()
	require.True(t, ok)
	assert.False(t, iface.Up)
	assert.False(t, iface.IP.Valid())
	assert.False(t, iface.RX.Valid())
}

func TestParseInterfaceUpWithoutAddress(t *testing.T) {
	raw := "wlp3s0: flags=4163<UP,BROADCAST,RUNNING,MULTICAST>  mtu 1500\n" +
		"        inet6 fe80::1  prefixlen 64  scopeid 0x20<link>\n"

	iface, ok := ParseInterface(raw).Get()
	require.True(t, ok)
	assert.True(t, iface.Up)
	assert.False(t, iface.IP.Valid())
}

func TestParseInterfaceBlank(t *testing.T) {
	assert.False(t, ParseInterface("  \n").Valid())
}

func TestParseDiskTable(t *testing.T) {
	table, ok := ParseDiskTable(dfOutput).Get()
	require.True(t, ok)
	require.Len(t, table, 2)

	root := table[DiskRoot]
	assert.Equal(t, int64(50254368), root.TotalBlocks)
	assert.Equal(t, int64(30119428), root.UsedBlocks)
	assert.Equal(t, int64(17555556), root.AvailableBlocks)
	assert.Equal(t, 64, root.UsePercent)
	assert.Equal(t, 47.93, root.TotalGB())
	assert.Equal(t, 16.74, root.AvailableGB())

	home := table[DiskHome]
	assert.Equal(t, 391.05, home.TotalGB())
	assert.Equal(t, 287.28, home.UsedGB())
	assert.Equal(t, 83.87, home.AvailableGB())
}

func TestParseDiskTableWithoutKnownMounts(t *testing.T) {
	raw := "/dev/sdb1  1000  10  990  1% /mnt/data\n"
	assert.False(t, ParseDiskTable(raw).Valid())
}

func TestParsePower(t *testing.T) {
	p, ok := ParsePower(upowerDischarging).Get()
	require.True(t, ok)

	assert.Equal(t, PowerDischarging, p.State)
	assert.Equal(t, 80.0721, p.Capacity.Or(0))
	assert.Equal(t, 40.5, p.Energy.Or(0))
	assert.Equal(t, 45.0, p.EnergyFull.Or(0))
	assert.Equal(t, 13.5, p.EnergyRate.Or(0))
}

func TestParsePowerStates(t *testing.T) {
	tests := map[string]PowerState{
		"discharging":    PowerDischarging,
		"charging":       PowerCharging,
		"fully-charged":  PowerOther,
		"pending-charge": PowerOther,
		"unknown":        PowerOther,
	}

	for state, want := range tests {
		t.Run(state, func(t *testing.T) {
			p, ok := ParsePower("    state:   " + state + "\n").Get()
			require.True(t, ok)
			assert.Equal(t, want, p.State)
		})
	}
}

func TestParsePowerMissingRate(t *testing.T) {
	raw := "    state: charging\n    energy: 20 Wh\n    energy-full: 40 Wh\n    capacity: 100%\n"

	p, ok := ParsePower(raw).Get()
	require.True(t, ok)
	assert.False(t, p.EnergyRate.Valid())
	assert.Equal(t, 0.0, p.EnergyRate.Or(0))
}

func TestParsePowerUnavailable(t *testing.T) {
	assert.False(t, ParsePower("").Valid())
	assert.False(t, ParsePower("Failed to get device\n").Valid())
}

func TestParseLEDs(t *testing.T) {
	tests := []struct {
		mask string
		want LEDs
	}{
		{"00000000", LEDs{}},
		{"00000001", LEDs{Caps: true}},
		{"00000010", LEDs{Num: true}},
		{"00000011", LEDs{Caps: true, Num: true}},
		{"11111100", LEDs{}},
	}

	for _, tt := range tests {
		t.Run(tt.mask, func(t *testing.T) {
			raw := "  auto repeat:  on    key click percent:  0    LED mask:  " + tt.mask + "\n"
			leds, ok := ParseLEDs(raw).Get()
			require.True(t, ok)
			assert.Equal(t, tt.want, leds)
		})
	}

	leds, ok := ParseLEDs(xsetOutput).Get()
	require.True(t, ok)
	assert.Equal(t, LEDs{Num: true}, leds)
}

func TestParseLEDsUnavailable(t *testing.T) {
	for name, raw := range map[string]string{
		"empty":      "",
		"no line":    "Keyboard Control:\n  auto repeat:  on\n",
		"not binary": "  LED mask:  00000002\n",
		"short":      "  LED mask:  0011\n",
	} {
		t.Run(name, func(t *testing.T) {
			assert.False(t, ParseLEDs(raw).Valid())
		})
	}
}

func TestOpt(t *testing.T) {
	v, ok := Some(3).Get()
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	none := None[int]()
	assert.False(t, none.Valid())
	assert.Equal(t, 7, none.Or(7))
}
