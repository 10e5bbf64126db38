package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"codeberg.org/mutker/statusfeed/internal/config"
	"codeberg.org/mutker/statusfeed/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate keeps the developer's own config files and environment out of a test.
func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_STATE_HOME", dir)
	t.Setenv("STATUSFEED_CONFIG", "")
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "statusfeed.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	isolate(t)

	configPath := writeConfig(t, `
interval = 5
log_level = "debug"
backend = "native"
wifi_device = "wlan0"
ethernet_device = "eth0"
command_timeout = 3
metrics = true
metrics_db = "/path/to/metrics.db"
pid_file = "/run/user/1000/statusfeed.pid"

[colors.warn]
foreground = "#111111"
background = "#222222"
`)
	t.Setenv("STATUSFEED_CONFIG", configPath)

	cfg, err := config.Load(config.WithArgs(nil))
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Interval, "Expected Interval 5")
	assert.Equal(t, "debug", cfg.LogLevel, "Expected LogLevel debug")
	assert.Equal(t, config.BackendNative, cfg.Backend)
	assert.Equal(t, "wlan0", cfg.WifiDevice)
	assert.Equal(t, "eth0", cfg.EthernetDevice)
	assert.Equal(t, config.DefaultBatteryDevice, cfg.BatteryDevice)
	assert.Equal(t, 3, cfg.CommandTimeout)
	assert.True(t, cfg.Metrics, "Expected Metrics true")
	assert.Equal(t, "/path/to/metrics.db", cfg.MetricsDB)
	assert.Equal(t, "/run/user/1000/statusfeed.pid", cfg.PIDFile)
	assert.Equal(t, "#111111", cfg.Colors.Warn.Foreground)
	assert.Equal(t, "#222222", cfg.Colors.Warn.Background)
	assert.Equal(t, "#B00020", cfg.Colors.Danger.Background, "Expected untouched colors to keep defaults")
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := config.Load(config.WithArgs(nil))
	require.NoError(t, err, "Failed to load config")

	assert.Equal(t, 1, cfg.Interval, "Expected default Interval 1")
	assert.Equal(t, config.DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, config.BackendCommand, cfg.Backend)
	assert.Equal(t, "wlp3s0", cfg.WifiDevice)
	assert.Equal(t, "enp0s25", cfg.EthernetDevice)
	assert.Equal(t, config.DefaultCommandTimeout, cfg.CommandTimeout)
	assert.False(t, cfg.Metrics)
	assert.False(t, cfg.Preview)
	assert.Empty(t, cfg.PIDFile)
	assert.Equal(t, "#FFFFFF", cfg.Colors.Normal.Foreground)
	assert.Equal(t, "#121212", cfg.Colors.Normal.Background)
	assert.Equal(t, "#FFDE03", cfg.Colors.Set.Background)
	assert.Contains(t, cfg.MetricsDB, filepath.Join("statusfeed", "metrics.db"))
}

func TestLoadConfigFileInvalidFormat(t *testing.T) {
	isolate(t)

	configPath := writeConfig(t, `
This is not a valid TOML file
`)
	t.Setenv("STATUSFEED_CONFIG", configPath)

	_, err := config.Load(config.WithArgs(nil))
	require.Error(t, err)
	assert.Equal(t, errors.ErrReadConfig, errors.CodeOf(err))
	assert.Contains(t, err.Error(), "Failed to read config file")
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    errors.ErrorCode
	}{
		{"log level", `log_level = "invalid"`, errors.ErrInvalidLogLevel},
		{"interval", `interval = 0`, errors.ErrInvalidInterval},
		{"backend", `backend = "dbus"`, errors.ErrInvalidBackend},
		{"timeout", `command_timeout = -1`, errors.ErrInvalidTimeout},
		{"color", "[colors.normal]\nforeground = \"white\"", errors.ErrInvalidColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			t.Setenv("STATUSFEED_CONFIG", writeConfig(t, tt.content))

			_, err := config.Load(config.WithArgs(nil))
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.CodeOf(err))
		})
	}
}

func TestLogLevelFlag(t *testing.T) {
	isolate(t)

	cfg, err := config.Load(config.WithArgs([]string{"--log-level", "debug", "--interval", "3", "--preview"}))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel, "Expected LogLevel to be set by flag")
	assert.Equal(t, 3, cfg.Interval)
	assert.True(t, cfg.Preview)
}

func TestFlagOverridesFileAndEnv(t *testing.T) {
	isolate(t)
	t.Setenv("STATUSFEED_CONFIG", writeConfig(t, `interval = 4`))
	t.Setenv("STATUSFEED_WIFI_DEVICE", "wlan9")

	cfg, err := config.Load(config.WithArgs([]string{"--interval=2"}))
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Interval)
	assert.Equal(t, "wlan9", cfg.WifiDevice)
}

func TestConfigFlag(t *testing.T) {
	isolate(t)
	path := writeConfig(t, `ethernet_device = "eno1"`)

	cfg, err := config.Load(config.WithArgs([]string{"--config", path}))
	require.NoError(t, err)
	assert.Equal(t, "eno1", cfg.EthernetDevice)
}

func TestUnknownFlag(t *testing.T) {
	isolate(t)

	_, err := config.Load(config.WithArgs([]string{"--temperature", "80"}))
	require.Error(t, err)
	assert.Equal(t, errors.ErrBindFlags, errors.CodeOf(err))
}
