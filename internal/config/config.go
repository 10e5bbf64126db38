package config

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"codeberg.org/mutker/statusfeed/internal/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	appName   = "statusfeed"
	envPrefix = "STATUSFEED"
	envConfig = "STATUSFEED_CONFIG"

	DefaultInterval       = 1
	DefaultLogLevel       = string(LogLevelWarning)
	DefaultBackend        = BackendCommand
	DefaultWifiDevice     = "wlp3s0"
	DefaultEthernetDevice = "enp0s25"
	DefaultBatteryDevice  = "/org/freedesktop/UPower/devices/battery_BAT0"
	DefaultCommandTimeout = 2
	DefaultBatchSize      = 30
	DefaultBatchTimeout   = 10
)

// Source backends
const (
	BackendCommand = "command"
	BackendNative  = "native"
)

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

type Config struct {
	Interval       int    `mapstructure:"interval"`
	LogLevel       string `mapstructure:"log_level"`
	Backend        string `mapstructure:"backend"`
	WifiDevice     string `mapstructure:"wifi_device"`
	EthernetDevice string `mapstructure:"ethernet_device"`
	BatteryDevice  string `mapstructure:"battery_device"`
	CommandTimeout int    `mapstructure:"command_timeout"`
	Metrics        bool   `mapstructure:"metrics"`
	MetricsDB      string `mapstructure:"metrics_db"`
	BatchSize      int    `mapstructure:"batch_size"`
	BatchTimeout   int    `mapstructure:"batch_timeout"`
	PIDFile        string `mapstructure:"pid_file"`
	Preview        bool   `mapstructure:"preview"`
	Colors         Colors `mapstructure:"colors"`
}

// Colors holds the palette overrides, one foreground/background pair
// per severity plus the indicator pair.
type Colors struct {
	Normal ColorPair `mapstructure:"normal"`
	Warn   ColorPair `mapstructure:"warn"`
	Danger ColorPair `mapstructure:"danger"`
	Set    ColorPair `mapstructure:"set"`
}

type ColorPair struct {
	Foreground string `mapstructure:"foreground"`
	Background string `mapstructure:"background"`
}

// Load reads defaults, the config file, STATUSFEED_* environment
// variables and command line flags, in increasing order of precedence.
func Load(opts ...Option) (*Config, error) {
	errFactory := errors.New()

	o := &options{args: os.Args[1:], envPrefix: envPrefix}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, errFactory.Wrap(errors.ErrInvalidArgument, err)
		}
	}

	v := viper.New()
	setDefaults(v)

	fs := pflag.NewFlagSet(appName, pflag.ContinueOnError)
	configFlag := fs.String("config", "", "Path to the configuration file")
	fs.Int("interval", DefaultInterval, "Seconds between status updates")
	fs.String("log-level", DefaultLogLevel, "Log level (debug, info, warning, error)")
	fs.String("backend", DefaultBackend, "Source backend for memory and disk (command, native)")
	fs.String("wifi-device", DefaultWifiDevice, "Wireless interface device name")
	fs.String("ethernet-device", DefaultEthernetDevice, "Wired interface device name")
	fs.String("battery-device", DefaultBatteryDevice, "UPower battery device path")
	fs.Bool("metrics", false, "Record cycle history to the metrics database")
	fs.String("metrics-db", defaultMetricsDB(), "Path to the metrics database")
	fs.String("pid-file", "", "Refuse to start while the process in this PID file runs")
	fs.Bool("preview", false, "Render colored blocks to the terminal instead of the bar protocol")

	if err := fs.Parse(o.args); err != nil {
		return nil, errFactory.Wrap(errors.ErrBindFlags, err)
	}

	for _, name := range []string{
		"interval", "log-level", "backend", "wifi-device", "ethernet-device",
		"battery-device", "metrics", "metrics-db", "pid-file", "preview",
	} {
		if err := v.BindPFlag(strings.ReplaceAll(name, "-", "_"), fs.Lookup(name)); err != nil {
			return nil, errFactory.Wrap(errors.ErrBindFlags, err)
		}
	}

	v.SetEnvPrefix(o.envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	configPath := *configFlag
	if configPath == "" {
		configPath = o.configPath
	}
	if configPath == "" {
		configPath = os.Getenv(envConfig)
	}

	if err := readConfigFile(v, configPath); err != nil {
		return nil, err
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, errFactory.Wrap(errors.ErrInvalidConfig, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("interval", DefaultInterval)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("backend", DefaultBackend)
	v.SetDefault("wifi_device", DefaultWifiDevice)
	v.SetDefault("ethernet_device", DefaultEthernetDevice)
	v.SetDefault("battery_device", DefaultBatteryDevice)
	v.SetDefault("command_timeout", DefaultCommandTimeout)
	v.SetDefault("metrics", false)
	v.SetDefault("metrics_db", defaultMetricsDB())
	v.SetDefault("batch_size", DefaultBatchSize)
	v.SetDefault("batch_timeout", DefaultBatchTimeout)
	v.SetDefault("pid_file", "")
	v.SetDefault("preview", false)

	v.SetDefault("colors.normal.foreground", "#FFFFFF")
	v.SetDefault("colors.normal.background", "#121212")
	v.SetDefault("colors.warn.foreground", "#000000")
	v.SetDefault("colors.warn.background", "#FF6F00")
	v.SetDefault("colors.danger.foreground", "#FAFAFA")
	v.SetDefault("colors.danger.background", "#B00020")
	v.SetDefault("colors.set.foreground", "#000000")
	v.SetDefault("colors.set.background", "#FFDE03")
}

func readConfigFile(v *viper.Viper, path string) error {
	errFactory := errors.New()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return errFactory.Wrap(errors.ErrReadConfig, err)
		}

		return nil
	}

	v.SetConfigName(appName)
	v.SetConfigType("toml")
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		v.AddConfigPath(filepath.Join(xdg, appName))
	}
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", appName))
	}
	v.AddConfigPath("/etc")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return errFactory.Wrap(errors.ErrReadConfig, err)
		}
	}

	return nil
}

func defaultMetricsDB() string {
	if state := os.Getenv("XDG_STATE_HOME"); state != "" {
		return filepath.Join(state, appName, "metrics.db")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "state", appName, "metrics.db")
	}

	return filepath.Join(os.TempDir(), appName, "metrics.db")
}

// Validate checks the loaded values.
func (c *Config) Validate() error {
	errFactory := errors.New()

	if c.Interval <= 0 {
		return errFactory.WithData(errors.ErrInvalidInterval, c.Interval)
	}

	if c.CommandTimeout <= 0 {
		return errFactory.WithData(errors.ErrInvalidTimeout, c.CommandTimeout)
	}

	if !LogLevel(c.LogLevel).IsValid() {
		return errFactory.WithData(errors.ErrInvalidLogLevel, c.LogLevel)
	}

	if c.Backend != BackendCommand && c.Backend != BackendNative {
		return errFactory.WithData(errors.ErrInvalidBackend, c.Backend)
	}

	for name, color := range map[string]string{
		"colors.normal.foreground": c.Colors.Normal.Foreground,
		"colors.normal.background": c.Colors.Normal.Background,
		"colors.warn.foreground":   c.Colors.Warn.Foreground,
		"colors.warn.background":   c.Colors.Warn.Background,
		"colors.danger.foreground": c.Colors.Danger.Foreground,
		"colors.danger.background": c.Colors.Danger.Background,
		"colors.set.foreground":    c.Colors.Set.Foreground,
		"colors.set.background":    c.Colors.Set.Background,
	} {
		if !hexColor.MatchString(color) {
			return errFactory.WithData(errors.ErrInvalidColor, name+"="+color)
		}
	}

	if c.Metrics && c.MetricsDB == "" {
		return errFactory.WithData(errors.ErrInvalidConfig, "metrics_db is empty")
	}

	return nil
}
