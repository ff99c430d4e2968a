// Package config parses accdash.toml dashboard configuration.
package config

import (
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
)

// FileName is the configuration file looked up from the working directory.
const FileName = "accdash.toml"

// DefaultAccentColor is the default TUI accent color (indigo).
const DefaultAccentColor = "#7D56F4"

// Gauge names accepted in dashboard.widgets, in default draw order.
const (
	GaugeTachometer    = "tachometer"
	GaugeTyreTemps     = "tyre_temps"
	GaugeLapTimes      = "lap_times"
	GaugeThermometer   = "thermometer"
	GaugeBrakeTemps    = "brake_temps"
	GaugeTyrePressures = "tyre_pressures"
)

// hexColorRe matches a 6-digit hex color string like "#7D56F4".
var hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Config is the top-level accdash.toml configuration.
type Config struct {
	Network    NetworkConfig    `toml:"network"`
	Dashboard  DashboardConfig  `toml:"dashboard"`
	Thresholds ThresholdsConfig `toml:"thresholds"`
	Layout     LayoutConfig     `toml:"layout"`
	Keys       KeysConfig       `toml:"keys"`
	Log        LogConfig        `toml:"log"`
	TUI        TUIConfig        `toml:"tui"`

	// Path is the file the configuration was read from; empty when
	// no file was found and defaults are in use.
	Path string `toml:"-"`
}

// NetworkConfig controls the UDP link to the telemetry bridge.
type NetworkConfig struct {
	Listen              string `toml:"listen"`
	PeerPort            int    `toml:"peer_port"` // used when the server argument has no port
	HeartbeatIntervalMS int    `toml:"heartbeat_interval_ms"`
	MaxFrameSize        int    `toml:"max_frame_size"`
	HandshakeTimeoutMS  int    `toml:"handshake_timeout_ms"` // 0 = wait forever
}

// HeartbeatInterval returns the keep-alive interval.
func (n NetworkConfig) HeartbeatInterval() time.Duration {
	return time.Duration(n.HeartbeatIntervalMS) * time.Millisecond
}

// HandshakeTimeout returns the handshake timeout; zero waits forever.
func (n NetworkConfig) HandshakeTimeout() time.Duration {
	return time.Duration(n.HandshakeTimeoutMS) * time.Millisecond
}

// DashboardConfig controls the refresh loop and the gauges shown.
type DashboardConfig struct {
	PollIntervalMS int      `toml:"poll_interval_ms"`
	BarLength      int      `toml:"bar_length"`
	RedlineMargin  float64  `toml:"redline_margin"`
	Widgets        []string `toml:"widgets"` // draw order
}

// PollInterval returns the pause after each tick.
func (d DashboardConfig) PollInterval() time.Duration {
	return time.Duration(d.PollIntervalMS) * time.Millisecond
}

// BandConfig holds the lower bounds of the optimal, warning and too-hot
// bands. Values below Cold are cold.
type BandConfig struct {
	Cold    float64 `toml:"cold"`
	Optimal float64 `toml:"optimal"`
	Warning float64 `toml:"warning"`
}

// BrakeBandConfig is a BandConfig with a rear brake offset.
type BrakeBandConfig struct {
	Cold       float64 `toml:"cold"`
	Optimal    float64 `toml:"optimal"`
	Warning    float64 `toml:"warning"`
	RearOffset float64 `toml:"rear_offset"` // added to rear readings before banding
}

// Bands returns the thresholds without the offset.
func (b BrakeBandConfig) Bands() BandConfig {
	return BandConfig{Cold: b.Cold, Optimal: b.Optimal, Warning: b.Warning}
}

// ThresholdsConfig holds the banding thresholds per gauge.
type ThresholdsConfig struct {
	TyreTemp     BandConfig      `toml:"tyre_temp"`
	BrakeTemp    BrakeBandConfig `toml:"brake_temp"`
	TyrePressure BandConfig      `toml:"tyre_pressure"`
}

// Origin is a gauge's top-left cell.
type Origin struct {
	X int `toml:"x"`
	Y int `toml:"y"`
}

// LayoutConfig assigns each gauge its screen origin. Overlap is not checked.
type LayoutConfig struct {
	Tachometer    Origin `toml:"tachometer"`
	TyreTemps     Origin `toml:"tyre_temps"`
	LapTimes      Origin `toml:"lap_times"`
	Thermometer   Origin `toml:"thermometer"`
	BrakeTemps    Origin `toml:"brake_temps"`
	TyrePressures Origin `toml:"tyre_pressures"`
}

// Origin returns the origin configured for the named gauge.
func (l LayoutConfig) Origin(gauge string) (Origin, bool) {
	switch gauge {
	case GaugeTachometer:
		return l.Tachometer, true
	case GaugeTyreTemps:
		return l.TyreTemps, true
	case GaugeLapTimes:
		return l.LapTimes, true
	case GaugeThermometer:
		return l.Thermometer, true
	case GaugeBrakeTemps:
		return l.BrakeTemps, true
	case GaugeTyrePressures:
		return l.TyrePressures, true
	}
	return Origin{}, false
}

// KeysConfig binds hotkeys. Each entry is a list of key names as
// reported by the terminal ("q", "ctrl+c", "esc").
type KeysConfig struct {
	Quit  []string `toml:"quit"`
	Rearm []string `toml:"rearm"`
}

// LogConfig controls the log file. The terminal belongs to the
// dashboard, so logs never go to stdout.
type LogConfig struct {
	File  string `toml:"file"` // empty discards logs
	Level string `toml:"level"`
}

// TUIConfig controls the terminal UI appearance.
type TUIConfig struct {
	AccentColor string `toml:"accent_color"`
}

// Validate checks the configuration for issues that would cause confusing
// runtime failures. It returns all found issues joined together.
func (c *Config) Validate() error {
	var errs []error

	if _, _, err := net.SplitHostPort(c.Network.Listen); err != nil {
		errs = append(errs, fmt.Errorf("network.listen must be host:port: %w", err))
	}
	if c.Network.PeerPort < 1 || c.Network.PeerPort > 65535 {
		errs = append(errs, fmt.Errorf("network.peer_port must be between 1 and 65535"))
	}
	if c.Network.HeartbeatIntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("network.heartbeat_interval_ms must be > 0"))
	}
	if c.Network.MaxFrameSize <= 0 {
		errs = append(errs, fmt.Errorf("network.max_frame_size must be > 0"))
	}
	if c.Network.HandshakeTimeoutMS < 0 {
		errs = append(errs, fmt.Errorf("network.handshake_timeout_ms must be >= 0 (0 = wait forever)"))
	}

	if c.Dashboard.PollIntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("dashboard.poll_interval_ms must be > 0"))
	}
	if c.Dashboard.BarLength < 2 {
		errs = append(errs, fmt.Errorf("dashboard.bar_length must be >= 2"))
	}
	if c.Dashboard.RedlineMargin < 0 {
		errs = append(errs, fmt.Errorf("dashboard.redline_margin must be >= 0"))
	}
	seen := make(map[string]bool, len(c.Dashboard.Widgets))
	for _, w := range c.Dashboard.Widgets {
		if _, ok := c.Layout.Origin(w); !ok {
			errs = append(errs, fmt.Errorf("dashboard.widgets: unknown gauge %q", w))
			continue
		}
		if seen[w] {
			errs = append(errs, fmt.Errorf("dashboard.widgets: %q listed twice", w))
		}
		seen[w] = true
	}

	errs = append(errs, validateBands("thresholds.tyre_temp", c.Thresholds.TyreTemp))
	errs = append(errs, validateBands("thresholds.brake_temp", c.Thresholds.BrakeTemp.Bands()))
	errs = append(errs, validateBands("thresholds.tyre_pressure", c.Thresholds.TyrePressure))

	for _, o := range []struct {
		name string
		o    Origin
	}{
		{GaugeTachometer, c.Layout.Tachometer},
		{GaugeTyreTemps, c.Layout.TyreTemps},
		{GaugeLapTimes, c.Layout.LapTimes},
		{GaugeThermometer, c.Layout.Thermometer},
		{GaugeBrakeTemps, c.Layout.BrakeTemps},
		{GaugeTyrePressures, c.Layout.TyrePressures},
	} {
		if o.o.X < 0 || o.o.Y < 0 {
			errs = append(errs, fmt.Errorf("layout.%s must not be negative", o.name))
		}
	}

	if len(c.Keys.Quit) == 0 {
		errs = append(errs, fmt.Errorf("keys.quit must bind at least one key"))
	}
	for _, k := range append(append([]string{}, c.Keys.Quit...), c.Keys.Rearm...) {
		if strings.TrimSpace(k) == "" {
			errs = append(errs, fmt.Errorf("keys: empty key name"))
			break
		}
	}

	if c.Log.Level != "" {
		if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
			errs = append(errs, fmt.Errorf("log.level: %w", err))
		}
	}

	if c.TUI.AccentColor != "" && !hexColorRe.MatchString(c.TUI.AccentColor) {
		errs = append(errs, fmt.Errorf("tui.accent_color must be a hex color (e.g. \"#7D56F4\")"))
	}

	return errors.Join(errs...)
}

func validateBands(name string, b BandConfig) error {
	if b.Cold > b.Optimal || b.Optimal > b.Warning {
		return fmt.Errorf("%s must satisfy cold <= optimal <= warning", name)
	}
	return nil
}

// Defaults returns a Config with the stock dashboard settings.
func Defaults() Config {
	return Config{
		Network: NetworkConfig{
			Listen:              "0.0.0.0:9001",
			PeerPort:            9000,
			HeartbeatIntervalMS: 2000,
			MaxFrameSize:        8192,
			HandshakeTimeoutMS:  0,
		},
		Dashboard: DashboardConfig{
			PollIntervalMS: 16,
			BarLength:      17,
			RedlineMargin:  100,
			Widgets: []string{
				GaugeTachometer,
				GaugeTyreTemps,
				GaugeLapTimes,
				GaugeThermometer,
				GaugeBrakeTemps,
				GaugeTyrePressures,
			},
		},
		Thresholds: ThresholdsConfig{
			TyreTemp:     BandConfig{Cold: 72, Optimal: 92, Warning: 100},
			BrakeTemp:    BrakeBandConfig{Cold: 475, Optimal: 650, Warning: 675, RearOffset: 200},
			TyrePressure: BandConfig{Cold: 26.5, Optimal: 28.0, Warning: 29.0},
		},
		Layout: LayoutConfig{
			Tachometer:    Origin{X: 0, Y: 0},
			TyreTemps:     Origin{X: 0, Y: 6},
			LapTimes:      Origin{X: 24, Y: 0},
			Thermometer:   Origin{X: 24, Y: 6},
			BrakeTemps:    Origin{X: 0, Y: 12},
			TyrePressures: Origin{X: 24, Y: 12},
		},
		Keys: KeysConfig{
			Quit:  []string{"q", "ctrl+c"},
			Rearm: []string{"r"},
		},
		Log: LogConfig{
			File:  "accdash.log",
			Level: "info",
		},
		TUI: TUIConfig{
			AccentColor: DefaultAccentColor,
		},
	}
}

// Load reads accdash.toml from the given path. If path is empty, it walks
// up from the current working directory looking for accdash.toml and
// falls back to Defaults when none exists. An explicit path must exist.
// Returns an error if the file contains unknown keys (likely typos).
func Load(path string) (*Config, error) {
	if path == "" {
		found, ok, err := findConfig()
		if err != nil {
			return nil, err
		}
		if !ok {
			cfg := Defaults()
			return &cfg, nil
		}
		path = found
	}

	cfg := Defaults()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("config: unknown keys in %s: %s (possible typos?)", path, joinKeys(keys))
	}

	cfg.Path = path
	return &cfg, nil
}

// joinKeys formats a slice of key names for display.
func joinKeys(keys []string) string {
	return strings.Join(keys, ", ")
}

// findConfig walks up from the current directory looking for accdash.toml.
func findConfig() (string, bool, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", false, fmt.Errorf("config: get working directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// Encode writes cfg as TOML.
func Encode(w io.Writer, cfg *Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	return nil
}

// InitFile writes a default accdash.toml template to the given directory.
func InitFile(dir string) (string, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config: %s already exists at %s", FileName, path)
	}

	content := `# accdash.toml: telemetry dashboard configuration
# Place this file in the directory you start accdash from (or a parent).

[network]
listen = "0.0.0.0:9001"      # local UDP bind address
peer_port = 9000             # used when the server argument has no port
heartbeat_interval_ms = 2000 # keep-alive interval
max_frame_size = 8192        # larger datagrams are truncated
handshake_timeout_ms = 0     # 0 = wait for the bridge forever

[dashboard]
poll_interval_ms = 16  # pause after every frame
bar_length = 17        # tachometer slots
redline_margin = 100   # bar turns to warning within this many rpm of max
widgets = ["tachometer", "tyre_temps", "lap_times", "thermometer", "brake_temps", "tyre_pressures"]

[thresholds.tyre_temp]     # lower bounds of optimal, warning, too hot (°C)
cold = 72.0
optimal = 92.0
warning = 100.0

[thresholds.brake_temp]
cold = 475.0
optimal = 650.0
warning = 675.0
rear_offset = 200.0        # added to rear readings before banding

[thresholds.tyre_pressure] # psi
cold = 26.5
optimal = 28.0
warning = 29.0

[layout]
tachometer = { x = 0, y = 0 }
tyre_temps = { x = 0, y = 6 }
lap_times = { x = 24, y = 0 }
thermometer = { x = 24, y = 6 }
brake_temps = { x = 0, y = 12 }
tyre_pressures = { x = 24, y = 12 }

[keys]
quit = ["q", "ctrl+c"]
rearm = ["r"]              # re-apply session statics on the next frame

[log]
file = "accdash.log"  # empty = discard
level = "info"

[tui]
accent_color = "#7D56F4"  # hex color for labels and the status bar
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("config: write %s: %w", path, err)
	}
	return path, nil
}
