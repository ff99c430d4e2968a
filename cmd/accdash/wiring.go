package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/LISSConsulting/LISSTech.ACCDash/internal/config"
	"github.com/LISSConsulting/LISSTech.ACCDash/internal/link"
	"github.com/LISSConsulting/LISSTech.ACCDash/internal/tui"
	"github.com/LISSConsulting/LISSTech.ACCDash/internal/widgets"
)

// runOptions are the command-line inputs of the dashboard command.
type runOptions struct {
	server     string
	configPath string
	listen     string
	plain      bool
}

func runOptionsFromFlags(cmd *cobra.Command, server string) (runOptions, error) {
	opts := runOptions{server: strings.TrimSpace(server)}
	if opts.server == "" {
		return opts, errors.New("server address must not be empty (host or host:port)")
	}
	var err error
	if opts.configPath, err = cmd.Flags().GetString("config"); err != nil {
		return opts, err
	}
	if opts.listen, err = cmd.Flags().GetString("listen"); err != nil {
		return opts, err
	}
	if opts.plain, err = cmd.Flags().GetBool("plain"); err != nil {
		return opts, err
	}
	return opts, nil
}

// loadConfig reads the configuration, applies flag overrides and validates.
func loadConfig(opts runOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.listen != "" {
		cfg.Network.Listen = opts.listen
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// newLogger builds the logger described by the [log] section. The returned
// closer releases the log file.
func newLogger(lc config.LogConfig) (*logrus.Logger, io.Closer, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})

	level := logrus.InfoLevel
	if lc.Level != "" {
		parsed, err := logrus.ParseLevel(lc.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("log: %w", err)
		}
		level = parsed
	}
	logger.SetLevel(level)

	if lc.File == "" {
		logger.SetOutput(io.Discard)
		return logger, nopCloser{}, nil
	}
	f, err := os.OpenFile(lc.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("log: open %s: %w", lc.File, err)
	}
	logger.SetOutput(f)
	return logger, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// linkConfig maps the [network] section onto the link.
func linkConfig(cfg *config.Config, server string, log *logrus.Entry) link.Config {
	return link.Config{
		Listen:            cfg.Network.Listen,
		Peer:              server,
		PeerPort:          cfg.Network.PeerPort,
		HeartbeatInterval: cfg.Network.HeartbeatInterval(),
		MaxFrameSize:      cfg.Network.MaxFrameSize,
		HandshakeTimeout:  cfg.Network.HandshakeTimeout(),
		Log:               log,
	}
}

// buildWidgets creates the configured gauges in draw order.
func buildWidgets(cfg *config.Config) ([]widgets.Widget, error) {
	th := cfg.Thresholds
	var ws []widgets.Widget
	for _, name := range cfg.Dashboard.Widgets {
		o, ok := cfg.Layout.Origin(name)
		if !ok {
			return nil, fmt.Errorf("unknown gauge %q", name)
		}
		origin := widgets.Region{X: o.X, Y: o.Y}

		switch name {
		case config.GaugeTachometer:
			ws = append(ws, widgets.NewTachometer(origin, widgets.TachometerConfig{
				BarLength:     cfg.Dashboard.BarLength,
				RedlineMargin: cfg.Dashboard.RedlineMargin,
			}))
		case config.GaugeTyreTemps:
			ws = append(ws, widgets.NewTyreTemps(origin, thresholds(th.TyreTemp)))
		case config.GaugeBrakeTemps:
			ws = append(ws, widgets.NewBrakeTemps(origin, thresholds(th.BrakeTemp.Bands()), th.BrakeTemp.RearOffset))
		case config.GaugeTyrePressures:
			ws = append(ws, widgets.NewTyrePressures(origin, thresholds(th.TyrePressure)))
		case config.GaugeLapTimes:
			ws = append(ws, widgets.NewLapTimes(origin))
		case config.GaugeThermometer:
			ws = append(ws, widgets.NewThermometer(origin))
		}
	}
	return ws, nil
}

func thresholds(b config.BandConfig) widgets.Thresholds {
	return widgets.Thresholds{Cold: b.Cold, Optimal: b.Optimal, Warning: b.Warning}
}

// finishTUI runs the bubbletea program and returns the link error that
// stopped it, if any. Quitting with the hotkey returns nil.
func finishTUI(program *tea.Program) error {
	finalModel, err := program.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	if m, ok := finalModel.(tui.Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}

// isCancel reports whether err is the plain-mode signal shutdown.
func isCancel(err error) bool {
	return errors.Is(err, context.Canceled)
}
