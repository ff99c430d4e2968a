package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/LISSConsulting/LISSTech.ACCDash/internal/config"
	"github.com/LISSConsulting/LISSTech.ACCDash/internal/dashboard"
	"github.com/LISSConsulting/LISSTech.ACCDash/internal/link"
	"github.com/LISSConsulting/LISSTech.ACCDash/internal/tui"
)

// executeDashboard loads config, connects to the bridge and runs the
// dashboard until the quit hotkey, a signal, or a fatal link error.
func executeDashboard(opts runOptions) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logger, logCloser, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	log := logger.WithField("component", "accdash")
	log.WithFields(logrus.Fields{
		"version": version,
		"server":  opts.server,
		"config":  cfg.Path,
		"plain":   opts.plain,
	}).Info("starting")

	ctx, cancel := signalContext()
	defer cancel()

	ws, err := buildWidgets(cfg)
	if err != nil {
		return err
	}

	conn, err := link.Open(linkConfig(cfg, opts.server, logger.WithField("component", "link")))
	if err != nil {
		log.WithField("err", err).Error("unable to open link")
		return err
	}
	defer conn.Close()

	fmt.Fprintf(os.Stdout, "Requesting data from %s ...\n", conn.Peer())
	if err := handshake(ctx, conn); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		log.WithField("err", err).Error("handshake failed")
		return err
	}

	engine := dashboard.New(conn, ws, dashboard.Options{
		PollInterval: cfg.Dashboard.PollInterval(),
		AccentColor:  cfg.TUI.AccentColor,
		Log:          logger.WithField("component", "dashboard"),
	})

	if opts.plain {
		err = engine.Run(ctx, os.Stdout)
		if isCancel(err) {
			log.Info("stopped by signal")
			return nil
		}
		return err
	}
	return runTUI(ctx, engine, cfg, log)
}

// handshake requests the feed. Cancelling ctx closes the link so a
// handshake waiting forever can still be interrupted.
func handshake(ctx context.Context, conn *link.Conn) error {
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()
	return conn.Handshake()
}

// runTUI runs the full-screen dashboard. A signal quits the program the
// same way the quit hotkey does.
func runTUI(ctx context.Context, engine *dashboard.Engine, cfg *config.Config, log *logrus.Entry) error {
	keys := tui.NewKeyMap(cfg.Keys.Quit, cfg.Keys.Rearm)
	model := tui.New(engine, keys, cfg.TUI.AccentColor, cfg.Path)
	program := tea.NewProgram(model, tea.WithAltScreen())

	go func() {
		<-ctx.Done()
		program.Quit()
	}()

	if err := finishTUI(program); err != nil {
		log.WithField("err", err).Error("dashboard stopped")
		return err
	}
	log.Info("dashboard closed")
	return nil
}
