package cmd

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/urfave/cli"

	"github.com/remindl/remindl/internal/config"
	daemonpkg "github.com/remindl/remindl/internal/daemon"
	"github.com/remindl/remindl/pkg/logger"
)

// shutdownTimeout bounds graceful cleanup when the daemon is asked to
// stop.
const shutdownTimeout = 5 * time.Second

// debugLogPath locates the debug log file; swapped in tests.
var debugLogPath = func() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "remindl", "daemon.log"), nil
}

// newDaemonLogger returns the daemon's logger: the console, plus a log
// file when debug mode is on.
func newDaemonLogger(debug bool) logger.Logger {
	console := logger.NewStandardLogger(log.Default())
	if !debug {
		return console
	}
	path, err := debugLogPath()
	if err == nil {
		err = os.MkdirAll(filepath.Dir(path), 0755)
	}
	var file *logger.FileLogger
	if err == nil {
		file, err = logger.NewFileLogger(path)
	}
	if err != nil {
		console.Warning("debug log file disabled: %v", err)
		return console
	}
	return logger.NewMultiLogger(console, file)
}

// newDaemonRunner wires the lifecycle runner over the daemon's serve
// loop and component teardown.
func newDaemonRunner(serve func() error, closeComponents func()) *daemonpkg.Runner {
	return daemonpkg.New(
		&daemonpkg.Config{ShutdownTimeout: shutdownTimeout},
		&daemonpkg.Dependencies{
			ServeFunc: serve,
			ShutdownFunc: func() error {
				closeComponents()
				return nil
			},
		},
	)
}

func daemon(ctx *cli.Context) error {
	cfg, err := config.Load(os.Getenv("REMINDL_CONFIG"))
	if err != nil {
		printRuntimeErr(ctx, "daemon", "config", err)
		return nil
	}

	l := newDaemonLogger(cfg.Debug)
	defer l.Close()

	components, err := initDaemonComponents(cfg, l)
	if err != nil {
		printRuntimeErr(ctx, "daemon", "init", err)
		return nil
	}

	runner := newDaemonRunner(components.Server.Start, components.Close)

	// Stop on SIGINT/SIGTERM; shutting down the components makes the
	// serve loop return.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		if err := runner.Shutdown(); err != nil {
			l.Error("Shutdown failed: %v", err)
		}
	}()

	l.Info("Daemon started (version %s)", currentBuildArgs.Version)
	if err := runner.Start(context.Background()); err != nil && !errors.Is(err, context.Canceled) {
		printRuntimeErr(ctx, "daemon", "serve", err)
	}
	return nil
}
