package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/ixian-platform/seeder/common"
	"github.com/ixian-platform/seeder/config"
	"github.com/ixian-platform/seeder/logging"
	"github.com/ixian-platform/seeder/monitor"
	npkg "github.com/ixian-platform/seeder/node"
	"github.com/ixian-platform/seeder/update"
)

var (
	App = NewApp()
)

const monitorStopTimeout = 5 * time.Second

func init() {
	App.Action = entry
	App.Version = common.Version
	App.Flags = AppFlags
	App.Commands = []cli.Command{
		DumpConfigCommand,
	}
	sort.Sort(cli.CommandsByName(App.Commands))
}

// loadConfig resolves the configuration and sets up logging for it. Entries
// logged while resolving are held back and written once the log file is open.
func loadConfig(ctx *cli.Context, console *logging.Console, logFile string) (config.Config, io.Closer, error) {
	logger := log.StandardLogger()
	pending := logging.Capture(logger)

	cleaner := npkg.Cleaner(filepath.Dir(logFile), filepath.Base(logFile))
	cfg, err := GetConfig(ctx, config.WithCleaner(cleaner))
	if err != nil {
		logger.SetOutput(os.Stderr)
		pending.Replay(logger)
		return config.Config{}, nil, err
	}

	closer := logging.Setup(logger, logging.Options{
		File:       logFile,
		MaxSize:    cfg.MaxLogSize,
		MaxBackups: cfg.MaxLogCount,
		Verbosity:  cfg.LogVerbosity,
		Console:    console,
	})
	pending.Replay(logger)
	return cfg, closer, nil
}

func entry(ctx *cli.Context) error {
	console := logging.NewConsole(os.Stdout, false)
	cfg, logFile, err := loadConfig(ctx, console, logging.DefaultLogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()

	log.Info("Starting Ixian Seeder ", common.Version, " on the ", cfg.Network, " network")

	node := npkg.NewNode(cfg)

	bg, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates := update.NewChecker(update.DefaultURL, nil)
	updates.Start(bg)

	mon := monitor.New(monitor.Options{
		Out:      os.Stdout,
		Provider: node.Stats,
		Updates:  updates,
		Verbose:  console,
		Version:  common.Version,
		APIPort:  cfg.APIPort,
	})
	if err := mon.Start(); err != nil {
		return err
	}

	term := newTerminal()
	defer term.Restore()
	go term.ListenKeys(console.Toggle, func() {
		node.Shutdown("escape key pressed")
	})

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-ch:
		node.Shutdown("received " + sig.String())
	case <-node.ShutdownRequested():
	}

	mon.Stop()
	select {
	case <-mon.Done():
	case <-time.After(monitorStopTimeout):
		log.Warn("Status console did not stop in time")
	}
	return nil
}

func main() {
	if err := App.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
