package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"

	"github.com/ixian-platform/seeder/config"
	"github.com/ixian-platform/seeder/logging"
)

func restoreStandardLogger(t *testing.T) {
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetFormatter(&log.TextFormatter{})
		log.SetLevel(log.InfoLevel)
		log.StandardLogger().ReplaceHooks(log.LevelHooks{})
	})
}

func TestConfigWarningsReachLogFile(t *testing.T) {
	restoreStandardLogger(t)
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "ixian.cfg")
	require.NoError(t, os.WriteFile(cfgFile, []byte("bogusKey = 1\nseederPort = 4000\n"), 0o644))
	logFile := filepath.Join(dir, logging.DefaultLogFile)

	var cfg config.Config
	app := testApp(io.Discard, func(ctx *cli.Context) error {
		var closer io.Closer
		var err error
		cfg, closer, err = loadConfig(ctx, logging.NewConsole(io.Discard, false), logFile)
		if err != nil {
			return err
		}
		return closer.Close()
	})
	require.NoError(t, app.Run([]string{"IxianSeeder", "--config", cfgFile}))

	assert.Equal(t, 4000, cfg.ListenPort)
	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Unknown config parameter was specified 'bogusKey'")
	assert.Contains(t, string(data), "level=warning")
}

func TestConfigErrorLeavesNoLogFile(t *testing.T) {
	restoreStandardLogger(t)
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "ixian.cfg")
	require.NoError(t, os.WriteFile(cfgFile, []byte("bogusKey = 1\nseederPort = abc\n"), 0o644))
	logFile := filepath.Join(dir, logging.DefaultLogFile)

	app := testApp(io.Discard, func(ctx *cli.Context) error {
		_, _, err := loadConfig(ctx, logging.NewConsole(io.Discard, false), logFile)
		return err
	})
	err := app.Run([]string{"IxianSeeder", "--config", cfgFile})

	var perr *config.ParseError
	require.ErrorAs(t, err, &perr)
	assert.NoFileExists(t, logFile)
	assert.Equal(t, os.Stderr, log.StandardLogger().Out)
}
