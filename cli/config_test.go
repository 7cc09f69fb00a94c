package main

import (
	"bytes"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"

	"github.com/ixian-platform/seeder/config"
)

func testApp(out io.Writer, action func(ctx *cli.Context) error) *cli.App {
	app := NewApp()
	app.Flags = AppFlags
	app.Commands = []cli.Command{DumpConfigCommand}
	app.Action = action
	app.Writer = out
	return app
}

func TestApplyFlags(t *testing.T) {
	var got config.Overrides
	app := testApp(io.Discard, func(ctx *cli.Context) error {
		ApplyFlags(ctx, &got)
		return nil
	})

	err := app.Run([]string{"IxianSeeder",
		"--config", "other.cfg",
		"-t", "-c", "-x",
		"-p", "12000",
		"--apiport", "8500",
		"-i", "203.0.113.7",
		"-w", "my.wal",
		"-n", "seed.example.org:10234",
		"--maxLogSize", "5",
		"--logVerbosity", "15",
		"--enableActivity",
	})
	require.NoError(t, err)

	require.NotNil(t, got.ConfigPath)
	assert.Equal(t, "other.cfg", *got.ConfigPath)
	assert.True(t, got.Testnet)
	assert.True(t, got.Clean)
	assert.True(t, got.ChangePass)
	assert.True(t, got.EnableActivity)
	assert.False(t, got.OnlyShowAddresses)
	require.NotNil(t, got.ListenPort)
	assert.Equal(t, "12000", *got.ListenPort)
	require.NotNil(t, got.APIPort)
	assert.Equal(t, "8500", *got.APIPort)
	assert.Equal(t, "203.0.113.7", *got.ExternalIP)
	assert.Equal(t, "my.wal", *got.WalletFile)
	assert.Equal(t, "seed.example.org:10234", *got.SeedNode)
	assert.Equal(t, "5", *got.MaxLogSize)
	assert.Equal(t, "15", *got.LogVerbosity)
	assert.Nil(t, got.MaxLogCount)
	assert.Nil(t, got.WalletPassword)
}

func TestApplyFlagsUnset(t *testing.T) {
	var got config.Overrides
	app := testApp(io.Discard, func(ctx *cli.Context) error {
		ApplyFlags(ctx, &got)
		return nil
	})
	require.NoError(t, app.Run([]string{"IxianSeeder"}))

	// the default config file name comes from the resolver, not the flag
	assert.Equal(t, config.Overrides{}, got)
}

func TestMalformedPortFails(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "ixian.cfg")
	app := testApp(io.Discard, func(ctx *cli.Context) error {
		_, err := GetConfig(ctx)
		return err
	})

	err := app.Run([]string{"IxianSeeder", "--config", missing, "-p", "abc"})

	var perr *config.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, config.SourceCLI, perr.Source)
	assert.Equal(t, "port", perr.Key)
	assert.Equal(t, "abc", perr.Value)
}

func TestHelpAndVersionDoNotStart(t *testing.T) {
	for _, arg := range []string{"-h", "--help", "-v", "--version"} {
		t.Run(arg, func(t *testing.T) {
			var out bytes.Buffer
			started := false
			app := testApp(&out, func(ctx *cli.Context) error {
				started = true
				return nil
			})
			app.Version = "xseedc-test"

			require.NoError(t, app.Run([]string{"IxianSeeder", arg}))
			assert.False(t, started)
			assert.NotEmpty(t, out.String())
		})
	}
}

func TestHelpListsConfigFileOptions(t *testing.T) {
	var out bytes.Buffer
	app := testApp(&out, nil)
	require.NoError(t, app.Run([]string{"IxianSeeder", "--help"}))

	assert.Contains(t, out.String(), "Starts a new instance of Ixian Seeder Node")
	assert.Contains(t, out.String(), "addApiUser")
	assert.Contains(t, out.String(), "--testnet, -t")
}

func TestDumpConfig(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "ixian.cfg")
	var out bytes.Buffer
	app := testApp(&out, nil)

	require.NoError(t, app.Run([]string{"IxianSeeder", "--config", missing, "-t", "dumpconfig"}))

	assert.Contains(t, out.String(), "11234")
	assert.Contains(t, out.String(), "seedtest1.ixian.io:11234")
}
