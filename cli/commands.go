package main

import (
	"github.com/urfave/cli"

	"github.com/ixian-platform/seeder/config"
)

var (
	// DumpConfigCommand
	DumpConfigCommand = cli.Command{
		Name:     "dumpconfig",
		Usage:    "Show the resolved configuration",
		Category: "Configuration",
		Action:   DumpConfig,
		Description: `
				Resolves the configuration from the defaults, the config file and
				the command line flags and prints it in TOML format. Passwords are
				left out and the clean flag has no effect.`,
	}
)

// DumpConfig
func DumpConfig(ctx *cli.Context) error {
	cfg, err := GetConfig(ctx)
	if err != nil {
		return err
	}
	return config.Dump(ctx.App.Writer, cfg)
}
