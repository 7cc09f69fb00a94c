package main

import (
	"github.com/urfave/cli"

	"github.com/ixian-platform/seeder/config"
)

// ApplyFlags copies the flags given on the command line into the overrides
func ApplyFlags(ctx *cli.Context, o *config.Overrides) {
	stringFlags := []struct {
		flag cli.Flag
		dst  **string
	}{
		{ConfigFileFlag, &o.ConfigPath},
		{PortFlag, &o.ListenPort},
		{APIPortFlag, &o.APIPort},
		{ExternalIPFlag, &o.ExternalIP},
		{WalletFlag, &o.WalletFile},
		{SeedNodeFlag, &o.SeedNode},
		{MaxLogSizeFlag, &o.MaxLogSize},
		{MaxLogCountFlag, &o.MaxLogCount},
		{LogVerbosityFlag, &o.LogVerbosity},
		{MaxOutgoingConnectionsFlag, &o.MaxOutgoingConnections},
		{MaxIncomingClientNodesFlag, &o.MaxIncomingClientNodes},
		{WalletPasswordFlag, &o.WalletPassword},
	}
	for _, f := range stringFlags {
		name := flagName(f.flag)
		if ctx.GlobalIsSet(name) {
			*f.dst = config.Value(ctx.GlobalString(name))
		}
	}

	if ctx.GlobalIsSet(flagName(TestnetFlag)) {
		o.Testnet = ctx.GlobalBool(flagName(TestnetFlag))
	}
	if ctx.GlobalIsSet(flagName(ChangePassFlag)) {
		o.ChangePass = ctx.GlobalBool(flagName(ChangePassFlag))
	}
	if ctx.GlobalIsSet(flagName(CleanFlag)) {
		o.Clean = ctx.GlobalBool(flagName(CleanFlag))
	}
	if ctx.GlobalIsSet(OnlyShowAddressesFlag.Name) {
		o.OnlyShowAddresses = ctx.GlobalBool(OnlyShowAddressesFlag.Name)
	}
	if ctx.GlobalIsSet(EnableActivityFlag.Name) {
		o.EnableActivity = ctx.GlobalBool(EnableActivityFlag.Name)
	}
}

// GetConfig resolves the node configuration for the command line in ctx
func GetConfig(ctx *cli.Context, opts ...config.Option) (config.Config, error) {
	var o config.Overrides
	ApplyFlags(ctx, &o)
	return config.Resolve(o, config.OSFileLookup, opts...)
}
