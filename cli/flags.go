package main

import (
	"strings"

	"github.com/urfave/cli"

	"github.com/ixian-platform/seeder/config"
)

var (
	ConfigFileFlag = cli.StringFlag{
		Name:  "config",
		Value: config.DefaultConfigFile,
		Usage: "Read configuration from `FILE`",
	}

	TestnetFlag = cli.BoolFlag{
		Name:  "testnet, t",
		Usage: "Start node in testnet mode",
	}

	ChangePassFlag = cli.BoolFlag{
		Name:  "changepass, x",
		Usage: "Change the wallet password",
	}

	CleanFlag = cli.BoolFlag{
		Name:  "clean, c",
		Usage: "Start node with a clean cache, peer list and logs",
	}

	PortFlag = cli.StringFlag{
		Name:  "port, p",
		Usage: "Port to listen on",
	}

	APIPortFlag = cli.StringFlag{
		Name:  "apiport, a",
		Usage: "HTTP/API port to listen on",
	}

	ExternalIPFlag = cli.StringFlag{
		Name:  "ip, i",
		Usage: "External IP address to use",
	}

	WalletFlag = cli.StringFlag{
		Name:  "wallet, w",
		Usage: "Wallet `FILE` to use",
	}

	SeedNodeFlag = cli.StringFlag{
		Name:  "node, n",
		Usage: "Seed node to use instead of the default ones",
	}

	MaxLogSizeFlag = cli.StringFlag{
		Name:  "maxLogSize",
		Usage: "Maximum log file size in MB",
	}

	MaxLogCountFlag = cli.StringFlag{
		Name:  "maxLogCount",
		Usage: "Maximum number of log files",
	}

	OnlyShowAddressesFlag = cli.BoolFlag{
		Name:  "onlyShowAddresses",
		Usage: "Only show wallet addresses and exit",
	}

	MaxOutgoingConnectionsFlag = cli.StringFlag{
		Name:  "maxOutgoingConnections",
		Usage: "Maximum number of outgoing connections",
	}

	MaxIncomingClientNodesFlag = cli.StringFlag{
		Name:  "maxIncomingClientNodes",
		Usage: "Maximum number of incoming client connections",
	}

	WalletPasswordFlag = cli.StringFlag{
		Name:  "walletPassword",
		Usage: "Wallet password, to be used in non-interactive scripts",
	}

	EnableActivityFlag = cli.BoolFlag{
		Name:  "enableActivity",
		Usage: "Store wallet activity",
	}

	LogVerbosityFlag = cli.StringFlag{
		Name:  "logVerbosity",
		Usage: "Log verbosity bitmask: trace 1, info 2, warn 4, error 8",
	}
)

var AppFlags = []cli.Flag{
	ConfigFileFlag,
	TestnetFlag,
	ChangePassFlag,
	CleanFlag,

	PortFlag,
	APIPortFlag,
	ExternalIPFlag,
	WalletFlag,
	SeedNodeFlag,

	MaxLogSizeFlag,
	MaxLogCountFlag,
	LogVerbosityFlag,

	OnlyShowAddressesFlag,
	MaxOutgoingConnectionsFlag,
	MaxIncomingClientNodesFlag,
	WalletPasswordFlag,
	EnableActivityFlag,
}

// flagName returns the long name of a flag declared as "long, short"
func flagName(f cli.Flag) string {
	return strings.TrimSpace(strings.Split(f.GetName(), ",")[0])
}
