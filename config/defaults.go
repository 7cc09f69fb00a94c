package config

import "github.com/ixian-platform/seeder/logging"

const (
	DefaultConfigFile = "ixian.cfg"
	DefaultWalletFile = "ixian.wal"

	DefaultMaxLogSize  = 50 // MB
	DefaultMaxLogCount = 10

	DefaultMaxOutgoingConnections = 6
	DefaultMaxIncomingClientNodes = 2000
)

// NetworkDefaults are the compiled-in values which depend on the network
type NetworkDefaults struct {
	ListenPort int
	APIPort    int
	SeedNodes  []string
}

var networkDefaults = map[NetworkType]NetworkDefaults{
	MainNet: {
		ListenPort: 10234,
		APIPort:    8001,
		SeedNodes: []string{
			"seed1.ixian.io:10234",
			"seed2.ixian.io:10234",
			"seed3.ixian.io:10234",
			"seed4.ixian.io:10234",
			"seed5.ixian.io:10234",
		},
	},
	TestNet: {
		ListenPort: 11234,
		APIPort:    8101,
		SeedNodes: []string{
			"seedtest1.ixian.io:11234",
			"seedtest2.ixian.io:11234",
			"seedtest3.ixian.io:11234",
		},
	},
}

// DefaultsFor returns a copy of the defaults of network n
func DefaultsFor(n NetworkType) NetworkDefaults {
	d := networkDefaults[n]
	d.SeedNodes = append([]string(nil), d.SeedNodes...)
	return d
}

// DefaultConfig creates a default config for the main network
func DefaultConfig() Config {
	main := DefaultsFor(MainNet)
	return Config{
		Network:                MainNet,
		ListenPort:             main.ListenPort,
		APIPort:                main.APIPort,
		ConfigFile:             DefaultConfigFile,
		WalletFile:             DefaultWalletFile,
		MaxLogSize:             DefaultMaxLogSize,
		MaxLogCount:            DefaultMaxLogCount,
		LogVerbosity:           logging.DefaultVerbosity,
		MaxOutgoingConnections: DefaultMaxOutgoingConnections,
		MaxIncomingClientNodes: DefaultMaxIncomingClientNodes,
		SeedNodes:              main.SeedNodes,
	}
}
