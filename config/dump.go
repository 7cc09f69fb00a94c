package config

import (
	"io"

	"github.com/naoina/toml"
)

type dumpedConfig struct {
	Network    string
	ListenPort int
	APIPort    int

	APIUsers      []string
	APIAllowedIPs []string
	APIBinds      []string

	ConfigFile string
	WalletFile string

	MaxLogSize   int
	MaxLogCount  int
	LogVerbosity int

	MaxOutgoingConnections int
	MaxIncomingClientNodes int

	ExternalIP          string
	EnableActivity      bool
	SeedNodes           []string
	WalletNotifyCommand string
}

// Dump writes cfg as TOML. Secrets are left out, API users are listed by name.
func Dump(w io.Writer, cfg Config) error {
	users := make([]string, 0, len(cfg.APIUsers))
	for _, u := range cfg.APIUsers {
		users = append(users, u.Name)
	}
	return toml.NewEncoder(w).Encode(dumpedConfig{
		Network:                cfg.Network.String(),
		ListenPort:             cfg.ListenPort,
		APIPort:                cfg.APIPort,
		APIUsers:               users,
		APIAllowedIPs:          cfg.APIAllowedIPs,
		APIBinds:               cfg.APIBinds,
		ConfigFile:             cfg.ConfigFile,
		WalletFile:             cfg.WalletFile,
		MaxLogSize:             cfg.MaxLogSize,
		MaxLogCount:            cfg.MaxLogCount,
		LogVerbosity:           cfg.LogVerbosity,
		MaxOutgoingConnections: cfg.MaxOutgoingConnections,
		MaxIncomingClientNodes: cfg.MaxIncomingClientNodes,
		ExternalIP:             cfg.ExternalIP,
		EnableActivity:         cfg.EnableActivity,
		SeedNodes:              cfg.SeedNodes,
		WalletNotifyCommand:    cfg.WalletNotifyCommand,
	})
}
