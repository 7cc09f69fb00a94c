package config

import "fmt"

// NetworkType selects which network the node joins.
type NetworkType int

const (
	MainNet NetworkType = iota
	TestNet
)

func (n NetworkType) String() string {
	switch n {
	case MainNet:
		return "main"
	case TestNet:
		return "test"
	}
	return fmt.Sprintf("network(%d)", int(n))
}

// APIUser is a username and secret allowed to access the API
type APIUser struct {
	Name     string
	Password string
}

// Config is the resolved runtime configuration of the node.
// A Config is built once by Resolve and must be treated as read-only afterwards.
type Config struct {
	Network    NetworkType
	ListenPort int
	APIPort    int

	APIUsers      []APIUser
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

	ChangePass        bool
	OnlyShowAddresses bool
	WalletPassword    string
	StartClean        bool
}

// APIUser looks up the secret of an API user
func (c Config) APIUser(name string) (string, bool) {
	for _, u := range c.APIUsers {
		if u.Name == name {
			return u.Password, true
		}
	}
	return "", false
}

// Overrides holds the values given on the command line.
// A nil field was not given; numeric values are kept as text and parsed by Resolve.
type Overrides struct {
	ConfigPath *string

	Testnet           bool
	ChangePass        bool
	Clean             bool
	OnlyShowAddresses bool
	EnableActivity    bool

	ListenPort             *string
	APIPort                *string
	MaxLogSize             *string
	MaxLogCount            *string
	MaxOutgoingConnections *string
	MaxIncomingClientNodes *string
	LogVerbosity           *string

	ExternalIP     *string
	WalletFile     *string
	SeedNode       *string
	WalletPassword *string
}

// Value returns a pointer to s, for filling Overrides
func Value(s string) *string {
	return &s
}
