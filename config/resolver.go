package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

// FileLookup opens a config file. An error matching fs.ErrNotExist means
// there is no config file, which is not an error.
type FileLookup func(path string) (io.ReadCloser, error)

// OSFileLookup opens config files from the local filesystem. A directory is
// reported as fs.ErrNotExist, like a missing file.
func OSFileLookup(path string) (io.ReadCloser, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return os.Open(path)
}

// Cleaner removes cached state and logs when the node is started clean
type Cleaner func(cfg Config) error

// Option customizes Resolve
type Option func(*resolver)

// WithLogger sets the logger used while resolving
func WithLogger(l log.FieldLogger) Option {
	return func(r *resolver) {
		r.log = l
	}
}

// WithCleaner sets the function run when the clean flag is given
func WithCleaner(c Cleaner) Option {
	return func(r *resolver) {
		r.cleaner = c
	}
}

type resolver struct {
	log     log.FieldLogger
	cleaner Cleaner

	cfg Config

	// per network values, the mode pass picks the active ones
	mainPort    int
	testPort    int
	mainAPIPort int
	testAPIPort int
	mainSeeds   []string
	testSeeds   []string
}

func newResolver(opts ...Option) *resolver {
	main, test := DefaultsFor(MainNet), DefaultsFor(TestNet)
	r := &resolver{
		log:         log.StandardLogger(),
		cfg:         DefaultConfig(),
		mainPort:    main.ListenPort,
		testPort:    test.ListenPort,
		mainAPIPort: main.APIPort,
		testAPIPort: test.APIPort,
		mainSeeds:   main.SeedNodes,
		testSeeds:   test.SeedNodes,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve builds the node configuration from the compiled-in defaults, the
// config file and the command line, in increasing order of precedence.
//
// The config file path comes from the command line first since it decides
// which file is read. The network mode is applied after the file so the
// file's per-network ports and seed nodes are honoured, and command line
// values are applied last. A seed node given on the command line replaces
// the seed list of the active network.
//
// Malformed numeric values return a *ParseError and no configuration.
func Resolve(o Overrides, lookup FileLookup, opts ...Option) (Config, error) {
	if lookup == nil {
		lookup = OSFileLookup
	}
	r := newResolver(opts...)

	r.cfg.ConfigFile = DefaultConfigFile
	if o.ConfigPath != nil {
		r.cfg.ConfigFile = *o.ConfigPath
	}

	if err := r.readFile(r.cfg.ConfigFile, lookup); err != nil {
		return Config{}, err
	}

	r.selectNetwork(o.Testnet)

	if err := r.applyOverrides(o); err != nil {
		return Config{}, err
	}

	if r.cfg.StartClean && r.cleaner != nil {
		if err := r.cleaner(r.cfg); err != nil {
			r.log.WithError(err).Warn("Unable to clean cache and logs")
		}
	}
	return r.cfg, nil
}

func (r *resolver) readFile(path string, lookup FileLookup) error {
	fh, err := lookup(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("unable to open config file %s: %w", path, err)
	}
	defer fh.Close()

	r.log.Info("Reading config file: ", path)
	entries, err := ReadEntries(fh)
	if err != nil {
		return fmt.Errorf("unable to read config file %s: %w", path, err)
	}
	for _, e := range entries {
		if err := r.applyEntry(path, e); err != nil {
			return err
		}
	}
	return nil
}

func (r *resolver) applyEntry(path string, e Entry) error {
	r.log.WithFields(log.Fields{"key": e.Key, "value": e.Value}).Info("Processing config parameter")

	setInt := func(dst *int) error {
		v, err := parseInt(e.Value)
		if err != nil {
			return &ParseError{Source: SourceFile, Path: path, Line: e.Line, Key: e.Key, Value: e.Value, Err: err}
		}
		*dst = v
		return nil
	}

	switch e.Key {
	case "seederPort":
		return setInt(&r.mainPort)
	case "testnetSeederPort":
		return setInt(&r.testPort)
	case "apiPort":
		return setInt(&r.mainAPIPort)
	case "testnetApiPort":
		return setInt(&r.testAPIPort)
	case "apiAllowIp":
		r.cfg.APIAllowedIPs = append(r.cfg.APIAllowedIPs, e.Value)
	case "apiBind":
		r.cfg.APIBinds = append(r.cfg.APIBinds, e.Value)
	case "addApiUser":
		r.addAPIUser(e)
	case "externalIp":
		r.cfg.ExternalIP = e.Value
	case "addPeer":
		r.mainSeeds = append(r.mainSeeds, e.Value)
	case "addTestnetPeer":
		r.testSeeds = append(r.testSeeds, e.Value)
	case "maxLogSize":
		return setInt(&r.cfg.MaxLogSize)
	case "maxLogCount":
		return setInt(&r.cfg.MaxLogCount)
	case "logVerbosity":
		return setInt(&r.cfg.LogVerbosity)
	case "walletNotify":
		r.cfg.WalletNotifyCommand = e.Value
	default:
		r.log.Warnf("Unknown config parameter was specified '%s'", e.Key)
	}
	return nil
}

func (r *resolver) addAPIUser(e Entry) {
	credential := strings.Split(e.Value, ":")
	if len(credential) != 2 {
		r.log.Warnf("Ignoring malformed API user on line %d, expected user:password", e.Line)
		return
	}
	if _, exists := r.cfg.APIUser(credential[0]); exists {
		r.log.Warnf("Ignoring duplicate API user '%s' on line %d", credential[0], e.Line)
		return
	}
	r.cfg.APIUsers = append(r.cfg.APIUsers, APIUser{Name: credential[0], Password: credential[1]})
}

func (r *resolver) selectNetwork(testnet bool) {
	if testnet {
		r.cfg.Network = TestNet
		r.cfg.ListenPort = r.testPort
		r.cfg.APIPort = r.testAPIPort
		r.cfg.SeedNodes = r.testSeeds
		return
	}
	r.cfg.Network = MainNet
	r.cfg.ListenPort = r.mainPort
	r.cfg.APIPort = r.mainAPIPort
	r.cfg.SeedNodes = r.mainSeeds
}

func (r *resolver) applyOverrides(o Overrides) error {
	// keys are the long command line flag names
	ints := []struct {
		flag  string
		value *string
		dst   *int
	}{
		{"port", o.ListenPort, &r.cfg.ListenPort},
		{"apiport", o.APIPort, &r.cfg.APIPort},
		{"maxLogSize", o.MaxLogSize, &r.cfg.MaxLogSize},
		{"maxLogCount", o.MaxLogCount, &r.cfg.MaxLogCount},
		{"maxOutgoingConnections", o.MaxOutgoingConnections, &r.cfg.MaxOutgoingConnections},
		{"maxIncomingClientNodes", o.MaxIncomingClientNodes, &r.cfg.MaxIncomingClientNodes},
		{"logVerbosity", o.LogVerbosity, &r.cfg.LogVerbosity},
	}
	for _, f := range ints {
		if f.value == nil {
			continue
		}
		v, err := parseInt(*f.value)
		if err != nil {
			return &ParseError{Source: SourceCLI, Key: f.flag, Value: *f.value, Err: err}
		}
		*f.dst = v
	}

	if o.ExternalIP != nil {
		r.cfg.ExternalIP = *o.ExternalIP
	}
	if o.WalletFile != nil {
		r.cfg.WalletFile = *o.WalletFile
	}
	if o.WalletPassword != nil {
		r.cfg.WalletPassword = *o.WalletPassword
	}
	if o.ChangePass {
		r.cfg.ChangePass = true
	}
	if o.Clean {
		r.cfg.StartClean = true
	}
	if o.OnlyShowAddresses {
		r.cfg.OnlyShowAddresses = true
	}
	if o.EnableActivity {
		r.cfg.EnableActivity = true
	}

	if o.SeedNode != nil && *o.SeedNode != "" {
		r.cfg.SeedNodes = []string{*o.SeedNode}
	}
	return nil
}

func parseInt(value string) (int, error) {
	v, err := strconv.Atoi(value)
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return 0, numErr.Err
	}
	return v, err
}
