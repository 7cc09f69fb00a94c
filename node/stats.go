package node

import (
	"net"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/ixian-platform/seeder/config"
	"github.com/ixian-platform/seeder/monitor"
)

// Stats holds the node counters read by the status console.
// All methods are safe for concurrent use.
type Stats struct {
	outgoing      atomic.Int64
	incoming      atomic.Int64
	presences     atomic.Int64
	lastBlockTime atomic.Int64
	connectable   atomic.Bool
	serverRunning atomic.Bool

	addrMux    sync.RWMutex
	publicIP   string
	publicPort int
}

// NewStats creates the counters for a node configured by cfg
func NewStats(cfg config.Config) *Stats {
	return &Stats{
		publicIP:   cfg.ExternalIP,
		publicPort: cfg.ListenPort,
	}
}

// SetConnections stores the number of incoming and outgoing connections
func (s *Stats) SetConnections(incoming, outgoing int) {
	s.incoming.Store(int64(incoming))
	s.outgoing.Store(int64(outgoing))
}

// SetPresences stores the number of known presences
func (s *Stats) SetPresences(n int) {
	s.presences.Store(int64(n))
}

// SetLastBlockTime stores the unix time of the last received block
func (s *Stats) SetLastBlockTime(unix int64) {
	s.lastBlockTime.Store(unix)
}

// SetConnectable records whether the node is reachable from the internet
func (s *Stats) SetConnectable(v bool) {
	s.connectable.Store(v)
}

// SetServerRunning records whether the node accepts incoming connections
func (s *Stats) SetServerRunning(v bool) {
	s.serverRunning.Store(v)
}

// SetPublicAddress stores the address other nodes see us at
func (s *Stats) SetPublicAddress(ip string, port int) {
	s.addrMux.Lock()
	s.publicIP = ip
	s.publicPort = port
	s.addrMux.Unlock()
}

// Snapshot implements monitor.StatusProvider
func (s *Stats) Snapshot() (monitor.Snapshot, error) {
	s.addrMux.RLock()
	ip, port := s.publicIP, s.publicPort
	s.addrMux.RUnlock()

	// unknown until an external IP is configured or discovered
	addr := ""
	if ip != "" {
		addr = net.JoinHostPort(ip, strconv.Itoa(port))
	}

	return monitor.Snapshot{
		OutgoingConnections: int(s.outgoing.Load()),
		IncomingConnections: int(s.incoming.Load()),
		Presences:           int(s.presences.Load()),
		LastBlockTime:       s.lastBlockTime.Load(),
		Connectable:         s.connectable.Load(),
		ServerRunning:       s.serverRunning.Load(),
		PublicPort:          port,
		PublicAddress:       addr,
	}, nil
}
