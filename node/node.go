package node

import (
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/ixian-platform/seeder/config"
)

// Node represents the running seeder process
type Node struct {
	Config config.Config
	Stats  *Stats

	shutdownOnce sync.Once
	shutdown     chan struct{}
	reasonMux    sync.Mutex
	reason       string
}

// NewNode creates a node for the resolved configuration
func NewNode(cfg config.Config) *Node {
	return &Node{
		Config:   cfg,
		Stats:    NewStats(cfg),
		shutdown: make(chan struct{}),
	}
}

// Shutdown requests the node to stop. Only the first call is recorded.
func (n *Node) Shutdown(reason string) {
	n.shutdownOnce.Do(func() {
		n.reasonMux.Lock()
		n.reason = reason
		n.reasonMux.Unlock()
		log.Info("Shutting down: ", reason)
		close(n.shutdown)
	})
}

// ShutdownRequested is closed once Shutdown was called
func (n *Node) ShutdownRequested() <-chan struct{} {
	return n.shutdown
}

// ShutdownReason returns the reason given to the first Shutdown call
func (n *Node) ShutdownReason() string {
	n.reasonMux.Lock()
	defer n.reasonMux.Unlock()
	return n.reason
}
