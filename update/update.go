// Package update checks once whether a newer seeder release is published.
package update

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// DefaultURL serves a text file whose first line is the latest seeder version
const DefaultURL = "https://www.ixian.io/seeder-update.txt"

// State of an update check
type State int

const (
	Pending State = iota
	Ready
	Failed
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Checker fetches the published version. It leaves the Pending state exactly
// once, to Ready or Failed, and stays there.
type Checker struct {
	url    string
	client *http.Client

	once    sync.Once
	mu      sync.RWMutex
	state   State
	version string
}

// NewChecker creates a checker for url. A nil client uses a client with a 30s timeout.
func NewChecker(url string, client *http.Client) *Checker {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Checker{url: url, client: client}
}

// Start runs the check in the background. Only the first call has an effect.
func (c *Checker) Start(ctx context.Context) {
	c.once.Do(func() {
		go c.check(ctx)
	})
}

// Status returns the state of the check and, when Ready, the published version
func (c *Checker) Status() (State, string) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state, c.version
}

func (c *Checker) check(ctx context.Context) {
	version, err := c.fetch(ctx)
	if err != nil {
		log.WithError(err).Debug("Update check failed")
		c.settle(Failed, "")
		return
	}
	log.Debug("Latest seeder version: ", version)
	c.settle(Ready, version)
}

func (c *Checker) settle(state State, version string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Pending {
		return
	}
	c.state = state
	c.version = version
}

func (c *Checker) fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return "", err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status fetching %s: %s", c.url, resp.Status)
	}

	scanner := bufio.NewScanner(io.LimitReader(resp.Body, 4096))
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			return line, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", errors.New("empty version file")
}
