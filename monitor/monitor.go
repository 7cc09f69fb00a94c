// Package monitor draws the seeder status dashboard on the terminal.
//
// A Monitor owns one goroutine which polls the node status and the update
// checker every interval and redraws a fixed layout. Stopping is cooperative:
// Stop only sets a flag, which the loop observes before and after each frame,
// so the loop ends within one interval of the call.
package monitor

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	log "github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/ixian-platform/seeder/update"
)

const (
	// DefaultInterval is the time between two frames
	DefaultInterval = 2 * time.Second

	// every clearEvery-th frame clears the whole screen instead of drawing over the last one
	clearEvery = 6
)

var (
	ErrAlreadyRunning = errors.New("status monitor is already running")
	ErrStopped        = errors.New("status monitor was stopped")
)

// Snapshot is the node state shown on the dashboard
type Snapshot struct {
	OutgoingConnections int
	IncomingConnections int
	Presences           int
	// LastBlockTime is the unix time of the last received block header
	LastBlockTime int64
	Connectable   bool
	ServerRunning bool
	PublicPort    int
	// PublicAddress is host:port, empty while the public IP is unknown
	PublicAddress string
}

// StatusProvider reports the current node state. It is called from the
// monitor goroutine and must be safe for concurrent use.
type StatusProvider interface {
	Snapshot() (Snapshot, error)
}

// UpdateChecker reports the result of the release check
type UpdateChecker interface {
	Status() (update.State, string)
}

// VerboseSource tells whether log output currently owns the terminal
type VerboseSource interface {
	Verbose() bool
}

// State of a Monitor
type State int32

const (
	NotStarted State = iota
	Running
	Stopped
)

// Options configures a Monitor
type Options struct {
	Out      io.Writer
	Provider StatusProvider
	Updates  UpdateChecker
	Verbose  VerboseSource

	Version  string
	APIPort  int
	Interval time.Duration
	Now      func() time.Time
}

// Monitor renders the status dashboard
type Monitor struct {
	opts     Options
	renderer *lipgloss.Renderer
	styles   styles

	state atomic.Int32
	done  chan struct{}

	// owned by the loop goroutine
	startTime    time.Time
	cycle        int
	disabled     bool
	cursorHidden bool
}

// New creates a monitor. Out defaults to stdout and Interval to DefaultInterval.
func New(opts Options) *Monitor {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	r := lipgloss.NewRenderer(opts.Out)
	return &Monitor{
		opts:     opts,
		renderer: r,
		styles:   newStyles(r),
		done:     make(chan struct{}),
		disabled: !isTerminal(opts.Out),
	}
}

// State returns the lifecycle state
func (m *Monitor) State() State {
	return State(m.state.Load())
}

// Start launches the polling goroutine
func (m *Monitor) Start() error {
	if !m.state.CompareAndSwap(int32(NotStarted), int32(Running)) {
		if m.State() == Running {
			return ErrAlreadyRunning
		}
		return ErrStopped
	}
	m.startTime = m.opts.Now()
	if m.disabled {
		log.Warn("Output is not a terminal, status console disabled")
	}
	go m.loop()
	return nil
}

// Stop asks the polling goroutine to finish. It does not wait; Done is
// closed once the goroutine has returned. Stop before Start does nothing.
func (m *Monitor) Stop() {
	m.state.CompareAndSwap(int32(Running), int32(Stopped))
}

// Done is closed when the polling goroutine exits
func (m *Monitor) Done() <-chan struct{} {
	return m.done
}

func (m *Monitor) running() bool {
	return m.State() == Running
}

func (m *Monitor) loop() {
	defer close(m.done)
	for m.running() {
		m.pollOnce()
		if !m.running() {
			break
		}
		time.Sleep(m.opts.Interval)
	}
	m.showCursor(true)
}

// showCursor shows or hides the terminal cursor if it is not in that state already
func (m *Monitor) showCursor(visible bool) {
	if m.cursorHidden != visible {
		return
	}
	out := termenv.NewOutput(m.opts.Out)
	if visible {
		out.ShowCursor()
	} else {
		out.HideCursor()
	}
	m.cursorHidden = !visible
}

func (m *Monitor) pollOnce() {
	if m.disabled {
		return
	}
	if m.opts.Verbose != nil && m.opts.Verbose.Verbose() {
		// log output owns the terminal, start over with a clean screen afterwards
		m.cycle = 0
		m.showCursor(true)
		return
	}

	full := m.cycle%clearEvery == 0
	m.cycle++

	snap, ok := m.snapshot()
	frame := m.frame(snap, ok, m.availableUpdate(), m.opts.Now())
	if err := m.render(frame, full); err != nil {
		m.disabled = true
		log.WithError(err).Warn("Unable to draw the status console, disabling it")
		return
	}
	m.showCursor(false)
}

// snapshot reads the node state, ok is false when it could not be read
func (m *Monitor) snapshot() (snap Snapshot, ok bool) {
	if m.opts.Provider == nil {
		return Snapshot{}, false
	}
	defer func() {
		if r := recover(); r != nil {
			log.Debug("Status provider panicked: ", r)
			snap, ok = Snapshot{}, false
		}
	}()
	snap, err := m.opts.Provider.Snapshot()
	if err != nil {
		log.WithError(err).Debug("Unable to read node status")
		return Snapshot{}, false
	}
	return snap, true
}

// availableUpdate returns the published version if it is newer than ours
func (m *Monitor) availableUpdate() (version string) {
	if m.opts.Updates == nil {
		return ""
	}
	defer func() {
		if r := recover(); r != nil {
			log.Debug("Update checker panicked: ", r)
			version = ""
		}
	}()
	state, latest := m.opts.Updates.Status()
	if state == update.Ready && latest > m.opts.Version {
		return latest
	}
	return ""
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		// not a file descriptor, e.g. a buffer or pipe wrapper owned by the caller
		return true
	}
	return term.IsTerminal(int(f.Fd()))
}

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	}
	return fmt.Sprintf("state(%d)", int32(s))
}
