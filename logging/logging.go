// Package logging sets up the node logger: a rotating log file plus a console
// sink which only forwards output while verbose mode is switched on.
package logging

import (
	"io"
	"sync"
	"sync/atomic"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Verbosity bits. A verbosity value is any combination of them, 0 disables logging.
const (
	Trace = 1 << iota
	Info
	Warn
	Error
)

// DefaultVerbosity logs info, warnings and errors
const DefaultVerbosity = Info | Warn | Error

// DefaultLogFile is the log file name used by the node
const DefaultLogFile = "ixian.log"

func levelBit(l log.Level) int {
	switch l {
	case log.TraceLevel, log.DebugLevel:
		return Trace
	case log.InfoLevel:
		return Info
	case log.WarnLevel:
		return Warn
	}
	return Error
}

// MaskFormatter formats only entries whose level bit is set in Mask.
// Fatal and panic entries are always written.
type MaskFormatter struct {
	Mask      int
	Formatter log.Formatter
}

// Format implements logrus.Formatter
func (f *MaskFormatter) Format(entry *log.Entry) ([]byte, error) {
	if entry.Level > log.FatalLevel && f.Mask&levelBit(entry.Level) == 0 {
		return nil, nil
	}
	return f.Formatter.Format(entry)
}

// Console forwards log output to the terminal while verbose output is on.
// The status monitor reads the same switch and stays silent while it is set,
// so log lines and the dashboard never share the terminal.
type Console struct {
	mu      sync.Mutex
	out     io.Writer
	verbose atomic.Bool
}

// NewConsole returns a console sink writing to out
func NewConsole(out io.Writer, verbose bool) *Console {
	c := &Console{out: out}
	c.verbose.Store(verbose)
	return c
}

// Write implements io.Writer. Output is discarded while verbose mode is off.
func (c *Console) Write(p []byte) (int, error) {
	if len(p) == 0 || !c.verbose.Load() {
		return len(p), nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.out.Write(p)
}

// Verbose reports whether log output currently goes to the terminal
func (c *Console) Verbose() bool {
	return c.verbose.Load()
}

// SetVerbose switches console log output on or off
func (c *Console) SetVerbose(v bool) {
	c.verbose.Store(v)
}

// Toggle flips verbose mode and returns the new value
func (c *Console) Toggle() bool {
	for {
		old := c.verbose.Load()
		if c.verbose.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Options configures Setup
type Options struct {
	// File is the log file path, empty disables file logging.
	File string
	// MaxSize is the size in megabytes at which the log file is rotated.
	MaxSize int
	// MaxBackups is the number of rotated files kept.
	MaxBackups int
	Verbosity  int
	Console    *Console
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup points logger at the rotating log file and the console sink.
// The returned closer releases the log file.
func Setup(logger *log.Logger, o Options) io.Closer {
	var writers []io.Writer
	var closer io.Closer = nopCloser{}

	if o.File != "" {
		file := &lumberjack.Logger{
			Filename:   o.File,
			MaxSize:    o.MaxSize,
			MaxBackups: o.MaxBackups,
		}
		writers = append(writers, file)
		closer = file
	}
	if o.Console != nil {
		writers = append(writers, o.Console)
	}

	logger.SetOutput(io.MultiWriter(writers...))
	logger.SetLevel(log.TraceLevel)
	logger.SetFormatter(&MaskFormatter{
		Mask: o.Verbosity,
		Formatter: &log.TextFormatter{
			FullTimestamp: true,
			DisableColors: true,
		},
	})
	return closer
}
