package logging

import (
	"io"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Buffer keeps the entries logged before Setup, so they still reach the
// log file and go through the verbosity mask.
type Buffer struct {
	mu      sync.Mutex
	entries []log.Entry
	hooks   log.LevelHooks
}

// Capture makes logger record entries instead of writing them until Replay is called
func Capture(logger *log.Logger) *Buffer {
	b := &Buffer{}
	b.hooks = logger.ReplaceHooks(log.LevelHooks{})
	logger.AddHook(b)
	logger.SetOutput(io.Discard)
	logger.SetLevel(log.TraceLevel)
	return b
}

func (b *Buffer) Levels() []log.Level {
	return log.AllLevels
}

func (b *Buffer) Fire(e *log.Entry) error {
	b.mu.Lock()
	b.entries = append(b.entries, *e)
	b.mu.Unlock()
	return nil
}

// Replay restores the hooks logger had before Capture and logs the recorded
// entries through it, keeping their time, level and fields.
func (b *Buffer) Replay(logger *log.Logger) {
	logger.ReplaceHooks(b.hooks)

	b.mu.Lock()
	entries := b.entries
	b.entries = nil
	b.mu.Unlock()

	for _, e := range entries {
		logger.WithFields(e.Data).WithTime(e.Time).Log(e.Level, e.Message)
	}
}
