package main

import (
	"bufio"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/peterh/liner"
)

const keyEscape = 0x1b

// Terminal switches stdin between the mode it was started in and the raw
// mode used to read single key presses.
type Terminal struct {
	*liner.State
	supported  bool
	normalMode liner.ModeApplier
	rawMode    liner.ModeApplier
}

func newTerminal() *Terminal {
	t := new(Terminal)
	normalMode, _ := liner.TerminalMode()
	t.State = liner.NewLiner()
	rawMode, err := liner.TerminalMode()
	if err != nil || !liner.TerminalSupported() {
		t.supported = false
	} else {
		t.supported = true
		t.normalMode = normalMode
		t.rawMode = rawMode
		normalMode.ApplyMode()
	}
	t.SetCtrlCAborts(true)
	return t
}

// ListenKeys reads key presses from stdin until Esc is pressed or stdin is
// closed. V calls toggle, Esc calls quit.
func (t *Terminal) ListenKeys(toggle func() bool, quit func()) {
	if !t.supported {
		log.Debug("Terminal is unsupported, console keys are disabled")
		return
	}
	t.rawMode.ApplyMode()
	defer t.normalMode.ApplyMode()

	if err := readKeys(bufio.NewReader(os.Stdin), toggle, quit); err != nil && err != io.EOF {
		log.WithError(err).Warn("Unable to read console keys")
	}
}

// Restore puts the terminal back into the mode it was started in
func (t *Terminal) Restore() {
	if t.supported {
		t.normalMode.ApplyMode()
	}
	t.State.Close()
}

func readKeys(r *bufio.Reader, toggle func() bool, quit func()) error {
	for {
		b, err := r.ReadByte()
		if err != nil {
			return err
		}
		switch b {
		case 'v', 'V':
			if toggle() {
				log.Info("Verbose console output enabled")
			} else {
				log.Info("Verbose console output disabled")
			}
		case keyEscape:
			// a lone escape is the Esc key, anything following it in the
			// same read belongs to a sequence such as an arrow key
			if r.Buffered() == 0 {
				quit()
				return nil
			}
			skipEscapeSequence(r)
		}
	}
}

func skipEscapeSequence(r *bufio.Reader) {
	b, err := r.ReadByte()
	if err != nil {
		return
	}
	switch b {
	case '[':
		// CSI: parameters and intermediates up to a final byte in 0x40-0x7e
		for {
			c, err := r.ReadByte()
			if err != nil || (c >= 0x40 && c <= 0x7e) {
				return
			}
		}
	case 'O':
		r.ReadByte()
	}
}
