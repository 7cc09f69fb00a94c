package main

import (
	"bufio"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadKeys(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		toggles int
		quit    bool
		err     error
	}{
		{"toggle twice then esc", "vV\x1b", 2, true, nil},
		{"arrow keys are not esc", "\x1b[A\x1b[1;5Cv", 1, false, io.EOF},
		{"ss3 sequence", "\x1bOPv", 1, false, io.EOF},
		{"other keys ignored", "abc\r\n", 0, false, io.EOF},
		{"alt key is ignored", "v\x1bv", 1, false, io.EOF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toggles := 0
			quit := false
			err := readKeys(bufio.NewReader(strings.NewReader(tt.input)),
				func() bool { toggles++; return toggles%2 == 1 },
				func() { quit = true })

			assert.Equal(t, tt.err, err)
			assert.Equal(t, tt.toggles, toggles)
			assert.Equal(t, tt.quit, quit)
		})
	}
}
