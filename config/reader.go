package config

import (
	"bufio"
	"io"
	"strings"
)

// CommentMarker starts a comment line in the config file
const CommentMarker = ";"

// Entry is one key/value directive of a config file
type Entry struct {
	Line  int
	Key   string
	Value string
}

// ReadEntries parses config file directives in file order.
// Lines are split on the first '=' and both sides trimmed. Comments, blank
// lines and lines without '=' or without a key are skipped.
func ReadEntries(r io.Reader) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if lineNo == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}

		idx := strings.Index(line, "=")
		if idx < 0 {
			continue
		}
		key := strings.TrimSpace(line[:idx])
		if key == "" || strings.HasPrefix(key, CommentMarker) {
			continue
		}
		entries = append(entries, Entry{
			Line:  lineNo,
			Key:   key,
			Value: strings.TrimSpace(line[idx+1:]),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
