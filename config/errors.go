package config

import "fmt"

// Source names where a configuration value came from
type Source string

const (
	SourceFile Source = "config file"
	SourceCLI  Source = "command line"
)

// ParseError reports a value that could not be parsed. It aborts resolution.
type ParseError struct {
	Source Source
	// Path and Line locate file values; both are empty for command line values.
	Path  string
	Line  int
	Key   string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Source == SourceFile {
		return fmt.Sprintf("%s %s:%d: invalid value %q for %q: %v", e.Source, e.Path, e.Line, e.Value, e.Key, e.Err)
	}
	return fmt.Sprintf("%s: invalid value %q for %q: %v", e.Source, e.Value, e.Key, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
