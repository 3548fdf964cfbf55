// Package trace replays recorded program executions into a frame renderer.
//
// A script is a YAML document holding the program source and one step per
// executed line:
//
//	source_file: fib.py
//	steps:
//	  - line: 1
//	    exec: {count: 1, current: "1ms", average: "1ms", total: "1ms"}
//	    variable:
//	      name: a
//	      action: assigned
//	      color: green
//	      value: ["0"]
//	  - line: 2
//	    output: ["0"]
package trace

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNoSource is returned for a script without program source.
var ErrNoSource = errors.New("trace: script has no source")

// Script is a recorded execution.
type Script struct {
	// Source is the program text, one entry per line. When empty,
	// SourceFile is read instead.
	Source     []string `yaml:"source"`
	SourceFile string   `yaml:"source_file"`
	Steps      []Step   `yaml:"steps"`
}

// Step is one executed line; it becomes one frame.
type Step struct {
	// Line is the 1-indexed line being executed.
	Line int `yaml:"line"`
	// Output holds the lines printed by this step. They are appended to the
	// output of all previous steps.
	Output   []string  `yaml:"output"`
	Exec     *Exec     `yaml:"exec"`
	Variable *Variable `yaml:"variable"`
}

// Exec holds execution statistics of the current line.
type Exec struct {
	Count   int    `yaml:"count"`
	Current string `yaml:"current"`
	Average string `yaml:"average"`
	Total   string `yaml:"total"`
}

// Variable is the most recently touched variable.
type Variable struct {
	Name   string `yaml:"name"`
	Action string `yaml:"action"`
	// Color is a palette name or a hex color.
	Color  string   `yaml:"color"`
	Value  []string `yaml:"value"`
	Others []string `yaml:"others"`
	Ref    string   `yaml:"ref"`
}

// StepError reports an invalid step.
type StepError struct {
	Index  int
	Reason string
}

func (e *StepError) Error() string {
	return fmt.Sprintf("trace: step %d: %s", e.Index, e.Reason)
}

// Parse reads a script from r. Unknown fields are rejected. A relative
// source_file is resolved against the working directory.
func Parse(r io.Reader) (*Script, error) {
	return parse(r, "")
}

// ParseFile reads the script at path. A relative source_file is resolved
// against the directory of path.
func ParseFile(path string) (*Script, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("trace: %w", err)
	}
	defer f.Close()

	s, err := parse(f, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func parse(r io.Reader, dir string) (*Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Script
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoSource
		}
		return nil, fmt.Errorf("trace: %w", err)
	}

	if len(s.Source) == 0 && s.SourceFile != "" {
		path := s.SourceFile
		if !filepath.IsAbs(path) && dir != "" {
			path = filepath.Join(dir, path)
		}
		data, err := os.ReadFile(path) //nolint:gosec // referenced by the script
		if err != nil {
			return nil, fmt.Errorf("trace: source: %w", err)
		}
		s.Source = splitLines(data)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks that the script has source and that every step points at
// a line of it.
func (s *Script) Validate() error {
	if len(s.Source) == 0 {
		return ErrNoSource
	}
	for i, st := range s.Steps {
		if st.Line < 1 || st.Line > len(s.Source) {
			return &StepError{Index: i, Reason: fmt.Sprintf("line %d outside source (1-%d)", st.Line, len(s.Source))}
		}
		if v := st.Variable; v != nil && v.Name == "" {
			return &StepError{Index: i, Reason: "variable without name"}
		}
	}
	return nil
}

func splitLines(data []byte) []string {
	data = bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))
	text := strings.TrimSuffix(string(data), "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
