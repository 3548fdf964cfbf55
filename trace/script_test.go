package trace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fibScript = `
source:
  - "a, b = 0, 1"
  - "while a < 10:"
  - "    print(a)"
  - "    a, b = b, a + b"
steps:
  - line: 1
    exec: {count: 1, current: "2ms", average: "2ms", total: "2ms"}
    variable:
      name: a
      action: assigned
      color: green
      value: ["0"]
      others: ["b:", "  1"]
  - line: 3
    output: ["0"]
  - line: 4
    variable:
      name: a
      action: mutated
      color: "#ff8800"
      value: ["1"]
      others: ["b:", "  1"]
      ref: b
`

func TestParse(t *testing.T) {
	s, err := Parse(strings.NewReader(fibScript))
	require.NoError(t, err)

	require.Len(t, s.Source, 4)
	assert.Equal(t, "while a < 10:", s.Source[1])
	require.Len(t, s.Steps, 3)

	first := s.Steps[0]
	assert.Equal(t, 1, first.Line)
	require.NotNil(t, first.Exec)
	assert.Equal(t, 1, first.Exec.Count)
	assert.Equal(t, "2ms", first.Exec.Total)
	require.NotNil(t, first.Variable)
	assert.Equal(t, "assigned", first.Variable.Action)
	assert.Equal(t, []string{"b:", "  1"}, first.Variable.Others)

	assert.Nil(t, s.Steps[1].Variable)
	assert.Equal(t, []string{"0"}, s.Steps[1].Output)
	assert.Equal(t, "b", s.Steps[2].Variable.Ref)
}

func TestParseUnknownField(t *testing.T) {
	_, err := Parse(strings.NewReader("source: [x]\nstepz: []\n"))
	assert.Error(t, err)
}

func TestParseEmpty(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrNoSource)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		script Script
		index  int
	}{
		{"line zero", Script{Source: []string{"x"}, Steps: []Step{{Line: 0}}}, 0},
		{"line past end", Script{Source: []string{"x", "y"}, Steps: []Step{{Line: 1}, {Line: 3}}}, 1},
		{"unnamed variable", Script{Source: []string{"x"}, Steps: []Step{{Line: 1, Variable: &Variable{}}}}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var serr *StepError
			require.ErrorAs(t, tt.script.Validate(), &serr)
			assert.Equal(t, tt.index, serr.Index)
		})
	}

	assert.ErrorIs(t, (&Script{}).Validate(), ErrNoSource)
	assert.NoError(t, (&Script{Source: []string{"x"}}).Validate())
}

func TestParseFileSourceFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "prog.py"), []byte("x = 1\r\nprint(x)\n"), 0o600))
	script := "source_file: prog.py\nsteps:\n  - line: 2\n    output: [\"1\"]\n"
	path := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o600))

	s, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"x = 1", "print(x)"}, s.Source)
	assert.Equal(t, 2, s.Steps[0].Line)
}

func TestParseFileMissingSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("source_file: nope.py\n"), 0o600))

	_, err := ParseFile(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), path)
}
