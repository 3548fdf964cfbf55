package trace

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/vardbg/vidframe"
)

// Sink receives frames. *vidframe.Renderer implements it.
type Sink interface {
	StartFrame()
	DrawCode(snap vidframe.CodeSnapshot)
	DrawOutput(lines []string)
	DrawExecutionCaption(count int, current, average, total string)
	FinishFrame(vs *vidframe.VariableState) error
	Close(vs *vidframe.VariableState) error
}

var _ Sink = (*vidframe.Renderer)(nil)

// Palette maps action color names to colors.
type Palette map[string]color.Color

// NewPalette returns the named action colors of c.
func NewPalette(c vidframe.Colors) Palette {
	return Palette{
		"red":   c.Red,
		"green": c.Green,
		"blue":  c.Blue,
	}
}

// Color resolves name as a palette entry first and as a hex color otherwise.
// An empty name resolves to nil.
func (p Palette) Color(name string) (color.Color, error) {
	if name == "" {
		return nil, nil
	}
	if c, ok := p[strings.ToLower(name)]; ok && c != nil {
		return c, nil
	}
	c, err := vidframe.Hex(name)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// States converts the variables of every step. Entries for steps without a
// variable are nil.
func (s *Script) States(p Palette) ([]*vidframe.VariableState, error) {
	states := make([]*vidframe.VariableState, len(s.Steps))
	for i, st := range s.Steps {
		v := st.Variable
		if v == nil {
			continue
		}
		col, err := p.Color(v.Color)
		if err != nil {
			return nil, &StepError{Index: i, Reason: fmt.Sprintf("color: %v", err)}
		}
		states[i] = &vidframe.VariableState{
			Name:           v.Name,
			Action:         v.Action,
			Color:          col,
			TextLines:      v.Value,
			OtherTextLines: v.Others,
			Ref:            v.Ref,
		}
	}
	return states, nil
}

// Play renders one frame per step into sink. The sink is closed on every
// return path; the last step's frame is finished by Close. Colors are
// resolved before the first frame is started, so a bad color draws nothing.
func Play(sink Sink, s *Script, p Palette) error {
	states, err := s.States(p)
	if err != nil {
		return errors.Join(err, sink.Close(nil))
	}
	if len(s.Steps) == 0 {
		return sink.Close(nil)
	}

	var output []string
	last := len(s.Steps) - 1
	for i, st := range s.Steps {
		sink.StartFrame()
		sink.DrawCode(vidframe.CodeSnapshot{Lines: s.Source, Current: st.Line})

		output = append(output, st.Output...)
		sink.DrawOutput(output)

		if e := st.Exec; e != nil {
			sink.DrawExecutionCaption(e.Count, e.Current, e.Average, e.Total)
		}

		if i == last {
			return sink.Close(states[i])
		}
		if err := sink.FinishFrame(states[i]); err != nil {
			return errors.Join(fmt.Errorf("trace: step %d: %w", i, err), sink.Close(nil))
		}
	}
	return nil
}
