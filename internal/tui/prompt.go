package tui

import (
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrCancelled is returned when the user aborts a prompt.
var ErrCancelled = errors.New("cancelled")

// Field is one value asked for by Prompt. Fields that already have a Value
// are not asked for.
type Field struct {
	Label    string
	Value    string
	Optional bool
}

type promptModel struct {
	fields    []Field
	current   int
	input     textinput.Model
	err       string
	cancelled bool
	done      bool
}

func newPromptModel(fields []Field) promptModel {
	m := promptModel{fields: append([]Field(nil), fields...), input: textinput.New()}
	m.input.Focus()
	m.current = -1
	m.advance()
	return m
}

// advance moves to the next field without a value.
func (m *promptModel) advance() {
	for m.current++; m.current < len(m.fields); m.current++ {
		if m.fields[m.current].Value == "" {
			m.input.SetValue("")
			m.input.Prompt = m.fields[m.current].Label + ": "
			m.err = ""
			return
		}
	}
	m.done = true
}

func (m promptModel) Init() tea.Cmd {
	if m.done {
		return tea.Quit
	}
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.done {
		return m, tea.Quit
	}
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			m.cancelled = true
			return m, tea.Quit
		case tea.KeyEnter:
			v := strings.TrimSpace(m.input.Value())
			f := &m.fields[m.current]
			if v == "" && !f.Optional {
				m.err = f.Label + " is required"
				return m, nil
			}
			f.Value = v
			m.advance()
			if m.done {
				return m, tea.Quit
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	if m.done || m.cancelled {
		return ""
	}
	s := m.input.View() + "\n"
	if m.err != "" {
		s += emptyStyle.Render(m.err) + "\n"
	}
	return s
}

func (m promptModel) values() []string {
	out := make([]string, len(m.fields))
	for i, f := range m.fields {
		out[i] = f.Value
	}
	return out
}

// Prompt asks for every field without a value and returns all values in
// field order.
func Prompt(in io.Reader, out io.Writer, fields []Field) ([]string, error) {
	m := newPromptModel(fields)
	if m.done {
		return m.values(), nil
	}
	final, err := tea.NewProgram(m, tea.WithInput(in), tea.WithOutput(out)).Run()
	if err != nil {
		return nil, err
	}
	pm := final.(promptModel)
	if pm.cancelled || !pm.done {
		return nil, ErrCancelled
	}
	return pm.values(), nil
}
