// Package tui is the terminal launcher: a query line over the ranked view of
// the entry index.
package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kamusis/launchkit/internal/catalog"
	"github.com/kamusis/launchkit/internal/logging"
	"github.com/kamusis/launchkit/internal/search"
)

const defaultWidth = 80

// Launcher starts an entry's command template. *launch.Spawner satisfies it.
type Launcher interface {
	Spawn(template string)
}

// Options configures the launcher model.
type Options struct {
	MaxRows int
	Logger  *slog.Logger
}

// Model is the Bubble Tea model of the launcher window.
type Model struct {
	index    *catalog.Index
	launcher Launcher
	log      *slog.Logger
	keys     keyMap

	input   textinput.Model
	query   string
	matches []search.Match
	cursor  int
	offset  int
	maxRows int
	width   int

	launchedID string
	quitting   bool
}

// New returns a model showing the whole index with the query focused.
func New(idx *catalog.Index, l Launcher, opts Options) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Search applications"
	ti.Focus()

	if opts.MaxRows <= 0 {
		opts.MaxRows = 12
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	m := Model{
		index:    idx,
		launcher: l,
		log:      opts.Logger,
		keys:     defaultKeys(),
		input:    ti,
		maxRows:  opts.MaxRows,
		width:    defaultWidth,
	}
	m.matches = search.RankMatches(idx, "")
	return m
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.launch):
			return m.launchSelected()
		case key.Matches(msg, m.keys.up):
			m.move(-1)
			return m, nil
		case key.Matches(msg, m.keys.down):
			m.move(1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != m.query {
		m.query = v
		m.matches = search.RankMatches(m.index, v)
		m.cursor, m.offset = 0, 0
	}
	return m, cmd
}

func (m *Model) move(delta int) {
	if len(m.matches) == 0 {
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.matches) {
		m.cursor = len(m.matches) - 1
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.maxRows {
		m.offset = m.cursor - m.maxRows + 1
	}
}

func (m Model) launchSelected() (tea.Model, tea.Cmd) {
	id := m.SelectedID()
	if id == "" {
		return m, nil
	}
	entry, ok := m.index.Lookup(id)
	if !ok {
		m.log.Warn("selected entry vanished", "id", id)
		return m, nil
	}
	m.log.Debug("launch selected", "id", id, "name", entry.Name)
	if m.launcher != nil {
		m.launcher.Spawn(entry.Exec)
	}
	m.launchedID = id
	m.quitting = true
	return m, tea.Quit
}

// SelectedID is the ID of the highlighted entry, or "" when nothing matches.
func (m Model) SelectedID() string {
	if m.cursor < 0 || m.cursor >= len(m.matches) {
		return ""
	}
	return m.matches[m.cursor].Entry.ID
}

// LaunchedID is the ID launched before the model quit, if any.
func (m Model) LaunchedID() string { return m.launchedID }

// Matches returns the current ranked view.
func (m Model) Matches() []search.Match { return m.matches }

// Run shows the launcher until an entry is launched or the user closes it.
func Run(idx *catalog.Index, l Launcher, opts Options) error {
	_, err := tea.NewProgram(New(idx, l, opts), tea.WithAltScreen()).Run()
	return err
}
