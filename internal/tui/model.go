// Package tui is the interactive keymap browser: a searchable,
// scrollable view over the parsed keymap that refilters on every
// keystroke.
package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/apeview/apeview/internal/config"
	"github.com/apeview/apeview/internal/fuzzy"
	"github.com/apeview/apeview/internal/keymap"
	"github.com/apeview/apeview/internal/reporter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type viewState int

const (
	stateLoading viewState = iota
	stateReady
	stateError
)

// keymapLoadedMsg delivers a completely built Keymap. The read and the
// parse both happen inside the command, so the model only ever swaps in
// finished snapshots.
type keymapLoadedMsg struct {
	km *keymap.Keymap
}

type keymapErrMsg struct {
	err error
}

// Model is the top-level Bubble Tea model for the keymap browser.
type Model struct {
	cfg    *config.Config
	path   string
	styles styles

	state   viewState
	loadErr error

	// Data (immutable between loads)
	km    *keymap.Keymap
	binds []keymap.Keybind

	// UI state
	results   []fuzzy.Result
	input     textinput.Model
	viewport  viewport.Model
	searching bool
	query     string
	cursor    int
	width     int
	height    int
	statusMsg string
	sized     bool
}

// New creates the browser model for the given annotated config file.
func New(cfg *config.Config, path string) Model {
	ti := textinput.New()
	ti.Placeholder = "type to filter..."
	ti.CharLimit = 64
	ti.Prompt = ""

	return Model{
		cfg:    cfg,
		path:   path,
		styles: newStyles(cfg),
		state:  stateLoading,
		input:  ti,
		width:  80,
		height: 24,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return loadKeymap(m.path, m.cfg.ShowComments)
}

// loadKeymap reads and parses the annotated config file off the update
// loop and hands back the finished snapshot.
func loadKeymap(path string, keepComments bool) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return keymapErrMsg{err: fmt.Errorf("failed to read %s: %w", path, err)}
		}
		km := keymap.ParseWith(string(data), keymap.Options{KeepComments: keepComments})
		return keymapLoadedMsg{km: km}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeViewport()
		m.refilter()
		return m, nil

	case keymapLoadedMsg:
		m.state = stateReady
		m.km = msg.km
		m.binds = msg.km.Flatten()
		m.cursor = 0
		m.refilter()
		m.statusMsg = fmt.Sprintf("Loaded %d keybinds", msg.km.KeybindCount())
		return m, nil

	case keymapErrMsg:
		m.state = stateError
		m.loadErr = msg.err
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		return m.handleSearchKey(msg)
	}
	return m.handleNormalKey(msg)
}

func (m Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Search):
		if m.state != stateReady {
			return m, nil
		}
		m.searching = true
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, keys.Reload):
		if m.state == stateLoading {
			return m, nil
		}
		m.statusMsg = "Reloading..."
		return m, loadKeymap(m.path, m.cfg.ShowComments)

	case key.Matches(msg, keys.Clear):
		m.query = ""
		m.input.SetValue("")
		m.statusMsg = ""
		m.cursor = 0
		m.refilter()
		return m, nil

	case key.Matches(msg, keys.Up):
		m.moveCursor(-1)
		return m, nil

	case key.Matches(msg, keys.Down):
		m.moveCursor(1)
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.input.Blur()
		return m, nil
	case "esc":
		m.searching = false
		m.input.Blur()
		m.input.SetValue("")
		m.query = ""
		m.cursor = 0
		m.refilter()
		return m, nil
	case "up", "down":
		if msg.String() == "up" {
			m.moveCursor(-1)
		} else {
			m.moveCursor(1)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	// Refilter on every keystroke.
	if v := m.input.Value(); v != m.query {
		m.query = v
		m.cursor = 0
		m.refilter()
	}
	return m, cmd
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.results) {
		m.cursor = len(m.results) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.syncViewport()
}

// refilter recomputes the result list for the current query and
// rebuilds the viewport content.
func (m *Model) refilter() {
	m.results = fuzzy.Search(m.query, m.binds)
	if m.cursor >= len(m.results) {
		m.cursor = 0
	}
	m.syncViewport()
}

func (m *Model) resizeViewport() {
	h := m.height - headerHeight - 2 // search line + footer
	if h < 3 {
		h = 3
	}
	m.viewport.Width = m.width
	m.viewport.Height = h
	m.sized = true
}

// syncViewport re-renders the list and keeps the cursor line visible.
func (m *Model) syncViewport() {
	if !m.sized {
		m.resizeViewport()
	}
	lines, cursorLine := renderList(m.results, m.query == "", m.cursor, m.styles)
	m.viewport.SetContent(strings.Join(lines, "\n"))

	if cursorLine < m.viewport.YOffset {
		m.viewport.SetYOffset(cursorLine)
	} else if cursorLine >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(cursorLine - m.viewport.Height + 1)
	}
}

// View implements tea.Model.
func (m Model) View() string {
	switch m.state {
	case stateLoading:
		return m.styles.Footer.Render("▪▫▫ Reading " + m.path)
	case stateError:
		return m.styles.Error.Render(m.loadErr.Error()) + "\n\n" +
			m.styles.Footer.Render("r to retry, q to quit")
	}

	var b strings.Builder

	title := m.km.Title
	if title == "" {
		title = reporter.DefaultTitle
	}
	b.WriteString(renderHeader(title, m.km.SectionCount(), len(m.binds), len(m.results), m.width, m.styles))
	b.WriteString("\n")

	if m.searching || m.query != "" {
		b.WriteString(m.styles.SearchPrompt.Render("/ "))
		b.WriteString(m.input.View())
	}
	b.WriteString("\n")

	if len(m.results) == 0 {
		b.WriteString(m.styles.Footer.Render("No matching keybinds"))
		b.WriteString(strings.Repeat("\n", m.viewport.Height))
	} else {
		b.WriteString(m.viewport.View())
		b.WriteString("\n")
	}

	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderFooter() string {
	left := "q:quit  /:search  r:reload  esc:clear"
	right := fmt.Sprintf("%d/%d keybinds", len(m.results), len(m.binds))
	if m.statusMsg != "" {
		right = m.statusMsg + "  " + right
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return m.styles.Footer.Render(left + strings.Repeat(" ", gap) + right)
}

// Run starts the Bubble Tea program. Called from the root command.
func Run(cfg *config.Config, path string) error {
	m := New(cfg, path)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
