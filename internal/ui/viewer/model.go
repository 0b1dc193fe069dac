// Package viewer implements the folio TUI: a read-only source viewer with
// syntax highlighting and code folding.
package viewer

import (
	"os"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/folio/internal/keys"
	"github.com/zjrosen/folio/internal/log"
	"github.com/zjrosen/folio/internal/render"
)

// Layout constants
const (
	statusBarHeight = 1
	gutterGap       = 1 // space between gutter and content
)

// fileChangedMsg signals that the watched file was modified on disk.
type fileChangedMsg struct{}

// fileReloadedMsg carries freshly read file contents.
type fileReloadedMsg struct {
	text string
	err  error
}

// Model is the viewer's bubbletea model.
type Model struct {
	vp   viewport.Model
	hl   *render.Highlighter
	keys keys.KeyMap
	path string

	cursor    int          // cursor line (buffer line index)
	collapsed map[int]bool // fold header lines currently collapsed

	showLineNumbers bool
	showFoldGutter  bool

	width, height int
	ready         bool
	err           error

	watch <-chan struct{}
}

// Options configures the viewer.
type Options struct {
	ShowLineNumbers bool
	ShowFoldGutter  bool
	Watch           <-chan struct{}
}

// New creates a viewer for a highlighted buffer.
func New(hl *render.Highlighter, path string, opts Options) Model {
	return Model{
		hl:              hl,
		keys:            keys.DefaultKeyMap(),
		path:            path,
		collapsed:       make(map[int]bool),
		showLineNumbers: opts.ShowLineNumbers,
		showFoldGutter:  opts.ShowFoldGutter,
		watch:           opts.Watch,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.watch != nil {
		return waitForChange(m.watch)
	}
	return nil
}

// waitForChange delivers the next watcher signal as a message.
func waitForChange(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return fileChangedMsg{}
	}
}

// reloadFile reads the viewed file from disk.
func (m Model) reloadFile() tea.Cmd {
	path := m.path
	return func() tea.Msg {
		data, err := os.ReadFile(path) //nolint:gosec // G304: path is the user-requested file
		if err != nil {
			return fileReloadedMsg{err: err}
		}
		return fileReloadedMsg{text: string(data)}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.vp = viewport.New(msg.Width, msg.Height-statusBarHeight)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = msg.Height - statusBarHeight
		}
		m.refreshContent()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case fileChangedMsg:
		log.Debug(log.CatUI, "file changed on disk", "path", m.path)
		return m, tea.Batch(m.reloadFile(), waitForChange(m.watch))

	case fileReloadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.hl.Reload(msg.text)
		m.clampCursor()
		m.refreshContent()
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-m.vp.Height / 2)
	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(m.vp.Height / 2)
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
		m.scrollToCursor()
	case key.Matches(msg, m.keys.Bottom):
		m.cursor = m.hl.Buffer().LineCount() - 1
		m.scrollToCursor()

	case key.Matches(msg, m.keys.ToggleFold):
		m.toggleFold(m.cursor)
		m.refreshContent()
	case key.Matches(msg, m.keys.OpenFolds):
		m.collapsed = make(map[int]bool)
		m.refreshContent()
	case key.Matches(msg, m.keys.CloseFolds):
		m.closeAllFolds()
		m.refreshContent()

	case key.Matches(msg, m.keys.Reload):
		return m, m.reloadFile()
	}

	return m, nil
}

// moveCursor moves the cursor by delta visible lines.
func (m *Model) moveCursor(delta int) {
	visible := m.visibleLines()
	if len(visible) == 0 {
		return
	}

	idx := visibleIndex(visible, m.cursor)
	idx += delta
	if idx < 0 {
		idx = 0
	}
	if idx >= len(visible) {
		idx = len(visible) - 1
	}
	m.cursor = visible[idx]
	m.scrollToCursor()
}

func (m *Model) clampCursor() {
	if count := m.hl.Buffer().LineCount(); m.cursor >= count {
		m.cursor = count - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// scrollToCursor keeps the cursor's visible row inside the viewport, then
// re-renders content (the cursor line is styled differently).
func (m *Model) scrollToCursor() {
	visible := m.visibleLines()
	row := visibleIndex(visible, m.cursor)
	if row < m.vp.YOffset {
		m.vp.SetYOffset(row)
	} else if row >= m.vp.YOffset+m.vp.Height {
		m.vp.SetYOffset(row - m.vp.Height + 1)
	}
	m.refreshContent()
}

// visibleIndex returns the index of line in visible, or the nearest earlier
// visible line when line itself is hidden.
func visibleIndex(visible []int, line int) int {
	best := 0
	for i, ln := range visible {
		if ln > line {
			break
		}
		best = i
	}
	return best
}
