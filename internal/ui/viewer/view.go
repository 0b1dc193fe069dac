package viewer

import (
	"fmt"
	"strings"

	runewidth "github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"

	"github.com/zjrosen/folio/internal/styles"
)

// Fold gutter markers.
const (
	markerOpen   = "▾"
	markerClosed = "▸"
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}
	return m.vp.View() + "\n" + m.statusBar()
}

// refreshContent re-renders the visible lines into the viewport.
func (m *Model) refreshContent() {
	if !m.ready {
		return
	}

	visible := m.visibleLines()
	buf := m.hl.Buffer()
	rec := m.hl.Recorder()

	numWidth := len(fmt.Sprintf("%d", buf.LineCount()))

	var sb strings.Builder
	for i, line := range visible {
		if i > 0 {
			sb.WriteByte('\n')
		}

		var row strings.Builder

		if m.showLineNumbers {
			num := fmt.Sprintf("%*d", numWidth, line+1)
			if line == m.cursor {
				row.WriteString(styles.CursorLineStyle.Render(num))
			} else {
				row.WriteString(styles.LineNumberStyle.Render(num))
			}
			row.WriteString(strings.Repeat(" ", gutterGap))
		}

		if m.showFoldGutter {
			marker := " "
			if fold := rec.FoldAt(line); fold.Header {
				if m.collapsed[line] {
					marker = markerClosed
				} else {
					marker = markerOpen
				}
			}
			row.WriteString(styles.FoldMarkerStyle.Render(marker))
			row.WriteString(strings.Repeat(" ", gutterGap))
		}

		row.WriteString(m.hl.StyledLine(line))

		sb.WriteString(truncate.String(row.String(), uint(m.vp.Width))) //nolint:gosec // G115: viewport width is non-negative
	}

	m.vp.SetContent(sb.String())
}

// statusBar renders the bottom status line.
func (m Model) statusBar() string {
	buf := m.hl.Buffer()

	right := fmt.Sprintf(" %d/%d ", m.cursor+1, buf.LineCount())
	if m.err != nil {
		right = fmt.Sprintf(" reload failed: %v ", m.err)
	}

	lang := "plain"
	if def := m.hl.Lexer().Language(); def != nil {
		lang = def.Name
	}
	left := fmt.Sprintf(" %s [%s]", m.path, lang)

	pad := m.width - runewidth.StringWidth(left) - runewidth.StringWidth(right)
	if pad < 1 {
		left = truncate.String(left, uint(max(m.width-runewidth.StringWidth(right)-1, 0))) //nolint:gosec // G115: width is clamped non-negative
		pad = max(m.width-runewidth.StringWidth(left)-runewidth.StringWidth(right), 1)
	}

	return styles.StatusBarStyle.Render(left + strings.Repeat(" ", pad) + right)
}
