// Package render drives the lexer over a buffer and turns the recorded
// styles into terminal output.
package render

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/zjrosen/folio/internal/buffer"
	"github.com/zjrosen/folio/internal/cachemanager"
	"github.com/zjrosen/folio/internal/lexer"
	"github.com/zjrosen/folio/internal/log"
	"github.com/zjrosen/folio/internal/styles"
)

// Highlighter restyles a buffer line by line, extending the range while the
// lexer reports an unterminated block comment, and renders styled lines.
type Highlighter struct {
	lx       *lexer.Lexer
	buf      *buffer.Buffer
	rec      *Recorder
	theme    *styles.Theme
	cache    *cachemanager.Cache[string]
	plain    bool
	tabWidth int
}

// NewHighlighter creates a highlighter over a buffer.
func NewHighlighter(lx *lexer.Lexer, buf *buffer.Buffer, theme *styles.Theme) *Highlighter {
	return &Highlighter{
		lx:       lx,
		buf:      buf,
		rec:      NewRecorder(buf.TextLength()),
		theme:    theme,
		cache:    cachemanager.New[string]("styled-lines", cachemanager.DefaultExpiration, cachemanager.DefaultCleanupInterval),
		tabWidth: 4,
	}
}

// SetTabWidth sets how many spaces a tab renders as.
func (h *Highlighter) SetTabWidth(width int) {
	if width > 0 {
		h.tabWidth = width
	}
}

// SetPlain disables ANSI styling in rendered output.
func (h *Highlighter) SetPlain(plain bool) { h.plain = plain }

// Buffer returns the underlying buffer.
func (h *Highlighter) Buffer() *buffer.Buffer { return h.buf }

// Recorder returns the style/fold sink.
func (h *Highlighter) Recorder() *Recorder { return h.rec }

// Lexer returns the underlying lexer.
func (h *Highlighter) Lexer() *lexer.Lexer { return h.lx }

// RestyleAll styles the whole buffer from a clean slate.
func (h *Highlighter) RestyleAll() {
	h.lx.Clear()
	h.rec.Resize(h.buf.TextLength())
	h.Restyle(0, h.buf.LineCount()-1)
}

// Restyle styles lines first through last. Styling continues past last
// while the lexer reports that the next line's leading context changed
// (an unterminated block comment), then fold levels are recomputed from
// first to the end of the buffer.
func (h *Highlighter) Restyle(first, last int) {
	count := h.buf.LineCount()
	if first < 0 {
		first = 0
	}
	if last >= count {
		last = count - 1
	}

	for line := first; line < count; line++ {
		start := h.buf.LineStart(line)
		end := h.buf.LineEnd(line)
		more := h.lx.DoStyling(h.buf, h.rec, start, end)
		if line >= last && !more {
			break
		}
	}

	h.lx.UpdateFolding(h.buf, h.rec, first)
	log.Debug(log.CatRender, "restyled", "first", first, "last", last, "lines", count)
}

// Reload replaces the buffer text and restyles from the first changed line.
func (h *Highlighter) Reload(text string) {
	from, changed := ChangedLine(h.buf.Text(), text)
	h.buf.SetText(text)
	h.rec.Resize(h.buf.TextLength())
	if !changed {
		return
	}
	h.Restyle(from, h.buf.LineCount()-1)
}

// StyledLine renders one line with ANSI styling applied per recorded style
// run. Results are memoized on line content and styles, so unchanged lines
// cost one cache lookup.
func (h *Highlighter) StyledLine(line int) string {
	text := h.buf.Line(line)
	if text == "" {
		return ""
	}
	if h.plain {
		return h.expandTabs(text)
	}

	start := h.buf.LineStart(line)
	key := h.lineKey(line, text, start)
	if cached, ok := h.cache.Get(key); ok {
		return cached
	}

	var sb strings.Builder
	runStart := 0
	current := h.rec.StyleAt(start)
	for i := 1; i <= len(text); i++ {
		var style lexer.Style
		if i < len(text) {
			style = h.rec.StyleAt(start + i)
		}
		if i == len(text) || style != current {
			sb.WriteString(h.theme.For(current).Render(h.expandTabs(text[runStart:i])))
			runStart = i
			current = style
		}
	}

	out := sb.String()
	h.cache.Set(key, out)
	return out
}

// expandTabs replaces tabs with spaces. Expansion happens per style run, so
// recorded style positions keep indexing the original bytes.
func (h *Highlighter) expandTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", h.tabWidth))
}

// lineKey derives a cache key from the line text and its recorded styles.
func (h *Highlighter) lineKey(line int, text string, start int) string {
	hash := fnv.New64a()
	_, _ = hash.Write([]byte(text))
	stylesBytes := make([]byte, len(text))
	for i := range text {
		stylesBytes[i] = byte(h.rec.StyleAt(start + i))
	}
	_, _ = hash.Write(stylesBytes)
	return fmt.Sprintf("%d:%x", line, hash.Sum64())
}
