// Package buffer provides a line-indexed text buffer with the
// character-addressable access the lexer requires.
package buffer

import "sort"

// Buffer holds text and a line start index. It satisfies the lexer's Buffer
// interface: reads past the end return a 0 sentinel instead of failing.
type Buffer struct {
	text       string
	lineStarts []int
}

// New creates a buffer from text.
func New(text string) *Buffer {
	b := &Buffer{}
	b.SetText(text)
	return b
}

// SetText replaces the buffer contents and rebuilds the line index.
func (b *Buffer) SetText(text string) {
	b.text = text
	b.lineStarts = b.lineStarts[:0]
	b.lineStarts = append(b.lineStarts, 0)
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			b.lineStarts = append(b.lineStarts, i+1)
		}
	}
}

// Text returns the full buffer contents.
func (b *Buffer) Text() string { return b.text }

// TextLength returns the length of the buffer in bytes.
func (b *Buffer) TextLength() int { return len(b.text) }

// CharAt returns the byte at pos, or 0 when pos is out of range.
func (b *Buffer) CharAt(pos int) byte {
	if pos < 0 || pos >= len(b.text) {
		return 0
	}
	return b.text[pos]
}

// TextRange returns the text in [start,end), clamped to the buffer bounds.
func (b *Buffer) TextRange(start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(b.text) {
		end = len(b.text)
	}
	if start >= end {
		return ""
	}
	return b.text[start:end]
}

// LineCount returns the number of lines. An empty buffer has one line; a
// trailing newline opens a final empty line.
func (b *Buffer) LineCount() int { return len(b.lineStarts) }

// LineFromPosition returns the line containing pos. Positions past the end
// map to the last line.
func (b *Buffer) LineFromPosition(pos int) int {
	if pos <= 0 {
		return 0
	}
	// First line start greater than pos, minus one.
	i := sort.Search(len(b.lineStarts), func(i int) bool {
		return b.lineStarts[i] > pos
	})
	return i - 1
}

// LineStart returns the position of the first character of line.
func (b *Buffer) LineStart(line int) int {
	if line < 0 {
		return 0
	}
	if line >= len(b.lineStarts) {
		return len(b.text)
	}
	return b.lineStarts[line]
}

// LineEnd returns the position of the last character of line, including its
// trailing newline, so that [LineStart,LineEnd] covers the whole line. For
// an empty final line the result is LineStart-1, yielding an empty range.
func (b *Buffer) LineEnd(line int) int {
	if line+1 < len(b.lineStarts) {
		return b.lineStarts[line+1] - 1
	}
	return len(b.text) - 1
}

// Line returns the text of line without its trailing newline.
func (b *Buffer) Line(line int) string {
	if line < 0 || line >= len(b.lineStarts) {
		return ""
	}
	start := b.lineStarts[line]
	end := len(b.text)
	if line+1 < len(b.lineStarts) {
		end = b.lineStarts[line+1] - 1
	}
	if end > 0 && end <= len(b.text) && end > start && b.text[end-1] == '\r' {
		end--
	}
	if start >= end {
		return ""
	}
	return b.text[start:end]
}
