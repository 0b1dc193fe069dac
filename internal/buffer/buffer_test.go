package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuffer_LineIndex(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		lines int
	}{
		{"empty", "", 1},
		{"single line", "hello", 1},
		{"trailing newline opens empty line", "hello\n", 2},
		{"three lines", "a\nb\nc", 3},
		{"blank lines", "\n\n", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(tt.text)
			assert.Equal(t, tt.lines, b.LineCount())
			assert.Equal(t, tt.text, b.Text())
			assert.Equal(t, len(tt.text), b.TextLength())
		})
	}
}

func TestBuffer_CharAt(t *testing.T) {
	b := New("ab")

	assert.Equal(t, byte('a'), b.CharAt(0))
	assert.Equal(t, byte('b'), b.CharAt(1))
	assert.Equal(t, byte(0), b.CharAt(2), "past the end reads the sentinel")
	assert.Equal(t, byte(0), b.CharAt(-1))
}

func TestBuffer_TextRange(t *testing.T) {
	b := New("hello world")

	assert.Equal(t, "hello", b.TextRange(0, 5))
	assert.Equal(t, "world", b.TextRange(6, 11))
	assert.Equal(t, "world", b.TextRange(6, 100), "end clamps to buffer length")
	assert.Equal(t, "he", b.TextRange(-3, 2))
	assert.Equal(t, "", b.TextRange(5, 5))
	assert.Equal(t, "", b.TextRange(8, 2))
}

func TestBuffer_LineFromPosition(t *testing.T) {
	b := New("ab\ncd\nef")
	// positions: a=0 b=1 \n=2 c=3 d=4 \n=5 e=6 f=7

	tests := []struct {
		pos, line int
	}{
		{0, 0}, {1, 0}, {2, 0},
		{3, 1}, {5, 1},
		{6, 2}, {7, 2},
		{-4, 0},
		{99, 2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.line, b.LineFromPosition(tt.pos), "pos %d", tt.pos)
	}
}

func TestBuffer_LineStartEnd(t *testing.T) {
	b := New("ab\ncd\nef")

	assert.Equal(t, 0, b.LineStart(0))
	assert.Equal(t, 2, b.LineEnd(0), "line end includes the newline")
	assert.Equal(t, 3, b.LineStart(1))
	assert.Equal(t, 5, b.LineEnd(1))
	assert.Equal(t, 6, b.LineStart(2))
	assert.Equal(t, 7, b.LineEnd(2), "last line ends at the final character")
}

func TestBuffer_LineStartEnd_TrailingNewline(t *testing.T) {
	b := New("ab\n")

	// The empty final line has an inverted range so styling it is a no-op.
	assert.Equal(t, 3, b.LineStart(1))
	assert.Equal(t, 2, b.LineEnd(1))
}

func TestBuffer_Line(t *testing.T) {
	b := New("ab\r\ncd\nef")

	assert.Equal(t, "ab", b.Line(0), "carriage return is trimmed")
	assert.Equal(t, "cd", b.Line(1))
	assert.Equal(t, "ef", b.Line(2))
	assert.Equal(t, "", b.Line(-1))
	assert.Equal(t, "", b.Line(9))
}

func TestBuffer_SetTextRebuildsIndex(t *testing.T) {
	b := New("one\ntwo\nthree")
	assert.Equal(t, 3, b.LineCount())

	b.SetText("single")
	assert.Equal(t, 1, b.LineCount())
	assert.Equal(t, "single", b.Line(0))
	assert.Equal(t, 0, b.LineFromPosition(5))
}
