package lexer

// Buffer provides character-addressable access to the text being styled.
// CharAt must return 0 for positions past the end of the text; the lexer
// performs lookahead near range boundaries and relies on the sentinel.
type Buffer interface {
	CharAt(pos int) byte
	TextRange(start, end int) string
	LineFromPosition(pos int) int
	LineCount() int
	TextLength() int
}

// Sink receives style runs and fold levels produced by the lexer.
// After StartStyling(pos), successive SetStyling calls cover the styled
// range in position order with no gaps or overlaps.
type Sink interface {
	StartStyling(pos int)
	SetStyling(length int, style Style)
	SetFoldLevel(line, level int, header bool)
	FoldLevel(line int) int
}
