package lexer

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/folio/internal/language"
)

// testBuffer is a minimal Buffer over a string.
type testBuffer struct {
	text       string
	lineStarts []int
}

func newTestBuffer(text string) *testBuffer {
	b := &testBuffer{text: text, lineStarts: []int{0}}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			b.lineStarts = append(b.lineStarts, i+1)
		}
	}
	return b
}

func (b *testBuffer) CharAt(pos int) byte {
	if pos < 0 || pos >= len(b.text) {
		return 0
	}
	return b.text[pos]
}

func (b *testBuffer) TextRange(start, end int) string {
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

func (b *testBuffer) LineFromPosition(pos int) int {
	if pos <= 0 {
		return 0
	}
	i := sort.Search(len(b.lineStarts), func(i int) bool { return b.lineStarts[i] > pos })
	return i - 1
}

func (b *testBuffer) LineCount() int  { return len(b.lineStarts) }
func (b *testBuffer) TextLength() int { return len(b.text) }

func (b *testBuffer) lineRange(line int) (int, int) {
	start := b.lineStarts[line]
	end := len(b.text) - 1
	if line+1 < len(b.lineStarts) {
		end = b.lineStarts[line+1] - 1
	}
	return start, end
}

// run is one recorded style run.
type run struct {
	length int
	style  Style
}

// recordSink records style runs and fold levels.
type recordSink struct {
	runs    []run
	folds   map[int]int
	headers map[int]bool
}

func newRecordSink() *recordSink {
	return &recordSink{folds: make(map[int]int), headers: make(map[int]bool)}
}

func (r *recordSink) StartStyling(pos int) { r.runs = nil }

func (r *recordSink) SetStyling(length int, style Style) {
	if length <= 0 {
		return
	}
	r.runs = append(r.runs, run{length: length, style: style})
}

func (r *recordSink) SetFoldLevel(line, level int, header bool) {
	if line < 0 {
		return
	}
	r.folds[line] = level
	r.headers[line] = header
}

func (r *recordSink) FoldLevel(line int) int { return r.folds[line] }

// runTotal sums the recorded run lengths.
func (r *recordSink) runTotal() int {
	total := 0
	for _, rn := range r.runs {
		total += rn.length
	}
	return total
}

// styleAll styles every buffer line in order, as the render driver does.
func styleAll(l *Lexer, buf *testBuffer, sink *recordSink) {
	for line := 0; line < buf.LineCount(); line++ {
		start, end := buf.lineRange(line)
		l.DoStyling(buf, sink, start, end)
	}
}

func testLang() *language.Definition {
	return &language.Definition{
		Name:           "test",
		CaseSensitive:  false,
		Keywords:       []string{"if", "else"},
		Types:          []string{"int"},
		Constants:      []string{"true"},
		Functions:      []string{"foo"},
		Preprocessor:   "#",
		CommentBegin:   []string{"/*", "--["},
		CommentEnd:     []string{"*/", "]--"},
		LineComment:    []string{"//"},
		DocComment:     "///",
		BlockBegin:     "{",
		BlockEnd:       "}",
		PPBlockBegin:   []string{"#region"},
		PPBlockEnd:     []string{"#endregion"},
		WordBlockBegin: []string{"do"},
		WordBlockEnd:   []string{"loop"},
	}
}

func newTestLexer() *Lexer {
	l := New()
	l.LoadLanguage(testLang())
	return l
}

func TestDoStyling_EndToEndLine(t *testing.T) {
	l := newTestLexer()
	buf := newTestBuffer("if (x) { // comment")
	sink := newRecordSink()

	more := l.DoStyling(buf, sink, 0, buf.TextLength()-1)

	assert.False(t, more, "line comment must not request continuation")
	assert.Equal(t, buf.TextLength(), sink.runTotal(), "runs must cover the range exactly")

	expected := []run{
		{2, StyleKeyword}, // if
		{1, StyleDefault}, // space
		{1, StyleDefault}, // (
		{1, StyleDefault}, // x
		{1, StyleDefault}, // )
		{1, StyleDefault}, // space
		{1, StyleDefault}, // {
		{1, StyleDefault}, // space
		{10, StyleComment}, // // comment
	}
	assert.Equal(t, expected, sink.runs)

	info := l.LineInfo(0)
	assert.Equal(t, 1, info.FoldIncrement, "opening brace increments fold")
	assert.True(t, info.HasWord)
}

func TestDoStyling_WordStyles(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Style
	}{
		{"keyword", "if", StyleKeyword},
		{"keyword case insensitive", "ELSE", StyleKeyword},
		{"type", "int", StyleType},
		{"constant", "true", StyleConstant},
		{"function", "foo", StyleFunction},
		{"plain identifier", "banana", StyleDefault},
		{"decimal number", "123", StyleNumber},
		{"hex number", "0x1F", StyleNumber},
		{"octal-ish number", "007", StyleNumber},
		{"not a number", "12abc", StyleDefault},
		{"preprocessor word", "#include", StylePreprocessor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestLexer()
			buf := newTestBuffer(tt.input)
			sink := newRecordSink()

			l.DoStyling(buf, sink, 0, buf.TextLength()-1)

			require.NotEmpty(t, sink.runs)
			last := sink.runs[len(sink.runs)-1]
			assert.Equal(t, tt.want, last.style)
			assert.Equal(t, len(tt.input), sink.runTotal())
		})
	}
}

func TestDoStyling_KeywordSurroundedByWhitespace(t *testing.T) {
	for _, input := range []string{"if", "  if", "if   ", "\t if \t"} {
		t.Run(strings.ReplaceAll(input, "\t", `\t`), func(t *testing.T) {
			l := newTestLexer()
			buf := newTestBuffer(input)
			sink := newRecordSink()

			l.DoStyling(buf, sink, 0, buf.TextLength()-1)

			var found bool
			for _, rn := range sink.runs {
				if rn.style == StyleKeyword {
					assert.Equal(t, 2, rn.length)
					found = true
				}
			}
			assert.True(t, found, "keyword must be styled regardless of whitespace")
		})
	}
}

func TestDoStyling_StringAndChar(t *testing.T) {
	l := newTestLexer()
	buf := newTestBuffer(`x = "hi" + 'c'`)
	sink := newRecordSink()

	l.DoStyling(buf, sink, 0, buf.TextLength()-1)

	var styles []Style
	for _, rn := range sink.runs {
		styles = append(styles, rn.style)
	}
	assert.Contains(t, styles, StyleString)
	assert.Contains(t, styles, StyleChar)
	assert.Contains(t, styles, StyleOperator)
	assert.Equal(t, buf.TextLength(), sink.runTotal())
}

func TestDoStyling_DocComment(t *testing.T) {
	l := newTestLexer()
	buf := newTestBuffer("/// docs here")
	sink := newRecordSink()

	more := l.DoStyling(buf, sink, 0, buf.TextLength()-1)

	assert.False(t, more)
	require.Len(t, sink.runs, 1)
	assert.Equal(t, run{13, StyleCommentDoc}, sink.runs[0])
}

func TestDoStyling_BlockCommentContinuation(t *testing.T) {
	l := newTestLexer()
	text := "a /* c\nmore */ b\n"
	buf := newTestBuffer(text)
	sink := newRecordSink()

	// Line 0 opens an unterminated block comment.
	start, end := buf.lineRange(0)
	more := l.DoStyling(buf, sink, start, end)
	assert.True(t, more, "unterminated comment requests next-line styling")
	assert.Equal(t, 0, l.LineInfo(1).CommentIdx, "continuation id propagates")

	// Line 1 resumes inside the comment and closes it.
	start, end = buf.lineRange(1)
	more = l.DoStyling(buf, sink, start, end)
	assert.False(t, more)
	require.NotEmpty(t, sink.runs)
	assert.Equal(t, run{7, StyleComment}, sink.runs[0], "resumed text styles as comment until the end delimiter")
	assert.Equal(t, -1, l.LineInfo(2).CommentIdx)
}

func TestDoStyling_SecondCommentDelimiterPair(t *testing.T) {
	l := newTestLexer()
	buf := newTestBuffer("--[ hidden\nstill ]-- x")
	sink := newRecordSink()

	start, end := buf.lineRange(0)
	more := l.DoStyling(buf, sink, start, end)
	assert.True(t, more)
	assert.Equal(t, 1, l.LineInfo(1).CommentIdx, "second delimiter pair gets id 1")

	start, end = buf.lineRange(1)
	more = l.DoStyling(buf, sink, start, end)
	assert.False(t, more)
}

func TestDoStyling_CommentFolding(t *testing.T) {
	l := newTestLexer()
	l.FoldComments(true)
	buf := newTestBuffer("/* one\ntwo */\n")
	sink := newRecordSink()

	start, end := buf.lineRange(0)
	l.DoStyling(buf, sink, start, end)
	assert.Equal(t, 1, l.LineInfo(0).FoldIncrement)
	assert.True(t, l.LineInfo(0).HasWord)

	start, end = buf.lineRange(1)
	l.DoStyling(buf, sink, start, end)
	assert.Equal(t, -1, l.LineInfo(1).FoldIncrement)
}

func TestDoStyling_WordFoldKeywords(t *testing.T) {
	l := newTestLexer()
	buf := newTestBuffer("do\nx = 1\nloop\n")
	sink := newRecordSink()

	styleAll(l, buf, sink)

	assert.Equal(t, 1, l.LineInfo(0).FoldIncrement)
	assert.Equal(t, 0, l.LineInfo(1).FoldIncrement)
	assert.Equal(t, -1, l.LineInfo(2).FoldIncrement)
}

func TestDoStyling_PreprocessorFolding(t *testing.T) {
	l := newTestLexer()
	l.FoldPreprocessor(true)
	buf := newTestBuffer("#region stuff\nx\n#endregion\n")
	sink := newRecordSink()

	styleAll(l, buf, sink)

	assert.Equal(t, 1, l.LineInfo(0).FoldIncrement)
	assert.Equal(t, -1, l.LineInfo(2).FoldIncrement)
}

func TestDoStyling_PreprocessorSigilAbsorbed(t *testing.T) {
	l := newTestLexer()
	buf := newTestBuffer("#include")
	sink := newRecordSink()

	l.DoStyling(buf, sink, 0, buf.TextLength()-1)

	// The sigil is folded into the word token, not styled separately.
	require.Len(t, sink.runs, 1)
	assert.Equal(t, run{8, StylePreprocessor}, sink.runs[0])
}

func TestDoStyling_BareSigilStaysDefault(t *testing.T) {
	l := newTestLexer()
	buf := newTestBuffer("# (x)")
	sink := newRecordSink()

	l.DoStyling(buf, sink, 0, buf.TextLength()-1)

	require.NotEmpty(t, sink.runs)
	assert.Equal(t, StyleDefault, sink.runs[0].style, "sigil before non-word stays in the default run")
	assert.Equal(t, buf.TextLength(), sink.runTotal())
}

func TestDoStyling_NoLanguage(t *testing.T) {
	l := New()
	buf := newTestBuffer(`plain "quoted" text`)
	sink := newRecordSink()

	more := l.DoStyling(buf, sink, 0, buf.TextLength()-1)

	assert.False(t, more)
	assert.Equal(t, buf.TextLength(), sink.runTotal())

	var styles []Style
	for _, rn := range sink.runs {
		styles = append(styles, rn.style)
	}
	assert.Contains(t, styles, StyleString, "strings are detected even without a language")
	for _, st := range styles {
		assert.Contains(t, []Style{StyleDefault, StyleString}, st)
	}
}

func TestDoStyling_NegativeStartClamps(t *testing.T) {
	l := newTestLexer()
	buf := newTestBuffer("if")
	sink := newRecordSink()

	more := l.DoStyling(buf, sink, -5, buf.TextLength()-1)

	assert.False(t, more)
	assert.Equal(t, 2, sink.runTotal())
}

func TestDoStyling_WhitespaceEndClearsContinuation(t *testing.T) {
	l := newTestLexer()
	text := "/* open\n*/  \n"
	buf := newTestBuffer(text)
	sink := newRecordSink()

	start, end := buf.lineRange(0)
	require.True(t, l.DoStyling(buf, sink, start, end))
	require.Equal(t, 0, l.LineInfo(1).CommentIdx)

	// Line 1 closes the comment and ends in whitespace: both its own and the
	// next line's continuation ids are cleared.
	start, end = buf.lineRange(1)
	more := l.DoStyling(buf, sink, start, end)
	assert.False(t, more)
	assert.Equal(t, -1, l.LineInfo(1).CommentIdx)
	assert.Equal(t, -1, l.LineInfo(2).CommentIdx)
}

func TestDoStyling_WordTablePrecedence(t *testing.T) {
	def := testLang()
	// Same token in both Constants and Keywords: Keyword is loaded later and
	// must win.
	def.Constants = append(def.Constants, "shared")
	def.Keywords = append(def.Keywords, "shared")

	l := New()
	l.LoadLanguage(def)
	buf := newTestBuffer("shared")
	sink := newRecordSink()

	l.DoStyling(buf, sink, 0, buf.TextLength()-1)

	require.NotEmpty(t, sink.runs)
	assert.Equal(t, StyleKeyword, sink.runs[len(sink.runs)-1].style)
}

func TestDoStyling_Idempotent(t *testing.T) {
	text := "if (x) {\n  /* note\n  spans */ foo(1)\n}\n"

	style := func() ([]run, []LineInfo) {
		l := newTestLexer()
		buf := newTestBuffer(text)
		sink := newRecordSink()
		var allRuns []run
		var infos []LineInfo
		for line := 0; line < buf.LineCount(); line++ {
			start, end := buf.lineRange(line)
			l.DoStyling(buf, sink, start, end)
			allRuns = append(allRuns, sink.runs...)
			infos = append(infos, l.LineInfo(line))
		}
		return allRuns, infos
	}

	runs1, infos1 := style()
	runs2, infos2 := style()
	assert.Equal(t, runs1, runs2)
	assert.Equal(t, infos1, infos2)
}

func TestIsFunction_Default(t *testing.T) {
	l := newTestLexer()
	buf := newTestBuffer("foo bar")

	assert.True(t, l.IsFunction(buf, 0, 3))
	assert.False(t, l.IsFunction(buf, 4, 7))
}

func TestLoadLanguage_NilDegrades(t *testing.T) {
	l := newTestLexer()
	l.LoadLanguage(nil)

	buf := newTestBuffer("if x")
	sink := newRecordSink()
	more := l.DoStyling(buf, sink, 0, buf.TextLength()-1)

	assert.False(t, more)
	assert.Equal(t, 4, sink.runTotal())
	for _, rn := range sink.runs {
		assert.Equal(t, StyleDefault, rn.style)
	}
}

func TestNumberRecognition(t *testing.T) {
	assert.True(t, isInteger("123"))
	assert.True(t, isInteger("+007"))
	assert.True(t, isInteger("-42"))
	assert.True(t, isInteger("0x1F"))
	assert.False(t, isInteger("12abc"))
	assert.False(t, isInteger("0xG1"))

	assert.True(t, isFloat("12.5e-3"))
	assert.True(t, isFloat("-0.5"))
	assert.True(t, isFloat(".5"))
	assert.True(t, isFloat("1e9"))
	assert.False(t, isFloat("12abc"))
	assert.False(t, isFloat("1.2.3"))
}
