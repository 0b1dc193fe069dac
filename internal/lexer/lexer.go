// Package lexer implements an incremental tokenizer for syntax highlighting
// and code folding. It styles arbitrary ranges of a live text buffer,
// carrying block-comment state across lines so partial restyles resume
// correctly, and records per-line fold level deltas.
package lexer

import (
	"strings"

	"github.com/zjrosen/folio/internal/language"
	"github.com/zjrosen/folio/internal/log"
)

// state is the tokenizer state machine state.
type state uint8

const (
	stateUnknown state = iota
	stateWhitespace
	stateComment
	stateString
	stateChar
	stateWord
	stateOperator
)

// LineInfo holds per-line lexer state persisted across styling passes.
type LineInfo struct {
	// CommentIdx indexes the language's block comment delimiter list when
	// the line starts inside that block comment, -1 otherwise.
	CommentIdx int
	// FoldIncrement is the fold level delta contributed by the line.
	FoldIncrement int
	// HasWord reports whether the line contains a word, operator, string or
	// char token. Lines without one get their fold header moved up a line.
	HasWord bool
}

// lexState is the transient state of a single styling pass.
type lexState struct {
	pos, end, line int
	state          state
	length         int
	foldIncrement  int
	hasWord        bool
	buf            Buffer
	sink           Sink
}

// Lexer is an incremental styling tokenizer. It is not safe for concurrent
// use; styling and folding calls must be sequenced by the caller.
type Lexer struct {
	language *language.Definition
	words    map[string]Style
	styler   wordStyler

	wordChars       [256]bool
	operatorChars   [256]bool
	whitespaceChars [256]bool
	ppChar          byte

	foldComments     bool
	foldPreprocessor bool
	verbose          bool

	lines      map[int]LineInfo
	commentIdx int // active block comment delimiter index, -1 outside comments
}

// New creates a lexer with the default word styling policy.
func New() *Lexer {
	return newLexer(defaultStyler{})
}

// NewZScript creates a lexer with call-aware function styling: identifiers
// are only styled as functions when followed by "(".
func NewZScript() *Lexer {
	return newLexer(&callStyler{functions: make(map[string]struct{})})
}

// NewForLanguage creates a lexer appropriate for the definition and loads it.
func NewForLanguage(def *language.Definition) *Lexer {
	var l *Lexer
	if def != nil && def.CallStyling {
		l = NewZScript()
	} else {
		l = New()
	}
	l.LoadLanguage(def)
	return l
}

func newLexer(styler wordStyler) *Lexer {
	l := &Lexer{
		words:      make(map[string]Style),
		styler:     styler,
		lines:      make(map[int]LineInfo),
		commentIdx: -1,
	}
	l.SetWordChars("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_")
	l.SetOperatorChars("+-*/=><|~&!")
	for _, c := range []byte{' ', '\n', '\r', '\t'} {
		l.whitespaceChars[c] = true
	}
	return l
}

// LoadLanguage clears the word table and repopulates it from the definition.
// Word list precedence is Constant, Property, Function, Type, Keyword; later
// categories win for colliding tokens.
func (l *Lexer) LoadLanguage(def *language.Definition) {
	l.language = def
	l.ClearWords()
	l.ppChar = 0

	if def == nil {
		return
	}

	for _, w := range def.Constants {
		l.AddWord(w, StyleConstant)
	}
	for _, w := range def.Properties {
		l.AddWord(w, StyleProperty)
	}
	for _, w := range def.Functions {
		l.AddWord(w, StyleFunction)
	}
	for _, w := range def.Types {
		l.AddWord(w, StyleType)
	}
	for _, w := range def.Keywords {
		l.AddWord(w, StyleKeyword)
	}

	if def.Preprocessor != "" {
		l.ppChar = def.Preprocessor[0]
	}
	if def.WordChars != "" {
		l.SetWordChars(def.WordChars)
	}
	if def.OperatorChars != "" {
		l.SetOperatorChars(def.OperatorChars)
	}
}

// Language returns the currently loaded definition, which may be nil.
func (l *Lexer) Language() *language.Definition { return l.language }

// AddWord registers a word with a style.
func (l *Lexer) AddWord(word string, style Style) { l.styler.addWord(l, word, style) }

// ClearWords removes all registered words.
func (l *Lexer) ClearWords() { l.styler.clearWords(l) }

// IsFunction reports whether the buffer text in [start,end) is a registered
// function name.
func (l *Lexer) IsFunction(buf Buffer, start, end int) bool {
	return l.styler.isFunction(l, buf, start, end)
}

// SetWordChars sets the characters that form words.
func (l *Lexer) SetWordChars(chars string) {
	l.wordChars = [256]bool{}
	for i := 0; i < len(chars); i++ {
		l.wordChars[chars[i]] = true
	}
}

// SetOperatorChars sets the characters that form operators.
func (l *Lexer) SetOperatorChars(chars string) {
	l.operatorChars = [256]bool{}
	for i := 0; i < len(chars); i++ {
		l.operatorChars[chars[i]] = true
	}
}

// FoldComments toggles fold regions for block comments.
func (l *Lexer) FoldComments(enabled bool) { l.foldComments = enabled }

// FoldPreprocessor toggles fold regions for preprocessor blocks.
func (l *Lexer) FoldPreprocessor(enabled bool) { l.foldPreprocessor = enabled }

// Verbose toggles debug tracing of styling passes.
func (l *Lexer) Verbose(enabled bool) { l.verbose = enabled }

// Clear discards all persisted line state.
func (l *Lexer) Clear() {
	l.lines = make(map[int]LineInfo)
	l.commentIdx = -1
}

// LineInfo returns the persisted state for a line. Lines never styled
// report CommentIdx -1.
func (l *Lexer) LineInfo(line int) LineInfo {
	if info, ok := l.lines[line]; ok {
		return info
	}
	return LineInfo{CommentIdx: -1}
}

func (l *Lexer) setCommentIdx(line, idx int) {
	info := l.LineInfo(line)
	info.CommentIdx = idx
	l.lines[line] = info
}

// DoStyling styles buffer characters from start to end inclusive, emitting
// style runs to the sink in position order. The pass resumes block comment
// state recorded for the starting line. Returns true if the range ended
// still inside a block comment, in which case the caller should extend
// styling to the next line.
func (l *Lexer) DoStyling(buf Buffer, sink Sink, start, end int) bool {
	if start < 0 {
		start = 0
	}

	line := buf.LineFromPosition(start)
	s := &lexState{pos: start, end: end, line: line, buf: buf, sink: sink}

	if idx := l.LineInfo(line).CommentIdx; idx >= 0 {
		s.state = stateComment
		l.commentIdx = idx
	} else {
		s.state = stateUnknown
		l.commentIdx = -1
	}

	sink.StartStyling(start)

	if l.verbose {
		log.Debug(log.CatLexer, "styling range", "start", start, "end", end, "line", line+1)
	}

	done := false
	for !done {
		switch s.state {
		case stateWhitespace:
			done = l.processWhitespace(s)
		case stateComment:
			done = l.processComment(s)
		case stateString:
			done = l.processString(s)
		case stateChar:
			done = l.processChar(s)
		case stateWord:
			done = l.processWord(s)
		case stateOperator:
			done = l.processOperator(s)
		default:
			done = l.processUnknown(s)
		}
	}

	// Persist current line state and propagate comment continuation.
	info := l.LineInfo(line)
	info.FoldIncrement = s.foldIncrement
	info.HasWord = s.hasWord
	l.lines[line] = info

	switch s.state {
	case stateComment:
		l.setCommentIdx(line+1, l.commentIdx)
		if l.verbose {
			log.Debug(log.CatLexer, "block comment continues", "line", line+2, "idx", l.commentIdx)
		}
	case stateWhitespace:
		// Trailing whitespace cannot open a continued comment.
		l.setCommentIdx(line, -1)
		l.setCommentIdx(line+1, -1)
	}

	return s.state == stateComment
}

// processUnknown scans default-styled characters, dispatching to the other
// states on their start triggers. Returns true when the end of the range
// was reached.
func (l *Lexer) processUnknown(s *lexState) bool {
	var (
		uLength int
		end     bool
		pp      bool
	)

	var (
		commentBegin []string
		commentDoc   string
		lineComment  []string
		blockBegin   string
		blockEnd     string
	)
	if l.language != nil {
		commentBegin = l.language.CommentBegin
		commentDoc = l.language.DocComment
		lineComment = l.language.LineComment
		blockBegin = l.language.BlockBegin
		blockEnd = l.language.BlockEnd
	}

scan:
	for {
		if s.pos > s.end {
			l.setCommentIdx(s.line+1, -1)
			end = true
			break scan
		}

		c := s.buf.CharAt(s.pos)

		switch {
		// Start of string
		case c == '"':
			s.state = stateString
			s.pos++
			s.length = 1
			s.hasWord = true
			break scan

		// No language set, only strings are processed
		case l.language == nil:
			uLength++
			s.pos++

		// Start of char
		case c == '\'':
			s.state = stateChar
			s.pos++
			s.length = 1
			s.hasWord = true
			break scan

		default:
			// Start of block comment
			if idx, ok := l.checkTokenList(s, s.pos, commentBegin); ok {
				l.commentIdx = idx
				s.state = stateComment
				s.length = len(commentBegin[idx])
				s.pos += len(commentBegin[idx])
				if l.foldComments {
					s.foldIncrement++
					s.hasWord = true
				}
				break scan
			}

			// Doc line comment styles the rest of the range
			if l.checkToken(s, s.pos, commentDoc) {
				s.sink.SetStyling(uLength, StyleDefault)
				s.sink.SetStyling(s.end-s.pos+1, StyleCommentDoc)
				return true
			}

			// Line comment styles the rest of the range
			if _, ok := l.checkTokenList(s, s.pos, lineComment); ok {
				s.sink.SetStyling(uLength, StyleDefault)
				s.sink.SetStyling(s.end-s.pos+1, StyleComment)
				return true
			}

			// Whitespace
			if l.whitespaceChars[c] {
				s.state = stateWhitespace
				s.pos++
				s.length = 1
				break scan
			}

			// Preprocessor sigil: absorbed into a following word
			if l.ppChar != 0 && c == l.ppChar {
				pp = true
				uLength++
				s.pos++
				continue
			}

			// Operator
			if l.operatorChars[c] {
				s.pos++
				s.state = stateOperator
				s.length = 1
				s.hasWord = true
				break scan
			}

			// Word; rewind over a directly preceding preprocessor sigil
			if l.wordChars[c] {
				if pp {
					s.pos--
					uLength--
				}
				s.state = stateWord
				s.length = 0
				s.hasWord = true
				break scan
			}

			// Bare fold delimiters stay default-styled but adjust the level
			if l.checkToken(s, s.pos, blockBegin) {
				s.foldIncrement++
			} else if l.checkToken(s, s.pos, blockEnd) {
				s.foldIncrement--
			}

			uLength++
			s.pos++
			pp = false
		}
	}

	if l.verbose && uLength > 0 {
		log.Debug(log.CatLexer, "unknown run", "length", uLength)
	}
	s.sink.SetStyling(uLength, StyleDefault)

	return end
}

// processComment scans block comment characters until the matching end
// delimiter or the end of the range.
func (l *Lexer) processComment(s *lexState) bool {
	end := false

	var commentEnd string
	if l.language != nil && l.commentIdx >= 0 && l.commentIdx < len(l.language.CommentEnd) {
		commentEnd = l.language.CommentEnd[l.commentIdx]
	}

	for {
		if s.pos > s.end {
			end = true
			break
		}

		if l.checkToken(s, s.pos, commentEnd) {
			s.length += len(commentEnd)
			s.pos += len(commentEnd)
			s.state = stateUnknown
			l.commentIdx = -1
			if l.foldComments {
				s.foldIncrement--
			}
			break
		}

		s.length++
		s.pos++
	}

	if l.verbose {
		log.Debug(log.CatLexer, "comment run", "length", s.length)
	}
	s.sink.SetStyling(s.length, StyleComment)
	s.length = 0

	return end
}

// processWord scans a word token and styles it via the word styling policy.
func (l *Lexer) processWord(s *lexState) bool {
	var word []byte
	end := false

	word = append(word, s.buf.CharAt(s.pos))
	s.pos++

	for {
		if s.pos > s.end {
			l.setCommentIdx(s.line+1, -1)
			end = true
			break
		}

		c := s.buf.CharAt(s.pos)
		if l.wordChars[c] {
			word = append(word, c)
			s.pos++
		} else {
			s.state = stateUnknown
			break
		}
	}

	wordStr := string(word)
	wordLower := strings.ToLower(wordStr)

	// Keyword-based folding
	if l.language != nil {
		if l.foldPreprocessor && l.ppChar != 0 && word[0] == l.ppChar {
			if containsStr(l.language.PPBlockBegin, wordLower) {
				s.foldIncrement++
			} else if containsStr(l.language.PPBlockEnd, wordLower) {
				s.foldIncrement--
			}
		} else {
			if containsStr(l.language.WordBlockBegin, wordLower) {
				s.foldIncrement++
			} else if containsStr(l.language.WordBlockEnd, wordLower) {
				s.foldIncrement--
			}
		}
	}

	if l.verbose {
		log.Debug(log.CatLexer, "word", "text", wordStr)
	}
	l.styler.styleWord(l, s, wordStr)

	return end
}

// processString scans string characters until the closing quote or the end
// of the range.
func (l *Lexer) processString(s *lexState) bool {
	end := false

	for {
		if s.pos > s.end {
			l.setCommentIdx(s.line+1, -1)
			end = true
			break
		}

		if s.buf.CharAt(s.pos) == '"' {
			s.length++
			s.pos++
			s.state = stateUnknown
			break
		}

		s.length++
		s.pos++
	}

	if l.verbose {
		log.Debug(log.CatLexer, "string run", "length", s.length)
	}
	s.sink.SetStyling(s.length, StyleString)
	s.length = 0

	return end
}

// processChar scans character-literal characters until the closing quote or
// the end of the range.
func (l *Lexer) processChar(s *lexState) bool {
	end := false

	for {
		if s.pos > s.end {
			l.setCommentIdx(s.line+1, -1)
			end = true
			break
		}

		if s.buf.CharAt(s.pos) == '\'' {
			s.length++
			s.pos++
			s.state = stateUnknown
			break
		}

		s.length++
		s.pos++
	}

	if l.verbose {
		log.Debug(log.CatLexer, "char run", "length", s.length)
	}
	s.sink.SetStyling(s.length, StyleChar)
	s.length = 0

	return end
}

// processOperator scans a run of operator characters.
func (l *Lexer) processOperator(s *lexState) bool {
	end := false

	for {
		if s.pos > s.end {
			l.setCommentIdx(s.line+1, -1)
			end = true
			break
		}

		if l.operatorChars[s.buf.CharAt(s.pos)] {
			s.length++
			s.pos++
		} else {
			s.state = stateUnknown
			break
		}
	}

	if l.verbose {
		log.Debug(log.CatLexer, "operator run", "length", s.length)
	}
	s.sink.SetStyling(s.length, StyleOperator)
	s.length = 0

	return end
}

// processWhitespace scans a run of whitespace characters.
func (l *Lexer) processWhitespace(s *lexState) bool {
	end := false

	for {
		if s.pos > s.end {
			l.setCommentIdx(s.line+1, -1)
			end = true
			break
		}

		if l.whitespaceChars[s.buf.CharAt(s.pos)] {
			s.length++
			s.pos++
		} else {
			s.state = stateUnknown
			break
		}
	}

	if l.verbose {
		log.Debug(log.CatLexer, "whitespace run", "length", s.length)
	}
	s.sink.SetStyling(s.length, StyleDefault)
	s.length = 0

	return end
}

// checkToken reports whether the buffer text at pos matches token.
// Lookahead may read past the range end; the buffer's 0 sentinel makes
// that safe.
func (l *Lexer) checkToken(s *lexState, pos int, token string) bool {
	if token == "" {
		return false
	}
	for i := 0; i < len(token); i++ {
		if s.buf.CharAt(pos+i) != token[i] {
			return false
		}
	}
	return true
}

// checkTokenList returns the index of the first token matching the buffer
// text at pos.
func (l *Lexer) checkTokenList(s *lexState, pos int, tokens []string) (int, bool) {
	for i, token := range tokens {
		if l.checkToken(s, pos, token) {
			return i, true
		}
	}
	return -1, false
}

func containsStr(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
