package lexer

import (
	"regexp"
	"strings"
)

// Numeric token forms: plain/signed decimal, leading-zero octal form,
// 0x hex, and floats with optional exponent.
var (
	reInt   = regexp.MustCompile(`^[+-]?[0-9]+$`)
	reOctal = regexp.MustCompile(`^0[0-9]+$`)
	reHex   = regexp.MustCompile(`^0x[0-9A-Fa-f]+$`)
	reFloat = regexp.MustCompile(`^[-+]?[0-9]*\.?[0-9]+([eE][-+]?[0-9]+)?$`)
)

func isInteger(s string) bool {
	return reInt.MatchString(s) || reOctal.MatchString(s) || reHex.MatchString(s)
}

func isFloat(s string) bool {
	return reFloat.MatchString(s)
}

// wordStyler is the word classification policy. The default implementation
// styles from the word table; the call-aware implementation additionally
// requires a following "(" for function styling.
type wordStyler interface {
	styleWord(l *Lexer, s *lexState, word string)
	addWord(l *Lexer, word string, style Style)
	clearWords(l *Lexer)
	isFunction(l *Lexer, buf Buffer, start, end int) bool
}

// normalize case-folds a word according to the language's case sensitivity.
func (l *Lexer) normalize(word string) string {
	if l.language != nil && l.language.CaseSensitive {
		return word
	}
	return strings.ToLower(word)
}

// defaultStyler styles words from the word table, falling back to
// preprocessor, number and default classification.
type defaultStyler struct{}

func (defaultStyler) styleWord(l *Lexer, s *lexState, word string) {
	key := l.normalize(word)

	if style, ok := l.words[key]; ok && style != StyleDefault {
		s.sink.SetStyling(len(word), style)
		return
	}

	if l.language != nil && l.language.Preprocessor != "" && strings.HasPrefix(key, l.language.Preprocessor) {
		s.sink.SetStyling(len(word), StylePreprocessor)
		return
	}

	if isInteger(word) || isFloat(word) {
		s.sink.SetStyling(len(word), StyleNumber)
		return
	}

	s.sink.SetStyling(len(word), StyleDefault)
}

func (defaultStyler) addWord(l *Lexer, word string, style Style) {
	l.words[l.normalize(word)] = style
}

func (defaultStyler) clearWords(l *Lexer) {
	l.words = make(map[string]Style)
}

func (defaultStyler) isFunction(l *Lexer, buf Buffer, start, end int) bool {
	return l.words[l.normalize(buf.TextRange(start, end))] == StyleFunction
}

// callStyler keeps function names in a separate set and only styles them as
// functions when the word is followed (skipping whitespace) by "(".
type callStyler struct {
	functions map[string]struct{}
}

func (cs *callStyler) styleWord(l *Lexer, s *lexState, word string) {
	// Skip whitespace after the word
	idx := s.pos
	for idx < s.end {
		if !l.whitespaceChars[s.buf.CharAt(idx)] {
			break
		}
		idx++
	}

	if s.buf.CharAt(idx) == '(' {
		if _, ok := cs.functions[l.normalize(word)]; ok {
			s.sink.SetStyling(len(word), StyleFunction)
			return
		}
	}

	defaultStyler{}.styleWord(l, s, word)
}

func (cs *callStyler) addWord(l *Lexer, word string, style Style) {
	if style == StyleFunction {
		cs.functions[l.normalize(word)] = struct{}{}
		return
	}
	defaultStyler{}.addWord(l, word, style)
}

func (cs *callStyler) clearWords(l *Lexer) {
	cs.functions = make(map[string]struct{})
	defaultStyler{}.clearWords(l)
}

func (cs *callStyler) isFunction(l *Lexer, buf Buffer, start, end int) bool {
	// Skip whitespace after the word
	idx := end
	length := buf.TextLength()
	for idx < length {
		if !l.whitespaceChars[buf.CharAt(idx)] {
			break
		}
		idx++
	}
	if buf.CharAt(idx) != '(' {
		return false
	}

	_, ok := cs.functions[l.normalize(buf.TextRange(start, end))]
	return ok
}
