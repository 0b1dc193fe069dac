package lexer

import "strings"

// Style is the category attached to a contiguous run of characters for
// syntax highlighting.
type Style uint8

const (
	StyleDefault Style = iota
	StyleComment
	StyleCommentDoc
	StyleString
	StyleChar
	StyleKeyword
	StyleConstant
	StyleType
	StyleProperty
	StyleFunction
	StyleOperator
	StyleNumber
	StylePreprocessor
)

// String returns the lowercase name of the style, as used in theme
// configuration keys.
func (s Style) String() string {
	switch s {
	case StyleDefault:
		return "default"
	case StyleComment:
		return "comment"
	case StyleCommentDoc:
		return "comment_doc"
	case StyleString:
		return "string"
	case StyleChar:
		return "char"
	case StyleKeyword:
		return "keyword"
	case StyleConstant:
		return "constant"
	case StyleType:
		return "type"
	case StyleProperty:
		return "property"
	case StyleFunction:
		return "function"
	case StyleOperator:
		return "operator"
	case StyleNumber:
		return "number"
	case StylePreprocessor:
		return "preprocessor"
	default:
		return "unknown"
	}
}

// Styles lists every style in declaration order.
func Styles() []Style {
	return []Style{
		StyleDefault, StyleComment, StyleCommentDoc, StyleString, StyleChar,
		StyleKeyword, StyleConstant, StyleType, StyleProperty, StyleFunction,
		StyleOperator, StyleNumber, StylePreprocessor,
	}
}

// ParseStyle returns the style named by s (case-insensitive).
func ParseStyle(s string) (Style, bool) {
	name := strings.ToLower(s)
	for _, st := range Styles() {
		if st.String() == name {
			return st, true
		}
	}
	return StyleDefault, false
}
