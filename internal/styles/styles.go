// Package styles maps lexer styles to lipgloss terminal styles and applies
// theme overrides from configuration.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/folio/internal/lexer"
	"github.com/zjrosen/folio/internal/log"
)

// Default colors per token style.
var (
	CommentColor      = lipgloss.Color("#6A9955")
	CommentDocColor   = lipgloss.Color("#559955")
	StringColor       = lipgloss.Color("#CE9178")
	CharColor         = lipgloss.Color("#D7BA7D")
	KeywordColor      = lipgloss.Color("#569CD6")
	ConstantColor     = lipgloss.Color("#4FC1FF")
	TypeColor         = lipgloss.Color("#4EC9B0")
	PropertyColor     = lipgloss.Color("#9CDCFE")
	FunctionColor     = lipgloss.Color("#DCDCAA")
	OperatorColor     = lipgloss.Color("#D4D4D4")
	NumberColor       = lipgloss.Color("#B5CEA8")
	PreprocessorColor = lipgloss.Color("#C586C0")

	// Gutter styles for the viewer
	LineNumberStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5A5A5A"))
	FoldMarkerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
	CursorLineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Bold(true)
	StatusBarStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
)

// Theme maps each lexer style to a render style.
type Theme struct {
	styles map[lexer.Style]lipgloss.Style
}

// DefaultTheme returns the builtin theme.
func DefaultTheme() *Theme {
	t := &Theme{styles: make(map[lexer.Style]lipgloss.Style)}
	t.styles[lexer.StyleDefault] = lipgloss.NewStyle()
	t.styles[lexer.StyleComment] = lipgloss.NewStyle().Foreground(CommentColor)
	t.styles[lexer.StyleCommentDoc] = lipgloss.NewStyle().Foreground(CommentDocColor)
	t.styles[lexer.StyleString] = lipgloss.NewStyle().Foreground(StringColor)
	t.styles[lexer.StyleChar] = lipgloss.NewStyle().Foreground(CharColor)
	t.styles[lexer.StyleKeyword] = lipgloss.NewStyle().Foreground(KeywordColor).Bold(true)
	t.styles[lexer.StyleConstant] = lipgloss.NewStyle().Foreground(ConstantColor)
	t.styles[lexer.StyleType] = lipgloss.NewStyle().Foreground(TypeColor)
	t.styles[lexer.StyleProperty] = lipgloss.NewStyle().Foreground(PropertyColor)
	t.styles[lexer.StyleFunction] = lipgloss.NewStyle().Foreground(FunctionColor)
	t.styles[lexer.StyleOperator] = lipgloss.NewStyle().Foreground(OperatorColor)
	t.styles[lexer.StyleNumber] = lipgloss.NewStyle().Foreground(NumberColor)
	t.styles[lexer.StylePreprocessor] = lipgloss.NewStyle().Foreground(PreprocessorColor).Bold(true)
	return t
}

// For returns the render style for a lexer style.
func (t *Theme) For(style lexer.Style) lipgloss.Style {
	if s, ok := t.styles[style]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

// Apply overrides theme colors from configuration. Keys are style names
// ("keyword", "comment", ...), values are hex colors. Unknown style names
// are logged and ignored.
func (t *Theme) Apply(colors map[string]string) {
	for name, hex := range colors {
		style, ok := lexer.ParseStyle(name)
		if !ok {
			log.Warn(log.CatConfig, "unknown theme style", "name", name)
			continue
		}
		base := t.For(style)
		t.styles[style] = base.Foreground(lipgloss.Color(hex))
	}
}
