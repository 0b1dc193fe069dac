package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/zjrosen/folio/internal/lexer"
)

func TestDefaultTheme_CoversAllStyles(t *testing.T) {
	theme := DefaultTheme()
	for _, st := range lexer.Styles() {
		_, ok := theme.styles[st]
		assert.True(t, ok, "style %s has no theme entry", st)
	}
}

func TestTheme_ForUnknownStyle(t *testing.T) {
	theme := DefaultTheme()
	assert.Equal(t, lipgloss.NewStyle(), theme.For(lexer.Style(200)))
}

func TestTheme_Apply(t *testing.T) {
	theme := DefaultTheme()

	theme.Apply(map[string]string{
		"keyword":  "#FF0000",
		"sparkles": "#00FF00", // unknown, ignored
	})

	got := theme.For(lexer.StyleKeyword)
	assert.Equal(t, lipgloss.Color("#FF0000"), got.GetForeground())
	assert.True(t, got.GetBold(), "override keeps non-color attributes")

	// Untouched styles keep their defaults.
	assert.Equal(t, CommentColor, theme.For(lexer.StyleComment).GetForeground())
}
