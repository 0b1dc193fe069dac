package render

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// ChangedLine returns the first line that differs between two revisions of
// a text, so a reload can restyle from there instead of from the top. The
// second return is false when the texts are identical.
func ChangedLine(oldText, newText string) (int, bool) {
	if oldText == newText {
		return 0, false
	}

	dmp := diffmatchpatch.New()
	prefix := dmp.DiffCommonPrefix(oldText, newText)
	if prefix > len(newText) {
		prefix = len(newText)
	}

	return strings.Count(newText[:prefix], "\n"), true
}
