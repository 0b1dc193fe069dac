package render

import "github.com/zjrosen/folio/internal/lexer"

// Run is a contiguous range of characters sharing one style.
type Run struct {
	Length int
	Style  lexer.Style
}

// Fold is the fold state of one line.
type Fold struct {
	Level  int
	Header bool
}

// Recorder implements lexer.Sink by recording per-character styles, the raw
// style runs, and per-line fold levels.
type Recorder struct {
	styles []lexer.Style
	pos    int
	runs   []Run
	folds  map[int]Fold
}

// NewRecorder creates a recorder for a buffer of size bytes.
func NewRecorder(size int) *Recorder {
	return &Recorder{
		styles: make([]lexer.Style, size),
		folds:  make(map[int]Fold),
	}
}

// Resize grows or shrinks the style array, keeping existing styles where
// possible. Fold levels are kept as-is; restyling overwrites them.
func (r *Recorder) Resize(size int) {
	if size == len(r.styles) {
		return
	}
	styles := make([]lexer.Style, size)
	copy(styles, r.styles)
	r.styles = styles
}

// StartStyling positions the recorder for subsequent SetStyling calls.
func (r *Recorder) StartStyling(pos int) {
	if pos < 0 {
		pos = 0
	}
	r.pos = pos
	r.runs = r.runs[:0]
}

// SetStyling records a style for the next length characters.
func (r *Recorder) SetStyling(length int, style lexer.Style) {
	if length <= 0 {
		return
	}
	r.runs = append(r.runs, Run{Length: length, Style: style})
	for i := 0; i < length; i++ {
		if r.pos >= 0 && r.pos < len(r.styles) {
			r.styles[r.pos] = style
		}
		r.pos++
	}
}

// SetFoldLevel records the fold state of a line. Negative lines are ignored
// (a fold header pushed above the first line has nowhere to go).
func (r *Recorder) SetFoldLevel(line, level int, header bool) {
	if line < 0 {
		return
	}
	r.folds[line] = Fold{Level: level, Header: header}
}

// FoldLevel returns the recorded fold level for a line, 0 if none.
func (r *Recorder) FoldLevel(line int) int {
	return r.folds[line].Level
}

// FoldAt returns the full fold state for a line.
func (r *Recorder) FoldAt(line int) Fold {
	return r.folds[line]
}

// StyleAt returns the recorded style at a position.
func (r *Recorder) StyleAt(pos int) lexer.Style {
	if pos < 0 || pos >= len(r.styles) {
		return lexer.StyleDefault
	}
	return r.styles[pos]
}

// Runs returns the style runs emitted since the last StartStyling call.
func (r *Recorder) Runs() []Run {
	return r.runs
}
