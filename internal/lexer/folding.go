package lexer

// UpdateFolding writes fold levels for every line from startLine to the end
// of the buffer, applying each line's recorded fold increment. The base
// level is read from the sink at startLine and levels never drop below 0.
//
// When a line opens a fold but carries no word-bearing token (eg. a lone
// opening brace), the fold header is attached to the previous line instead,
// which places the fold point where editors expect it.
func (l *Lexer) UpdateFolding(buf Buffer, sink Sink, startLine int) {
	level := sink.FoldLevel(startLine)
	if level < 0 {
		level = 0
	}

	for line := startLine; line < buf.LineCount(); line++ {
		info := l.LineInfo(line)

		next := level + info.FoldIncrement
		if next < 0 {
			next = 0
		}

		if next > level {
			if !info.HasWord {
				sink.SetFoldLevel(line-1, level, true)
				sink.SetFoldLevel(line, next, false)
			} else {
				sink.SetFoldLevel(line, level, true)
			}
		} else {
			sink.SetFoldLevel(line, level, false)
		}

		level = next
	}
}
