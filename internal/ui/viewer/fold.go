package viewer

// visibleLines returns the buffer lines currently visible, honoring
// collapsed fold headers: lines after a collapsed header stay hidden while
// their fold level exceeds the header's level.
func (m *Model) visibleLines() []int {
	buf := m.hl.Buffer()
	rec := m.hl.Recorder()

	visible := make([]int, 0, buf.LineCount())
	hiding := false
	hideLevel := 0

	for line := 0; line < buf.LineCount(); line++ {
		fold := rec.FoldAt(line)

		if hiding {
			if fold.Level > hideLevel {
				continue
			}
			hiding = false
		}

		visible = append(visible, line)

		if fold.Header && m.collapsed[line] {
			hiding = true
			hideLevel = fold.Level
		}
	}

	return visible
}

// toggleFold collapses or expands the fold at line. When line is not a fold
// header the nearest header above it at a shallower level is toggled.
func (m *Model) toggleFold(line int) {
	header, ok := m.foldHeaderFor(line)
	if !ok {
		return
	}
	if m.collapsed[header] {
		delete(m.collapsed, header)
	} else {
		m.collapsed[header] = true
		// Collapsing a region above the cursor moves the cursor to its header
		if m.cursor > header {
			m.cursor = header
		}
	}
}

// foldHeaderFor finds the fold header covering line.
func (m *Model) foldHeaderFor(line int) (int, bool) {
	rec := m.hl.Recorder()

	if rec.FoldAt(line).Header {
		return line, true
	}

	level := rec.FoldAt(line).Level
	for ln := line - 1; ln >= 0; ln-- {
		fold := rec.FoldAt(ln)
		if fold.Header && fold.Level < level {
			return ln, true
		}
		if fold.Level < level {
			level = fold.Level
		}
	}
	return 0, false
}

// closeAllFolds collapses every fold header in the buffer.
func (m *Model) closeAllFolds() {
	buf := m.hl.Buffer()
	rec := m.hl.Recorder()
	for line := 0; line < buf.LineCount(); line++ {
		if rec.FoldAt(line).Header {
			m.collapsed[line] = true
		}
	}
	if header, ok := m.foldHeaderFor(m.cursor); ok && m.cursor != header {
		m.cursor = header
	}
}
