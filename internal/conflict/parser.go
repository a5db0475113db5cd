// Package conflict parses Jujutsu/Git-style conflict markers out of a
// snapshot of lines and projects the parsed blocks into paintable regions.
package conflict

// Section describes one side of a conflict as zero-based, inclusive line
// indices into the parsed snapshot. RangeStart..RangeEnd is the extent to
// paint. ContentStart..ContentEnd excludes marker lines and is empty when
// ContentEnd < ContentStart.
type Section struct {
	RangeStart   int
	RangeEnd     int
	ContentStart int
	ContentEnd   int
}

// Empty reports whether the section has zero content lines.
func (s Section) Empty() bool {
	return s.ContentEnd < s.ContentStart
}

// Markers records the marker lines that delimited a block.
// MiddleLine is -1 when the block never had a ======= divider.
type Markers struct {
	StartLine  int
	MiddleLine int
	FinishLine int
}

// Block is one parsed conflict. Ancestor is nil for two-sided conflicts.
type Block struct {
	Current  Section
	Incoming Section
	Ancestor *Section
	Markers  Markers
}

// Parse scans lines in a single forward pass and returns every conflict
// block in document order. Parsing never fails: malformed blocks degrade
// to best-effort sections and a block with no closing >>>>>>> before
// end-of-input is discarded entirely. Scanning resumes after each found
// block's finish line, so blocks never overlap and a start line is never
// matched twice.
func Parse(lines []string) []Block {
	var blocks []Block

	i := 0
	for i < len(lines) {
		kind := matchMarker(lines[i])
		if kind != markerHeader && kind != markerStart {
			i++
			continue
		}

		block, ok := scanBlock(lines, i)
		if !ok {
			// Unterminated block. Discard it and stop rather than
			// re-matching the same start line forever.
			break
		}

		blocks = append(blocks, block)
		i = block.Markers.FinishLine + 1
	}

	return blocks
}

// scanBlock consumes one block whose header/start marker sits at start.
// Returns ok=false when end-of-input arrives before a finish marker.
func scanBlock(lines []string, start int) (Block, bool) {
	ancestorAt := -1
	middleAt := -1

	for i := start + 1; i < len(lines); i++ {
		switch matchMarker(lines[i]) {
		case markerAncestor:
			// Only the first |||||||, and only before the divider.
			if ancestorAt < 0 && middleAt < 0 {
				ancestorAt = i
			}
		case markerMiddle:
			// Only the first ======= is the divider.
			if middleAt < 0 {
				middleAt = i
			}
		case markerFinish:
			return buildBlock(start, ancestorAt, middleAt, i), true
		}
	}

	return Block{}, false
}

func buildBlock(start, ancestorAt, middleAt, finish int) Block {
	block := Block{
		Markers: Markers{StartLine: start, MiddleLine: middleAt, FinishLine: finish},
	}

	// Current runs from its own marker line (which it paints) up to the
	// line before the next marker; with no divider at all it soaks up
	// everything before the finish line.
	currentEnd := finish - 1
	if ancestorAt >= 0 {
		currentEnd = ancestorAt - 1
	} else if middleAt >= 0 {
		currentEnd = middleAt - 1
	}
	block.Current = Section{
		RangeStart:   start,
		RangeEnd:     currentEnd,
		ContentStart: start + 1,
		ContentEnd:   currentEnd,
	}

	if ancestorAt >= 0 {
		ancestorEnd := finish - 1
		if middleAt >= 0 {
			ancestorEnd = middleAt - 1
		}
		block.Ancestor = &Section{
			RangeStart:   ancestorAt + 1,
			RangeEnd:     ancestorEnd,
			ContentStart: ancestorAt + 1,
			ContentEnd:   ancestorEnd,
		}
	}

	if middleAt >= 0 {
		// Incoming paints through its closing marker line.
		block.Incoming = Section{
			RangeStart:   middleAt + 1,
			RangeEnd:     finish,
			ContentStart: middleAt + 1,
			ContentEnd:   finish - 1,
		}
	} else {
		// No divider ever appeared: incoming degenerates to an empty
		// section sitting on the finish line.
		block.Incoming = Section{
			RangeStart:   finish,
			RangeEnd:     finish,
			ContentStart: finish,
			ContentEnd:   finish - 1,
		}
	}

	return block
}
