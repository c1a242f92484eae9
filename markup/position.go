package markup

import "sort"

// Position is a human-readable location in the source buffer.
type Position struct {
	Offset int
	Line   int // 1-based
	Column int // 1-based, in bytes
}

// LineIndex translates byte offsets into line/column positions. Build it
// once per buffer; lookups are O(log n) in the number of lines.
type LineIndex struct {
	src    string
	starts []int
}

func NewLineIndex(src string) *LineIndex {
	starts := []int{0}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &LineIndex{src: src, starts: starts}
}

func (ix *LineIndex) At(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(ix.src) {
		offset = len(ix.src)
	}
	line := sort.Search(len(ix.starts), func(i int) bool {
		return ix.starts[i] > offset
	})
	return Position{
		Offset: offset,
		Line:   line,
		Column: offset - ix.starts[line-1] + 1,
	}
}
