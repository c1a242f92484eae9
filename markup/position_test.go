package markup

import "testing"

func TestLineIndexAt(t *testing.T) {
	src := "ab\ncde\n\nf"
	index := NewLineIndex(src)

	tests := []struct {
		offset int
		line   int
		column int
	}{
		{0, 1, 1},
		{1, 1, 2},
		{2, 1, 3}, // the newline itself
		{3, 2, 1}, // 'c'
		{5, 2, 3}, // 'e'
		{7, 3, 1}, // empty line
		{8, 4, 1}, // 'f'
		{9, 4, 2}, // end of input
	}

	for _, tt := range tests {
		pos := index.At(tt.offset)
		if pos.Line != tt.line || pos.Column != tt.column {
			t.Errorf("At(%d) = %d:%d, want %d:%d",
				tt.offset, pos.Line, pos.Column, tt.line, tt.column)
		}
	}
}

func TestLineIndexClamps(t *testing.T) {
	index := NewLineIndex("ab")

	if pos := index.At(-5); pos.Offset != 0 {
		t.Errorf("At(-5).Offset = %d, want 0", pos.Offset)
	}
	if pos := index.At(100); pos.Offset != 2 {
		t.Errorf("At(100).Offset = %d, want 2", pos.Offset)
	}
}

func TestLineIndexEmpty(t *testing.T) {
	pos := NewLineIndex("").At(0)
	if pos.Line != 1 || pos.Column != 1 {
		t.Errorf("At(0) = %d:%d, want 1:1", pos.Line, pos.Column)
	}
}
