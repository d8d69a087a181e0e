package syntax

import (
	"fmt"
	"sort"
	"unicode/utf8"
)

// Tree is a lossless parse tree over a single source text. Nodes live in
// an arena and are addressed by handle; handle 0 is the forms root. The
// tree is read-only once built and safe for concurrent readers.
type Tree struct {
	src   string
	lines []int // byte offset of each line start
	nodes []node
}

type node struct {
	tag      Tag
	lo, hi   int // byte span, half-open
	children []int
}

// Source returns the full source text the tree was built from.
func (t *Tree) Source() string {
	return t.src
}

// Root returns a cursor at the forms root.
func (t *Tree) Root() Cursor {
	return Cursor{t: t, h: 0}
}

// OffsetToPos converts a byte offset into a 1-based (line, column)
// position. Offsets at or past the end of input map to the position one
// past the final rune.
func (t *Tree) OffsetToPos(off int) Pos {
	if off < 0 {
		off = 0
	}
	if off > len(t.src) {
		off = len(t.src)
	}
	line := sort.Search(len(t.lines), func(i int) bool { return t.lines[i] > off })
	start := t.lines[line-1]
	col := 1 + utf8.RuneCountInString(t.src[start:off])
	return Pos{Line: line, Col: col}
}

// PosToOffset converts a 1-based position into a byte offset. The column
// may point one past the final rune of its line (an end-of-line caret);
// anything beyond that is out of range.
func (t *Tree) PosToOffset(p Pos) (int, error) {
	if p.Line < 1 || p.Line > len(t.lines) {
		return 0, fmt.Errorf("line %d out of range", p.Line)
	}
	if p.Col < 1 {
		return 0, fmt.Errorf("column %d out of range", p.Col)
	}
	off := t.lines[p.Line-1]
	end := len(t.src)
	if p.Line < len(t.lines) {
		end = t.lines[p.Line]
	}
	col := 1
	for col < p.Col {
		if off >= end {
			return 0, fmt.Errorf("position %s out of range", p)
		}
		_, size := utf8.DecodeRuneInString(t.src[off:])
		off += size
		col++
	}
	return off, nil
}

// LastRuneStart returns the byte offset of the final rune before off.
// It is how a half-open span end maps back to the inclusive position of
// the span's last character.
func (t *Tree) LastRuneStart(off int) int {
	if off <= 0 {
		return 0
	}
	if off > len(t.src) {
		off = len(t.src)
	}
	_, size := utf8.DecodeLastRuneInString(t.src[:off])
	return off - size
}

func lineIndex(src string) []int {
	lines := []int{0}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			lines = append(lines, i+1)
		}
	}
	return lines
}
