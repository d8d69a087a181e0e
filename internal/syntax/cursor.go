package syntax

// Cursor is a navigable view over a Tree. It keeps a path of
// (parent handle, child index) frames instead of parent pointers, so
// moving up is a pop and the tree itself stays acyclic. Cursors are
// values; navigation returns a new cursor and never mutates the tree.
type Cursor struct {
	t     *Tree
	stack []frame
	h     int
}

type frame struct {
	parent int
	idx    int
}

func (c Cursor) push(parent, idx, h int) Cursor {
	stack := make([]frame, len(c.stack), len(c.stack)+1)
	copy(stack, c.stack)
	return Cursor{t: c.t, stack: append(stack, frame{parent, idx}), h: h}
}

// Valid reports whether the cursor points at a node.
func (c Cursor) Valid() bool {
	return c.t != nil
}

// Same reports whether two cursors address the same node.
func (c Cursor) Same(o Cursor) bool {
	return c.t == o.t && c.h == o.h
}

// Tag returns the tag of the current node.
func (c Cursor) Tag() Tag {
	return c.t.nodes[c.h].tag
}

// Span returns the half-open byte span of the current node.
func (c Cursor) Span() (lo, hi int) {
	n := c.t.nodes[c.h]
	return n.lo, n.hi
}

// Source returns the exact source substring of the current node.
func (c Cursor) Source() string {
	n := c.t.nodes[c.h]
	return c.t.src[n.lo:n.hi]
}

// StartPos returns the position of the node's first character.
func (c Cursor) StartPos() Pos {
	n := c.t.nodes[c.h]
	return c.t.OffsetToPos(n.lo)
}

// EndPos returns the position of the node's last character. For an
// empty node it equals StartPos.
func (c Cursor) EndPos() Pos {
	n := c.t.nodes[c.h]
	if n.hi <= n.lo {
		return c.t.OffsetToPos(n.lo)
	}
	return c.t.OffsetToPos(c.t.LastRuneStart(n.hi))
}

// Tree returns the tree the cursor navigates.
func (c Cursor) Tree() *Tree {
	return c.t
}

// Up moves to the parent node.
func (c Cursor) Up() (Cursor, bool) {
	if len(c.stack) == 0 {
		return Cursor{}, false
	}
	top := c.stack[len(c.stack)-1]
	return Cursor{t: c.t, stack: c.stack[:len(c.stack)-1], h: top.parent}, true
}

// FirstChild moves to the first child node.
func (c Cursor) FirstChild() (Cursor, bool) {
	children := c.t.nodes[c.h].children
	if len(children) == 0 {
		return Cursor{}, false
	}
	return c.push(c.h, 0, children[0]), true
}

// NextSibling moves to the following sibling.
func (c Cursor) NextSibling() (Cursor, bool) {
	return c.sibling(1)
}

// PrevSibling moves to the preceding sibling.
func (c Cursor) PrevSibling() (Cursor, bool) {
	return c.sibling(-1)
}

func (c Cursor) sibling(delta int) (Cursor, bool) {
	if len(c.stack) == 0 {
		return Cursor{}, false
	}
	top := c.stack[len(c.stack)-1]
	siblings := c.t.nodes[top.parent].children
	idx := top.idx + delta
	if idx < 0 || idx >= len(siblings) {
		return Cursor{}, false
	}
	next := Cursor{t: c.t, stack: c.stack[:len(c.stack)-1], h: siblings[idx]}
	return next.push(top.parent, idx, siblings[idx]), true
}
