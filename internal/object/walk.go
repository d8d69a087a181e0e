package object

import "github.com/cljtools/cljsel/internal/syntax"

// Walker enumerates every node reachable from a root cursor exactly
// once, in post-order: all descendants before their parent, left before
// right. It uses cursor navigation only, so its state is one cursor.
type Walker struct {
	root    syntax.Cursor
	cur     syntax.Cursor
	started bool
	done    bool
}

// NewWalker returns a walker rooted at c. The sequence is finite and
// not restartable; build a new walker to traverse again.
func NewWalker(c syntax.Cursor) *Walker {
	return &Walker{root: c}
}

// Next returns the next node in post-order, ending with the root.
func (w *Walker) Next() (syntax.Cursor, bool) {
	switch {
	case w.done:
		return syntax.Cursor{}, false
	case !w.started:
		w.started = true
		w.cur = deepestFirst(w.root)
	case w.cur.Same(w.root):
		w.done = true
		return syntax.Cursor{}, false
	default:
		if sib, ok := w.cur.NextSibling(); ok {
			w.cur = deepestFirst(sib)
		} else {
			w.cur, _ = w.cur.Up()
		}
	}
	return w.cur, true
}

// deepestFirst descends to the leftmost leaf under c.
func deepestFirst(c syntax.Cursor) syntax.Cursor {
	for {
		ch, ok := c.FirstChild()
		if !ok {
			return c
		}
		c = ch
	}
}
