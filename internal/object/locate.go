package object

import "github.com/cljtools/cljsel/internal/syntax"

// Range is a half-open byte span over the tree's source.
type Range struct {
	Start, End int
}

// Contains reports whether r fully covers o.
func (r Range) Contains(o Range) bool {
	return r.Start <= o.Start && o.End <= r.End
}

// Locate finds the node a selection should grow to: the innermost
// classified node that properly contains the selection, or failing
// that, the first classified node at or after it. Nodes already covered
// by the selection are never offered again, which is what guarantees
// forward progress on repeated expansion.
func Locate(root syntax.Cursor, sel Range, kind Kind) (syntax.Cursor, bool) {
	var first syntax.Cursor
	haveFirst := false
	w := NewWalker(root)
	for {
		c, ok := w.Next()
		if !ok {
			break
		}
		if !Classify(c, kind) {
			continue
		}
		lo, hi := c.Span()
		span := Range{lo, hi}
		if hi <= sel.Start {
			continue // entirely before the cursor
		}
		if sel.Contains(span) {
			continue // no larger than the current selection
		}
		if span.Contains(sel) && span != sel {
			return c, true // grow by one level
		}
		if !haveFirst {
			first, haveFirst = c, true
		}
	}
	return first, haveFirst
}
