package object

import (
	"strings"

	"github.com/cljtools/cljsel/internal/syntax"
)

// ExtentMode selects between a node's full span and its interior.
type ExtentMode string

const (
	ExtentWhole  ExtentMode = "whole"
	ExtentInside ExtentMode = "inside"
)

// Whole returns the node's full source span.
func Whole(c syntax.Cursor) Range {
	lo, hi := c.Span()
	return Range{lo, hi}
}

// Inside returns the node's content span with its delimiters stripped.
// Nodes without a meaningful interior fall back to the whole span.
func Inside(c syntax.Cursor) Range {
	switch c.Tag() {
	case syntax.TagList, syntax.TagMap, syntax.TagVector, syntax.TagMultiLine:
		return shrink(c, 1, 1)
	case syntax.TagRegex, syntax.TagSet:
		return shrink(c, 2, 1)
	case syntax.TagNamespacedMap, syntax.TagReaderMacro,
		syntax.TagSyntaxQuote, syntax.TagUnquote, syntax.TagUnquoteSplicing:
		if p, ok := payload(c); ok {
			return Inside(p)
		}
		return Whole(c)
	case syntax.TagToken:
		if strings.HasPrefix(c.Source(), `"`) {
			return shrink(c, 1, 1)
		}
		return Whole(c)
	default:
		return Whole(c)
	}
}

// Extent applies the requested mode to the node at c.
func Extent(c syntax.Cursor, mode ExtentMode) Range {
	if mode == ExtentInside {
		return Inside(c)
	}
	return Whole(c)
}

// shrink trims delimiter bytes off both ends of the node's span. An
// empty interior collapses to a zero-width range at the inner start.
func shrink(c syntax.Cursor, lead, trail int) Range {
	lo, hi := c.Span()
	lo += lead
	hi -= trail
	if hi < lo {
		hi = lo
	}
	return Range{lo, hi}
}
