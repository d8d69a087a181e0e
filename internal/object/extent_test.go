package object

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cljtools/cljsel/internal/syntax"
)

func insideText(t *testing.T, tree *syntax.Tree, src string, tag syntax.Tag) string {
	t.Helper()
	r := Inside(findNode(t, tree, src, tag))
	return tree.Source()[r.Start:r.End]
}

func TestInsideStripsDelimiters(t *testing.T) {
	tree := parse(t, `(+ 1 2) [a b] {:k 1} #{x y} #"re+" "str" "two
lines" 42 sym :kw`)

	assert.Equal(t, "+ 1 2", insideText(t, tree, "(+ 1 2)", syntax.TagList))
	assert.Equal(t, "a b", insideText(t, tree, "[a b]", syntax.TagVector))
	assert.Equal(t, ":k 1", insideText(t, tree, "{:k 1}", syntax.TagMap))
	assert.Equal(t, "x y", insideText(t, tree, "#{x y}", syntax.TagSet))
	assert.Equal(t, "re+", insideText(t, tree, `#"re+"`, syntax.TagRegex))
	assert.Equal(t, "str", insideText(t, tree, `"str"`, syntax.TagToken))
	assert.Equal(t, "two\nlines", insideText(t, tree, "\"two\nlines\"", syntax.TagMultiLine))

	// no meaningful interior: whole extent
	assert.Equal(t, "42", insideText(t, tree, "42", syntax.TagToken))
	assert.Equal(t, "sym", insideText(t, tree, "sym", syntax.TagToken))
	assert.Equal(t, ":kw", insideText(t, tree, ":kw", syntax.TagToken))
}

func TestInsideRecursesThroughWrappers(t *testing.T) {
	tree := parse(t, "`(a b) ~(c) ~@(d) #_(e f) #::{:g 1}")

	assert.Equal(t, "a b", insideText(t, tree, "`(a b)", syntax.TagSyntaxQuote))
	assert.Equal(t, "c", insideText(t, tree, "~(c)", syntax.TagUnquote))
	assert.Equal(t, "d", insideText(t, tree, "~@(d)", syntax.TagUnquoteSplicing))
	assert.Equal(t, "e f", insideText(t, tree, "#_(e f)", syntax.TagReaderMacro))
	assert.Equal(t, ":g 1", insideText(t, tree, "#::{:g 1}", syntax.TagNamespacedMap))
}

func TestInsidePlainQuoteKeepsWholeSpan(t *testing.T) {
	tree := parse(t, "'(a b)")
	assert.Equal(t, "'(a b)", insideText(t, tree, "'(a b)", syntax.TagQuote))
}

func TestInsideEmptyContainerCollapses(t *testing.T) {
	tree := parse(t, "() #{}")

	r := Inside(findNode(t, tree, "()", syntax.TagList))
	assert.Equal(t, r.Start, r.End)
	assert.Equal(t, 1, r.Start)

	r = Inside(findNode(t, tree, "#{}", syntax.TagSet))
	assert.Equal(t, r.Start, r.End)
}

// Extent/delimiter symmetry: the inside span plus the stripped
// delimiters reconstructs the whole span exactly.
func TestExtentDelimiterSymmetry(t *testing.T) {
	tree := parse(t, `(a [b {:c 1} #{d}] "s" #"r")`)

	for _, tt := range []struct {
		src        string
		tag        syntax.Tag
		open, shut int
	}{
		{`(a [b {:c 1} #{d}] "s" #"r")`, syntax.TagList, 1, 1},
		{"[b {:c 1} #{d}]", syntax.TagVector, 1, 1},
		{"{:c 1}", syntax.TagMap, 1, 1},
		{"#{d}", syntax.TagSet, 2, 1},
		{`"s"`, syntax.TagToken, 1, 1},
		{`#"r"`, syntax.TagRegex, 2, 1},
	} {
		c := findNode(t, tree, tt.src, tt.tag)
		whole := Whole(c)
		inside := Inside(c)
		src := tree.Source()
		reassembled := src[whole.Start:whole.Start+tt.open] +
			src[inside.Start:inside.End] +
			src[whole.End-tt.shut:whole.End]
		assert.Equal(t, src[whole.Start:whole.End], reassembled, tt.src)
	}
}
