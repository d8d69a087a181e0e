package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cljtools/cljsel/internal/syntax"
)

func collect(w *Walker) []string {
	var out []string
	for {
		c, ok := w.Next()
		if !ok {
			return out
		}
		out = append(out, c.Source())
	}
}

func TestWalkPostOrder(t *testing.T) {
	tree := parse(t, "(a (b c))")

	got := collect(NewWalker(tree.Root()))
	want := []string{"a", " ", "b", " ", "c", "(b c)", "(a (b c))", "(a (b c))"}
	// the last two entries are the outer list and the forms root, whose
	// sources coincide because the list spans the whole input
	assert.Equal(t, want, got)
}

func TestWalkVisitsEachNodeOnce(t *testing.T) {
	tree := parse(t, "(a [b {:c 1}] #{2})\n;; done\n")

	seen := map[string]int{}
	w := NewWalker(tree.Root())
	count := 0
	for {
		c, ok := w.Next()
		if !ok {
			break
		}
		lo, hi := c.Span()
		seen[c.Tag().String()+c.Source()+string(rune(lo))+string(rune(hi))]++
		count++
	}
	for key, n := range seen {
		assert.Equal(t, 1, n, "node visited twice: %s", key)
	}
	assert.Greater(t, count, 10)
}

func TestWalkLeafRoot(t *testing.T) {
	tree := parse(t, "(a)")
	list, ok := tree.Root().FirstChild()
	require.True(t, ok)
	a, ok := list.FirstChild()
	require.True(t, ok)

	got := collect(NewWalker(a))
	assert.Equal(t, []string{"a"}, got)
}

func TestWalkSubtree(t *testing.T) {
	tree := parse(t, "(a (b c) d)")
	inner := findNode(t, tree, "(b c)", syntax.TagList)

	got := collect(NewWalker(inner))
	assert.Equal(t, []string{"b", " ", "c", "(b c)"}, got)
}
