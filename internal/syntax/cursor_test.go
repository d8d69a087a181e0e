package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorNavigation(t *testing.T) {
	tree, err := Parse("(a b)")
	require.NoError(t, err)

	root := tree.Root()
	assert.Equal(t, TagForms, root.Tag())
	_, ok := root.Up()
	assert.False(t, ok, "root has no parent")
	_, ok = root.NextSibling()
	assert.False(t, ok, "root has no siblings")

	list, ok := root.FirstChild()
	require.True(t, ok)
	assert.Equal(t, TagList, list.Tag())

	a, ok := list.FirstChild()
	require.True(t, ok)
	assert.Equal(t, "a", a.Source())

	ws, ok := a.NextSibling()
	require.True(t, ok)
	assert.Equal(t, TagWhitespace, ws.Tag())

	b, ok := ws.NextSibling()
	require.True(t, ok)
	assert.Equal(t, "b", b.Source())
	_, ok = b.NextSibling()
	assert.False(t, ok)

	back, ok := b.PrevSibling()
	require.True(t, ok)
	assert.True(t, back.Same(ws))

	up, ok := b.Up()
	require.True(t, ok)
	assert.True(t, up.Same(list))
	up2, ok := up.Up()
	require.True(t, ok)
	assert.True(t, up2.Same(root))
}

func TestCursorValues(t *testing.T) {
	tree, err := Parse("(x 42)")
	require.NoError(t, err)

	list, _ := tree.Root().FirstChild()
	lo, hi := list.Span()
	assert.Equal(t, 0, lo)
	assert.Equal(t, 6, hi)
	assert.Equal(t, Pos{1, 1}, list.StartPos())
	assert.Equal(t, Pos{1, 6}, list.EndPos())

	x, _ := list.FirstChild()
	assert.Equal(t, "x", x.Source())
	assert.Equal(t, Pos{1, 2}, x.StartPos())
	assert.Equal(t, Pos{1, 2}, x.EndPos())
}
