package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestParseLossless(t *testing.T) {
	sources := []string{
		"",
		"(+ 1 2)",
		"(a (b c))",
		"[1 2 3] {:a 1, :b 2} #{:x}",
		"(def ^:private x \"doc\")",
		"'(quoted list) `(syntax ~unquoted ~@spliced)",
		"#\"regex.*\" #_(ignored) #'a-var @an-atom",
		"#::{:a 1} #:ns{:b 2} #?(:clj 1 :cljs 2)",
		"#(inc %) #inst \"2020-01-01\"",
		"; a comment\n(foo \\newline \\a)\n\n\"multi\nline\"",
		"  (leading ws)\t",
	}
	for _, src := range sources {
		tree, err := Parse(src)
		require.NoError(t, err, "source %q", src)
		assert.Equal(t, src, tree.Source())
		assert.Equal(t, src, tree.Root().Source(), "root must span the whole input: %q", src)
	}
}

func TestParseTags(t *testing.T) {
	tests := []struct {
		src string
		tag Tag
	}{
		{"(a)", TagList},
		{"[a]", TagVector},
		{"{:a 1}", TagMap},
		{"#{1}", TagSet},
		{"sym", TagToken},
		{`"str"`, TagToken},
		{"\"two\nlines\"", TagMultiLine},
		{`#"re"`, TagRegex},
		{"^:k v", TagMeta},
		{"#^:k v", TagMetaStar},
		{"#?(:clj 1)", TagReaderMacro},
		{"#_x", TagReaderMacro},
		{"#'v", TagReaderMacro},
		{"@a", TagReaderMacro},
		{"#(inc %)", TagReaderMacro},
		{"#::{:a 1}", TagNamespacedMap},
		{"'x", TagQuote},
		{"`x", TagSyntaxQuote},
		{"~x", TagUnquote},
		{"~@xs", TagUnquoteSplicing},
	}
	for _, tt := range tests {
		tree, err := Parse(tt.src)
		require.NoError(t, err, tt.src)
		first, ok := tree.Root().FirstChild()
		require.True(t, ok, tt.src)
		assert.Equal(t, tt.tag, first.Tag(), "source %q", tt.src)
		assert.Equal(t, tt.src, first.Source(), "source %q", tt.src)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unterminated string", `(foo "bar`},
		{"unclosed list", "(a (b c)"},
		{"unmatched closer", "a)"},
		{"bare quote", "'"},
		{"unterminated regex", `#"abc`},
		{"namespaced map without map", "#:ns 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := Parse(tt.src)
			require.Error(t, err)
			// even malformed input keeps the tree lossless
			assert.Equal(t, tt.src, tree.Root().Source())
			for _, e := range multierr.Errors(err) {
				var perr *Error
				require.ErrorAs(t, e, &perr)
				assert.NotZero(t, perr.Pos.Line)
			}
		})
	}
}

func TestPositions(t *testing.T) {
	tree, err := Parse("(a\n  (b c))")
	require.NoError(t, err)

	outer, ok := tree.Root().FirstChild()
	require.True(t, ok)
	assert.Equal(t, Pos{1, 1}, outer.StartPos())
	assert.Equal(t, Pos{2, 8}, outer.EndPos())

	// (b c) starts at line 2, column 3
	var inner Cursor
	c, ok := outer.FirstChild()
	for ok {
		if c.Tag() == TagList {
			inner = c
			break
		}
		c, ok = c.NextSibling()
	}
	require.True(t, inner.Valid())
	assert.Equal(t, Pos{2, 3}, inner.StartPos())
	assert.Equal(t, Pos{2, 7}, inner.EndPos())
	assert.Equal(t, "(b c)", inner.Source())
}

func TestPosOffsetRoundTrip(t *testing.T) {
	tree, err := Parse("(αβ\n γ)")
	require.NoError(t, err)

	off, err := tree.PosToOffset(Pos{2, 2})
	require.NoError(t, err)
	assert.Equal(t, Pos{2, 2}, tree.OffsetToPos(off))
	assert.Equal(t, "γ", string([]byte(tree.Source())[off:off+2]))

	_, err = tree.PosToOffset(Pos{3, 1})
	assert.Error(t, err)
	_, err = tree.PosToOffset(Pos{1, 40})
	assert.Error(t, err)

	// caret one past the end of a line is legal
	_, err = tree.PosToOffset(Pos{2, 4})
	assert.NoError(t, err)
}
