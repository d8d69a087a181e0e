package syntax

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/multierr"
)

// Error is a positioned reader error.
type Error struct {
	Pos Pos
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

// Parse reads src into a lossless tree. The returned tree always spans
// the entire input, even when the error is non-nil; errors for every
// malformed region are accumulated and returned together.
func Parse(src string) (*Tree, error) {
	r := &reader{
		t: &Tree{src: src, lines: lineIndex(src)},
	}
	root := r.alloc()
	children := r.readForms(0)
	r.t.nodes[root] = node{tag: TagForms, lo: 0, hi: len(src), children: children}
	return r.t, r.errs
}

type reader struct {
	t    *Tree
	off  int
	errs error
}

func (r *reader) alloc() int {
	r.t.nodes = append(r.t.nodes, node{})
	return len(r.t.nodes) - 1
}

func (r *reader) fail(off int, format string, args ...any) {
	err := &Error{Pos: r.t.OffsetToPos(off), Msg: fmt.Sprintf(format, args...)}
	r.errs = multierr.Append(r.errs, err)
}

func (r *reader) eof() bool {
	return r.off >= len(r.t.src)
}

func (r *reader) peek() byte {
	return r.t.src[r.off]
}

func (r *reader) leaf(tag Tag, lo, hi int) int {
	h := r.alloc()
	r.t.nodes[h] = node{tag: tag, lo: lo, hi: hi}
	return h
}

// readForms reads nodes until EOF or a closing delimiter. The caller
// owning the closer passes depth > 0 so an unexpected closer at the top
// level is flagged instead of swallowed.
func (r *reader) readForms(depth int) []int {
	var children []int
	for !r.eof() {
		if c := r.peek(); c == ')' || c == ']' || c == '}' {
			if depth > 0 {
				return children
			}
			r.fail(r.off, "unmatched delimiter %q", string(c))
			children = append(children, r.leaf(TagToken, r.off, r.off+1))
			r.off++
			continue
		}
		children = append(children, r.readNode())
	}
	return children
}

func (r *reader) readNode() int {
	lo := r.off
	switch c := r.peek(); {
	case c == ' ' || c == '\t' || c == ',':
		for !r.eof() && (r.peek() == ' ' || r.peek() == '\t' || r.peek() == ',') {
			r.off++
		}
		return r.leaf(TagWhitespace, lo, r.off)
	case c == '\n' || c == '\r':
		for !r.eof() && (r.peek() == '\n' || r.peek() == '\r') {
			r.off++
		}
		return r.leaf(TagNewline, lo, r.off)
	case c == ';':
		for !r.eof() && r.peek() != '\n' {
			r.off++
		}
		if !r.eof() {
			r.off++ // comment owns its newline
		}
		return r.leaf(TagComment, lo, r.off)
	case c == '(':
		return r.readContainer(TagList, ')')
	case c == '[':
		return r.readContainer(TagVector, ']')
	case c == '{':
		return r.readContainer(TagMap, '}')
	case c == '"':
		return r.readString(lo)
	case c == '\'':
		r.off++
		return r.readWrapped(TagQuote, lo, 1)
	case c == '`':
		r.off++
		return r.readWrapped(TagSyntaxQuote, lo, 1)
	case c == '~':
		r.off++
		if !r.eof() && r.peek() == '@' {
			r.off++
			return r.readWrapped(TagUnquoteSplicing, lo, 1)
		}
		return r.readWrapped(TagUnquote, lo, 1)
	case c == '@':
		r.off++
		return r.readWrapped(TagReaderMacro, lo, 1)
	case c == '^':
		r.off++
		return r.readWrapped(TagMeta, lo, 2)
	case c == '\\':
		return r.readChar(lo)
	case c == '#':
		return r.readDispatch(lo)
	default:
		return r.readToken(lo)
	}
}

func (r *reader) readContainer(tag Tag, closer byte) int {
	h := r.alloc()
	lo := r.off
	r.off++ // opener
	children := r.readForms(1)
	switch {
	case r.eof():
		r.fail(lo, "unclosed %s", tag)
	case r.peek() != closer:
		r.fail(r.off, "mismatched delimiter %q", string(r.peek()))
		r.off++
	default:
		r.off++ // closer
	}
	r.t.nodes[h] = node{tag: tag, lo: lo, hi: r.off, children: children}
	return h
}

// readWrapped reads a prefixed form: the prefix characters have already
// been consumed and the node keeps collecting children until it has the
// wanted number of significant ones.
func (r *reader) readWrapped(tag Tag, lo, want int) int {
	h := r.alloc()
	var children []int
	got := 0
	for got < want && !r.eof() {
		if c := r.peek(); c == ')' || c == ']' || c == '}' {
			break
		}
		child := r.readNode()
		children = append(children, child)
		if !r.t.nodes[child].tag.IsBlank() {
			got++
		}
	}
	if got < want {
		r.fail(lo, "%s missing %d form(s)", tag, want-got)
	}
	r.t.nodes[h] = node{tag: tag, lo: lo, hi: r.off, children: children}
	return h
}

func (r *reader) readString(lo int) int {
	r.off++ // opening quote
	terminated := false
	for !r.eof() {
		c := r.peek()
		r.off++
		if c == '\\' && !r.eof() {
			r.off++
			continue
		}
		if c == '"' {
			terminated = true
			break
		}
	}
	if !terminated {
		r.fail(lo, "unterminated string")
	}
	tag := TagToken
	if strings.Contains(r.t.src[lo:r.off], "\n") {
		tag = TagMultiLine
	}
	return r.leaf(tag, lo, r.off)
}

func (r *reader) readChar(lo int) int {
	r.off++ // backslash
	if r.eof() {
		r.fail(lo, "unterminated character literal")
		return r.leaf(TagToken, lo, r.off)
	}
	_, size := utf8.DecodeRuneInString(r.t.src[r.off:])
	r.off += size
	// named characters like \newline, \space, λ
	for !r.eof() && isTokenByte(r.peek()) {
		r.off++
	}
	return r.leaf(TagToken, lo, r.off)
}

func (r *reader) readDispatch(lo int) int {
	r.off++ // '#'
	if r.eof() {
		r.fail(lo, "unexpected end of input after dispatch")
		return r.leaf(TagToken, lo, r.off)
	}
	switch c := r.peek(); c {
	case '{':
		h := r.alloc()
		r.off++
		children := r.readForms(1)
		if r.eof() {
			r.fail(lo, "unclosed set")
		} else {
			r.off++
		}
		r.t.nodes[h] = node{tag: TagSet, lo: lo, hi: r.off, children: children}
		return h
	case '"':
		return r.readRegex(lo)
	case '^':
		r.off++
		return r.readWrapped(TagMetaStar, lo, 2)
	case '_', '\'':
		r.off++
		return r.readWrapped(TagReaderMacro, lo, 1)
	case '(':
		return r.readWrappedNode(TagReaderMacro, lo)
	case '?':
		h := r.alloc()
		mlo := r.off
		r.off++
		if !r.eof() && r.peek() == '@' {
			r.off++
		}
		marker := r.leaf(TagToken, mlo, r.off)
		return r.finishDispatch(h, lo, marker)
	case ':':
		return r.readNamespacedMap(lo)
	default:
		if !isTokenByte(c) {
			r.fail(lo, "unexpected dispatch character %q", string(c))
			return r.leaf(TagToken, lo, r.off)
		}
		// tagged literal: #inst "...", #uuid "..."
		h := r.alloc()
		marker := r.readToken(r.off)
		return r.finishDispatch(h, lo, marker)
	}
}

// readWrappedNode wraps the next single node, whatever it is.
func (r *reader) readWrappedNode(tag Tag, lo int) int {
	h := r.alloc()
	child := r.readNode()
	r.t.nodes[h] = node{tag: tag, lo: lo, hi: r.off, children: []int{child}}
	return h
}

// finishDispatch completes a two-child dispatch node: the marker has
// been read, the payload form follows.
func (r *reader) finishDispatch(h, lo, marker int) int {
	children := []int{marker}
	got := 0
	for got < 1 && !r.eof() {
		if c := r.peek(); c == ')' || c == ']' || c == '}' {
			break
		}
		child := r.readNode()
		children = append(children, child)
		if !r.t.nodes[child].tag.IsBlank() {
			got++
		}
	}
	if got < 1 {
		r.fail(lo, "reader macro missing form")
	}
	r.t.nodes[h] = node{tag: TagReaderMacro, lo: lo, hi: r.off, children: children}
	return h
}

func (r *reader) readRegex(lo int) int {
	r.off++ // '"'
	terminated := false
	for !r.eof() {
		c := r.peek()
		r.off++
		if c == '\\' && !r.eof() {
			r.off++
			continue
		}
		if c == '"' {
			terminated = true
			break
		}
	}
	if !terminated {
		r.fail(lo, "unterminated regex")
	}
	return r.leaf(TagRegex, lo, r.off)
}

func (r *reader) readNamespacedMap(lo int) int {
	h := r.alloc()
	mlo := r.off
	r.off++ // ':'
	if !r.eof() && r.peek() == ':' {
		r.off++
	}
	for !r.eof() && isTokenByte(r.peek()) {
		r.off++
	}
	marker := r.leaf(TagToken, mlo, r.off)
	children := []int{marker}
	if r.eof() || r.peek() != '{' {
		r.fail(lo, "namespaced map missing map literal")
	} else {
		children = append(children, r.readContainer(TagMap, '}'))
	}
	r.t.nodes[h] = node{tag: TagNamespacedMap, lo: lo, hi: r.off, children: children}
	return h
}

func (r *reader) readToken(lo int) int {
	for !r.eof() && isTokenByte(r.peek()) {
		r.off++
	}
	if r.off == lo {
		// lone byte the reader has no rule for; keep it as a token so
		// the tree stays lossless
		_, size := utf8.DecodeRuneInString(r.t.src[r.off:])
		r.off += size
	}
	return r.leaf(TagToken, lo, r.off)
}

func isTokenByte(c byte) bool {
	if c >= utf8.RuneSelf {
		return true
	}
	switch c {
	case ' ', '\t', '\n', '\r', ',', '(', ')', '[', ']', '{', '}', '"', ';', '\'', '`', '~', '@', '^', '\\':
		return false
	}
	return !unicode.IsControl(rune(c))
}
