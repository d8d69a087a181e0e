// Package object locates structural text objects in parsed Lisp source:
// it classifies tree nodes into selection granularities, walks the tree
// in post-order, picks the node a selection should grow to, and turns it
// into concrete source positions.
package object

import (
	"fmt"

	"github.com/cljtools/cljsel/internal/syntax"
)

// Kind is a selection granularity.
type Kind string

const (
	KindElement  Kind = "element"
	KindForm     Kind = "form"
	KindToplevel Kind = "toplevel"
)

// ParseKind validates a request's kind field.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindElement, KindForm, KindToplevel:
		return k, nil
	}
	return "", fmt.Errorf("unknown object kind %q", s)
}

// Classify reports whether the node at c qualifies as an object of the
// given kind. It is a pure function of the node's tag chain.
func Classify(c syntax.Cursor, kind Kind) bool {
	switch kind {
	case KindElement:
		return isElement(c)
	case KindForm:
		return isForm(c)
	case KindToplevel:
		return isToplevel(c)
	}
	return false
}

// isElement: a leaf once decorators are peeled off, and not itself a
// decorator's child. A decorator absorbs its payload, so the two are
// never both reported.
func isElement(c syntax.Cursor) bool {
	if p, ok := c.Up(); ok && p.Tag().IsDecorator() {
		return false
	}
	t, ok := resolve(c, false)
	return ok && t.IsLeaf()
}

func isForm(c syntax.Cursor) bool {
	if p, ok := c.Up(); ok {
		if pt := p.Tag(); pt.IsDecorator() || pt.IsQuoting() {
			return false
		}
	}
	t, ok := resolve(c, true)
	return ok && t.IsContainer()
}

func isToplevel(c syntax.Cursor) bool {
	if !isForm(c) {
		return false
	}
	p, ok := c.Up()
	return !ok || p.Tag() == syntax.TagForms
}

// resolve unwraps decorators via their payload child until a plain tag
// is reached. With unwrapQuoting set it also unwraps the quoting family
// via its quoted form, which is what form classification needs.
func resolve(c syntax.Cursor, unwrapQuoting bool) (syntax.Tag, bool) {
	for {
		t := c.Tag()
		switch {
		case t.IsDecorator(), unwrapQuoting && t.IsQuoting():
			p, ok := payload(c)
			if !ok {
				return 0, false
			}
			c = p
		default:
			return t, true
		}
	}
}

// payload returns the node a wrapper stands for: the second significant
// child of a decorator (marker, then payload), or the sole significant
// child of a single-form wrapper. Whitespace and comments between the
// marker and the payload are skipped.
func payload(c syntax.Cursor) (syntax.Cursor, bool) {
	var significant []syntax.Cursor
	ch, ok := c.FirstChild()
	for ok {
		if !ch.Tag().IsBlank() {
			significant = append(significant, ch)
		}
		ch, ok = ch.NextSibling()
	}
	switch len(significant) {
	case 0:
		return syntax.Cursor{}, false
	case 1:
		return significant[0], true
	default:
		return significant[1], true
	}
}
