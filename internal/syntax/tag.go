package syntax

// Tag is the closed set of node categories produced by the reader.
type Tag uint8

const (
	// TagForms is the document root.
	TagForms Tag = iota

	// Containers.
	TagList
	TagMap
	TagSet
	TagVector

	// Leaves.
	TagToken
	TagRegex
	TagMultiLine
	TagWhitespace
	TagNewline
	TagComment

	// Decorators: a marker/dispatch child followed by a payload child.
	TagMeta
	TagMetaStar
	TagReaderMacro
	TagNamespacedMap

	// Quoting family: a single quoted form.
	TagQuote
	TagSyntaxQuote
	TagUnquote
	TagUnquoteSplicing
)

var tagNames = map[Tag]string{
	TagForms:           "forms",
	TagList:            "list",
	TagMap:             "map",
	TagSet:             "set",
	TagVector:          "vector",
	TagToken:           "token",
	TagRegex:           "regex",
	TagMultiLine:       "multi-line",
	TagWhitespace:      "whitespace",
	TagNewline:         "newline",
	TagComment:         "comment",
	TagMeta:            "meta",
	TagMetaStar:        "meta*",
	TagReaderMacro:     "reader-macro",
	TagNamespacedMap:   "namespaced-map",
	TagQuote:           "quote",
	TagSyntaxQuote:     "syntax-quote",
	TagUnquote:         "unquote",
	TagUnquoteSplicing: "unquote-splicing",
}

func (t Tag) String() string {
	if s, ok := tagNames[t]; ok {
		return s
	}
	return "unknown"
}

// IsContainer reports whether t is a delimited collection tag.
func (t Tag) IsContainer() bool {
	switch t {
	case TagList, TagMap, TagSet, TagVector:
		return true
	}
	return false
}

// IsLeaf reports whether t is an atomic value tag.
func (t Tag) IsLeaf() bool {
	switch t {
	case TagToken, TagRegex, TagMultiLine:
		return true
	}
	return false
}

// IsDecorator reports whether t wraps a marker child and a payload child.
func (t Tag) IsDecorator() bool {
	switch t {
	case TagMeta, TagMetaStar, TagReaderMacro, TagNamespacedMap:
		return true
	}
	return false
}

// IsQuoting reports whether t belongs to the quoting family.
func (t Tag) IsQuoting() bool {
	switch t {
	case TagQuote, TagSyntaxQuote, TagUnquote, TagUnquoteSplicing:
		return true
	}
	return false
}

// IsBlank reports whether t carries no syntactic content of its own.
func (t Tag) IsBlank() bool {
	switch t {
	case TagWhitespace, TagNewline, TagComment:
		return true
	}
	return false
}
