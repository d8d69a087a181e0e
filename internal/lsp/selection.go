package lsp

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"

	"github.com/cljtools/cljsel/internal/object"
	"github.com/cljtools/cljsel/internal/syntax"
)

// maxSelectionDepth caps the expansion chain for selectionRange; Lisp
// nesting in practice stays far below this.
const maxSelectionDepth = 64

// SelectObject serves the cljsel/select operation: one self-contained
// request, one response carrying either a normalized range or nothing,
// always with a completion status.
func (s *server) SelectObject(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params object.Request
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return sendParseError(ctx, reply, err)
	}

	res := object.Select(params)
	slog.Info("select", "kind", params.Kind, "count", params.Count)
	return reply(ctx, res, nil)
}

func (s *server) SelectionRange(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params protocol.SelectionRangeParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return sendParseError(ctx, reply, err)
	}

	uri := params.TextDocument.URI
	doc, ok := s.snapshot.Get(uri.Filename())
	if !ok {
		return reply(ctx, nil, errors.New("snapshot not found"))
	}

	tree, err := syntax.Parse(string(doc.Src))
	if err != nil {
		// a broken document still gets an answer: no ranges
		slog.Info("selectionRange on unparsable document", "path", uri.Filename())
	}

	result := make([]protocol.SelectionRange, len(params.Positions))
	for i, pos := range params.Positions {
		chain, err := expandChain(tree, doc.Pos(pos))
		if err != nil {
			continue
		}
		result[i] = chainToSelectionRange(tree, chain, pos)
	}

	slog.Info("selectionRange " + string(uri.Filename()))
	return reply(ctx, result, nil)
}

// expandChain grows a caret into the nested spans that enclose it,
// innermost first: the element under the cursor, then every enclosing
// form. Each step must contain the previous one; a sideways match ends
// the chain.
func expandChain(tree *syntax.Tree, pos syntax.Pos) ([]object.Range, error) {
	off, err := tree.PosToOffset(pos)
	if err != nil {
		return nil, err
	}
	sel := object.Range{Start: off, End: off}

	var chain []object.Range
	if c, ok := object.Locate(tree.Root(), sel, object.KindElement); ok {
		if r := object.Whole(c); r.Contains(sel) {
			chain = append(chain, r)
			sel = r
		}
	}
	for len(chain) < maxSelectionDepth {
		c, ok := object.Locate(tree.Root(), sel, object.KindForm)
		if !ok {
			break
		}
		r := object.Whole(c)
		if !r.Contains(sel) {
			break
		}
		chain = append(chain, r)
		sel = r
	}
	return chain, nil
}

func chainToSelectionRange(tree *syntax.Tree, chain []object.Range, fallback protocol.Position) protocol.SelectionRange {
	if len(chain) == 0 {
		return protocol.SelectionRange{
			Range: protocol.Range{Start: fallback, End: fallback},
		}
	}
	var parent *protocol.SelectionRange
	for i := len(chain) - 1; i >= 0; i-- {
		parent = &protocol.SelectionRange{
			Range:  spanToRange(tree, chain[i]),
			Parent: parent,
		}
	}
	return *parent
}

// spanToRange converts a half-open byte span into an LSP range, which
// is 0-based with an exclusive end.
func spanToRange(tree *syntax.Tree, r object.Range) protocol.Range {
	start := tree.OffsetToPos(r.Start)
	end := tree.OffsetToPos(r.End)
	return protocol.Range{
		Start: protocol.Position{Line: uint32(start.Line - 1), Character: uint32(start.Col - 1)},
		End:   protocol.Position{Line: uint32(end.Line - 1), Character: uint32(end.Col - 1)},
	}
}
