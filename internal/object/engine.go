package object

import (
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/cljtools/cljsel/internal/syntax"
)

// StatusDone is emitted on every response, found or not.
const StatusDone = "done"

// Request is one structural selection request. Positions are 1-based
// and inclusive; the anchor defaults to the cursor, which makes the
// initial range zero-width.
type Request struct {
	Kind         string `json:"kind"`
	Code         string `json:"code"`
	CursorLine   int    `json:"cursor-line"`
	CursorColumn int    `json:"cursor-column"`
	AnchorLine   int    `json:"anchor-line,omitempty"`
	AnchorColumn int    `json:"anchor-column,omitempty"`
	Count        int    `json:"count,omitempty"`
	Extent       string `json:"extent,omitempty"`
}

// Response carries the selected range, or no positions at all when
// nothing matched. Positions are 1-based, so omitempty never hides a
// real coordinate. Status is always present.
type Response struct {
	CursorLine   int    `json:"cursor-line,omitempty"`
	CursorColumn int    `json:"cursor-column,omitempty"`
	AnchorLine   int    `json:"anchor-line,omitempty"`
	AnchorColumn int    `json:"anchor-column,omitempty"`
	Status       string `json:"status"`
}

// Select runs the full selection pipeline for one request. It never
// fails: malformed code, out-of-range positions and internal invariant
// violations all degrade to the empty response, so the caller always
// gets exactly one answer.
func Select(req Request) (resp Response) {
	resp = Response{Status: StatusDone}
	defer func() {
		if r := recover(); r != nil {
			slog.Error("selection panicked", "err", r)
			resp = Response{Status: StatusDone}
		}
	}()

	tree, sel, found, err := trySelect(req)
	if err != nil {
		slog.Debug("no selection", "err", err)
		return resp
	}
	if !found {
		return resp
	}

	cursor := tree.OffsetToPos(sel.Start)
	anchor := cursor
	if sel.End > sel.Start {
		anchor = tree.OffsetToPos(tree.LastRuneStart(sel.End))
	}
	resp.CursorLine = cursor.Line
	resp.CursorColumn = cursor.Col
	resp.AnchorLine = anchor.Line
	resp.AnchorColumn = anchor.Col
	return resp
}

func trySelect(req Request) (*syntax.Tree, Range, bool, error) {
	kind, err := ParseKind(req.Kind)
	if err != nil {
		return nil, Range{}, false, err
	}
	mode, err := parseExtent(req.Extent)
	if err != nil {
		return nil, Range{}, false, err
	}
	tree, err := syntax.Parse(req.Code)
	if err != nil {
		return nil, Range{}, false, fmt.Errorf("parse: %w", err)
	}
	sel, err := requestRange(tree, req)
	if err != nil {
		return nil, Range{}, false, err
	}

	rounds := req.Count
	if rounds < 1 {
		rounds = 1
	}
	for i := 0; i < rounds; i++ {
		c, ok := Locate(tree.Root(), sel, kind)
		if !ok {
			return tree, Range{}, false, nil
		}
		sel = Extent(c, mode)
	}
	return tree, sel, true, nil
}

func parseExtent(s string) (ExtentMode, error) {
	switch m := ExtentMode(s); m {
	case "":
		return ExtentWhole, nil
	case ExtentWhole, ExtentInside:
		return m, nil
	}
	return "", fmt.Errorf("unknown extent %q", s)
}

// requestRange maps the request's inclusive cursor/anchor positions to
// an internal half-open span. Equal endpoints mean a zero-width caret;
// distinct endpoints cover both named characters.
func requestRange(t *syntax.Tree, req Request) (Range, error) {
	cursor := syntax.Pos{Line: req.CursorLine, Col: req.CursorColumn}
	anchor := cursor
	if req.AnchorLine != 0 || req.AnchorColumn != 0 {
		anchor = syntax.Pos{Line: req.AnchorLine, Col: req.AnchorColumn}
	}
	if anchor.Before(cursor) {
		cursor, anchor = anchor, cursor
	}
	start, err := t.PosToOffset(cursor)
	if err != nil {
		return Range{}, err
	}
	if anchor == cursor {
		return Range{start, start}, nil
	}
	end, err := t.PosToOffset(anchor)
	if err != nil {
		return Range{}, err
	}
	if end < len(t.Source()) {
		_, size := utf8.DecodeRuneInString(t.Source()[end:])
		end += size
	}
	return Range{start, end}, nil
}
