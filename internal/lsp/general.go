package lsp

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

func (s *server) DidOpen(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params protocol.DidOpenTextDocumentParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return sendParseError(ctx, reply, err)
	}

	uri := params.TextDocument.URI
	doc := &Document{
		URI: uri,
		Src: []byte(params.TextDocument.Text),
	}
	s.snapshot.file.Set(uri.Filename(), doc)

	slog.Info("open " + string(uri.Filename()))
	notification := s.publishDiagnostics(ctx, s.conn, doc)
	return reply(ctx, notification, nil)
}

func (s *server) DidClose(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params protocol.DidCloseTextDocumentParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return sendParseError(ctx, reply, err)
	}

	s.snapshot.file.Remove(params.TextDocument.URI.Filename())

	slog.Info("close " + string(params.TextDocument.URI.Filename()))
	return reply(ctx, nil, nil)
}

func (s *server) DidChange(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params protocol.DidChangeTextDocumentParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return sendParseError(ctx, reply, err)
	}
	if len(params.ContentChanges) == 0 {
		return reply(ctx, nil, errors.New("no content changes"))
	}

	uri := params.TextDocument.URI
	doc := &Document{
		URI: uri,
		Src: []byte(params.ContentChanges[0].Text),
	}
	s.snapshot.file.Set(uri.Filename(), doc)

	slog.Info("change " + string(uri.Filename()))
	return reply(ctx, nil, nil)
}

func (s *server) DidSave(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params protocol.DidSaveTextDocumentParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return sendParseError(ctx, reply, err)
	}

	uri := params.TextDocument.URI
	doc, ok := s.snapshot.Get(uri.Filename())
	if !ok {
		return reply(ctx, nil, errors.New("snapshot not found"))
	}
	if params.Text != "" {
		doc = &Document{URI: uri, Src: []byte(params.Text)}
		s.snapshot.file.Set(uri.Filename(), doc)
	}

	slog.Info("save " + string(uri.Filename()))
	notification := s.publishDiagnostics(ctx, s.conn, doc)
	return reply(ctx, notification, nil)
}
