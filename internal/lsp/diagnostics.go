package lsp

import (
	"context"
	"errors"
	"log/slog"

	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/multierr"

	"github.com/cljtools/cljsel/internal/syntax"
)

// publishDiagnostics reparses the document and reports every reader
// error. An empty list clears previously published diagnostics.
func (s *server) publishDiagnostics(ctx context.Context, conn jsonrpc2.Conn, doc *Document) error {
	slog.Info("diagnose", "path", doc.URI.Filename())

	_, err := syntax.Parse(string(doc.Src))

	diagnostics := make([]protocol.Diagnostic, 0)
	for _, e := range multierr.Errors(err) {
		var rerr *syntax.Error
		if !errors.As(e, &rerr) {
			continue
		}
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    *posToRange(rerr.Pos),
			Severity: protocol.DiagnosticSeverityError,
			Source:   "cljsel",
			Message:  rerr.Msg,
		})
	}

	return conn.Notify(
		ctx,
		protocol.MethodTextDocumentPublishDiagnostics,
		&protocol.PublishDiagnosticsParams{
			URI:         doc.URI,
			Diagnostics: diagnostics,
		},
	)
}

func posToRange(p syntax.Pos) *protocol.Range {
	return &protocol.Range{
		Start: protocol.Position{
			Line:      uint32(p.Line - 1),
			Character: uint32(p.Col - 1),
		},
		End: protocol.Position{
			Line:      uint32(p.Line - 1),
			Character: uint32(p.Col),
		},
	}
}
