package lsp

import (
	"go.lsp.dev/protocol"

	"github.com/cljtools/cljsel/internal/syntax"

	cmap "github.com/orcaman/concurrent-map/v2"
)

// Snapshot holds the text of every open document, keyed by file path.
type Snapshot struct {
	file cmap.ConcurrentMap[string, *Document]
}

func NewSnapshot() *Snapshot {
	return &Snapshot{
		file: cmap.New[*Document](),
	}
}

func (s *Snapshot) Get(filePath string) (*Document, bool) {
	return s.file.Get(filePath)
}

// Document is one open source document.
type Document struct {
	URI protocol.DocumentURI
	Src []byte
}

// Pos converts an LSP position (0-based line, 0-based character) into
// the reader's 1-based position.
func (d *Document) Pos(p protocol.Position) syntax.Pos {
	return syntax.Pos{Line: int(p.Line) + 1, Col: int(p.Character) + 1}
}
