package main

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.lsp.dev/protocol"

	"github.com/jsonc-format/jsoncfmt/ir"
	"github.com/jsonc-format/jsoncfmt/parse"
	"github.com/jsonc-format/jsoncfmt/token"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri     string
	content string
	version int32
	root    *ir.Node
	err     error

	// ranged records that the client has sent at least one change
	// event with a non-zero range, i.e. it really does incremental
	// sync.
	ranged bool
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32, ranged bool) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	root, err := parse.Parse([]byte(content))
	ds.docs[uri] = &document{
		uri:     uri,
		content: content,
		version: version,
		root:    root,
		err:     err,
		ranged:  ranged,
	}
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	doc := s.docs.get(uri)
	if doc == nil {
		return
	}
	diagnostics := validateDocument(doc)
	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(uri),
			Diagnostics: diagnostics,
		})
	}
}

func validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if doc.err == nil {
		return diagnostics
	}
	diagnostic := protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: 0, Character: 0},
			End:   protocol.Position{Line: 0, Character: 0},
		},
		Severity: protocol.DiagnosticSeverityError,
		Message:  doc.err.Error(),
		Source:   "jsoncfmt",
	}
	if line, col, ok := errPosition(doc.err); ok {
		diagnostic.Range = protocol.Range{
			Start: protocol.Position{Line: uint32(line), Character: uint32(col)},
			End:   protocol.Position{Line: uint32(line), Character: uint32(col + 1)},
		}
	}
	return []protocol.Diagnostic{diagnostic}
}

// errPosition recovers the zero based line and column of a format
// error. Tokenize errors carry a position directly; build errors
// embed one in their message.
func errPosition(err error) (int, int, bool) {
	tErr := &token.TokenizeErr{}
	if errors.As(err, &tErr) && tErr.Pos.D != nil {
		line, col := tErr.Pos.LineCol()
		return line, col, true
	}
	var line, col int
	if _, sErr := fmt.Sscanf(err.Error(), "%*[^l]line=%d%*[^c]col=%d", &line, &col); sErr == nil {
		return line, col, true
	}
	return 0, 0, false
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version, false)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil
	}
	content, ranged := doc.content, doc.ranged
	for _, change := range params.ContentChanges {
		content, ranged = applyChange(content, ranged, change)
	}
	s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version, ranged)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

// applyChange applies one content change event. The protocol encodes
// a whole-document sync as an event without a range, but the decoded
// range field is a value type, so an omitted range and an edit at
// (0,0)-(0,0) look identical. A zero range is taken as a full
// replacement only when it also removes nothing (RangeLength == 0)
// and the client has never sent a real ranged edit; otherwise it is
// applied as an incremental edit at the top of the document.
func applyChange(content string, ranged bool, change protocol.TextDocumentContentChangeEvent) (string, bool) {
	r := change.Range
	zero := r.Start.Line == 0 && r.Start.Character == 0 &&
		r.End.Line == 0 && r.End.Character == 0
	if !zero {
		ranged = true
	}
	if zero && change.RangeLength == 0 && !ranged {
		return change.Text, ranged
	}
	startOffset := lineColToOffset(content, int(r.Start.Line), int(r.Start.Character))
	endOffset := lineColToOffset(content, int(r.End.Line), int(r.End.Character))
	if endOffset < startOffset+int(change.RangeLength) {
		endOffset = startOffset + int(change.RangeLength)
	}
	if endOffset > len(content) {
		endOffset = len(content)
	}
	if startOffset <= len(content) && startOffset <= endOffset {
		content = content[:startOffset] + change.Text + content[endOffset:]
	}
	return content, ranged
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}

func lineColToOffset(content string, line, col int) int {
	curLine, curCol := 0, 0
	for i, r := range content {
		if curLine == line && curCol == col {
			return i
		}
		if r == '\n' {
			curLine++
			curCol = 0
		} else {
			curCol++
		}
	}
	return len(content)
}
