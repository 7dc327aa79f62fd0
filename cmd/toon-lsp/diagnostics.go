package main

import (
	"context"
	"errors"
	"sync"

	"github.com/toon-format/go-toon/ir"
	"github.com/toon-format/go-toon/parse"
	"github.com/toon-format/go-toon/token"
	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri      string
	content  string
	version  int32
	node     *ir.Node
	parseErr error
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	node, err := parse.Parse([]byte(content))
	if err != nil {
		node = nil
	}
	ds.docs[uri] = &document{
		uri:      uri,
		content:  content,
		version:  version,
		node:     node,
		parseErr: err,
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

	diagnostics := s.validateDocument(doc)

	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(uri),
			Diagnostics: diagnostics,
		})
	}
}

func (s *Server) validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if doc.parseErr == nil {
		return diagnostics
	}
	diagnostic := protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: 0, Character: 0},
			End:   protocol.Position{Line: 0, Character: 0},
		},
		Severity: protocol.DiagnosticSeverityError,
		Message:  doc.parseErr.Error(),
		Source:   "toon",
	}
	if pos := errorPos(doc.parseErr); pos != nil {
		// token positions are 1-based, LSP positions 0-based
		line, col := pos.LineCol()
		diagnostic.Range = protocol.Range{
			Start: protocol.Position{
				Line:      uint32(line - 1),
				Character: uint32(col - 1),
			},
			End: protocol.Position{
				Line:      uint32(line - 1),
				Character: uint32(col),
			},
		}
	}
	return append(diagnostics, diagnostic)
}

func errorPos(err error) *token.Pos {
	var (
		se *parse.SyntaxError
		ie *parse.IndentationError
		ee *parse.EOFError
	)
	switch {
	case errors.As(err, &se):
		return se.Pos
	case errors.As(err, &ie):
		return ie.Pos
	case errors.As(err, &ee):
		return ee.Pos
	}
	return nil
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil
	}

	content := doc.content
	for _, change := range params.ContentChanges {
		rangeVal := change.Range
		if rangeVal.Start.Line == 0 && rangeVal.Start.Character == 0 && rangeVal.End.Line == 0 && rangeVal.End.Character == 0 {
			// full document replacement
			content = change.Text
			continue
		}
		start := rangeVal.Start
		end := rangeVal.End
		contentRunes := []rune(content)
		startOffset := lineColToOffset(content, int(start.Line), int(start.Character))
		endOffset := lineColToOffset(content, int(end.Line), int(end.Character))
		if startOffset < len(contentRunes) && endOffset <= len(contentRunes) {
			content = string(contentRunes[:startOffset]) + change.Text + string(contentRunes[endOffset:])
		}
	}

	s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}

func lineColToOffset(content string, line, col int) int {
	currentLine := 0
	currentCol := 0
	for i, r := range content {
		if currentLine == line && currentCol == col {
			return i
		}
		if r == '\n' {
			currentLine++
			currentCol = 0
		} else {
			currentCol++
		}
	}
	return len(content)
}
