package main

import (
	"bytes"
	"context"

	"github.com/toon-format/go-toon/encode"
	"github.com/toon-format/go-toon/parse"
	"go.lsp.dev/protocol"
)

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}

	docs := bytes.Split([]byte(doc.content), []byte("\n---\n"))
	var buf bytes.Buffer
	for i, d := range docs {
		if i > 0 {
			buf.WriteString("\n---\n")
		}
		node, err := parse.Parse(d)
		if err != nil {
			// nothing to format until the document parses
			return nil, nil
		}
		if err := encode.Encode(node, &buf); err != nil {
			return nil, nil
		}
	}

	formatted := buf.String()
	if formatted == doc.content {
		return []protocol.TextEdit{}, nil
	}

	lines := bytes.Count([]byte(doc.content), []byte("\n"))
	if len(doc.content) > 0 && doc.content[len(doc.content)-1] != '\n' {
		lines++
	}

	// replace the whole document in one edit
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End: protocol.Position{
					Line:      uint32(lines),
					Character: 0,
				},
			},
			NewText: formatted,
		},
	}, nil
}
