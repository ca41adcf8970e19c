package lsp

import (
	"testing"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"cglogic/internal/driver"
)

type published struct {
	uri   protocol.DocumentUri
	diags []protocol.Diagnostic
}

// newTestServer returns a server and a glsp context that records every
// publishDiagnostics notification.
func newTestServer(t *testing.T) (*Server, *glsp.Context, *[]published) {
	t.Helper()
	s := NewServer(ServerOptions{Version: "test", Driver: driver.Options{Validate: true}})
	var sent []published
	ctx := &glsp.Context{
		Notify: func(method string, params any) {
			if method != protocol.ServerTextDocumentPublishDiagnostics {
				return
			}
			p := params.(protocol.PublishDiagnosticsParams)
			sent = append(sent, published{uri: p.URI, diags: p.Diagnostics})
		},
	}
	return s, ctx, &sent
}

func open(t *testing.T, s *Server, ctx *glsp.Context, uri, lang, text string) {
	t.Helper()
	err := s.didOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, LanguageID: lang, Version: 1, Text: text},
	})
	if err != nil {
		t.Fatalf("didOpen: %v", err)
	}
}
