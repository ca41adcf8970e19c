package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"cglogic/internal/dialect"
	"cglogic/internal/driver"
)

// document: открытый буфер и результат его последнего анализа.
type document struct {
	uri      protocol.DocumentUri
	version  protocol.Integer
	notation dialect.Notation // Unknown: по расширению и содержимому
	text     string

	parsed *driver.ParseResult
	report driver.FileReport
}

func (s *Server) lookup(uri protocol.DocumentUri) *document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.docs[uri]
}

func (s *Server) store(doc *document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[doc.uri] = doc
}

func (s *Server) forget(uri protocol.DocumentUri) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, uri)
}

func (s *Server) options() driver.Options {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opts
}

// notationForLanguage maps a client languageId onto a notation.
func notationForLanguage(id string) dialect.Notation {
	switch id {
	case "cgif":
		return dialect.CGIF
	case "clif", "cl", "common-logic":
		return dialect.CL
	}
	return dialect.Unknown
}
