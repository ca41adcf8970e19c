package lsp

import (
	"context"
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"cglogic/internal/diag"
	"cglogic/internal/driver"
	"cglogic/internal/source"
)

const diagnosticSource = "cglogic"

// analyze проверяет текст документа и сохраняет дерево для hover/folding.
func (s *Server) analyze(ctx context.Context, doc *document) {
	opts := s.options()
	if doc.notation.Valid() {
		opts.Notation = doc.notation
	}
	opts.Translate = true
	opts.Suggest = true
	opts.Cache = nil
	opts.Progress = nil

	name := uriToPath(doc.uri)
	doc.parsed = driver.ParseSource(ctx, name, []byte(doc.text), opts)
	_, doc.report = driver.CheckSource(ctx, name, []byte(doc.text), opts)
}

// diagnostics converts the report of doc into LSP diagnostics. The result
// is never nil: an empty list clears the client's markers.
func diagnostics(doc *document) []protocol.Diagnostic {
	out := make([]protocol.Diagnostic, 0, len(doc.report.Diagnostics))
	if doc.parsed == nil {
		return out
	}
	file := doc.parsed.File
	for _, d := range doc.report.Diagnostics {
		out = append(out, toProtocol(file, d))
	}
	return out
}

func toProtocol(file *source.File, d diag.Diagnostic) protocol.Diagnostic {
	sev := severity(d.Severity)
	src := diagnosticSource
	msg := d.Message
	if len(d.Suggestions) > 0 {
		msg += "\nhelp: " + strings.Join(d.Suggestions, "\nhelp: ")
	}
	span := d.Primary
	span.File = file.ID
	return protocol.Diagnostic{
		Range:    rangeForSpan(file, span),
		Severity: &sev,
		Code:     &protocol.IntegerOrString{Value: d.Code.ID()},
		Source:   &src,
		Message:  msg,
	}
}

func severity(s diag.Severity) protocol.DiagnosticSeverity {
	switch s {
	case diag.SevError:
		return protocol.DiagnosticSeverityError
	default:
		return protocol.DiagnosticSeverityInformation
	}
}
