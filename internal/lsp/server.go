package lsp

import (
	"context"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	// регистрирует бэкенд commonlog
	_ "github.com/tliron/commonlog/simple"

	"cglogic/internal/ast"
	"cglogic/internal/driver"
	"cglogic/internal/trace"
)

const lsName = "cglogic"

// ServerOptions configures the language server.
type ServerOptions struct {
	Version string
	// Driver holds the check options; Translate and Suggest are always on.
	Driver driver.Options
	Tracer trace.Tracer
}

// Server publishes diagnostics for open CGIF and CL documents and answers
// hover, folding and formatting requests from the last analysis.
type Server struct {
	mu      sync.Mutex
	docs    map[protocol.DocumentUri]*document
	opts    driver.Options
	version string
	tracer  trace.Tracer

	handler protocol.Handler
	server  *server.Server
	log     commonlog.Logger
}

func NewServer(opts ServerOptions) *Server {
	s := &Server{
		docs:    make(map[protocol.DocumentUri]*document),
		opts:    opts.Driver,
		version: opts.Version,
		tracer:  opts.Tracer,
		log:     commonlog.GetLogger("cglogic.lsp"),
	}
	if s.tracer == nil {
		s.tracer = trace.Nop
	}
	s.handler = protocol.Handler{
		Initialize:                      s.initialize,
		Initialized:                     s.initialized,
		Shutdown:                        s.shutdown,
		SetTrace:                        s.setTrace,
		WorkspaceDidChangeConfiguration: s.didChangeConfiguration,
		TextDocumentDidOpen:             s.didOpen,
		TextDocumentDidChange:           s.didChange,
		TextDocumentDidClose:            s.didClose,
		TextDocumentDidSave:             s.didSave,
		TextDocumentHover:               s.hover,
		TextDocumentFoldingRange:        s.foldingRange,
		TextDocumentFormatting:          s.formatting,
	}
	s.server = server.NewServer(&s.handler, lsName, false)
	return s
}

// RunStdio serves the protocol on stdin/stdout until the client exits.
func (s *Server) RunStdio() error {
	return s.server.RunStdio()
}

func (s *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	root := ""
	if params.RootURI != nil && *params.RootURI != "" {
		root = uriToPath(*params.RootURI)
	} else if params.RootPath != nil {
		root = *params.RootPath
	}
	if root != "" {
		s.loadProjectConfig(root)
	}
	s.applySettings(params.InitializationOptions)

	capabilities := s.handler.CreateServerCapabilities()
	openClose := true
	change := protocol.TextDocumentSyncKindIncremental
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: &openClose,
		Change:    &change,
		Save:      &protocol.SaveOptions{IncludeText: &openClose},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	s.log.Info("initialized")
	return nil
}

func (s *Server) shutdown(ctx *glsp.Context) error {
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (s *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) didOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	doc := &document{
		uri:      params.TextDocument.URI,
		version:  params.TextDocument.Version,
		notation: notationForLanguage(params.TextDocument.LanguageID),
		text:     params.TextDocument.Text,
	}
	s.refresh(ctx, doc)
	return nil
}

func (s *Server) didChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	prev := s.lookup(params.TextDocument.URI)
	if prev == nil {
		s.log.Warningf("change for unknown document %s", params.TextDocument.URI)
		return nil
	}
	doc := &document{
		uri:      prev.uri,
		version:  params.TextDocument.Version,
		notation: prev.notation,
		text:     applyChanges(prev.text, params.ContentChanges),
	}
	s.refresh(ctx, doc)
	return nil
}

func (s *Server) didSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	prev := s.lookup(params.TextDocument.URI)
	if prev == nil || params.Text == nil {
		return nil
	}
	doc := *prev
	doc.text = *params.Text
	s.refresh(ctx, &doc)
	return nil
}

func (s *Server) didClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.forget(params.TextDocument.URI)
	publish(ctx, params.TextDocument.URI, []protocol.Diagnostic{})
	return nil
}

func (s *Server) hover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	return buildHover(s.lookup(params.TextDocument.URI), params.Position), nil
}

func (s *Server) foldingRange(ctx *glsp.Context, params *protocol.FoldingRangeParams) ([]protocol.FoldingRange, error) {
	return buildFoldingRanges(s.lookup(params.TextDocument.URI)), nil
}

// formatting заменяет документ канонической записью; документ с ошибками не трогаем.
func (s *Server) formatting(ctx *glsp.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.lookup(params.TextDocument.URI)
	if doc == nil || !doc.parsed.Success() {
		return nil, nil
	}
	text := doc.parsed.Text()
	if text != "" {
		text += "\n"
	}
	if text == doc.text {
		return []protocol.TextEdit{}, nil
	}
	file := doc.parsed.File
	end := positionForOffset(file, safeUint32(len(file.Content)))
	return []protocol.TextEdit{{
		Range:   protocol.Range{End: end},
		NewText: text,
	}}, nil
}

// refresh анализирует документ, сохраняет его и публикует диагностики.
func (s *Server) refresh(ctx *glsp.Context, doc *document) {
	base := trace.WithTracer(context.Background(), s.tracer)
	tctx, span := trace.BeginCtx(base, trace.ScopeDriver, "lsp.analyze")
	s.analyze(tctx, doc)
	span.WithExtra("uri", string(doc.uri)).End("")

	s.store(doc)
	diags := diagnostics(doc)
	s.log.Debugf("%s v%d: %d diagnostics, %d nodes", doc.uri, doc.version, len(diags), ast.Count(doc.parsed.Tree))
	publish(ctx, doc.uri, diags)
}

func publish(ctx *glsp.Context, uri protocol.DocumentUri, diags []protocol.Diagnostic) {
	if ctx == nil || ctx.Notify == nil {
		return
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diags,
	})
}
