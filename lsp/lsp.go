// Package lsp implements a minimal language server that reports
// minification errors (lex/parse/rename failures) as diagnostics.
// Grounded on java/codebase/lsp.go: same handler-struct shape, same
// protocol_3_16 + glsp + commonlog/simple stack, adapted from scanning a
// Java codebase to checking one open C document at a time.
package lsp

import (
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"

	"github.com/loom-lang/cminify/minify"
)

const serverName = "cminify"

// Server is a minimal stdio language server for C source files.
type Server struct {
	handler protocol.Handler
	server  *server.Server
	version string

	mu      sync.Mutex
	sources map[protocol.DocumentUri]string
}

// New builds a Server wired for didOpen/didChange/didSave diagnostics.
func New(version string) *Server {
	s := &Server{version: version, sources: make(map[protocol.DocumentUri]string)}

	s.handler = protocol.Handler{
		Initialize:            s.initialize,
		Initialized:           s.initialized,
		Shutdown:              s.shutdown,
		TextDocumentDidOpen:   s.textDocumentDidOpen,
		TextDocumentDidChange: s.textDocumentDidChange,
		TextDocumentDidClose:  s.textDocumentDidClose,
		TextDocumentDidSave:   s.textDocumentDidSave,
	}
	s.server = server.NewServer(&s.handler, serverName, false)
	return s
}

// RunStdio runs the server over stdin/stdout until the client disconnects.
func (s *Server) RunStdio() error { return s.server.RunStdio() }

func (s *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := s.handler.CreateServerCapabilities()
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    intPtr(int(protocol.TextDocumentSyncKindFull)),
	}
	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    serverName,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error { return nil }

func (s *Server) shutdown(ctx *glsp.Context) error { return nil }

func (s *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.check(ctx, params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

func (s *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	if whole, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
		s.check(ctx, params.TextDocument.URI, whole.Text)
	}
	return nil
}

func (s *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.mu.Lock()
	delete(s.sources, params.TextDocument.URI)
	s.mu.Unlock()
	return nil
}

func (s *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text != nil {
		s.check(ctx, params.TextDocument.URI, *params.Text)
	}
	return nil
}

// check minifies the document text and publishes the resulting error (if
// any) as a single diagnostic; a clean minify clears prior diagnostics.
func (s *Server) check(ctx *glsp.Context, uri protocol.DocumentUri, text string) {
	s.mu.Lock()
	s.sources[uri] = text
	s.mu.Unlock()

	diagnostics := []protocol.Diagnostic{}
	if _, err := minify.Minify(text); err != nil {
		severity := protocol.DiagnosticSeverityError
		message := err.Error()
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End:   protocol.Position{Line: 0, Character: 1},
			},
			Severity: &severity,
			Source:   strPtr(serverName),
			Message:  message,
		})
	}

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func boolPtr(b bool) *bool    { return &b }
func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }
